package portcall

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

type Repository interface {
	Store(ctx context.Context, portCall PortCall) error
	GetAll(ctx context.Context) ([]PortCall, error)
	Get(ctx context.Context, uid uuid.UUID) (*PortCall, error)
	Delete(ctx context.Context, uid uuid.UUID) (bool, error)
}

type RepositoryImpl struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *RepositoryImpl {
	return &RepositoryImpl{db: db}
}

func (r *RepositoryImpl) Store(ctx context.Context, portCall PortCall) error {
	query := `INSERT INTO port_call (
                    uid,
                    vessel_name,
                    port_name,
                    voyage_number,
                    created_at
				) VALUES ($1, $2, $3, $4, $5)`

	stmt, err := r.db.PrepareContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not prepare query: %w", err)
		log.Error(err)
		return err
	}
	defer stmt.Close()

	_, err = stmt.ExecContext(ctx,
		portCall.Uid.String(),
		portCall.VesselName,
		portCall.PortName,
		portCall.VoyageNumber,
		portCall.CreatedAt.UnixMilli(),
	)
	if err != nil {
		err := fmt.Errorf("could not execute query: %w", err)
		log.Error(err)
		return err
	}

	return nil
}

func (r *RepositoryImpl) GetAll(ctx context.Context) ([]PortCall, error) {
	query := `SELECT uid, vessel_name, port_name, voyage_number, created_at
              FROM port_call
              ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not query port calls: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	portCalls := make([]PortCall, 0, 10)
	for rows.Next() {
		portCall, err := scanPortCall(rows.Scan)
		if err != nil {
			log.Error(err)
			return nil, err
		}
		portCalls = append(portCalls, portCall)
	}

	if err := rows.Err(); err != nil {
		err := fmt.Errorf("error iterating over rows: %w", err)
		log.Error(err)
		return nil, err
	}

	return portCalls, nil
}

func (r *RepositoryImpl) Get(ctx context.Context, uid uuid.UUID) (*PortCall, error) {
	query := `SELECT uid, vessel_name, port_name, voyage_number, created_at
              FROM port_call
              WHERE uid = $1`

	row := r.db.QueryRowContext(ctx, query, uid.String())
	portCall, err := scanPortCall(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		log.Error(err)
		return nil, err
	}
	return &portCall, nil
}

func (r *RepositoryImpl) Delete(ctx context.Context, uid uuid.UUID) (bool, error) {
	query := "DELETE FROM port_call WHERE uid = $1"
	stmt, err := r.db.PrepareContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not prepare query: %w", err)
		log.Error(err)
		return false, err
	}
	defer stmt.Close()

	result, err := stmt.ExecContext(ctx, uid.String())
	if err != nil {
		err := fmt.Errorf("could not execute query: %w", err)
		log.Error(err)
		return false, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		err := fmt.Errorf("could not get rows affected: %w", err)
		log.Error(err)
		return false, err
	}
	return rowsAffected == 1, nil
}

func scanPortCall(scan func(dest ...any) error) (PortCall, error) {
	var portCall PortCall
	var uidString string
	var createdAtMillis int64
	if err := scan(
		&uidString,
		&portCall.VesselName,
		&portCall.PortName,
		&portCall.VoyageNumber,
		&createdAtMillis,
	); err != nil {
		if err == sql.ErrNoRows {
			return PortCall{}, err
		}
		return PortCall{}, fmt.Errorf("could not scan port call: %w", err)
	}
	uid, err := uuid.Parse(uidString)
	if err != nil {
		return PortCall{}, fmt.Errorf("could not parse port call uid: %w", err)
	}
	portCall.Uid = uid
	portCall.CreatedAt = time.UnixMilli(createdAtMillis)
	return portCall, nil
}

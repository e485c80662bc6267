package sof

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
)

type Repository interface {
	// ReplaceEvents atomically swaps the stored event batch of a port call.
	ReplaceEvents(ctx context.Context, portCallUid string, events []Event) error
	// GetEvents returns the stored batch in its original source order.
	GetEvents(ctx context.Context, portCallUid string) ([]Event, error)
}

type RepositoryImpl struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *RepositoryImpl {
	return &RepositoryImpl{db: db}
}

func (r *RepositoryImpl) ReplaceEvents(ctx context.Context, portCallUid string, events []Event) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		// The Rollback will be a no-op if the transaction was already committed
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			log.Errorf("rollback error: %v", rbErr)
		}
	}()

	if _, err := tx.ExecContext(ctx, "DELETE FROM sof_event WHERE port_call_uid = $1", portCallUid); err != nil {
		err := fmt.Errorf("could not delete previous events: %w", err)
		log.Error(err)
		return err
	}

	query := `INSERT INTO sof_event (
                    port_call_uid,
                    position,
                    label,
                    category,
                    start_time,
                    end_time,
                    status,
                    remark
				) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not prepare query: %w", err)
		log.Error(err)
		return err
	}
	defer stmt.Close()

	for position, event := range events {
		var startParam, endParam interface{}
		if !event.StartTime.IsZero() {
			startParam = event.StartTime.UnixMilli()
		}
		if !event.EndTime.IsZero() {
			endParam = event.EndTime.UnixMilli()
		}
		_, err := stmt.ExecContext(ctx,
			portCallUid,
			position,
			event.Label,
			string(event.Category),
			startParam,
			endParam,
			event.Status,
			event.Remark,
		)
		if err != nil {
			err := fmt.Errorf("could not store event %d: %w", position, err)
			log.Error(err)
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func (r *RepositoryImpl) GetEvents(ctx context.Context, portCallUid string) ([]Event, error) {
	query := `SELECT label, category, start_time, end_time, status, remark
              FROM sof_event
              WHERE port_call_uid = $1
              ORDER BY position`

	rows, err := r.db.QueryContext(ctx, query, portCallUid)
	if err != nil {
		err := fmt.Errorf("could not query events: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	events := make([]Event, 0, 10)
	for rows.Next() {
		var event Event
		var category string
		var startMillis, endMillis sql.NullInt64
		if err := rows.Scan(
			&event.Label,
			&category,
			&startMillis,
			&endMillis,
			&event.Status,
			&event.Remark,
		); err != nil {
			err := fmt.Errorf("could not scan event: %w", err)
			log.Error(err)
			return nil, err
		}
		event.Category = ParseCategory(category)
		if startMillis.Valid {
			event.StartTime = time.UnixMilli(startMillis.Int64)
		}
		if endMillis.Valid {
			event.EndTime = time.UnixMilli(endMillis.Int64)
		}
		events = append(events, event)
	}

	if err := rows.Err(); err != nil {
		err := fmt.Errorf("error iterating over rows: %w", err)
		log.Error(err)
		return nil, err
	}

	return events, nil
}

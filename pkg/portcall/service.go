package portcall

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/laydays/laydays/internal/utils"
	log "github.com/sirupsen/logrus"
)

var ErrNotFound = fmt.Errorf("port call not found")

// Provider is the narrow read interface other packages depend on.
type Provider interface {
	Get(ctx context.Context, uid string) (*PortCall, error)
}

type Service interface {
	Provider
	Create(ctx context.Context, portCall PortCall) (PortCall, error)
	List(ctx context.Context) ([]PortCall, error)
	Delete(ctx context.Context, uid string) error
}

type ServiceImpl struct {
	repo  Repository
	clock utils.Clock
}

func NewService(repo Repository) *ServiceImpl {
	return &ServiceImpl{repo: repo, clock: &utils.SystemClock{}}
}

func (s *ServiceImpl) Create(ctx context.Context, portCall PortCall) (PortCall, error) {
	portCall.Uid = uuid.New()
	portCall.CreatedAt = s.clock.Now()
	if err := s.repo.Store(ctx, portCall); err != nil {
		return PortCall{}, err
	}
	log.Debugf("Created port call %s for vessel %q", portCall.Uid, portCall.VesselName)
	return portCall, nil
}

func (s *ServiceImpl) List(ctx context.Context) ([]PortCall, error) {
	return s.repo.GetAll(ctx)
}

func (s *ServiceImpl) Get(ctx context.Context, uid string) (*PortCall, error) {
	id, err := uuid.Parse(uid)
	if err != nil {
		log.Debugf("Invalid port call uid %q: %v", uid, err)
		return nil, ErrNotFound
	}
	portCall, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if portCall == nil {
		return nil, ErrNotFound
	}
	return portCall, nil
}

func (s *ServiceImpl) Delete(ctx context.Context, uid string) error {
	id, err := uuid.Parse(uid)
	if err != nil {
		return ErrNotFound
	}
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}

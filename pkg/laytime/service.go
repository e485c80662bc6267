package laytime

import (
	"context"

	"github.com/laydays/laydays/pkg/sof"
	log "github.com/sirupsen/logrus"
)

type Service interface {
	// AllocationFor computes the laytime allocation of a port call's
	// normalized events against the given terms.
	AllocationFor(ctx context.Context, portCallUid string, terms Terms) (Allocation, error)
}

type ServiceImpl struct {
	events sof.Service
}

func NewService(events sof.Service) *ServiceImpl {
	return &ServiceImpl{events: events}
}

func (s *ServiceImpl) AllocationFor(ctx context.Context, portCallUid string, terms Terms) (Allocation, error) {
	events, err := s.events.NormalizedEvents(ctx, portCallUid)
	if err != nil {
		return Allocation{}, err
	}
	allocation := Allocate(events, terms)
	log.Debugf("Allocated laytime for port call %s: counted %s of allowed %s",
		portCallUid, allocation.TotalCounted, allocation.Allowed)
	return allocation, nil
}

package timeline

import (
	"context"

	"github.com/laydays/laydays/pkg/sof"
	log "github.com/sirupsen/logrus"
)

type Service interface {
	// BlocksFor merges the normalized events of a port call into timeline blocks.
	BlocksFor(ctx context.Context, portCallUid string) ([]Block, error)
}

type ServiceImpl struct {
	events sof.Service
}

func NewService(events sof.Service) *ServiceImpl {
	return &ServiceImpl{events: events}
}

func (s *ServiceImpl) BlocksFor(ctx context.Context, portCallUid string) ([]Block, error) {
	events, err := s.events.NormalizedEvents(ctx, portCallUid)
	if err != nil {
		return nil, err
	}
	blocks := Merge(events)
	log.Debugf("Merged %d events into %d timeline blocks for port call %s", len(events), len(blocks), portCallUid)
	return blocks, nil
}

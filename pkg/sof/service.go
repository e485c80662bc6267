package sof

import (
	"context"
	"fmt"

	"github.com/laydays/laydays/pkg/portcall"
	log "github.com/sirupsen/logrus"
)

type Service interface {
	// ReplaceEvents swaps the stored statement-of-facts batch of a port call.
	ReplaceEvents(ctx context.Context, portCallUid string, events []Event) ([]Event, error)
	// Events returns the stored batch as received, in source order.
	Events(ctx context.Context, portCallUid string) ([]Event, error)
	// NormalizedEvents returns the stored batch after normalization: sorted,
	// every event with a concrete end time.
	NormalizedEvents(ctx context.Context, portCallUid string) ([]Event, error)
}

type ServiceImpl struct {
	repo      Repository
	portCalls portcall.Provider
}

func NewService(repo Repository, portCalls portcall.Provider) *ServiceImpl {
	return &ServiceImpl{repo: repo, portCalls: portCalls}
}

func (s *ServiceImpl) ReplaceEvents(ctx context.Context, portCallUid string, events []Event) ([]Event, error) {
	if _, err := s.portCalls.Get(ctx, portCallUid); err != nil {
		return nil, err
	}
	if err := s.repo.ReplaceEvents(ctx, portCallUid, events); err != nil {
		return nil, fmt.Errorf("failed to replace events for port call %s: %w", portCallUid, err)
	}
	log.Debugf("Stored %d events for port call %s", len(events), portCallUid)
	return events, nil
}

func (s *ServiceImpl) Events(ctx context.Context, portCallUid string) ([]Event, error) {
	if _, err := s.portCalls.Get(ctx, portCallUid); err != nil {
		return nil, err
	}
	return s.repo.GetEvents(ctx, portCallUid)
}

func (s *ServiceImpl) NormalizedEvents(ctx context.Context, portCallUid string) ([]Event, error) {
	events, err := s.Events(ctx, portCallUid)
	if err != nil {
		return nil, err
	}
	return Normalize(events), nil
}

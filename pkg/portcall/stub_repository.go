package portcall

import (
	"context"
	"sort"

	"github.com/google/uuid"
)

type StubRepository struct {
	data map[uuid.UUID]PortCall
}

func NewStubRepository() *StubRepository {
	return &StubRepository{data: map[uuid.UUID]PortCall{}}
}

func (s *StubRepository) Store(ctx context.Context, portCall PortCall) error {
	s.data[portCall.Uid] = portCall
	return nil
}

func (s *StubRepository) GetAll(ctx context.Context) ([]PortCall, error) {
	portCalls := make([]PortCall, 0, len(s.data))
	for _, portCall := range s.data {
		portCalls = append(portCalls, portCall)
	}
	sort.Slice(portCalls, func(i, j int) bool {
		return portCalls[i].CreatedAt.After(portCalls[j].CreatedAt)
	})
	return portCalls, nil
}

func (s *StubRepository) Get(ctx context.Context, uid uuid.UUID) (*PortCall, error) {
	portCall, ok := s.data[uid]
	if !ok {
		return nil, nil
	}
	return &portCall, nil
}

func (s *StubRepository) Delete(ctx context.Context, uid uuid.UUID) (bool, error) {
	_, ok := s.data[uid]
	delete(s.data, uid)
	return ok, nil
}

func (s *StubRepository) Cleanup() {
	s.data = map[uuid.UUID]PortCall{}
}

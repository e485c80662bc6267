package sof

import "context"

type StubRepository struct {
	data map[string][]Event
}

func NewStubRepository() *StubRepository {
	return &StubRepository{data: map[string][]Event{}}
}

func (s *StubRepository) ReplaceEvents(ctx context.Context, portCallUid string, events []Event) error {
	stored := make([]Event, len(events))
	copy(stored, events)
	s.data[portCallUid] = stored
	return nil
}

func (s *StubRepository) GetEvents(ctx context.Context, portCallUid string) ([]Event, error) {
	events := make([]Event, len(s.data[portCallUid]))
	copy(events, s.data[portCallUid])
	return events, nil
}

func (s *StubRepository) Cleanup() {
	s.data = map[string][]Event{}
}

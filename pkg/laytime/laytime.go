package laytime

import (
	"time"

	"github.com/laydays/laydays/pkg/sof"
)

// Terms are the contract parameters an allocation is computed against. They
// come from configuration or per-request overrides, never from constants.
type Terms struct {
	Allowed   time.Duration
	DailyRate float64
}

// Event is a statement-of-facts event annotated with its laytime treatment.
type Event struct {
	sof.Event
	Counted bool
	Reason  string
}

// Allocation is the full laytime result for one event batch. OverrunCost is
// zero unless Overrun is positive.
type Allocation struct {
	Events       []Event
	TotalCounted time.Duration
	Allowed      time.Duration
	TimeSaved    time.Duration
	Overrun      time.Duration
	OverrunCost  float64
}

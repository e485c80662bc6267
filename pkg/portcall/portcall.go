package portcall

import (
	"time"

	"github.com/google/uuid"
)

// PortCall is one visit of a vessel to a port. It owns the statement-of-facts
// event batch from which timelines and laytime allocations are computed.
type PortCall struct {
	Uid          uuid.UUID
	VesselName   string
	PortName     string
	VoyageNumber string
	CreatedAt    time.Time
}

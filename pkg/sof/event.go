package sof

import (
	"strings"
	"time"
)

// Category classifies a statement-of-facts event. The set is closed: anything
// a source document reports outside of it is mapped to CategoryOther.
type Category string

const (
	CategoryArrival         Category = "arrival"
	CategoryCargoOperations Category = "cargo_operations"
	CategoryDeparture       Category = "departure"
	CategoryDelays          Category = "delays"
	CategoryStoppages       Category = "stoppages"
	CategoryBunkering       Category = "bunkering"
	CategoryAnchorage       Category = "anchorage"
	CategoryOther           Category = "other"
)

// ParseCategory maps a free-text category value onto the closed set.
func ParseCategory(s string) Category {
	switch Category(strings.ToLower(strings.TrimSpace(s))) {
	case CategoryArrival:
		return CategoryArrival
	case CategoryCargoOperations:
		return CategoryCargoOperations
	case CategoryDeparture:
		return CategoryDeparture
	case CategoryDelays:
		return CategoryDelays
	case CategoryStoppages:
		return CategoryStoppages
	case CategoryBunkering:
		return CategoryBunkering
	case CategoryAnchorage:
		return CategoryAnchorage
	default:
		return CategoryOther
	}
}

// Event is one timestamped occurrence from a port call's statement of facts.
// A zero StartTime means the source gave no usable anchor; a zero EndTime is
// allowed on input and filled in by Normalize.
type Event struct {
	Label     string
	Category  Category
	StartTime time.Time
	EndTime   time.Time
	Status    string
	Remark    string
}

func (e Event) Duration() time.Duration {
	return e.EndTime.Sub(e.StartTime)
}

package laytime

import (
	"math"
	"time"

	"github.com/laydays/laydays/pkg/sof"
)

const (
	reasonCargoOperations = "Cargo operations count towards laytime."
	reasonDelaysStoppages = "Delays and stoppages do not count towards laytime."
	reasonNotCounted      = "Not counted towards laytime."
)

// Classify decides whether an event category consumes allowed laytime and
// returns the justification shown alongside the event.
func Classify(category sof.Category) (bool, string) {
	switch category {
	case sof.CategoryCargoOperations:
		return true, reasonCargoOperations
	case sof.CategoryDelays, sof.CategoryStoppages:
		return false, reasonDelaysStoppages
	default:
		return false, reasonNotCounted
	}
}

// Allocate classifies every normalized event against the given terms and
// derives the aggregate figures. Counted time is the plain sum of counted
// event durations: time shared by concurrent events is charged once per
// event, not de-duplicated the way timeline blocks are. That asymmetry is a
// modeled limitation of the allocation, kept to match how statements of
// facts are settled line by line.
func Allocate(events []sof.Event, terms Terms) Allocation {
	annotated := make([]Event, 0, len(events))
	totalCounted := time.Duration(0)
	for _, e := range events {
		counted, reason := Classify(e.Category)
		if counted {
			totalCounted += e.Duration()
		}
		annotated = append(annotated, Event{Event: e, Counted: counted, Reason: reason})
	}

	timeSaved := time.Duration(0)
	overrun := time.Duration(0)
	if totalCounted > terms.Allowed {
		overrun = totalCounted - terms.Allowed
	} else {
		timeSaved = terms.Allowed - totalCounted
	}

	overrunCost := 0.0
	if overrun > 0 {
		overrunDays := overrun.Minutes() / (24 * 60)
		overrunCost = math.Round(overrunDays*terms.DailyRate*100) / 100
	}

	return Allocation{
		Events:       annotated,
		TotalCounted: totalCounted,
		Allowed:      terms.Allowed,
		TimeSaved:    timeSaved,
		Overrun:      overrun,
		OverrunCost:  overrunCost,
	}
}

package sof

import (
	"sort"

	log "github.com/sirupsen/logrus"
)

// Normalize turns a raw event batch into a complete, chronologically sorted
// sequence: events without a start time are dropped, the rest are stable-sorted
// by start time, and every missing end time is inferred from the start of the
// following event (the last event becomes a zero-duration milestone, e.g. a
// tendered Notice of Readiness). End times earlier than their start are clamped
// to the start. The input slice is not modified.
func Normalize(events []Event) []Event {
	normalized := make([]Event, 0, len(events))
	for _, e := range events {
		if e.StartTime.IsZero() {
			log.Debugf("Dropping event %q: no start time to place it on the timeline", e.Label)
			continue
		}
		normalized = append(normalized, e)
	}

	sort.SliceStable(normalized, func(i, j int) bool {
		return normalized[i].StartTime.Before(normalized[j].StartTime)
	})

	for i := range normalized {
		if normalized[i].EndTime.IsZero() {
			if i+1 < len(normalized) {
				normalized[i].EndTime = normalized[i+1].StartTime
			} else {
				normalized[i].EndTime = normalized[i].StartTime
			}
		}
		if normalized[i].EndTime.Before(normalized[i].StartTime) {
			log.Debugf("Event %q ends before it starts, clamping end time", normalized[i].Label)
			normalized[i].EndTime = normalized[i].StartTime
		}
	}

	return normalized
}

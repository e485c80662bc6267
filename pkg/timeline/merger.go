package timeline

import (
	"fmt"
	"time"

	"github.com/laydays/laydays/pkg/sof"
)

// Merge collapses a normalized (sorted, complete) event sequence into blocks
// with a single left-to-right sweep. An event joins the open block when its
// start does not lie after the block's running end, so back-to-back touching
// events merge into one block. The resulting blocks are pairwise disjoint,
// ordered by start time, and together cover exactly the union of the input
// event spans.
func Merge(events []sof.Event) []Block {
	blocks := make([]Block, 0, len(events))

	var members []sof.Event
	var blockEnd time.Time
	for _, event := range events {
		if len(members) == 0 {
			members = []sof.Event{event}
			blockEnd = event.EndTime
			continue
		}
		if !event.StartTime.After(blockEnd) {
			members = append(members, event)
			if event.EndTime.After(blockEnd) {
				blockEnd = event.EndTime
			}
		} else {
			blocks = append(blocks, newBlock(members))
			members = []sof.Event{event}
			blockEnd = event.EndTime
		}
	}
	if len(members) > 0 {
		blocks = append(blocks, newBlock(members))
	}

	return blocks
}

func newBlock(members []sof.Event) Block {
	start := members[0].StartTime
	end := members[0].EndTime
	longest := members[0]
	for _, m := range members[1:] {
		if m.StartTime.Before(start) {
			start = m.StartTime
		}
		if m.EndTime.After(end) {
			end = m.EndTime
		}
		// strict comparison keeps the first encountered member on ties
		if m.Duration() > longest.Duration() {
			longest = m
		}
	}

	displayName := members[0].Label
	if len(members) > 1 {
		displayName = fmt.Sprintf("%d events", len(members))
	}

	return Block{
		StartTime:   start,
		EndTime:     end,
		Events:      members,
		Category:    longest.Category,
		DisplayName: displayName,
	}
}

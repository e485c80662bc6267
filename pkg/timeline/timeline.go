package timeline

import (
	"time"

	"github.com/laydays/laydays/pkg/sof"
)

// Block is a maximal run of overlapping or touching events, rendered as a
// single timeline unit. Its span is the union of its members' spans.
type Block struct {
	StartTime   time.Time
	EndTime     time.Time
	Events      []sof.Event
	Category    sof.Category
	DisplayName string
}

// Duration is the length of the block's span, not the sum of member
// durations: overlapping members share time.
func (b Block) Duration() time.Duration {
	return b.EndTime.Sub(b.StartTime)
}

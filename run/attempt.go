package run

import (
	"time"

	"github.com/nictuku/ooosplits/timing"
)

// Attempt is a single recorded try at completing a run, independent of its
// per-segment splits (those live in each Segment's SegmentHistory, keyed by
// this attempt's Index).
type Attempt struct {
	Index     int32
	Time      timing.Time
	Started   *time.Time
	Ended     *time.Time
	PauseTime *timing.Duration
}

// Duration returns Ended-Started when both are known, else falls back to
// Time.Real.
func (a Attempt) Duration() timing.Duration {
	if a.Started != nil && a.Ended != nil {
		return timing.FromStdlib(a.Ended.Sub(*a.Started))
	}
	if a.Time.Real != nil {
		return *a.Time.Real
	}
	return 0
}

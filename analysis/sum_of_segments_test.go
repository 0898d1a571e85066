package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nictuku/ooosplits/run"
	"github.com/nictuku/ooosplits/timing"
)

// Sum of best with a skipped split. Run [A,B,C], two attempts
// that each skip one split: attempt 1 splits A at 5s, skips B, finishes C
// at cumulative 10s; attempt 2 skips A, splits B at cumulative 15s, finishes
// C at cumulative 20s. A skipped split's *own* history entry records no
// time, but the segment that absorbs it (the next one actually split)
// records a duration spanning back to the last real split boundary — so
// attempt 1 contributes a 5s "combined B+C" branch from segment A, and
// attempt 2 contributes a 15s "combined A+B" branch from the start. The
// shortest path threads attempt 1's A (5s) into attempt 1's own combined
// branch (5s more) for a total of 10s, beating both attempts' own totals
// (15s and 20s) and the naive best-segment sum (25s).
func TestCalculateBestWithSkippedSplits(t *testing.T) {
	a := run.NewSegment("A")
	b := run.NewSegment("B")
	c := run.NewSegment("C")

	// Attempt 1 (id 1): A=5s, B skipped, C's own duration carries the
	// skipped B+C span back to A's split (10s - 5s = 5s).
	a.SegmentHistory().Set(1, timing.RealOnly(timing.FromSeconds(5)))
	b.SegmentHistory().Set(1, timing.Time{})
	c.SegmentHistory().Set(1, timing.RealOnly(timing.FromSeconds(5)))

	// Attempt 2 (id 2): A skipped, B's own duration carries the skipped A+B
	// span back to the start (15s - 0s = 15s), C=5s (20s - 15s).
	a.SegmentHistory().Set(2, timing.Time{})
	b.SegmentHistory().Set(2, timing.RealOnly(timing.FromSeconds(15)))
	c.SegmentHistory().Set(2, timing.RealOnly(timing.FromSeconds(5)))

	a.SetBestSegmentTime(timing.RealOnly(timing.FromSeconds(5)))
	b.SetBestSegmentTime(timing.RealOnly(timing.FromSeconds(15)))
	c.SetBestSegmentTime(timing.RealOnly(timing.FromSeconds(5)))

	segs := []*run.Segment{a, b, c}
	predictions := CalculateBest(segs, false, false, timing.RealTime)
	require.Len(t, predictions, 4)

	want := []float64{0, 5, 15, 10}
	for i, w := range want {
		require.NotNilf(t, predictions[i], "predictions[%d]", i)
		assert.Equalf(t, timing.FromSeconds(w), *predictions[i], "predictions[%d]", i)
	}

	// The naive per-segment best-segment-only sum (25s) is strictly worse
	// than the skip-chained shortest path (10s): the solver must consider
	// history branches, not just best_segment_time chaining.
	simple := CalculateBest(segs, true, false, timing.RealTime)
	require.NotNil(t, simple[3])
	assert.Equal(t, timing.FromSeconds(25), *simple[3])
	assert.Less(t, predictions[3].Seconds(), simple[3].Seconds())
}

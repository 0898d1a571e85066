package comparison

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nictuku/ooosplits/run"
	"github.com/nictuku/ooosplits/timing"
)

// buildTwoSegmentRun creates a 2-segment run with three completed attempts,
// recording segment durations (not cumulative times) directly into history,
// matching §4.B's "segment history stores segment-to-segment durations."
//
//	attempt 1: A=3s  B=3s  (total 6s)
//	attempt 2: A=2s  B=2s  (total 4s)
//	attempt 3: A=4s  B=1s  (total 5s)
func buildTwoSegmentRun(t *testing.T) *run.Run {
	t.Helper()
	r := run.New()
	a := run.NewSegment("A")
	b := run.NewSegment("B")

	a.SegmentHistory().Set(1, timing.RealOnly(timing.FromSeconds(3)))
	b.SegmentHistory().Set(1, timing.RealOnly(timing.FromSeconds(3)))

	a.SegmentHistory().Set(2, timing.RealOnly(timing.FromSeconds(2)))
	b.SegmentHistory().Set(2, timing.RealOnly(timing.FromSeconds(2)))

	a.SegmentHistory().Set(3, timing.RealOnly(timing.FromSeconds(4)))
	b.SegmentHistory().Set(3, timing.RealOnly(timing.FromSeconds(1)))

	a.SetPersonalBestSplitTime(timing.RealOnly(timing.FromSeconds(2)))
	b.SetPersonalBestSplitTime(timing.RealOnly(timing.FromSeconds(4)))
	a.SetBestSegmentTime(timing.RealOnly(timing.FromSeconds(2)))
	b.SetBestSegmentTime(timing.RealOnly(timing.FromSeconds(1)))

	r.SetSegments([]*run.Segment{a, b})
	r.AppendAttempt(run.Attempt{Index: 1})
	r.AppendAttempt(run.Attempt{Index: 2})
	r.AppendAttempt(run.Attempt{Index: 3})
	return r
}

func TestBestSegmentsCumulative(t *testing.T) {
	r := buildTwoSegmentRun(t)
	bestSegmentsGenerator{}.Generate(r)

	segs := r.Segments()
	aBest := segs[0].Comparison(run.ComparisonBestSegments).Get(timing.RealTime)
	bBest := segs[1].Comparison(run.ComparisonBestSegments).Get(timing.RealTime)
	require.NotNil(t, aBest)
	require.NotNil(t, bBest)
	assert.Equal(t, 2.0, aBest.Seconds())
	assert.Equal(t, 3.0, bBest.Seconds()) // 2s (best A) + 1s (best B)
}

func TestWorstSegmentsCumulative(t *testing.T) {
	r := buildTwoSegmentRun(t)
	worstSegmentsGenerator{}.Generate(r)

	segs := r.Segments()
	bWorst := segs[1].Comparison(run.ComparisonWorstSegments).Get(timing.RealTime)
	require.NotNil(t, bWorst)
	// Worst considers every transition, including chaining through a slow A
	// into a slow B: 4s (A from attempt 3) + 3s (B from attempt 1) = 7s.
	assert.Equal(t, 7.0, bWorst.Seconds())
}

func TestAverageSegmentsCumulative(t *testing.T) {
	r := buildTwoSegmentRun(t)
	averageSegmentsGenerator{}.Generate(r)

	segs := r.Segments()
	aAvg := segs[0].Comparison(run.ComparisonAverageSegments).Get(timing.RealTime)
	bAvg := segs[1].Comparison(run.ComparisonAverageSegments).Get(timing.RealTime)
	require.NotNil(t, aAvg)
	require.NotNil(t, bAvg)
	assert.InDelta(t, 3.0, aAvg.Seconds(), 1e-9) // (3+2+4)/3
	assert.InDelta(t, 5.0, bAvg.Seconds(), 1e-9) // 3 + (3+2+1)/3
}

func TestMedianSegmentsWeightsRecentMoreHeavily(t *testing.T) {
	r := buildTwoSegmentRun(t)
	medianSegmentsGenerator{}.Generate(r)

	segs := r.Segments()
	aMedian := segs[0].Comparison(run.ComparisonMedianSegments).Get(timing.RealTime)
	require.NotNil(t, aMedian)
	// Most recent attempt (id 3, time 4s) gets weight 1.0, then id 2 (time
	// 2s) gets 0.75, then id 1 (time 3s) gets 0.5625. Sorted by time that's
	// {2s: .75, 3s: .5625, 4s: 1.0}, cumulative {.75, 1.3125, 2.3125}; half
	// of 2.3125 is 1.15625, which lands in the 3s bucket.
	assert.Equal(t, 3.0, aMedian.Seconds())
}

func TestLatestRunUsesLastLoggedAttempt(t *testing.T) {
	r := buildTwoSegmentRun(t)
	latestRunGenerator{}.Generate(r)

	segs := r.Segments()
	aLatest := segs[0].Comparison(run.ComparisonLatestRun).Get(timing.RealTime)
	bLatest := segs[1].Comparison(run.ComparisonLatestRun).Get(timing.RealTime)
	require.NotNil(t, aLatest)
	require.NotNil(t, bLatest)
	assert.Equal(t, 4.0, aLatest.Seconds())
	assert.Equal(t, 5.0, bLatest.Seconds()) // 4 + 1
}

func TestBestSplitTimesIndependentPerBoundary(t *testing.T) {
	r := buildTwoSegmentRun(t)
	bestSplitTimesGenerator{}.Generate(r)

	segs := r.Segments()
	aBest := segs[0].Comparison(run.ComparisonBestSplitTimes).Get(timing.RealTime)
	bBest := segs[1].Comparison(run.ComparisonBestSplitTimes).Get(timing.RealTime)
	require.NotNil(t, aBest)
	require.NotNil(t, bBest)
	assert.Equal(t, 2.0, aBest.Seconds())  // attempt 2's split at A
	assert.Equal(t, 4.0, bBest.Seconds())  // attempt 2's cumulative split at B (2+2)
}

func TestBalancedPBMatchesPBTotalExactly(t *testing.T) {
	r := buildTwoSegmentRun(t)
	balancedPBGenerator{}.Generate(r)

	segs := r.Segments()
	bBalanced := segs[1].Comparison(run.ComparisonBalancedPB).Get(timing.RealTime)
	require.NotNil(t, bBalanced)
	// The balanced comparison's final split must reproduce the PB's own
	// final cumulative time exactly, by construction of the percentile
	// search target.
	assert.InDelta(t, 4.0, bBalanced.Seconds(), 0.05)
}

func TestGenerateAllPopulatesEveryBuiltIn(t *testing.T) {
	r := buildTwoSegmentRun(t)
	GenerateAll(r)

	for _, seg := range r.Segments() {
		for _, name := range []string{
			run.ComparisonPersonalBest,
			run.ComparisonBestSegments,
			run.ComparisonWorstSegments,
			run.ComparisonAverageSegments,
			run.ComparisonMedianSegments,
			run.ComparisonLatestRun,
			run.ComparisonBestSplitTimes,
			run.ComparisonBalancedPB,
		} {
			assert.NotNil(t, seg.Comparison(name).Get(timing.RealTime), "comparison %q unset", name)
		}
	}
}

func TestSuggestGoalTimeNoPBReturnsFalse(t *testing.T) {
	r := run.New()
	seg := run.NewSegment("A")
	r.SetSegments([]*run.Segment{seg})
	_, ok := SuggestGoalTime(r, timing.RealTime)
	assert.False(t, ok)
}

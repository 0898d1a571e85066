package run

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nictuku/ooosplits/timing"
)

// Segment history reattach: Run with 2 segments [A,B], two attempts with
// final times (3s,6s) and (2s,4s). Pop the last attempt from the log but
// keep history. After fix-up: segment A history min/max = (0, 1); segment B
// history min/max = (0, 1) (the orphan was moved from id 2 to id 0).
func TestReattachOrphanedHistoryScenario(t *testing.T) {
	r := New()
	a := NewSegment("A")
	b := NewSegment("B")
	a.SegmentHistory().Set(1, timing.RealOnly(timing.FromSeconds(3)))
	b.SegmentHistory().Set(1, timing.RealOnly(timing.FromSeconds(6)))
	a.SegmentHistory().Set(2, timing.RealOnly(timing.FromSeconds(2)))
	b.SegmentHistory().Set(2, timing.RealOnly(timing.FromSeconds(4)))
	r.SetSegments([]*Segment{a, b})
	r.AppendAttempt(Attempt{Index: 1})
	// Attempt 2 was popped from the log, but its history entries remain.

	r.FixSplits()

	for _, seg := range []*Segment{a, b} {
		min, ok := seg.SegmentHistory().TryMinIndex()
		require.True(t, ok)
		max, ok := seg.SegmentHistory().TryMaxIndex()
		require.True(t, ok)
		assert.Equal(t, int32(0), min)
		assert.Equal(t, int32(1), max)
	}

	aTime, ok := a.SegmentHistory().Get(0)
	require.True(t, ok)
	assert.Equal(t, timing.FromSeconds(2), *aTime.Real)
	bTime, ok := b.SegmentHistory().Get(0)
	require.True(t, ok)
	assert.Equal(t, timing.FromSeconds(4), *bTime.Real)
}

// New best segment detection: Run [A,B]. Insert PB split A=1:00, B=3:00.
// Then insert a segment between them with PB split 2:30, then 2:00. Final
// segments: PB = 1:00, 2:00, 3:00; best-segments = 1:00, 1:00, 0:30. None of
// this touches SegmentHistory: the best-segment times fall out of the PB
// edits alone, the same way a plain split-time edit does with no Timer
// attempt ever run.
func TestClampBestSegmentsAfterInsertingMiddleSegment(t *testing.T) {
	r := New()
	a := NewSegment("A")
	b := NewSegment("B")
	r.SetSegments([]*Segment{a, b})

	a.SetPersonalBestSplitTime(timing.RealOnly(timing.FromSeconds(60)))
	r.FixSplits()
	b.SetPersonalBestSplitTime(timing.RealOnly(timing.FromSeconds(180)))
	r.FixSplits()

	// First insertion attempt: 2:30 (150s).
	mid := NewSegment("Mid")
	r.SetSegments([]*Segment{a, mid, b})
	mid.SetPersonalBestSplitTime(timing.RealOnly(timing.FromSeconds(150)))
	r.FixSplits()

	// Then corrected to 2:00 (120s).
	mid.SetPersonalBestSplitTime(timing.RealOnly(timing.FromSeconds(120)))
	r.FixSplits()

	assert.Equal(t, timing.FromSeconds(60), *a.PersonalBestSplitTime().Real)
	assert.Equal(t, timing.FromSeconds(120), *mid.PersonalBestSplitTime().Real)
	assert.Equal(t, timing.FromSeconds(180), *b.PersonalBestSplitTime().Real)

	assert.Equal(t, timing.FromSeconds(60), *a.BestSegmentTime().Real)
	assert.Equal(t, timing.FromSeconds(60), *mid.BestSegmentTime().Real)
	assert.Equal(t, timing.FromSeconds(30), *b.BestSegmentTime().Real)
}

func TestCheckPersonalBestMonotonicDetectsRegression(t *testing.T) {
	r := New()
	a := NewSegment("A")
	b := NewSegment("B")
	a.SetPersonalBestSplitTime(timing.RealOnly(timing.FromSeconds(30)))
	b.SetPersonalBestSplitTime(timing.RealOnly(timing.FromSeconds(20)))
	r.SetSegments([]*Segment{a, b})

	idx, ok := r.CheckPersonalBestMonotonic(timing.RealTime)
	assert.False(t, ok)
	assert.Equal(t, 1, idx)
}

func TestEnsureComparisonNamesAddsMissingKeysToEverySegment(t *testing.T) {
	r := New()
	a := NewSegment("A")
	b := NewSegment("B")
	r.SetSegments([]*Segment{a, b})
	require.NoError(t, r.AddComparisonName("My Comparison"))

	r.FixSplits()

	for _, seg := range []*Segment{a, b} {
		assert.True(t, seg.Comparisons().Has("My Comparison"))
		assert.True(t, seg.Comparisons().Has(ComparisonPersonalBest))
	}
}

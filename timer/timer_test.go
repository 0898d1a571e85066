package timer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nictuku/ooosplits/run"
	"github.com/nictuku/ooosplits/timing"
)

func newTestRun() *run.Run {
	r := run.New()
	r.SetSegments([]*run.Segment{run.NewSegment("A"), run.NewSegment("B")})
	return r
}

// fakeClock lets tests advance time deterministically instead of sleeping.
type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestTimer() (*Timer, *fakeClock) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	tm := New(newTestRun())
	tm.nowFunc = clock.now
	return tm, clock
}

func TestStartSplitSplitEndsAttempt(t *testing.T) {
	tm, clock := newTestTimer()
	assert.Equal(t, NotRunning, tm.Phase())

	tm.Start()
	assert.Equal(t, Running, tm.Phase())
	assert.EqualValues(t, 1, tm.Run().AttemptCount)

	clock.advance(3 * time.Second)
	tm.Split()
	assert.Equal(t, Running, tm.Phase())
	assert.Equal(t, 1, tm.CurrentSplitIndex())

	clock.advance(2 * time.Second)
	tm.Split()
	assert.Equal(t, Ended, tm.Phase())
}

func TestResetWithSaveCommitsHistoryAndPB(t *testing.T) {
	tm, clock := newTestTimer()
	tm.Start()
	clock.advance(3 * time.Second)
	tm.Split()
	clock.advance(2 * time.Second)
	tm.Split()

	tm.Reset(true)
	assert.Equal(t, NotRunning, tm.Phase())

	segs := tm.Run().Segments()
	aDur, ok := segs[0].SegmentHistory().Get(1)
	require.True(t, ok)
	assert.Equal(t, 3.0, aDur.Get(timing.RealTime).Seconds())

	bDur, ok := segs[1].SegmentHistory().Get(1)
	require.True(t, ok)
	assert.Equal(t, 2.0, bDur.Get(timing.RealTime).Seconds())

	aPB := segs[0].PersonalBestSplitTime().Get(timing.RealTime)
	bPB := segs[1].PersonalBestSplitTime().Get(timing.RealTime)
	require.NotNil(t, aPB)
	require.NotNil(t, bPB)
	assert.Equal(t, 3.0, aPB.Seconds())
	assert.Equal(t, 5.0, bPB.Seconds())

	require.Len(t, tm.Run().Attempts(), 1)
	assert.EqualValues(t, 1, tm.Run().Attempts()[0].Index)
}

func TestResetWithoutSaveDiscardsAttempt(t *testing.T) {
	tm, clock := newTestTimer()
	tm.Start()
	clock.advance(time.Second)
	tm.Split()

	tm.Reset(false)
	assert.Equal(t, NotRunning, tm.Phase())
	assert.Empty(t, tm.Run().Attempts())
	_, ok := tm.Run().Segments()[0].SegmentHistory().TryMinIndex()
	assert.False(t, ok)
}

func TestUndoSplitAtZeroAbandonsAttempt(t *testing.T) {
	tm, _ := newTestTimer()
	tm.Start()
	tm.UndoSplit()
	assert.Equal(t, NotRunning, tm.Phase())
}

func TestUndoSplitClearsRecordedSplit(t *testing.T) {
	tm, clock := newTestTimer()
	tm.Start()
	clock.advance(time.Second)
	tm.Split()
	require.Equal(t, 1, tm.CurrentSplitIndex())

	tm.UndoSplit()
	assert.Equal(t, Running, tm.Phase())
	assert.Equal(t, 0, tm.CurrentSplitIndex())
	assert.True(t, tm.Run().Segments()[0].SplitTime().IsZeroValue())
}

func TestPauseFreezesRealTime(t *testing.T) {
	tm, clock := newTestTimer()
	tm.Start()
	clock.advance(5 * time.Second)
	tm.Pause()

	before := tm.Now().Get(timing.RealTime)
	require.NotNil(t, before)

	clock.advance(10 * time.Second) // should have no effect while paused
	after := tm.Now().Get(timing.RealTime)
	require.NotNil(t, after)
	assert.Equal(t, *before, *after)

	tm.Resume()
	clock.advance(time.Second)
	resumed := tm.Now().Get(timing.RealTime)
	require.NotNil(t, resumed)
	assert.InDelta(t, before.Seconds()+1, resumed.Seconds(), 1e-9)
}

func TestSkipSplitWritesEmptyTime(t *testing.T) {
	tm, clock := newTestTimer()
	tm.Start()
	clock.advance(time.Second)
	tm.SkipSplit()
	assert.Equal(t, 1, tm.CurrentSplitIndex())
	assert.True(t, tm.Run().Segments()[0].SplitTime().IsZeroValue())
}

func TestSwitchComparisonWraps(t *testing.T) {
	tm, _ := newTestTimer()
	first := tm.CurrentComparison()
	tm.SwitchToPreviousComparison()
	assert.NotEqual(t, first, tm.CurrentComparison())
	tm.SwitchToNextComparison()
	assert.Equal(t, first, tm.CurrentComparison())
}

func TestSharedTimerSnapshotReflectsWrites(t *testing.T) {
	tm, _ := newTestTimer()
	shared := NewShared(tm)
	shared.Start()
	snap := shared.Snapshot()
	assert.Equal(t, Running, snap.Phase)
}

package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nictuku/ooosplits/run"
	"github.com/nictuku/ooosplits/timing"
)

func TestInsertAndRemoveSegment(t *testing.T) {
	e := New(run.New())
	e.InsertSegmentAbove(0, "A")
	e.InsertSegmentBelow(0, "B")
	r, err := e.Close()
	require.NoError(t, err)
	require.Len(t, r.Segments(), 2)
	assert.Equal(t, "A", r.Segments()[0].Name())
	assert.Equal(t, "B", r.Segments()[1].Name())

	e.SelectSegment(0, false)
	e.RemoveSelectedSegments()
	r, err = e.Close()
	require.NoError(t, err)
	require.Len(t, r.Segments(), 1)
	assert.Equal(t, "B", r.Segments()[0].Name())
}

func TestCloseEmptyRunErrors(t *testing.T) {
	e := New(run.New())
	_, err := e.Close()
	assert.ErrorIs(t, err, run.ErrEmptyRun)
}

func TestSetSplitTimeParsesAndWarnsOnRegression(t *testing.T) {
	e := New(run.New())
	e.InsertSegmentAbove(0, "A")
	e.InsertSegmentBelow(0, "B")

	_, err := e.SetSplitTime(0, timing.RealTime, "10")
	require.NoError(t, err)
	warnings, err := e.SetSplitTime(1, timing.RealTime, "5")
	require.NoError(t, err)
	assert.NotEmpty(t, warnings)

	r, err := e.Close()
	require.NoError(t, err)
	v := r.Segments()[1].PersonalBestSplitTime().Get(timing.RealTime)
	require.NotNil(t, v)
	assert.Equal(t, 5.0, v.Seconds())
}

func TestSetSplitTimeInvalidText(t *testing.T) {
	e := New(run.New())
	e.InsertSegmentAbove(0, "A")
	_, err := e.SetSplitTime(0, timing.RealTime, "not-a-time")
	assert.Error(t, err)
}

func TestSetSegmentTimeShiftsLaterSplitsByDelta(t *testing.T) {
	e := New(run.New())
	e.InsertSegmentAbove(0, "A")
	e.InsertSegmentBelow(0, "B")
	e.InsertSegmentBelow(1, "C")

	e.SetSplitTime(0, timing.RealTime, "3")
	e.SetSplitTime(1, timing.RealTime, "6")
	e.SetSplitTime(2, timing.RealTime, "10")

	_, err := e.SetSegmentTime(1, timing.RealTime, "5") // was 3s (6-3), now 5s
	require.NoError(t, err)

	r, err := e.Close()
	require.NoError(t, err)
	segs := r.Segments()
	bSplit := segs[1].PersonalBestSplitTime().Get(timing.RealTime)
	cSplit := segs[2].PersonalBestSplitTime().Get(timing.RealTime)
	require.NotNil(t, bSplit)
	require.NotNil(t, cSplit)
	assert.Equal(t, 8.0, bSplit.Seconds())  // 3 + 5
	assert.Equal(t, 12.0, cSplit.Seconds()) // shifted by the same +2s delta
}

func TestAddDuplicateComparisonNameErrors(t *testing.T) {
	e := New(run.New())
	_, err := e.AddComparison(run.ComparisonPersonalBest)
	assert.ErrorIs(t, err, run.ErrDuplicateName)
}

func TestAddRaceNameErrors(t *testing.T) {
	e := New(run.New())
	_, err := e.AddComparison("[Race] Friend")
	assert.ErrorIs(t, err, run.ErrNameStartsWithRace)
}

func TestNewBestSegmentEmergesFromSplitTimeEditsAlone(t *testing.T) {
	e := New(run.New())
	e.InsertSegmentAbove(0, "A")
	e.InsertSegmentBelow(0, "B")

	_, err := e.SetSplitTime(0, timing.RealTime, "1:00")
	require.NoError(t, err)
	_, err = e.SetSplitTime(1, timing.RealTime, "3:00")
	require.NoError(t, err)

	e.InsertSegmentAbove(1, "Mid")
	_, err = e.SetSplitTime(1, timing.RealTime, "2:30")
	require.NoError(t, err)
	_, err = e.SetSplitTime(1, timing.RealTime, "2:00")
	require.NoError(t, err)

	r, err := e.Close()
	require.NoError(t, err)
	segs := r.Segments()
	require.Len(t, segs, 3)

	assert.Equal(t, 60.0, segs[0].PersonalBestSplitTime().Get(timing.RealTime).Seconds())
	assert.Equal(t, 60.0, segs[0].BestSegmentTime().Get(timing.RealTime).Seconds())

	assert.Equal(t, 120.0, segs[1].PersonalBestSplitTime().Get(timing.RealTime).Seconds())
	assert.Equal(t, 60.0, segs[1].BestSegmentTime().Get(timing.RealTime).Seconds())

	assert.Equal(t, 180.0, segs[2].PersonalBestSplitTime().Get(timing.RealTime).Seconds())
	assert.Equal(t, 30.0, segs[2].BestSegmentTime().Get(timing.RealTime).Seconds())
}

func TestMoveSegmentsUp(t *testing.T) {
	e := New(run.New())
	e.InsertSegmentAbove(0, "A")
	e.InsertSegmentBelow(0, "B")
	e.InsertSegmentBelow(1, "C")

	e.SelectSegment(2, false)
	e.MoveSegmentsUp()
	r, _ := e.Close()
	names := []string{r.Segments()[0].Name(), r.Segments()[1].Name(), r.Segments()[2].Name()}
	assert.Equal(t, []string{"A", "C", "B"}, names)
}

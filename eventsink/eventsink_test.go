package eventsink

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nictuku/ooosplits/editor"
	"github.com/nictuku/ooosplits/run"
	"github.com/nictuku/ooosplits/timer"
)

func buildRun(t *testing.T) *run.Run {
	e := editor.New(run.New())
	e.InsertSegmentAbove(0, "A")
	e.InsertSegmentBelow(0, "B")
	r, err := e.Close()
	require.NoError(t, err)
	return r
}

func TestTimerSinkForwardsStartAndSplit(t *testing.T) {
	shared := timer.NewShared(timer.New(buildRun(t)))
	sink := NewTimerSink(shared)

	sink.Start()
	assert.Equal(t, timer.Running, shared.Snapshot().Phase)

	sink.Split()
	assert.Equal(t, 1, shared.Snapshot().CurrentSplitIndex)

	sink.Split()
	assert.Equal(t, timer.Ended, shared.Snapshot().Phase)
}

func TestValidatingSinkAsksBeforeDiscardingProgress(t *testing.T) {
	shared := timer.NewShared(timer.New(buildRun(t)))
	inner := NewTimerSink(shared)

	asked := false
	declining := NewValidatingSink(inner, shared, func(string) bool {
		asked = true
		return false
	})

	shared.Start()
	shared.Split() // one split recorded, attempt still running

	declining.Reset(false)
	assert.True(t, asked)
	assert.Equal(t, timer.Running, shared.Snapshot().Phase, "decline should leave the attempt running")
}

func TestValidatingSinkProceedsWhenConfirmed(t *testing.T) {
	shared := timer.NewShared(timer.New(buildRun(t)))
	inner := NewTimerSink(shared)
	accepting := NewValidatingSink(inner, shared, func(string) bool { return true })

	shared.Start()
	shared.Split()

	accepting.Reset(false)
	assert.Equal(t, timer.NotRunning, shared.Snapshot().Phase)
}

func TestValidatingSinkSkipsPromptWithNoProgress(t *testing.T) {
	shared := timer.NewShared(timer.New(buildRun(t)))
	inner := NewTimerSink(shared)

	asked := false
	sink := NewValidatingSink(inner, shared, func(string) bool {
		asked = true
		return true
	})

	shared.Start()
	sink.Reset(false)

	assert.False(t, asked, "no split recorded yet, nothing to lose")
	assert.Equal(t, timer.NotRunning, shared.Snapshot().Phase)
}

func TestValidatingSinkSkipsPromptWhenSaving(t *testing.T) {
	shared := timer.NewShared(timer.New(buildRun(t)))
	inner := NewTimerSink(shared)

	asked := false
	sink := NewValidatingSink(inner, shared, func(string) bool {
		asked = true
		return true
	})

	shared.Start()
	shared.Split()
	sink.Reset(true)

	assert.False(t, asked, "saving never discards, so no confirmation is needed")
	assert.Equal(t, timer.NotRunning, shared.Snapshot().Phase)
}

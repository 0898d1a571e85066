// Package timer implements the Timer state machine: the transitions a
// running attempt goes through, the dual real/game clock, and the
// "commit attempt" logic that folds a finished attempt back into the Run's
// history, Personal Best, and comparisons.
package timer

import (
	"time"

	"github.com/nictuku/ooosplits/comparison"
	"github.com/nictuku/ooosplits/run"
	"github.com/nictuku/ooosplits/timing"
)

// Timer drives a single Run through the phases NotRunning -> Running ->
// (Paused <-> Running) -> Ended -> NotRunning. It isn't safe for
// concurrent use directly; wrap it in a SharedTimer for that.
type Timer struct {
	run               *run.Run
	phase             Phase
	currentSplitIndex int

	attemptStarted time.Time
	attemptEnded   time.Time

	pausedAt         time.Time
	accumulatedPause timing.Duration

	gameTimeInitialized bool
	gameTimePaused      bool
	gameTimeValue       timing.Duration

	comparisonNames []string
	comparisonIndex int

	// nowFunc stands in for time.Now, overridable in tests so attempt
	// durations are deterministic.
	nowFunc func() time.Time
}

// New creates a Timer over r, starting in NotRunning.
func New(r *run.Run) *Timer {
	t := &Timer{run: r, nowFunc: time.Now}
	t.rebuildComparisonNames()
	return t
}

// Run returns the Run this Timer drives.
func (t *Timer) Run() *run.Run { return t.run }

// Phase returns the Timer's current phase.
func (t *Timer) Phase() Phase { return t.phase }

// CurrentSplitIndex returns the index of the segment about to be split.
func (t *Timer) CurrentSplitIndex() int { return t.currentSplitIndex }

// Start begins a new attempt. No-op unless NotRunning.
func (t *Timer) Start() {
	if t.phase != NotRunning {
		return
	}
	t.attemptStarted = t.nowFunc()
	t.attemptEnded = time.Time{}
	t.phase = Running
	t.currentSplitIndex = 0
	t.accumulatedPause = 0
	t.gameTimeInitialized = false
	t.gameTimePaused = false
	t.run.AttemptCount++
	for _, seg := range t.run.Segments() {
		seg.SetSplitTime(timing.Time{})
	}
}

// Split records the current split time and advances to the next segment.
// Splitting the last segment ends the attempt. No-op unless Running.
func (t *Timer) Split() {
	if t.phase != Running {
		return
	}
	segs := t.run.Segments()
	if t.currentSplitIndex >= len(segs) {
		return
	}
	segs[t.currentSplitIndex].SetSplitTime(t.Now())
	t.currentSplitIndex++
	if t.currentSplitIndex >= len(segs) {
		t.attemptEnded = t.nowFunc()
		t.phase = Ended
	}
}

// SkipSplit records an empty (skipped) split for the current segment and
// advances. No-op unless Running and not on the last segment.
func (t *Timer) SkipSplit() {
	if t.phase != Running {
		return
	}
	segs := t.run.Segments()
	if t.currentSplitIndex >= len(segs)-1 {
		return
	}
	segs[t.currentSplitIndex].SetSplitTime(timing.Time{})
	t.currentSplitIndex++
}

// UndoSplit reverts the most recent split. If the attempt hadn't recorded
// any split yet, the attempt is abandoned back to NotRunning. No-op unless
// Running.
func (t *Timer) UndoSplit() {
	if t.phase != Running {
		return
	}
	if t.currentSplitIndex == 0 {
		t.phase = NotRunning
		return
	}
	t.currentSplitIndex--
	t.run.Segments()[t.currentSplitIndex].SetSplitTime(timing.Time{})
}

// Pause freezes the real-time clock. No-op unless Running.
func (t *Timer) Pause() {
	if t.phase != Running {
		return
	}
	t.pausedAt = t.nowFunc()
	t.phase = Paused
}

// Resume unfreezes the real-time clock. No-op unless Paused.
func (t *Timer) Resume() {
	if t.phase != Paused {
		return
	}
	t.accumulatedPause += timing.FromStdlib(t.nowFunc().Sub(t.pausedAt))
	t.phase = Running
}

// TogglePauseOrStart starts the timer if it's NotRunning, otherwise toggles
// between Running and Paused.
func (t *Timer) TogglePauseOrStart() {
	switch t.phase {
	case NotRunning:
		t.Start()
	case Running:
		t.Pause()
	case Paused:
		t.Resume()
	}
}

// Reset ends the current attempt, committing it to history, Personal Best,
// and the comparisons if saveAttempt is true and the attempt recorded any
// split. No-op if already NotRunning.
func (t *Timer) Reset(saveAttempt bool) {
	if t.phase == NotRunning {
		return
	}
	if saveAttempt && t.hasAnySplit() {
		t.commitAttempt()
	}
	for _, seg := range t.run.Segments() {
		seg.SetSplitTime(timing.Time{})
	}
	t.phase = NotRunning
	t.currentSplitIndex = 0
	t.gameTimeInitialized = false
}

func (t *Timer) hasAnySplit() bool {
	if t.phase == Ended {
		return true
	}
	for _, seg := range t.run.Segments() {
		if !seg.SplitTime().IsZeroValue() {
			return true
		}
	}
	return false
}

// commitAttempt folds a finished attempt into the Run's history, PB, and
// comparisons when a reset is asked to save it.
func (t *Timer) commitAttempt() {
	r := t.run
	segs := r.Segments()
	if len(segs) == 0 {
		return
	}

	newID := nextAttemptID(segs)
	// lastReal/lastGame track the most recent *defined* cumulative split per
	// method, carried forward across any segment whose split was skipped, so
	// a later segment's recorded duration spans back to the last real split
	// boundary rather than collapsing to None the instant one split is
	// missing: the combined-segment branch a skip creates must still be
	// visible to the Sum-of-Segments solver.
	var lastReal, lastGame timing.Duration
	for _, seg := range segs {
		cur := seg.SplitTime()
		var dur timing.Time
		if cur.Real != nil {
			d := *cur.Real - lastReal
			dur.Real = &d
			lastReal = *cur.Real
		}
		if cur.Game != nil {
			d := *cur.Game - lastGame
			dur.Game = &d
			lastGame = *cur.Game
		}
		seg.SegmentHistory().Set(newID, dur)
	}

	for _, method := range []timing.TimingMethod{timing.RealTime, timing.GameTime} {
		last := segs[len(segs)-1].SplitTime().Get(method)
		if last == nil {
			continue
		}
		existing := segs[len(segs)-1].PersonalBestSplitTime().Get(method)
		if existing != nil && *existing <= *last {
			continue
		}
		for _, seg := range segs {
			v := seg.SplitTime().Get(method)
			seg.SetPersonalBestSplitTime(seg.PersonalBestSplitTime().With(method, v))
		}
	}

	started := t.attemptStarted
	ended := t.attemptEnded
	if ended.IsZero() {
		ended = t.nowFunc()
	}
	pause := t.accumulatedPause
	r.AppendAttempt(run.Attempt{
		Index:     newID,
		Time:      segs[len(segs)-1].SplitTime(),
		Started:   &started,
		Ended:     &ended,
		PauseTime: &pause,
	})

	r.FixSplits()

	comparison.GenerateAll(r)
	t.rebuildComparisonNames()
}

func nextAttemptID(segs []*run.Segment) int32 {
	var max int32
	for _, seg := range segs {
		if m, ok := seg.SegmentHistory().TryMaxIndex(); ok && m > max {
			max = m
		}
	}
	return max + 1
}

// Now returns the attempt's elapsed time for both timing methods, per spec
// §4.C: real time is wall-clock elapsed since the attempt started, adjusted
// by the Run's offset and minus accumulated pause time; game time is
// whatever was last set via SetGameTime/InitializeGameTime, or unknown if
// neither has been called this attempt.
func (t *Timer) Now() timing.Time {
	var real *timing.Duration
	switch t.phase {
	case Running:
		r := timing.FromStdlib(t.nowFunc().Sub(t.attemptStarted)) - t.accumulatedPause + t.run.Offset
		real = &r
	case Paused:
		r := timing.FromStdlib(t.pausedAt.Sub(t.attemptStarted)) - t.accumulatedPause + t.run.Offset
		real = &r
	case Ended:
		r := timing.FromStdlib(t.attemptEnded.Sub(t.attemptStarted)) - t.accumulatedPause + t.run.Offset
		real = &r
	}

	var game *timing.Duration
	if t.gameTimeInitialized {
		g := t.gameTimeValue
		game = &g
	}

	return timing.Time{Real: real, Game: game}
}

// SetGameTime records an externally driven (e.g. auto-splitter supplied)
// game-time value. Ignored while game time is paused.
func (t *Timer) SetGameTime(d timing.Duration) {
	if t.gameTimePaused {
		return
	}
	t.gameTimeValue = d
	t.gameTimeInitialized = true
}

// InitializeGameTime establishes a zeroed game-time baseline for this
// attempt, for runs that track game time but haven't received an explicit
// value yet.
func (t *Timer) InitializeGameTime() {
	t.gameTimeValue = 0
	t.gameTimeInitialized = true
}

// PauseGameTime stops SetGameTime from taking effect, e.g. while a loading
// screen is known to be in progress and the auto-splitter keeps emitting a
// stale value.
func (t *Timer) PauseGameTime() { t.gameTimePaused = true }

// ResumeGameTime re-enables SetGameTime.
func (t *Timer) ResumeGameTime() { t.gameTimePaused = false }

// SetVariable records a custom variable on the Run's metadata, the
// mechanism the auto-splitter uses to report game state that isn't one of
// the Timer's own commands.
func (t *Timer) SetVariable(name, value string) {
	if t.run.Metadata.CustomVariables == nil {
		t.run.Metadata.CustomVariables = make(map[string]run.CustomVariable)
	}
	existing := t.run.Metadata.CustomVariables[name]
	existing.Value = value
	t.run.Metadata.CustomVariables[name] = existing
}

func (t *Timer) rebuildComparisonNames() {
	names := append([]string{}, run.BuiltInComparisons...)
	names = append(names, t.run.ComparisonNames()...)
	t.comparisonNames = names
	if t.comparisonIndex >= len(names) {
		t.comparisonIndex = 0
	}
}

// CurrentComparison returns the name of the comparison currently selected
// for display.
func (t *Timer) CurrentComparison() string {
	t.rebuildComparisonNames()
	if len(t.comparisonNames) == 0 {
		return run.ComparisonPersonalBest
	}
	return t.comparisonNames[t.comparisonIndex]
}

// SwitchToNextComparison rotates the current comparison forward.
func (t *Timer) SwitchToNextComparison() {
	t.rebuildComparisonNames()
	if len(t.comparisonNames) == 0 {
		return
	}
	t.comparisonIndex = (t.comparisonIndex + 1) % len(t.comparisonNames)
}

// SwitchToPreviousComparison rotates the current comparison backward.
func (t *Timer) SwitchToPreviousComparison() {
	t.rebuildComparisonNames()
	if len(t.comparisonNames) == 0 {
		return
	}
	t.comparisonIndex = (t.comparisonIndex - 1 + len(t.comparisonNames)) % len(t.comparisonNames)
}

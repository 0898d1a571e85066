// Package editor implements the Editor: a value-typed session that owns a
// Run and exposes every mutation a split-file editing UI needs — field
// setters, segment insert/remove/move, comparison management, and time
// setters with parsing — running the invariant fix-up pipeline after each
// one so the Run it hands back is never left in an inconsistent state.
package editor

import (
	"fmt"

	"github.com/nictuku/ooosplits/comparison"
	"github.com/nictuku/ooosplits/run"
	"github.com/nictuku/ooosplits/timing"
)

// Warning is a non-fatal problem surfaced by the fix-up pipeline — an edit
// that reaches the pipeline is kept, but some edits (a PB split time that
// regresses relative to the previous segment) are worth flagging. Edits
// rejected up front (unparsable time text, an invalid comparison name)
// return an error instead.
type Warning struct {
	Message string
}

// Editor owns a Run for the duration of an editing session. It is not safe
// for concurrent use; a host serializes edits through a single Editor and
// calls Close to get the Run back out.
type Editor struct {
	r        *run.Run
	selected map[int]bool
}

// New starts an editing session over r. Pass run.New() to build a fresh
// run from scratch.
func New(r *run.Run) *Editor {
	return &Editor{r: r, selected: make(map[int]bool)}
}

// Close returns the edited Run, or ErrEmptyRun if it has no segments (a Run
// cannot be used by a Timer with zero segments).
func (e *Editor) Close() (*run.Run, error) {
	if len(e.r.Segments()) == 0 {
		return nil, run.ErrEmptyRun
	}
	return e.r, nil
}

// SetGameName sets the run's game name.
func (e *Editor) SetGameName(name string) []Warning {
	e.r.GameName = name
	return e.fixUp()
}

// SetCategoryName sets the run's category name.
func (e *Editor) SetCategoryName(name string) []Warning {
	e.r.CategoryName = name
	return e.fixUp()
}

// SetOffset sets the run's global start offset.
func (e *Editor) SetOffset(d timing.Duration) []Warning {
	e.r.Offset = d
	return e.fixUp()
}

// SegmentDuration returns segment i's duration for method, derived from
// consecutive PB split times (None propagates, matching the Sub on
// timing.Time), for display purposes — the data model itself only stores
// cumulative PB split times, never segment durations, for the PB.
func (e *Editor) SegmentDuration(i int, method timing.TimingMethod) *timing.Duration {
	segs := e.r.Segments()
	if i < 0 || i >= len(segs) {
		return nil
	}
	prev := timing.Both(0)
	if i > 0 {
		prev = segs[i-1].PersonalBestSplitTime()
	}
	return segs[i].PersonalBestSplitTime().Sub(prev).Get(method)
}

// fixUp runs the invariant fix-up pipeline — monotonicity check, segment
// fix-up, comparison regeneration, and Run ID invalidation — after every
// mutating operation, returning any monotonicity warnings it found along
// the way.
func (e *Editor) fixUp() []Warning {
	var warnings []Warning
	for _, method := range []timing.TimingMethod{timing.RealTime, timing.GameTime} {
		if idx, ok := e.r.CheckPersonalBestMonotonic(method); !ok {
			warnings = append(warnings, Warning{Message: monotonicWarning(idx, method)})
		}
	}
	e.r.FixSplits()
	comparison.GenerateAll(e.r)
	e.r.ClearRunID()
	return warnings
}

func monotonicWarning(segmentIndex int, method timing.TimingMethod) string {
	return fmt.Sprintf("%s: personal best split time at segment %d is earlier than the previous segment's", method, segmentIndex)
}

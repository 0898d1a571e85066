// Package run implements the Timer's data model: Segments, their per-attempt
// history, the attempt log, and the comparisons map, plus the fix-up pass
// that restores its invariants after any edit.
package run

import (
	"strings"

	"github.com/google/uuid"

	"github.com/nictuku/ooosplits/timing"
)

// CustomVariable is a user-defined metadata value, optionally "permanent"
// (preserved across edits that would otherwise clear transient metadata).
type CustomVariable struct {
	Value     string
	Permanent bool
}

// Metadata holds identity and provenance information about a Run that isn't
// itself timing data.
type Metadata struct {
	Platform        string
	Region          string
	EmulatorUsed    bool
	SpeedrunComVars map[string]string
	CustomVariables map[string]CustomVariable
}

// Run is the complete data model for a category: its segments, the full
// attempt log, and bookkeeping metadata. Segments are created and removed
// only through an Editor (package editor); the Timer only ever mutates
// per-segment history entries and PB/best-segment fields on reset.
type Run struct {
	GameName     string
	CategoryName string
	AttemptCount int32
	// Offset is the global start delay; it can be negative (the timer
	// starts already counting up from behind zero).
	Offset timing.Duration

	GameIcon Icon
	Metadata Metadata

	// RunID is invalidated (cleared) by invariant I7 whenever identity or
	// the final split changes.
	RunID string

	segments        []*Segment
	attempts        []Attempt
	comparisonNames []string // custom comparisons, distinct from per-segment map keys

	// LinkedFile is the path this run was loaded from, if any; used only by
	// format-specific parsers to resolve sibling icon files.
	LinkedFile string
}

// New creates an empty Run with no segments. The Editor enforces that a Run
// cannot be closed with zero segments (ErrEmptyRun); the bare data model
// tolerates it.
func New() *Run {
	return &Run{
		Metadata: Metadata{
			SpeedrunComVars: make(map[string]string),
			CustomVariables: make(map[string]CustomVariable),
		},
	}
}

// Segments returns the run's segments in order.
func (r *Run) Segments() []*Segment { return r.segments }

// SetSegments replaces the run's segment list wholesale. Used by the Editor
// and by parsers constructing a freshly-loaded Run.
func (r *Run) SetSegments(segs []*Segment) { r.segments = segs }

// Attempts returns the full attempt log, in the order attempts were
// recorded.
func (r *Run) Attempts() []Attempt { return r.attempts }

// AppendAttempt adds a to the attempt log.
func (r *Run) AppendAttempt(a Attempt) { r.attempts = append(r.attempts, a) }

// SetAttempts replaces the attempt log wholesale (used when loading a parsed
// run).
func (r *Run) SetAttempts(attempts []Attempt) { r.attempts = attempts }

// ComparisonNames returns the run's custom comparison names (distinct from
// the always-present built-in names every segment's comparison map
// carries).
func (r *Run) ComparisonNames() []string { return append([]string(nil), r.comparisonNames...) }

// AddComparisonName registers a new custom comparison name, enforcing
// uniqueness and the "[Race]" reservation. Every segment's comparison map
// gets the name added (with a zero Time) by the next FixSplits pass.
func (r *Run) AddComparisonName(name string) error {
	if strings.HasPrefix(name, RaceNamePrefix) {
		return ErrNameStartsWithRace
	}
	for _, n := range r.comparisonNames {
		if n == name {
			return ErrDuplicateName
		}
	}
	for _, n := range BuiltInComparisons {
		if n == name {
			return ErrDuplicateName
		}
	}
	r.comparisonNames = append(r.comparisonNames, name)
	return nil
}

// RemoveComparisonName un-registers a custom comparison name.
func (r *Run) RemoveComparisonName(name string) {
	for i, n := range r.comparisonNames {
		if n == name {
			r.comparisonNames = append(r.comparisonNames[:i], r.comparisonNames[i+1:]...)
			return
		}
	}
}

// RenameComparisonName renames a custom comparison, returning
// ErrOldNameNotFound/ErrDuplicateName as appropriate.
func (r *Run) RenameComparisonName(oldName, newName string) error {
	found := -1
	for i, n := range r.comparisonNames {
		if n == oldName {
			found = i
			break
		}
	}
	if found < 0 {
		return ErrOldNameNotFound
	}
	if err := r.AddComparisonName(newName); err != nil {
		// AddComparisonName already validated uniqueness/reservation; undo
		// isn't needed since we haven't mutated yet in the failure case.
		return err
	}
	r.comparisonNames = append(r.comparisonNames[:found], r.comparisonNames[found+1:]...)
	return nil
}

// ReorderComparisonNames replaces the custom-comparison display order.
// order must be a permutation of the run's existing custom comparison
// names; anything else returns ErrOldNameNotFound (the first name in
// order that doesn't match the existing set).
func (r *Run) ReorderComparisonNames(order []string) error {
	if len(order) != len(r.comparisonNames) {
		return ErrOldNameNotFound
	}
	existing := make(map[string]bool, len(r.comparisonNames))
	for _, n := range r.comparisonNames {
		existing[n] = true
	}
	seen := make(map[string]bool, len(order))
	for _, n := range order {
		if !existing[n] || seen[n] {
			return ErrOldNameNotFound
		}
		seen[n] = true
	}
	r.comparisonNames = append([]string(nil), order...)
	return nil
}

// NewRunID assigns a fresh stable run id, used by a host's remote-service
// integration (splits.io uploads, etc.) to identify this run uniquely.
func (r *Run) NewRunID() {
	r.RunID = uuid.NewString()
}

// ClearRunID invalidates the run id per invariant I7.
func (r *Run) ClearRunID() {
	r.RunID = ""
}

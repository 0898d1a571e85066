package run

import "github.com/nictuku/ooosplits/timing"

// Icon is an opaque image blob, content-addressed so hosts can cache and
// deduplicate it (the image cache in layout uses the same scheme).
type Icon struct {
	Data []byte
	// ID is a content hash of Data; empty when there is no icon.
	ID string
}

// Segment is a single split boundary of a run.
type Segment struct {
	name string
	icon Icon

	// personalBest is the cumulative split time in the current PB.
	personalBest timing.Time
	// bestSegment is the fastest ever isolated segment duration for this
	// segment, across all recorded attempts.
	bestSegment timing.Time

	history     SegmentHistory
	comparisons Comparisons

	// splitTime is the cumulative split time recorded so far for the
	// *currently in-progress* attempt (distinct from personalBest, which is
	// the PB's split time, and from history, which is sealed past
	// attempts). The Timer sets this as it splits and clears it on
	// undo/reset; the Sum-of-Segments solver's "use current run" mode and
	// the Current Pace / Delta layout components read it.
	splitTime timing.Time
}

// NewSegment creates a segment with the given display name and zeroed
// times. An empty name is accepted here, and the Editor does not reject
// one either.
func NewSegment(name string) *Segment {
	return &Segment{name: name, comparisons: NewComparisons()}
}

// Name returns the segment's display name.
func (s *Segment) Name() string { return s.name }

// SetName changes the segment's display name.
func (s *Segment) SetName(name string) { s.name = name }

// Icon returns the segment's icon, which may be the zero value.
func (s *Segment) Icon() Icon { return s.icon }

// SetIcon replaces the segment's icon.
func (s *Segment) SetIcon(icon Icon) { s.icon = icon }

// PersonalBestSplitTime returns the segment's cumulative PB split time.
func (s *Segment) PersonalBestSplitTime() timing.Time { return s.personalBest }

// SetPersonalBestSplitTime overwrites the segment's PB split time.
func (s *Segment) SetPersonalBestSplitTime(t timing.Time) { s.personalBest = t }

// BestSegmentTime returns the fastest isolated segment duration recorded.
func (s *Segment) BestSegmentTime() timing.Time { return s.bestSegment }

// SetBestSegmentTime overwrites the segment's best-segment time.
func (s *Segment) SetBestSegmentTime(t timing.Time) { s.bestSegment = t }

// SplitTime returns the in-progress attempt's cumulative split time for this
// segment, or the zero Time if it hasn't been split yet this attempt.
func (s *Segment) SplitTime() timing.Time { return s.splitTime }

// SetSplitTime records the in-progress attempt's split time for this
// segment. Only the Timer calls this.
func (s *Segment) SetSplitTime(t timing.Time) { s.splitTime = t }

// SegmentHistory exposes the segment's per-attempt history.
func (s *Segment) SegmentHistory() *SegmentHistory { return &s.history }

// Comparison returns the Time stored under the named comparison.
func (s *Segment) Comparison(name string) timing.Time { return s.comparisons.Get(name) }

// SetComparison stores t under the named comparison.
func (s *Segment) SetComparison(name string, t timing.Time) { s.comparisons.Set(name, t) }

// Comparisons exposes the segment's full comparison map.
func (s *Segment) Comparisons() *Comparisons { return &s.comparisons }

// Clone returns a deep copy of the segment.
func (s *Segment) Clone() *Segment {
	out := &Segment{
		name:         s.name,
		icon:         s.icon,
		personalBest: s.personalBest,
		bestSegment:  s.bestSegment,
		history:      s.history.Clone(),
		comparisons:  s.comparisons.Clone(),
		splitTime:    s.splitTime,
	}
	return out
}

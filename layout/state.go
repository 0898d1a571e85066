package layout

import "image/color"

// ComponentKind tags which variant of ComponentState is populated.
type ComponentKind int

const (
	KindTimer ComponentKind = iota
	KindTitle
	KindSplits
	KindGraph
	KindDetailedTimer
	KindKeyValue
	KindText
	KindSeparator
	KindBlankSpace
)

// TimerState is the big digital-clock display: the current attempt's time
// for whichever timing method and comparison is selected, colored by
// whether the attempt is ahead of or behind the comparison.
type TimerState struct {
	Time      string
	Fraction  string
	TextColor color.RGBA
}

// TitleState names the run and shows the attempt counter.
type TitleState struct {
	GameName      string
	CategoryName  string
	Attempts      int32
	FinishedRuns  int
	IconID        string
}

// SplitRow is one visible row of the Splits component.
type SplitRow struct {
	Name        string
	SplitTime   string
	Delta       string
	DeltaColor  color.RGBA
	IsCurrent   bool
	IconID      string
}

// SplitsState is the scrollable segment list: an explicit visible window
// the host can scroll.
type SplitsState struct {
	Rows       ClearVec[SplitRow]
	ScrollOffset int
}

// GraphPoint is one sample of the live delta graph.
type GraphPoint struct {
	X, Y float64
}

// GraphState is the live delta-over-time graph (split time minus the active
// comparison at every completed split, plus a live point).
type GraphState struct {
	Points      ClearVec[GraphPoint]
	MiddleY     float64
	IsLiveDelta bool
}

// DetailedTimerState shows the main timer alongside a smaller
// current-segment timer and the comparison's name, per spec's "Detailed
// Timer" component.
type DetailedTimerState struct {
	MainTime       string
	SegmentTime    string
	ComparisonName string
}

// KeyValueState is the shape shared by every single-line "label: value"
// component (Current Pace, Possible Time Save, Previous Segment, Sum of
// Best, Total Playtime, PB Chance, Current Comparison, Delta, Segment
// Time) — they differ only in what computes Value, not in their state
// shape.
type KeyValueState struct {
	Key        string
	Value      string
	ValueColor color.RGBA
}

// TextState renders one or two lines of literal or templated text.
type TextState struct {
	Line1 string
	Line2 string
}

// SeparatorState is a thin horizontal rule; it carries no per-frame data,
// but is still a distinct state tag so the scene builder can recognize it.
type SeparatorState struct{}

// BlankSpaceState reserves vertical space of a configured size.
type BlankSpaceState struct {
	Height float64
}

// ComponentState is a closed tagged union: exactly one of the typed fields
// matching Kind is populated. Reused in place across frames rather than
// reallocated — UpdateState mutates the existing value rather than
// replacing the ComponentState.
type ComponentState struct {
	Kind ComponentKind

	Timer         TimerState
	Title         TitleState
	Splits        SplitsState
	Graph         GraphState
	DetailedTimer DetailedTimerState
	KeyValue      KeyValueState
	Text          TextState
	Separator     SeparatorState
	BlankSpace    BlankSpaceState
}

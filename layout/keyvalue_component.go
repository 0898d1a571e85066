package layout

import (
	"github.com/nictuku/ooosplits/analysis"
	"github.com/nictuku/ooosplits/run"
	"github.com/nictuku/ooosplits/timer"
	"github.com/nictuku/ooosplits/timing"
)

// keyValueKind selects which single-line metric a KeyValueComponent
// computes; they all share the same State shape, differing only in Key
// label and how Value/ValueColor are derived from the Snapshot.
type keyValueKind int

const (
	kvCurrentPace keyValueKind = iota
	kvPossibleTimeSave
	kvPreviousSegment
	kvSumOfBest
	kvTotalPlaytime
	kvPBChance
	kvCurrentComparison
	kvDelta
	kvSegmentTime
)

func (k keyValueKind) defaultLabel() string {
	switch k {
	case kvCurrentPace:
		return "Current Pace"
	case kvPossibleTimeSave:
		return "Possible Time Save"
	case kvPreviousSegment:
		return "Previous Segment"
	case kvSumOfBest:
		return "Sum of Best Segments"
	case kvTotalPlaytime:
		return "Total Playtime"
	case kvPBChance:
		return "PB Chance"
	case kvCurrentComparison:
		return "Comparison"
	case kvDelta:
		return "Delta"
	case kvSegmentTime:
		return "Segment Time"
	default:
		return ""
	}
}

// KeyValueComponent implements every "label: value" layout component
// (Current Pace, Possible Time Save, Previous Segment, Sum of Best, Total
// Playtime, PB Chance, Current Comparison, Delta, Segment Time): one
// KeyValueState shape, nine ways of computing it. They're grouped into one
// family here since they share a state shape and differ only in their
// value-derivation logic, not in how a host renders them.
type KeyValueComponent struct {
	kind      keyValueKind
	Label     string
	Method    timing.TimingMethod
	Formatter timing.Formatter
}

func newKeyValueComponent(k keyValueKind) *KeyValueComponent {
	return &KeyValueComponent{
		kind:      k,
		Label:     k.defaultLabel(),
		Method:    timing.RealTime,
		Formatter: timing.NewFormatter(timing.AccuracyTenths, timing.DigitsFormatSingleDigitSeconds),
	}
}

// NewCurrentPaceComponent predicts the final time of the in-progress
// attempt by chaining the Sum-of-Best solver's "use current run" mode from
// the current split forward.
func NewCurrentPaceComponent() *KeyValueComponent { return newKeyValueComponent(kvCurrentPace) }

// NewPossibleTimeSaveComponent shows the gap between the current segment's
// comparison time and its best-segment time: how much faster this segment
// could still go.
func NewPossibleTimeSaveComponent() *KeyValueComponent {
	return newKeyValueComponent(kvPossibleTimeSave)
}

// NewPreviousSegmentComponent shows the delta of the most recently
// completed segment against the active comparison.
func NewPreviousSegmentComponent() *KeyValueComponent { return newKeyValueComponent(kvPreviousSegment) }

// NewSumOfBestComponent shows the Run's total Sum of Best Segments.
func NewSumOfBestComponent() *KeyValueComponent { return newKeyValueComponent(kvSumOfBest) }

// NewTotalPlaytimeComponent sums every recorded Attempt's duration plus
// the in-progress attempt's elapsed time.
func NewTotalPlaytimeComponent() *KeyValueComponent { return newKeyValueComponent(kvTotalPlaytime) }

// NewPBChanceComponent reports analysis.PBChance as a percentage.
func NewPBChanceComponent() *KeyValueComponent {
	c := newKeyValueComponent(kvPBChance)
	c.Formatter = timing.Formatter{}
	return c
}

// NewCurrentComparisonComponent shows the name of the active comparison.
func NewCurrentComparisonComponent() *KeyValueComponent {
	return newKeyValueComponent(kvCurrentComparison)
}

// NewDeltaComponent shows the live delta of the current segment (or the
// last completed one, once finished) against the active comparison.
func NewDeltaComponent() *KeyValueComponent { return newKeyValueComponent(kvDelta) }

// NewSegmentTimeComponent shows the duration of the current segment on its
// own, not cumulative; once every segment is split it shows no value.
func NewSegmentTimeComponent() *KeyValueComponent { return newKeyValueComponent(kvSegmentTime) }

func (c *KeyValueComponent) Name() string { return c.Label }

func (c *KeyValueComponent) Settings() []SettingDescription {
	return []SettingDescription{{Name: "Label", Current: Value{Kind: ValueString, Str: c.Label}}}
}

func (c *KeyValueComponent) SetValue(index int, v Value) error {
	if index == 0 {
		c.Label = v.Str
	}
	return nil
}

func (c *KeyValueComponent) UpdateState(state *ComponentState, snap timer.Snapshot, cache *ImageCache, general GeneralSettings) {
	state.Kind = KindKeyValue
	state.KeyValue.Key = c.Label
	state.KeyValue.ValueColor = general.TextColor

	switch c.kind {
	case kvCurrentPace:
		c.updateCurrentPace(state, snap)
	case kvPossibleTimeSave:
		c.updatePossibleTimeSave(state, snap, general)
	case kvPreviousSegment:
		c.updatePreviousSegment(state, snap, general)
	case kvSumOfBest:
		c.updateSumOfBest(state, snap)
	case kvTotalPlaytime:
		c.updateTotalPlaytime(state, snap)
	case kvPBChance:
		c.updatePBChance(state, snap)
	case kvCurrentComparison:
		state.KeyValue.Value = snap.CurrentComparison
	case kvDelta:
		c.updateDelta(state, snap, general)
	case kvSegmentTime:
		c.updateSegmentTime(state, snap)
	}
}

func (c *KeyValueComponent) updateCurrentPace(state *ComponentState, snap timer.Snapshot) {
	segs := snap.Run.Segments()
	now := snap.Now.Get(c.Method)
	idx := snap.CurrentSplitIndex
	if idx >= len(segs) || now == nil {
		state.KeyValue.Value = c.Formatter.Format(pbFinal(segs, c.Method))
		return
	}
	predictions := analysis.CalculateBest(segs, false, true, c.Method)
	state.KeyValue.Value = c.Formatter.Format(predictions[len(predictions)-1])
}

func pbFinal(segs []*run.Segment, m timing.TimingMethod) *timing.Duration {
	if len(segs) == 0 {
		return nil
	}
	return segs[len(segs)-1].PersonalBestSplitTime().Get(m)
}

func (c *KeyValueComponent) updatePossibleTimeSave(state *ComponentState, snap timer.Snapshot, general GeneralSettings) {
	segs := snap.Run.Segments()
	idx := snap.CurrentSplitIndex
	if idx >= len(segs) {
		state.KeyValue.Value = c.Formatter.Format(nil)
		return
	}
	comparison := segs[idx].Comparison(snap.CurrentComparison).Get(c.Method)
	best := segs[idx].BestSegmentTime().Get(c.Method)
	if comparison == nil || best == nil {
		state.KeyValue.Value = c.Formatter.Format(nil)
		return
	}
	segComparison := *comparison
	if idx > 0 {
		prev := segs[idx-1].Comparison(snap.CurrentComparison).Get(c.Method)
		if prev == nil {
			state.KeyValue.Value = c.Formatter.Format(nil)
			return
		}
		segComparison -= *prev
	}
	if segComparison <= *best {
		state.KeyValue.Value = c.Formatter.Format(nil)
		return
	}
	save := segComparison - *best
	state.KeyValue.Value = c.Formatter.Format(&save)
}

func (c *KeyValueComponent) updatePreviousSegment(state *ComponentState, snap timer.Snapshot, general GeneralSettings) {
	segs := snap.Run.Segments()
	idx := snap.CurrentSplitIndex
	if idx == 0 || idx > len(segs) {
		state.KeyValue.Value = c.Formatter.Format(nil)
		return
	}
	prev := segs[idx-1]
	actual := prev.SplitTime().Get(c.Method)
	comparison := prev.Comparison(snap.CurrentComparison).Get(c.Method)
	if actual == nil || comparison == nil {
		state.KeyValue.Value = c.Formatter.Format(nil)
		return
	}
	delta := *actual - *comparison
	state.KeyValue.Value = formatDelta(c.Formatter, delta)
	state.KeyValue.ValueColor = deltaColor(delta, general)
}

func (c *KeyValueComponent) updateSumOfBest(state *ComponentState, snap timer.Snapshot) {
	segs := snap.Run.Segments()
	state.KeyValue.Value = c.Formatter.Format(analysis.SumOfBest(segs, false, false, c.Method))
}

func (c *KeyValueComponent) updateTotalPlaytime(state *ComponentState, snap timer.Snapshot) {
	var total timing.Duration
	for _, a := range snap.Run.Attempts() {
		total += a.Duration()
	}
	if snap.Phase != timer.NotRunning {
		if now := snap.Now.Get(timing.RealTime); now != nil {
			total += *now
		}
	}
	state.KeyValue.Value = c.Formatter.Format(&total)
}

func (c *KeyValueComponent) updatePBChance(state *ComponentState, snap timer.Snapshot) {
	segs := snap.Run.Segments()
	idx := snap.CurrentSplitIndex
	now := snap.Now.Get(c.Method)
	var elapsed timing.Duration
	if now != nil {
		elapsed = *now
	}
	p := analysis.PBChance(segs, c.Method, idx, elapsed)
	state.KeyValue.Value = percentString(p)
}

func percentString(p float64) string {
	n := int(p*100 + 0.5)
	digits := "0123456789"
	if n < 0 {
		n = 0
	}
	if n > 100 {
		n = 100
	}
	s := ""
	if n == 0 {
		s = "0"
	}
	for n > 0 {
		s = string(digits[n%10]) + s
		n /= 10
	}
	return s + "%"
}

func (c *KeyValueComponent) updateDelta(state *ComponentState, snap timer.Snapshot, general GeneralSettings) {
	segs := snap.Run.Segments()
	idx := snap.CurrentSplitIndex
	if idx >= len(segs) {
		idx = len(segs) - 1
		if idx < 0 {
			state.KeyValue.Value = c.Formatter.Format(nil)
			return
		}
		actual := segs[idx].SplitTime().Get(c.Method)
		comparison := segs[idx].Comparison(snap.CurrentComparison).Get(c.Method)
		if actual == nil || comparison == nil {
			state.KeyValue.Value = c.Formatter.Format(nil)
			return
		}
		delta := *actual - *comparison
		state.KeyValue.Value = formatDelta(c.Formatter, delta)
		state.KeyValue.ValueColor = deltaColor(delta, general)
		return
	}
	now := snap.Now.Get(c.Method)
	comparison := segs[idx].Comparison(snap.CurrentComparison).Get(c.Method)
	if now == nil || comparison == nil {
		state.KeyValue.Value = c.Formatter.Format(nil)
		return
	}
	delta := *now - *comparison
	state.KeyValue.Value = formatDelta(c.Formatter, delta)
	state.KeyValue.ValueColor = deltaColor(delta, general)
}

func (c *KeyValueComponent) updateSegmentTime(state *ComponentState, snap timer.Snapshot) {
	segs := snap.Run.Segments()
	idx := snap.CurrentSplitIndex
	if idx >= len(segs) {
		state.KeyValue.Value = c.Formatter.Format(nil)
		return
	}
	now := snap.Now.Get(c.Method)
	if now == nil {
		state.KeyValue.Value = c.Formatter.Format(nil)
		return
	}
	var prev timing.Duration
	if idx > 0 {
		if v := segs[idx-1].SplitTime().Get(c.Method); v != nil {
			prev = *v
		}
	}
	seg := *now - prev
	state.KeyValue.Value = c.Formatter.Format(&seg)
}

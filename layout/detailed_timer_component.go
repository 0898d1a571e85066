package layout

import (
	"github.com/nictuku/ooosplits/timer"
	"github.com/nictuku/ooosplits/timing"
)

// DetailedTimerComponent pairs the main attempt clock with a smaller clock
// counting just the current segment, and shows the active comparison's name.
type DetailedTimerComponent struct {
	Method    timing.TimingMethod
	Formatter timing.Formatter
}

func NewDetailedTimerComponent() *DetailedTimerComponent {
	return &DetailedTimerComponent{
		Method:    timing.RealTime,
		Formatter: timing.NewFormatter(timing.AccuracyHundredths, timing.DigitsFormatSingleDigitMinutes),
	}
}

func (c *DetailedTimerComponent) Name() string { return "Detailed Timer" }

func (c *DetailedTimerComponent) Settings() []SettingDescription { return nil }

func (c *DetailedTimerComponent) SetValue(index int, v Value) error { return nil }

func (c *DetailedTimerComponent) UpdateState(state *ComponentState, snap timer.Snapshot, cache *ImageCache, general GeneralSettings) {
	state.Kind = KindDetailedTimer
	state.DetailedTimer.MainTime = c.Formatter.Format(snap.Now.Get(c.Method))
	state.DetailedTimer.ComparisonName = snap.CurrentComparison

	segs := snap.Run.Segments()
	idx := snap.CurrentSplitIndex
	if idx >= len(segs) {
		state.DetailedTimer.SegmentTime = c.Formatter.Format(nil)
		return
	}
	now := snap.Now.Get(c.Method)
	if now == nil {
		state.DetailedTimer.SegmentTime = c.Formatter.Format(nil)
		return
	}
	var prev timing.Duration
	if idx > 0 {
		if v := segs[idx-1].SplitTime().Get(c.Method); v != nil {
			prev = *v
		}
	}
	segTime := *now - prev
	state.DetailedTimer.SegmentTime = c.Formatter.Format(&segTime)
}

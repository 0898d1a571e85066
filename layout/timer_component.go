package layout

import (
	"image/color"

	"github.com/nictuku/ooosplits/timer"
	"github.com/nictuku/ooosplits/timing"
)

// TimerComponent is the big digital clock: elapsed time for whichever
// timing method is selected, colored relative to the active comparison.
type TimerComponent struct {
	Method    timing.TimingMethod
	Formatter timing.Formatter
}

// NewTimerComponent builds a TimerComponent defaulting to real time at
// hundredths precision, minutes always shown.
func NewTimerComponent() *TimerComponent {
	return &TimerComponent{
		Method:    timing.RealTime,
		Formatter: timing.NewFormatter(timing.AccuracyHundredths, timing.DigitsFormatSingleDigitMinutes),
	}
}

func (c *TimerComponent) Name() string { return "Timer" }

func (c *TimerComponent) Settings() []SettingDescription {
	return []SettingDescription{{Name: "Timing Method", Current: Value{Kind: ValueInt, Int: int64(c.Method)}}}
}

func (c *TimerComponent) SetValue(index int, v Value) error {
	if index == 0 {
		c.Method = timing.TimingMethod(v.Int)
	}
	return nil
}

func (c *TimerComponent) UpdateState(state *ComponentState, snap timer.Snapshot, cache *ImageCache, general GeneralSettings) {
	state.Kind = KindTimer
	v := snap.Now.Get(c.Method)
	state.Timer.Time = c.Formatter.Format(v)
	state.Timer.Fraction = c.Formatter.Fraction(v)
	state.Timer.TextColor = c.colorFor(snap, general)
}

func (c *TimerComponent) colorFor(snap timer.Snapshot, general GeneralSettings) color.RGBA {
	switch snap.Phase {
	case timer.NotRunning:
		return general.NotRunningColor
	case timer.Paused:
		return general.PausedColor
	}

	segs := snap.Run.Segments()
	idx := snap.CurrentSplitIndex
	if idx == 0 || idx > len(segs) {
		return general.TextColor
	}
	comparisonTime := segs[idx-1].Comparison(snap.CurrentComparison).Get(c.Method)
	now := snap.Now.Get(c.Method)
	if comparisonTime == nil || now == nil {
		return general.TextColor
	}
	if *now <= *comparisonTime {
		return general.AheadGainingColor
	}
	return general.BehindLosingColor
}

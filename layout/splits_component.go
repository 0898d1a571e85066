package layout

import (
	"github.com/nictuku/ooosplits/timer"
	"github.com/nictuku/ooosplits/timing"
)

// SplitsComponent renders the scrollable segment list: a windowed view
// over the Run's segments with its own scroll offset.
type SplitsComponent struct {
	Method          timing.TimingMethod
	VisibleCount    int
	scrollOffset    int
	splitFormatter  timing.Formatter
	deltaFormatter  timing.Formatter
}

// NewSplitsComponent builds a SplitsComponent showing VisibleCount rows
// (0 means "all").
func NewSplitsComponent(visibleCount int) *SplitsComponent {
	return &SplitsComponent{
		Method:         timing.RealTime,
		VisibleCount:   visibleCount,
		splitFormatter: timing.NewFormatter(timing.AccuracyTenths, timing.DigitsFormatSingleDigitMinutes),
		deltaFormatter: timing.NewFormatter(timing.AccuracyTenths, timing.DigitsFormatSingleDigitSeconds),
	}
}

func (c *SplitsComponent) Name() string { return "Splits" }

func (c *SplitsComponent) Settings() []SettingDescription {
	return []SettingDescription{{Name: "Visible Split Count", Current: Value{Kind: ValueInt, Int: int64(c.VisibleCount)}}}
}

func (c *SplitsComponent) SetValue(index int, v Value) error {
	if index == 0 {
		c.VisibleCount = int(v.Int)
	}
	return nil
}

// ScrollUp moves the visible window one row earlier, not past the start.
func (c *SplitsComponent) ScrollUp() {
	if c.scrollOffset > 0 {
		c.scrollOffset--
	}
}

// ScrollDown moves the visible window one row later. The clamp against the
// segment count happens in UpdateState, where the segment list is known.
func (c *SplitsComponent) ScrollDown() { c.scrollOffset++ }

func (c *SplitsComponent) UpdateState(state *ComponentState, snap timer.Snapshot, cache *ImageCache, general GeneralSettings) {
	state.Kind = KindSplits
	state.Splits.Rows.Clear()

	segs := snap.Run.Segments()
	visible := c.VisibleCount
	if visible <= 0 || visible > len(segs) {
		visible = len(segs)
	}
	maxOffset := len(segs) - visible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if c.scrollOffset > maxOffset {
		c.scrollOffset = maxOffset
	}
	state.Splits.ScrollOffset = c.scrollOffset

	for i := c.scrollOffset; i < c.scrollOffset+visible && i < len(segs); i++ {
		seg := segs[i]
		row := SplitRow{
			Name:      seg.Name(),
			IsCurrent: i == snap.CurrentSplitIndex,
			IconID:    seg.Icon().ID,
		}

		comparison := seg.Comparison(snap.CurrentComparison).Get(c.Method)
		var actual *timing.Duration
		if i < snap.CurrentSplitIndex {
			actual = seg.SplitTime().Get(c.Method)
		}

		switch {
		case actual != nil:
			row.SplitTime = c.splitFormatter.Format(actual)
			if comparison != nil {
				delta := *actual - *comparison
				row.Delta = formatDelta(c.deltaFormatter, delta)
				row.DeltaColor = deltaColor(delta, general)
			}
		case i == snap.CurrentSplitIndex:
			row.SplitTime = c.splitFormatter.Format(comparison)
		default:
			row.SplitTime = c.splitFormatter.Format(comparison)
		}

		state.Splits.Rows.Push(row)
	}
}

func formatDelta(f timing.Formatter, d timing.Duration) string {
	sign := "+"
	if d < 0 {
		sign = "-"
		d = -d
	}
	return sign + f.Format(&d)
}

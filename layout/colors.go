package layout

import (
	"image/color"

	"github.com/nictuku/ooosplits/timing"
)

// deltaColor picks the plain ahead/behind color for a delta (actual minus
// comparison): AheadGainingColor when delta <= 0, BehindLosingColor
// otherwise. It does not classify the gaining/losing trend, which needs the
// previous segment's delta; deltaColorWithTrend does that, and gives this
// same two-way result when passed a previousDelta of 0.
func deltaColor(delta timing.Duration, general GeneralSettings) color.RGBA {
	if delta <= 0 {
		return general.AheadGainingColor
	}
	return general.BehindLosingColor
}

// deltaColorWithTrend additionally distinguishes "gaining" (delta improved
// since the previous split) from "losing" (delta worsened).
func deltaColorWithTrend(delta, previousDelta timing.Duration, general GeneralSettings) color.RGBA {
	switch {
	case delta <= 0 && delta <= previousDelta:
		return general.AheadGainingColor
	case delta <= 0:
		return general.AheadLosingColor
	case delta > 0 && delta < previousDelta:
		return general.BehindGainingColor
	default:
		return general.BehindLosingColor
	}
}

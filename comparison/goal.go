package comparison

import (
	"github.com/nictuku/ooosplits/analysis"
	"github.com/nictuku/ooosplits/run"
	"github.com/nictuku/ooosplits/timing"
)

// Goal is not a Comparison Generator in its own right — it needs an
// explicit target time supplied by the caller — but the Balanced PB
// generator is built directly on top of it, using the Personal Best as the
// goal. Hosts that let a runner type in an arbitrary goal time use these
// functions to populate a custom comparison with it.

// GenerateForTimingMethod balances goalTime across segments for a single
// timing method, writing the result into the named comparison. Every other
// timing method's value for that comparison is left untouched. Only goal
// times between the Sum of Best and the Sum of Worst are representable
// exactly; anything outside that range is clamped by the skill-curve
// bisection in FindPercentileForTime.
func GenerateForTimingMethod(segments []*run.Segment, method timing.TimingMethod, goalTime timing.Duration, comparisonName string) {
	curve := analysis.NewSkillCurve()
	generateForTimingMethodWithCurve(segments, method, &goalTime, comparisonName, curve)
}

func generateForTimingMethodWithCurve(segments []*run.Segment, method timing.TimingMethod, goalTime *timing.Duration, comparisonName string, curve *analysis.SkillCurve) {
	percentile := analysis.DeterminePercentile(0, segments, method, goalTime, curve)
	splitTimes := curve.SplitTimesAtPercentile(percentile, 0)

	for i, seg := range segments {
		var v *timing.Duration
		if i < len(splitTimes) {
			t := splitTimes[i]
			v = &t
		}
		seg.SetComparison(comparisonName, seg.Comparison(comparisonName).With(method, v))
	}
}

// Generate balances goalTime (which may leave either timing method unset)
// across segments, writing into the named comparison. A method left unset
// in goalTime clears that method's values in the comparison entirely.
func Generate(segments []*run.Segment, goalTime timing.Time, comparisonName string) {
	curve := analysis.NewSkillCurve()

	if goalTime.Real != nil {
		generateForTimingMethodWithCurve(segments, timing.RealTime, goalTime.Real, comparisonName, curve)
	} else {
		for _, seg := range segments {
			seg.SetComparison(comparisonName, seg.Comparison(comparisonName).With(timing.RealTime, nil))
		}
	}

	if goalTime.Game != nil {
		generateForTimingMethodWithCurve(segments, timing.GameTime, goalTime.Game, comparisonName, curve)
	} else {
		for _, seg := range segments {
			seg.SetComparison(comparisonName, seg.Comparison(comparisonName).With(timing.GameTime, nil))
		}
	}
}

// roundUpTo rounds value up to the next multiple of factor (both in
// seconds).
func roundUpTo(value, factor int64) int64 {
	return (value + factor - 1) / factor * factor
}

// niceGoalTime rounds a precise goal time up to the nearest "nice" boundary
// (hour, 15 minutes, 5 minutes, minute, 15 seconds, 5 seconds) that still
// stays strictly under pb, falling back to the precise time if none of
// those boundaries fit.
func niceGoalTime(preciseGoalTime, pb timing.Duration) timing.Duration {
	totalSeconds := int64(preciseGoalTime.Seconds())
	pbSeconds := int64(pb.Seconds())
	for _, factor := range []int64{60 * 60, 60 * 15, 60 * 5, 60, 15, 5} {
		goalSeconds := roundUpTo(totalSeconds, factor)
		if goalSeconds < pbSeconds {
			return timing.FromSeconds(float64(goalSeconds))
		}
	}
	return preciseGoalTime
}

// SuggestGoalTime proposes a goal time slightly more ambitious than the
// runner's current skill level (85% of the percentile their Personal Best
// sits at), rounded to a nice round number below the PB. Returns false if
// the run has no Personal Best to suggest against.
//
// The reference implementation leaves this unimplemented; this fills in the
// algorithm its own comments describe.
func SuggestGoalTime(r *run.Run, method timing.TimingMethod) (timing.Duration, bool) {
	segments := r.Segments()
	pb := lastPersonalBest(segments, method)
	if pb == nil {
		return 0, false
	}

	curve := analysis.NewSkillCurve()
	percentile := analysis.DeterminePercentile(0, segments, method, nil, curve)

	splitTimes := curve.SplitTimesAtPercentile(0.85*percentile, 0)
	if len(splitTimes) == 0 {
		return 0, false
	}
	goalTime := splitTimes[len(splitTimes)-1]

	return niceGoalTime(goalTime, *pb), true
}

func lastPersonalBest(segments []*run.Segment, method timing.TimingMethod) *timing.Duration {
	for i := len(segments) - 1; i >= 0; i-- {
		if v := segments[i].PersonalBestSplitTime().Get(method); v != nil {
			return v
		}
	}
	return nil
}

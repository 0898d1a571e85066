package analysis

import (
	"github.com/nictuku/ooosplits/run"
	"github.com/nictuku/ooosplits/timing"
)

// DeterminePercentile finds the skill-curve percentile p such that offset +
// the percentile-p cumulative time across segments equals goalTime (or, if
// goalTime is nil, the run's own PB final time truncated to the last
// segment that actually has a PB split). Shared by the Balanced
// PB/Goal comparison generators and PBChance.
func DeterminePercentile(offset timing.Duration, segments []*run.Segment, method timing.TimingMethod, goalTime *timing.Duration, curve *SkillCurve) float64 {
	curve.ForSegments(segments, method)

	gt := timing.Zero
	if goalTime != nil {
		gt = *goalTime
	} else {
		newLen := 0
		for i := curve.Len() - 1; i >= 0; i-- {
			if v := segments[i].PersonalBestSplitTime().Get(method); v != nil {
				newLen = i + 1
				gt = *v
				break
			}
		}
		curve.Truncate(newLen)
	}

	return curve.FindPercentileForTime(offset, gt)
}

// PBChance returns the probability, in [0,1], that a run of the runner's
// current (historical) skill beats the Personal Best from the given
// elapsed-time offset at segmentIndex forward. segmentIndex is the index of
// the next segment to be attempted (0 before anything has split).
//
// If the PB budget is already impossible (≤ sum of best remaining) this
// returns 0; if guaranteed (≥ sum of worst remaining) this returns 1.
func PBChance(segments []*run.Segment, method timing.TimingMethod, segmentIndex int, currentTime timing.Duration) float64 {
	if len(segments) == 0 {
		return 1.0
	}
	pbLast := segments[len(segments)-1].PersonalBestSplitTime().Get(method)
	if pbLast == nil {
		return 1.0
	}
	if segmentIndex >= len(segments) {
		// The attempt already finished: the outcome is certain rather than a
		// prediction. currentTime is the final cumulative split time, so
		// compare it directly against the PB it would replace.
		if currentTime <= *pbLast {
			return 1.0
		}
		return 0.0
	}

	remaining := segments[segmentIndex:]
	curve := NewSkillCurve()
	p := DeterminePercentile(currentTime, remaining, method, pbLast, curve)
	if curve.cumulativeAt(0, currentTime) >= *pbLast {
		return 0.0
	}
	if curve.cumulativeAt(1, currentTime) <= *pbLast {
		return 1.0
	}
	if p < 0 {
		p = 0
	}
	if p > 1 {
		p = 1
	}
	return p
}

// ForRun computes the PB chance for a cold run (nothing split yet), i.e.
// from segment 0 with zero elapsed time.
func ForRun(segments []*run.Segment, method timing.TimingMethod) float64 {
	return PBChance(segments, method, 0, timing.Zero)
}

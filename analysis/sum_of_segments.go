// Package analysis implements the Sum-of-Segments solver, PB-chance
// estimator, and skill-curve percentile machinery the comparison generators
// and layout components build on.
package analysis

import (
	"github.com/nictuku/ooosplits/run"
	"github.com/nictuku/ooosplits/timing"
)

// trackBranch follows the chain of consecutive recorded splits under
// runIndex starting at segmentIndex, returning the index just past the
// first recorded boundary and the accumulated time to reach it. If the
// tracked attempt ends before a split time is found, the returned index is
// 0 (meaning "unreachable via this branch").
func trackBranch(segments []*run.Segment, currentTime *timing.Duration, segmentIndex int, runIndex int32, method timing.TimingMethod) (int, *timing.Duration) {
	for i := segmentIndex; i < len(segments); i++ {
		t, ok := segments[i].SegmentHistory().Get(runIndex)
		if !ok {
			break
		}
		v := t.Get(method)
		if v == nil {
			continue
		}
		if currentTime == nil {
			return i + 1, nil
		}
		sum := *currentTime + *v
		return i + 1, &sum
	}
	return 0, nil
}

func trackCurrentRun(segments []*run.Segment, currentTime *timing.Duration, segmentIndex int, method timing.TimingMethod) (int, *timing.Duration) {
	var first *timing.Duration
	if segmentIndex == 0 {
		zero := timing.Zero
		first = &zero
	} else {
		first = segments[segmentIndex-1].SplitTime().Get(method)
		if first == nil {
			return 0, nil
		}
	}
	for i := segmentIndex; i < len(segments); i++ {
		second := segments[i].SplitTime().Get(method)
		if second == nil {
			continue
		}
		if currentTime == nil {
			return i + 1, nil
		}
		sum := *currentTime + (*second - *first)
		return i + 1, &sum
	}
	return 0, nil
}

func trackPersonalBestRun(segments []*run.Segment, currentTime *timing.Duration, segmentIndex int, method timing.TimingMethod) (int, *timing.Duration) {
	var first *timing.Duration
	if segmentIndex == 0 {
		zero := timing.Zero
		first = &zero
	} else {
		first = segments[segmentIndex-1].PersonalBestSplitTime().Get(method)
		if first == nil {
			return 0, nil
		}
	}
	for i := segmentIndex; i < len(segments); i++ {
		second := segments[i].PersonalBestSplitTime().Get(method)
		if second == nil {
			continue
		}
		if currentTime == nil {
			return i + 1, nil
		}
		sum := *currentTime + (*second - *first)
		return i + 1, &sum
	}
	return 0, nil
}

func populatePrediction(prediction *[]*timing.Duration, idx int, candidate *timing.Duration, better func(a, b timing.Duration) bool) {
	if candidate == nil {
		return
	}
	if (*prediction)[idx] == nil || better(*candidate, *(*prediction)[idx]) {
		v := *candidate
		(*prediction)[idx] = &v
	}
}

// CalculateBest computes the Sum of Best Segments: the fastest accumulated
// time to reach each split boundary (equivalent to Dijkstra's shortest path
// over the segment graph). simpleCalculation
// excludes history-branch, current-run and Personal Best transitions (only
// best-segment-time chaining, so useCurrentRun has no effect then);
// useCurrentRun additionally considers the in-progress attempt's split
// times (Segment.SplitTime).
func CalculateBest(segments []*run.Segment, simpleCalculation, useCurrentRun bool, method timing.TimingMethod) []*timing.Duration {
	predictions := make([]*timing.Duration, len(segments)+1)
	zero := timing.Zero
	predictions[0] = &zero

	less := func(a, b timing.Duration) bool { return a < b }

	for i := range segments {
		current := predictions[i]
		if current == nil {
			continue
		}
		best := segments[i].BestSegmentTime().Get(method)
		if best != nil {
			sum := *current + *best
			populatePrediction(&predictions, i+1, &sum, less)
		}
		if !simpleCalculation {
			segments[i].SegmentHistory().All(func(id int32, t timing.Time) {
				if t.Get(method) != nil {
					return
				}
				shouldTrack := true
				if i > 0 {
					if prevT, ok := segments[i-1].SegmentHistory().Get(id); ok {
						shouldTrack = prevT.Get(method) != nil
					}
				}
				if !shouldTrack {
					return
				}
				idx, v := trackBranch(segments, current, i+1, id, method)
				populatePrediction(&predictions, idx, v, less)
			})
			if useCurrentRun {
				idx, v := trackCurrentRun(segments, current, i, method)
				populatePrediction(&predictions, idx, v, less)
			}
			idx, v := trackPersonalBestRun(segments, current, i, method)
			populatePrediction(&predictions, idx, v, less)
		}
	}
	return predictions
}

// CalculateWorst computes the Sum of Worst Segments: the slowest accumulated
// time to reach each split boundary that's still reachable via some
// recorded attempt or PB branch (it never invents time out of nowhere the
// way "worst possible" might suggest).
func CalculateWorst(segments []*run.Segment, useCurrentRun bool, method timing.TimingMethod) []*timing.Duration {
	predictions := make([]*timing.Duration, len(segments)+1)
	zero := timing.Zero
	predictions[0] = &zero

	greater := func(a, b timing.Duration) bool { return a > b }

	for i := range segments {
		current := predictions[i]
		if current == nil {
			continue
		}
		best := segments[i].BestSegmentTime().Get(method)
		if best != nil {
			sum := *current + *best
			populatePrediction(&predictions, i+1, &sum, greater)
		}
		segments[i].SegmentHistory().All(func(id int32, _ timing.Time) {
			shouldTrack := true
			if i > 0 {
				if prevT, ok := segments[i-1].SegmentHistory().Get(id); ok {
					shouldTrack = prevT.Get(method) != nil
				}
			}
			if !shouldTrack {
				return
			}
			idx, v := trackBranch(segments, current, i, id, method)
			populatePrediction(&predictions, idx, v, greater)
		})
		if useCurrentRun {
			idx, v := trackCurrentRun(segments, current, i, method)
			populatePrediction(&predictions, idx, v, greater)
		}
		idx, v := trackPersonalBestRun(segments, current, i, method)
		populatePrediction(&predictions, idx, v, greater)
	}
	return predictions
}

// SumOfBest returns the total Sum-of-Best-Segments time, or nil if
// unreachable.
func SumOfBest(segments []*run.Segment, simpleCalculation, useCurrentRun bool, method timing.TimingMethod) *timing.Duration {
	return CalculateBest(segments, simpleCalculation, useCurrentRun, method)[len(segments)]
}

// SumOfWorst returns the total Sum-of-Worst-Segments time, or nil if
// unreachable.
func SumOfWorst(segments []*run.Segment, useCurrentRun bool, method timing.TimingMethod) *timing.Duration {
	return CalculateWorst(segments, useCurrentRun, method)[len(segments)]
}

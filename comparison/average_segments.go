package comparison

import (
	"github.com/nictuku/ooosplits/run"
	"github.com/nictuku/ooosplits/timing"
)

// averageSegmentsGenerator computes, per segment, the arithmetic mean of
// that segment's recorded durations, accumulated into a cumulative split
// time. Once a segment has no usable history at all, every later segment's
// comparison is left unset too, the same way Median Segments degrades (see
// median_segments.go).
type averageSegmentsGenerator struct{}

func (averageSegmentsGenerator) Name() string { return run.ComparisonAverageSegments }

func (averageSegmentsGenerator) Generate(r *run.Run) {
	segments := r.Segments()
	generateAverageForMethod(segments, timing.RealTime)
	generateAverageForMethod(segments, timing.GameTime)
}

func generateAverageForMethod(segments []*run.Segment, method timing.TimingMethod) {
	zero := timing.Duration(0)
	accumulated := &zero

	for i, seg := range segments {
		if accumulated != nil {
			var sum timing.Duration
			count := 0
			seg.SegmentHistory().IterActualRuns(func(id int32, t timing.Time) {
				v := t.Get(method)
				if v == nil {
					return
				}
				if skipCombinedEntry(segments, i, id, method) {
					return
				}
				sum += *v
				count++
			})
			if count == 0 {
				accumulated = nil
			} else {
				mean := timing.FromSeconds(sum.Seconds() / float64(count))
				s := *accumulated + mean
				accumulated = &s
			}
		}
		seg.SetComparison(run.ComparisonAverageSegments, seg.Comparison(run.ComparisonAverageSegments).With(method, accumulated))
	}
}

// skipCombinedEntry reports whether the history entry under id at segment i
// is the tail of a combined/skipped split: the previous segment recorded an
// entry under the same id but with no value for method, meaning the actual
// split boundary between them never happened this attempt.
func skipCombinedEntry(segments []*run.Segment, i int, id int32, method timing.TimingMethod) bool {
	if i == 0 {
		return false
	}
	prevT, ok := segments[i-1].SegmentHistory().Get(id)
	if !ok {
		return false
	}
	return prevT.Get(method) == nil
}

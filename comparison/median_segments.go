package comparison

import (
	"sort"

	"github.com/nictuku/ooosplits/run"
	"github.com/nictuku/ooosplits/timing"
)

// medianWeight is the per-older-attempt decay factor: the most recent
// attempt gets weight 1, the one before it 0.75, the one before that
// 0.5625, and so on, so the weighted median leans toward current form.
const medianWeight = 0.75

// medianSegmentsGenerator computes the Median Segments comparison: a
// weighted median (recent attempts weighted more heavily) over each
// segment's history, accumulated cumulatively.
type medianSegmentsGenerator struct{}

func (medianSegmentsGenerator) Name() string { return run.ComparisonMedianSegments }

func (medianSegmentsGenerator) Generate(r *run.Run) {
	segments := r.Segments()
	generateMedianForMethod(segments, timing.RealTime)
	generateMedianForMethod(segments, timing.GameTime)
}

type weightedSample struct {
	weight float64
	time   float64 // seconds
}

func generateMedianForMethod(segments []*run.Segment, method timing.TimingMethod) {
	zero := timing.Duration(0)
	accumulated := &zero
	var samples []weightedSample

	for i, seg := range segments {
		if accumulated != nil {
			samples = samples[:0]
			currentWeight := 1.0

			seg.SegmentHistory().IterActualRunsReverse(func(id int32, t timing.Time) {
				v := t.Get(method)
				if v == nil {
					return
				}
				if skipCombinedEntry(segments, i, id, method) {
					return
				}
				samples = append(samples, weightedSample{weight: currentWeight, time: v.Seconds()})
				currentWeight *= medianWeight
			})

			if len(samples) == 0 {
				accumulated = nil
			} else {
				sort.Slice(samples, func(a, b int) bool { return samples[a].time < samples[b].time })
				total := 0.0
				for k := range samples {
					samples[k].weight += total
					total = samples[k].weight
				}
				target := total / 2
				idx := sort.Search(len(samples), func(k int) bool { return samples[k].weight >= target })
				if idx >= len(samples) {
					idx = len(samples) - 1
				}
				s := *accumulated + timing.FromSeconds(samples[idx].time)
				accumulated = &s
			}
		}
		seg.SetComparison(run.ComparisonMedianSegments, seg.Comparison(run.ComparisonMedianSegments).With(method, accumulated))
	}
}

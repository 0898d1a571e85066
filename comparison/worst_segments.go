package comparison

import (
	"github.com/nictuku/ooosplits/analysis"
	"github.com/nictuku/ooosplits/run"
	"github.com/nictuku/ooosplits/timing"
)

// worstSegmentsGenerator is the Sum-of-Segments longest-path comparison.
type worstSegmentsGenerator struct{}

func (worstSegmentsGenerator) Name() string { return run.ComparisonWorstSegments }

func (worstSegmentsGenerator) Generate(r *run.Run) {
	segments := r.Segments()
	for _, method := range []timing.TimingMethod{timing.RealTime, timing.GameTime} {
		predictions := analysis.CalculateWorst(segments, false, method)
		for i, seg := range segments {
			seg.SetComparison(run.ComparisonWorstSegments, seg.Comparison(run.ComparisonWorstSegments).With(method, predictions[i+1]))
		}
	}
}

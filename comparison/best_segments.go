package comparison

import (
	"github.com/nictuku/ooosplits/analysis"
	"github.com/nictuku/ooosplits/run"
	"github.com/nictuku/ooosplits/timing"
)

// bestSegmentsGenerator is the Sum-of-Segments shortest-path comparison,
// using the full history (not the simplified/current-run variants).
type bestSegmentsGenerator struct{}

func (bestSegmentsGenerator) Name() string { return run.ComparisonBestSegments }

func (bestSegmentsGenerator) Generate(r *run.Run) {
	segments := r.Segments()
	for _, method := range []timing.TimingMethod{timing.RealTime, timing.GameTime} {
		predictions := analysis.CalculateBest(segments, false, false, method)
		for i, seg := range segments {
			seg.SetComparison(run.ComparisonBestSegments, seg.Comparison(run.ComparisonBestSegments).With(method, predictions[i+1]))
		}
	}
}

package comparison

import (
	"github.com/nictuku/ooosplits/run"
	"github.com/nictuku/ooosplits/timing"
)

// balancedPBGenerator is the Goal algorithm with the Personal Best's own
// final time as the target: it redistributes the PB's split times across
// segments the way the skill curve says a "typical" run at that overall
// pace would, smoothing out one-off lucky or unlucky segments within the PB
// itself.
type balancedPBGenerator struct{}

func (balancedPBGenerator) Name() string { return run.ComparisonBalancedPB }

func (balancedPBGenerator) Generate(r *run.Run) {
	segments := r.Segments()
	for _, method := range []timing.TimingMethod{timing.RealTime, timing.GameTime} {
		pb := lastPersonalBest(segments, method)
		if pb == nil {
			for _, seg := range segments {
				seg.SetComparison(run.ComparisonBalancedPB, seg.Comparison(run.ComparisonBalancedPB).With(method, nil))
			}
			continue
		}
		GenerateForTimingMethod(segments, method, *pb, run.ComparisonBalancedPB)
	}
}

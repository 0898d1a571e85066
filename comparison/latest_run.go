package comparison

import (
	"github.com/nictuku/ooosplits/run"
	"github.com/nictuku/ooosplits/timing"
)

// latestRunGenerator populates the split times of the most recently logged
// attempt, propagated forward: once a split time is known it's carried into
// later segments even if that attempt is missing an entry there (e.g. the
// runner reset before reaching it), rather than reverting to unknown.
type latestRunGenerator struct{}

func (latestRunGenerator) Name() string { return run.ComparisonLatestRun }

func (latestRunGenerator) Generate(r *run.Run) {
	segments := r.Segments()
	attempts := r.Attempts()
	if len(attempts) == 0 {
		for _, seg := range segments {
			seg.SetComparison(run.ComparisonLatestRun, timing.Time{})
		}
		return
	}
	id := attempts[len(attempts)-1].Index

	for _, method := range []timing.TimingMethod{timing.RealTime, timing.GameTime} {
		var cumulative *timing.Duration
		for _, seg := range segments {
			if t, ok := seg.SegmentHistory().Get(id); ok {
				if v := t.Get(method); v != nil {
					if cumulative == nil {
						c := *v
						cumulative = &c
					} else {
						c := *cumulative + *v
						cumulative = &c
					}
				}
			}
			seg.SetComparison(run.ComparisonLatestRun, seg.Comparison(run.ComparisonLatestRun).With(method, cumulative))
		}
	}
}

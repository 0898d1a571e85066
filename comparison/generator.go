// Package comparison implements the comparison generators: Best Segments,
// Worst Segments, Average Segments, Median Segments, Latest Run, Best Split
// Times, Balanced PB, and Goal. Each one populates a named comparison time
// into every segment of a Run, built on top of the analysis package's
// Sum-of-Segments solver and skill curve. Each segment keeps its
// comparisons in a run.Comparisons: an insertion-ordered name slice backed
// by a map.
package comparison

import (
	"github.com/nictuku/ooosplits/run"
	"github.com/nictuku/ooosplits/timing"
)

// Generator populates one named comparison across every segment of a run.
type Generator interface {
	// Name is the comparison name this generator writes.
	Name() string
	// Generate (re)computes the comparison from scratch, using the run's
	// segments and attempt log.
	Generate(r *run.Run)
}

// All returns every built-in generator, in the order GenerateAll applies
// them (the order of run.BuiltInComparisons, except that Latest Run comes
// before Best Split Times, minus
// Personal Best, which isn't a generator: its value lives directly on each
// Segment and GenerateAll just mirrors it into the comparisons map).
func All() []Generator {
	return []Generator{
		bestSegmentsGenerator{},
		worstSegmentsGenerator{},
		averageSegmentsGenerator{},
		medianSegmentsGenerator{},
		latestRunGenerator{},
		bestSplitTimesGenerator{},
		balancedPBGenerator{},
	}
}

// GenerateAll runs every built-in generator against r, overwriting each of
// their comparisons, and syncs the Personal Best comparison from each
// segment's own PersonalBestSplitTime field. The Editor and the Timer's
// commit-attempt step both call this after a change that can shift
// best/average/median figures.
func GenerateAll(r *run.Run) {
	for _, seg := range r.Segments() {
		pb := seg.PersonalBestSplitTime()
		seg.SetComparison(run.ComparisonPersonalBest, timing.Time{
			Real: pb.Get(timing.RealTime),
			Game: pb.Get(timing.GameTime),
		})
	}
	for _, g := range All() {
		g.Generate(r)
	}
}

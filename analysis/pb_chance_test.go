package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nictuku/ooosplits/run"
	"github.com/nictuku/ooosplits/timing"
)

// PB chance endpoints on completion. Run [A] with history 10,8,12.
// Starting a new attempt and splitting at 7 ends the run; PB chance = 1.0.
// Splitting at 9 ends the run; PB chance = 0.0.
func TestPBChanceEndpointsOnCompletion(t *testing.T) {
	a := run.NewSegment("A")
	a.SegmentHistory().Set(1, timing.RealOnly(timing.FromSeconds(10)))
	a.SegmentHistory().Set(2, timing.RealOnly(timing.FromSeconds(8)))
	a.SegmentHistory().Set(3, timing.RealOnly(timing.FromSeconds(12)))
	a.SetPersonalBestSplitTime(timing.RealOnly(timing.FromSeconds(8)))
	segs := []*run.Segment{a}

	beatPB := PBChance(segs, timing.RealTime, 1, timing.FromSeconds(7))
	assert.Equal(t, 1.0, beatPB)

	missedPB := PBChance(segs, timing.RealTime, 1, timing.FromSeconds(9))
	assert.Equal(t, 0.0, missedPB)
}

func TestPBChanceNoPBIsAlwaysCertain(t *testing.T) {
	a := run.NewSegment("A")
	segs := []*run.Segment{a}
	assert.Equal(t, 1.0, ForRun(segs, timing.RealTime))
}

func TestPBChanceClampsToImpossibleEndpoint(t *testing.T) {
	a := run.NewSegment("A")
	a.SegmentHistory().Set(1, timing.RealOnly(timing.FromSeconds(10)))
	a.SegmentHistory().Set(2, timing.RealOnly(timing.FromSeconds(20)))
	a.SegmentHistory().Set(3, timing.RealOnly(timing.FromSeconds(30)))
	a.SetPersonalBestSplitTime(timing.RealOnly(timing.FromSeconds(10)))
	segs := []*run.Segment{a}

	// A budget of 10s (the PB), no more than the fastest-ever segment (10s),
	// is impossible to beat from the start.
	impossible := PBChance(segs, timing.RealTime, 0, 0)
	assert.InDelta(t, 0.0, impossible, 1e-6)
}

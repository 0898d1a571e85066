package analysis

import (
	"sort"

	"github.com/nictuku/ooosplits/run"
	"github.com/nictuku/ooosplits/timing"
)

// SkillCurve holds, for each segment independently, the sorted vector of
// per-segment history durations, treated as an inverse CDF sampled at
// equally spaced percentiles in [0,1]. It backs both the Balanced
// PB/Goal comparison generators and the PB-chance metric.
type SkillCurve struct {
	samples [][]timing.Duration // per segment, ascending
}

// NewSkillCurve creates an empty curve; call ForSegments to populate it.
func NewSkillCurve() *SkillCurve {
	return &SkillCurve{}
}

// ForSegments rebuilds the curve from each segment's recorded history for
// the given timing method.
func (c *SkillCurve) ForSegments(segments []*run.Segment, method timing.TimingMethod) {
	c.samples = make([][]timing.Duration, len(segments))
	for i, seg := range segments {
		var values []timing.Duration
		seg.SegmentHistory().IterActualRuns(func(_ int32, t timing.Time) {
			if v := t.Get(method); v != nil {
				values = append(values, *v)
			}
		})
		sort.Slice(values, func(a, b int) bool { return values[a] < values[b] })
		c.samples[i] = values
	}
}

// Len returns the number of segments the curve currently covers.
func (c *SkillCurve) Len() int { return len(c.samples) }

// Truncate drops segments beyond newLen, used when a goal time only
// constrains a prefix of the run (e.g. no PB split exists past some point).
func (c *SkillCurve) Truncate(newLen int) {
	if newLen < len(c.samples) {
		c.samples = c.samples[:newLen]
	}
}

// sampleAt returns the duration at percentile p (0..1) for segment i,
// linearly interpolating between the two closest recorded samples. A
// segment with no history at all contributes zero.
func (c *SkillCurve) sampleAt(i int, p float64) timing.Duration {
	values := c.samples[i]
	if len(values) == 0 {
		return 0
	}
	if len(values) == 1 {
		return values[0]
	}
	if p <= 0 {
		return values[0]
	}
	if p >= 1 {
		return values[len(values)-1]
	}
	pos := p * float64(len(values)-1)
	lo := int(pos)
	hi := lo + 1
	if hi >= len(values) {
		return values[len(values)-1]
	}
	frac := pos - float64(lo)
	a, b := values[lo].Seconds(), values[hi].Seconds()
	return timing.FromSeconds(a + frac*(b-a))
}

// cumulativeAt sums sampleAt(i, p) for i in [0, segments) plus offset.
func (c *SkillCurve) cumulativeAt(p float64, offset timing.Duration) timing.Duration {
	total := offset
	for i := range c.samples {
		total += c.sampleAt(i, p)
	}
	return total
}

// FindPercentileForTime binary-searches for the percentile p in [0,1] such
// that offset + sum(sampleAt(i, p)) equals goalTime, clamping to the
// feasible range.
func (c *SkillCurve) FindPercentileForTime(offset, goalTime timing.Duration) float64 {
	lo, hi := 0.0, 1.0
	// 40 iterations of bisection narrow p to within 2^-40, far finer than
	// any displayed percentage needs.
	for i := 0; i < 40; i++ {
		mid := (lo + hi) / 2
		if c.cumulativeAt(mid, offset) < goalTime {
			lo = mid
		} else {
			hi = mid
		}
	}
	return (lo + hi) / 2
}

// SplitTimesAtPercentile returns the cumulative split time (offset included)
// for each segment at percentile p, one value per segment the curve
// currently covers.
func (c *SkillCurve) SplitTimesAtPercentile(p float64, offset timing.Duration) []timing.Duration {
	out := make([]timing.Duration, len(c.samples))
	total := offset
	for i := range c.samples {
		total += c.sampleAt(i, p)
		out[i] = total
	}
	return out
}

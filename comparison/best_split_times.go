package comparison

import (
	"github.com/nictuku/ooosplits/run"
	"github.com/nictuku/ooosplits/timing"
)

// bestSplitTimesGenerator populates, for every segment boundary
// independently, the minimum cumulative split time ever reached there by
// any single attempt (not necessarily the same attempt at every boundary).
type bestSplitTimesGenerator struct{}

func (bestSplitTimesGenerator) Name() string { return run.ComparisonBestSplitTimes }

func (bestSplitTimesGenerator) Generate(r *run.Run) {
	segments := r.Segments()
	ids := collectAllHistoryIDs(segments)

	for _, method := range []timing.TimingMethod{timing.RealTime, timing.GameTime} {
		mins := make([]*timing.Duration, len(segments))

		for _, id := range ids {
			var cumulative timing.Duration
			for i, seg := range segments {
				t, ok := seg.SegmentHistory().Get(id)
				if !ok {
					break
				}
				v := t.Get(method)
				if v == nil {
					break
				}
				cumulative += *v
				if mins[i] == nil || cumulative < *mins[i] {
					c := cumulative
					mins[i] = &c
				}
			}
		}

		for i, seg := range segments {
			seg.SetComparison(run.ComparisonBestSplitTimes, seg.Comparison(run.ComparisonBestSplitTimes).With(method, mins[i]))
		}
	}
}

// collectAllHistoryIDs returns the union of every attempt id recorded in any
// segment's history, in ascending order.
func collectAllHistoryIDs(segments []*run.Segment) []int32 {
	seen := make(map[int32]bool)
	var ids []int32
	for _, seg := range segments {
		seg.SegmentHistory().All(func(id int32, _ timing.Time) {
			if !seen[id] {
				seen[id] = true
				ids = append(ids, id)
			}
		})
	}
	sortInt32sAscending(ids)
	return ids
}

func sortInt32sAscending(s []int32) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j-1] > s[j]; j-- {
			s[j-1], s[j] = s[j], s[j-1]
		}
	}
}

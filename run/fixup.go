package run

import "github.com/nictuku/ooosplits/timing"

// FixSplits restores the Run's invariants after an edit: it reattaches
// orphaned segment history, clamps best-segment times against history and
// the segment durations implied by PB splits, and ensures every custom
// comparison name is present on every segment. It is idempotent.
func (r *Run) FixSplits() {
	r.reattachOrphanedHistory()
	r.clampBestSegments()
	r.ensureComparisonNames()
}

// attemptExists reports whether id names a real logged attempt.
func (r *Run) attemptExists(id int32) bool {
	for _, a := range r.attempts {
		if a.Index == id {
			return true
		}
	}
	return false
}

// reattachOrphanedHistory implements §4.B's fix-up: history entries whose
// attempt id (≥ 1) has no corresponding Attempt log entry are shifted down
// to the next available id ≤ 0, preserving the recorded times.
func (r *Run) reattachOrphanedHistory() {
	if len(r.segments) == 0 {
		return
	}

	// Find every orphaned positive id referenced by *any* segment's
	// history; every segment gets the same id remapped to the same new id,
	// since the history entries line up across segments for one attempt.
	orphaned := make(map[int32]bool)
	for _, seg := range r.segments {
		seg.history.All(func(id int32, _ timing.Time) {
			if id >= 1 && !r.attemptExists(id) {
				orphaned[id] = true
			}
		})
	}
	if len(orphaned) == 0 {
		return
	}

	// Find the lowest available id ≤ 0 across all segments, and
	// allocate downward (min_index - 1, min_index - 2, ...) for each
	// orphaned id, in ascending order of the orphaned id so the relative
	// order within the orphaned ids is preserved.
	nextFree := int32(0)
	for _, seg := range r.segments {
		if m := seg.history.MinIndex(); m-1 < nextFree {
			nextFree = m - 1
		}
	}

	orphanedIDs := make([]int32, 0, len(orphaned))
	for id := range orphaned {
		orphanedIDs = append(orphanedIDs, id)
	}
	sortInt32s(orphanedIDs)

	remap := make(map[int32]int32, len(orphanedIDs))
	for _, id := range orphanedIDs {
		remap[id] = nextFree
		nextFree--
	}

	for _, seg := range r.segments {
		replacement := SegmentHistory{}
		seg.history.All(func(id int32, t timing.Time) {
			if newID, ok := remap[id]; ok {
				replacement.Insert(newID, t)
			} else {
				replacement.Insert(id, t)
			}
		})
		seg.history = replacement
	}
}

func sortInt32s(s []int32) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j-1] > s[j]; j-- {
			s[j-1], s[j] = s[j], s[j-1]
		}
	}
}

// clampBestSegments implements invariant I4: best-segment-time of segment i
// must be ≤ min over the segment's history of that method's component, and
// ≤ the segment's own duration as implied by the current PB split times
// (personalBest[i] - personalBest[i-1]), whenever any such value exists.
// The PB-derived duration matters even with no recorded history at all: an
// Editor session that only ever calls SetSplitTime still produces a new
// best-segment time the moment the implied duration undercuts the previous
// one, exactly as plain PB edits do with no Timer attempt ever run.
func (r *Run) clampBestSegments() {
	for i, seg := range r.segments {
		prevPB := timing.Both(0)
		if i > 0 {
			prevPB = r.segments[i-1].personalBest
		}
		segDuration := seg.personalBest.Sub(prevPB)

		for _, method := range []timing.TimingMethod{timing.RealTime, timing.GameTime} {
			var best *timing.Duration
			if v := seg.bestSegment.Get(method); v != nil {
				m := *v
				best = &m
			}
			seg.history.All(func(_ int32, t timing.Time) {
				v := t.Get(method)
				if v != nil && (best == nil || *v < *best) {
					m := *v
					best = &m
				}
			})
			if v := segDuration.Get(method); v != nil && (best == nil || *v < *best) {
				m := *v
				best = &m
			}
			seg.bestSegment = seg.bestSegment.With(method, best)
		}
	}
}

// ensureComparisonNames implements invariant I5.
func (r *Run) ensureComparisonNames() {
	required := append([]string{}, BuiltInComparisons...)
	required = append(required, r.comparisonNames...)
	for _, seg := range r.segments {
		seg.comparisons.EnsureNames(required)
	}
}

// CheckPersonalBestMonotonic reports the first segment index (if any) where
// the PB split time regresses relative to the previous segment's PB split
// time for the given method, implementing the read side of invariant I3.
// The Editor surfaces this as a warning rather than refusing the edit (§4.F
// step 3).
func (r *Run) CheckPersonalBestMonotonic(method timing.TimingMethod) (badIndex int, ok bool) {
	var prev *timing.Duration
	for i, seg := range r.segments {
		v := seg.personalBest.Get(method)
		if v == nil {
			continue
		}
		if prev != nil && *v < *prev {
			return i, false
		}
		prev = v
	}
	return -1, true
}

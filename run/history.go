package run

import (
	"sort"

	"github.com/nictuku/ooosplits/timing"
)

// historyEntry pairs an attempt id with the Time recorded for it. Ids ≥ 1
// are real attempts; ids ≤ 0 are synthesized/unattached entries, e.g. from
// importing best-split times where no full attempt log exists.
type historyEntry struct {
	id   int32
	time timing.Time
}

// SegmentHistory is an ordered map from attempt id to Time, kept sorted by
// id at all times.
type SegmentHistory struct {
	entries []historyEntry
}

func (h *SegmentHistory) find(id int32) (pos int, found bool) {
	pos = sort.Search(len(h.entries), func(i int) bool { return h.entries[i].id >= id })
	found = pos < len(h.entries) && h.entries[pos].id == id
	return pos, found
}

// Insert adds (id, t) unless id is already present, in which case it is a
// no-op.
func (h *SegmentHistory) Insert(id int32, t timing.Time) {
	pos, found := h.find(id)
	if found {
		return
	}
	h.entries = append(h.entries, historyEntry{})
	copy(h.entries[pos+1:], h.entries[pos:])
	h.entries[pos] = historyEntry{id: id, time: t}
}

// Set inserts or overwrites the Time recorded for id.
func (h *SegmentHistory) Set(id int32, t timing.Time) {
	pos, found := h.find(id)
	if found {
		h.entries[pos].time = t
		return
	}
	h.Insert(id, t)
}

// Get returns the Time recorded for id, if any.
func (h *SegmentHistory) Get(id int32) (timing.Time, bool) {
	pos, found := h.find(id)
	if !found {
		return timing.Time{}, false
	}
	return h.entries[pos].time, true
}

// Remove deletes the entry for id, if present.
func (h *SegmentHistory) Remove(id int32) {
	pos, found := h.find(id)
	if !found {
		return
	}
	h.entries = append(h.entries[:pos], h.entries[pos+1:]...)
}

// Len returns the number of entries.
func (h *SegmentHistory) Len() int { return len(h.entries) }

// TryMinIndex returns the smallest id present, if any.
func (h *SegmentHistory) TryMinIndex() (int32, bool) {
	if len(h.entries) == 0 {
		return 0, false
	}
	return h.entries[0].id, true
}

// TryMaxIndex returns the largest id present, if any.
func (h *SegmentHistory) TryMaxIndex() (int32, bool) {
	if len(h.entries) == 0 {
		return 0, false
	}
	return h.entries[len(h.entries)-1].id, true
}

// MinIndex returns min(1, the smallest id present), defaulting to 1 when the
// history is empty. It's the id to use when allocating the *next* negative
// (synthesized) id, mirroring SegmentHistory::min_index.
func (h *SegmentHistory) MinIndex() int32 {
	m, ok := h.TryMinIndex()
	if !ok || m > 1 {
		return 1
	}
	return m
}

// IterActualRuns calls fn for every entry with id ≥ 1, in ascending order.
func (h *SegmentHistory) IterActualRuns(fn func(id int32, t timing.Time)) {
	pos := sort.Search(len(h.entries), func(i int) bool { return h.entries[i].id >= 1 })
	for _, e := range h.entries[pos:] {
		fn(e.id, e.time)
	}
}

// IterActualRunsReverse calls fn for every entry with id ≥ 1, in descending
// (most recent attempt first) order. Used by generators that weight recent
// attempts more heavily, e.g. Median Segments.
func (h *SegmentHistory) IterActualRunsReverse(fn func(id int32, t timing.Time)) {
	pos := sort.Search(len(h.entries), func(i int) bool { return h.entries[i].id >= 1 })
	for i := len(h.entries) - 1; i >= pos; i-- {
		fn(h.entries[i].id, h.entries[i].time)
	}
}

// All calls fn for every entry, ascending by id.
func (h *SegmentHistory) All(fn func(id int32, t timing.Time)) {
	for _, e := range h.entries {
		fn(e.id, e.time)
	}
}

// Retain keeps only entries for which keep returns true, in place.
func (h *SegmentHistory) Retain(keep func(id int32, t timing.Time) bool) {
	out := h.entries[:0]
	for _, e := range h.entries {
		if keep(e.id, e.time) {
			out = append(out, e)
		}
	}
	h.entries = out
}

// Clone returns a deep copy.
func (h *SegmentHistory) Clone() SegmentHistory {
	out := SegmentHistory{entries: make([]historyEntry, len(h.entries))}
	copy(out.entries, h.entries)
	return out
}

package editor

import "github.com/nictuku/ooosplits/run"

// InsertSegmentAbove inserts a new, empty segment named name above index i
// (clamped to the start or the end of the list if i is out of range).
func (e *Editor) InsertSegmentAbove(i int, name string) []Warning {
	e.insertAt(i, name)
	return e.fixUp()
}

// InsertSegmentBelow inserts a new, empty segment named name below index i.
func (e *Editor) InsertSegmentBelow(i int, name string) []Warning {
	e.insertAt(i+1, name)
	return e.fixUp()
}

func (e *Editor) insertAt(i int, name string) {
	segs := e.r.Segments()
	if i < 0 {
		i = 0
	}
	if i > len(segs) {
		i = len(segs)
	}
	out := make([]*run.Segment, 0, len(segs)+1)
	out = append(out, segs[:i]...)
	out = append(out, run.NewSegment(name))
	out = append(out, segs[i:]...)
	e.r.SetSegments(out)
	e.reindexSelection(func(idx int) int {
		if idx >= i {
			return idx + 1
		}
		return idx
	})
}

// RemoveSelectedSegments deletes every currently selected segment.
func (e *Editor) RemoveSelectedSegments() []Warning {
	segs := e.r.Segments()
	out := make([]*run.Segment, 0, len(segs))
	for i, seg := range segs {
		if !e.selected[i] {
			out = append(out, seg)
		}
	}
	e.r.SetSegments(out)
	e.selected = make(map[int]bool)
	return e.fixUp()
}

// SelectSegment marks segment i as selected. If additive is false, it first
// clears any existing selection.
func (e *Editor) SelectSegment(i int, additive bool) {
	if !additive {
		e.selected = make(map[int]bool)
	}
	e.selected[i] = true
}

// ClearSelection deselects every segment.
func (e *Editor) ClearSelection() {
	e.selected = make(map[int]bool)
}

// SelectedIndices returns the currently selected segment indices, ascending.
func (e *Editor) SelectedIndices() []int {
	out := make([]int, 0, len(e.selected))
	for i := range e.selected {
		out = append(out, i)
	}
	sortInts(out)
	return out
}

// MoveSegmentsUp swaps every selected segment with its predecessor, in
// ascending order, so a contiguous selection moves as a block. Selections
// already at the top are left in place.
func (e *Editor) MoveSegmentsUp() []Warning {
	segs := e.r.Segments()
	indices := e.SelectedIndices()
	for _, i := range indices {
		if i == 0 || e.selected[i-1] {
			continue
		}
		segs[i-1], segs[i] = segs[i], segs[i-1]
		delete(e.selected, i)
		e.selected[i-1] = true
	}
	return e.fixUp()
}

// MoveSegmentsDown swaps every selected segment with its successor, in
// descending order.
func (e *Editor) MoveSegmentsDown() []Warning {
	segs := e.r.Segments()
	indices := e.SelectedIndices()
	for k := len(indices) - 1; k >= 0; k-- {
		i := indices[k]
		if i == len(segs)-1 || e.selected[i+1] {
			continue
		}
		segs[i+1], segs[i] = segs[i], segs[i+1]
		delete(e.selected, i)
		e.selected[i+1] = true
	}
	return e.fixUp()
}

func (e *Editor) reindexSelection(remap func(int) int) {
	out := make(map[int]bool, len(e.selected))
	for i := range e.selected {
		out[remap(i)] = true
	}
	e.selected = out
}

func sortInts(s []int) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j-1] > s[j]; j-- {
			s[j-1], s[j] = s[j], s[j-1]
		}
	}
}

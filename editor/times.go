package editor

import "github.com/nictuku/ooosplits/timing"

// SetSegmentName renames segment i.
func (e *Editor) SetSegmentName(i int, name string) []Warning {
	segs := e.r.Segments()
	if i < 0 || i >= len(segs) {
		return nil
	}
	segs[i].SetName(name)
	return e.fixUp()
}

// SetSplitTime parses text and sets segment i's cumulative PB split time for
// method. An invalid time string is reported as an error; a value that
// regresses relative to the previous segment is still stored, but surfaced
// as a Warning by fixUp.
func (e *Editor) SetSplitTime(i int, method timing.TimingMethod, text string) ([]Warning, error) {
	segs := e.r.Segments()
	if i < 0 || i >= len(segs) {
		return nil, nil
	}
	d, err := timing.ParseDuration(text)
	if err != nil {
		return nil, err
	}
	segs[i].SetPersonalBestSplitTime(segs[i].PersonalBestSplitTime().With(method, &d))
	return e.fixUp(), nil
}

// ClearSplitTime removes segment i's PB split time component for method.
func (e *Editor) ClearSplitTime(i int, method timing.TimingMethod) []Warning {
	segs := e.r.Segments()
	if i < 0 || i >= len(segs) {
		return nil
	}
	segs[i].SetPersonalBestSplitTime(segs[i].PersonalBestSplitTime().With(method, nil))
	return e.fixUp()
}

// SetSegmentTime parses text as the desired *duration* of segment i (not a
// cumulative split time) and shifts segment i's and every later segment's
// cumulative PB split time by the resulting delta, so that every other
// segment's own duration is unchanged.
func (e *Editor) SetSegmentTime(i int, method timing.TimingMethod, text string) ([]Warning, error) {
	segs := e.r.Segments()
	if i < 0 || i >= len(segs) {
		return nil, nil
	}
	wanted, err := timing.ParseDuration(text)
	if err != nil {
		return nil, err
	}

	prev := timing.Both(0)
	if i > 0 {
		prev = segs[i-1].PersonalBestSplitTime()
	}
	prevV := prev.Get(method)
	if prevV == nil {
		return nil, nil
	}
	newCumulative := *prevV + wanted

	oldCumulative := segs[i].PersonalBestSplitTime().Get(method)
	var delta timing.Duration
	if oldCumulative != nil {
		delta = newCumulative - *oldCumulative
	} else {
		delta = 0
	}

	for j := i; j < len(segs); j++ {
		v := segs[j].PersonalBestSplitTime().Get(method)
		if v == nil {
			continue
		}
		shifted := *v + delta
		if j == i {
			shifted = newCumulative
		}
		segs[j].SetPersonalBestSplitTime(segs[j].PersonalBestSplitTime().With(method, &shifted))
	}

	return e.fixUp(), nil
}

// SetBestSegmentTime parses text and sets segment i's best-segment time for
// method. The fix-up pipeline re-clamps it afterward (spec §4.F step 2)
// against history and the segment duration implied by the PB splits, so a
// value slower than any of those is silently lowered to the fastest of them.
func (e *Editor) SetBestSegmentTime(i int, method timing.TimingMethod, text string) ([]Warning, error) {
	segs := e.r.Segments()
	if i < 0 || i >= len(segs) {
		return nil, nil
	}
	d, err := timing.ParseDuration(text)
	if err != nil {
		return nil, err
	}
	segs[i].SetBestSegmentTime(segs[i].BestSegmentTime().With(method, &d))
	return e.fixUp(), nil
}

// SetComparisonTime parses text and sets segment i's value for the named
// comparison and method directly — used for custom comparisons a host lets
// the runner hand-author (e.g. a race-against-a-friend's splits).
func (e *Editor) SetComparisonTime(i int, comparisonName string, method timing.TimingMethod, text string) ([]Warning, error) {
	segs := e.r.Segments()
	if i < 0 || i >= len(segs) {
		return nil, nil
	}
	d, err := timing.ParseDuration(text)
	if err != nil {
		return nil, err
	}
	segs[i].SetComparison(comparisonName, segs[i].Comparison(comparisonName).With(method, &d))
	return e.fixUp(), nil
}

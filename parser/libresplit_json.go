package parser

import (
	"encoding/json"
	"fmt"

	"github.com/nictuku/ooosplits/run"
	"github.com/nictuku/ooosplits/timing"
)

// LibreSplit/Urn's JSON shape: a flat "splits" array, each entry carrying
// the segment's name, its best recorded segment time ("best_time"), and
// the PB's per-segment (not cumulative) time ("time"). Urn stores
// per-segment durations, not cumulative split times, so the codec
// accumulates them into this engine's cumulative PersonalBestSplitTime.
type libreSplitFile struct {
	Title    string            `json:"title"`
	Category string            `json:"category"`
	Attempts int32             `json:"attempt_count"`
	Splits   []libreSplitEntry `json:"splits"`
}

type libreSplitEntry struct {
	Name     string   `json:"name"`
	Time     *float64 `json:"time"`
	BestTime *float64 `json:"best_time"`
}

func parseLibreSplitJSON(data []byte, sourcePath string) (*run.Run, error) {
	var f libreSplitFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadEncoding, err)
	}

	r := run.New()
	r.GameName = f.Title
	r.CategoryName = f.Category
	r.AttemptCount = f.Attempts
	r.LinkedFile = sourcePath

	segs := make([]*run.Segment, 0, len(f.Splits))
	var cumulative timing.Duration
	for _, e := range f.Splits {
		seg := run.NewSegment(e.Name)
		if e.Time != nil {
			cumulative += timing.FromSeconds(*e.Time)
			pb := cumulative
			seg.SetPersonalBestSplitTime(timing.RealOnly(pb))
		}
		if e.BestTime != nil {
			best := timing.FromSeconds(*e.BestTime)
			seg.SetBestSegmentTime(timing.RealOnly(best))
		}
		segs = append(segs, seg)
	}
	r.SetSegments(segs)
	return r, nil
}

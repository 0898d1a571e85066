package store

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/nictuku/ooosplits/editor"
	"github.com/nictuku/ooosplits/run"
	"github.com/nictuku/ooosplits/timing"
)

// legacyJSON is an older ad hoc export format: a flat
// title/category/split-names/personal-best document with no versioning or
// format marker of its own. It predates the parser package's dispatch table
// and is never auto-detected by it; a caller that knows it's handling one
// of these files calls ImportLegacyJSON directly.
type legacyJSON struct {
	Title        string          `json:"title"`
	Category     string          `json:"category"`
	Attempts     int             `json:"attempts"`
	Completed    int             `json:"completed"`
	SplitNames   []string        `json:"split_names"`
	PersonalBest *legacyPersonal `json:"personal_best"`
}

type legacyPersonal struct {
	Attempt int           `json:"attempt"`
	Splits  []legacySplit `json:"splits"`
}

type legacySplit struct {
	Time string `json:"time"`
}

// ImportLegacyJSON reads path in the legacy ad hoc JSON export format and
// builds a Run from it: one segment per split name, with the
// personal best's cumulative split times (if present) set as each
// segment's PersonalBestSplitTime, and AttemptCount seeded from the
// recorded attempts counter (the completed counter is not read).
func ImportLegacyJSON(path string) (*run.Run, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("store: reading legacy JSON %s: %w", path, err)
	}
	var doc legacyJSON
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("store: parsing legacy JSON %s: %w", path, err)
	}
	if len(doc.SplitNames) == 0 {
		return nil, fmt.Errorf("store: legacy JSON %s has no split_names", path)
	}

	r := run.New()
	r.GameName = doc.Title
	r.CategoryName = doc.Category
	r.AttemptCount = int32(doc.Attempts)
	r.NewRunID()

	e := editor.New(r)
	for i, name := range doc.SplitNames {
		e.InsertSegmentBelow(i-1, name)
	}
	closed, err := e.Close()
	if err != nil {
		return nil, fmt.Errorf("store: building run from legacy JSON %s: %w", path, err)
	}

	if doc.PersonalBest != nil {
		applyLegacyPersonalBest(closed, doc.PersonalBest.Splits)
	}
	return closed, nil
}

// applyLegacyPersonalBest parses each split's cumulative "m:ss.fff" (or
// "ss.fff") time string and sets the matching segment's
// PersonalBestSplitTime, mirroring the parsing speedrun/import.go did by
// hand with fmt.Sscanf against ":"-split fields.
func applyLegacyPersonalBest(r *run.Run, splits []legacySplit) {
	segs := r.Segments()
	for i, split := range splits {
		if i >= len(segs) {
			break
		}
		d, err := timing.ParseDuration(split.Time)
		if err != nil {
			continue
		}
		segs[i].SetPersonalBestSplitTime(timing.Time{Real: &d})
	}
}

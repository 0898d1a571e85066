// Package parser implements the generic split-file parser dispatch:
// probing an unknown byte blob for magic bytes/structural markers and
// handing it to the matching format's codec. Concrete codecs for
// third-party formats are mostly thin, since decoding them is rarely
// interesting engineering; only LiveSplit XML (the one format Save
// supports) and LibreSplit/Urn JSON (the simplest real JSON example) are
// fully implemented here. The rest detect correctly and return
// ErrNotImplemented.
package parser

import (
	"bytes"
	"strings"

	"github.com/nictuku/ooosplits/run"
)

// ParsedRun is a successfully decoded Run plus the format it was detected
// as.
type ParsedRun struct {
	Run    *run.Run
	Format Format
}

// llanfairMagic is Llanfair's save-file magic byte sequence.
var llanfairMagic = []byte{0xAC, 0xED, 0x00, 0x05}

// Parse detects data's split-file format by magic bytes/structural markers
// and decodes it. sourcePath is used only to resolve sibling icon files for
// formats that need it and may be empty.
func Parse(data []byte, sourcePath string) (*ParsedRun, error) {
	format := detect(data)
	switch format {
	case FormatLiveSplitXML:
		r, err := parseLiveSplitXML(data, sourcePath)
		if err != nil {
			return nil, err
		}
		return &ParsedRun{Run: r, Format: format}, nil
	case FormatLibreSplitJSON:
		r, err := parseLibreSplitJSON(data, sourcePath)
		if err != nil {
			return nil, err
		}
		return &ParsedRun{Run: r, Format: format}, nil
	case FormatUnknown:
		return nil, ErrUnknownFormat
	default:
		return nil, ErrNotImplemented
	}
}

func detect(data []byte) Format {
	trimmed := bytes.TrimSpace(data)

	switch {
	case looksLikeLiveSplitXML(trimmed):
		return FormatLiveSplitXML
	case looksLikeJSONWithKeys(trimmed, "title", "splits", "golds"):
		return FormatFlitterJSON
	case looksLikeJSONWithKeys(trimmed, `"splits":{"game"`):
		return FormatSplitterinoJSON
	case looksLikeLibreSplitJSON(trimmed):
		return FormatLibreSplitJSON
	case looksLikeJSONWithKeys(trimmed, "splits", "attemptHistory") && bytes.Contains(trimmed, []byte(`"gameName"`)):
		return FormatOpenSplitJSON
	case looksLikeJSONWithKeys(trimmed, "splits", "worstTimes"):
		return FormatWorstRunJSON
	case looksLikeJSONWithKeys(trimmed, "splits", "sourceLiveTimer"):
		return FormatSourceLiveTimerJSON
	case bytes.HasPrefix(trimmed, llanfairMagic):
		return FormatLlanfairBinary
	case looksLikeLlanfairGeredXML(trimmed):
		return FormatLlanfairGeredXML
	case looksLikeTimeSplitTrackerText(trimmed):
		return FormatTimeSplitTrackerText
	case looksLikeWSplitText(trimmed):
		return FormatWSplitText
	case looksLikeFaceSplitText(trimmed):
		return FormatFaceSplitText
	case looksLikePortal2CSV(trimmed):
		return FormatPortal2LiveTimerCSV
	default:
		return FormatUnknown
	}
}

func looksLikeLiveSplitXML(data []byte) bool {
	if !bytes.HasPrefix(data, []byte("<?xml")) && !bytes.HasPrefix(data, []byte("<Run")) {
		return false
	}
	return bytes.Contains(data, []byte("<Run")) && bytes.Contains(data, []byte("version="))
}

func looksLikeLlanfairGeredXML(data []byte) bool {
	return bytes.HasPrefix(data, []byte("<?xml")) && bytes.Contains(data, []byte("<run>"))
}

func looksLikeJSONWithKeys(data []byte, keys ...string) bool {
	if len(data) == 0 || data[0] != '{' {
		return false
	}
	for _, k := range keys {
		needle := k
		if !strings.HasPrefix(k, `"`) {
			needle = `"` + k + `"`
		}
		if !bytes.Contains(data, []byte(needle)) {
			return false
		}
	}
	return true
}

// looksLikeLibreSplitJSON detects a top-level "splits" array whose elements
// carry "time"/"best_time" fields, distinguishing Urn/LibreSplit's shape
// from the other "splits"-keyed JSON formats.
func looksLikeLibreSplitJSON(data []byte) bool {
	if len(data) == 0 || data[0] != '{' {
		return false
	}
	if !bytes.Contains(data, []byte(`"splits"`)) {
		return false
	}
	idx := bytes.Index(data, []byte(`"splits"`))
	if idx < 0 {
		return false
	}
	rest := data[idx:]
	arrIdx := bytes.IndexByte(rest, '[')
	if arrIdx < 0 {
		return false
	}
	return bytes.Contains(rest, []byte(`"time"`)) || bytes.Contains(rest, []byte(`"best_time"`))
}

func looksLikeTimeSplitTrackerText(data []byte) bool {
	firstLine := firstLineOf(data)
	return strings.Count(firstLine, "\t") >= 1 && !bytes.HasPrefix(data, []byte("{")) && !bytes.HasPrefix(data, []byte("<"))
}

func looksLikeWSplitText(data []byte) bool {
	firstLine := firstLineOf(data)
	return strings.Contains(firstLine, "=") && !strings.Contains(firstLine, "\t") && !bytes.HasPrefix(data, []byte("{"))
}

func looksLikeFaceSplitText(data []byte) bool {
	firstLine := firstLineOf(data)
	return strings.Count(firstLine, "-") >= 2 && !strings.Contains(firstLine, "=") && !strings.Contains(firstLine, "\t")
}

func looksLikePortal2CSV(data []byte) bool {
	firstLine := firstLineOf(data)
	return strings.Count(firstLine, ",") >= 2
}

func firstLineOf(data []byte) string {
	if idx := bytes.IndexByte(data, '\n'); idx >= 0 {
		return string(data[:idx])
	}
	return string(data)
}

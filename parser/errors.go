package parser

import "errors"

// Errors returned by Parse/Save.
var (
	ErrUnknownFormat          = errors.New("parser: unrecognized split file format")
	ErrTruncated              = errors.New("parser: truncated input")
	ErrBadEncoding            = errors.New("parser: bad encoding")
	ErrNegativeTimeNotAllowed = errors.New("parser: negative time not allowed in this context")
	ErrDuplicateComparison    = errors.New("parser: duplicate comparison name")
	ErrReservedComparisonName = errors.New("parser: comparison name uses the reserved \"[Race]\" prefix")

	// ErrNotImplemented is returned by the stub codecs for formats that are
	// recognized in the dispatch order but not fully decoded: detection
	// still works, decoding doesn't.
	ErrNotImplemented = errors.New("parser: format recognized but not implemented")
)

// Format names every split-file format Parse can detect, in dispatch
// order.
type Format int

const (
	FormatUnknown Format = iota
	FormatLiveSplitXML
	FormatFlitterJSON
	FormatSplitterinoJSON
	FormatLibreSplitJSON
	FormatOpenSplitJSON
	FormatWorstRunJSON
	FormatSourceLiveTimerJSON
	FormatLlanfairBinary
	FormatLlanfairGeredXML
	FormatTimeSplitTrackerText
	FormatWSplitText
	FormatFaceSplitText
	FormatPortal2LiveTimerCSV
)

func (f Format) String() string {
	switch f {
	case FormatLiveSplitXML:
		return "LiveSplit XML"
	case FormatFlitterJSON:
		return "Flitter JSON"
	case FormatSplitterinoJSON:
		return "Splitterino JSON"
	case FormatLibreSplitJSON:
		return "LibreSplit/Urn JSON"
	case FormatOpenSplitJSON:
		return "OpenSplit JSON"
	case FormatWorstRunJSON:
		return "WorstRun JSON"
	case FormatSourceLiveTimerJSON:
		return "SourceLiveTimer JSON"
	case FormatLlanfairBinary:
		return "Llanfair binary"
	case FormatLlanfairGeredXML:
		return "Llanfair Gered XML"
	case FormatTimeSplitTrackerText:
		return "Time Split Tracker text"
	case FormatWSplitText:
		return "WSplit text"
	case FormatFaceSplitText:
		return "FaceSplit text"
	case FormatPortal2LiveTimerCSV:
		return "Portal 2 Live Timer CSV"
	default:
		return "unknown"
	}
}

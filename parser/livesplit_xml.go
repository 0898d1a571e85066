package parser

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"time"

	"github.com/nictuku/ooosplits/run"
	"github.com/nictuku/ooosplits/timing"
)

// LiveSplit XML is the one format Save supports, version 1.8. The element
// shapes below are the subset of the real LiveSplit schema this engine's
// data model can round-trip: Segments/SplitTimes/BestSegmentTime/
// SegmentHistory per segment, AttemptHistory for the attempt log, and the
// run's identity/metadata fields.

type xmlRun struct {
	XMLName        xml.Name         `xml:"Run"`
	Version        string           `xml:"version,attr"`
	GameIcon       string           `xml:"GameIcon"`
	GameName       string           `xml:"GameName"`
	CategoryName   string           `xml:"CategoryName"`
	Metadata       xmlMetadata      `xml:"Metadata"`
	Offset         string           `xml:"Offset"`
	AttemptCount   int32            `xml:"AttemptCount"`
	AttemptHistory xmlAttemptLog    `xml:"AttemptHistory"`
	Segments       xmlSegmentList   `xml:"Segments"`
}

type xmlMetadata struct {
	RunID    xmlRunID    `xml:"Run"`
	Platform xmlPlatform `xml:"Platform"`
	Region   string      `xml:"Region"`
}

type xmlRunID struct {
	ID string `xml:"id,attr"`
}

type xmlPlatform struct {
	UsesEmulator bool   `xml:"usesEmulator,attr"`
	Name         string `xml:",chardata"`
}

type xmlAttemptLog struct {
	Attempts []xmlAttempt `xml:"Attempt"`
}

type xmlAttempt struct {
	ID       int32  `xml:"id,attr"`
	Started  string `xml:"started,attr,omitempty"`
	Ended    string `xml:"ended,attr,omitempty"`
	RealTime string `xml:"RealTime,omitempty"`
	GameTime string `xml:"GameTime,omitempty"`
	PauseTime string `xml:"PauseTime,omitempty"`
}

type xmlSegmentList struct {
	Segments []xmlSegment `xml:"Segment"`
}

type xmlSegment struct {
	Name            string            `xml:"Name"`
	Icon            string            `xml:"Icon"`
	SplitTimes      xmlSplitTimes     `xml:"SplitTimes"`
	BestSegmentTime xmlTimePair       `xml:"BestSegmentTime"`
	SegmentHistory  xmlSegmentHistory `xml:"SegmentHistory"`
}

type xmlSplitTimes struct {
	SplitTime []xmlNamedTime `xml:"SplitTime"`
}

type xmlNamedTime struct {
	Name     string `xml:"name,attr"`
	RealTime string `xml:"RealTime,omitempty"`
	GameTime string `xml:"GameTime,omitempty"`
}

type xmlTimePair struct {
	RealTime string `xml:"RealTime,omitempty"`
	GameTime string `xml:"GameTime,omitempty"`
}

type xmlSegmentHistory struct {
	Times []xmlHistoryTime `xml:"Time"`
}

type xmlHistoryTime struct {
	ID       int32  `xml:"id,attr"`
	RealTime string `xml:"RealTime,omitempty"`
	GameTime string `xml:"GameTime,omitempty"`
}

const liveSplitXMLVersion = "1.8.0"
const xmlTimeLayout = "01/02/2006 15:04:05"

func formatXMLTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(xmlTimeLayout)
}

func parseXMLTime(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(xmlTimeLayout, s)
	if err != nil {
		return nil
	}
	return &t
}

func formatXMLDuration(d *timing.Duration) string {
	if d == nil {
		return ""
	}
	return (&timing.Formatter{Accuracy: timing.AccuracyMilliseconds, Digits: timing.DigitsFormatDoubleDigitHours, WhenMissing: timing.EmptyString}).Format(d)
}

func parseXMLDuration(s string) *timing.Duration {
	if s == "" {
		return nil
	}
	d, err := timing.ParseDuration(s)
	if err != nil {
		return nil
	}
	return &d
}

func parseLiveSplitXML(data []byte, sourcePath string) (*run.Run, error) {
	var x xmlRun
	if err := xml.Unmarshal(data, &x); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadEncoding, err)
	}

	r := run.New()
	r.GameName = x.GameName
	r.CategoryName = x.CategoryName
	r.AttemptCount = x.AttemptCount
	r.RunID = x.Metadata.RunID.ID
	r.Metadata.Platform = x.Metadata.Platform.Name
	r.Metadata.EmulatorUsed = x.Metadata.Platform.UsesEmulator
	r.Metadata.Region = x.Metadata.Region
	r.LinkedFile = sourcePath
	if off := parseXMLDuration(x.Offset); off != nil {
		r.Offset = *off
	}

	segs := make([]*run.Segment, 0, len(x.Segments.Segments))
	for _, xs := range x.Segments.Segments {
		seg := run.NewSegment(xs.Name)
		for _, st := range xs.SplitTimes.SplitTime {
			seg.SetComparison(st.Name, timing.Time{Real: parseXMLDuration(st.RealTime), Game: parseXMLDuration(st.GameTime)})
		}
		if pb, ok := findNamedTime(xs.SplitTimes.SplitTime, run.ComparisonPersonalBest); ok {
			seg.SetPersonalBestSplitTime(timing.Time{Real: parseXMLDuration(pb.RealTime), Game: parseXMLDuration(pb.GameTime)})
		}
		seg.SetBestSegmentTime(timing.Time{Real: parseXMLDuration(xs.BestSegmentTime.RealTime), Game: parseXMLDuration(xs.BestSegmentTime.GameTime)})
		for _, ht := range xs.SegmentHistory.Times {
			seg.SegmentHistory().Insert(ht.ID, timing.Time{Real: parseXMLDuration(ht.RealTime), Game: parseXMLDuration(ht.GameTime)})
		}
		segs = append(segs, seg)
	}
	r.SetSegments(segs)

	attempts := make([]run.Attempt, 0, len(x.AttemptHistory.Attempts))
	for _, xa := range x.AttemptHistory.Attempts {
		a := run.Attempt{
			Index:   xa.ID,
			Time:    timing.Time{Real: parseXMLDuration(xa.RealTime), Game: parseXMLDuration(xa.GameTime)},
			Started: parseXMLTime(xa.Started),
			Ended:   parseXMLTime(xa.Ended),
		}
		a.PauseTime = parseXMLDuration(xa.PauseTime)
		attempts = append(attempts, a)
	}
	r.SetAttempts(attempts)

	return r, nil
}

func findNamedTime(times []xmlNamedTime, name string) (xmlNamedTime, bool) {
	for _, t := range times {
		if t.Name == name {
			return t, true
		}
	}
	return xmlNamedTime{}, false
}

// Save emits r as LiveSplit XML version 1.8, the only output format
// Save supports.
func Save(r *run.Run, w io.Writer) error {
	x := xmlRun{
		Version:      liveSplitXMLVersion,
		GameIcon:     string(r.GameIcon.Data),
		GameName:     r.GameName,
		CategoryName: r.CategoryName,
		AttemptCount: r.AttemptCount,
		Offset:       formatXMLDuration(&r.Offset),
		Metadata: xmlMetadata{
			RunID:    xmlRunID{ID: r.RunID},
			Platform: xmlPlatform{UsesEmulator: r.Metadata.EmulatorUsed, Name: r.Metadata.Platform},
			Region:   r.Metadata.Region,
		},
	}

	for _, a := range r.Attempts() {
		x.AttemptHistory.Attempts = append(x.AttemptHistory.Attempts, xmlAttempt{
			ID:        a.Index,
			Started:   formatXMLTime(a.Started),
			Ended:     formatXMLTime(a.Ended),
			RealTime:  formatXMLDuration(a.Time.Real),
			GameTime:  formatXMLDuration(a.Time.Game),
			PauseTime: formatXMLDuration(a.PauseTime),
		})
	}

	for _, seg := range r.Segments() {
		xs := xmlSegment{
			Name: seg.Name(),
			Icon: string(seg.Icon().Data),
			BestSegmentTime: xmlTimePair{
				RealTime: formatXMLDuration(seg.BestSegmentTime().Real),
				GameTime: formatXMLDuration(seg.BestSegmentTime().Game),
			},
		}
		for _, name := range seg.Comparisons().Names() {
			t := seg.Comparison(name)
			xs.SplitTimes.SplitTime = append(xs.SplitTimes.SplitTime, xmlNamedTime{
				Name:     name,
				RealTime: formatXMLDuration(t.Real),
				GameTime: formatXMLDuration(t.Game),
			})
		}
		seg.SegmentHistory().All(func(id int32, t timing.Time) {
			xs.SegmentHistory.Times = append(xs.SegmentHistory.Times, xmlHistoryTime{
				ID:       id,
				RealTime: formatXMLDuration(t.Real),
				GameTime: formatXMLDuration(t.Game),
			})
		})
		x.Segments.Segments = append(x.Segments.Segments, xs)
	}

	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")
	if err := enc.Encode(x); err != nil {
		return fmt.Errorf("parser: saving LiveSplit XML: %w", err)
	}
	_, err := w.Write(buf.Bytes())
	return err
}

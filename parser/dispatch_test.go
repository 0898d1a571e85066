package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectOrdersFormatsAsSpecified(t *testing.T) {
	cases := []struct {
		name string
		data string
		want Format
	}{
		{"flitter", `{"title":"x","splits":[],"golds":[]}`, FormatFlitterJSON},
		{"splitterino", `{"splits":{"game":"x","timing":"rta"}}`, FormatSplitterinoJSON},
		{"libresplit", `{"splits":[{"name":"a","time":1,"best_time":2}]}`, FormatLibreSplitJSON},
		{"opensplit", `{"gameName":"x","splits":[],"attemptHistory":[]}`, FormatOpenSplitJSON},
		{"worstrun", `{"splits":[],"worstTimes":[]}`, FormatWorstRunJSON},
		{"sourcelivetimer", `{"splits":[],"sourceLiveTimer":true}`, FormatSourceLiveTimerJSON},
		{"llanfairgered", "<?xml version=\"1.0\"?>\n<run>\n</run>", FormatLlanfairGeredXML},
		{"timesplittracker", "Title\tAttempts\nSeg\t1:00\t2:00\n", FormatTimeSplitTrackerText},
		{"wsplit", "title=My Game\nsize=2\n", FormatWSplitText},
		{"facesplit", "Seg-1-2-3\nSeg2-4-5-6\n", FormatFaceSplitText},
		{"portal2", "Chamber01,1.5,0\nChamber02,2.5,0\n", FormatPortal2LiveTimerCSV},
		{"unknown", "not a split file at all", FormatUnknown},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, detect([]byte(tc.data)))
		})
	}
}

func TestDetectLiveSplitXMLRequiresVersionAttribute(t *testing.T) {
	data := []byte(`<?xml version="1.0"?><Run version="1.7.0"></Run>`)
	assert.Equal(t, FormatLiveSplitXML, detect(data))
}

func TestParseUnknownFormatReturnsError(t *testing.T) {
	_, err := Parse([]byte("garbage"), "")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestParseDetectedButUnimplementedFormatReturnsNotImplemented(t *testing.T) {
	_, err := Parse([]byte(`{"title":"x","splits":[],"golds":[]}`), "")
	assert.ErrorIs(t, err, ErrNotImplemented)
}

package timing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDuration(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"4.5", 4.5},
		{"1:02.5", 62.5},
		{"1:00:00", 3600},
		{"-1:02.5", -62.5},
		{"0:30", 30},
	}
	for _, c := range cases {
		d, err := ParseDuration(c.in)
		require.NoError(t, err, c.in)
		assert.InDelta(t, c.want, d.Seconds(), 1e-9, c.in)
	}
}

func TestParseDurationErrors(t *testing.T) {
	_, err := ParseDuration("")
	assert.Error(t, err)
	_, err = ParseDuration("1:2:3:4")
	assert.Error(t, err)
}

func TestTimeArithmeticNonePropagates(t *testing.T) {
	a := Time{Real: dptr(FromSeconds(10))}
	b := Time{Real: dptr(FromSeconds(3)), Game: dptr(FromSeconds(1))}

	sum := a.Add(b)
	require.NotNil(t, sum.Real)
	assert.InDelta(t, 13, sum.Real.Seconds(), 1e-9)
	assert.Nil(t, sum.Game, "game component must stay nil since a.Game is nil")
}

func TestFormatterDashOnMissing(t *testing.T) {
	f := NewFormatter(AccuracyHundredths, DigitsFormatSingleDigitSeconds)
	assert.Equal(t, "—", f.Format(nil))
}

func TestFormatterMinutesAndSeconds(t *testing.T) {
	f := NewFormatter(AccuracyHundredths, DigitsFormatSingleDigitSeconds)
	d := FromSeconds(65.25)
	assert.Equal(t, "1:05.25", f.Format(&d))
}

func TestFormatterNegative(t *testing.T) {
	f := NewFormatter(AccuracyHundredths, DigitsFormatSingleDigitSeconds)
	d := FromSeconds(-5.5)
	assert.Equal(t, "−5.50", f.Format(&d))
}

package timing

import "fmt"

// Accuracy controls how many fractional digits a formatter renders.
type Accuracy int

const (
	AccuracySeconds Accuracy = iota
	AccuracyTenths
	AccuracyHundredths
	AccuracyMilliseconds
)

func (a Accuracy) fractionDigits() int {
	switch a {
	case AccuracyTenths:
		return 1
	case AccuracyHundredths:
		return 2
	case AccuracyMilliseconds:
		return 3
	default:
		return 0
	}
}

// DigitsFormat controls which leading fields get padded or elided.
type DigitsFormat int

const (
	// DigitsFormatSingleDigitSeconds renders "4.56" with no leading zero on
	// seconds when there are no larger units.
	DigitsFormatSingleDigitSeconds DigitsFormat = iota
	// DigitsFormatDoubleDigitSeconds always pads seconds, e.g. "04.56".
	DigitsFormatDoubleDigitSeconds
	// DigitsFormatSingleDigitMinutes always shows minutes, single digit if
	// under 10, e.g. "4:04.56".
	DigitsFormatSingleDigitMinutes
	// DigitsFormatDoubleDigitMinutes always shows minutes, zero padded.
	DigitsFormatDoubleDigitMinutes
	// DigitsFormatSingleDigitHours always shows hours and minutes.
	DigitsFormatSingleDigitHours
	// DigitsFormatDoubleDigitHours always shows hours, zero padded.
	DigitsFormatDoubleDigitHours
)

// EmptyBehavior selects how a formatter renders a missing (nil) duration.
type EmptyBehavior int

const (
	// EmptyDash renders a missing value as "—".
	EmptyDash EmptyBehavior = iota
	// EmptyString renders a missing value as "".
	EmptyString
)

// Formatter is a pure value-object function of an optional Duration to a
// string, parameterized by accuracy, digits format, and empty-value
// behavior.
type Formatter struct {
	Accuracy      Accuracy
	Digits        DigitsFormat
	WhenMissing   EmptyBehavior
}

// NewFormatter builds a Formatter with the given accuracy and digits format,
// defaulting missing values to a dash.
func NewFormatter(acc Accuracy, digits DigitsFormat) Formatter {
	return Formatter{Accuracy: acc, Digits: digits, WhenMissing: EmptyDash}
}

// Format renders d according to the formatter's configuration. A nil d
// renders according to WhenMissing.
func (f Formatter) Format(d *Duration) string {
	if d == nil {
		if f.WhenMissing == EmptyString {
			return ""
		}
		return "—"
	}

	v := *d
	negative := v < 0
	if negative {
		v = -v
	}

	totalMillis := int64(v) / 1_000_000
	fracDigits := f.Accuracy.fractionDigits()
	scale := int64(1)
	for i := 0; i < 3-fracDigits; i++ {
		scale *= 10
	}
	fracScaled := (totalMillis % 1000) / scale

	totalSeconds := totalMillis / 1000
	seconds := totalSeconds % 60
	minutes := (totalSeconds / 60) % 60
	hours := totalSeconds / 3600

	showHours := hours > 0 || f.Digits == DigitsFormatSingleDigitHours || f.Digits == DigitsFormatDoubleDigitHours
	showMinutes := showHours || minutes > 0 ||
		f.Digits == DigitsFormatSingleDigitMinutes || f.Digits == DigitsFormatDoubleDigitMinutes

	var out string
	switch {
	case showHours:
		hourFmt := "%d"
		if f.Digits == DigitsFormatDoubleDigitHours {
			hourFmt = "%02d"
		}
		out = fmt.Sprintf(hourFmt+":%02d:%02d", hours, minutes, seconds)
	case showMinutes:
		minFmt := "%d"
		if f.Digits == DigitsFormatDoubleDigitMinutes {
			minFmt = "%02d"
		}
		out = fmt.Sprintf(minFmt+":%02d", minutes, seconds)
	default:
		secFmt := "%d"
		if f.Digits == DigitsFormatDoubleDigitSeconds {
			secFmt = "%02d"
		}
		out = fmt.Sprintf(secFmt, seconds)
	}

	if fracDigits > 0 {
		out += fmt.Sprintf(".%0*d", fracDigits, fracScaled)
	}
	if negative {
		out = "−" + out
	}
	return out
}

// Fraction renders only the fractional-seconds part of d, the way a
// dedicated "Fraction" sub-component draws it next to the big timer digits.
func (f Formatter) Fraction(d *Duration) string {
	if d == nil {
		if f.WhenMissing == EmptyString {
			return ""
		}
		return "—"
	}
	fracDigits := f.Accuracy.fractionDigits()
	if fracDigits == 0 {
		return ""
	}
	v := *d
	if v < 0 {
		v = -v
	}
	totalMillis := int64(v) / 1_000_000
	scale := int64(1)
	for i := 0; i < 3-fracDigits; i++ {
		scale *= 10
	}
	fracScaled := (totalMillis % 1000) / scale
	return fmt.Sprintf(".%0*d", fracDigits, fracScaled)
}

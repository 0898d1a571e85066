package layout

import "image/color"

// BackgroundKind selects how a Layout's background is painted.
type BackgroundKind int

const (
	BackgroundSolid BackgroundKind = iota
	BackgroundVerticalGradient
	BackgroundHorizontalGradient
)

// Background describes the Layout's background shader.
type Background struct {
	Kind BackgroundKind
	Top  color.RGBA
	// Bottom is only meaningful for the gradient kinds.
	Bottom color.RGBA
}

// GeneralSettings holds the Layout-wide appearance knobs every Component
// draws against: text color, background, and the accuracy/digits format a
// Component falls back to when it doesn't override its own.
type GeneralSettings struct {
	TextColor          color.RGBA
	Background         Background
	ThinSeparatorColor color.RGBA
	SeparatorColor     color.RGBA
	PersonalBestColor  color.RGBA
	AheadGainingColor  color.RGBA
	AheadLosingColor   color.RGBA
	BehindGainingColor color.RGBA
	BehindLosingColor  color.RGBA
	BestSegmentColor   color.RGBA
	NotRunningColor    color.RGBA
	PausedColor        color.RGBA
}

// DefaultGeneralSettings is the default palette (white text on black, green
// for ahead-of-PB, orange for behind), covering every named role the
// comparison deltas need.
func DefaultGeneralSettings() GeneralSettings {
	white := color.RGBA{255, 255, 255, 255}
	return GeneralSettings{
		TextColor:          white,
		Background:         Background{Kind: BackgroundSolid, Top: color.RGBA{0, 0, 0, 255}},
		ThinSeparatorColor: color.RGBA{60, 60, 60, 255},
		SeparatorColor:     color.RGBA{120, 120, 120, 255},
		PersonalBestColor:  color.RGBA{255, 215, 0, 255},
		AheadGainingColor:  color.RGBA{0, 255, 0, 255},
		AheadLosingColor:   color.RGBA{144, 238, 144, 255},
		BehindGainingColor: color.RGBA{255, 182, 130, 255},
		BehindLosingColor:  color.RGBA{255, 165, 0, 255},
		BestSegmentColor:   color.RGBA{255, 215, 0, 255},
		NotRunningColor:    white,
		PausedColor:        color.RGBA{150, 150, 150, 255},
	}
}

// ValueKind tags a settings Value's payload, matching the set of types a
// Component's settings_description/set_value exchange supports.
type ValueKind int

const (
	ValueBool ValueKind = iota
	ValueInt
	ValueFloat
	ValueString
	ValueColor
	ValueAccuracy
)

// Value is a dynamically-typed settings value, tagged by Kind. Exactly one
// of the typed fields is meaningful for a given Kind.
type Value struct {
	Kind  ValueKind
	Bool  bool
	Int   int64
	Float float64
	Str   string
	Color color.RGBA
}

// SettingDescription names one entry a host's settings UI can list and
// edit via Component.SetValue(index, value).
type SettingDescription struct {
	Name    string
	Current Value
}

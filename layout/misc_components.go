package layout

import "github.com/nictuku/ooosplits/timer"

// TextComponent renders one or two lines of either literal text or the
// handful of templated variables the host substitutes (game name, category
// name).
type TextComponent struct {
	Line1, Line2 string
}

func NewTextComponent(line1, line2 string) *TextComponent {
	return &TextComponent{Line1: line1, Line2: line2}
}

func (c *TextComponent) Name() string { return "Text" }

func (c *TextComponent) Settings() []SettingDescription {
	return []SettingDescription{
		{Name: "Line 1", Current: Value{Kind: ValueString, Str: c.Line1}},
		{Name: "Line 2", Current: Value{Kind: ValueString, Str: c.Line2}},
	}
}

func (c *TextComponent) SetValue(index int, v Value) error {
	switch index {
	case 0:
		c.Line1 = v.Str
	case 1:
		c.Line2 = v.Str
	}
	return nil
}

func (c *TextComponent) UpdateState(state *ComponentState, snap timer.Snapshot, cache *ImageCache, general GeneralSettings) {
	state.Kind = KindText
	state.Text.Line1 = c.Line1
	state.Text.Line2 = c.Line2
}

// SeparatorComponent is a thin horizontal rule with no per-frame state.
type SeparatorComponent struct{}

func NewSeparatorComponent() *SeparatorComponent { return &SeparatorComponent{} }

func (c *SeparatorComponent) Name() string                     { return "Separator" }
func (c *SeparatorComponent) Settings() []SettingDescription   { return nil }
func (c *SeparatorComponent) SetValue(index int, v Value) error { return nil }

func (c *SeparatorComponent) UpdateState(state *ComponentState, snap timer.Snapshot, cache *ImageCache, general GeneralSettings) {
	state.Kind = KindSeparator
}

// BlankSpaceComponent reserves a configured amount of vertical space.
type BlankSpaceComponent struct {
	Height float64
}

func NewBlankSpaceComponent(height float64) *BlankSpaceComponent {
	return &BlankSpaceComponent{Height: height}
}

func (c *BlankSpaceComponent) Name() string { return "Blank Space" }

func (c *BlankSpaceComponent) Settings() []SettingDescription {
	return []SettingDescription{{Name: "Height", Current: Value{Kind: ValueFloat, Float: c.Height}}}
}

func (c *BlankSpaceComponent) SetValue(index int, v Value) error {
	if index == 0 {
		c.Height = v.Float
	}
	return nil
}

func (c *BlankSpaceComponent) UpdateState(state *ComponentState, snap timer.Snapshot, cache *ImageCache, general GeneralSettings) {
	state.Kind = KindBlankSpace
	state.BlankSpace.Height = c.Height
}

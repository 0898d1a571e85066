package layout

import "github.com/nictuku/ooosplits/timer"

// Layout is an ordered list of Components plus the general appearance
// settings every Component draws against. It owns one ComponentState per
// Component, reused in place frame to frame so UpdateAll allocates nothing
// once warmed up.
type Layout struct {
	General    GeneralSettings
	Components []Component
	states     []ComponentState
}

// NewLayout creates a Layout over the given Components with default
// general settings.
func NewLayout(components ...Component) *Layout {
	return &Layout{
		General:    DefaultGeneralSettings(),
		Components: components,
		states:     make([]ComponentState, len(components)),
	}
}

// UpdateAll refreshes every Component's state from snap, reallocating the
// states slice only when the number of Components changed since the last
// call.
func (l *Layout) UpdateAll(snap timer.Snapshot, cache *ImageCache) {
	if len(l.states) != len(l.Components) {
		l.states = make([]ComponentState, len(l.Components))
	}
	for i, c := range l.Components {
		c.UpdateState(&l.states[i], snap, cache, l.General)
	}
}

// States returns the current per-component state slice, valid until the
// next UpdateAll call.
func (l *Layout) States() []ComponentState { return l.states }

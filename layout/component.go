package layout

import (
	"github.com/nictuku/ooosplits/timer"
)

// Component is one entry in a Layout. Implementations derive their
// ComponentState from a Timer Snapshot each frame; state structures are
// updated in place (UpdateState never replaces the passed pointer's
// allocations, only their contents) so the layout loop allocates nothing
// steady-state.
type Component interface {
	Name() string
	Settings() []SettingDescription
	SetValue(index int, v Value) error
	UpdateState(state *ComponentState, snap timer.Snapshot, cache *ImageCache, general GeneralSettings)
}

// Scroller is implemented by components that track their own visible
// window (only Splits does).
type Scroller interface {
	ScrollUp()
	ScrollDown()
}

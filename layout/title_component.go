package layout

import "github.com/nictuku/ooosplits/timer"

// TitleComponent shows the game/category name and the attempt counter,
// reading both straight from the Snapshot's Run.
type TitleComponent struct {
	ShowFinishedRunsCount bool
}

func NewTitleComponent() *TitleComponent { return &TitleComponent{ShowFinishedRunsCount: true} }

func (c *TitleComponent) Name() string { return "Title" }

func (c *TitleComponent) Settings() []SettingDescription {
	return []SettingDescription{{Name: "Show Finished Runs Count", Current: Value{Kind: ValueBool, Bool: c.ShowFinishedRunsCount}}}
}

func (c *TitleComponent) SetValue(index int, v Value) error {
	if index == 0 {
		c.ShowFinishedRunsCount = v.Bool
	}
	return nil
}

func (c *TitleComponent) UpdateState(state *ComponentState, snap timer.Snapshot, cache *ImageCache, general GeneralSettings) {
	state.Kind = KindTitle
	r := snap.Run
	state.Title.GameName = r.GameName
	state.Title.CategoryName = r.CategoryName
	state.Title.Attempts = r.AttemptCount
	state.Title.IconID = r.GameIcon.ID
	if c.ShowFinishedRunsCount {
		finished := 0
		for _, a := range r.Attempts() {
			if a.Time.Real != nil || a.Time.Game != nil {
				finished++
			}
		}
		state.Title.FinishedRuns = finished
	} else {
		state.Title.FinishedRuns = 0
	}
}

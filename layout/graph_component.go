package layout

import (
	"github.com/nictuku/ooosplits/timer"
	"github.com/nictuku/ooosplits/timing"
)

// GraphComponent plots delta-vs-comparison across completed splits of the
// current attempt, one point per split boundary plus a live point for the
// in-progress segment. It changes every frame, so the scene builder keeps
// it on the top layer.
type GraphComponent struct {
	Method timing.TimingMethod
}

func NewGraphComponent() *GraphComponent { return &GraphComponent{Method: timing.RealTime} }

func (c *GraphComponent) Name() string { return "Graph" }

func (c *GraphComponent) Settings() []SettingDescription { return nil }

func (c *GraphComponent) SetValue(index int, v Value) error { return nil }

func (c *GraphComponent) UpdateState(state *ComponentState, snap timer.Snapshot, cache *ImageCache, general GeneralSettings) {
	state.Kind = KindGraph
	state.Graph.Points.Clear()

	segs := snap.Run.Segments()
	var maxAbs float64
	for i := 0; i < snap.CurrentSplitIndex && i < len(segs); i++ {
		actual := segs[i].SplitTime().Get(c.Method)
		comparison := segs[i].Comparison(snap.CurrentComparison).Get(c.Method)
		if actual == nil || comparison == nil {
			continue
		}
		d := (*actual - *comparison).Seconds()
		if abs(d) > maxAbs {
			maxAbs = abs(d)
		}
		state.Graph.Points.Push(GraphPoint{X: float64(i), Y: d})
	}

	if snap.CurrentSplitIndex < len(segs) {
		if now := snap.Now.Get(c.Method); now != nil {
			if comparison := segs[snap.CurrentSplitIndex].Comparison(snap.CurrentComparison).Get(c.Method); comparison != nil {
				live := (*now - *comparison).Seconds()
				state.Graph.Points.Push(GraphPoint{X: float64(snap.CurrentSplitIndex), Y: live})
				state.Graph.IsLiveDelta = true
			}
		}
	}

	state.Graph.MiddleY = 0
	_ = maxAbs
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}

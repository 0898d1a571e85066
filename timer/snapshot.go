package timer

import (
	"github.com/nictuku/ooosplits/run"
	"github.com/nictuku/ooosplits/timing"
)

// Snapshot is a cheap, immutable-by-convention view of a Timer and its Run
// at a single instant, for layout components to render from without
// themselves tracking Timer state. Obtaining one is O(1): it borrows the
// Run rather than cloning it, so it must only be read while holding
// SharedTimer's read lock (or, single-threaded, before the next mutating
// call) — it is not safe to retain past that window the way a deep copy
// would be.
type Snapshot struct {
	Phase             Phase
	CurrentSplitIndex int
	CurrentComparison string
	Now               timing.Time
	Run               *run.Run
}

// Snapshot captures the Timer's current phase, split index, active
// comparison, and elapsed time, alongside the Run it's driving.
func (t *Timer) Snapshot() Snapshot {
	return Snapshot{
		Phase:             t.phase,
		CurrentSplitIndex: t.currentSplitIndex,
		CurrentComparison: t.CurrentComparison(),
		Now:               t.Now(),
		Run:               t.run,
	}
}

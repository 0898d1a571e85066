package timer

import (
	"sync"

	"github.com/nictuku/ooosplits/timing"
)

// SharedTimer wraps a Timer with a sync.RWMutex so it can be mutated from
// one goroutine (hotkeys, UI buttons, the auto-splitter scheduler) while
// being read concurrently from another (the layout/render loop). Apart from
// the auto-splitter Runtime's internal mutex, this is the only lock in the
// engine — everything else assumes single-threaded access, per the §5/§9
// design note.
type SharedTimer struct {
	mu    sync.RWMutex
	timer *Timer
}

// NewShared wraps t.
func NewShared(t *Timer) *SharedTimer {
	return &SharedTimer{timer: t}
}

// Snapshot takes a read lock and returns the underlying Timer's snapshot.
func (s *SharedTimer) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.timer.Snapshot()
}

// Write takes a write lock and runs fn against the underlying Timer. All
// mutating operations go through this so readers never observe a
// half-applied transition.
func (s *SharedTimer) Write(fn func(t *Timer)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.timer)
}

func (s *SharedTimer) Start()                     { s.Write(func(t *Timer) { t.Start() }) }
func (s *SharedTimer) Split()                     { s.Write(func(t *Timer) { t.Split() }) }
func (s *SharedTimer) SkipSplit()                 { s.Write(func(t *Timer) { t.SkipSplit() }) }
func (s *SharedTimer) UndoSplit()                 { s.Write(func(t *Timer) { t.UndoSplit() }) }
func (s *SharedTimer) Pause()                     { s.Write(func(t *Timer) { t.Pause() }) }
func (s *SharedTimer) Resume()                    { s.Write(func(t *Timer) { t.Resume() }) }
func (s *SharedTimer) TogglePauseOrStart()         { s.Write(func(t *Timer) { t.TogglePauseOrStart() }) }
func (s *SharedTimer) Reset(saveAttempt bool)     { s.Write(func(t *Timer) { t.Reset(saveAttempt) }) }
func (s *SharedTimer) SwitchToNextComparison()     { s.Write(func(t *Timer) { t.SwitchToNextComparison() }) }
func (s *SharedTimer) SwitchToPreviousComparison() { s.Write(func(t *Timer) { t.SwitchToPreviousComparison() }) }

func (s *SharedTimer) SetGameTime(d timing.Duration) { s.Write(func(t *Timer) { t.SetGameTime(d) }) }
func (s *SharedTimer) PauseGameTime()                { s.Write(func(t *Timer) { t.PauseGameTime() }) }
func (s *SharedTimer) ResumeGameTime()               { s.Write(func(t *Timer) { t.ResumeGameTime() }) }
func (s *SharedTimer) InitializeGameTime()            { s.Write(func(t *Timer) { t.InitializeGameTime() }) }

func (s *SharedTimer) SetVariable(name, value string) {
	s.Write(func(t *Timer) { t.SetVariable(name, value) })
}

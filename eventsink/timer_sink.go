package eventsink

import (
	"github.com/nictuku/ooosplits/timer"
	"github.com/nictuku/ooosplits/timing"
)

// TimerSink forwards every command directly to a SharedTimer. It's the
// sink a host wires hotkeys and UI buttons to when no confirmation or
// logging layer is wanted in front of the Timer.
type TimerSink struct {
	t *timer.SharedTimer
}

// NewTimerSink wraps t.
func NewTimerSink(t *timer.SharedTimer) *TimerSink { return &TimerSink{t: t} }

func (s *TimerSink) Start()               { s.t.Start() }
func (s *TimerSink) Split()               { s.t.Split() }
func (s *TimerSink) SkipSplit()           { s.t.SkipSplit() }
func (s *TimerSink) UndoSplit()           { s.t.UndoSplit() }
func (s *TimerSink) Pause()               { s.t.Pause() }
func (s *TimerSink) Resume()              { s.t.Resume() }
func (s *TimerSink) TogglePauseOrStart()  { s.t.TogglePauseOrStart() }
func (s *TimerSink) Reset(saveAttempt bool) { s.t.Reset(saveAttempt) }

func (s *TimerSink) SwitchToPreviousComparison() { s.t.SwitchToPreviousComparison() }
func (s *TimerSink) SwitchToNextComparison()     { s.t.SwitchToNextComparison() }

func (s *TimerSink) SetGameTime(d timing.Duration) { s.t.SetGameTime(d) }
func (s *TimerSink) PauseGameTime()                { s.t.PauseGameTime() }
func (s *TimerSink) ResumeGameTime()               { s.t.ResumeGameTime() }
func (s *TimerSink) InitializeGameTime()           { s.t.InitializeGameTime() }
func (s *TimerSink) SetVariable(name, value string) { s.t.SetVariable(name, value) }

var _ Sink = (*TimerSink)(nil)

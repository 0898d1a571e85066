package eventsink

import (
	"github.com/nictuku/ooosplits/timer"
	"github.com/nictuku/ooosplits/timing"
)

// Confirm is asked before a destructive reset goes through. It returns true
// to proceed, false to cancel the reset and leave the attempt running.
type Confirm func(message string) bool

// ValidatingSink wraps another Sink and guards Reset: discarding an attempt
// that has already recorded a split asks Confirm first. Every other command
// passes straight through. This is the sink a desktop host wires to its
// reset hotkey so an accidental press can't silently drop a finished run.
type ValidatingSink struct {
	next    Sink
	t       *timer.SharedTimer
	confirm Confirm
}

// NewValidatingSink wraps next, consulting t's state and confirm before
// forwarding a risky Reset.
func NewValidatingSink(next Sink, t *timer.SharedTimer, confirm Confirm) *ValidatingSink {
	return &ValidatingSink{next: next, t: t, confirm: confirm}
}

func (s *ValidatingSink) Start()              { s.next.Start() }
func (s *ValidatingSink) Split()              { s.next.Split() }
func (s *ValidatingSink) SkipSplit()          { s.next.SkipSplit() }
func (s *ValidatingSink) UndoSplit()          { s.next.UndoSplit() }
func (s *ValidatingSink) Pause()              { s.next.Pause() }
func (s *ValidatingSink) Resume()             { s.next.Resume() }
func (s *ValidatingSink) TogglePauseOrStart() { s.next.TogglePauseOrStart() }

// Reset asks for confirmation when saveAttempt is false and the attempt in
// progress has recorded at least one split; otherwise forwards directly.
func (s *ValidatingSink) Reset(saveAttempt bool) {
	if !saveAttempt && s.hasUnsavedProgress() {
		if s.confirm == nil || !s.confirm("Discard this attempt's progress without saving?") {
			return
		}
	}
	s.next.Reset(saveAttempt)
}

func (s *ValidatingSink) hasUnsavedProgress() bool {
	snap := s.t.Snapshot()
	if snap.Phase == timer.NotRunning {
		return false
	}
	return snap.Phase == timer.Ended || snap.CurrentSplitIndex > 0
}

func (s *ValidatingSink) SwitchToPreviousComparison() { s.next.SwitchToPreviousComparison() }
func (s *ValidatingSink) SwitchToNextComparison()     { s.next.SwitchToNextComparison() }

func (s *ValidatingSink) SetGameTime(d timing.Duration) { s.next.SetGameTime(d) }
func (s *ValidatingSink) PauseGameTime()                { s.next.PauseGameTime() }
func (s *ValidatingSink) ResumeGameTime()               { s.next.ResumeGameTime() }
func (s *ValidatingSink) InitializeGameTime()           { s.next.InitializeGameTime() }
func (s *ValidatingSink) SetVariable(name, value string) { s.next.SetVariable(name, value) }

var _ Sink = (*ValidatingSink)(nil)

// Package eventsink implements the only mechanism by which external
// systems (hotkeys, UI buttons, the auto-splitter runtime) touch a Timer.
// Nothing outside this package calls a Timer's mutating methods directly.
package eventsink

import "github.com/nictuku/ooosplits/timing"

// Sink has one method per Timer command.
type Sink interface {
	Start()
	Split()
	SkipSplit()
	UndoSplit()
	Pause()
	Resume()
	TogglePauseOrStart()
	Reset(saveAttempt bool)
	SwitchToPreviousComparison()
	SwitchToNextComparison()
	SetGameTime(d timing.Duration)
	PauseGameTime()
	ResumeGameTime()
	InitializeGameTime()
	SetVariable(name, value string)
}

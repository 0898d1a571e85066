package autosplit

import (
	"context"
	"os"
	"time"

	"github.com/nictuku/ooosplits/eventsink"
	"github.com/nictuku/ooosplits/timer"
)

// InterruptHandle lets a host cancel a running Scheduler from another
// goroutine: unloading a script (or quitting the app) must be able to
// unstick a scheduler that's mid-sleep.
type InterruptHandle struct {
	cancel context.CancelFunc
}

// Interrupt cancels the scheduler loop this handle belongs to.
func (h InterruptHandle) Interrupt() {
	if h.cancel != nil {
		h.cancel()
	}
}

// Scheduler drives a Runtime's update() loop at its requested tick rate:
// read the tick rate, sleep, poll the Timer's phase, call update(), repeat.
// A script that never calls runtime_set_tick_rate just free-runs at the
// default ceiling, never adjusting the period.
type Scheduler struct {
	runtime *Runtime
	t       *timer.SharedTimer
}

// NewScheduler builds a Scheduler driving rt against t's live phase.
func NewScheduler(rt *Runtime, t *timer.SharedTimer) *Scheduler {
	return &Scheduler{runtime: rt, t: t}
}

// Run starts the tick loop on a new goroutine and returns immediately, with
// the loop's context and an InterruptHandle that cancels it. The returned
// error is always nil. The loop stops when ctx is cancelled, the handle is
// used, or a Tick fails; a Tick error is not reported to the caller.
func (s *Scheduler) Run(ctx context.Context) (context.Context, InterruptHandle, error) {
	runCtx, cancel := context.WithCancel(ctx)
	handle := InterruptHandle{cancel: cancel}

	go s.loop(runCtx)
	return runCtx, handle, nil
}

func (s *Scheduler) loop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		phase := s.t.Snapshot().Phase
		if err := s.runtime.Tick(ctx, phase); err != nil {
			return
		}

		period := s.runtime.TickRate()
		if period <= 0 || period > defaultMaxSleep*time.Nanosecond {
			period = defaultMaxSleep * time.Nanosecond
		}
		select {
		case <-ctx.Done():
			return
		case <-time.After(period):
		}
	}
}

// RunOnce ticks the scheduler exactly once, synchronously. Useful for
// tests and for hosts that want to drive the loop from their own render
// tick rather than a background goroutine.
func (s *Scheduler) RunOnce(ctx context.Context) error {
	phase := s.t.Snapshot().Phase
	return s.runtime.Tick(ctx, phase)
}

// LoadScriptFromFile reads a compiled WebAssembly auto-splitter module from
// path and loads it into a freshly constructed Runtime/Scheduler pair
// driving sink against t's phase.
func LoadScriptFromFile(ctx context.Context, path string, sink eventsink.Sink, t *timer.SharedTimer, log chan<- LogRecord) (*Scheduler, error) {
	wasmBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	rt := NewRuntime(sink, log)
	if err := rt.Load(ctx, wasmBytes); err != nil {
		return nil, err
	}
	return NewScheduler(rt, t), nil
}

// Package autosplit implements the sandboxed auto-splitter runtime: a
// WebAssembly host (via wazero, a pure-Go runtime, so the sandbox carries
// no cgo or native-plugin surface) exposing a fixed host function
// namespace, driving an eventsink.Sink from a scheduled update() tick.
package autosplit

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"

	"github.com/nictuku/ooosplits/eventsink"
	"github.com/nictuku/ooosplits/timer"
	"github.com/nictuku/ooosplits/timing"
)

// TimerPhase is the three-valued phase a script sees: NotRunning, Running,
// or Finished. A script never distinguishes Paused from Running, and never
// sees Ended separately from Finished.
type TimerPhase uint32

const (
	ScriptNotRunning TimerPhase = iota
	ScriptRunning
	ScriptFinished
)

func phaseForScript(p timer.Phase) TimerPhase {
	switch p {
	case timer.NotRunning:
		return ScriptNotRunning
	case timer.Ended:
		return ScriptFinished
	default:
		return ScriptRunning
	}
}

// LogRecord is a structured log entry the runtime emits when a script
// prints a message (runtime_print_message) or is unloaded after an error.
// The host supplies a channel to receive these; this package never logs
// directly.
type LogRecord struct {
	ScriptName string
	Message    string
	Err        error
}

// defaultMaxSleep bounds the tick rate a script may request: 1 second as a
// hard ceiling to avoid a pathological script stalling the scheduler
// forever.
const defaultMaxSleep = 1_000_000_000 // nanoseconds

// Runtime hosts one loaded WebAssembly auto-splitter module. It owns a
// sandboxed wazero instance whose only imports are a fixed set of host
// functions: no filesystem write access, no thread spawn, no native code.
type Runtime struct {
	sink eventsink.Sink
	log  chan<- LogRecord

	rt     wazero.Runtime
	mod    api.Module
	mem    api.Memory
	update api.Function

	tickRateNs int64 // atomic: nanoseconds between update() calls

	mu            sync.Mutex
	process       *Process
	settingsMaps  map[uint32]*SettingsMap
	settingsLst   map[uint32]*SettingsList
	settingValues map[uint32]SettingValue
	nextHandle    uint32
	isLoading    bool
	gameTime     timing.Duration
	pendingVars  map[string]string
	currentPhase timer.Phase

	interrupted atomic.Bool
}

// NewRuntime creates a Runtime that drives sink and, if non-nil, reports
// unload errors on log.
func NewRuntime(sink eventsink.Sink, log chan<- LogRecord) *Runtime {
	return &Runtime{
		sink:          sink,
		log:           log,
		tickRateNs:    defaultMaxSleep,
		settingsMaps:  make(map[uint32]*SettingsMap),
		settingsLst:   make(map[uint32]*SettingsList),
		settingValues: make(map[uint32]SettingValue),
		pendingVars:   make(map[string]string),
	}
}

// Load compiles wasmBytes, instantiates the sandbox's host import module,
// instantiates the script module against it, and calls its "start" export
// if present.
func (r *Runtime) Load(ctx context.Context, wasmBytes []byte) error {
	r.rt = wazero.NewRuntime(ctx)

	if err := r.buildHostModule(ctx); err != nil {
		r.rt.Close(ctx)
		return err
	}

	compiled, err := r.rt.CompileModule(ctx, wasmBytes)
	if err != nil {
		r.rt.Close(ctx)
		return fmt.Errorf("autosplit: compiling module: %w", err)
	}

	cfg := wazero.NewModuleConfig().WithStartFunctions() // no WASI _start: this sandbox has its own start/update protocol
	mod, err := r.rt.InstantiateModule(ctx, compiled, cfg)
	if err != nil {
		r.rt.Close(ctx)
		return fmt.Errorf("autosplit: instantiating module: %w", err)
	}
	r.mod = mod
	r.mem = mod.Memory()

	if start := mod.ExportedFunction("start"); start != nil {
		if _, err := start.Call(ctx); err != nil {
			r.unloadWithError(err)
			return err
		}
	}
	r.update = mod.ExportedFunction("update")
	if r.update == nil {
		r.unloadWithError(fmt.Errorf("autosplit: module exports no \"update\" function"))
		return ErrTrapped
	}
	return nil
}

// Unload tears down the wazero runtime, releasing every resource the
// sandbox holds (memory, compiled code, attached process handle).
func (r *Runtime) Unload(ctx context.Context) {
	r.mu.Lock()
	if r.process != nil {
		r.process.Close()
		r.process = nil
	}
	r.mu.Unlock()
	if r.rt != nil {
		r.rt.Close(ctx)
	}
}

func (r *Runtime) unloadWithError(err error) {
	if r.log != nil {
		r.log <- LogRecord{Message: "auto-splitter script unloaded", Err: err}
	}
	r.Unload(context.Background())
}

// Tick runs exactly one scheduler step: it records the Timer's phase for
// timer_get_state, calls update(), then commits the variables the script
// queued during the call to r.sink. Timer actions and game-time changes
// reach r.sink directly from the host functions while update() runs. The
// Scheduler type drives this in a loop at the requested tick rate.
func (r *Runtime) Tick(ctx context.Context, phase timer.Phase) error {
	if r.interrupted.Load() {
		return fmt.Errorf("autosplit: %w", context.Canceled)
	}
	r.mu.Lock()
	r.currentPhase = phase
	r.mu.Unlock()
	_, err := r.update.Call(ctx)
	if err != nil {
		r.unloadWithError(err)
		return err
	}
	r.drainVariables()
	return nil
}

func (r *Runtime) drainVariables() {
	r.mu.Lock()
	vars := r.pendingVars
	r.pendingVars = make(map[string]string)
	r.mu.Unlock()
	for name, value := range vars {
		r.sink.SetVariable(name, value)
	}
}

// TickRate returns the currently requested tick period.
func (r *Runtime) TickRate() time.Duration {
	return time.Duration(atomic.LoadInt64(&r.tickRateNs))
}

// Interrupt marks the runtime as interrupted: every later Tick returns an
// error without calling update(). An update() call already running is not
// stopped by it.
func (r *Runtime) Interrupt() {
	r.interrupted.Store(true)
}

func (r *Runtime) liveSnapshot() timer.Phase {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.currentPhase
}

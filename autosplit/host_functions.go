package autosplit

import (
	"context"
	goruntime "runtime"
	"sync/atomic"

	"github.com/tetratelabs/wazero/api"

	"github.com/nictuku/ooosplits/timing"
)

// buildHostModule registers the "env" host module with every import the
// sandboxed script is allowed to call. Every function that touches linear
// memory bounds-checks the pointer/length pair first: a script cannot use
// an out-of-range pointer to read or corrupt host memory, it just gets a
// failure return instead.
func (r *Runtime) buildHostModule(ctx context.Context) error {
	b := r.rt.NewHostModuleBuilder("env")

	exportVoid := func(name string, fn interface{}) {
		b = b.NewFunctionBuilder().WithFunc(fn).Export(name)
	}
	exportVoid("timer_get_state", r.hostTimerGetState)
	exportVoid("timer_start", r.hostTimerStart)
	exportVoid("timer_split", r.hostTimerSplit)
	exportVoid("timer_skip_split", r.hostTimerSkipSplit)
	exportVoid("timer_undo_split", r.hostTimerUndoSplit)
	exportVoid("timer_reset", r.hostTimerReset)
	exportVoid("timer_set_variable", r.hostTimerSetVariable)
	exportVoid("timer_set_game_time", r.hostTimerSetGameTime)
	exportVoid("timer_pause_game_time", r.hostTimerPauseGameTime)
	exportVoid("timer_resume_game_time", r.hostTimerResumeGameTime)

	exportVoid("runtime_set_tick_rate", r.hostRuntimeSetTickRate)
	exportVoid("runtime_print_message", r.hostRuntimePrintMessage)
	exportVoid("runtime_get_os", r.hostRuntimeGetOS)
	exportVoid("runtime_get_arch", r.hostRuntimeGetArch)

	exportVoid("process_attach", r.hostProcessAttach)
	exportVoid("process_detach", r.hostProcessDetach)
	exportVoid("process_is_open", r.hostProcessIsOpen)
	exportVoid("process_get_module_address", r.hostProcessGetModuleAddress)
	exportVoid("process_get_module_size", r.hostProcessGetModuleSize)
	exportVoid("process_get_path", r.hostProcessGetPath)
	exportVoid("process_read", r.hostProcessRead)
	exportVoid("process_get_memory_range_count", r.hostProcessGetMemoryRangeCount)
	exportVoid("process_get_memory_range_address", r.hostProcessGetMemoryRangeAddress)
	exportVoid("process_get_memory_range_size", r.hostProcessGetMemoryRangeSize)
	exportVoid("process_get_memory_range_flags", r.hostProcessGetMemoryRangeFlags)

	exportVoid("settings_map_new", r.hostSettingsMapNew)
	exportVoid("settings_map_load", r.hostSettingsMapLoad)
	exportVoid("settings_map_free", r.hostSettingsMapFree)
	exportVoid("settings_map_copy", r.hostSettingsMapCopy)
	exportVoid("settings_map_get", r.hostSettingsMapGet)
	exportVoid("settings_map_insert", r.hostSettingsMapInsert)
	exportVoid("settings_map_len", r.hostSettingsMapLen)

	exportVoid("settings_list_new", r.hostSettingsListNew)
	exportVoid("settings_list_free", r.hostSettingsListFree)
	exportVoid("settings_list_copy", r.hostSettingsListCopy)
	exportVoid("settings_list_get", r.hostSettingsListGet)
	exportVoid("settings_list_push", r.hostSettingsListPush)
	exportVoid("settings_list_insert", r.hostSettingsListInsert)
	exportVoid("settings_list_len", r.hostSettingsListLen)

	exportVoid("setting_value_new_bool", r.hostSettingValueNewBool)
	exportVoid("setting_value_new_string", r.hostSettingValueNewString)
	exportVoid("setting_value_free", r.hostSettingValueFree)

	_, err := b.Instantiate(ctx)
	return err
}

// --- memory helpers -----------------------------------------------------

func (r *Runtime) readBytes(ptr, length uint32) ([]byte, bool) {
	buf, ok := r.mem.Read(ptr, length)
	if !ok {
		return nil, false
	}
	out := make([]byte, len(buf))
	copy(out, buf)
	return out, true
}

func (r *Runtime) readString(ptr, length uint32) (string, bool) {
	b, ok := r.readBytes(ptr, length)
	if !ok {
		return "", false
	}
	return string(b), true
}

func (r *Runtime) writeBytes(ptr uint32, data []byte) bool {
	return r.mem.Write(ptr, data)
}

// writeStringOrLength implements the "short buffer returns required
// length, doesn't write" protocol used by every function returning a
// variable-length string into caller-owned memory.
func (r *Runtime) writeStringOrLength(ptr, cap uint32, s string) uint32 {
	need := uint32(len(s))
	if cap < need {
		return need
	}
	if !r.writeBytes(ptr, []byte(s)) {
		return 0
	}
	return need
}

func boolToU32(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}

// --- timer_* --------------------------------------------------------------

func (r *Runtime) hostTimerGetState(ctx context.Context, m api.Module) uint32 {
	snap := r.liveSnapshot()
	return uint32(phaseForScript(snap))
}

func (r *Runtime) hostTimerStart(ctx context.Context, m api.Module)     { r.sink.Start() }
func (r *Runtime) hostTimerSplit(ctx context.Context, m api.Module)     { r.sink.Split() }
func (r *Runtime) hostTimerSkipSplit(ctx context.Context, m api.Module) { r.sink.SkipSplit() }
func (r *Runtime) hostTimerUndoSplit(ctx context.Context, m api.Module) { r.sink.UndoSplit() }
func (r *Runtime) hostTimerReset(ctx context.Context, m api.Module)     { r.sink.Reset(true) }

func (r *Runtime) hostTimerSetVariable(ctx context.Context, m api.Module, namePtr, nameLen, valPtr, valLen uint32) {
	name, ok1 := r.readString(namePtr, nameLen)
	value, ok2 := r.readString(valPtr, valLen)
	if !ok1 || !ok2 {
		return
	}
	r.mu.Lock()
	r.pendingVars[name] = value
	r.mu.Unlock()
}

func (r *Runtime) hostTimerSetGameTime(ctx context.Context, m api.Module, nanos int64) {
	r.sink.SetGameTime(timing.Duration(nanos))
}

func (r *Runtime) hostTimerPauseGameTime(ctx context.Context, m api.Module)  { r.sink.PauseGameTime() }
func (r *Runtime) hostTimerResumeGameTime(ctx context.Context, m api.Module) { r.sink.ResumeGameTime() }

// --- runtime_* --------------------------------------------------------------

func (r *Runtime) hostRuntimeSetTickRate(ctx context.Context, m api.Module, nanos int64) {
	if nanos < 0 {
		nanos = 0
	}
	if nanos > defaultMaxSleep {
		nanos = defaultMaxSleep
	}
	atomicStoreTickRate(r, nanos)
}

func (r *Runtime) hostRuntimePrintMessage(ctx context.Context, m api.Module, ptr, length uint32) {
	msg, ok := r.readString(ptr, length)
	if !ok {
		return
	}
	if r.log != nil {
		r.log <- LogRecord{Message: msg}
	}
}

func (r *Runtime) hostRuntimeGetOS(ctx context.Context, m api.Module, ptr, cap uint32) uint32 {
	return r.writeStringOrLength(ptr, cap, goruntime.GOOS)
}

func (r *Runtime) hostRuntimeGetArch(ctx context.Context, m api.Module, ptr, cap uint32) uint32 {
	return r.writeStringOrLength(ptr, cap, goruntime.GOARCH)
}

func atomicStoreTickRate(r *Runtime, nanos int64) {
	atomic.StoreInt64(&r.tickRateNs, nanos)
}

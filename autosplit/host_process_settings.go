package autosplit

import (
	"context"

	"github.com/tetratelabs/wazero/api"
)

// --- process_* --------------------------------------------------------------
//
// A script attaches to at most one process at a time, so there is only ever
// one attached Process per Runtime. process_attach returns 1 on success, 0
// on failure (ErrProcessDoesntExist), matching the boolean-return
// convention the rest of the host functions use.

func (r *Runtime) hostProcessAttach(ctx context.Context, m api.Module, namePtr, nameLen uint32) uint32 {
	name, ok := r.readString(namePtr, nameLen)
	if !ok {
		return 0
	}
	p, err := WithName(name, nil)
	if err != nil {
		return 0
	}
	r.mu.Lock()
	if r.process != nil {
		r.process.Close()
	}
	r.process = p
	r.mu.Unlock()
	return 1
}

func (r *Runtime) hostProcessDetach(ctx context.Context, m api.Module) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.process != nil {
		r.process.Close()
		r.process = nil
	}
}

func (r *Runtime) hostProcessIsOpen(ctx context.Context, m api.Module) uint32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return boolToU32(r.process != nil)
}

func (r *Runtime) withProcess() *Process {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.process
}

func (r *Runtime) hostProcessGetModuleAddress(ctx context.Context, m api.Module, namePtr, nameLen uint32) uint64 {
	p := r.withProcess()
	name, ok := r.readString(namePtr, nameLen)
	if p == nil || !ok {
		return 0
	}
	addr, err := p.ModuleAddress(name)
	if err != nil {
		return 0
	}
	return addr
}

func (r *Runtime) hostProcessGetModuleSize(ctx context.Context, m api.Module, namePtr, nameLen uint32) uint64 {
	p := r.withProcess()
	name, ok := r.readString(namePtr, nameLen)
	if p == nil || !ok {
		return 0
	}
	mods, err := p.Modules()
	if err != nil {
		return 0
	}
	for _, mod := range mods {
		if mod.Name == name {
			return mod.Size
		}
	}
	return 0
}

func (r *Runtime) hostProcessGetPath(ctx context.Context, m api.Module, ptr, cap uint32) uint32 {
	p := r.withProcess()
	if p == nil {
		return 0
	}
	return r.writeStringOrLength(ptr, cap, p.name)
}

// hostProcessRead copies length bytes from the attached process at address
// into the script's own linear memory at outPtr. Returns 1 on success, 0
// if the process isn't attached, the read fails, or outPtr/length names an
// out-of-bounds region of the script's memory.
func (r *Runtime) hostProcessRead(ctx context.Context, m api.Module, address uint64, outPtr, length uint32) uint32 {
	p := r.withProcess()
	if p == nil {
		return 0
	}
	buf := make([]byte, length)
	if err := p.ReadBuf(address, buf); err != nil {
		return 0
	}
	if !r.writeBytes(outPtr, buf) {
		return 0
	}
	return 1
}

func (r *Runtime) hostProcessGetMemoryRangeCount(ctx context.Context, m api.Module) uint32 {
	p := r.withProcess()
	if p == nil {
		return 0
	}
	regions, err := p.ScannableRegions()
	if err != nil {
		return 0
	}
	return uint32(len(regions))
}

func (r *Runtime) regionAt(index uint32) (MemoryRange, bool) {
	p := r.withProcess()
	if p == nil {
		return MemoryRange{}, false
	}
	regions, err := p.ScannableRegions()
	if err != nil || index >= uint32(len(regions)) {
		return MemoryRange{}, false
	}
	return regions[index], true
}

func (r *Runtime) hostProcessGetMemoryRangeAddress(ctx context.Context, m api.Module, index uint32) uint64 {
	reg, ok := r.regionAt(index)
	if !ok {
		return 0
	}
	return reg.Base
}

func (r *Runtime) hostProcessGetMemoryRangeSize(ctx context.Context, m api.Module, index uint32) uint64 {
	reg, ok := r.regionAt(index)
	if !ok {
		return 0
	}
	return reg.Size
}

func (r *Runtime) hostProcessGetMemoryRangeFlags(ctx context.Context, m api.Module, index uint32) uint64 {
	_, ok := r.regionAt(index)
	if !ok {
		return 0
	}
	// The linux backend's scannableRegions already filters to readable
	// mappings, so every valid index is readable; no writable/executable
	// distinction is tracked beyond that, since scanning is the only use.
	return 1
}

// --- settings_map_* / settings_list_* / setting_value_* --------------------
//
// Handle tables are per-Runtime and handles never cross scripts: they are
// host-assigned integers, opaque to the guest.

func (r *Runtime) allocHandle() uint32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextHandle++
	return r.nextHandle
}

func (r *Runtime) hostSettingsMapNew(ctx context.Context, m api.Module) uint32 {
	h := r.allocHandle()
	r.mu.Lock()
	r.settingsMaps[h] = NewSettingsMap()
	r.mu.Unlock()
	return h
}

// hostSettingsMapLoad returns a handle to a new, empty settings map. The
// runtime keeps no stored settings of its own, so nothing is loaded into it.
func (r *Runtime) hostSettingsMapLoad(ctx context.Context, m api.Module) uint32 {
	return r.hostSettingsMapNew(ctx, m)
}

func (r *Runtime) hostSettingsMapFree(ctx context.Context, m api.Module, handle uint32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.settingsMaps, handle)
}

func (r *Runtime) hostSettingsMapCopy(ctx context.Context, m api.Module, handle uint32) uint32 {
	r.mu.Lock()
	src, ok := r.settingsMaps[handle]
	r.mu.Unlock()
	if !ok {
		return 0
	}
	h := r.allocHandle()
	r.mu.Lock()
	r.settingsMaps[h] = src.Copy()
	r.mu.Unlock()
	return h
}

func (r *Runtime) hostSettingsMapGet(ctx context.Context, m api.Module, handle, keyPtr, keyLen uint32) uint32 {
	r.mu.Lock()
	sm, ok := r.settingsMaps[handle]
	r.mu.Unlock()
	key, kok := r.readString(keyPtr, keyLen)
	if !ok || !kok {
		return 0
	}
	v, found := sm.Get(key)
	if !found {
		return 0
	}
	return r.storeSettingValue(v)
}

func (r *Runtime) hostSettingsMapInsert(ctx context.Context, m api.Module, handle, keyPtr, keyLen, valueHandle uint32) {
	r.mu.Lock()
	sm, ok := r.settingsMaps[handle]
	v, vok := r.settingValues[valueHandle]
	r.mu.Unlock()
	key, kok := r.readString(keyPtr, keyLen)
	if !ok || !vok || !kok {
		return
	}
	sm.Insert(key, v)
}

func (r *Runtime) hostSettingsMapLen(ctx context.Context, m api.Module, handle uint32) uint32 {
	r.mu.Lock()
	sm, ok := r.settingsMaps[handle]
	r.mu.Unlock()
	if !ok {
		return 0
	}
	return uint32(sm.Len())
}

func (r *Runtime) hostSettingsListNew(ctx context.Context, m api.Module) uint32 {
	h := r.allocHandle()
	r.mu.Lock()
	r.settingsLst[h] = NewSettingsList()
	r.mu.Unlock()
	return h
}

func (r *Runtime) hostSettingsListFree(ctx context.Context, m api.Module, handle uint32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.settingsLst, handle)
}

func (r *Runtime) hostSettingsListCopy(ctx context.Context, m api.Module, handle uint32) uint32 {
	r.mu.Lock()
	src, ok := r.settingsLst[handle]
	r.mu.Unlock()
	if !ok {
		return 0
	}
	h := r.allocHandle()
	r.mu.Lock()
	r.settingsLst[h] = src.Copy()
	r.mu.Unlock()
	return h
}

func (r *Runtime) hostSettingsListGet(ctx context.Context, m api.Module, handle, index uint32) uint32 {
	r.mu.Lock()
	sl, ok := r.settingsLst[handle]
	r.mu.Unlock()
	if !ok {
		return 0
	}
	v, found := sl.Get(int(index))
	if !found {
		return 0
	}
	return r.storeSettingValue(v)
}

func (r *Runtime) hostSettingsListPush(ctx context.Context, m api.Module, handle, valueHandle uint32) {
	r.mu.Lock()
	sl, ok := r.settingsLst[handle]
	v, vok := r.settingValues[valueHandle]
	r.mu.Unlock()
	if !ok || !vok {
		return
	}
	sl.Push(v)
}

func (r *Runtime) hostSettingsListInsert(ctx context.Context, m api.Module, handle, index, valueHandle uint32) {
	r.mu.Lock()
	sl, ok := r.settingsLst[handle]
	v, vok := r.settingValues[valueHandle]
	r.mu.Unlock()
	if !ok || !vok {
		return
	}
	sl.Insert(int(index), v)
}

func (r *Runtime) hostSettingsListLen(ctx context.Context, m api.Module, handle uint32) uint32 {
	r.mu.Lock()
	sl, ok := r.settingsLst[handle]
	r.mu.Unlock()
	if !ok {
		return 0
	}
	return uint32(sl.Len())
}

func (r *Runtime) storeSettingValue(v SettingValue) uint32 {
	h := r.allocHandle()
	r.mu.Lock()
	r.settingValues[h] = v
	r.mu.Unlock()
	return h
}

func (r *Runtime) hostSettingValueNewBool(ctx context.Context, m api.Module, b uint32) uint32 {
	return r.storeSettingValue(SettingValue{Kind: SettingBool, Bool: b != 0})
}

func (r *Runtime) hostSettingValueNewString(ctx context.Context, m api.Module, ptr, length uint32) uint32 {
	s, ok := r.readString(ptr, length)
	if !ok {
		return 0
	}
	return r.storeSettingValue(SettingValue{Kind: SettingString, Str: s})
}

func (r *Runtime) hostSettingValueFree(ctx context.Context, m api.Module, handle uint32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.settingValues, handle)
}

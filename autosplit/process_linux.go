//go:build linux

package autosplit

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// linuxBackend implements processBackend over /proc: pid discovery via
// /proc/<pid>/comm, modules via /proc/<pid>/maps, scannable regions the
// same way filtered to mappings with read permission, and reads via
// /proc/<pid>/mem.
type linuxBackend struct {
	mem map[int]*os.File
}

var defaultBackend processBackend = &linuxBackend{mem: make(map[int]*os.File)}

func (b *linuxBackend) findByName(name string) (int, bool, error) {
	entries, err := os.ReadDir("/proc")
	if err != nil {
		return 0, false, fmt.Errorf("%w: %v", ErrListProcesses, err)
	}
	for _, e := range entries {
		pid, err := strconv.Atoi(e.Name())
		if err != nil {
			continue
		}
		commBytes, err := os.ReadFile(fmt.Sprintf("/proc/%d/comm", pid))
		if err != nil {
			continue
		}
		if strings.TrimSpace(string(commBytes)) == name {
			is64 := is64BitExe(pid)
			return pid, is64, nil
		}
	}
	return 0, false, fmt.Errorf("no process named %q", name)
}

func is64BitExe(pid int) bool {
	data, err := os.ReadFile(fmt.Sprintf("/proc/%d/exe", pid))
	if err != nil || len(data) < 5 {
		return true
	}
	return data[4] == 2 // ELFCLASS64
}

func (b *linuxBackend) modules(pid int) ([]Module, error) {
	f, err := os.Open(fmt.Sprintf("/proc/%d/maps", pid))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	seen := make(map[string]bool)
	var mods []Module
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Text()
		fields := strings.Fields(line)
		if len(fields) < 6 {
			continue
		}
		path := fields[5]
		if path == "" || seen[path] {
			continue
		}
		addrRange := strings.SplitN(fields[0], "-", 2)
		if len(addrRange) != 2 {
			continue
		}
		base, err := strconv.ParseUint(addrRange[0], 16, 64)
		if err != nil {
			continue
		}
		end, err := strconv.ParseUint(addrRange[1], 16, 64)
		if err != nil {
			continue
		}
		seen[path] = true
		mods = append(mods, Module{Name: moduleBaseName(path), Address: base, Size: end - base})
	}
	return mods, sc.Err()
}

func moduleBaseName(path string) string {
	if idx := strings.LastIndexByte(path, '/'); idx >= 0 {
		return path[idx+1:]
	}
	return path
}

func (b *linuxBackend) scannableRegions(pid int) ([]MemoryRange, error) {
	f, err := os.Open(fmt.Sprintf("/proc/%d/maps", pid))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var regions []MemoryRange
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) < 2 {
			continue
		}
		perms := fields[1]
		if !strings.HasPrefix(perms, "r") {
			continue
		}
		addrRange := strings.SplitN(fields[0], "-", 2)
		if len(addrRange) != 2 {
			continue
		}
		base, err1 := strconv.ParseUint(addrRange[0], 16, 64)
		end, err2 := strconv.ParseUint(addrRange[1], 16, 64)
		if err1 != nil || err2 != nil {
			continue
		}
		regions = append(regions, MemoryRange{Base: base, Size: end - base})
	}
	return regions, sc.Err()
}

func (b *linuxBackend) readBuf(pid int, address uint64, out []byte) error {
	mem, ok := b.mem[pid]
	if !ok {
		f, err := os.OpenFile(fmt.Sprintf("/proc/%d/mem", pid), os.O_RDONLY, 0)
		if err != nil {
			return err
		}
		b.mem[pid] = f
		mem = f
	}
	_, err := mem.ReadAt(out, int64(address))
	return err
}

func (b *linuxBackend) close(pid int) {
	if f, ok := b.mem[pid]; ok {
		f.Close()
		delete(b.mem, pid)
	}
}

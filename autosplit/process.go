package autosplit

import "fmt"

// MemoryRange is one scannable region of a foreign process's address
// space, as enumerated by the OS backend.
type MemoryRange struct {
	Base uint64
	Size uint64
}

// Module is one loaded module (executable or shared library) of a foreign
// process.
type Module struct {
	Name    string
	Address uint64
	Size    uint64
}

// processBackend is the per-OS primitive set process introspection needs:
// is_64bit, with_name, module_address, read_buf, scannable_regions.
// Platforms without introspection supply a dummy that always reports
// ErrProcessDoesntExist.
type processBackend interface {
	findByName(name string) (pid int, is64Bit bool, err error)
	modules(pid int) ([]Module, error)
	scannableRegions(pid int) ([]MemoryRange, error)
	readBuf(pid int, address uint64, out []byte) error
	close(pid int)
}

// Process is a handle to an attached foreign process, the memory-reading
// half of the auto-splitter's sandbox. Reads never panic on bad addresses;
// they return ErrReadMemory so a scan can silently zero an unreadable
// region and continue.
type Process struct {
	name    string
	pid     int
	is64Bit bool
	backend processBackend
}

// WithName enumerates OS processes and attaches to the first one matching
// name.
func WithName(name string, backend processBackend) (*Process, error) {
	if backend == nil {
		backend = defaultBackend
	}
	pid, is64, err := backend.findByName(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrProcessDoesntExist, name, err)
	}
	return &Process{name: name, pid: pid, is64Bit: is64, backend: backend}, nil
}

// Is64Bit reports whether the attached process is a 64-bit process.
func (p *Process) Is64Bit() bool { return p.is64Bit }

// ModuleAddress returns the base address of the named module, or
// ErrModuleDoesntExist.
func (p *Process) ModuleAddress(name string) (uint64, error) {
	mods, err := p.backend.modules(p.pid)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrListModules, err)
	}
	for _, m := range mods {
		if m.Name == name {
			return m.Address, nil
		}
	}
	return 0, fmt.Errorf("%w: %s", ErrModuleDoesntExist, name)
}

// Modules lists every module loaded in the attached process.
func (p *Process) Modules() ([]Module, error) {
	mods, err := p.backend.modules(p.pid)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrListModules, err)
	}
	return mods, nil
}

// ScannableRegions lists the memory ranges a signature scan may walk.
func (p *Process) ScannableRegions() ([]MemoryRange, error) {
	return p.backend.scannableRegions(p.pid)
}

// ReadBuf reads len(out) bytes from address into out.
func (p *Process) ReadBuf(address uint64, out []byte) error {
	if err := p.backend.readBuf(p.pid, address, out); err != nil {
		return fmt.Errorf("%w: 0x%x: %v", ErrReadMemory, address, err)
	}
	return nil
}

// Close detaches from the process, releasing any OS handle the backend
// holds open.
func (p *Process) Close() {
	p.backend.close(p.pid)
}

//go:build !linux

package autosplit

import "fmt"

// dummyBackend stands in on platforms where this module carries no
// process-introspection primitive.
type dummyBackend struct{}

var defaultBackend processBackend = dummyBackend{}

func (dummyBackend) findByName(name string) (int, bool, error) {
	return 0, false, fmt.Errorf("process introspection not implemented on this platform")
}

func (dummyBackend) modules(pid int) ([]Module, error) {
	return nil, fmt.Errorf("process introspection not implemented on this platform")
}

func (dummyBackend) scannableRegions(pid int) ([]MemoryRange, error) {
	return nil, fmt.Errorf("process introspection not implemented on this platform")
}

func (dummyBackend) readBuf(pid int, address uint64, out []byte) error {
	return fmt.Errorf("process introspection not implemented on this platform")
}

func (dummyBackend) close(pid int) {}

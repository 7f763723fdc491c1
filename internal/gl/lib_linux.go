//go:build linux || freebsd

package gl

import (
	"sync"

	"github.com/ebitengine/purego"
)

var (
	libOnce sync.Once
	libGL   uintptr
)

// librarySymbol looks name up in libGL, returning 0 if either is missing.
func librarySymbol(name string) uintptr {
	libOnce.Do(func() {
		libGL, _ = purego.Dlopen("libGL.so.1", purego.RTLD_LAZY|purego.RTLD_GLOBAL)
	})
	if libGL == 0 {
		return 0
	}
	addr, err := purego.Dlsym(libGL, name)
	if err != nil {
		return 0
	}
	return addr
}

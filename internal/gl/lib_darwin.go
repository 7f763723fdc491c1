//go:build darwin

package gl

import (
	"sync"

	"github.com/ebitengine/purego"
)

var (
	libOnce sync.Once
	libGL   uintptr
)

func librarySymbol(name string) uintptr {
	libOnce.Do(func() {
		libGL, _ = purego.Dlopen("/System/Library/Frameworks/OpenGL.framework/OpenGL", purego.RTLD_GLOBAL|purego.RTLD_LAZY)
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

//go:build windows

package gl

import "syscall"

var opengl32 = syscall.NewLazyDLL("opengl32.dll")

// librarySymbol resolves the OpenGL 1.1 functions that wglGetProcAddress
// refuses to return.
func librarySymbol(name string) uintptr {
	proc := opengl32.NewProc(name)
	if err := proc.Find(); err != nil {
		return 0
	}
	return proc.Addr()
}

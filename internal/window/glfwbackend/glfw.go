// Package glfwbackend implements window.Backend on top of GLFW 3.3.
//
// GLFW must be driven from the main thread. Callers lock the OS thread
// before calling New.
package glfwbackend

import (
	"errors"
	"fmt"
	"image"
	"unsafe"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/dynamic-static/dstsys/internal/logger"
	"github.com/dynamic-static/dstsys/internal/window"
)

// ErrNoMonitor is returned for a fullscreen window when no monitor is
// connected.
var ErrNoMonitor = errors.New("no monitor for fullscreen window")

type Backend struct{}

var _ window.Backend = (*Backend)(nil)

// New initialises GLFW.
func New() (*Backend, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}
	logger.Info("GLFW initialised", "version", glfw.GetVersionString())
	return &Backend{}, nil
}

// ProcAddress resolves an OpenGL entry point of the current context.
func ProcAddress(name string) unsafe.Pointer {
	return glfw.GetProcAddress(name)
}

func boolHint(b bool) int {
	if b {
		return glfw.True
	}
	return glfw.False
}

func (b *Backend) CreateWindow(info window.Info, share window.Native, events window.Events) (window.Native, error) {
	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.Decorated, boolHint(info.Flags.Has(window.Decorated)))
	glfw.WindowHint(glfw.Resizable, boolHint(info.Flags.Has(window.Resizable)))
	// Shown after positioning.
	glfw.WindowHint(glfw.Visible, glfw.False)

	if gl := info.GL; gl != nil {
		glfw.WindowHint(glfw.ClientAPI, glfw.OpenGLAPI)
		glfw.WindowHint(glfw.ContextVersionMajor, gl.Version.Major)
		glfw.WindowHint(glfw.ContextVersionMinor, gl.Version.Minor)
		if gl.Version.Major > 3 || (gl.Version.Major == 3 && gl.Version.Minor >= 2) {
			glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
			glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
		}
		glfw.WindowHint(glfw.DoubleBuffer, boolHint(gl.Flags.Has(window.DoubleBuffer)))
		glfw.WindowHint(glfw.DepthBits, gl.DepthBits)
		glfw.WindowHint(glfw.StencilBits, gl.StencilBits)
	} else {
		glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	}

	var monitor *glfw.Monitor
	var modes videoModer
	if info.Flags.Has(window.Fullscreen) {
		if monitor = glfw.GetPrimaryMonitor(); monitor != nil {
			modes = monitor
		}
	}
	size, err := extent(info, modes)
	if err != nil {
		return nil, err
	}

	var shared *glfw.Window
	if n, ok := share.(*native); ok && n != nil {
		shared = n.w
	}

	w, err := glfw.CreateWindow(size.X, size.Y, info.Name, monitor, shared)
	if err != nil {
		return nil, fmt.Errorf("glfw create window: %w", err)
	}
	if monitor == nil {
		w.SetPos(info.Position.X, info.Position.Y)
	}

	n := &native{w: w}
	n.install(events)
	n.SetCursorMode(info.CursorMode)

	if info.GL != nil {
		w.MakeContextCurrent()
		if info.GL.Flags.Has(window.VSync) {
			glfw.SwapInterval(1)
		} else {
			glfw.SwapInterval(0)
		}
	}
	if info.Flags.Has(window.Visible) {
		w.Show()
	}
	return n, nil
}

type videoModer interface {
	GetVideoMode() *glfw.VidMode
}

// extent returns the window size to request. Fullscreen windows take the
// current video mode of monitor, which is nil when none is connected.
func extent(info window.Info, monitor videoModer) (image.Point, error) {
	if !info.Flags.Has(window.Fullscreen) {
		return info.Extent, nil
	}
	if monitor == nil {
		return image.Point{}, ErrNoMonitor
	}
	if vm := monitor.GetVideoMode(); vm != nil {
		return image.Pt(vm.Width, vm.Height), nil
	}
	return info.Extent, nil
}

func (b *Backend) PollEvents() {
	glfw.PollEvents()
}

func (b *Backend) Terminate() {
	glfw.Terminate()
}

type native struct {
	w *glfw.Window
}

func action(a glfw.Action) window.Action {
	switch a {
	case glfw.Press:
		return window.Press
	case glfw.Repeat:
		return window.Repeat
	default:
		return window.Release
	}
}

func (n *native) install(events window.Events) {
	n.w.SetCloseCallback(func(*glfw.Window) {
		events.CloseRequested()
	})
	n.w.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		events.FramebufferResized(width, height)
	})
	n.w.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, a glfw.Action, _ glfw.ModifierKey) {
		events.Key(int(key), action(a))
	})
	n.w.SetCharCallback(func(_ *glfw.Window, char rune) {
		events.Char(char)
	})
	n.w.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		events.CursorMoved(x, y)
	})
	n.w.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, a glfw.Action, _ glfw.ModifierKey) {
		events.MouseButton(int(button), action(a))
	})
	n.w.SetScrollCallback(func(_ *glfw.Window, dx, dy float64) {
		events.Scrolled(dx, dy)
	})
	n.w.SetFocusCallback(func(_ *glfw.Window, focused bool) {
		events.Focused(focused)
	})
}

func (n *native) SetTitle(title string)    { n.w.SetTitle(title) }
func (n *native) Clipboard() string        { return n.w.GetClipboardString() }
func (n *native) SetClipboard(text string) { n.w.SetClipboardString(text) }
func (n *native) Focus()                   { n.w.Focus() }
func (n *native) MakeContextCurrent()      { n.w.MakeContextCurrent() }
func (n *native) SwapBuffers()             { n.w.SwapBuffers() }

func (n *native) SetCursorMode(mode window.CursorMode) {
	switch mode {
	case window.CursorHidden:
		n.w.SetInputMode(glfw.CursorMode, glfw.CursorHidden)
	case window.CursorDisabled:
		n.w.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	default:
		n.w.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
	}
}

func (n *native) FramebufferSize() (int, int) {
	return n.w.GetFramebufferSize()
}

func (n *native) Destroy() {
	n.w.Destroy()
}

// Package window owns native windows, their input devices and their OpenGL
// contexts. The native layer is reached through a Backend so that the
// package can run against GLFW or against a fake in tests.
package window

import (
	"errors"
	"fmt"
	"image"
	"strings"

	"github.com/dynamic-static/dstsys/internal/input"
	"github.com/dynamic-static/dstsys/internal/logger"
)

var ErrClosed = errors.New("window is closed")

// Native is a window handle created by a Backend.
type Native interface {
	SetTitle(title string)
	Clipboard() string
	SetClipboard(text string)
	SetCursorMode(mode CursorMode)
	Focus()
	MakeContextCurrent()
	SwapBuffers()
	FramebufferSize() (width, height int)
	Destroy()
}

// Events receives the callbacks of one native window. Key and button codes
// are the backend's native GLFW values.
type Events interface {
	CloseRequested()
	FramebufferResized(width, height int)
	Key(key int, action Action)
	Char(r rune)
	CursorMoved(x, y float64)
	MouseButton(button int, action Action)
	Scrolled(dx, dy float64)
	Focused(focused bool)
}

// Backend creates native windows and pumps their events.
type Backend interface {
	// CreateWindow creates a window described by info. When share is not nil
	// the new OpenGL context shares objects with it.
	CreateWindow(info Info, share Native, events Events) (Native, error)
	PollEvents()
	Terminate()
}

// Window is a native window with its own input devices and text stream.
type Window struct {
	OnResize         Event[image.Point]
	OnCloseRequested Event[*Window]

	platform *Platform
	native   Native
	info     Info
	parent   *Window
	children []*Window

	input          input.Input
	text           strings.Builder
	closeRequested bool
	closed         bool
}

func (w *Window) Info() Info {
	return w.info
}

// Parent returns the window w was created from, or nil.
func (w *Window) Parent() *Window {
	return w.parent
}

func (w *Window) Children() []*Window {
	return append([]*Window(nil), w.children...)
}

func (w *Window) Input() *input.Input {
	return &w.input
}

// TextStream returns the text typed since the last Platform.PollEvents.
func (w *Window) TextStream() string {
	return w.text.String()
}

func (w *Window) Clipboard() string {
	if w.closed {
		return ""
	}
	return w.native.Clipboard()
}

func (w *Window) SetClipboard(text string) {
	if w.closed {
		return
	}
	w.native.SetClipboard(text)
}

func (w *Window) Name() string {
	return w.info.Name
}

func (w *Window) SetName(name string) {
	if w.closed {
		return
	}
	w.info.Name = name
	w.native.SetTitle(name)
}

func (w *Window) SetCursorMode(mode CursorMode) {
	if w.closed {
		return
	}
	w.info.CursorMode = mode
	w.native.SetCursorMode(mode)
}

// CreateChild creates a window owned by w. Its OpenGL context shares objects
// with the context of w. Children are closed with their parent.
func (w *Window) CreateChild(info Info) (*Window, error) {
	if w.closed {
		return nil, fmt.Errorf("create child of %q: %w", w.info.Name, ErrClosed)
	}
	child, err := w.platform.create(info, w)
	if err != nil {
		return nil, err
	}
	w.children = append(w.children, child)
	return child, nil
}

func (w *Window) Focus() {
	if !w.closed {
		w.native.Focus()
	}
}

func (w *Window) MakeContextCurrent() {
	if !w.closed {
		w.native.MakeContextCurrent()
	}
}

func (w *Window) Swap() {
	if !w.closed {
		w.native.SwapBuffers()
	}
}

// Resolution returns the framebuffer size in pixels.
func (w *Window) Resolution() image.Point {
	if w.closed {
		return image.Point{}
	}
	width, height := w.native.FramebufferSize()
	return image.Pt(width, height)
}

// CloseRequested reports whether the user asked to close the window.
func (w *Window) CloseRequested() bool {
	return w.closeRequested
}

func (w *Window) Closed() bool {
	return w.closed
}

// Close closes the children of w, then w itself. Calling Close on a closed
// window does nothing. A window closed from an event handler during
// Platform.PollEvents is destroyed once the poll returns.
func (w *Window) Close() {
	if w.closed {
		return
	}
	for _, child := range w.Children() {
		child.Close()
	}
	w.children = nil
	if w.parent != nil {
		w.parent.removeChild(w)
	}
	w.closed = true
	if w.platform.registry.Remove(w) {
		w.platform.destroy(w.native)
		logger.Debug("closed window", "name", w.info.Name)
	}
}

func (w *Window) removeChild(child *Window) {
	for i, c := range w.children {
		if c == child {
			w.children = append(w.children[:i], w.children[i+1:]...)
			return
		}
	}
}

// nativeEvents keeps the callback methods off the public surface of Window.
type nativeEvents struct {
	w *Window
}

func (e nativeEvents) CloseRequested() {
	e.w.closeRequested = true
	e.w.OnCloseRequested.emit(e.w)
}

func (e nativeEvents) FramebufferResized(width, height int) {
	e.w.OnResize.emit(image.Pt(width, height))
}

// Unmapped keys all translate to KeyUnknown and are dropped, since one
// release would otherwise clear the slot while another is still held.
func (e nativeEvents) Key(key int, action Action) {
	k := input.KeyFromGLFW(key)
	if k == input.KeyUnknown {
		return
	}
	e.w.input.SetKey(k, action != Release)
}

func (e nativeEvents) Char(r rune) {
	e.w.text.WriteRune(r)
}

func (e nativeEvents) CursorMoved(x, y float64) {
	e.w.input.SetCursor(float32(x), float32(y))
}

func (e nativeEvents) MouseButton(button int, action Action) {
	e.w.input.SetButton(input.ButtonFromGLFW(button), action != Release)
}

func (e nativeEvents) Scrolled(dx, dy float64) {
	e.w.input.AddScroll(float32(dx), float32(dy))
}

func (e nativeEvents) Focused(focused bool) {
	if !focused {
		e.w.input.Reset()
	}
}

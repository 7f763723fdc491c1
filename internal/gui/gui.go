// Package gui feeds window input into Dear ImGui and renders its draw data.
package gui

import (
	"image"
	"time"

	"github.com/inkyblackness/imgui-go/v4"

	"github.com/dynamic-static/dstsys/internal/input"
)

// IO is the part of imgui.IO written once per frame.
type IO interface {
	SetDisplaySize(value imgui.Vec2)
	SetDeltaTime(value float32)
	SetMousePosition(value imgui.Vec2)
	SetMouseButtonDown(index int, down bool)
	AddMouseWheelDelta(horizontal, vertical float32)
	KeyPress(key int)
	KeyRelease(key int)
	KeyMap(imguiKey int, nativeKey int)
	KeyCtrl(leftCtrl int, rightCtrl int)
	KeyShift(leftShift int, rightShift int)
	KeyAlt(leftAlt int, rightAlt int)
	KeySuper(leftSuper int, rightSuper int)
	AddInputCharacters(chars string)
	SetClipboard(board imgui.Clipboard)
	WantCaptureKeyboard() bool
	WantCaptureMouse() bool
}

var _ IO = (*imgui.IO)(nil)

// Source is the window state the GUI reads each frame.
type Source interface {
	Resolution() image.Point
	Input() *input.Input
	TextStream() string
	Clipboard() string
	SetClipboard(text string)
}

// Renderer draws the data produced by imgui.Render.
type Renderer interface {
	Render(displaySize, framebufferSize imgui.Vec2, drawData imgui.DrawData)
	Close()
}

var keyMap = []struct {
	imgui int
	key   input.Key
}{
	{imgui.KeyTab, input.KeyTab},
	{imgui.KeyLeftArrow, input.KeyLeftArrow},
	{imgui.KeyRightArrow, input.KeyRightArrow},
	{imgui.KeyUpArrow, input.KeyUpArrow},
	{imgui.KeyDownArrow, input.KeyDownArrow},
	{imgui.KeyPageUp, input.KeyPageUp},
	{imgui.KeyPageDown, input.KeyPageDown},
	{imgui.KeyHome, input.KeyHome},
	{imgui.KeyEnd, input.KeyEnd},
	{imgui.KeyDelete, input.KeyDelete},
	{imgui.KeyBackspace, input.KeyBackspace},
	{imgui.KeyEnter, input.KeyEnter},
	{imgui.KeyEscape, input.KeyEscape},
	{imgui.KeyA, input.KeyA},
	{imgui.KeyC, input.KeyC},
	{imgui.KeyV, input.KeyV},
	{imgui.KeyX, input.KeyX},
	{imgui.KeyY, input.KeyY},
	{imgui.KeyZ, input.KeyZ},
}

// MapKeys registers our key ordinals as ImGui's native key indices.
func MapKeys(io IO) {
	for _, m := range keyMap {
		io.KeyMap(m.imgui, int(m.key))
	}
}

// Sync copies one frame of window state into io.
func Sync(io IO, dt time.Duration, src Source) {
	res := src.Resolution()
	io.SetDisplaySize(imgui.Vec2{X: float32(res.X), Y: float32(res.Y)})
	if dt > 0 {
		io.SetDeltaTime(float32(dt.Seconds()))
	}

	in := src.Input()
	pos := in.Mouse.Position()
	io.SetMousePosition(imgui.Vec2{X: pos.X(), Y: pos.Y()})
	for i, b := range []input.Button{input.ButtonLeft, input.ButtonRight, input.ButtonMiddle} {
		io.SetMouseButtonDown(i, in.Mouse.Down(b))
	}
	if scroll := in.Mouse.ScrollDelta(); scroll.X() != 0 || scroll.Y() != 0 {
		io.AddMouseWheelDelta(scroll.X(), scroll.Y())
	}

	for k := input.Key(0); k < input.KeyCount; k++ {
		if in.Keyboard.Down(k) {
			io.KeyPress(int(k))
		} else {
			io.KeyRelease(int(k))
		}
	}
	if text := src.TextStream(); text != "" {
		io.AddInputCharacters(text)
	}

	io.KeyCtrl(int(input.KeyLeftControl), int(input.KeyRightControl))
	io.KeyShift(int(input.KeyLeftShift), int(input.KeyRightShift))
	io.KeyAlt(int(input.KeyLeftMenu), int(input.KeyRightMenu))
	io.KeySuper(int(input.KeyLeftWindow), int(input.KeyRightWindow))

	io.SetClipboard(clipboard{src})
}

// clipboard adapts a window to imgui.Clipboard.
type clipboard struct {
	src Source
}

func (c clipboard) Text() (string, error) {
	return c.src.Clipboard(), nil
}

func (c clipboard) SetText(text string) {
	c.src.SetClipboard(text)
}

// Gui owns an ImGui context and the renderer that draws it.
type Gui struct {
	ctx      *imgui.Context
	io       IO
	renderer Renderer
	src      Source
}

// New creates an ImGui context. newRenderer is handed the font atlas of the
// new context so it can upload it.
func New(newRenderer func(fonts imgui.FontAtlas) (Renderer, error)) (*Gui, error) {
	ctx := imgui.CreateContext(nil)
	io := imgui.CurrentIO()
	io.SetIniFilename("")
	MapKeys(io)

	r, err := newRenderer(io.Fonts())
	if err != nil {
		ctx.Destroy()
		return nil, err
	}
	return &Gui{ctx: ctx, io: io, renderer: r}, nil
}

// BeginFrame syncs src into ImGui and starts a new frame.
func (g *Gui) BeginFrame(dt time.Duration, src Source) {
	g.src = src
	Sync(g.io, dt, src)
	imgui.NewFrame()
}

// EndFrame finalizes the frame and renders it.
func (g *Gui) EndFrame() {
	imgui.Render()
	if g.src == nil {
		return
	}
	res := g.src.Resolution()
	size := imgui.Vec2{X: float32(res.X), Y: float32(res.Y)}
	g.renderer.Render(size, size, imgui.RenderedDrawData())
}

// WantsInput reports whether ImGui is consuming the keyboard or the mouse.
// The answer comes from the last frame, so call it before BeginFrame to
// decide whether the application should react to this frame's input.
func (g *Gui) WantsInput() (keyboard, mouse bool) {
	return g.io.WantCaptureKeyboard(), g.io.WantCaptureMouse()
}

func (g *Gui) Close() {
	if g.ctx == nil {
		return
	}
	g.renderer.Close()
	g.ctx.Destroy()
	g.ctx = nil
}

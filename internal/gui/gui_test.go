package gui

import (
	"image"
	"testing"
	"time"

	"github.com/inkyblackness/imgui-go/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dynamic-static/dstsys/internal/gl/gltest"
	"github.com/dynamic-static/dstsys/internal/input"
)

type fakeIO struct {
	displaySize imgui.Vec2
	deltaTime   float32
	mousePos    imgui.Vec2
	mouseDown   [3]bool
	wheel       imgui.Vec2
	keysDown    map[int]bool
	keyMap      map[int]int
	ctrl        bool
	shift       bool
	alt         bool
	super       bool
	chars       string
	clipboard   imgui.Clipboard

	captureKeyboard bool
	captureMouse    bool
}

func newFakeIO() *fakeIO {
	return &fakeIO{keysDown: make(map[int]bool), keyMap: make(map[int]int)}
}

func (f *fakeIO) SetDisplaySize(value imgui.Vec2)         { f.displaySize = value }
func (f *fakeIO) SetDeltaTime(value float32)              { f.deltaTime = value }
func (f *fakeIO) SetMousePosition(value imgui.Vec2)       { f.mousePos = value }
func (f *fakeIO) SetMouseButtonDown(index int, down bool) { f.mouseDown[index] = down }
func (f *fakeIO) KeyPress(key int)                        { f.keysDown[key] = true }
func (f *fakeIO) KeyRelease(key int)                      { f.keysDown[key] = false }
func (f *fakeIO) KeyMap(imguiKey int, nativeKey int)      { f.keyMap[imguiKey] = nativeKey }
func (f *fakeIO) AddInputCharacters(chars string)         { f.chars += chars }
func (f *fakeIO) SetClipboard(board imgui.Clipboard)      { f.clipboard = board }

func (f *fakeIO) WantCaptureKeyboard() bool { return f.captureKeyboard }
func (f *fakeIO) WantCaptureMouse() bool    { return f.captureMouse }

func (f *fakeIO) AddMouseWheelDelta(horizontal, vertical float32) {
	f.wheel.X += horizontal
	f.wheel.Y += vertical
}

func (f *fakeIO) KeyCtrl(left, right int)  { f.ctrl = f.keysDown[left] || f.keysDown[right] }
func (f *fakeIO) KeyShift(left, right int) { f.shift = f.keysDown[left] || f.keysDown[right] }
func (f *fakeIO) KeyAlt(left, right int)   { f.alt = f.keysDown[left] || f.keysDown[right] }
func (f *fakeIO) KeySuper(left, right int) { f.super = f.keysDown[left] || f.keysDown[right] }

type fakeSource struct {
	resolution image.Point
	input      input.Input
	text       string
	clipboard  string
}

func (s *fakeSource) Resolution() image.Point  { return s.resolution }
func (s *fakeSource) Input() *input.Input      { return &s.input }
func (s *fakeSource) TextStream() string       { return s.text }
func (s *fakeSource) Clipboard() string        { return s.clipboard }
func (s *fakeSource) SetClipboard(text string) { s.clipboard = text }

func TestMapKeys(t *testing.T) {
	io := newFakeIO()
	MapKeys(io)

	assert.Equal(t, int(input.KeyTab), io.keyMap[imgui.KeyTab])
	assert.Equal(t, int(input.KeyLeftArrow), io.keyMap[imgui.KeyLeftArrow])
	assert.Equal(t, int(input.KeyEscape), io.keyMap[imgui.KeyEscape])
	assert.Equal(t, int(input.KeyZ), io.keyMap[imgui.KeyZ])
	assert.Len(t, io.keyMap, len(keyMap))
}

func TestSync(t *testing.T) {
	src := &fakeSource{resolution: image.Pt(800, 600), text: "hi", clipboard: "pasted"}
	src.input.SetKey(input.KeyA, true)
	src.input.SetKey(input.KeyRightControl, true)
	src.input.SetButton(input.ButtonRight, true)
	src.input.SetCursor(12, 34)
	src.input.AddScroll(0, -1)
	src.input.Update()

	io := newFakeIO()
	Sync(io, 16*time.Millisecond, src)

	assert.Equal(t, imgui.Vec2{X: 800, Y: 600}, io.displaySize)
	assert.InDelta(t, 0.016, io.deltaTime, 1e-6)
	assert.Equal(t, imgui.Vec2{X: 12, Y: 34}, io.mousePos)
	assert.Equal(t, [3]bool{false, true, false}, io.mouseDown)
	assert.Equal(t, imgui.Vec2{X: 0, Y: -1}, io.wheel)
	assert.True(t, io.keysDown[int(input.KeyA)])
	assert.False(t, io.keysDown[int(input.KeyB)])
	assert.Len(t, io.keysDown, int(input.KeyCount))
	assert.Equal(t, "hi", io.chars)

	assert.True(t, io.ctrl)
	assert.False(t, io.shift)
	assert.False(t, io.alt)
	assert.False(t, io.super)

	require.NotNil(t, io.clipboard)
	text, err := io.clipboard.Text()
	require.NoError(t, err)
	assert.Equal(t, "pasted", text)
	io.clipboard.SetText("copied")
	assert.Equal(t, "copied", src.clipboard)
}

func TestSyncReleasesKeys(t *testing.T) {
	src := &fakeSource{resolution: image.Pt(1, 1)}
	io := newFakeIO()

	src.input.SetKey(input.KeyLeftWindow, true)
	src.input.Update()
	Sync(io, time.Millisecond, src)
	assert.True(t, io.super)

	src.input.SetKey(input.KeyLeftWindow, false)
	src.input.Update()
	Sync(io, time.Millisecond, src)
	assert.False(t, io.super)
	assert.False(t, io.keysDown[int(input.KeyLeftWindow)])
}

func TestSyncSkipsZeroDelta(t *testing.T) {
	io := newFakeIO()
	io.deltaTime = 0.5
	Sync(io, 0, &fakeSource{})

	assert.Equal(t, float32(0.5), io.deltaTime)
	assert.Equal(t, "", io.chars)
	assert.Equal(t, imgui.Vec2{}, io.wheel)
}

func TestWantsInput(t *testing.T) {
	io := newFakeIO()
	g := &Gui{io: io}

	keyboard, mouse := g.WantsInput()
	assert.False(t, keyboard)
	assert.False(t, mouse)

	io.captureMouse = true
	keyboard, mouse = g.WantsInput()
	assert.False(t, keyboard)
	assert.True(t, mouse)

	io.captureKeyboard = true
	keyboard, _ = g.WantsInput()
	assert.True(t, keyboard)
}

func TestRendererSkipsEmptyFramebuffer(t *testing.T) {
	fake := gltest.New()
	r := &OpenGL3Renderer{gl: fake}

	var data imgui.DrawData
	r.Render(imgui.Vec2{X: 100, Y: 100}, imgui.Vec2{}, data)
	assert.Empty(t, fake.Calls)
}

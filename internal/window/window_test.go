package window_test

import (
	"errors"
	"image"
	"sync"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dynamic-static/dstsys/internal/input"
	"github.com/dynamic-static/dstsys/internal/window"
	"github.com/dynamic-static/dstsys/internal/window/windowtest"
)

func newTestWindow(t *testing.T) (*window.Platform, *windowtest.Backend, *window.Window) {
	t.Helper()
	backend := &windowtest.Backend{}
	platform := window.NewPlatform(backend)
	w, err := platform.NewWindow(window.DefaultInfo())
	require.NoError(t, err)
	return platform, backend, w
}

const (
	glfwKeyA         = 65
	glfwKeyLeftShift = 340
	glfwMouseLeft    = 0
	glfwKeyWorld2    = 162
	glfwKeyUnknown   = -1
)

func TestDefaultInfo(t *testing.T) {
	info := window.DefaultInfo()
	assert.Equal(t, "Dynamic_Static", info.Name)
	assert.Equal(t, image.Pt(320, 180), info.Position)
	assert.Equal(t, image.Pt(1280, 720), info.Extent)
	assert.True(t, info.Flags.Has(window.Decorated))
	assert.True(t, info.Flags.Has(window.Visible))
	assert.True(t, info.Flags.Has(window.Resizable))
	assert.False(t, info.Flags.Has(window.Fullscreen))
	assert.Equal(t, "Decorated|Resizable|Visible", info.Flags.String())
	require.NotNil(t, info.GL)
	assert.Equal(t, window.GLVersion{Major: 4, Minor: 5}, info.GL.Version)
	assert.True(t, info.GL.Flags.Has(window.VSync))
	assert.Equal(t, 24, info.GL.DepthBits)
	assert.Equal(t, 8, info.GL.StencilBits)
}

func TestParseCursorMode(t *testing.T) {
	for _, mode := range []window.CursorMode{window.CursorVisible, window.CursorHidden, window.CursorDisabled} {
		got, err := window.ParseCursorMode(mode.String())
		require.NoError(t, err)
		assert.Equal(t, mode, got)
	}
	_, err := window.ParseCursorMode("sideways")
	assert.Error(t, err)
}

func TestKeyEventsAreDeferredUntilPoll(t *testing.T) {
	platform, backend, w := newTestWindow(t)
	events := backend.Natives[0].Events

	events.Key(glfwKeyA, window.Press)
	assert.True(t, w.Input().Keyboard.Up(input.KeyA))

	platform.PollEvents()
	assert.True(t, w.Input().Keyboard.Pressed(input.KeyA))

	backend.Queue(func() { events.Key(glfwKeyA, window.Repeat) })
	platform.PollEvents()
	assert.True(t, w.Input().Keyboard.Held(input.KeyA))

	backend.Queue(func() { events.Key(glfwKeyA, window.Release) })
	platform.PollEvents()
	assert.True(t, w.Input().Keyboard.Released(input.KeyA))
}

func TestUnmappedKeysAreDropped(t *testing.T) {
	platform, backend, w := newTestWindow(t)
	events := backend.Natives[0].Events

	backend.Queue(func() {
		events.Key(glfwKeyWorld2, window.Press)
		events.Key(glfwKeyUnknown, window.Press)
		events.Key(glfwKeyUnknown, window.Release)
	})
	platform.PollEvents()

	kb := &w.Input().Keyboard
	assert.True(t, kb.Up(input.KeyUnknown))
	assert.True(t, kb.Up(input.KeyAny))
}

func TestModifierRollup(t *testing.T) {
	platform, backend, w := newTestWindow(t)
	backend.Queue(func() { backend.Natives[0].Events.Key(glfwKeyLeftShift, window.Press) })
	platform.PollEvents()

	assert.True(t, w.Input().Keyboard.Down(input.KeyLeftShift))
	assert.True(t, w.Input().Keyboard.Down(input.KeyShift))
}

func TestMouseEvents(t *testing.T) {
	platform, backend, w := newTestWindow(t)
	events := backend.Natives[0].Events

	backend.Queue(func() {
		events.CursorMoved(10, 20)
		events.MouseButton(glfwMouseLeft, window.Press)
		events.Scrolled(0, 1)
		events.Scrolled(0, 2)
	})
	platform.PollEvents()

	mouse := &w.Input().Mouse
	assert.True(t, mouse.Pressed(input.ButtonLeft))
	assert.Equal(t, mgl32.Vec2{10, 20}, mouse.Position())
	assert.Equal(t, mgl32.Vec2{0, 3}, mouse.ScrollDelta())

	platform.PollEvents()
	assert.Equal(t, mgl32.Vec2{}, mouse.ScrollDelta())
	assert.True(t, mouse.Held(input.ButtonLeft))
}

func TestTextStreamClearedEachPoll(t *testing.T) {
	platform, backend, w := newTestWindow(t)
	events := backend.Natives[0].Events

	backend.Queue(func() {
		events.Char('h')
		events.Char('é')
	})
	platform.PollEvents()
	assert.Equal(t, "hé", w.TextStream())

	platform.PollEvents()
	assert.Equal(t, "", w.TextStream())
}

func TestFocusLossResetsInput(t *testing.T) {
	platform, backend, w := newTestWindow(t)
	events := backend.Natives[0].Events

	backend.Queue(func() { events.Key(glfwKeyA, window.Press) })
	platform.PollEvents()
	require.True(t, w.Input().Keyboard.Down(input.KeyA))

	// The release is lost with the focus.
	backend.Queue(func() { events.Focused(false) })
	platform.PollEvents()
	assert.True(t, w.Input().Keyboard.Up(input.KeyA))
	assert.False(t, w.Input().Keyboard.Released(input.KeyA))
}

func TestEvents(t *testing.T) {
	platform, backend, w := newTestWindow(t)
	events := backend.Natives[0].Events

	var sizes []image.Point
	unsubscribe := w.OnResize.Subscribe(func(p image.Point) { sizes = append(sizes, p) })
	var closing []*window.Window
	w.OnCloseRequested.Subscribe(func(w *window.Window) { closing = append(closing, w) })

	backend.Queue(func() { events.FramebufferResized(640, 480) })
	platform.PollEvents()
	unsubscribe()
	backend.Queue(func() {
		events.FramebufferResized(800, 600)
		events.CloseRequested()
	})
	platform.PollEvents()

	assert.Equal(t, []image.Point{image.Pt(640, 480)}, sizes)
	assert.Equal(t, []*window.Window{w}, closing)
	assert.True(t, w.CloseRequested())
	assert.Equal(t, 0, w.OnResize.Len())
}

func TestWindowOperations(t *testing.T) {
	_, backend, w := newTestWindow(t)
	native := backend.Natives[0]

	w.SetName("renamed")
	assert.Equal(t, "renamed", w.Name())
	assert.Equal(t, "renamed", native.Title)

	w.SetClipboard("copied")
	assert.Equal(t, "copied", w.Clipboard())

	w.SetCursorMode(window.CursorDisabled)
	assert.Equal(t, window.CursorDisabled, native.CursorMode)
	assert.Equal(t, window.CursorDisabled, w.Info().CursorMode)

	w.Focus()
	w.MakeContextCurrent()
	w.Swap()
	assert.True(t, native.Focused)
	assert.True(t, native.Current)
	assert.Equal(t, 1, native.Swaps)
	assert.Equal(t, image.Pt(1280, 720), w.Resolution())
}

func TestChildren(t *testing.T) {
	platform, backend, parent := newTestWindow(t)

	info := window.DefaultInfo()
	info.Name = "child"
	child, err := parent.CreateChild(info)
	require.NoError(t, err)

	assert.Same(t, parent, child.Parent())
	assert.Equal(t, []*window.Window{child}, parent.Children())
	assert.Same(t, backend.Natives[0], backend.Natives[1].Share)
	assert.Equal(t, 2, platform.Registry().Len())

	parent.Close()
	assert.True(t, child.Closed())
	assert.Equal(t, 1, backend.Natives[1].Destroyed)
	assert.Equal(t, 0, platform.Registry().Len())

	_, err = parent.CreateChild(info)
	assert.ErrorIs(t, err, window.ErrClosed)
}

func TestCloseChildDetachesFromParent(t *testing.T) {
	_, _, parent := newTestWindow(t)
	child, err := parent.CreateChild(window.DefaultInfo())
	require.NoError(t, err)

	child.Close()
	assert.Empty(t, parent.Children())
	assert.False(t, parent.Closed())
}

func TestCloseIsIdempotent(t *testing.T) {
	platform, backend, w := newTestWindow(t)

	w.Close()
	w.Close()
	w.Swap()
	w.SetName("ignored")

	assert.Equal(t, 1, backend.Natives[0].Destroyed)
	assert.Equal(t, 0, backend.Natives[0].Swaps)
	assert.Equal(t, "Dynamic_Static", backend.Natives[0].Title)
	assert.Equal(t, image.Point{}, w.Resolution())
	assert.Empty(t, platform.Windows())
}

func TestCloseFromCloseRequestIsDeferred(t *testing.T) {
	platform, backend, w := newTestWindow(t)
	native := backend.Natives[0]
	w.OnCloseRequested.Subscribe(func(w *window.Window) { w.Close() })

	destroyedDuringPoll := -1
	backend.Queue(native.Events.CloseRequested)
	backend.Queue(func() { destroyedDuringPoll = native.Destroyed })
	platform.PollEvents()

	assert.Equal(t, 0, destroyedDuringPoll)
	assert.Equal(t, 1, native.Destroyed)
	assert.True(t, w.Closed())
	assert.Empty(t, platform.Windows())

	platform.PollEvents()
	assert.Equal(t, 1, native.Destroyed)
}

func TestPlatformClose(t *testing.T) {
	platform, backend, _ := newTestWindow(t)
	_, err := platform.NewWindow(window.DefaultInfo())
	require.NoError(t, err)

	platform.Close()
	assert.True(t, backend.Terminated)
	for _, n := range backend.Natives {
		assert.Equal(t, 1, n.Destroyed)
	}

	_, err = platform.NewWindow(window.DefaultInfo())
	assert.ErrorIs(t, err, window.ErrClosed)
}

func TestCreateWindowFailure(t *testing.T) {
	backend := &windowtest.Backend{Fail: errors.New("no display")}
	platform := window.NewPlatform(backend)

	w, err := platform.NewWindow(window.DefaultInfo())
	assert.Nil(t, w)
	assert.ErrorContains(t, err, "no display")
	assert.Equal(t, 0, platform.Registry().Len())
}

func TestRegistryConcurrent(t *testing.T) {
	r := window.NewRegistry()
	windows := make([]*window.Window, 64)
	for i := range windows {
		windows[i] = &window.Window{}
	}

	var wg sync.WaitGroup
	for _, w := range windows {
		wg.Add(1)
		go func(w *window.Window) {
			defer wg.Done()
			r.Add(w)
			assert.True(t, r.Contains(w))
		}(w)
	}
	wg.Wait()
	assert.Equal(t, len(windows), r.Len())

	for _, w := range windows {
		wg.Add(1)
		go func(w *window.Window) {
			defer wg.Done()
			assert.True(t, r.Remove(w))
		}(w)
	}
	wg.Wait()
	assert.Equal(t, 0, r.Len())
	assert.False(t, r.Remove(windows[0]))
}

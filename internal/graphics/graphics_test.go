package graphics

import (
	"errors"
	"image"
	"image/color"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dynamic-static/dstsys/internal/gl/gltest"
	"github.com/dynamic-static/dstsys/internal/input"
	"github.com/dynamic-static/dstsys/internal/window"
	"github.com/dynamic-static/dstsys/internal/window/windowtest"
)

const glfwKeyEscape = 256

func newTestLoop(t *testing.T, extent image.Point) (*Loop, *windowtest.Backend, *gltest.Fake) {
	t.Helper()
	backend := &windowtest.Backend{}
	platform := window.NewPlatform(backend)
	t.Cleanup(platform.Close)

	info := window.DefaultInfo()
	info.Extent = extent
	w, err := platform.NewWindow(info)
	require.NoError(t, err)

	fake := gltest.New()
	return New(platform, w, fake), backend, fake
}

func TestColorToFloat32(t *testing.T) {
	assert.Equal(t, [4]float32{1, 1, 1, 1}, ColorToFloat32(ColorWhite))
	assert.Equal(t, [4]float32{0, 0, 0, 1}, ColorToFloat32(ColorBlack))
	assert.Equal(t, [4]float32{0, 0, 0, 0}, ColorToFloat32(color.Transparent))
}

func TestRunStopsOnErrStop(t *testing.T) {
	loop, backend, fake := newTestLoop(t, image.Pt(640, 480))
	loop.SetClearColor(ColorWhite)

	frames := 0
	err := loop.Run(func(f *Frame) error {
		frames++
		assert.Equal(t, image.Pt(640, 480), f.Size())
		if frames == 3 {
			return ErrStop
		}
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, 3, frames)
	assert.Equal(t, 3, backend.Polls)
	// The frame that stopped is not presented.
	assert.Equal(t, 2, backend.Natives[0].Swaps)
	assert.Equal(t, [4]float32{1, 1, 1, 1}, fake.ClearColorValue)
	assert.Equal(t, [4]int32{0, 0, 640, 480}, fake.ViewportValue)
}

func TestRunReturnsStepError(t *testing.T) {
	loop, _, _ := newTestLoop(t, image.Pt(1, 1))
	boom := errors.New("boom")

	err := loop.Run(func(*Frame) error { return boom })
	assert.ErrorIs(t, err, boom)
}

func TestRunEndsWhenCloseRequested(t *testing.T) {
	loop, backend, _ := newTestLoop(t, image.Pt(1, 1))
	events := backend.Natives[0].Events

	frames := 0
	err := loop.Run(func(f *Frame) error {
		frames++
		backend.Queue(events.CloseRequested)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, frames)
}

func TestFrameInputFollowsPolling(t *testing.T) {
	loop, backend, _ := newTestLoop(t, image.Pt(1, 1))
	events := backend.Natives[0].Events
	backend.Queue(func() { events.Key(glfwKeyEscape, window.Press) })

	var pressed bool
	err := loop.Run(func(f *Frame) error {
		pressed = f.Input().Keyboard.Pressed(input.KeyEscape)
		assert.Same(t, f.Window().Input(), f.Input())
		return ErrStop
	})
	require.NoError(t, err)
	assert.True(t, pressed)
}

func TestClearDisabled(t *testing.T) {
	loop, _, fake := newTestLoop(t, image.Pt(1, 1))
	loop.SetClear(false)

	require.NoError(t, loop.Run(func(*Frame) error { return ErrStop }))
	assert.False(t, fake.Called("Clear"))
}

func TestFrameDeltaAndLimit(t *testing.T) {
	loop, _, _ := newTestLoop(t, image.Pt(1, 1))

	clock := time.Unix(0, 0)
	loop.now = func() time.Time { return clock }
	var slept []time.Duration
	loop.sleep = func(d time.Duration) {
		slept = append(slept, d)
		clock = clock.Add(d)
	}
	loop.SetFrameLimit(50)

	var deltas []time.Duration
	err := loop.Run(func(f *Frame) error {
		deltas = append(deltas, f.Delta())
		clock = clock.Add(5 * time.Millisecond)
		if len(deltas) == 3 {
			return ErrStop
		}
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, []time.Duration{0, 20 * time.Millisecond, 20 * time.Millisecond}, deltas)
	assert.Equal(t, []time.Duration{15 * time.Millisecond, 15 * time.Millisecond}, slept)
}

func TestScreenshotFlipsRows(t *testing.T) {
	loop, _, fake := newTestLoop(t, image.Pt(1, 2))
	// Bottom row first, as OpenGL returns it.
	fake.Pixels = []byte{
		0, 0, 255, 255,
		255, 0, 0, 255,
	}

	var shot image.Image
	err := loop.Run(func(f *Frame) error {
		var err error
		shot, err = f.Screenshot()
		require.NoError(t, err)
		return ErrStop
	})
	require.NoError(t, err)

	assert.Equal(t, color.RGBA{R: 255, A: 255}, shot.At(0, 0))
	assert.Equal(t, color.RGBA{B: 255, A: 255}, shot.At(0, 1))
}

func TestScreenshotEmptyFramebuffer(t *testing.T) {
	loop, _, _ := newTestLoop(t, image.Point{})

	err := loop.Run(func(f *Frame) error {
		_, err := f.Screenshot()
		return err
	})
	assert.Error(t, err)
}

func TestRenderQuad(t *testing.T) {
	loop, _, fake := newTestLoop(t, image.Pt(64, 64))
	defer loop.Close()

	tex, err := loop.NewTexture(image.NewRGBA(image.Rect(0, 0, 2, 2)))
	require.NoError(t, err)
	defer tex.Close()

	err = loop.Run(func(f *Frame) error {
		f.RenderQuad(8, 8, 16, 16, tex, ColorWhite)
		f.RenderQuad(8, 8, 16, 16, tex, ColorYellow)
		return ErrStop
	})
	require.NoError(t, err)

	draws := 0
	for _, c := range fake.Calls {
		if c == "DrawArrays 0x5 0 4" {
			draws++
		}
	}
	assert.Equal(t, 2, draws)
	assert.Equal(t, 1, fake.LivePrograms())

	loop.Close()
	assert.Equal(t, 0, fake.LivePrograms())
}

func TestRenderQuadWithoutProgram(t *testing.T) {
	loop, _, fake := newTestLoop(t, image.Pt(64, 64))
	tex, err := loop.NewTexture(image.NewRGBA(image.Rect(0, 0, 1, 1)))
	require.NoError(t, err)
	fake.LinkFails = true

	err = loop.Run(func(f *Frame) error {
		f.RenderQuad(0, 0, 1, 1, tex, ColorWhite)
		f.RenderQuad(0, 0, 1, 1, tex, ColorWhite)
		return ErrStop
	})
	require.NoError(t, err)
	assert.False(t, fake.Called("DrawArrays"))

	links := 0
	for _, c := range fake.Calls {
		if strings.HasPrefix(c, "LinkProgram") {
			links++
		}
	}
	assert.Equal(t, 1, links, "a failed program is not rebuilt every frame")
}

// Package graphics runs the per-frame loop of a window: poll events, clear,
// draw, swap.
package graphics

import (
	"errors"
	"image"
	"image/color"
	"time"
	"unsafe"

	glpkg "github.com/dynamic-static/dstsys/internal/gl"
	"github.com/dynamic-static/dstsys/internal/input"
	"github.com/dynamic-static/dstsys/internal/logger"
	"github.com/dynamic-static/dstsys/internal/window"
)

// ErrStop can be returned from a step function to end Run without an error.
var ErrStop = errors.New("stop")

// ColorToFloat32 converts a color.Color to RGBA float32 values in the range [0, 1].
func ColorToFloat32(c color.Color) [4]float32 {
	r, g, b, a := c.RGBA()
	return [4]float32{
		float32(r) / 0xffff,
		float32(g) / 0xffff,
		float32(b) / 0xffff,
		float32(a) / 0xffff,
	}
}

var (
	ColorBlack  = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	ColorWhite  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	ColorSlate  = color.RGBA{R: 26, G: 31, B: 41, A: 255}
	ColorYellow = color.RGBA{R: 255, G: 255, B: 0, A: 255}
)

// Loop drives one window.
type Loop struct {
	platform *window.Platform
	window   *window.Window
	gl       glpkg.OpenGL

	clearEnabled bool
	clearColor   [4]float32
	frameLimit   time.Duration

	quads    *quadRenderer
	quadsErr error

	now   func() time.Time
	sleep func(time.Duration)
}

// New prepares w for drawing with gl. The context of w is made current.
func New(platform *window.Platform, w *window.Window, gl glpkg.OpenGL) *Loop {
	w.MakeContextCurrent()
	gl.Enable(glpkg.Blend)
	gl.BlendFunc(glpkg.SrcAlpha, glpkg.OneMinusSrcAlpha)

	return &Loop{
		platform:     platform,
		window:       w,
		gl:           gl,
		clearEnabled: true,
		clearColor:   ColorToFloat32(ColorBlack),
		now:          time.Now,
		sleep:        time.Sleep,
	}
}

// NewTexture uploads img with nearest filtering.
func (l *Loop) NewTexture(img image.Image) (*glpkg.Texture, error) {
	return glpkg.NewTexture(l.gl, img, glpkg.Nearest)
}

// Close releases the GL objects created by the loop. The window stays open.
func (l *Loop) Close() {
	if l.quads != nil {
		l.quads.close()
		l.quads = nil
	}
}

func (l *Loop) SetClear(enabled bool) {
	l.clearEnabled = enabled
}

func (l *Loop) SetClearColor(c color.Color) {
	l.clearColor = ColorToFloat32(c)
}

// SetFrameLimit caps the loop at fps frames per second. Zero removes the cap
// and leaves pacing to the swap interval.
func (l *Loop) SetFrameLimit(fps int) {
	if fps <= 0 {
		l.frameLimit = 0
		return
	}
	l.frameLimit = time.Second / time.Duration(fps)
}

// Run calls step once per frame until the window is asked to close or step
// returns an error. ErrStop ends the loop and is not returned.
func (l *Loop) Run(step func(f *Frame) error) error {
	frame := &Frame{loop: l}
	last := l.now()
	for !l.window.Closed() {
		l.platform.PollEvents()
		if l.window.CloseRequested() {
			logger.Debug("close requested", "window", l.window.Name())
			return nil
		}

		start := l.now()
		frame.delta = start.Sub(last)
		last = start
		frame.size = l.prepareFrame()

		if err := step(frame); err != nil {
			if errors.Is(err, ErrStop) {
				return nil
			}
			return err
		}

		l.window.Swap()
		if l.frameLimit > 0 {
			if elapsed := l.now().Sub(start); elapsed < l.frameLimit {
				l.sleep(l.frameLimit - elapsed)
			}
		}
	}
	return nil
}

func (l *Loop) prepareFrame() image.Point {
	l.window.MakeContextCurrent()
	size := l.window.Resolution()
	l.gl.Viewport(0, 0, int32(size.X), int32(size.Y))

	if l.clearEnabled {
		l.gl.ClearColor(l.clearColor[0], l.clearColor[1], l.clearColor[2], l.clearColor[3])
		l.gl.Clear(glpkg.ColorBufferBit | glpkg.DepthBufferBit)
	}
	return size
}

// Frame is the state handed to a step function.
type Frame struct {
	loop  *Loop
	delta time.Duration
	size  image.Point
}

func (f *Frame) Window() *window.Window {
	return f.loop.window
}

func (f *Frame) Input() *input.Input {
	return f.loop.window.Input()
}

// Size returns the framebuffer size in pixels.
func (f *Frame) Size() image.Point {
	return f.size
}

// Delta returns the time since the previous frame started.
func (f *Frame) Delta() time.Duration {
	return f.delta
}

// RenderQuad draws tex over the rectangle x, y, width, height, in pixels from
// the top left corner, multiplied by c. Nothing is drawn if the quad program
// could not be built.
func (f *Frame) RenderQuad(x, y, width, height float32, tex *glpkg.Texture, c color.Color) {
	l := f.loop
	if l.quads == nil && l.quadsErr == nil {
		l.quads, l.quadsErr = newQuadRenderer(l.gl)
		if l.quadsErr != nil {
			logger.Error("quad renderer unavailable", "err", l.quadsErr)
		}
	}
	if l.quads == nil || !tex.Valid() {
		return
	}
	l.quads.draw(f.size, x, y, width, height, tex, c)
}

// Screenshot reads back the framebuffer. Call it before the frame is swapped.
func (f *Frame) Screenshot() (image.Image, error) {
	bw, bh := f.size.X, f.size.Y
	if bw <= 0 || bh <= 0 {
		return nil, errors.New("screenshot: empty framebuffer")
	}
	gl := f.loop.gl
	rgba := image.NewRGBA(image.Rect(0, 0, bw, bh))
	gl.PixelStorei(glpkg.PackAlignment, 1)
	gl.ReadPixels(0, 0, int32(bw), int32(bh), glpkg.RGBA, glpkg.UnsignedByte, unsafe.Pointer(&rgba.Pix[0]))

	// Flip the image vertically
	flipped := image.NewRGBA(image.Rect(0, 0, bw, bh))
	for y := 0; y < bh; y++ {
		srcStart := y * rgba.Stride
		srcEnd := srcStart + rgba.Stride
		dstStart := (bh - 1 - y) * flipped.Stride
		dstEnd := dstStart + flipped.Stride
		copy(flipped.Pix[dstStart:dstEnd], rgba.Pix[srcStart:srcEnd])
	}

	return flipped, nil
}

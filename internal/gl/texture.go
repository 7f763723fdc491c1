package gl

import (
	"errors"
	"image"
	"image/draw"
	"unsafe"
)

// Texture owns a 2D OpenGL texture.
type Texture struct {
	gl     OpenGL
	handle uint32
	w, h   int
}

// NewTexture uploads img as an RGBA texture sampled with filter (Nearest or Linear).
func NewTexture(gl OpenGL, img image.Image, filter int32) (*Texture, error) {
	rgba, ok := img.(*image.RGBA)
	if !ok || rgba.Stride != 4*rgba.Rect.Dx() {
		rgba = image.NewRGBA(img.Bounds())
		draw.Draw(rgba, rgba.Bounds(), img, img.Bounds().Min, draw.Src)
	}

	var handle uint32
	gl.GenTextures(1, &handle)
	if handle == 0 {
		return nil, errors.New("create texture: glGenTextures returned 0")
	}
	gl.BindTexture(Texture2D, handle)
	gl.TexParameteri(Texture2D, TextureMinFilter, filter)
	gl.TexParameteri(Texture2D, TextureMagFilter, filter)
	gl.TexParameteri(Texture2D, TextureWrapS, ClampToEdge)
	gl.TexParameteri(Texture2D, TextureWrapT, ClampToEdge)
	gl.PixelStorei(UnpackAlignment, 1)

	var pixels unsafe.Pointer
	if len(rgba.Pix) > 0 {
		pixels = unsafe.Pointer(&rgba.Pix[0])
	}
	gl.TexImage2D(
		Texture2D,
		0,
		int32(RGBA),
		int32(rgba.Rect.Dx()),
		int32(rgba.Rect.Dy()),
		0,
		RGBA,
		UnsignedByte,
		pixels,
	)

	return &Texture{gl: gl, handle: handle, w: rgba.Rect.Dx(), h: rgba.Rect.Dy()}, nil
}

func (t *Texture) Handle() uint32 { return t.handle }

func (t *Texture) Size() (int, int) {
	return t.w, t.h
}

func (t *Texture) Valid() bool { return t != nil && t.handle != 0 }

// Bind binds the texture to Texture2D on the active texture unit.
func (t *Texture) Bind() {
	t.gl.BindTexture(Texture2D, t.handle)
}

// Close deletes the texture. It is safe to call more than once.
func (t *Texture) Close() {
	if t.Valid() {
		t.gl.DeleteTextures(1, &t.handle)
		t.handle = 0
	}
}

// Package gltest provides an in-memory OpenGL implementation for tests.
package gltest

import (
	"fmt"
	"strings"
	"unsafe"

	"github.com/dynamic-static/dstsys/internal/gl"
)

// Fake records calls and hands out object names. It does not render.
type Fake struct {
	// CompileFails and LinkFails make the next compile or link report failure.
	CompileFails bool
	LinkFails    bool
	// ShaderLog and ProgramLog are returned by the info log queries.
	ShaderLog  string
	ProgramLog string

	// Pixels is returned, row by row, by ReadPixels.
	Pixels []byte

	ClearColorValue [4]float32
	ViewportValue   [4]int32
	Uniforms        map[int32][]float32
	Calls           []string

	next     uint32
	shaders  map[uint32]int32
	programs map[uint32]int32
	textures map[uint32]bool
	Current  uint32
}

var _ gl.OpenGL = (*Fake)(nil)

func New() *Fake {
	return &Fake{
		Uniforms: make(map[int32][]float32),
		shaders:  make(map[uint32]int32),
		programs: make(map[uint32]int32),
		textures: make(map[uint32]bool),
	}
}

func (f *Fake) record(format string, args ...any) {
	f.Calls = append(f.Calls, fmt.Sprintf(format, args...))
}

func (f *Fake) gen() uint32 {
	f.next++
	return f.next
}

// Called reports whether a call whose description starts with prefix was recorded.
func (f *Fake) Called(prefix string) bool {
	for _, c := range f.Calls {
		if strings.HasPrefix(c, prefix) {
			return true
		}
	}
	return false
}

// LiveShaders, LivePrograms and LiveTextures count objects that were created
// and not yet deleted.
func (f *Fake) LiveShaders() int  { return len(f.shaders) }
func (f *Fake) LivePrograms() int { return len(f.programs) }
func (f *Fake) LiveTextures() int { return len(f.textures) }

func (f *Fake) ClearColor(r, g, b, a float32) {
	f.ClearColorValue = [4]float32{r, g, b, a}
	f.record("ClearColor")
}

func (f *Fake) Clear(mask uint32) { f.record("Clear %#x", mask) }

func (f *Fake) Viewport(x, y, width, height int32) {
	f.ViewportValue = [4]int32{x, y, width, height}
	f.record("Viewport %d %d %d %d", x, y, width, height)
}

func (f *Fake) Scissor(x, y, width, height int32) {
	f.record("Scissor %d %d %d %d", x, y, width, height)
}

func (f *Fake) Enable(cap uint32)                 { f.record("Enable %#x", cap) }
func (f *Fake) Disable(cap uint32)                { f.record("Disable %#x", cap) }
func (f *Fake) BlendEquation(mode uint32)         { f.record("BlendEquation %#x", mode) }
func (f *Fake) BlendFunc(sfactor, dfactor uint32) { f.record("BlendFunc") }
func (f *Fake) GetError() uint32                  { return gl.NoError }

func (f *Fake) GetString(name uint32) string {
	switch name {
	case gl.Vendor:
		return "gltest"
	case gl.Version:
		return "4.5 gltest"
	default:
		return ""
	}
}

func (f *Fake) ActiveTexture(texture uint32) { f.record("ActiveTexture %#x", texture) }

func (f *Fake) GenTextures(n int32, textures *uint32) {
	s := unsafe.Slice(textures, n)
	for i := range s {
		s[i] = f.gen()
		f.textures[s[i]] = true
	}
	f.record("GenTextures %d", n)
}

func (f *Fake) DeleteTextures(n int32, textures *uint32) {
	for _, t := range unsafe.Slice(textures, n) {
		delete(f.textures, t)
	}
	f.record("DeleteTextures %d", n)
}

func (f *Fake) BindTexture(target, texture uint32) { f.record("BindTexture %d", texture) }

func (f *Fake) TexImage2D(target uint32, level, internalFormat, width, height, border int32, format, xtype uint32, pixels unsafe.Pointer) {
	f.record("TexImage2D %dx%d", width, height)
}

func (f *Fake) TexParameteri(target, pname uint32, param int32) {
	f.record("TexParameteri %#x %#x", pname, param)
}

func (f *Fake) PixelStorei(pname uint32, param int32) { f.record("PixelStorei %#x %d", pname, param) }

func (f *Fake) ReadPixels(x, y, width, height int32, format, xtype uint32, pixels unsafe.Pointer) {
	n := int(width * height * 4)
	dst := unsafe.Slice((*byte)(pixels), n)
	copy(dst, f.Pixels)
	f.record("ReadPixels %d %d %d %d", x, y, width, height)
}

func (f *Fake) GenBuffers(n int32, buffers *uint32) {
	s := unsafe.Slice(buffers, n)
	for i := range s {
		s[i] = f.gen()
	}
	f.record("GenBuffers %d", n)
}

func (f *Fake) DeleteBuffers(n int32, buffers *uint32) { f.record("DeleteBuffers %d", n) }
func (f *Fake) BindBuffer(target, buffer uint32)       { f.record("BindBuffer %#x %d", target, buffer) }

func (f *Fake) BufferData(target uint32, size int, data unsafe.Pointer, usage uint32) {
	f.record("BufferData %#x %d", target, size)
}

func (f *Fake) GenVertexArrays(n int32, arrays *uint32) {
	s := unsafe.Slice(arrays, n)
	for i := range s {
		s[i] = f.gen()
	}
	f.record("GenVertexArrays %d", n)
}

func (f *Fake) DeleteVertexArrays(n int32, arrays *uint32) { f.record("DeleteVertexArrays %d", n) }
func (f *Fake) BindVertexArray(array uint32)               { f.record("BindVertexArray %d", array) }

func (f *Fake) VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset uintptr) {
	f.record("VertexAttribPointer %d %d", index, size)
}

func (f *Fake) EnableVertexAttribArray(index uint32) { f.record("EnableVertexAttribArray %d", index) }

func (f *Fake) DrawArrays(mode uint32, first, count int32) {
	f.record("DrawArrays %#x %d %d", mode, first, count)
}

func (f *Fake) DrawElements(mode uint32, count int32, xtype uint32, offset uintptr) {
	f.record("DrawElements %#x %d %d", mode, count, offset)
}

func (f *Fake) CreateShader(xtype uint32) uint32 {
	h := f.gen()
	f.shaders[h] = gl.False
	f.record("CreateShader %#x", xtype)
	return h
}

func (f *Fake) ShaderSource(shader uint32, source string) { f.record("ShaderSource %d", shader) }

func (f *Fake) CompileShader(shader uint32) {
	if f.CompileFails {
		f.shaders[shader] = gl.False
	} else {
		f.shaders[shader] = gl.True
	}
	f.record("CompileShader %d", shader)
}

func (f *Fake) GetShaderiv(shader, pname uint32, params *int32) {
	switch pname {
	case gl.CompileStatus:
		*params = f.shaders[shader]
	case gl.InfoLogLength:
		*params = int32(len(f.ShaderLog))
	}
}

func (f *Fake) GetShaderInfoLog(shader uint32) string { return f.ShaderLog }

func (f *Fake) DeleteShader(shader uint32) {
	delete(f.shaders, shader)
	f.record("DeleteShader %d", shader)
}

func (f *Fake) CreateProgram() uint32 {
	h := f.gen()
	f.programs[h] = gl.False
	f.record("CreateProgram")
	return h
}

func (f *Fake) AttachShader(program, shader uint32) { f.record("AttachShader %d %d", program, shader) }
func (f *Fake) DetachShader(program, shader uint32) { f.record("DetachShader %d %d", program, shader) }

func (f *Fake) LinkProgram(program uint32) {
	if f.LinkFails {
		f.programs[program] = gl.False
	} else {
		f.programs[program] = gl.True
	}
	f.record("LinkProgram %d", program)
}

func (f *Fake) GetProgramiv(program, pname uint32, params *int32) {
	switch pname {
	case gl.LinkStatus:
		*params = f.programs[program]
	case gl.InfoLogLength:
		*params = int32(len(f.ProgramLog))
	}
}

func (f *Fake) GetProgramInfoLog(program uint32) string { return f.ProgramLog }

func (f *Fake) UseProgram(program uint32) {
	f.Current = program
	f.record("UseProgram %d", program)
}

func (f *Fake) DeleteProgram(program uint32) {
	delete(f.programs, program)
	f.record("DeleteProgram %d", program)
}

// GetUniformLocation hands out a stable location per name, starting at 0.
// Names beginning with "missing" report -1.
func (f *Fake) GetUniformLocation(program uint32, name string) int32 {
	f.record("GetUniformLocation %s", name)
	if strings.HasPrefix(name, "missing") {
		return -1
	}
	var h int32
	for _, c := range name {
		h = h*31 + c
	}
	if h < 0 {
		h = -h
	}
	return h % 1024
}

func (f *Fake) GetAttribLocation(program uint32, name string) int32 {
	switch name {
	case "Position":
		return 0
	case "UV":
		return 1
	case "Color":
		return 2
	}
	return -1
}

func (f *Fake) Uniform1i(location, v0 int32) {
	f.Uniforms[location] = []float32{float32(v0)}
}

func (f *Fake) Uniform1f(location int32, v0 float32) {
	f.Uniforms[location] = []float32{v0}
}

func (f *Fake) Uniform3f(location int32, v0, v1, v2 float32) {
	f.Uniforms[location] = []float32{v0, v1, v2}
}

func (f *Fake) Uniform4f(location int32, v0, v1, v2, v3 float32) {
	f.Uniforms[location] = []float32{v0, v1, v2, v3}
}

func (f *Fake) UniformMatrix4fv(location, count int32, transpose bool, value *float32) {
	f.Uniforms[location] = append([]float32(nil), unsafe.Slice(value, 16*count)...)
}

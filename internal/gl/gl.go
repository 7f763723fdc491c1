// Package gl binds the subset of OpenGL used by this module and wraps GL
// objects (shaders, programs, textures) in handle-owning types.
package gl

import (
	"errors"
	"unsafe"
)

const (
	// NoError is returned by GetError when no error flag is set.
	NoError = 0
	// False is the GL boolean false, as reported by GetShaderiv and GetProgramiv.
	False = 0
	// True is the GL boolean true.
	True = 1

	// DepthBufferBit is a mask used with Clear to clear the depth buffer.
	DepthBufferBit = 0x00000100
	// ColorBufferBit is a mask used with Clear to clear the color buffer.
	ColorBufferBit = 0x00004000

	// Blend enables blending of fragment colors with the framebuffer.
	Blend = 0x0BE2
	// CullFace enables face culling.
	CullFace = 0x0B44
	// DepthTest enables depth comparisons.
	DepthTest = 0x0B71
	// ScissorTest discards fragments outside the Scissor rectangle.
	ScissorTest = 0x0C11

	// FuncAdd is the blend equation adding source and destination.
	FuncAdd = 0x8006
	// SrcAlpha is a blend factor taken from the source alpha.
	SrcAlpha = 0x0302
	// OneMinusSrcAlpha is a blend factor of one minus the source alpha.
	OneMinusSrcAlpha = 0x0303

	// Triangles is a primitive type drawing independent triangles.
	Triangles = 0x0004
	// TriangleStrip is a primitive type for drawing a connected strip of triangles.
	TriangleStrip = 0x0005

	// UnsignedByte is a data type indicating 8-bit unsigned values.
	UnsignedByte = 0x1401
	// UnsignedShort is a data type indicating 16-bit unsigned values.
	UnsignedShort = 0x1403
	// UnsignedInt is a data type indicating 32-bit unsigned values.
	UnsignedInt = 0x1405
	// Float is a data type indicating 32-bit floats.
	Float = 0x1406

	// Texture2D is the texture target for 2D textures.
	Texture2D = 0x0DE1
	// Texture0 is the first texture unit, selected with ActiveTexture.
	Texture0 = 0x84C0
	// TextureMagFilter selects the texture magnification filter.
	TextureMagFilter = 0x2800
	// TextureMinFilter selects the texture minification filter.
	TextureMinFilter = 0x2801
	// TextureWrapS selects the wrapping function for texture coordinate S.
	TextureWrapS = 0x2802
	// TextureWrapT selects the wrapping function for texture coordinate T.
	TextureWrapT = 0x2803
	// Nearest selects nearest-neighbor filtering.
	Nearest = 0x2600
	// Linear selects linear filtering.
	Linear = 0x2601
	// ClampToEdge clamps texture coordinates to the edge of the texture.
	ClampToEdge = 0x812F
	// UnpackRowLength sets the row length of uploaded pixel data (PixelStorei).
	UnpackRowLength = 0x0CF2
	// UnpackAlignment specifies the alignment requirements for pixel data
	// when uploading textures (PixelStorei).
	UnpackAlignment = 0x0CF5
	// PackAlignment specifies the row alignment used by ReadPixels.
	PackAlignment = 0x0D05
	// RGBA is a pixel format representing red/green/blue/alpha.
	RGBA = 0x1908

	// ArrayBuffer is the buffer target for vertex attributes.
	ArrayBuffer = 0x8892
	// ElementArrayBuffer is the buffer target for vertex indices.
	ElementArrayBuffer = 0x8893
	// StreamDraw hints that buffer data is written once per draw.
	StreamDraw = 0x88E0
	// StaticDraw hints that buffer data is written once and drawn many times.
	StaticDraw = 0x88E4

	// FragmentShader is the shader type for the fragment stage.
	FragmentShader = 0x8B30
	// VertexShader is the shader type for the vertex stage.
	VertexShader = 0x8B31
	// GeometryShader is the shader type for the geometry stage.
	GeometryShader = 0x8DD9
	// CompileStatus queries whether a shader compiled (GetShaderiv).
	CompileStatus = 0x8B81
	// LinkStatus queries whether a program linked (GetProgramiv).
	LinkStatus = 0x8B82
	// InfoLogLength queries the length of a shader or program info log.
	InfoLogLength = 0x8B84

	// GetString parameters.
	//
	// Vendor returns the company responsible for the GL implementation.
	Vendor = 0x1F00
	// Renderer returns the name of the renderer, usually the GPU.
	Renderer = 0x1F01
	// Version returns the GL version string of the current context.
	Version = 0x1F02
	// ShadingLanguageVersion returns the supported GLSL version.
	ShadingLanguageVersion = 0x8B8C
)

// ErrMissingEntryPoint is returned by Load when the driver does not export a
// function this package needs.
var ErrMissingEntryPoint = errors.New("missing OpenGL entry point")

// OpenGL describes the OpenGL entry points used by this module.
//
// Implementations wrap the driver functions resolved by Load. All methods
// operate on the context that is current on the calling thread.
type OpenGL interface {
	// ClearColor sets the clear color used by Clear when clearing the color buffer.
	ClearColor(r, g, b, a float32)

	// Clear clears buffers to preset values (e.g., ColorBufferBit).
	Clear(mask uint32)

	// Viewport sets the mapping from normalized device coordinates to window pixels.
	Viewport(x, y, width, height int32)

	// Scissor sets the rectangle used when ScissorTest is enabled.
	Scissor(x, y, width, height int32)

	// Enable turns on a capability such as Blend or ScissorTest.
	Enable(cap uint32)

	// Disable turns off a capability.
	Disable(cap uint32)

	// BlendEquation sets how source and destination colors are combined.
	BlendEquation(mode uint32)

	// BlendFunc sets the source and destination blend factors.
	BlendFunc(sfactor, dfactor uint32)

	// GetError returns and clears the oldest recorded error flag.
	GetError() uint32

	// GetString returns a string describing the current context, such as
	// Vendor or Version. It returns "" when no context is current.
	GetString(name uint32) string

	// ActiveTexture selects the texture unit affected by BindTexture.
	ActiveTexture(texture uint32)

	// GenTextures generates n texture names.
	GenTextures(n int32, textures *uint32)

	// DeleteTextures deletes n textures.
	DeleteTextures(n int32, textures *uint32)

	// BindTexture binds a texture name to a target (e.g., Texture2D).
	BindTexture(target, texture uint32)

	// TexImage2D specifies a two-dimensional texture image. pixels may be nil
	// to allocate storage without uploading data.
	TexImage2D(target uint32, level, internalFormat, width, height, border int32, format, xtype uint32, pixels unsafe.Pointer)

	// TexParameteri sets an integer texture parameter.
	TexParameteri(target, pname uint32, param int32)

	// PixelStorei sets pixel storage modes for uploads and reads.
	PixelStorei(pname uint32, param int32)

	// ReadPixels reads a block of pixels from the framebuffer, bottom row first.
	ReadPixels(x, y, width, height int32, format, xtype uint32, pixels unsafe.Pointer)

	// GenBuffers generates n buffer names.
	GenBuffers(n int32, buffers *uint32)

	// DeleteBuffers deletes n buffers.
	DeleteBuffers(n int32, buffers *uint32)

	// BindBuffer binds a buffer name to a target (e.g., ArrayBuffer).
	BindBuffer(target, buffer uint32)

	// BufferData creates and fills the data store of the bound buffer.
	BufferData(target uint32, size int, data unsafe.Pointer, usage uint32)

	// GenVertexArrays generates n vertex array names.
	GenVertexArrays(n int32, arrays *uint32)

	// DeleteVertexArrays deletes n vertex arrays.
	DeleteVertexArrays(n int32, arrays *uint32)

	// BindVertexArray binds a vertex array; 0 unbinds.
	BindVertexArray(array uint32)

	// VertexAttribPointer describes attribute index within the bound
	// ArrayBuffer. offset is in bytes.
	VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset uintptr)

	// EnableVertexAttribArray enables the vertex attribute at index.
	EnableVertexAttribArray(index uint32)

	// DrawArrays renders count vertices starting at first.
	DrawArrays(mode uint32, first, count int32)

	// DrawElements renders count indices from the bound ElementArrayBuffer
	// starting at the byte offset.
	DrawElements(mode uint32, count int32, xtype uint32, offset uintptr)

	// CreateShader creates an empty shader object of the given type.
	CreateShader(xtype uint32) uint32

	// ShaderSource replaces the source code of a shader.
	ShaderSource(shader uint32, source string)

	// CompileShader compiles the source of a shader.
	CompileShader(shader uint32)

	// GetShaderiv queries a shader parameter such as CompileStatus.
	GetShaderiv(shader, pname uint32, params *int32)

	// GetShaderInfoLog returns the compiler output of a shader.
	GetShaderInfoLog(shader uint32) string

	// DeleteShader deletes a shader object.
	DeleteShader(shader uint32)

	// CreateProgram creates an empty program object.
	CreateProgram() uint32

	// AttachShader attaches a shader to a program.
	AttachShader(program, shader uint32)

	// DetachShader detaches a shader from a program.
	DetachShader(program, shader uint32)

	// LinkProgram links the attached shaders of a program.
	LinkProgram(program uint32)

	// GetProgramiv queries a program parameter such as LinkStatus.
	GetProgramiv(program, pname uint32, params *int32)

	// GetProgramInfoLog returns the linker output of a program.
	GetProgramInfoLog(program uint32) string

	// UseProgram installs a program for rendering; 0 uninstalls.
	UseProgram(program uint32)

	// DeleteProgram deletes a program object.
	DeleteProgram(program uint32)

	// GetUniformLocation returns the location of a uniform, or -1.
	GetUniformLocation(program uint32, name string) int32

	// GetAttribLocation returns the location of a vertex attribute, or -1.
	GetAttribLocation(program uint32, name string) int32

	// Uniform1i sets an int or sampler uniform of the current program.
	Uniform1i(location, v0 int32)

	// Uniform1f sets a float uniform of the current program.
	Uniform1f(location int32, v0 float32)

	// Uniform3f sets a vec3 uniform of the current program.
	Uniform3f(location int32, v0, v1, v2 float32)

	// Uniform4f sets a vec4 uniform of the current program.
	Uniform4f(location int32, v0, v1, v2, v3 float32)

	// UniformMatrix4fv sets count mat4 uniforms from column-major data.
	UniformMatrix4fv(location, count int32, transpose bool, value *float32)
}

func gostring(ptr *byte) string {
	if ptr == nil {
		return ""
	}
	var bytes []byte
	for p := ptr; *p != 0; p = (*byte)(unsafe.Add(unsafe.Pointer(p), 1)) {
		bytes = append(bytes, *p)
	}
	return string(bytes)
}

func cstring(s string) *byte {
	b := append([]byte(s), 0)
	return &b[0]
}

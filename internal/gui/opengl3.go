package gui

import (
	"image"
	"unsafe"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/inkyblackness/imgui-go/v4"

	"github.com/dynamic-static/dstsys/internal/gl"
)

const vertexShader = `#version 150
uniform mat4 ProjMtx;
in vec2 Position;
in vec2 UV;
in vec4 Color;
out vec2 Frag_UV;
out vec4 Frag_Color;
void main()
{
	Frag_UV = UV;
	Frag_Color = Color;
	gl_Position = ProjMtx * vec4(Position.xy, 0, 1);
}
`

const fragmentShader = `#version 150
uniform sampler2D Texture;
in vec2 Frag_UV;
in vec4 Frag_Color;
out vec4 Out_Color;
void main()
{
	Out_Color = Frag_Color * texture(Texture, Frag_UV.st);
}
`

// OpenGL3Renderer draws ImGui draw data with an OpenGL 3.2+ core context.
type OpenGL3Renderer struct {
	gl      gl.OpenGL
	program *gl.Program
	fonts   *gl.Texture

	attribPosition int32
	attribUV       int32
	attribColor    int32

	vbo uint32
	ebo uint32
}

var _ Renderer = (*OpenGL3Renderer)(nil)

// NewOpenGL3Renderer compiles the GUI program and uploads the font atlas.
// The OpenGL context must be current.
func NewOpenGL3Renderer(g gl.OpenGL, fonts imgui.FontAtlas) (*OpenGL3Renderer, error) {
	program, err := gl.NewProgramFromSource(g, vertexShader, fragmentShader)
	if err != nil {
		return nil, err
	}

	atlas := fonts.TextureDataRGBA32()
	img := &image.RGBA{
		Pix:    unsafe.Slice((*byte)(atlas.Pixels), atlas.Width*atlas.Height*4),
		Stride: atlas.Width * 4,
		Rect:   image.Rect(0, 0, atlas.Width, atlas.Height),
	}
	tex, err := gl.NewTexture(g, img, gl.Linear)
	if err != nil {
		program.Close()
		return nil, err
	}
	fonts.SetTextureID(imgui.TextureID(tex.Handle()))

	r := &OpenGL3Renderer{
		gl:             g,
		program:        program,
		fonts:          tex,
		attribPosition: program.AttribLocation("Position"),
		attribUV:       program.AttribLocation("UV"),
		attribColor:    program.AttribLocation("Color"),
	}
	g.GenBuffers(1, &r.vbo)
	g.GenBuffers(1, &r.ebo)
	return r, nil
}

// Render draws drawData. displaySize is in window coordinates and
// framebufferSize in pixels.
func (r *OpenGL3Renderer) Render(displaySize, framebufferSize imgui.Vec2, drawData imgui.DrawData) {
	if framebufferSize.X <= 0 || framebufferSize.Y <= 0 || displaySize.X <= 0 || displaySize.Y <= 0 {
		return
	}
	drawData.ScaleClipRects(imgui.Vec2{
		X: framebufferSize.X / displaySize.X,
		Y: framebufferSize.Y / displaySize.Y,
	})

	g := r.gl
	g.Enable(gl.Blend)
	g.BlendEquation(gl.FuncAdd)
	g.BlendFunc(gl.SrcAlpha, gl.OneMinusSrcAlpha)
	g.Disable(gl.CullFace)
	g.Disable(gl.DepthTest)
	g.Enable(gl.ScissorTest)
	g.Viewport(0, 0, int32(framebufferSize.X), int32(framebufferSize.Y))

	r.program.Bind()
	r.program.SetInt("Texture", 0)
	r.program.SetMat4("ProjMtx", mgl32.Ortho(0, displaySize.X, displaySize.Y, 0, -1, 1))
	g.ActiveTexture(gl.Texture0)

	var vao uint32
	g.GenVertexArrays(1, &vao)
	g.BindVertexArray(vao)
	g.BindBuffer(gl.ArrayBuffer, r.vbo)
	g.BindBuffer(gl.ElementArrayBuffer, r.ebo)

	vertexSize, vertexOffsetPos, vertexOffsetUV, vertexOffsetColor := imgui.VertexBufferLayout()
	g.EnableVertexAttribArray(uint32(r.attribPosition))
	g.EnableVertexAttribArray(uint32(r.attribUV))
	g.EnableVertexAttribArray(uint32(r.attribColor))
	g.VertexAttribPointer(uint32(r.attribPosition), 2, gl.Float, false, int32(vertexSize), uintptr(vertexOffsetPos))
	g.VertexAttribPointer(uint32(r.attribUV), 2, gl.Float, false, int32(vertexSize), uintptr(vertexOffsetUV))
	g.VertexAttribPointer(uint32(r.attribColor), 4, gl.UnsignedByte, true, int32(vertexSize), uintptr(vertexOffsetColor))

	indexSize := imgui.IndexBufferLayout()
	var indexType uint32 = gl.UnsignedShort
	if indexSize == 4 {
		indexType = gl.UnsignedInt
	}

	for _, list := range drawData.CommandLists() {
		vertexBuffer, vertexBufferSize := list.VertexBuffer()
		g.BufferData(gl.ArrayBuffer, vertexBufferSize, vertexBuffer, gl.StreamDraw)
		indexBuffer, indexBufferSize := list.IndexBuffer()
		g.BufferData(gl.ElementArrayBuffer, indexBufferSize, indexBuffer, gl.StreamDraw)

		var offset uintptr
		for _, cmd := range list.Commands() {
			if cmd.HasUserCallback() {
				cmd.CallUserCallback(list)
			} else {
				clip := cmd.ClipRect()
				g.BindTexture(gl.Texture2D, uint32(cmd.TextureID()))
				g.Scissor(
					int32(clip.X),
					int32(framebufferSize.Y)-int32(clip.W),
					int32(clip.Z-clip.X),
					int32(clip.W-clip.Y),
				)
				g.DrawElements(gl.Triangles, int32(cmd.ElementCount()), indexType, offset)
			}
			offset += uintptr(cmd.ElementCount() * indexSize)
		}
	}

	g.DeleteVertexArrays(1, &vao)
	g.BindVertexArray(0)
	r.program.Unbind()
	g.Disable(gl.ScissorTest)
}

// Close releases the program, font texture and buffers. It is safe to call
// more than once.
func (r *OpenGL3Renderer) Close() {
	if r.vbo != 0 {
		r.gl.DeleteBuffers(1, &r.vbo)
		r.vbo = 0
	}
	if r.ebo != 0 {
		r.gl.DeleteBuffers(1, &r.ebo)
		r.ebo = 0
	}
	r.fonts.Close()
	r.program.Close()
}

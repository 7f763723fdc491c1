package graphics

import (
	"image"
	"image/color"
	"unsafe"

	"github.com/go-gl/mathgl/mgl32"

	glpkg "github.com/dynamic-static/dstsys/internal/gl"
)

const quadVertexShader = `#version 150
uniform mat4 Projection;
uniform vec4 Rect;
in vec2 Position;
out vec2 Frag_UV;
void main()
{
	Frag_UV = Position;
	gl_Position = Projection * vec4(Rect.xy + Position * Rect.zw, 0, 1);
}
`

const quadFragmentShader = `#version 150
uniform sampler2D Texture;
uniform vec4 Tint;
in vec2 Frag_UV;
out vec4 Out_Color;
void main()
{
	Out_Color = Tint * texture(Texture, Frag_UV);
}
`

// Unit square as a triangle strip.
var quadCorners = [8]float32{
	0, 0,
	1, 0,
	0, 1,
	1, 1,
}

type quadRenderer struct {
	gl      glpkg.OpenGL
	program *glpkg.Program
	vao     uint32
	vbo     uint32
}

func newQuadRenderer(gl glpkg.OpenGL) (*quadRenderer, error) {
	program, err := glpkg.NewProgramFromSource(gl, quadVertexShader, quadFragmentShader)
	if err != nil {
		return nil, err
	}
	q := &quadRenderer{gl: gl, program: program}

	gl.GenVertexArrays(1, &q.vao)
	gl.BindVertexArray(q.vao)
	gl.GenBuffers(1, &q.vbo)
	gl.BindBuffer(glpkg.ArrayBuffer, q.vbo)
	gl.BufferData(glpkg.ArrayBuffer, len(quadCorners)*4, unsafe.Pointer(&quadCorners[0]), glpkg.StaticDraw)

	pos := uint32(program.AttribLocation("Position"))
	gl.EnableVertexAttribArray(pos)
	gl.VertexAttribPointer(pos, 2, glpkg.Float, false, 2*4, 0)
	gl.BindVertexArray(0)
	return q, nil
}

// draw renders tex stretched over the rectangle x, y, w, h in pixels with the
// origin at the top left of a framebuffer of the given size.
func (q *quadRenderer) draw(size image.Point, x, y, w, h float32, tex *glpkg.Texture, tint color.Color) {
	q.program.Bind()
	q.program.SetMat4("Projection", mgl32.Ortho2D(0, float32(size.X), float32(size.Y), 0))
	q.program.SetVec4("Rect", mgl32.Vec4{x, y, w, h})
	q.program.SetVec4("Tint", mgl32.Vec4(ColorToFloat32(tint)))
	q.program.SetInt("Texture", 0)

	q.gl.ActiveTexture(glpkg.Texture0)
	tex.Bind()
	q.gl.BindVertexArray(q.vao)
	q.gl.DrawArrays(glpkg.TriangleStrip, 0, 4)
	q.gl.BindVertexArray(0)
	q.program.Unbind()
}

func (q *quadRenderer) close() {
	q.gl.DeleteVertexArrays(1, &q.vao)
	q.gl.DeleteBuffers(1, &q.vbo)
	q.program.Close()
}

package gl

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/dynamic-static/dstsys/internal/logger"
)

// LinkError carries the driver's info log for a program that failed to link.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return "link program: " + strings.TrimSpace(e.Log)
}

// Program owns an OpenGL program object.
type Program struct {
	gl       OpenGL
	handle   uint32
	uniforms map[string]int32
}

// NewProgram links shaders into a program. On failure the program object is
// deleted and the info log is logged and returned in a *LinkError.
func NewProgram(gl OpenGL, shaders ...*Shader) (*Program, error) {
	handle := gl.CreateProgram()
	if handle == 0 {
		return nil, errors.New("create program: glCreateProgram returned 0")
	}
	for _, s := range shaders {
		gl.AttachShader(handle, s.Handle())
	}
	gl.LinkProgram(handle)

	var status int32
	gl.GetProgramiv(handle, LinkStatus, &status)
	if status != True {
		err := &LinkError{Log: gl.GetProgramInfoLog(handle)}
		logger.Error("failed to link program", "log", strings.TrimSpace(err.Log))
		gl.DeleteProgram(handle)
		return nil, err
	}
	for _, s := range shaders {
		gl.DetachShader(handle, s.Handle())
	}
	return &Program{gl: gl, handle: handle, uniforms: make(map[string]int32)}, nil
}

// NewProgramFromSource compiles a vertex and a fragment shader and links
// them. The intermediate shader objects are released before returning.
func NewProgramFromSource(gl OpenGL, vertex, fragment string) (*Program, error) {
	vs, err := NewShader(gl, VertexStage, vertex)
	if err != nil {
		return nil, err
	}
	defer vs.Close()

	fs, err := NewShader(gl, FragmentStage, fragment)
	if err != nil {
		return nil, err
	}
	defer fs.Close()

	p, err := NewProgram(gl, vs, fs)
	if err != nil {
		return nil, fmt.Errorf("program from source: %w", err)
	}
	return p, nil
}

func (p *Program) Handle() uint32 { return p.handle }

// Valid reports whether p still owns a program object.
func (p *Program) Valid() bool { return p != nil && p.handle != 0 }

// InfoLog returns the linker output for this program.
func (p *Program) InfoLog() string {
	if !p.Valid() {
		return ""
	}
	return p.gl.GetProgramInfoLog(p.handle)
}

// UniformLocation returns the location of a uniform, or -1 if the program
// has no active uniform with that name. Results are cached.
func (p *Program) UniformLocation(name string) int32 {
	if loc, ok := p.uniforms[name]; ok {
		return loc
	}
	loc := p.gl.GetUniformLocation(p.handle, name)
	p.uniforms[name] = loc
	return loc
}

// AttribLocation returns the location of a vertex attribute, or -1.
func (p *Program) AttribLocation(name string) int32 {
	return p.gl.GetAttribLocation(p.handle, name)
}

func (p *Program) Bind() {
	p.gl.UseProgram(p.handle)
}

// Unbind clears the current program, whichever it is.
func (p *Program) Unbind() {
	p.gl.UseProgram(0)
}

// The setters below expect the program to be bound.

func (p *Program) SetInt(name string, v int32) {
	p.gl.Uniform1i(p.UniformLocation(name), v)
}

func (p *Program) SetFloat(name string, v float32) {
	p.gl.Uniform1f(p.UniformLocation(name), v)
}

func (p *Program) SetVec3(name string, v mgl32.Vec3) {
	p.gl.Uniform3f(p.UniformLocation(name), v[0], v[1], v[2])
}

func (p *Program) SetVec4(name string, v mgl32.Vec4) {
	p.gl.Uniform4f(p.UniformLocation(name), v[0], v[1], v[2], v[3])
}

func (p *Program) SetMat4(name string, m mgl32.Mat4) {
	p.gl.UniformMatrix4fv(p.UniformLocation(name), 1, false, &m[0])
}

// Close deletes the program object. It is safe to call more than once.
func (p *Program) Close() {
	if p.Valid() {
		p.gl.DeleteProgram(p.handle)
		p.handle = 0
		p.uniforms = make(map[string]int32)
	}
}

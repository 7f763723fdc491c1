package gl

import (
	"fmt"
	"strings"

	"github.com/dynamic-static/dstsys/internal/logger"
)

// ShaderStage selects the pipeline stage a Shader is compiled for.
type ShaderStage uint32

const (
	VertexStage   ShaderStage = VertexShader
	FragmentStage ShaderStage = FragmentShader
	GeometryStage ShaderStage = GeometryShader
)

func (s ShaderStage) String() string {
	switch s {
	case VertexStage:
		return "vertex"
	case FragmentStage:
		return "fragment"
	case GeometryStage:
		return "geometry"
	default:
		return fmt.Sprintf("ShaderStage(%#x)", uint32(s))
	}
}

// CompileError carries the driver's info log for a shader that failed to compile.
type CompileError struct {
	Stage ShaderStage
	Log   string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("compile %s shader: %s", e.Stage, strings.TrimSpace(e.Log))
}

// Shader owns an OpenGL shader object.
type Shader struct {
	gl     OpenGL
	stage  ShaderStage
	handle uint32
}

// NewShader compiles source for stage. On failure the shader object is
// deleted and the info log is logged and returned in a *CompileError.
func NewShader(gl OpenGL, stage ShaderStage, source string) (*Shader, error) {
	handle := gl.CreateShader(uint32(stage))
	if handle == 0 {
		return nil, fmt.Errorf("create %s shader: glCreateShader returned 0", stage)
	}
	gl.ShaderSource(handle, source)
	gl.CompileShader(handle)

	var status int32
	gl.GetShaderiv(handle, CompileStatus, &status)
	if status != True {
		err := &CompileError{Stage: stage, Log: gl.GetShaderInfoLog(handle)}
		logger.Error("failed to compile shader", "stage", stage, "log", strings.TrimSpace(err.Log))
		gl.DeleteShader(handle)
		return nil, err
	}
	return &Shader{gl: gl, stage: stage, handle: handle}, nil
}

func (s *Shader) Handle() uint32     { return s.handle }
func (s *Shader) Stage() ShaderStage { return s.stage }

// Valid reports whether s still owns a shader object.
func (s *Shader) Valid() bool { return s != nil && s.handle != 0 }

// InfoLog returns the compiler output for this shader.
func (s *Shader) InfoLog() string {
	if !s.Valid() {
		return ""
	}
	return s.gl.GetShaderInfoLog(s.handle)
}

// Close deletes the shader object. It is safe to call more than once.
func (s *Shader) Close() {
	if s.Valid() {
		s.gl.DeleteShader(s.handle)
		s.handle = 0
	}
}

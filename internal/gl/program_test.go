package gl_test

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dynamic-static/dstsys/internal/gl"
	"github.com/dynamic-static/dstsys/internal/gl/gltest"
)

const vertexSource = `#version 150
in vec2 Position;
void main() { gl_Position = vec4(Position, 0.0, 1.0); }
`

const fragmentSource = `#version 150
out vec4 Out_Color;
void main() { Out_Color = vec4(1.0); }
`

func TestShaderCompiles(t *testing.T) {
	fake := gltest.New()

	s, err := gl.NewShader(fake, gl.VertexStage, vertexSource)
	require.NoError(t, err)
	assert.True(t, s.Valid())
	assert.Equal(t, gl.VertexStage, s.Stage())
	assert.Equal(t, 1, fake.LiveShaders())

	s.Close()
	s.Close()
	assert.False(t, s.Valid())
	assert.Equal(t, 0, fake.LiveShaders())
}

func TestShaderCompileFailureDeletesHandle(t *testing.T) {
	fake := gltest.New()
	fake.CompileFails = true
	fake.ShaderLog = "0:3(1): error: syntax error\n"

	s, err := gl.NewShader(fake, gl.FragmentStage, "not glsl")
	assert.Nil(t, s)

	var compileErr *gl.CompileError
	require.True(t, errors.As(err, &compileErr))
	assert.Equal(t, gl.FragmentStage, compileErr.Stage)
	assert.Contains(t, compileErr.Log, "syntax error")
	assert.Equal(t, "compile fragment shader: 0:3(1): error: syntax error", err.Error())
	assert.Equal(t, 0, fake.LiveShaders())
}

func TestProgramLinks(t *testing.T) {
	fake := gltest.New()

	p, err := gl.NewProgramFromSource(fake, vertexSource, fragmentSource)
	require.NoError(t, err)
	defer p.Close()

	assert.True(t, p.Valid())
	assert.Equal(t, 1, fake.LivePrograms())
	// Intermediate shaders are released once linked.
	assert.Equal(t, 0, fake.LiveShaders())
	assert.True(t, fake.Called("DetachShader"))
}

func TestProgramLinkFailure(t *testing.T) {
	fake := gltest.New()
	fake.LinkFails = true
	fake.ProgramLog = "error: vertex shader lacks main\n"

	p, err := gl.NewProgramFromSource(fake, vertexSource, fragmentSource)
	assert.Nil(t, p)

	var linkErr *gl.LinkError
	require.True(t, errors.As(err, &linkErr))
	assert.Equal(t, "error: vertex shader lacks main\n", linkErr.Log)
	assert.Equal(t, 0, fake.LivePrograms())
	assert.Equal(t, 0, fake.LiveShaders())
	assert.False(t, fake.Called("DetachShader"))
}

func TestProgramCloseIsIdempotent(t *testing.T) {
	fake := gltest.New()
	p, err := gl.NewProgramFromSource(fake, vertexSource, fragmentSource)
	require.NoError(t, err)

	p.Close()
	p.Close()
	assert.False(t, p.Valid())
	assert.Equal(t, "", p.InfoLog())
	assert.Equal(t, 0, fake.LivePrograms())
}

func TestProgramUniforms(t *testing.T) {
	fake := gltest.New()
	p, err := gl.NewProgramFromSource(fake, vertexSource, fragmentSource)
	require.NoError(t, err)
	defer p.Close()

	p.Bind()
	assert.Equal(t, p.Handle(), fake.Current)

	p.SetFloat("Time", 1.5)
	p.SetVec4("Tint", mgl32.Vec4{1, 0.5, 0.25, 1})
	p.SetMat4("ProjMtx", mgl32.Ident4())

	assert.Equal(t, []float32{1.5}, fake.Uniforms[p.UniformLocation("Time")])
	assert.Equal(t, []float32{1, 0.5, 0.25, 1}, fake.Uniforms[p.UniformLocation("Tint")])
	ident := mgl32.Ident4()
	assert.Equal(t, ident[:], fake.Uniforms[p.UniformLocation("ProjMtx")])
	assert.Equal(t, int32(-1), p.UniformLocation("missingUniform"))

	p.Unbind()
	assert.Equal(t, uint32(0), fake.Current)
}

func TestUniformLocationIsCached(t *testing.T) {
	fake := gltest.New()
	p, err := gl.NewProgramFromSource(fake, vertexSource, fragmentSource)
	require.NoError(t, err)
	defer p.Close()

	p.UniformLocation("Texture")
	p.UniformLocation("Texture")

	n := 0
	for _, c := range fake.Calls {
		if c == "GetUniformLocation Texture" {
			n++
		}
	}
	assert.Equal(t, 1, n)
}

func TestTexture(t *testing.T) {
	fake := gltest.New()
	img := image.NewNRGBA(image.Rect(0, 0, 4, 2))
	img.Set(1, 1, color.NRGBA{R: 255, A: 255})

	tex, err := gl.NewTexture(fake, img, gl.Nearest)
	require.NoError(t, err)

	w, h := tex.Size()
	assert.Equal(t, 4, w)
	assert.Equal(t, 2, h)
	assert.True(t, fake.Called("TexImage2D 4x2"))
	assert.Equal(t, 1, fake.LiveTextures())

	tex.Close()
	tex.Close()
	assert.Equal(t, 0, fake.LiveTextures())
}

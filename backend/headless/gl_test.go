package headless

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wippyai/glbridge/glapi"
)

const (
	vertexSrc = `attribute vec2 a_position;
attribute highp vec2 a_uv;
uniform mat4 u_mvp;
void main() {
	gl_Position = u_mvp * vec4(a_position, 0.0, 1.0);
}`
	fragmentSrc = `precision mediump float;
uniform vec4 u_color;
uniform sampler2D u_tex;
void main() {
	gl_FragColor = u_color;
}`
)

func buildProgram(t *testing.T, g *GL) glapi.Program {
	t.Helper()
	vs, err := g.CreateShader(glapi.VERTEX_SHADER)
	require.NoError(t, err)
	fs, err := g.CreateShader(glapi.FRAGMENT_SHADER)
	require.NoError(t, err)
	g.ShaderSource(vs, vertexSrc)
	g.ShaderSource(fs, fragmentSrc)
	g.CompileShader(vs)
	g.CompileShader(fs)

	p, err := g.CreateProgram()
	require.NoError(t, err)
	g.AttachShader(p, vs)
	g.AttachShader(p, fs)
	g.LinkProgram(p)
	require.Equal(t, int32(1), g.GetProgramParameter(p, glapi.LINK_STATUS), g.GetProgramInfoLog(p))
	return p
}

func TestNamesStartAtOne(t *testing.T) {
	g := New()

	b1, err := g.CreateBuffer()
	require.NoError(t, err)
	b2, err := g.CreateBuffer()
	require.NoError(t, err)
	tex, err := g.CreateTexture()
	require.NoError(t, err)

	assert.Equal(t, glapi.Buffer(1), b1)
	assert.Equal(t, glapi.Buffer(2), b2)
	assert.Equal(t, glapi.Texture(1), tex)
	assert.Equal(t, 3, g.Live())
}

func TestStickyError(t *testing.T) {
	g := New()

	g.BindBuffer(0x1234, 0)
	g.DeleteBuffer(42)

	assert.Equal(t, uint32(glapi.INVALID_ENUM), g.GetError(), "first error is kept")
	assert.Equal(t, uint32(glapi.NO_ERROR), g.GetError(), "GetError clears the flag")
}

func TestCreateShader_UnknownType(t *testing.T) {
	g := New()

	s, err := g.CreateShader(0x1)
	require.NoError(t, err)
	assert.Zero(t, s)
	assert.Equal(t, uint32(glapi.INVALID_ENUM), g.GetError())
}

func TestCompileShader(t *testing.T) {
	tests := []struct {
		name    string
		source  string
		wantLog []string
	}{
		{name: "valid", source: vertexSrc},
		{
			name:    "missing main",
			source:  "attribute vec2 a;\nvoid helper() {}",
			wantLog: []string{"ERROR: 0:2:", "missing main function"},
		},
		{
			name:    "error directive",
			source:  "void main() {}\n#error unsupported target",
			wantLog: []string{"ERROR: 0:2: '#error' : unsupported target"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New()
			s, err := g.CreateShader(glapi.VERTEX_SHADER)
			require.NoError(t, err)

			g.ShaderSource(s, tt.source)
			g.CompileShader(s)

			log := g.GetShaderInfoLog(s)
			if len(tt.wantLog) == 0 {
				assert.Equal(t, int32(1), g.GetShaderParameter(s, glapi.COMPILE_STATUS))
				assert.Empty(t, log)
				return
			}
			assert.Equal(t, int32(0), g.GetShaderParameter(s, glapi.COMPILE_STATUS))
			for _, want := range tt.wantLog {
				assert.Contains(t, log, want)
			}
		})
	}
}

func TestLinkProgram_Locations(t *testing.T) {
	g := New()
	p := buildProgram(t, g)

	assert.Equal(t, int32(0), g.GetAttribLocation(p, "a_position"))
	assert.Equal(t, int32(1), g.GetAttribLocation(p, "a_uv"))
	assert.Equal(t, int32(-1), g.GetAttribLocation(p, "a_missing"))

	assert.Equal(t, glapi.UniformLocation(0), g.GetUniformLocation(p, "u_mvp"))
	assert.Equal(t, glapi.UniformLocation(1), g.GetUniformLocation(p, "u_color"))
	assert.Equal(t, glapi.UniformLocation(2), g.GetUniformLocation(p, "u_tex"))
	assert.Equal(t, glapi.NoLocation, g.GetUniformLocation(p, "u_missing"))
	assert.Equal(t, uint32(glapi.NO_ERROR), g.GetError())
}

func TestLinkProgram_MissingFragment(t *testing.T) {
	g := New()
	vs, _ := g.CreateShader(glapi.VERTEX_SHADER)
	g.ShaderSource(vs, vertexSrc)
	g.CompileShader(vs)
	p, _ := g.CreateProgram()
	g.AttachShader(p, vs)

	g.LinkProgram(p)

	assert.Equal(t, int32(0), g.GetProgramParameter(p, glapi.LINK_STATUS))
	assert.Contains(t, g.GetProgramInfoLog(p), "fragment shader")

	g.UseProgram(p)
	assert.Equal(t, uint32(glapi.INVALID_OPERATION), g.GetError())
}

func TestDrawArrays(t *testing.T) {
	g := New()

	g.DrawArrays(glapi.TRIANGLES, 0, 3)
	assert.Equal(t, uint32(glapi.INVALID_OPERATION), g.GetError(), "no program")

	p := buildProgram(t, g)
	g.UseProgram(p)
	g.DrawArrays(glapi.TRIANGLES, 0, 3)
	assert.Equal(t, uint32(glapi.NO_ERROR), g.GetError())
	assert.Equal(t, 1, g.Draws())
}

func TestUniforms(t *testing.T) {
	g := New()
	p := buildProgram(t, g)
	g.UseProgram(p)

	loc := g.GetUniformLocation(p, "u_color")
	g.Uniform4f(loc, 1, 0.5, 0.25, 1)
	g.Uniform4f(glapi.NoLocation, 9, 9, 9, 9)

	v, ok := g.UniformValue(p, "u_color")
	require.True(t, ok)
	assert.Equal(t, []float32{1, 0.5, 0.25, 1}, v)
	assert.Equal(t, uint32(glapi.NO_ERROR), g.GetError(), "location -1 is ignored")

	g.UniformMatrix4fv(g.GetUniformLocation(p, "u_mvp"), false, make([]float32, 15))
	assert.Equal(t, uint32(glapi.INVALID_VALUE), g.GetError())
}

func TestBufferData_Copies(t *testing.T) {
	g := New()
	b, _ := g.CreateBuffer()
	g.BindBuffer(glapi.ARRAY_BUFFER, b)

	data := []float32{1, 2, 3}
	g.BufferData(glapi.ARRAY_BUFFER, data, glapi.STATIC_DRAW)
	data[0] = 99

	info, ok := g.Buffer(b)
	require.True(t, ok)
	assert.Equal(t, []float32{1, 2, 3}, info.Data)
	assert.Equal(t, uint32(glapi.STATIC_DRAW), info.Usage)
}

func TestBufferData_NoBinding(t *testing.T) {
	g := New()
	g.BufferData(glapi.ARRAY_BUFFER, []float32{1}, glapi.STATIC_DRAW)
	assert.Equal(t, uint32(glapi.INVALID_OPERATION), g.GetError())
}

func TestTexImage2D(t *testing.T) {
	g := New()
	tex, _ := g.CreateTexture()
	g.BindTexture(glapi.TEXTURE_2D, tex)

	g.TexImage2D(glapi.TEXTURE_2D, 0, glapi.RGBA, 2, 2, 0, glapi.RGBA, glapi.UNSIGNED_BYTE, nil)
	info, ok := g.Texture(tex)
	require.True(t, ok)
	assert.Equal(t, int32(2), info.Width)
	assert.Nil(t, info.Pixels)

	pixels := make([]byte, 16)
	pixels[0] = 0xFF
	g.TexImage2D(glapi.TEXTURE_2D, 0, glapi.RGBA, 2, 2, 0, glapi.RGBA, glapi.UNSIGNED_BYTE, pixels)
	info, _ = g.Texture(tex)
	assert.Equal(t, pixels, info.Pixels)
	assert.Equal(t, uint32(glapi.NO_ERROR), g.GetError())
}

func TestFramebufferStatus(t *testing.T) {
	g := New()
	assert.Equal(t, uint32(glapi.FRAMEBUFFER_COMPLETE), g.CheckFramebufferStatus(glapi.FRAMEBUFFER))

	fb, _ := g.CreateFramebuffer()
	g.BindFramebuffer(glapi.FRAMEBUFFER, fb)
	assert.Equal(t, uint32(glapi.FRAMEBUFFER_INCOMPLETE_MISSING_ATTACHMENT), g.CheckFramebufferStatus(glapi.FRAMEBUFFER))

	tex, _ := g.CreateTexture()
	g.FramebufferTexture2D(glapi.FRAMEBUFFER, glapi.COLOR_ATTACHMENT0, glapi.TEXTURE_2D, tex, 0)
	assert.Equal(t, uint32(glapi.FRAMEBUFFER_COMPLETE), g.CheckFramebufferStatus(glapi.FRAMEBUFFER))

	g.FramebufferTexture2D(glapi.FRAMEBUFFER, glapi.COLOR_ATTACHMENT0, glapi.TEXTURE_2D, 0, 0)
	assert.Equal(t, uint32(glapi.FRAMEBUFFER_INCOMPLETE_MISSING_ATTACHMENT), g.CheckFramebufferStatus(glapi.FRAMEBUFFER))
}

func TestObjectLimit(t *testing.T) {
	g := New(WithObjectLimit(2))

	_, err := g.CreateBuffer()
	require.NoError(t, err)
	_, err = g.CreateTexture()
	require.NoError(t, err)
	_, err = g.CreateProgram()
	assert.ErrorIs(t, err, ErrOutOfMemory)

	g.DeleteBuffer(1)
	_, err = g.CreateProgram()
	assert.NoError(t, err)
}

func TestDeleteUnknown(t *testing.T) {
	g := New()
	g.DeleteTexture(0)
	assert.Equal(t, uint32(glapi.NO_ERROR), g.GetError(), "deleting 0 is a no-op")

	g.DeleteTexture(7)
	assert.Equal(t, uint32(glapi.INVALID_VALUE), g.GetError())
}

func TestTrace(t *testing.T) {
	g := New()
	g.ClearColor(0, 0, 0, 1)
	g.Clear(glapi.COLOR_BUFFER_BIT)

	trace := g.Trace()
	require.Len(t, trace, 2)
	assert.Equal(t, uint64(1), trace[0].Seq)
	assert.Equal(t, "ClearColor", trace[0].Name)
	assert.Equal(t, "Clear(0x4000)", trace[1].String())

	g.Reset()
	assert.Empty(t, g.Trace())
	assert.Equal(t, [4]float32{0, 0, 0, 1}, g.ClearColorValue(), "Reset keeps state")
}

func TestWithoutTrace(t *testing.T) {
	g := New(WithoutTrace())
	g.Clear(glapi.COLOR_BUFFER_BIT)
	assert.Empty(t, g.Trace())
}

//go:build opengl

package opengl

import (
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
	"go.uber.org/zap"

	"github.com/wippyai/glbridge/errors"
	"github.com/wippyai/glbridge/glapi"
)

// GL forwards to the OpenGL context current on the calling thread.
type GL struct {
	version string
	vao     uint32
}

var _ glapi.GL = (*GL)(nil)

// New loads the OpenGL function pointers and checks for a current context.
// Core profile requires a bound vertex array object for attribute state,
// so one is created and bound for the lifetime of the GL.
func New() (*GL, error) {
	if err := gl.Init(); err != nil {
		return nil, errors.ContextUnavailable("initialize opengl", err)
	}
	v := gl.GetString(gl.VERSION)
	if v == nil {
		return nil, errors.ContextUnavailable("no current opengl context", nil)
	}

	g := &GL{version: gl.GoStr(v)}
	gl.GenVertexArrays(1, &g.vao)
	gl.BindVertexArray(g.vao)

	Logger().Info("opengl context ready", zap.String("version", g.version))
	return g, nil
}

// Version returns the GL_VERSION string of the context.
func (g *GL) Version() string {
	return g.version
}

// Close deletes the vertex array object created by New.
func (g *GL) Close() {
	if g.vao != 0 {
		gl.DeleteVertexArrays(1, &g.vao)
		g.vao = 0
	}
}

func (g *GL) ActiveTexture(texture uint32) { gl.ActiveTexture(texture) }

func (g *GL) AttachShader(program glapi.Program, shader glapi.Shader) {
	gl.AttachShader(uint32(program), uint32(shader))
}

func (g *GL) BindBuffer(target uint32, buffer glapi.Buffer) { gl.BindBuffer(target, uint32(buffer)) }

func (g *GL) BindFramebuffer(target uint32, framebuffer glapi.Framebuffer) {
	gl.BindFramebuffer(target, uint32(framebuffer))
}

func (g *GL) BindTexture(target uint32, texture glapi.Texture) {
	gl.BindTexture(target, uint32(texture))
}

func (g *GL) BlendFunc(sfactor, dfactor uint32) { gl.BlendFunc(sfactor, dfactor) }

func (g *GL) BufferData(target uint32, data []float32, usage uint32) {
	if len(data) == 0 {
		gl.BufferData(target, 0, nil, usage)
		return
	}
	gl.BufferData(target, len(data)*4, gl.Ptr(data), usage)
}

func (g *GL) CheckFramebufferStatus(target uint32) uint32 { return gl.CheckFramebufferStatus(target) }

func (g *GL) Clear(mask uint32) { gl.Clear(mask) }

func (g *GL) ClearColor(r, gr, b, a float32) { gl.ClearColor(r, gr, b, a) }

func (g *GL) CompileShader(shader glapi.Shader) { gl.CompileShader(uint32(shader)) }

func (g *GL) CreateBuffer() (glapi.Buffer, error) {
	var name uint32
	gl.GenBuffers(1, &name)
	if name == 0 {
		return 0, errors.ContextUnavailable("glGenBuffers returned no name", nil)
	}
	return glapi.Buffer(name), nil
}

func (g *GL) CreateFramebuffer() (glapi.Framebuffer, error) {
	var name uint32
	gl.GenFramebuffers(1, &name)
	if name == 0 {
		return 0, errors.ContextUnavailable("glGenFramebuffers returned no name", nil)
	}
	return glapi.Framebuffer(name), nil
}

func (g *GL) CreateProgram() (glapi.Program, error) {
	name := gl.CreateProgram()
	if name == 0 {
		return 0, errors.ContextUnavailable("glCreateProgram returned no name", nil)
	}
	return glapi.Program(name), nil
}

// CreateShader returns 0 without an error for an unknown type; the context
// records INVALID_ENUM.
func (g *GL) CreateShader(shaderType uint32) (glapi.Shader, error) {
	return glapi.Shader(gl.CreateShader(shaderType)), nil
}

func (g *GL) CreateTexture() (glapi.Texture, error) {
	var name uint32
	gl.GenTextures(1, &name)
	if name == 0 {
		return 0, errors.ContextUnavailable("glGenTextures returned no name", nil)
	}
	return glapi.Texture(name), nil
}

func (g *GL) DeleteBuffer(buffer glapi.Buffer) {
	name := uint32(buffer)
	gl.DeleteBuffers(1, &name)
}

func (g *GL) DeleteFramebuffer(framebuffer glapi.Framebuffer) {
	name := uint32(framebuffer)
	gl.DeleteFramebuffers(1, &name)
}

func (g *GL) DeleteProgram(program glapi.Program) { gl.DeleteProgram(uint32(program)) }

func (g *GL) DeleteShader(shader glapi.Shader) { gl.DeleteShader(uint32(shader)) }

func (g *GL) DeleteTexture(texture glapi.Texture) {
	name := uint32(texture)
	gl.DeleteTextures(1, &name)
}

func (g *GL) DepthFunc(fn uint32) { gl.DepthFunc(fn) }

func (g *GL) DetachShader(program glapi.Program, shader glapi.Shader) {
	gl.DetachShader(uint32(program), uint32(shader))
}

func (g *GL) Disable(capability uint32) { gl.Disable(capability) }

func (g *GL) DisableVertexAttribArray(index uint32) { gl.DisableVertexAttribArray(index) }

func (g *GL) DrawArrays(mode uint32, first, count int32) { gl.DrawArrays(mode, first, count) }

func (g *GL) Enable(capability uint32) { gl.Enable(capability) }

func (g *GL) EnableVertexAttribArray(index uint32) { gl.EnableVertexAttribArray(index) }

func (g *GL) FramebufferTexture2D(target, attachment, textarget uint32, texture glapi.Texture, level int32) {
	gl.FramebufferTexture2D(target, attachment, textarget, uint32(texture), level)
}

func (g *GL) FrontFace(mode uint32) { gl.FrontFace(mode) }

func (g *GL) GetAttribLocation(program glapi.Program, name string) int32 {
	return gl.GetAttribLocation(uint32(program), gl.Str(name+"\x00"))
}

func (g *GL) GetError() uint32 { return gl.GetError() }

func (g *GL) GetProgramInfoLog(program glapi.Program) string {
	var n int32
	gl.GetProgramiv(uint32(program), gl.INFO_LOG_LENGTH, &n)
	if n <= 0 {
		return ""
	}
	log := make([]byte, n)
	gl.GetProgramInfoLog(uint32(program), n, nil, &log[0])
	return strings.TrimRight(string(log), "\x00")
}

func (g *GL) GetProgramParameter(program glapi.Program, pname uint32) int32 {
	var v int32
	gl.GetProgramiv(uint32(program), pname, &v)
	return v
}

func (g *GL) GetShaderInfoLog(shader glapi.Shader) string {
	var n int32
	gl.GetShaderiv(uint32(shader), gl.INFO_LOG_LENGTH, &n)
	if n <= 0 {
		return ""
	}
	log := make([]byte, n)
	gl.GetShaderInfoLog(uint32(shader), n, nil, &log[0])
	return strings.TrimRight(string(log), "\x00")
}

func (g *GL) GetShaderParameter(shader glapi.Shader, pname uint32) int32 {
	var v int32
	gl.GetShaderiv(uint32(shader), pname, &v)
	return v
}

func (g *GL) GetUniformLocation(program glapi.Program, name string) glapi.UniformLocation {
	return glapi.UniformLocation(gl.GetUniformLocation(uint32(program), gl.Str(name+"\x00")))
}

func (g *GL) LinkProgram(program glapi.Program) { gl.LinkProgram(uint32(program)) }

func (g *GL) PixelStorei(pname uint32, param int32) { gl.PixelStorei(pname, param) }

func (g *GL) Scissor(x, y, width, height int32) { gl.Scissor(x, y, width, height) }

func (g *GL) ShaderSource(shader glapi.Shader, source string) {
	csrc, free := gl.Strs(source + "\x00")
	defer free()
	gl.ShaderSource(uint32(shader), 1, csrc, nil)
}

func (g *GL) TexImage2D(target uint32, level, internalFormat, width, height, border int32, format, xtype uint32, pixels []byte) {
	if len(pixels) == 0 {
		gl.TexImage2D(target, level, internalFormat, width, height, border, format, xtype, nil)
		return
	}
	gl.TexImage2D(target, level, internalFormat, width, height, border, format, xtype, gl.Ptr(pixels))
}

func (g *GL) TexParameterf(target, pname uint32, param float32) {
	gl.TexParameterf(target, pname, param)
}

func (g *GL) TexParameteri(target, pname uint32, param int32) { gl.TexParameteri(target, pname, param) }

func (g *GL) Uniform1f(location glapi.UniformLocation, x float32) { gl.Uniform1f(int32(location), x) }

func (g *GL) Uniform1i(location glapi.UniformLocation, x int32) { gl.Uniform1i(int32(location), x) }

func (g *GL) Uniform2f(location glapi.UniformLocation, x, y float32) {
	gl.Uniform2f(int32(location), x, y)
}

func (g *GL) Uniform3f(location glapi.UniformLocation, x, y, z float32) {
	gl.Uniform3f(int32(location), x, y, z)
}

func (g *GL) Uniform4f(location glapi.UniformLocation, x, y, z, w float32) {
	gl.Uniform4f(int32(location), x, y, z, w)
}

func (g *GL) UniformMatrix4fv(location glapi.UniformLocation, transpose bool, value []float32) {
	count := int32(len(value) / 16)
	if count == 0 {
		return
	}
	gl.UniformMatrix4fv(int32(location), count, transpose, &value[0])
}

func (g *GL) UseProgram(program glapi.Program) { gl.UseProgram(uint32(program)) }

func (g *GL) VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride, offset int32) {
	gl.VertexAttribPointerWithOffset(index, size, xtype, normalized, stride, uintptr(offset))
}

func (g *GL) Viewport(x, y, width, height int32) { gl.Viewport(x, y, width, height) }

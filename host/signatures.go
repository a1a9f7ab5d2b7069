package host

import (
	"github.com/tetratelabs/wazero/api"

	"github.com/wippyai/glbridge/bridge"
)

const (
	i32 = api.ValueTypeI32
	f32 = api.ValueTypeF32
)

// Signature describes one host function exported to the guest.
type Signature struct {
	Name       string
	ParamNames []string
	Params     []api.ValueType
	Results    []api.ValueType
	dispatch   func(c *bridge.Context, stack []uint64) error
}

// Signatures lists the host functions in registration order.
func Signatures() []Signature {
	out := make([]Signature, len(signatures))
	copy(out, signatures)
	return out
}

func u32(v uint64) uint32        { return api.DecodeU32(v) }
func s32(v uint64) int32         { return api.DecodeI32(v) }
func fl(v uint64) float32        { return api.DecodeF32(v) }
func flag(v uint64) bool         { return api.DecodeU32(v) != 0 }
func names(n ...string) []string { return n }

func types(t ...api.ValueType) []api.ValueType { return t }

// create adapts a handle-returning operation.
func create(fn func(c *bridge.Context, stack []uint64) (uint32, error)) func(*bridge.Context, []uint64) error {
	return func(c *bridge.Context, stack []uint64) error {
		h, err := fn(c, stack)
		if err != nil {
			return err
		}
		stack[0] = api.EncodeU32(h)
		return nil
	}
}

var signatures = []Signature{
	{
		Name: "glActiveTexture", ParamNames: names("texture"), Params: types(i32),
		dispatch: func(c *bridge.Context, s []uint64) error { return c.ActiveTexture(u32(s[0])) },
	},
	{
		Name: "glAttachShader", ParamNames: names("program", "shader"), Params: types(i32, i32),
		dispatch: func(c *bridge.Context, s []uint64) error { return c.AttachShader(u32(s[0]), u32(s[1])) },
	},
	{
		Name: "glBindBuffer", ParamNames: names("target", "buffer"), Params: types(i32, i32),
		dispatch: func(c *bridge.Context, s []uint64) error { return c.BindBuffer(u32(s[0]), u32(s[1])) },
	},
	{
		Name: "glBindFramebuffer", ParamNames: names("target", "framebuffer"), Params: types(i32, i32),
		dispatch: func(c *bridge.Context, s []uint64) error { return c.BindFramebuffer(u32(s[0]), u32(s[1])) },
	},
	{
		Name: "glBindTexture", ParamNames: names("target", "texture"), Params: types(i32, i32),
		dispatch: func(c *bridge.Context, s []uint64) error { return c.BindTexture(u32(s[0]), u32(s[1])) },
	},
	{
		Name: "glBlendFunc", ParamNames: names("sfactor", "dfactor"), Params: types(i32, i32),
		dispatch: func(c *bridge.Context, s []uint64) error { return c.BlendFunc(u32(s[0]), u32(s[1])) },
	},
	{
		Name: "glBufferData", ParamNames: names("target", "count", "data_ptr", "usage"), Params: types(i32, i32, i32, i32),
		dispatch: func(c *bridge.Context, s []uint64) error {
			return c.BufferData(u32(s[0]), u32(s[1]), u32(s[2]), u32(s[3]))
		},
	},
	{
		Name: "glCheckFramebufferStatus", ParamNames: names("target"), Params: types(i32), Results: types(i32),
		dispatch: func(c *bridge.Context, s []uint64) error {
			s[0] = api.EncodeU32(c.CheckFramebufferStatus(u32(s[0])))
			return nil
		},
	},
	{
		Name: "glClear", ParamNames: names("mask"), Params: types(i32),
		dispatch: func(c *bridge.Context, s []uint64) error { return c.Clear(u32(s[0])) },
	},
	{
		Name: "glClearColor", ParamNames: names("r", "g", "b", "a"), Params: types(f32, f32, f32, f32),
		dispatch: func(c *bridge.Context, s []uint64) error {
			return c.ClearColor(fl(s[0]), fl(s[1]), fl(s[2]), fl(s[3]))
		},
	},
	{
		Name: "glCompileShader", ParamNames: names("shader"), Params: types(i32),
		dispatch: func(c *bridge.Context, s []uint64) error { return c.CompileShader(u32(s[0])) },
	},
	{
		Name: "glCreateBuffer", Results: types(i32),
		dispatch: create(func(c *bridge.Context, _ []uint64) (uint32, error) { return c.CreateBuffer() }),
	},
	{
		Name: "glCreateFramebuffer", Results: types(i32),
		dispatch: create(func(c *bridge.Context, _ []uint64) (uint32, error) { return c.CreateFramebuffer() }),
	},
	{
		Name: "glCreateProgram", Results: types(i32),
		dispatch: create(func(c *bridge.Context, _ []uint64) (uint32, error) { return c.CreateProgram() }),
	},
	{
		Name: "glCreateShader", ParamNames: names("shader_type"), Params: types(i32), Results: types(i32),
		dispatch: create(func(c *bridge.Context, s []uint64) (uint32, error) { return c.CreateShader(u32(s[0])) }),
	},
	{
		Name: "glCreateTexture", Results: types(i32),
		dispatch: create(func(c *bridge.Context, _ []uint64) (uint32, error) { return c.CreateTexture() }),
	},
	{
		Name: "glDeleteBuffer", ParamNames: names("buffer"), Params: types(i32),
		dispatch: func(c *bridge.Context, s []uint64) error { return c.DeleteBuffer(u32(s[0])) },
	},
	{
		Name: "glDeleteFramebuffer", ParamNames: names("framebuffer"), Params: types(i32),
		dispatch: func(c *bridge.Context, s []uint64) error { return c.DeleteFramebuffer(u32(s[0])) },
	},
	{
		Name: "glDeleteProgram", ParamNames: names("program"), Params: types(i32),
		dispatch: func(c *bridge.Context, s []uint64) error { return c.DeleteProgram(u32(s[0])) },
	},
	{
		Name: "glDeleteShader", ParamNames: names("shader"), Params: types(i32),
		dispatch: func(c *bridge.Context, s []uint64) error { return c.DeleteShader(u32(s[0])) },
	},
	{
		Name: "glDeleteTexture", ParamNames: names("texture"), Params: types(i32),
		dispatch: func(c *bridge.Context, s []uint64) error { return c.DeleteTexture(u32(s[0])) },
	},
	{
		Name: "glDepthFunc", ParamNames: names("func"), Params: types(i32),
		dispatch: func(c *bridge.Context, s []uint64) error { return c.DepthFunc(u32(s[0])) },
	},
	{
		Name: "glDetachShader", ParamNames: names("program", "shader"), Params: types(i32, i32),
		dispatch: func(c *bridge.Context, s []uint64) error { return c.DetachShader(u32(s[0]), u32(s[1])) },
	},
	{
		Name: "glDisable", ParamNames: names("cap"), Params: types(i32),
		dispatch: func(c *bridge.Context, s []uint64) error { return c.Disable(u32(s[0])) },
	},
	{
		Name: "glDisableVertexAttribArray", ParamNames: names("index"), Params: types(i32),
		dispatch: func(c *bridge.Context, s []uint64) error { return c.DisableVertexAttribArray(u32(s[0])) },
	},
	{
		Name: "glDrawArrays", ParamNames: names("mode", "first", "count"), Params: types(i32, i32, i32),
		dispatch: func(c *bridge.Context, s []uint64) error { return c.DrawArrays(u32(s[0]), s32(s[1]), s32(s[2])) },
	},
	{
		Name: "glEnable", ParamNames: names("cap"), Params: types(i32),
		dispatch: func(c *bridge.Context, s []uint64) error { return c.Enable(u32(s[0])) },
	},
	{
		Name: "glEnableVertexAttribArray", ParamNames: names("index"), Params: types(i32),
		dispatch: func(c *bridge.Context, s []uint64) error { return c.EnableVertexAttribArray(u32(s[0])) },
	},
	{
		Name:       "glFramebufferTexture2D",
		ParamNames: names("target", "attachment", "textarget", "texture", "level"),
		Params:     types(i32, i32, i32, i32, i32),
		dispatch: func(c *bridge.Context, s []uint64) error {
			return c.FramebufferTexture2D(u32(s[0]), u32(s[1]), u32(s[2]), u32(s[3]), s32(s[4]))
		},
	},
	{
		Name: "glFrontFace", ParamNames: names("mode"), Params: types(i32),
		dispatch: func(c *bridge.Context, s []uint64) error { return c.FrontFace(u32(s[0])) },
	},
	{
		Name: "glGetAttribLocation_", ParamNames: names("program", "name_ptr", "name_len"), Params: types(i32, i32, i32), Results: types(i32),
		dispatch: func(c *bridge.Context, s []uint64) error {
			loc, err := c.GetAttribLocation(u32(s[0]), u32(s[1]), u32(s[2]))
			if err != nil {
				return err
			}
			s[0] = api.EncodeI32(loc)
			return nil
		},
	},
	{
		Name: "glGetError", Results: types(i32),
		dispatch: func(c *bridge.Context, s []uint64) error {
			s[0] = api.EncodeU32(c.GetError())
			return nil
		},
	},
	{
		Name: "glGetUniformLocation_", ParamNames: names("program", "name_ptr", "name_len"), Params: types(i32, i32, i32), Results: types(i32),
		dispatch: create(func(c *bridge.Context, s []uint64) (uint32, error) {
			return c.GetUniformLocation(u32(s[0]), u32(s[1]), u32(s[2]))
		}),
	},
	{
		Name: "glLinkProgram", ParamNames: names("program"), Params: types(i32),
		dispatch: func(c *bridge.Context, s []uint64) error { return c.LinkProgram(u32(s[0])) },
	},
	{
		Name: "glPixelStorei", ParamNames: names("pname", "param"), Params: types(i32, i32),
		dispatch: func(c *bridge.Context, s []uint64) error { return c.PixelStorei(u32(s[0]), s32(s[1])) },
	},
	{
		Name: "glScissor", ParamNames: names("x", "y", "width", "height"), Params: types(i32, i32, i32, i32),
		dispatch: func(c *bridge.Context, s []uint64) error {
			return c.Scissor(s32(s[0]), s32(s[1]), s32(s[2]), s32(s[3]))
		},
	},
	{
		Name: "glShaderSource_", ParamNames: names("shader", "source_ptr", "source_len"), Params: types(i32, i32, i32),
		dispatch: func(c *bridge.Context, s []uint64) error { return c.ShaderSource(u32(s[0]), u32(s[1]), u32(s[2])) },
	},
	{
		Name: "glTexImage2D",
		ParamNames: names("target", "level", "internal_format", "width", "height", "border",
			"format", "type", "data_ptr", "data_len"),
		Params: types(i32, i32, i32, i32, i32, i32, i32, i32, i32, i32),
		dispatch: func(c *bridge.Context, s []uint64) error {
			return c.TexImage2D(u32(s[0]), s32(s[1]), s32(s[2]), s32(s[3]), s32(s[4]), s32(s[5]),
				u32(s[6]), u32(s[7]), u32(s[8]), u32(s[9]))
		},
	},
	{
		Name: "glTexParameterf", ParamNames: names("target", "pname", "param"), Params: types(i32, i32, f32),
		dispatch: func(c *bridge.Context, s []uint64) error { return c.TexParameterf(u32(s[0]), u32(s[1]), fl(s[2])) },
	},
	{
		Name: "glTexParameteri", ParamNames: names("target", "pname", "param"), Params: types(i32, i32, i32),
		dispatch: func(c *bridge.Context, s []uint64) error { return c.TexParameteri(u32(s[0]), u32(s[1]), s32(s[2])) },
	},
	{
		Name: "glUniform1f", ParamNames: names("location", "x"), Params: types(i32, f32),
		dispatch: func(c *bridge.Context, s []uint64) error { return c.Uniform1f(u32(s[0]), fl(s[1])) },
	},
	{
		Name: "glUniform1i", ParamNames: names("location", "x"), Params: types(i32, i32),
		dispatch: func(c *bridge.Context, s []uint64) error { return c.Uniform1i(u32(s[0]), s32(s[1])) },
	},
	{
		Name: "glUniform2f", ParamNames: names("location", "x", "y"), Params: types(i32, f32, f32),
		dispatch: func(c *bridge.Context, s []uint64) error { return c.Uniform2f(u32(s[0]), fl(s[1]), fl(s[2])) },
	},
	{
		Name: "glUniform3f", ParamNames: names("location", "x", "y", "z"), Params: types(i32, f32, f32, f32),
		dispatch: func(c *bridge.Context, s []uint64) error {
			return c.Uniform3f(u32(s[0]), fl(s[1]), fl(s[2]), fl(s[3]))
		},
	},
	{
		Name: "glUniform4f", ParamNames: names("location", "x", "y", "z", "w"), Params: types(i32, f32, f32, f32, f32),
		dispatch: func(c *bridge.Context, s []uint64) error {
			return c.Uniform4f(u32(s[0]), fl(s[1]), fl(s[2]), fl(s[3]), fl(s[4]))
		},
	},
	{
		Name: "glUniformMatrix4fv", ParamNames: names("location", "count", "transpose", "data_ptr"), Params: types(i32, i32, i32, i32),
		dispatch: func(c *bridge.Context, s []uint64) error {
			return c.UniformMatrix4fv(u32(s[0]), u32(s[1]), flag(s[2]), u32(s[3]))
		},
	},
	{
		Name: "glUseProgram", ParamNames: names("program"), Params: types(i32),
		dispatch: func(c *bridge.Context, s []uint64) error { return c.UseProgram(u32(s[0])) },
	},
	{
		Name:       "glVertexAttribPointer",
		ParamNames: names("index", "size", "type", "normalized", "stride", "offset"),
		Params:     types(i32, i32, i32, i32, i32, i32),
		dispatch: func(c *bridge.Context, s []uint64) error {
			return c.VertexAttribPointer(u32(s[0]), s32(s[1]), u32(s[2]), flag(s[3]), s32(s[4]), s32(s[5]))
		},
	},
	{
		Name: "glViewport", ParamNames: names("x", "y", "width", "height"), Params: types(i32, i32, i32, i32),
		dispatch: func(c *bridge.Context, s []uint64) error {
			return c.Viewport(s32(s[0]), s32(s[1]), s32(s[2]), s32(s[3]))
		},
	},
}

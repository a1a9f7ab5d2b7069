package bridge

import (
	"go.uber.org/zap"

	"github.com/wippyai/glbridge/errors"
	"github.com/wippyai/glbridge/glapi"
	"github.com/wippyai/glbridge/resource"
)

// AttachShader attaches shader to program.
func (c *Context) AttachShader(program, shader uint32) error {
	p, s, err := c.programShader(program, shader)
	if err != nil {
		return err
	}
	c.gl.AttachShader(p, s)
	return nil
}

// DetachShader detaches shader from program.
func (c *Context) DetachShader(program, shader uint32) error {
	p, s, err := c.programShader(program, shader)
	if err != nil {
		return err
	}
	c.gl.DetachShader(p, s)
	return nil
}

// ShaderSource replaces the source of shader h with length bytes at ptr.
func (c *Context) ShaderSource(h, ptr, length uint32) error {
	s, err := c.shaders.Resolve(resource.Handle[glapi.Shader](h))
	if err != nil {
		return err
	}
	src, err := c.mem.ReadString(ptr, length)
	if err != nil {
		return err
	}
	c.gl.ShaderSource(s, src)
	return nil
}

// CompileShader compiles shader h and reports a failed compile as
// errors.KindCompileFailure with the host's info log. The shader stays
// allocated either way.
func (c *Context) CompileShader(h uint32) error {
	s, err := c.shaders.Resolve(resource.Handle[glapi.Shader](h))
	if err != nil {
		return err
	}
	c.gl.CompileShader(s)
	if c.gl.GetShaderParameter(s, glapi.COMPILE_STATUS) != 0 {
		return nil
	}

	log := c.gl.GetShaderInfoLog(s)
	Logger().Warn("shader compile failed",
		zap.Uint32("handle", h),
		zap.String("log", log))
	return errors.CompileFailure(h, log)
}

// LinkProgram links program h and reports a failed link as
// errors.KindLinkFailure with the host's info log.
func (c *Context) LinkProgram(h uint32) error {
	p, err := c.programs.Resolve(resource.Handle[glapi.Program](h))
	if err != nil {
		return err
	}
	c.gl.LinkProgram(p)
	if c.gl.GetProgramParameter(p, glapi.LINK_STATUS) != 0 {
		return nil
	}

	log := c.gl.GetProgramInfoLog(p)
	Logger().Warn("program link failed",
		zap.Uint32("handle", h),
		zap.String("log", log))
	return errors.LinkFailure(h, log)
}

func (c *Context) programShader(program, shader uint32) (glapi.Program, glapi.Shader, error) {
	p, err := c.programs.Resolve(resource.Handle[glapi.Program](program))
	if err != nil {
		return 0, 0, err
	}
	s, err := c.shaders.Resolve(resource.Handle[glapi.Shader](shader))
	if err != nil {
		return 0, 0, err
	}
	return p, s, nil
}

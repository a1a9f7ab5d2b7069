package bridge

import (
	"github.com/wippyai/glbridge/glapi"
	"github.com/wippyai/glbridge/resource"
)

// GetError returns and clears the host's sticky error flag.
func (c *Context) GetError() uint32 {
	return c.gl.GetError()
}

// GetAttribLocation looks up attribute name in program h.
// The result is forwarded as-is, -1 included.
func (c *Context) GetAttribLocation(h, ptr, length uint32) (int32, error) {
	p, err := c.programs.Resolve(resource.Handle[glapi.Program](h))
	if err != nil {
		return 0, err
	}
	name, err := c.mem.ReadString(ptr, length)
	if err != nil {
		return 0, err
	}
	return c.gl.GetAttribLocation(p, name), nil
}

// GetUniformLocation looks up uniform name in program h and returns a
// uniform-location handle. A handle is allocated even when the host reports
// no such uniform; uploads through it are then ignored by the host.
func (c *Context) GetUniformLocation(h, ptr, length uint32) (uint32, error) {
	p, err := c.programs.Resolve(resource.Handle[glapi.Program](h))
	if err != nil {
		return 0, err
	}
	name, err := c.mem.ReadString(ptr, length)
	if err != nil {
		return 0, err
	}
	loc := c.gl.GetUniformLocation(p, name)
	return createObject(c.uniforms, func() (glapi.UniformLocation, error) {
		return loc, nil
	}, nil)
}

// CheckFramebufferStatus reports the completeness of the framebuffer bound to target.
func (c *Context) CheckFramebufferStatus(target uint32) uint32 {
	return c.gl.CheckFramebufferStatus(target)
}

package bridge

import (
	"github.com/wippyai/glbridge/glapi"
	"github.com/wippyai/glbridge/resource"
)

// BufferData uploads count float32 values at ptr to the buffer bound to target.
func (c *Context) BufferData(target, count, ptr, usage uint32) error {
	data, err := c.mem.ReadFloat32s(ptr, count)
	if err != nil {
		return err
	}
	c.gl.BufferData(target, data, usage)
	return nil
}

// TexImage2D specifies a texture image. A zero length passes no pixel data,
// leaving the storage uninitialized; ptr is ignored in that case.
func (c *Context) TexImage2D(target uint32, level, internalFormat, width, height, border int32, format, xtype, ptr, length uint32) error {
	pixels, err := c.mem.ReadBytes(ptr, length)
	if err != nil {
		return err
	}
	c.gl.TexImage2D(target, level, internalFormat, width, height, border, format, xtype, pixels)
	return nil
}

// FramebufferTexture2D attaches texture h to the bound framebuffer.
// resource.Null detaches.
func (c *Context) FramebufferTexture2D(target, attachment, textarget, h uint32, level int32) error {
	tex, err := resolveNullable(c.textures, h)
	if err != nil {
		return err
	}
	c.gl.FramebufferTexture2D(target, attachment, textarget, tex, level)
	return nil
}

// Uniform1f sets a float uniform.
func (c *Context) Uniform1f(h uint32, x float32) error {
	loc, err := c.uniform(h)
	if err != nil {
		return err
	}
	c.gl.Uniform1f(loc, x)
	return nil
}

// Uniform1i sets an int or sampler uniform.
func (c *Context) Uniform1i(h uint32, x int32) error {
	loc, err := c.uniform(h)
	if err != nil {
		return err
	}
	c.gl.Uniform1i(loc, x)
	return nil
}

// Uniform2f sets a vec2 uniform.
func (c *Context) Uniform2f(h uint32, x, y float32) error {
	loc, err := c.uniform(h)
	if err != nil {
		return err
	}
	c.gl.Uniform2f(loc, x, y)
	return nil
}

// Uniform3f sets a vec3 uniform.
func (c *Context) Uniform3f(h uint32, x, y, z float32) error {
	loc, err := c.uniform(h)
	if err != nil {
		return err
	}
	c.gl.Uniform3f(loc, x, y, z)
	return nil
}

// Uniform4f sets a vec4 uniform.
func (c *Context) Uniform4f(h uint32, x, y, z, w float32) error {
	loc, err := c.uniform(h)
	if err != nil {
		return err
	}
	c.gl.Uniform4f(loc, x, y, z, w)
	return nil
}

// UniformMatrix4fv uploads count 4x4 matrices read from ptr.
func (c *Context) UniformMatrix4fv(h, count uint32, transpose bool, ptr uint32) error {
	loc, err := c.uniform(h)
	if err != nil {
		return err
	}
	data, err := c.mem.ReadMatrices(ptr, count)
	if err != nil {
		return err
	}
	c.gl.UniformMatrix4fv(loc, transpose, data)
	return nil
}

func (c *Context) uniform(h uint32) (glapi.UniformLocation, error) {
	return c.uniforms.Resolve(resource.Handle[glapi.UniformLocation](h))
}

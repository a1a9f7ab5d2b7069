package bridge

// ActiveTexture selects the active texture unit.
func (c *Context) ActiveTexture(texture uint32) error {
	c.gl.ActiveTexture(texture)
	return nil
}

// BindBuffer binds the buffer behind h to target. resource.Null unbinds.
func (c *Context) BindBuffer(target, h uint32) error {
	buf, err := resolveNullable(c.buffers, h)
	if err != nil {
		return err
	}
	c.gl.BindBuffer(target, buf)
	return nil
}

// BindTexture binds the texture behind h to target. resource.Null unbinds.
func (c *Context) BindTexture(target, h uint32) error {
	tex, err := resolveNullable(c.textures, h)
	if err != nil {
		return err
	}
	c.gl.BindTexture(target, tex)
	return nil
}

// BindFramebuffer binds the framebuffer behind h to target.
// resource.Null restores the default framebuffer.
func (c *Context) BindFramebuffer(target, h uint32) error {
	fb, err := resolveNullable(c.framebuffers, h)
	if err != nil {
		return err
	}
	c.gl.BindFramebuffer(target, fb)
	return nil
}

// UseProgram installs the program behind h. resource.Null uninstalls.
func (c *Context) UseProgram(h uint32) error {
	p, err := resolveNullable(c.programs, h)
	if err != nil {
		return err
	}
	c.gl.UseProgram(p)
	return nil
}

// BlendFunc sets the source and destination blend factors.
func (c *Context) BlendFunc(sfactor, dfactor uint32) error {
	c.gl.BlendFunc(sfactor, dfactor)
	return nil
}

// DepthFunc sets the depth comparison function.
func (c *Context) DepthFunc(fn uint32) error {
	c.gl.DepthFunc(fn)
	return nil
}

// FrontFace sets the winding of front-facing polygons.
func (c *Context) FrontFace(mode uint32) error {
	c.gl.FrontFace(mode)
	return nil
}

// Enable turns on a server-side capability.
func (c *Context) Enable(capability uint32) error {
	c.gl.Enable(capability)
	return nil
}

// Disable turns off a server-side capability.
func (c *Context) Disable(capability uint32) error {
	c.gl.Disable(capability)
	return nil
}

// EnableVertexAttribArray enables the attribute array at index.
func (c *Context) EnableVertexAttribArray(index uint32) error {
	c.gl.EnableVertexAttribArray(index)
	return nil
}

// DisableVertexAttribArray disables the attribute array at index.
func (c *Context) DisableVertexAttribArray(index uint32) error {
	c.gl.DisableVertexAttribArray(index)
	return nil
}

// VertexAttribPointer describes attribute index within the bound buffer.
// offset is a byte offset into that buffer, not a guest address.
func (c *Context) VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride, offset int32) error {
	c.gl.VertexAttribPointer(index, size, xtype, normalized, stride, offset)
	return nil
}

// PixelStorei sets a pixel storage mode.
func (c *Context) PixelStorei(pname uint32, param int32) error {
	c.gl.PixelStorei(pname, param)
	return nil
}

// TexParameterf sets a float parameter of the bound texture.
func (c *Context) TexParameterf(target, pname uint32, param float32) error {
	c.gl.TexParameterf(target, pname, param)
	return nil
}

// TexParameteri sets an integer parameter of the bound texture.
func (c *Context) TexParameteri(target, pname uint32, param int32) error {
	c.gl.TexParameteri(target, pname, param)
	return nil
}

// Viewport sets the viewport rectangle.
func (c *Context) Viewport(x, y, width, height int32) error {
	c.gl.Viewport(x, y, width, height)
	return nil
}

// Scissor sets the scissor box.
func (c *Context) Scissor(x, y, width, height int32) error {
	c.gl.Scissor(x, y, width, height)
	return nil
}

// ClearColor sets the color used by Clear.
func (c *Context) ClearColor(r, g, b, a float32) error {
	c.gl.ClearColor(r, g, b, a)
	return nil
}

// Clear clears the buffers selected by mask.
func (c *Context) Clear(mask uint32) error {
	c.gl.Clear(mask)
	return nil
}

// DrawArrays renders count vertices starting at first.
func (c *Context) DrawArrays(mode uint32, first, count int32) error {
	c.gl.DrawArrays(mode, first, count)
	return nil
}

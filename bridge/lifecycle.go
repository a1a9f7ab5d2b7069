package bridge

import "github.com/wippyai/glbridge/glapi"

// CreateShader allocates a shader of shaderType and returns its handle.
func (c *Context) CreateShader(shaderType uint32) (uint32, error) {
	return createObject(c.shaders, func() (glapi.Shader, error) {
		return c.gl.CreateShader(shaderType)
	}, c.gl.DeleteShader)
}

// CreateProgram allocates a program and returns its handle.
func (c *Context) CreateProgram() (uint32, error) {
	return createObject(c.programs, c.gl.CreateProgram, c.gl.DeleteProgram)
}

// CreateBuffer allocates a buffer and returns its handle.
func (c *Context) CreateBuffer() (uint32, error) {
	return createObject(c.buffers, c.gl.CreateBuffer, c.gl.DeleteBuffer)
}

// CreateTexture allocates a texture and returns its handle.
func (c *Context) CreateTexture() (uint32, error) {
	return createObject(c.textures, c.gl.CreateTexture, c.gl.DeleteTexture)
}

// CreateFramebuffer allocates a framebuffer and returns its handle.
func (c *Context) CreateFramebuffer() (uint32, error) {
	return createObject(c.framebuffers, c.gl.CreateFramebuffer, c.gl.DeleteFramebuffer)
}

// DeleteShader deletes the shader behind h and retires the handle.
func (c *Context) DeleteShader(h uint32) error {
	return deleteObject(c.shaders, h, c.gl.DeleteShader)
}

// DeleteProgram deletes the program behind h and retires the handle.
func (c *Context) DeleteProgram(h uint32) error {
	return deleteObject(c.programs, h, c.gl.DeleteProgram)
}

// DeleteBuffer deletes the buffer behind h and retires the handle.
func (c *Context) DeleteBuffer(h uint32) error {
	return deleteObject(c.buffers, h, c.gl.DeleteBuffer)
}

// DeleteTexture deletes the texture behind h and retires the handle.
func (c *Context) DeleteTexture(h uint32) error {
	return deleteObject(c.textures, h, c.gl.DeleteTexture)
}

// DeleteFramebuffer deletes the framebuffer behind h and retires the handle.
func (c *Context) DeleteFramebuffer(h uint32) error {
	return deleteObject(c.framebuffers, h, c.gl.DeleteFramebuffer)
}

package glapi

// Host object types. Each is the native object name of the implementation;
// the zero value is the default object (unbinds when passed to a bind call).
type (
	Shader      uint32
	Program     uint32
	Buffer      uint32
	Texture     uint32
	Framebuffer uint32
)

// UniformLocation is a host uniform location. NoLocation means the uniform
// is not active; uniform calls against it are silently ignored by the host.
type UniformLocation int32

// NoLocation is the location returned for unknown uniforms and attributes.
const NoLocation UniformLocation = -1

// GL is the host graphics API.
//
// Create methods return an error only for host resource exhaustion.
// All other failures are reported through the sticky error flag.
type GL interface {
	ActiveTexture(texture uint32)
	AttachShader(program Program, shader Shader)
	BindBuffer(target uint32, buffer Buffer)
	BindFramebuffer(target uint32, framebuffer Framebuffer)
	BindTexture(target uint32, texture Texture)
	BlendFunc(sfactor, dfactor uint32)
	BufferData(target uint32, data []float32, usage uint32)
	CheckFramebufferStatus(target uint32) uint32
	Clear(mask uint32)
	ClearColor(r, g, b, a float32)
	CompileShader(shader Shader)
	CreateBuffer() (Buffer, error)
	CreateFramebuffer() (Framebuffer, error)
	CreateProgram() (Program, error)
	CreateShader(shaderType uint32) (Shader, error)
	CreateTexture() (Texture, error)
	DeleteBuffer(buffer Buffer)
	DeleteFramebuffer(framebuffer Framebuffer)
	DeleteProgram(program Program)
	DeleteShader(shader Shader)
	DeleteTexture(texture Texture)
	DepthFunc(fn uint32)
	DetachShader(program Program, shader Shader)
	Disable(capability uint32)
	DisableVertexAttribArray(index uint32)
	DrawArrays(mode uint32, first, count int32)
	Enable(capability uint32)
	EnableVertexAttribArray(index uint32)
	FramebufferTexture2D(target, attachment, textarget uint32, texture Texture, level int32)
	FrontFace(mode uint32)
	GetAttribLocation(program Program, name string) int32
	GetError() uint32
	GetProgramInfoLog(program Program) string
	GetProgramParameter(program Program, pname uint32) int32
	GetShaderInfoLog(shader Shader) string
	GetShaderParameter(shader Shader, pname uint32) int32
	GetUniformLocation(program Program, name string) UniformLocation
	LinkProgram(program Program)
	PixelStorei(pname uint32, param int32)
	Scissor(x, y, width, height int32)
	ShaderSource(shader Shader, source string)
	// TexImage2D allocates texture storage. A nil pixels slice means no
	// initial contents; an empty non-nil slice is a zero-length upload.
	TexImage2D(target uint32, level, internalFormat, width, height, border int32, format, xtype uint32, pixels []byte)
	TexParameterf(target, pname uint32, param float32)
	TexParameteri(target, pname uint32, param int32)
	Uniform1f(location UniformLocation, x float32)
	Uniform1i(location UniformLocation, x int32)
	Uniform2f(location UniformLocation, x, y float32)
	Uniform3f(location UniformLocation, x, y, z float32)
	Uniform4f(location UniformLocation, x, y, z, w float32)
	// UniformMatrix4fv uploads len(value)/16 column-major 4x4 matrices.
	UniformMatrix4fv(location UniformLocation, transpose bool, value []float32)
	UseProgram(program Program)
	VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride, offset int32)
	Viewport(x, y, width, height int32)
}

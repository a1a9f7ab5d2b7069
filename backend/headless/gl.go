package headless

import (
	"errors"
	"sync"

	"github.com/wippyai/glbridge/glapi"
)

// ErrOutOfMemory is returned by Create* once the object limit is reached.
var ErrOutOfMemory = errors.New("headless: object limit reached")

// GL is an in-memory glapi.GL.
type GL struct {
	mu sync.Mutex

	shaders      names[shaderObject]
	programs     names[programObject]
	buffers      names[bufferObject]
	textures     names[textureObject]
	framebuffers names[framebufferObject]

	limit int
	live  int

	err         uint32
	current     uint32
	activeUnit  uint32
	buffersOn   map[uint32]uint32
	texturesOn  map[uint32]uint32
	framebuffer uint32
	enabled     map[uint32]bool
	attribsOn   map[uint32]bool
	clearColor  [4]float32
	viewport    [4]int32
	draws       int

	tracing bool
	seq     uint64
	trace   []Call
}

var _ glapi.GL = (*GL)(nil)

// Option configures a GL.
type Option func(*GL)

// WithObjectLimit caps the number of live objects across all kinds.
func WithObjectLimit(n int) Option {
	return func(g *GL) {
		g.limit = n
	}
}

// WithoutTrace disables call recording.
func WithoutTrace() Option {
	return func(g *GL) {
		g.tracing = false
	}
}

// New creates a GL with no objects and tracing enabled.
func New(opts ...Option) *GL {
	g := &GL{
		shaders:      newNames[shaderObject](),
		programs:     newNames[programObject](),
		buffers:      newNames[bufferObject](),
		textures:     newNames[textureObject](),
		framebuffers: newNames[framebufferObject](),
		buffersOn:    make(map[uint32]uint32),
		texturesOn:   make(map[uint32]uint32),
		enabled:      make(map[uint32]bool),
		attribsOn:    make(map[uint32]bool),
		tracing:      true,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// setError records code unless an earlier error is still pending.
func (g *GL) setError(code uint32) {
	if g.err == glapi.NO_ERROR {
		g.err = code
	}
}

func (g *GL) reserve() error {
	if g.limit > 0 && g.live >= g.limit {
		return ErrOutOfMemory
	}
	g.live++
	return nil
}

func (g *GL) release(removed bool) {
	if removed {
		g.live--
		return
	}
	g.setError(glapi.INVALID_VALUE)
}

// Live returns the number of live objects across all kinds.
func (g *GL) Live() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.live
}

// Draws returns the number of DrawArrays calls that passed validation.
func (g *GL) Draws() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.draws
}

// PendingError returns the sticky error without clearing it.
func (g *GL) PendingError() uint32 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.err
}

// ClearColorValue returns the current clear color.
func (g *GL) ClearColorValue() [4]float32 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.clearColor
}

// Buffer returns a copy of the data store of buffer name.
func (g *GL) Buffer(name glapi.Buffer) (BufferInfo, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	b, ok := g.buffers.get(uint32(name))
	if !ok {
		return BufferInfo{}, false
	}
	return BufferInfo{Data: append([]float32(nil), b.data...), Usage: b.usage}, true
}

// Texture returns the current image of texture name.
func (g *GL) Texture(name glapi.Texture) (TextureInfo, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	t, ok := g.textures.get(uint32(name))
	if !ok {
		return TextureInfo{}, false
	}
	return TextureInfo{Width: t.width, Height: t.height, Format: t.format, Pixels: t.pixels}, true
}

// UniformValue returns the last value uploaded to uniform name of program.
func (g *GL) UniformValue(program glapi.Program, name string) ([]float32, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	p, ok := g.programs.get(uint32(program))
	if !ok || !p.linked {
		return nil, false
	}
	loc, ok := p.uniforms[name]
	if !ok {
		return nil, false
	}
	v, ok := p.values[loc]
	return v, ok
}

func (g *GL) ActiveTexture(texture uint32) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.record("ActiveTexture", texture)
	if texture < glapi.TEXTURE0 || texture >= glapi.TEXTURE0+32 {
		g.setError(glapi.INVALID_ENUM)
		return
	}
	g.activeUnit = texture - glapi.TEXTURE0
}

func (g *GL) AttachShader(program glapi.Program, shader glapi.Shader) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.record("AttachShader", uint32(program), uint32(shader))
	p, ok := g.programs.get(uint32(program))
	if !ok {
		g.setError(glapi.INVALID_VALUE)
		return
	}
	if _, ok := g.shaders.get(uint32(shader)); !ok {
		g.setError(glapi.INVALID_VALUE)
		return
	}
	for _, s := range p.shaders {
		if s == uint32(shader) {
			g.setError(glapi.INVALID_OPERATION)
			return
		}
	}
	p.shaders = append(p.shaders, uint32(shader))
}

func (g *GL) BindBuffer(target uint32, buffer glapi.Buffer) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.record("BindBuffer", target, uint32(buffer))
	if target != glapi.ARRAY_BUFFER && target != glapi.ELEMENT_ARRAY_BUFFER {
		g.setError(glapi.INVALID_ENUM)
		return
	}
	if buffer != 0 {
		if _, ok := g.buffers.get(uint32(buffer)); !ok {
			g.setError(glapi.INVALID_VALUE)
			return
		}
	}
	g.buffersOn[target] = uint32(buffer)
}

func (g *GL) BindFramebuffer(target uint32, framebuffer glapi.Framebuffer) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.record("BindFramebuffer", target, uint32(framebuffer))
	if target != glapi.FRAMEBUFFER {
		g.setError(glapi.INVALID_ENUM)
		return
	}
	if framebuffer != 0 {
		if _, ok := g.framebuffers.get(uint32(framebuffer)); !ok {
			g.setError(glapi.INVALID_VALUE)
			return
		}
	}
	g.framebuffer = uint32(framebuffer)
}

func (g *GL) BindTexture(target uint32, texture glapi.Texture) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.record("BindTexture", target, uint32(texture))
	if target != glapi.TEXTURE_2D {
		g.setError(glapi.INVALID_ENUM)
		return
	}
	if texture != 0 {
		if _, ok := g.textures.get(uint32(texture)); !ok {
			g.setError(glapi.INVALID_VALUE)
			return
		}
	}
	g.texturesOn[g.activeUnit] = uint32(texture)
}

func (g *GL) BlendFunc(sfactor, dfactor uint32) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.record("BlendFunc", sfactor, dfactor)
}

func (g *GL) BufferData(target uint32, data []float32, usage uint32) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.record("BufferData", target, len(data), usage)
	name, ok := g.buffersOn[target]
	if !ok || name == 0 {
		g.setError(glapi.INVALID_OPERATION)
		return
	}
	b, _ := g.buffers.get(name)
	// data may alias guest memory.
	b.data = append(b.data[:0:0], data...)
	b.usage = usage
}

func (g *GL) CheckFramebufferStatus(target uint32) uint32 {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.record("CheckFramebufferStatus", target)
	if target != glapi.FRAMEBUFFER {
		g.setError(glapi.INVALID_ENUM)
		return 0
	}
	if g.framebuffer == 0 {
		return glapi.FRAMEBUFFER_COMPLETE
	}
	fb, _ := g.framebuffers.get(g.framebuffer)
	if fb.color == 0 {
		return glapi.FRAMEBUFFER_INCOMPLETE_MISSING_ATTACHMENT
	}
	return glapi.FRAMEBUFFER_COMPLETE
}

func (g *GL) Clear(mask uint32) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.record("Clear", mask)
	if mask&^(glapi.COLOR_BUFFER_BIT|glapi.DEPTH_BUFFER_BIT|glapi.STENCIL_BUFFER_BIT) != 0 {
		g.setError(glapi.INVALID_VALUE)
	}
}

func (g *GL) ClearColor(r, gr, b, a float32) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.record("ClearColor", r, gr, b, a)
	g.clearColor = [4]float32{r, gr, b, a}
}

func (g *GL) CreateBuffer() (glapi.Buffer, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.record("CreateBuffer")
	if err := g.reserve(); err != nil {
		return 0, err
	}
	return glapi.Buffer(g.buffers.add(&bufferObject{})), nil
}

func (g *GL) CreateFramebuffer() (glapi.Framebuffer, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.record("CreateFramebuffer")
	if err := g.reserve(); err != nil {
		return 0, err
	}
	return glapi.Framebuffer(g.framebuffers.add(&framebufferObject{})), nil
}

func (g *GL) CreateProgram() (glapi.Program, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.record("CreateProgram")
	if err := g.reserve(); err != nil {
		return 0, err
	}
	return glapi.Program(g.programs.add(&programObject{})), nil
}

// CreateShader returns name 0 and sets INVALID_ENUM for an unknown type.
func (g *GL) CreateShader(shaderType uint32) (glapi.Shader, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.record("CreateShader", shaderType)
	if shaderType != glapi.VERTEX_SHADER && shaderType != glapi.FRAGMENT_SHADER {
		g.setError(glapi.INVALID_ENUM)
		return 0, nil
	}
	if err := g.reserve(); err != nil {
		return 0, err
	}
	return glapi.Shader(g.shaders.add(&shaderObject{kind: shaderType})), nil
}

func (g *GL) CreateTexture() (glapi.Texture, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.record("CreateTexture")
	if err := g.reserve(); err != nil {
		return 0, err
	}
	return glapi.Texture(g.textures.add(&textureObject{params: make(map[uint32]float32)})), nil
}

func (g *GL) DeleteBuffer(buffer glapi.Buffer) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.record("DeleteBuffer", uint32(buffer))
	if buffer == 0 {
		return
	}
	g.release(g.buffers.remove(uint32(buffer)))
	for target, name := range g.buffersOn {
		if name == uint32(buffer) {
			g.buffersOn[target] = 0
		}
	}
}

func (g *GL) DeleteFramebuffer(framebuffer glapi.Framebuffer) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.record("DeleteFramebuffer", uint32(framebuffer))
	if framebuffer == 0 {
		return
	}
	g.release(g.framebuffers.remove(uint32(framebuffer)))
	if g.framebuffer == uint32(framebuffer) {
		g.framebuffer = 0
	}
}

func (g *GL) DeleteProgram(program glapi.Program) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.record("DeleteProgram", uint32(program))
	if program == 0 {
		return
	}
	g.release(g.programs.remove(uint32(program)))
	if g.current == uint32(program) {
		g.current = 0
	}
}

func (g *GL) DeleteShader(shader glapi.Shader) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.record("DeleteShader", uint32(shader))
	if shader == 0 {
		return
	}
	g.release(g.shaders.remove(uint32(shader)))
}

func (g *GL) DeleteTexture(texture glapi.Texture) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.record("DeleteTexture", uint32(texture))
	if texture == 0 {
		return
	}
	g.release(g.textures.remove(uint32(texture)))
	for unit, name := range g.texturesOn {
		if name == uint32(texture) {
			g.texturesOn[unit] = 0
		}
	}
}

func (g *GL) DepthFunc(fn uint32) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.record("DepthFunc", fn)
}

func (g *GL) DetachShader(program glapi.Program, shader glapi.Shader) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.record("DetachShader", uint32(program), uint32(shader))
	p, ok := g.programs.get(uint32(program))
	if !ok {
		g.setError(glapi.INVALID_VALUE)
		return
	}
	for i, s := range p.shaders {
		if s == uint32(shader) {
			p.shaders = append(p.shaders[:i], p.shaders[i+1:]...)
			return
		}
	}
	g.setError(glapi.INVALID_OPERATION)
}

func (g *GL) Disable(capability uint32) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.record("Disable", capability)
	g.enabled[capability] = false
}

func (g *GL) DisableVertexAttribArray(index uint32) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.record("DisableVertexAttribArray", index)
	g.attribsOn[index] = false
}

// DrawArrays requires a linked current program.
func (g *GL) DrawArrays(mode uint32, first, count int32) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.record("DrawArrays", mode, first, count)
	if mode > glapi.TRIANGLE_FAN {
		g.setError(glapi.INVALID_ENUM)
		return
	}
	if first < 0 || count < 0 {
		g.setError(glapi.INVALID_VALUE)
		return
	}
	p, ok := g.programs.get(g.current)
	if !ok || !p.linked {
		g.setError(glapi.INVALID_OPERATION)
		return
	}
	g.draws++
}

func (g *GL) Enable(capability uint32) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.record("Enable", capability)
	g.enabled[capability] = true
}

func (g *GL) EnableVertexAttribArray(index uint32) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.record("EnableVertexAttribArray", index)
	g.attribsOn[index] = true
}

func (g *GL) FramebufferTexture2D(target, attachment, textarget uint32, texture glapi.Texture, level int32) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.record("FramebufferTexture2D", target, attachment, textarget, uint32(texture), level)
	if target != glapi.FRAMEBUFFER {
		g.setError(glapi.INVALID_ENUM)
		return
	}
	fb, ok := g.framebuffers.get(g.framebuffer)
	if !ok {
		g.setError(glapi.INVALID_OPERATION)
		return
	}
	if texture != 0 {
		if _, ok := g.textures.get(uint32(texture)); !ok {
			g.setError(glapi.INVALID_VALUE)
			return
		}
	}
	if attachment == glapi.COLOR_ATTACHMENT0 {
		fb.color = uint32(texture)
	}
}

func (g *GL) FrontFace(mode uint32) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.record("FrontFace", mode)
	if mode != glapi.CW && mode != glapi.CCW {
		g.setError(glapi.INVALID_ENUM)
	}
}

func (g *GL) GetAttribLocation(program glapi.Program, name string) int32 {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.record("GetAttribLocation", uint32(program), name)
	p, ok := g.programs.get(uint32(program))
	if !ok {
		g.setError(glapi.INVALID_VALUE)
		return -1
	}
	if !p.linked {
		g.setError(glapi.INVALID_OPERATION)
		return -1
	}
	if loc, ok := p.attribs[name]; ok {
		return loc
	}
	return -1
}

// GetError returns the sticky error and clears it.
func (g *GL) GetError() uint32 {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.record("GetError")
	code := g.err
	g.err = glapi.NO_ERROR
	return code
}

func (g *GL) GetProgramInfoLog(program glapi.Program) string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.record("GetProgramInfoLog", uint32(program))
	p, ok := g.programs.get(uint32(program))
	if !ok {
		g.setError(glapi.INVALID_VALUE)
		return ""
	}
	return p.log
}

func (g *GL) GetProgramParameter(program glapi.Program, pname uint32) int32 {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.record("GetProgramParameter", uint32(program), pname)
	p, ok := g.programs.get(uint32(program))
	if !ok {
		g.setError(glapi.INVALID_VALUE)
		return 0
	}
	switch pname {
	case glapi.LINK_STATUS:
		return boolParam(p.linked)
	case glapi.DELETE_STATUS:
		return 0
	default:
		g.setError(glapi.INVALID_ENUM)
		return 0
	}
}

func (g *GL) GetShaderInfoLog(shader glapi.Shader) string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.record("GetShaderInfoLog", uint32(shader))
	s, ok := g.shaders.get(uint32(shader))
	if !ok {
		g.setError(glapi.INVALID_VALUE)
		return ""
	}
	return s.log
}

func (g *GL) GetShaderParameter(shader glapi.Shader, pname uint32) int32 {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.record("GetShaderParameter", uint32(shader), pname)
	s, ok := g.shaders.get(uint32(shader))
	if !ok {
		g.setError(glapi.INVALID_VALUE)
		return 0
	}
	switch pname {
	case glapi.COMPILE_STATUS:
		return boolParam(s.compiled)
	case glapi.DELETE_STATUS:
		return 0
	default:
		g.setError(glapi.INVALID_ENUM)
		return 0
	}
}

func (g *GL) GetUniformLocation(program glapi.Program, name string) glapi.UniformLocation {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.record("GetUniformLocation", uint32(program), name)
	p, ok := g.programs.get(uint32(program))
	if !ok {
		g.setError(glapi.INVALID_VALUE)
		return glapi.NoLocation
	}
	if !p.linked {
		g.setError(glapi.INVALID_OPERATION)
		return glapi.NoLocation
	}
	if loc, ok := p.uniforms[name]; ok {
		return glapi.UniformLocation(loc)
	}
	return glapi.NoLocation
}

func (g *GL) LinkProgram(program glapi.Program) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.record("LinkProgram", uint32(program))
	p, ok := g.programs.get(uint32(program))
	if !ok {
		g.setError(glapi.INVALID_VALUE)
		return
	}
	g.link(p)
}

func (g *GL) PixelStorei(pname uint32, param int32) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.record("PixelStorei", pname, param)
	if pname == glapi.UNPACK_ALIGNMENT {
		switch param {
		case 1, 2, 4, 8:
		default:
			g.setError(glapi.INVALID_VALUE)
		}
	}
}

func (g *GL) Scissor(x, y, width, height int32) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.record("Scissor", x, y, width, height)
	if width < 0 || height < 0 {
		g.setError(glapi.INVALID_VALUE)
	}
}

func (g *GL) ShaderSource(shader glapi.Shader, source string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.record("ShaderSource", uint32(shader), source)
	s, ok := g.shaders.get(uint32(shader))
	if !ok {
		g.setError(glapi.INVALID_VALUE)
		return
	}
	s.source = source
}

func (g *GL) CompileShader(shader glapi.Shader) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.record("CompileShader", uint32(shader))
	s, ok := g.shaders.get(uint32(shader))
	if !ok {
		g.setError(glapi.INVALID_VALUE)
		return
	}
	s.log = compile(s.source)
	s.compiled = s.log == ""
}

// TexImage2D stores a copy of pixels in the texture bound to the active unit.
// Nil pixels allocate storage without contents.
func (g *GL) TexImage2D(target uint32, level, internalFormat, width, height, border int32, format, xtype uint32, pixels []byte) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.record("TexImage2D", target, level, internalFormat, width, height, border, format, xtype, len(pixels))
	if target != glapi.TEXTURE_2D {
		g.setError(glapi.INVALID_ENUM)
		return
	}
	if width < 0 || height < 0 || border != 0 || level < 0 {
		g.setError(glapi.INVALID_VALUE)
		return
	}
	t, ok := g.textures.get(g.texturesOn[g.activeUnit])
	if !ok {
		g.setError(glapi.INVALID_OPERATION)
		return
	}
	if level > 0 {
		return
	}
	t.width, t.height, t.format = width, height, format
	if pixels == nil {
		t.pixels = nil
		return
	}
	t.pixels = append([]byte(nil), pixels...)
}

func (g *GL) TexParameterf(target, pname uint32, param float32) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.record("TexParameterf", target, pname, param)
	g.texParameter(target, pname, param)
}

func (g *GL) TexParameteri(target, pname uint32, param int32) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.record("TexParameteri", target, pname, param)
	g.texParameter(target, pname, float32(param))
}

func (g *GL) texParameter(target, pname uint32, param float32) {
	if target != glapi.TEXTURE_2D {
		g.setError(glapi.INVALID_ENUM)
		return
	}
	t, ok := g.textures.get(g.texturesOn[g.activeUnit])
	if !ok {
		g.setError(glapi.INVALID_OPERATION)
		return
	}
	t.params[pname] = param
}

func (g *GL) Uniform1f(location glapi.UniformLocation, x float32) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.record("Uniform1f", int32(location), x)
	g.uniform(location, []float32{x})
}

func (g *GL) Uniform1i(location glapi.UniformLocation, x int32) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.record("Uniform1i", int32(location), x)
	g.uniform(location, []float32{float32(x)})
}

func (g *GL) Uniform2f(location glapi.UniformLocation, x, y float32) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.record("Uniform2f", int32(location), x, y)
	g.uniform(location, []float32{x, y})
}

func (g *GL) Uniform3f(location glapi.UniformLocation, x, y, z float32) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.record("Uniform3f", int32(location), x, y, z)
	g.uniform(location, []float32{x, y, z})
}

func (g *GL) Uniform4f(location glapi.UniformLocation, x, y, z, w float32) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.record("Uniform4f", int32(location), x, y, z, w)
	g.uniform(location, []float32{x, y, z, w})
}

func (g *GL) UniformMatrix4fv(location glapi.UniformLocation, transpose bool, value []float32) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.record("UniformMatrix4fv", int32(location), transpose, len(value))
	if transpose {
		g.setError(glapi.INVALID_VALUE)
		return
	}
	if len(value)%16 != 0 {
		g.setError(glapi.INVALID_VALUE)
		return
	}
	g.uniform(location, append([]float32(nil), value...))
}

// uniform stores v for location in the current program. Location -1 is ignored.
func (g *GL) uniform(location glapi.UniformLocation, v []float32) {
	if location == glapi.NoLocation {
		return
	}
	p, ok := g.programs.get(g.current)
	if !ok || !p.linked || location < 0 || int(location) >= len(p.uniforms) {
		g.setError(glapi.INVALID_OPERATION)
		return
	}
	p.values[int32(location)] = v
}

func (g *GL) UseProgram(program glapi.Program) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.record("UseProgram", uint32(program))
	if program == 0 {
		g.current = 0
		return
	}
	p, ok := g.programs.get(uint32(program))
	if !ok {
		g.setError(glapi.INVALID_VALUE)
		return
	}
	if !p.linked {
		g.setError(glapi.INVALID_OPERATION)
		return
	}
	g.current = uint32(program)
}

func (g *GL) VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride, offset int32) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.record("VertexAttribPointer", index, size, xtype, normalized, stride, offset)
	if size < 1 || size > 4 || stride < 0 || offset < 0 {
		g.setError(glapi.INVALID_VALUE)
		return
	}
	if g.buffersOn[glapi.ARRAY_BUFFER] == 0 {
		g.setError(glapi.INVALID_OPERATION)
	}
}

func (g *GL) Viewport(x, y, width, height int32) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.record("Viewport", x, y, width, height)
	if width < 0 || height < 0 {
		g.setError(glapi.INVALID_VALUE)
		return
	}
	g.viewport = [4]int32{x, y, width, height}
}

func boolParam(b bool) int32 {
	if b {
		return 1
	}
	return 0
}

// ViewportValue returns the current viewport rectangle.
func (g *GL) ViewportValue() [4]int32 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.viewport
}

// IsEnabled reports whether capability was last enabled.
func (g *GL) IsEnabled(capability uint32) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.enabled[capability]
}

// AttribEnabled reports whether vertex attribute index was last enabled.
func (g *GL) AttribEnabled(index uint32) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.attribsOn[index]
}

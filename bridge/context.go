package bridge

import (
	"go.uber.org/zap"

	"github.com/wippyai/glbridge"
	"github.com/wippyai/glbridge/errors"
	"github.com/wippyai/glbridge/glapi"
	"github.com/wippyai/glbridge/marshal"
	"github.com/wippyai/glbridge/resource"
)

// Context is the bridge state for one graphics context and one guest.
// It is not safe for concurrent dispatch.
type Context struct {
	gl           glapi.GL
	mem          *marshal.Marshaller
	shaders      *resource.Table[glapi.Shader]
	programs     *resource.Table[glapi.Program]
	buffers      *resource.Table[glapi.Buffer]
	textures     *resource.Table[glapi.Texture]
	framebuffers *resource.Table[glapi.Framebuffer]
	uniforms     *resource.Table[glapi.UniformLocation]
	closed       bool
}

// Option configures a Context.
type Option func(*config)

type config struct {
	observers []resource.Observer
	marshal   []marshal.Option
	reuse     bool
}

// WithSlotReuse lets every handle table reissue deleted handles.
func WithSlotReuse() Option {
	return func(c *config) {
		c.reuse = true
	}
}

// WithObserver subscribes o to lifecycle events of every handle table.
func WithObserver(o resource.Observer) Option {
	return func(c *config) {
		c.observers = append(c.observers, o)
	}
}

// WithMaxStringLength limits shader sources and attribute/uniform names read
// from guest memory.
func WithMaxStringLength(n uint32) Option {
	return func(c *config) {
		c.marshal = append(c.marshal, marshal.WithMaxStringLength(n))
	}
}

// New creates a Context dispatching to gl and reading guest memory through mem.
// A nil gl means the host could not provide a graphics context.
func New(gl glapi.GL, mem glbridge.MemoryAccessor, opts ...Option) (*Context, error) {
	if gl == nil {
		return nil, errors.ContextUnavailable("no graphics context", nil)
	}

	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	var tableOpts []resource.TableOption
	if cfg.reuse {
		tableOpts = append(tableOpts, resource.WithSlotReuse())
	}
	for _, o := range cfg.observers {
		tableOpts = append(tableOpts, resource.WithObserver(o))
	}

	return &Context{
		gl:           gl,
		mem:          marshal.New(mem, cfg.marshal...),
		shaders:      resource.NewTable[glapi.Shader](resource.KindShader, tableOpts...),
		programs:     resource.NewTable[glapi.Program](resource.KindProgram, tableOpts...),
		buffers:      resource.NewTable[glapi.Buffer](resource.KindBuffer, tableOpts...),
		textures:     resource.NewTable[glapi.Texture](resource.KindTexture, tableOpts...),
		framebuffers: resource.NewTable[glapi.Framebuffer](resource.KindFramebuffer, tableOpts...),
		uniforms:     resource.NewTable[glapi.UniformLocation](resource.KindUniformLocation, tableOpts...),
	}, nil
}

// GL returns the host graphics API the context dispatches to.
func (c *Context) GL() glapi.GL {
	return c.gl
}

// TableStats holds the handle counts of one resource kind.
type TableStats struct {
	Kind   resource.Kind
	Live   int
	Issued int
}

// Stats reports live and issued handle counts per kind, in resource.Kinds order.
func (c *Context) Stats() []TableStats {
	return []TableStats{
		{Kind: resource.KindShader, Live: c.shaders.Len(), Issued: c.shaders.Issued()},
		{Kind: resource.KindProgram, Live: c.programs.Len(), Issued: c.programs.Issued()},
		{Kind: resource.KindBuffer, Live: c.buffers.Len(), Issued: c.buffers.Issued()},
		{Kind: resource.KindTexture, Live: c.textures.Len(), Issued: c.textures.Issued()},
		{Kind: resource.KindFramebuffer, Live: c.framebuffers.Len(), Issued: c.framebuffers.Issued()},
		{Kind: resource.KindUniformLocation, Live: c.uniforms.Len(), Issued: c.uniforms.Issued()},
	}
}

// Close tears the context down, deleting every live host object.
// Programs are deleted before shaders. The Context is unusable afterwards.
func (c *Context) Close() {
	if c.closed {
		return
	}
	c.closed = true

	released := 0
	c.programs.Close(func(_ resource.Handle[glapi.Program], p glapi.Program) {
		c.gl.DeleteProgram(p)
		released++
	})
	c.shaders.Close(func(_ resource.Handle[glapi.Shader], s glapi.Shader) {
		c.gl.DeleteShader(s)
		released++
	})
	c.buffers.Close(func(_ resource.Handle[glapi.Buffer], b glapi.Buffer) {
		c.gl.DeleteBuffer(b)
		released++
	})
	c.textures.Close(func(_ resource.Handle[glapi.Texture], t glapi.Texture) {
		c.gl.DeleteTexture(t)
		released++
	})
	c.framebuffers.Close(func(_ resource.Handle[glapi.Framebuffer], f glapi.Framebuffer) {
		c.gl.DeleteFramebuffer(f)
		released++
	})
	c.uniforms.Close(nil)

	Logger().Debug("bridge context closed", zap.Int("released", released))
}

// resolveNullable resolves h, mapping resource.Null to the default object.
func resolveNullable[T any](t *resource.Table[T], h uint32) (T, error) {
	if h == resource.Null {
		var zero T
		return zero, nil
	}
	return t.Resolve(resource.Handle[T](h))
}

// createObject allocates a host object and records it in t.
// Host creation errors propagate unmodified.
func createObject[T any](t *resource.Table[T], create func() (T, error), release func(T)) (uint32, error) {
	obj, err := create()
	if err != nil {
		return 0, err
	}
	h, err := t.Insert(obj)
	if err != nil {
		if release != nil {
			release(obj)
		}
		return 0, err
	}
	Logger().Debug("object created",
		zap.Stringer("kind", t.Kind()),
		zap.Uint32("handle", uint32(h)))
	return uint32(h), nil
}

// deleteObject calls the host delete on the object behind h, then tombstones h.
func deleteObject[T any](t *resource.Table[T], h uint32, release func(T)) error {
	obj, err := t.Resolve(resource.Handle[T](h))
	if err != nil {
		return err
	}
	release(obj)
	if _, err := t.Remove(resource.Handle[T](h)); err != nil {
		return err
	}
	Logger().Debug("object deleted",
		zap.Stringer("kind", t.Kind()),
		zap.Uint32("handle", h))
	return nil
}

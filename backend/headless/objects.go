package headless

type shaderObject struct {
	kind     uint32
	source   string
	compiled bool
	log      string
}

type programObject struct {
	shaders  []uint32
	linked   bool
	log      string
	attribs  map[string]int32
	uniforms map[string]int32
	values   map[int32][]float32
}

type bufferObject struct {
	data  []float32
	usage uint32
}

type textureObject struct {
	width, height int32
	format        uint32
	pixels        []byte
	params        map[uint32]float32
}

type framebufferObject struct {
	color uint32
}

// names is one object namespace. Names start at 1; 0 is the default object.
type names[T any] struct {
	next uint32
	objs map[uint32]*T
}

func newNames[T any]() names[T] {
	return names[T]{next: 1, objs: make(map[uint32]*T)}
}

func (n *names[T]) add(obj *T) uint32 {
	name := n.next
	n.next++
	n.objs[name] = obj
	return name
}

func (n *names[T]) get(name uint32) (*T, bool) {
	obj, ok := n.objs[name]
	return obj, ok
}

func (n *names[T]) remove(name uint32) bool {
	if _, ok := n.objs[name]; !ok {
		return false
	}
	delete(n.objs, name)
	return true
}

// TextureInfo describes a texture's current image.
type TextureInfo struct {
	Width, Height int32
	Format        uint32
	Pixels        []byte
}

// BufferInfo describes a buffer's current data store.
type BufferInfo struct {
	Data  []float32
	Usage uint32
}

package resource

// Handle is a per-kind index into a Table.
// The type parameter tags the handle with the resource type it refers to,
// so a Handle[Buffer] cannot be used against a Table[Texture].
type Handle[T any] uint32

// Null is the wire value of the "no object" handle (-1 as a guest i32).
const Null uint32 = 0xFFFFFFFF

// MaxHandle is the largest handle a table issues. Handles must stay
// non-negative when the guest reads them back as i32.
const MaxHandle uint32 = 1<<31 - 1

// IsNull reports whether h is the null handle.
func (h Handle[T]) IsNull() bool {
	return uint32(h) == Null
}

// Kind identifies the resource kind a table holds.
type Kind uint8

const (
	KindShader Kind = iota
	KindProgram
	KindBuffer
	KindTexture
	KindFramebuffer
	KindUniformLocation
)

// Kinds lists every resource kind in display order.
var Kinds = []Kind{
	KindShader,
	KindProgram,
	KindBuffer,
	KindTexture,
	KindFramebuffer,
	KindUniformLocation,
}

func (k Kind) String() string {
	switch k {
	case KindShader:
		return "shader"
	case KindProgram:
		return "program"
	case KindBuffer:
		return "buffer"
	case KindTexture:
		return "texture"
	case KindFramebuffer:
		return "framebuffer"
	case KindUniformLocation:
		return "uniform location"
	default:
		return "unknown"
	}
}

// EventType is the kind of lifecycle notification.
type EventType uint8

const (
	EventCreated EventType = iota
	EventDeleted
)

func (t EventType) String() string {
	if t == EventCreated {
		return "created"
	}
	return "deleted"
}

// Event represents a resource lifecycle event.
type Event struct {
	Handle uint32
	Kind   Kind
	Type   EventType
}

// Observer receives notifications about resource lifecycle events.
type Observer interface {
	OnResourceEvent(Event)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(Event)

// OnResourceEvent implements Observer.
func (f ObserverFunc) OnResourceEvent(e Event) {
	f(e)
}

// Package resource provides the per-kind handle tables of the bridge.
//
// A guest cannot hold host graphics objects. It holds small integer handles
// instead, and each resource kind (shader, program, buffer, texture,
// framebuffer, uniform location) has its own table mapping those handles to
// host objects.
//
// # Handle Numbering
//
// Insert appends a slot and returns its index, so the n-th object of a kind
// gets handle n-1:
//
//	buffers := resource.NewTable[glapi.Buffer](resource.KindBuffer)
//	h0, _ := buffers.Insert(b0) // 0
//	h1, _ := buffers.Insert(b1) // 1
//
// Remove tombstones the slot. By default tombstones are never reissued, which
// keeps handle numbering identical to an append-only array at the cost of
// table growth over a long session. WithSlotReuse enables a free list.
//
// # Type Safety
//
// Handles are typed by the object they refer to:
//
//	var tex resource.Handle[glapi.Texture]
//	buffers.Resolve(tex) // does not compile
//
// # Invalid Handles
//
// Resolving or removing a handle that was never issued or was already
// removed returns an errors.KindInvalidHandle error. No zero value is ever
// handed onward as if it were a live object.
//
// # Observers
//
// Register observers to track resource lifecycle events:
//
//	table.Subscribe(resource.ObserverFunc(func(e resource.Event) {
//	    log.Printf("%s %d %s", e.Kind, e.Handle, e.Type)
//	}))
package resource

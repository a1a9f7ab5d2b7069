package glbridge

// Memory is a read view over guest linear memory.
// The slice returned by Read aliases the guest buffer and is only valid
// until the guest runs again (memory growth may move it).
//
// wazero's api.Memory satisfies this interface.
type Memory interface {
	Read(offset, byteCount uint32) ([]byte, bool)
}

// MemoryAccessor returns the current view of guest memory.
// It is invoked at the start of every call that touches guest memory and
// its result is never retained across calls.
type MemoryAccessor func() Memory

// SliceMemory is an in-process Memory backed by a byte slice.
type SliceMemory []byte

// Read implements Memory.
func (m SliceMemory) Read(offset, byteCount uint32) ([]byte, bool) {
	end := uint64(offset) + uint64(byteCount)
	if end > uint64(len(m)) {
		return nil, false
	}
	return m[offset:end:end], true
}

// Size returns the memory size in bytes.
func (m SliceMemory) Size() uint32 {
	return uint32(len(m)) //nolint:gosec // G115: guest memory is at most 4GiB
}

// Sizer is optionally implemented by Memory to report its size in bytes.
type Sizer interface {
	Size() uint32
}

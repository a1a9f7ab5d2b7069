package marshal

import (
	"encoding/binary"
	"math"
	"unsafe"

	"golang.org/x/text/encoding/charmap"

	"github.com/wippyai/glbridge"
	"github.com/wippyai/glbridge/errors"
)

// FloatsPerMatrix is the number of floats in one 4x4 matrix.
const FloatsPerMatrix = 16

// Marshaller reads strings and typed views out of guest memory.
type Marshaller struct {
	mem       glbridge.MemoryAccessor
	maxString uint32
}

// Option configures a Marshaller.
type Option func(*Marshaller)

// WithMaxStringLength rejects string reads longer than n bytes. 0 disables the limit.
func WithMaxStringLength(n uint32) Option {
	return func(m *Marshaller) {
		m.maxString = n
	}
}

// New creates a Marshaller over the given accessor.
func New(mem glbridge.MemoryAccessor, opts ...Option) *Marshaller {
	m := &Marshaller{mem: mem}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// ReadString reads n bytes at ptr and maps each byte to the code point of
// the same value. No multi-byte decoding is performed: [0xE9] is "é".
func (m *Marshaller) ReadString(ptr, n uint32) (string, error) {
	if m.maxString > 0 && n > m.maxString {
		return "", errors.New(errors.PhaseMarshal, errors.KindInvalidInput).
			Detail("string of %d bytes exceeds limit of %d", n, m.maxString).
			Build()
	}
	b, err := m.view(ptr, n)
	if err != nil {
		return "", err
	}
	if isASCII(b) {
		return string(b), nil
	}
	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(b)
	if err != nil {
		return "", errors.New(errors.PhaseMarshal, errors.KindInvalidInput).
			Detail("decode string at %d", ptr).
			Cause(err).
			Build()
	}
	return string(decoded), nil
}

// ReadFloat32s returns count little-endian float32 values at ptr.
// The result aliases guest memory when the range is 4-byte aligned on a
// little-endian host; otherwise it is a decoded copy.
func (m *Marshaller) ReadFloat32s(ptr, count uint32) ([]float32, error) {
	byteLen := uint64(count) * 4
	if byteLen > math.MaxUint32 {
		return nil, errors.Overflow(errors.PhaseMarshal, byteLen, "guest memory range")
	}
	b, err := m.view(ptr, uint32(byteLen))
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return []float32{}, nil
	}
	if littleEndianHost && uintptr(unsafe.Pointer(unsafe.SliceData(b)))%4 == 0 {
		//nolint:gosec // G103: aligned reinterpretation of guest memory
		return unsafe.Slice((*float32)(unsafe.Pointer(unsafe.SliceData(b))), count), nil
	}
	out := make([]float32, count)
	for i := range out {
		out[i] = math.Float32frombits(binary.LittleEndian.Uint32(b[i*4:]))
	}
	return out, nil
}

// ReadMatrices returns count 4x4 matrices (count*16 floats) at ptr.
func (m *Marshaller) ReadMatrices(ptr, count uint32) ([]float32, error) {
	floats := uint64(count) * FloatsPerMatrix
	if floats > math.MaxUint32/4 {
		return nil, errors.Overflow(errors.PhaseMarshal, floats, "matrix float count")
	}
	return m.ReadFloat32s(ptr, uint32(floats))
}

// ReadBytes returns a view of n bytes at ptr. For n == 0 it returns nil,
// the "no data" marker, without touching guest memory.
func (m *Marshaller) ReadBytes(ptr, n uint32) ([]byte, error) {
	if n == 0 {
		return nil, nil
	}
	return m.view(ptr, n)
}

// view acquires the current memory and reads [ptr, ptr+n).
func (m *Marshaller) view(ptr, n uint32) ([]byte, error) {
	if m.mem == nil {
		return nil, errors.NoMemory(errors.PhaseMarshal)
	}
	mem := m.mem()
	if mem == nil {
		return nil, errors.NoMemory(errors.PhaseMarshal)
	}
	b, ok := mem.Read(ptr, n)
	if !ok {
		var size uint64
		if s, ok := mem.(glbridge.Sizer); ok {
			size = uint64(s.Size())
		}
		return nil, errors.OutOfBounds(errors.PhaseMarshal, ptr, n, size)
	}
	return b, nil
}

func isASCII(b []byte) bool {
	for _, c := range b {
		if c >= 0x80 {
			return false
		}
	}
	return true
}

var littleEndianHost = func() bool {
	x := uint16(1)
	return *(*byte)(unsafe.Pointer(&x)) == 1
}()

package marshal

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wippyai/glbridge"
	"github.com/wippyai/glbridge/errors"
)

func fixed(mem glbridge.SliceMemory) glbridge.MemoryAccessor {
	return func() glbridge.Memory { return mem }
}

func putFloats(mem []byte, ptr int, values ...float32) {
	for i, v := range values {
		binary.LittleEndian.PutUint32(mem[ptr+i*4:], math.Float32bits(v))
	}
}

func TestReadString_ByteIdentity(t *testing.T) {
	mem := make(glbridge.SliceMemory, 32)
	copy(mem[8:], []byte{72, 105})

	s, err := New(fixed(mem)).ReadString(8, 2)
	require.NoError(t, err)
	assert.Equal(t, "Hi", s)
}

func TestReadString_HighBytesAreCodePoints(t *testing.T) {
	mem := make(glbridge.SliceMemory, 8)
	// UTF-8 for "é" is C3 A9; byte identity yields two code points.
	copy(mem, []byte{0xC3, 0xA9, 0xE9})

	s, err := New(fixed(mem)).ReadString(0, 3)
	require.NoError(t, err)
	assert.Equal(t, []rune{0xC3, 0xA9, 0xE9}, []rune(s))
	assert.Equal(t, "Ã©é", s)
}

func TestReadString_Empty(t *testing.T) {
	mem := make(glbridge.SliceMemory, 4)
	s, err := New(fixed(mem)).ReadString(4, 0)
	require.NoError(t, err)
	assert.Equal(t, "", s)
}

func TestReadString_Limit(t *testing.T) {
	mem := make(glbridge.SliceMemory, 64)
	m := New(fixed(mem), WithMaxStringLength(8))

	_, err := m.ReadString(0, 9)
	require.Error(t, err)
	kind, _ := errors.KindOf(err)
	assert.Equal(t, errors.KindInvalidInput, kind)

	_, err = m.ReadString(0, 8)
	assert.NoError(t, err)
}

func TestReadString_OutOfBounds(t *testing.T) {
	mem := make(glbridge.SliceMemory, 16)
	_, err := New(fixed(mem)).ReadString(10, 7)
	require.Error(t, err)
	kind, _ := errors.KindOf(err)
	assert.Equal(t, errors.KindOutOfBounds, kind)
	assert.Contains(t, err.Error(), "16 bytes")
}

func TestReadFloat32s_ZeroCopy(t *testing.T) {
	mem := make(glbridge.SliceMemory, 64)
	putFloats(mem, 16, 1.5, -2, 3.25)

	floats, err := New(fixed(mem)).ReadFloat32s(16, 3)
	require.NoError(t, err)
	assert.Equal(t, []float32{1.5, -2, 3.25}, floats)

	if littleEndianHost {
		// The view aliases guest memory.
		putFloats(mem, 16, 9)
		assert.Equal(t, float32(9), floats[0])
	}
}

func TestReadFloat32s_Unaligned(t *testing.T) {
	mem := make(glbridge.SliceMemory, 64)
	putFloats(mem, 5, 0.5, 4)

	floats, err := New(fixed(mem)).ReadFloat32s(5, 2)
	require.NoError(t, err)
	assert.Equal(t, []float32{0.5, 4}, floats)
}

func TestReadFloat32s_Zero(t *testing.T) {
	mem := make(glbridge.SliceMemory, 4)
	floats, err := New(fixed(mem)).ReadFloat32s(0, 0)
	require.NoError(t, err)
	assert.NotNil(t, floats)
	assert.Empty(t, floats)
}

func TestReadFloat32s_Overflow(t *testing.T) {
	mem := make(glbridge.SliceMemory, 4)
	_, err := New(fixed(mem)).ReadFloat32s(0, math.MaxUint32)
	require.Error(t, err)
	kind, _ := errors.KindOf(err)
	assert.Equal(t, errors.KindOverflow, kind)
}

func TestReadMatrices_MultipliesBySixteen(t *testing.T) {
	// Exactly 2*16 floats fit; one float fewer must fail.
	mem := make(glbridge.SliceMemory, 32*4)
	for i := 0; i < 32; i++ {
		putFloats(mem, i*4, float32(i))
	}

	floats, err := New(fixed(mem)).ReadMatrices(0, 2)
	require.NoError(t, err)
	require.Len(t, floats, 32)
	assert.Equal(t, float32(31), floats[31])

	_, err = New(fixed(mem)).ReadMatrices(4, 2)
	require.Error(t, err)
}

func TestReadMatrices_Overflow(t *testing.T) {
	mem := make(glbridge.SliceMemory, 4)
	_, err := New(fixed(mem)).ReadMatrices(0, math.MaxUint32/16)
	require.Error(t, err)
	kind, _ := errors.KindOf(err)
	assert.Equal(t, errors.KindOverflow, kind)
}

func TestReadBytes_ZeroLengthIsAbsent(t *testing.T) {
	calls := 0
	m := New(func() glbridge.Memory {
		calls++
		return glbridge.SliceMemory(nil)
	})

	b, err := m.ReadBytes(1234, 0)
	require.NoError(t, err)
	assert.Nil(t, b)
	assert.Equal(t, 0, calls)
}

func TestReadBytes_View(t *testing.T) {
	mem := make(glbridge.SliceMemory, 16)
	copy(mem[4:], []byte{1, 2, 3, 4})

	b, err := New(fixed(mem)).ReadBytes(4, 4)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3, 4}, b)
}

func TestNoMemory(t *testing.T) {
	_, err := New(nil).ReadString(0, 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no guest memory")

	_, err = New(func() glbridge.Memory { return nil }).ReadFloat32s(0, 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no guest memory")
}

func TestMemoryGrowth_ReacquiresView(t *testing.T) {
	current := make(glbridge.SliceMemory, 16)
	acquired := 0
	m := New(func() glbridge.Memory {
		acquired++
		return current
	})

	copy(current[0:], "ab")
	s, err := m.ReadString(0, 2)
	require.NoError(t, err)
	assert.Equal(t, "ab", s)

	// Grow: a new backing buffer replaces the old one.
	old := current
	grown := make(glbridge.SliceMemory, 128)
	copy(grown, old)
	current = grown
	copy(old[0:], "zz")
	copy(grown[100:], "ok")

	s, err = m.ReadString(100, 2)
	require.NoError(t, err)
	assert.Equal(t, "ok", s)

	s, err = m.ReadString(0, 2)
	require.NoError(t, err)
	assert.Equal(t, "ab", s, "read must come from the grown buffer, not the stale one")
	assert.Equal(t, 3, acquired)
}

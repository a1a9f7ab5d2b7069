package resource

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wippyai/glbridge/errors"
)

type testBuffer uint32

func TestTable_SequentialHandles(t *testing.T) {
	tbl := NewTable[testBuffer](KindBuffer)

	for i := 0; i < 5; i++ {
		h, err := tbl.Insert(testBuffer(100 + i))
		require.NoError(t, err)
		assert.Equal(t, Handle[testBuffer](i), h)
	}
	assert.Equal(t, 5, tbl.Len())
	assert.Equal(t, 5, tbl.Issued())

	v, err := tbl.Resolve(3)
	require.NoError(t, err)
	assert.Equal(t, testBuffer(103), v)
}

func TestTable_RemoveTombstones(t *testing.T) {
	tbl := NewTable[testBuffer](KindBuffer)
	h0, _ := tbl.Insert(10)
	h1, _ := tbl.Insert(11)

	v, err := tbl.Remove(h0)
	require.NoError(t, err)
	assert.Equal(t, testBuffer(10), v)

	_, err = tbl.Resolve(h0)
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrInvalidHandle)
	assert.Contains(t, err.Error(), "handle was deleted")

	// Other slots keep their numbering.
	v, err = tbl.Resolve(h1)
	require.NoError(t, err)
	assert.Equal(t, testBuffer(11), v)

	// No reuse by default.
	h2, err := tbl.Insert(12)
	require.NoError(t, err)
	assert.Equal(t, Handle[testBuffer](2), h2)
	assert.Equal(t, 2, tbl.Len())
	assert.Equal(t, 3, tbl.Issued())
}

func TestTable_DoubleRemove(t *testing.T) {
	tbl := NewTable[testBuffer](KindTexture)
	h, _ := tbl.Insert(1)

	_, err := tbl.Remove(h)
	require.NoError(t, err)

	_, err = tbl.Remove(h)
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrInvalidHandle)
	assert.Contains(t, err.Error(), "texture 0")
}

func TestTable_OutOfRangeAndNull(t *testing.T) {
	tbl := NewTable[testBuffer](KindShader)

	_, err := tbl.Resolve(0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "never issued")

	_, err = tbl.Resolve(Handle[testBuffer](Null))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "null handle")
	assert.True(t, Handle[testBuffer](Null).IsNull())
}

func TestTable_SlotReuse(t *testing.T) {
	tbl := NewTable[testBuffer](KindBuffer, WithSlotReuse())
	h0, _ := tbl.Insert(1)
	h1, _ := tbl.Insert(2)
	h2, _ := tbl.Insert(3)

	_, _ = tbl.Remove(h1)
	_, _ = tbl.Remove(h0)

	// Most recently freed first.
	h3, err := tbl.Insert(4)
	require.NoError(t, err)
	assert.Equal(t, h0, h3)
	h4, err := tbl.Insert(5)
	require.NoError(t, err)
	assert.Equal(t, h1, h4)
	h5, err := tbl.Insert(6)
	require.NoError(t, err)
	assert.Equal(t, Handle[testBuffer](3), h5)

	v, err := tbl.Resolve(h2)
	require.NoError(t, err)
	assert.Equal(t, testBuffer(3), v)
	assert.Equal(t, 4, tbl.Len())
}

func TestTable_KindsAreIndependent(t *testing.T) {
	buffers := NewTable[testBuffer](KindBuffer)
	textures := NewTable[string](KindTexture)

	hb, _ := buffers.Insert(7)
	ht, _ := textures.Insert("tex")
	assert.Equal(t, uint32(hb), uint32(ht))

	_, _ = buffers.Remove(hb)
	v, err := textures.Resolve(ht)
	require.NoError(t, err)
	assert.Equal(t, "tex", v)
}

func TestTable_Observers(t *testing.T) {
	var events []Event
	tbl := NewTable[testBuffer](KindProgram, WithObserver(ObserverFunc(func(e Event) {
		events = append(events, e)
	})))

	h, _ := tbl.Insert(1)
	_, _ = tbl.Remove(h)
	_, _ = tbl.Remove(h)

	require.Len(t, events, 2)
	assert.Equal(t, Event{Kind: KindProgram, Handle: 0, Type: EventCreated}, events[0])
	assert.Equal(t, Event{Kind: KindProgram, Handle: 0, Type: EventDeleted}, events[1])
}

func TestTable_Close(t *testing.T) {
	tbl := NewTable[testBuffer](KindFramebuffer)
	h0, _ := tbl.Insert(1)
	h1, _ := tbl.Insert(2)
	_, _ = tbl.Insert(3)
	_, _ = tbl.Remove(h1)

	var released []Handle[testBuffer]
	tbl.Close(func(h Handle[testBuffer], _ testBuffer) {
		released = append(released, h)
	})
	assert.Equal(t, []Handle[testBuffer]{h0, 2}, released)
	assert.Equal(t, 0, tbl.Len())

	_, err := tbl.Insert(4)
	require.Error(t, err)
	kind, ok := errors.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, errors.KindClosed, kind)

	// Second close is a no-op.
	tbl.Close(func(Handle[testBuffer], testBuffer) {
		t.Fatal("release called twice")
	})
}

func TestTable_Each(t *testing.T) {
	tbl := NewTable[testBuffer](KindBuffer)
	for i := 0; i < 4; i++ {
		_, _ = tbl.Insert(testBuffer(i))
	}
	_, _ = tbl.Remove(1)

	var seen []Handle[testBuffer]
	tbl.Each(func(h Handle[testBuffer], _ testBuffer) bool {
		seen = append(seen, h)
		return true
	})
	assert.Equal(t, []Handle[testBuffer]{0, 2, 3}, seen)

	count := 0
	tbl.Each(func(Handle[testBuffer], testBuffer) bool {
		count++
		return false
	})
	assert.Equal(t, 1, count)
}

func TestTable_ConcurrentReaders(t *testing.T) {
	tbl := NewTable[testBuffer](KindBuffer)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = tbl.Len()
				_ = tbl.Issued()
			}
		}()
	}
	for i := 0; i < 100; i++ {
		h, err := tbl.Insert(testBuffer(i))
		require.NoError(t, err)
		if i%2 == 0 {
			_, err = tbl.Remove(h)
			require.NoError(t, err)
		}
	}
	wg.Wait()
	assert.Equal(t, 50, tbl.Len())
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "shader", KindShader.String())
	assert.Equal(t, "uniform location", KindUniformLocation.String())
	assert.Equal(t, "unknown", Kind(99).String())
	assert.Len(t, Kinds, 6)
}

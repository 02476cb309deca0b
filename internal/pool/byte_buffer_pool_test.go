package pool

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewByteBuffer(t *testing.T) {
	bb := NewByteBuffer(64)
	require.Equal(t, 0, bb.Len())
	require.Equal(t, 64, cap(bb.B))
}

func TestByteBuffer_Write(t *testing.T) {
	bb := NewByteBuffer(2)
	n, err := bb.Write([]byte{1, 2, 3})
	require.NoError(t, err)
	require.Equal(t, 3, n)

	_, _ = bb.Write([]byte{4})
	require.Equal(t, []byte{1, 2, 3, 4}, bb.Bytes())
}

func TestByteBuffer_Reset(t *testing.T) {
	bb := NewByteBuffer(8)
	_, _ = bb.Write([]byte{1, 2, 3})
	capBefore := cap(bb.B)

	bb.Reset()
	require.Equal(t, 0, bb.Len())
	require.Equal(t, capBefore, cap(bb.B))
}

func TestByteBuffer_Grow(t *testing.T) {
	t.Run("SufficientCapacity", func(t *testing.T) {
		bb := NewByteBuffer(100)
		bb.Grow(50)
		require.Equal(t, 100, cap(bb.B))
	})

	t.Run("SmallBuffer", func(t *testing.T) {
		bb := NewByteBuffer(10)
		_, _ = bb.Write(make([]byte, 10))
		bb.Grow(1)
		require.GreaterOrEqual(t, cap(bb.B), 10+ColumnBufferDefaultSize)
	})

	t.Run("LargeBuffer", func(t *testing.T) {
		size := 8 * ColumnBufferDefaultSize
		bb := NewByteBuffer(size)
		_, _ = bb.Write(make([]byte, size))
		bb.Grow(1)
		require.GreaterOrEqual(t, cap(bb.B), size+size/4)
	})

	t.Run("MoreThanDefaultGrowth", func(t *testing.T) {
		bb := NewByteBuffer(0)
		required := 2 * ColumnBufferDefaultSize
		bb.Grow(required)
		require.GreaterOrEqual(t, cap(bb.B), required)
	})

	t.Run("PreservesData", func(t *testing.T) {
		bb := NewByteBuffer(3)
		_, _ = bb.Write([]byte{7, 8, 9})
		bb.Grow(1024)
		require.Equal(t, []byte{7, 8, 9}, bb.Bytes())
	})
}

func TestColumnPool_Reuse(t *testing.T) {
	bb := GetColumnBuffer()
	require.NotNil(t, bb)
	require.Equal(t, 0, bb.Len())

	_, _ = bb.Write([]byte{1, 2, 3})
	PutColumnBuffer(bb)

	again := GetColumnBuffer()
	require.Equal(t, 0, again.Len(), "pooled buffers must come back empty")
	PutColumnBuffer(again)
}

func TestByteBufferPool_PutNil(t *testing.T) {
	p := NewByteBufferPool(16, 0)
	require.NotPanics(t, func() { p.Put(nil) })
}

func TestByteBufferPool_MaxThreshold(t *testing.T) {
	p := NewByteBufferPool(16, 32)

	big := NewByteBuffer(64)
	p.Put(big)

	got := p.Get()
	require.NotSame(t, big, got, "oversized buffers must be discarded")
	require.Equal(t, 16, cap(got.B))
}

func TestByteBufferPool_ConcurrentAccess(t *testing.T) {
	p := NewByteBufferPool(16, 1024)

	var wg sync.WaitGroup
	for i := range 16 {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			bb := p.Get()
			_, _ = bb.Write([]byte{byte(i)})
			p.Put(bb)
		}(i)
	}
	wg.Wait()
}

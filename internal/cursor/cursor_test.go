package cursor

import (
	"math"
	"testing"

	"github.com/arloliu/wkb/endian"
	"github.com/arloliu/wkb/errs"
	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
)

func TestCursorPrimitives(t *testing.T) {
	for _, engine := range []endian.EndianEngine{endian.GetLittleEndianEngine(), endian.GetBigEndianEngine()} {
		t.Run(endian.Name(engine), func(t *testing.T) {
			var data []byte
			data = append(data, 0x7F)
			data = engine.AppendUint32(data, 0xDEADBEEF)
			data = engine.AppendUint32(data, uint32(0xFFFFFFFE))
			data = engine.AppendUint64(data, math.Float64bits(-12.5))

			c := New(data, engine)
			require.Equal(t, len(data), c.Remaining())

			b, err := c.ReadByte()
			require.NoError(t, err)
			require.Equal(t, byte(0x7F), b)
			require.Equal(t, 1, c.Pos())

			u, err := c.ReadUint32()
			require.NoError(t, err)
			require.Equal(t, uint32(0xDEADBEEF), u)

			i, err := c.ReadInt32()
			require.NoError(t, err)
			require.Equal(t, int32(-2), i)

			f, err := c.ReadFloat64()
			require.NoError(t, err)
			require.Equal(t, -12.5, f)

			require.Equal(t, 0, c.Remaining())
			require.Equal(t, len(data), c.Pos())
		})
	}
}

func TestCursorOutOfBounds(t *testing.T) {
	tests := []struct {
		name string
		size int
		read func(c *Cursor) error
	}{
		{name: "Byte", size: 0, read: func(c *Cursor) error { _, err := c.ReadByte(); return err }},
		{name: "Uint32", size: 3, read: func(c *Cursor) error { _, err := c.ReadUint32(); return err }},
		{name: "Int32", size: 2, read: func(c *Cursor) error { _, err := c.ReadInt32(); return err }},
		{name: "Float64", size: 7, read: func(c *Cursor) error { _, err := c.ReadFloat64(); return err }},
		{name: "Advance", size: 4, read: func(c *Cursor) error { return c.Advance(5) }},
		{name: "Take", size: 4, read: func(c *Cursor) error { _, err := c.Take(5); return err }},
		{name: "NegativeAdvance", size: 4, read: func(c *Cursor) error { return c.Advance(-1) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(make([]byte, tt.size), endian.GetLittleEndianEngine())
			err := tt.read(c)
			require.ErrorIs(t, err, errs.ErrOutOfBounds)

			var perr *errs.ParseError
			require.True(t, errors.As(err, &perr))
			require.Equal(t, 0, perr.Offset)
			require.Equal(t, 0, c.Pos(), "failed reads must not move the cursor")
		})
	}
}

func TestCursorView(t *testing.T) {
	data := []byte{0, 1, 2, 3, 4, 5, 6, 7}
	c := New(data, endian.GetLittleEndianEngine())

	view, err := c.View(2, 4)
	require.NoError(t, err)
	require.Equal(t, []byte{2, 3, 4, 5}, view)
	require.Equal(t, 4, cap(view), "view capacity must be capped")

	// Zero copy: the view aliases the input.
	data[3] = 99
	require.Equal(t, byte(99), view[1])

	empty, err := c.View(8, 0)
	require.NoError(t, err)
	require.Empty(t, empty)

	_, err = c.View(6, 3)
	require.ErrorIs(t, err, errs.ErrOutOfBounds)
	_, err = c.View(-1, 1)
	require.ErrorIs(t, err, errs.ErrOutOfBounds)
	_, err = c.View(9, 0)
	require.ErrorIs(t, err, errs.ErrOutOfBounds)

	require.Equal(t, 0, c.Pos(), "View must not move the cursor")
}

func TestCursorTake(t *testing.T) {
	c := New([]byte{9, 8, 7, 6}, endian.GetBigEndianEngine())
	require.NoError(t, c.Advance(1))

	view, err := c.Take(2)
	require.NoError(t, err)
	require.Equal(t, []byte{8, 7}, view)
	require.Equal(t, 3, c.Pos())
}

func TestCursorSetEngine(t *testing.T) {
	data := []byte{0x00, 0x00, 0x00, 0x01, 0x01, 0x00, 0x00, 0x00}
	c := New(data, endian.GetBigEndianEngine())

	v, err := c.ReadUint32()
	require.NoError(t, err)
	require.Equal(t, uint32(1), v)

	c.SetEngine(endian.GetLittleEndianEngine())
	require.Equal(t, endian.GetLittleEndianEngine(), c.Engine())

	v, err = c.ReadUint32()
	require.NoError(t, err)
	require.Equal(t, uint32(1), v)
}

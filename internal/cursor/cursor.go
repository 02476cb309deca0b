// Package cursor implements a bounds-checked read cursor over a byte slice.
//
// Every read checks the remaining length explicitly and fails with
// errs.ErrOutOfBounds wrapped in an *errs.ParseError carrying the offset of the
// failed read, so callers can tell truncated input apart from other decode
// failures without recovering from a runtime panic.
package cursor

import (
	"math"

	"github.com/arloliu/wkb/endian"
	"github.com/arloliu/wkb/errs"
)

// Cursor reads primitives from an immutable byte slice.
//
// The cursor never copies or modifies data. Its position only moves forward.
type Cursor struct {
	data   []byte
	pos    int
	engine endian.EndianEngine
}

// New creates a cursor at offset 0 reading with engine.
func New(data []byte, engine endian.EndianEngine) *Cursor {
	return &Cursor{data: data, engine: engine}
}

// Pos returns the current read offset.
func (c *Cursor) Pos() int {
	return c.pos
}

// Len returns the total length of the underlying data.
func (c *Cursor) Len() int {
	return len(c.data)
}

// Remaining returns the number of unread bytes.
func (c *Cursor) Remaining() int {
	return len(c.data) - c.pos
}

// Engine returns the active byte order.
func (c *Cursor) Engine() endian.EndianEngine {
	return c.engine
}

// SetEngine changes the byte order used by subsequent reads.
func (c *Cursor) SetEngine(engine endian.EndianEngine) {
	c.engine = engine
}

// Need fails with ErrOutOfBounds unless n more bytes are available.
func (c *Cursor) Need(n int) error {
	if n < 0 || n > c.Remaining() {
		return errs.Atf(c.pos, errs.ErrOutOfBounds, "need %d bytes, %d remaining", n, c.Remaining())
	}

	return nil
}

// Advance moves the cursor forward by n bytes.
func (c *Cursor) Advance(n int) error {
	if err := c.Need(n); err != nil {
		return err
	}
	c.pos += n

	return nil
}

// ReadByte reads one byte.
func (c *Cursor) ReadByte() (byte, error) {
	if err := c.Need(1); err != nil {
		return 0, err
	}
	b := c.data[c.pos]
	c.pos++

	return b, nil
}

// ReadUint32 reads a 4-byte unsigned integer in the active byte order.
func (c *Cursor) ReadUint32() (uint32, error) {
	if err := c.Need(4); err != nil {
		return 0, err
	}
	v := c.engine.Uint32(c.data[c.pos : c.pos+4])
	c.pos += 4

	return v, nil
}

// ReadInt32 reads a 4-byte two's complement integer in the active byte order.
func (c *Cursor) ReadInt32() (int32, error) {
	v, err := c.ReadUint32()

	return int32(v), err //nolint: gosec
}

// ReadFloat64 reads an 8-byte IEEE 754 value in the active byte order.
func (c *Cursor) ReadFloat64() (float64, error) {
	if err := c.Need(8); err != nil {
		return 0, err
	}
	bits := c.engine.Uint64(c.data[c.pos : c.pos+8])
	c.pos += 8

	return math.Float64frombits(bits), nil
}

// View returns data[offset:offset+length] without copying.
//
// The view's capacity is capped at its length so appends by the caller can
// never write into the bytes that follow it.
func (c *Cursor) View(offset, length int) ([]byte, error) {
	if offset < 0 || length < 0 || offset > len(c.data) || length > len(c.data)-offset {
		return nil, errs.Atf(offset, errs.ErrOutOfBounds,
			"view of %d bytes at offset %d exceeds buffer of %d bytes", length, offset, len(c.data))
	}

	return c.data[offset : offset+length : offset+length], nil
}

// Take returns a view of the next n bytes and advances past them.
func (c *Cursor) Take(n int) ([]byte, error) {
	if err := c.Need(n); err != nil {
		return nil, err
	}
	view, _ := c.View(c.pos, n)
	c.pos += n

	return view, nil
}

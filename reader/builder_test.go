package reader

import (
	"math"

	"github.com/arloliu/wkb/endian"
	"github.com/arloliu/wkb/format"
	"github.com/arloliu/wkb/section"
)

// recordBuilder assembles WKB by hand for cases a conforming writer will not
// produce: truncated bodies, bad markers, short rings and mixed byte orders.
type recordBuilder struct {
	buf    []byte
	engine endian.EndianEngine
}

func newRecordBuilder(engine endian.EndianEngine) *recordBuilder {
	return &recordBuilder{engine: engine}
}

func ndr() *recordBuilder {
	return newRecordBuilder(endian.GetLittleEndianEngine())
}

func xdr() *recordBuilder {
	return newRecordBuilder(endian.GetBigEndianEngine())
}

// header writes the byte order marker, the type word and, when srid is
// non-zero, the SRID.
func (b *recordBuilder) header(typ format.GeometryType, dim format.Dimension, srid int) *recordBuilder {
	b.buf = append(b.buf, endian.MarkerFor(b.engine))

	return b.headerBody(typ, dim, srid)
}

// rawHeader writes marker verbatim, then the rest of the header in the
// builder's byte order.
func (b *recordBuilder) rawHeader(marker byte, typ format.GeometryType, dim format.Dimension) *recordBuilder {
	b.buf = append(b.buf, marker)

	return b.headerBody(typ, dim, 0)
}

func (b *recordBuilder) headerBody(typ format.GeometryType, dim format.Dimension, srid int) *recordBuilder {
	word := section.NewTypeWord(section.TypeDescriptor{Type: typ, Dimension: dim, HasSRID: srid != 0})
	b.buf = b.engine.AppendUint32(b.buf, uint32(word))
	if srid != 0 {
		b.buf = b.engine.AppendUint32(b.buf, uint32(int32(srid))) //nolint: gosec
	}

	return b
}

func (b *recordBuilder) word(w uint32) *recordBuilder {
	b.buf = b.engine.AppendUint32(b.buf, w)

	return b
}

func (b *recordBuilder) count(n uint32) *recordBuilder {
	return b.word(n)
}

func (b *recordBuilder) coords(vals ...float64) *recordBuilder {
	for _, v := range vals {
		b.buf = b.engine.AppendUint64(b.buf, math.Float64bits(v))
	}

	return b
}

func (b *recordBuilder) raw(p ...byte) *recordBuilder {
	b.buf = append(b.buf, p...)

	return b
}

func (b *recordBuilder) bytes() []byte {
	return b.buf
}

func pointXY(b *recordBuilder, x, y float64) *recordBuilder {
	return b.header(format.TypePoint, format.XY, 0).coords(x, y)
}

func lineStringXY(b *recordBuilder, ords ...float64) *recordBuilder {
	return b.header(format.TypeLineString, format.XY, 0).count(uint32(len(ords) / 2)).coords(ords...)
}

package geom

import (
	"math"

	"github.com/arloliu/wkb/format"
)

// Geometry is implemented by the eight geometry variants:
// *Point, *LineString, *LinearRing, *Polygon, *MultiPoint, *MultiLineString,
// *MultiPolygon and *GeometryCollection.
//
// Use a type switch to reach variant-specific accessors:
//
//	switch g := g.(type) {
//	case *geom.Point:
//	    fmt.Println(g.X(), g.Y())
//	case *geom.Polygon:
//	    fmt.Println(g.NumHoles())
//	}
type Geometry interface {
	// Type returns the variant tag.
	Type() format.GeometryType
	// Dimension returns XY or XYZ as declared by the record the geometry was read from.
	Dimension() format.Dimension
	// SRID returns the spatial reference id, 0 when unset.
	SRID() int
	// SetSRID tags the geometry with srid.
	SetSRID(srid int)
	// IsEmpty reports whether the geometry has no coordinates.
	IsEmpty() bool
	// Envelope returns the XY bounding box.
	Envelope() Envelope
	// IsBorrowed reports whether any coordinate sequence in the tree aliases
	// the input buffer.
	IsBorrowed() bool
	// Materialize returns a deep copy whose sequences are all owned, safe to
	// keep after the input buffer is reused.
	Materialize() Geometry
}

type base struct {
	srid int
	dim  format.Dimension
}

func (b *base) SRID() int {
	return b.srid
}

func (b *base) SetSRID(srid int) {
	b.srid = srid
}

func (b *base) Dimension() format.Dimension {
	return b.dim
}

// Point is a single position.
type Point struct {
	base
	seq CoordSeq
}

var _ Geometry = (*Point)(nil)

func (p *Point) Type() format.GeometryType {
	return format.TypePoint
}

// IsEmpty reports whether the point has no coordinate, or holds the NaN
// coordinate PostGIS writes for POINT EMPTY.
func (p *Point) IsEmpty() bool {
	if p.seq.Len() == 0 {
		return true
	}
	c := p.seq.Coord(0)

	return math.IsNaN(c.X) && math.IsNaN(c.Y)
}

// Coord returns the position, or the zero Coord for an empty point.
func (p *Point) Coord() Coord {
	if p.seq.Len() == 0 {
		return Coord{}
	}

	return p.seq.Coord(0)
}

func (p *Point) X() float64 { return p.Coord().X }
func (p *Point) Y() float64 { return p.Coord().Y }
func (p *Point) Z() float64 { return p.Coord().Z }

// CoordSeq returns the backing sequence.
func (p *Point) CoordSeq() CoordSeq {
	return p.seq
}

func (p *Point) Envelope() Envelope {
	return seqEnvelope(p.seq)
}

func (p *Point) IsBorrowed() bool {
	return p.seq.Borrowed()
}

func (p *Point) Materialize() Geometry {
	return p.materialize()
}

func (p *Point) materialize() *Point {
	return &Point{base: p.base, seq: p.seq.Copy()}
}

// curve holds the state shared by LineString and LinearRing.
type curve struct {
	base
	seq CoordSeq
}

// NumPoints returns the number of coordinates.
func (c *curve) NumPoints() int {
	return c.seq.Len()
}

// CoordN returns coordinate i.
func (c *curve) CoordN(i int) Coord {
	return c.seq.Coord(i)
}

// CoordSeq returns the backing sequence.
func (c *curve) CoordSeq() CoordSeq {
	return c.seq
}

// IsClosed reports whether the first and last coordinates coincide in XY.
func (c *curve) IsClosed() bool {
	return c.seq.Len() > 0 && IsClosed(c.seq)
}

func (c *curve) IsEmpty() bool {
	return c.seq.Len() == 0
}

func (c *curve) Envelope() Envelope {
	return seqEnvelope(c.seq)
}

func (c *curve) IsBorrowed() bool {
	return c.seq.Borrowed()
}

// LineString is a sequence of 0 or at least 2 positions.
type LineString struct {
	curve
}

var _ Geometry = (*LineString)(nil)

func (l *LineString) Type() format.GeometryType {
	return format.TypeLineString
}

func (l *LineString) Materialize() Geometry {
	return l.materialize()
}

func (l *LineString) materialize() *LineString {
	return &LineString{curve{base: l.base, seq: l.seq.Copy()}}
}

// LinearRing is a closed line string bounding a polygon shell or hole.
type LinearRing struct {
	curve
}

var _ Geometry = (*LinearRing)(nil)

func (r *LinearRing) Type() format.GeometryType {
	return format.TypeLinearRing
}

func (r *LinearRing) Materialize() Geometry {
	return r.materialize()
}

func (r *LinearRing) materialize() *LinearRing {
	return &LinearRing{curve{base: r.base, seq: r.seq.Copy()}}
}

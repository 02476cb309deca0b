package geom

import (
	"iter"
	"math"

	"github.com/arloliu/wkb/endian"
	"github.com/arloliu/wkb/format"
)

// Ordinate indexes.
const (
	X = 0
	Y = 1
	Z = 2
)

// Coord is a single position. Z is zero for XY sequences.
type Coord struct {
	X, Y, Z float64
}

// Equal2D reports whether c and o have the same X and Y.
func (c Coord) Equal2D(o Coord) bool {
	return c.X == o.X && c.Y == o.Y
}

// CoordSeq is an ordered run of coordinates.
//
// Implementations are either borrowed views over an input buffer
// (*ViewSequence) or owned copies (*Sequence). Borrowed sequences are valid only
// while the buffer they were decoded from is unmodified; call Copy to detach.
type CoordSeq interface {
	// Len returns the number of coordinates.
	Len() int
	// Dimension returns the number of ordinates per coordinate.
	Dimension() format.Dimension
	// Ordinate returns ordinate ord (X, Y or Z) of coordinate i.
	Ordinate(i, ord int) float64
	// Coord returns coordinate i.
	Coord(i int) Coord
	// Borrowed reports whether the sequence aliases caller-owned input.
	Borrowed() bool
	// Copy returns an owned deep copy.
	Copy() *Sequence
}

// All iterates over the coordinates of seq.
func All(seq CoordSeq) iter.Seq2[int, Coord] {
	return func(yield func(int, Coord) bool) {
		for i := range seq.Len() {
			if !yield(i, seq.Coord(i)) {
				return
			}
		}
	}
}

// Coords returns the coordinates of seq as a slice.
func Coords(seq CoordSeq) []Coord {
	out := make([]Coord, seq.Len())
	for i, c := range All(seq) {
		out[i] = c
	}

	return out
}

// Sequence is an owned coordinate sequence stored as a flat ordinate slice.
type Sequence struct {
	dim  format.Dimension
	flat []float64
}

var _ CoordSeq = (*Sequence)(nil)

// NewSequence creates a zeroed sequence of n coordinates.
func NewSequence(dim format.Dimension, n int) *Sequence {
	return &Sequence{dim: dim, flat: make([]float64, n*int(dim))}
}

// SequenceOf creates a sequence holding coords.
func SequenceOf(dim format.Dimension, coords ...Coord) *Sequence {
	s := NewSequence(dim, len(coords))
	for i, c := range coords {
		s.Set(i, c)
	}

	return s
}

// SequenceFromFlat wraps flat ordinates without copying.
// len(flat) must be a multiple of dim.
func SequenceFromFlat(dim format.Dimension, flat []float64) *Sequence {
	return &Sequence{dim: dim, flat: flat}
}

func (s *Sequence) Len() int {
	return len(s.flat) / int(s.dim)
}

func (s *Sequence) Dimension() format.Dimension {
	return s.dim
}

func (s *Sequence) Ordinate(i, ord int) float64 {
	if ord >= int(s.dim) {
		return 0
	}

	return s.flat[i*int(s.dim)+ord]
}

func (s *Sequence) Coord(i int) Coord {
	off := i * int(s.dim)
	c := Coord{X: s.flat[off], Y: s.flat[off+1]}
	if s.dim == format.XYZ {
		c.Z = s.flat[off+2]
	}

	return c
}

func (s *Sequence) Borrowed() bool {
	return false
}

func (s *Sequence) Copy() *Sequence {
	flat := make([]float64, len(s.flat))
	copy(flat, s.flat)

	return &Sequence{dim: s.dim, flat: flat}
}

// Set stores c at index i. Z is dropped for XY sequences.
func (s *Sequence) Set(i int, c Coord) {
	off := i * int(s.dim)
	s.flat[off] = c.X
	s.flat[off+1] = c.Y
	if s.dim == format.XYZ {
		s.flat[off+2] = c.Z
	}
}

// Flat returns the underlying ordinates, coordinate-major.
func (s *Sequence) Flat() []float64 {
	return s.flat
}

// ViewSequence is a coordinate sequence read lazily from a WKB byte view.
//
// X and Y are passed through the precision model on every access; Z is
// returned as stored.
type ViewSequence struct {
	data      []byte
	engine    endian.EndianEngine
	dim       format.Dimension
	n         int
	precision PrecisionModel
}

var _ CoordSeq = (*ViewSequence)(nil)

// NewViewSequence wraps data, which must hold exactly n × dim float64 values in
// engine byte order.
func NewViewSequence(data []byte, engine endian.EndianEngine, dim format.Dimension, n int, pm PrecisionModel) *ViewSequence {
	if pm == nil {
		pm = Floating{}
	}

	return &ViewSequence{data: data, engine: engine, dim: dim, n: n, precision: pm}
}

func (v *ViewSequence) Len() int {
	return v.n
}

func (v *ViewSequence) Dimension() format.Dimension {
	return v.dim
}

func (v *ViewSequence) Ordinate(i, ord int) float64 {
	if ord >= int(v.dim) {
		return 0
	}

	off := (i*int(v.dim) + ord) * 8
	val := math.Float64frombits(v.engine.Uint64(v.data[off : off+8]))
	if ord <= Y {
		return v.precision.MakePrecise(val)
	}

	return val
}

func (v *ViewSequence) Coord(i int) Coord {
	c := Coord{X: v.Ordinate(i, X), Y: v.Ordinate(i, Y)}
	if v.dim == format.XYZ {
		c.Z = v.Ordinate(i, Z)
	}

	return c
}

func (v *ViewSequence) Borrowed() bool {
	return true
}

func (v *ViewSequence) Copy() *Sequence {
	s := NewSequence(v.dim, v.n)
	for i := range v.n {
		for ord := range int(v.dim) {
			s.flat[i*int(v.dim)+ord] = v.Ordinate(i, ord)
		}
	}

	return s
}

// Bytes returns the raw view backing the sequence.
func (v *ViewSequence) Bytes() []byte {
	return v.data
}

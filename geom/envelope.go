package geom

import "math"

// Envelope is an axis-aligned XY bounding box.
//
// The zero value is the degenerate box at the origin; use EmptyEnvelope for a
// box that contains nothing.
type Envelope struct {
	MinX, MinY, MaxX, MaxY float64
}

// EmptyEnvelope returns an envelope that contains no points.
func EmptyEnvelope() Envelope {
	return Envelope{
		MinX: math.Inf(1), MinY: math.Inf(1),
		MaxX: math.Inf(-1), MaxY: math.Inf(-1),
	}
}

// NewEnvelope returns the envelope spanning both corners in any order.
func NewEnvelope(x1, y1, x2, y2 float64) Envelope {
	return Envelope{
		MinX: math.Min(x1, x2), MinY: math.Min(y1, y2),
		MaxX: math.Max(x1, x2), MaxY: math.Max(y1, y2),
	}
}

// IsEmpty reports whether e contains no points.
func (e Envelope) IsEmpty() bool {
	return e.MinX > e.MaxX || e.MinY > e.MaxY
}

// Width returns MaxX - MinX, or 0 for an empty envelope.
func (e Envelope) Width() float64 {
	if e.IsEmpty() {
		return 0
	}

	return e.MaxX - e.MinX
}

// Height returns MaxY - MinY, or 0 for an empty envelope.
func (e Envelope) Height() float64 {
	if e.IsEmpty() {
		return 0
	}

	return e.MaxY - e.MinY
}

// ExpandToInclude returns e grown to contain (x, y). NaN ordinates are ignored.
func (e Envelope) ExpandToInclude(x, y float64) Envelope {
	if math.IsNaN(x) || math.IsNaN(y) {
		return e
	}

	e.MinX = math.Min(e.MinX, x)
	e.MinY = math.Min(e.MinY, y)
	e.MaxX = math.Max(e.MaxX, x)
	e.MaxY = math.Max(e.MaxY, y)

	return e
}

// Merge returns the envelope containing both e and o.
func (e Envelope) Merge(o Envelope) Envelope {
	if o.IsEmpty() {
		return e
	}
	if e.IsEmpty() {
		return o
	}

	return Envelope{
		MinX: math.Min(e.MinX, o.MinX), MinY: math.Min(e.MinY, o.MinY),
		MaxX: math.Max(e.MaxX, o.MaxX), MaxY: math.Max(e.MaxY, o.MaxY),
	}
}

// Intersects reports whether e and o share at least one point.
func (e Envelope) Intersects(o Envelope) bool {
	if e.IsEmpty() || o.IsEmpty() {
		return false
	}

	return e.MinX <= o.MaxX && o.MinX <= e.MaxX &&
		e.MinY <= o.MaxY && o.MinY <= e.MaxY
}

// Contains reports whether o lies entirely inside e.
func (e Envelope) Contains(o Envelope) bool {
	if e.IsEmpty() || o.IsEmpty() {
		return false
	}

	return e.MinX <= o.MinX && o.MaxX <= e.MaxX &&
		e.MinY <= o.MinY && o.MaxY <= e.MaxY
}

func seqEnvelope(seq CoordSeq) Envelope {
	env := EmptyEnvelope()
	for i := range seq.Len() {
		env = env.ExpandToInclude(seq.Ordinate(i, X), seq.Ordinate(i, Y))
	}

	return env
}

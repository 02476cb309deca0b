package geom

import "github.com/arloliu/wkb/format"

// Polygon is a shell ring with zero or more hole rings.
// A polygon without a shell is empty.
type Polygon struct {
	base
	shell *LinearRing
	holes []*LinearRing
}

var _ Geometry = (*Polygon)(nil)

func (p *Polygon) Type() format.GeometryType {
	return format.TypePolygon
}

// Shell returns the outer ring, nil for an empty polygon.
func (p *Polygon) Shell() *LinearRing {
	return p.shell
}

// Holes returns the inner rings. It is nil when the polygon has none.
func (p *Polygon) Holes() []*LinearRing {
	return p.holes
}

// NumHoles returns the number of inner rings.
func (p *Polygon) NumHoles() int {
	return len(p.holes)
}

// NumRings returns the number of rings including the shell.
func (p *Polygon) NumRings() int {
	if p.shell == nil {
		return 0
	}

	return 1 + len(p.holes)
}

func (p *Polygon) IsEmpty() bool {
	return p.shell == nil || p.shell.IsEmpty()
}

func (p *Polygon) Envelope() Envelope {
	if p.shell == nil {
		return EmptyEnvelope()
	}

	return p.shell.Envelope()
}

func (p *Polygon) IsBorrowed() bool {
	if p.shell != nil && p.shell.IsBorrowed() {
		return true
	}
	for _, h := range p.holes {
		if h.IsBorrowed() {
			return true
		}
	}

	return false
}

func (p *Polygon) Materialize() Geometry {
	return p.materialize()
}

func (p *Polygon) materialize() *Polygon {
	out := &Polygon{base: p.base}
	if p.shell != nil {
		out.shell = p.shell.materialize()
	}
	if p.holes != nil {
		out.holes = make([]*LinearRing, len(p.holes))
		for i, h := range p.holes {
			out.holes[i] = h.materialize()
		}
	}

	return out
}

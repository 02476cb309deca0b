package geom

import "github.com/arloliu/wkb/format"

// MultiPoint is a collection of points.
type MultiPoint struct {
	base
	points []*Point
}

var _ Geometry = (*MultiPoint)(nil)

func (m *MultiPoint) Type() format.GeometryType { return format.TypeMultiPoint }

// NumGeometries returns the number of points.
func (m *MultiPoint) NumGeometries() int { return len(m.points) }

// Points returns the member points.
func (m *MultiPoint) Points() []*Point { return m.points }

func (m *MultiPoint) IsEmpty() bool {
	for _, p := range m.points {
		if !p.IsEmpty() {
			return false
		}
	}

	return true
}

func (m *MultiPoint) Envelope() Envelope {
	env := EmptyEnvelope()
	for _, p := range m.points {
		env = env.Merge(p.Envelope())
	}

	return env
}

func (m *MultiPoint) IsBorrowed() bool {
	for _, p := range m.points {
		if p.IsBorrowed() {
			return true
		}
	}

	return false
}

func (m *MultiPoint) Materialize() Geometry {
	out := &MultiPoint{base: m.base, points: make([]*Point, len(m.points))}
	for i, p := range m.points {
		out.points[i] = p.materialize()
	}

	return out
}

// MultiLineString is a collection of line strings.
type MultiLineString struct {
	base
	lines []*LineString
}

var _ Geometry = (*MultiLineString)(nil)

func (m *MultiLineString) Type() format.GeometryType { return format.TypeMultiLineString }

// NumGeometries returns the number of line strings.
func (m *MultiLineString) NumGeometries() int { return len(m.lines) }

// LineStrings returns the member line strings.
func (m *MultiLineString) LineStrings() []*LineString { return m.lines }

func (m *MultiLineString) IsEmpty() bool {
	for _, l := range m.lines {
		if !l.IsEmpty() {
			return false
		}
	}

	return true
}

func (m *MultiLineString) Envelope() Envelope {
	env := EmptyEnvelope()
	for _, l := range m.lines {
		env = env.Merge(l.Envelope())
	}

	return env
}

func (m *MultiLineString) IsBorrowed() bool {
	for _, l := range m.lines {
		if l.IsBorrowed() {
			return true
		}
	}

	return false
}

func (m *MultiLineString) Materialize() Geometry {
	out := &MultiLineString{base: m.base, lines: make([]*LineString, len(m.lines))}
	for i, l := range m.lines {
		out.lines[i] = l.materialize()
	}

	return out
}

// MultiPolygon is a collection of polygons.
type MultiPolygon struct {
	base
	polygons []*Polygon
}

var _ Geometry = (*MultiPolygon)(nil)

func (m *MultiPolygon) Type() format.GeometryType { return format.TypeMultiPolygon }

// NumGeometries returns the number of polygons.
func (m *MultiPolygon) NumGeometries() int { return len(m.polygons) }

// Polygons returns the member polygons.
func (m *MultiPolygon) Polygons() []*Polygon { return m.polygons }

func (m *MultiPolygon) IsEmpty() bool {
	for _, p := range m.polygons {
		if !p.IsEmpty() {
			return false
		}
	}

	return true
}

func (m *MultiPolygon) Envelope() Envelope {
	env := EmptyEnvelope()
	for _, p := range m.polygons {
		env = env.Merge(p.Envelope())
	}

	return env
}

func (m *MultiPolygon) IsBorrowed() bool {
	for _, p := range m.polygons {
		if p.IsBorrowed() {
			return true
		}
	}

	return false
}

func (m *MultiPolygon) Materialize() Geometry {
	out := &MultiPolygon{base: m.base, polygons: make([]*Polygon, len(m.polygons))}
	for i, p := range m.polygons {
		out.polygons[i] = p.materialize()
	}

	return out
}

// GeometryCollection is a heterogeneous collection, possibly nested.
type GeometryCollection struct {
	base
	geoms []Geometry
}

var _ Geometry = (*GeometryCollection)(nil)

func (c *GeometryCollection) Type() format.GeometryType { return format.TypeGeometryCollection }

// NumGeometries returns the number of members.
func (c *GeometryCollection) NumGeometries() int { return len(c.geoms) }

// Geometries returns the members.
func (c *GeometryCollection) Geometries() []Geometry { return c.geoms }

// GeometryN returns member i.
func (c *GeometryCollection) GeometryN(i int) Geometry { return c.geoms[i] }

func (c *GeometryCollection) IsEmpty() bool {
	for _, g := range c.geoms {
		if !g.IsEmpty() {
			return false
		}
	}

	return true
}

func (c *GeometryCollection) Envelope() Envelope {
	env := EmptyEnvelope()
	for _, g := range c.geoms {
		env = env.Merge(g.Envelope())
	}

	return env
}

func (c *GeometryCollection) IsBorrowed() bool {
	for _, g := range c.geoms {
		if g.IsBorrowed() {
			return true
		}
	}

	return false
}

func (c *GeometryCollection) Materialize() Geometry {
	out := &GeometryCollection{base: c.base, geoms: make([]Geometry, len(c.geoms))}
	for i, g := range c.geoms {
		out.geoms[i] = g.Materialize()
	}

	return out
}

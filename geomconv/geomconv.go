// Package geomconv converts decoded geometries to github.com/twpayne/go-geom
// values and renders them as WKT or GeoJSON.
package geomconv

import (
	"github.com/arloliu/wkb/errs"
	"github.com/arloliu/wkb/format"
	"github.com/arloliu/wkb/geom"
	"github.com/cockroachdb/errors"
	gogeom "github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"
	"github.com/twpayne/go-geom/encoding/wkt"
)

// Layout maps a dimension to the go-geom layout.
func Layout(dim format.Dimension) (gogeom.Layout, error) {
	switch dim {
	case format.XY:
		return gogeom.XY, nil
	case format.XYZ:
		return gogeom.XYZ, nil
	default:
		return gogeom.NoLayout, errors.Wrapf(errs.ErrInvalidGeometry, "unsupported dimension %d", dim)
	}
}

// ToGoGeom converts g into an owned go-geom value carrying the same SRID.
// A LinearRing converts to a go-geom LinearRing. Members of a multi geometry or
// collection take the container's layout: a Z ordinate is dropped from a member
// of an XY container and filled with 0 for an XY member of an XYZ container.
func ToGoGeom(g geom.Geometry) (gogeom.T, error) {
	layout, err := Layout(g.Dimension())
	if err != nil {
		return nil, err
	}

	return toGoGeom(layout, g)
}

func toGoGeom(layout gogeom.Layout, g geom.Geometry) (gogeom.T, error) {
	switch g := g.(type) {
	case *geom.Point:
		return point(layout, g).SetSRID(g.SRID()), nil
	case *geom.LineString:
		return lineString(layout, g.CoordSeq()).SetSRID(g.SRID()), nil
	case *geom.LinearRing:
		return gogeom.NewLinearRingFlat(layout, flat(layout, g.CoordSeq())), nil
	case *geom.Polygon:
		return polygon(layout, g).SetSRID(g.SRID()), nil
	case *geom.MultiPoint:
		mp := gogeom.NewMultiPoint(layout)
		for _, p := range g.Points() {
			if err := mp.Push(point(layout, p)); err != nil {
				return nil, errors.Wrap(err, "multi point")
			}
		}

		return mp.SetSRID(g.SRID()), nil
	case *geom.MultiLineString:
		mls := gogeom.NewMultiLineString(layout)
		for _, l := range g.LineStrings() {
			if err := mls.Push(lineString(layout, l.CoordSeq())); err != nil {
				return nil, errors.Wrap(err, "multi line string")
			}
		}

		return mls.SetSRID(g.SRID()), nil
	case *geom.MultiPolygon:
		mp := gogeom.NewMultiPolygon(layout)
		for _, p := range g.Polygons() {
			if err := mp.Push(polygon(layout, p)); err != nil {
				return nil, errors.Wrap(err, "multi polygon")
			}
		}

		return mp.SetSRID(g.SRID()), nil
	case *geom.GeometryCollection:
		gc := gogeom.NewGeometryCollection()
		for i, m := range g.Geometries() {
			t, err := toGoGeom(layout, m)
			if err != nil {
				return nil, errors.Wrapf(err, "collection member %d", i)
			}
			if err := gc.Push(t); err != nil {
				return nil, errors.Wrapf(err, "collection member %d", i)
			}
		}

		return gc.SetSRID(g.SRID()), nil
	default:
		return nil, errors.Wrapf(errs.ErrUnknownGeometryType, "%T", g)
	}
}

// WKT renders g as well-known text.
func WKT(g geom.Geometry) (string, error) {
	t, err := ToGoGeom(g)
	if err != nil {
		return "", err
	}

	return wkt.Marshal(t)
}

// GeoJSON renders g as a GeoJSON geometry object. The SRID is not encoded.
func GeoJSON(g geom.Geometry) ([]byte, error) {
	t, err := ToGoGeom(g)
	if err != nil {
		return nil, err
	}

	return geojson.Marshal(t)
}

// flat copies seq into a flat slice with the stride of layout.
func flat(layout gogeom.Layout, seq geom.CoordSeq) []float64 {
	if int(seq.Dimension()) == layout.Stride() {
		return seq.Copy().Flat()
	}

	out := make([]float64, 0, seq.Len()*layout.Stride())
	for _, c := range geom.All(seq) {
		out = append(out, c.X, c.Y)
		if layout == gogeom.XYZ {
			out = append(out, c.Z)
		}
	}

	return out
}

func point(layout gogeom.Layout, p *geom.Point) *gogeom.Point {
	if p.IsEmpty() {
		return gogeom.NewPointEmpty(layout)
	}

	return gogeom.NewPointFlat(layout, flat(layout, p.CoordSeq()))
}

func lineString(layout gogeom.Layout, seq geom.CoordSeq) *gogeom.LineString {
	return gogeom.NewLineStringFlat(layout, flat(layout, seq))
}

func polygon(layout gogeom.Layout, p *geom.Polygon) *gogeom.Polygon {
	if p.Shell() == nil {
		return gogeom.NewPolygon(layout)
	}

	var (
		coords []float64
		ends   []int
	)
	for _, ring := range append([]*geom.LinearRing{p.Shell()}, p.Holes()...) {
		coords = append(coords, flat(layout, ring.CoordSeq())...)
		ends = append(ends, len(coords))
	}

	return gogeom.NewPolygonFlat(layout, coords, ends)
}

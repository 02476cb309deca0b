package geom

import (
	"github.com/arloliu/wkb/errs"
	"github.com/arloliu/wkb/format"
	"github.com/cockroachdb/errors"
)

// Factory builds geometry values from decoded parts.
//
// The decoder calls exactly one Create method per record. A factory may reject
// structurally invalid input by returning an error wrapping
// errs.ErrInvalidGeometry; the decoder aborts the whole decode in that case.
type Factory interface {
	// PrecisionModel returns the hook applied to X and Y ordinates.
	PrecisionModel() PrecisionModel

	CreatePoint(seq CoordSeq) (*Point, error)
	CreateLineString(seq CoordSeq) (*LineString, error)
	CreateLinearRing(seq CoordSeq) (*LinearRing, error)
	// CreatePolygon builds a polygon. shell is nil for an empty polygon.
	CreatePolygon(dim format.Dimension, shell *LinearRing, holes []*LinearRing) (*Polygon, error)
	CreateMultiPoint(dim format.Dimension, points []*Point) (*MultiPoint, error)
	CreateMultiLineString(dim format.Dimension, lines []*LineString) (*MultiLineString, error)
	CreateMultiPolygon(dim format.Dimension, polygons []*Polygon) (*MultiPolygon, error)
	CreateGeometryCollection(dim format.Dimension, geoms []Geometry) (*GeometryCollection, error)
}

// DefaultFactory builds geometries and enforces the structural invariants of
// each variant:
//   - a point has at most one coordinate
//   - a line string has 0 or at least 2 coordinates
//   - a linear ring is empty, or closed with at least MinRingSize coordinates
//   - an empty polygon shell has no holes
type DefaultFactory struct {
	precision PrecisionModel
}

var _ Factory = (*DefaultFactory)(nil)

// NewFactory creates a factory using pm, or Floating when pm is nil.
func NewFactory(pm PrecisionModel) *DefaultFactory {
	if pm == nil {
		pm = Floating{}
	}

	return &DefaultFactory{precision: pm}
}

func (f *DefaultFactory) PrecisionModel() PrecisionModel {
	return f.precision
}

func (f *DefaultFactory) CreatePoint(seq CoordSeq) (*Point, error) {
	if seq.Len() > 1 {
		return nil, errors.Wrapf(errs.ErrInvalidGeometry, "point must have at most 1 coordinate, got %d", seq.Len())
	}

	return &Point{base: base{dim: seq.Dimension()}, seq: seq}, nil
}

func (f *DefaultFactory) CreateLineString(seq CoordSeq) (*LineString, error) {
	if n := seq.Len(); n == 1 {
		return nil, errors.Wrapf(errs.ErrInvalidGeometry, "line string must have 0 or >= 2 points, got %d", n)
	}

	return &LineString{curve{base: base{dim: seq.Dimension()}, seq: seq}}, nil
}

func (f *DefaultFactory) CreateLinearRing(seq CoordSeq) (*LinearRing, error) {
	n := seq.Len()
	if n > 0 && n < MinRingSize {
		return nil, errors.Wrapf(errs.ErrInvalidGeometry, "linear ring must have 0 or >= %d points, got %d", MinRingSize, n)
	}
	if !IsClosed(seq) {
		return nil, errors.Wrap(errs.ErrInvalidGeometry, "linear ring is not closed")
	}

	return &LinearRing{curve{base: base{dim: seq.Dimension()}, seq: seq}}, nil
}

func (f *DefaultFactory) CreatePolygon(dim format.Dimension, shell *LinearRing, holes []*LinearRing) (*Polygon, error) {
	if (shell == nil || shell.IsEmpty()) && len(holes) > 0 {
		return nil, errors.Wrap(errs.ErrInvalidGeometry, "polygon shell is empty but holes are not")
	}

	return &Polygon{base: base{dim: dim}, shell: shell, holes: holes}, nil
}

func (f *DefaultFactory) CreateMultiPoint(dim format.Dimension, points []*Point) (*MultiPoint, error) {
	return &MultiPoint{base: base{dim: dim}, points: points}, nil
}

func (f *DefaultFactory) CreateMultiLineString(dim format.Dimension, lines []*LineString) (*MultiLineString, error) {
	return &MultiLineString{base: base{dim: dim}, lines: lines}, nil
}

func (f *DefaultFactory) CreateMultiPolygon(dim format.Dimension, polygons []*Polygon) (*MultiPolygon, error) {
	return &MultiPolygon{base: base{dim: dim}, polygons: polygons}, nil
}

func (f *DefaultFactory) CreateGeometryCollection(dim format.Dimension, geoms []Geometry) (*GeometryCollection, error) {
	return &GeometryCollection{base: base{dim: dim}, geoms: geoms}, nil
}

package geom

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/arloliu/wkb/endian"
	"github.com/arloliu/wkb/errs"
	"github.com/arloliu/wkb/format"
	"github.com/stretchr/testify/require"
)

func square(x0, y0, size float64) *Sequence {
	return xy(x0, y0, x0+size, y0, x0+size, y0+size, x0, y0+size, x0, y0)
}

func TestFactoryValidation(t *testing.T) {
	f := NewFactory(nil)
	require.Equal(t, Floating{}, f.PrecisionModel())

	t.Run("Point", func(t *testing.T) {
		p, err := f.CreatePoint(xy(1, 2))
		require.NoError(t, err)
		require.Equal(t, format.TypePoint, p.Type())
		require.Equal(t, 1.0, p.X())
		require.Equal(t, 2.0, p.Y())

		_, err = f.CreatePoint(xy(1, 2, 3, 4))
		require.ErrorIs(t, err, errs.ErrInvalidGeometry)
	})

	t.Run("LineString", func(t *testing.T) {
		_, err := f.CreateLineString(xy(1, 2))
		require.ErrorIs(t, err, errs.ErrInvalidGeometry)

		ls, err := f.CreateLineString(xy())
		require.NoError(t, err)
		require.True(t, ls.IsEmpty())

		ls, err = f.CreateLineString(xy(0, 0, 1, 1))
		require.NoError(t, err)
		require.Equal(t, 2, ls.NumPoints())
		require.False(t, ls.IsClosed())
	})

	t.Run("LinearRing", func(t *testing.T) {
		_, err := f.CreateLinearRing(xy(0, 0, 1, 1, 0, 0))
		require.ErrorIs(t, err, errs.ErrInvalidGeometry)

		_, err = f.CreateLinearRing(xy(0, 0, 1, 0, 1, 1, 0, 1))
		require.ErrorIs(t, err, errs.ErrInvalidGeometry)

		r, err := f.CreateLinearRing(square(0, 0, 1))
		require.NoError(t, err)
		require.True(t, r.IsClosed())
		require.Equal(t, format.TypeLinearRing, r.Type())

		r, err = f.CreateLinearRing(xy())
		require.NoError(t, err)
		require.True(t, r.IsEmpty())
	})

	t.Run("PolygonHolesWithoutShell", func(t *testing.T) {
		hole, err := f.CreateLinearRing(square(0, 0, 1))
		require.NoError(t, err)

		_, err = f.CreatePolygon(format.XY, nil, []*LinearRing{hole})
		require.ErrorIs(t, err, errs.ErrInvalidGeometry)
	})
}

func TestPointEmpty(t *testing.T) {
	f := NewFactory(nil)

	p, err := f.CreatePoint(xy())
	require.NoError(t, err)
	require.True(t, p.IsEmpty())
	require.Equal(t, Coord{}, p.Coord())
	require.True(t, p.Envelope().IsEmpty())

	p, err = f.CreatePoint(xy(math.NaN(), math.NaN()))
	require.NoError(t, err)
	require.True(t, p.IsEmpty())
	require.True(t, p.Envelope().IsEmpty())
}

func TestPolygon(t *testing.T) {
	f := NewFactory(nil)
	shell, err := f.CreateLinearRing(square(0, 0, 10))
	require.NoError(t, err)
	hole, err := f.CreateLinearRing(square(2, 2, 2))
	require.NoError(t, err)

	p, err := f.CreatePolygon(format.XY, shell, []*LinearRing{hole})
	require.NoError(t, err)
	require.Equal(t, 1, p.NumHoles())
	require.Equal(t, 2, p.NumRings())
	require.Same(t, shell, p.Shell())
	require.Equal(t, NewEnvelope(0, 0, 10, 10), p.Envelope())
	require.False(t, p.IsEmpty())

	empty, err := f.CreatePolygon(format.XYZ, nil, nil)
	require.NoError(t, err)
	require.True(t, empty.IsEmpty())
	require.Zero(t, empty.NumRings())
	require.Equal(t, format.XYZ, empty.Dimension())
	require.Nil(t, empty.Holes())
}

func TestCollections(t *testing.T) {
	f := NewFactory(nil)
	p1, _ := f.CreatePoint(xy(1, 1))
	p2, _ := f.CreatePoint(xy(5, -2))
	ls, _ := f.CreateLineString(xy(0, 0, 3, 3))
	shell, _ := f.CreateLinearRing(square(10, 10, 1))
	poly, _ := f.CreatePolygon(format.XY, shell, nil)

	mp, err := f.CreateMultiPoint(format.XY, []*Point{p1, p2})
	require.NoError(t, err)
	require.Equal(t, 2, mp.NumGeometries())
	require.Equal(t, NewEnvelope(1, -2, 5, 1), mp.Envelope())

	mls, err := f.CreateMultiLineString(format.XY, []*LineString{ls})
	require.NoError(t, err)
	require.Equal(t, format.TypeMultiLineString, mls.Type())
	require.Len(t, mls.LineStrings(), 1)

	mpoly, err := f.CreateMultiPolygon(format.XY, []*Polygon{poly})
	require.NoError(t, err)
	require.Equal(t, NewEnvelope(10, 10, 11, 11), mpoly.Envelope())

	gc, err := f.CreateGeometryCollection(format.XY, []Geometry{mp, ls, mpoly})
	require.NoError(t, err)
	require.Equal(t, 3, gc.NumGeometries())
	require.Same(t, ls, gc.GeometryN(1))
	require.Equal(t, NewEnvelope(0, -2, 11, 11), gc.Envelope())
	require.False(t, gc.IsEmpty())

	emptyGC, err := f.CreateGeometryCollection(format.XYZ, nil)
	require.NoError(t, err)
	require.True(t, emptyGC.IsEmpty())
	require.Equal(t, format.XYZ, emptyGC.Dimension())
}

func TestSRID(t *testing.T) {
	p, err := NewFactory(nil).CreatePoint(xy(1, 2))
	require.NoError(t, err)
	require.Zero(t, p.SRID())

	p.SetSRID(4326)
	require.Equal(t, 4326, p.SRID())
	require.Equal(t, 4326, p.Materialize().SRID())
}

func TestMaterialize(t *testing.T) {
	f := NewFactory(nil)
	data := make([]byte, 0, 80)
	for _, v := range []float64{0, 0, 1, 0, 1, 1, 0, 1, 0, 0} {
		data = binary.LittleEndian.AppendUint64(data, math.Float64bits(v))
	}
	view := NewViewSequence(data, endian.GetLittleEndianEngine(), format.XY, 5, nil)

	shell, err := f.CreateLinearRing(view)
	require.NoError(t, err)
	poly, err := f.CreatePolygon(format.XY, shell, nil)
	require.NoError(t, err)
	gc, err := f.CreateGeometryCollection(format.XY, []Geometry{poly})
	require.NoError(t, err)

	require.True(t, gc.IsBorrowed())

	owned := gc.Materialize()
	require.False(t, owned.IsBorrowed())
	require.True(t, gc.IsBorrowed())

	// clobber the input buffer, the owned copy must not change
	for i := range data {
		data[i] = 0xFF
	}

	ownedPoly := owned.(*GeometryCollection).GeometryN(0).(*Polygon)
	require.Equal(t, Coord{X: 1, Y: 1}, ownedPoly.Shell().CoordN(2))
	require.Equal(t, NewEnvelope(0, 0, 1, 1), ownedPoly.Envelope())
}

package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGeometryTypeString(t *testing.T) {
	tests := map[GeometryType]string{
		TypePoint:              "Point",
		TypeLineString:         "LineString",
		TypePolygon:            "Polygon",
		TypeMultiPoint:         "MultiPoint",
		TypeMultiLineString:    "MultiLineString",
		TypeMultiPolygon:       "MultiPolygon",
		TypeGeometryCollection: "GeometryCollection",
		TypeLinearRing:         "LinearRing",
		GeometryType(0):        "Unknown",
		GeometryType(8):        "Unknown",
	}

	for typ, want := range tests {
		require.Equal(t, want, typ.String())
	}
}

func TestIsWireType(t *testing.T) {
	for code := 1; code <= 7; code++ {
		require.True(t, GeometryType(code).IsWireType(), "code %d", code)
	}
	require.False(t, GeometryType(0).IsWireType())
	require.False(t, GeometryType(8).IsWireType())
	require.False(t, TypeLinearRing.IsWireType())
}

func TestElementType(t *testing.T) {
	elem, ok := TypeMultiPoint.ElementType()
	require.True(t, ok)
	require.Equal(t, TypePoint, elem)

	elem, ok = TypeMultiLineString.ElementType()
	require.True(t, ok)
	require.Equal(t, TypeLineString, elem)

	elem, ok = TypeMultiPolygon.ElementType()
	require.True(t, ok)
	require.Equal(t, TypePolygon, elem)

	_, ok = TypeGeometryCollection.ElementType()
	require.False(t, ok)
	_, ok = TypePoint.ElementType()
	require.False(t, ok)
}

func TestDimension(t *testing.T) {
	require.Equal(t, 16, XY.Stride())
	require.Equal(t, 24, XYZ.Stride())
	require.Equal(t, "XY", XY.String())
	require.Equal(t, "XYZ", XYZ.String())
	require.Equal(t, "Unknown", Dimension(4).String())
}

func TestCompressionType(t *testing.T) {
	for _, c := range []CompressionType{CompressionNone, CompressionZstd, CompressionS2, CompressionLZ4} {
		parsed, ok := ParseCompression(c.String())
		require.True(t, ok)
		require.Equal(t, c, parsed)
	}

	_, ok := ParseCompression("brotli")
	require.False(t, ok)
	require.Equal(t, "Unknown", CompressionType(9).String())
}

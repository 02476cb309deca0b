package format

type (
	GeometryType    uint8
	Dimension       uint8
	CompressionType uint8
)

const (
	TypePoint              GeometryType = 0x1 // TypePoint represents a single position.
	TypeLineString         GeometryType = 0x2 // TypeLineString represents a sequence of positions.
	TypePolygon            GeometryType = 0x3 // TypePolygon represents a shell ring with optional holes.
	TypeMultiPoint         GeometryType = 0x4 // TypeMultiPoint represents a collection of points.
	TypeMultiLineString    GeometryType = 0x5 // TypeMultiLineString represents a collection of line strings.
	TypeMultiPolygon       GeometryType = 0x6 // TypeMultiPolygon represents a collection of polygons.
	TypeGeometryCollection GeometryType = 0x7 // TypeGeometryCollection represents a heterogeneous collection.

	// TypeLinearRing never appears on the wire; rings are only read inside polygons.
	TypeLinearRing GeometryType = 0x80

	XY  Dimension = 2 // XY represents two ordinates per coordinate.
	XYZ Dimension = 3 // XYZ represents three ordinates per coordinate.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

// IsWireType reports whether t is one of the seven type codes allowed in a record header.
func (t GeometryType) IsWireType() bool {
	return t >= TypePoint && t <= TypeGeometryCollection
}

// ElementType returns the required child type of a Multi* container.
//
// The second result is false for every other type, including
// TypeGeometryCollection which accepts any child.
func (t GeometryType) ElementType() (GeometryType, bool) {
	switch t { //nolint: exhaustive
	case TypeMultiPoint:
		return TypePoint, true
	case TypeMultiLineString:
		return TypeLineString, true
	case TypeMultiPolygon:
		return TypePolygon, true
	default:
		return 0, false
	}
}

func (t GeometryType) String() string {
	switch t {
	case TypePoint:
		return "Point"
	case TypeLineString:
		return "LineString"
	case TypePolygon:
		return "Polygon"
	case TypeMultiPoint:
		return "MultiPoint"
	case TypeMultiLineString:
		return "MultiLineString"
	case TypeMultiPolygon:
		return "MultiPolygon"
	case TypeGeometryCollection:
		return "GeometryCollection"
	case TypeLinearRing:
		return "LinearRing"
	default:
		return "Unknown"
	}
}

// Stride returns the number of bytes one coordinate occupies.
func (d Dimension) Stride() int {
	return int(d) * 8
}

func (d Dimension) String() string {
	switch d {
	case XY:
		return "XY"
	case XYZ:
		return "XYZ"
	default:
		return "Unknown"
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// ParseCompression maps a compression name, as printed by String, to its type.
func ParseCompression(name string) (CompressionType, bool) {
	switch name {
	case "None", "none", "":
		return CompressionNone, true
	case "Zstd", "zstd":
		return CompressionZstd, true
	case "S2", "s2":
		return CompressionS2, true
	case "LZ4", "lz4":
		return CompressionLZ4, true
	default:
		return 0, false
	}
}

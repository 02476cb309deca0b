package column

import (
	"encoding/binary"
	"encoding/hex"
	"math"
	"testing"

	"github.com/arloliu/wkb/compress"
	"github.com/arloliu/wkb/errs"
	"github.com/arloliu/wkb/format"
	"github.com/arloliu/wkb/geom"
	"github.com/arloliu/wkb/internal/hash"
	"github.com/arloliu/wkb/reader"
	"github.com/arloliu/wkb/section"
	"github.com/stretchr/testify/require"
)

func pointWKB(x, y float64) []byte {
	b := []byte{0x01}
	b = binary.LittleEndian.AppendUint32(b, 1)
	b = binary.LittleEndian.AppendUint64(b, math.Float64bits(x))
	b = binary.LittleEndian.AppendUint64(b, math.Float64bits(y))

	return b
}

func lineWKB(ords ...float64) []byte {
	b := []byte{0x00}
	b = binary.BigEndian.AppendUint32(b, 2)
	b = binary.BigEndian.AppendUint32(b, uint32(len(ords)/2)) //nolint: gosec
	for _, v := range ords {
		b = binary.BigEndian.AppendUint64(b, math.Float64bits(v))
	}

	return b
}

func encodeValues(t *testing.T, values [][]byte, opts ...EncoderOption) []byte {
	t.Helper()

	enc, err := NewEncoder(opts...)
	require.NoError(t, err)
	for _, v := range values {
		require.NoError(t, enc.Append(v))
	}
	require.Equal(t, len(values), enc.Len())

	blob, err := enc.Finish()
	require.NoError(t, err)

	return blob
}

func TestColumnRoundTrip(t *testing.T) {
	values := [][]byte{
		pointWKB(1, 2),
		lineWKB(0, 0, 1, 1, 2, 2),
		pointWKB(-5, 7.5),
	}

	compressions := []format.CompressionType{
		format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4,
	}

	for _, comp := range compressions {
		for _, bigEndian := range []bool{false, true} {
			name := comp.String()
			opts := []EncoderOption{WithCompression(comp)}
			if bigEndian {
				name += "/BigEndian"
				opts = append(opts, WithBigEndian())
			}

			t.Run(name, func(t *testing.T) {
				blob := encodeValues(t, values, opts...)

				dec, err := NewDecoder(blob)
				require.NoError(t, err)
				require.Equal(t, len(values), dec.Len())
				require.Equal(t, comp, dec.Header().Compression())
				require.Equal(t, bigEndian, dec.Header().IsBigEndian())

				for i, want := range values {
					raw, err := dec.Raw(i)
					require.NoError(t, err)
					require.Equal(t, want, raw)
				}

				g, err := dec.Geometry(1)
				require.NoError(t, err)
				require.Equal(t, 3, g.(*geom.LineString).NumPoints())

				var types []format.GeometryType
				for g, err := range dec.Geometries() {
					require.NoError(t, err)
					types = append(types, g.Type())
				}
				require.Equal(t, []format.GeometryType{format.TypePoint, format.TypeLineString, format.TypePoint}, types)
			})
		}
	}
}

func TestColumnEmpty(t *testing.T) {
	blob := encodeValues(t, nil)
	require.Len(t, blob, section.ColumnHeaderSize+section.ColumnOffsetSize)

	dec, err := NewDecoder(blob)
	require.NoError(t, err)
	require.Zero(t, dec.Len())

	for range dec.All() {
		t.Fatal("empty column yielded a value")
	}
}

func TestColumnUncompressedBorrowsBlob(t *testing.T) {
	blob := encodeValues(t, [][]byte{pointWKB(1, 2)})

	dec, err := NewDecoder(blob)
	require.NoError(t, err)
	g, err := dec.Geometry(0)
	require.NoError(t, err)
	require.True(t, g.IsBorrowed())

	owned := g.Materialize()
	clear(blob)
	require.Equal(t, geom.Coord{X: 1, Y: 2}, owned.(*geom.Point).Coord())
}

func TestEncoderValidation(t *testing.T) {
	t.Run("RejectsTruncated", func(t *testing.T) {
		enc, err := NewEncoder()
		require.NoError(t, err)

		err = enc.Append(pointWKB(1, 2)[:15])
		require.ErrorIs(t, err, errs.ErrOutOfBounds)
		require.Contains(t, err.Error(), "column value 0")
		require.Zero(t, enc.Len())
	})

	t.Run("StrictReaderOptions", func(t *testing.T) {
		enc, err := NewEncoder(WithReaderOptions(reader.WithStrict(true)))
		require.NoError(t, err)
		require.ErrorIs(t, enc.Append(lineWKB(1, 1)), errs.ErrInvalidGeometry)

		lenient, err := NewEncoder()
		require.NoError(t, err)
		require.NoError(t, lenient.Append(lineWKB(1, 1)))
	})

	t.Run("TrailingBytesDropped", func(t *testing.T) {
		v := append(pointWKB(3, 4), 0xAA, 0xBB)
		blob := encodeValues(t, [][]byte{v})

		dec, err := NewDecoder(blob)
		require.NoError(t, err)
		raw, err := dec.Raw(0)
		require.NoError(t, err)
		require.Equal(t, pointWKB(3, 4), raw)
	})

	t.Run("Disabled", func(t *testing.T) {
		blob := encodeValues(t, [][]byte{{0xDE, 0xAD}}, WithValidation(false))

		dec, err := NewDecoder(blob)
		require.NoError(t, err)
		raw, err := dec.Raw(0)
		require.NoError(t, err)
		require.Equal(t, []byte{0xDE, 0xAD}, raw)

		_, err = dec.Geometry(0)
		require.ErrorIs(t, err, errs.ErrOutOfBounds)
	})

	t.Run("Hex", func(t *testing.T) {
		enc, err := NewEncoder()
		require.NoError(t, err)
		require.NoError(t, enc.AppendHex(hex.EncodeToString(pointWKB(1, 1))))
		require.ErrorIs(t, enc.AppendHex("abc"), errs.ErrInvalidHexInput)
	})
}

func TestEncoderFinished(t *testing.T) {
	enc, err := NewEncoder()
	require.NoError(t, err)
	_, err = enc.Finish()
	require.NoError(t, err)

	_, err = enc.Finish()
	require.ErrorIs(t, err, errs.ErrColumnFinished)
	require.ErrorIs(t, enc.Append(pointWKB(1, 1)), errs.ErrColumnFinished)
}

func TestEncoderInvalidCompression(t *testing.T) {
	_, err := NewEncoder(WithCompression(format.CompressionType(9)))
	require.ErrorIs(t, err, errs.ErrInvalidCompression)
}

func TestEncoderStats(t *testing.T) {
	values := make([][]byte, 500)
	for i := range values {
		values[i] = pointWKB(float64(i%10), 1)
	}

	enc, err := NewEncoder(WithCompression(format.CompressionZstd))
	require.NoError(t, err)
	for _, v := range values {
		require.NoError(t, enc.Append(v))
	}
	blob, err := enc.Finish()
	require.NoError(t, err)

	stats := enc.Stats()
	require.Equal(t, format.CompressionZstd, stats.Algorithm)
	require.Equal(t, int64(501*4+500*21), stats.OriginalSize)
	require.Equal(t, int64(len(blob)-section.ColumnHeaderSize), stats.CompressedSize)
	require.Positive(t, stats.SpaceSavings())
}

func TestDecoderCorruption(t *testing.T) {
	blob := encodeValues(t, [][]byte{pointWKB(1, 2), pointWKB(3, 4)})

	t.Run("ShortHeader", func(t *testing.T) {
		_, err := NewDecoder(blob[:10])
		require.ErrorIs(t, err, errs.ErrInvalidColumnHeader)
	})

	t.Run("Magic", func(t *testing.T) {
		bad := append([]byte{}, blob...)
		bad[2] ^= 0xFF
		_, err := NewDecoder(bad)
		require.ErrorIs(t, err, errs.ErrInvalidMagic)
	})

	t.Run("Checksum", func(t *testing.T) {
		bad := append([]byte{}, blob...)
		bad[len(bad)-1] ^= 0x01
		_, err := NewDecoder(bad)
		require.ErrorIs(t, err, errs.ErrChecksumMismatch)
	})

	t.Run("Truncated", func(t *testing.T) {
		_, err := NewDecoder(blob[:len(blob)-3])
		require.ErrorIs(t, err, errs.ErrChecksumMismatch)
	})
}

// forgeBlob builds a blob around body with a valid header and checksum.
func forgeBlob(count uint32, body []byte) []byte {
	h := section.NewColumnHeader()
	h.Count = count
	h.BodySize = uint32(len(body)) //nolint: gosec
	h.Checksum = hash.Checksum(body)

	return append(h.Bytes(), body...)
}

func TestDecoderInvalidOffsets(t *testing.T) {
	rec := pointWKB(1, 2)
	table := func(offs ...uint32) []byte {
		var b []byte
		for _, o := range offs {
			b = binary.LittleEndian.AppendUint32(b, o)
		}

		return b
	}

	tests := []struct {
		name  string
		count uint32
		body  []byte
	}{
		{name: "TableTooLarge", count: 100, body: table(0, 21)},
		{name: "FirstNotZero", count: 1, body: append(table(1, 21), rec...)},
		{name: "Decreasing", count: 2, body: append(table(0, 21, 10), rec...)},
		{name: "LastMismatch", count: 1, body: append(table(0, 20), rec...)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewDecoder(forgeBlob(tt.count, tt.body))
			require.ErrorIs(t, err, errs.ErrInvalidOffsets)
		})
	}

	dec, err := NewDecoder(forgeBlob(1, append(table(0, 21), rec...)))
	require.NoError(t, err)
	require.Equal(t, 1, dec.Len())
}

func TestDecoderRawOutOfRange(t *testing.T) {
	dec, err := NewDecoder(encodeValues(t, [][]byte{pointWKB(1, 2)}))
	require.NoError(t, err)

	_, err = dec.Raw(1)
	require.ErrorIs(t, err, errs.ErrOutOfBounds)
	_, err = dec.Raw(-1)
	require.ErrorIs(t, err, errs.ErrOutOfBounds)
}

func TestDecoderAllStopsEarly(t *testing.T) {
	dec, err := NewDecoder(encodeValues(t, [][]byte{pointWKB(1, 2), pointWKB(3, 4), pointWKB(5, 6)}))
	require.NoError(t, err)

	n := 0
	for i := range dec.All() {
		n++
		if i == 1 {
			break
		}
	}
	require.Equal(t, 2, n)
}

func TestDecoderBodyLargerThanDeclared(t *testing.T) {
	var body []byte
	for i := range 64 {
		body = append(body, pointWKB(float64(i), 0)...)
	}

	for _, c := range []format.CompressionType{
		format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4,
	} {
		t.Run(c.String(), func(t *testing.T) {
			codec, err := compress.GetCodec(c)
			require.NoError(t, err)
			stored, err := codec.Compress(body)
			require.NoError(t, err)

			h := section.NewColumnHeader()
			h.SetCompression(c)
			h.Count = 1
			h.BodySize = 8
			h.Checksum = hash.Checksum(stored)
			blob := append(h.Bytes(), stored...)

			_, err = NewDecoder(blob)
			require.ErrorIs(t, err, errs.ErrSizeLimitExceeded)
			require.ErrorIs(t, err, errs.ErrInvalidColumnHeader)
		})
	}
}

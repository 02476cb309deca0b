// Package wkb decodes Well-Known Binary (WKB) and PostGIS Extended WKB (EWKB)
// geometry records into an in-memory geometry model.
//
// Records are read with a recursive descent decoder that checks every length
// and count against the bytes actually available, so malformed or hostile
// input produces a typed error carrying the byte offset of the problem
// instead of a panic or an oversized allocation.
//
// # Core Features
//
//   - Points, line strings, polygons, their Multi* forms and nested geometry collections
//   - XY and XYZ coordinates, SRID from the EWKB flag word
//   - Both byte orders, decided per record by its first marker
//   - Zero-copy coordinate views over the input, or owned copies on request
//   - Lenient repair of short line strings and unclosed rings, or strict rejection
//   - Configurable limits on nesting depth and element counts
//
// # Basic Usage
//
// Decoding a single record:
//
//	import "github.com/arloliu/wkb"
//
//	g, err := wkb.DecodeHex("0101000000000000000000F03F0000000000000040")
//	if err != nil {
//	    var perr *errs.ParseError
//	    if errors.As(err, &perr) {
//	        fmt.Println("bad input at offset", perr.Offset)
//	    }
//	    return err
//	}
//	fmt.Println(g.Type(), g.Envelope())
//
// Storing many records in one column blob:
//
//	encoder, _ := wkb.NewColumnEncoder(column.WithCompression(format.CompressionZstd))
//	for _, value := range values {
//	    encoder.Append(value)
//	}
//	data, _ := encoder.Finish()
//
//	decoder, _ := wkb.NewColumnDecoder(data)
//	for g, err := range decoder.Geometries() {
//	    ...
//	}
//
// # Package Structure
//
// This package wraps the reader and column packages for the common cases.
// Use reader directly for custom factories, precision models and repair
// observers, store for persistence with bounding box queries, and geomconv for
// WKT and GeoJSON output.
package wkb

import (
	"sync"

	"github.com/arloliu/wkb/column"
	"github.com/arloliu/wkb/geom"
	"github.com/arloliu/wkb/reader"
)

var readerPool = sync.Pool{
	New: func() any {
		r, _ := reader.New()
		return r
	},
}

// Decode decodes one WKB or EWKB record with the default lenient settings.
//
// The returned geometry borrows its coordinates from data; call Materialize
// before reusing data. Trailing bytes after the record are ignored.
//
// Parameters:
//   - data: The encoded record
//   - opts: Optional reader options (see reader.Option). When empty a pooled
//     default reader is used.
//
// Returns:
//   - geom.Geometry: The decoded geometry
//   - error: An *errs.ParseError wrapping one of the errs sentinels, or
//     errs.ErrInvalidOption for a bad option
//
// Example:
//
//	g, err := wkb.Decode(data, reader.WithStrict(true), reader.WithOwnedCoordinates())
func Decode(data []byte, opts ...reader.Option) (geom.Geometry, error) {
	if len(opts) > 0 {
		r, err := reader.New(opts...)
		if err != nil {
			return nil, err
		}

		return r.Read(data)
	}

	r, _ := readerPool.Get().(*reader.Reader)
	defer readerPool.Put(r)

	return r.Read(data)
}

// DecodeHex decodes a hexadecimal record such as the output of PostGIS ST_AsEWKB.
//
// Upper and lower case digits are accepted. Invalid hex fails with
// errs.ErrInvalidHexInput. Unlike Decode the result never aliases caller
// memory, since the hex is decoded into a fresh buffer first.
func DecodeHex(s string, opts ...reader.Option) (geom.Geometry, error) {
	data, err := reader.DecodeHex(s)
	if err != nil {
		return nil, err
	}

	return Decode(data, opts...)
}

// NewReader creates a reusable reader.
//
// A reader keeps scratch buffers between calls and is not safe for
// concurrent use; create one per goroutine.
func NewReader(opts ...reader.Option) (*reader.Reader, error) {
	return reader.New(opts...)
}

// NewColumnEncoder creates an encoder that packs many records into one column blob.
//
// Available options:
//   - column.WithLittleEndian() / column.WithBigEndian()
//   - column.WithCompression(format.CompressionNone|Zstd|S2|LZ4)
//   - column.WithValidation(true|false)
//   - column.WithReaderOptions(...)
func NewColumnEncoder(opts ...column.EncoderOption) (*column.Encoder, error) {
	return column.NewEncoder(opts...)
}

// NewColumnDecoder opens a column blob produced by a column encoder.
//
// The header, checksum and offset table are verified up front. Reader options
// apply to Geometry and Geometries.
func NewColumnDecoder(data []byte, opts ...reader.Option) (*column.Decoder, error) {
	return column.NewDecoder(data, opts...)
}

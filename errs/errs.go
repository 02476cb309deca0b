// Package errs defines the sentinel errors returned by the wkb packages.
//
// Callers match failures with errors.Is against the sentinels below. Decode
// failures are additionally wrapped in a *ParseError that records the byte
// offset where decoding stopped:
//
//	g, err := wkb.Decode(data)
//	if errors.Is(err, errs.ErrOutOfBounds) {
//	    // truncated input
//	}
//
//	var perr *errs.ParseError
//	if errors.As(err, &perr) {
//	    fmt.Println("failed at byte", perr.Offset)
//	}
package errs

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Decoder errors.
var (
	// ErrOutOfBounds is returned when a read would run past the end of the input.
	ErrOutOfBounds = errors.New("wkb: read out of bounds")
	// ErrMalformedHeader is returned for an unrecognized byte order marker in strict mode.
	ErrMalformedHeader = errors.New("wkb: malformed record header")
	// ErrMixedByteOrder is returned when a nested record switches byte order.
	ErrMixedByteOrder = errors.New("wkb: endian change not supported mid-stream")
	// ErrUnknownGeometryType is returned for type codes outside 1..7.
	ErrUnknownGeometryType = errors.New("wkb: unknown geometry type")
	// ErrTypeMismatch is returned when a Multi* child has the wrong type.
	ErrTypeMismatch = errors.New("wkb: invalid geometry type encountered")
	// ErrInvalidHexInput is returned for odd-length or non-hex input to the hex helpers.
	ErrInvalidHexInput = errors.New("wkb: invalid hex input")
	// ErrRecursionLimitExceeded is returned when collections nest deeper than allowed.
	ErrRecursionLimitExceeded = errors.New("wkb: recursion limit exceeded")
	// ErrTooManyElements is returned when a container declares more elements than allowed.
	ErrTooManyElements = errors.New("wkb: too many elements")
	// ErrInvalidGeometry is returned by a factory rejecting a structurally invalid geometry.
	ErrInvalidGeometry = errors.New("wkb: invalid geometry")
	// ErrInvalidOption is returned when a configuration option is out of range.
	ErrInvalidOption = errors.New("wkb: invalid option")
)

// Column blob errors.
var (
	ErrInvalidColumnHeader = errors.New("column: invalid header")
	ErrInvalidMagic        = errors.New("column: invalid magic number")
	ErrChecksumMismatch    = errors.New("column: checksum mismatch")
	ErrInvalidOffsets      = errors.New("column: invalid offsets")
	ErrInvalidCompression  = errors.New("column: invalid compression type")
	ErrColumnFinished      = errors.New("column: encoder already finished")
	ErrSizeLimitExceeded   = errors.New("column: decompressed body exceeds declared size")
)

// Store errors.
var (
	ErrNotFound    = errors.New("store: geometry not found")
	ErrStoreClosed = errors.New("store: closed")
)

// ParseError records where in the input a decode failed.
type ParseError struct {
	// Offset is the byte offset of the failing read or record.
	Offset int
	// Err is the underlying error, matching one of the sentinels above.
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%v (at byte offset %d)", e.Err, e.Offset)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// At wraps err in a *ParseError at offset.
//
// Errors that already carry an offset are returned unchanged so the innermost
// failure position is the one reported.
func At(offset int, err error) error {
	if err == nil {
		return nil
	}

	var perr *ParseError
	if errors.As(err, &perr) {
		return err
	}

	return &ParseError{Offset: offset, Err: err}
}

// Atf wraps sentinel with a formatted message and places it at offset.
func Atf(offset int, sentinel error, format string, args ...any) error {
	return &ParseError{Offset: offset, Err: errors.Wrapf(sentinel, format, args...)}
}

// Package reader decodes WKB and Extended WKB records into geom values.
//
// # Record Layout
//
// Each record starts with a byte order marker and a type word, optionally
// followed by an SRID, then a body that depends on the type:
//
//	Point              ordinates
//	LineString         count, ordinates
//	Polygon            ring count, then per ring: count, ordinates
//	Multi*, Collection member count, then full member records
//
// Counts are unsigned 32-bit. Before anything is allocated, a count is checked
// against the configured element limit and against the bytes left in the
// input, so a hostile count fails fast with errs.ErrTooManyElements or
// errs.ErrOutOfBounds.
//
// # Byte Order
//
// The first recognized marker fixes the byte order for the whole record tree.
// A nested record declaring the other order fails with
// errs.ErrMixedByteOrder. An unrecognized marker fails with
// errs.ErrMalformedHeader in strict mode; in lenient mode the current order is
// kept, big endian at the start of a record.
//
// # Repairs
//
// In lenient mode (the default) a one-point line string is extended to two
// points and a ring that is too short or not closed is padded or closed.
// Each repair is reported to the observer set with WithRepairObserver. In
// strict mode the factory rejects those shapes with errs.ErrInvalidGeometry.
//
// # Errors
//
// Decoding errors are *errs.ParseError values carrying the byte offset of the
// problem and wrapping one of the errs sentinels:
//
//	_, err := r.Read(data)
//	if errors.Is(err, errs.ErrOutOfBounds) {
//	    // truncated input
//	}
//
// # Thread Safety
//
// A Reader reuses scratch space between calls and is not safe for concurrent
// use. Readers are cheap; create one per goroutine or pool them.
package reader

// Package geom is the geometry model produced by the WKB reader.
//
// It provides the eight geometry variants, the coordinate sequences behind
// them, the Factory through which the reader builds values, the precision
// hook applied to X and Y ordinates, and the structural repairs applied to
// short line strings and unclosed rings.
//
// # Coordinate Sequences
//
// Decoded coordinates are not copied by default. A *ViewSequence reads
// ordinates straight from the input buffer:
//
//	g, _ := wkb.Decode(buf)
//	g.IsBorrowed() // true: g reads from buf
//
// A geometry that must outlive its input buffer, or survive the buffer being
// reused, has to be detached first:
//
//	owned := g.Materialize()
//	g.IsBorrowed()     // still true
//	owned.IsBorrowed() // false
//
// Repaired sequences and sequences built with SequenceOf are always owned.
//
// # Thread Safety
//
// Geometry values are immutable apart from SetSRID and may be read from many
// goroutines. Borrowed geometries are only as stable as their input buffer.
package geom

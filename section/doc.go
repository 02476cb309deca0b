// Package section defines the fixed binary structures shared by the wkb packages.
//
// It covers two layouts:
//
//  1. The WKB record header: a byte order marker followed by a 4-byte type
//     word whose low byte is the geometry type and whose high bits carry the
//     Extended WKB flags.
//  2. The header of a WKB column blob, the container written by the column
//     package.
//
// # Record Header
//
//	Bytes | Field      | Description
//	------|------------|----------------------------------------------
//	0     | byte order | 0x00 XDR (big endian), 0x01 NDR (little endian)
//	1-4   | type word  | bits 0-7 type code, bit 29 SRID, bit 31 Z
//	5-8   | SRID       | present only when bit 29 is set
//
// The type word is decoded once into a TypeDescriptor:
//
//	d := section.TypeWord(engine.Uint32(data[1:5])).Descriptor()
//	// d.Type, d.Dimension, d.HasSRID
//
// # Column Header
//
// ColumnHeader (24 bytes):
//
//	Bytes  | Field    | Type   | Description
//	-------|----------|--------|-------------------------------------------
//	0      | Flags    | uint8  | bit 0 endianness, bits 4-7 compression
//	1      | Version  | uint8  | format version (1)
//	2-3    | Magic    | uint16 | 0x57CB
//	4-7    | Count    | uint32 | number of WKB values
//	8-11   | BodySize | uint32 | uncompressed body size
//	12-15  | Reserved | uint32 | zero
//	16-23  | Checksum | uint64 | xxHash64 of the stored body
//
// All multi-byte column fields use the byte order selected by bit 0 of Flags.
package section

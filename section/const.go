package section

const (
	// Type word masks (Extended WKB)
	TypeCodeMask = 0x000000FF // Mask for the geometry type code (bits 0-7)
	SRIDFlag     = 0x20000000 // SRID follows the type word (bit 29)
	ZFlag        = 0x80000000 // Coordinates carry a Z ordinate (bit 31)

	// Column flag byte
	ColumnEndiannessMask  = 0x01 // 0=little, 1=big
	ColumnCompressionMask = 0xF0 // compression type in bits 4-7

	MagicColumnV1 = 0x57CB // MagicColumnV1 identifies a version 1 WKB column blob.
	ColumnVersion = 1
)

// offset and section sizes
const (
	RecordHeaderSize = 5  // byte order marker + type word
	SRIDSize         = 4  // optional SRID after the type word
	CountSize        = 4  // element, ring and point counts
	MinRecordSize    = 9  // smallest complete record: header + zero count
	ColumnHeaderSize = 24 // fixed column header size in bytes
	ColumnOffsetSize = 4  // one entry of the column offset table
)

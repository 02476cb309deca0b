package section

import (
	"github.com/arloliu/wkb/endian"
	"github.com/arloliu/wkb/errs"
	"github.com/arloliu/wkb/format"
	"github.com/cockroachdb/errors"
)

// ColumnHeader is the fixed-size header at the start of a WKB column blob.
type ColumnHeader struct {
	// Flags packs the endianness (bit 0) and the body compression (bits 4-7).
	Flags uint8 // byte offset 0
	// Version is the column format version.
	Version uint8 // byte offset 1
	// Magic identifies the blob as a WKB column.
	Magic uint16 // byte offset 2-3
	// Count is the number of WKB values stored.
	Count uint32 // byte offset 4-7
	// BodySize is the size of the body after decompression.
	BodySize uint32 // byte offset 8-11
	// Reserved must be zero.
	Reserved uint32 // byte offset 12-15
	// Checksum is the xxHash64 of the stored (possibly compressed) body.
	Checksum uint64 // byte offset 16-23
}

// NewColumnHeader creates a little-endian, uncompressed header.
func NewColumnHeader() *ColumnHeader {
	h := &ColumnHeader{
		Version: ColumnVersion,
		Magic:   MagicColumnV1,
	}
	h.SetCompression(format.CompressionNone)

	return h
}

// IsBigEndian returns whether the blob fields are big-endian.
func (h ColumnHeader) IsBigEndian() bool {
	return h.Flags&ColumnEndiannessMask != 0
}

// WithLittleEndian sets little-endian byte order.
func (h *ColumnHeader) WithLittleEndian() {
	h.Flags &^= ColumnEndiannessMask
}

// WithBigEndian sets big-endian byte order.
func (h *ColumnHeader) WithBigEndian() {
	h.Flags |= ColumnEndiannessMask
}

// Engine returns the endian engine selected by the flags.
func (h ColumnHeader) Engine() endian.EndianEngine {
	if h.IsBigEndian() {
		return endian.GetBigEndianEngine()
	}

	return endian.GetLittleEndianEngine()
}

// Compression returns the body compression from bits 4-7 of Flags.
func (h ColumnHeader) Compression() format.CompressionType {
	return format.CompressionType((h.Flags & ColumnCompressionMask) >> 4)
}

// SetCompression sets the body compression in bits 4-7 of Flags.
func (h *ColumnHeader) SetCompression(c format.CompressionType) {
	h.Flags &^= ColumnCompressionMask
	h.Flags |= (uint8(c) & 0x0F) << 4
}

// Validate checks magic, version and compression.
func (h ColumnHeader) Validate() error {
	if h.Magic != MagicColumnV1 {
		return errors.Wrapf(errs.ErrInvalidMagic, "got 0x%04X", h.Magic)
	}
	if h.Version != ColumnVersion {
		return errors.Wrapf(errs.ErrInvalidColumnHeader, "unsupported version %d", h.Version)
	}
	if h.Reserved != 0 {
		return errors.Wrap(errs.ErrInvalidColumnHeader, "reserved bits set")
	}
	switch h.Compression() {
	case format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4:
	default:
		return errors.Wrapf(errs.ErrInvalidCompression, "code %d", uint8(h.Compression()))
	}

	return nil
}

// Bytes serializes the header.
func (h ColumnHeader) Bytes() []byte {
	b := make([]byte, ColumnHeaderSize)
	engine := h.Engine()

	b[0] = h.Flags
	b[1] = h.Version
	engine.PutUint16(b[2:4], h.Magic)
	engine.PutUint32(b[4:8], h.Count)
	engine.PutUint32(b[8:12], h.BodySize)
	engine.PutUint32(b[12:16], h.Reserved)
	engine.PutUint64(b[16:24], h.Checksum)

	return b
}

// ParseColumnHeader parses and validates a ColumnHeader from the start of data.
//
// The flags byte is read first since it selects the byte order of the other fields.
func ParseColumnHeader(data []byte) (ColumnHeader, error) {
	if len(data) < ColumnHeaderSize {
		return ColumnHeader{}, errors.Wrapf(errs.ErrInvalidColumnHeader,
			"need %d bytes, got %d", ColumnHeaderSize, len(data))
	}

	h := ColumnHeader{Flags: data[0], Version: data[1]}
	engine := h.Engine()
	h.Magic = engine.Uint16(data[2:4])
	h.Count = engine.Uint32(data[4:8])
	h.BodySize = engine.Uint32(data[8:12])
	h.Reserved = engine.Uint32(data[12:16])
	h.Checksum = engine.Uint64(data[16:24])

	if err := h.Validate(); err != nil {
		return ColumnHeader{}, err
	}

	return h, nil
}

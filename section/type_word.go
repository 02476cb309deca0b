package section

import "github.com/arloliu/wkb/format"

// TypeWord is the raw 4-byte type field of a WKB record.
//
// Bits 0-7 hold the geometry type code, bit 29 the SRID flag and bit 31 the Z
// flag (Extended WKB). The remaining bits are ignored.
type TypeWord uint32

// TypeDescriptor is a decoded TypeWord. The decoder dispatches on it and never
// inspects the raw bit pattern again.
type TypeDescriptor struct {
	Type      format.GeometryType
	Dimension format.Dimension
	HasSRID   bool
}

// Code returns the geometry type code from bits 0-7.
func (w TypeWord) Code() uint8 {
	return uint8(w & TypeCodeMask)
}

// HasZ returns whether the Z flag is set.
func (w TypeWord) HasZ() bool {
	return uint32(w)&ZFlag != 0
}

// HasSRID returns whether the SRID flag is set.
func (w TypeWord) HasSRID() bool {
	return uint32(w)&SRIDFlag != 0
}

// Descriptor decodes the word.
//
// Type codes outside 1..7 are passed through unchanged; callers check
// Type.IsWireType before dispatching.
func (w TypeWord) Descriptor() TypeDescriptor {
	dim := format.XY
	if w.HasZ() {
		dim = format.XYZ
	}

	return TypeDescriptor{
		Type:      format.GeometryType(w.Code()),
		Dimension: dim,
		HasSRID:   w.HasSRID(),
	}
}

// NewTypeWord packs a descriptor back into a type word.
func NewTypeWord(d TypeDescriptor) TypeWord {
	w := uint32(d.Type) & TypeCodeMask
	if d.Dimension == format.XYZ {
		w |= ZFlag
	}
	if d.HasSRID {
		w |= SRIDFlag
	}

	return TypeWord(w)
}

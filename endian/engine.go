// Package endian provides byte order engines and the WKB byte order markers.
//
// Every WKB record starts with a single byte naming the byte order of the
// multi-byte fields that follow it:
//
//	0x00  XDR, big endian
//	0x01  NDR, little endian
//
// This package maps those markers onto EndianEngine values, which combine
// binary.ByteOrder and binary.AppendByteOrder so the same value can drive both
// the decoder and the test fixtures that build WKB by appending.
//
//	engine, ok := endian.EngineForMarker(data[0])
//	if !ok {
//	    // unknown marker
//	}
//	word := engine.Uint32(data[1:5])
//
// # Thread Safety
//
// All functions in this package are safe for concurrent use. The returned
// engines are immutable and stateless.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from encoding/binary
// into a single interface.
//
// binary.LittleEndian and binary.BigEndian both satisfy it, and engines are
// comparable with ==.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// Byte order markers as they appear in the first byte of a WKB record.
const (
	MarkerBigEndian    byte = 0x00 // XDR
	MarkerLittleEndian byte = 0x01 // NDR
)

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// EngineForMarker returns the engine selected by a WKB byte order marker.
//
// The second result is false when marker is neither MarkerBigEndian nor
// MarkerLittleEndian.
func EngineForMarker(marker byte) (EndianEngine, bool) {
	switch marker {
	case MarkerBigEndian:
		return binary.BigEndian, true
	case MarkerLittleEndian:
		return binary.LittleEndian, true
	default:
		return nil, false
	}
}

// MarkerFor returns the WKB byte order marker for engine.
func MarkerFor(engine EndianEngine) byte {
	if IsLittleEndian(engine) {
		return MarkerLittleEndian
	}

	return MarkerBigEndian
}

// IsLittleEndian reports whether engine is the little-endian engine.
func IsLittleEndian(engine EndianEngine) bool {
	return engine == binary.LittleEndian
}

// Name returns "NDR" or "XDR" for engine, the names used by the WKB standard.
func Name(engine EndianEngine) string {
	if IsLittleEndian(engine) {
		return "NDR"
	}

	return "XDR"
}

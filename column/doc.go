// Package column stores many WKB values in a single checksummed, optionally
// compressed blob.
//
// Engines that keep geometries in columnar storage usually hand the decoder
// one value at a time out of a larger buffer. A column blob is that buffer:
//
//	Header (24 bytes)
//	  byte    flags     bit 0: 0 little / 1 big endian, bits 4-7: compression
//	  byte    version   = 1
//	  uint16  magic     = 0x57CB
//	  uint32  count
//	  uint32  bodySize  (uncompressed)
//	  uint32  reserved
//	  uint64  checksum  xxHash64 of the stored body
//	Body (possibly compressed)
//	  (count+1) x uint32 offsets, relative to the first record
//	  concatenated WKB records
//
// Flags only govern the header and the offset table. Each WKB record keeps
// its own byte order marker.
//
// # Encoding
//
//	enc, _ := column.NewEncoder(column.WithCompression(format.CompressionZstd))
//	for _, v := range values {
//	    if err := enc.Append(v); err != nil {
//	        return err // undecodable WKB is rejected
//	    }
//	}
//	blob, _ := enc.Finish()
//
// # Decoding
//
//	dec, _ := column.NewDecoder(blob)
//	for g, err := range dec.Geometries() {
//	    ...
//	}
//
// Neither Encoder nor Decoder is safe for concurrent use.
package column

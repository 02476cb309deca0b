package compress

import (
	"github.com/arloliu/wkb/errs"
	"github.com/cockroachdb/errors"
	"github.com/klauspost/compress/s2"
)

// S2Compressor compresses column bodies with S2, the default choice for
// columns written during bulk ingestion.
//
// An S2 block records its decoded length up front, so DecompressLimit rejects
// an oversized body before allocating for it.
type S2Compressor struct{}

var _ Codec = (*S2Compressor)(nil)

// NewS2Compressor creates a new S2 compressor.
func NewS2Compressor() S2Compressor {
	return S2Compressor{}
}

// Compress encodes data as a single S2 block. Empty input yields nil.
func (c S2Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Encode(nil, data), nil
}

// Decompress decodes an S2 block of any size.
func (c S2Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	body, err := s2.Decode(nil, data)
	if err != nil {
		return nil, errors.Wrap(err, "s2 decompression failed")
	}

	return body, nil
}

// DecompressLimit decodes an S2 block whose decoded length is at most limit.
func (c S2Compressor) DecompressLimit(data []byte, limit int) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	n, err := s2.DecodedLen(data)
	if err != nil {
		return nil, errors.Wrap(err, "s2 decompression failed")
	}
	if n > limit {
		return nil, errors.Wrapf(errs.ErrSizeLimitExceeded, "s2 block decodes to %d bytes, limit %d", n, limit)
	}

	body, err := s2.Decode(make([]byte, n), data)
	if err != nil {
		return nil, errors.Wrap(err, "s2 decompression failed")
	}

	return body, nil
}

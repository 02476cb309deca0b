package compress

import (
	"github.com/arloliu/wkb/errs"
	"github.com/cockroachdb/errors"
)

// NoOpCompressor stores column bodies uncompressed.
//
// Uncompressed columns let readers decode geometries straight out of the
// blob without an intermediate copy.
type NoOpCompressor struct{}

var _ Codec = (*NoOpCompressor)(nil)

// NewNoOpCompressor creates a new no-operation compressor.
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

// Compress returns data as is, without copying.
//
// The returned slice shares memory with data.
func (c NoOpCompressor) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns data as is, without copying.
//
// The returned slice shares memory with data, so geometries decoded from it
// borrow the caller's blob.
func (c NoOpCompressor) Decompress(data []byte) ([]byte, error) {
	return data, nil
}

// DecompressLimit returns data as is when it fits in limit.
func (c NoOpCompressor) DecompressLimit(data []byte, limit int) ([]byte, error) {
	if len(data) > limit {
		return nil, errors.Wrapf(errs.ErrSizeLimitExceeded, "stored body is %d bytes, limit %d", len(data), limit)
	}

	return data, nil
}

package compress

import (
	"sync"

	"github.com/arloliu/wkb/errs"
	"github.com/cockroachdb/errors"
	"github.com/pierrec/lz4/v4"
)

// lz4CompressorPool pools lz4.Compressor instances, which keep a hash table
// between calls.
var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// maxLZ4BlockSize bounds the buffer grown while decompressing a block of
// unknown size.
const maxLZ4BlockSize = 128 * 1024 * 1024

// LZ4Compressor favors decompression speed over ratio.
type LZ4Compressor struct{}

var _ Codec = (*LZ4Compressor)(nil)

// NewLZ4Compressor creates a new LZ4 compressor.
func NewLZ4Compressor() LZ4Compressor {
	return LZ4Compressor{}
}

// Compress compresses data as a single LZ4 block.
//
// Returns nil for empty input.
func (c LZ4Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	dst := make([]byte, lz4.CompressBlockBound(len(data)))

	lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(lc)

	n, err := lc.CompressBlock(data, dst)
	if err != nil {
		return nil, err
	}

	return dst[:n], nil
}

// Decompress decompresses a single LZ4 block of up to 128MB.
//
// A block does not record its decompressed size, so the buffer starts at 4x
// the input and doubles on lz4.ErrInvalidSourceShortBuffer.
func (c LZ4Compressor) Decompress(data []byte) ([]byte, error) {
	return decompressLZ4(data, maxLZ4BlockSize)
}

// DecompressLimit decompresses a single LZ4 block whose output is at most
// limit bytes, and never more than 128MB.
func (c LZ4Compressor) DecompressLimit(data []byte, limit int) ([]byte, error) {
	return decompressLZ4(data, min(limit, maxLZ4BlockSize))
}

func decompressLZ4(data []byte, limit int) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	bufSize := max(min(len(data)*4, limit), 0)
	for {
		buf := make([]byte, bufSize)
		n, err := lz4.UncompressBlock(data, buf)
		if err == nil {
			return buf[:n], nil
		}
		if !errors.Is(err, lz4.ErrInvalidSourceShortBuffer) {
			return nil, errors.Wrap(err, "lz4 decompression failed")
		}
		if bufSize >= limit {
			return nil, errors.Wrapf(errs.ErrSizeLimitExceeded, "lz4 block decodes to more than %d bytes", limit)
		}
		bufSize = min(bufSize*2, limit)
	}
}

package column

import (
	"math"

	"github.com/arloliu/wkb/compress"
	"github.com/arloliu/wkb/errs"
	"github.com/arloliu/wkb/internal/hash"
	"github.com/arloliu/wkb/internal/options"
	"github.com/arloliu/wkb/internal/pool"
	"github.com/arloliu/wkb/reader"
	"github.com/arloliu/wkb/section"
	"github.com/cockroachdb/errors"
)

// Encoder accumulates WKB values and produces a column blob.
//
// Note: The Encoder is NOT reusable. After Finish, create a new encoder.
type Encoder struct {
	cfg      *EncoderConfig
	reader   *reader.Reader
	records  *pool.ByteBuffer
	offsets  []uint32
	stats    compress.CompressionStats
	finished bool
}

// NewEncoder creates a column encoder.
//
// Parameters:
//   - opts: Encoder options (endianness, compression, validation)
//
// Returns:
//   - *Encoder: New encoder instance
//   - error: Invalid option or reader option
func NewEncoder(opts ...EncoderOption) (*Encoder, error) {
	cfg := NewEncoderConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	e := &Encoder{
		cfg:     cfg,
		records: pool.GetColumnBuffer(),
		offsets: make([]uint32, 1, 64),
	}

	if cfg.validate {
		r, err := reader.New(cfg.readerOpts...)
		if err != nil {
			pool.PutColumnBuffer(e.records)
			return nil, err
		}
		e.reader = r
	}

	return e, nil
}

// Append adds one WKB value.
//
// With validation on, the value is decoded first and rejected with the decode
// error if it fails; only the bytes of the decoded record are stored, so
// trailing bytes after the record are dropped.
func (e *Encoder) Append(value []byte) error {
	if e.finished {
		return errs.ErrColumnFinished
	}
	if len(e.offsets)-1 >= MaxColumnCount {
		return errors.Newf("column: more than %d values", MaxColumnCount)
	}

	record := value
	if e.reader != nil {
		_, n, err := e.reader.ReadPrefix(value)
		if err != nil {
			return errors.Wrapf(err, "column value %d", len(e.offsets)-1)
		}
		record = value[:n]
	}

	end := uint64(e.records.Len()) + uint64(len(record))
	if end > math.MaxUint32 {
		return errors.Wrapf(errs.ErrInvalidOffsets, "column body exceeds %d bytes", uint64(math.MaxUint32))
	}

	_, _ = e.records.Write(record)
	e.offsets = append(e.offsets, uint32(end))

	return nil
}

// AppendHex adds one hex-encoded WKB value.
func (e *Encoder) AppendHex(s string) error {
	value, err := reader.DecodeHex(s)
	if err != nil {
		return err
	}

	return e.Append(value)
}

// Len returns the number of values appended so far.
func (e *Encoder) Len() int {
	return len(e.offsets) - 1
}

// Finish lays out the body, compresses it and returns the complete blob.
//
// Returns:
//   - []byte: Column blob (header followed by the stored body)
//   - error: ErrColumnFinished when called twice, or a compression error
func (e *Encoder) Finish() ([]byte, error) {
	if e.finished {
		return nil, errs.ErrColumnFinished
	}
	e.finished = true
	defer func() {
		pool.PutColumnBuffer(e.records)
		e.records = nil
	}()

	header := e.cfg.header
	engine := header.Engine()

	tableSize := len(e.offsets) * section.ColumnOffsetSize
	body := make([]byte, 0, tableSize+e.records.Len())
	for _, off := range e.offsets {
		body = engine.AppendUint32(body, off)
	}
	body = append(body, e.records.Bytes()...)

	stored, err := e.cfg.codec.Compress(body)
	if err != nil {
		return nil, errors.Wrap(err, "compress column body")
	}

	header.Count = uint32(e.Len())      //nolint: gosec
	header.BodySize = uint32(len(body)) //nolint: gosec
	header.Checksum = hash.Checksum(stored)

	e.stats = compress.CompressionStats{
		Algorithm:      header.Compression(),
		OriginalSize:   int64(len(body)),
		CompressedSize: int64(len(stored)),
	}

	out := make([]byte, 0, section.ColumnHeaderSize+len(stored))
	out = append(out, header.Bytes()...)
	out = append(out, stored...)

	return out, nil
}

// Stats returns the body compression statistics of the finished blob.
func (e *Encoder) Stats() compress.CompressionStats {
	return e.stats
}

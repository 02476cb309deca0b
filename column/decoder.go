package column

import (
	"iter"
	"math"

	"github.com/arloliu/wkb/compress"
	"github.com/arloliu/wkb/endian"
	"github.com/arloliu/wkb/errs"
	"github.com/arloliu/wkb/geom"
	"github.com/arloliu/wkb/internal/hash"
	"github.com/arloliu/wkb/reader"
	"github.com/arloliu/wkb/section"
	"github.com/cockroachdb/errors"
)

// Decoder gives indexed access to the values of a column blob.
//
// Raw values and borrowed geometries alias the decompressed body. For
// uncompressed blobs that is the caller's data itself.
//
// Note: The Decoder is NOT thread-safe since it shares one reader between calls.
type Decoder struct {
	header  section.ColumnHeader
	engine  endian.EndianEngine
	offsets []byte
	records []byte
	reader  *reader.Reader
}

// NewDecoder verifies data and prepares it for access.
//
// The header, checksum and offset table are all validated up front, so Raw
// and Geometry only fail for a bad index or an undecodable value.
//
// Parameters:
//   - data: Column blob produced by Encoder.Finish
//   - opts: Options for the reader used by Geometry and Geometries
//
// Returns:
//   - *Decoder: Decoder ready for access
//   - error: ErrInvalidColumnHeader, ErrInvalidMagic, ErrChecksumMismatch,
//     ErrInvalidCompression, ErrSizeLimitExceeded or ErrInvalidOffsets
func NewDecoder(data []byte, opts ...reader.Option) (*Decoder, error) {
	header, err := section.ParseColumnHeader(data)
	if err != nil {
		return nil, err
	}

	stored := data[section.ColumnHeaderSize:]
	if sum := hash.Checksum(stored); sum != header.Checksum {
		return nil, errors.Wrapf(errs.ErrChecksumMismatch, "expected 0x%016x, got 0x%016x", header.Checksum, sum)
	}

	codec, err := compress.GetCodec(header.Compression())
	if err != nil {
		return nil, err
	}
	if header.BodySize > math.MaxInt32 {
		return nil, errors.Wrapf(errs.ErrInvalidColumnHeader, "body size %d too large", header.BodySize)
	}
	body, err := codec.DecompressLimit(stored, int(header.BodySize))
	if err != nil {
		err = errors.Wrap(err, "decompress column body")
		if errors.Is(err, errs.ErrSizeLimitExceeded) {
			err = errors.Mark(err, errs.ErrInvalidColumnHeader)
		}

		return nil, err
	}
	if len(body) != int(header.BodySize) {
		return nil, errors.Wrapf(errs.ErrInvalidColumnHeader,
			"body size %d, header declares %d", len(body), header.BodySize)
	}

	r, err := reader.New(opts...)
	if err != nil {
		return nil, err
	}

	d := &Decoder{header: header, engine: header.Engine(), reader: r}
	if err := d.splitBody(body); err != nil {
		return nil, err
	}

	return d, nil
}

// splitBody separates the offset table from the records and checks that the
// offsets start at 0, never decrease and end at the records length.
func (d *Decoder) splitBody(body []byte) error {
	tableSize := (int(d.header.Count) + 1) * section.ColumnOffsetSize
	if tableSize > len(body) {
		return errors.Wrapf(errs.ErrInvalidOffsets,
			"offset table of %d bytes exceeds body of %d bytes", tableSize, len(body))
	}

	d.offsets = body[:tableSize]
	d.records = body[tableSize:]

	prev := uint32(0)
	for i := 0; i <= int(d.header.Count); i++ {
		off := d.offset(i)
		switch {
		case i == 0 && off != 0:
			return errors.Wrapf(errs.ErrInvalidOffsets, "first offset is %d", off)
		case off < prev:
			return errors.Wrapf(errs.ErrInvalidOffsets, "offset %d decreases from %d to %d", i, prev, off)
		}
		prev = off
	}
	if int(prev) != len(d.records) {
		return errors.Wrapf(errs.ErrInvalidOffsets,
			"last offset %d does not match records size %d", prev, len(d.records))
	}

	return nil
}

func (d *Decoder) offset(i int) uint32 {
	return d.engine.Uint32(d.offsets[i*section.ColumnOffsetSize:])
}

// Header returns the parsed column header.
func (d *Decoder) Header() section.ColumnHeader {
	return d.header
}

// Len returns the number of values.
func (d *Decoder) Len() int {
	return int(d.header.Count)
}

// Raw returns value i without decoding it.
func (d *Decoder) Raw(i int) ([]byte, error) {
	if i < 0 || i >= d.Len() {
		return nil, errors.Wrapf(errs.ErrOutOfBounds, "column index %d out of range [0, %d)", i, d.Len())
	}

	start, end := d.offset(i), d.offset(i+1)

	return d.records[start:end:end], nil
}

// Geometry decodes value i.
func (d *Decoder) Geometry(i int) (geom.Geometry, error) {
	raw, err := d.Raw(i)
	if err != nil {
		return nil, err
	}

	g, err := d.reader.Read(raw)
	if err != nil {
		return nil, errors.Wrapf(err, "column value %d", i)
	}

	return g, nil
}

// All iterates over the raw values.
func (d *Decoder) All() iter.Seq2[int, []byte] {
	return func(yield func(int, []byte) bool) {
		for i := range d.Len() {
			start, end := d.offset(i), d.offset(i+1)
			if !yield(i, d.records[start:end:end]) {
				return
			}
		}
	}
}

// Geometries iterates over the decoded values. Iteration continues after a
// value fails to decode; the failure is reported with a nil geometry.
func (d *Decoder) Geometries() iter.Seq2[geom.Geometry, error] {
	return func(yield func(geom.Geometry, error) bool) {
		for i := range d.Len() {
			if !yield(d.Geometry(i)) {
				return
			}
		}
	}
}

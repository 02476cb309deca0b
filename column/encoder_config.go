package column

import (
	"github.com/arloliu/wkb/compress"
	"github.com/arloliu/wkb/format"
	"github.com/arloliu/wkb/internal/options"
	"github.com/arloliu/wkb/reader"
	"github.com/arloliu/wkb/section"
)

// MaxColumnCount is the maximum number of values in one column blob.
const MaxColumnCount = 1 << 24

// EncoderConfig holds the column encoder configuration.
type EncoderConfig struct {
	header     *section.ColumnHeader
	codec      compress.Codec
	validate   bool
	readerOpts []reader.Option
}

// NewEncoderConfig creates a little-endian, uncompressed, validating configuration.
func NewEncoderConfig() *EncoderConfig {
	return &EncoderConfig{
		header:   section.NewColumnHeader(),
		codec:    compress.NewNoOpCompressor(),
		validate: true,
	}
}

// Header returns the header being built.
func (c *EncoderConfig) Header() *section.ColumnHeader {
	return c.header
}

// EncoderOption configures an Encoder.
type EncoderOption = options.Option[*EncoderConfig]

// WithLittleEndian writes the header and offset table little-endian. This is the default.
func WithLittleEndian() EncoderOption {
	return options.NoError(func(c *EncoderConfig) {
		c.header.WithLittleEndian()
	})
}

// WithBigEndian writes the header and offset table big-endian.
func WithBigEndian() EncoderOption {
	return options.NoError(func(c *EncoderConfig) {
		c.header.WithBigEndian()
	})
}

// WithCompression selects the body compression.
func WithCompression(comp format.CompressionType) EncoderOption {
	return options.New(func(c *EncoderConfig) error {
		codec, err := compress.CreateCodec(comp, "column body")
		if err != nil {
			return err
		}
		c.codec = codec
		c.header.SetCompression(comp)

		return nil
	})
}

// WithValidation controls whether Append decodes each value before accepting
// it. Validation is on by default.
func WithValidation(enabled bool) EncoderOption {
	return options.NoError(func(c *EncoderConfig) {
		c.validate = enabled
	})
}

// WithReaderOptions configures the reader used for validation, for example
// to validate in strict mode.
func WithReaderOptions(opts ...reader.Option) EncoderOption {
	return options.NoError(func(c *EncoderConfig) {
		c.readerOpts = append(c.readerOpts, opts...)
	})
}

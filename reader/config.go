package reader

import (
	"github.com/arloliu/wkb/errs"
	"github.com/arloliu/wkb/geom"
	"github.com/arloliu/wkb/internal/options"
	"github.com/cockroachdb/errors"
)

const (
	// DefaultMaxDepth is the default limit on record nesting, counting the
	// top-level record as depth 1.
	DefaultMaxDepth = 64

	// DefaultMaxElements is the default limit on the member count of a
	// Multi* container or collection and on the ring count of a polygon.
	DefaultMaxElements = 1 << 20
)

// Config holds the reader configuration. It is populated through Option values.
type Config struct {
	strict      bool
	owned       bool
	maxDepth    int
	maxElements int
	factory     geom.Factory
	observer    func(Repair)
}

func defaultConfig() Config {
	return Config{
		maxDepth:    DefaultMaxDepth,
		maxElements: DefaultMaxElements,
		factory:     geom.NewFactory(nil),
	}
}

// Option configures a Reader.
type Option = options.Option[*Config]

// WithStrict disables the structural repairs and rejects unrecognized byte
// order markers.
//
// Without repairs, a line string with one point or an unclosed or short ring
// reaches the factory as is; the default factory rejects it with
// errs.ErrInvalidGeometry.
func WithStrict(strict bool) Option {
	return options.NoError(func(c *Config) {
		c.strict = strict
	})
}

// WithMaxDepth limits how deeply records may nest.
func WithMaxDepth(depth int) Option {
	return options.New(func(c *Config) error {
		if depth < 1 {
			return errors.Wrapf(errs.ErrInvalidOption, "max depth must be >= 1, got %d", depth)
		}
		c.maxDepth = depth

		return nil
	})
}

// WithMaxElements limits the declared member count of containers and the ring
// count of polygons. Coordinate counts are bounded by the input length only.
func WithMaxElements(n int) Option {
	return options.New(func(c *Config) error {
		if n < 1 {
			return errors.Wrapf(errs.ErrInvalidOption, "max elements must be >= 1, got %d", n)
		}
		c.maxElements = n

		return nil
	})
}

// WithFactory sets the factory used to build geometries.
func WithFactory(f geom.Factory) Option {
	return options.New(func(c *Config) error {
		if f == nil {
			return errors.Wrap(errs.ErrInvalidOption, "factory must not be nil")
		}
		c.factory = f

		return nil
	})
}

// WithPrecision is shorthand for WithFactory(geom.NewFactory(pm)).
func WithPrecision(pm geom.PrecisionModel) Option {
	return options.NoError(func(c *Config) {
		c.factory = geom.NewFactory(pm)
	})
}

// WithOwnedCoordinates makes the reader copy every coordinate out of the input
// buffer, so decoded geometries never borrow it.
func WithOwnedCoordinates() Option {
	return options.NoError(func(c *Config) {
		c.owned = true
	})
}

// WithRepairObserver registers fn to be called for every structural repair
// applied in lenient mode.
func WithRepairObserver(fn func(Repair)) Option {
	return options.NoError(func(c *Config) {
		c.observer = fn
	})
}

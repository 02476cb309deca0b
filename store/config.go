package store

import (
	"github.com/arloliu/wkb/internal/options"
	"github.com/arloliu/wkb/reader"
	"github.com/cockroachdb/pebble/vfs"
)

// Config holds the store configuration.
type Config struct {
	fs         vfs.FS
	sync       bool
	readerOpts []reader.Option
}

// Option configures a Store.
type Option = options.Option[*Config]

// WithFS sets the filesystem pebble runs on, vfs.NewMem() in tests.
func WithFS(fs vfs.FS) Option {
	return options.NoError(func(c *Config) {
		c.fs = fs
	})
}

// WithSync makes every write wait for the WAL to reach stable storage.
// Writes are not synced by default.
func WithSync(enabled bool) Option {
	return options.NoError(func(c *Config) {
		c.sync = enabled
	})
}

// WithReaderOptions configures the reader used to validate and decode values.
func WithReaderOptions(opts ...reader.Option) Option {
	return options.NoError(func(c *Config) {
		c.readerOpts = append(c.readerOpts, opts...)
	})
}

// Package options implements the functional option pattern shared by the
// reader, column and store packages.
//
// An option is a value that mutates a configuration target of type T and may
// reject the change:
//
//	type ReaderOption = options.Option[*ReaderConfig]
//
//	func WithMaxDepth(depth int) ReaderOption {
//	    return options.New(func(c *ReaderConfig) error {
//	        if depth < 1 {
//	            return errs.ErrInvalidOption
//	        }
//	        c.maxDepth = depth
//	        return nil
//	    })
//	}
package options

// Option configures a target of type T.
type Option[T any] interface {
	apply(T) error
}

// Func adapts a function to the Option interface.
type Func[T any] struct {
	fn func(T) error
}

func (f *Func[T]) apply(target T) error {
	return f.fn(target)
}

// New creates an option that may fail.
func New[T any](fn func(T) error) *Func[T] {
	return &Func[T]{fn: fn}
}

// NoError creates an option that cannot fail.
func NoError[T any](fn func(T)) *Func[T] {
	return &Func[T]{
		fn: func(target T) error {
			fn(target)
			return nil
		},
	}
}

// Apply applies opts to target in order and stops at the first error.
// Nil options are skipped.
func Apply[T any](target T, opts ...Option[T]) error {
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt.apply(target); err != nil {
			return err
		}
	}

	return nil
}

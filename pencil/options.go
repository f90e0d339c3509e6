package pencil

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/tilegrid/grid"
	"github.com/katalvlaran/tilegrid/internal/logging"
)

// Option configures a pencil at construction.
// An invalid Option is recorded and returned by the constructor.
type Option func(*Options)

// Options holds pencil settings.
type Options struct {
	// Size is the brush size; each selected cell spreads into a zone of
	// radius Size-1. Must be strictly positive.
	Size int

	// Logger receives Debug records for starts and effective updates.
	Logger *slog.Logger

	err error
}

// DefaultOptions returns Options with Size 1 and a discarding logger.
func DefaultOptions() Options {
	return Options{
		Size:   1,
		Logger: logging.NewNop(),
	}
}

// WithSize sets the brush size.
//
//	n > 0:  zone radius n-1 around every painted cell
//	n <= 0: invalid option → grid.ErrInvalidDimension
func WithSize(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: pencil size %d", grid.ErrInvalidDimension, n)
			return
		}
		o.Size = n
	}
}

// WithLogger routes pencil diagnostics to l. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

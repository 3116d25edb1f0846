// SPDX-License-Identifier: MIT

package timedepth

import "go.uber.org/zap"

const panicNilLogger = "timedepth: WithLogger: logger must be non-nil"

// Options holds the resolved configuration for NewRelation and Convert.
type Options struct {
	logger *zap.Logger // soft-skip notices; zap.NewNop() by default
	strict bool        // reject mapping inputs outside the calibrated range
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns silent logging and unbounded extrapolation.
func DefaultOptions() Options {
	return Options{logger: zap.NewNop()}
}

// WithLogger routes soft-skip notices (missing curves) to l.
// Panics if l is nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}

	return func(o *Options) { o.logger = l }
}

// WithStrictRange makes the Mappings built by NewRelation fail with ErrOutOfRange
// instead of extrapolating beyond the first/last checkshot.
func WithStrictRange() Option {
	return func(o *Options) { o.strict = true }
}

func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

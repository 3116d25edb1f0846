// SPDX-License-Identifier: MIT

package project

import "go.uber.org/zap"

const panicNilLogger = "project: WithLogger: logger must be non-nil"

// Options configures a Project.
type Options struct {
	logger *zap.Logger
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns a silent logger.
func DefaultOptions() Options {
	return Options{logger: zap.NewNop()}
}

// WithLogger routes batch notices (overwritten wells, skipped wells) to l.
// Panics if l is nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}

	return func(o *Options) { o.logger = l }
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

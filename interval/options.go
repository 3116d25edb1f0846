// SPDX-License-Identifier: MIT

package interval

import (
	"fmt"

	"go.uber.org/zap"
)

// MissingPolicy decides how Summarize treats a cutoff curve that the logs lack.
type MissingPolicy int

const (
	// MissingSubstitute reads an absent curve as a constant: 1 for Vsh and Sw,
	// 0 for porosity. With usual cutoffs this yields no pay, but a loose Vsh
	// cutoff (> 1) can turn a whole interval into pay. Each substitution is
	// logged at Warn level.
	MissingSubstitute MissingPolicy = iota

	// MissingReject fails with ErrMissingCurve.
	MissingReject

	// MissingNoPay reports zero net pay whenever a pay curve is absent.
	MissingNoPay
)

const (
	panicNilLogger     = "interval: WithLogger: logger must be non-nil"
	panicPolicyInvalid = "interval: WithMissingPolicy: unknown policy"
)

// String returns the policy name.
func (p MissingPolicy) String() string {
	switch p {
	case MissingSubstitute:
		return "substitute"
	case MissingReject:
		return "reject"
	case MissingNoPay:
		return "no_pay"
	default:
		return "unknown"
	}
}

// ParseMissingPolicy maps "substitute", "reject" or "no_pay" onto a policy.
func ParseMissingPolicy(s string) (MissingPolicy, error) {
	for _, p := range []MissingPolicy{MissingSubstitute, MissingReject, MissingNoPay} {
		if p.String() == s {
			return p, nil
		}
	}

	return MissingSubstitute, fmt.Errorf("ParseMissingPolicy: %w %q", ErrUnknownPolicy, s)
}

// Options configures Summarize.
type Options struct {
	logger  *zap.Logger
	missing MissingPolicy
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns a silent logger and MissingSubstitute.
func DefaultOptions() Options {
	return Options{logger: zap.NewNop(), missing: MissingSubstitute}
}

// WithLogger sets the destination of soft-skip notices. Panics if l is nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}

	return func(o *Options) { o.logger = l }
}

// WithMissingPolicy selects how absent cutoff curves are handled.
func WithMissingPolicy(p MissingPolicy) Option {
	if p < MissingSubstitute || p > MissingNoPay {
		panic(panicPolicyInvalid)
	}

	return func(o *Options) { o.missing = p }
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

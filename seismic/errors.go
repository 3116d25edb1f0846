// SPDX-License-Identifier: MIT
// Package: welltie/seismic
//
// errors.go — sentinel errors for reflectivity, wavelets and convolution.

package seismic

import (
	"errors"
	"fmt"
)

var (
	// ErrNilInput indicates a nil series or wavelet.
	ErrNilInput = errors.New("seismic: input is nil")

	// ErrTooFewSamples indicates an impedance series with fewer than two samples.
	ErrTooFewSamples = errors.New("seismic: at least two samples required")

	// ErrInvalidMode indicates an unsupported alignment or convolution mode string.
	ErrInvalidMode = errors.New("seismic: invalid mode")

	// ErrBadParameter indicates a non-positive or non-finite wavelet parameter,
	// or a malformed custom wavelet.
	ErrBadParameter = errors.New("seismic: bad parameter")

	// ErrEmptyWavelet indicates a wavelet without samples.
	ErrEmptyWavelet = errors.New("seismic: empty wavelet")
)

func seismicErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

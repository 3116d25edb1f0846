// SPDX-License-Identifier: MIT
// Package: welltie/timedepth
//
// errors.go — sentinel errors for depth↔time conversion.
//
// Priority when several conditions hold:
//   nil inputs -> too few points -> bad time index -> conversion (per curve).

package timedepth

import (
	"errors"
	"fmt"
)

var (
	// ErrTooFewPoints indicates fewer than two checkshot rows, or fewer than two
	// unique depths/times after de-duplication.
	ErrTooFewPoints = errors.New("timedepth: at least two unique points required")

	// ErrBadTimeIndex indicates a target time index that is not finite and strictly increasing,
	// or a regular axis requested with a non-positive step.
	ErrBadTimeIndex = errors.New("timedepth: time index must be finite and strictly increasing")

	// ErrOutOfRange is returned by a strict Mapping for inputs outside the checkshot range.
	ErrOutOfRange = errors.New("timedepth: value outside calibrated range")

	// ErrConversion wraps any failure of the depth→time converter while resampling a curve.
	// The message names the offending curve.
	ErrConversion = errors.New("timedepth: depth-to-time conversion failed")

	// ErrNilConverter indicates that no depth→time converter was supplied.
	ErrNilConverter = errors.New("timedepth: converter is nil")

	// ErrNilInput indicates a nil curve or table.
	ErrNilInput = errors.New("timedepth: input is nil")
)

func tdErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

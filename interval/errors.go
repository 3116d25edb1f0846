// SPDX-License-Identifier: MIT

package interval

import (
	"errors"
	"fmt"
)

var (
	// ErrNilInput indicates a nil table or top set.
	ErrNilInput = errors.New("interval: input is nil")

	// ErrDuplicateTop indicates two tops sharing a name.
	ErrDuplicateTop = errors.New("interval: duplicate top name")

	// ErrEmptyName indicates a top or curve with an empty name.
	ErrEmptyName = errors.New("interval: empty name")

	// ErrMissingCurve indicates a cutoff curve absent from the logs under MissingReject.
	ErrMissingCurve = errors.New("interval: curve not found")

	// ErrUnknownTop indicates a top name that is not in the set.
	ErrUnknownTop = errors.New("interval: unknown top")

	// ErrUnknownPolicy indicates an unrecognised missing-curve policy name.
	ErrUnknownPolicy = errors.New("interval: unknown missing-curve policy")

	// ErrBadDepth indicates a NaN or infinite top depth.
	ErrBadDepth = errors.New("interval: top depth must be finite")
)

func intervalErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

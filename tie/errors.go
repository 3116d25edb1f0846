// SPDX-License-Identifier: MIT

package tie

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput indicates a sequence with no defined samples.
	ErrEmptyInput = errors.New("tie: input sequences must be non-empty")

	// ErrBadInput indicates invalid options (Window < −1, negative or NaN penalty).
	ErrBadInput = errors.New("tie: bad input")

	// ErrNoAlignment indicates that the window admits no path between the sequences.
	ErrNoAlignment = errors.New("tie: no alignment within window")

	// ErrNilInput indicates a nil series.
	ErrNilInput = errors.New("tie: input is nil")
)

func tieErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// SPDX-License-Identifier: MIT

package petro

import (
	"errors"
	"fmt"
)

var (
	// ErrNilInput indicates a nil series.
	ErrNilInput = errors.New("petro: input is nil")

	// ErrBadParameter indicates end-members that coincide (division by zero) or
	// a non-positive constant where a positive one is required.
	ErrBadParameter = errors.New("petro: bad parameter")

	// ErrPorosityRange indicates porosity outside the open interval (0, 1).
	ErrPorosityRange = errors.New("petro: porosity values must be between 0 and 1")

	// ErrResistivity indicates a non-positive resistivity.
	ErrResistivity = errors.New("petro: resistivity values must be positive")

	// ErrIndexMismatch indicates two curves sampled on different indexes.
	ErrIndexMismatch = errors.New("petro: curves do not share an index")
)

func petroErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

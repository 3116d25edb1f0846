// SPDX-License-Identifier: MIT

package wellio

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingColumn indicates that a required CSV column is absent.
	ErrMissingColumn = errors.New("wellio: missing required column")

	// ErrEmptyInput indicates a CSV document without a header row.
	ErrEmptyInput = errors.New("wellio: empty input")

	// ErrNilInput indicates a nil table or summary passed to a writer.
	ErrNilInput = errors.New("wellio: input is nil")

	// ErrColumnMismatch indicates summaries with different column sets.
	ErrColumnMismatch = errors.New("wellio: summaries have different columns")
)

func ioErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

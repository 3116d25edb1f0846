// SPDX-License-Identifier: MIT

package project

import (
	"errors"
	"fmt"
)

var (
	// ErrNilInput indicates a nil well, table or callback.
	ErrNilInput = errors.New("project: input is nil")

	// ErrNoName indicates a well without a name and without an override.
	ErrNoName = errors.New("project: well has no name")

	// ErrNoCheckshots indicates a time-domain request on a well without a relation.
	ErrNoCheckshots = errors.New("project: well has no time-depth relation")

	// ErrIndexMismatch indicates a curve indexed differently from the well logs.
	ErrIndexMismatch = errors.New("project: curve index does not match well logs")
)

func projectErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

func wellErrorf(op, well string, err error) error {
	return fmt.Errorf("%s: well %q: %w", op, well, err)
}

// SPDX-License-Identifier: MIT
// Package: welltie/series
//
// errors.go — sentinel errors for the series package.
//
// Error policy:
//   - Only package-level sentinels are exposed; callers use errors.Is.
//   - Context is attached with %w at the call site (see seriesErrorf).

package series

import (
	"errors"
	"fmt"
)

var (
	// ErrNilSeries is returned when a nil *Series is passed where one is required.
	ErrNilSeries = errors.New("series: series is nil")

	// ErrNilTable is returned when a nil *Table is passed where one is required.
	ErrNilTable = errors.New("series: table is nil")

	// ErrLengthMismatch indicates that index and values (or two operands) differ in length.
	ErrLengthMismatch = errors.New("series: length mismatch")

	// ErrIndexMismatch indicates that a column's index does not match the table index.
	ErrIndexMismatch = errors.New("series: index does not match table index")

	// ErrEmptyName indicates that a curve was given an empty name.
	ErrEmptyName = errors.New("series: empty curve name")
)

// seriesErrorf prefixes err with the operation name, keeping err matchable via errors.Is.
func seriesErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

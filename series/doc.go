// SPDX-License-Identifier: MIT

// Package series holds the indexed numeric containers shared by every
// welltie pipeline stage: a single named curve (Series) and a set of curves
// sharing one index (Table).
//
// What lives here:
//
//   - Series  — Name, IndexName, Index, Values; NaN marks an undefined sample.
//   - Table   — ordered named columns over one index (depth or time).
//   - Domain  — depth/time/unknown tag inferred from the index name.
//
// Immutability contract:
//
//	Every transform returns a new Series or Table. Column slices may be shared
//	between tables because nothing in welltie writes into a slice it did not
//	allocate itself. Accessors that hand data to callers return copies.
//
// Undefined values:
//
//	NaN is the single "undefined" sentinel. It propagates through arithmetic
//	and is only coerced to zero where a stage documents it (convolution).
//
// Usage:
//
//	s, err := series.New("GR", "DEPTH", depths, values)
//	t, err := series.FromSeries("DEPTH", gr, rhob)
//	slab := t.Slice(1500, 1600) // rows with 1500 <= depth < 1600
package series

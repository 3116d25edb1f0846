// SPDX-License-Identifier: MIT
// Package: welltie/timedepth
//
// mapping.go — checkshot Relation and the piecewise-linear Mapping it is made of.
//
// Algorithm (per direction):
//  1. Drop rows whose depth or time is NaN.
//  2. Stable-sort by the key column (depth for depth→time, time for time→depth).
//  3. Keep the first row of every run of equal keys.
//  4. Require at least two unique keys.
//  5. Evaluate by locating the bracketing segment with binary search; outside the
//     knots, continue the first/last segment's slope.

package timedepth

import (
	"math"
	"sort"
)

const (
	opNewRelation = "NewRelation"
	opApply       = "Mapping.Apply"
)

// Checkshot is one (depth, two-way time) calibration pair.
type Checkshot struct {
	Depth float64
	Time  float64
}

// Converter maps a batch of keys from one domain to the other.
// *Mapping implements it; tests and callers may supply their own.
type Converter interface {
	Apply(xs []float64) ([]float64, error)
}

// Mapping is an immutable piecewise-linear function through strictly
// increasing knots x with values y. It extrapolates linearly on both ends
// unless built in strict mode.
type Mapping struct {
	x, y   []float64
	strict bool
}

// Relation is the depth↔time function pair derived from one checkshot table.
// Rebuild it whenever the checkshot table changes; it is never mutated.
type Relation struct {
	DepthToTime *Mapping
	TimeToDepth *Mapping
}

// NewRelation builds both directions from shots.
//
// Errors:
//   - ErrTooFewPoints if len(shots) < 2, or either direction keeps fewer than
//     two unique keys after de-duplication.
//
// Determinism: identical input always yields identical Mappings.
func NewRelation(shots []Checkshot, opts ...Option) (*Relation, error) {
	o := gatherOptions(opts...)
	if len(shots) < 2 {
		return nil, tdErrorf(opNewRelation, ErrTooFewPoints)
	}

	rows := make([]Checkshot, 0, len(shots))
	for _, s := range shots {
		if !math.IsNaN(s.Depth) && !math.IsNaN(s.Time) {
			rows = append(rows, s)
		}
	}

	dx, ty := uniqueBy(rows, func(c Checkshot) (float64, float64) { return c.Depth, c.Time })
	if len(dx) < 2 {
		return nil, tdErrorf(opNewRelation+": depth→time", ErrTooFewPoints)
	}
	tx, dy := uniqueBy(rows, func(c Checkshot) (float64, float64) { return c.Time, c.Depth })
	if len(tx) < 2 {
		return nil, tdErrorf(opNewRelation+": time→depth", ErrTooFewPoints)
	}

	return &Relation{
		DepthToTime: &Mapping{x: dx, y: ty, strict: o.strict},
		TimeToDepth: &Mapping{x: tx, y: dy, strict: o.strict},
	}, nil
}

// uniqueBy stable-sorts rows by key and keeps the first row per key.
func uniqueBy(rows []Checkshot, kv func(Checkshot) (float64, float64)) (xs, ys []float64) {
	sorted := make([]Checkshot, len(rows))
	copy(sorted, rows)
	sort.SliceStable(sorted, func(i, j int) bool {
		ki, _ := kv(sorted[i])
		kj, _ := kv(sorted[j])

		return ki < kj
	})

	xs = make([]float64, 0, len(sorted))
	ys = make([]float64, 0, len(sorted))
	for _, r := range sorted {
		k, v := kv(r)
		if len(xs) > 0 && xs[len(xs)-1] == k {
			continue
		}
		xs = append(xs, k)
		ys = append(ys, v)
	}

	return xs, ys
}

// At evaluates the mapping at x, always extrapolating outside the knots.
// NaN in gives NaN out, as does a mapping with fewer than two knots.
func (m *Mapping) At(x float64) float64 {
	if m == nil || len(m.x) < 2 || math.IsNaN(x) {
		return math.NaN()
	}
	n := len(m.x)
	i := sort.SearchFloat64s(m.x, x) // first knot >= x

	var lo int
	switch {
	case i < n && m.x[i] == x:
		return m.y[i]
	case i == 0:
		lo = 0
	case i >= n:
		lo = n - 2
	default:
		lo = i - 1
	}
	x0, x1 := m.x[lo], m.x[lo+1]
	y0, y1 := m.y[lo], m.y[lo+1]

	return y0 + (x-x0)*(y1-y0)/(x1-x0)
}

// Apply evaluates the mapping for every element of xs, returning a new slice.
// In strict mode any finite input outside Range fails with ErrOutOfRange.
func (m *Mapping) Apply(xs []float64) ([]float64, error) {
	if m == nil || len(m.x) < 2 {
		return nil, tdErrorf(opApply, ErrTooFewPoints)
	}
	lo, hi := m.Range()
	out := make([]float64, len(xs))
	for i, x := range xs {
		if m.strict && (x < lo || x > hi) {
			return nil, tdErrorf(opApply, ErrOutOfRange)
		}
		out[i] = m.At(x)
	}

	return out, nil
}

// Range returns the first and last knot; outside it values are extrapolated.
// Both are NaN for a mapping with fewer than two knots.
func (m *Mapping) Range() (lo, hi float64) {
	if m == nil || len(m.x) < 2 {
		return math.NaN(), math.NaN()
	}

	return m.x[0], m.x[len(m.x)-1]
}

// InRange reports whether x lies within the calibrated range.
func (m *Mapping) InRange(x float64) bool {
	lo, hi := m.Range()

	return x >= lo && x <= hi
}

// Knots returns copies of the de-duplicated knot coordinates.
func (m *Mapping) Knots() (x, y []float64) {
	if m == nil {
		return nil, nil
	}
	x = append([]float64(nil), m.x...)
	y = append([]float64(nil), m.y...)

	return x, y
}

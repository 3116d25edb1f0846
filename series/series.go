// SPDX-License-Identifier: MIT
// Package: welltie/series
//
// series.go — the single-curve container.
//
// Purpose:
//   - Carry one measurement curve together with its index (depth or time).
//   - Provide the de-duplication rule used by every depth-indexed input:
//     sort by index, keep the first occurrence of each index value.

package series

import (
	"math"
	"sort"
)

const (
	opNew   = "New"
	opDedup = "Dedup"
)

// Series is a named curve sampled on an index.
// Index[i] is the key (depth or time) of Values[i]; NaN in Values means undefined.
type Series struct {
	Name      string    // curve mnemonic, e.g. "GR" or "GR_time"
	IndexName string    // index label, e.g. "DEPTH" or "TWT"
	Index     []float64 // sample keys
	Values    []float64 // sample values, NaN = undefined
}

// New builds a Series from copies of index and values.
//
// Errors:
//   - ErrLengthMismatch if len(index) != len(values).
func New(name, indexName string, index, values []float64) (*Series, error) {
	if len(index) != len(values) {
		return nil, seriesErrorf(opNew, ErrLengthMismatch)
	}

	return &Series{
		Name:      name,
		IndexName: indexName,
		Index:     cloneFloats(index),
		Values:    cloneFloats(values),
	}, nil
}

// Undefined returns the sentinel used for undefined samples.
func Undefined() float64 { return math.NaN() }

// IsUndefined reports whether v is the undefined sentinel.
func IsUndefined(v float64) bool { return math.IsNaN(v) }

// Len returns the number of samples; a nil Series has zero length.
func (s *Series) Len() int {
	if s == nil {
		return 0
	}

	return len(s.Index)
}

// Clone returns a deep copy.
func (s *Series) Clone() *Series {
	if s == nil {
		return nil
	}

	return &Series{
		Name:      s.Name,
		IndexName: s.IndexName,
		Index:     cloneFloats(s.Index),
		Values:    cloneFloats(s.Values),
	}
}

// Renamed returns a copy of s carrying a new curve name.
func (s *Series) Renamed(name string) *Series {
	c := s.Clone()
	if c != nil {
		c.Name = name
	}

	return c
}

// Defined returns the number of samples whose value is not NaN.
func (s *Series) Defined() int {
	if s == nil {
		return 0
	}
	n := 0
	for _, v := range s.Values {
		if !math.IsNaN(v) {
			n++
		}
	}

	return n
}

// Dedup returns a copy of s sorted by index with at most one sample per index
// value. On ties the first occurrence in the original order wins. Samples whose
// index is NaN are dropped.
//
// Complexity: O(n log n) time, O(n) space.
func (s *Series) Dedup() (*Series, error) {
	if s == nil {
		return nil, seriesErrorf(opDedup, ErrNilSeries)
	}
	if len(s.Index) != len(s.Values) {
		return nil, seriesErrorf(opDedup, ErrLengthMismatch)
	}

	order := dedupOrder(s.Index)
	out := &Series{
		Name:      s.Name,
		IndexName: s.IndexName,
		Index:     make([]float64, len(order)),
		Values:    make([]float64, len(order)),
	}
	for k, i := range order {
		out.Index[k] = s.Index[i]
		out.Values[k] = s.Values[i]
	}

	return out, nil
}

// IsStrictlyIncreasing reports whether xs is finite and strictly increasing.
// An empty or single-element slice is strictly increasing.
func IsStrictlyIncreasing(xs []float64) bool {
	for i, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
		if i > 0 && x <= xs[i-1] {
			return false
		}
	}

	return true
}

// dedupOrder returns positions into index, sorted by index value, keeping the
// first position for each distinct value and skipping NaN keys.
func dedupOrder(index []float64) []int {
	pos := make([]int, 0, len(index))
	for i, x := range index {
		if !math.IsNaN(x) {
			pos = append(pos, i)
		}
	}
	// Stable sort keeps original order among equal keys, so the first kept
	// position of each run is the first occurrence.
	sort.SliceStable(pos, func(a, b int) bool { return index[pos[a]] < index[pos[b]] })

	out := pos[:0]
	for k, i := range pos {
		if k > 0 && index[i] == index[out[len(out)-1]] {
			continue
		}
		out = append(out, i)
	}

	return out
}

func cloneFloats(xs []float64) []float64 {
	if xs == nil {
		return nil
	}
	out := make([]float64, len(xs))
	copy(out, xs)

	return out
}

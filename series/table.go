// SPDX-License-Identifier: MIT
// Package: welltie/series
//
// table.go — ordered named columns over a single index.
//
// Contract:
//   - Column order is insertion order; With on an existing name replaces in place.
//   - All methods returning *Table return a new value; the receiver is never modified.
//   - Column slices are shared between derived tables and never written to.

package series

import (
	"math"
)

const (
	opFromSeries = "FromSeries"
	opWith       = "With"
	opWithColumn = "WithColumn"
	opDedupTable = "Table.Dedup"
)

// Table is a set of named curves sharing one index.
type Table struct {
	indexName string
	index     []float64
	names     []string
	columns   map[string][]float64
}

// NewTable returns an empty-column table over a copy of index.
func NewTable(indexName string, index []float64) *Table {
	return &Table{
		indexName: indexName,
		index:     cloneFloats(index),
		columns:   make(map[string][]float64),
	}
}

// FromSeries builds a table whose index is taken from the first series.
// Every series must carry an identical index.
//
// Errors:
//   - ErrNilSeries, ErrEmptyName, ErrIndexMismatch.
func FromSeries(indexName string, cols ...*Series) (*Table, error) {
	if len(cols) == 0 {
		return NewTable(indexName, nil), nil
	}
	if cols[0] == nil {
		return nil, seriesErrorf(opFromSeries, ErrNilSeries)
	}

	t := NewTable(indexName, cols[0].Index)
	var err error
	for _, c := range cols {
		if t, err = t.With(c); err != nil {
			return nil, seriesErrorf(opFromSeries, err)
		}
	}

	return t, nil
}

// IndexName returns the label of the index.
func (t *Table) IndexName() string { return t.indexName }

// Index returns a copy of the index values.
func (t *Table) Index() []float64 { return cloneFloats(t.index) }

// Len returns the number of rows.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}

	return len(t.index)
}

// Names returns column names in insertion order.
func (t *Table) Names() []string {
	out := make([]string, len(t.names))
	copy(out, t.names)

	return out
}

// Has reports whether a column named name exists.
func (t *Table) Has(name string) bool {
	if t == nil {
		return false
	}
	_, ok := t.columns[name]

	return ok
}

// Domain infers the index domain from the index name.
func (t *Table) Domain() Domain { return InferDomain(t.indexName) }

// Column returns a copy of the named column as a Series.
func (t *Table) Column(name string) (*Series, bool) {
	if t == nil {
		return nil, false
	}
	vals, ok := t.columns[name]
	if !ok {
		return nil, false
	}

	return &Series{
		Name:      name,
		IndexName: t.indexName,
		Index:     cloneFloats(t.index),
		Values:    cloneFloats(vals),
	}, true
}

// With returns a new table with s added (or replacing a column of the same name).
// s.Index must equal the table index element-wise.
func (t *Table) With(s *Series) (*Table, error) {
	if s == nil {
		return nil, seriesErrorf(opWith, ErrNilSeries)
	}
	if len(s.Index) != len(s.Values) {
		return nil, seriesErrorf(opWith, ErrLengthMismatch)
	}
	if !sameIndex(t.index, s.Index) {
		return nil, seriesErrorf(opWith, ErrIndexMismatch)
	}

	return t.withColumn(s.Name, cloneFloats(s.Values))
}

// WithColumn returns a new table with values added under name.
// len(values) must equal t.Len().
func (t *Table) WithColumn(name string, values []float64) (*Table, error) {
	if len(values) != len(t.index) {
		return nil, seriesErrorf(opWithColumn, ErrLengthMismatch)
	}

	return t.withColumn(name, cloneFloats(values))
}

func (t *Table) withColumn(name string, owned []float64) (*Table, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	out := t.shallow()
	if _, exists := out.columns[name]; !exists {
		out.names = append(out.names, name)
	}
	out.columns[name] = owned

	return out, nil
}

// Without returns a new table lacking the named column. Missing names are ignored.
func (t *Table) Without(name string) *Table {
	out := t.shallow()
	if _, ok := out.columns[name]; !ok {
		return out
	}
	delete(out.columns, name)
	kept := out.names[:0:0]
	for _, n := range out.names {
		if n != name {
			kept = append(kept, n)
		}
	}
	out.names = kept

	return out
}

// Slice returns the rows with lo <= index < hi, in their original order.
func (t *Table) Slice(lo, hi float64) *Table {
	return t.selectRows(func(x float64) bool { return x >= lo && x < hi })
}

// SliceClosed returns the rows with lo <= index <= hi, in their original order.
func (t *Table) SliceClosed(lo, hi float64) *Table {
	return t.selectRows(func(x float64) bool { return x >= lo && x <= hi })
}

// ReplaceNull returns a copy where every value equal to null becomes NaN.
// A NaN null is a no-op.
func (t *Table) ReplaceNull(null float64) *Table {
	out := t.shallow()
	if math.IsNaN(null) {
		return out
	}
	for _, name := range out.names {
		src := out.columns[name]
		dst := make([]float64, len(src))
		for i, v := range src {
			if v == null {
				dst[i] = math.NaN()
			} else {
				dst[i] = v
			}
		}
		out.columns[name] = dst
	}

	return out
}

// Dedup returns a copy sorted by index with one row per index value
// (first occurrence wins). Rows with a NaN index are dropped.
func (t *Table) Dedup() (*Table, error) {
	if t == nil {
		return nil, seriesErrorf(opDedupTable, ErrNilTable)
	}

	order := dedupOrder(t.index)
	out := &Table{
		indexName: t.indexName,
		index:     make([]float64, len(order)),
		names:     append([]string(nil), t.names...),
		columns:   make(map[string][]float64, len(t.columns)),
	}
	for k, i := range order {
		out.index[k] = t.index[i]
	}
	for _, name := range t.names {
		src := t.columns[name]
		dst := make([]float64, len(order))
		for k, i := range order {
			dst[k] = src[i]
		}
		out.columns[name] = dst
	}

	return out, nil
}

func (t *Table) selectRows(keep func(float64) bool) *Table {
	rows := make([]int, 0, len(t.index))
	for i, x := range t.index {
		if keep(x) {
			rows = append(rows, i)
		}
	}

	out := &Table{
		indexName: t.indexName,
		index:     make([]float64, len(rows)),
		names:     append([]string(nil), t.names...),
		columns:   make(map[string][]float64, len(t.columns)),
	}
	for k, i := range rows {
		out.index[k] = t.index[i]
	}
	for _, name := range t.names {
		src := t.columns[name]
		dst := make([]float64, len(rows))
		for k, i := range rows {
			dst[k] = src[i]
		}
		out.columns[name] = dst
	}

	return out
}

// shallow copies the table header; column slices are shared.
func (t *Table) shallow() *Table {
	out := &Table{
		indexName: t.indexName,
		index:     t.index,
		names:     append([]string(nil), t.names...),
		columns:   make(map[string][]float64, len(t.columns)+1),
	}
	for k, v := range t.columns {
		out.columns[k] = v
	}

	return out
}

func sameIndex(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] && !(math.IsNaN(a[i]) && math.IsNaN(b[i])) {
			return false
		}
	}

	return true
}

// SPDX-License-Identifier: MIT

package interval

import (
	"fmt"
	"math"
	"sort"
)

const (
	opNewTopSet = "NewTopSet"
	opAdd       = "TopSet.Add"
	opSet       = "TopSet.Set"
)

// Top is a named formation marker.
type Top struct {
	Name  string
	Depth float64
}

// Interval is the span between two depth-adjacent tops.
type Interval struct {
	Top       string
	Base      string
	TopDepth  float64
	BaseDepth float64
}

// Thickness returns BaseDepth − TopDepth.
func (iv Interval) Thickness() float64 { return iv.BaseDepth - iv.TopDepth }

// TopSet is a collection of tops with unique names. Depths may repeat.
// The zero value is not usable; call NewTopSet.
type TopSet struct {
	order []string
	depth map[string]float64
}

// NewTopSet builds a set from tops, rejecting duplicated names.
func NewTopSet(tops ...Top) (*TopSet, error) {
	ts := &TopSet{depth: make(map[string]float64, len(tops))}
	for _, t := range tops {
		if err := ts.Add(t.Name, t.Depth); err != nil {
			return nil, intervalErrorf(opNewTopSet, err)
		}
	}

	return ts, nil
}

// Add inserts a new top. Existing names are rejected with ErrDuplicateTop.
func (ts *TopSet) Add(name string, depth float64) error {
	if _, ok := ts.depth[name]; ok {
		return fmt.Errorf("%s: %w %q", opAdd, ErrDuplicateTop, name)
	}

	return ts.Set(name, depth)
}

// Set inserts or moves a top.
func (ts *TopSet) Set(name string, depth float64) error {
	if name == "" {
		return intervalErrorf(opSet, ErrEmptyName)
	}
	if math.IsNaN(depth) || math.IsInf(depth, 0) {
		return fmt.Errorf("%s: %q: %w", opSet, name, ErrBadDepth)
	}
	if _, ok := ts.depth[name]; !ok {
		ts.order = append(ts.order, name)
	}
	ts.depth[name] = depth

	return nil
}

// Len returns the number of tops.
func (ts *TopSet) Len() int {
	if ts == nil {
		return 0
	}

	return len(ts.order)
}

// Depth returns the depth of the named top.
func (ts *TopSet) Depth(name string) (float64, bool) {
	d, ok := ts.depth[name]

	return d, ok
}

// Tops returns tops in insertion order.
func (ts *TopSet) Tops() []Top {
	out := make([]Top, len(ts.order))
	for i, n := range ts.order {
		out[i] = Top{Name: n, Depth: ts.depth[n]}
	}

	return out
}

// Sorted returns tops ordered by depth; equal depths keep insertion order.
func (ts *TopSet) Sorted() []Top {
	out := ts.Tops()
	sort.SliceStable(out, func(i, j int) bool { return out[i].Depth < out[j].Depth })

	return out
}

// Intervals pairs depth-adjacent tops. Fewer than two tops give no intervals.
func (ts *TopSet) Intervals() []Interval {
	sorted := ts.Sorted()
	if len(sorted) < 2 {
		return nil
	}
	out := make([]Interval, 0, len(sorted)-1)
	for i := 0; i+1 < len(sorted); i++ {
		out = append(out, Interval{
			Top:       sorted[i].Name,
			Base:      sorted[i+1].Name,
			TopDepth:  sorted[i].Depth,
			BaseDepth: sorted[i+1].Depth,
		})
	}

	return out
}

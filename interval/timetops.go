// SPDX-License-Identifier: MIT

package interval

import (
	"fmt"

	"github.com/katalvlaran/welltie/series"
	"github.com/katalvlaran/welltie/timedepth"
)

const (
	opInTime    = "InTime"
	opSliceTime = "SliceTime"
)

// TimeTop is a top with its two-way time.
type TimeTop struct {
	Name  string
	Depth float64
	TWT   float64
}

// InTime converts every top to TWT through d2t, in insertion order.
// An empty set gives an empty slice.
func InTime(tops *TopSet, d2t timedepth.Converter) ([]TimeTop, error) {
	if tops == nil || d2t == nil {
		return nil, intervalErrorf(opInTime, ErrNilInput)
	}
	list := tops.Tops()
	depths := make([]float64, len(list))
	for i, t := range list {
		depths[i] = t.Depth
	}
	times, err := d2t.Apply(depths)
	if err != nil {
		return nil, intervalErrorf(opInTime, err)
	}
	if len(times) != len(list) {
		return nil, intervalErrorf(opInTime, timedepth.ErrConversion)
	}

	out := make([]TimeTop, len(list))
	for i, t := range list {
		out[i] = TimeTop{Name: t.Name, Depth: t.Depth, TWT: times[i]}
	}

	return out, nil
}

// SliceTime returns the rows of a time-indexed table between the TWT of top
// and base, both ends inclusive.
func SliceTime(tbl *series.Table, tops []TimeTop, top, base string) (*series.Table, error) {
	if tbl == nil {
		return nil, intervalErrorf(opSliceTime, ErrNilInput)
	}
	lo, ok := lookupTWT(tops, top)
	if !ok {
		return nil, fmt.Errorf("%s: %w %q", opSliceTime, ErrUnknownTop, top)
	}
	hi, ok := lookupTWT(tops, base)
	if !ok {
		return nil, fmt.Errorf("%s: %w %q", opSliceTime, ErrUnknownTop, base)
	}

	return tbl.SliceClosed(lo, hi), nil
}

func lookupTWT(tops []TimeTop, name string) (float64, bool) {
	for _, t := range tops {
		if t.Name == name {
			return t.TWT, true
		}
	}

	return 0, false
}

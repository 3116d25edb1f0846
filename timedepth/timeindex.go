// SPDX-License-Identifier: MIT

package timedepth

import (
	"math"

	"github.com/katalvlaran/welltie/series"
)

// DefaultTimeIndexName labels a time axis that was built without a name.
const DefaultTimeIndexName = "Time"

const (
	opNewTimeIndex     = "NewTimeIndex"
	opRegularTimeIndex = "RegularTimeIndex"
)

// TimeIndex is the caller-supplied target axis of a resampling call.
// Values are finite and strictly increasing; they are usually regular but
// do not have to be.
type TimeIndex struct {
	Name   string
	Values []float64
}

// NewTimeIndex validates values and returns an owned copy.
func NewTimeIndex(name string, values []float64) (TimeIndex, error) {
	if !series.IsStrictlyIncreasing(values) {
		return TimeIndex{}, tdErrorf(opNewTimeIndex, ErrBadTimeIndex)
	}

	return TimeIndex{Name: name, Values: append([]float64(nil), values...)}, nil
}

// RegularTimeIndex returns start, start+step, ... for every value < stop.
// Values are computed as start+i*step so long axes do not accumulate drift.
//
// Errors:
//   - ErrBadTimeIndex if step <= 0 or any bound is not finite.
func RegularTimeIndex(name string, start, stop, step float64) (TimeIndex, error) {
	if !(step > 0) || math.IsInf(step, 0) || !isFinite(start) || !isFinite(stop) {
		return TimeIndex{}, tdErrorf(opRegularTimeIndex, ErrBadTimeIndex)
	}
	n := int(math.Ceil((stop - start) / step))
	if n < 0 {
		n = 0
	}
	vals := make([]float64, n)
	for i := range vals {
		vals[i] = start + float64(i)*step
	}

	return TimeIndex{Name: name, Values: vals}, nil
}

// Label returns Name, or DefaultTimeIndexName when Name is empty.
func (ti TimeIndex) Label() string {
	if ti.Name == "" {
		return DefaultTimeIndexName
	}

	return ti.Name
}

// Len returns the number of target times.
func (ti TimeIndex) Len() int { return len(ti.Values) }

func isFinite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }

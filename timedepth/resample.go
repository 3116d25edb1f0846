// SPDX-License-Identifier: MIT
// Package: welltie/timedepth
//
// resample.go — depth-indexed curves onto a target time axis.
//
// Resample steps:
//  1. Map every depth through the converter (failure → ErrConversion naming the curve).
//  2. Drop samples whose time is NaN, then group equal times and average the
//     defined values of each group.
//  3. For every target time, interpolate linearly by time value between the
//     bracketing defined samples. Targets before the first or after the last
//     defined sample stay NaN.

package timedepth

import (
	"fmt"
	"math"
	"sort"

	"go.uber.org/zap"

	"github.com/katalvlaran/welltie/series"
)

const (
	// TimeSuffix is appended to a curve name when it is moved to the time domain.
	TimeSuffix = "_time"

	// TWTName names the curve produced by TimeCurve.
	TWTName = "TWT"

	opResample  = "Resample"
	opConvert   = "Convert"
	opTimeCurve = "TimeCurve"
)

// Resample moves one depth-indexed curve onto target.
//
// The result always has exactly target.Len() samples, indexed by a copy of
// target.Values and labelled target.Label(). An empty curve yields an all-NaN
// result rather than an error. Targets after the last defined sample are left
// NaN; they are not filled forward with the last value.
//
// Errors:
//   - ErrNilInput if curve is nil.
//   - ErrNilConverter if d2t is nil.
//   - ErrBadTimeIndex if target is not strictly increasing.
//   - ErrConversion (with the curve name) if d2t fails or returns the wrong length.
func Resample(curve *series.Series, d2t Converter, target TimeIndex) (*series.Series, error) {
	if curve == nil {
		return nil, tdErrorf(opResample, ErrNilInput)
	}
	if d2t == nil {
		return nil, tdErrorf(opResample, ErrNilConverter)
	}
	if !series.IsStrictlyIncreasing(target.Values) {
		return nil, tdErrorf(opResample, ErrBadTimeIndex)
	}

	out := make([]float64, len(target.Values))
	for i := range out {
		out[i] = math.NaN()
	}
	build := func() (*series.Series, error) {
		return series.New(curve.Name+TimeSuffix, target.Label(), target.Values, out)
	}
	if curve.Len() == 0 {
		return build()
	}
	if len(curve.Values) != len(curve.Index) {
		return nil, fmt.Errorf("%s: curve %q: %w", opResample, curve.Name, series.ErrLengthMismatch)
	}

	times, err := d2t.Apply(curve.Index)
	if err != nil {
		return nil, fmt.Errorf("%s: curve %q: %w: %w", opResample, curve.Name, ErrConversion, err)
	}
	if len(times) != len(curve.Index) {
		return nil, fmt.Errorf("%s: curve %q: %w: converter returned %d times for %d depths",
			opResample, curve.Name, ErrConversion, len(times), len(curve.Index))
	}

	kt, kv := collapse(times, curve.Values)
	if len(kt) == 0 {
		return build()
	}
	for i, t := range target.Values {
		out[i] = interpolateAt(kt, kv, t)
	}

	return build()
}

// collapse sorts (time, value) pairs by time, averages the defined values of
// each run of equal times, and returns only the times that have a defined value.
func collapse(times, values []float64) (kt, kv []float64) {
	pos := make([]int, 0, len(times))
	for i, t := range times {
		if !math.IsNaN(t) {
			pos = append(pos, i)
		}
	}
	sort.SliceStable(pos, func(a, b int) bool { return times[pos[a]] < times[pos[b]] })

	kt = make([]float64, 0, len(pos))
	kv = make([]float64, 0, len(pos))
	for k := 0; k < len(pos); {
		t := times[pos[k]]
		sum, cnt := 0.0, 0
		j := k
		for ; j < len(pos) && times[pos[j]] == t; j++ {
			if v := values[pos[j]]; !math.IsNaN(v) {
				sum += v
				cnt++
			}
		}
		if cnt > 0 {
			kt = append(kt, t)
			kv = append(kv, sum/float64(cnt))
		}
		k = j
	}

	return kt, kv
}

// interpolateAt interpolates (xs, ys) at x without extrapolating.
func interpolateAt(xs, ys []float64, x float64) float64 {
	n := len(xs)
	if x < xs[0] || x > xs[n-1] {
		return math.NaN()
	}
	i := sort.SearchFloat64s(xs, x)
	if xs[i] == x {
		return ys[i]
	}
	x0, x1 := xs[i-1], xs[i]

	return ys[i-1] + (x-x0)*(ys[i]-ys[i-1])/(x1-x0)
}

// Convert resamples every named curve of logs onto target.
//
// Names missing from logs are skipped with a Warn entry on the configured
// logger. If none are found the result is an empty table indexed by target.
// Output columns are named "<curve>_time" in the order of names.
func Convert(logs *series.Table, names []string, d2t Converter, target TimeIndex, opts ...Option) (*series.Table, error) {
	o := gatherOptions(opts...)
	if logs == nil {
		return nil, tdErrorf(opConvert, ErrNilInput)
	}
	if d2t == nil {
		return nil, tdErrorf(opConvert, ErrNilConverter)
	}
	if !series.IsStrictlyIncreasing(target.Values) {
		return nil, tdErrorf(opConvert, ErrBadTimeIndex)
	}

	out := series.NewTable(target.Label(), target.Values)
	for _, name := range names {
		curve, ok := logs.Column(name)
		if !ok {
			o.logger.Warn("curve not found, skipping time conversion",
				zap.String("curve", name),
				zap.String("index", logs.IndexName()))
			continue
		}
		ts, err := Resample(curve, d2t, target)
		if err != nil {
			return nil, tdErrorf(opConvert, err)
		}
		if out, err = out.With(ts); err != nil {
			return nil, tdErrorf(opConvert, err)
		}
	}

	return out, nil
}

// TimeCurve returns the two-way time of every depth in index as a depth-indexed
// curve named TWT.
func TimeCurve(indexName string, index []float64, d2t Converter) (*series.Series, error) {
	if d2t == nil {
		return nil, tdErrorf(opTimeCurve, ErrNilConverter)
	}
	times, err := d2t.Apply(index)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", opTimeCurve, ErrConversion, err)
	}

	return series.New(TWTName, indexName, index, times)
}

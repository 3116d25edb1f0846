// SPDX-License-Identifier: MIT

package tie

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/welltie/series"
)

const opAlign = "Align"

// Align warps synthetic onto observed and summarises the tie.
//
// Undefined samples are dropped from both traces first; Path indexes the
// remaining samples. Shift is expressed in index units (ms for TWT-indexed
// traces) and is positive when observed events arrive later.
func Align(synthetic, observed *series.Series, opts Options) (*Result, error) {
	if synthetic == nil || observed == nil {
		return nil, tieErrorf(opAlign, ErrNilInput)
	}
	st, sv := defined(synthetic)
	ot, ov := defined(observed)
	if len(sv) == 0 || len(ov) == 0 {
		return nil, tieErrorf(opAlign, ErrEmptyInput)
	}

	a, b := sv, ov
	if opts.Normalize {
		a, b = zscore(sv), zscore(ov)
	}
	dist, path, err := DTW(a, b, opts)
	if err != nil {
		return nil, tieErrorf(opAlign, err)
	}

	x := make([]float64, len(path))
	y := make([]float64, len(path))
	shifts := make([]float64, len(path))
	for k, c := range path {
		x[k], y[k] = sv[c.I], ov[c.J]
		shifts[k] = ot[c.J] - st[c.I]
	}

	return &Result{
		Distance:    dist,
		Path:        path,
		Correlation: correlation(x, y),
		Shift:       series.Median(shifts),
		Pairs:       len(path),
	}, nil
}

func defined(s *series.Series) (idx, vals []float64) {
	for i, v := range s.Values {
		if i < len(s.Index) && !math.IsNaN(v) {
			idx = append(idx, s.Index[i])
			vals = append(vals, v)
		}
	}

	return idx, vals
}

// zscore returns (x − mean) / std; a flat sequence is only centred.
func zscore(xs []float64) []float64 {
	mean, std := stat.MeanStdDev(xs, nil)
	out := make([]float64, len(xs))
	copy(out, xs)
	floats.AddConst(-mean, out)
	if std > 0 && !math.IsNaN(std) {
		floats.Scale(1/std, out)
	}

	return out
}

func correlation(x, y []float64) float64 {
	if len(x) < 2 {
		return math.NaN()
	}
	if stat.Variance(x, nil) == 0 || stat.Variance(y, nil) == 0 {
		return math.NaN()
	}

	return stat.Correlation(x, y, nil)
}

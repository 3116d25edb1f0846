// SPDX-License-Identifier: MIT

package series

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Median returns the middle value of the defined samples of xs, averaging the
// two central values for an even count. It returns NaN when nothing is defined.
// xs is not modified.
func Median(xs []float64) float64 {
	d := definedValues(xs)
	n := len(d)
	if n == 0 {
		return math.NaN()
	}
	sort.Float64s(d)
	if n%2 == 1 {
		return d[n/2]
	}

	return (d[n/2-1] + d[n/2]) / 2
}

// Mean returns the arithmetic mean of the defined samples of xs, or NaN.
func Mean(xs []float64) float64 {
	d := definedValues(xs)
	if len(d) == 0 {
		return math.NaN()
	}

	return stat.Mean(d, nil)
}

func definedValues(xs []float64) []float64 {
	out := make([]float64, 0, len(xs))
	for _, x := range xs {
		if !math.IsNaN(x) {
			out = append(out, x)
		}
	}

	return out
}

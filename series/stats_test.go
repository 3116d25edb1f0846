// SPDX-License-Identifier: MIT

package series_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/welltie/series"
)

func TestMedian(t *testing.T) {
	assert.Equal(t, 2.0, series.Median([]float64{3, 1, 2}))
	assert.Equal(t, 2.5, series.Median([]float64{4, 1, 3, 2}))
	assert.Equal(t, 1.0, series.Median([]float64{math.NaN(), 1}))
	assert.True(t, math.IsNaN(series.Median(nil)))

	xs := []float64{3, 1, 2}
	series.Median(xs)
	assert.Equal(t, []float64{3, 1, 2}, xs, "input untouched")
}

func TestMean(t *testing.T) {
	assert.Equal(t, 2.0, series.Mean([]float64{1, math.NaN(), 3}))
	assert.True(t, math.IsNaN(series.Mean([]float64{math.NaN()})))
}

// SPDX-License-Identifier: MIT

package tie_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/welltie/series"
	"github.com/katalvlaran/welltie/tie"
)

// pulse returns a Gaussian bump centred at c on a 2 ms axis.
func pulse(t *testing.T, name string, n int, c, amp float64) *series.Series {
	t.Helper()
	idx := make([]float64, n)
	vals := make([]float64, n)
	for i := range idx {
		idx[i] = float64(i) * 2
		d := (idx[i] - c) / 8
		vals[i] = amp * math.Exp(-d*d)
	}
	s, err := series.New(name, "TWT", idx, vals)
	require.NoError(t, err)

	return s
}

// wave samples f(t−lag) with f a sum of two incommensurate sines, on a 2 ms axis.
func wave(t *testing.T, name string, n int, lag, amp float64) *series.Series {
	t.Helper()
	idx := make([]float64, n)
	vals := make([]float64, n)
	for i := range idx {
		idx[i] = float64(i) * 2
		x := idx[i] - lag
		vals[i] = amp * (math.Sin(2*math.Pi*x/40) + 0.5*math.Sin(2*math.Pi*x/17))
	}
	s, err := series.New(name, "TWT", idx, vals)
	require.NoError(t, err)

	return s
}

func TestAlign_RecoversShift(t *testing.T) {
	syn := wave(t, "syn", 100, 0, 1)
	obs := wave(t, "obs", 100, 10, 3) // 10 ms later, different scale

	res, err := tie.Align(syn, obs, tie.DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, len(res.Path), res.Pairs)
	assert.InDelta(t, 10.0, res.Shift, 2.0)
	assert.Greater(t, res.Correlation, 0.8)
}

func TestAlign_IdenticalTraces(t *testing.T) {
	syn := pulse(t, "syn", 30, 30, 1)
	res, err := tie.Align(syn, syn, tie.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 0.0, res.Distance)
	assert.Equal(t, 0.0, res.Shift)
	assert.InDelta(t, 1.0, res.Correlation, 1e-12)
}

func TestAlign_DropsUndefinedAndRejectsEmpty(t *testing.T) {
	syn := pulse(t, "syn", 10, 10, 1)
	syn.Values[3] = math.NaN()
	res, err := tie.Align(syn, syn, tie.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 9, res.Pairs)

	empty, err := series.New("e", "TWT", []float64{0}, []float64{math.NaN()})
	require.NoError(t, err)
	_, err = tie.Align(syn, empty, tie.DefaultOptions())
	assert.ErrorIs(t, err, tie.ErrEmptyInput)

	_, err = tie.Align(nil, syn, tie.DefaultOptions())
	assert.ErrorIs(t, err, tie.ErrNilInput)
}

// SPDX-License-Identifier: MIT

package seismic_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/welltie/seismic"
)

func TestRicker_SymmetricOddPeak(t *testing.T) {
	w, err := seismic.Ricker(25, 100, 2)
	require.NoError(t, err)

	n := w.Len()
	require.Equal(t, 51, n)
	assert.Equal(t, 1, n%2)

	c := w.Center()
	assert.Equal(t, 0.0, w.Times[c])
	assert.Equal(t, 1.0, w.Amplitudes[c])
	assert.Equal(t, 1.0, floats.Max(w.Amplitudes))
	assert.Equal(t, -50.0, w.Times[0])
	assert.Equal(t, 50.0, w.Times[n-1])

	for i := 0; i < n; i++ {
		assert.Equal(t, w.Amplitudes[i], w.Amplitudes[n-1-i])
		assert.Equal(t, w.Times[i], -w.Times[n-1-i])
	}
	assert.Equal(t, "Ricker_25Hz", w.Name)
}

func TestRicker_OddAdjustment(t *testing.T) {
	w, err := seismic.Ricker(30, 64, 4)
	require.NoError(t, err)
	// 16 samples requested, bumped to 17; effective length 64 ms.
	assert.Equal(t, 17, w.Len())
	assert.Equal(t, -32.0, w.Times[0])
	assert.Equal(t, 32.0, w.Times[16])
}

func TestRicker_OddCountSpansNominalLength(t *testing.T) {
	w, err := seismic.Ricker(25, 10, 2)
	require.NoError(t, err)
	assert.Equal(t, []float64{-5, -2.5, 0, 2.5, 5}, w.Times)
	assert.Equal(t, 1.0, w.Amplitudes[w.Center()])

	single, err := seismic.Ricker(25, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, []float64{0}, single.Times)
	assert.Equal(t, []float64{1}, single.Amplitudes)
}

func TestRicker_BadParameters(t *testing.T) {
	cases := []struct {
		name          string
		f, length, dt float64
	}{
		{"zero freq", 0, 100, 2},
		{"negative length", 25, -1, 2},
		{"zero dt", 25, 100, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := seismic.Ricker(tc.f, tc.length, tc.dt)
			assert.ErrorIs(t, err, seismic.ErrBadParameter)
		})
	}
}

func TestNewWavelet(t *testing.T) {
	w, err := seismic.NewWavelet("box", []float64{-1, 0, 1}, []float64{1, 1, 1})
	require.NoError(t, err)
	assert.Equal(t, 1, w.Center())
	s := w.Series()
	assert.Equal(t, seismic.WaveletIndexName, s.IndexName)

	_, err = seismic.NewWavelet("even", []float64{0, 1}, []float64{1, 1})
	assert.ErrorIs(t, err, seismic.ErrBadParameter)
}

// SPDX-License-Identifier: MIT

package tie_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/welltie/tie"
)

func TestDTW_EmptyInput(t *testing.T) {
	opts := tie.DefaultOptions()

	_, _, err := tie.DTW([]float64{}, []float64{1, 2, 3}, opts)
	assert.ErrorIs(t, err, tie.ErrEmptyInput, "empty first sequence should error")

	_, _, err = tie.DTW([]float64{1, 2, 3}, nil, opts)
	assert.ErrorIs(t, err, tie.ErrEmptyInput, "empty second sequence should error")
}

func TestDTW_BadOptions(t *testing.T) {
	opts := tie.DefaultOptions()
	opts.Window = -2
	_, _, err := tie.DTW([]float64{1}, []float64{1}, opts)
	assert.ErrorIs(t, err, tie.ErrBadInput)

	opts = tie.DefaultOptions()
	opts.SlopePenalty = -1
	_, _, err = tie.DTW([]float64{1}, []float64{1}, opts)
	assert.ErrorIs(t, err, tie.ErrBadInput)
}

func TestDTW_IdenticalSequences(t *testing.T) {
	a := []float64{0, 1, 2}
	dist, path, err := tie.DTW(a, a, tie.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 0.0, dist)
	assert.Equal(t, []tie.Coord{{0, 0}, {1, 1}, {2, 2}}, path)
}

func TestDTW_StretchedSubsequence(t *testing.T) {
	a := []float64{1, 2, 3}
	b := []float64{1, 2, 2, 3}

	dist, path, err := tie.DTW(a, b, tie.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 0.0, dist)
	require.Len(t, path, 4)
	assert.Equal(t, tie.Coord{I: 0, J: 0}, path[0])
	assert.Equal(t, tie.Coord{I: 2, J: 3}, path[3])
	for k := 1; k < len(path); k++ {
		assert.GreaterOrEqual(t, path[k].I, path[k-1].I, "monotone in I")
		assert.GreaterOrEqual(t, path[k].J, path[k-1].J, "monotone in J")
	}
}

func TestDTW_WindowConstraint(t *testing.T) {
	opts := tie.DefaultOptions()
	opts.Window = 0

	_, _, err := tie.DTW([]float64{1, 2, 3}, []float64{1, 2, 3, 4}, opts)
	assert.ErrorIs(t, err, tie.ErrNoAlignment)

	dist, _, err := tie.DTW([]float64{1, 2, 3}, []float64{1, 2, 4}, opts)
	require.NoError(t, err)
	assert.Equal(t, 1.0, dist)
}

func TestDTW_SlopePenaltyFavoursDiagonal(t *testing.T) {
	a := []float64{0, 1, 0}
	b := []float64{0, 0, 1, 0}

	free, _, err := tie.DTW(a, b, tie.Options{Window: -1})
	require.NoError(t, err)
	pen, _, err := tie.DTW(a, b, tie.Options{Window: -1, SlopePenalty: 0.5})
	require.NoError(t, err)
	assert.Equal(t, 0.0, free)
	assert.Equal(t, 0.5, pen)
}

func BenchmarkDTW_500(b *testing.B) {
	x := make([]float64, 500)
	y := make([]float64, 500)
	for i := range x {
		x[i] = float64(i % 37)
		y[i] = float64((i + 3) % 37)
	}
	opts := tie.DefaultOptions()
	opts.Window = 50

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := tie.DTW(x, y, opts); err != nil {
			b.Fatalf("DTW failed: %v", err)
		}
	}
}

// SPDX-License-Identifier: MIT

package timedepth_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/welltie/timedepth"
)

func sampleShots() []timedepth.Checkshot {
	return []timedepth.Checkshot{
		{Depth: 0, Time: 0},
		{Depth: 500, Time: 400},
		{Depth: 1000, Time: 700},
		{Depth: 2000, Time: 1200},
	}
}

func TestNewRelation_TooFewPoints(t *testing.T) {
	_, err := timedepth.NewRelation(nil)
	assert.ErrorIs(t, err, timedepth.ErrTooFewPoints)

	_, err = timedepth.NewRelation([]timedepth.Checkshot{{Depth: 1, Time: 1}})
	assert.ErrorIs(t, err, timedepth.ErrTooFewPoints)

	// Two rows, one unique depth.
	_, err = timedepth.NewRelation([]timedepth.Checkshot{{Depth: 1, Time: 1}, {Depth: 1, Time: 2}})
	assert.ErrorIs(t, err, timedepth.ErrTooFewPoints)

	// Two unique depths, one unique time.
	_, err = timedepth.NewRelation([]timedepth.Checkshot{{Depth: 1, Time: 5}, {Depth: 2, Time: 5}})
	assert.ErrorIs(t, err, timedepth.ErrTooFewPoints)
}

func TestRelation_Interpolates(t *testing.T) {
	rel, err := timedepth.NewRelation(sampleShots())
	require.NoError(t, err)

	assert.InDelta(t, 400.0, rel.DepthToTime.At(500), 1e-12)
	assert.InDelta(t, 550.0, rel.DepthToTime.At(750), 1e-12)
	assert.InDelta(t, 750.0, rel.TimeToDepth.At(550), 1e-12)
	assert.True(t, math.IsNaN(rel.DepthToTime.At(math.NaN())))
}

func TestRelation_ExtrapolatesWithBoundarySlope(t *testing.T) {
	rel, err := timedepth.NewRelation(sampleShots())
	require.NoError(t, err)

	// Last segment slope is 0.5 ms/m.
	assert.InDelta(t, 1700.0, rel.DepthToTime.At(3000), 1e-12)
	// First segment slope is 0.8 ms/m.
	assert.InDelta(t, -80.0, rel.DepthToTime.At(-100), 1e-12)
	assert.False(t, rel.DepthToTime.InRange(3000))
}

func TestRelation_RoundTrip(t *testing.T) {
	rel, err := timedepth.NewRelation(sampleShots())
	require.NoError(t, err)

	depths := []float64{0, 12.5, 250, 499, 777.7, 1500, 1999.9, 2000}
	times, err := rel.DepthToTime.Apply(depths)
	require.NoError(t, err)
	back, err := rel.TimeToDepth.Apply(times)
	require.NoError(t, err)

	for i := range depths {
		assert.InDelta(t, depths[i], back[i], 1e-9)
		if i > 0 {
			assert.Greater(t, times[i], times[i-1], "monotonic in, monotonic out")
		}
	}
}

func TestRelation_DuplicateDepthFirstWins(t *testing.T) {
	shots := []timedepth.Checkshot{
		{Depth: 0, Time: 0},
		{Depth: 100, Time: 80},
		{Depth: 100, Time: 95},
		{Depth: 200, Time: 160},
	}
	a, err := timedepth.NewRelation(shots)
	require.NoError(t, err)
	b, err := timedepth.NewRelation(shots)
	require.NoError(t, err)

	assert.Equal(t, 80.0, a.DepthToTime.At(100))
	x, y := a.DepthToTime.Knots()
	assert.Equal(t, []float64{0, 100, 200}, x)
	assert.Equal(t, []float64{0, 80, 160}, y)

	bx, by := b.DepthToTime.Knots()
	assert.Equal(t, x, bx)
	assert.Equal(t, y, by)
}

func TestRelation_TimeToDepthResortsByTime(t *testing.T) {
	// Depth-sorted but not time-sorted.
	shots := []timedepth.Checkshot{
		{Depth: 0, Time: 0},
		{Depth: 100, Time: 120},
		{Depth: 200, Time: 110},
		{Depth: 300, Time: 200},
	}
	rel, err := timedepth.NewRelation(shots)
	require.NoError(t, err)

	tx, dy := rel.TimeToDepth.Knots()
	assert.Equal(t, []float64{0, 110, 120, 200}, tx)
	assert.Equal(t, []float64{0, 200, 100, 300}, dy)
}

func TestRelation_DropsUndefinedRows(t *testing.T) {
	shots := append(sampleShots(), timedepth.Checkshot{Depth: math.NaN(), Time: 5})
	rel, err := timedepth.NewRelation(shots)
	require.NoError(t, err)
	x, _ := rel.DepthToTime.Knots()
	assert.Len(t, x, 4)
}

func TestRelation_StrictRange(t *testing.T) {
	rel, err := timedepth.NewRelation(sampleShots(), timedepth.WithStrictRange())
	require.NoError(t, err)

	_, err = rel.DepthToTime.Apply([]float64{100, 2500})
	assert.ErrorIs(t, err, timedepth.ErrOutOfRange)

	got, err := rel.DepthToTime.Apply([]float64{0, 2000})
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1200}, got)
}

func TestMapping_ZeroValueIsUndefined(t *testing.T) {
	var m timedepth.Mapping
	assert.NotPanics(t, func() {
		assert.True(t, math.IsNaN(m.At(10)))
		lo, hi := m.Range()
		assert.True(t, math.IsNaN(lo))
		assert.True(t, math.IsNaN(hi))
		assert.False(t, m.InRange(10))
	})
	_, err := m.Apply([]float64{10})
	assert.ErrorIs(t, err, timedepth.ErrTooFewPoints)
}

func TestWithLogger_PanicsOnNil(t *testing.T) {
	assert.Panics(t, func() { timedepth.WithLogger(nil) })
}

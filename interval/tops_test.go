// SPDX-License-Identifier: MIT

package interval_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/welltie/interval"
)

func TestNewTopSet_Duplicate(t *testing.T) {
	_, err := interval.NewTopSet(
		interval.Top{Name: "A", Depth: 100},
		interval.Top{Name: "A", Depth: 120},
	)
	require.ErrorIs(t, err, interval.ErrDuplicateTop)
	assert.Contains(t, err.Error(), `"A"`)
}

func TestTopSet_SetMovesExisting(t *testing.T) {
	ts, err := interval.NewTopSet(interval.Top{Name: "A", Depth: 100})
	require.NoError(t, err)
	require.NoError(t, ts.Set("A", 90))
	d, ok := ts.Depth("A")
	assert.True(t, ok)
	assert.Equal(t, 90.0, d)
	assert.Equal(t, 1, ts.Len())

	assert.ErrorIs(t, ts.Set("", 1), interval.ErrEmptyName)
	assert.ErrorIs(t, ts.Set("B", math.NaN()), interval.ErrBadDepth)
}

func TestTopSet_IntervalsSortedByDepth(t *testing.T) {
	ts, err := interval.NewTopSet(
		interval.Top{Name: "C", Depth: 200},
		interval.Top{Name: "A", Depth: 100},
		interval.Top{Name: "B", Depth: 150},
		interval.Top{Name: "B2", Depth: 150},
	)
	require.NoError(t, err)

	ivs := ts.Intervals()
	require.Len(t, ivs, 3)
	assert.Equal(t, interval.Interval{Top: "A", Base: "B", TopDepth: 100, BaseDepth: 150}, ivs[0])
	assert.Equal(t, interval.Interval{Top: "B", Base: "B2", TopDepth: 150, BaseDepth: 150}, ivs[1])
	assert.Equal(t, 0.0, ivs[1].Thickness())
	assert.Equal(t, "C", ivs[2].Base)

	one, err := interval.NewTopSet(interval.Top{Name: "A", Depth: 1})
	require.NoError(t, err)
	assert.Empty(t, one.Intervals())
}

// SPDX-License-Identifier: MIT

package project_test

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/welltie/interval"
	"github.com/katalvlaran/welltie/petro"
	"github.com/katalvlaran/welltie/project"
	"github.com/katalvlaran/welltie/series"
)

func TestNew_AssignsID(t *testing.T) {
	a := project.New("North")
	b := project.New("North")
	_, err := uuid.Parse(a.ID)
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, 0, a.Len())
}

func TestAddWell(t *testing.T) {
	core, logged := observer.New(zap.WarnLevel)
	p := project.New("North", project.WithLogger(zap.New(core)))

	require.NoError(t, p.AddWell(sampleWell(t, "W1"), ""))
	require.NoError(t, p.AddWell(sampleWell(t, ""), "from-file.csv"))
	replacement := sampleWell(t, "W1")
	require.NoError(t, p.AddWell(replacement, ""))

	assert.Equal(t, []string{"W1", "from-file.csv"}, p.Names())
	got, ok := p.Well("W1")
	require.True(t, ok)
	assert.Same(t, replacement, got)
	require.Equal(t, 1, logged.Len())
	assert.Equal(t, "W1", logged.All()[0].ContextMap()["well"])

	assert.ErrorIs(t, p.AddWell(sampleWell(t, ""), ""), project.ErrNoName)
	assert.ErrorIs(t, p.AddWell(nil, "x"), project.ErrNilInput)
	assert.Len(t, p.Wells(), 2)
}

func TestApplyCalculation(t *testing.T) {
	p := project.New("North")
	require.NoError(t, p.AddWell(sampleWell(t, "W1"), ""))
	require.NoError(t, p.AddWell(sampleWell(t, "W2"), ""))

	boom := errors.New("no GR")
	n, err := p.ApplyCalculation("vsh", func(w *project.Well) (*series.Series, error) {
		if w.Name == "W2" {
			return nil, boom
		}
		gr, _ := w.Log("GR")
		return petro.VshGR(gr, 30, 120)
	})
	assert.Equal(t, 1, n)
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), `"W2"`)

	w1, _ := p.Well("W1")
	w2, _ := p.Well("W2")
	assert.True(t, w1.Logs().Has(petro.NameVshGR))
	assert.False(t, w2.Logs().Has(petro.NameVshGR))

	_, err = p.ApplyCalculation("nil", nil)
	assert.ErrorIs(t, err, project.ErrNilInput)
}

func TestSummarizeAll(t *testing.T) {
	p := project.New("North")
	for _, name := range []string{"W1", "W2", "W3"} {
		w := sampleWell(t, name)
		if name != "W2" {
			gr, _ := w.Log("GR")
			vsh, err := petro.VshGR(gr, 30, 120)
			require.NoError(t, err)
			require.NoError(t, w.AddLog("VSH", vsh))
		}
		require.NoError(t, p.AddWell(w, ""))
	}

	var visited []string
	out, err := p.SummarizeAll(interval.Params{VshCurve: "VSH", VshCutoff: 0.5},
		func(name string) { visited = append(visited, name) },
		interval.WithMissingPolicy(interval.MissingReject))

	require.ErrorIs(t, err, interval.ErrMissingCurve)
	assert.Equal(t, []string{"W1", "W2", "W3"}, visited)
	assert.Len(t, out, 2)
	assert.Contains(t, out, "W1")
	assert.NotContains(t, out, "W2")
}

func TestCrossplotData(t *testing.T) {
	core, logged := observer.New(zap.WarnLevel)
	p := project.New("North", project.WithLogger(zap.New(core)))

	full := sampleWell(t, "W1")
	gr, _ := full.Log("GR")
	vsh, err := petro.VshGR(gr, 30, 120)
	require.NoError(t, err)
	require.NoError(t, full.AddLog("VSH", vsh))
	require.NoError(t, p.AddWell(full, ""))
	require.NoError(t, p.AddWell(sampleWell(t, "W2"), ""))

	sets := p.CrossplotData("A", "B", "GR", "VSH", "GR")
	require.Len(t, sets, 1)
	assert.Equal(t, "W1", sets[0].Well)
	assert.Len(t, sets[0].X, 5)
	assert.Len(t, sets[0].Y, 5)
	assert.Equal(t, sets[0].X, sets[0].Color)
	assert.Equal(t, 1, logged.Len())

	assert.Empty(t, p.CrossplotData("A", "nope", "GR", "VSH", ""))
}

func TestWithLogger_PanicsOnNil(t *testing.T) {
	assert.Panics(t, func() { project.WithLogger(nil) })
}

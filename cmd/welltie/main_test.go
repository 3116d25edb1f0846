// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/katalvlaran/welltie/internal/config"
	"github.com/katalvlaran/welltie/nomenclature"
	"github.com/katalvlaran/welltie/series"
)

func testEnv(t *testing.T) *env {
	t.Helper()
	cfg := config.Default()
	cfg.TimeAxis = config.TimeAxisConfig{Name: "TWT", Start: 0, Stop: 400, Step: 2}
	cfg.Wavelet = config.WaveletConfig{Frequency: 30, Length: 40}

	return &env{cfg: cfg, log: zap.NewNop(), resolver: nomenclature.Default()}
}

func write(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))

	return p
}

func TestClassify(t *testing.T) {
	var buf bytes.Buffer
	cmd := &ClassifyCmd{Mnemonics: []string{"GR", "RHOB", "XYZ"}}
	require.NoError(t, cmd.Run(testEnv(t), &buf))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "FAMILY")
	assert.True(t, strings.HasPrefix(lines[2], "RHOB"))
	assert.Contains(t, lines[3], "UNKNOWN")
}

func TestPickCurve(t *testing.T) {
	tbl, err := series.NewTable("DEPTH", []float64{1, 2}).WithColumn("RHOB", []float64{2.3, 2.4})
	require.NoError(t, err)
	r := nomenclature.Default()

	name, err := pickCurve(tbl, r, "", nomenclature.Density)
	require.NoError(t, err)
	assert.Equal(t, "RHOB", name)

	_, err = pickCurve(tbl, r, "", nomenclature.Sonic)
	assert.Error(t, err)
	_, err = pickCurve(tbl, r, "NOPE", nomenclature.Density)
	assert.Error(t, err)
}

func TestSyntheticAndSummary(t *testing.T) {
	dir := t.TempDir()
	var logs strings.Builder
	logs.WriteString("DEPTH,DT,RHOB,GR\n")
	for i := 0; i < 200; i++ {
		dt, rho, gr := 100.0, 2.3, 40.0
		if i >= 100 {
			dt, rho, gr = 80, 2.5, 110
		}
		logs.WriteString(strings.Join([]string{
			ftoa(float64(1000 + i)), ftoa(dt), ftoa(rho), ftoa(gr),
		}, ",") + "\n")
	}
	logsPath := write(t, dir, "W1.csv", logs.String())
	shots := write(t, dir, "cs.csv", "depth,time\n900,0\n1300,400\n")
	tops := write(t, dir, "tops.csv", "name,depth\nUpper,1000\nLower,1100\nTD,1200\n")

	e := testEnv(t)
	out := filepath.Join(dir, "syn.csv")
	require.NoError(t, (&SyntheticCmd{Logs: logsPath, Checkshots: shots, Out: out}).Run(e))
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	header := strings.SplitN(string(data), "\n", 2)[0]
	assert.Equal(t, "TWT,AI_time,Reflectivity,Reflectivity_synthetic", header)

	sumOut := filepath.Join(dir, "sum.csv")
	cmd := &SummaryCmd{
		Logs: []string{logsPath}, Tops: []string{tops}, Vsh: "VSH",
		GRClean: 40, GRShale: 110, Avg: []string{"GR"}, Out: sumOut, NoProgress: true,
	}
	require.NoError(t, cmd.Run(e))
	data, err = os.ReadFile(sumOut)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[1], "W1,Upper,Lower,1000,1100,100,100,1,40"))
	assert.True(t, strings.HasPrefix(lines[2], "W1,Lower,TD,1100,1200,100,0,0,110"))
}

func TestSummary_MismatchedPairs(t *testing.T) {
	err := (&SummaryCmd{Logs: []string{"a"}, NoProgress: true}).Run(testEnv(t))
	assert.Error(t, err)
}

func ftoa(f float64) string { return strconv.FormatFloat(f, 'g', -1, 64) }

func TestSummary_RejectsRepeatedWellName(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "a"), 0o700))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "b"), 0o700))
	body := "DEPTH,VSH\n100,0.1\n101,0.1\n"
	first := write(t, dir, filepath.Join("a", "well.csv"), body)
	second := write(t, dir, filepath.Join("b", "well.csv"), body)
	tops := write(t, dir, "tops.csv", "name,depth\nA,100\nB,102\n")

	cmd := &SummaryCmd{
		Logs: []string{first, second}, Tops: []string{tops, tops}, Vsh: "VSH",
		Out: filepath.Join(dir, "sum.csv"), NoProgress: true,
	}
	err := cmd.Run(testEnv(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"well"`)
	assert.Contains(t, err.Error(), second)
}

// SPDX-License-Identifier: MIT

package wellio_test

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/welltie/interval"
	"github.com/katalvlaran/welltie/timedepth"
	"github.com/katalvlaran/welltie/wellio"
)

func TestReadCheckshots(t *testing.T) {
	in := "depth,time,comment\n1500,1100,b\n1000,800,a\nbad,900,x\n2000,1400,c\n"
	shots, err := wellio.ReadCheckshots(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []timedepth.Checkshot{
		{Depth: 1000, Time: 800},
		{Depth: 1500, Time: 1100},
		{Depth: 2000, Time: 1400},
	}, shots)
}

func TestReadCheckshots_MissingColumn(t *testing.T) {
	_, err := wellio.ReadCheckshots(strings.NewReader("depth,twt\n1,2\n"))
	require.ErrorIs(t, err, wellio.ErrMissingColumn)
	assert.Contains(t, err.Error(), "time")

	_, err = wellio.ReadCheckshots(strings.NewReader(""))
	assert.ErrorIs(t, err, wellio.ErrEmptyInput)
}

func TestCheckshots_WriteThenRead(t *testing.T) {
	shots := []timedepth.Checkshot{{Depth: 0, Time: 0}, {Depth: 812.5, Time: 640.25}}
	var buf bytes.Buffer
	require.NoError(t, wellio.WriteCheckshots(&buf, shots))

	back, err := wellio.ReadCheckshots(&buf)
	require.NoError(t, err)
	assert.Equal(t, shots, back)
}

func TestReadTops(t *testing.T) {
	in := "well,name,depth\nW1,Base,2000\nW1,Top,1500\nW1,,1600\nW1,Bad,n/a\nW1,Top,1550\n"
	ts, err := wellio.ReadTops(strings.NewReader(in), wellio.DefaultTopsColumns())
	require.NoError(t, err)

	assert.Equal(t, 2, ts.Len())
	d, ok := ts.Depth("Top")
	assert.True(t, ok)
	assert.Equal(t, 1550.0, d, "last row wins")
	assert.Equal(t, []interval.Top{{Name: "Top", Depth: 1550}, {Name: "Base", Depth: 2000}}, ts.Sorted())

	_, err = wellio.ReadTops(strings.NewReader("formation,md\nA,1\n"), wellio.DefaultTopsColumns())
	assert.ErrorIs(t, err, wellio.ErrMissingColumn)

	custom, err := wellio.ReadTops(strings.NewReader("formation,md\nA,1\n"),
		wellio.TopsColumns{Name: "formation", Depth: "md"})
	require.NoError(t, err)
	assert.Equal(t, 1, custom.Len())
}

func TestReadLogs_NullAndDomain(t *testing.T) {
	in := "DEPT,GR,RHOB\n1000,45,2.31\n1000.5,-999.25,2.35\nx,1,1\n1001,60,\n"
	tbl, err := wellio.ReadLogs(strings.NewReader(in), wellio.DefaultNullValue)
	require.NoError(t, err)

	assert.Equal(t, "DEPT", tbl.IndexName())
	assert.Equal(t, "depth", tbl.Domain().String())
	assert.Equal(t, []float64{1000, 1000.5, 1001}, tbl.Index())

	gr, ok := tbl.Column("GR")
	require.True(t, ok)
	assert.Equal(t, 45.0, gr.Values[0])
	assert.True(t, math.IsNaN(gr.Values[1]))

	rhob, _ := tbl.Column("RHOB")
	assert.True(t, math.IsNaN(rhob.Values[2]))
}

func TestReadLogs_SortsAndDropsRepeatedDepths(t *testing.T) {
	tops, err := interval.NewTopSet(interval.Top{Name: "A", Depth: 100}, interval.Top{Name: "B", Depth: 104})
	require.NoError(t, err)

	cases := map[string]string{
		"repeated":   "DEPTH,VSH\n100,0.1\n100,0.2\n101,0.1\n102,0.1\n103,0.1\n",
		"descending": "DEPTH,VSH\n103,0.1\n102,0.1\n101,0.1\n100,0.1\n100,0.2\n",
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			tbl, err := wellio.ReadLogs(strings.NewReader(in), wellio.DefaultNullValue)
			require.NoError(t, err)
			assert.Equal(t, []float64{100, 101, 102, 103}, tbl.Index())
			vsh, _ := tbl.Column("VSH")
			assert.Equal(t, 0.1, vsh.Values[0], "first row of a repeated depth wins")

			sum, err := interval.Summarize(tbl, tops, interval.Params{VshCurve: "VSH", VshCutoff: 0.5})
			require.NoError(t, err)
			require.Len(t, sum.Rows, 1)
			assert.Equal(t, 4.0, sum.Rows[0].GrossThickness)
			assert.Equal(t, 4.0, sum.Rows[0].NetSand)
			assert.Equal(t, 1.0, sum.Rows[0].NetToGross)
		})
	}
}

func TestWriteTable_RoundTrip(t *testing.T) {
	in := "DEPTH,GR\n1,10\n2,-999.25\n"
	tbl, err := wellio.ReadLogs(strings.NewReader(in), wellio.DefaultNullValue)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, wellio.WriteTable(&buf, tbl, wellio.DefaultNullValue))
	assert.Equal(t, in, buf.String())
}

func TestWriteSummary(t *testing.T) {
	tbl, err := wellio.ReadLogs(strings.NewReader("DEPTH,VSH\n100,0.1\n101,0.1\n102,0.9\n103,0.9\n"), wellio.DefaultNullValue)
	require.NoError(t, err)
	tops, err := interval.NewTopSet(interval.Top{Name: "A", Depth: 100}, interval.Top{Name: "B", Depth: 102},
		interval.Top{Name: "C", Depth: 104})
	require.NoError(t, err)
	sum, err := interval.Summarize(tbl, tops, interval.Params{VshCurve: "VSH", VshCutoff: 0.5, AvgCurves: []string{"GR"}})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, wellio.WriteSummary(&buf, sum))
	want := "Top,Base,TopMD,BaseMD,gross_thickness,net_sand,ntg_sand,GR_avg\n" +
		"A,B,100,102,2,2,1,\n" +
		"B,C,102,104,2,0,0,\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteWellSummaries(t *testing.T) {
	tbl, err := wellio.ReadLogs(strings.NewReader("DEPTH,VSH\n100,0.1\n101,0.9\n"), wellio.DefaultNullValue)
	require.NoError(t, err)
	tops, err := interval.NewTopSet(interval.Top{Name: "A", Depth: 100}, interval.Top{Name: "B", Depth: 102})
	require.NoError(t, err)
	sum, err := interval.Summarize(tbl, tops, interval.Params{VshCurve: "VSH", VshCutoff: 0.5})
	require.NoError(t, err)

	var buf bytes.Buffer
	sums := map[string]*interval.Summary{"W1": sum, "W3": sum}
	require.NoError(t, wellio.WriteWellSummaries(&buf, []string{"W1", "W2", "W3"}, sums))
	want := "Well,Top,Base,TopMD,BaseMD,gross_thickness,net_sand,ntg_sand\n" +
		"W1,A,B,100,102,2,1,0.5\n" +
		"W3,A,B,100,102,2,1,0.5\n"
	assert.Equal(t, want, buf.String())

	other := &interval.Summary{Columns: []string{"Base"}, Rows: nil}
	err = wellio.WriteWellSummaries(&bytes.Buffer{}, []string{"W1", "X"}, map[string]*interval.Summary{"W1": sum, "X": other})
	assert.ErrorIs(t, err, wellio.ErrColumnMismatch)
}

func TestReadFiles(t *testing.T) {
	dir := t.TempDir()
	cs := filepath.Join(dir, "cs.csv")
	require.NoError(t, os.WriteFile(cs, []byte("depth,time\n0,0\n100,80\n"), 0o600))
	shots, err := wellio.ReadCheckshotsFile(cs)
	require.NoError(t, err)
	assert.Len(t, shots, 2)

	_, err = wellio.ReadLogsFile(filepath.Join(dir, "none.csv"), wellio.DefaultNullValue)
	assert.Error(t, err)
}

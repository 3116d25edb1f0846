// SPDX-License-Identifier: MIT
// Package: welltie/wellio
//
// read.go — CSV readers for checkshots, tops and logs.

package wellio

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/gocarina/gocsv"

	"github.com/katalvlaran/welltie/interval"
	"github.com/katalvlaran/welltie/series"
	"github.com/katalvlaran/welltie/timedepth"
)

// DefaultNullValue is the conventional log null sentinel.
const DefaultNullValue = -999.25

const (
	opReadCheckshots = "ReadCheckshots"
	opReadTops       = "ReadTops"
	opReadLogs       = "ReadLogs"
)

// checkshotRow keeps raw text so that unparsable rows can be dropped.
type checkshotRow struct {
	Depth string `csv:"depth"`
	Time  string `csv:"time"`
}

// ReadCheckshots decodes a CSV with "depth" and "time" columns. Rows with a
// non-numeric field are dropped; the rest are stable-sorted by depth.
func ReadCheckshots(r io.Reader) ([]timedepth.Checkshot, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, ioErrorf(opReadCheckshots, err)
	}
	header, err := readHeader(data)
	if err != nil {
		return nil, ioErrorf(opReadCheckshots, err)
	}
	if err = requireColumns(header, "depth", "time"); err != nil {
		return nil, ioErrorf(opReadCheckshots, err)
	}

	var rows []checkshotRow
	if err = gocsv.UnmarshalBytes(data, &rows); err != nil {
		return nil, ioErrorf(opReadCheckshots, err)
	}
	shots := make([]timedepth.Checkshot, 0, len(rows))
	for _, row := range rows {
		d, okD := parseFloat(row.Depth)
		t, okT := parseFloat(row.Time)
		if okD && okT {
			shots = append(shots, timedepth.Checkshot{Depth: d, Time: t})
		}
	}
	sort.SliceStable(shots, func(i, j int) bool { return shots[i].Depth < shots[j].Depth })

	return shots, nil
}

// ReadCheckshotsFile opens path and calls ReadCheckshots.
func ReadCheckshotsFile(path string) ([]timedepth.Checkshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ioErrorf(opReadCheckshots, err)
	}
	defer f.Close()

	return ReadCheckshots(f)
}

// TopsColumns names the columns ReadTops looks for.
type TopsColumns struct {
	Name  string
	Depth string
}

// DefaultTopsColumns returns {"name", "depth"}.
func DefaultTopsColumns() TopsColumns {
	return TopsColumns{Name: "name", Depth: "depth"}
}

// ReadTops decodes formation tops. Extra columns are ignored, rows with a
// non-numeric depth or an empty name are dropped, and a repeated name moves
// the existing top (last row wins). Depth ordering is left to TopSet.Sorted.
func ReadTops(r io.Reader, cols TopsColumns) (*interval.TopSet, error) {
	rd := gocsv.LazyCSVReader(r)
	header, err := rd.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			err = ErrEmptyInput
		}
		return nil, ioErrorf(opReadTops, err)
	}
	if err = requireColumns(header, cols.Name, cols.Depth); err != nil {
		return nil, ioErrorf(opReadTops, err)
	}
	ni, di := columnIndex(header, cols.Name), columnIndex(header, cols.Depth)

	ts, _ := interval.NewTopSet()
	for {
		rec, err := rd.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, ioErrorf(opReadTops, err)
		}
		if ni >= len(rec) || di >= len(rec) {
			continue
		}
		name := strings.TrimSpace(rec[ni])
		d, ok := parseFloat(rec[di])
		if name == "" || !ok {
			continue
		}
		if err := ts.Set(name, d); err != nil {
			return nil, ioErrorf(opReadTops, err)
		}
	}

	return ts, nil
}

// ReadTopsFile opens path and calls ReadTops.
func ReadTopsFile(path string, cols TopsColumns) (*interval.TopSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ioErrorf(opReadTops, err)
	}
	defer f.Close()

	return ReadTops(f, cols)
}

// ReadLogs decodes a table whose first column is the index. Cells equal to
// null, empty, or non-numeric become NaN; rows with a non-numeric index are
// dropped. The result is sorted by index with one row per index value (the
// first occurrence in the file wins). The index name is the first header cell.
func ReadLogs(r io.Reader, null float64) (*series.Table, error) {
	rd := gocsv.LazyCSVReader(r)
	header, err := rd.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			err = ErrEmptyInput
		}
		return nil, ioErrorf(opReadLogs, err)
	}
	if len(header) == 0 || strings.TrimSpace(header[0]) == "" {
		return nil, fmt.Errorf("%s: %w: index", opReadLogs, ErrMissingColumn)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	var index []float64
	cols := make([][]float64, len(header)-1)
	for {
		rec, err := rd.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, ioErrorf(opReadLogs, err)
		}
		x, ok := parseFloat(rec[0])
		if !ok {
			continue
		}
		index = append(index, x)
		for c := range cols {
			v := math.NaN()
			if c+1 < len(rec) {
				if f, ok := parseFloat(rec[c+1]); ok {
					v = f
				}
			}
			cols[c] = append(cols[c], v)
		}
	}

	tbl := series.NewTable(header[0], index)
	for c, name := range header[1:] {
		if name == "" {
			continue
		}
		if tbl, err = tbl.WithColumn(name, cols[c]); err != nil {
			return nil, ioErrorf(opReadLogs, err)
		}
	}
	if tbl, err = tbl.ReplaceNull(null).Dedup(); err != nil {
		return nil, ioErrorf(opReadLogs, err)
	}

	return tbl, nil
}

// ReadLogsFile opens path and calls ReadLogs.
func ReadLogsFile(path string, null float64) (*series.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ioErrorf(opReadLogs, err)
	}
	defer f.Close()

	return ReadLogs(f, null)
}

func readHeader(data []byte) ([]string, error) {
	header, err := gocsv.LazyCSVReader(bytes.NewReader(data)).Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrEmptyInput
	}

	return header, err
}

func requireColumns(header []string, names ...string) error {
	var missing []string
	for _, n := range names {
		if columnIndex(header, n) < 0 {
			missing = append(missing, n)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingColumn, strings.Join(missing, ", "))
	}

	return nil
}

func columnIndex(header []string, name string) int {
	for i, h := range header {
		if strings.TrimSpace(h) == name {
			return i
		}
	}

	return -1
}

func parseFloat(s string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}

	return f, true
}

// SPDX-License-Identifier: MIT
// Package: welltie/wellio
//
// write.go — CSV writers.

package wellio

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/gocarina/gocsv"

	"github.com/katalvlaran/welltie/interval"
	"github.com/katalvlaran/welltie/series"
	"github.com/katalvlaran/welltie/timedepth"
)

const (
	opWriteTable      = "WriteTable"
	opWriteSummary    = "WriteSummary"
	opWriteCheckshots = "WriteCheckshots"
)

// Leading columns of written summaries.
const (
	WellColumn = "Well"
	TopColumn  = "Top"
)

type checkshotOut struct {
	Depth float64 `csv:"depth"`
	Time  float64 `csv:"time"`
}

// WriteCheckshots encodes shots with a "depth,time" header.
func WriteCheckshots(w io.Writer, shots []timedepth.Checkshot) error {
	rows := make([]*checkshotOut, len(shots))
	for i, s := range shots {
		rows[i] = &checkshotOut{Depth: s.Depth, Time: s.Time}
	}
	if err := gocsv.Marshal(rows, w); err != nil {
		return ioErrorf(opWriteCheckshots, err)
	}

	return nil
}

// WriteTable writes the index followed by every column. NaN is written as null.
func WriteTable(w io.Writer, t *series.Table, null float64) error {
	if t == nil {
		return ioErrorf(opWriteTable, ErrNilInput)
	}
	cw := gocsv.NewSafeCSVWriter(csv.NewWriter(w))
	names := t.Names()
	cols := make([][]float64, len(names))
	for i, n := range names {
		s, _ := t.Column(n)
		cols[i] = s.Values
	}

	if err := cw.Write(append([]string{t.IndexName()}, names...)); err != nil {
		return ioErrorf(opWriteTable, err)
	}
	rec := make([]string, len(names)+1)
	for r, x := range t.Index() {
		rec[0] = formatFloat(x, null)
		for c := range cols {
			rec[c+1] = formatFloat(cols[c][r], null)
		}
		if err := cw.Write(rec); err != nil {
			return ioErrorf(opWriteTable, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return ioErrorf(opWriteTable, err)
	}

	return nil
}

// WriteSummary writes one row per interval under the header
// Top, <summary columns...>. Undefined values are written empty.
func WriteSummary(w io.Writer, s *interval.Summary) error {
	if s == nil {
		return ioErrorf(opWriteSummary, ErrNilInput)
	}
	cw := gocsv.NewSafeCSVWriter(csv.NewWriter(w))
	if err := cw.Write(append([]string{TopColumn}, s.Columns...)); err != nil {
		return ioErrorf(opWriteSummary, err)
	}
	if err := writeSummaryRows(cw, nil, s); err != nil {
		return ioErrorf(opWriteSummary, err)
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return ioErrorf(opWriteSummary, err)
	}

	return nil
}

// WriteWellSummaries writes the summaries of several wells into one table
// with a leading Well column, visiting wells in the order of names. Names
// without a summary are skipped. All summaries must share their columns.
func WriteWellSummaries(w io.Writer, names []string, sums map[string]*interval.Summary) error {
	var columns []string
	for _, n := range names {
		if s, ok := sums[n]; ok && s != nil {
			columns = s.Columns
			break
		}
	}
	cw := gocsv.NewSafeCSVWriter(csv.NewWriter(w))
	if err := cw.Write(append([]string{WellColumn, TopColumn}, columns...)); err != nil {
		return ioErrorf(opWriteSummary, err)
	}
	for _, n := range names {
		s, ok := sums[n]
		if !ok || s == nil {
			continue
		}
		if len(s.Columns) != len(columns) {
			return fmt.Errorf("%s: well %q: %w", opWriteSummary, n, ErrColumnMismatch)
		}
		if err := writeSummaryRows(cw, []string{n}, s); err != nil {
			return ioErrorf(opWriteSummary, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return ioErrorf(opWriteSummary, err)
	}

	return nil
}

func writeSummaryRows(cw *gocsv.SafeCSVWriter, prefix []string, s *interval.Summary) error {
	for _, row := range s.Rows {
		rec := make([]string, 0, len(prefix)+len(s.Columns)+1)
		rec = append(rec, prefix...)
		rec = append(rec, row.Top)
		for _, col := range s.Columns {
			if col == interval.ColBase {
				rec = append(rec, row.Base)
				continue
			}
			v, ok := row.Value(col)
			if !ok || math.IsNaN(v) {
				rec = append(rec, "")
				continue
			}
			rec = append(rec, strconv.FormatFloat(v, 'g', -1, 64))
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}

	return nil
}

func formatFloat(v, null float64) string {
	if math.IsNaN(v) {
		v = null
	}

	return strconv.FormatFloat(v, 'g', -1, 64)
}

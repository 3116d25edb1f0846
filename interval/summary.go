// SPDX-License-Identifier: MIT
// Package: welltie/interval
//
// summary.go — per-interval gross/net reduction.
//
// For each Interval with a non-empty slice S = rows with TopDepth ≤ depth < BaseDepth:
//
//	step   = median(diff(depth(S)))            (0 for a single sample)
//	gross  = max(depth) − min(depth) + step    (0 for a single sample)
//	net    = #(vsh < vshCut) · step
//	ntg    = net / gross                       (NaN if gross == 0)
//	pay    = #(vsh < vshCut ∧ phi > phiCut ∧ sw < swCut) · step
//	<c>_avg = mean of defined samples of c     (NaN if c is absent)
//
// Intervals whose slice is empty produce no row.

package interval

import (
	"fmt"
	"math"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/welltie/series"
)

// Summary column names.
const (
	ColBase           = "Base"
	ColTopMD          = "TopMD"
	ColBaseMD         = "BaseMD"
	ColGrossThickness = "gross_thickness"
	ColNetSand        = "net_sand"
	ColNetToGross     = "ntg_sand"
	ColNetPay         = "net_pay"

	// AvgSuffix is appended to a curve name for its average column.
	AvgSuffix = "_avg"
)

const opSummarize = "Summarize"

// PayCutoffs enables net pay when set on Params.
type PayCutoffs struct {
	PhiCurve  string
	PhiCutoff float64
	SwCurve   string
	SwCutoff  float64
}

// Params names the curves and cutoffs of a summary.
type Params struct {
	VshCurve  string
	VshCutoff float64
	Pay       *PayCutoffs // nil: no net pay column
	AvgCurves []string
}

// Row is one interval of a Summary. Rows are identified by Top.
type Row struct {
	Top            string
	Base           string
	TopDepth       float64
	BaseDepth      float64
	GrossThickness float64
	NetSand        float64
	NetToGross     float64
	NetPay         float64            // NaN when net pay was not requested
	Averages       map[string]float64 // keyed by curve name
}

// Summary is the result of Summarize.
type Summary struct {
	Columns []string
	Rows    []Row
}

// Value returns the numeric cell of column col, false for unknown columns and Base.
func (r Row) Value(col string) (float64, bool) {
	switch col {
	case ColTopMD:
		return r.TopDepth, true
	case ColBaseMD:
		return r.BaseDepth, true
	case ColGrossThickness:
		return r.GrossThickness, true
	case ColNetSand:
		return r.NetSand, true
	case ColNetToGross:
		return r.NetToGross, true
	case ColNetPay:
		return r.NetPay, true
	}
	if len(col) > len(AvgSuffix) && col[len(col)-len(AvgSuffix):] == AvgSuffix {
		v, ok := r.Averages[col[:len(col)-len(AvgSuffix)]]

		return v, ok
	}

	return 0, false
}

// Row returns the row whose Top is name.
func (s *Summary) Row(name string) (Row, bool) {
	for _, r := range s.Rows {
		if r.Top == name {
			return r, true
		}
	}

	return Row{}, false
}

// Columns lists the summary columns for p, in output order.
func Columns(p Params) []string {
	cols := []string{ColBase, ColTopMD, ColBaseMD, ColGrossThickness, ColNetSand, ColNetToGross}
	if p.Pay != nil {
		cols = append(cols, ColNetPay)
	}
	for _, c := range p.AvgCurves {
		cols = append(cols, c+AvgSuffix)
	}

	return cols
}

// Summarize reduces logs over every interval of tops.
//
// Fewer than two tops give an empty Summary with the full column list.
// Logs whose index is not strictly increasing are sorted first, keeping the
// first row of every repeated depth.
//
// Errors:
//   - ErrNilInput for a nil table or top set.
//   - ErrEmptyName for an empty VshCurve.
//   - ErrMissingCurve under MissingReject when a cutoff curve is absent.
func Summarize(logs *series.Table, tops *TopSet, p Params, opts ...Option) (*Summary, error) {
	o := gatherOptions(opts...)
	if logs == nil || tops == nil {
		return nil, intervalErrorf(opSummarize, ErrNilInput)
	}
	if p.VshCurve == "" {
		return nil, intervalErrorf(opSummarize, ErrEmptyName)
	}

	sum := &Summary{Columns: Columns(p), Rows: []Row{}}
	intervals := tops.Intervals()
	if len(intervals) == 0 {
		return sum, nil
	}

	src, err := resolveSources(logs, p, o)
	if err != nil {
		return nil, intervalErrorf(opSummarize, err)
	}
	if !series.IsStrictlyIncreasing(logs.Index()) {
		if logs, err = logs.Dedup(); err != nil {
			return nil, intervalErrorf(opSummarize, err)
		}
		o.logger.Debug("log index sorted and de-duplicated", zap.Int("rows", logs.Len()))
	}

	for _, iv := range intervals {
		slice := logs.Slice(iv.TopDepth, iv.BaseDepth)
		if slice.Len() == 0 {
			o.logger.Debug("empty interval skipped",
				zap.String("top", iv.Top), zap.String("base", iv.Base))
			continue
		}
		sum.Rows = append(sum.Rows, summarizeSlice(slice, iv, p, src))
	}

	return sum, nil
}

// sources records which cutoff curves exist and how to read absent ones.
type sources struct {
	hasVsh, hasPhi, hasSw bool
	noPay                 bool
}

func resolveSources(logs *series.Table, p Params, o Options) (sources, error) {
	s := sources{hasVsh: logs.Has(p.VshCurve)}
	if p.Pay != nil {
		s.hasPhi = logs.Has(p.Pay.PhiCurve)
		s.hasSw = logs.Has(p.Pay.SwCurve)
	}

	missing := make([]string, 0, 3)
	if !s.hasVsh {
		missing = append(missing, p.VshCurve)
	}
	if p.Pay != nil && !s.hasPhi {
		missing = append(missing, p.Pay.PhiCurve)
	}
	if p.Pay != nil && !s.hasSw {
		missing = append(missing, p.Pay.SwCurve)
	}
	if len(missing) == 0 {
		return s, nil
	}

	switch o.missing {
	case MissingReject:
		return s, fmt.Errorf("%w: %q", ErrMissingCurve, missing)
	case MissingNoPay:
		s.noPay = true
		o.logger.Warn("cutoff curves missing, net pay reported as zero",
			zap.Strings("curves", missing))
	default:
		o.logger.Warn("cutoff curves missing, substituting constants (vsh=1, phi=0, sw=1)",
			zap.Strings("curves", missing))
	}

	return s, nil
}

func summarizeSlice(slice *series.Table, iv Interval, p Params, src sources) Row {
	depth := slice.Index()
	gross, step := thickness(depth)
	row := Row{
		Top:            iv.Top,
		Base:           iv.Base,
		TopDepth:       iv.TopDepth,
		BaseDepth:      iv.BaseDepth,
		GrossThickness: gross,
		NetPay:         math.NaN(),
	}

	n := len(depth)
	vsh := column(slice, p.VshCurve, src.hasVsh, 1, n)

	switch {
	case gross == 0:
		row.NetSand, row.NetToGross = 0, math.NaN()
	case !src.hasVsh:
		row.NetSand, row.NetToGross = math.NaN(), math.NaN()
	default:
		cnt := 0
		for _, v := range vsh {
			if v < p.VshCutoff {
				cnt++
			}
		}
		row.NetSand = float64(cnt) * step
		row.NetToGross = row.NetSand / gross
	}

	if p.Pay != nil {
		row.NetPay = 0
		if !src.noPay {
			phi := column(slice, p.Pay.PhiCurve, src.hasPhi, 0, n)
			sw := column(slice, p.Pay.SwCurve, src.hasSw, 1, n)
			cnt := 0
			for i := 0; i < n; i++ {
				if vsh[i] < p.VshCutoff && phi[i] > p.Pay.PhiCutoff && sw[i] < p.Pay.SwCutoff {
					cnt++
				}
			}
			row.NetPay = float64(cnt) * step
		}
	}

	if len(p.AvgCurves) > 0 {
		row.Averages = make(map[string]float64, len(p.AvgCurves))
		for _, c := range p.AvgCurves {
			s, ok := slice.Column(c)
			if !ok {
				row.Averages[c] = math.NaN()
				continue
			}
			row.Averages[c] = series.Mean(s.Values)
		}
	}

	return row
}

// thickness returns gross thickness and median step of a depth slice.
func thickness(depth []float64) (gross, step float64) {
	if len(depth) < 2 {
		return 0, 0
	}
	diffs := make([]float64, len(depth)-1)
	for i := range diffs {
		diffs[i] = depth[i+1] - depth[i]
	}
	step = series.Median(diffs)

	return floats.Max(depth) - floats.Min(depth) + step, step
}

// column returns the named column's values, or n copies of fill when absent.
func column(t *series.Table, name string, present bool, fill float64, n int) []float64 {
	if present {
		if s, ok := t.Column(name); ok {
			return s.Values
		}
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = fill
	}

	return out
}

// SPDX-License-Identifier: MIT
// Package: welltie/project
//
// well.go — single-well aggregate.

package project

import (
	"github.com/katalvlaran/welltie/interval"
	"github.com/katalvlaran/welltie/series"
	"github.com/katalvlaran/welltie/timedepth"
)

const (
	opNewWell        = "NewWell"
	opAddLog         = "AddLog"
	opSetCheckshots  = "SetCheckshots"
	opToTime         = "ToTime"
	opTimeTops       = "TimeTops"
	opWellInterval   = "Interval"
	opWellSummarize  = "Summarize"
	defaultNullValue = -999.25
)

// CurveInfo is descriptive metadata of one log curve.
type CurveInfo struct {
	Unit        string
	Description string
}

// Well is one borehole: logs, tops, curve metadata and an optional relation.
type Well struct {
	Name      string
	UWI       string
	NullValue float64

	logs     *series.Table
	tops     *interval.TopSet
	curves   map[string]CurveInfo
	relation *timedepth.Relation
}

// NewWell wraps logs, sorted by depth with one row per depth (first row
// wins). Values equal to NullValue (-999.25 by default) are expected to have
// been replaced by NaN already; see series.Table.ReplaceNull.
func NewWell(name string, logs *series.Table) (*Well, error) {
	if logs == nil {
		return nil, projectErrorf(opNewWell, ErrNilInput)
	}
	logs, err := logs.Dedup()
	if err != nil {
		return nil, projectErrorf(opNewWell, err)
	}
	tops, _ := interval.NewTopSet()

	return &Well{
		Name:      name,
		NullValue: defaultNullValue,
		logs:      logs,
		tops:      tops,
		curves:    make(map[string]CurveInfo),
	}, nil
}

// Logs returns the current log table. Tables are immutable; AddLog swaps it.
func (w *Well) Logs() *series.Table { return w.logs }

// LogNames lists the curves in column order.
func (w *Well) LogNames() []string { return w.logs.Names() }

// Log returns a copy of the named curve.
func (w *Well) Log(name string) (*series.Series, bool) { return w.logs.Column(name) }

// AddLog merges s into the logs under mnemonic (s.Name when mnemonic is
// empty), replacing a curve of the same name. s must share the logs' index
// name and index values.
func (w *Well) AddLog(mnemonic string, s *series.Series) error {
	if s == nil {
		return wellErrorf(opAddLog, w.Name, ErrNilInput)
	}
	if s.IndexName != w.logs.IndexName() {
		return wellErrorf(opAddLog, w.Name, ErrIndexMismatch)
	}
	if mnemonic != "" && mnemonic != s.Name {
		s = s.Renamed(mnemonic)
	}
	logs, err := w.logs.With(s)
	if err != nil {
		return wellErrorf(opAddLog, w.Name, err)
	}
	w.logs = logs

	return nil
}

// SetCurveInfo records metadata for a curve.
func (w *Well) SetCurveInfo(name string, info CurveInfo) { w.curves[name] = info }

// CurveInfo returns the metadata recorded for a curve.
func (w *Well) CurveInfo(name string) (CurveInfo, bool) {
	info, ok := w.curves[name]

	return info, ok
}

// Tops returns the well's top set. It is shared, not copied.
func (w *Well) Tops() *interval.TopSet { return w.tops }

// AddTop sets a formation top; an existing name moves to the new depth.
func (w *Well) AddTop(name string, depth float64) error { return w.tops.Set(name, depth) }

// AddTops sets every top of ts in its order.
func (w *Well) AddTops(ts *interval.TopSet) error {
	if ts == nil {
		return ErrNilInput
	}
	for _, t := range ts.Tops() {
		if err := w.tops.Set(t.Name, t.Depth); err != nil {
			return err
		}
	}

	return nil
}

// Interval returns the log rows with top <= depth < base.
func (w *Well) Interval(top, base string) (*series.Table, error) {
	lo, ok := w.tops.Depth(top)
	if !ok {
		return nil, wellErrorf(opWellInterval, w.Name, interval.ErrUnknownTop)
	}
	hi, ok := w.tops.Depth(base)
	if !ok {
		return nil, wellErrorf(opWellInterval, w.Name, interval.ErrUnknownTop)
	}

	return w.logs.Slice(lo, hi), nil
}

// Summarize runs interval.Summarize over the well's logs and tops.
func (w *Well) Summarize(p interval.Params, opts ...interval.Option) (*interval.Summary, error) {
	s, err := interval.Summarize(w.logs, w.tops, p, opts...)
	if err != nil {
		return nil, wellErrorf(opWellSummarize, w.Name, err)
	}

	return s, nil
}

// SetCheckshots builds the well's time-depth relation and stores a TWT curve
// in the logs.
func (w *Well) SetCheckshots(shots []timedepth.Checkshot, opts ...timedepth.Option) error {
	rel, err := timedepth.NewRelation(shots, opts...)
	if err != nil {
		return wellErrorf(opSetCheckshots, w.Name, err)
	}
	twt, err := timedepth.TimeCurve(w.logs.IndexName(), w.logs.Index(), rel.DepthToTime)
	if err != nil {
		return wellErrorf(opSetCheckshots, w.Name, err)
	}
	if err = w.AddLog("", twt); err != nil {
		return err
	}
	w.relation = rel

	return nil
}

// Relation returns the time-depth relation, if checkshots were set.
func (w *Well) Relation() (*timedepth.Relation, bool) {
	return w.relation, w.relation != nil
}

// ToTime resamples the named curves onto target through the well's relation.
func (w *Well) ToTime(names []string, target timedepth.TimeIndex, opts ...timedepth.Option) (*series.Table, error) {
	if w.relation == nil {
		return nil, wellErrorf(opToTime, w.Name, ErrNoCheckshots)
	}
	t, err := timedepth.Convert(w.logs, names, w.relation.DepthToTime, target, opts...)
	if err != nil {
		return nil, wellErrorf(opToTime, w.Name, err)
	}

	return t, nil
}

// TimeTops converts the well's tops to two-way time.
func (w *Well) TimeTops() ([]interval.TimeTop, error) {
	if w.relation == nil {
		return nil, wellErrorf(opTimeTops, w.Name, ErrNoCheckshots)
	}
	tt, err := interval.InTime(w.tops, w.relation.DepthToTime)
	if err != nil {
		return nil, wellErrorf(opTimeTops, w.Name, err)
	}

	return tt, nil
}

// TimeInterval slices a time-indexed table (typically from ToTime) between
// the TWT of two tops, both ends inclusive.
func (w *Well) TimeInterval(timeLogs *series.Table, top, base string) (*series.Table, error) {
	tt, err := w.TimeTops()
	if err != nil {
		return nil, err
	}
	out, err := interval.SliceTime(timeLogs, tt, top, base)
	if err != nil {
		return nil, wellErrorf(opTimeTops, w.Name, err)
	}

	return out, nil
}

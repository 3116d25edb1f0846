// SPDX-License-Identifier: MIT
// Package: welltie/project
//
// project.go — multi-well container and batch operations.
//
// Batch steps (ApplyCalculation, SummarizeAll, CrossplotData):
//  1. Visit wells in insertion order.
//  2. On a per-well failure, log at Warn and record the error; continue.
//  3. Return the collected results plus errors.Join of the failures.

package project

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/welltie/interval"
	"github.com/katalvlaran/welltie/series"
)

const (
	opAddWell          = "AddWell"
	opApplyCalculation = "ApplyCalculation"
	opSummarizeAll     = "SummarizeAll"
)

// Project is an in-memory set of wells keyed by unique name.
type Project struct {
	ID   string
	Name string

	wells  map[string]*Well
	order  []string
	logger *zap.Logger
}

// New returns an empty project with a fresh random ID.
func New(name string, opts ...Option) *Project {
	o := gatherOptions(opts...)

	return &Project{
		ID:     uuid.NewString(),
		Name:   name,
		wells:  make(map[string]*Well),
		logger: o.logger,
	}
}

// AddWell stores w under w.Name, or under nameOverride when w.Name is empty.
// An existing well of the same key is overwritten with a Warn notice and
// keeps its original position.
func (p *Project) AddWell(w *Well, nameOverride string) error {
	if w == nil {
		return projectErrorf(opAddWell, ErrNilInput)
	}
	key := w.Name
	if key == "" {
		key = nameOverride
	}
	if key == "" {
		return projectErrorf(opAddWell, ErrNoName)
	}
	if _, exists := p.wells[key]; exists {
		p.logger.Warn("well already in project, overwriting",
			zap.String("project", p.Name), zap.String("well", key))
	} else {
		p.order = append(p.order, key)
	}
	p.wells[key] = w

	return nil
}

// Well returns the well stored under name.
func (p *Project) Well(name string) (*Well, bool) {
	w, ok := p.wells[name]

	return w, ok
}

// Names lists well keys in insertion order.
func (p *Project) Names() []string { return append([]string(nil), p.order...) }

// Wells lists wells in insertion order.
func (p *Project) Wells() []*Well {
	out := make([]*Well, len(p.order))
	for i, k := range p.order {
		out[i] = p.wells[k]
	}

	return out
}

// Len returns the number of wells.
func (p *Project) Len() int { return len(p.order) }

// Calculation derives one curve from a well. It must not mutate the well.
type Calculation func(w *Well) (*series.Series, error)

// ApplyCalculation runs calc on every well and merges each result with
// Well.AddLog. It returns the number of wells updated.
func (p *Project) ApplyCalculation(name string, calc Calculation) (int, error) {
	if calc == nil {
		return 0, projectErrorf(opApplyCalculation, ErrNilInput)
	}
	var (
		applied int
		errs    []error
	)
	for _, key := range p.order {
		w := p.wells[key]
		s, err := calc(w)
		if err == nil {
			err = w.AddLog("", s)
		}
		if err != nil {
			p.logger.Warn("calculation failed",
				zap.String("calculation", name), zap.String("well", key), zap.Error(err))
			errs = append(errs, fmt.Errorf("%s %q: well %q: %w", opApplyCalculation, name, key, err))
			continue
		}
		p.logger.Debug("calculation applied",
			zap.String("calculation", name), zap.String("well", key))
		applied++
	}

	return applied, errors.Join(errs...)
}

// SummarizeAll summarizes every well with the same parameters. onWell, if
// non-nil, is called after each well whether or not it succeeded, which lets
// callers drive a progress indicator. Failed wells are absent from the map.
func (p *Project) SummarizeAll(params interval.Params, onWell func(name string), opts ...interval.Option) (map[string]*interval.Summary, error) {
	out := make(map[string]*interval.Summary, len(p.order))
	var errs []error
	for _, key := range p.order {
		s, err := p.wells[key].Summarize(params, opts...)
		if err != nil {
			p.logger.Warn("summary failed", zap.String("well", key), zap.Error(err))
			errs = append(errs, fmt.Errorf("%s: %w", opSummarizeAll, err))
		} else {
			out[key] = s
		}
		if onWell != nil {
			onWell(key)
		}
	}

	return out, errors.Join(errs...)
}

// CrossplotSet is the paired samples of one well for a crossplot.
// Color is nil when no color curve was requested or the well lacks it.
type CrossplotSet struct {
	Well  string
	X, Y  []float64
	Color []float64
}

// CrossplotData gathers x and y (and optionally color) over the depth
// interval [top, base) of every well. Wells lacking the tops or the x/y
// curves are skipped with a Warn notice; skipping is not an error.
func (p *Project) CrossplotData(top, base, x, y, color string) []CrossplotSet {
	out := make([]CrossplotSet, 0, len(p.order))
	for _, key := range p.order {
		w := p.wells[key]
		slice, err := w.Interval(top, base)
		if err != nil {
			p.logger.Warn("skipping well for crossplot", zap.String("well", key),
				zap.String("uwi", w.UWI), zap.Error(err))
			continue
		}
		xs, okX := slice.Column(x)
		ys, okY := slice.Column(y)
		if !okX || !okY {
			p.logger.Warn("skipping well for crossplot, missing curves", zap.String("well", key),
				zap.String("uwi", w.UWI), zap.Strings("curves", []string{x, y}))
			continue
		}
		set := CrossplotSet{Well: key, X: xs.Values, Y: ys.Values}
		if color != "" {
			if cs, ok := slice.Column(color); ok {
				set.Color = cs.Values
			}
		}
		out = append(out, set)
	}

	return out
}

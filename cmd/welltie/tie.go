// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/katalvlaran/welltie/series"
	"github.com/katalvlaran/welltie/tie"
	"github.com/katalvlaran/welltie/wellio"
)

// TieCmd aligns a synthetic trace with an observed trace by DTW.
type TieCmd struct {
	Synthetic      string  `arg:"--synthetic,required" help:"time-indexed CSV holding the synthetic trace"`
	Observed       string  `arg:"--observed,required" help:"time-indexed CSV holding the observed trace"`
	SyntheticCurve string  `arg:"--synthetic-curve" help:"trace column; last column when empty"`
	ObservedCurve  string  `arg:"--observed-curve" help:"trace column; first column when empty"`
	Window         int     `arg:"--window" default:"-1" help:"Sakoe-Chiba band in samples, -1 for none"`
	Penalty        float64 `arg:"--penalty" help:"cost added to non-diagonal steps"`
	Raw            bool    `arg:"--raw" help:"compare amplitudes without z-scoring"`
}

func (c *TieCmd) Run(e *env) error {
	syn, err := traceFrom(c.Synthetic, c.SyntheticCurve, true, e.cfg.NullValue)
	if err != nil {
		return err
	}
	obs, err := traceFrom(c.Observed, c.ObservedCurve, false, e.cfg.NullValue)
	if err != nil {
		return err
	}

	opts := tie.Options{Window: c.Window, SlopePenalty: c.Penalty, Normalize: !c.Raw}
	res, err := tie.Align(syn, obs, opts)
	if err != nil {
		return err
	}
	e.log.Debug("tie computed", zap.Int("pairs", res.Pairs), zap.Float64("distance", res.Distance))

	fmt.Fprintf(os.Stdout, "synthetic:   %s (%d samples)\n", syn.Name, syn.Len())
	fmt.Fprintf(os.Stdout, "observed:    %s (%d samples)\n", obs.Name, obs.Len())
	fmt.Fprintf(os.Stdout, "distance:    %g\n", res.Distance)
	fmt.Fprintf(os.Stdout, "correlation: %.4f\n", res.Correlation)
	fmt.Fprintf(os.Stdout, "shift:       %g %s\n", res.Shift, syn.IndexName)

	return nil
}

// traceFrom reads one column of a CSV; an empty name picks the last column
// when last is set, the first otherwise.
func traceFrom(path, name string, last bool, null float64) (*series.Series, error) {
	t, err := wellio.ReadLogsFile(path, null)
	if err != nil {
		return nil, err
	}
	names := t.Names()
	if name == "" {
		if len(names) == 0 {
			return nil, fmt.Errorf("%s: no trace column", path)
		}
		name = names[0]
		if last {
			name = names[len(names)-1]
		}
	}
	s, ok := t.Column(name)
	if !ok {
		return nil, fmt.Errorf("%s: curve %q not found", path, name)
	}

	return s, nil
}

// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/welltie/nomenclature"
	"github.com/katalvlaran/welltie/petro"
	"github.com/katalvlaran/welltie/project"
	"github.com/katalvlaran/welltie/seismic"
	"github.com/katalvlaran/welltie/series"
	"github.com/katalvlaran/welltie/timedepth"
	"github.com/katalvlaran/welltie/wellio"
)

// SyntheticCmd builds impedance, reflectivity and a synthetic trace on the
// configured time axis.
type SyntheticCmd struct {
	Logs       string `arg:"--logs,required" help:"depth-indexed logs CSV"`
	Checkshots string `arg:"--checkshots,required" help:"checkshot CSV with depth,time columns"`
	Vp         string `arg:"--vp" help:"P-velocity curve (m/s); overrides --sonic"`
	Sonic      string `arg:"--sonic" help:"sonic curve (us/ft); detected when empty"`
	Rho        string `arg:"--rho" help:"bulk density curve; detected when empty"`
	Out        string `arg:"-o,--out" help:"output CSV, stdout when empty"`
}

func (c *SyntheticCmd) Run(e *env) error {
	cfg := e.cfg
	logs, err := wellio.ReadLogsFile(c.Logs, cfg.NullValue)
	if err != nil {
		return err
	}
	if d := logs.Domain(); d != series.DomainDepth {
		e.log.Warn("logs index does not look like depth",
			zap.String("index", logs.IndexName()), zap.Stringer("domain", d))
	}
	shots, err := wellio.ReadCheckshotsFile(c.Checkshots)
	if err != nil {
		return err
	}
	w, err := project.NewWell(strings.TrimSuffix(filepath.Base(c.Logs), filepath.Ext(c.Logs)), logs)
	if err != nil {
		return err
	}
	w.NullValue = cfg.NullValue
	if err = w.SetCheckshots(shots, timedepth.WithLogger(e.log)); err != nil {
		return err
	}

	vp, err := c.velocity(e, w)
	if err != nil {
		return err
	}
	rhoName, err := pickCurve(w.Logs(), e.resolver, c.Rho, nomenclature.Density)
	if err != nil {
		return err
	}
	rho, _ := w.Log(rhoName)
	ai, err := petro.AcousticImpedance(vp, rho)
	if err != nil {
		return err
	}
	if err = w.AddLog("", ai); err != nil {
		return err
	}

	axis, err := timedepth.RegularTimeIndex(cfg.TimeAxis.Name, cfg.TimeAxis.Start, cfg.TimeAxis.Stop, cfg.TimeAxis.Step)
	if err != nil {
		return err
	}
	inTime, err := w.ToTime([]string{ai.Name}, axis, timedepth.WithLogger(e.log))
	if err != nil {
		return err
	}
	aiTime, _ := inTime.Column(ai.Name + timedepth.TimeSuffix)

	wavelet, err := seismic.Ricker(cfg.Wavelet.Frequency, cfg.Wavelet.Length, cfg.TimeAxis.Step)
	if err != nil {
		return err
	}
	align, _ := seismic.ParseAlignment(cfg.Synthetic.Alignment)
	mode, _ := seismic.ParseMode(cfg.Synthetic.Mode)
	res, err := seismic.Synthetic(aiTime, wavelet, align, mode, cfg.SeismicOptions()...)
	if err != nil {
		return err
	}
	e.log.Info("synthetic built",
		zap.String("well", w.Name),
		zap.String("wavelet", wavelet.Name),
		zap.Int("samples", res.Trace.Len()))

	out, err := create(c.Out)
	if err != nil {
		return err
	}
	defer out.Close()

	return wellio.WriteTable(out, syntheticTable(e, res), cfg.NullValue)
}

// velocity returns Vp from --vp, or converts the sonic curve.
func (c *SyntheticCmd) velocity(e *env, w *project.Well) (*series.Series, error) {
	if c.Vp != "" {
		vp, ok := w.Log(c.Vp)
		if !ok {
			return nil, fmt.Errorf("curve %q not found", c.Vp)
		}
		return vp, nil
	}
	if c.Sonic == "" {
		if name, err := pickCurve(w.Logs(), e.resolver, "", nomenclature.VelocityP); err == nil {
			vp, _ := w.Log(name)
			return vp, nil
		}
	}
	name, err := pickCurve(w.Logs(), e.resolver, c.Sonic, nomenclature.Sonic)
	if err != nil {
		return nil, errors.Join(errors.New("need --vp or a sonic curve"), err)
	}
	dt, _ := w.Log(name)
	vp, err := petro.VpFromSonic(dt)
	if err != nil {
		return nil, err
	}
	if err = w.AddLog("", vp); err != nil {
		return nil, err
	}

	return vp, nil
}

// syntheticTable joins impedance, reflectivity and trace when they share the
// time axis; otherwise only the trace is written.
func syntheticTable(e *env, res *seismic.SyntheticResult) *series.Table {
	trace := res.Trace
	only := series.NewTable(trace.IndexName, trace.Index)
	only, _ = only.With(trace)

	t, err := series.FromSeries(trace.IndexName, res.Impedance, res.Reflectivity, trace)
	if err != nil {
		e.log.Warn("stages have different lengths, writing the trace only",
			zap.String("mode", e.cfg.Synthetic.Mode),
			zap.String("alignment", e.cfg.Synthetic.Alignment))
		return only
	}

	return t
}

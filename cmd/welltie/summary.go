// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"

	"github.com/katalvlaran/welltie/interval"
	"github.com/katalvlaran/welltie/nomenclature"
	"github.com/katalvlaran/welltie/petro"
	"github.com/katalvlaran/welltie/project"
	"github.com/katalvlaran/welltie/series"
	"github.com/katalvlaran/welltie/wellio"
)

// SummaryCmd summarizes the intervals of every --logs/--tops pair.
type SummaryCmd struct {
	Logs       []string `arg:"--logs,separate,required" help:"logs CSV, one per well"`
	Tops       []string `arg:"--tops,separate,required" help:"tops CSV, paired with --logs by position"`
	Vsh        string   `arg:"--vsh" default:"VSH" help:"shale volume curve"`
	GRClean    float64  `arg:"--gr-clean" help:"clean-sand GR; with --gr-shale derives Vsh from GR when the Vsh curve is absent"`
	GRShale    float64  `arg:"--gr-shale" help:"shale GR"`
	Phi        string   `arg:"--phi" help:"porosity curve; enables net pay together with --sw"`
	Sw         string   `arg:"--sw" help:"water saturation curve"`
	Avg        []string `arg:"--avg" help:"curves to average per interval"`
	Out        string   `arg:"-o,--out" help:"output CSV, stdout when empty"`
	NoProgress bool     `arg:"--no-progress" help:"disable the progress bar"`
}

func (c *SummaryCmd) Run(e *env) error {
	if len(c.Logs) != len(c.Tops) {
		return fmt.Errorf("got %d --logs but %d --tops", len(c.Logs), len(c.Tops))
	}
	p := project.New("summary", project.WithLogger(e.log))
	for i := range c.Logs {
		w, err := loadWell(c.Logs[i], c.Tops[i], e.cfg.NullValue)
		if err != nil {
			return err
		}
		if _, dup := p.Well(w.Name); dup {
			return fmt.Errorf("well %q from %s is already loaded; rename one of the logs files", w.Name, c.Logs[i])
		}
		if err = p.AddWell(w, w.Name); err != nil {
			return err
		}
	}

	if c.GRClean != c.GRShale {
		n, err := p.ApplyCalculation("vsh_gr", c.vshFromGR(e.resolver))
		e.log.Info("vsh derived from gamma ray", zap.Int("wells", n))
		if err != nil {
			e.log.Warn("vsh not derived for every well", zap.Error(err))
		}
	}

	params := interval.Params{VshCurve: c.Vsh, VshCutoff: e.cfg.Cutoffs.Vsh, AvgCurves: c.Avg}
	if c.Phi != "" && c.Sw != "" {
		params.Pay = &interval.PayCutoffs{
			PhiCurve: c.Phi, PhiCutoff: e.cfg.Cutoffs.Phi,
			SwCurve: c.Sw, SwCutoff: e.cfg.Cutoffs.Sw,
		}
	}

	var onWell func(string)
	if !c.NoProgress {
		bar := newBar(p.Len(), "summarizing wells")
		onWell = func(string) { _ = bar.Add(1) }
	}
	sums, err := p.SummarizeAll(params, onWell,
		interval.WithLogger(e.log), interval.WithMissingPolicy(e.cfg.MissingPolicy()))
	if err != nil {
		e.log.Warn("some wells were not summarized", zap.Error(err))
	}
	if len(sums) == 0 {
		return errors.Join(errors.New("no well could be summarized"), err)
	}

	out, err := create(c.Out)
	if err != nil {
		return err
	}
	defer out.Close()

	return wellio.WriteWellSummaries(out, p.Names(), sums)
}

// vshFromGR clips (GR - clean)/(shale - clean) to [0, 1] and names it after
// the Vsh curve, for wells that lack one.
func (c *SummaryCmd) vshFromGR(r *nomenclature.Resolver) project.Calculation {
	return func(w *project.Well) (*series.Series, error) {
		if w.Logs().Has(c.Vsh) {
			return nil, fmt.Errorf("%s already present", c.Vsh)
		}
		name, err := pickCurve(w.Logs(), r, "", nomenclature.GammaRay)
		if err != nil {
			return nil, err
		}
		gr, _ := w.Log(name)
		vsh, err := petro.VshGR(gr, c.GRClean, c.GRShale)
		if err != nil {
			return nil, err
		}

		return petro.Clip(vsh, 0, 1).Renamed(c.Vsh), nil
	}
}

func loadWell(logsPath, topsPath string, null float64) (*project.Well, error) {
	logs, err := wellio.ReadLogsFile(logsPath, null)
	if err != nil {
		return nil, err
	}
	tops, err := wellio.ReadTopsFile(topsPath, wellio.DefaultTopsColumns())
	if err != nil {
		return nil, err
	}
	w, err := project.NewWell(strings.TrimSuffix(filepath.Base(logsPath), filepath.Ext(logsPath)), logs)
	if err != nil {
		return nil, err
	}
	w.NullValue = null
	if err = w.AddTops(tops); err != nil {
		return nil, err
	}

	return w, nil
}

func newBar(size int, description string) *progressbar.ProgressBar {
	return progressbar.NewOptions(size,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionOnCompletion(func() { fmt.Fprintln(os.Stderr) }),
		progressbar.OptionSetDescription(description),
		progressbar.OptionShowCount(),
		progressbar.OptionSetPredictTime(false),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "=",
			SaucerHead:    ">",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
	)
}

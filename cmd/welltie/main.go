// SPDX-License-Identifier: MIT

// Command welltie builds synthetic seismograms, interval summaries and
// well ties from CSV well data.
//
//	welltie synthetic --logs L.csv --checkshots C.csv --sonic DT --rho RHOB
//	welltie summary --logs a.csv --tops a_tops.csv --logs b.csv --tops b_tops.csv
//	welltie tie --synthetic S.csv --observed O.csv
//	welltie classify GR ILD_1 RHOZ
//
// A .env file in the working directory is loaded first; WELLTIE_* variables
// then override the YAML configuration given by --config.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/alexflint/go-arg"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/katalvlaran/welltie/internal/config"
	"github.com/katalvlaran/welltie/internal/logging"
	"github.com/katalvlaran/welltie/nomenclature"
)

type args struct {
	Config    string        `arg:"-c,--config" help:"YAML configuration file"`
	Verbose   bool          `arg:"-v" help:"development logging at debug level"`
	Synthetic *SyntheticCmd `arg:"subcommand:synthetic" help:"build a synthetic seismogram from logs and checkshots"`
	Summary   *SummaryCmd   `arg:"subcommand:summary" help:"summarize formation intervals of one or more wells"`
	Tie       *TieCmd       `arg:"subcommand:tie" help:"align a synthetic trace with an observed trace"`
	Classify  *ClassifyCmd  `arg:"subcommand:classify" help:"print canonical log types of mnemonics"`
}

func (args) Description() string {
	return "welltie: well-log to seismic tie toolkit"
}

// env is what every subcommand receives.
type env struct {
	cfg      config.Config
	log      *zap.Logger
	resolver *nomenclature.Resolver
}

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	var a args
	parser := arg.MustParse(&a)
	if parser.Subcommand() == nil {
		parser.WriteHelp(os.Stdout)
		os.Exit(2)
	}

	if err := run(a); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(a args) error {
	cfg, err := config.Load(a.Config)
	if err != nil {
		return err
	}
	if a.Verbose {
		cfg.Log.Debug, cfg.Log.Level = true, "debug"
	}
	logger, err := logging.New(cfg.Log.Debug, cfg.Log.Level)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	resolver := nomenclature.Default()
	if cfg.Nomenclature.AliasFile != "" {
		if resolver, err = nomenclature.LoadFile(cfg.Nomenclature.AliasFile); err != nil {
			return err
		}
	}
	e := &env{cfg: cfg, log: logger, resolver: resolver}

	switch {
	case a.Synthetic != nil:
		return a.Synthetic.Run(e)
	case a.Summary != nil:
		return a.Summary.Run(e)
	case a.Tie != nil:
		return a.Tie.Run(e)
	case a.Classify != nil:
		return a.Classify.Run(e, os.Stdout)
	}

	return nil
}

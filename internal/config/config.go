// SPDX-License-Identifier: MIT

// Package config loads the welltie CLI configuration from an optional YAML
// file and WELLTIE_* environment variables, in that order.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/welltie/interval"
	"github.com/katalvlaran/welltie/seismic"
	"github.com/katalvlaran/welltie/wellio"
)

// EnvConfigPath names the variable consulted when Load gets an empty path.
const EnvConfigPath = "WELLTIE_CONFIG_PATH"

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid value")

// Config is the full CLI configuration.
type Config struct {
	Log          LogConfig          `yaml:"log"`
	NullValue    float64            `yaml:"null_value"`
	TimeAxis     TimeAxisConfig     `yaml:"time_axis"`
	Wavelet      WaveletConfig      `yaml:"wavelet"`
	Synthetic    SyntheticConfig    `yaml:"synthetic"`
	Cutoffs      CutoffsConfig      `yaml:"cutoffs"`
	Nomenclature NomenclatureConfig `yaml:"nomenclature"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	Debug bool   `yaml:"debug"`
}

// TimeAxisConfig is a regular TWT axis in milliseconds; Stop is exclusive.
type TimeAxisConfig struct {
	Name  string  `yaml:"name"`
	Start float64 `yaml:"start"`
	Stop  float64 `yaml:"stop"`
	Step  float64 `yaml:"step"`
}

// WaveletConfig describes the Ricker wavelet. Its sample interval is the time axis step.
type WaveletConfig struct {
	Frequency float64 `yaml:"frequency"`
	Length    float64 `yaml:"length"`
}

type SyntheticConfig struct {
	Alignment string  `yaml:"alignment"`
	Mode      string  `yaml:"mode"`
	Method    string  `yaml:"method"`
	Epsilon   float64 `yaml:"epsilon"`
}

type CutoffsConfig struct {
	Vsh     float64 `yaml:"vsh"`
	Phi     float64 `yaml:"phi"`
	Sw      float64 `yaml:"sw"`
	Missing string  `yaml:"missing"`
}

type NomenclatureConfig struct {
	AliasFile string `yaml:"alias_file"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Log:       LogConfig{Level: "info"},
		NullValue: wellio.DefaultNullValue,
		TimeAxis:  TimeAxisConfig{Name: "TWT", Start: 0, Stop: 3000, Step: 2},
		Wavelet:   WaveletConfig{Frequency: 25, Length: 128},
		Synthetic: SyntheticConfig{
			Alignment: string(seismic.InterfaceAbove),
			Mode:      string(seismic.ModeSame),
			Method:    seismic.MethodAuto.String(),
			Epsilon:   seismic.DefaultEpsilon,
		},
		Cutoffs: CutoffsConfig{Vsh: 0.4, Phi: 0.1, Sw: 0.6, Missing: interval.MissingSubstitute.String()},
	}
}

// Load returns Default overlaid with the YAML file at path (or at
// $WELLTIE_CONFIG_PATH when path is empty) and then with WELLTIE_*
// variables. The result is validated.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}
	if path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}
	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}

	return nil
}

func applyEnv(cfg *Config) error {
	strs := []struct {
		key string
		dst *string
	}{
		{"WELLTIE_LOG_LEVEL", &cfg.Log.Level},
		{"WELLTIE_TIME_NAME", &cfg.TimeAxis.Name},
		{"WELLTIE_SYNTHETIC_ALIGNMENT", &cfg.Synthetic.Alignment},
		{"WELLTIE_SYNTHETIC_MODE", &cfg.Synthetic.Mode},
		{"WELLTIE_SYNTHETIC_METHOD", &cfg.Synthetic.Method},
		{"WELLTIE_MISSING_POLICY", &cfg.Cutoffs.Missing},
		{"WELLTIE_ALIAS_FILE", &cfg.Nomenclature.AliasFile},
	}
	for _, s := range strs {
		if v := os.Getenv(s.key); v != "" {
			*s.dst = v
		}
	}

	nums := []struct {
		key string
		dst *float64
	}{
		{"WELLTIE_NULL_VALUE", &cfg.NullValue},
		{"WELLTIE_TIME_START", &cfg.TimeAxis.Start},
		{"WELLTIE_TIME_STOP", &cfg.TimeAxis.Stop},
		{"WELLTIE_TIME_STEP", &cfg.TimeAxis.Step},
		{"WELLTIE_WAVELET_FREQUENCY", &cfg.Wavelet.Frequency},
		{"WELLTIE_WAVELET_LENGTH", &cfg.Wavelet.Length},
		{"WELLTIE_VSH_CUTOFF", &cfg.Cutoffs.Vsh},
		{"WELLTIE_PHI_CUTOFF", &cfg.Cutoffs.Phi},
		{"WELLTIE_SW_CUTOFF", &cfg.Cutoffs.Sw},
	}
	for _, n := range nums {
		v := os.Getenv(n.key)
		if v == "" {
			continue
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", n.key, err)
		}
		*n.dst = f
	}

	if v := os.Getenv("WELLTIE_DEBUG"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid WELLTIE_DEBUG: %w", err)
		}
		cfg.Log.Debug = b
	}

	return nil
}

// Validate checks ranges and that every enumerated name parses.
func (c Config) Validate() error {
	switch {
	case !(c.TimeAxis.Step > 0) || math.IsInf(c.TimeAxis.Step, 0):
		return fmt.Errorf("%w: time_axis.step must be positive", ErrInvalid)
	case !(c.TimeAxis.Stop > c.TimeAxis.Start):
		return fmt.Errorf("%w: time_axis.stop must exceed time_axis.start", ErrInvalid)
	case !(c.Wavelet.Frequency > 0):
		return fmt.Errorf("%w: wavelet.frequency must be positive", ErrInvalid)
	case !(c.Wavelet.Length > 0):
		return fmt.Errorf("%w: wavelet.length must be positive", ErrInvalid)
	case c.Synthetic.Epsilon < 0 || math.IsNaN(c.Synthetic.Epsilon) || math.IsInf(c.Synthetic.Epsilon, 0):
		return fmt.Errorf("%w: synthetic.epsilon must be finite and non-negative", ErrInvalid)
	}
	if _, err := seismic.ParseAlignment(c.Synthetic.Alignment); err != nil {
		return fmt.Errorf("%w: synthetic.alignment: %w", ErrInvalid, err)
	}
	if _, err := seismic.ParseMode(c.Synthetic.Mode); err != nil {
		return fmt.Errorf("%w: synthetic.mode: %w", ErrInvalid, err)
	}
	if _, err := seismic.ParseMethod(c.Synthetic.Method); err != nil {
		return fmt.Errorf("%w: synthetic.method: %w", ErrInvalid, err)
	}
	if _, err := interval.ParseMissingPolicy(c.Cutoffs.Missing); err != nil {
		return fmt.Errorf("%w: cutoffs.missing: %w", ErrInvalid, err)
	}

	return nil
}

// SeismicOptions translates the synthetic section. Call after Validate.
func (c Config) SeismicOptions() []seismic.Option {
	m, _ := seismic.ParseMethod(c.Synthetic.Method)

	return []seismic.Option{seismic.WithEpsilon(c.Synthetic.Epsilon), seismic.WithMethod(m)}
}

// MissingPolicy returns the parsed cutoffs.missing. Call after Validate.
func (c Config) MissingPolicy() interval.MissingPolicy {
	p, _ := interval.ParseMissingPolicy(c.Cutoffs.Missing)

	return p
}

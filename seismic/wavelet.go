// SPDX-License-Identifier: MIT
// Package: welltie/seismic
//
// wavelet.go — Ricker wavelet synthesis.
//
//	A(t) = (1 − 2π²f²t²) · exp(−π²f²t²),  t in seconds
//
// Sampling:
//  1. n = round(length/dt); n += 1 when even, so a sample sits on t = 0.
//  2. t_i = (i − (n−1)/2)·dt milliseconds, i = 0..n−1. The effective length is
//     therefore (n−1)·dt, which differs from the request when it was rounded.

package seismic

import (
	"fmt"
	"math"

	"github.com/katalvlaran/welltie/series"
)

// WaveletIndexName labels the millisecond axis of a wavelet.
const WaveletIndexName = "TIME_MS"

const (
	opRicker     = "Ricker"
	opNewWavelet = "NewWavelet"
)

// Wavelet is an odd-length sample sequence on a zero-centered millisecond axis.
type Wavelet struct {
	Name       string
	Times      []float64 // ms, symmetric about 0
	Amplitudes []float64
}

// NewWavelet wraps custom samples. times must be strictly increasing, equal in
// length to amps, and odd in length.
func NewWavelet(name string, times, amps []float64) (*Wavelet, error) {
	if len(times) != len(amps) || len(times)%2 == 0 || !series.IsStrictlyIncreasing(times) {
		return nil, seismicErrorf(opNewWavelet, ErrBadParameter)
	}

	return &Wavelet{
		Name:       name,
		Times:      append([]float64(nil), times...),
		Amplitudes: append([]float64(nil), amps...),
	}, nil
}

// Ricker returns a Ricker wavelet of peak frequency freqHz, nominal length
// lengthMs and sample interval dtMs.
//
// The sample count is round(lengthMs/dtMs). An odd count spans exactly
// ±lengthMs/2; an even count is bumped by one and keeps dtMs as its step,
// so the effective length becomes (n−1)·dtMs.
//
// Errors:
//   - ErrBadParameter if any parameter is not finite and strictly positive.
func Ricker(freqHz, lengthMs, dtMs float64) (*Wavelet, error) {
	for _, p := range [...]float64{freqHz, lengthMs, dtMs} {
		if !(p > 0) || math.IsInf(p, 0) {
			return nil, seismicErrorf(opRicker, ErrBadParameter)
		}
	}
	n := int(math.Round(lengthMs / dtMs))
	step := dtMs
	switch {
	case n%2 == 0:
		n++
	case n > 1:
		step = lengthMs / float64(n-1)
	}

	c := (n - 1) / 2
	times := make([]float64, n)
	amps := make([]float64, n)
	for i := range times {
		tms := float64(i-c) * step
		times[i] = tms
		x := math.Pi * freqHz * tms / 1000.0
		x *= x
		amps[i] = (1 - 2*x) * math.Exp(-x)
	}

	return &Wavelet{
		Name:       fmt.Sprintf("Ricker_%gHz", freqHz),
		Times:      times,
		Amplitudes: amps,
	}, nil
}

// Len returns the number of samples.
func (w *Wavelet) Len() int {
	if w == nil {
		return 0
	}

	return len(w.Amplitudes)
}

// Center returns the position of the zero-time sample.
func (w *Wavelet) Center() int { return (w.Len() - 1) / 2 }

// Series returns the wavelet as a millisecond-indexed series.
func (w *Wavelet) Series() *series.Series {
	s, _ := series.New(w.Name, WaveletIndexName, w.Times, w.Amplitudes)

	return s
}

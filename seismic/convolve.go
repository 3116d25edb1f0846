// SPDX-License-Identifier: MIT
// Package: welltie/seismic
//
// convolve.go — reflectivity ⊛ wavelet.
//
// Lengths (n = reflectivity, m = wavelet, c = (m−1)/2):
//
//	ModeFull   n+m−1        index = start − c·dt + k·dt
//	ModeSame   n            index = reflectivity index, values full[c : c+n]
//	ModeValid  max(0,n−m+1) index = reflectivity index[c : c+len], values full[m−1 : n]
//
// dt is Index[1]−Index[0], or 1.0 when the reflectivity has one sample.
// NaN reflectivity is read as zero.

package seismic

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/welltie/series"
)

// SyntheticSuffix is appended to the reflectivity name on the convolved trace.
const SyntheticSuffix = "_synthetic"

const opConvolve = "Convolve"

// ConvMode selects the convolution output length.
type ConvMode string

const (
	ModeFull  ConvMode = "full"
	ModeValid ConvMode = "valid"
	ModeSame  ConvMode = "same"
)

// ParseMode maps a mode string onto a ConvMode.
func ParseMode(s string) (ConvMode, error) {
	switch m := ConvMode(s); m {
	case ModeFull, ModeValid, ModeSame:
		return m, nil
	default:
		return "", fmt.Errorf("ParseMode: %w %q", ErrInvalidMode, s)
	}
}

// Convolve convolves rc with w and names the result rc.Name+"_synthetic".
// An empty rc gives an empty result in every mode.
//
// Errors:
//   - ErrNilInput, ErrEmptyWavelet.
//   - series.ErrLengthMismatch when rc.Index and rc.Values differ in length.
//   - ErrInvalidMode naming the unsupported mode.
func Convolve(rc *series.Series, w *Wavelet, mode ConvMode, opts ...Option) (*series.Series, error) {
	o := gatherOptions(opts...)
	if rc == nil || w == nil {
		return nil, seismicErrorf(opConvolve, ErrNilInput)
	}
	if _, err := ParseMode(string(mode)); err != nil {
		return nil, seismicErrorf(opConvolve, err)
	}
	n, m := rc.Len(), w.Len()
	if len(rc.Values) != n {
		return nil, seismicErrorf(opConvolve, series.ErrLengthMismatch)
	}
	if m == 0 {
		return nil, seismicErrorf(opConvolve, ErrEmptyWavelet)
	}
	if n == 0 {
		return series.New(rc.Name+SyntheticSuffix, rc.IndexName, []float64{}, []float64{})
	}

	a := make([]float64, n)
	for i, v := range rc.Values {
		if !math.IsNaN(v) {
			a[i] = v
		}
	}
	full := convolveFull(a, w.Amplitudes, o)

	c := (m - 1) / 2
	name := rc.Name + SyntheticSuffix
	switch mode {
	case ModeSame:
		return series.New(name, rc.IndexName, rc.Index, full[c:c+n])

	case ModeValid:
		size := n - m + 1
		if size <= 0 {
			return series.New(name, rc.IndexName, []float64{}, []float64{})
		}
		var index []float64
		if c+size <= n {
			index = rc.Index[c : c+size]
		} else {
			index = positional(size)
		}

		return series.New(name, rc.IndexName, index, full[m-1:m-1+size])

	default: // ModeFull
		dt := 1.0
		if n >= 2 {
			dt = rc.Index[1] - rc.Index[0]
		}
		start := rc.Index[0] - float64(c)*dt
		index := make([]float64, len(full))
		for k := range index {
			index[k] = start + float64(k)*dt
		}

		return series.New(name, rc.IndexName, index, full)
	}
}

// convolveFull returns the n+m−1 linear convolution of a and b.
func convolveFull(a, b []float64, o Options) []float64 {
	useFFT := o.method == MethodFFT ||
		(o.method == MethodAuto && len(b) >= o.fftThreshold)
	if useFFT {
		return fftConvolve(a, b)
	}

	return directConvolve(a, b)
}

func directConvolve(a, b []float64) []float64 {
	out := make([]float64, len(a)+len(b)-1)
	for i, x := range a {
		if x == 0 {
			continue
		}
		floats.AddScaled(out[i:i+len(b)], x, b)
	}

	return out
}

// fftConvolve zero-pads both inputs to a power of two ≥ n+m−1 and multiplies
// their half spectra.
func fftConvolve(a, b []float64) []float64 {
	size := len(a) + len(b) - 1
	padded := nextPowerOf2(size)
	fft := fourier.NewFFT(padded)

	pa := make([]float64, padded)
	copy(pa, a)
	pb := make([]float64, padded)
	copy(pb, b)

	ca := fft.Coefficients(nil, pa)
	cb := fft.Coefficients(nil, pb)
	for i := range ca {
		ca[i] *= cb[i]
	}
	seq := fft.Sequence(nil, ca)
	// gonum's inverse is unnormalised.
	floats.Scale(1/float64(padded), seq)

	return seq[:size]
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}

	return p
}

func positional(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i)
	}

	return out
}

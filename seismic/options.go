// SPDX-License-Identifier: MIT

package seismic

import (
	"fmt"
	"math"
)

// DefaultEpsilon is the smallest |Z1+Z2| for which a reflection coefficient is computed.
const DefaultEpsilon = 1e-9

// DefaultFFTThreshold is the wavelet length from which MethodAuto switches to FFT.
const DefaultFFTThreshold = 64

const (
	panicEpsilonInvalid   = "seismic: WithEpsilon: eps must be finite, non-negative"
	panicMethodInvalid    = "seismic: WithMethod: unknown method"
	panicThresholdInvalid = "seismic: WithFFTThreshold: threshold must be positive"
)

// Method selects the convolution algorithm.
type Method int

const (
	// MethodAuto uses direct summation for short wavelets and FFT otherwise.
	MethodAuto Method = iota
	// MethodDirect always sums in the time domain.
	MethodDirect
	// MethodFFT always multiplies spectra.
	MethodFFT
)

// String returns "auto", "direct" or "fft".
func (m Method) String() string {
	switch m {
	case MethodDirect:
		return "direct"
	case MethodFFT:
		return "fft"
	default:
		return "auto"
	}
}

// ParseMethod maps "auto", "direct" or "fft" onto a Method.
func ParseMethod(s string) (Method, error) {
	switch s {
	case "auto":
		return MethodAuto, nil
	case "direct":
		return MethodDirect, nil
	case "fft":
		return MethodFFT, nil
	default:
		return MethodAuto, fmt.Errorf("ParseMethod: %w %q", ErrInvalidMode, s)
	}
}

// Options configures Reflectivity, Convolve and Synthetic.
type Options struct {
	eps          float64
	method       Method
	fftThreshold int
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns epsilon 1e-9 and automatic method selection.
func DefaultOptions() Options {
	return Options{eps: DefaultEpsilon, method: MethodAuto, fftThreshold: DefaultFFTThreshold}
}

// WithEpsilon sets the denominator guard of Reflectivity.
// Panics if eps is negative, NaN or Inf.
func WithEpsilon(eps float64) Option {
	if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithMethod forces a convolution algorithm.
func WithMethod(m Method) Option {
	if m < MethodAuto || m > MethodFFT {
		panic(panicMethodInvalid)
	}

	return func(o *Options) { o.method = m }
}

// WithFFTThreshold sets the wavelet length from which MethodAuto uses FFT.
func WithFFTThreshold(n int) Option {
	if n <= 0 {
		panic(panicThresholdInvalid)
	}

	return func(o *Options) { o.fftThreshold = n }
}

func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

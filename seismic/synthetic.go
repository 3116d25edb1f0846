// SPDX-License-Identifier: MIT

package seismic

import "github.com/katalvlaran/welltie/series"

const opSynthetic = "Synthetic"

// SyntheticResult keeps every stage of a synthetic seismogram build.
type SyntheticResult struct {
	Impedance    *series.Series
	Reflectivity *series.Series
	Wavelet      *Wavelet
	Trace        *series.Series
}

// Synthetic runs Reflectivity and Convolve back to back.
// The inputs are not modified; Impedance in the result is a copy.
func Synthetic(impedance *series.Series, w *Wavelet, align Alignment, mode ConvMode, opts ...Option) (*SyntheticResult, error) {
	rc, err := Reflectivity(impedance, align, opts...)
	if err != nil {
		return nil, seismicErrorf(opSynthetic, err)
	}
	trace, err := Convolve(rc, w, mode, opts...)
	if err != nil {
		return nil, seismicErrorf(opSynthetic, err)
	}

	return &SyntheticResult{
		Impedance:    impedance.Clone(),
		Reflectivity: rc,
		Wavelet:      w,
		Trace:        trace,
	}, nil
}

// SPDX-License-Identifier: MIT

// Package seismic builds synthetic seismograms from time-domain logs.
//
// 🚀 What is here?
//
//	Reflectivity — reflection coefficients from an impedance series, under
//	               three interface-alignment conventions.
//	Ricker       — a zero-phase Ricker wavelet on an odd-length, zero-centered
//	               millisecond axis.
//	Convolve     — reflectivity ⊛ wavelet in full, same, or valid mode, with
//	               an output index re-derived for each mode.
//	Synthetic    — impedance → reflectivity → trace in one call.
//
// ✨ Undefined values:
//   - Where |Z1+Z2| is within epsilon of zero the coefficient is NaN, never a
//     division result. NaN propagates until Convolve, which is the one place
//     it is read as zero.
//
// ⚙️ Usage:
//
//	rc, err := seismic.Reflectivity(ai, seismic.InterfaceAbove)
//	w, err := seismic.Ricker(25, 100, 2)
//	syn, err := seismic.Convolve(rc, w, seismic.ModeSame)
//
// Complexity:
//   - Reflectivity: O(n).
//   - Convolve:     O(n·m) direct, O((n+m) log(n+m)) via FFT (gonum dsp/fourier).
package seismic

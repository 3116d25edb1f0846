// SPDX-License-Identifier: MIT
// Package: welltie/seismic
//
// reflectivity.go — reflection coefficients from acoustic impedance.
//
// For each adjacent pair (Z1 = z[i], Z2 = z[i+1]):
//
//	rc = (Z2 − Z1) / (Z2 + Z1)   if |Z2 + Z1| > eps
//	rc = NaN                     otherwise
//
// Placement depends on Alignment:
//
//	InterfaceAbove   len n,   rc(i,i+1) at i,   last sample NaN
//	InterfaceBelow   len n,   rc(i,i+1) at i+1, first sample NaN
//	InterfaceBetween len n−1, rc(i,i+1) at i,   index = z.Index[:n−1]

package seismic

import (
	"fmt"
	"math"

	"github.com/katalvlaran/welltie/series"
)

// ReflectivityName names every series returned by Reflectivity.
const ReflectivityName = "Reflectivity"

const opReflectivity = "Reflectivity"

// Alignment places a coefficient relative to the two samples that produced it.
type Alignment string

const (
	InterfaceAbove   Alignment = "interface_above"
	InterfaceBelow   Alignment = "interface_below"
	InterfaceBetween Alignment = "interface_between"
)

// ParseAlignment maps a mode string onto an Alignment.
func ParseAlignment(s string) (Alignment, error) {
	switch a := Alignment(s); a {
	case InterfaceAbove, InterfaceBelow, InterfaceBetween:
		return a, nil
	default:
		return "", fmt.Errorf("ParseAlignment: %w %q", ErrInvalidMode, s)
	}
}

// Reflectivity computes reflection coefficients of impedance under mode.
//
// Errors:
//   - ErrNilInput, ErrTooFewSamples (fewer than two samples).
//   - ErrInvalidMode naming the unsupported mode.
func Reflectivity(impedance *series.Series, mode Alignment, opts ...Option) (*series.Series, error) {
	o := gatherOptions(opts...)
	if impedance == nil {
		return nil, seismicErrorf(opReflectivity, ErrNilInput)
	}
	if _, err := ParseAlignment(string(mode)); err != nil {
		return nil, seismicErrorf(opReflectivity, err)
	}
	z := impedance.Values
	n := len(z)
	if n < 2 || len(impedance.Index) != n {
		return nil, seismicErrorf(opReflectivity, ErrTooFewSamples)
	}

	rc := make([]float64, n-1)
	for i := range rc {
		z1, z2 := z[i], z[i+1]
		sum := z2 + z1
		// NaN sums fail the comparison and stay undefined.
		if math.Abs(sum) > o.eps {
			rc[i] = (z2 - z1) / sum
		} else {
			rc[i] = math.NaN()
		}
	}

	var vals, index []float64
	switch mode {
	case InterfaceAbove:
		vals = append(rc, math.NaN())
		index = impedance.Index
	case InterfaceBelow:
		vals = append([]float64{math.NaN()}, rc...)
		index = impedance.Index
	case InterfaceBetween:
		vals = rc
		index = impedance.Index[:n-1]
	}

	return series.New(ReflectivityName, impedance.IndexName, index, vals)
}

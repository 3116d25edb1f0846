// SPDX-License-Identifier: MIT
// Package: welltie/petro
//
// petro.go — shale volume, porosity and saturation.
//
//	VshGR   = (GR − GRclean) / (GRshale − GRclean)
//	VshSP   = (SPshale − SP) / (SPshale − SPclean)
//	PHID    = clip((ρma − ρb) / (ρma − ρfl), 0, 1)
//	PHIS    = clip((Δt − Δtma) / (Δtfl − Δtma), 0, 1)          Wyllie
//	PHIS    = clip(c·(Δt − Δtma) / Δt, 0, 1)                   Raymer–Hunt–Gardner
//	VCL     = clip((VclN + VclD) / 2, 0, 1)                     neutron–density
//	          VclN = (N − Nclean)/(Nclay − Nclean), VclD = (ρb − ρclean)/(ρclay − ρclean)
//	Sw      = ((a / φ^m) · Rw / Rt)^(1/n)                       Archie

package petro

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/welltie/series"
)

// Output mnemonics.
const (
	NameVshGR     = "VSH_GR"
	NameVshSP     = "VSH_SP"
	NamePhiD      = "PHID"
	NamePhiS      = "PHIS"
	NameVclND     = "VCL_ND"
	NameSwArchie  = "SW"
	NameVp        = "VP"
	NameImpedance = "AI"
)

// Archie defaults.
const (
	DefaultArchieA = 0.81
	DefaultArchieM = 2.0
	DefaultArchieN = 2.0
)

// Matrix/fluid defaults (g/cm³, µs/ft).
const (
	DefaultMatrixDensity = 2.65
	DefaultFluidDensity  = 1.0
	DefaultDtMatrix      = 55.5
	DefaultDtFluid       = 189.0
	DefaultRHGConstant   = 0.67
)

// VshGR computes shale volume from gamma ray with a linear index. No clipping
// is applied; use Clip for a bounded result.
func VshGR(gr *series.Series, clean, shale float64) (*series.Series, error) {
	const op = "VshGR"
	if gr == nil {
		return nil, petroErrorf(op, ErrNilInput)
	}
	if shale == clean {
		return nil, petroErrorf(op, ErrBadParameter)
	}

	return linear(gr, NameVshGR, 1/(shale-clean), -clean/(shale-clean)), nil
}

// VshSP computes shale volume from spontaneous potential.
func VshSP(sp *series.Series, clean, shale float64) (*series.Series, error) {
	const op = "VshSP"
	if sp == nil {
		return nil, petroErrorf(op, ErrNilInput)
	}
	if shale == clean {
		return nil, petroErrorf(op, ErrBadParameter)
	}

	return linear(sp, NameVshSP, -1/(shale-clean), shale/(shale-clean)), nil
}

// DensityPorosity computes porosity from bulk density, clipped to [0, 1].
func DensityPorosity(rhob *series.Series, matrix, fluid float64) (*series.Series, error) {
	const op = "DensityPorosity"
	if rhob == nil {
		return nil, petroErrorf(op, ErrNilInput)
	}
	if matrix == fluid {
		return nil, petroErrorf(op, ErrBadParameter)
	}
	out := linear(rhob, NamePhiD, -1/(matrix-fluid), matrix/(matrix-fluid))

	return Clip(out, 0, 1), nil
}

// SonicPorosityWyllie applies the time-average equation, clipped to [0, 1].
func SonicPorosityWyllie(dt *series.Series, dtMatrix, dtFluid float64) (*series.Series, error) {
	const op = "SonicPorosityWyllie"
	if dt == nil {
		return nil, petroErrorf(op, ErrNilInput)
	}
	if dtMatrix == dtFluid {
		return nil, petroErrorf(op, ErrBadParameter)
	}
	out := linear(dt, NamePhiS, 1/(dtFluid-dtMatrix), -dtMatrix/(dtFluid-dtMatrix))

	return Clip(out, 0, 1), nil
}

// SonicPorosityRHG applies the Raymer–Hunt–Gardner approximation, clipped to [0, 1].
func SonicPorosityRHG(dt *series.Series, dtMatrix, c float64) (*series.Series, error) {
	const op = "SonicPorosityRHG"
	if dt == nil {
		return nil, petroErrorf(op, ErrNilInput)
	}
	if dtMatrix == 0 {
		return nil, petroErrorf(op, ErrBadParameter)
	}
	out := dt.Renamed(NamePhiS)
	for i, v := range out.Values {
		out.Values[i] = c * (v - dtMatrix) / v
	}

	return Clip(out, 0, 1), nil
}

// VclayNeutronDensity averages the neutron and density clay indicators,
// clipped to [0, 1]. nphi and rhob must share an index.
func VclayNeutronDensity(nphi, rhob *series.Series, nphiClean, rhobClean, nphiClay, rhobClay float64) (*series.Series, error) {
	const op = "VclayNeutronDensity"
	if nphi == nil || rhob == nil {
		return nil, petroErrorf(op, ErrNilInput)
	}
	if nphiClay == nphiClean || rhobClay == rhobClean {
		return nil, petroErrorf(op, ErrBadParameter)
	}
	if !floats.Equal(nphi.Index, rhob.Index) {
		return nil, petroErrorf(op, ErrIndexMismatch)
	}
	vn := linear(nphi, NameVclND, 1/(nphiClay-nphiClean), -nphiClean/(nphiClay-nphiClean))
	vd := linear(rhob, NameVclND, 1/(rhobClay-rhobClean), -rhobClean/(rhobClay-rhobClean))
	floats.Add(vn.Values, vd.Values)
	floats.Scale(0.5, vn.Values)

	return Clip(vn, 0, 1), nil
}

// ArchieSw computes water saturation from Sw^n = (a/φ^m)·Rw/Rt.
//
// Errors:
//   - ErrPorosityRange if any defined porosity is ≤ 0 or ≥ 1.
//   - ErrResistivity if rw ≤ 0 or any defined rt ≤ 0.
//   - ErrIndexMismatch if phi and rt are sampled differently.
func ArchieSw(phi, rt *series.Series, rw, a, m, n float64) (*series.Series, error) {
	const op = "ArchieSw"
	if phi == nil || rt == nil {
		return nil, petroErrorf(op, ErrNilInput)
	}
	if !floats.Equal(phi.Index, rt.Index) {
		return nil, petroErrorf(op, ErrIndexMismatch)
	}
	for _, p := range phi.Values {
		if p <= 0 || p >= 1 {
			return nil, petroErrorf(op, ErrPorosityRange)
		}
	}
	if !(rw > 0) {
		return nil, petroErrorf(op, ErrResistivity)
	}
	for _, r := range rt.Values {
		if r <= 0 {
			return nil, petroErrorf(op, ErrResistivity)
		}
	}
	if !(n > 0) {
		return nil, petroErrorf(op, ErrBadParameter)
	}

	out := phi.Renamed(NameSwArchie)
	for i, p := range phi.Values {
		swn := a / math.Pow(p, m) * rw / rt.Values[i]
		out.Values[i] = math.Pow(swn, 1/n)
	}

	return out, nil
}

// Clip returns a copy of s with defined values bounded to [lo, hi].
func Clip(s *series.Series, lo, hi float64) *series.Series {
	out := s.Clone()
	for i, v := range out.Values {
		switch {
		case v < lo:
			out.Values[i] = lo
		case v > hi:
			out.Values[i] = hi
		}
	}

	return out
}

// linear returns k·s + b under a new name.
func linear(s *series.Series, name string, k, b float64) *series.Series {
	out := s.Renamed(name)
	floats.Scale(k, out.Values)
	floats.AddConst(b, out.Values)

	return out
}

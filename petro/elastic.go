// SPDX-License-Identifier: MIT

package petro

import (
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/welltie/series"
)

// FeetPerMetreMicro converts µs/ft slowness to s/m: 1 µs/ft = 3.28084e-6 s/m.
const FeetPerMetreMicro = 3.28084e-6

// VpFromSonic converts sonic slowness in µs/ft to P-wave velocity in m/s.
// Zero slowness gives +Inf; NaN stays NaN.
func VpFromSonic(dt *series.Series) (*series.Series, error) {
	if dt == nil {
		return nil, petroErrorf("VpFromSonic", ErrNilInput)
	}
	out := dt.Renamed(NameVp)
	for i, v := range out.Values {
		out.Values[i] = 1 / (v * FeetPerMetreMicro)
	}

	return out, nil
}

// AcousticImpedance returns Vp·ρ sample by sample. Both curves must share an index.
func AcousticImpedance(vp, rho *series.Series) (*series.Series, error) {
	const op = "AcousticImpedance"
	if vp == nil || rho == nil {
		return nil, petroErrorf(op, ErrNilInput)
	}
	if len(vp.Values) != len(rho.Values) || !floats.Equal(vp.Index, rho.Index) {
		return nil, petroErrorf(op, ErrIndexMismatch)
	}
	out := vp.Renamed(NameImpedance)
	floats.MulTo(out.Values, vp.Values, rho.Values)

	return out, nil
}

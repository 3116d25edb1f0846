// SPDX-License-Identifier: MIT

package seismic_test

import (
	"fmt"

	"github.com/katalvlaran/welltie/seismic"
	"github.com/katalvlaran/welltie/series"
)

// ExampleReflectivity shows the three placements of the same coefficients.
func ExampleReflectivity() {
	ai, _ := series.New("AI", "TWT", []float64{0, 2, 4}, []float64{1, 3, 3})
	for _, a := range []seismic.Alignment{seismic.InterfaceAbove, seismic.InterfaceBelow, seismic.InterfaceBetween} {
		rc, _ := seismic.Reflectivity(ai, a)
		fmt.Println(a, rc.Values, rc.Index)
	}
	// Output:
	// interface_above [0.5 0 NaN] [0 2 4]
	// interface_below [NaN 0.5 0] [0 2 4]
	// interface_between [0.5 0] [0 2]
}

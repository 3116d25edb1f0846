// SPDX-License-Identifier: MIT

package timedepth_test

import (
	"fmt"

	"github.com/katalvlaran/welltie/series"
	"github.com/katalvlaran/welltie/timedepth"
)

// ExampleResample moves a sonic curve onto a 1 ms axis.
func ExampleResample() {
	rel, err := timedepth.NewRelation([]timedepth.Checkshot{
		{Depth: 1000, Time: 800},
		{Depth: 1010, Time: 804},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	dt, _ := series.New("DT", "DEPTH", []float64{1000, 1005, 1010}, []float64{100, 110, 120})
	axis, _ := timedepth.RegularTimeIndex("TWT", 800, 805, 1)

	out, err := timedepth.Resample(dt, rel.DepthToTime, axis)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(out.Name, out.IndexName)
	fmt.Println(out.Values)
	// Output:
	// DT_time TWT
	// [100 105 110 115 120]
}

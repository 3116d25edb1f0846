// SPDX-License-Identifier: MIT

// Package timedepth converts well logs between the depth and the time domain
// using checkshot (depth, two-way-time) pairs.
//
// 🚀 What is here?
//
//	Relation    — a pair of piecewise-linear Mappings (depth→time, time→depth)
//	              built once from a checkshot table.
//	Resample    — one depth-indexed curve onto a regular TimeIndex.
//	Convert     — many curves of a depth Table onto the same TimeIndex.
//	TimeCurve   — the TWT of every depth sample, as a new curve.
//
// ✨ Behavior:
//   - Duplicated checkshot depths (or times) keep the first occurrence.
//   - time→depth is built from rows re-sorted by time; a depth-sorted table
//     is not assumed to be time-sorted.
//   - Mappings extrapolate beyond the calibrated range by continuing the
//     boundary segment slope. There is no bound on how far; use
//     WithStrictRange to reject inputs outside the checkshot range.
//   - Resampling averages samples that land on the same time, interpolates
//     linearly by actual time value, and leaves target times outside the
//     covered range undefined (NaN).
//   - Curves missing from a table are skipped with a Warn log entry; they
//     are never an error.
//
// ⚙️ Usage:
//
//	rel, err := timedepth.NewRelation(shots)
//	axis, err := timedepth.RegularTimeIndex("TWT", 0, 2000, 2)
//	tt, err := timedepth.Convert(logs, []string{"DT", "RHOB"}, rel.DepthToTime, axis,
//	    timedepth.WithLogger(logger))
//
// Complexity:
//   - NewRelation: O(n log n) for n checkshots.
//   - Resample:    O((n+N) log n) for n curve samples and N target times.
package timedepth

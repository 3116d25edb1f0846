// SPDX-License-Identifier: MIT

// Package tie aligns a synthetic seismogram with an observed seismic trace.
//
// 🚀 What is a well tie?
//
//	A synthetic built from logs rarely lines up with the recorded trace at the
//	well: checkshot error, wavelet phase and stretch all shift events.
//	Dynamic Time Warping (DTW) finds the cheapest monotone pairing of samples
//	between the two traces; the pairing gives a bulk time shift and a
//	correlation score for the tie.
//
// ✨ Key features:
//   - full-matrix DTW with an optional Sakoe–Chiba window (|i−j| ≤ w)
//   - slope penalty on non-diagonal steps
//   - optional z-score normalisation so amplitude scale does not dominate
//   - Align reports distance, path, Pearson correlation over the path and
//     the median time shift (observed − synthetic)
//
// ⚙️ Usage:
//
//	opts := tie.DefaultOptions()
//	opts.Window = 20
//	res, err := tie.Align(synthetic, observed, opts)
//	fmt.Println(res.Shift, res.Correlation)
//
// Performance:
//   - Time:   O(N·M)
//   - Memory: O(N·M)
package tie

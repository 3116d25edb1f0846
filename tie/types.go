// SPDX-License-Identifier: MIT

package tie

// Options configures DTW and Align.
//
// Fields:
//   - Window       — maximum |i−j| (Sakoe–Chiba band). −1 disables the band;
//     0 allows the diagonal only. Values below −1 are rejected.
//   - SlopePenalty — added cost of an insertion or deletion step (≥ 0).
//   - Normalize    — z-score both sequences before computing costs.
type Options struct {
	Window       int
	SlopePenalty float64
	Normalize    bool
}

// DefaultOptions returns an unconstrained, unpenalised, normalising setup.
func DefaultOptions() Options {
	return Options{Window: -1, SlopePenalty: 0, Normalize: true}
}

// Coord is one step of a warping path: sample I of the first sequence is
// paired with sample J of the second.
type Coord struct {
	I, J int
}

// Result describes the alignment of a synthetic against an observed trace.
type Result struct {
	Distance    float64 // accumulated DTW cost
	Path        []Coord // indices into the defined samples, start to end
	Correlation float64 // Pearson r over path pairs; NaN if undefined
	Shift       float64 // median of observed − synthetic index along the path
	Pairs       int     // len(Path)
}

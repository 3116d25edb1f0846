// SPDX-License-Identifier: MIT
// Package: welltie/tie
//
// dtw.go — full-matrix Dynamic Time Warping.
//
// Algorithm:
//  1. D is (n+1)×(m+1); D[0][0] = 0, first row and column = +∞.
//  2. For i = 1..n, j = 1..m with |i−j| ≤ Window (when Window ≥ 0):
//     D[i][j] = |a[i−1] − b[j−1]| + min(D[i−1][j]+p, D[i][j−1]+p, D[i−1][j−1])
//  3. distance = D[n][m]; +∞ means the window admits no path.
//  4. Backtrack from (n,m), taking the predecessor whose penalised cost is
//     smallest; ties prefer the diagonal.

package tie

import (
	"math"
)

const opDTW = "DTW"

// DTW returns the warping distance between a and b and the optimal path.
//
// Errors:
//   - ErrEmptyInput if either sequence is empty.
//   - ErrBadInput for invalid options.
//   - ErrNoAlignment if the window leaves D[n][m] infinite.
func DTW(a, b []float64, opts Options) (float64, []Coord, error) {
	n, m := len(a), len(b)
	if n == 0 || m == 0 {
		return 0, nil, tieErrorf(opDTW, ErrEmptyInput)
	}
	if opts.Window < -1 || opts.SlopePenalty < 0 || math.IsNaN(opts.SlopePenalty) {
		return 0, nil, tieErrorf(opDTW, ErrBadInput)
	}
	window := opts.Window
	penalty := opts.SlopePenalty
	inf := math.Inf(1)

	dp := make([][]float64, n+1)
	for i := range dp {
		dp[i] = make([]float64, m+1)
		for j := range dp[i] {
			dp[i][j] = inf
		}
	}
	dp[0][0] = 0

	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			if window >= 0 && abs(i-j) > window {
				continue
			}
			cost := math.Abs(a[i-1] - b[j-1])
			best := min3(dp[i-1][j]+penalty, dp[i][j-1]+penalty, dp[i-1][j-1])
			dp[i][j] = cost + best
		}
	}

	distance := dp[n][m]
	if math.IsInf(distance, 1) {
		return distance, nil, tieErrorf(opDTW, ErrNoAlignment)
	}

	return distance, backtrack(dp, n, m, penalty), nil
}

func backtrack(dp [][]float64, n, m int, penalty float64) []Coord {
	path := make([]Coord, 0, n+m)
	i, j := n, m
	for i > 0 && j > 0 {
		path = append(path, Coord{I: i - 1, J: j - 1})
		if i == 1 && j == 1 {
			break
		}
		diag := dp[i-1][j-1]
		up := dp[i-1][j] + penalty
		left := dp[i][j-1] + penalty
		switch {
		case diag <= up && diag <= left:
			i--
			j--
		case up <= left:
			i--
		default:
			j--
		}
	}
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}

	return path
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}

func min3(a, b, c float64) float64 {
	return math.Min(a, math.Min(b, c))
}

// SPDX-License-Identifier: MIT

// Package interval summarises depth-indexed logs between formation tops.
//
// Tops are named depths. Sorting them by depth and pairing neighbours gives
// the intervals [top_i, top_{i+1}); each interval's slice of the log table is
// reduced to gross thickness, net sand, net-to-gross, optional net pay and
// optional per-curve averages.
//
// Net pay needs porosity and saturation curves. When a named curve is absent
// from the logs, a MissingPolicy decides what happens; the default reproduces
// the historical permissive behaviour (constant 1 for Vsh and Sw, 0 for
// porosity) and logs a Warn entry every time it is applied.
//
// Tops can also be moved to the time domain (InTime) and used to slice
// time-indexed tables (SliceTime).
package interval

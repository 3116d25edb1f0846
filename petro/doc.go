// SPDX-License-Identifier: MIT

// Package petro holds single-sample petrophysical transforms applied curve-wide.
//
// Every function takes depth- or time-indexed series and returns a new series
// with a fixed output mnemonic (VSH_GR, PHID, SW, VP, AI, ...). Inputs are
// never modified; NaN samples stay NaN. Merging the result into a well's log
// table is the caller's decision (see project.Well.AddLog).
package petro

// SPDX-License-Identifier: MIT

// Package wellio reads and writes the delimited-text inputs of the toolkit.
//
//	ReadCheckshots  depth,time pairs, sorted by depth
//	ReadTops        name,depth rows (column names configurable)
//	ReadLogs        depth-indexed curves, first column is the index
//	WriteTable      any series.Table
//	WriteSummary    an interval.Summary, one row per interval
//
// Rows whose numeric fields do not parse are dropped, not fatal. A missing
// required column fails with ErrMissingColumn. Log null sentinels (−999.25 by
// default) become NaN on read and are written back on output.
package wellio

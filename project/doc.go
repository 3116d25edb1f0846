// SPDX-License-Identifier: MIT

// Package project holds the owning aggregates of a well-tie session.
//
// A Well bundles one depth-indexed log table with its formation tops,
// curve metadata and, optionally, a checkshot time-depth relation.
// Every calculation in the library packages is a pure function; a Well is
// the single place where a computed curve is merged back, through AddLog.
//
// A Project is an in-memory collection of Wells keyed by unique name. It
// runs batch work (ApplyCalculation, SummarizeAll, CrossplotData) across
// its wells sequentially, in insertion order. Per-well failures are logged
// and collected; one bad well never stops the batch.
//
// Neither type is safe for concurrent mutation.
package project

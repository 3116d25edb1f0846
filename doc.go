// Package welltie is a toolkit for tying well logs to seismic: it moves
// depth-indexed curves into two-way time, builds synthetic seismograms,
// summarizes formation intervals and aligns synthetics with observed traces.
//
// 🚀 What is in the box?
//
//	• series/       — depth/time Series and immutable Tables (slice, merge, nulls)
//	• timedepth/    — checkshot relation, time-axis resampling, multi-curve conversion
//	• seismic/      — reflectivity, Ricker wavelet, convolution, synthetic pipeline
//	• interval/     — formation tops, intervals, net sand / net pay summaries
//	• petro/        — Vsh, porosity, Archie Sw, Vp from sonic, acoustic impedance
//	• nomenclature/ — mnemonic → canonical log type (longest-prefix aliases)
//	• tie/          — DTW alignment, correlation and bulk shift
//	• wellio/       — CSV readers and writers for logs, tops and checkshots
//	• project/      — Well aggregate and multi-well Project
//
// ✨ Conventions shared by every package:
//
//   - NaN means "undefined"; undefined values propagate instead of failing.
//   - Transforms return new values and never mutate their inputs.
//   - Errors are package sentinels wrapped with the operation name; test
//     them with errors.Is.
//   - Behaviour knobs are functional options (WithLogger, WithEpsilon, ...).
//
// Quick pipeline:
//
//	depth logs ──Vp·ρ──► AI ──Convert──► AI(t) ──Reflectivity──► rc ──Convolve(Ricker)──► synthetic
//
// The welltie command (cmd/welltie) wires the same steps to CSV files.
package welltie

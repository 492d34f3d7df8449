// SPDX-License-Identifier: MIT

// Package coilfield computes magnetostatic fields of circular current loops
// by numerically integrating the Biot–Savart law over discretized loops.
//
// 🚀 What is coilfield?
//
//	A small, deterministic field solver that brings together:
//		• Geometry: 3-vectors, 3×3 matrices, Rodrigues axis alignment
//		• Coils: loops, discretization, Helmholtz/Maxwell/pair/toroidal presets, YAML coil sets
//		• Solver: chunked Biot–Savart summation, parallel over observation points
//		• Grids: square observation planes (xz, xy, yz)
//		• Metrics: |B| statistics, uniformity score, toy plasma beta
//		• Sweeps: coaxial-pair separation scans
//
// ✨ Guarantees
//
//   - Results are bitwise identical for any worker count.
//   - Chunk size changes results only through summation order.
//   - Library packages never log and never panic on runtime input.
//
// Layout:
//
//	geom/       — Vec3, Mat3, RotationFromTo
//	coil/       — Loop, Discretize, presets, ReadSet/WriteSet
//	biotsavart/ — Evaluate, EvaluateLoop, EvaluateContext + functional options
//	grid/       — PlaneGrid construction and reshaping
//	metrics/    — Magnitudes, UniformityScore, BetaEstimate, Summarize
//	sweep/      — separation sweep over coaxial pairs
//	internal/   — config (viper), logging (slog), store (SQLite), cli (cobra)
//	cmd/        — the coilfield binary
//
// Quick ASCII picture of a Helmholtz pair (axis +Y, separation = R):
//
//	   ─────   y = +R/2
//	     │
//	     ● P   field at the centre is nearly uniform
//	     │
//	   ─────   y = −R/2
//
//	go install github.com/katalvlaran/coilfield/cmd/coilfield@latest
package coilfield

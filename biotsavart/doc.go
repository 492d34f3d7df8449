// SPDX-License-Identifier: MIT

// Package biotsavart computes the magnetostatic field of filamentary
// circular current loops by summing the Biot–Savart law over straight
// segments.
//
// 🚀 The law
//
//	For a segment starting at P with chord dL carrying current I, the
//	contribution at observation point X is
//
//	  dB = (μ₀/4π) · I · (dL × r) / (|r|³ + ε),   r = X − P
//
//	and the field is the superposition over every segment of every loop,
//	each loop scaled by its turn count.
//
// ✨ Key features:
//   - Evaluate / EvaluateContext / EvaluateLoop
//   - segment batching (WithChunkSize) bounds the working set per pass
//   - point-parallel workers (WithWorkers) with bitwise-stable results
//   - ε-regularized denominator: coincident points give a large finite value
//   - strict turns validation, or the permissive clamp via WithClampTurns
//
// Accumulation order (per observation point, fixed for reproducibility):
//
//	for each loop in input order:
//	  loopSum = 0
//	  for each chunk of segments in polyline order:
//	    partial = Σ_{segments in chunk, in order} (dL × r)/(|r|³ + ε)
//	    loopSum += partial
//	  B += loopSum · (μ₀/4π) · I · turns
//
// Workers split the points, never the segments, so every point is written by
// exactly one goroutine and sees the same order as the serial path. Chunk
// size changes the grouping of the partial sums only.
//
// ⚙️ Usage:
//
//	loops, _ := coil.HelmholtzPair(0.2, 100, 50)
//	field, err := biotsavart.Evaluate(loops, points,
//	  biotsavart.WithSegments(200),
//	  biotsavart.WithChunkSize(256),
//	)
//
// Performance:
//
//   - Time:   O(L · N · P)  (loops × segments × points)
//   - Memory: O(P + L · N)  for the output and the polylines
package biotsavart

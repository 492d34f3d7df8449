// SPDX-License-Identifier: MIT

// Package sweep varies the separation of a coaxial loop pair and records
// how centre field and uniformity respond.
//
// ⚙️ Usage:
//
//	g, _ := grid.NewPlaneGrid(0.3, 121, grid.XZ)
//	cfg := sweep.DefaultConfig()
//	points, err := sweep.Run(ctx, cfg, g.Points, g.Center())
//
// Each step builds coil.CoaxialPair at the step's separation, evaluates it
// with biotsavart, and reduces the magnitudes with metrics. Steps run
// sequentially; each solve is already point-parallel.
//
// Complexity: O(steps · 2 · segments · points).
package sweep

// SPDX-License-Identifier: MIT

// Package metrics reduces a sampled vector field to scalar diagnostics:
// magnitudes, mean/standard deviation, a dispersion-based uniformity score
// and a toy plasma beta.
//
//   - UniformityScore(m) = max(0, 1 − std(m)/mean(m)), 0 when mean is 0.
//     std is the population standard deviation.
//   - BetaEstimate(p, B) = 2μ₀p / (B² + 1e-30).
//
// All functions are pure and allocate only their outputs.
package metrics

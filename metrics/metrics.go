// SPDX-License-Identifier: MIT

package metrics

import (
	"math"

	"github.com/katalvlaran/coilfield/biotsavart"
	"github.com/katalvlaran/coilfield/geom"
)

// betaEpsilon keeps BetaEstimate finite for B = 0.
const betaEpsilon = 1e-30

// Magnitudes returns |B| for every vector, in order.
func Magnitudes(field []geom.Vec3) []float64 {
	out := make([]float64, len(field))
	for i, b := range field {
		out[i] = b.Norm()
	}

	return out
}

// Positive returns the values strictly greater than zero, in order.
func Positive(values []float64) []float64 {
	out := make([]float64, 0, len(values))
	for _, v := range values {
		if v > 0 {
			out = append(out, v)
		}
	}

	return out
}

// Mean returns the arithmetic mean; 0 for an empty slice.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var s float64
	for _, v := range values {
		s += v
	}

	return s / float64(len(values))
}

// StdDev returns the population standard deviation (divisor n); 0 for an
// empty slice. Two-pass: mean first, then squared deviations.
func StdDev(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	m := Mean(values)
	var ss float64
	for _, v := range values {
		d := v - m
		ss += d * d
	}

	return math.Sqrt(ss / float64(len(values)))
}

// Max returns the largest value; 0 for an empty slice.
func Max(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	best := values[0]
	for _, v := range values[1:] {
		if v > best {
			best = v
		}
	}

	return best
}

// UniformityScore returns 1 − std/mean floored at 0, or 0 when the mean is 0.
// Higher means more spatially uniform; a constant field scores 1.
func UniformityScore(magnitudes []float64) float64 {
	m := Mean(magnitudes)
	if m == 0 {
		return 0
	}

	return math.Max(0, 1-StdDev(magnitudes)/m)
}

// BetaEstimate returns the toy plasma beta 2μ₀p/B² for pressure p [Pa] and
// field b [T].
func BetaEstimate(pressure, b float64) float64 {
	return 2 * biotsavart.Mu0 * pressure / (b*b + betaEpsilon)
}

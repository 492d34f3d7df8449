// SPDX-License-Identifier: MIT

package coil

import (
	"fmt"
	"math"

	"github.com/katalvlaran/coilfield/geom"
)

// Discretize approximates loop by a closed N-gon with N = segments.
//
// Algorithm:
//  1. θ_k = 2πk/N for k = 0..N−1 (no duplicated endpoint; the polygon
//     closes by wrap-around).
//  2. Canonical samples in the x–z plane with normal +Y:
//     L_k = (R·cos θ_k, 0, −R·sin θ_k)
//     which circulates right-handed about +Y.
//  3. dL_k = L_{(k+1) mod N} − L_k in the canonical frame.
//  4. R = geom.RotationFromTo(+Y, Axis); P_k = R·L_k + Center, S_k = R·dL_k.
//
// Errors:
//   - ErrTooFewSegments if segments < MinSegments.
//   - Geometry errors from Loop.ValidateGeometry (turns are not checked here).
//
// Complexity: O(N) time and memory.
func Discretize(loop Loop, segments int) (Polyline, error) {
	// Stage 1 (Validate).
	if segments < MinSegments {
		return Polyline{}, fmt.Errorf("%w: got %d", ErrTooFewSegments, segments)
	}
	if err := loop.validateGeometry(); err != nil {
		return Polyline{}, err
	}

	// Stage 2 (Prepare): canonical samples.
	local := CanonicalPoints(loop.Radius, segments)

	rot, err := geom.RotationFromTo(ReferenceAxis, loop.Axis)
	if err != nil {
		return Polyline{}, ErrDegenerateAxis
	}

	// Stage 3 (Execute): chords in the local frame, then rotate + translate.
	pts := make([]geom.Vec3, segments)
	segs := make([]geom.Vec3, segments)
	for k := 0; k < segments; k++ {
		next := local[(k+1)%segments]
		segs[k] = rot.Apply(next.Sub(local[k]))
		pts[k] = rot.Apply(local[k]).Add(loop.Center)
	}

	return Polyline{Points: pts, Segments: segs}, nil
}

// CanonicalPoints returns the n samples of a radius-r loop in the reference
// frame: (r·cos θ_k, 0, −r·sin θ_k), θ_k = 2πk/n.
func CanonicalPoints(r float64, n int) []geom.Vec3 {
	out := make([]geom.Vec3, n)
	step := 2 * math.Pi / float64(n)
	for k := range out {
		theta := step * float64(k)
		out[k] = geom.Vec3{X: r * math.Cos(theta), Z: -r * math.Sin(theta)}
	}

	return out
}

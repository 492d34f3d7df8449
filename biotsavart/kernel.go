// SPDX-License-Identifier: MIT

package biotsavart

import (
	"math"

	"github.com/katalvlaran/coilfield/geom"
)

// accumulate adds the field of every source at pts into out (len(out) == len(pts)).
//
// Chunks are the outer loop and points the inner one, so one batch of
// segment geometry stays hot while all points stream past it. loopSum
// carries the per-point running sum for the current loop; its order per
// point is exactly the one documented in doc.go.
//
// Complexity: O(len(src)·N·len(pts)) time, O(len(pts)) scratch.
func accumulate(src []source, pts, out []geom.Vec3, o Options) {
	loopSum := make([]geom.Vec3, len(pts))
	for _, s := range src {
		clear(loopSum)
		n := len(s.points)
		for c0 := 0; c0 < n; c0 += o.chunk {
			c1 := min(c0+o.chunk, n)
			ps, dls := s.points[c0:c1], s.segments[c0:c1]
			for i, x := range pts {
				loopSum[i] = loopSum[i].Add(chunkSum(x, ps, dls, o.eps))
			}
		}
		for i := range out {
			out[i] = out[i].Add(loopSum[i].Scale(s.factor).Scale(s.turns))
		}
	}
}

// chunkSum returns Σ_k (dL_k × r_k) / (|r_k|³ + eps) with r_k = x − P_k.
func chunkSum(x geom.Vec3, ps, dls []geom.Vec3, eps float64) geom.Vec3 {
	var bx, by, bz float64
	for k := range ps {
		rx, ry, rz := x.X-ps[k].X, x.Y-ps[k].Y, x.Z-ps[k].Z
		r2 := rx*rx + ry*ry + rz*rz
		inv := 1 / (r2*math.Sqrt(r2) + eps)
		d := dls[k]
		bx += (d.Y*rz - d.Z*ry) * inv
		by += (d.Z*rx - d.X*rz) * inv
		bz += (d.X*ry - d.Y*rx) * inv
	}

	return geom.Vec3{X: bx, Y: by, Z: bz}
}

// SPDX-License-Identifier: MIT

package geom

import (
	"fmt"
	"math"
)

// ZeroTolerance is the length below which a vector is treated as zero
// when normalizing.
const ZeroTolerance = 1e-300

// Vec3 is a 3D vector (or point) in Cartesian coordinates.
type Vec3 struct {
	X, Y, Z float64
}

// Canonical basis vectors.
var (
	UnitX = Vec3{X: 1}
	UnitY = Vec3{Y: 1}
	UnitZ = Vec3{Z: 1}
)

// V is shorthand for Vec3{X: x, Y: y, Z: z}.
func V(x, y, z float64) Vec3 { return Vec3{X: x, Y: y, Z: z} }

// Add returns v + w.
func (v Vec3) Add(w Vec3) Vec3 {
	return Vec3{v.X + w.X, v.Y + w.Y, v.Z + w.Z}
}

// Sub returns v - w.
func (v Vec3) Sub(w Vec3) Vec3 {
	return Vec3{v.X - w.X, v.Y - w.Y, v.Z - w.Z}
}

// Scale returns s·v.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Neg returns -v.
func (v Vec3) Neg() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

// Dot returns the scalar product v·w.
func (v Vec3) Dot(w Vec3) float64 {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}

// Cross returns the vector product v×w (right-handed).
func (v Vec3) Cross(w Vec3) Vec3 {
	return Vec3{
		X: v.Y*w.Z - v.Z*w.Y,
		Y: v.Z*w.X - v.X*w.Z,
		Z: v.X*w.Y - v.Y*w.X,
	}
}

// Norm returns the Euclidean length |v|.
func (v Vec3) Norm() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Norm2 returns |v|² without the square root.
func (v Vec3) Norm2() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Unit returns v/|v|.
// Returns ErrNonFinite for NaN/Inf components and ErrZeroVector when |v|
// is below ZeroTolerance.
func (v Vec3) Unit() (Vec3, error) {
	if !v.IsFinite() {
		return Vec3{}, ErrNonFinite
	}
	n := v.Norm()
	if n < ZeroTolerance {
		return Vec3{}, ErrZeroVector
	}

	return v.Scale(1 / n), nil
}

// IsFinite reports whether all three components are finite.
func (v Vec3) IsFinite() bool {
	return isFinite(v.X) && isFinite(v.Y) && isFinite(v.Z)
}

// ApproxEqual reports whether every component of v and w differs by at most eps.
func (v Vec3) ApproxEqual(w Vec3, eps float64) bool {
	return math.Abs(v.X-w.X) <= eps &&
		math.Abs(v.Y-w.Y) <= eps &&
		math.Abs(v.Z-w.Z) <= eps
}

// Array returns the components as [x, y, z].
func (v Vec3) Array() [3]float64 { return [3]float64{v.X, v.Y, v.Z} }

// FromArray builds a Vec3 from [x, y, z].
func FromArray(a [3]float64) Vec3 { return Vec3{a[0], a[1], a[2]} }

// String implements fmt.Stringer.
func (v Vec3) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z)
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

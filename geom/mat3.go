// SPDX-License-Identifier: MIT

package geom

// AlignTolerance is the threshold on |a×b| below which two unit vectors are
// treated as parallel (or antiparallel) by RotationFromTo.
const AlignTolerance = 1e-12

// Mat3 is a row-major 3×3 matrix: m[i][j] is row i, column j.
type Mat3 [3][3]float64

// Identity returns the 3×3 identity matrix.
func Identity() Mat3 {
	return Mat3{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
}

// Diag returns the diagonal matrix diag(a, b, c).
func Diag(a, b, c float64) Mat3 {
	return Mat3{
		{a, 0, 0},
		{0, b, 0},
		{0, 0, c},
	}
}

// Skew returns the cross-product matrix [v]ₓ such that [v]ₓ·w == v×w.
func Skew(v Vec3) Mat3 {
	return Mat3{
		{0, -v.Z, v.Y},
		{v.Z, 0, -v.X},
		{-v.Y, v.X, 0},
	}
}

// Add returns m + n.
func (m Mat3) Add(n Mat3) Mat3 {
	var out Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = m[i][j] + n[i][j]
		}
	}

	return out
}

// Scale returns s·m.
func (m Mat3) Scale(s float64) Mat3 {
	var out Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = m[i][j] * s
		}
	}

	return out
}

// Mul returns the matrix product m·n.
// Fixed i→j→k traversal keeps the result deterministic.
func (m Mat3) Mul(n Mat3) Mat3 {
	var out Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			var s float64
			for k := 0; k < 3; k++ {
				s += m[i][k] * n[k][j]
			}
			out[i][j] = s
		}
	}

	return out
}

// Apply returns m·v.
func (m Mat3) Apply(v Vec3) Vec3 {
	return Vec3{
		X: m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z,
		Y: m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z,
		Z: m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z,
	}
}

// Transpose returns mᵀ. For a rotation this is also the inverse.
func (m Mat3) Transpose() Mat3 {
	var out Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = m[j][i]
		}
	}

	return out
}

// Det returns the determinant of m (cofactor expansion along row 0).
func (m Mat3) Det() float64 {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

// RotationFromTo returns the minimal rotation R with R·â = b̂, where â and
// b̂ are the normalized inputs.
//
// Implementation:
//   - Stage 1: normalize a and b (ErrZeroVector / ErrNonFinite on failure).
//   - Stage 2: v = â×b̂, c = â·b̂, s = |v|.
//   - Stage 3: s < AlignTolerance:
//     c > 0 → identity;
//     c < 0 → fixed 180° turn about an axis ⟂ â (see halfTurnPerpendicular).
//   - Stage 4: Rodrigues, R = I + [v]ₓ + [v]ₓ²·(1−c)/s².
//
// The antiparallel branch never divides by s, so there is no singularity.
//
// Complexity: O(1).
func RotationFromTo(a, b Vec3) (Mat3, error) {
	// Stage 1 (Validate): both directions must be normalizable.
	ua, err := a.Unit()
	if err != nil {
		return Mat3{}, err
	}
	ub, err := b.Unit()
	if err != nil {
		return Mat3{}, err
	}

	// Stage 2 (Prepare): rotation axis (unnormalized) and cosine.
	v := ua.Cross(ub)
	c := ua.Dot(ub)
	s := v.Norm()

	// Stage 3 (Degenerate): already aligned or exactly opposite.
	if s < AlignTolerance {
		if c > 0 {
			return Identity(), nil
		}
		return halfTurnPerpendicular(ua), nil
	}

	// Stage 4 (Execute): Rodrigues' formula.
	k := Skew(v)
	return Identity().Add(k).Add(k.Mul(k).Scale((1 - c) / (s * s))), nil
}

// halfTurnPerpendicular returns a proper 180° rotation about an axis
// perpendicular to u. The axis is the basis vector least aligned with u,
// projected onto u's orthogonal complement. For u = ±Y this is the X axis,
// giving diag(1, −1, −1).
func halfTurnPerpendicular(u Vec3) Mat3 {
	e := UnitX
	if abs(u.Y) < abs(u.X) && abs(u.Y) <= abs(u.Z) {
		e = UnitY
	} else if abs(u.Z) < abs(u.X) && abs(u.Z) < abs(u.Y) {
		e = UnitZ
	}
	n, _ := e.Sub(u.Scale(e.Dot(u))).Unit() // e is never parallel to u

	// 180° about unit n: R = 2·n·nᵀ − I.
	var out Mat3
	nn := n.Array()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = 2 * nn[i] * nn[j]
		}
		out[i][i] -= 1
	}

	return out
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

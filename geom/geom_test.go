// SPDX-License-Identifier: MIT

package geom_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/coilfield/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-12

// TestVec3_Algebra checks the basic vector identities used by the solver.
func TestVec3_Algebra(t *testing.T) {
	a := geom.V(1, 2, 3)
	b := geom.V(-4, 0.5, 2)

	assert.Equal(t, geom.V(-3, 2.5, 5), a.Add(b))
	assert.Equal(t, geom.V(5, 1.5, 1), a.Sub(b))
	assert.Equal(t, geom.V(2, 4, 6), a.Scale(2))
	assert.Equal(t, geom.V(-1, -2, -3), a.Neg())
	assert.Equal(t, 3.0, a.Dot(b))
	assert.Equal(t, 14.0, a.Norm2())
	assert.InDelta(t, math.Sqrt(14), a.Norm(), tol)

	// a×b is orthogonal to both operands.
	c := a.Cross(b)
	assert.InDelta(t, 0, c.Dot(a), tol)
	assert.InDelta(t, 0, c.Dot(b), tol)

	// Right-handed basis.
	assert.Equal(t, geom.UnitZ, geom.UnitX.Cross(geom.UnitY))
	assert.Equal(t, geom.UnitX, geom.UnitY.Cross(geom.UnitZ))
	assert.Equal(t, geom.UnitY, geom.UnitZ.Cross(geom.UnitX))
}

// TestVec3_Unit covers normalization and its sentinel errors.
func TestVec3_Unit(t *testing.T) {
	u, err := geom.V(0, 3, 4).Unit()
	require.NoError(t, err)
	assert.True(t, u.ApproxEqual(geom.V(0, 0.6, 0.8), tol))

	_, err = geom.Vec3{}.Unit()
	assert.ErrorIs(t, err, geom.ErrZeroVector)

	_, err = geom.V(math.NaN(), 0, 1).Unit()
	assert.ErrorIs(t, err, geom.ErrNonFinite)

	_, err = geom.V(math.Inf(1), 0, 0).Unit()
	assert.ErrorIs(t, err, geom.ErrNonFinite)
}

// TestMat3_Basics checks Mul/Apply/Transpose/Det/Skew on small fixtures.
func TestMat3_Basics(t *testing.T) {
	m := geom.Mat3{{1, 2, 3}, {0, 1, 4}, {5, 6, 0}}

	assert.Equal(t, m, geom.Identity().Mul(m))
	assert.Equal(t, m, m.Mul(geom.Identity()))
	assert.Equal(t, 1.0, m.Det())
	assert.Equal(t, geom.Mat3{{1, 0, 5}, {2, 1, 6}, {3, 4, 0}}, m.Transpose())
	assert.Equal(t, geom.V(14, 14, 17), m.Apply(geom.V(1, 2, 3)))
	assert.Equal(t, geom.Diag(2, 4, 6), geom.Diag(1, 2, 3).Scale(2))

	v := geom.V(0.3, -1.2, 2)
	w := geom.V(4, 1, -0.5)
	assert.True(t, geom.Skew(v).Apply(w).ApproxEqual(v.Cross(w), tol))
}

// TestRotationFromTo_General verifies R·a = b, orthogonality and det = +1
// for a spread of target directions.
func TestRotationFromTo_General(t *testing.T) {
	targets := []geom.Vec3{
		geom.UnitX,
		geom.UnitZ,
		geom.V(1, 1, 1),
		geom.V(-0.2, 0.9, 0.1),
		geom.V(0.3, -0.7, -0.6),
		geom.V(-1, 0, 1),
	}
	for _, b := range targets {
		r, err := geom.RotationFromTo(geom.UnitY, b)
		require.NoError(t, err)

		ub, _ := b.Unit()
		assert.True(t, r.Apply(geom.UnitY).ApproxEqual(ub, 1e-12), "R·Y must equal %v", ub)
		assertRotation(t, r)
	}
}

// TestRotationFromTo_Degenerate covers the aligned and antiparallel branches.
func TestRotationFromTo_Degenerate(t *testing.T) {
	r, err := geom.RotationFromTo(geom.UnitY, geom.V(0, 5, 0))
	require.NoError(t, err)
	assert.Equal(t, geom.Identity(), r, "aligned axes must give the identity")

	r, err = geom.RotationFromTo(geom.UnitY, geom.V(0, -2, 0))
	require.NoError(t, err)
	assert.Equal(t, geom.Diag(1, -1, -1), r, "antiparallel to +Y must be a half turn about X")
	assertRotation(t, r)

	// Antiparallel for an arbitrary direction still maps a onto -a.
	a := geom.V(0.2, -0.4, 0.9)
	r, err = geom.RotationFromTo(a, a.Neg())
	require.NoError(t, err)
	ua, _ := a.Unit()
	assert.True(t, r.Apply(ua).ApproxEqual(ua.Neg(), 1e-12))
	assertRotation(t, r)

	_, err = geom.RotationFromTo(geom.UnitY, geom.Vec3{})
	assert.ErrorIs(t, err, geom.ErrZeroVector)
}

// assertRotation checks RᵀR = I and det(R) = 1.
func assertRotation(t *testing.T, r geom.Mat3) {
	t.Helper()
	rtr := r.Transpose().Mul(r)
	id := geom.Identity()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			assert.InDelta(t, id[i][j], rtr[i][j], 1e-12, "RᵀR[%d][%d]", i, j)
		}
	}
	assert.InDelta(t, 1.0, r.Det(), 1e-12)
}

// SPDX-License-Identifier: MIT

package coil_test

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/coilfield/coil"
	"github.com/katalvlaran/coilfield/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestToroidalRing mirrors the reference preset check: 24 coils, unit axes.
func TestToroidalRing(t *testing.T) {
	loops, err := coil.ToroidalRing(0.35, 0.08, 100, 20, 24)
	require.NoError(t, err)
	require.Len(t, loops, 24)

	for k, l := range loops {
		assert.InDelta(t, 1.0, l.Axis.Norm(), 1e-6, "coil %d axis", k)
		assert.InDelta(t, 0.35, l.Center.Norm(), 1e-12, "coil %d centre", k)
		assert.InDelta(t, 0, l.Axis.Dot(l.Center), 1e-12, "coil %d axis must be tangent", k)
		assert.Equal(t, 0.08, l.Radius)
		assert.Equal(t, 20, l.Turns)
	}
	assert.True(t, loops[0].Center.ApproxEqual(geom.V(0.35, 0, 0), 1e-12))
	assert.True(t, loops[0].Axis.ApproxEqual(geom.UnitZ, 1e-12))
}

// TestToroidalRing_Invalid checks preset parameter validation.
func TestToroidalRing_Invalid(t *testing.T) {
	_, err := coil.ToroidalRing(0.35, 0.08, 100, 20, 0)
	assert.ErrorIs(t, err, coil.ErrInvalidPreset)
	_, err = coil.ToroidalRing(0, 0.08, 100, 20, 8)
	assert.ErrorIs(t, err, coil.ErrInvalidPreset)
	_, err = coil.ToroidalRing(0.1, 0.2, 100, 20, 8)
	assert.ErrorIs(t, err, coil.ErrInvalidPreset)

	_, err = coil.ToroidalRing(0.35, 0.08, 100, 0, 8)
	assert.ErrorIs(t, err, coil.ErrInvalidPreset)
	assert.ErrorIs(t, err, coil.ErrInvalidTurns)
}

// TestPairs checks coaxial placement for Helmholtz and Maxwell pairs.
func TestPairs(t *testing.T) {
	h, err := coil.HelmholtzPair(0.2, 100, 50)
	require.NoError(t, err)
	require.Len(t, h, 2)
	assert.Equal(t, geom.V(0, -0.1, 0), h[0].Center)
	assert.Equal(t, geom.V(0, 0.1, 0), h[1].Center)
	assert.Equal(t, geom.UnitY, h[0].Axis)

	m, err := coil.MaxwellPair(0.2, 100, 50)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt(3)*0.2, m[1].Center.Y-m[0].Center.Y, 1e-15)

	_, err = coil.CoaxialPair(0.2, 100, 50, -1)
	assert.ErrorIs(t, err, coil.ErrInvalidPreset)

	s, err := coil.SingleLoop(0.2, 100, 50)
	require.NoError(t, err)
	assert.Equal(t, []coil.Loop{{Axis: geom.UnitY, Radius: 0.2, Current: 100, Turns: 50}}, s)

	_, err = coil.SingleLoop(-0.2, 100, 50)
	assert.ErrorIs(t, err, coil.ErrNonPositiveRadius)
}

// TestSet_RoundTrip writes a preset as YAML and reads it back unchanged.
func TestSet_RoundTrip(t *testing.T) {
	want, err := coil.MaxwellPair(0.2, -35, 12)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, coil.WriteSet(&buf, want))

	got, err := coil.ReadSet(&buf)
	require.NoError(t, err)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("coil set mismatch (-want +got):\n%s", diff)
	}
}

// TestReadSet parses a hand-written file, normalizing the axis and
// defaulting turns.
func TestReadSet(t *testing.T) {
	src := `
loops:
  - name: lower
    center: [0, -0.1, 0]
    axis: [0, 2, 0]
    radius: 0.2
    current: 100
  - center: [0, 0.1, 0]
    axis: [0, 1, 0]
    radius: 0.2
    current: 100
    turns: 50
`
	got, err := coil.ReadSet(strings.NewReader(src))
	require.NoError(t, err)
	want := []coil.Loop{
		{Center: geom.V(0, -0.1, 0), Axis: geom.UnitY, Radius: 0.2, Current: 100, Turns: 1},
		{Center: geom.V(0, 0.1, 0), Axis: geom.UnitY, Radius: 0.2, Current: 100, Turns: 50},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("decoded set mismatch (-want +got):\n%s", diff)
	}
}

// TestReadSet_Errors covers empty sets, unknown fields and invalid loops.
func TestReadSet_Errors(t *testing.T) {
	_, err := coil.ReadSet(strings.NewReader(""))
	assert.ErrorIs(t, err, coil.ErrEmptySet)

	_, err = coil.ReadSet(strings.NewReader("loops: []\n"))
	assert.ErrorIs(t, err, coil.ErrEmptySet)

	_, err = coil.ReadSet(strings.NewReader("loops:\n  - radius: 1\n    bogus: 2\n"))
	assert.Error(t, err)

	_, err = coil.ReadSet(strings.NewReader("loops:\n  - axis: [0, 0, 0]\n    radius: 1\n"))
	assert.ErrorIs(t, err, coil.ErrDegenerateAxis)

	_, err = coil.ReadSet(strings.NewReader("loops:\n  - axis: [0, 1, 0]\n    radius: 1\n    turns: -3\n"))
	assert.ErrorIs(t, err, coil.ErrInvalidTurns)

	_, err = coil.ReadSet(strings.NewReader("loops:\n  - axis: [0, 1, 0]\n    radius: 1\n    turns: 0\n"))
	assert.ErrorIs(t, err, coil.ErrInvalidTurns, "explicit zero turns must not default to 1")
}

// TestReadSet_ClampedTurns accepts turns < 1 as one turn when asked to.
func TestReadSet_ClampedTurns(t *testing.T) {
	src := "loops:\n  - axis: [0, 1, 0]\n    radius: 1\n    turns: 0\n  - axis: [0, 1, 0]\n    radius: 1\n    turns: -4\n  - axis: [0, 1, 0]\n    radius: 1\n    turns: 3\n"
	got, err := coil.ReadSet(strings.NewReader(src), coil.WithClampedTurns())
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, []int{1, 1, 3}, []int{got[0].Turns, got[1].Turns, got[2].Turns})
}

// TestClampTurns checks the max(1, turns) policy.
func TestClampTurns(t *testing.T) {
	assert.Equal(t, 1, coil.ClampTurns(-5))
	assert.Equal(t, 1, coil.ClampTurns(0))
	assert.Equal(t, 1, coil.ClampTurns(1))
	assert.Equal(t, 50, coil.ClampTurns(50))
}

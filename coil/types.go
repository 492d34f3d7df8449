// SPDX-License-Identifier: MIT

package coil

import (
	"fmt"
	"math"

	"github.com/katalvlaran/coilfield/geom"
)

// MinSegments is the smallest polygon that still approximates a circle.
const MinSegments = 3

// ReferenceAxis is the normal of the canonical loop frame. Canonical samples
// lie in the x–z plane.
var ReferenceAxis = geom.UnitY

// Loop is an idealized filamentary circular current path.
//
// Fields:
//   - Center  — loop centre in world coordinates [m].
//   - Axis    — unit normal; NewLoop normalizes it.
//   - Radius  — loop radius [m], > 0.
//   - Current — signed current [A]; the sign encodes winding direction.
//   - Turns   — number of turns, >= 1; the contribution scales linearly.
//
// Loop is a value type. Copies are independent; nothing in this module
// mutates a Loop after construction.
type Loop struct {
	Center  geom.Vec3
	Axis    geom.Vec3
	Radius  float64
	Current float64
	Turns   int
}

// NewLoop validates its inputs and returns a Loop with a unit-length axis.
//
// Errors:
//   - ErrNonFinite         — NaN/Inf anywhere in centre, axis, radius or current.
//   - ErrDegenerateAxis    — axis cannot be normalized.
//   - ErrNonPositiveRadius — radius <= 0.
//   - ErrInvalidTurns      — turns < 1.
func NewLoop(center, axis geom.Vec3, radius, current float64, turns int) (Loop, error) {
	l := Loop{Center: center, Axis: axis, Radius: radius, Current: current, Turns: turns}
	if err := l.Validate(); err != nil {
		return Loop{}, err
	}
	l.Axis, _ = axis.Unit() // Validate guarantees success

	return l, nil
}

// MustLoop is NewLoop that panics on error. Intended for fixtures and presets
// whose parameters are known to be valid.
func MustLoop(center, axis geom.Vec3, radius, current float64, turns int) Loop {
	l, err := NewLoop(center, axis, radius, current, turns)
	if err != nil {
		panic(err)
	}

	return l
}

// Validate checks the loop invariants. The axis need not be unit length,
// only normalizable.
func (l Loop) Validate() error {
	if err := l.validateGeometry(); err != nil {
		return err
	}
	if l.Turns < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidTurns, l.Turns)
	}

	return nil
}

// validateGeometry checks everything except the turn count.
func (l Loop) validateGeometry() error {
	if !l.Center.IsFinite() || !l.Axis.IsFinite() ||
		math.IsNaN(l.Radius) || math.IsInf(l.Radius, 0) ||
		math.IsNaN(l.Current) || math.IsInf(l.Current, 0) {
		return ErrNonFinite
	}
	if l.Axis.Norm() < geom.ZeroTolerance {
		return ErrDegenerateAxis
	}
	if !(l.Radius > 0) {
		return fmt.Errorf("%w: got %g", ErrNonPositiveRadius, l.Radius)
	}

	return nil
}

// ValidateGeometry checks centre, axis, radius and current but not Turns.
// Used by callers that apply their own turns policy.
func (l Loop) ValidateGeometry() error { return l.validateGeometry() }

// EffectiveTurns returns max(1, Turns): the permissive clamp applied when
// a caller opts out of turns validation.
func (l Loop) EffectiveTurns() int {
	if l.Turns < 1 {
		return 1
	}

	return l.Turns
}

// AmpereTurns returns Current·Turns, the loop's total magnetomotive force.
func (l Loop) AmpereTurns() float64 {
	return l.Current * float64(l.Turns)
}

// Polyline is the closed polygonal approximation of a Loop.
//
// Points[k] lies on the circumference; Segments[k] = Points[(k+1) mod N] − Points[k].
// Both slices have length N and share ordering.
type Polyline struct {
	Points   []geom.Vec3
	Segments []geom.Vec3
}

// Len returns the number of segments N.
func (p Polyline) Len() int { return len(p.Points) }

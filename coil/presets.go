// SPDX-License-Identifier: MIT

package coil

import (
	"fmt"
	"math"

	"github.com/katalvlaran/coilfield/geom"
)

// Preset defaults, matching the reference bench set-up.
const (
	DefaultRadius      = 0.2   // m
	DefaultCurrent     = 100.0 // A
	DefaultTurns       = 50
	DefaultMajorRadius = 0.35 // m
	DefaultMinorRadius = 0.08 // m
	DefaultRingCoils   = 24
)

// MaxwellRatio is separation/radius for a Maxwell pair.
var MaxwellRatio = math.Sqrt(3)

// SingleLoop returns one loop centred at the origin with axis +Y.
func SingleLoop(radius, current float64, turns int) ([]Loop, error) {
	l, err := NewLoop(geom.Vec3{}, geom.UnitY, radius, current, turns)
	if err != nil {
		return nil, presetErr("single loop", err)
	}

	return []Loop{l}, nil
}

// CoaxialPair returns two identical loops on the Y axis at y = ±separation/2,
// both carrying current in the same sense.
//
// separation must be >= 0; zero stacks both loops at the origin.
func CoaxialPair(radius, current float64, turns int, separation float64) ([]Loop, error) {
	if math.IsNaN(separation) || math.IsInf(separation, 0) || separation < 0 {
		return nil, fmt.Errorf("%w: coaxial pair separation %g", ErrInvalidPreset, separation)
	}
	half := separation / 2
	lower, err := NewLoop(geom.V(0, -half, 0), geom.UnitY, radius, current, turns)
	if err != nil {
		return nil, presetErr("coaxial pair", err)
	}
	upper, err := NewLoop(geom.V(0, half, 0), geom.UnitY, radius, current, turns)
	if err != nil {
		return nil, presetErr("coaxial pair", err)
	}

	return []Loop{lower, upper}, nil
}

// HelmholtzPair is CoaxialPair with separation = radius, which cancels the
// second derivative of the on-axis field at the centre.
func HelmholtzPair(radius, current float64, turns int) ([]Loop, error) {
	return CoaxialPair(radius, current, turns, radius)
}

// MaxwellPair is CoaxialPair with separation = √3·radius.
func MaxwellPair(radius, current float64, turns int) ([]Loop, error) {
	return CoaxialPair(radius, current, turns, MaxwellRatio*radius)
}

// ToroidalRing arranges coils loops of radius minorRadius on a circle of
// radius majorRadius in the x–z plane. Loop k sits at φ_k = 2πk/coils,
// centre (R cos φ, 0, R sin φ), axis tangent to the ring (−sin φ, 0, cos φ).
//
// Errors: ErrInvalidPreset when coils < 1, majorRadius <= 0 or
// minorRadius >= majorRadius (overlapping coils through the ring centre);
// loop errors otherwise.
func ToroidalRing(majorRadius, minorRadius, current float64, turns, coils int) ([]Loop, error) {
	switch {
	case coils < 1:
		return nil, fmt.Errorf("%w: toroidal ring needs >= 1 coil, got %d", ErrInvalidPreset, coils)
	case !(majorRadius > 0) || math.IsInf(majorRadius, 0):
		return nil, fmt.Errorf("%w: major radius %g", ErrInvalidPreset, majorRadius)
	case minorRadius >= majorRadius:
		return nil, fmt.Errorf("%w: minor radius %g must be below major radius %g",
			ErrInvalidPreset, minorRadius, majorRadius)
	}

	loops := make([]Loop, 0, coils)
	for k := 0; k < coils; k++ {
		phi := 2 * math.Pi * float64(k) / float64(coils)
		sin, cos := math.Sincos(phi)
		center := geom.V(majorRadius*cos, 0, majorRadius*sin)
		axis := geom.V(-sin, 0, cos)
		l, err := NewLoop(center, axis, minorRadius, current, turns)
		if err != nil {
			return nil, presetErr(fmt.Sprintf("toroidal coil %d", k), err)
		}
		loops = append(loops, l)
	}

	return loops, nil
}

// ClampTurns returns max(1, turns), the permissive turns policy.
func ClampTurns(turns int) int {
	if turns < 1 {
		return 1
	}

	return turns
}

func presetErr(what string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrInvalidPreset, what, err)
}

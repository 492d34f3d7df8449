// SPDX-License-Identifier: MIT

package grid

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/coilfield/geom"
)

// Sentinel errors for grid construction.
var (
	// ErrBadExtent indicates a non-positive or non-finite extent.
	ErrBadExtent = errors.New("grid: extent must be finite and > 0")
	// ErrBadResolution indicates fewer than one sample per axis.
	ErrBadResolution = errors.New("grid: resolution must be >= 1")
	// ErrUnknownPlane indicates an unrecognized plane name.
	ErrUnknownPlane = errors.New("grid: unknown plane")
	// ErrLength indicates a value slice that does not match the grid size.
	ErrLength = errors.New("grid: value count does not match grid size")
)

// Plane selects the coordinate plane sampled by a PlaneGrid.
type Plane int

const (
	// XZ samples (u, 0, v): the plane containing the axis of a +Y loop.
	XZ Plane = iota
	// XY samples (u, v, 0).
	XY
	// YZ samples (0, u, v).
	YZ
)

// String returns the lower-case plane name.
func (p Plane) String() string {
	switch p {
	case XZ:
		return "xz"
	case XY:
		return "xy"
	case YZ:
		return "yz"
	default:
		return fmt.Sprintf("Plane(%d)", int(p))
	}
}

// ParsePlane maps "xz", "xy" or "yz" (case-insensitive) to a Plane.
func ParsePlane(s string) (Plane, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "xz":
		return XZ, nil
	case "xy":
		return XY, nil
	case "yz":
		return YZ, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownPlane, s)
}

// embed lifts in-plane coordinates (u, v) into 3D.
func (p Plane) embed(u, v float64) geom.Vec3 {
	switch p {
	case XY:
		return geom.Vec3{X: u, Y: v}
	case YZ:
		return geom.Vec3{Y: u, Z: v}
	default:
		return geom.Vec3{X: u, Z: v}
	}
}

// Components returns the field components lying in the plane (u-, v-aligned)
// for an in-plane direction sketch.
func (p Plane) Components(b geom.Vec3) (bu, bv float64) {
	switch p {
	case XY:
		return b.X, b.Y
	case YZ:
		return b.Y, b.Z
	default:
		return b.X, b.Z
	}
}

// PlaneGrid is an immutable res×res sampling of a coordinate plane.
type PlaneGrid struct {
	Plane      Plane
	Extent     float64
	Resolution int
	Axis       []float64   // len == Resolution, ascending from −Extent to +Extent
	Points     []geom.Vec3 // len == Resolution², row-major
}

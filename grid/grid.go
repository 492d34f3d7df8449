// SPDX-License-Identifier: MIT

package grid

import (
	"fmt"
	"math"

	"github.com/katalvlaran/coilfield/geom"
)

// NewPlaneGrid samples plane over [−extent, extent]² with resolution points
// per axis.
//
// The axis is linspace(−extent, extent, resolution) with both endpoints
// included; resolution 1 yields the single sample −extent. Point (row i,
// col j) has in-plane coordinates (Axis[j], Axis[i]).
//
// Errors: ErrBadExtent, ErrBadResolution, ErrUnknownPlane.
func NewPlaneGrid(extent float64, resolution int, plane Plane) (*PlaneGrid, error) {
	// Stage 1 (Validate).
	if math.IsNaN(extent) || math.IsInf(extent, 0) || extent <= 0 {
		return nil, fmt.Errorf("%w: got %g", ErrBadExtent, extent)
	}
	if resolution < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadResolution, resolution)
	}
	if plane < XZ || plane > YZ {
		return nil, fmt.Errorf("%w: %v", ErrUnknownPlane, plane)
	}

	// Stage 2 (Prepare): the 1D axis.
	axis := Linspace(-extent, extent, resolution)

	// Stage 3 (Execute): row-major flattening.
	pts := make([]geom.Vec3, 0, resolution*resolution)
	for i := 0; i < resolution; i++ {
		for j := 0; j < resolution; j++ {
			pts = append(pts, plane.embed(axis[j], axis[i]))
		}
	}

	return &PlaneGrid{
		Plane:      plane,
		Extent:     extent,
		Resolution: resolution,
		Axis:       axis,
		Points:     pts,
	}, nil
}

// Linspace returns n evenly spaced values from start to stop inclusive.
// The last value is exactly stop; n == 1 yields [start].
func Linspace(start, stop float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	if n == 1 {
		out[0] = start
		return out
	}
	step := (stop - start) / float64(n-1)
	for k := 0; k < n-1; k++ {
		out[k] = start + step*float64(k)
	}
	out[n-1] = stop

	return out
}

// Len returns the number of points (Resolution²).
func (g *PlaneGrid) Len() int { return len(g.Points) }

// Index maps (row, col) to the flat point index.
// Complexity: O(1).
func (g *PlaneGrid) Index(row, col int) int {
	return row*g.Resolution + col
}

// Center returns the flat index of the middle sample, (res/2, res/2).
// For odd resolutions this is the origin.
func (g *PlaneGrid) Center() int {
	h := g.Resolution / 2
	return g.Index(h, h)
}

// UV returns the in-plane coordinates of flat index k.
func (g *PlaneGrid) UV(k int) (u, v float64) {
	return g.Axis[k%g.Resolution], g.Axis[k/g.Resolution]
}

// Reshape splits a flat per-point slice into Resolution rows.
// The rows alias values; no copy is made.
func (g *PlaneGrid) Reshape(values []float64) ([][]float64, error) {
	if len(values) != g.Len() {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrLength, len(values), g.Len())
	}
	rows := make([][]float64, g.Resolution)
	for i := range rows {
		rows[i] = values[i*g.Resolution : (i+1)*g.Resolution : (i+1)*g.Resolution]
	}

	return rows, nil
}

// SPDX-License-Identifier: MIT

package sweep

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/coilfield/biotsavart"
	"github.com/katalvlaran/coilfield/coil"
	"github.com/katalvlaran/coilfield/geom"
	"github.com/katalvlaran/coilfield/grid"
	"github.com/katalvlaran/coilfield/metrics"
)

// Default sweep range, as multiples of the loop radius.
const (
	DefaultFromRatio = 0.2
	DefaultToRatio   = 2.0
	DefaultSteps     = 15

	// DefaultExtent is the half-width of the sampled plane, in metres.
	DefaultExtent = 0.3
)

// Sentinel errors.
var (
	// ErrBadRange indicates a non-finite, negative or inverted separation range.
	ErrBadRange = errors.New("sweep: invalid separation range")
	// ErrBadSteps indicates fewer than one step.
	ErrBadSteps = errors.New("sweep: steps must be >= 1")
)

// Config describes one separation sweep.
type Config struct {
	Radius  float64
	Current float64
	Turns   int

	// Separations to evaluate, in order. Empty ⇒ Separations(Radius,
	// DefaultFromRatio, DefaultToRatio, DefaultSteps).
	Separations []float64

	// Solver options are passed to every biotsavart evaluation.
	Solver []biotsavart.Option

	// Logger receives per-step debug records; nil ⇒ slog.Default().
	Logger *slog.Logger
}

// DefaultConfig returns the reference bench: R = 0.2 m, I = 100 A, 50 turns.
func DefaultConfig() Config {
	return Config{
		Radius:  coil.DefaultRadius,
		Current: coil.DefaultCurrent,
		Turns:   coil.DefaultTurns,
	}
}

// Point is the outcome of one sweep step.
type Point struct {
	Separation float64 // m
	Uniformity float64 // metrics.UniformityScore over positive |B|
	CenterB    float64 // |B| at the centre sample, T
}

// Separations returns steps values from fromRatio·radius to toRatio·radius
// inclusive.
func Separations(radius, fromRatio, toRatio float64, steps int) ([]float64, error) {
	if steps < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadSteps, steps)
	}
	lo, hi := fromRatio*radius, toRatio*radius
	if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) || lo < 0 || hi < lo {
		return nil, fmt.Errorf("%w: [%g, %g]", ErrBadRange, lo, hi)
	}

	return grid.Linspace(lo, hi, steps), nil
}

// Run evaluates every separation in cfg against points and returns one Point
// per separation, in order. center indexes the sample reported as CenterB.
//
// Errors: preset and solver errors wrapped with the step index; ctx.Err()
// when cancelled between or during steps.
func Run(ctx context.Context, cfg Config, points []geom.Vec3, center int) ([]Point, error) {
	// Stage 1 (Validate).
	if center < 0 || center >= len(points) {
		return nil, fmt.Errorf("sweep: centre index %d out of range [0,%d)", center, len(points))
	}
	seps := cfg.Separations
	if len(seps) == 0 {
		var err error
		seps, err = Separations(cfg.Radius, DefaultFromRatio, DefaultToRatio, DefaultSteps)
		if err != nil {
			return nil, err
		}
	}
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}

	// Stage 2 (Execute).
	out := make([]Point, 0, len(seps))
	for i, sep := range seps {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		loops, err := coil.CoaxialPair(cfg.Radius, cfg.Current, cfg.Turns, sep)
		if err != nil {
			return nil, fmt.Errorf("sweep: step %d: %w", i, err)
		}
		field, err := biotsavart.EvaluateContext(ctx, loops, points, cfg.Solver...)
		if err != nil {
			return nil, fmt.Errorf("sweep: step %d: %w", i, err)
		}
		mags := metrics.Magnitudes(field)
		p := Point{
			Separation: sep,
			Uniformity: metrics.UniformityScore(metrics.Positive(mags)),
			CenterB:    mags[center],
		}
		log.Debug("sweep step", "step", i, "separation", sep, "uniformity", p.Uniformity, "center_b", p.CenterB)
		out = append(out, p)
	}

	return out, nil
}

// Best returns the point with the highest uniformity; ok is false when pts
// is empty. Ties keep the earliest point.
func Best(pts []Point) (best Point, ok bool) {
	for i, p := range pts {
		if i == 0 || p.Uniformity > best.Uniformity {
			best = p
		}
	}

	return best, len(pts) > 0
}

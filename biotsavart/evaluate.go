// SPDX-License-Identifier: MIT

package biotsavart

import (
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/coilfield/coil"
	"github.com/katalvlaran/coilfield/geom"
	"golang.org/x/sync/errgroup"
)

// Mu0 is the vacuum permeability μ₀ in T·m/A (CODATA 2018).
const Mu0 = 1.25663706212e-6

// K is the Biot–Savart prefactor μ₀/4π.
const K = Mu0 / (4 * math.Pi)

// source is one discretized loop ready for summation.
type source struct {
	points   []geom.Vec3
	segments []geom.Vec3
	factor   float64 // K·I
	turns    float64
}

// Evaluate returns the superposed field [T] of loops at every point.
// It is EvaluateContext with context.Background().
func Evaluate(loops []coil.Loop, points []geom.Vec3, opts ...Option) ([]geom.Vec3, error) {
	return EvaluateContext(context.Background(), loops, points, opts...)
}

// EvaluateLoop returns the field [T] of a single loop at every point.
func EvaluateLoop(loop coil.Loop, points []geom.Vec3, opts ...Option) ([]geom.Vec3, error) {
	return EvaluateContext(context.Background(), []coil.Loop{loop}, points, opts...)
}

// EvaluateContext computes the Biot–Savart field of loops at points.
//
// Implementation:
//   - Stage 1: resolve options, validate points and loops (fail fast).
//   - Stage 2: discretize every loop once into a read-only source list.
//   - Stage 3: split points into contiguous batches; each batch is summed by
//     one goroutine (errgroup, at most Workers in flight) into its own slice
//     of the output.
//
// Behavior highlights:
//   - len(result) == len(points), same order; empty points ⇒ empty result.
//   - Empty loops ⇒ zero vector at every point (no error).
//   - Results are bitwise independent of the worker count.
//
// Errors:
//   - ErrNonFinitePoint for NaN/Inf points (wrapped with the index).
//   - ErrInvalidLoop wrapping the coil sentinel and loop index.
//   - ctx.Err() if the context is cancelled before all batches finish.
func EvaluateContext(ctx context.Context, loops []coil.Loop, points []geom.Vec3, opts ...Option) ([]geom.Vec3, error) {
	// Stage 1 (Validate).
	o := gatherOptions(opts...)
	for i, p := range points {
		if !p.IsFinite() {
			return nil, fmt.Errorf("%w: index %d", ErrNonFinitePoint, i)
		}
	}

	// Stage 2 (Prepare).
	sources, err := prepare(loops, o)
	if err != nil {
		return nil, err
	}
	field := make([]geom.Vec3, len(points))
	if len(points) == 0 || len(sources) == 0 {
		return field, nil
	}

	// Stage 3 (Execute): serial fast path for small inputs.
	batch := batchSize(len(points), o.workers)
	if batch >= len(points) {
		if err = ctx.Err(); err != nil {
			return nil, err
		}
		accumulate(sources, points, field, o)
		return field, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)
	for start := 0; start < len(points); start += batch {
		start, end := start, min(start+batch, len(points))
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			accumulate(sources, points[start:end], field[start:end], o)
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, err
	}

	return field, nil
}

// prepare validates and discretizes loops under the configured turns policy.
func prepare(loops []coil.Loop, o Options) ([]source, error) {
	sources := make([]source, 0, len(loops))
	for i, l := range loops {
		turns := l.Turns
		var err error
		if o.clampTurns {
			err = l.ValidateGeometry()
			turns = l.EffectiveTurns()
		} else {
			err = l.Validate()
		}
		if err != nil {
			return nil, fmt.Errorf("%w %d: %w", ErrInvalidLoop, i, err)
		}

		poly, err := coil.Discretize(l, o.segments)
		if err != nil {
			return nil, fmt.Errorf("%w %d: %w", ErrInvalidLoop, i, err)
		}
		sources = append(sources, source{
			points:   poly.Points,
			segments: poly.Segments,
			factor:   K * l.Current,
			turns:    float64(turns),
		})
	}

	return sources, nil
}

// batchSize splits n points across workers, keeping at least
// minPointsPerWorker points per batch.
func batchSize(n, workers int) int {
	if workers <= 1 {
		return n
	}
	b := (n + workers - 1) / workers
	if b < minPointsPerWorker {
		b = minPointsPerWorker
	}

	return b
}

// SPDX-License-Identifier: MIT

package biotsavart

import (
	"math"
	"runtime"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultSegments is the per-loop discretization used when WithSegments is absent.
	DefaultSegments = 200

	// DefaultChunkSize is the number of segments summed per batch.
	DefaultChunkSize = 256

	// DefaultEpsilon regularizes |r|³ so coincident points stay finite.
	DefaultEpsilon = 1e-30

	// DefaultClampTurns keeps strict turns validation on by default.
	DefaultClampTurns = false

	// minPointsPerWorker keeps tiny inputs on the calling goroutine.
	minPointsPerWorker = 64
)

// ---------- Internal panic messages ----------

const (
	panicSegmentsInvalid = "biotsavart: WithSegments: segments must be >= 3"
	panicChunkInvalid    = "biotsavart: WithChunkSize: chunk must be >= 1"
	panicWorkersInvalid  = "biotsavart: WithWorkers: workers must be >= 0"
	panicEpsilonInvalid  = "biotsavart: WithEpsilon: eps must be finite, non-negative"
)

// Option mutates evaluator options. Constructors panic only on nonsensical
// values (programmer error); runtime input problems are returned as errors.
type Option func(*Options)

// Options is the resolved evaluator configuration. Fields are unexported;
// public entry points accept ...Option.
type Options struct {
	segments   int
	chunk      int
	workers    int // 0 ⇒ GOMAXPROCS
	eps        float64
	clampTurns bool
}

// Segments returns the configured per-loop segment count.
func (o Options) Segments() int { return o.segments }

// ChunkSize returns the configured segment batch size.
func (o Options) ChunkSize() int { return o.chunk }

// Workers returns the resolved worker count (never 0).
func (o Options) Workers() int { return o.workers }

// WithSegments sets the discretization resolution shared by all loops.
// Larger values increase fidelity and cost linearly.
func WithSegments(n int) Option {
	if n < 3 {
		panic(panicSegmentsInvalid)
	}

	return func(o *Options) { o.segments = n }
}

// WithChunkSize sets how many segments are summed per batch. Results vary
// with chunk size only through floating-point summation order.
func WithChunkSize(n int) Option {
	if n < 1 {
		panic(panicChunkInvalid)
	}

	return func(o *Options) { o.chunk = n }
}

// WithWorkers bounds the number of goroutines used over point batches.
// 0 selects runtime.GOMAXPROCS(0); 1 runs synchronously on the caller.
func WithWorkers(n int) Option {
	if n < 0 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// WithEpsilon overrides the denominator regularization ε. eps = 0 disables
// it; an observation point on a sample point then yields NaN.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithClampTurns accepts loops with Turns < 1 and treats them as one turn,
// instead of rejecting them with coil.ErrInvalidTurns.
func WithClampTurns() Option {
	return func(o *Options) { o.clampTurns = true }
}

// NewOptions resolves opts on top of the defaults. Exposed so callers can
// inspect the effective configuration.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// gatherOptions applies setters in order (last writer wins) and finalizes
// derived values.
func gatherOptions(user ...Option) Options {
	o := Options{
		segments:   DefaultSegments,
		chunk:      DefaultChunkSize,
		eps:        DefaultEpsilon,
		clampTurns: DefaultClampTurns,
	}
	for _, set := range user {
		set(&o)
	}
	if o.workers == 0 {
		o.workers = runtime.GOMAXPROCS(0)
	}

	return o
}

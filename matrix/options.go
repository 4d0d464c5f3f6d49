// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the Engine. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - No global mutable state: every Engine owns its strategies.
//   - No dead switches: each option impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import (
	"runtime"

	"go.uber.org/zap"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultWorkers is the parallel worker cap; 0 ⇒ runtime.GOMAXPROCS(0).
	DefaultWorkers = 0

	// DefaultMinRowsPerTask is the smallest row run a parallel task is given.
	// Matrices with fewer than 2*DefaultMinRowsPerTask rows run sequentially.
	DefaultMinRowsPerTask = 8

	// DefaultPivotRule selects true partial pivoting (largest |value|).
	DefaultPivotRule = PivotAbsolute
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicWorkersInvalid   = "matrix: WithParallel: workers must be >= 0"
	panicMinRowsInvalid   = "matrix: WithMinRowsPerTask: rows must be >= 1"
	panicNilStrategy      = "matrix: strategy must not be nil"
	panicPivotRuleInvalid = "matrix: WithPivotRule: unknown pivot rule"
	panicNilLogger        = "matrix: WithLogger: logger must not be nil"
)

// Option mutates internal options. Safe to apply repeatedly (last wins).
type Option func(*Options)

// Options holds the resolved Engine configuration. Fields are unexported;
// callers build it through Option constructors only.
type Options struct {
	parallel       bool // use the row-partitioned backend for arithmetic/transpose
	workers        int  // parallel worker cap (0 ⇒ GOMAXPROCS)
	minRowsPerTask int  // smallest row run per parallel task

	pivot PivotRule // LU pivot comparison

	arithmetic Arithmetic // explicit override; nil ⇒ derived from parallel flag
	transposer Transposer // explicit override; nil ⇒ derived from parallel flag
	decomposer Decomposer // explicit override; nil ⇒ GaussLU{Pivot: pivot}
	inverter   Inverter   // explicit override; nil ⇒ GaussJordan{}

	logger *zap.Logger // structured diagnostics; never nil after finalize
}

// WithSequential selects the deterministic single-goroutine backend (default).
func WithSequential() Option {
	return func(o *Options) { o.parallel = false }
}

// WithParallel selects the row-partitioned backend with the given worker cap.
// workers == 0 means runtime.GOMAXPROCS(0). Panics on negative values.
func WithParallel(workers int) Option {
	if workers < 0 {
		panic(panicWorkersInvalid)
	}
	return func(o *Options) {
		o.parallel = true
		o.workers = workers
	}
}

// WithMinRowsPerTask sets the smallest row run handed to one parallel task.
// Panics when rows < 1.
func WithMinRowsPerTask(rows int) Option {
	if rows < 1 {
		panic(panicMinRowsInvalid)
	}
	return func(o *Options) { o.minRowsPerTask = rows }
}

// WithPivotRule selects the LU pivot comparison used by the default decomposer.
func WithPivotRule(rule PivotRule) Option {
	if rule != PivotAbsolute && rule != PivotSigned {
		panic(panicPivotRuleInvalid)
	}
	return func(o *Options) { o.pivot = rule }
}

// WithArithmetic injects a custom arithmetic backend.
func WithArithmetic(a Arithmetic) Option {
	if a == nil {
		panic(panicNilStrategy)
	}
	return func(o *Options) { o.arithmetic = a }
}

// WithTransposer injects a custom transpose backend.
func WithTransposer(t Transposer) Option {
	if t == nil {
		panic(panicNilStrategy)
	}
	return func(o *Options) { o.transposer = t }
}

// WithDecomposer injects a custom LU backend.
func WithDecomposer(d Decomposer) Option {
	if d == nil {
		panic(panicNilStrategy)
	}
	return func(o *Options) { o.decomposer = d }
}

// WithInverter injects a custom inverse backend.
func WithInverter(i Inverter) Option {
	if i == nil {
		panic(panicNilStrategy)
	}
	return func(o *Options) { o.inverter = i }
}

// WithLogger attaches a zap logger for debug-level engine events.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}
	return func(o *Options) { o.logger = l }
}

// defaultOptions returns the zero-configuration state.
func defaultOptions() Options {
	return Options{
		parallel:       false,
		workers:        DefaultWorkers,
		minRowsPerTask: DefaultMinRowsPerTask,
		pivot:          DefaultPivotRule,
	}
}

// gatherOptions applies user options over defaults and resolves strategies.
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}
	finalizeOptions(&o)

	return o
}

// finalizeOptions fills every strategy slot not explicitly overridden.
func finalizeOptions(o *Options) {
	if o.logger == nil {
		o.logger = zap.NewNop()
	}
	if o.workers == 0 {
		o.workers = runtime.GOMAXPROCS(0)
	}
	if o.parallel {
		p := &Parallel{Workers: o.workers, MinRowsPerTask: o.minRowsPerTask, Logger: o.logger}
		if o.arithmetic == nil {
			o.arithmetic = p
		}
		if o.transposer == nil {
			o.transposer = p
		}
	}
	if o.arithmetic == nil {
		o.arithmetic = Sequential{}
	}
	if o.transposer == nil {
		o.transposer = Sequential{}
	}
	if o.decomposer == nil {
		o.decomposer = GaussLU{Pivot: o.pivot, Logger: o.logger}
	}
	if o.inverter == nil {
		o.inverter = GaussJordan{Logger: o.logger}
	}
}

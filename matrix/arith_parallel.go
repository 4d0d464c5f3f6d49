// SPDX-License-Identifier: MIT
// Package matrix - data-parallel backend.
//
// Purpose:
//   - Implement Arithmetic and Transposer by splitting work into disjoint,
//     contiguous row runs (splitRows) and running one task per run.
//
// Concurrency:
//   - Each task writes only the rows of its own run, and for zip operations
//     reads only the same rows of the source, so no locks are needed.
//   - errgroup.Group with SetLimit(Workers) bounds concurrency and serves as the
//     join barrier; tasks never suspend or block once dispatched.
//   - Callers must not pass the destination as an operand of a concurrent
//     in-place call.
//
// Determinism:
//   - The same kernels as Sequential run on each run, so results are
//     bitwise identical to the sequential backend.

package matrix

import (
	"runtime"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Parallel is the row-partitioned backend.
// The zero value uses GOMAXPROCS workers, DefaultMinRowsPerTask and a no-op logger.
type Parallel struct {
	Workers        int         // max concurrent tasks; <=0 ⇒ runtime.GOMAXPROCS(0)
	MinRowsPerTask int         // smallest row run per task; <=0 ⇒ DefaultMinRowsPerTask
	Logger         *zap.Logger // debug events for dispatch decisions; nil ⇒ no-op
}

// Compile-time assertions.
var (
	_ Arithmetic = (*Parallel)(nil)
	_ Transposer = (*Parallel)(nil)
)

func (p *Parallel) workers() int {
	if p.Workers <= 0 {
		return runtime.GOMAXPROCS(0)
	}
	return p.Workers
}

func (p *Parallel) minRows() int {
	if p.MinRowsPerTask <= 0 {
		return DefaultMinRowsPerTask
	}
	return p.MinRowsPerTask
}

func (p *Parallel) log() *zap.Logger {
	if p.Logger == nil {
		return zap.NewNop()
	}
	return p.Logger
}

// runs splits rows into the disjoint runs one dispatch will execute.
func (p *Parallel) runs(rows int) []rowRange {
	return splitRows(rows, p.workers(), p.minRows())
}

// dispatch runs fn once per run and waits for all of them; t is the run's
// position in runs. A single run executes inline on the calling goroutine.
func (p *Parallel) dispatch(op string, runs []rowRange, fn func(t, lo, hi int)) {
	rows := runs[len(runs)-1].hi
	if len(runs) == 1 {
		p.log().Debug("sequential fallback",
			zap.String("op", op),
			zap.Int("rows", rows))
		fn(0, runs[0].lo, runs[0].hi)
		return
	}

	p.log().Debug("parallel dispatch",
		zap.String("op", op),
		zap.Int("rows", rows),
		zap.Int("tasks", len(runs)))

	var g errgroup.Group
	g.SetLimit(p.workers())
	for t, r := range runs {
		g.Go(func() error {
			fn(t, r.lo, r.hi)
			return nil
		})
	}
	_ = g.Wait() // tasks are infallible; Wait is the barrier
}

// each is dispatch for kernels that do not care about their run position.
func (p *Parallel) each(op string, rows int, fn func(lo, hi int)) {
	p.dispatch(op, p.runs(rows), func(_, lo, hi int) { fn(lo, hi) })
}

// Apply replaces every element of m with f(element), one task per physical row run.
func (p *Parallel) Apply(m *Dense, f UnaryFunc) error {
	if err := validateDense(m); err != nil {
		return matrixErrorf(opApply, err)
	}
	if f == nil {
		return matrixErrorf(opApply, ErrNilFunc)
	}
	p.each(opApply, m.r, func(lo, hi int) { mapRows(m, f, lo, hi) })

	return nil
}

// ApplyBinary sets dst = f(dst, src) elementwise; each task owns a run of dst rows.
func (p *Parallel) ApplyBinary(dst, src *Dense, f BinaryFunc) error {
	if err := ValidateBinarySameShape(dst, src); err != nil {
		return matrixErrorf(opApplyBinary, err)
	}
	if f == nil {
		return matrixErrorf(opApplyBinary, ErrNilFunc)
	}
	rows, flat := zipRowSpan(dst, src)
	p.each(opApplyBinary, rows, func(lo, hi int) { zipRows(dst, src, f, flat, lo, hi) })

	return nil
}

// ApplyScalar sets m = f(m, s) elementwise over physical row runs.
func (p *Parallel) ApplyScalar(m *Dense, s float64, f BinaryFunc) error {
	if err := validateDense(m); err != nil {
		return matrixErrorf(opApplyScalar, err)
	}
	if f == nil {
		return matrixErrorf(opApplyScalar, ErrNilFunc)
	}
	p.each(opApplyScalar, m.r, func(lo, hi int) { mapScalarRows(m, s, f, lo, hi) })

	return nil
}

// Equal compares logical row runs concurrently; each task records its verdict
// in its own slot.
func (p *Parallel) Equal(a, b *Dense) (bool, error) {
	if err := validateDense(a, b); err != nil {
		return false, matrixErrorf(opEqual, err)
	}
	if !a.HasSameDimensions(b) {
		return false, nil
	}

	runs := p.runs(a.Rows())
	verdicts := make([]bool, len(runs))
	p.dispatch(opEqual, runs, func(t, lo, hi int) { verdicts[t] = equalRows(a, b, lo, hi) })
	for _, ok := range verdicts {
		if !ok {
			return false, nil
		}
	}

	return true, nil
}

// Mul returns a × b; each task computes a run of output rows.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func (p *Parallel) Mul(a, b *Dense) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	rows, inner, cols := a.Rows(), a.Cols(), b.Cols()
	out := newDense(rows, cols)
	av, bv := view(a), view(b)
	p.each(opMul, rows, func(lo, hi int) { gemmRows(av, bv, out.data, inner, cols, lo, hi) })

	return out, nil
}

// Transpose physically rearranges m; each task fills a run of destination rows.
func (p *Parallel) Transpose(m *Dense) error {
	if err := validateDense(m); err != nil {
		return matrixErrorf(opTranspose, err)
	}
	rows, cols := m.Rows(), m.Cols()
	buf := make([]float64, len(m.data))
	src := view(m)
	p.each(opTranspose, cols, func(lo, hi int) { transposeRows(src, buf, rows, lo, hi) })
	m.install(buf, cols, rows)

	return nil
}

// MulByTranspose returns a · bᵀ; each task computes a run of output rows.
func (p *Parallel) MulByTranspose(a, b *Dense) (*Dense, error) {
	if err := validateMulByTranspose(a, b); err != nil {
		return nil, matrixErrorf(opMulByTranspose, err)
	}
	rows, inner, cols := a.Rows(), a.Cols(), b.Rows()
	out := newDense(rows, cols)
	av, bv := view(a), viewT(b)
	p.each(opMulByTranspose, rows, func(lo, hi int) { gemmRows(av, bv, out.data, inner, cols, lo, hi) })

	return out, nil
}

// MulTransposeBy returns aᵀ · b; each task computes a run of output rows.
func (p *Parallel) MulTransposeBy(a, b *Dense) (*Dense, error) {
	if err := validateMulTransposeBy(a, b); err != nil {
		return nil, matrixErrorf(opMulTransposeBy, err)
	}
	rows, inner, cols := a.Cols(), a.Rows(), b.Cols()
	out := newDense(rows, cols)
	av, bv := viewT(a), view(b)
	p.each(opMulTransposeBy, rows, func(lo, hi int) { gemmRows(av, bv, out.data, inner, cols, lo, hi) })

	return out, nil
}

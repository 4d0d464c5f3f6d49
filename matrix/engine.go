// SPDX-License-Identifier: MIT
// Package matrix - Engine: strategy assembly and operation facades.
//
// Purpose:
//   - Bind one Arithmetic, Transposer, Decomposer and Inverter together at
//     construction (NewEngine + Options) instead of through mutable globals.
//   - Expose every operation in two forms: an immutable one that copies its
//     first operand and returns a fresh result, and an in-place one that
//     mutates it. The immutable form always delegates to the in-place logic.
//
// Determinism & Policy:
//   - Facades never change loop orders or numeric policy of the backends.
//   - Validation happens before any copy, so a nil operand never allocates.
//   - Errors carry the facade tag on top of the backend tag: "Add: ApplyBinary: ...".

package matrix

import (
	"errors"

	"go.uber.org/zap"
)

// Operation name constants for facade error wrapping.
const (
	opAdd                = "Add"
	opSub                = "Sub"
	opNeg                = "Neg"
	opScale              = "Scale"
	opDiv                = "Div"
	opNotEqual           = "NotEqual"
	opTransposeInPlace   = "TransposeInPlace"
	opMulBySelfTranspose = "MulBySelfTranspose"
	opMulOwnTransposeBy  = "MulOwnTransposeBy"
	opMatVec             = "MatVec"
)

// Fixed element lambdas behind the derived operations; Add and Scale reuse Sum and Product.
func subFn(a, b float64) float64 { return a - b }
func divFn(a, b float64) float64 { return a / b }
func negFn(v float64) float64    { return -v }

// Engine executes matrix operations through its configured strategies.
// An Engine is immutable after NewEngine and safe for concurrent use as long
// as concurrent calls do not share a mutable destination matrix.
type Engine struct {
	arith  Arithmetic
	trans  Transposer
	decomp Decomposer
	inv    Inverter
	log    *zap.Logger
}

// NewEngine assembles an Engine from defaults overridden by opts.
// With no options it is sequential, uses absolute partial pivoting and logs nothing.
func NewEngine(opts ...Option) *Engine {
	o := gatherOptions(opts...)

	return &Engine{
		arith:  o.arithmetic,
		trans:  o.transposer,
		decomp: o.decomposer,
		inv:    o.inverter,
		log:    o.logger,
	}
}

// ---------- Elementwise (matrix, matrix) ----------

// zip is the shared body of the immutable binary facades.
func (e *Engine) zip(op string, a, b *Dense, f BinaryFunc) (*Dense, error) {
	if err := validateDense(a, b); err != nil {
		return nil, matrixErrorf(op, err)
	}
	out := a.copyLogical()
	if err := e.arith.ApplyBinary(out, b, f); err != nil {
		return nil, matrixErrorf(op, err)
	}

	return out, nil
}

// zipInPlace is the shared body of the in-place binary facades.
func (e *Engine) zipInPlace(op string, dst, src *Dense, f BinaryFunc) error {
	if err := e.arith.ApplyBinary(dst, src, f); err != nil {
		return matrixErrorf(op, err)
	}
	return nil
}

// Add returns a + b. Errors: ErrNilMatrix, ErrDimensionMismatch.
func (e *Engine) Add(a, b *Dense) (*Dense, error) { return e.zip(opAdd, a, b, Sum) }

// AddInPlace sets dst += src.
func (e *Engine) AddInPlace(dst, src *Dense) error { return e.zipInPlace(opAdd, dst, src, Sum) }

// Sub returns a - b. Errors: ErrNilMatrix, ErrDimensionMismatch.
func (e *Engine) Sub(a, b *Dense) (*Dense, error) { return e.zip(opSub, a, b, subFn) }

// SubInPlace sets dst -= src.
func (e *Engine) SubInPlace(dst, src *Dense) error { return e.zipInPlace(opSub, dst, src, subFn) }

// ---------- Elementwise (matrix) and (matrix, scalar) ----------

// Apply returns a copy of m with f applied to every element.
// Errors: ErrNilMatrix, ErrNilFunc.
func (e *Engine) Apply(m *Dense, f UnaryFunc) (*Dense, error) {
	if err := validateDense(m); err != nil {
		return nil, matrixErrorf(opApply, err)
	}
	out := m.copyLogical()
	if err := e.arith.Apply(out, f); err != nil {
		return nil, err
	}

	return out, nil
}

// ApplyInPlace applies f to every element of m.
func (e *Engine) ApplyInPlace(m *Dense, f UnaryFunc) error { return e.arith.Apply(m, f) }

// Neg returns -m.
func (e *Engine) Neg(m *Dense) (*Dense, error) {
	out, err := e.Apply(m, negFn)
	if err != nil {
		return nil, matrixErrorf(opNeg, err)
	}
	return out, nil
}

// NegInPlace negates every element of m.
func (e *Engine) NegInPlace(m *Dense) error {
	if err := e.arith.Apply(m, negFn); err != nil {
		return matrixErrorf(opNeg, err)
	}
	return nil
}

// scalar is the shared body of the immutable scalar facades.
func (e *Engine) scalar(op string, m *Dense, s float64, f BinaryFunc) (*Dense, error) {
	if err := validateDense(m); err != nil {
		return nil, matrixErrorf(op, err)
	}
	out := m.copyLogical()
	if err := e.arith.ApplyScalar(out, s, f); err != nil {
		return nil, matrixErrorf(op, err)
	}

	return out, nil
}

// Scale returns m * s.
func (e *Engine) Scale(m *Dense, s float64) (*Dense, error) { return e.scalar(opScale, m, s, Product) }

// ScaleInPlace sets m *= s.
func (e *Engine) ScaleInPlace(m *Dense, s float64) error {
	if err := e.arith.ApplyScalar(m, s, Product); err != nil {
		return matrixErrorf(opScale, err)
	}
	return nil
}

// Div returns m / s. Division by zero follows IEEE-754 (±Inf or NaN), not an error.
func (e *Engine) Div(m *Dense, s float64) (*Dense, error) { return e.scalar(opDiv, m, s, divFn) }

// DivInPlace sets m /= s.
func (e *Engine) DivInPlace(m *Dense, s float64) error {
	if err := e.arith.ApplyScalar(m, s, divFn); err != nil {
		return matrixErrorf(opDiv, err)
	}
	return nil
}

// ---------- Products & comparison ----------

// Mul returns the matrix product a × b. Errors: ErrNilMatrix, ErrDimensionMismatch.
func (e *Engine) Mul(a, b *Dense) (*Dense, error) { return e.arith.Mul(a, b) }

// Equal reports exact logical equality. Errors: ErrNilMatrix.
func (e *Engine) Equal(a, b *Dense) (bool, error) { return e.arith.Equal(a, b) }

// NotEqual is the negation of Equal with the same error behavior.
func (e *Engine) NotEqual(a, b *Dense) (bool, error) {
	eq, err := e.arith.Equal(a, b)
	if err != nil {
		return false, matrixErrorf(opNotEqual, err)
	}
	return !eq, nil
}

// ---------- Transpose family ----------

// Transpose returns a fresh, untransposed matrix holding mᵀ; m is unchanged.
func (e *Engine) Transpose(m *Dense) (*Dense, error) {
	if err := validateDense(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	out := m.copyLogical()
	if err := e.trans.Transpose(out); err != nil {
		return nil, err
	}

	return out, nil
}

// TransposeInPlace transposes m. With inMemory the flag is flipped in O(1);
// otherwise the buffer is physically rearranged and the flag cleared.
// Both modes leave m value-equal to its logical transpose.
func (e *Engine) TransposeInPlace(m *Dense, inMemory bool) error {
	if err := validateDense(m); err != nil {
		return matrixErrorf(opTransposeInPlace, err)
	}
	if inMemory {
		m.T()
		return nil
	}
	e.log.Debug("physical transpose", zap.Int("rows", m.Rows()), zap.Int("cols", m.Cols()))

	return e.trans.Transpose(m)
}

// MulByTranspose returns a · bᵀ; requires a.Cols() == b.Cols().
func (e *Engine) MulByTranspose(a, b *Dense) (*Dense, error) { return e.trans.MulByTranspose(a, b) }

// MulBySelfTranspose returns m · mᵀ (Rows×Rows, symmetric).
func (e *Engine) MulBySelfTranspose(m *Dense) (*Dense, error) {
	if err := validateDense(m); err != nil {
		return nil, matrixErrorf(opMulBySelfTranspose, err)
	}
	return e.trans.MulByTranspose(m, m)
}

// MulTransposeBy returns aᵀ · b; requires a.Rows() == b.Rows().
func (e *Engine) MulTransposeBy(a, b *Dense) (*Dense, error) { return e.trans.MulTransposeBy(a, b) }

// MulOwnTransposeBy returns mᵀ · m (Cols×Cols, symmetric).
func (e *Engine) MulOwnTransposeBy(m *Dense) (*Dense, error) {
	if err := validateDense(m); err != nil {
		return nil, matrixErrorf(opMulOwnTransposeBy, err)
	}
	return e.trans.MulTransposeBy(m, m)
}

// ---------- Decomposition & inverse ----------

// Decompose factors m as P·m = L·U. Errors: ErrNilMatrix, ErrNonSquare, ErrSingular.
func (e *Engine) Decompose(m *Dense) (*LU, error) { return e.decomp.Decompose(m) }

// Determinant returns det(m). A matrix the decomposer reports as singular has
// determinant 0 and no error.
// Errors: ErrNilMatrix, ErrNonSquare.
func (e *Engine) Determinant(m *Dense) (float64, error) {
	lu, err := e.decomp.Decompose(m)
	if errors.Is(err, ErrSingular) {
		return 0, nil
	}
	if err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}

	return lu.Determinant(), nil
}

// Solve returns x with m·x = b via LU. Errors: those of Decompose and LU.Solve.
func (e *Engine) Solve(m *Dense, b []float64) ([]float64, error) {
	lu, err := e.decomp.Decompose(m)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	return lu.Solve(b)
}

// Inverse returns m⁻¹. Errors: ErrNilMatrix, ErrNonSquare, ErrSingular.
func (e *Engine) Inverse(m *Dense) (*Dense, error) { return e.inv.Inverse(m) }

// MatVec returns y = m·x for len(x) == m.Cols(), routed through the
// Arithmetic backend's Mul with x as a Cols×1 column.
// Errors: ErrNilMatrix (m or x nil), ErrDimensionMismatch.
func (e *Engine) MatVec(m *Dense, x []float64) ([]float64, error) {
	if err := validateDense(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	col := newDense(len(x), 1)
	copy(col.data, x)
	y, err := e.arith.Mul(m, col)
	if err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	return y.data, nil
}

// SPDX-License-Identifier: MIT
// Package matrix - sequential reference backend.
//
// Purpose:
//   - Implement Arithmetic and Transposer on a single goroutine.
//   - Serve as the reference the Parallel backend is tested against: both run
//     the same row kernels (kernels.go), Sequential over one run [0, rows).
//
// Determinism:
//   - Fixed loop orders; products accumulate k = 0..n-1 from zero.

package matrix

// Operation name constants for unified error wrapping.
const (
	opApply          = "Apply"
	opApplyBinary    = "ApplyBinary"
	opApplyScalar    = "ApplyScalar"
	opEqual          = "Equal"
	opMul            = "Mul"
	opTranspose      = "Transpose"
	opMulByTranspose = "MulByTranspose"
	opMulTransposeBy = "MulTransposeBy"
)

// Sequential is the single-goroutine reference backend. The zero value is ready to use.
type Sequential struct{}

// Compile-time assertions.
var (
	_ Arithmetic = Sequential{}
	_ Transposer = Sequential{}
)

// Apply replaces every element of m with f(element).
// Errors: ErrNilMatrix when m or f is nil.
// Complexity: O(r*c).
func (Sequential) Apply(m *Dense, f UnaryFunc) error {
	if err := validateDense(m); err != nil {
		return matrixErrorf(opApply, err)
	}
	if f == nil {
		return matrixErrorf(opApply, ErrNilFunc)
	}
	mapRows(m, f, 0, m.r)

	return nil
}

// ApplyBinary sets dst[i,j] = f(dst[i,j], src[i,j]) over equal logical shapes.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c).
func (Sequential) ApplyBinary(dst, src *Dense, f BinaryFunc) error {
	if err := ValidateBinarySameShape(dst, src); err != nil {
		return matrixErrorf(opApplyBinary, err)
	}
	if f == nil {
		return matrixErrorf(opApplyBinary, ErrNilFunc)
	}
	rows, flat := zipRowSpan(dst, src)
	zipRows(dst, src, f, flat, 0, rows)

	return nil
}

// ApplyScalar sets m[i,j] = f(m[i,j], s). No shape constraint.
// Errors: ErrNilMatrix.
func (Sequential) ApplyScalar(m *Dense, s float64, f BinaryFunc) error {
	if err := validateDense(m); err != nil {
		return matrixErrorf(opApplyScalar, err)
	}
	if f == nil {
		return matrixErrorf(opApplyScalar, ErrNilFunc)
	}
	mapScalarRows(m, s, f, 0, m.r)

	return nil
}

// Equal reports whether a and b have the same logical shape and identical
// logical elements (exact float comparison, no tolerance).
// Errors: ErrNilMatrix when either operand is nil.
func (Sequential) Equal(a, b *Dense) (bool, error) {
	if err := validateDense(a, b); err != nil {
		return false, matrixErrorf(opEqual, err)
	}
	if !a.HasSameDimensions(b) {
		return false, nil
	}

	return equalRows(a, b, 0, a.Rows()), nil
}

// Mul returns the fresh, untransposed product a × b.
// Implementation:
//   - Stage 1: validate non-nil and a.Cols == b.Rows.
//   - Stage 2: run gemmRows over all output rows with strided operand views,
//     so transposed operands participate without a copy.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: Time O(n*m*p), Space O(n*p).
func (Sequential) Mul(a, b *Dense) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	rows, inner, cols := a.Rows(), a.Cols(), b.Cols()
	out := newDense(rows, cols)
	gemmRows(view(a), view(b), out.data, inner, cols, 0, rows)

	return out, nil
}

// Transpose physically rearranges m into an untransposed buffer holding its
// logical transpose. The flag is cleared and the physical shape swapped.
// Complexity: Time O(r*c), Space O(r*c) for the new buffer.
func (Sequential) Transpose(m *Dense) error {
	if err := validateDense(m); err != nil {
		return matrixErrorf(opTranspose, err)
	}
	rows, cols := m.Rows(), m.Cols()
	buf := make([]float64, len(m.data))
	transposeRows(view(m), buf, rows, 0, cols)
	m.install(buf, cols, rows)

	return nil
}

// MulByTranspose returns a · bᵀ without building bᵀ.
// Requires a.Cols == b.Cols; the result is a.Rows × b.Rows.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func (Sequential) MulByTranspose(a, b *Dense) (*Dense, error) {
	if err := validateMulByTranspose(a, b); err != nil {
		return nil, matrixErrorf(opMulByTranspose, err)
	}
	rows, inner, cols := a.Rows(), a.Cols(), b.Rows()
	out := newDense(rows, cols)
	gemmRows(view(a), viewT(b), out.data, inner, cols, 0, rows)

	return out, nil
}

// MulTransposeBy returns aᵀ · b without building aᵀ.
// Requires a.Rows == b.Rows; the result is a.Cols × b.Cols.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func (Sequential) MulTransposeBy(a, b *Dense) (*Dense, error) {
	if err := validateMulTransposeBy(a, b); err != nil {
		return nil, matrixErrorf(opMulTransposeBy, err)
	}
	rows, inner, cols := a.Cols(), a.Rows(), b.Cols()
	out := newDense(rows, cols)
	gemmRows(viewT(a), view(b), out.data, inner, cols, 0, rows)

	return out, nil
}

// install swaps in a freshly built untransposed buffer with physical shape rows×cols.
func (m *Dense) install(buf []float64, rows, cols int) {
	m.data = buf
	m.r, m.c = rows, cols
	m.transposed = false
}

// validateMulByTranspose – Composite: NotNil → a.Cols == b.Cols.
func validateMulByTranspose(a, b *Dense) error {
	if err := validateDense(a, b); err != nil {
		return err
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateMulByTranspose", ErrDimensionMismatch)
	}
	return nil
}

// validateMulTransposeBy – Composite: NotNil → a.Rows == b.Rows.
func validateMulTransposeBy(a, b *Dense) error {
	if err := validateDense(a, b); err != nil {
		return err
	}
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateMulTransposeBy", ErrDimensionMismatch)
	}
	return nil
}

// SPDX-License-Identifier: MIT
// Package matrix - logical row and column exchanges.
//
// Both forms exist: methods mutate the receiver, package functions copy first
// and swap the copy. Indices are validated before any write, so a failed call
// leaves the matrix untouched.

package matrix

const (
	ctxSwapRows    = "SwapRows"
	ctxSwapColumns = "SwapColumns"
)

// SwapRows exchanges logical rows r1 and r2. Equal indices are a no-op.
// Errors: ErrOutOfRange when either index is outside [0, Rows()).
// Complexity: O(Cols()).
func (m *Dense) SwapRows(r1, r2 int) error {
	rows := m.Rows()
	if r1 < 0 || r1 >= rows || r2 < 0 || r2 >= rows {
		return denseErrorf(ctxSwapRows, r1, r2, ErrOutOfRange)
	}
	if r1 == r2 {
		return nil
	}
	rs, cs := m.strides()
	a, b := r1*rs, r2*rs
	for j, cols := 0, m.Cols(); j < cols; j++ {
		m.data[a+j*cs], m.data[b+j*cs] = m.data[b+j*cs], m.data[a+j*cs]
	}

	return nil
}

// SwapColumns exchanges logical columns c1 and c2. Equal indices are a no-op.
// Errors: ErrOutOfRange when either index is outside [0, Cols()).
// Complexity: O(Rows()).
func (m *Dense) SwapColumns(c1, c2 int) error {
	cols := m.Cols()
	if c1 < 0 || c1 >= cols || c2 < 0 || c2 >= cols {
		return denseErrorf(ctxSwapColumns, c1, c2, ErrOutOfRange)
	}
	if c1 == c2 {
		return nil
	}
	rs, cs := m.strides()
	a, b := c1*cs, c2*cs
	for i, rows := 0, m.Rows(); i < rows; i++ {
		m.data[a+i*rs], m.data[b+i*rs] = m.data[b+i*rs], m.data[a+i*rs]
	}

	return nil
}

// SwapRows returns a copy of m with logical rows r1 and r2 exchanged.
// Errors: ErrNilMatrix, ErrOutOfRange.
func SwapRows(m *Dense, r1, r2 int) (*Dense, error) {
	if err := validateDense(m); err != nil {
		return nil, matrixErrorf(ctxSwapRows, err)
	}
	out := m.copyLogical()
	if err := out.SwapRows(r1, r2); err != nil {
		return nil, err
	}

	return out, nil
}

// SwapColumns returns a copy of m with logical columns c1 and c2 exchanged.
// Errors: ErrNilMatrix, ErrOutOfRange.
func SwapColumns(m *Dense, c1, c2 int) (*Dense, error) {
	if err := validateDense(m); err != nil {
		return nil, matrixErrorf(ctxSwapColumns, err)
	}
	out := m.copyLogical()
	if err := out.SwapColumns(c1, c2); err != nil {
		return nil, err
	}

	return out, nil
}

// SPDX-License-Identifier: MIT
// Package matrix - shape operations: Join, Extract, ExtractAt, Reshape.
//
// Purpose:
//   - Build new matrices out of logical blocks of existing ones.
//   - Every result is fresh and untransposed; inputs are never modified.
//
// Error priority (matches the rest of the package):
//   - nil operand → unknown dimension / bad start index → non-positive size → window fit.

package matrix

const (
	opJoin      = "Join"
	opExtract   = "Extract"
	opExtractAt = "ExtractAt"
	opReshape   = "Reshape"
)

// copyBlock writes the rows×cols logical block of src starting at (sr, sc)
// into the untransposed dst at (dr, dc). Callers have validated the bounds.
func copyBlock(dst *Dense, dr, dc int, src *Dense, sr, sc, rows, cols int) {
	sv := view(src)
	var i, j, base int
	for i = 0; i < rows; i++ {
		base = (dr+i)*dst.c + dc
		for j = 0; j < cols; j++ {
			dst.data[base+j] = sv.at(sr+i, sc+j)
		}
	}
}

// Join concatenates a and b along dim.
//   - DimRows stacks b's rows under a's; requires equal column counts.
//   - DimColumns appends b's columns to a's; requires equal row counts.
//   - DimAuto picks DimColumns when row counts match, else DimRows.
//
// Errors: ErrNilMatrix, ErrUnknownDimension, ErrDimensionMismatch.
// Complexity: O(size(a) + size(b)).
func Join(a, b *Dense, dim Dimension) (*Dense, error) {
	if err := validateDense(a, b); err != nil {
		return nil, matrixErrorf(opJoin, err)
	}
	if err := validateDimension(dim); err != nil {
		return nil, matrixErrorf(opJoin, err)
	}
	if dim == DimAuto {
		dim = DimRows
		if a.Rows() == b.Rows() {
			dim = DimColumns
		}
	}

	ar, ac := a.Shape()
	br, bc := b.Shape()
	var out *Dense
	switch dim {
	case DimRows:
		if ac != bc {
			return nil, matrixErrorf(opJoin, ErrDimensionMismatch)
		}
		out = newDense(ar+br, ac)
		copyBlock(out, 0, 0, a, 0, 0, ar, ac)
		copyBlock(out, ar, 0, b, 0, 0, br, bc)
	default: // DimColumns
		if ar != br {
			return nil, matrixErrorf(opJoin, ErrDimensionMismatch)
		}
		out = newDense(ar, ac+bc)
		copyBlock(out, 0, 0, a, 0, 0, ar, ac)
		copyBlock(out, 0, ac, b, 0, 0, br, bc)
	}

	return out, nil
}

// Extract copies the rows×cols block whose top-left element sits at logical
// flat index start, i.e. at (start / Cols(), start % Cols()).
// Errors: ErrNilMatrix, ErrOutOfRange (start ∉ [0, Size())),
// ErrInvalidDimensions (rows or cols < 1), ErrDimensionMismatch (block does not fit).
func Extract(m *Dense, start, rows, cols int) (*Dense, error) {
	if err := validateDense(m); err != nil {
		return nil, matrixErrorf(opExtract, err)
	}
	if start < 0 || start >= m.Size() {
		return nil, matrixErrorf(opExtract, ErrOutOfRange)
	}
	mc := m.Cols()
	out, err := extractAt(m, start/mc, start%mc, rows, cols)
	if err != nil {
		return nil, matrixErrorf(opExtract, err)
	}

	return out, nil
}

// ExtractAt copies the rows×cols block whose top-left element is (startRow, startCol).
// Errors: ErrNilMatrix, ErrOutOfRange, ErrInvalidDimensions, ErrDimensionMismatch.
// Complexity: O(rows*cols).
func ExtractAt(m *Dense, startRow, startCol, rows, cols int) (*Dense, error) {
	if err := validateDense(m); err != nil {
		return nil, matrixErrorf(opExtractAt, err)
	}
	if startRow < 0 || startRow >= m.Rows() || startCol < 0 || startCol >= m.Cols() {
		return nil, matrixErrorf(opExtractAt, ErrOutOfRange)
	}
	out, err := extractAt(m, startRow, startCol, rows, cols)
	if err != nil {
		return nil, matrixErrorf(opExtractAt, err)
	}

	return out, nil
}

// extractAt assumes a valid start and checks the block size and fit.
func extractAt(m *Dense, sr, sc, rows, cols int) (*Dense, error) {
	if rows < 1 || cols < 1 {
		return nil, ErrInvalidDimensions
	}
	if sr+rows > m.Rows() || sc+cols > m.Cols() {
		return nil, ErrDimensionMismatch
	}
	out := newDense(rows, cols)
	copyBlock(out, 0, 0, m, sr, sc, rows, cols)

	return out, nil
}

// Reshape reinterprets the rows*cols elements of m's logical flat order that
// begin at start as a new rows×cols matrix.
// Errors: ErrNilMatrix, ErrOutOfRange (start ∉ [0, Size())),
// ErrInvalidDimensions, ErrDimensionMismatch (window runs past Size()).
// Complexity: O(rows*cols).
func Reshape(m *Dense, start, rows, cols int) (*Dense, error) {
	if err := validateDense(m); err != nil {
		return nil, matrixErrorf(opReshape, err)
	}
	size := m.Size()
	if start < 0 || start >= size {
		return nil, matrixErrorf(opReshape, ErrOutOfRange)
	}
	if rows < 1 || cols < 1 {
		return nil, matrixErrorf(opReshape, ErrInvalidDimensions)
	}
	n := rows * cols
	if start+n > size {
		return nil, matrixErrorf(opReshape, ErrDimensionMismatch)
	}

	out := newDense(rows, cols)
	if !m.transposed {
		copy(out.data, m.data[start:start+n])
		return out, nil
	}
	mc := m.Cols()
	for k := 0; k < n; k++ {
		out.data[k] = m.data[m.offset((start+k)/mc, (start+k)%mc)]
	}

	return out, nil
}

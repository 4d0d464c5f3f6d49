// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & transpose-aware accessors.
//
// Purpose:
//   - Provide a cache-friendly flat buffer with fixed physical dimensions.
//   - Support an O(1) logical transpose: a flag that swaps the meaning of rows
//     and columns without touching the buffer.
//   - Keep the two index formulas in ONE place (offset); every accessor uses it.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//
// Index formulas (physical r×c buffer):
//   - untransposed: offset(i, j) = i*c + j
//   - transposed:   offset(i, j) = j*c' + i, where c' is the PHYSICAL row count r
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set/AtFlat/SetFlat: O(1); T: O(1); Clone: O(r*c).

package matrix

import (
	"fmt"
)

// ---------- error context tags ----------

const (
	ctxAt      = "At"      // method tag used in error wrappers
	ctxSet     = "Set"     // method tag used in error wrappers
	ctxAtFlat  = "AtFlat"  // method tag used in error wrappers
	ctxSetFlat = "SetFlat" // method tag used in error wrappers
)

// Dense is a concrete row-major matrix with a logical transpose flag.
//   - r,c hold the PHYSICAL dimensions fixed at construction.
//   - data is a flat buffer of length r*c; its length never changes.
//   - transposed swaps logical rows/columns; it never changes data, r or c.
type Dense struct {
	r, c       int       // physical row and column counts (>=1)
	data       []float64 // contiguous storage (len == r*c)
	transposed bool      // logical view is the transpose of the physical layout
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix.
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate a zero-filled buffer.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return newDense(rows, cols), nil
}

// newDense allocates without validation; callers guarantee rows,cols >= 1.
func newDense(rows, cols int) *Dense {
	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}
}

// NewDenseFilled creates an r×c matrix with every element set to v.
// Errors: ErrInvalidDimensions.
func NewDenseFilled(rows, cols int, v float64) (*Dense, error) {
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	m.Fill(v)

	return m, nil
}

// NewSquare creates an n×n zero matrix.
// Errors: ErrInvalidDimensions.
func NewSquare(n int) (*Dense, error) { return NewDense(n, n) }

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Determinism: fixed i-loop; single write per diagonal cell.
// Complexity: O(n^2) zeroing (constructor) + O(n) writes on the diagonal.
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1.0
	}

	return I, nil
}

// NewDenseFromRows converts a rectangular literal into a Dense.
// Implementation:
//   - Stage 1: reject nil (ErrNilMatrix) and empty input (ErrInvalidDimensions).
//   - Stage 2: require every row to have len(rows[0]) > 0 elements.
//   - Stage 3: copy row by row into the flat buffer.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimensions, ErrDimensionMismatch (ragged rows).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDenseFromRows(rows [][]float64) (*Dense, error) {
	if rows == nil {
		return nil, ErrNilMatrix
	}
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	r, c := len(rows), len(rows[0])
	for i := 1; i < r; i++ {
		if len(rows[i]) != c {
			return nil, fmt.Errorf("row %d has %d columns, want %d: %w", i, len(rows[i]), c, ErrDimensionMismatch)
		}
	}
	m := newDense(r, c)
	for i := 0; i < r; i++ {
		copy(m.data[i*c:(i+1)*c], rows[i])
	}

	return m, nil
}

// NewDenseFromData converts a flat row-major buffer into a rows×cols Dense.
// The buffer is copied; the caller keeps ownership of data.
//
// Errors:
//   - ErrNilMatrix when data is nil.
//   - ErrInvalidDimensions when rows<1 or cols<1.
//   - ErrDimensionMismatch when len(data) != rows*cols.
func NewDenseFromData(data []float64, rows, cols int) (*Dense, error) {
	if data == nil {
		return nil, ErrNilMatrix
	}
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("buffer length %d, want %d: %w", len(data), rows*cols, ErrDimensionMismatch)
	}
	m := newDense(rows, cols)
	copy(m.data, data)

	return m, nil
}

// NewDenseFrom copies any Matrix into a new, untransposed Dense.
// The copy is laid out in the source's logical row-major order, so it is
// value-equal to the source even when the source carries a transpose flag.
//
// Errors:
//   - ErrNilMatrix for a nil interface or a typed-nil *Dense.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDenseFrom(src Matrix) (*Dense, error) {
	if err := ValidateNotNil(src); err != nil {
		return nil, err
	}
	if d, ok := src.(*Dense); ok {
		return d.copyLogical(), nil
	}

	rows, cols := src.Rows(), src.Cols()
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	m := newDense(rows, cols)
	var (
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = src.At(i, j); err != nil {
				return nil, err
			}
			m.data[i*cols+j] = v
		}
	}

	return m, nil
}

// copyLogical returns an untransposed copy in logical row-major order.
// Untransposed sources take the single-copy fast path.
func (m *Dense) copyLogical() *Dense {
	if !m.transposed {
		cp := &Dense{r: m.r, c: m.c, data: make([]float64, len(m.data))}
		copy(cp.data, m.data)
		return cp
	}
	rows, cols := m.Rows(), m.Cols()
	cp := newDense(rows, cols)
	var i, j, base int
	for i = 0; i < rows; i++ {
		base = i * cols
		for j = 0; j < cols; j++ {
			cp.data[base+j] = m.data[m.offset(i, j)]
		}
	}

	return cp
}

// Rows returns the logical row count.
func (m *Dense) Rows() int {
	if m.transposed {
		return m.c
	}
	return m.r
}

// Cols returns the logical column count.
func (m *Dense) Cols() int {
	if m.transposed {
		return m.r
	}
	return m.c
}

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense) Shape() (rows, cols int) { return m.Rows(), m.Cols() }

// PhysicalShape returns the storage dimensions fixed at construction.
func (m *Dense) PhysicalShape() (rows, cols int) { return m.r, m.c }

// Size returns rows*cols; it does not depend on the transpose flag.
func (m *Dense) Size() int { return len(m.data) }

// IsTransposed reports whether the logical view is the transpose of the buffer.
func (m *Dense) IsTransposed() bool { return m.transposed }

// T flips the logical transpose flag in place. O(1), no allocation.
func (m *Dense) T() { m.transposed = !m.transposed }

// HasSameDimensions reports whether logical Rows and Cols both match.
// A nil other never matches.
func (m *Dense) HasSameDimensions(other *Dense) bool {
	if other == nil {
		return false
	}
	return m.Rows() == other.Rows() && m.Cols() == other.Cols()
}

// offset maps a logical (row, col) to its physical position in data.
// It is the single source of truth for the transpose-aware index formula;
// callers have already validated the coordinates.
func (m *Dense) offset(row, col int) int {
	rs, cs := m.strides()
	return row*rs + col*cs
}

// strides returns the physical step between logical rows and logical columns.
// Untransposed: (c, 1). Transposed: (1, c), i.e. offset(i, j) = j*c + i.
// Row kernels hoist these out of their loops instead of calling offset per element.
func (m *Dense) strides() (rowStride, colStride int) {
	if m.transposed {
		return 1, m.c
	}
	return m.c, 1
}

// indexOf bounds-checks logical (row, col) and returns the physical offset.
// Returns the plain ErrOutOfRange sentinel; public methods add context.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.Rows() {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.Cols() {
		return 0, ErrOutOfRange
	}

	return m.offset(row, col), nil
}

// flatOffset maps a logical row-major flat index to a physical offset.
// Untransposed matrices share logical and physical order, so k is returned as is.
func (m *Dense) flatOffset(k int) (int, error) {
	if k < 0 || k >= len(m.data) {
		return 0, ErrOutOfRange
	}
	if !m.transposed {
		return k, nil
	}
	cols := m.Cols()

	return m.offset(k/cols, k%cols), nil
}

// At returns the value at logical (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at logical (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v

	return nil
}

// AtFlat returns the k-th element in logical row-major order, k ∈ [0, Size()).
// For a transposed matrix k is decomposed into (k / Cols(), k % Cols()) first,
// so flat traversal always follows the logical layout.
func (m *Dense) AtFlat(k int) (float64, error) {
	off, err := m.flatOffset(k)
	if err != nil {
		return 0, fmt.Errorf("Dense.%s(%d): %w", ctxAtFlat, k, err)
	}

	return m.data[off], nil
}

// SetFlat stores v at the k-th element in logical row-major order.
func (m *Dense) SetFlat(k int, v float64) error {
	off, err := m.flatOffset(k)
	if err != nil {
		return fmt.Errorf("Dense.%s(%d): %w", ctxSetFlat, k, err)
	}
	m.data[off] = v

	return nil
}

// Clone returns a deep, untransposed, value-equal copy.
// The returned dynamic type is *Dense.
func (m *Dense) Clone() Matrix { return m.copyLogical() }

// Copy is the typed twin of Clone.
func (m *Dense) Copy() *Dense { return m.copyLogical() }

// sameLayout reports whether a and b can be walked in lock-step over their
// raw buffers: same physical shape and same transpose flag.
func sameLayout(a, b *Dense) bool {
	return a.r == b.r && a.c == b.c && a.transposed == b.transposed
}

// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by the storage core and the engines.
// This file contains ONLY types: the read/write Matrix surface, the Dimension
// selector, the element function shapes, and the pluggable strategy
// interfaces the Engine is assembled from. Errors and options live in
// dedicated files (errors.go, options.go).
package matrix

// Matrix represents a two-dimensional mutable array of float64 values.
// *Dense is the package's implementation; the interface lets helpers such as
// NewDenseFrom and matrixtest.AllClose accept any conforming value.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of logical rows in the matrix.
	Rows() int

	// Cols returns the number of logical columns in the matrix.
	Cols() int

	// At retrieves the element at logical position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// Set assigns the value v at logical position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	Clone() Matrix
}

// Dimension selects the axis an operation works along.
type Dimension int

const (
	// DimAuto lets the operation pick the axis from the operand shapes.
	DimAuto Dimension = iota
	// DimRows stacks rows (Join) or collapses each row into one value (reductions).
	DimRows
	// DimColumns appends columns (Join) or collapses each column into one value (reductions).
	DimColumns
)

// String implements fmt.Stringer for diagnostics.
func (d Dimension) String() string {
	switch d {
	case DimAuto:
		return "Auto"
	case DimRows:
		return "Rows"
	case DimColumns:
		return "Columns"
	default:
		return "Unknown"
	}
}

// UnaryFunc maps one element to its replacement.
type UnaryFunc func(v float64) float64

// BinaryFunc combines two values: an element with its counterpart (or a
// scalar), or an accumulator with the next element in a fold.
type BinaryFunc func(a, b float64) float64

// VectorFunc reduces a whole row or column vector to a single value.
type VectorFunc func(v *Dense) float64

// Arithmetic is the elementwise and multiplication backend.
// Implementations must honor the logical (transpose-aware) view of every
// operand and must never retain references to their arguments.
type Arithmetic interface {
	// Apply replaces every element of m with f(element), in place.
	Apply(m *Dense, f UnaryFunc) error
	// ApplyBinary sets dst[i,j] = f(dst[i,j], src[i,j]) for equal logical shapes.
	ApplyBinary(dst, src *Dense, f BinaryFunc) error
	// ApplyScalar sets m[i,j] = f(m[i,j], s), in place.
	ApplyScalar(m *Dense, s float64, f BinaryFunc) error
	// Equal reports exact structural equality of two matrices.
	Equal(a, b *Dense) (bool, error)
	// Mul returns the fresh, untransposed product a × b.
	Mul(a, b *Dense) (*Dense, error)
}

// Transposer is the physical transpose and fused transpose-product backend.
type Transposer interface {
	// Transpose physically rearranges m so that its untransposed layout equals
	// the transpose of its previous logical layout.
	Transpose(m *Dense) error
	// MulByTranspose returns a · bᵀ without materializing bᵀ.
	MulByTranspose(a, b *Dense) (*Dense, error)
	// MulTransposeBy returns aᵀ · b without materializing aᵀ.
	MulTransposeBy(a, b *Dense) (*Dense, error)
}

// Decomposer produces an LU factorization with row pivoting.
type Decomposer interface {
	Decompose(m *Dense) (*LU, error)
}

// Inverter produces a full matrix inverse.
type Inverter interface {
	Inverse(m *Dense) (*Dense, error)
}

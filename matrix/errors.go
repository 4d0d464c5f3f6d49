// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package and the two wrapping helpers every kernel reports through. All
// algorithms MUST return these sentinels and tests MUST check them via
// errors.Is. No algorithm panics on user-triggered error conditions.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Kernels wrap with matrixErrorf(op, ErrX) so the
// surface reads "<Op>: matrix: ..."; callers still match with errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// nil operand -> shape/index -> dimension mismatch -> singular content.

var (
	// ErrNilMatrix indicates that a nil Matrix (receiver, argument or buffer) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	// Constructors validate before allocation; no instance escapes on failure.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that a row, column, flat or swap index is outside
	// the logical bounds. Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operand shapes, e.g. Add with
	// different shapes, Mul where a.Cols != b.Rows, or an Extract window that
	// does not fit.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	// It wraps ErrDimensionMismatch, so errors.Is matches either sentinel.
	ErrNonSquare = fmt.Errorf("matrix: matrix is not square: %w", ErrDimensionMismatch)

	// ErrSingular is returned when decomposition or inversion cannot find a usable
	// pivot. The shape was valid; the content is degenerate.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrNilFunc indicates that a nil element function or reducer was supplied.
	ErrNilFunc = errors.New("matrix: nil function")

	// ErrUnknownDimension marks a Dimension value outside {DimRows, DimColumns, DimAuto}.
	ErrUnknownDimension = errors.New("matrix: unknown dimension")

	// ErrNaNInf rejects a non-finite clip bound, replacement value or tolerance.
	ErrNaNInf = errors.New("matrix: NaN or Inf not allowed")
)

// ErrIndexOutOfBounds historically named the same condition as ErrOutOfRange.
// Keep it as an alias so errors.Is(err, ErrIndexOutOfBounds) remains true.
var ErrIndexOutOfBounds = ErrOutOfRange // Deprecated: use ErrOutOfRange.

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting across facades.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// Complexity: O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// The result formats as "Dense.<method>(row,col): <cause>".
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// SPDX-License-Identifier: MIT
// Package matrix - sanitizing and tolerance helpers.
//
// Purpose:
//   - Clamp or scrub element values through the engine's Apply backend.
//   - Compare two matrices within a mixed absolute/relative tolerance.
//
// Policy:
//   - Bounds, replacement values and tolerances must be finite (ErrNaNInf).
//   - Negative tolerances are normalized to their absolute value.
//   - Clip swaps lo and hi when given in the wrong order.

package matrix

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

const (
	opClip          = "Clip"
	opReplaceInfNaN = "ReplaceInfNaN"
	opAllClose      = "AllClose"
)

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Clip returns a copy of m with every element clamped into [lo, hi].
// Errors: ErrNilMatrix, ErrNaNInf.
func (e *Engine) Clip(m *Dense, lo, hi float64) (*Dense, error) {
	if !finite(lo, hi) {
		return nil, matrixErrorf(opClip, ErrNaNInf)
	}
	if lo > hi {
		lo, hi = hi, lo
	}
	out, err := e.Apply(m, func(v float64) float64 {
		if v < lo {
			return lo
		}
		if v > hi {
			return hi
		}
		return v
	})
	if err != nil {
		return nil, matrixErrorf(opClip, err)
	}

	return out, nil
}

// ReplaceInfNaN returns a copy of m with every NaN or ±Inf replaced by val.
// Errors: ErrNilMatrix, ErrNaNInf (val itself not finite).
func (e *Engine) ReplaceInfNaN(m *Dense, val float64) (*Dense, error) {
	if !finite(val) {
		return nil, matrixErrorf(opReplaceInfNaN, ErrNaNInf)
	}
	out, err := e.Apply(m, func(v float64) float64 {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return val
		}
		return v
	})
	if err != nil {
		return nil, matrixErrorf(opReplaceInfNaN, err)
	}

	return out, nil
}

// AllClose reports whether a and b have the same logical shape and every
// pair of elements satisfies |a-b| <= atol or |a-b| <= rtol*max(|a|,|b|).
// Layouts may differ; elements are compared in logical order.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf (tolerance).
//
// Complexity: O(r*c), early exit on the first violation.
func AllClose(a, b *Dense, rtol, atol float64) (bool, error) {
	if !finite(rtol, atol) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	ar, ac := a.strides()
	br, bc := b.strides()
	rows, cols := a.Shape()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			x, y := a.data[i*ar+j*ac], b.data[i*br+j*bc]
			if !scalar.EqualWithinAbsOrRel(x, y, atol, rtol) {
				return false, nil
			}
		}
	}

	return true, nil
}

// SPDX-License-Identifier: MIT
// Package matrixtest provides test-only helpers for the matrix package:
// fixture builders that fail the test on error and tolerance-based
// comparisons. Exact structural equality stays in matrix.Equal; approximate
// comparison lives here because it is a testing concern, not part of the
// engine's contract.
package matrixtest

import (
	"fmt"
	"math"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/katalvlaran/dense/matrix"
)

// Flatten reads m in logical row-major order through the Matrix interface.
func Flatten(m matrix.Matrix) ([]float64, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, err
	}
	r, c := m.Rows(), m.Cols()
	out := make([]float64, 0, r*c)
	var (
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, err
			}
			out = append(out, v)
		}
	}

	return out, nil
}

// AllClose reports whether a and b have the same logical shape and every
// element pair satisfies |a-b| ≤ atol or |a-b| ≤ rtol*max(|a|,|b|).
// Negative tolerances are normalized; NaN or Inf tolerances are rejected.
func AllClose(a, b matrix.Matrix, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, fmt.Errorf("AllClose: invalid tolerance rtol=%g atol=%g", rtol, atol)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	av, err := Flatten(a)
	if err != nil {
		return false, fmt.Errorf("AllClose: %w", err)
	}
	bv, err := Flatten(b)
	if err != nil {
		return false, fmt.Errorf("AllClose: %w", err)
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false, fmt.Errorf("AllClose: %w", matrix.ErrDimensionMismatch)
	}
	if !floats.EqualLengths(av, bv) {
		return false, nil
	}
	for k := range av {
		if !scalar.EqualWithinAbsOrRel(av[k], bv[k], atol, rtol) {
			return false, nil
		}
	}

	return true, nil
}

// RequireAllClose fails the test unless AllClose(want, got, rtol, atol) holds.
func RequireAllClose(t require.TestingT, want, got matrix.Matrix, rtol, atol float64, msgAndArgs ...interface{}) {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	ok, err := AllClose(want, got, rtol, atol)
	require.NoError(t, err, msgAndArgs...)
	if !ok {
		wv, _ := Flatten(want)
		gv, _ := Flatten(got)
		require.Failf(t, "matrices differ beyond tolerance",
			"rtol=%g atol=%g\nwant: %v\ngot:  %v", rtol, atol, wv, gv)
	}
}

// RequireRows fails the test unless got's logical contents equal want exactly.
func RequireRows(t require.TestingT, want [][]float64, got *matrix.Dense, msgAndArgs ...interface{}) {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	require.NotNil(t, got, msgAndArgs...)
	require.Equal(t, want, got.ToRows(), msgAndArgs...)
}

// MustDense allocates an r×c zero matrix or fails the test.
func MustDense(t require.TestingT, r, c int) *matrix.Dense {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err)

	return m
}

// MustFromRows builds a matrix from a rectangular literal or fails the test.
func MustFromRows(t require.TestingT, rows [][]float64) *matrix.Dense {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return m
}

// MustRandom builds an r×c matrix filled with FillRandom(seed) or fails the test.
func MustRandom(t require.TestingT, r, c int, seed int64) *matrix.Dense {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	m := MustDense(t, r, c)
	m.FillRandom(seed)

	return m
}

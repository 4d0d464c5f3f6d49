// SPDX-License-Identifier: MIT
// Package matrix - LU decomposition with partial pivoting.
//
// Purpose:
//   - Factor a square A into a combined L/U buffer plus a row permutation so
//     that P·A = L·U, where L is unit lower triangular and U upper triangular.
//   - Track the pivot parity (Toggle) for determinant sign calculations.
//
// Layout of LU.LU (n×n, untransposed):
//   - strictly below the diagonal: L's multipliers (L's unit diagonal is implicit)
//   - diagonal and above: U
//
// Determinism:
//   - Fixed column order c = 0..n-2; ties in the pivot search keep the earlier row.

package matrix

import (
	"fmt"
	"math"

	"go.uber.org/zap"
)

// PivotEpsilon is the magnitude below which a pivot is considered zero.
const PivotEpsilon = 1e-20

const (
	opDecompose   = "Decompose"
	opDeterminant = "Determinant"
	opSolve       = "Solve"
)

// PivotRule selects how the pivot search ranks candidate rows.
type PivotRule int

const (
	// PivotAbsolute picks the row with the largest |value| in the pivot column
	// (standard partial pivoting).
	PivotAbsolute PivotRule = iota
	// PivotSigned picks the row with the largest signed value. A large negative
	// candidate never wins. Kept for compatibility with signed-comparison callers.
	PivotSigned
)

// String implements fmt.Stringer.
func (r PivotRule) String() string {
	switch r {
	case PivotAbsolute:
		return "absolute"
	case PivotSigned:
		return "signed"
	default:
		return fmt.Sprintf("PivotRule(%d)", int(r))
	}
}

// LU is the result of a decomposition.
type LU struct {
	LU     *Dense // combined factors, see package comment
	Perm   []int  // Perm[i] is the original row now at position i
	Toggle int    // +1 or -1: parity of the row swaps performed
}

// GaussLU is the Doolittle-style elimination backend with row pivoting.
type GaussLU struct {
	Pivot  PivotRule   // pivot comparison; zero value is PivotAbsolute
	Logger *zap.Logger // debug events for pivots and failures; nil ⇒ no-op
}

var _ Decomposer = GaussLU{}

// Decompose factors m.
// Implementation:
//   - Stage 1: validate square; copy m (logical layout) into the working buffer;
//     Perm = identity, Toggle = 1.
//   - Stage 2: for c = 0..n-2 pick the pivot row in [c, n) per the PivotRule;
//     swap it into place (buffer, Perm, Toggle).
//   - Stage 3: reject |pivot| < PivotEpsilon with ErrSingular.
//   - Stage 4: for each i > c: a[i,c] /= a[c,c]; a[i,k] -= a[i,c]*a[c,k] for k > c.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func (g GaussLU) Decompose(m *Dense) (*LU, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opDecompose, err)
	}
	log := g.Logger
	if log == nil {
		log = zap.NewNop()
	}

	res := m.copyLogical()
	n := res.r
	a := res.data
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	toggle := 1

	var (
		c, i, k, p  int
		best, cand  float64
		pivot, mult float64
		rowC, rowI  int
	)
	for c = 0; c < n-1; c++ {
		// Stage 2: pivot search over rows [c, n).
		p = c
		best = g.rank(a[c*n+c])
		for i = c + 1; i < n; i++ {
			cand = g.rank(a[i*n+c])
			if cand > best {
				best = cand
				p = i
			}
		}
		if p != c {
			swapRawRows(a, n, c, p)
			perm[c], perm[p] = perm[p], perm[c]
			toggle = -toggle
			log.Debug("lu pivot", zap.Int("column", c), zap.Int("row", p))
		}

		// Stage 3: reject a vanishing pivot.
		rowC = c * n
		pivot = a[rowC+c]
		if math.Abs(pivot) < PivotEpsilon {
			log.Debug("lu singular pivot", zap.Int("column", c), zap.Float64("pivot", pivot))
			return nil, matrixErrorf(opDecompose, ErrSingular)
		}

		// Stage 4: eliminate below the pivot.
		for i = c + 1; i < n; i++ {
			rowI = i * n
			a[rowI+c] /= pivot
			mult = a[rowI+c]
			for k = c + 1; k < n; k++ {
				a[rowI+k] -= mult * a[rowC+k]
			}
		}
	}

	return &LU{LU: res, Perm: perm, Toggle: toggle}, nil
}

// rank maps a candidate pivot to the value the search maximizes.
func (g GaussLU) rank(v float64) float64 {
	if g.Pivot == PivotSigned {
		return v
	}
	return math.Abs(v)
}

// swapRawRows exchanges rows r1 and r2 of an untransposed n-column buffer.
func swapRawRows(a []float64, n, r1, r2 int) {
	x, y := a[r1*n:(r1+1)*n], a[r2*n:(r2+1)*n]
	for j := range x {
		x[j], y[j] = y[j], x[j]
	}
}

// Determinant returns Toggle · Π U[i,i].
// Complexity: O(n).
func (lu *LU) Determinant() float64 {
	n := lu.LU.r
	det := float64(lu.Toggle)
	for i := 0; i < n; i++ {
		det *= lu.LU.data[i*n+i]
	}
	return det
}

// L returns the unit lower-triangular factor as a fresh matrix.
func (lu *LU) L() *Dense {
	n := lu.LU.r
	out := newDense(n, n)
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < i; j++ {
			out.data[i*n+j] = lu.LU.data[i*n+j]
		}
		out.data[i*n+i] = 1
	}
	return out
}

// U returns the upper-triangular factor as a fresh matrix.
func (lu *LU) U() *Dense {
	n := lu.LU.r
	out := newDense(n, n)
	var i, j int
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			out.data[i*n+j] = lu.LU.data[i*n+j]
		}
	}
	return out
}

// P returns the permutation matrix with P·A = L·U.
func (lu *LU) P() *Dense {
	n := len(lu.Perm)
	out := newDense(n, n)
	for i, src := range lu.Perm {
		out.data[i*n+src] = 1
	}
	return out
}

// Solve returns x with A·x = b using the stored factors.
// Implementation:
//   - Stage 1: permute b by Perm.
//   - Stage 2: forward substitution with unit L.
//   - Stage 3: back substitution with U; a zero diagonal yields ErrSingular.
//
// Errors: ErrNilMatrix (nil b), ErrDimensionMismatch (len(b) != n), ErrSingular.
// Complexity: O(n^2).
func (lu *LU) Solve(b []float64) ([]float64, error) {
	n := lu.LU.r
	if err := ValidateVecLen(b, n); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	a := lu.LU.data
	x := make([]float64, n)
	var (
		i, k int
		sum  float64
	)
	for i = 0; i < n; i++ {
		sum = b[lu.Perm[i]]
		for k = 0; k < i; k++ {
			sum -= a[i*n+k] * x[k]
		}
		x[i] = sum
	}
	for i = n - 1; i >= 0; i-- {
		sum = x[i]
		for k = i + 1; k < n; k++ {
			sum -= a[i*n+k] * x[k]
		}
		if a[i*n+i] == 0 {
			return nil, matrixErrorf(opSolve, ErrSingular)
		}
		x[i] = sum / a[i*n+i]
	}

	return x, nil
}

// SPDX-License-Identifier: MIT
// Package matrix - Gauss-Jordan inversion.
//
// Purpose:
//   - Invert a square matrix by driving a working copy to diagonal form while
//     replaying every row operation on an identity accumulator.
//
// Numerics:
//   - Elimination applies new[r] = old[r]*pivot - old[d]*old[r][d] scaled by
//     1/pivot, i.e. old[r] - old[d]*(old[r][d]/pivot). The unscaled form grows
//     by a factor of pivot per pass and overflows near n=20; a per-row scale
//     never changes the result because the final pass normalizes each row.
//   - No pivoting beyond resolving an exact zero on the diagonal.

package matrix

import "go.uber.org/zap"

const opInverse = "Inverse"

// GaussJordan is the default Inverter.
type GaussJordan struct {
	Logger *zap.Logger // debug events for pivot swaps and failures; nil ⇒ no-op
}

var _ Inverter = GaussJordan{}

// Inverse returns m⁻¹ as a fresh, untransposed matrix; m is not modified.
// Implementation:
//   - Stage 1: validate square; working = logical copy of m; result = I.
//   - Stage 2: for each diagonal d, resolve a zero pivot by swapping in a row i
//     with working[i,d] != 0 and working[d,i] != 0 (both matrices), else ErrSingular.
//   - Stage 3: eliminate column d from every row r != d on both matrices;
//     row d is left untouched.
//   - Stage 4: divide each result row i by working[i,i].
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func (g GaussJordan) Inverse(m *Dense) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	log := g.Logger
	if log == nil {
		log = zap.NewNop()
	}

	working := m.copyLogical()
	n := working.r
	result := newDense(n, n)
	for i := 0; i < n; i++ {
		result.data[i*n+i] = 1
	}
	w, res := working.data, result.data

	var (
		d, i, r, k  int
		pivot, mult float64
		rowD, rowR  int
	)
	for d = 0; d < n; d++ {
		rowD = d * n
		if w[rowD+d] == 0 {
			swapped := false
			for i = 0; i < n; i++ {
				if i != d && w[i*n+d] != 0 && w[rowD+i] != 0 {
					swapRawRows(w, n, d, i)
					swapRawRows(res, n, d, i)
					log.Debug("inverse pivot swap", zap.Int("column", d), zap.Int("row", i))
					swapped = true
					break
				}
			}
			if !swapped {
				log.Debug("inverse singular", zap.String("op", opInverse), zap.Int("column", d))
				return nil, matrixErrorf(opInverse, ErrSingular)
			}
		}

		pivot = w[rowD+d]
		for r = 0; r < n; r++ {
			if r == d {
				continue
			}
			rowR = r * n
			mult = w[rowR+d] / pivot
			if mult == 0 {
				continue
			}
			for k = 0; k < n; k++ {
				w[rowR+k] -= w[rowD+k] * mult
				res[rowR+k] -= res[rowD+k] * mult
			}
		}
	}

	for i = 0; i < n; i++ {
		pivot = w[i*n+i]
		for k = 0; k < n; k++ {
			res[i*n+k] /= pivot
		}
	}

	return result, nil
}

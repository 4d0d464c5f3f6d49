// SPDX-License-Identifier: MIT
// Package matrix - axis reductions.
//
// Orientation:
//   - DimColumns collapses the rows: each column is folded top to bottom and
//     the result is 1×Cols.
//   - DimRows collapses the columns: each row is folded left to right and the
//     result is Rows×1.
//   - DimAuto picks DimRows for a row vector (1×n, n>1) and DimColumns for
//     everything else, which covers column vectors and general matrices.
//
// Determinism:
//   - Folds start from the first element and visit the rest in index order.

package matrix

const (
	opReduceDimension   = "ReduceDimension"
	opStatisticalReduce = "StatisticalReduce"
)

// Sum is a fold for ReduceDimension: a + b.
func Sum(a, b float64) float64 { return a + b }

// Product is a fold for ReduceDimension: a * b.
func Product(a, b float64) float64 { return a * b }

// Max keeps the larger operand; ties and NaN in b keep a.
func Max(a, b float64) float64 {
	if b > a {
		return b
	}
	return a
}

// Min keeps the smaller operand; ties and NaN in b keep a.
func Min(a, b float64) float64 {
	if b < a {
		return b
	}
	return a
}

// Mean is a VectorFunc returning the arithmetic mean of v's elements.
func Mean(v *Dense) float64 {
	var s float64
	for _, x := range v.data {
		s += x
	}
	return s / float64(len(v.data))
}

// reduceAxis resolves DimAuto against m's shape.
func reduceAxis(m *Dense, dim Dimension) Dimension {
	if dim != DimAuto {
		return dim
	}
	if m.Rows() == 1 && m.Cols() > 1 {
		return DimRows
	}
	return DimColumns
}

// ReduceDimension folds m along dim with op.
// Errors: ErrNilMatrix, ErrNilFunc, ErrUnknownDimension.
// Complexity: O(r*c).
func ReduceDimension(m *Dense, dim Dimension, op BinaryFunc) (*Dense, error) {
	if err := validateDense(m); err != nil {
		return nil, matrixErrorf(opReduceDimension, err)
	}
	if err := validateDimension(dim); err != nil {
		return nil, matrixErrorf(opReduceDimension, err)
	}
	if op == nil {
		return nil, matrixErrorf(opReduceDimension, ErrNilFunc)
	}

	rows, cols := m.Shape()
	mv := view(m)
	var (
		out  *Dense
		i, j int
		acc  float64
	)
	if reduceAxis(m, dim) == DimRows {
		out = newDense(rows, 1)
		for i = 0; i < rows; i++ {
			acc = mv.at(i, 0)
			for j = 1; j < cols; j++ {
				acc = op(acc, mv.at(i, j))
			}
			out.data[i] = acc
		}
		return out, nil
	}

	out = newDense(1, cols)
	for j = 0; j < cols; j++ {
		acc = mv.at(0, j)
		for i = 1; i < rows; i++ {
			acc = op(acc, mv.at(i, j))
		}
		out.data[j] = acc
	}

	return out, nil
}

// StatisticalReduce hands each row (as 1×Cols) or column (as Rows×1) of m to
// op and collects the scalars, oriented as in ReduceDimension. op receives a
// fresh vector on every call and may keep or modify it.
// Errors: ErrNilMatrix, ErrNilFunc, ErrUnknownDimension.
func StatisticalReduce(m *Dense, dim Dimension, op VectorFunc) (*Dense, error) {
	if err := validateDense(m); err != nil {
		return nil, matrixErrorf(opStatisticalReduce, err)
	}
	if err := validateDimension(dim); err != nil {
		return nil, matrixErrorf(opStatisticalReduce, err)
	}
	if op == nil {
		return nil, matrixErrorf(opStatisticalReduce, ErrNilFunc)
	}

	rows, cols := m.Shape()
	var out, vec *Dense
	if reduceAxis(m, dim) == DimRows {
		out = newDense(rows, 1)
		for i := 0; i < rows; i++ {
			vec = newDense(1, cols)
			copyBlock(vec, 0, 0, m, i, 0, 1, cols)
			out.data[i] = op(vec)
		}
		return out, nil
	}

	out = newDense(1, cols)
	for j := 0; j < cols; j++ {
		vec = newDense(rows, 1)
		copyBlock(vec, 0, 0, m, 0, j, rows, 1)
		out.data[j] = op(vec)
	}

	return out, nil
}

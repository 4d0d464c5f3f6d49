// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dense/matrix"
	"github.com/katalvlaran/dense/matrix/matrixtest"
)

func TestReduceDimension(t *testing.T) {
	m := matrixtest.MustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	tests := []struct {
		name string
		dim  matrix.Dimension
		op   matrix.BinaryFunc
		want [][]float64
	}{
		{"columns sum", matrix.DimColumns, matrix.Sum, [][]float64{{5, 7, 9}}},
		{"rows sum", matrix.DimRows, matrix.Sum, [][]float64{{6}, {15}}},
		{"auto on matrix is columns", matrix.DimAuto, matrix.Sum, [][]float64{{5, 7, 9}}},
		{"rows product", matrix.DimRows, matrix.Product, [][]float64{{6}, {120}}},
		{"columns max", matrix.DimColumns, matrix.Max, [][]float64{{4, 5, 6}}},
		{"rows min", matrix.DimRows, matrix.Min, [][]float64{{1}, {4}}},
		{"fold is left to right", matrix.DimRows, func(a, b float64) float64 { return a - b }, [][]float64{{-4}, {-7}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out, err := matrix.ReduceDimension(m, tc.dim, tc.op)
			require.NoError(t, err)
			matrixtest.RequireRows(t, tc.want, out)
		})
	}
}

func TestReduceDimension_AutoOnVectors(t *testing.T) {
	row := matrixtest.MustFromRows(t, [][]float64{{1, 2, 3}})
	out, err := matrix.ReduceDimension(row, matrix.DimAuto, matrix.Sum)
	require.NoError(t, err)
	matrixtest.RequireRows(t, [][]float64{{6}}, out)

	col := matrixtest.MustFromRows(t, [][]float64{{1}, {2}, {3}})
	out, err = matrix.ReduceDimension(col, matrix.DimAuto, matrix.Sum)
	require.NoError(t, err)
	matrixtest.RequireRows(t, [][]float64{{6}}, out)

	// A flagged row vector is a logical column vector.
	row.T()
	out, err = matrix.ReduceDimension(row, matrix.DimAuto, matrix.Max)
	require.NoError(t, err)
	matrixtest.RequireRows(t, [][]float64{{3}}, out)
}

func TestReduceDimension_Errors(t *testing.T) {
	m := matrixtest.MustDense(t, 2, 2)
	_, err := matrix.ReduceDimension(nil, matrix.DimRows, matrix.Sum)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.ReduceDimension(m, matrix.DimRows, nil)
	require.ErrorIs(t, err, matrix.ErrNilFunc)
	_, err = matrix.ReduceDimension(m, matrix.Dimension(-1), matrix.Sum)
	require.ErrorIs(t, err, matrix.ErrUnknownDimension)
}

func TestStatisticalReduce(t *testing.T) {
	m := matrixtest.MustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	out, err := matrix.StatisticalReduce(m, matrix.DimColumns, matrix.Mean)
	require.NoError(t, err)
	matrixtest.RequireRows(t, [][]float64{{2.5, 3.5, 4.5}}, out)

	out, err = matrix.StatisticalReduce(m, matrix.DimRows, matrix.Mean)
	require.NoError(t, err)
	matrixtest.RequireRows(t, [][]float64{{2}, {5}}, out)

	// Columns arrive as Rows×1 vectors, rows as 1×Cols.
	var shapes [][2]int
	_, err = matrix.StatisticalReduce(m, matrix.DimColumns, func(v *matrix.Dense) float64 {
		r, c := v.Shape()
		shapes = append(shapes, [2]int{r, c})
		return 0
	})
	require.NoError(t, err)
	require.Equal(t, [][2]int{{2, 1}, {2, 1}, {2, 1}}, shapes)

	_, err = matrix.StatisticalReduce(m, matrix.DimRows, nil)
	require.ErrorIs(t, err, matrix.ErrNilFunc)
	_, err = matrix.StatisticalReduce(nil, matrix.DimRows, matrix.Mean)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.StatisticalReduce(m, matrix.Dimension(5), matrix.Mean)
	require.ErrorIs(t, err, matrix.ErrUnknownDimension)
}

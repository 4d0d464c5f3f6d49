// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/dense/matrix"
	"github.com/katalvlaran/dense/matrix/matrixtest"
)

// engines returns the backends every arithmetic test runs against.
// MinRowsPerTask=1 makes even tiny matrices take the parallel path.
func engines() map[string]*matrix.Engine {
	return map[string]*matrix.Engine{
		"sequential": matrix.NewEngine(),
		"parallel":   matrix.NewEngine(matrix.WithParallel(4), matrix.WithMinRowsPerTask(1)),
	}
}

func TestMul_Example(t *testing.T) {
	a := matrixtest.MustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	b := matrixtest.MustFromRows(t, [][]float64{{1, 2}, {3, 4}, {5, 6}})
	for name, eng := range engines() {
		t.Run(name, func(t *testing.T) {
			c, err := eng.Mul(a, b)
			require.NoError(t, err)
			require.False(t, c.IsTransposed())
			matrixtest.RequireRows(t, [][]float64{{22, 28}, {49, 64}}, c)
		})
	}
}

func TestMul_TransposedOperands(t *testing.T) {
	// aᵀ is stored as its 3×2 transpose; the product must use the logical view.
	a := matrixtest.MustFromRows(t, [][]float64{{1, 4}, {2, 5}, {3, 6}})
	a.T()
	b := matrixtest.MustFromRows(t, [][]float64{{1, 3, 5}, {2, 4, 6}})
	b.T()
	for name, eng := range engines() {
		t.Run(name, func(t *testing.T) {
			c, err := eng.Mul(a, b)
			require.NoError(t, err)
			matrixtest.RequireRows(t, [][]float64{{22, 28}, {49, 64}}, c)
		})
	}
}

func TestMul_Errors(t *testing.T) {
	a := matrixtest.MustDense(t, 2, 3)
	b := matrixtest.MustDense(t, 2, 3)
	for name, eng := range engines() {
		t.Run(name, func(t *testing.T) {
			_, err := eng.Mul(a, b)
			require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
			_, err = eng.Mul(nil, b)
			require.ErrorIs(t, err, matrix.ErrNilMatrix)
			_, err = eng.Mul(a, nil)
			require.ErrorIs(t, err, matrix.ErrNilMatrix)
		})
	}
}

func TestMul_AgainstGonum(t *testing.T) {
	a := matrixtest.MustRandom(t, 17, 9, 3)
	b := matrixtest.MustRandom(t, 9, 13, 4)

	var want mat.Dense
	want.Mul(mat.NewDense(17, 9, a.RowMajor()), mat.NewDense(9, 13, b.RowMajor()))
	wantM, err := matrix.NewDenseFromData(want.RawMatrix().Data, 17, 13)
	require.NoError(t, err)

	for name, eng := range engines() {
		t.Run(name, func(t *testing.T) {
			got, err := eng.Mul(a, b)
			require.NoError(t, err)
			matrixtest.RequireAllClose(t, wantM, got, 1e-12, 1e-12)
		})
	}
}

func TestAddSub_RoundTrip(t *testing.T) {
	a := matrixtest.MustRandom(t, 6, 5, 21)
	b := matrixtest.MustRandom(t, 6, 5, 22)
	for name, eng := range engines() {
		t.Run(name, func(t *testing.T) {
			sum, err := eng.Add(a, b)
			require.NoError(t, err)
			back, err := eng.Sub(sum, b)
			require.NoError(t, err)

			// Rounding in a+b can leave a last-bit residue, hence the tight atol.
			matrixtest.RequireAllClose(t, a, back, 0, 1e-15)

			// Immutable forms leave their inputs alone.
			require.NotSame(t, a, sum)
			again, err := eng.Sub(sum, b)
			require.NoError(t, err)
			eq, err := eng.Equal(back, again)
			require.NoError(t, err)
			require.True(t, eq)
		})
	}
}

func TestAddSub_ExactIntegers(t *testing.T) {
	a := matrixtest.MustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	b := matrixtest.MustFromRows(t, [][]float64{{10, 20, 30}, {40, 50, 60}})
	sum, err := matrix.Add(a, b)
	require.NoError(t, err)
	matrixtest.RequireRows(t, [][]float64{{11, 22, 33}, {44, 55, 66}}, sum)
	back, err := matrix.Sub(sum, b)
	require.NoError(t, err)
	eq, err := matrix.Equal(a, back)
	require.NoError(t, err)
	require.True(t, eq)
}

func TestAddInPlace_MixedLayouts(t *testing.T) {
	// dst untransposed, src transposed with the same logical shape.
	dst := matrixtest.MustFromRows(t, [][]float64{{1, 2}, {3, 4}, {5, 6}})
	src := matrixtest.MustFromRows(t, [][]float64{{10, 30, 50}, {20, 40, 60}})
	src.T()
	for name, eng := range engines() {
		t.Run(name, func(t *testing.T) {
			d := dst.Copy()
			require.NoError(t, eng.AddInPlace(d, src))
			matrixtest.RequireRows(t, [][]float64{{11, 22}, {33, 44}, {55, 66}}, d)
			require.NoError(t, eng.SubInPlace(d, src))
			matrixtest.RequireRows(t, dst.ToRows(), d)
		})
	}
}

func TestElementwise_Errors(t *testing.T) {
	a := matrixtest.MustDense(t, 2, 2)
	b := matrixtest.MustDense(t, 2, 3)
	for name, eng := range engines() {
		t.Run(name, func(t *testing.T) {
			_, err := eng.Add(a, b)
			require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
			_, err = eng.Sub(nil, b)
			require.ErrorIs(t, err, matrix.ErrNilMatrix)
			require.ErrorIs(t, eng.AddInPlace(a, nil), matrix.ErrNilMatrix)
			require.ErrorIs(t, eng.SubInPlace(a, b), matrix.ErrDimensionMismatch)
			_, err = eng.Neg(nil)
			require.ErrorIs(t, err, matrix.ErrNilMatrix)
			_, err = eng.Scale(nil, 2)
			require.ErrorIs(t, err, matrix.ErrNilMatrix)
			require.ErrorIs(t, eng.DivInPlace(nil, 2), matrix.ErrNilMatrix)
			_, err = eng.Apply(a, nil)
			require.ErrorIs(t, err, matrix.ErrNilFunc)
			_, err = eng.Equal(a, nil)
			require.ErrorIs(t, err, matrix.ErrNilMatrix)
			_, err = eng.NotEqual(nil, a)
			require.ErrorIs(t, err, matrix.ErrNilMatrix)
		})
	}
}

func TestAdd_ErrorMessage(t *testing.T) {
	a := matrixtest.MustDense(t, 2, 2)
	b := matrixtest.MustDense(t, 3, 2)
	_, err := matrix.Add(a, b)
	require.EqualError(t, err,
		"Add: ApplyBinary: ValidateBinarySameShape: ValidateSameShape: Rows: matrix: dimension mismatch")
}

func TestScalarOps(t *testing.T) {
	m := matrixtest.MustFromRows(t, [][]float64{{1, -2}, {3, 4}})
	for name, eng := range engines() {
		t.Run(name, func(t *testing.T) {
			neg, err := eng.Neg(m)
			require.NoError(t, err)
			matrixtest.RequireRows(t, [][]float64{{-1, 2}, {-3, -4}}, neg)

			sc, err := eng.Scale(m, 3)
			require.NoError(t, err)
			matrixtest.RequireRows(t, [][]float64{{3, -6}, {9, 12}}, sc)

			dv, err := eng.Div(m, 2)
			require.NoError(t, err)
			matrixtest.RequireRows(t, [][]float64{{0.5, -1}, {1.5, 2}}, dv)

			sq, err := eng.Apply(m, func(v float64) float64 { return v * v })
			require.NoError(t, err)
			matrixtest.RequireRows(t, [][]float64{{1, 4}, {9, 16}}, sq)

			// m itself is untouched by the immutable forms.
			matrixtest.RequireRows(t, [][]float64{{1, -2}, {3, 4}}, m)

			c := m.Copy()
			require.NoError(t, eng.NegInPlace(c))
			require.NoError(t, eng.ScaleInPlace(c, 2))
			require.NoError(t, eng.DivInPlace(c, 4))
			require.NoError(t, eng.ApplyInPlace(c, math.Abs))
			matrixtest.RequireRows(t, [][]float64{{0.5, 1}, {1.5, 2}}, c)
		})
	}
}

func TestDiv_ByZeroFollowsIEEE(t *testing.T) {
	m := matrixtest.MustFromRows(t, [][]float64{{1, -1, 0}})
	out, err := matrix.Div(m, 0)
	require.NoError(t, err)
	v := out.RowMajor()
	require.True(t, math.IsInf(v[0], 1))
	require.True(t, math.IsInf(v[1], -1))
	require.True(t, math.IsNaN(v[2]))
}

func TestEqualNotEqual(t *testing.T) {
	a := matrixtest.MustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	b := a.Copy()
	c := matrixtest.MustFromRows(t, [][]float64{{1, 2}, {3, 4.0000001}})
	d := matrixtest.MustFromRows(t, [][]float64{{1, 2, 3}})
	for name, eng := range engines() {
		t.Run(name, func(t *testing.T) {
			eq, err := eng.Equal(a, b)
			require.NoError(t, err)
			require.True(t, eq)

			ne, err := eng.NotEqual(a, c)
			require.NoError(t, err)
			require.True(t, ne, "equality is exact, no tolerance")

			eq, err = eng.Equal(a, d)
			require.NoError(t, err)
			require.False(t, eq, "shape mismatch is inequality, not an error")
		})
	}
}

func TestParallel_BitwiseMatchesSequential(t *testing.T) {
	seq := matrix.Sequential{}
	par := &matrix.Parallel{Workers: 3, MinRowsPerTask: 2}

	a := matrixtest.MustRandom(t, 37, 23, 5)
	b := matrixtest.MustRandom(t, 23, 31, 6)
	bt := matrixtest.MustRandom(t, 31, 23, 7) // for a·btᵀ

	ws, err := seq.Mul(a, b)
	require.NoError(t, err)
	wp, err := par.Mul(a, b)
	require.NoError(t, err)
	require.Equal(t, ws.RowMajor(), wp.RowMajor())

	ws, err = seq.MulByTranspose(a, bt)
	require.NoError(t, err)
	wp, err = par.MulByTranspose(a, bt)
	require.NoError(t, err)
	require.Equal(t, ws.RowMajor(), wp.RowMajor())

	ws, err = seq.MulTransposeBy(b, b)
	require.NoError(t, err)
	wp, err = par.MulTransposeBy(b, b)
	require.NoError(t, err)
	require.Equal(t, ws.RowMajor(), wp.RowMajor())

	x, y := a.Copy(), a.Copy()
	require.NoError(t, seq.Apply(x, math.Sin))
	require.NoError(t, par.Apply(y, math.Sin))
	require.Equal(t, x.RowMajor(), y.RowMajor())

	other := matrixtest.MustRandom(t, 23, 37, 8)
	other.T() // same logical shape as a, different layout
	require.NoError(t, seq.ApplyBinary(x, other, math.Max))
	require.NoError(t, par.ApplyBinary(y, other, math.Max))
	require.Equal(t, x.RowMajor(), y.RowMajor())

	require.NoError(t, seq.ApplyScalar(x, 0.25, math.Pow))
	require.NoError(t, par.ApplyScalar(y, 0.25, math.Pow))
	require.Equal(t, x.RowMajor(), y.RowMajor())

	eq, err := par.Equal(x, y)
	require.NoError(t, err)
	require.True(t, eq)
	require.NoError(t, y.Set(36, 22, -1))
	eq, err = par.Equal(x, y)
	require.NoError(t, err)
	require.False(t, eq, "a difference in the last run must be detected")

	tx, ty := a.Copy(), a.Copy()
	tx.T()
	ty.T()
	require.NoError(t, seq.Transpose(tx))
	require.NoError(t, par.Transpose(ty))
	require.Equal(t, tx.RowMajor(), ty.RowMajor())
}

func TestParallel_ZeroValueUsable(t *testing.T) {
	var p matrix.Parallel
	a := matrixtest.MustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	b := matrixtest.MustFromRows(t, [][]float64{{1, 2}, {3, 4}, {5, 6}})
	c, err := p.Mul(a, b)
	require.NoError(t, err)
	matrixtest.RequireRows(t, [][]float64{{22, 28}, {49, 64}}, c)
}

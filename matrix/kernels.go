// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide small, *private* row-range kernels shared by the Sequential and
//     Parallel backends. Sequential runs each kernel once over [0, rows);
//     Parallel runs it once per disjoint row run. Both therefore produce
//     bitwise-identical results.
//
// Design:
//   - Every kernel writes ONLY rows [lo, hi) of its destination.
//   - Operands are addressed through (data, rowStride, colStride) views derived
//     from Dense.strides, so a transposed operand needs no materialization and
//     a fused transpose-product is just a view with swapped strides.
//   - Products accumulate over k in increasing order, starting from zero.

package matrix

// operand is a strided read view of a Dense.
type operand struct {
	data   []float64
	rs, cs int // physical step per logical row / column
}

// view exposes m as stored logically.
func view(m *Dense) operand {
	rs, cs := m.strides()
	return operand{data: m.data, rs: rs, cs: cs}
}

// viewT exposes the transpose of m's logical view without copying.
func viewT(m *Dense) operand {
	rs, cs := m.strides()
	return operand{data: m.data, rs: cs, cs: rs}
}

// at reads the logical (i, j) element of the view.
func (o operand) at(i, j int) float64 { return o.data[i*o.rs+j*o.cs] }

// gemmRows computes rows [lo, hi) of out = a × b, where a is (·×n) and b is (n×p)
// and out is an untransposed buffer with p columns.
// Complexity: O((hi-lo)*n*p).
func gemmRows(a, b operand, out []float64, n, p, lo, hi int) {
	var (
		i, k, j int
		av      float64
		row     []float64
		bBase   int
	)
	for i = lo; i < hi; i++ {
		row = out[i*p : (i+1)*p]
		for k = 0; k < n; k++ {
			av = a.at(i, k)
			bBase = k * b.rs
			for j = 0; j < p; j++ {
				row[j] += av * b.data[bBase+j*b.cs]
			}
		}
	}
}

// transposeRows writes rows [lo, hi) of dst = srcᵀ, where dst is untransposed
// with `cols` columns (the source's logical row count).
func transposeRows(src operand, dst []float64, cols, lo, hi int) {
	var i, j, base int
	for i = lo; i < hi; i++ {
		base = i * cols
		for j = 0; j < cols; j++ {
			dst[base+j] = src.at(j, i)
		}
	}
}

// mapRows applies f to physical rows [lo, hi) of m.
// Elementwise maps are order-free, so the physical layout is walked directly.
func mapRows(m *Dense, f UnaryFunc, lo, hi int) {
	data := m.data[lo*m.c : hi*m.c]
	for k, v := range data {
		data[k] = f(v)
	}
}

// mapScalarRows sets m = f(m, s) over physical rows [lo, hi).
func mapScalarRows(m *Dense, s float64, f BinaryFunc, lo, hi int) {
	data := m.data[lo*m.c : hi*m.c]
	for k, v := range data {
		data[k] = f(v, s)
	}
}

// zipRowSpan reports how many rows a zip kernel iterates and whether it may
// walk raw buffers (identical layouts) instead of logical coordinates.
func zipRowSpan(dst, src *Dense) (rows int, flat bool) {
	if sameLayout(dst, src) {
		return dst.r, true
	}
	return dst.Rows(), false
}

// zipRows sets dst = f(dst, src) over rows [lo, hi): physical rows when flat,
// logical rows otherwise.
func zipRows(dst, src *Dense, f BinaryFunc, flat bool, lo, hi int) {
	if flat {
		d := dst.data[lo*dst.c : hi*dst.c]
		s := src.data[lo*src.c : hi*src.c]
		for k := range d {
			d[k] = f(d[k], s[k])
		}
		return
	}
	dv, sv := view(dst), view(src)
	cols := dst.Cols()
	var i, j, off int
	for i = lo; i < hi; i++ {
		for j = 0; j < cols; j++ {
			off = i*dv.rs + j*dv.cs
			dst.data[off] = f(dst.data[off], sv.at(i, j))
		}
	}
}

// equalRows reports whether logical rows [lo, hi) of a and b match exactly.
func equalRows(a, b *Dense, lo, hi int) bool {
	av, bv := view(a), view(b)
	cols := a.Cols()
	var i, j int
	for i = lo; i < hi; i++ {
		for j = 0; j < cols; j++ {
			if av.at(i, j) != bv.at(i, j) {
				return false
			}
		}
	}
	return true
}

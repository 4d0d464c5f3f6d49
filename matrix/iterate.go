// SPDX-License-Identifier: MIT
// Package matrix - logical traversal.
//
// All traversals follow logical row-major order, so a flagged matrix and its
// physically transposed copy produce the same sequence.

package matrix

import "iter"

// All returns a restartable sequence over the logical elements of m in
// row-major order. Each range over the result starts from (0, 0).
func (m *Dense) All() iter.Seq[float64] {
	return func(yield func(float64) bool) {
		rs, cs := m.strides()
		rows, cols := m.Rows(), m.Cols()
		var i, j int
		for i = 0; i < rows; i++ {
			for j = 0; j < cols; j++ {
				if !yield(m.data[i*rs+j*cs]) {
					return
				}
			}
		}
	}
}

// Do calls f(i, j, v) for every logical element in row-major order and stops
// as soon as f returns false.
func (m *Dense) Do(f func(i, j int, v float64) bool) {
	rs, cs := m.strides()
	rows, cols := m.Rows(), m.Cols()
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if !f(i, j, m.data[i*rs+j*cs]) {
				return
			}
		}
	}
}

// RowMajor returns a fresh slice with the logical elements in row-major order.
func (m *Dense) RowMajor() []float64 {
	return m.copyLogical().data
}

// ToRows returns the logical contents as a fresh [][]float64.
func (m *Dense) ToRows() [][]float64 {
	rows, cols := m.Rows(), m.Cols()
	flat := m.RowMajor()
	out := make([][]float64, rows)
	for i := range out {
		out[i] = flat[i*cols : (i+1)*cols : (i+1)*cols]
	}

	return out
}

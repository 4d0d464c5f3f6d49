// SPDX-License-Identifier: MIT
// Package matrix - centering.
//
// CenterColumns and CenterRows subtract per-axis means and return them
// alongside the centered copy, so callers can undo the shift later.
// Means come from StatisticalReduce with Mean; the subtraction is a single
// broadcast pass over the fresh untransposed copy.

package matrix

const (
	opCenterColumns = "CenterColumns"
	opCenterRows    = "CenterRows"
)

// CenterColumns returns m with each column's mean subtracted, plus the
// column means (len = Cols).
// Errors: ErrNilMatrix.
// Complexity: Time O(r*c), Space O(r*c).
func CenterColumns(m *Dense) (*Dense, []float64, error) {
	means, err := StatisticalReduce(m, DimColumns, Mean)
	if err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}
	out := m.copyLogical()
	for i := 0; i < out.r; i++ {
		row := out.data[i*out.c : (i+1)*out.c]
		for j := range row {
			row[j] -= means.data[j]
		}
	}

	return out, means.data, nil
}

// CenterRows returns m with each row's mean subtracted, plus the row means
// (len = Rows).
// Errors: ErrNilMatrix.
// Complexity: Time O(r*c), Space O(r*c).
func CenterRows(m *Dense) (*Dense, []float64, error) {
	means, err := StatisticalReduce(m, DimRows, Mean)
	if err != nil {
		return nil, nil, matrixErrorf(opCenterRows, err)
	}
	out := m.copyLogical()
	for i := 0; i < out.r; i++ {
		mu := means.data[i]
		for j := i * out.c; j < (i+1)*out.c; j++ {
			out.data[j] -= mu
		}
	}

	return out, means.data, nil
}

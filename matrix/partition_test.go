// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dense/matrix"
)

type rr = matrix.RowRange_TestOnly

func TestSplitRows(t *testing.T) {
	tests := []struct {
		name                   string
		rows, workers, minRows int
		want                   []rr
	}{
		{"below threshold", 15, 8, 8, []rr{{0, 15}}},
		{"exact two runs", 16, 8, 8, []rr{{0, 8}, {8, 16}}},
		{"capped by workers", 100, 3, 8, []rr{{0, 34}, {34, 67}, {67, 100}}},
		{"single worker", 100, 1, 1, []rr{{0, 100}}},
		{"one row per task", 4, 8, 1, []rr{{0, 1}, {1, 2}, {2, 3}, {3, 4}}},
		{"remainder spread", 10, 4, 2, []rr{{0, 3}, {3, 6}, {6, 8}, {8, 10}}},
		{"minRows clamps to 1", 3, 3, 0, []rr{{0, 1}, {1, 2}, {2, 3}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, matrix.SplitRows_TestOnly(tc.rows, tc.workers, tc.minRows))
		})
	}
}

func TestSplitRows_CoversAllRowsDisjointly(t *testing.T) {
	for rows := 1; rows <= 64; rows++ {
		for workers := 1; workers <= 9; workers++ {
			runs := matrix.SplitRows_TestOnly(rows, workers, 3)
			require.LessOrEqual(t, len(runs), workers)
			next := 0
			for _, r := range runs {
				require.Equal(t, next, r.Lo, "runs are contiguous")
				require.Greater(t, r.Hi, r.Lo, "runs are non-empty")
				next = r.Hi
			}
			require.Equal(t, rows, next, "runs cover [0, rows)")
		}
	}
}

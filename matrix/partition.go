// SPDX-License-Identifier: MIT

package matrix

// rowRange is a half-open run [lo, hi) of output rows owned by one task.
type rowRange struct{ lo, hi int }

// splitRows divides rows into at most workers contiguous, disjoint runs of at
// least minRows rows each. The remainder is spread one row at a time over the
// leading runs, so run lengths differ by at most one.
//
// Returns a single run covering [0, rows) when parallelism would not pay off.
// Complexity: O(tasks).
func splitRows(rows, workers, minRows int) []rowRange {
	if minRows < 1 {
		minRows = 1
	}
	tasks := rows / minRows
	if tasks > workers {
		tasks = workers
	}
	if tasks <= 1 {
		return []rowRange{{0, rows}}
	}

	per, rem := rows/tasks, rows%tasks
	out := make([]rowRange, tasks)
	lo := 0
	for t := 0; t < tasks; t++ {
		n := per
		if t < rem {
			n++
		}
		out[t] = rowRange{lo, lo + n}
		lo += n
	}

	return out
}

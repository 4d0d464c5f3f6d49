// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for private helpers and the options snapshot.
//
// Purpose:
//   - Expose unexported partitioning and option resolution to matrix_test ONLY.
//   - The _test.go suffix keeps this surface out of production builds.

// RowRange_TestOnly mirrors rowRange with exported fields.
type RowRange_TestOnly struct{ Lo, Hi int }

// SplitRows_TestOnly forwards to splitRows.
func SplitRows_TestOnly(rows, workers, minRows int) []RowRange_TestOnly {
	runs := splitRows(rows, workers, minRows)
	out := make([]RowRange_TestOnly, len(runs))
	for i, r := range runs {
		out[i] = RowRange_TestOnly{Lo: r.lo, Hi: r.hi}
	}
	return out
}

// OptionsSnapshot is a read-only view of resolved Options.
type OptionsSnapshot struct {
	Parallel       bool
	Workers        int
	MinRowsPerTask int
	Pivot          PivotRule
	Arithmetic     Arithmetic
	Transposer     Transposer
	Decomposer     Decomposer
	Inverter       Inverter
	HasLogger      bool
}

// GatherOptionsSnapshot_TestOnly resolves opts exactly as NewEngine does.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)
	return OptionsSnapshot{
		Parallel:       o.parallel,
		Workers:        o.workers,
		MinRowsPerTask: o.minRowsPerTask,
		Pivot:          o.pivot,
		Arithmetic:     o.arithmetic,
		Transposer:     o.transposer,
		Decomposer:     o.decomposer,
		Inverter:       o.inverter,
		HasLogger:      o.logger != nil,
	}
}

// Panic message exports to avoid magic strings in tests.
const (
	PanicWorkersInvalid_TestOnly   = panicWorkersInvalid
	PanicMinRowsInvalid_TestOnly   = panicMinRowsInvalid
	PanicNilStrategy_TestOnly      = panicNilStrategy
	PanicPivotRuleInvalid_TestOnly = panicPivotRuleInvalid
	PanicNilLogger_TestOnly        = panicNilLogger
)

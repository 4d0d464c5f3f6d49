// Package matrix is a dense float64 matrix engine with an O(1) logical
// transpose and pluggable execution backends.
//
// The matrix package provides:
//
//   - Dense, a row-major buffer with fixed physical dimensions and a transpose
//     flag. Every accessor goes through one transpose-aware index function, so
//     At, Set, AtFlat, All and String always observe the logical layout.
//   - Engine, assembled from four strategies (Arithmetic, Transposer,
//     Decomposer, Inverter). Sequential is the deterministic reference
//     backend; Parallel splits output rows into disjoint runs and dispatches
//     them on an errgroup with bounded concurrency.
//   - Elementwise arithmetic (Add, Sub, Neg, Scale, Div, Apply), products
//     (Mul, MulByTranspose, MulTransposeBy and their self forms), LU
//     decomposition with partial pivoting, Gauss-Jordan inversion, row and
//     column swaps, Join/Extract/Reshape, and axis reductions.
//
// Each operation has an immutable form that returns a fresh matrix and an
// in-place form that mutates its first operand. Package-level functions run
// on a sequential default engine; build another with NewEngine:
//
//	eng := matrix.NewEngine(matrix.WithParallel(0), matrix.WithLogger(logger))
//	c, err := eng.Mul(a, b)
//
// Errors are package sentinels wrapped with the failing operation; match them
// with errors.Is. Indexers return ErrOutOfRange instead of panicking.
//
// Dense values are not safe for concurrent mutation. An Engine is immutable
// and may be shared.
package matrix

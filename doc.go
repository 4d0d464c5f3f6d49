// Package dense is the module root of a dense, real-valued matrix engine.
//
// What is inside?
//
//	A small, dependency-light library for working with float64 matrices:
//		• Storage: row-major buffer + O(1) logical transpose flag
//		• Arithmetic: elementwise ops, products, fused transpose products
//		• Linear algebra: LU with partial pivoting, determinant, solve, Gauss-Jordan inverse
//		• Shape: join, extract, reshape, row/column swaps, axis reductions
//		• Backends: sequential reference and row-partitioned parallel
//
// Under the hood, everything is organized under two packages:
//
//	matrix/            Dense, Engine, strategies, options, errors
//	matrix/matrixtest/ tolerance-based comparison helpers for tests
//
// Quick example:
//
//	a, _ := matrix.NewDenseFromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
//	b, _ := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, 4}, {5, 6}})
//	c, _ := matrix.Mul(a, b) // [[22, 28], [49, 64]]
//
//	go get github.com/katalvlaran/dense
package dense

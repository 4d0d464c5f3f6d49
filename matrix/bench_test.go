// SPDX-License-Identifier: MIT
// Package matrix_test provides benchmarks comparing the sequential and
// parallel engines on deterministic random operands.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/dense/matrix"
	"github.com/katalvlaran/dense/matrix/matrixtest"
)

// benchSizes are the square sizes to benchmark.
var benchSizes = []int{64, 128, 256}

// sinks to defeat dead-code elimination
var (
	sinkM *matrix.Dense
	sinkF float64
)

func benchEngines() map[string]*matrix.Engine {
	return map[string]*matrix.Engine{
		"seq": matrix.NewEngine(),
		"par": matrix.NewEngine(matrix.WithParallel(0)),
	}
}

func BenchmarkMul(b *testing.B) {
	for name, eng := range benchEngines() {
		for _, n := range benchSizes {
			b.Run(fmt.Sprintf("%s/n=%d", name, n), func(b *testing.B) {
				x := matrixtest.MustRandom(b, n, n, 1337)
				y := matrixtest.MustRandom(b, n, n, 4242)
				b.ReportAllocs()
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					m, err := eng.Mul(x, y)
					if err != nil {
						b.Fatal(err)
					}
					sinkM = m
				}
			})
		}
	}
}

func BenchmarkMulBySelfTranspose(b *testing.B) {
	for name, eng := range benchEngines() {
		for _, n := range benchSizes {
			b.Run(fmt.Sprintf("%s/n=%d", name, n), func(b *testing.B) {
				x := matrixtest.MustRandom(b, n, n, 7)
				b.ReportAllocs()
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					m, err := eng.MulBySelfTranspose(x)
					if err != nil {
						b.Fatal(err)
					}
					sinkM = m
				}
			})
		}
	}
}

func BenchmarkAdd(b *testing.B) {
	for name, eng := range benchEngines() {
		for _, n := range benchSizes {
			b.Run(fmt.Sprintf("%s/n=%d", name, n), func(b *testing.B) {
				x := matrixtest.MustRandom(b, n, n, 1)
				y := matrixtest.MustRandom(b, n, n, 2)
				b.ReportAllocs()
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					m, err := eng.Add(x, y)
					if err != nil {
						b.Fatal(err)
					}
					sinkM = m
				}
			})
		}
	}
}

// BenchmarkTranspose compares the O(1) flag flip with the physical rewrite.
func BenchmarkTranspose(b *testing.B) {
	for _, n := range benchSizes {
		x := matrixtest.MustRandom(b, n, n, 3)
		b.Run(fmt.Sprintf("flag/n=%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if err := matrix.TransposeInPlace(x, true); err != nil {
					b.Fatal(err)
				}
			}
		})
		for name, eng := range benchEngines() {
			b.Run(fmt.Sprintf("%s/n=%d", name, n), func(b *testing.B) {
				for i := 0; i < b.N; i++ {
					if err := eng.TransposeInPlace(x, false); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}

func BenchmarkDecompose(b *testing.B) {
	for _, n := range []int{16, 64} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x := matrixtest.MustRandom(b, n, n, 11)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				det, err := matrix.Determinant(x)
				if err != nil {
					b.Fatal(err)
				}
				sinkF = det
			}
		})
	}
}

func BenchmarkInverse(b *testing.B) {
	for _, n := range []int{16, 64} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x := diagDominant(b, n, 13)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Inverse(x)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

// SPDX-License-Identifier: MIT
// Package matrix - package-level API facades.
//
// Purpose:
//   - Provide thin entry points for the common case: one sequential engine with
//     default options, shared by every package-level call.
//   - Avoid any logic duplication: each facade forwards to the Engine method
//     of the same name.
//
// Policy:
//   - The default engine is built once and never reassigned; callers who need
//     another backend build their own with NewEngine.

package matrix

// std is the immutable default engine behind the package-level functions.
var std = NewEngine()

// Default returns the engine the package-level functions use.
func Default() *Engine { return std }

// Add returns a + b.
func Add(a, b *Dense) (*Dense, error) { return std.Add(a, b) }

// AddInPlace sets dst += src.
func AddInPlace(dst, src *Dense) error { return std.AddInPlace(dst, src) }

// Sub returns a - b.
func Sub(a, b *Dense) (*Dense, error) { return std.Sub(a, b) }

// SubInPlace sets dst -= src.
func SubInPlace(dst, src *Dense) error { return std.SubInPlace(dst, src) }

// Neg returns -m.
func Neg(m *Dense) (*Dense, error) { return std.Neg(m) }

// NegInPlace negates m.
func NegInPlace(m *Dense) error { return std.NegInPlace(m) }

// Scale returns m * s.
func Scale(m *Dense, s float64) (*Dense, error) { return std.Scale(m, s) }

// ScaleInPlace sets m *= s.
func ScaleInPlace(m *Dense, s float64) error { return std.ScaleInPlace(m, s) }

// Div returns m / s.
func Div(m *Dense, s float64) (*Dense, error) { return std.Div(m, s) }

// DivInPlace sets m /= s.
func DivInPlace(m *Dense, s float64) error { return std.DivInPlace(m, s) }

// Apply returns a copy of m with f applied elementwise.
func Apply(m *Dense, f UnaryFunc) (*Dense, error) { return std.Apply(m, f) }

// ApplyInPlace applies f to every element of m.
func ApplyInPlace(m *Dense, f UnaryFunc) error { return std.ApplyInPlace(m, f) }

// Mul returns a × b.
func Mul(a, b *Dense) (*Dense, error) { return std.Mul(a, b) }

// Equal reports exact logical equality of a and b.
func Equal(a, b *Dense) (bool, error) { return std.Equal(a, b) }

// NotEqual reports whether a and b differ.
func NotEqual(a, b *Dense) (bool, error) { return std.NotEqual(a, b) }

// Transpose returns a fresh matrix holding mᵀ.
func Transpose(m *Dense) (*Dense, error) { return std.Transpose(m) }

// TransposeInPlace flips m's flag (inMemory) or physically rearranges it.
func TransposeInPlace(m *Dense, inMemory bool) error { return std.TransposeInPlace(m, inMemory) }

// MulByTranspose returns a · bᵀ.
func MulByTranspose(a, b *Dense) (*Dense, error) { return std.MulByTranspose(a, b) }

// MulBySelfTranspose returns m · mᵀ.
func MulBySelfTranspose(m *Dense) (*Dense, error) { return std.MulBySelfTranspose(m) }

// MulTransposeBy returns aᵀ · b.
func MulTransposeBy(a, b *Dense) (*Dense, error) { return std.MulTransposeBy(a, b) }

// MulOwnTransposeBy returns mᵀ · m.
func MulOwnTransposeBy(m *Dense) (*Dense, error) { return std.MulOwnTransposeBy(m) }

// Decompose returns the LU factorization of m.
func Decompose(m *Dense) (*LU, error) { return std.Decompose(m) }

// Determinant returns det(m).
func Determinant(m *Dense) (float64, error) { return std.Determinant(m) }

// Solve returns x with m·x = b.
func Solve(m *Dense, b []float64) ([]float64, error) { return std.Solve(m, b) }

// Inverse returns m⁻¹.
func Inverse(m *Dense) (*Dense, error) { return std.Inverse(m) }

// MatVec returns m·x.
func MatVec(m *Dense, x []float64) ([]float64, error) { return std.MatVec(m, x) }

// Clip returns m clamped into [lo, hi].
func Clip(m *Dense, lo, hi float64) (*Dense, error) { return std.Clip(m, lo, hi) }

// ReplaceInfNaN returns m with non-finite elements replaced by val.
func ReplaceInfNaN(m *Dense, val float64) (*Dense, error) { return std.ReplaceInfNaN(m, val) }

// SPDX-License-Identifier: MIT
// Package matrix - population strategies.
//
// Fill and SetIdentity write every element. FillRandom draws from a
// deterministic math/rand stream in logical row-major order, so two matrices
// of the same logical shape filled with the same seed hold identical values
// whatever their transpose flags.
//
// Concurrency:
//   - Each FillRandom call owns its *rand.Rand; nothing is shared.

package matrix

import "math/rand"

// defaultRandomSeed replaces seed 0 so that the zero value still yields a
// fixed, reproducible stream.
const defaultRandomSeed int64 = 1

const ctxSetIdentity = "SetIdentity"

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultRandomSeed; otherwise the seed is used verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRandomSeed
	}
	return rand.New(rand.NewSource(seed))
}

// Fill sets every element to v. Complexity: O(r*c).
func (m *Dense) Fill(v float64) {
	for k := range m.data {
		m.data[k] = v
	}
}

// SetIdentity overwrites m with the identity: ones on the diagonal, zeros elsewhere.
// Errors: ErrNilMatrix, ErrNonSquare.
func (m *Dense) SetIdentity() error {
	if err := ValidateSquare(m); err != nil {
		return matrixErrorf(ctxSetIdentity, err)
	}
	m.Fill(0)
	n := m.r
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return nil
}

// FillRandom fills m with values in [0, 1) drawn from a stream seeded by seed.
// Complexity: O(r*c).
func (m *Dense) FillRandom(seed int64) {
	rng := rngFromSeed(seed)
	rows, cols := m.Rows(), m.Cols()
	rs, cs := m.strides()
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			m.data[i*rs+j*cs] = rng.Float64()
		}
	}
}

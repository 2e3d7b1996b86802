// SPDX-License-Identifier: MIT
// Package mat2x2_test contains shared test helpers.

package mat2x2_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mat2x2/mat2x2"
)

// elemDelta is the per-element tolerance for float comparisons in tests.
// Much tighter than mat2x2.Epsilon so that Equal-level slack never hides a bug.
const elemDelta = 1e-12

// RequireElements asserts that m holds exactly want (within elemDelta).
func RequireElements(t *testing.T, want [4]float64, m mat2x2.Mat2x2) {
	t.Helper()
	got := m.Elements()
	for i := range want {
		require.InDeltaf(t, want[i], got[i], elemDelta, "element %d of\n%v", i, m)
	}
}

// MustInverse returns m.Inverse() or fails the test.
func MustInverse(t *testing.T, m mat2x2.Mat2x2) mat2x2.Mat2x2 {
	t.Helper()
	inv, err := m.Inverse()
	require.NoError(t, err)

	return inv
}

// positiveDetSamples have det > Epsilon, so Inverse succeeds on all of them.
var positiveDetSamples = []mat2x2.Mat2x2{
	mat2x2.New(2, 1, 1, 1),
	mat2x2.New(3, 1, 2, 4),
	mat2x2.New(0.5, 0.1, -0.2, 0.8),
	mat2x2.New(10, -3, 4, 2),
	mat2x2.New(4, 0, 0, 4),
}

// mixedSamples cover zero, negative, fractional and large elements.
var mixedSamples = []mat2x2.Mat2x2{
	{},
	mat2x2.New(1, 2, 3, 4),
	mat2x2.New(-1.5, 0, 2.25, -7),
	mat2x2.New(1e6, -1e-6, 3, 0.125),
	mat2x2.New(1, 2, 2, 1),
}

// failingWriter returns errWrite from every Write.
type failingWriter struct{}

var errWrite = errors.New("write failed")

func (failingWriter) Write([]byte) (int, error) { return 0, errWrite }

// SPDX-License-Identifier: MIT

// Package mat2x2 - interop with gonum.org/v1/gonum/mat.
//
// Dense copies a Mat2x2 into a fresh *mat.Dense; FromMatrix copies any 2×2
// mat.Matrix back. Neither shares storage with the source.

package mat2x2

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Dense returns m as a new 2×2 gonum dense matrix.
func (m Mat2x2) Dense() *mat.Dense {
	return mat.NewDense(2, 2, []float64{m.a, m.b, m.c, m.d})
}

// FromMatrix copies a 2×2 gonum matrix into a Mat2x2.
//
// Errors:
//   - ErrInvalidArgument if src is not 2×2.
func FromMatrix(src mat.Matrix) (Mat2x2, error) {
	r, c := src.Dims()
	if r != 2 || c != 2 {
		return Mat2x2{}, fmt.Errorf("%s: shape %dx%d: %w", opFromMatrix, r, c, ErrInvalidArgument)
	}

	return New(src.At(0, 0), src.At(0, 1), src.At(1, 0), src.At(1, 1)), nil
}

// SPDX-License-Identifier: MIT
// Package mat2x2: sentinel error set.
// Every operation that can fail returns one of these sentinels wrapped with
// the operation tag via opErrorf; tests match them with errors.Is.

package mat2x2

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned for an element index outside 0..3 and
	// for an eigenvalue root other than 1 or 2.
	ErrInvalidArgument = errors.New("mat2x2: invalid argument")

	// ErrDivisionByZero is returned when a matrix is divided by the scalar 0.
	ErrDivisionByZero = errors.New("mat2x2: division by zero")

	// ErrUndefinedInverse is returned when the determinant is at or below
	// Epsilon, so the inverse is treated as undefined.
	ErrUndefinedInverse = errors.New("mat2x2: inverse undefined")

	// ErrMalformedInput is returned when text input does not hold four numbers.
	ErrMalformedInput = errors.New("mat2x2: malformed input")
)

// Operation tags used in error wrapping.
const (
	opAt         = "At"
	opSet        = "Set"
	opDivScalar  = "DivScalar"
	opInverse    = "Inverse"
	opDiv        = "Div"
	opScalarDiv  = "ScalarDiv"
	opEigenvalue = "Eigenvalue"
	opRead       = "Read"
	opScan       = "Scan"
	opFromMatrix = "FromMatrix"
)

// opErrorf wraps err with an operation tag, preserving it for errors.Is.
// Call only with a non-nil err.
func opErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// SPDX-License-Identifier: MIT

package calc

import "errors"

var (
	// ErrUnknownOperation is returned by Eval for an operation name it does not know.
	ErrUnknownOperation = errors.New("calc: unknown operation")

	// ErrUnknownOperand is returned when an operand is neither a defined
	// name nor an "a,b,c,d" literal.
	ErrUnknownOperand = errors.New("calc: unknown operand")

	// ErrArity is returned when an operation gets the wrong number of arguments.
	ErrArity = errors.New("calc: wrong number of arguments")

	// ErrBadScalar is returned when a scalar or root argument does not parse.
	ErrBadScalar = errors.New("calc: invalid scalar")

	// ErrBadConfig is returned for a config file that parses but is not usable.
	ErrBadConfig = errors.New("calc: invalid config")
)

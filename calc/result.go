// SPDX-License-Identifier: MIT

package calc

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/mat2x2/mat2x2"
)

// Kind tells which field of a Result is set.
type Kind int

const (
	KindMatrix Kind = iota // Result.Matrix
	KindInt                // Result.Int
	KindBool               // Result.Bool
	KindValues             // Result.Values
)

func (k Kind) String() string {
	switch k {
	case KindMatrix:
		return "matrix"
	case KindInt:
		return "int"
	case KindBool:
		return "bool"
	case KindValues:
		return "values"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Result is the value produced by Eval.
type Result struct {
	Kind   Kind
	Matrix mat2x2.Mat2x2
	Int    int
	Bool   bool
	Values []float64
}

// MatrixResult wraps a matrix.
func MatrixResult(m mat2x2.Mat2x2) Result { return Result{Kind: KindMatrix, Matrix: m} }

// IntResult wraps an integer (determinant, trace).
func IntResult(v int) Result { return Result{Kind: KindInt, Int: v} }

// BoolResult wraps a predicate answer.
func BoolResult(v bool) Result { return Result{Kind: KindBool, Bool: v} }

// ValuesResult wraps an eigenvalue slice.
func ValuesResult(v []float64) Result { return Result{Kind: KindValues, Values: v} }

// Format renders r followed by a newline. Matrices follow mode; other
// kinds print the same in every mode. Eigenvalue pairs print as
// "re im", with im signed.
func (r Result) Format(mode OutputMode) string {
	switch r.Kind {
	case KindMatrix:
		if mode == OutputPlain {
			e := r.Matrix.Elements()
			return joinFloats(e[:]) + "\n"
		}
		return r.Matrix.String()
	case KindInt:
		return strconv.Itoa(r.Int) + "\n"
	case KindBool:
		return strconv.FormatBool(r.Bool) + "\n"
	case KindValues:
		return joinFloats(r.Values) + "\n"
	default:
		return r.Kind.String() + "\n"
	}
}

func joinFloats(vs []float64) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}

	return strings.Join(parts, " ")
}

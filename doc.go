// Package mat2x2lib is a small toolkit for 2×2 matrix arithmetic, aimed at
// numeric scripting and teaching rather than large-scale linear algebra.
//
// 🚀 What's inside?
//
//   - mat2x2/: the Mat2x2 value type: scalar & matrix arithmetic,
//     determinant, trace, inverse, transpose, eigenvalues,
//     tolerance equality, boxed text output and text input
//   - calc/: named-operation evaluator with a YAML operand table
//   - cmd/mat2x2: command-line front end over calc
//   - examples/: runnable demos (plane rotations)
//
// ✨ Why?
//
//   - One value type, no hidden state: copy it, compare it, print it.
//   - Explicit errors instead of panics (ErrInvalidArgument,
//     ErrDivisionByZero, ErrUndefinedInverse).
//   - gonum interop when a problem outgrows 2×2.
//
// Quick example:
//
//	m := mat2x2.New(1, 2, 3, 4)
//	fmt.Print(m)           // |1.00 2.00|
//	                       // |         |
//	                       // |3.00 4.00|
//	fmt.Println(m.Determinant(), m.Trace()) // -2 5
//
//	go get github.com/katalvlaran/mat2x2
package mat2x2lib

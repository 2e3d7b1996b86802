// SPDX-License-Identifier: MIT

// Package mat2x2 provides a fixed-size 2×2 matrix value type for small
// numeric scripts and teaching material.
//
// A Mat2x2 holds four float64 elements laid out as
//
//	| a  b |
//	| c  d |
//
// and is copied by value. The zero value is the zero matrix.
//
// What's inside:
//   - Element access by flat index 0..3 (a, b, c, d): At / Set.
//   - Scalar and matrix arithmetic in two flavours: in-place compound
//     methods (AddAssign, MulScalarAssign, ...) on *Mat2x2 and
//     value-returning binary methods (Add, MulScalar, ...) on Mat2x2.
//     Scalar-first forms live in ScalarAdd / ScalarSub / ScalarMul / ScalarDiv.
//   - Queries: Determinant, Trace, Inverse, Transpose, IsSymmetric,
//     IsSimilar, Eigenvalue.
//   - Equality within Epsilon (e^-6) per element: Equal / NotEqual.
//   - Boxed text output (String, WriteTo) and whitespace-separated text
//     input (Read, fmt.Scanner).
//   - Interop with gonum's mat package (Dense, FromMatrix).
//
// Numeric policy:
//
//	Determinant and Trace truncate toward zero and return int. Inverse uses
//	the untruncated determinant and rejects det <= Epsilon (one-sided).
//	Eigenvalue works from the truncated Determinant and Trace. Scalar add,
//	subtract and multiply clear negative zeros; scalar divide does not.
//	The Notes blocks on Inverse and Eigenvalue give the details.
//
// Errors:
//
//	All failures are reported through sentinel errors (ErrInvalidArgument,
//	ErrDivisionByZero, ErrUndefinedInverse, ErrMalformedInput) wrapped
//	with the operation name; match them with errors.Is. Nothing panics on
//	user input.
//
// Concurrency:
//
//	A Mat2x2 has no internal synchronization. Share copies, not pointers,
//	between goroutines.
package mat2x2

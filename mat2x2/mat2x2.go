// SPDX-License-Identifier: MIT

// Package mat2x2 - value type, construction & element access.
//
// Purpose:
//   - Hold the four elements of a 2×2 matrix in fixed positions a, b, c, d.
//   - Keep the public surface panic-free: At/Set return ErrInvalidArgument
//     instead of indexing out of range.
//
// Layout quicksheet (flat index → element):
//
//	0 → a   1 → b
//	2 → c   3 → d

package mat2x2

import "fmt"

// Epsilon is the per-element tolerance used by Equal and the singularity
// threshold used by Inverse. Its value is e^-6 (≈0.00248), not 1e-6.
const Epsilon = 0.0024787521766663585

// Element indexes for At/Set.
const (
	IndexA = iota // top-left
	IndexB        // top-right
	IndexC        // bottom-left
	IndexD        // bottom-right
)

// Mat2x2 is a 2×2 matrix of float64 values.
//
//	| a  b |
//	| c  d |
//
// The zero value is the zero matrix. Mat2x2 is copied by value; methods
// with a pointer receiver mutate in place, value-receiver methods return
// a fresh matrix and leave the receiver untouched.
type Mat2x2 struct {
	a, b, c, d float64
}

// Compile-time assertions.
var (
	_ fmt.Stringer = Mat2x2{}
	_ fmt.Scanner  = (*Mat2x2)(nil)
)

// New returns the matrix [[a, b], [c, d]]. Any float64 is accepted.
func New(a, b, c, d float64) Mat2x2 {
	return Mat2x2{a: a, b: b, c: c, d: d}
}

// Identity returns [[1, 0], [0, 1]].
func Identity() Mat2x2 {
	return Mat2x2{a: 1, d: 1}
}

// At returns the element at flat index i (0..3 → a, b, c, d).
//
// Errors:
//   - ErrInvalidArgument if i is outside 0..3.
//
// Complexity: O(1).
func (m Mat2x2) At(i int) (float64, error) {
	p, err := m.ref(opAt, i)
	if err != nil {
		return 0, err
	}

	return *p, nil
}

// Set assigns v to the element at flat index i (0..3 → a, b, c, d).
// The matrix is left unchanged on error.
//
// Errors:
//   - ErrInvalidArgument if i is outside 0..3.
//
// Complexity: O(1).
func (m *Mat2x2) Set(i int, v float64) error {
	p, err := m.ref(opSet, i)
	if err != nil {
		return err
	}
	*p = v

	return nil
}

// ref resolves a flat index to the address of its element.
func (m *Mat2x2) ref(tag string, i int) (*float64, error) {
	switch i {
	case IndexA:
		return &m.a, nil
	case IndexB:
		return &m.b, nil
	case IndexC:
		return &m.c, nil
	case IndexD:
		return &m.d, nil
	default:
		return nil, fmt.Errorf("%s(%d): %w", tag, i, ErrInvalidArgument)
	}
}

// Elements returns the elements in flat index order a, b, c, d.
func (m Mat2x2) Elements() [4]float64 {
	return [4]float64{m.a, m.b, m.c, m.d}
}

// FromElements is the inverse of Elements.
func FromElements(e [4]float64) Mat2x2 {
	return New(e[0], e[1], e[2], e[3])
}

// Pos is unary plus: it returns an unchanged copy of m.
func (m Mat2x2) Pos() Mat2x2 {
	return m
}

// normalizeZeros replaces -0.0 with +0.0 in every element so that the sign
// of a zero never shows up in formatted output.
func (m *Mat2x2) normalizeZeros() {
	m.a = positiveZero(m.a)
	m.b = positiveZero(m.b)
	m.c = positiveZero(m.c)
	m.d = positiveZero(m.d)
}

func positiveZero(v float64) float64 {
	if v == 0 {
		return 0
	}

	return v
}

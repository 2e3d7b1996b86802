// SPDX-License-Identifier: MIT

// Package mat2x2 - arithmetic kernels.
//
// Two layers:
//   - Compound kernels (*Assign) mutate the receiver in place.
//   - Binary forms copy the left operand, run the compound kernel on the
//     copy and return it. Scalar-first forms are package functions.
//
// Scalar +, -, * normalise negative zeros after the update; scalar / and
// all matrix-matrix kernels do not.

package mat2x2

// ---------- scalar compound ----------

// AddScalarAssign adds x to every element of m.
func (m *Mat2x2) AddScalarAssign(x float64) {
	m.a += x
	m.b += x
	m.c += x
	m.d += x
	m.normalizeZeros()
}

// SubScalarAssign subtracts x from every element of m.
func (m *Mat2x2) SubScalarAssign(x float64) {
	m.a -= x
	m.b -= x
	m.c -= x
	m.d -= x
	m.normalizeZeros()
}

// MulScalarAssign multiplies every element of m by x.
func (m *Mat2x2) MulScalarAssign(x float64) {
	m.a *= x
	m.b *= x
	m.c *= x
	m.d *= x
	m.normalizeZeros()
}

// DivScalarAssign divides every element of m by x.
// m is left unchanged on error.
//
// Errors:
//   - ErrDivisionByZero if x == 0.
func (m *Mat2x2) DivScalarAssign(x float64) error {
	if x == 0 {
		return opErrorf(opDivScalar, ErrDivisionByZero)
	}
	m.a /= x
	m.b /= x
	m.c /= x
	m.d /= x

	return nil
}

// ---------- matrix compound ----------

// AddAssign adds o to m element-wise.
func (m *Mat2x2) AddAssign(o Mat2x2) {
	m.a += o.a
	m.b += o.b
	m.c += o.c
	m.d += o.d
}

// SubAssign subtracts o from m element-wise.
func (m *Mat2x2) SubAssign(o Mat2x2) {
	m.a -= o.a
	m.b -= o.b
	m.c -= o.c
	m.d -= o.d
}

// MulAssign replaces m with the matrix product m·o.
//
//	| a  b |   | oa  ob |   | a·oa + b·oc   a·ob + b·od |
//	| c  d | · | oc  od | = | c·oa + d·oc   c·ob + d·od |
func (m *Mat2x2) MulAssign(o Mat2x2) {
	// All four products read the old elements, so compute before writing.
	a := m.a*o.a + m.b*o.c
	b := m.a*o.b + m.b*o.d
	c := m.c*o.a + m.d*o.c
	d := m.c*o.b + m.d*o.d
	m.a, m.b, m.c, m.d = a, b, c, d
}

// DivAssign replaces m with m·o⁻¹. m is left unchanged on error.
//
// Errors:
//   - ErrUndefinedInverse if o has no inverse (see Inverse).
func (m *Mat2x2) DivAssign(o Mat2x2) error {
	inv, err := o.Inverse()
	if err != nil {
		return opErrorf(opDiv, err)
	}
	m.MulAssign(inv)

	return nil
}

// ---------- binary, matrix first ----------

// Add returns m + o.
func (m Mat2x2) Add(o Mat2x2) Mat2x2 {
	m.AddAssign(o)
	return m
}

// Sub returns m - o.
func (m Mat2x2) Sub(o Mat2x2) Mat2x2 {
	m.SubAssign(o)
	return m
}

// Mul returns the matrix product m·o.
func (m Mat2x2) Mul(o Mat2x2) Mat2x2 {
	m.MulAssign(o)
	return m
}

// Div returns m·o⁻¹.
//
// Errors:
//   - ErrUndefinedInverse if o has no inverse.
func (m Mat2x2) Div(o Mat2x2) (Mat2x2, error) {
	if err := m.DivAssign(o); err != nil {
		return Mat2x2{}, err
	}

	return m, nil
}

// AddScalar returns m with x added to every element.
func (m Mat2x2) AddScalar(x float64) Mat2x2 {
	m.AddScalarAssign(x)
	return m
}

// SubScalar returns m with x subtracted from every element.
func (m Mat2x2) SubScalar(x float64) Mat2x2 {
	m.SubScalarAssign(x)
	return m
}

// MulScalar returns m with every element multiplied by x.
func (m Mat2x2) MulScalar(x float64) Mat2x2 {
	m.MulScalarAssign(x)
	return m
}

// DivScalar returns m with every element divided by x.
//
// Errors:
//   - ErrDivisionByZero if x == 0.
func (m Mat2x2) DivScalar(x float64) (Mat2x2, error) {
	if err := m.DivScalarAssign(x); err != nil {
		return Mat2x2{}, err
	}

	return m, nil
}

// ---------- binary, scalar first ----------

// ScalarAdd returns x + m, which equals m.AddScalar(x).
func ScalarAdd(x float64, m Mat2x2) Mat2x2 {
	return m.AddScalar(x)
}

// ScalarSub returns x - m, computed as -(m - x).
func ScalarSub(x float64, m Mat2x2) Mat2x2 {
	return m.SubScalar(x).Negate()
}

// ScalarMul returns x·m, which equals m.MulScalar(x).
func ScalarMul(x float64, m Mat2x2) Mat2x2 {
	return m.MulScalar(x)
}

// ScalarDiv returns x / m, computed as x·m⁻¹.
//
// Errors:
//   - ErrUndefinedInverse if m has no inverse.
func ScalarDiv(x float64, m Mat2x2) (Mat2x2, error) {
	inv, err := m.Inverse()
	if err != nil {
		return Mat2x2{}, opErrorf(opScalarDiv, err)
	}
	inv.MulScalarAssign(x)

	return inv, nil
}

// ---------- sign, increment, decrement ----------

// Negate returns -m, i.e. m scaled by -1 with zeros kept positive.
func (m Mat2x2) Negate() Mat2x2 {
	return ScalarMul(-1, m)
}

// Inc adds 1 to every element of m and returns the updated value (pre-increment).
func (m *Mat2x2) Inc() Mat2x2 {
	m.AddScalarAssign(1)
	return *m
}

// Dec subtracts 1 from every element of m and returns the updated value (pre-decrement).
func (m *Mat2x2) Dec() Mat2x2 {
	m.SubScalarAssign(1)
	return *m
}

// PostInc adds 1 to every element of m and returns the value m held before.
func (m *Mat2x2) PostInc() Mat2x2 {
	prev := *m
	m.AddScalarAssign(1)

	return prev
}

// PostDec subtracts 1 from every element of m and returns the value m held before.
func (m *Mat2x2) PostDec() Mat2x2 {
	prev := *m
	m.SubScalarAssign(1)

	return prev
}

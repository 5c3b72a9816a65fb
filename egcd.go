// Package egcd computes the extended greatest common divisor of two
// signed integers. See the Result type and Try function for details.
package egcd

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// Common errors returned by functions in this package.
var (
	ErrBothZero = errors.New("both operands are zero")
	ErrMinValue = errors.New("operand is the minimum value of its type")
	ErrOverflow = errors.New("result overflow")
)

// Result is the output of the extended Euclidean algorithm over a signed
// integer type I: the greatest common divisor of the two inputs together
// with Bézout coefficients witnessing it.
//
// For inputs a and b, a Result returned by Try or New satisfies
//
//	S*a + T*b == GCD
//
// exactly, with GCD >= 0. Bézout coefficients are not unique; the pair held
// here is the one produced by the algorithm, which is minimal in magnitude.
//
// Result has proper value semantics and its values can be freely copied.
type Result[I constraints.Signed] struct {
	GCD I // greatest common divisor, always >= 0
	S   I // Bézout coefficient of the first operand
	T   I // Bézout coefficient of the second operand
}

// Verify returns true if r witnesses a correct Bézout identity for the
// operands a and b, i.e. r.S*a + r.T*b == r.GCD and r.GCD >= 0.
func (r Result[I]) Verify(a, b I) bool {
	return r.GCD >= 0 && r.S*a+r.T*b == r.GCD
}

// Try computes the extended GCD of a and b.
// Try returns an error if both operands are zero (gcd(0, 0) has no Bézout
// identity) or if either operand is the minimum value of I, whose absolute
// value is not representable.
//
// No other input can overflow: with x and y nonnegative throughout, the
// coefficient recurrence is bounded by |b|/(2*gcd) and |a|/(2*gcd) in
// magnitude, so every intermediate fits in I.
func Try[I constraints.Signed](a, b I) (Result[I], error) {
	if a == 0 && b == 0 {
		return Result[I]{}, ErrBothZero
	}
	// -MinInt wraps to itself in two's complement, so |a| would be wrong
	if (a != 0 && a == -a) || (b != 0 && b == -b) {
		return Result[I]{}, ErrMinValue
	}

	// Invariants: x == s*a + t*b and y == u*a + v*b. Folding the operand
	// signs into the seeds keeps both identities exact for signed inputs.
	x, y := abs(a), abs(b)
	s, t := sgn(a), I(0)
	u, v := I(0), sgn(b)
	for x != 0 {
		q := y / x
		// rotate all three pairs off the same quotient; tuple assignment
		// reads the pre-update values on each line
		x, y = y-q*x, x
		s, u = u-q*s, s
		t, v = v-q*t, t
	}
	return Result[I]{GCD: y, S: u, T: v}, nil
}

// New is like Try but panics if the inputs are invalid.
func New[I constraints.Signed](a, b I) Result[I] {
	r, err := Try(a, b)
	if err != nil {
		panic(err)
	}
	return r
}

// abs returns the absolute value of x.
func abs[I constraints.Signed](x I) I {
	if x < 0 {
		return -x
	}
	return x
}

// sgn returns -1 if x < 0, 0 if x == 0, and 1 if x > 0.
func sgn[I constraints.Signed](x I) I {
	if x == 0 {
		return 0
	}
	if x < 0 {
		return -1
	}
	return 1
}

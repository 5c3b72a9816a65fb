package egcd

import "golang.org/x/exp/constraints"

// GCD returns the greatest common divisor of a and b.
// The GCD is the largest nonnegative integer that divides both a and b.
// It reports the same errors as Try.
func GCD[I constraints.Signed](a, b I) (I, error) {
	// there are faster gcd-only algorithms, but the extended one is within
	// a small constant factor and keeps a single code path to validate
	r, err := Try(a, b)
	if err != nil {
		return 0, err
	}
	return r.GCD, nil
}

// LCM returns the least common multiple of a and b, |a*b|/gcd(a, b).
// The result is always nonnegative. LCM returns ErrOverflow if the result
// does not fit in I, and otherwise reports the same errors as Try.
func LCM[I constraints.Signed](a, b I) (I, error) {
	d, err := GCD(a, b)
	if err != nil {
		return 0, err
	}
	if a == 0 || b == 0 {
		return 0, nil
	}
	// a/d is exact, so only the final product can overflow
	q := a / d
	m := q * b
	if m/b != q {
		return 0, ErrOverflow
	}
	return abs(m), nil
}

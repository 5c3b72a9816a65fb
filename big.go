package egcd

import "math/big"

// BigResult is the arbitrary-precision counterpart of Result.
//
// Every field of a BigResult returned by TryBig or NewBig is freshly
// allocated: it never aliases the inputs or the other fields, so callers
// may mutate any of them freely.
type BigResult struct {
	GCD *big.Int // greatest common divisor, always >= 0
	S   *big.Int // Bézout coefficient of the first operand
	T   *big.Int // Bézout coefficient of the second operand
}

// Verify returns true if r witnesses a correct Bézout identity for the
// operands a and b, i.e. r.S*a + r.T*b == r.GCD and r.GCD >= 0.
func (r BigResult) Verify(a, b *big.Int) bool {
	if r.GCD == nil || r.S == nil || r.T == nil || r.GCD.Sign() < 0 {
		return false
	}
	sa := new(big.Int).Mul(r.S, a)
	tb := new(big.Int).Mul(r.T, b)
	return sa.Add(sa, tb).Cmp(r.GCD) == 0
}

// TryBig computes the extended GCD of a and b with arbitrary precision.
// It is the same algorithm as Try with no possibility of overflow, so the
// only error is ErrBothZero. The arguments are never mutated.
func TryBig(a, b *big.Int) (BigResult, error) {
	if a.Sign() == 0 && b.Sign() == 0 {
		return BigResult{}, ErrBothZero
	}

	// Invariants: x == s*a + t*b and y == u*a + v*b, as in Try.
	x, y := new(big.Int).Abs(a), new(big.Int).Abs(b)
	s, t := big.NewInt(int64(a.Sign())), new(big.Int)
	u, v := new(big.Int), big.NewInt(int64(b.Sign()))
	for x.Sign() != 0 {
		q := new(big.Int).Quo(y, x)
		x, y = new(big.Int).Sub(y, new(big.Int).Mul(q, x)), x
		s, u = new(big.Int).Sub(u, new(big.Int).Mul(q, s)), s
		t, v = new(big.Int).Sub(v, new(big.Int).Mul(q, t)), t
	}
	return BigResult{GCD: y, S: u, T: v}, nil
}

// NewBig is like TryBig but panics if both operands are zero.
func NewBig(a, b *big.Int) BigResult {
	r, err := TryBig(a, b)
	if err != nil {
		panic(err)
	}
	return r
}

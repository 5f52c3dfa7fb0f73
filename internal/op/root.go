// Released under an MIT license. See LICENSE.

package op

import (
	"math/big"

	"github.com/reckon-calc/reckon/internal/errs"
)

// Precision, in bits, for root extraction when the result is not a
// rational number.
const rootPrec = 256

// Digits kept after the decimal point when rounding an inexact root.
const rootDigits = 32

// nthRoot computes the nth root of x. Exact rational roots are
// returned exactly; anything else is computed at rootPrec bits and
// rounded to rootDigits decimal places.
func nthRoot(x *big.Rat, n int64) (*big.Rat, error) {
	if n == 0 {
		return nil, errs.NewOperation("zeroth root is undefined")
	}

	if n < 0 {
		if x.Sign() == 0 {
			return nil, errs.NewOperation("zero has no negative root")
		}

		r, err := nthRoot(x, -n)
		if err != nil {
			return nil, err
		}

		return r.Inv(r), nil
	}

	if n == 1 {
		return new(big.Rat).Set(x), nil
	}

	if x.Sign() == 0 {
		return &big.Rat{}, nil
	}

	neg := x.Sign() < 0
	if neg {
		if n%2 == 0 {
			return nil, errs.NewOperation("cannot take an even root of a negative number")
		}

		x = new(big.Rat).Neg(x)
	}

	r, exact := exactRoot(x, n)
	if !exact {
		r = round(newtonRoot(x, n), rootDigits)
	}

	if neg {
		r.Neg(r)
	}

	return r, nil
}

// exactRoot looks for a rational nth root of x. Since x is reduced,
// one exists exactly when both the numerator and the denominator have
// integer nth roots.
func exactRoot(x *big.Rat, n int64) (*big.Rat, bool) {
	p, ok := intRoot(x.Num(), n)
	if !ok {
		return nil, false
	}

	q, ok := intRoot(x.Denom(), n)
	if !ok {
		return nil, false
	}

	return new(big.Rat).SetFrac(p, q), true
}

// intRoot returns the integer nth root of v, if v has one.
func intRoot(v *big.Int, n int64) (*big.Int, bool) {
	if v.Cmp(one) == 0 {
		return big.NewInt(1), true
	}

	bn := big.NewInt(n)

	lo := big.NewInt(1)
	hi := new(big.Int).Lsh(one, uint(v.BitLen())/uint(n)+2)

	mid := &big.Int{}
	pow := &big.Int{}

	for lo.Cmp(hi) <= 0 {
		mid.Add(lo, hi)
		mid.Rsh(mid, 1)

		pow.Exp(mid, bn, nil)

		switch pow.Cmp(v) {
		case 0:
			return new(big.Int).Set(mid), true
		case -1:
			lo.Add(mid, one)
		case 1:
			hi.Sub(mid, one)
		}
	}

	return nil, false
}

// newtonRoot approximates the nth root of the positive rational x
// using Newton's method on big.Float values.
func newtonRoot(x *big.Rat, n int64) *big.Rat {
	f := new(big.Float).SetPrec(rootPrec).SetRat(x)

	// Start from a power of two near the result.
	exp := f.MantExp(nil)
	z := new(big.Float).SetPrec(rootPrec).SetMantExp(
		new(big.Float).SetPrec(rootPrec).SetInt64(1), exp/int(n),
	)

	nf := new(big.Float).SetPrec(rootPrec).SetInt64(n)
	nm1 := new(big.Float).SetPrec(rootPrec).SetInt64(n - 1)

	prev := new(big.Float).SetPrec(rootPrec)

	// z = ((n-1)*z + x/z^(n-1)) / n, until z stops moving.
	for i := 0; i < 4*int(rootPrec); i++ {
		prev.Set(z)

		t := new(big.Float).SetPrec(rootPrec).Quo(f, floatPow(z, n-1))
		z.Mul(z, nm1)
		z.Add(z, t)
		z.Quo(z, nf)

		if z.Cmp(prev) == 0 {
			break
		}
	}

	r, _ := z.Rat(nil)

	return r
}

// floatPow raises z to a nonnegative integer exponent by binary
// exponentiation.
func floatPow(z *big.Float, e int64) *big.Float {
	r := new(big.Float).SetPrec(rootPrec).SetInt64(1)
	b := new(big.Float).SetPrec(rootPrec).Set(z)

	for e > 0 {
		if e&1 == 1 {
			r.Mul(r, b)
		}

		b.Mul(b, b)
		e >>= 1
	}

	return r
}

//nolint:gochecknoglobals
var one = big.NewInt(1)

// round rounds r to the nearest value with at most digits decimal
// places, ties away from zero.
func round(r *big.Rat, digits int) *big.Rat {
	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(digits)), nil)

	t := new(big.Rat).Mul(r, new(big.Rat).SetInt(scale))

	q := &big.Int{}
	rem := &big.Int{}
	q.QuoRem(t.Num(), t.Denom(), rem)

	rem.Abs(rem)
	rem.Lsh(rem, 1)

	if rem.Cmp(t.Denom()) >= 0 {
		if t.Sign() >= 0 {
			q.Add(q, one)
		} else {
			q.Sub(q, one)
		}
	}

	return new(big.Rat).SetFrac(q, scale)
}

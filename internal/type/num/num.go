// Released under an MIT license. See LICENSE.

// Package num provides reckon's exact decimal number type.
package num

import (
	"math/big"
	"strings"
)

// T (num) wraps Go's big.Rat type. Arithmetic on nums is exact;
// rounding happens only when an inexact operation (a root, say)
// produces a value with no finite decimal expansion.
type T big.Rat

type num = T

// Display precision for values with no finite decimal expansion.
const inexactDigits = 32

// Parse creates a num from a string. It accepts everything big.Rat
// accepts: decimals, exponent notation, and a/b fractions.
func Parse(s string) (*T, error) {
	v := &big.Rat{}

	if _, ok := v.SetString(s); !ok {
		return nil, &parseError{s: s}
	}

	return (*num)(v), nil
}

// Int creates a num from the integer i.
func Int(i int) *T {
	return Rat(big.NewRat(int64(i), 1))
}

// Rat wraps the *big.Rat r as a num.
func Rat(r *big.Rat) *T {
	return (*num)(r)
}

// Equal returns true if the num o is the same number as the num n.
func (n *num) Equal(o *T) bool {
	return n.Rat().Cmp(o.Rat()) == 0
}

// IsInt returns true if the num n is an integer.
func (n *num) IsInt() bool {
	return n.Rat().IsInt()
}

// Rat returns the value of the num n as a *big.Rat.
func (n *num) Rat() *big.Rat {
	return (*big.Rat)(n)
}

// Sign returns -1, 0, or 1 depending on the sign of the num n.
func (n *num) Sign() int {
	return n.Rat().Sign()
}

// String returns the text of the num n: an exact decimal with
// trailing zeros stripped when the value has a finite decimal
// expansion, a decimal rounded to inexactDigits places otherwise.
// Formatting never changes the stored value.
func (n *num) String() string {
	r := n.Rat()

	if r.IsInt() {
		return r.Num().String()
	}

	digits, finite := expansion(r.Denom())
	if !finite {
		digits = inexactDigits
	}

	s := r.FloatString(digits)

	s = strings.TrimRight(s, "0")

	return strings.TrimRight(s, ".")
}

type parseError struct {
	s string
}

func (e *parseError) Error() string {
	return "'" + e.s + "' is not a valid number"
}

//nolint:gochecknoglobals
var (
	one  = big.NewInt(1)
	two  = big.NewInt(2)
	five = big.NewInt(5)
)

// expansion returns the number of digits in the decimal expansion of
// a fraction with the (reduced) denominator d, and false if that
// expansion never terminates.
func expansion(d *big.Int) (int, bool) {
	n := new(big.Int).Set(d)
	q := &big.Int{}
	r := &big.Int{}

	twos := 0

	for {
		q.QuoRem(n, two, r)
		if r.Sign() != 0 {
			break
		}

		n.Set(q)
		twos++
	}

	fives := 0

	for {
		q.QuoRem(n, five, r)
		if r.Sign() != 0 {
			break
		}

		n.Set(q)
		fives++
	}

	if n.Cmp(one) != 0 {
		return 0, false
	}

	if fives > twos {
		return fives, true
	}

	return twos, true
}

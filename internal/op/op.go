// Released under an MIT license. See LICENSE.

// Package op provides reckon's arithmetic operations: a closed set of
// kinds plus a factory that maps a command name to an operation.
package op

import (
	"math/big"
	"strings"

	"github.com/reckon-calc/reckon/internal/errs"
	"github.com/reckon-calc/reckon/internal/type/num"
)

// Kind identifies one of the six arithmetic operations.
type Kind int

// The full set of operation kinds.
const (
	Add Kind = iota
	Subtract
	Multiply
	Divide
	Power
	Root
)

// T (op) is a two-operand arithmetic operation.
type T struct {
	kind Kind
}

type operation = T

//nolint:gochecknoglobals
var (
	names = map[string]Kind{
		"add":      Add,
		"subtract": Subtract,
		"multiply": Multiply,
		"divide":   Divide,
		"power":    Power,
		"root":     Root,
	}

	display = map[Kind]string{
		Add:      "Addition",
		Subtract: "Subtraction",
		Multiply: "Multiplication",
		Divide:   "Division",
		Power:    "Power",
		Root:     "Root",
	}

	canonical = map[Kind]string{
		Add:      "add",
		Subtract: "subtract",
		Multiply: "multiply",
		Divide:   "divide",
		Power:    "power",
		Root:     "root",
	}
)

// Create maps the case-insensitive command name to an operation. It
// is a pure function; an unrecognized name is an UnknownOperation
// error.
func Create(name string) (T, error) {
	kind, ok := names[strings.ToLower(name)]
	if !ok {
		return T{}, &errs.UnknownOperation{Name: name}
	}

	return T{kind: kind}, nil
}

// Known returns true if the case-insensitive name maps to an
// operation.
func Known(name string) bool {
	_, ok := names[strings.ToLower(name)]

	return ok
}

// Kind returns the kind of the operation o.
func (o operation) Kind() Kind {
	return o.kind
}

// Name returns the canonical command name of the operation o.
func (o operation) Name() string {
	return canonical[o.kind]
}

// Display returns the capitalized name used in history lines.
func (o operation) Display() string {
	return display[o.kind]
}

// Apply computes the operation o over the operands left and right.
// Domain failures (division by zero, even root of a negative number)
// are Operation errors; a structurally unusable operand (a fractional
// root index, say) is a Validation error.
func (o operation) Apply(left, right *num.T) (*num.T, error) {
	l := left.Rat()
	r := right.Rat()

	switch o.kind {
	case Add:
		return num.Rat(new(big.Rat).Add(l, r)), nil

	case Subtract:
		return num.Rat(new(big.Rat).Sub(l, r)), nil

	case Multiply:
		return num.Rat(new(big.Rat).Mul(l, r)), nil

	case Divide:
		if r.Sign() == 0 {
			return nil, errs.NewOperation("Division by zero")
		}

		return num.Rat(new(big.Rat).Quo(l, r)), nil

	case Power:
		v, err := power(l, r)
		if err != nil {
			return nil, err
		}

		return num.Rat(v), nil

	case Root:
		v, err := root(l, r)
		if err != nil {
			return nil, err
		}

		return num.Rat(v), nil
	}

	// Create only ever hands out the kinds above.
	return nil, errs.NewOperation("invalid operation")
}

// Exponents and root indexes beyond this magnitude are rejected
// rather than computed.
const maxExponent = 1000000

func power(base, exponent *big.Rat) (*big.Rat, error) {
	if exponent.IsInt() {
		e, ok := small(exponent.Num())
		if !ok {
			return nil, errs.NewValidation("exponent out of range")
		}

		return intPow(base, e)
	}

	p, ok := small(exponent.Num())
	if !ok {
		return nil, errs.NewValidation("exponent out of range")
	}

	q, ok := small(exponent.Denom())
	if !ok {
		return nil, errs.NewValidation("exponent out of range")
	}

	if base.Sign() < 0 {
		return nil, errs.NewOperation("negative base with a fractional exponent")
	}

	t, err := intPow(base, p)
	if err != nil {
		return nil, err
	}

	return nthRoot(t, q)
}

func root(radicand, index *big.Rat) (*big.Rat, error) {
	if !index.IsInt() {
		return nil, errs.NewValidation("root index must be an integer")
	}

	n, ok := small(index.Num())
	if !ok {
		return nil, errs.NewValidation("root index out of range")
	}

	if n == 0 {
		return nil, errs.NewValidation("root index must be a nonzero integer")
	}

	return nthRoot(radicand, n)
}

// small returns v as an int64 if its magnitude is at most
// maxExponent.
func small(v *big.Int) (int64, bool) {
	if !v.IsInt64() {
		return 0, false
	}

	i := v.Int64()
	if i > maxExponent || i < -maxExponent {
		return 0, false
	}

	return i, true
}

// intPow raises base to an integer exponent. The result is always
// exact.
func intPow(base *big.Rat, e int64) (*big.Rat, error) {
	if e == 0 {
		if base.Sign() == 0 {
			return nil, errs.NewOperation("zero to the power of zero is undefined")
		}

		return big.NewRat(1, 1), nil
	}

	x := base
	if e < 0 {
		if base.Sign() == 0 {
			return nil, errs.NewOperation("zero cannot be raised to a negative power")
		}

		x = new(big.Rat).Inv(base)
		e = -e
	}

	be := big.NewInt(e)

	n := new(big.Int).Exp(x.Num(), be, nil)
	d := new(big.Int).Exp(x.Denom(), be, nil)

	return new(big.Rat).SetFrac(n, d), nil
}

package math

import (
	"github.com/bobg/errors"

	"github.com/db47h/bigint"
)

// mul returns x×y for two Ints of the same flavor.
//
// The shorter operand is walked digit by digit; every partial product is a
// single scalar multiply shifted into place and accumulated with Add.
func mul(x, y *bigint.Int) *bigint.Int {
	if x.Len() < y.Len() {
		x, y = y, x
	}
	f := x.Flavor()
	ax := x.Abs()
	z := f.NewInt(0)
	for i, d := range y.Digits() {
		if d == 0 {
			continue
		}
		p := ax.MulWord(d).ShiftDigits(i)
		var err error
		if z, err = z.Add(p); err != nil {
			// both operands are in flavor f
			panic(err)
		}
	}
	if x.Sign()*y.Sign() < 0 {
		return z.Neg()
	}
	return z
}

// Mul returns the product x×y using schoolbook multiplication. It fails with
// bigint.ErrFlavorMismatch if x and y do not share the same flavor.
func Mul(x, y *bigint.Int) (*bigint.Int, error) {
	if fx, fy := x.Flavor(), y.Flavor(); fx != fy {
		return nil, errors.Wrapf(bigint.ErrFlavorMismatch, "mul: %v and %v", fx, fy)
	}
	return mul(x, y), nil
}

// Pow returns x**n, with 0**0 == 1.
func Pow(x *bigint.Int, n uint64) *bigint.Int {
	f := x.Flavor()
	if n == 0 {
		return f.NewInt(1)
	}
	one := f.NewInt(1)
	y := one
	z := x

	for n > 1 {
		if n%2 != 0 {
			y = mul(y, z)
		}
		z = mul(z, z)
		if z.IsZero() {
			return z
		}
		n /= 2
	}
	if y.Equal(one) {
		return z
	}
	return mul(z, y)
}

// Factorial returns n! in flavor f.
func Factorial(f bigint.Flavor, n uint64) *bigint.Int {
	z := f.NewInt(1)
	for i := uint64(2); i <= n; i++ {
		if i <= bigint.MaxWord {
			z = z.MulWord(bigint.Word(i))
		} else {
			z = mul(z, f.NewUint64(i))
		}
	}
	return z
}

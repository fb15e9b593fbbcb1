// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigint

import (
	"fmt"
	"math"
	"math/big"

	"github.com/bobg/errors"
)

const debugInt = false

// An Int represents a signed integer of arbitrary magnitude, stored as a
// little-endian sequence of digits in the base of its Flavor.
//
// The zero value for an Int represents 0 in the Default flavor. Ints are
// immutable: every operation returns a new *Int and leaves its operands
// untouched, so an *Int may be shared freely between goroutines.
type Int struct {
	flavor Flavor
	mag    mag
	neg    bool
}

// NewInt returns a new Int in the Default flavor set to x.
func NewInt(x int64) *Int {
	return Default.NewInt(x)
}

// NewInt returns a new Int of flavor f set to x.
func (f Flavor) NewInt(x int64) *Int {
	f = f.or()
	u := uint64(x)
	if x < 0 {
		// also correct for math.MinInt64
		u = -u
	}
	return f.newInt(mag(nil).setUint64(u, f.base), x < 0)
}

// NewUint64 returns a new Int of flavor f set to x.
func (f Flavor) NewUint64(x uint64) *Int {
	f = f.or()
	return f.newInt(mag(nil).setUint64(x, f.base), false)
}

// FromDigits returns a new Int of flavor f with the given little-endian digits
// and sign. It fails with ErrDigitRange if a digit is not less than f's base.
// The digits are copied.
func (f Flavor) FromDigits(digits []Word, neg bool) (*Int, error) {
	f = f.or()
	for i, d := range digits {
		if uint64(d) >= f.base {
			return nil, errors.Wrapf(ErrDigitRange, "digit %d at index %d, %v", d, i, f)
		}
	}
	return f.newInt(mag(nil).set(digits), neg), nil
}

// FromBig returns a new Int of flavor f set to x.
func (f Flavor) FromBig(x *big.Int) *Int {
	f = f.or()
	var (
		q = new(big.Int).Abs(x)
		b = new(big.Int).SetUint64(f.base)
		r big.Int
		z mag
	)
	for q.Sign() != 0 {
		q.QuoRem(q, b, &r)
		z = append(z, Word(r.Uint64()))
	}
	return f.newInt(z, x.Sign() < 0)
}

// newInt canonicalizes m and neg into a new *Int. Every Int returned by the
// package goes through here.
func (f Flavor) newInt(m mag, neg bool) *Int {
	m = m.norm()
	if m.isZero() {
		neg = false
	}
	z := &Int{flavor: f, mag: m, neg: neg}
	if debugInt {
		z.validate()
	}
	return z
}

// abs returns the magnitude of x, which is mag{0} for the zero value.
func (x *Int) abs() mag {
	if len(x.mag) == 0 {
		return mag{0}
	}
	return x.mag
}

// Flavor returns the flavor of x.
func (x *Int) Flavor() Flavor {
	return x.flavor.or()
}

// Sign returns:
//
//	-1 if x <  0
//	 0 if x == 0
//	+1 if x >  0
//
func (x *Int) Sign() int {
	switch {
	case x.abs().isZero():
		return 0
	case x.neg:
		return -1
	}
	return 1
}

// IsZero reports whether x is zero.
func (x *Int) IsZero() bool {
	return x.abs().isZero()
}

// Len returns the number of digits of x. It is 1 for x == 0.
func (x *Int) Len() int {
	return len(x.abs())
}

// Digits returns a copy of the little-endian digits of |x|. The result holds
// at least one digit; the most significant digit is non-zero unless x == 0.
func (x *Int) Digits() []Word {
	return append([]Word(nil), x.abs()...)
}

// Neg returns -x.
func (x *Int) Neg() *Int {
	return x.Flavor().newInt(mag(nil).set(x.abs()), !x.neg)
}

// Abs returns |x|.
func (x *Int) Abs() *Int {
	return x.Flavor().newInt(mag(nil).set(x.abs()), false)
}

// checkFlavor returns ErrFlavorMismatch if x and y have different flavors.
func (x *Int) checkFlavor(y *Int) error {
	if fx, fy := x.Flavor(), y.Flavor(); fx != fy {
		return errors.Wrapf(ErrFlavorMismatch, "%v and %v", fx, fy)
	}
	return nil
}

// Add returns the sum x+y. It fails with ErrFlavorMismatch if x and y do not
// share the same flavor.
func (x *Int) Add(y *Int) (*Int, error) {
	if err := x.checkFlavor(y); err != nil {
		return nil, errors.Wrap(err, "add")
	}
	return x.add(y), nil
}

// Sub returns the difference x-y. It fails with ErrFlavorMismatch if x and y
// do not share the same flavor.
func (x *Int) Sub(y *Int) (*Int, error) {
	if err := x.checkFlavor(y); err != nil {
		return nil, errors.Wrap(err, "sub")
	}
	return x.add(y.Neg()), nil
}

// add returns x+y for two Ints of the same flavor.
//
// Each case either runs a carry or borrow loop or rewrites the operands into
// a case that does: neg+pos becomes pos+neg, and pos+neg with |pos| < |neg|
// becomes -((-y) + (-x)) where the positive operand is now the larger one.
func (x *Int) add(y *Int) *Int {
	f := x.Flavor()
	switch {
	case x.neg == y.neg:
		// neg + neg or pos + pos
		return f.newInt(mag(nil).add(x.abs(), y.abs(), f.base), x.neg)
	case x.neg:
		// neg + pos = pos + neg
		return y.add(x)
	case x.abs().cmp(y.abs()) < 0:
		// pos + neg, where |pos| < |neg|
		return y.Neg().add(x.Neg()).Neg()
	default:
		// pos + neg, where |pos| >= |neg|
		return f.newInt(mag(nil).sub(x.abs(), y.abs(), f.base), false)
	}
}

// Cmp compares x and y and returns:
//
//	-1 if x <  y
//	 0 if x == y
//	+1 if x >  y
//
// Ints of different flavors are compared by value: y is converted to the
// flavor of x first.
func (x *Int) Cmp(y *Int) (r int) {
	if x.Flavor() != y.Flavor() {
		y = y.convert(x.Flavor(), Horner)
	}
	// x.Sign() and y.Sign() already account for zero
	switch {
	case x.Sign() < y.Sign():
		return -1
	case x.Sign() > y.Sign():
		return 1
	}
	r = x.abs().cmp(y.abs())
	if x.neg {
		r = -r
	}
	return r
}

// CmpAbs compares the absolute values of x and y and returns -1, 0 or +1 like
// Cmp.
func (x *Int) CmpAbs(y *Int) int {
	if x.Flavor() != y.Flavor() {
		y = y.convert(x.Flavor(), Horner)
	}
	return x.abs().cmp(y.abs())
}

// Equal reports whether x == y.
func (x *Int) Equal(y *Int) bool { return x.Cmp(y) == 0 }

// Less reports whether x < y.
func (x *Int) Less(y *Int) bool { return x.Cmp(y) < 0 }

// Greater reports whether x > y.
func (x *Int) Greater(y *Int) bool { return x.Cmp(y) > 0 }

// MulWord returns x*y.
func (x *Int) MulWord(y Word) *Int {
	f := x.Flavor()
	return f.newInt(mag(nil).mulAddWW(x.abs(), uint64(y), 0, f.base), x.neg)
}

// QuoRemWord returns the quotient x/y and remainder x%y for y != 0, with the
// same truncated semantics as Go's / and % operators: the remainder has the
// sign of x. It fails with ErrDivisionByZero if y == 0.
func (x *Int) QuoRemWord(y Word) (q *Int, r int64, err error) {
	if y == 0 {
		return nil, 0, errors.Wrapf(ErrDivisionByZero, "%v / 0", x)
	}
	f := x.Flavor()
	m, rr := mag(nil).divW(x.abs(), uint64(y), f.base)
	r = int64(rr)
	if x.neg {
		r = -r
	}
	return f.newInt(m, x.neg), r, nil
}

// ShiftDigits returns x * base**n where base is the base of x's flavor. It
// panics if n < 0.
func (x *Int) ShiftDigits(n int) *Int {
	if n < 0 {
		panic("bigint: negative digit shift")
	}
	return x.Flavor().newInt(mag(nil).shl(x.abs(), n), x.neg)
}

// Int64 returns the int64 value of x and a boolean indicating whether x fits
// in an int64.
func (x *Int) Int64() (int64, bool) {
	b := x.Flavor().base
	m := x.abs()
	var u uint64
	for i := len(m) - 1; i >= 0; i-- {
		if u > (math.MaxUint64-uint64(m[i]))/b {
			return 0, false
		}
		u = u*b + uint64(m[i])
	}
	switch {
	case x.neg && u <= 1<<63:
		return -int64(u), true
	case !x.neg && u <= math.MaxInt64:
		return int64(u), true
	}
	return 0, false
}

// BigInt returns the value of x as a new *big.Int.
func (x *Int) BigInt() *big.Int {
	var (
		z = new(big.Int)
		b = new(big.Int).SetUint64(x.Flavor().base)
		d big.Int
		m = x.abs()
	)
	for i := len(m) - 1; i >= 0; i-- {
		z.Mul(z, b)
		z.Add(z, d.SetUint64(uint64(m[i])))
	}
	if x.neg {
		z.Neg(z)
	}
	return z
}

// validate panics if x breaks one of the canonical form invariants.
func (x *Int) validate() {
	f := x.Flavor()
	m := x.mag
	if len(m) == 0 {
		if x.neg {
			panic("negative zero value")
		}
		return
	}
	if len(m) > 1 && m[len(m)-1] == 0 {
		panic(fmt.Sprintf("most significant digit of %v is zero", []Word(m)))
	}
	if x.neg && m.isZero() {
		panic("negative zero")
	}
	for i, d := range m {
		if uint64(d) >= f.base {
			panic(fmt.Sprintf("digit %d at index %d out of range for %v", d, i, f))
		}
	}
}

// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file provides the digit and vector primitives of the package. Every
// primitive takes the digit base b explicitly; 2 <= b <= MaxBase, and all
// digits passed in satisfy 0 <= d < b.

package bigint

import "math/bits"

// A Word is a single digit of an Int's magnitude.
type Word uint32

// MaxWord is the largest value a Word can hold.
const MaxWord = 1<<32 - 1

var pow10tab = [...]uint64{
	1, 10, 100, 1000, 10000, 100000, 1000000, 10000000, 100000000, 1000000000,
	10000000000, 100000000000, 1000000000000, 10000000000000, 100000000000000, 1000000000000000,
	10000000000000000, 100000000000000000, 1000000000000000000, 10000000000000000000,
}

func pow10(n uint) uint64 {
	return pow10tab[n]
}

var pow2digitsTab = [...]uint{
	1, 1, 1, 1, 2, 2, 2, 3, 3, 3, 4, 4, 4, 4, 5, 5,
	5, 6, 6, 6, 7, 7, 7, 7, 8, 8, 8, 9, 9, 9, 10, 10,
	10, 10, 11, 11, 11, 12, 12, 12, 13, 13, 13, 13, 14, 14, 14, 15,
	15, 15, 16, 16, 16, 16, 17, 17, 17, 18, 18, 18, 19, 19, 19, 20, 20,
}

// decDigits returns n such that 10**(n-1) <= x < 10**n. In other words, n is
// the number of decimal digits required to represent x. Returns 0 for x == 0.
func decDigits(x uint64) (n uint) {
	if x == 0 {
		return 0
	}
	n = pow2digitsTab[bits.Len64(x)]
	if x < pow10tab[n-1] {
		n--
	}
	return n
}

// maxPow returns (b**n, n) with n the largest power of b such that
// b**n <= MaxBase. In other words, at most n base-b digits fit in a single
// divisor or multiplier of the vector primitives.
func maxPow(b uint64) (p uint64, n int) {
	p, n = b, 1
	for p <= MaxBase/b {
		p *= b
		n++
	}
	return p, n
}

//-----------------------------------------------------------------------------
// Digit primitives
//

// addWWW returns the digit s and carry c of x + y + cIn in base b.
// The resulting carry c is either 0 or 1.
func addWWW(x, y, cIn Word, b uint64) (s, c Word) {
	t := uint64(x) + uint64(y) + uint64(cIn)
	if t >= b {
		return Word(t - b), 1
	}
	return Word(t), 0
}

// subWWW returns the digit d and borrow c of x - y - bIn in base b.
// The resulting borrow c is either 0 or 1.
func subWWW(x, y, bIn Word, b uint64) (d, c Word) {
	t := int64(x) - int64(bIn) - int64(y)
	if t < 0 {
		return Word(t + int64(b)), 1
	}
	return Word(t), 0
}

// mulAddWWW returns the digit z0 and carry z1 of x*y + c in base b, that is
// z1*b + z0 = x*y + c. y and c are not restricted to the range of a digit.
func mulAddWWW(x Word, y, c, b uint64) (z1 uint64, z0 Word) {
	hi, lo := bits.Mul64(uint64(x), y)
	lo, cc := bits.Add64(lo, c, 0)
	// y <= MaxBase so hi+cc <= 1 < b and the quotient fits in 64 bits.
	q, r := bits.Div64(hi+cc, lo, b)
	return q, Word(r)
}

// divWWW returns q = (u1*b + u0)/y and r = (u1*b + u0)%y with u1 < y.
func divWWW(u1 uint64, u0 Word, y, b uint64) (q Word, r uint64) {
	hi, lo := bits.Mul64(u1, b)
	lo, cc := bits.Add64(lo, uint64(u0), 0)
	qq, r := bits.Div64(hi+cc, lo, y)
	return Word(qq), r
}

//-----------------------------------------------------------------------------
// Vector primitives
//

// addVV sets z = x + y digit by digit and returns the carry out.
// The resulting carry c is either 0 or 1.
func addVV(z, x, y []Word, b uint64) (c Word) {
	for i := 0; i < len(z) && i < len(x) && i < len(y); i++ {
		z[i], c = addWWW(x[i], y[i], c, b)
	}
	return
}

// subVV sets z = x - y digit by digit and returns the borrow out.
// The resulting borrow c is either 0 or 1.
func subVV(z, x, y []Word, b uint64) (c Word) {
	for i := 0; i < len(z) && i < len(x) && i < len(y); i++ {
		z[i], c = subWWW(x[i], y[i], c, b)
	}
	return
}

// addVW sets z = x + y where y is a single digit, propagating the carry.
// The resulting carry c is either 0 or 1.
func addVW(z, x []Word, y Word, b uint64) (c Word) {
	c = y
	for i := 0; i < len(z) && i < len(x); i++ {
		if c == 0 {
			// copy remaining digits if not adding in-place
			if !same(z, x) {
				copy(z[i:], x[i:])
			}
			return 0
		}
		z[i], c = addWWW(x[i], 0, c, b)
	}
	return
}

// subVW sets z = x - y where y is a single digit, propagating the borrow.
// The resulting borrow c is either 0 or 1.
func subVW(z, x []Word, y Word, b uint64) (c Word) {
	c = y
	for i := 0; i < len(z) && i < len(x); i++ {
		if c == 0 {
			if !same(z, x) {
				copy(z[i:], x[i:])
			}
			return 0
		}
		z[i], c = subWWW(x[i], 0, c, b)
	}
	return
}

// mulAddVWW sets z = x*y + r and returns the carry out. y and r may exceed the
// digit range; so may the returned carry.
func mulAddVWW(z, x []Word, y, r, b uint64) (c uint64) {
	c = r
	for i := 0; i < len(z) && i < len(x); i++ {
		c, z[i] = mulAddWWW(x[i], y, c, b)
	}
	return
}

// divVWW sets z = (xn*b**len(x) + x) / y and returns the remainder. It walks
// the digits from most to least significant, propagating the remainder.
// xn must be < y.
func divVWW(z, x []Word, y, xn, b uint64) (r uint64) {
	r = xn
	for i := len(z) - 1; i >= 0; i-- {
		z[i], r = divWWW(r, x[i], y, b)
	}
	return
}

// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigint

// mag is an unsigned integer x of the form
//
//   x = x[n-1]*b^(n-1) + x[n-2]*b^(n-2) + ... + x[1]*b + x[0]
//
// with 0 <= x[i] < b and 0 <= i < n is stored in a slice of length n, with the
// digits x[i] as the slice elements. The base b is not part of the mag; it is
// carried by the Flavor of the owning Int and passed to every operation.
//
// A mag is normalized if the slice contains no leading 0 digits and at least
// one digit. During arithmetic operations, denormalized values may occur but
// are always normalized before returning the final result. The normalized
// representation of 0 is mag{0}.
type mag []Word

// norm truncates leading zero digits. The zero value is returned as mag{0}.
func (z mag) norm() mag {
	i := len(z)
	for i > 1 && z[i-1] == 0 {
		i--
	}
	if i == 0 {
		return append(z[:0], 0)
	}
	return z[:i]
}

func (x mag) isZero() bool {
	return len(x) == 0 || len(x) == 1 && x[0] == 0
}

func (z mag) make(n int) mag {
	if n <= cap(z) {
		return z[:n] // reuse z
	}
	if n == 1 {
		// Most mags start small and stay that way; don't over-allocate.
		return make(mag, 1)
	}
	// Choosing a good value for e has significant performance impact
	// because it increases the chance that a value can be reused.
	const e = 4 // extra capacity
	return make(mag, n, n+e)
}

func (z mag) set(x mag) mag {
	z = z.make(len(x))
	copy(z, x)
	return z
}

// setUint64 sets z to x in base b.
func (z mag) setUint64(x, b uint64) mag {
	z = z[:0]
	for {
		z = append(z, Word(x%b))
		x /= b
		if x == 0 {
			return z
		}
	}
}

// cmp compares x and y, both normalized, and returns:
//
//	-1 if x <  y
//	 0 if x == y
//	+1 if x >  y
//
func (x mag) cmp(y mag) (r int) {
	m, n := len(x), len(y)
	if m != n || m == 0 {
		switch {
		case m < n:
			r = -1
		case m > n:
			r = 1
		}
		return
	}

	i := m - 1
	for i > 0 && x[i] == y[i] {
		i--
	}

	switch {
	case x[i] < y[i]:
		r = -1
	case x[i] > y[i]:
		r = 1
	}
	return
}

// add sets z = x + y.
func (z mag) add(x, y mag, b uint64) mag {
	m, n := len(x), len(y)
	switch {
	case m < n:
		return z.add(y, x, b)
	case n == 0:
		return z.set(x).norm()
	}
	// m >= n > 0

	z = z.make(m + 1)
	c := addVV(z[0:n], x, y, b)
	if m > n {
		c = addVW(z[n:m], x[n:], c, b)
	}
	z[m] = c

	return z.norm()
}

// sub sets z = x - y. It panics if x < y.
func (z mag) sub(x, y mag, b uint64) mag {
	m, n := len(x), len(y)
	switch {
	case m < n:
		panic("underflow")
	case n == 0:
		return z.set(x).norm()
	}
	// m >= n > 0

	z = z.make(m)
	c := subVV(z[0:n], x, y, b)
	if m > n {
		c = subVW(z[n:], x[n:], c, b)
	}
	if c != 0 {
		panic("underflow")
	}

	return z.norm()
}

// mulAddWW sets z = x*y + r. y and r are not restricted to the range of a
// digit: the carry out of the last digit is split into as many base-b digits
// as needed.
func (z mag) mulAddWW(x mag, y, r, b uint64) mag {
	m := len(x)
	if m == 0 || y == 0 {
		return z.setUint64(r, b)
	}
	// m > 0

	z = z.make(m)
	c := mulAddVWW(z, x, y, r, b)
	for c != 0 {
		z = append(z, Word(c%b))
		c /= b
	}

	return z.norm()
}

// divW sets z = x / y and returns z and the remainder x % y. y must be
// non-zero and at most MaxBase.
func (z mag) divW(x mag, y, b uint64) (q mag, r uint64) {
	m := len(x)
	switch {
	case y == 0:
		panic("division by zero")
	case y == 1:
		q = z.set(x).norm()
		return
	case m == 0:
		q = z.make(1)
		q[0] = 0
		return
	}
	// m > 0

	z = z.make(m)
	r = divVWW(z, x, y, 0, b)
	q = z.norm()
	return
}

// shl sets z = x * b**n.
func (z mag) shl(x mag, n int) mag {
	if n <= 0 || x.isZero() {
		return z.set(x).norm()
	}
	z = z.make(len(x) + n)
	copy(z[n:], x)
	for i := 0; i < n; i++ {
		z[i] = 0
	}
	return z
}

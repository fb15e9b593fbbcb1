// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigint

import (
	"reflect"
	"strconv"
	"testing"
)

const (
	_B = 1000000000
	_M = _B - 1
)

var magCmpTests = []struct {
	x, y mag
	r    int
}{
	{mag{0}, mag{0}, 0},
	{mag{0}, mag{1}, -1},
	{mag{1}, mag{0}, 1},
	{mag{1}, mag{1}, 0},
	{mag{0, _M}, mag{1}, 1},
	{mag{1}, mag{0, _M}, -1},
	{mag{1, _M}, mag{0, _M}, 1},
	{mag{0, _M}, mag{1, _M}, -1},
	{mag{5, 3}, mag{9, 3}, -1}, // equal most significant digits
	{mag{16, 571956, 8794, 68}, mag{837, 9146, 1, 754489}, -1},
	{mag{34986, 41, 105, 1957}, mag{56, 7458, 104, 1957}, 1},
}

func TestMagCmp(t *testing.T) {
	for i, a := range magCmpTests {
		r := a.x.cmp(a.y)
		if r != a.r {
			t.Errorf("#%d got r = %v; want %v", i, r, a.r)
		}
	}
}

func TestMagNorm(t *testing.T) {
	for i, d := range []struct {
		in, out mag
	}{
		{nil, mag{0}},
		{mag{}, mag{0}},
		{mag{0}, mag{0}},
		{mag{0, 0, 0}, mag{0}},
		{mag{1, 0, 0}, mag{1}},
		{mag{0, 0, 7}, mag{0, 0, 7}},
		{mag{0, 7, 0}, mag{0, 7}},
	} {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			z := d.in.norm()
			if !reflect.DeepEqual(z, d.out) {
				t.Fatalf("norm(%v) = %v, want %v", d.in, z, d.out)
			}
			// idempotent
			if zz := z.norm(); !reflect.DeepEqual(zz, z) {
				t.Fatalf("norm(norm(%v)) = %v, want %v", d.in, zz, z)
			}
		})
	}
}

type magFunNN func(z, x, y mag, b uint64) mag
type magArgNN struct {
	b       uint64
	z, x, y mag
}

var magSumNN = []magArgNN{
	{_B, mag{0}, mag{0}, mag{0}},
	{_B, mag{1}, mag{0}, mag{1}},
	{_B, mag{111111110, 1}, mag{123456789}, mag{987654321}},
	{_B, mag{0, 0, 0, 1}, mag{0}, mag{0, 0, 0, 1}},
	{_B, mag{0, 0, 0, 111111110, 1}, mag{0, 0, 0, 123456789}, mag{0, 0, 0, 987654321}},
	{_B, mag{0, 0, 0, 1}, mag{0, 0, _M}, mag{0, 0, 1}},
	{_B, mag{0, 0, 1}, mag{_M, _M}, mag{1}},
	{3, mag{0, 0, 1}, mag{2, 2}, mag{1}},
	{3, mag{1, 0, 2}, mag{2, 1, 1}, mag{2, 1}},
	{2, mag{0, 0, 0, 1}, mag{1, 1, 1}, mag{1}},
	{MaxBase, mag{0, 1}, mag{MaxWord}, mag{1}},
	{MaxBase, mag{MaxWord - 1, 1}, mag{MaxWord}, mag{MaxWord}},
}

func magTestFunNN(t *testing.T, msg string, f magFunNN, a magArgNN) {
	t.Helper()
	z := f(nil, a.x, a.y, a.b)
	if z.cmp(a.z) != 0 {
		t.Errorf("%s%+v\n\tgot z = %v; want %v", msg, a, z, a.z)
	}
}

func TestMagFunNN(t *testing.T) {
	for _, a := range magSumNN {
		arg := a
		magTestFunNN(t, "add", mag.add, arg)

		arg = magArgNN{a.b, a.z, a.y, a.x}
		magTestFunNN(t, "add symmetric", mag.add, arg)

		arg = magArgNN{a.b, a.x, a.z, a.y}
		magTestFunNN(t, "sub", mag.sub, arg)

		arg = magArgNN{a.b, a.y, a.z, a.x}
		magTestFunNN(t, "sub symmetric", mag.sub, arg)
	}
}

func TestMagSubUnderflow(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on underflow")
		}
	}()
	mag(nil).sub(mag{1}, mag{0, 1}, _B)
}

func TestMagMulAddWW(t *testing.T) {
	for i, d := range []struct {
		b    uint64
		x    mag
		y, r uint64
		z    mag
	}{
		{_B, mag{_M}, 2, 1, mag{_M, 1}},
		{_B, mag{0}, 7, 5, mag{5}},
		{_B, nil, _B, 1234, mag{1234}},
		{3, nil, 10, 5, mag{2, 1}},
		{3, mag{1}, 10, 5, mag{0, 2, 1}}, // 15 = 120 in base 3
		{3, mag{2, 1}, _B, 0, mag(nil).setUint64(5*_B, 3)},
		{MaxBase, mag{MaxWord}, MaxBase, MaxWord, mag{MaxWord, MaxWord}},
	} {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			z := mag(nil).mulAddWW(d.x, d.y, d.r, d.b)
			if z.cmp(d.z) != 0 {
				t.Fatalf("%v*%d + %d (base %d) = %v, want %v", d.x, d.y, d.r, d.b, z, d.z)
			}
		})
	}
}

func TestMagDivW(t *testing.T) {
	for i, d := range []struct {
		b uint64
		x mag
		y uint64
		q mag
		r uint64
	}{
		{_B, mag{0, 1}, 7, mag{142857142}, 6},
		{_B, mag{0}, 7, mag{0}, 0},
		{_B, mag{5}, 1, mag{5}, 0},
		{_B, mag{123, 456, 789}, _B, mag{456, 789}, 123},
		{3, mag{0, 0, 1}, 2, mag{1, 1}, 1}, // 9 / 2 = 4 r 1
		{3, mag{2, 2, 2}, 27, mag{0}, 26},
		{MaxBase, mag{0, 1}, MaxBase, mag{1}, 0},
	} {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			q, r := mag(nil).divW(d.x, d.y, d.b)
			if q.cmp(d.q) != 0 || r != d.r {
				t.Fatalf("%v / %d (base %d) = %v r %d, want %v r %d", d.x, d.y, d.b, q, r, d.q, d.r)
			}
		})
	}
}

func TestMagShl(t *testing.T) {
	if z := mag(nil).shl(mag{7, 1}, 2); !reflect.DeepEqual(z, mag{0, 0, 7, 1}) {
		t.Fatalf("shl = %v", z)
	}
	if z := mag(nil).shl(mag{0}, 5); !reflect.DeepEqual(z, mag{0}) {
		t.Fatalf("shl of zero = %v", z)
	}
}

// rndMag returns a random normalized mag in base b of (usually) n digits.
func rndMag(n int, b uint64) mag {
	return mag(rndV(n, b)).norm()
}

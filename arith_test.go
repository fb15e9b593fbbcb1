// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigint

import (
	"math/big"
	"math/bits"
	"math/rand"
	"reflect"
	"strconv"
	"testing"
)

var rnd = rand.New(rand.NewSource(1))

func rndW(b uint64) Word {
	return Word(rnd.Uint64() % b)
}

func rndV(n int, b uint64) []Word {
	v := make([]Word, n)
	for i := range v {
		v[i] = rndW(b)
	}
	return v
}

var testBases = []uint64{2, 3, 7, 10, 1 << 16, _B, MaxBase - 1, MaxBase}

func TestAddVW(t *testing.T) {
	td := []struct {
		i []Word
		x Word
		o []Word
		c Word
	}{
		{[]Word{_M - 1, _M}, 2, []Word{0, 0}, 1},
		{[]Word{_M - 1, _M}, 1, []Word{_M, _M}, 0},
		{[]Word{_M - 1, _M - 1}, 2, []Word{0, _M}, 0},
		{[]Word{3, 4}, 0, []Word{3, 4}, 0},
	}
	for i, d := range td {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			z := make([]Word, len(d.i))
			c := addVW(z, d.i, d.x, _B)
			if !reflect.DeepEqual(z, d.o) || c != d.c {
				t.Fatalf("addVW failed: expected z = %v, c = %d, got z = %v, c = %v", d.o, d.c, z, c)
			}
		})
	}
}

func TestSubVW(t *testing.T) {
	td := []struct {
		i []Word
		x Word
		o []Word
		c Word
	}{
		{[]Word{0, 0}, 1, []Word{_M, _M}, 1},
		{[]Word{0, 1}, 1, []Word{_M, 0}, 0},
		{[]Word{3, 4}, 0, []Word{3, 4}, 0},
	}
	for i, d := range td {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			z := make([]Word, len(d.i))
			c := subVW(z, d.i, d.x, _B)
			if !reflect.DeepEqual(z, d.o) || c != d.c {
				t.Fatalf("subVW failed: expected z = %v, c = %d, got z = %v, c = %v", d.o, d.c, z, c)
			}
		})
	}
}

func TestDigitPrimitives(t *testing.T) {
	for _, b := range testBases {
		for i := 0; i < 10000; i++ {
			x, y := rndW(b), rndW(b)
			c := Word(rnd.Intn(2))

			s, cc := addWWW(x, y, c, b)
			if uint64(cc)*b+uint64(s) != uint64(x)+uint64(y)+uint64(c) || uint64(s) >= b {
				t.Fatalf("base %d: %d + %d + %d = %d, %d", b, x, y, c, cc, s)
			}

			d, bb := subWWW(x, y, c, b)
			if int64(d)-int64(bb)*int64(b) != int64(x)-int64(y)-int64(c) || uint64(d) >= b {
				t.Fatalf("base %d: %d - %d - %d = %d, %d", b, x, y, c, bb, d)
			}
		}
	}
}

func TestMulAddWWW(t *testing.T) {
	for _, b := range testBases {
		bb := new(big.Int).SetUint64(b)
		for i := 0; i < 1000; i++ {
			x := rndW(b)
			y := rnd.Uint64()%MaxBase + 1
			c := rnd.Uint64()
			hi, lo := mulAddWWW(x, y, c, b)

			want := new(big.Int).SetUint64(uint64(x))
			want.Mul(want, new(big.Int).SetUint64(y))
			want.Add(want, new(big.Int).SetUint64(c))
			got := new(big.Int).SetUint64(hi)
			got.Mul(got, bb)
			got.Add(got, new(big.Int).SetUint64(uint64(lo)))
			if got.Cmp(want) != 0 || uint64(lo) >= b {
				t.Fatalf("base %d: %d*%d + %d = %d*b + %d", b, x, y, c, hi, lo)
			}
		}
	}
}

func TestDivWWW(t *testing.T) {
	for _, b := range testBases {
		for i := 0; i < 1000; i++ {
			y := rnd.Uint64()%MaxBase + 1
			u1, u0 := rnd.Uint64()%y, rndW(b)
			q, r := divWWW(u1, u0, y, b)

			hi, lo := bits.Mul64(u1, b)
			lo, cc := bits.Add64(lo, uint64(u0), 0)
			qq, rr := bits.Div64(hi+cc, lo, y)
			if uint64(q) != qq || r != rr || uint64(q) >= b {
				t.Fatalf("base %d: (%d*b + %d) / %d = %d r %d, want %d r %d", b, u1, u0, y, q, r, qq, rr)
			}
		}
	}
}

func TestDecDigits(t *testing.T) {
	for i := 0; i < 10000; i++ {
		n := rnd.Uint64()
		d := uint(0)
		for m := n; m != 0; m /= 10 {
			d++
		}
		if dd := decDigits(n); dd != d {
			t.Fatalf("decDigits(%d) = %d, expected %d", n, dd, d)
		}
	}
}

func TestMaxPow(t *testing.T) {
	for _, d := range []struct {
		b uint64
		p uint64
		n int
	}{
		{2, 1 << 32, 32},
		{10, 1000000000, 9},
		{16, 1 << 32, 8},
		{62, 62 * 62 * 62 * 62 * 62, 5},
		{MaxBase, MaxBase, 1},
	} {
		if p, n := maxPow(d.b); p != d.p || n != d.n {
			t.Errorf("maxPow(%d) = %d, %d; want %d, %d", d.b, p, n, d.p, d.n)
		}
	}
}

var benchW Word

func BenchmarkAddVV(b *testing.B) {
	x, y := rndV(1000, _B), rndV(1000, _B)
	z := make([]Word, 1000)
	for i := 0; i < b.N; i++ {
		benchW = addVV(z, x, y, _B)
	}
}

func BenchmarkMulAddVWW(b *testing.B) {
	x := rndV(1000, _B)
	z := make([]Word, 1000)
	for i := 0; i < b.N; i++ {
		benchW = Word(mulAddVWW(z, x, 3, 1, _B) % _B)
	}
}

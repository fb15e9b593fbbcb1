// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements string conversion functions.

package bigint

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/bobg/errors"
)

// Parse is like Default.Parse(s).
func Parse(s string) (*Int, error) {
	return Default.Parse(s)
}

// Parse returns a new Int of flavor f set to the value of s. s must be a
// sequence of decimal digits, optionally preceded by a single '+' or '-' sign:
//
//	number = [ "+" | "-" ] { "0" ... "9" } .
//
// Leading zeros are ignored. An empty digit sequence denotes 0, as do "-0" and
// "+0". Any other character fails with ErrInvalidFormat and no Int is
// returned.
func (f Flavor) Parse(s string) (*Int, error) {
	r := strings.NewReader(s)
	z, err := f.scan(r)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing %q", s)
	}
	// entire string must have been consumed
	if ch, err := r.ReadByte(); err == nil {
		off := len(s) - r.Len() - 1
		return nil, errors.Wrapf(ErrInvalidFormat, "parsing %q: unexpected %q at offset %d", s, ch, off)
	}
	return z, nil
}

// SetString is a convenience wrapper around Parse for callers that only need
// to know whether s was valid.
func (f Flavor) SetString(s string) (*Int, bool) {
	z, err := f.Parse(s)
	return z, err == nil
}

// scan reads the longest prefix of r that is an optionally signed decimal
// number and returns its value in flavor f. The first byte that is not a
// digit is unread.
func (f Flavor) scan(r io.ByteScanner) (*Int, error) {
	f = f.or()
	neg, err := scanSign(r)
	if err != nil {
		if err == io.EOF {
			return f.NewInt(0), nil
		}
		return nil, err
	}

	// collect digits, skipping leading zeros
	var buf []byte
	for {
		ch, err := r.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if ch < '0' || ch > '9' {
			if err := r.UnreadByte(); err != nil {
				return nil, err
			}
			break
		}
		if ch == '0' && len(buf) == 0 {
			continue
		}
		buf = append(buf, ch)
	}

	if f.pow10 {
		return f.newInt(groupDigits(buf, f.width), neg), nil
	}
	return f.newInt(hornerDigits(buf, f.base), neg), nil
}

func scanSign(r io.ByteScanner) (neg bool, err error) {
	var ch byte
	if ch, err = r.ReadByte(); err != nil {
		return false, err
	}
	switch ch {
	case '-':
		neg = true
	case '+':
		// nothing to do
	default:
		err = r.UnreadByte()
	}
	return
}

// groupDigits converts the decimal digits s, most significant first, into a
// mag in base 10**width by cutting s into chunks of width characters from the
// right.
func groupDigits(s []byte, width int) mag {
	z := make(mag, 0, (len(s)+width-1)/width)
	for i := len(s); i > 0; i -= width {
		j := i - width
		if j < 0 {
			j = 0
		}
		var d Word
		for _, ch := range s[j:i] {
			d = d*10 + Word(ch-'0')
		}
		z = append(z, d)
	}
	return z
}

// hornerDigits converts the decimal digits s, most significant first, into a
// mag in base b. Digits are collected in groups of at most n in di, and each
// group is added with a single mulAddWW pass.
func hornerDigits(s []byte, b uint64) mag {
	var z mag
	bn, n := maxPow(10)
	di := uint64(0)
	i := 0
	for _, ch := range s {
		di = di*10 + uint64(ch-'0')
		i++
		// if di is "full", add it to the result
		if i == n {
			z = z.mulAddWW(z, bn, di, b)
			di = 0
			i = 0
		}
	}
	// add remaining digits to result
	if i > 0 {
		z = z.mulAddWW(z, pow10(uint(i)), di, b)
	}
	return z
}

// String returns the decimal representation of x.
func (x *Int) String() string {
	if x == nil {
		return "<nil>"
	}
	return string(x.appendDecimal(nil))
}

// appendDecimal appends the decimal representation of x to buf: a '-' sign if
// x < 0, the most significant digit without padding, then every remaining
// digit zero-padded to the flavor's width.
func (x *Int) appendDecimal(buf []byte) []byte {
	f := x.Flavor()
	if !f.pow10 {
		x = x.convert(Default, Horner)
		f = Default
	}
	m := x.abs()
	if x.neg {
		buf = append(buf, '-')
	}
	buf = strconv.AppendUint(buf, uint64(m[len(m)-1]), 10)
	var tmp [20]byte
	for i := len(m) - 2; i >= 0; i-- {
		d := strconv.AppendUint(tmp[:0], uint64(m[i]), 10)
		buf = append(buf, zeros[:f.width-len(d)]...)
		buf = append(buf, d...)
	}
	return buf
}

const zeros = "0000000000"

// Text returns the string representation of x in the given base. Base must be
// between 2 and MaxTextBase, inclusive. Digits above 9 use the lowercase
// letters 'a' to 'z' for values 10 to 35, and the uppercase letters 'A' to 'Z'
// for values 36 to 61. No prefix is added.
func (x *Int) Text(base int) string {
	if x == nil {
		return "<nil>"
	}
	return string(x.Append(nil, base))
}

// Append appends the string representation of x, as generated by
// x.Text(base), to buf and returns the extended buffer.
func (x *Int) Append(buf []byte, base int) []byte {
	if x == nil {
		return append(buf, "<nil>"...)
	}
	if base == 10 {
		return x.appendDecimal(buf)
	}
	if base < 2 || base > MaxTextBase {
		panic("invalid base")
	}
	if x.neg {
		buf = append(buf, '-')
	}
	return append(buf, x.abs().itoa(x.Flavor().base, digits[:base])...)
}

// itoa converts x, in base b, to its representation with the digit alphabet
// cs, whose length is the output base.
func (x mag) itoa(b uint64, cs string) []byte {
	if x.isZero() {
		return []byte{cs[0]}
	}
	base := uint64(len(cs))
	bb, ndigits := maxPow(base)

	// preserve x, create local copy for use by the division loop
	q := mag(nil).set(x)
	var s []byte
	for !q.isZero() {
		// extract least significant, base bb "digit"
		var r uint64
		q, r = q.divW(q, bb, b)
		for j := 0; j < ndigits; j++ {
			s = append(s, cs[r%base])
			r /= base
		}
	}

	// strip leading zeros
	// (x != 0; thus s must contain at least one non-zero digit
	// and the loop will terminate)
	i := len(s)
	for s[i-1] == cs[0] {
		i--
	}
	s = s[:i]

	// s is little endian
	for l, r := 0, len(s)-1; l < r; l, r = l+1, r-1 {
		s[l], s[r] = s[r], s[l]
	}
	return s
}

func charset(ch rune) string {
	switch ch {
	case 'b':
		return digits[0:2]
	case 'o':
		return digits[0:8]
	case 'd', 's', 'v':
		return digits[0:10]
	case 'x':
		return digits[0:16]
	case 'X':
		return "0123456789ABCDEF"
	}
	return "" // unknown format
}

// write count copies of text to s
func writeMultiple(s fmt.State, text string, count int) {
	if len(text) > 0 {
		b := []byte(text)
		for ; count > 0; count-- {
			s.Write(b)
		}
	}
}

var _ fmt.Formatter = (*Int)(nil)

// Format implements fmt.Formatter. It accepts the formats 'b' (binary), 'o'
// (octal), 'd' (decimal), 'x' (lowercase hexadecimal), and 'X' (uppercase
// hexadecimal), as well as 's' and 'v' which are the same as 'd'. The '+' and
// ' ' flags control the sign, '#' adds a 0b, 0, 0x or 0X prefix, and field
// width with the '-' and '0' flags control padding.
func (x *Int) Format(s fmt.State, ch rune) {
	cs := charset(ch)

	// special cases
	switch {
	case cs == "":
		// unknown format
		fmt.Fprintf(s, "%%!%c(bigint.Int=%s)", ch, x.String())
		return
	case x == nil:
		fmt.Fprint(s, "<nil>")
		return
	}

	// determine sign character
	sign := ""
	switch {
	case x.neg:
		sign = "-"
	case s.Flag('+'): // supersedes ' ' when both specified
		sign = "+"
	case s.Flag(' '):
		sign = " "
	}

	// determine prefix characters for indicating output base
	prefix := ""
	if s.Flag('#') {
		switch ch {
		case 'b':
			prefix = "0b"
		case 'o':
			prefix = "0"
		case 'x':
			prefix = "0x"
		case 'X':
			prefix = "0X"
		}
	}

	var body string
	if len(cs) == 10 {
		body = string(x.Abs().appendDecimal(nil))
	} else {
		body = string(x.abs().itoa(x.Flavor().base, cs))
	}

	var left, zeroes, right int
	if width, ok := s.Width(); ok {
		if d := width - len(sign) - len(prefix) - len(body); d > 0 {
			switch {
			case s.Flag('-'):
				right = d
			case s.Flag('0'):
				zeroes = d
			default:
				left = d
			}
		}
	}

	writeMultiple(s, " ", left)
	writeMultiple(s, sign, 1)
	writeMultiple(s, prefix, 1)
	writeMultiple(s, "0", zeroes)
	writeMultiple(s, body, 1)
	writeMultiple(s, " ", right)
}

var _ fmt.Scanner = (*Int)(nil)

// Scan is a support routine for fmt.Scanner; it sets z to the value of the
// scanned number, keeping z's flavor. It accepts the formats 'd', 's' and 'v'.
// At least one digit must follow the optional sign, and the number must be
// followed by a space or the end of input. Otherwise Scan fails with
// ErrInvalidFormat, or io.ErrUnexpectedEOF at the end of input, and z is left
// unchanged.
// Like UnmarshalText, it is meant for initializing a fresh Int.
func (z *Int) Scan(s fmt.ScanState, ch rune) error {
	switch ch {
	case 'd', 's', 'v':
	default:
		return errors.New("bigint.Int.Scan: invalid verb")
	}
	s.SkipSpace()
	r := byteReader{s}
	neg, err := scanSign(r)
	if err == nil {
		var c byte
		if c, err = r.ReadByte(); err == nil {
			if c < '0' || c > '9' {
				return errors.Wrapf(ErrInvalidFormat, "bigint.Int.Scan: unexpected %q", c)
			}
			err = r.UnreadByte()
		}
	}
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	if err != nil {
		return err
	}
	x, err := z.Flavor().scan(r)
	if err != nil {
		return err
	}
	// the number must end at a space or at the end of input
	if c, _, err := s.ReadRune(); err == nil {
		if err = s.UnreadRune(); err != nil {
			return err
		}
		if !unicode.IsSpace(c) {
			return errors.Wrapf(ErrInvalidFormat, "bigint.Int.Scan: unexpected %q", c)
		}
	}
	*z = *x.flavor.newInt(x.mag, neg)
	return nil
}

// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigint

import (
	"fmt"

	"github.com/bobg/errors"
)

// A Strategy selects the algorithm used to convert an Int between flavors.
type Strategy byte

// Conversion strategies. Both produce the same result.
const (
	// Horner accumulates z = z*b1 + d in the target flavor, reading the source
	// digits d from most to least significant.
	Horner Strategy = iota
	// Division repeatedly divides the source magnitude by powers of the target
	// base and collects the remainders as target digits, least significant
	// first.
	Division
)

func (s Strategy) String() string {
	switch s {
	case Horner:
		return "horner"
	case Division:
		return "division"
	}
	return fmt.Sprintf("Strategy(%d)", byte(s))
}

// ParseStrategy returns the Strategy named s ("horner" or "division").
func ParseStrategy(s string) (Strategy, error) {
	switch s {
	case "horner", "":
		return Horner, nil
	case "division":
		return Division, nil
	}
	return 0, errors.Wrapf(ErrUnknownStrategy, "parsing %q", s)
}

// Convert returns x converted to flavor f. The sign and numeric value are
// preserved. It fails with ErrInvalidTargetBase if f is not a valid flavor.
func (x *Int) Convert(f Flavor) (*Int, error) {
	return x.ConvertWith(f, Horner)
}

// ConvertWith is like Convert with an explicit conversion strategy.
func (x *Int) ConvertWith(f Flavor, s Strategy) (*Int, error) {
	if !f.IsValid() {
		return nil, errors.Wrapf(ErrInvalidTargetBase, "converting to %v", f)
	}
	if s != Horner && s != Division {
		return nil, errors.Wrapf(ErrUnknownStrategy, "converting to %v with %v", f, s)
	}
	return x.convert(f, s), nil
}

// convert converts x to the valid flavor f.
func (x *Int) convert(f Flavor, s Strategy) *Int {
	src := x.Flavor()
	if src == f {
		return f.newInt(mag(nil).set(x.abs()), x.neg)
	}
	var m mag
	if s == Division {
		m = x.abs().rebaseDiv(src.base, f.base)
	} else {
		m = x.abs().rebaseHorner(src.base, f.base)
	}
	return f.newInt(m, x.neg)
}

// rebaseHorner returns x, in base b1, converted to base b2.
func (x mag) rebaseHorner(b1, b2 uint64) mag {
	var z mag
	for i := len(x) - 1; i >= 0; i-- {
		z = z.mulAddWW(z, b1, uint64(x[i]), b2)
	}
	return z.norm()
}

// rebaseDiv returns x, in base b1, converted to base b2.
func (x mag) rebaseDiv(b1, b2 uint64) mag {
	// extract n digits at a time with a single pass of divVWW
	bb, n := maxPow(b2)
	q := mag(nil).set(x).norm()
	z := make(mag, 0, len(x))
	for {
		var r uint64
		q, r = q.divW(q, bb, b1)
		for j := 0; j < n; j++ {
			z = append(z, Word(r%b2))
			r /= b2
		}
		if q.isZero() {
			break
		}
	}
	return z.norm()
}

// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigint

import (
	"fmt"

	"github.com/bobg/errors"
)

// MaxBase is the largest digit base of a Flavor. Digits are stored in a Word
// and every single digit step fits in a double word.
const MaxBase = 1 << 32

// A Flavor describes how the magnitude of an Int is stored: the digit base and
// the number of decimal characters needed to render one digit.
//
// Flavors are comparable values. Two Ints can only be added or subtracted if
// they share the same flavor; the radix converter maps an Int from one flavor
// to another.
//
// The zero Flavor is not valid. An Int whose flavor is the zero Flavor (for
// instance the zero value Int) uses the Default flavor.
type Flavor struct {
	base  uint64
	width int
	pow10 bool
}

// Predefined flavors.
var (
	// Default stores nine decimal digits per 32 bits Word.
	Default = mustFlavor(1000000000)
	// Decimal stores one decimal digit per Word.
	Decimal = mustFlavor(10)
	// Ternary is a small base mostly useful to cross-check conversions.
	Ternary  = mustFlavor(3)
	Binary16 = mustFlavor(1 << 16)
)

// NewFlavor returns the flavor for the given base. It fails with
// ErrInvalidTargetBase if base < 2 or base > MaxBase.
func NewFlavor(base uint64) (Flavor, error) {
	if base < 2 || base > MaxBase {
		return Flavor{}, errors.Wrapf(ErrInvalidTargetBase, "base %d not in [2, %d]", base, uint64(MaxBase))
	}
	w := decDigits(base - 1)
	return Flavor{base: base, width: int(w), pow10: w < uint(len(pow10tab)) && pow10(w) == base}, nil
}

func mustFlavor(base uint64) Flavor {
	f, err := NewFlavor(base)
	if err != nil {
		panic(err)
	}
	return f
}

// Base returns the digit base of f.
func (f Flavor) Base() uint64 { return f.base }

// Width returns the number of decimal characters needed to render a digit of f.
func (f Flavor) Width() int { return f.width }

// IsPow10 reports whether the base of f is a power of ten, in which case each
// digit maps onto exactly Width decimal characters.
func (f Flavor) IsPow10() bool { return f.pow10 }

// IsValid reports whether f was built by NewFlavor.
func (f Flavor) IsValid() bool { return f.base >= 2 }

func (f Flavor) String() string {
	return fmt.Sprintf("base %d", f.base)
}

// or returns f, or Default if f is the zero Flavor.
func (f Flavor) or() Flavor {
	if f.base == 0 {
		return Default
	}
	return f
}

// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigint

import "github.com/bobg/errors"

// Errors returned by the package. They are always wrapped with some context,
// use errors.Is to test for them.
var (
	// ErrInvalidFormat is returned when parsing text that is not an optionally
	// signed sequence of decimal digits.
	ErrInvalidFormat = errors.New("invalid format")

	// ErrFlavorMismatch is returned by arithmetic operations on two Ints of
	// different flavors.
	ErrFlavorMismatch = errors.New("flavor mismatch")

	// ErrInvalidTargetBase is returned when a flavor is built, or a conversion
	// requested, with a base outside [2, MaxBase].
	ErrInvalidTargetBase = errors.New("invalid target base")

	// ErrDigitRange is returned by FromDigits for a digit >= the flavor's base.
	ErrDigitRange = errors.New("digit out of range")

	ErrDivisionByZero = errors.New("division by zero")

	// ErrUnknownStrategy is returned for a radix conversion strategy other
	// than Horner or Division.
	ErrUnknownStrategy = errors.New("unknown conversion strategy")
)

// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package bigint implements arbitrary-precision signed integers stored as
sequences of digits in a configurable base.

The magnitude of an Int is stored in a little-endian Word slice. The base of
the digits is given by the Int's Flavor: the Default flavor stores 9 decimal
digits per 32 bits Word (base 10**9), Decimal stores a single decimal digit per
Word, and NewFlavor builds a flavor for any base between 2 and MaxBase. All
arithmetic is performed directly in the flavor's base, digit by digit, with
carry and borrow propagation.

The zero value for an Int corresponds to 0 in the Default flavor:

    var x bigint.Int // x is 0

New values are built with the constructors:

    x := bigint.NewInt(-42)               // Default flavor
    y, err := bigint.Parse("123456789123456789")
    z := bigint.Ternary.NewInt(7)         // base 3
    w, err := bigint.Decimal.Parse("-007") // -7, one decimal digit per Word

Ints are immutable. Operations are methods on the first operand that return a
new *Int:

    func (x *Int) Unary() *Int               // z = unary x
    func (x *Int) Binary(y *Int) (*Int, error) // z = x binary y
    func (x *Int) Pred() P                   // p = pred(x)

Binary arithmetic operations require both operands to share the same flavor,
and fail with ErrFlavorMismatch otherwise. Use Convert to move a value from one
flavor to another:

    t, err := z.Convert(bigint.Default)

Comparison (Cmp, Equal, Less, Greater) compares values regardless of flavor.

Ints render as decimal text with String, or in any base from 2 to MaxTextBase
with Text. *Int satisfies the fmt package's Formatter and Scanner interfaces,
encoding.TextMarshaler and TextUnmarshaler, json.Marshaler and Unmarshaler, and
gob.GobEncoder and GobDecoder.

The context sub-package chains operations and records the first error, and the
math sub-package provides long multiplication, powers and factorials built on
top of the single digit primitives of this package.
*/
package bigint

// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package context provides flavor bound contexts for bigint.Ints.
//
// All factory functions of the form
//
//    func (c *Context) NewT(x T) *bigint.Int
//
// create a new bigint.Int set to the value of x in c's flavor.
//
// Operators like:
//
//    func (c *Context) UnaryOp(x *bigint.Int) *bigint.Int
//    func (c *Context) BinaryOp(x, y *bigint.Int) *bigint.Int
//
// convert their operands to c's flavor if needed and return the result of
// x.Op(args) in c's flavor.
//
// A Context catches errors: if an operation fails, it returns nil and records
// the error. Further operations with the context will be no-ops (they simply
// return nil) until (*Context).Err is called to check for errors. This allows
// long chains of operations to be written without checking errors at every
// step.
package context

import (
	"github.com/db47h/bigint"
	"github.com/db47h/bigint/math"
)

// A Context is a wrapper around Ints that facilitates management of flavors
// and error handling.
type Context struct {
	flavor bigint.Flavor
	err    error
}

// New creates a new context with the given flavor. If f is the zero Flavor, it
// will be set to bigint.Default.
func New(f bigint.Flavor) *Context {
	return new(Context).SetFlavor(f)
}

// Flavor returns the flavor of c.
func (c *Context) Flavor() bigint.Flavor {
	return c.flavor
}

// SetFlavor sets c's flavor to f and returns c.
func (c *Context) SetFlavor(f bigint.Flavor) *Context {
	// special case
	if !f.IsValid() {
		f = bigint.Default
	}
	c.flavor = f
	return c
}

// Err returns the first error encountered since the last call to Err and clears
// the error state.
func (c *Context) Err() (err error) {
	err = c.err
	c.err = nil
	return
}

// set records err if non-nil and returns z, or nil on error.
func (c *Context) set(z *bigint.Int, err error) *bigint.Int {
	if err != nil {
		c.err = err
		return nil
	}
	return z
}

// apply returns x converted to c's flavor.
func (c *Context) apply(x *bigint.Int) (*bigint.Int, error) {
	if x.Flavor() == c.flavor {
		return x, nil
	}
	return x.Convert(c.flavor)
}

// New returns a new bigint.Int with value 0 in c's flavor.
func (c *Context) New() *bigint.Int {
	if c.err != nil {
		return nil
	}
	return c.flavor.NewInt(0)
}

// NewInt64 returns a new *bigint.Int set to the value of x.
func (c *Context) NewInt64(x int64) *bigint.Int {
	if c.err != nil {
		return nil
	}
	return c.flavor.NewInt(x)
}

// NewUint64 returns a new *bigint.Int set to the value of x.
func (c *Context) NewUint64(x uint64) *bigint.Int {
	if c.err != nil {
		return nil
	}
	return c.flavor.NewUint64(x)
}

// NewString returns a new *bigint.Int set to the value of s, which must be an
// optionally signed decimal integer as accepted by bigint.Flavor.Parse.
func (c *Context) NewString(s string) *bigint.Int {
	if c.err != nil {
		return nil
	}
	return c.set(c.flavor.Parse(s))
}

// Convert returns x converted to c's flavor.
func (c *Context) Convert(x *bigint.Int) *bigint.Int {
	if c.err != nil {
		return nil
	}
	return c.set(c.apply(x))
}

// Add returns the sum x+y.
func (c *Context) Add(x, y *bigint.Int) *bigint.Int {
	if c.err != nil {
		return nil
	}
	x, y, err := c.apply2(x, y)
	if err != nil {
		return c.set(nil, err)
	}
	return c.set(x.Add(y))
}

// Sub returns the difference x-y.
func (c *Context) Sub(x, y *bigint.Int) *bigint.Int {
	if c.err != nil {
		return nil
	}
	x, y, err := c.apply2(x, y)
	if err != nil {
		return c.set(nil, err)
	}
	return c.set(x.Sub(y))
}

// Mul returns the product x×y.
func (c *Context) Mul(x, y *bigint.Int) *bigint.Int {
	if c.err != nil {
		return nil
	}
	x, y, err := c.apply2(x, y)
	if err != nil {
		return c.set(nil, err)
	}
	return c.set(math.Mul(x, y))
}

// Neg returns -x.
func (c *Context) Neg(x *bigint.Int) *bigint.Int {
	if c.err != nil {
		return nil
	}
	x, err := c.apply(x)
	if err != nil {
		return c.set(nil, err)
	}
	return x.Neg()
}

// Abs returns |x|.
func (c *Context) Abs(x *bigint.Int) *bigint.Int {
	if c.err != nil {
		return nil
	}
	x, err := c.apply(x)
	if err != nil {
		return c.set(nil, err)
	}
	return x.Abs()
}

// Quo returns the quotient x/y truncated towards zero.
func (c *Context) Quo(x *bigint.Int, y int64) *bigint.Int {
	if c.err != nil {
		return nil
	}
	x, err := c.apply(x)
	if err != nil {
		return c.set(nil, err)
	}
	q, _, err := math.QuoRem(x, y)
	return c.set(q, err)
}

func (c *Context) apply2(x, y *bigint.Int) (*bigint.Int, *bigint.Int, error) {
	x, err := c.apply(x)
	if err != nil {
		return nil, nil, err
	}
	y, err = c.apply(y)
	if err != nil {
		return nil, nil, err
	}
	return x, y, nil
}

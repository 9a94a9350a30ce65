// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package context provides error-capturing contexts for decint.Int values.
//
// All factory functions of the form
//
//	func (c *Context) NewT(x T) *decint.Int
//
// create a new decint.Int set to the value of x.
//
// Operators that set a receiver z to function of other arguments like:
//
//	func (c *Context) UnaryOp(z, x *decint.Int) *decint.Int
//	func (c *Context) BinaryOp(z, x, y *decint.Int) *decint.Int
//
// set z to the result of z.Op(args) and return z.
//
// A Context carries a limit on the number of decimal digits of results. If an
// operation would produce a result longer than the limit, if a string cannot
// be parsed or if a conversion is out of range, the error is recorded and the
// receiver is returned unchanged. Further operations with the context are
// no-ops (they simply return the receiver z) until (*Context).Err is called to
// check for errors.
package context

import (
	"errors"
	"fmt"

	"github.com/db47h/decint"
)

// ErrDigitLimit is wrapped by the errors recorded when a result exceeds the
// digit limit of a Context.
var ErrDigitLimit = errors.New("digit limit exceeded")

// A Context is a wrapper around decint.Int operations that facilitates
// enforcing a size limit and error handling.
type Context struct {
	maxDigits uint
	err       error
}

// New creates a new context with the given digit limit. A limit of 0 means
// unlimited.
func New(maxDigits uint) *Context {
	return new(Context).SetMaxDigits(maxDigits)
}

// MaxDigits returns the digit limit of c. 0 means unlimited.
func (c *Context) MaxDigits() uint {
	return c.maxDigits
}

// SetMaxDigits sets c's digit limit to n and returns c.
func (c *Context) SetMaxDigits(n uint) *Context {
	c.maxDigits = n
	return c
}

// Err returns the first error encountered since the last call to Err and clears
// the error state.
func (c *Context) Err() (err error) {
	err = c.err
	c.err = nil
	return
}

// fits reports whether a result of n digits fits c's limit.
func (c *Context) fits(n int) bool {
	return c.maxDigits == 0 || uint(n) <= c.maxDigits
}

func (c *Context) limitError(op string, n int) error {
	return fmt.Errorf("%s: result has %d digits, limit is %d: %w", op, n, c.maxDigits, ErrDigitLimit)
}

// New returns a new decint.Int with value 0.
func (c *Context) New() *decint.Int {
	return new(decint.Int)
}

// NewInt64 returns a new *decint.Int set to the value of x.
func (c *Context) NewInt64(x int64) *decint.Int {
	z := c.New()
	if c.err != nil {
		return z
	}
	t := decint.NewInt(x)
	if !c.fits(t.Len()) {
		c.err = c.limitError("NewInt64", t.Len())
		return z
	}
	return z.Set(t)
}

// NewString returns a new *decint.Int set to the value of s. s must be a
// decimal integer of the format accepted by (*decint.Int).Parse. On error, the
// returned value is 0 and the error is recorded in c.
func (c *Context) NewString(s string) *decint.Int {
	z := c.New()
	if c.err != nil {
		return z
	}
	t, err := new(decint.Int).Parse(s)
	if err != nil {
		c.err = err
		return z
	}
	if !c.fits(t.Len()) {
		c.err = c.limitError("NewString", t.Len())
		return z
	}
	return z.Set(t)
}

// binary applies op to x and y and stores the result in z if it fits c's
// limit. Results that cannot exceed the limit are computed in place.
func (c *Context) binary(name string, z, x, y *decint.Int, op func(z, x, y *decint.Int) *decint.Int) *decint.Int {
	if c.err != nil {
		return z
	}
	if c.fits(max(x.Len(), y.Len()) + 1) {
		return op(z, x, y)
	}
	t := op(new(decint.Int), x, y)
	if !c.fits(t.Len()) {
		c.err = c.limitError(name, t.Len())
		return z
	}
	return z.Set(t)
}

// Add sets z to the sum x+y and returns z.
func (c *Context) Add(z, x, y *decint.Int) *decint.Int {
	return c.binary("Add", z, x, y, (*decint.Int).Add)
}

// Sub sets z to the difference x-y and returns z.
func (c *Context) Sub(z, x, y *decint.Int) *decint.Int {
	return c.binary("Sub", z, x, y, (*decint.Int).Sub)
}

// Set sets z to x and returns z.
func (c *Context) Set(z, x *decint.Int) *decint.Int {
	if c.err != nil {
		return z
	}
	if !c.fits(x.Len()) {
		c.err = c.limitError("Set", x.Len())
		return z
	}
	return z.Set(x)
}

// Neg sets z to -x and returns z.
func (c *Context) Neg(z, x *decint.Int) *decint.Int {
	if c.err != nil {
		return z
	}
	if c.Set(z, x); c.err != nil {
		return z
	}
	return z.Neg(z)
}

// Abs sets z to |x| and returns z.
func (c *Context) Abs(z, x *decint.Int) *decint.Int {
	if c.err != nil {
		return z
	}
	if c.Set(z, x); c.err != nil {
		return z
	}
	return z.Abs(z)
}

// Int64 returns the value of x as an int64. If x does not fit, the result is
// 0 and an error wrapping decint.ErrRange is recorded.
func (c *Context) Int64(x *decint.Int) int64 {
	if c.err != nil {
		return 0
	}
	if !x.IsInt64() {
		c.err = fmt.Errorf("Int64: %s: %w", x, decint.ErrRange)
		return 0
	}
	return x.Int64()
}

// Int returns the value of x as an int. If x does not fit, the result is 0
// and an error wrapping decint.ErrRange is recorded.
func (c *Context) Int(x *decint.Int) int {
	if c.err != nil {
		return 0
	}
	v, err := x.Int()
	if err != nil {
		c.err = err
	}
	return v
}

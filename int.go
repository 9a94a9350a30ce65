// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decint

import (
	"fmt"
	"math"
)

// An Int represents a signed arbitrary-precision integer stored as decimal
// digits. The zero value for an Int represents the value 0.
//
// Operations always take pointer arguments (*Int) rather than Int values, and
// each unique Int value requires its own unique *Int pointer. To "copy" an Int
// value, an existing (or newly allocated) Int must be set to a new value using
// the Int.Set method; shallow copies of Ints are not supported and may lead to
// errors.
type Int struct {
	neg bool   // sign
	abs digits // absolute value of the integer
}

// NewInt allocates and returns a new Int set to x. The digit buffer of the
// result holds exactly as many digits as x has.
func NewInt(x int64) *Int {
	return new(Int).SetInt64(x)
}

// SetInt64 sets z to x and returns z.
//
// math.MinInt64 is handled exactly: its magnitude is computed in uint64.
func (z *Int) SetInt64(x int64) *Int {
	neg := false
	u := uint64(x)
	if x < 0 {
		neg = true
		u = uint64(-(x + 1)) + 1
	}
	z.abs = z.abs.setUint64(u)
	z.neg = neg
	return z
}

// SetUint64 sets z to x and returns z.
func (z *Int) SetUint64(x uint64) *Int {
	z.abs = z.abs.setUint64(x)
	z.neg = false
	return z
}

// Set sets z to x and returns z.
func (z *Int) Set(x *Int) *Int {
	if debugInt {
		x.validate()
	}
	if z != x {
		z.abs = z.abs.set(x.abs)
		z.neg = x.neg
	}
	return z
}

// Release drops the digit buffer owned by z and resets z to 0. z remains
// usable afterwards.
func (z *Int) Release() {
	z.abs = nil
	z.neg = false
}

// Reserve makes sure that z can hold at least n digits without growing its
// storage and returns z. If the current capacity is already sufficient,
// Reserve does nothing; otherwise the digits in use are moved to a buffer of
// exactly n slots. The value of z is never changed.
func (z *Int) Reserve(n int) *Int {
	if len(z.abs) == 0 {
		z.abs = z.abs.setUint64(0)
	}
	z.abs = z.abs.reserve(n)
	return z
}

// Len returns the number of decimal digits in use by x. It is 1 for 0.
func (x *Int) Len() int {
	if len(x.abs) == 0 {
		return 1
	}
	return len(x.abs)
}

// Cap returns the number of digits x can hold without growing its storage.
// The zero value Int{} has no storage yet and reports the single digit it
// will be given on first use.
func (x *Int) Cap() int {
	if cap(x.abs) == 0 {
		return 1
	}
	return cap(x.abs)
}

// Digit returns the i-th least significant decimal digit of |x|. Digits past
// x.Len() are 0.
func (x *Int) Digit(i int) int {
	if i < 0 {
		panic("negative digit index")
	}
	if i >= len(x.abs) {
		return 0
	}
	return int(x.abs[i])
}

// Sign returns:
//
//	-1 if x <  0
//	 0 if x == 0
//	+1 if x >  0
func (x *Int) Sign() int {
	if x.abs.isZero() {
		return 0
	}
	if x.neg {
		return -1
	}
	return 1
}

// IsZero reports whether x is 0.
func (x *Int) IsZero() bool {
	return x.abs.isZero()
}

// Abs sets z to |x| (the absolute value of x) and returns z.
func (z *Int) Abs(x *Int) *Int {
	z.Set(x)
	z.neg = false
	return z
}

// Neg sets z to -x and returns z.
func (z *Int) Neg(x *Int) *Int {
	z.Set(x)
	z.neg = !z.neg && !z.abs.isZero()
	return z
}

// CmpAbs compares the absolute values of x and y and returns:
//
//	-1 if |x| <  |y|
//	 0 if |x| == |y|
//	+1 if |x| >  |y|
func (x *Int) CmpAbs(y *Int) int {
	return x.abs.cmp(y.abs)
}

// Cmp compares x and y and returns:
//
//	-1 if x <  y
//	 0 if x == y
//	+1 if x >  y
//
// Zero compares equal to zero whatever its sign flag.
func (x *Int) Cmp(y *Int) int {
	xz, yz := x.abs.isZero(), y.abs.isZero()
	if xz && yz {
		return 0
	}
	if x.neg != y.neg {
		// a zero operand's stored sign must not decide the order
		switch {
		case xz:
			return -y.Sign()
		case yz:
			return x.Sign()
		case x.neg:
			return -1
		default:
			return 1
		}
	}
	if x.neg {
		return y.abs.cmp(x.abs)
	}
	return x.abs.cmp(y.abs)
}

// Add sets z to the sum x+y and returns z.
//
// The usual form is z.Add(z, y), which adds y to z in place. Any of z, x and
// y may alias each other.
func (z *Int) Add(x, y *Int) *Int {
	if debugInt {
		x.validate()
		y.validate()
	}
	// decide the sign from the unmodified operands
	neg := x.neg
	sub := x.neg != y.neg
	if sub && x.abs.cmp(y.abs) <= 0 {
		neg = y.neg
	}

	yabs, tmp := z.operand(y)
	// one buffer for the copy of x and the carry digit
	z.abs = z.abs.reserve(max(len(x.abs), len(yabs), 1) + 1)
	z.abs = z.abs.set(x.abs)
	if sub {
		z.abs = z.abs.sub(yabs)
	} else {
		z.abs = z.abs.add(yabs)
	}
	if tmp != nil {
		putDigits(tmp)
	}
	z.neg = neg && !z.abs.isZero()

	if debugInt {
		z.validate()
	}
	return z
}

// Sub sets z to the difference x-y and returns z.
//
// The usual form is z.Sub(z, y), which subtracts y from z in place. Any of z,
// x and y may alias each other.
func (z *Int) Sub(x, y *Int) *Int {
	if debugInt {
		x.validate()
		y.validate()
	}
	// decide the sign from the unmodified operands
	neg := x.Cmp(y) < 0
	sub := x.neg == y.neg

	yabs, tmp := z.operand(y)
	// one buffer for the copy of x and the carry digit
	z.abs = z.abs.reserve(max(len(x.abs), len(yabs), 1) + 1)
	z.abs = z.abs.set(x.abs)
	if sub {
		z.abs = z.abs.sub(yabs)
	} else {
		z.abs = z.abs.add(yabs)
	}
	if tmp != nil {
		putDigits(tmp)
	}
	z.neg = neg && !z.abs.isZero()

	if debugInt {
		z.validate()
	}
	return z
}

// operand returns the digits of y to be used as the right hand side of an
// in-place operation on z. If y is z, they are first copied to a scratch
// buffer that the caller must release with putDigits.
func (z *Int) operand(y *Int) (digits, *digits) {
	if z != y {
		return y.abs, nil
	}
	tmp := getDigits(len(y.abs))
	copy(*tmp, y.abs)
	return *tmp, tmp
}

// Int64 returns the int64 representation of x. If x cannot be represented in
// an int64, the result is x modulo 2**64 interpreted as a two's complement
// value.
func (x *Int) Int64() int64 {
	v, _ := x.abs.uint64()
	if x.neg {
		return -int64(v)
	}
	return int64(v)
}

// IsInt64 reports whether x can be represented as an int64.
func (x *Int) IsInt64() bool {
	v, ok := x.abs.uint64()
	if !ok {
		return false
	}
	if x.neg {
		return v <= 1<<63
	}
	return v <= math.MaxInt64
}

// Uint64 returns the uint64 representation of |x|. If |x| cannot be
// represented in a uint64, the result is |x| modulo 2**64.
func (x *Int) Uint64() uint64 {
	v, _ := x.abs.uint64()
	return v
}

// IsUint64 reports whether x can be represented as a uint64.
func (x *Int) IsUint64() bool {
	_, ok := x.abs.uint64()
	return ok && (!x.neg || x.abs.isZero())
}

func (x *Int) validate() {
	if !debugInt {
		// avoid performance bugs
		panic("validate called but debugInt is not set")
	}
	if len(x.abs) == 0 {
		if x.neg {
			panic("negative Int with empty digits")
		}
		return
	}
	if cap(x.abs) < len(x.abs) {
		panic("capacity smaller than digit count")
	}
	for i, d := range x.abs {
		if d > 9 {
			panic(fmt.Sprintf("digit %d of %v out of range: %d", i, x.abs, d))
		}
	}
	if n := len(x.abs); n > 1 && x.abs[n-1] == 0 {
		panic(fmt.Sprintf("leading zero digit in %v", x.abs))
	}
	if x.neg && x.abs.isZero() {
		panic("negative zero")
	}
}

// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file provides the digit-wise arithmetic primitives on magnitudes.

package decint

// z = x + y + cIn, 0 <= z < 10. The resulting carry c is either 0 or 1.
func addDDD(x, y, cIn byte) (z, c byte) {
	z = x + y + cIn
	if z >= 10 {
		return z - 10, 1
	}
	return z, 0
}

// z = x - y - bIn, 0 <= z < 10. The resulting borrow b is either 0 or 1.
func subDDD(x, y, bIn byte) (z, b byte) {
	d := int(x) - int(y) - int(bIn)
	if d < 0 {
		return byte(d + 10), 1
	}
	return byte(d), 0
}

// add sets z to the magnitude z + y and returns z.
//
// z is grown up front to hold a possible carry out of the longest operand; its
// length is then extended one digit at a time as the addend or the carry
// reaches past it. y must not share storage with z.
func (z digits) add(y digits) digits {
	if len(z) == 0 {
		z = z.setUint64(0)
	}
	z = z.reserve(max(len(z), len(y)) + 1)

	var c byte
	for i := 0; i < len(y) || c != 0; i++ {
		if i == len(z) {
			z = z[:i+1]
			z[i] = 0
		}
		var yi byte
		if i < len(y) {
			yi = y[i]
		}
		z[i], c = addDDD(z[i], yi, c)
	}
	return z
}

// sub sets z to the magnitude |z - y| and returns z.
//
// The operand with the larger magnitude is used as the minuend regardless of
// which side it is on. The result is normalized: its length is that of the
// highest non-zero digit produced, or 1 if all digits vanish. y must not share
// storage with z.
func (z digits) sub(y digits) digits {
	if len(z) == 0 {
		z = z.setUint64(0)
	}
	if len(y) == 0 {
		y = digitsZero
	}
	z = z.reserve(max(len(z), len(y)) + 1)

	x := z
	if x.cmp(y) < 0 {
		x, y = y, x
	}
	// len(x) >= len(y)
	n := len(x)
	z = z[:n]

	var b byte
	top := 1
	for i := 0; i < n; i++ {
		var yi byte
		if i < len(y) {
			yi = y[i]
		}
		z[i], b = subDDD(x[i], yi, b)
		if z[i] != 0 {
			top = i + 1
		}
	}
	if debugInt && b != 0 {
		panic("BUG: residual borrow after subtraction")
	}
	return z[:top]
}

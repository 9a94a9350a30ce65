// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decint

import (
	"math/bits"
	"sync"
)

const debugInt = true

// digits is an unsigned integer x of the form
//
//   x = x[n-1]*10^(n-1) + x[n-2]*10^(n-2) + ... + x[1]*10 + x[0]
//
// with 0 <= x[i] < 10 and 0 <= i < n is stored in a slice of length n,
// with the digits x[i] as the slice elements.
//
// A number is normalized if the slice contains no leading 0 digits. The
// normalized representation of 0 is the single digit slice {0}. An empty or
// nil slice is also read as 0 but is never the result of an operation.
type digits []byte

var pow10tab = [...]uint64{
	1, 10, 100, 1000, 10000, 100000, 1000000, 10000000, 100000000, 1000000000,
	10000000000, 100000000000, 1000000000000, 10000000000000, 100000000000000, 1000000000000000,
	10000000000000000, 100000000000000000, 1000000000000000000, 10000000000000000000,
}

var pow2digitsTab = [...]uint{
	1, 1, 1, 1, 2, 2, 2, 3, 3, 3, 4, 4, 4, 4, 5, 5,
	5, 6, 6, 6, 7, 7, 7, 7, 8, 8, 8, 9, 9, 9, 10, 10,
	10, 10, 11, 11, 11, 12, 12, 12, 13, 13, 13, 13, 14, 14, 14, 15,
	15, 15, 16, 16, 16, 16, 17, 17, 17, 18, 18, 18, 19, 19, 19, 20, 20,
}

// decDigits returns n such that 10**(n-1) <= x < 10**n.
// In other words, n the number of digits required to represent x.
// Returns 1 for x == 0.
func decDigits(x uint64) (n int) {
	if x == 0 {
		return 1
	}
	d := pow2digitsTab[bits.Len64(x)]
	if x < pow10tab[d-1] {
		d--
	}
	return int(d)
}

// make returns a slice of length n, reusing z if its capacity allows.
// The contents of the returned slice are not defined.
func (z digits) make(n int) digits {
	if n <= cap(z) {
		return z[:n] // reuse z
	}
	return make(digits, n)
}

// reserve returns z with a capacity of at least n. If z must grow, the new
// buffer holds exactly n slots and the len(z) digits in use are copied over.
func (z digits) reserve(n int) digits {
	if n <= cap(z) {
		return z
	}
	t := make(digits, len(z), n)
	copy(t, z)
	return t
}

func (z digits) set(x digits) digits {
	if len(x) == 0 {
		return z.setUint64(0)
	}
	z = z.make(len(x))
	copy(z, x)
	return z
}

func (z digits) setUint64(x uint64) digits {
	n := decDigits(x)
	z = z.make(n)
	for i := range z {
		z[i] = byte(x % 10)
		x /= 10
	}
	return z
}

// norm truncates leading zero digits, keeping at least one digit.
func (z digits) norm() digits {
	i := len(z)
	for i > 1 && z[i-1] == 0 {
		i--
	}
	if i == 0 {
		return z.setUint64(0)
	}
	return z[:i]
}

func (x digits) isZero() bool {
	for _, d := range x {
		if d != 0 {
			return false
		}
	}
	return true
}

// cmp compares the magnitudes of x and y and returns -1, 0 or +1.
// Both x and y must be normalized.
func (x digits) cmp(y digits) int {
	// an empty slice is 0
	if len(x) == 0 {
		x = digitsZero
	}
	if len(y) == 0 {
		y = digitsZero
	}
	switch {
	case len(x) > len(y):
		return 1
	case len(x) < len(y):
		return -1
	}
	for i := len(x) - 1; i >= 0; i-- {
		switch {
		case x[i] > y[i]:
			return 1
		case x[i] < y[i]:
			return -1
		}
	}
	return 0
}

// uint64 returns the low 64 bits of the value of x and whether x fits in a
// uint64.
func (x digits) uint64() (v uint64, ok bool) {
	ok = len(x) <= 20
	m := uint64(1)
	for i, d := range x {
		hi, lo := bits.Mul64(uint64(d), m)
		if hi != 0 {
			ok = false
		}
		var c uint64
		v, c = bits.Add64(v, lo, 0)
		if c != 0 {
			ok = false
		}
		if i < len(x)-1 {
			m *= 10
		}
	}
	return v, ok
}

var digitsZero = digits{0}

// getDigits returns a *digits of len n. The contents may not be zero.
// The pool holds *digits to avoid allocation when converting to interface{}.
func getDigits(n int) *digits {
	var z *digits
	if v := digitsPool.Get(); v != nil {
		z = v.(*digits)
	}
	if z == nil {
		z = new(digits)
	}
	*z = z.make(n)
	return z
}

func putDigits(x *digits) {
	digitsPool.Put(x)
}

var digitsPool sync.Pool

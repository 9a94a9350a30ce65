// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package decint implements arbitrary-precision signed integers stored in
decimal.

Unlike big.Int, the magnitude of an Int is stored as a little-endian slice of
single decimal digits: digit 0 is the least significant one. Addition and
subtraction work digit by digit with carry and borrow propagation, so that
conversions to and from decimal text are trivial and exact. The digit count of
an Int (Len) and the number of digits its storage can hold (Cap) are tracked
separately; storage grows on demand and can be grown ahead of time with
Reserve.

The zero value for an Int corresponds to 0. Thus, new values can be declared
in the usual ways and denote 0 without further initialization:

	x := new(Int) // x is an *Int of value 0

Alternatively, new Int values can be allocated and initialized with the
function:

	func NewInt(x int64) *Int

Any int64 value is accepted, including math.MinInt64.

Setters, numeric operations and predicates are represented as methods of the
form:

	func (z *Int) SetV(v V) *Int        // z = v
	func (z *Int) Unary(x *Int) *Int    // z = unary x
	func (z *Int) Binary(x, y *Int) *Int // z = x binary y
	func (x *Int) Pred() P              // p = pred(x)

For unary and binary operations, the result is the receiver (usually named z in
that case); if it is one of the operands x or y it may be safely overwritten
(and its memory reused). In particular

	sum.Add(sum, x)

adds x to sum in place, and x.Add(x, x) doubles x.

The only operations provided are comparison, addition and subtraction, along
with conversions: Int implements fmt.Formatter, fmt.Scanner, the encoding
text, JSON and gob interfaces, and msgpack's custom encoder and decoder
interfaces.

Ints are not safe for concurrent use: an Int that is being modified must not be
read or written by other goroutines.
*/
package decint

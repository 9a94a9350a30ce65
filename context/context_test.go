// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package context

import (
	"errors"
	"strings"
	"testing"

	"github.com/db47h/decint"
)

func TestContextLimit(t *testing.T) {
	c := New(3)
	x := c.NewInt64(999)
	y := c.NewInt64(1)
	z := c.NewInt64(42)
	if err := c.Err(); err != nil {
		t.Fatal(err)
	}

	c.Add(z, x, y)
	if err := c.Err(); !errors.Is(err, ErrDigitLimit) {
		t.Fatalf("999 + 1 with 3 digits: err = %v", err)
	}
	if z.Int64() != 42 {
		t.Fatalf("receiver modified on error: %s", z)
	}

	c.Sub(z, x, y)
	if err := c.Err(); err != nil || z.Int64() != 998 {
		t.Fatalf("999 - 1 = %s, %v", z, err)
	}

	// mixed signs cannot grow past the operands
	c.Add(z, x, c.NewInt64(-999))
	if err := c.Err(); err != nil || !z.IsZero() {
		t.Fatalf("999 + -999 = %s, %v", z, err)
	}

	if c.NewInt64(1234); c.Err() == nil {
		t.Fatalf("NewInt64(1234) with 3 digits did not fail")
	}
	if c.NewString("-1000"); c.Err() == nil {
		t.Fatalf("NewString(-1000) with 3 digits did not fail")
	}
	big := decint.NewInt(123456)
	if c.Set(z, big); c.Err() == nil || !z.IsZero() {
		t.Fatalf("Set(123456) with 3 digits: %s", z)
	}
	if c.Neg(z, big); c.Err() == nil || !z.IsZero() {
		t.Fatalf("Neg(123456) with 3 digits: %s", z)
	}
}

func TestContextSticky(t *testing.T) {
	c := New(0)
	x := c.NewString("not a number")
	if !x.IsZero() {
		t.Fatalf("failed NewString returned %s", x)
	}
	y := c.NewInt64(5)
	if !y.IsZero() {
		t.Fatalf("NewInt64 after error returned %s", y)
	}
	z := decint.NewInt(7)
	c.Add(z, z, decint.NewInt(1))
	c.Neg(z, z)
	c.Abs(z, decint.NewInt(-3))
	if z.Int64() != 7 {
		t.Fatalf("operations were not no-ops after error: %s", z)
	}
	if c.Int64(z) != 0 || c.Int(z) != 0 {
		t.Fatalf("conversions were not no-ops after error")
	}
	err := c.Err()
	if !errors.Is(err, decint.ErrSyntax) {
		t.Fatalf("err = %v, want ErrSyntax", err)
	}
	if c.Err() != nil {
		t.Fatalf("Err did not clear the error state")
	}
	c.Add(z, z, decint.NewInt(1))
	if z.Int64() != 8 {
		t.Fatalf("7 + 1 = %s", z)
	}
}

func TestContextConversions(t *testing.T) {
	c := New(0)
	x := c.NewString("-" + strings.Repeat("9", 30))
	if v := c.Int64(x); v != 0 {
		t.Fatalf("Int64 = %d", v)
	}
	if err := c.Err(); !errors.Is(err, decint.ErrRange) {
		t.Fatalf("err = %v, want ErrRange", err)
	}
	if v := c.Int(x); v != 0 {
		t.Fatalf("Int = %d", v)
	}
	if err := c.Err(); !errors.Is(err, decint.ErrRange) {
		t.Fatalf("err = %v, want ErrRange", err)
	}
	y := c.NewInt64(-123)
	if c.Int64(y) != -123 || c.Int(y) != -123 {
		t.Fatalf("conversions of -123 failed")
	}
	if c.Abs(y, y); y.Int64() != 123 {
		t.Fatalf("Abs(-123) = %s", y)
	}
	if c.Neg(y, y); y.Int64() != -123 {
		t.Fatalf("Neg(123) = %s", y)
	}
	if err := c.Err(); err != nil {
		t.Fatal(err)
	}
}

// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decint

import (
	"math"
	"reflect"
	"testing"
)

// permute returns all combinations of signs and order of a and b.
func permute(a, b int64) [][2]int64 {
	return [][2]int64{
		{a, b}, {-a, b}, {a, -b}, {-a, -b},
		{b, a}, {-b, a}, {b, -a}, {-b, -a},
	}
}

var intConstructTests = []int64{
	0, 1, -1, 2, 10, 100, 1000000000, 1000000001, 990000000,
	math.MaxInt32, math.MinInt32, math.MaxInt64, math.MinInt64, math.MinInt64 + 1,
}

func TestNewInt(t *testing.T) {
	for _, v := range intConstructTests {
		x := NewInt(v)
		if got := x.Int64(); got != v {
			t.Errorf("NewInt(%d).Int64() = %d", v, got)
		}
		if !x.IsInt64() {
			t.Errorf("NewInt(%d).IsInt64() = false", v)
		}
		if x.Len() != x.Cap() {
			t.Errorf("NewInt(%d): Len %d != Cap %d", v, x.Len(), x.Cap())
		}
		if n := len(x.String()); x.Len() != n && x.Len() != n-1 {
			t.Errorf("NewInt(%d): Len %d, text %s", v, x.Len(), x)
		}
	}
}

func TestNewIntDigits(t *testing.T) {
	for _, tc := range []struct {
		v   int64
		neg bool
		abs digits
	}{
		{0, false, digits{0}},
		{-1, true, digits{1}},
		{7, false, digits{7}},
		{-120, true, digits{0, 2, 1}},
		{math.MinInt64, true, digits{8, 0, 8, 5, 7, 7, 4, 5, 8, 6, 3, 0, 2, 7, 3, 3, 2, 2, 9}},
	} {
		x := NewInt(tc.v)
		if x.neg != tc.neg || !reflect.DeepEqual(x.abs, tc.abs) {
			t.Errorf("NewInt(%d) = {%v %v}, want {%v %v}", tc.v, x.neg, x.abs, tc.neg, tc.abs)
		}
	}
}

func TestIntRoundTrip(t *testing.T) {
	for i := 0; i < 10000; i++ {
		v := int64(rnd.Uint64()) >> uint(rnd.Intn(64))
		if got := NewInt(v).Int64(); got != v {
			t.Fatalf("NewInt(%d).Int64() = %d", v, got)
		}
	}
}

func TestIntReserve(t *testing.T) {
	x := NewInt(42)
	if x.Cap() != 2 {
		t.Fatalf("cap = %d, want 2", x.Cap())
	}
	x.Reserve(1000)
	if x.Int64() != 42 || x.Len() != 2 || x.Cap() != 1000 {
		t.Fatalf("Reserve(1000): value %s, len %d, cap %d", x, x.Len(), x.Cap())
	}
	x.Reserve(1)
	if x.Int64() != 42 || x.Cap() != 1000 {
		t.Fatalf("Reserve(1): value %s, cap %d", x, x.Cap())
	}
	for _, n := range []int{0, 1, 2, 3, 19, 20, 1 << 16} {
		for _, v := range intConstructTests {
			x := NewInt(v).Reserve(n)
			if x.Int64() != v {
				t.Fatalf("NewInt(%d).Reserve(%d) = %s", v, n, x)
			}
			if x.Cap() < n {
				t.Fatalf("NewInt(%d).Reserve(%d): cap %d", v, n, x.Cap())
			}
		}
	}
	var z Int
	if z.Reserve(10).Cap() != 10 || !z.IsZero() {
		t.Fatalf("Int{}.Reserve(10): %s, cap %d", &z, z.Cap())
	}
}

var intPairs = [][2]int64{
	{0, 0}, {1, 1}, {5, 5}, {5, 6}, {10, 2}, {14, 16}, {16, 18}, {11, 111},
	{50, 50}, {51, 50}, {64, 46}, {1000, 999}, {30, 28}, {1, 50}, {100, 101},
	{5555, 5556}, {123456, 1234}, {999999999, 1}, {0, 12345678}, {1000, 1},
	{2546, 2546}, {1234, 4321},
}

func sign(v int64) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}

func TestIntCmp(t *testing.T) {
	for _, p := range intPairs {
		for _, q := range permute(p[0], p[1]) {
			a, b := q[0], q[1]
			if r := NewInt(a).Cmp(NewInt(b)); r != sign(a-b) {
				t.Errorf("Cmp(%d, %d) = %d, want %d", a, b, r, sign(a-b))
			}
		}
	}
}

func TestIntCmpAbs(t *testing.T) {
	for _, p := range intPairs {
		for _, q := range permute(p[0], p[1]) {
			a, b := q[0], q[1]
			want := sign(abs64(a) - abs64(b))
			if r := NewInt(a).CmpAbs(NewInt(b)); r != want {
				t.Errorf("CmpAbs(%d, %d) = %d, want %d", a, b, r, want)
			}
		}
	}
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

func TestIntCmpNegativeZero(t *testing.T) {
	negZero := &Int{neg: true, abs: digits{0}}
	for _, x := range []*Int{new(Int), NewInt(0), negZero} {
		if r := negZero.Cmp(x); r != 0 {
			t.Errorf("-0 Cmp %v = %d, want 0", x.abs, r)
		}
		if r := x.Cmp(negZero); r != 0 {
			t.Errorf("%v Cmp -0 = %d, want 0", x.abs, r)
		}
	}
	if r := negZero.Cmp(NewInt(-3)); r != 1 {
		t.Errorf("-0 Cmp -3 = %d, want 1", r)
	}
	if r := NewInt(3).Cmp(negZero); r != 1 {
		t.Errorf("3 Cmp -0 = %d, want 1", r)
	}
	if r := (&Int{neg: false, abs: digits{0}}).Cmp(&Int{neg: true, abs: digits{5}}); r != 1 {
		t.Errorf("0 Cmp -5 = %d, want 1", r)
	}
}

func TestIntAdd(t *testing.T) {
	for _, p := range intPairs {
		for _, q := range permute(p[0], p[1]) {
			a, b := q[0], q[1]
			x, y := NewInt(a), NewInt(b)
			x.Add(x, y)
			if got := x.Int64(); got != a+b {
				t.Errorf("%d + %d = %s, want %d", a, b, x, a+b)
			}
			if y.Int64() != b {
				t.Errorf("%d + %d modified the addend: %s", a, b, y)
			}
			// commutativity
			if z := new(Int).Add(NewInt(b), NewInt(a)); z.Cmp(x) != 0 {
				t.Errorf("%d + %d = %s but %d + %d = %s", a, b, x, b, a, z)
			}
		}
	}
}

func TestIntSub(t *testing.T) {
	for _, p := range intPairs {
		for _, q := range permute(p[0], p[1]) {
			a, b := q[0], q[1]
			x, y := NewInt(a), NewInt(b)
			x.Sub(x, y)
			if got := x.Int64(); got != a-b {
				t.Errorf("%d - %d = %s, want %d", a, b, x, a-b)
			}
			if y.Int64() != b {
				t.Errorf("%d - %d modified the subtrahend: %s", a, b, y)
			}
		}
	}
}

func TestIntArithScenarios(t *testing.T) {
	x := NewInt(999999999)
	x.Add(x, NewInt(1))
	if x.String() != "1000000000" || x.Len() != 10 {
		t.Errorf("999999999 + 1 = %s (len %d)", x, x.Len())
	}

	x = NewInt(1000)
	x.Sub(x, NewInt(1))
	if x.String() != "999" || x.Len() != 3 {
		t.Errorf("1000 - 1 = %s (len %d)", x, x.Len())
	}

	x = NewInt(5)
	x.Sub(x, NewInt(6))
	if x.String() != "-1" || x.Len() != 1 || !x.neg {
		t.Errorf("5 - 6 = %s (len %d)", x, x.Len())
	}

	x = NewInt(100)
	x.Sub(x, NewInt(99))
	if !reflect.DeepEqual(x.abs, digits{1}) || x.neg {
		t.Errorf("100 - 99 = {%v %v}, want {false [1]}", x.neg, x.abs)
	}

	// no negative zero out of mixed sign addition
	x = NewInt(5)
	x.Add(x, NewInt(-5))
	if x.neg || !reflect.DeepEqual(x.abs, digits{0}) {
		t.Errorf("5 + -5 = {%v %v}, want {false [0]}", x.neg, x.abs)
	}
	x = NewInt(-5)
	x.Sub(x, NewInt(-5))
	if x.neg || !reflect.DeepEqual(x.abs, digits{0}) {
		t.Errorf("-5 - -5 = {%v %v}, want {false [0]}", x.neg, x.abs)
	}
}

func TestIntAlias(t *testing.T) {
	for _, v := range []int64{0, 1, -1, 5, -5, 999, -999, 123456789} {
		x := NewInt(v)
		x.Add(x, x)
		if x.Int64() != 2*v {
			t.Errorf("x.Add(x, x) with x = %d: %s", v, x)
		}
		x = NewInt(v)
		x.Sub(x, x)
		if !x.IsZero() || x.Sign() != 0 {
			t.Errorf("x.Sub(x, x) with x = %d: %s", v, x)
		}
		// receiver aliases the right operand only
		x, y := NewInt(7), NewInt(v)
		y.Sub(x, y)
		if y.Int64() != 7-v {
			t.Errorf("y.Sub(7, y) with y = %d: %s", v, y)
		}
		x, y = NewInt(-7), NewInt(v)
		y.Add(x, y)
		if y.Int64() != v-7 {
			t.Errorf("y.Add(-7, y) with y = %d: %s", v, y)
		}
	}
}

func TestIntZeroValue(t *testing.T) {
	var x, y Int
	if x.Cmp(&y) != 0 || x.Sign() != 0 || x.Len() != 1 || x.String() != "0" {
		t.Fatalf("zero value misbehaves: %s", &x)
	}
	x.Add(&x, NewInt(-12))
	if x.Int64() != -12 {
		t.Fatalf("0 + -12 = %s", &x)
	}
	y.Sub(&y, NewInt(-12))
	if y.Int64() != 12 {
		t.Fatalf("0 - -12 = %s", &y)
	}
}

func TestIntRelease(t *testing.T) {
	x := NewInt(-123456)
	x.Release()
	if !x.IsZero() || x.Sign() != 0 || x.abs != nil {
		t.Fatalf("after Release: %s", x)
	}
	x.Add(x, NewInt(3))
	if x.Int64() != 3 {
		t.Fatalf("Release then Add: %s", x)
	}
}

func TestIntNegAbs(t *testing.T) {
	for _, v := range []int64{0, 3, -3, math.MaxInt64} {
		if got := new(Int).Neg(NewInt(v)).Int64(); got != -v {
			t.Errorf("Neg(%d) = %d", v, got)
		}
		if got := new(Int).Abs(NewInt(v)).Int64(); got != abs64(v) {
			t.Errorf("Abs(%d) = %d", v, got)
		}
	}
	if x := new(Int).Neg(new(Int)); x.neg {
		t.Errorf("Neg(0) is negative")
	}
}

func TestIntDigit(t *testing.T) {
	x := NewInt(-9081)
	for i, want := range []int{1, 8, 0, 9, 0, 0} {
		if d := x.Digit(i); d != want {
			t.Errorf("Digit(%d) = %d, want %d", i, d, want)
		}
	}
}

func TestIntIsInt64(t *testing.T) {
	for _, tc := range []struct {
		s         string
		i64, ui64 bool
	}{
		{"0", true, true},
		{"-1", true, false},
		{"9223372036854775807", true, true},
		{"9223372036854775808", false, true},
		{"-9223372036854775808", true, false},
		{"-9223372036854775809", false, false},
		{"18446744073709551615", false, true},
		{"18446744073709551616", false, false},
	} {
		x, ok := new(Int).SetString(tc.s)
		if !ok {
			t.Fatalf("SetString(%q) failed", tc.s)
		}
		if x.IsInt64() != tc.i64 || x.IsUint64() != tc.ui64 {
			t.Errorf("%s: IsInt64 %v IsUint64 %v, want %v %v", tc.s, x.IsInt64(), x.IsUint64(), tc.i64, tc.ui64)
		}
	}
}

func TestIntValidate(t *testing.T) {
	for _, x := range []*Int{
		{neg: true, abs: digits{0}},
		{abs: digits{1, 0}},
		{abs: digits{10}},
		{neg: true},
	} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("validate(%v %v) did not panic", x.neg, x.abs)
				}
			}()
			x.validate()
		}()
	}
}

func BenchmarkIntAdd(b *testing.B) {
	x, _ := new(Int).SetString("123456789012345678901234567890")
	y := NewInt(-987654321)
	z := new(Int)
	for i := 0; i < b.N; i++ {
		z.Add(x, y)
	}
}

func TestIntArithAllocs(t *testing.T) {
	for _, td := range []struct {
		op   func(z, x, y *Int) *Int
		x, y int64
		want string
	}{
		{(*Int).Add, 999, 1, "1000"},
		{(*Int).Add, 5, 0, "5"},
		{(*Int).Sub, 1000, 1, "999"},
		{(*Int).Sub, -999, 1, "-1000"},
	} {
		x, y := NewInt(td.x), NewInt(td.y)
		var z Int
		allocs := testing.AllocsPerRun(100, func() {
			z.Release()
			td.op(&z, x, y)
		})
		if z.String() != td.want {
			t.Errorf("%d op %d = %s, want %s", td.x, td.y, &z, td.want)
		}
		if allocs != 1 {
			t.Errorf("%d op %d into a released Int: %v allocations, want 1", td.x, td.y, allocs)
		}
		if want := max(len(x.abs), len(y.abs)) + 1; z.Cap() != want {
			t.Errorf("%d op %d: cap %d, want %d", td.x, td.y, z.Cap(), want)
		}
	}
}

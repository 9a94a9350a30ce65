// This file implements conversions between Int and machine or math/big
// integers.

package decint

import (
	"errors"
	"fmt"
	"math/big"

	"fortio.org/safecast"
)

// ErrRange is wrapped by the errors of range-checked conversions.
var ErrRange = errors.New("value out of range")

var bigTen = big.NewInt(10)

// Int returns the value of x as an int. If x does not fit, the result is 0
// and the error wraps ErrRange.
func (x *Int) Int() (int, error) {
	if !x.IsInt64() {
		return 0, fmt.Errorf("decint: %s: %w", x, ErrRange)
	}
	v, err := safecast.Conv[int](x.Int64())
	if err != nil {
		return 0, fmt.Errorf("decint: %s: %w: %w", x, ErrRange, err)
	}
	return v, nil
}

// Int32 is like Int for int32 values.
func (x *Int) Int32() (int32, error) {
	if !x.IsInt64() {
		return 0, fmt.Errorf("decint: %s: %w", x, ErrRange)
	}
	v, err := safecast.Conv[int32](x.Int64())
	if err != nil {
		return 0, fmt.Errorf("decint: %s: %w: %w", x, ErrRange, err)
	}
	return v, nil
}

// SetInt sets z to x and returns z.
func (z *Int) SetInt(x int) *Int {
	return z.SetInt64(int64(x))
}

// SetBigInt sets z to the value of x and returns z.
func (z *Int) SetBigInt(x *big.Int) *Int {
	if x.IsUint64() {
		return z.SetUint64(x.Uint64())
	}
	if x.IsInt64() {
		return z.SetInt64(x.Int64())
	}
	var q, r big.Int
	q.Abs(x)
	z.abs = z.abs[:0]
	for q.Sign() != 0 {
		q.QuoRem(&q, bigTen, &r)
		z.abs = append(z.abs, byte(r.Uint64()))
	}
	z.abs = z.abs.norm()
	z.neg = x.Sign() < 0
	return z
}

// BigInt sets z to the value of x and returns z. If z is nil, a new big.Int is
// allocated.
func (x *Int) BigInt(z *big.Int) *big.Int {
	if z == nil {
		z = new(big.Int)
	}
	if x.IsInt64() {
		return z.SetInt64(x.Int64())
	}
	z.SetInt64(0)
	var d big.Int
	for i := len(x.abs) - 1; i >= 0; i-- {
		z.Mul(z, bigTen)
		z.Add(z, d.SetInt64(int64(x.abs[i])))
	}
	if x.neg {
		z.Neg(z)
	}
	return z
}

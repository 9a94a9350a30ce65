// Package math provides helper functions built on decint.Int.
package math

import (
	"github.com/db47h/decint"
)

// Sum sets z to the sum of xs and returns z. z may be one of xs. The sum of no
// values is 0.
func Sum(z *decint.Int, xs ...*decint.Int) *decint.Int {
	var acc decint.Int
	for _, x := range xs {
		acc.Add(&acc, x)
	}
	return z.Set(&acc)
}

// Min returns the smallest of xs, or nil if xs is empty. Ties return the first
// occurrence.
func Min(xs ...*decint.Int) *decint.Int {
	var m *decint.Int
	for _, x := range xs {
		if m == nil || x.Cmp(m) < 0 {
			m = x
		}
	}
	return m
}

// Max returns the largest of xs, or nil if xs is empty. Ties return the first
// occurrence.
func Max(xs ...*decint.Int) *decint.Int {
	var m *decint.Int
	for _, x := range xs {
		if m == nil || x.Cmp(m) > 0 {
			m = x
		}
	}
	return m
}

// Dist sets z to |x - y| and returns z.
func Dist(z, x, y *decint.Int) *decint.Int {
	z.Sub(x, y)
	return z.Abs(z)
}

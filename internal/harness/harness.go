// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package harness runs self-checks of decint.Int against native and math/big
// arithmetic.
//
// Binary operations are checked over the signed permutations of a pair of
// values: (a, b), (-a, b), (a, -b), (-a, -b) and the same four with a and b
// swapped.
package harness

import (
	"context"
	"fmt"
	"math/big"
	"math/rand"
	"runtime"
	"strconv"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/db47h/decint"
)

// A Case is a single check.
type Case struct {
	Op Op    `json:"op"`
	A  int64 `json:"a"`
	B  int64 `json:"b"`
}

func (c Case) String() string {
	if c.Op == OpConstruct {
		return fmt.Sprintf("%s(%d)", c.Op, c.A)
	}
	return fmt.Sprintf("%s(%d, %d)", c.Op, c.A, c.B)
}

// A Suite is a named list of cases.
type Suite struct {
	Name  string
	Cases []Case
}

// Permute returns the eight signed permutations of (a, b) for op.
func Permute(op Op, a, b int64) []Case {
	return []Case{
		{op, a, b}, {op, -a, b}, {op, a, -b}, {op, -a, -b},
		{op, b, a}, {op, -b, a}, {op, b, -a}, {op, -b, -a},
	}
}

// Add appends the signed permutations of each pair to s and returns s.
func (s *Suite) Add(op Op, pairs ...[2]int64) *Suite {
	for _, p := range pairs {
		s.Cases = append(s.Cases, Permute(op, p[0], p[1])...)
	}
	return s
}

// DefaultSuite returns the reference self-check suite.
func DefaultSuite() Suite {
	s := Suite{Name: "default"}
	for _, v := range []int64{0, 1, -1, 2, 10, 100, 1000000000, 1000000001, 990000000} {
		s.Cases = append(s.Cases, Case{OpConstruct, v, 0})
	}
	s.Cases = append(s.Cases, Case{OpReserve, 42, 1000})
	s.Add(OpCompare,
		[2]int64{0, 0}, [2]int64{1, 1}, [2]int64{50, 50}, [2]int64{51, 50},
		[2]int64{64, 46}, [2]int64{1000, 999}, [2]int64{30, 28}, [2]int64{1, 50},
		[2]int64{100, 101}, [2]int64{1000, 999}, [2]int64{5555, 5556})
	arith := [][2]int64{
		{0, 0}, {5, 5}, {5, 6}, {10, 2}, {14, 16}, {16, 18}, {11, 111},
		{123456, 1234}, {999999999, 1}, {0, 12345678}, {1000, 1},
		{2546, 2546}, {1234, 4321},
	}
	s.Add(OpAdd, [2]int64{1, 1})
	s.Add(OpAdd, arith...)
	s.Add(OpSub, arith...)
	return s
}

// RandomSuite returns a suite of n random cases per operation, drawn from the
// full int64 range. The same seed always yields the same suite.
func RandomSuite(seed int64, n int) Suite {
	rnd := rand.New(rand.NewSource(seed))
	val := func() int64 {
		// spread values over all magnitudes
		v := rnd.Int63() >> uint(rnd.Intn(63))
		if rnd.Intn(2) == 0 {
			v = -v
		}
		return v
	}
	s := Suite{Name: "random-" + strconv.FormatInt(seed, 10)}
	for i := 0; i < n; i++ {
		s.Cases = append(s.Cases,
			Case{OpConstruct, val(), 0},
			Case{OpReserve, val(), int64(rnd.Intn(1000))},
			Case{OpCompare, val(), val()},
			Case{OpAdd, val(), val()},
			Case{OpSub, val(), val()},
		)
	}
	return s
}

// A Failure describes a failed case.
type Failure struct {
	Case Case   `json:"case"`
	Msg  string `json:"msg"`
}

func (f *Failure) Error() string {
	return f.Case.String() + ": " + f.Msg
}

func fail(c Case, format string, args ...interface{}) *Failure {
	return &Failure{Case: c, Msg: fmt.Sprintf(format, args...)}
}

// Check runs a single case. It returns nil on success. Panics are reported as
// failures.
func Check(c Case) (f *Failure) {
	defer func() {
		if r := recover(); r != nil {
			f = fail(c, "panic: %v", r)
		}
	}()

	switch c.Op {
	case OpConstruct:
		x := decint.NewInt(c.A)
		if got := x.Int64(); got != c.A || !x.IsInt64() {
			return fail(c, "got %d", got)
		}
		if got, want := x.String(), strconv.FormatInt(c.A, 10); got != want {
			return fail(c, "printed %s, want %s", got, want)
		}
	case OpReserve:
		x := decint.NewInt(c.A)
		n := x.Len()
		for _, r := range []int{int(c.B), 1} {
			x.Reserve(r)
			if x.Int64() != c.A || x.Len() != n {
				return fail(c, "Reserve(%d) changed the value to %s", r, x)
			}
			if x.Cap() < r {
				return fail(c, "Reserve(%d): capacity %d", r, x.Cap())
			}
		}
	case OpCompare:
		bx, by := big.NewInt(c.A), big.NewInt(c.B)
		if got, want := decint.NewInt(c.A).Cmp(decint.NewInt(c.B)), bx.Cmp(by); got != want {
			return fail(c, "got %d, want %d", got, want)
		}
		if got, want := decint.NewInt(c.A).CmpAbs(decint.NewInt(c.B)), bx.CmpAbs(by); got != want {
			return fail(c, "CmpAbs: got %d, want %d", got, want)
		}
	case OpAdd, OpSub:
		x, y := decint.NewInt(c.A), decint.NewInt(c.B)
		want := new(big.Int)
		if c.Op == OpAdd {
			x.Add(x, y)
			want.Add(big.NewInt(c.A), big.NewInt(c.B))
		} else {
			x.Sub(x, y)
			want.Sub(big.NewInt(c.A), big.NewInt(c.B))
		}
		if got := x.String(); got != want.String() {
			return fail(c, "got %s, want %s", got, want)
		}
		if want.IsInt64() && x.Int64() != want.Int64() {
			return fail(c, "converted to %d, want %s", x.Int64(), want)
		}
		if y.Int64() != c.B {
			return fail(c, "second operand modified: %s", y)
		}
	default:
		return fail(c, "unknown operation")
	}
	return nil
}

// A Report summarizes a run.
type Report struct {
	Suite    string     `json:"suite"`
	Counts   map[Op]int `json:"counts"`
	Failures []*Failure `json:"failures,omitempty"`
}

// OK reports whether all cases passed.
func (r *Report) OK() bool {
	return len(r.Failures) == 0
}

// Total returns the number of cases run.
func (r *Report) Total() int {
	n := 0
	for _, c := range r.Counts {
		n += c
	}
	return n
}

// Run checks all cases of s using up to jobs goroutines; jobs <= 0 means
// runtime.GOMAXPROCS(0). Case failures are collected in the report; the
// returned error is only set if ctx is done before all cases have run.
func Run(ctx context.Context, s Suite, jobs int, log *zap.SugaredLogger) (*Report, error) {
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	log.Infow("running suite", "suite", s.Name, "cases", len(s.Cases), "jobs", jobs)

	// indexed by case, no locking needed
	results := make([]*Failure, len(s.Cases))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, c := range s.Cases {
		i, c := i, c
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			log.Debugw("check", "case", c.String())
			if f := Check(c); f != nil {
				log.Errorw("check failed", "case", c.String(), "msg", f.Msg)
				results[i] = f
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r := &Report{Suite: s.Name, Counts: make(map[Op]int)}
	for i, c := range s.Cases {
		r.Counts[c.Op]++
		if results[i] != nil {
			r.Failures = append(r.Failures, results[i])
		}
	}
	log.Infow("suite done", "suite", s.Name, "cases", r.Total(), "failures", len(r.Failures))
	return r, nil
}

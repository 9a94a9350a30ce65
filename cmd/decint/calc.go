// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/db47h/decint"
	deccontext "github.com/db47h/decint/context"
	"github.com/db47h/decint/math"
)

type calcPayload struct {
	Op       string        `json:"op"`
	Operands []*decint.Int `json:"operands"`
	Result   interface{}   `json:"result"`
}

func parseOperands(args []string) ([]*decint.Int, error) {
	xs := make([]*decint.Int, len(args))
	for i, s := range args {
		x, err := new(decint.Int).Parse(s)
		if err != nil {
			return nil, err
		}
		xs[i] = x
	}
	return xs, nil
}

func (a *app) render(out io.Writer, op string, xs []*decint.Int, result interface{}) error {
	if a.json() {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(calcPayload{Op: op, Operands: xs, Result: result})
	}
	_, err := fmt.Fprintln(out, result)
	return err
}

// newCalcCmd returns the add or sub command. Operands are folded left:
// sub 10 3 2 computes (10 - 3) - 2.
func newCalcCmd(a *app, name, short string) *cobra.Command {
	var maxDigits uint
	cmd := &cobra.Command{
		Use:   name + " X Y...",
		Short: short,
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			xs, err := parseOperands(args)
			if err != nil {
				return err
			}
			ctx := deccontext.New(maxDigits)
			op := ctx.Add
			if name == "sub" {
				op = ctx.Sub
			}
			z := ctx.Set(new(decint.Int), xs[0])
			for _, y := range xs[1:] {
				op(z, z, y)
			}
			if err := ctx.Err(); err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			a.log.Debugw(name, "operands", len(xs), "digits", z.Len())
			return a.render(cmd.OutOrStdout(), name, xs, z)
		},
	}
	cmd.Flags().UintVar(&maxDigits, "max-digits", 0, "fail if a result has more digits (0 = unlimited)")
	return cmd
}

func newCmpCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "cmp X Y",
		Short: "Compare two integers, print -1, 0 or 1",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			xs, err := parseOperands(args)
			if err != nil {
				return err
			}
			return a.render(cmd.OutOrStdout(), "cmp", xs, xs[0].Cmp(xs[1]))
		},
	}
}

func newSumCmd(a *app) *cobra.Command {
	var jobs int
	cmd := &cobra.Command{
		Use:   "sum X...",
		Short: "Sum integers in parallel",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			xs, err := parseOperands(args)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("jobs") {
				jobs = a.cfg.Check.Jobs
			}
			z, err := math.ParallelSum(cmd.Context(), new(decint.Int), xs, jobs)
			if err != nil {
				return err
			}
			return a.render(cmd.OutOrStdout(), "sum", xs, z)
		},
	}
	cmd.Flags().IntVarP(&jobs, "jobs", "j", 0, "number of parallel workers (0 = GOMAXPROCS)")
	return cmd
}

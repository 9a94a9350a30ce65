// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/db47h/decint/internal/harness"
	"github.com/db47h/decint/internal/logger"
)

// errCheckFailed is returned by the check command when a case fails. The
// failures have already been printed.
var errCheckFailed = errors.New("check failed")

type checkOptions struct {
	jobs   int
	random int
	seed   int64
}

func newCheckCmd(a *app) *cobra.Command {
	var opts checkOptions
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Run the arithmetic self-checks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("jobs") {
				opts.jobs = a.cfg.Check.Jobs
			}
			suites := []harness.Suite{harness.DefaultSuite()}
			if opts.random > 0 {
				suites = append(suites, harness.RandomSuite(opts.seed, opts.random))
			}
			log := logger.GetLogger(logger.ModuleHarness)

			var reports []*harness.Report
			for _, s := range suites {
				start := time.Now()
				r, err := harness.Run(cmd.Context(), s, opts.jobs, log)
				if err != nil {
					return err
				}
				a.log.Debugw("suite timing", "suite", s.Name, "elapsed", time.Since(start))
				reports = append(reports, r)
			}

			out := cmd.OutOrStdout()
			if a.json() {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				if err := enc.Encode(reports); err != nil {
					return err
				}
			} else {
				a.printReports(out, reports)
			}
			for _, r := range reports {
				if !r.OK() {
					return errCheckFailed
				}
			}
			return nil
		},
	}
	f := cmd.Flags()
	f.IntVarP(&opts.jobs, "jobs", "j", 0, "number of parallel workers (0 = GOMAXPROCS)")
	f.IntVar(&opts.random, "random", 0, "also run N random cases per operation")
	f.Int64Var(&opts.seed, "seed", 1, "seed of the random cases")
	return cmd
}

func (a *app) printReports(out io.Writer, reports []*harness.Report) {
	pass := a.color(color.FgGreen, color.Bold)
	fail := a.color(color.FgRed, color.Bold)
	dim := a.color(color.Faint)

	for _, r := range reports {
		for _, f := range r.Failures {
			fmt.Fprintf(out, "%s %s\n", fail.Sprint("FAIL"), f)
		}
		status := pass.Sprint("PASS")
		if !r.OK() {
			status = fail.Sprint("FAIL")
		}
		fmt.Fprintf(out, "%s %s %s\n", status, r.Suite,
			dim.Sprintf("(%d cases, %d failed)", r.Total(), len(r.Failures)))
		for op := harness.OpConstruct; op <= harness.OpSub; op++ {
			if n := r.Counts[op]; n > 0 {
				fmt.Fprintf(out, "    %-12s %d\n", op, n)
			}
		}
	}
}

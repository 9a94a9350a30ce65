// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"runtime"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// Build information. Override with -ldflags "-X main.Version=...".
var (
	Version   = "0.1.0-dev"
	GitCommit = ""
	BuildDate = ""
)

type versionPayload struct {
	Tool      string `json:"tool"`
	Version   string `json:"version"`
	GoVersion string `json:"go_version"`
	GitCommit string `json:"git_commit,omitempty"`
	BuildDate string `json:"build_date,omitempty"`
}

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := versionPayload{
				Tool:      "decint",
				Version:   strings.TrimSpace(Version),
				GoVersion: runtime.Version(),
				GitCommit: strings.TrimSpace(GitCommit),
				BuildDate: strings.TrimSpace(BuildDate),
			}
			out := cmd.OutOrStdout()
			if a.json() {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(p)
			}
			fmt.Fprintf(out, "decint %s (%s)\n", a.color(color.FgYellow, color.Bold).Sprint(p.Version), p.GoVersion)
			if p.GitCommit != "" {
				fmt.Fprintf(out, "commit: %s\n", p.GitCommit)
			}
			if p.BuildDate != "" {
				fmt.Fprintf(out, "built:  %s\n", p.BuildDate)
			}
			return nil
		},
	}
}

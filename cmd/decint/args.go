// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// isNegNumber reports whether arg looks like a negative operand such as -5,
// which pflag would otherwise read as a shorthand flag.
func isNegNumber(arg string) bool {
	return len(arg) > 1 && arg[0] == '-' && arg[1] >= '0' && arg[1] <= '9'
}

// withOperands moves negative number operands of args behind a "--"
// terminator, keeping flags and their values in front. Operands keep their
// relative order.
func withOperands(root *cobra.Command, args []string) []string {
	cmd, _, err := root.Find(args)
	if err != nil {
		return args
	}
	var head, tail []string
	for i := 0; i < len(args); i++ {
		a := args[i]
		switch {
		case a == "--":
			tail = append(tail, args[i+1:]...)
			i = len(args)
		case isNegNumber(a):
			tail = append(tail, a)
		case len(a) > 1 && a[0] == '-':
			head = append(head, a)
			if takesValue(cmd, a) && i+1 < len(args) {
				i++
				head = append(head, args[i])
			}
		case len(tail) > 0:
			tail = append(tail, a)
		default:
			head = append(head, a)
		}
	}
	if len(tail) == 0 {
		return head
	}
	return append(append(head, "--"), tail...)
}

// takesValue reports whether the flag arg of cmd consumes the next argument.
func takesValue(cmd *cobra.Command, arg string) bool {
	if strings.Contains(arg, "=") {
		return false
	}
	var f *pflag.Flag
	if name, ok := strings.CutPrefix(arg, "--"); ok {
		f = cmd.Flag(name)
	} else if name := arg[1:]; len(name) == 1 {
		f = cmd.Flags().ShorthandLookup(name)
		if f == nil {
			f = cmd.InheritedFlags().ShorthandLookup(name)
		}
	}
	return f != nil && f.NoOptDefVal == ""
}

// execute runs root with args.
func execute(root *cobra.Command, args []string) error {
	root.SetArgs(withOperands(root, args))
	return root.Execute()
}

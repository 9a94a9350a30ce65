// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package harness

// Op identifies the operation exercised by a Case.
type Op int

//go:generate stringer -type=Op

// Operations.
const (
	OpConstruct Op = iota // build from A and convert back
	OpReserve             // reserve B digits on A, then shrink the request
	OpCompare             // signed comparison of A and B
	OpAdd                 // A + B
	OpSub                 // A - B
)

// MarshalText implements encoding.TextMarshaler. It lets Op be used as a JSON
// map key.
func (o Op) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

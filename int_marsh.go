// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements encoding/decoding of Ints.

package decint

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/vmihailenco/msgpack/v5"
)

// Gob codec version. Permits backward-compatible changes to the encoding.
const intGobVersion byte = 1

// GobEncode implements the gob.GobEncoder interface.
//
// The encoding is a version byte, a sign byte and the digits of |x| packed two
// per byte, most significant first.
func (x *Int) GobEncode() ([]byte, error) {
	if x == nil {
		return nil, nil
	}
	abs := x.abs
	if len(abs) == 0 {
		abs = digitsZero
	}
	n := (len(abs) + 1) / 2
	buf := make([]byte, 2+n)
	buf[0] = intGobVersion
	if x.neg {
		buf[1] = 1
	}
	// pack from the least significant end of buf
	for i, d := range abs {
		b := &buf[len(buf)-1-i/2]
		if i%2 == 0 {
			*b |= d
		} else {
			*b |= d << 4
		}
	}
	return buf, nil
}

// GobDecode implements the gob.GobDecoder interface.
func (z *Int) GobDecode(buf []byte) error {
	if len(buf) == 0 {
		// Other side sent a nil or default value.
		*z = Int{}
		return nil
	}
	if buf[0] != intGobVersion {
		return fmt.Errorf("Int.GobDecode: encoding version %d not supported", buf[0])
	}
	if len(buf) < 3 {
		return fmt.Errorf("Int.GobDecode: encoding too short: %d bytes", len(buf))
	}
	if buf[1] > 1 {
		return fmt.Errorf("Int.GobDecode: invalid sign byte %#x", buf[1])
	}
	packed := buf[2:]
	abs := z.abs.make(2 * len(packed))
	for i := range abs {
		b := packed[len(packed)-1-i/2]
		d := b & 0x0f
		if i%2 != 0 {
			d = b >> 4
		}
		if d > 9 {
			return fmt.Errorf("Int.GobDecode: invalid packed digit %#x", b)
		}
		abs[i] = d
	}
	z.abs = abs.norm()
	z.neg = buf[1] == 1 && !z.abs.isZero()
	return nil
}

// MarshalText implements the encoding.TextMarshaler interface.
func (x *Int) MarshalText() (text []byte, err error) {
	if x == nil {
		return []byte("<nil>"), nil
	}
	return x.Append(nil), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (z *Int) UnmarshalText(text []byte) error {
	if _, err := z.Parse(string(text)); err != nil {
		return fmt.Errorf("decint: cannot unmarshal %q into a *decint.Int: %w", text, err)
	}
	return nil
}

// MarshalJSON implements the json.Marshaler interface. The value is encoded
// as a JSON number.
func (x *Int) MarshalJSON() ([]byte, error) {
	if x == nil {
		return []byte("null"), nil
	}
	return x.Append(nil), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface. A JSON number or
// a string holding a decimal integer is accepted. null leaves z unchanged.
func (z *Int) UnmarshalJSON(text []byte) error {
	// Ignore null, like in the main JSON package.
	if string(text) == "null" {
		return nil
	}
	if len(text) > 0 && text[0] == '"' {
		s, err := strconv.Unquote(string(text))
		if err != nil {
			return fmt.Errorf("decint: cannot unmarshal %s into a *decint.Int: %w", text, err)
		}
		text = []byte(s)
	}
	return z.UnmarshalText(bytes.TrimSpace(text))
}

var (
	_ msgpack.CustomEncoder = intOne
	_ msgpack.CustomDecoder = intOne
)

// EncodeMsgpack implements the msgpack.CustomEncoder interface. Values that
// fit an int64 are encoded as msgpack integers, others as their decimal
// string.
func (x *Int) EncodeMsgpack(enc *msgpack.Encoder) error {
	if x == nil {
		return enc.EncodeNil()
	}
	if x.IsInt64() {
		return enc.EncodeInt(x.Int64())
	}
	if x.IsUint64() {
		return enc.EncodeUint(x.Uint64())
	}
	return enc.EncodeString(x.String())
}

// DecodeMsgpack implements the msgpack.CustomDecoder interface. It accepts
// msgpack integers, decimal strings and nil, which sets z to 0.
func (z *Int) DecodeMsgpack(dec *msgpack.Decoder) error {
	v, err := dec.DecodeInterfaceLoose()
	if err != nil {
		return err
	}
	switch v := v.(type) {
	case nil:
		z.SetInt64(0)
	case int64:
		z.SetInt64(v)
	case uint64:
		z.SetUint64(v)
	case string:
		if _, err := z.Parse(v); err != nil {
			return fmt.Errorf("decint: cannot decode msgpack string into a *decint.Int: %w", err)
		}
	default:
		return fmt.Errorf("decint: cannot decode msgpack %T into a *decint.Int", v)
	}
	return nil
}

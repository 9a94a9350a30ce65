// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements Int-to-string conversion functions.

package decint

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

var (
	errNoDigits = errors.New("number has no digits")
	errInvalSep = errors.New("'_' must separate successive digits")
)

// ErrSyntax is wrapped by all errors returned by Parse and SetString for
// malformed input.
var ErrSyntax = errors.New("invalid syntax")

// String returns the decimal representation of x, with a leading '-' if x is
// negative.
func (x *Int) String() string {
	return string(x.Append(nil))
}

// Append appends the decimal representation of x, as generated by x.String,
// to buf and returns the extended buffer.
func (x *Int) Append(buf []byte) []byte {
	if x == nil {
		return append(buf, "<nil>"...)
	}
	return append(buf, x.abs.itoa(x.neg)...)
}

// itoa returns the decimal representation of x, with a leading '-' if neg
// and x != 0.
func (x digits) itoa(neg bool) []byte {
	if len(x) == 0 {
		return []byte("0")
	}
	i := len(x)
	if neg && !x.isZero() {
		i++
	}
	s := make([]byte, i)
	for _, d := range x {
		i--
		s[i] = '0' + d
	}
	if i > 0 {
		s[0] = '-'
	}
	return s
}

// writeMultiple writes count copies of text to s.
func writeMultiple(s fmt.State, text string, count int) {
	if len(text) > 0 {
		b := []byte(text)
		for ; count > 0; count-- {
			s.Write(b)
		}
	}
}

var _ fmt.Formatter = intOne // *Int must implement fmt.Formatter

// Format implements fmt.Formatter. It accepts the formats 'd', 's' and 'v'.
// Also supported are the full suite of package fmt's format flags for integral
// types, except '#': '+' and ' ' for sign control, '0' for space or zero
// padding, and '-' for left or right justification. A precision sets the
// minimum number of digits. Specifying an unsupported format results in a
// %!X(decint.Int=...) error string.
func (x *Int) Format(s fmt.State, ch rune) {
	switch ch {
	case 'd', 's', 'v':
		// ok
	default:
		// unknown format
		fmt.Fprintf(s, "%%!%c(decint.Int=%s)", ch, x.String())
		return
	}

	if x == nil {
		fmt.Fprint(s, "<nil>")
		return
	}

	// determine sign character
	sign := ""
	switch {
	case x.neg && !x.abs.isZero():
		sign = "-"
	case s.Flag('+'): // supersedes ' ' when both specified
		sign = "+"
	case s.Flag(' '):
		sign = " "
	}

	digits := x.abs.itoa(false)

	// number of characters for the three classes of number padding
	var left int  // space characters to left of digits for right justification ("%8d")
	var zeros int // zero characters (actually cs[0]) as left-most digits ("%.8d")
	var right int // space characters to right of digits for left justification ("%-8d")

	// determine number padding from precision: the least number of digits to output
	precision, precisionSet := s.Precision()
	if precisionSet {
		switch {
		case len(digits) < precision:
			zeros = precision - len(digits) // count of zero padding
		case len(digits) == 1 && digits[0] == '0' && precision == 0:
			return // print nothing if zero value (x == 0) and zero precision ("." or ".0")
		}
	}

	// determine field pad from width: the least number of characters to output
	length := len(sign) + zeros + len(digits)
	if width, widthSet := s.Width(); widthSet && length < width { // pad as specified
		switch d := width - length; {
		case s.Flag('-'):
			// pad on the right with spaces; supersedes '0' when both specified
			right = d
		case s.Flag('0') && !precisionSet:
			// pad with zeros unless precision also specified
			zeros = d
		default:
			// pad on the left with spaces
			left = d
		}
	}

	// print number as [left pad][sign][zero pad][digits][right pad]
	writeMultiple(s, " ", left)
	writeMultiple(s, sign, 1)
	writeMultiple(s, "0", zeros)
	s.Write(digits)
	writeMultiple(s, " ", right)
}

// SetString sets z to the value of s and returns z and a boolean indicating
// success. The entire string, not just a prefix, must be valid for success.
// If the operation failed, the value of z is undefined but the returned value
// is nil.
func (z *Int) SetString(s string) (*Int, bool) {
	if _, err := z.Parse(s); err != nil {
		return nil, false
	}
	return z, true
}

// Parse parses s which must contain the text representation of a decimal
// integer and sets z to that value. The number must be of the form:
//
//	number = [ sign ] digits .
//	sign   = "+" | "-" .
//	digits = digit { [ "_" ] digit } .
//	digit  = "0" ... "9" .
//
// An underscore may appear between successive digits; it does not change
// the value of the number. Leading zeros are accepted and dropped.
//
// The returned *Int is nil and the value of z is valid but not defined if an
// error is reported. All syntax errors wrap ErrSyntax.
func (z *Int) Parse(s string) (*Int, error) {
	r := strings.NewReader(s)
	if _, err := z.scan(r); err != nil {
		return nil, fmt.Errorf("decint: parsing %q: %w", s, err)
	}
	// entire string must have been consumed
	if ch, err := r.ReadByte(); err == nil {
		return nil, fmt.Errorf("decint: parsing %q: expected end of string, found %q: %w", s, ch, ErrSyntax)
	} else if err != io.EOF {
		return nil, fmt.Errorf("decint: parsing %q: %w", s, err)
	}
	return z, nil
}

// scan sets z to the integer value corresponding to the longest possible
// prefix read from r representing a signed decimal integer. On error, z is
// left set to 0.
func (z *Int) scan(r io.ByteScanner) (*Int, error) {
	neg, err := scanSign(r)
	if err != nil {
		return nil, err
	}
	z.abs, err = z.abs.scan(r)
	if err != nil {
		z.neg = false
		return nil, err
	}
	z.neg = neg && !z.abs.isZero()
	return z, nil
}

func scanSign(r io.ByteScanner) (neg bool, err error) {
	var ch byte
	if ch, err = r.ReadByte(); err != nil {
		if err == io.EOF {
			err = fmt.Errorf("%w: %w", ErrSyntax, errNoDigits)
		}
		return false, err
	}
	switch ch {
	case '-':
		neg = true
	case '+':
		// nothing to do
	default:
		err = r.UnreadByte()
	}
	return
}

// scan reads decimal digits from r into z, most significant first, and
// returns the normalized result.
func (z digits) scan(r io.ByteScanner) (digits, error) {
	// prev encodes the previously seen char: it is one of '_', '0' (a digit),
	// or '.' (anything else). A valid separator '_' may only occur after a
	// digit.
	prev := '.'
	invalSep := false

	z = z[:0]
	ch, err := r.ReadByte()
	for err == nil {
		if ch == '_' {
			if prev != '0' {
				invalSep = true
			}
			prev = '_'
		} else {
			if ch < '0' || '9' < ch {
				err = r.UnreadByte() // ch does not belong to number anymore
				break
			}
			prev = '0'
			z = append(z, ch-'0')
		}
		ch, err = r.ReadByte()
	}
	if err == io.EOF {
		err = nil
	}
	if err != nil {
		return nil, err
	}
	if len(z) == 0 {
		return nil, fmt.Errorf("%w: %w", ErrSyntax, errNoDigits)
	}
	if invalSep || prev == '_' {
		return nil, fmt.Errorf("%w: %w", ErrSyntax, errInvalSep)
	}

	// digits were collected most significant first
	for i, j := 0, len(z)-1; i < j; i, j = i+1, j-1 {
		z[i], z[j] = z[j], z[i]
	}
	return z.norm(), nil
}

var _ fmt.Scanner = intOne // *Int must implement fmt.Scanner

// Scan is a support routine for fmt.Scanner; it sets z to the value of
// the scanned number. It accepts the formats 'd', 's' and 'v'.
func (z *Int) Scan(s fmt.ScanState, ch rune) error {
	s.SkipSpace() // skip leading space characters
	switch ch {
	case 'd', 's', 'v':
		// ok
	default:
		return errors.New("Int.Scan: invalid verb")
	}
	_, err := z.scan(byteReader{s})
	return err
}

// byteReader is a local wrapper around fmt.ScanState;
// it implements the io.ByteScanner interface.
type byteReader struct {
	fmt.ScanState
}

func (r byteReader) ReadByte() (byte, error) {
	ch, size, err := r.ReadRune()
	if size != 1 && err == nil {
		err = fmt.Errorf("invalid rune %#U", ch)
	}
	return byte(ch), err
}

func (r byteReader) UnreadByte() error {
	return r.UnreadRune()
}

var intOne = NewInt(1)

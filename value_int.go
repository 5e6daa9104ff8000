// Copyright 2024 The EDS Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package eds

import "strconv"

// newSigned builds a signed integer Value of the given variant and bit
// width, accepting any literal form parseNumericLiteral admits (decimal,
// 0x-hex, 0b-binary) as long as it fits within [lo, hi].
func newSigned(variant Variant, text string, lo, hi int64) (Value, error) {
	lit, ok := parseNumericLiteral(text)
	if !ok {
		return Value{}, &InvalidValue{Variant: variant, Text: text, Reason: "not a valid numeric literal"}
	}
	i, ok := lit.asInt64()
	if !ok || i < lo || i > hi {
		return Value{}, &InvalidValue{Variant: variant, Text: text, Reason: "out of range " + strconv.FormatInt(lo, 10) + ".." + strconv.FormatInt(hi, 10)}
	}
	return Value{variant: variant, i: i}, nil
}

// newUnsigned builds an unsigned/bitstring integer Value of the given
// variant and bit width.
func newUnsigned(variant Variant, text string, hi uint64) (Value, error) {
	lit, ok := parseNumericLiteral(text)
	if !ok {
		return Value{}, &InvalidValue{Variant: variant, Text: text, Reason: "not a valid numeric literal"}
	}
	u, ok := lit.asUint64()
	if !ok || u > hi {
		return Value{}, &InvalidValue{Variant: variant, Text: text, Reason: "out of range 0.." + strconv.FormatUint(hi, 10)}
	}
	return Value{variant: variant, u: u}, nil
}

// NewBool constructs a BOOL value from "0" or "1".
func NewBool(text string) (Value, error) {
	u, err := newUnsigned(VBool, text, 1)
	if err != nil {
		return Value{}, err
	}
	return u, nil
}

// NewSint constructs a SINT (8-bit signed) value.
func NewSint(text string) (Value, error) { return newSigned(VSint, text, -128, 127) }

// NewInt constructs an INT (16-bit signed) value.
func NewInt(text string) (Value, error) { return newSigned(VInt, text, -32768, 32767) }

// NewDint constructs a DINT (32-bit signed) value.
func NewDint(text string) (Value, error) { return newSigned(VDint, text, -2147483648, 2147483647) }

// NewLint constructs a LINT (64-bit signed) value.
func NewLint(text string) (Value, error) {
	return newSigned(VLint, text, -9223372036854775808, 9223372036854775807)
}

// NewUsint constructs a USINT (8-bit unsigned) value.
func NewUsint(text string) (Value, error) { return newUnsigned(VUsint, text, 255) }

// NewUint constructs a UINT (16-bit unsigned) value.
func NewUint(text string) (Value, error) { return newUnsigned(VUint, text, 65535) }

// NewUdint constructs a UDINT (32-bit unsigned) value.
func NewUdint(text string) (Value, error) { return newUnsigned(VUdint, text, 4294967295) }

// NewUlint constructs a ULINT (64-bit unsigned) value.
func NewUlint(text string) (Value, error) { return newUnsigned(VUlint, text, 18446744073709551615) }

// NewByte constructs a BYTE (8-bit bitstring) value.
func NewByte(text string) (Value, error) { return newUnsigned(VByte, text, 0xFF) }

// NewWord constructs a WORD (16-bit bitstring) value.
func NewWord(text string) (Value, error) { return newUnsigned(VWord, text, 0xFFFF) }

// NewDword constructs a DWORD (32-bit bitstring) value.
func NewDword(text string) (Value, error) { return newUnsigned(VDword, text, 0xFFFFFFFF) }

// NewLword constructs a LWORD (64-bit bitstring) value.
func NewLword(text string) (Value, error) { return newUnsigned(VLword, text, 0xFFFFFFFFFFFFFFFF) }

func (v Value) formatInt() string {
	switch v.variant {
	case VSint, VInt, VDint, VLint:
		return strconv.FormatInt(v.i, 10)
	case VBool:
		if v.u != 0 {
			return "1"
		}
		return "0"
	default:
		return strconv.FormatUint(v.u, 10)
	}
}

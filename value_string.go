// Copyright 2024 The EDS Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package eds

import (
	"fmt"
	"unicode/utf16"

	"golang.org/x/text/encoding/unicode"
)

// isPrintableASCII reports whether every byte of s falls in the printable
// ASCII range 0x20..0x7E. EDS text fields are specified over that charset;
// anything outside it (raw control bytes, non-ASCII) is rejected at
// construction time rather than silently accepted and mis-serialized
// later.
func isPrintableASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 || s[i] > 0x7E {
			return false
		}
	}
	return true
}

// NewString constructs a STRING value: printable text up to the CIP STRING
// length prefix's UINT range.
func NewString(text string) (Value, error) {
	if len(text) > 65535 {
		return Value{}, &InvalidValue{Variant: VString, Text: text, Reason: "exceeds 65535 bytes"}
	}
	if !isPrintableASCII(text) {
		return Value{}, &InvalidValue{Variant: VString, Text: text, Reason: "contains non-printable or non-ASCII bytes"}
	}
	return Value{variant: VString, str: text}, nil
}

// NewShortString constructs a SHORT_STRING value: printable text up to the
// CIP SHORT_STRING length prefix's USINT range.
func NewShortString(text string) (Value, error) {
	if len(text) > 255 {
		return Value{}, &InvalidValue{Variant: VShortString, Text: text, Reason: "exceeds 255 bytes"}
	}
	if !isPrintableASCII(text) {
		return Value{}, &InvalidValue{Variant: VShortString, Text: text, Reason: "contains non-printable or non-ASCII bytes"}
	}
	return Value{variant: VShortString, str: text}, nil
}

// NewStringI constructs a STRINGI value. The distilled grammar treats the
// language-tagged substructure CIP defines for STRINGI as opaque literal
// text at the EDS layer (every language entry round-trips as a single
// field literal); only the printable-ASCII charset constraint is enforced.
func NewStringI(text string) (Value, error) {
	if !isPrintableASCII(text) {
		return Value{}, &InvalidValue{Variant: VStringI, Text: text, Reason: "contains non-printable or non-ASCII bytes"}
	}
	return Value{variant: VStringI, str: text}, nil
}

var utf16le = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// NewString2 constructs a STRING2 value: CIP's "wide string", carried on
// the wire as UTF-16LE code units. The constructor accepts the same
// printable literal text the lexer hands it and validates that every rune
// round-trips through UTF-16LE without loss (surrogate-pair characters are
// rejected: CIP STRING2 is defined over the BMP).
func NewString2(text string) (Value, error) {
	for _, r := range text {
		if r > 0xFFFF {
			return Value{}, &InvalidValue{Variant: VString2, Text: text, Reason: fmt.Sprintf("rune %U is outside the UTF-16LE basic multilingual plane STRING2 requires", r)}
		}
	}
	enc := utf16le.NewEncoder()
	if _, err := enc.String(text); err != nil {
		return Value{}, &InvalidValue{Variant: VString2, Text: text, Reason: "not representable as UTF-16LE: " + err.Error()}
	}
	return Value{variant: VString2, str: text}, nil
}

// String2Units returns the UTF-16LE code units a STRING2 Value would
// encode to on the wire, for callers building a binary CIP payload.
func (v Value) String2Units() []uint16 {
	if v.variant != VString2 {
		return nil
	}
	return utf16.Encode([]rune(v.str))
}

// NewVendorSpecific constructs a VENDOR_SPECIFIC value: the parser's
// fallback for a literal beginning with a digit that matched no schema
// alternative.
func NewVendorSpecific(text string) (Value, error) {
	if text == "" || text[0] < '0' || text[0] > '9' {
		return Value{}, &InvalidValue{Variant: VVendorSpecific, Text: text, Reason: "must begin with a digit"}
	}
	return Value{variant: VVendorSpecific, str: text}, nil
}

// NewService constructs a SERVICE value: a free-form service descriptor
// literal, accepted as-is.
func NewService(text string) (Value, error) {
	return Value{variant: VService, str: text}, nil
}

// NewUndefined constructs the parser's last-resort fallback Value for a
// literal that matched no schema alternative and does not qualify as
// VENDOR_SPECIFIC.
func NewUndefined(text string) Value {
	return Value{variant: VUndefined, str: text}
}

// NewEmpty constructs the EMPTY value used for a field position with no
// literal at all.
func NewEmpty() Value {
	return Value{variant: VEmpty}
}

// Copyright 2024 The EDS Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package eds

import (
	"fmt"
	"strconv"
	"strings"
)

// Revision is the MajorRevision.MinorRevision payload of a REVISION value.
type Revision struct {
	Major int
	Minor int
}

func (r Revision) format() string {
	return fmt.Sprintf("%d.%d", r.Major, r.Minor)
}

// NewRevision constructs a REVISION value from "major.minor" text.
func NewRevision(text string) (Value, error) {
	parts := strings.Split(text, ".")
	if len(parts) != 2 {
		return Value{}, &InvalidValue{Variant: VRevision, Text: text, Reason: "want \"major.minor\""}
	}
	major, err := strconv.Atoi(parts[0])
	if err != nil || major < 0 {
		return Value{}, &InvalidValue{Variant: VRevision, Text: text, Reason: "bad major revision"}
	}
	minor, err := strconv.Atoi(parts[1])
	if err != nil || minor < 0 {
		return Value{}, &InvalidValue{Variant: VRevision, Text: text, Reason: "bad minor revision"}
	}
	return Value{variant: VRevision, rev: Revision{Major: major, Minor: minor}}, nil
}

// MACAddr is the 6-octet payload of a MAC_ADDR value.
type MACAddr [6]byte

func (m MACAddr) format() string {
	return fmt.Sprintf("%02X-%02X-%02X-%02X-%02X-%02X", m[0], m[1], m[2], m[3], m[4], m[5])
}

// NewMACAddr constructs a MAC_ADDR value. The original accepts '-', ':' or
// '.' as the octet separator and tolerates an optional enclosing brace
// pair; this constructor mirrors that tolerance.
func NewMACAddr(text string) (Value, error) {
	trimmed := strings.TrimSpace(text)
	trimmed = strings.TrimPrefix(trimmed, "{")
	trimmed = strings.TrimSuffix(trimmed, "}")
	normalized := strings.NewReplacer(":", "-", ".", "-").Replace(trimmed)
	octets := strings.Split(normalized, "-")
	if len(octets) != 6 {
		return Value{}, &InvalidValue{Variant: VMACAddr, Text: text, Reason: "want 6 hyphen/colon/dot separated octets"}
	}
	var mac MACAddr
	for i, octet := range octets {
		u, err := strconv.ParseUint(octet, 16, 8)
		if err != nil {
			return Value{}, &InvalidValue{Variant: VMACAddr, Text: text, Reason: fmt.Sprintf("octet %d %q is not a hex byte", i, octet)}
		}
		mac[i] = byte(u)
	}
	return Value{variant: VMACAddr, mac: mac}, nil
}

// NewKeyword constructs a KEYWORD value: text that must case-insensitively
// match one of the supplied enumeration members. keywords is carried into
// the returned Value's TypeMeta-bearing alternative by the caller (the
// schema-driven field constructor), not by this function.
func NewKeyword(text string, keywords []string) (Value, error) {
	for _, k := range keywords {
		if strings.EqualFold(text, k) {
			return Value{variant: VKeyword, str: text}, nil
		}
	}
	return Value{}, &InvalidValue{Variant: VKeyword, Text: text, Reason: fmt.Sprintf("not one of %v", keywords)}
}

// NewRef constructs a REF value: text whose prefix case-insensitively
// matches one of the supplied stems once each stem's trailing "N" is
// stripped (e.g. stem "ParamN" admits "Param7").
func NewRef(text string, stems []string) (Value, error) {
	for _, stem := range stems {
		bare := strings.TrimSuffix(stem, "N")
		if len(text) >= len(bare) && strings.EqualFold(text[:len(bare)], bare) {
			return Value{variant: VRef, str: text}, nil
		}
	}
	return Value{}, &InvalidValue{Variant: VRef, Text: text, Reason: fmt.Sprintf("does not match any stem in %v", stems)}
}

// NewTypeRef constructs the placeholder TYPEREF value for a field whose
// real variant is dictated by a sibling field's CIP data-type id. The validator
// resolves the sibling and retries construction with the concrete scalar
// variant before ever falling back to this placeholder. Like the
// original's DATATYPE_REF, it accepts any text unconditionally; it is also
// what constructByVariant dispatches VTypeRef to, so Document.SetValue
// accepts any text for a field whose alternatives include TYPEREF.
func NewTypeRef(text string) (Value, error) {
	return Value{variant: VTypeRef, str: text}, nil
}

// Copyright 2024 The EDS Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package eds

import (
	"fmt"
	"strconv"
	"strings"
)

// ResolveEPath substitutes each bracketed reference in an EPATH literal
// with the two-hex-digit encoding of the value its target entry carries,
// returning the fully numeric path text. Numeric
// segments pass through unchanged.
func (d *Document) ResolveEPath(path string) (string, error) {
	segments := strings.Fields(path)
	out := make([]string, 0, len(segments))
	for _, seg := range segments {
		if !strings.HasPrefix(seg, "[") || !strings.HasSuffix(seg, "]") {
			out = append(out, seg)
			continue
		}
		ref := seg[1 : len(seg)-1]
		resolved, err := d.resolveEPathRef(ref)
		if err != nil {
			return "", err
		}
		out = append(out, resolved)
	}
	return strings.Join(out, " "), nil
}

func (d *Document) resolveEPathRef(ref string) (string, error) {
	section, ok := refTargetSection(ref)
	if !ok {
		return "", &EPathError{Token: ref, Reason: "reference does not match a known target section"}
	}
	entry, ok := d.GetEntry(section, ref)
	if !ok {
		return "", &EPathError{Token: ref, Reason: fmt.Sprintf("no entry %q in section %q", ref, section)}
	}
	f := findFieldByName(entry, "Default Value")
	if f == nil {
		v, ok := entry.Value()
		if !ok {
			return "", &EPathError{Token: ref, Reason: "target entry has no value"}
		}
		return formatEPathByte(v)
	}
	return formatEPathByte(f.Value)
}

// formatEPathByte renders a resolved Value as the two-hex-digit byte an
// EPATH segment expects.
func formatEPathByte(v Value) (string, error) {
	var n int64
	switch v.Variant() {
	case VSint, VInt, VDint, VLint:
		n = v.Int()
	case VUsint, VUint, VUdint, VUlint, VByte, VWord, VDword, VLword, VBool:
		n = int64(v.Uint())
	default:
		parsed, err := strconv.ParseInt(v.Text(), 0, 64)
		if err != nil {
			return "", &EPathError{Token: v.Text(), Reason: "value is not numeric"}
		}
		n = parsed
	}
	if n < 0 || n > 0xFF {
		return "", &EPathError{Token: v.Text(), Reason: "value does not fit in one byte"}
	}
	return fmt.Sprintf("%02X", n), nil
}

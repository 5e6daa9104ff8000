// Copyright 2024 The EDS Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package eds

import (
	"fmt"
	"strconv"
	"strings"
)

// EPathElement is one segment of a parsed EPATH: either a numeric segment
// (a class/instance/attribute id) or a bracketed reference to another
// entry's keyword, resolved later by Document.ResolveEPath.
type EPathElement struct {
	Text       string
	IsRef      bool   // true when Text was written as "[Keyword]"
	Ref        string // Keyword with the brackets stripped, when IsRef
}

// NewEPath constructs an EPATH value from a whitespace-separated sequence
// of two-hex-digit byte segments and/or bracketed references. An empty
// EPATH is permitted.
func NewEPath(text string) (Value, error) {
	elements := strings.Fields(text)
	for _, el := range elements {
		if strings.HasPrefix(el, "[") && strings.HasSuffix(el, "]") && len(el) > 2 {
			continue
		}
		if len(el) != 2 {
			return Value{}, &InvalidValue{Variant: VEPath, Text: text, Reason: fmt.Sprintf("segment %q is not two hex digits", el)}
		}
		if _, err := strconv.ParseUint(el, 16, 8); err != nil {
			return Value{}, &InvalidValue{Variant: VEPath, Text: text, Reason: fmt.Sprintf("segment %q is not a hex byte", el)}
		}
	}
	return Value{variant: VEPath, str: text}, nil
}

// Elements splits an EPATH Value's text into its segments, classifying
// each as numeric or a bracketed reference.
func (v Value) Elements() []EPathElement {
	if v.variant != VEPath {
		return nil
	}
	fields := strings.Fields(v.str)
	out := make([]EPathElement, 0, len(fields))
	for _, f := range fields {
		if strings.HasPrefix(f, "[") && strings.HasSuffix(f, "]") {
			out = append(out, EPathElement{Text: f, IsRef: true, Ref: f[1 : len(f)-1]})
		} else {
			out = append(out, EPathElement{Text: f})
		}
	}
	return out
}

// Copyright 2024 The EDS Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package eds

import (
	"math"
	"strconv"
)

func newFloat(variant Variant, text string, bitSize int) (Value, error) {
	lit, ok := parseNumericLiteral(text)
	if !ok {
		return Value{}, &InvalidValue{Variant: variant, Text: text, Reason: "not a valid numeric literal"}
	}
	f := lit.asFloat64()
	if bitSize == 32 {
		if math.Abs(f) > math.MaxFloat32 {
			return Value{}, &InvalidValue{Variant: variant, Text: text, Reason: "out of float32 range"}
		}
	}
	return Value{variant: variant, f: f}, nil
}

// NewReal constructs a REAL (IEEE-754 single precision) value.
func NewReal(text string) (Value, error) { return newFloat(VReal, text, 32) }

// NewLreal constructs a LREAL (IEEE-754 double precision) value.
func NewLreal(text string) (Value, error) { return newFloat(VLreal, text, 64) }

func (v Value) formatFloat() string {
	bitSize := 64
	if v.variant == VReal {
		bitSize = 32
	}
	return strconv.FormatFloat(v.f, 'g', -1, bitSize)
}

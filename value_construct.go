// Copyright 2024 The EDS Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package eds

import "fmt"

// constructByVariant dispatches to the constructor for variant, passing
// meta along for the variants that need per-position constraints
// (KEYWORD's enumeration, REF's stems). It is the single place C6's
// field-typing loop and Document.SetValue fall through to try a schema
// alternative.
func constructByVariant(variant Variant, text string, meta TypeMeta) (Value, error) {
	switch variant {
	case VBool:
		return NewBool(text)
	case VSint:
		return NewSint(text)
	case VInt:
		return NewInt(text)
	case VDint:
		return NewDint(text)
	case VLint:
		return NewLint(text)
	case VUsint:
		return NewUsint(text)
	case VUint:
		return NewUint(text)
	case VUdint:
		return NewUdint(text)
	case VUlint:
		return NewUlint(text)
	case VReal:
		return NewReal(text)
	case VLreal:
		return NewLreal(text)
	case VByte:
		return NewByte(text)
	case VWord:
		return NewWord(text)
	case VDword:
		return NewDword(text)
	case VLword:
		return NewLword(text)
	case VString:
		return NewString(text)
	case VStringI:
		return NewStringI(text)
	case VString2:
		return NewString2(text)
	case VShortString:
		return NewShortString(text)
	case VDate:
		return NewDate(text)
	case VTime:
		return NewTime(text)
	case VTimeOfDay:
		return NewTimeOfDay(text)
	case VDateAndTime:
		return NewDateAndTime(text)
	case VStime:
		return NewSTime(text)
	case VFtime:
		return NewFTime(text)
	case VLtime:
		return NewLTime(text)
	case VItime:
		return NewITime(text)
	case VNtime:
		return NewNTime(text)
	case VEPath:
		return NewEPath(text)
	case VRevision:
		return NewRevision(text)
	case VMACAddr:
		return NewMACAddr(text)
	case VKeyword:
		return NewKeyword(text, meta.Keywords)
	case VRef:
		return NewRef(text, meta.Stems)
	case VTypeRef:
		return NewTypeRef(text)
	case VVendorSpecific:
		return NewVendorSpecific(text)
	case VService:
		return NewService(text)
	case VUndefined:
		return NewUndefined(text), nil
	case VEmpty:
		if text != "" {
			return Value{}, &InvalidValue{Variant: VEmpty, Text: text, Reason: "want empty text"}
		}
		return NewEmpty(), nil
	default:
		return Value{}, fmt.Errorf("eds: unknown variant %v", variant)
	}
}

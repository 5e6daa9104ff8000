// Copyright 2024 The EDS Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package eds

// Format renders v to the canonical textual literal the serializer writes
// to a field position. Text-shaped variants return their
// stored literal unchanged; every other variant is rebuilt from its typed
// payload so re-serializing a mutated Value never echoes stale text.
func (v Value) Format() string {
	switch v.variant {
	case VBool, VSint, VInt, VDint, VLint,
		VUsint, VUint, VUdint, VUlint,
		VByte, VWord, VDword, VLword:
		return v.formatInt()
	case VReal, VLreal:
		return v.formatFloat()
	case VString, VStringI, VString2, VShortString,
		VEPath, VKeyword, VRef, VTypeRef, VVendorSpecific, VService, VUndefined:
		return v.str
	case VDate:
		return v.date.format()
	case VTime, VTimeOfDay:
		return v.clk.formatOfDay()
	case VDateAndTime:
		return v.clk.Date.format() + " " + v.clk.formatOfDay()
	case VStime, VFtime, VLtime, VItime, VNtime:
		return v.clk.formatDuration()
	case VRevision:
		return v.rev.format()
	case VMACAddr:
		return v.mac.format()
	case VEmpty:
		return ""
	default:
		return v.str
	}
}

// Copyright 2024 The EDS Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package eds

import (
	"strconv"
	"strings"
)

// Validate walks the Document and (i) assigns each field its
// schema-correct display name, (ii) promotes each field's Value to the
// strongest admitted variant, (iii) identifies the device's protocol,
// (iv) checks that File and Device lead the document and that Device
// Classification is present, and checks REF cross-references. Absent
// mandatory entries and fields are not reported.
// It never fails: findings are recorded as Diagnostics and returned.
// Calling Validate more than once is safe and idempotent.
func (d *Document) Validate() []Diagnostic {
	d.Diagnostics = nil

	d.checkRequiredOrdering()
	d.classifyProtocol()

	protocol, _ := d.db.LookupProtocol(d.Protocol)
	var protoPtr *ProtocolLibrary
	if d.Protocol != "" {
		protoPtr = &protocol
	}

	for _, s := range d.sections {
		d.nameSectionAndEntries(s, protoPtr)
	}
	for _, s := range d.sections {
		schema, found := d.db.LookupSection(s.Keyword, protoPtr)
		if !found {
			continue
		}
		for _, e := range s.entries {
			entrySchema, found := d.db.LookupEntry(schema, e.Keyword)
			if !found {
				continue
			}
			d.typeEntryFields(s, e, entrySchema)
		}
	}
	d.checkReferences()

	return d.Diagnostics
}

func (d *Document) checkRequiredOrdering() {
	names := make([]string, 0, len(d.sections))
	for _, s := range d.sections {
		names = append(names, normalizeKey(s.Keyword))
	}
	want := []string{normalizeKey("File"), normalizeKey("Device")}
	for i, w := range want {
		if i >= len(names) || names[i] != w {
			d.addDiagnostic(SeverityWarning, "structural", "", "", -1, 0,
				"required section %q is missing or out of order (expected position %d)", want[i], i+1)
		}
	}
	if !d.HasSection("Device Classification") {
		d.addDiagnostic(SeverityError, "structural", "Device Classification", "", -1, 0,
			"required section \"Device Classification\" is missing")
	}
}

func (d *Document) classifyProtocol() {
	s, ok := d.GetSection("Device Classification")
	if !ok {
		return
	}
	sawPublic := false
	for _, e := range s.entries {
		v, ok := e.Value()
		if !ok {
			continue
		}
		text := v.Text()
		if !isDeviceClassificationKeyword(text) {
			continue
		}
		if !sawPublic {
			d.Classification = text
			d.Protocol = foldProtocolName(text)
			sawPublic = true
			continue
		}
		d.addDiagnostic(SeverityWarning, "classification", s.Keyword, e.Keyword, 0, e.Line,
			"additional Device Classification entry %q present after the selecting Class1", text)
	}
}

func isDeviceClassificationKeyword(text string) bool {
	for _, k := range deviceClassificationKeywords {
		if strings.EqualFold(text, k) {
			return true
		}
	}
	return false
}

func foldProtocolName(classification string) string {
	if strings.HasPrefix(strings.ToLower(classification), "ethernetip") {
		return "EtherNetIP"
	}
	return classification
}

func (d *Document) nameSectionAndEntries(s *Section, protocol *ProtocolLibrary) {
	schema, found := d.db.LookupSection(s.Keyword, protocol)
	if !found {
		if !looksVendorSpecificKeyword(s.Keyword) {
			d.addDiagnostic(SeverityWarning, "unknown-section", s.Keyword, "", -1, s.Line,
				"unknown section %q", s.Keyword)
		}
		return
	}
	s.Name = schema.Name
	s.ClassID = schema.ClassID
	for _, e := range s.entries {
		entrySchema, found := d.db.LookupEntry(schema, e.Keyword)
		if !found {
			if !looksVendorSpecificKeyword(e.Keyword) {
				d.addDiagnostic(SeverityWarning, "unknown-entry", s.Keyword, e.Keyword, -1, e.Line,
					"unknown entry %q in section %q", e.Keyword, s.Keyword)
			}
			continue
		}
		e.Name = entrySchema.Name
	}
}

// looksVendorSpecificKeyword reports whether keyword follows the
// "VendorID_Keyword" vendor-extension convention: a leading decimal run followed by an underscore.
func looksVendorSpecificKeyword(keyword string) bool {
	i := 0
	for i < len(keyword) && keyword[i] >= '0' && keyword[i] <= '9' {
		i++
	}
	return i > 0 && i < len(keyword) && keyword[i] == '_'
}

func (d *Document) typeEntryFields(s *Section, e *Entry, schema EntrySchema) {
	for _, f := range e.fields {
		fieldSchema, found := schema.ResolveFieldIndex(f.Index)
		if !found {
			continue
		}
		f.Name = fieldSchema.Name

		if schema.IsStem() && strings.HasPrefix(strings.ToLower(schema.Key), "enum") {
			if resolved, ok := d.tryEnumTypedValue(s, e, fieldSchema, f); ok {
				f.Value = resolved.withAlts(toTypeAlts(fieldSchema.Alts))
				f.Alts = toTypeAlts(fieldSchema.Alts)
				continue
			}
		}

		matched := false
		for _, alt := range fieldSchema.Alts {
			if alt.Variant == VTypeRef {
				if f.Value.Text() == "" {
					continue
				}
				v, ok := d.tryTypeRefValue(e, alt.Meta, f.Value.Text())
				if !ok {
					v, _ = NewTypeRef(f.Value.Text())
				}
				f.Value = v.withAlts(toTypeAlts(fieldSchema.Alts))
				matched = true
				break
			}
			v, err := constructByVariant(alt.Variant, f.Value.Text(), alt.Meta)
			if err == nil {
				f.Value = v.withAlts(toTypeAlts(fieldSchema.Alts))
				matched = true
				break
			}
		}
		f.Alts = toTypeAlts(fieldSchema.Alts)
		if !matched {
			original := fieldOriginalText(f)
			if original != "" {
				sev := SeverityWarning
				if fieldSchema.Mandatory {
					sev = SeverityError
				}
				admits := make([]Variant, 0, len(fieldSchema.Alts))
				for _, alt := range fieldSchema.Alts {
					admits = append(admits, alt.Variant)
				}
				d.addDiagnostic(sev, "type-mismatch", s.Keyword, e.Keyword, f.Index, f.Line,
					"value %q does not admit any of %v", original, admits)
			}
		}
	}
}

// fieldOriginalText recovers the literal text a field carried before
// typing attempts overwrote its Value, for diagnostic messages; the
// parser's preliminary fallback variants (EMPTY/VENDOR_SPECIFIC/
// UNDEFINED) all store the literal verbatim.
func fieldOriginalText(f *Field) string {
	return f.Value.Text()
}

func toTypeAlts(alts []FieldAlt) []TypeAlt {
	out := make([]TypeAlt, len(alts))
	for i, a := range alts {
		out[i] = TypeAlt{Variant: a.Variant, Meta: a.Meta}
	}
	return out
}

// tryEnumTypedValue implements the EnumN special case: Enum value
// fields ("First Enum"/"Nth Enum") are re-typed using the CIP data type
// their associated ParamN entry declares, so an EnumN value that is
// semantically a UINT is not forced into USINT's narrower range.
func (d *Document) tryEnumTypedValue(s *Section, e *Entry, fieldSchema FieldSchema, f *Field) (Value, bool) {
	if fieldSchema.Name != "First Enum" && fieldSchema.Name != "Nth Enum" {
		return Value{}, false
	}
	paramKey := paramKeyForEnum(e.Keyword)
	param, ok := s.findEntry(paramKey)
	if !ok {
		return Value{}, false
	}
	dataTypeField := findFieldByName(param, "Data Type")
	if dataTypeField == nil {
		return Value{}, false
	}
	id, err := strconv.ParseUint(dataTypeField.Value.Text(), 0, 16)
	if err != nil {
		return Value{}, false
	}
	variant, ok := variantForCIPTypeID(uint16(id))
	if !ok {
		return Value{}, false
	}
	v, err := constructByVariant(variant, f.Value.Text(), TypeMeta{})
	if err != nil {
		return Value{}, false
	}
	return v, true
}

// tryTypeRefValue resolves a TYPEREF field into a concrete scalar by reading the
// CIP data-type id off the sibling field meta.TypeRefField names, within
// the same entry, and retrying construction with that scalar variant.
func (d *Document) tryTypeRefValue(e *Entry, meta TypeMeta, text string) (Value, bool) {
	if meta.TypeRefField == "" {
		return Value{}, false
	}
	sibling := findFieldByName(e, meta.TypeRefField)
	if sibling == nil {
		return Value{}, false
	}
	id, err := strconv.ParseUint(sibling.Value.Text(), 0, 16)
	if err != nil {
		return Value{}, false
	}
	variant, ok := variantForCIPTypeID(uint16(id))
	if !ok {
		return Value{}, false
	}
	v, err := constructByVariant(variant, text, TypeMeta{})
	if err != nil {
		return Value{}, false
	}
	return v, true
}

// paramKeyForEnum maps "Enum3" to "Param3": the numeric suffix is shared
// between an EnumN entry and the ParamN entry it annotates.
func paramKeyForEnum(enumKey string) string {
	i := len(enumKey)
	for i > 0 && enumKey[i-1] >= '0' && enumKey[i-1] <= '9' {
		i--
	}
	return "Param" + enumKey[i:]
}

func findFieldByName(e *Entry, name string) *Field {
	for _, f := range e.fields {
		if f.Name == name {
			return f
		}
	}
	return nil
}

func variantForCIPTypeID(id uint16) (Variant, bool) {
	for v, cipID := range cipTypeIDs {
		if cipID == id {
			return v, true
		}
	}
	return 0, false
}

// refTargetSection maps a REF value's keyword prefix to the section its
// target entry must live in.
func refTargetSection(refText string) (string, bool) {
	lower := strings.ToLower(refText)
	switch {
	case strings.HasPrefix(lower, "param"):
		return "Params", true
	case strings.HasPrefix(lower, "assem"):
		return "Assembly", true
	default:
		return "", false
	}
}

func (d *Document) checkReferences() {
	for _, s := range d.sections {
		for _, e := range s.entries {
			for _, f := range e.fields {
				if f.Value.Variant() != VRef {
					continue
				}
				target := f.Value.Text()
				section, ok := refTargetSection(target)
				if !ok {
					continue
				}
				if _, ok := d.GetEntry(section, target); !ok {
					d.addDiagnostic(SeverityWarning, "reference-missing", s.Keyword, e.Keyword, f.Index, f.Line,
						"REF %q has no matching entry in section %q", target, section)
				}
			}
		}
	}
}

// Copyright 2024 The EDS Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package eds

import "strings"

// normalizeKey lower-cases a section/entry keyword and strips the
// characters the original schema tables ignore when indexing (spaces and
// underscores), so "Device Classification" and "DEVICECLASSIFICATION"
// resolve to the same schema entry.
func normalizeKey(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r == ' ' || r == '_' {
			continue
		}
		b.WriteRune(r)
	}
	return strings.ToLower(b.String())
}

// stemOf strips a trailing run of ASCII digits from an entry keyword,
// mirroring entryname.rstrip(digits) in the original lookup, so
// "Param7" and "Param123" both resolve against the "ParamN" stem.
func stemOf(entryKey string) string {
	i := len(entryKey)
	for i > 0 && entryKey[i-1] >= '0' && entryKey[i-1] <= '9' {
		i--
	}
	return entryKey[:i]
}

// LookupSection finds a SectionSchema by keyword within scopes, searching
// the meta sections first and then, if protocol is non-nil, the selected
// protocol library's own sections.
func (db *Database) LookupSection(key string, protocol *ProtocolLibrary) (SectionSchema, bool) {
	norm := normalizeKey(key)
	for _, s := range db.Meta {
		if normalizeKey(s.Key) == norm {
			return s, true
		}
	}
	if protocol != nil {
		for _, s := range protocol.Sections {
			if normalizeKey(s.Key) == norm {
				return s, true
			}
		}
	}
	return SectionSchema{}, false
}

// LookupProtocol resolves a Device Classification keyword to the protocol
// library it selects, folding the EtherNetIP_* family onto "EtherNetIP".
func (db *Database) LookupProtocol(classification string) (ProtocolLibrary, bool) {
	name := classification
	if strings.HasPrefix(strings.ToLower(name), "ethernetip") {
		name = "EtherNetIP"
	}
	for _, lib := range db.Protocols {
		if strings.EqualFold(lib.Name, name) {
			return lib, true
		}
	}
	return ProtocolLibrary{}, false
}

// LookupEntry finds an EntrySchema by keyword within a section, applying
// the stem-stripping rule for incrementing entries and, failing that for a
// section with a CIP class id, falling back to the Common Object Class
// template. ok reports whether any match — direct or fallback — was found.
func (db *Database) LookupEntry(section SectionSchema, entryKey string) (entry EntrySchema, ok bool) {
	if e, found := lookupEntryDirect(section, entryKey); found {
		return e, true
	}
	if section.ClassID <= 0 {
		return EntrySchema{}, false
	}
	for _, sec := range db.Meta {
		if normalizeKey(sec.Key) == commonObjectClassKey {
			return lookupEntryDirect(sec, entryKey)
		}
	}
	return EntrySchema{}, false
}

func lookupEntryDirect(section SectionSchema, entryKey string) (EntrySchema, bool) {
	norm := normalizeKey(entryKey)
	stem := normalizeKey(stemOf(entryKey)) + "n"
	for _, e := range section.Entries {
		if normalizeKey(e.Key) == norm {
			return e, true
		}
		if e.IsStem() && normalizeKey(e.Key) == stem {
			return e, true
		}
	}
	return EntrySchema{}, false
}

// ResolveFieldIndex maps a literal field position (0-based, in document
// order) to the schema's FieldSchema, wrapping through an entry's
// enumerated field groups once the literal count runs past the entry's
// declared field list + first -
// 1" rule).
func (e EntrySchema) ResolveFieldIndex(index int) (FieldSchema, bool) {
	if index >= 0 && index < len(e.Fields) {
		return e.Fields[index], true
	}
	for _, group := range e.EnumGroups {
		if group.Count <= 0 {
			continue
		}
		resolved := (index % group.Count) + group.FirstField - 1
		if resolved >= 0 && resolved < len(e.Fields) {
			return e.Fields[resolved], true
		}
	}
	return FieldSchema{}, false
}

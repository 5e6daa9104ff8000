// Copyright 2024 The EDS Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package eds

// FieldAlt is one admitted (Variant, TypeMeta) alternative at a field
// position, as declared by the schema. The validator tries each in
// declaration order and the Value that results from the first one to
// accept the literal is the one recorded on the Field.
type FieldAlt struct {
	Variant Variant
	Meta    TypeMeta
}

// FieldSchema describes one position within an EntrySchema's field list.
type FieldSchema struct {
	Name      string
	Mandatory bool
	Alts      []FieldAlt
}

// EnumGroup names a set of field positions within an entry that repeat
// starting at FirstField (1-based), wrapping back to FirstField once the
// literal field count exceeds the entry's declared field list — the
// "Nthfields" mechanism in the original schema tables.
type EnumGroup struct {
	FirstField int
	Count      int
}

// EntrySchema describes one entry keyword (or keyword stem, for
// incrementing entries like "ParamN") within a section.
type EntrySchema struct {
	Name       string // display name, e.g. "Parameter"
	Key        string // keyword or stem, e.g. "ParamN"
	Mandatory  bool
	Fields     []FieldSchema
	EnumGroups []EnumGroup // empty unless this entry has repeating field groups
}

// IsStem reports whether Key ends in "N", meaning it names a family of
// incrementing entry keywords (Param1, Param2, ...) rather than one fixed
// keyword.
func (e EntrySchema) IsStem() bool {
	return len(e.Key) > 0 && e.Key[len(e.Key)-1] == 'N'
}

// SectionSchema describes one section keyword.
type SectionSchema struct {
	Name      string // display name, e.g. "File Description"
	Key       string // section keyword as written in the document, e.g. "File"
	ClassID   int    // CIP class id for protocol-scoped sections; -1 if none
	Mandatory bool
	Entries   []EntrySchema
}

// ProtocolLibrary is the schema of one protocol's extra sections, selected
// once the validator classifies the device via the Device Classification
// section.
type ProtocolLibrary struct {
	Name     string
	Sections []SectionSchema
}

// Database is the read-only, process-wide schema: the common/meta sections
// every EDS document may use, plus the protocol-specific libraries
// selected after classification. It has no mutable state after
// construction.
type Database struct {
	Meta      []SectionSchema
	Protocols []ProtocolLibrary
}

// commonObjectClassKey is the section key every protocol-scoped class
// section falls back to for an entry its own schema doesn't recognize.
const commonObjectClassKey = "commonobjectclass"

// DefaultDatabase is the standard schema compiled into the package: a
// process-wide, read-only default, built once at init time and shared by
// every Parse call that doesn't supply eds.Options.Database.
var DefaultDatabase = newDefaultDatabase()

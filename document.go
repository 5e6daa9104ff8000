// Copyright 2024 The EDS Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package eds

import "fmt"

// Field is one value position within an Entry.
type Field struct {
	Index  int
	Name   string // display name; "fieldN" until the validator assigns a schema name
	Value  Value
	Alts   []TypeAlt // schema alternatives admitted at this position
	Line   int
	LeadingComment  string
	TrailingComment string
}

// Entry is one keyword within a Section, holding an ordered list of
// fields. Its "value" shorthand is the first field's value.
type Entry struct {
	Keyword string
	Name    string
	Line    int
	LeadingComment  string
	TrailingComment string

	fields []*Field
}

// Fields returns the entry's fields in order.
func (e *Entry) Fields() []*Field { return e.fields }

// Value returns the entry's first field's Value, the shorthand used
// for single-field entries.
func (e *Entry) Value() (Value, bool) {
	if len(e.fields) == 0 {
		return Value{}, false
	}
	return e.fields[0].Value, true
}

// Section is one bracketed section within a Document, holding an ordered
// map from entry keyword to Entry.
type Section struct {
	Keyword string
	Name    string
	ClassID int // -1 when the section has no CIP class id (meta sections)
	Line    int
	LeadingComment  string
	TrailingComment string

	entries    []*Entry
	entryIndex map[string]int
}

// Entries returns the section's entries in insertion order.
func (s *Section) Entries() []*Entry { return s.entries }

func (s *Section) findEntry(key string) (*Entry, bool) {
	if i, ok := s.entryIndex[normalizeKey(key)]; ok {
		return s.entries[i], true
	}
	return nil, false
}

// Document is the ordered, mutable in-memory model a parse produces
//. Mutating methods check keywords for duplicates and field text against
// the chosen variant or the field's recorded alternatives; they do not
// consult db's schema.
type Document struct {
	HeadingComment  string
	TrailingComment string

	// Protocol is the resolved protocol name ("EtherNetIP", "DeviceNet",
	// ...) once Validate has run; empty beforehand.
	Protocol string
	// Classification is the raw Device Classification.Class1 literal.
	Classification string

	Diagnostics []Diagnostic

	db             *Database
	maxDiagnostics int

	sections    []*Section
	sectionIndex map[string]int
}

// NewDocument constructs an empty Document bound to db. A nil db binds
// DefaultDatabase.
func NewDocument(db *Database) *Document {
	if db == nil {
		db = DefaultDatabase
	}
	return &Document{db: db, sectionIndex: map[string]int{}}
}

// Database returns the schema database this Document validates against.
func (d *Document) Database() *Database { return d.db }

// Sections returns the document's sections in insertion order.
func (d *Document) Sections() []*Section { return d.sections }

// HasSection reports whether a section with the given keyword exists.
func (d *Document) HasSection(key string) bool {
	_, ok := d.GetSection(key)
	return ok
}

// GetSection looks up a section by keyword.
func (d *Document) GetSection(key string) (*Section, bool) {
	if i, ok := d.sectionIndex[normalizeKey(key)]; ok {
		return d.sections[i], true
	}
	return nil, false
}

// GetSectionByClassID looks up a section by its resolved CIP class id;
// meta sections (ClassID == -1) never match.
func (d *Document) GetSectionByClassID(classID int) (*Section, bool) {
	if classID < 0 {
		return nil, false
	}
	for _, s := range d.sections {
		if s.ClassID == classID {
			return s, true
		}
	}
	return nil, false
}

// GetEntry looks up an entry by (section keyword, entry keyword).
func (d *Document) GetEntry(sectionKey, entryKey string) (*Entry, bool) {
	s, ok := d.GetSection(sectionKey)
	if !ok {
		return nil, false
	}
	return s.findEntry(entryKey)
}

// GetField looks up a field by (section keyword, entry keyword, index).
func (d *Document) GetField(sectionKey, entryKey string, index int) (*Field, bool) {
	e, ok := d.GetEntry(sectionKey, entryKey)
	if !ok || index < 0 || index >= len(e.fields) {
		return nil, false
	}
	return e.fields[index], true
}

// GetValue looks up a field's Value by (section keyword, entry keyword,
// index).
func (d *Document) GetValue(sectionKey, entryKey string, index int) (Value, bool) {
	f, ok := d.GetField(sectionKey, entryKey, index)
	if !ok {
		return Value{}, false
	}
	return f.Value, true
}

// AddSection appends a new, empty section with the given keyword. It
// fails with *DuplicateKey if the keyword is already present.
func (d *Document) AddSection(keyword string) (*Section, error) {
	norm := normalizeKey(keyword)
	if _, ok := d.sectionIndex[norm]; ok {
		return nil, &DuplicateKey{Kind: "section", Key: keyword}
	}
	s := &Section{Keyword: keyword, Name: keyword, ClassID: -1, entryIndex: map[string]int{}}
	d.sectionIndex[norm] = len(d.sections)
	d.sections = append(d.sections, s)
	return s, nil
}

// AddEntry appends a new, empty entry to the named section. It fails
// with *DuplicateKey if the entry keyword is already present in that
// section, and returns a plain error if the section does not exist.
func (d *Document) AddEntry(sectionKey, entryKey string) (*Entry, error) {
	s, ok := d.GetSection(sectionKey)
	if !ok {
		return nil, fmt.Errorf("eds: no such section %q", sectionKey)
	}
	norm := normalizeKey(entryKey)
	if _, ok := s.entryIndex[norm]; ok {
		return nil, &DuplicateKey{Kind: "entry", Key: entryKey}
	}
	e := &Entry{Keyword: entryKey, Name: entryKey}
	s.entryIndex[norm] = len(s.entries)
	s.entries = append(s.entries, e)
	return e, nil
}

// AddField appends a new field to the named entry with the given literal
// text. If variant is nil, the field is given the parser's cheap
// preliminary typing: EMPTY for an empty string,
// VENDOR_SPECIFIC when the text begins with a digit and validates as
// such, otherwise UNDEFINED. Final typing is the validator's job (§4.6).
func (d *Document) AddField(sectionKey, entryKey, text string, variant *Variant) (*Field, error) {
	e, ok := d.GetEntry(sectionKey, entryKey)
	if !ok {
		return nil, fmt.Errorf("eds: no such entry %q in section %q", entryKey, sectionKey)
	}
	var value Value
	if variant != nil {
		v, err := constructByVariant(*variant, text, TypeMeta{})
		if err != nil {
			return nil, err
		}
		value = v
	} else {
		value = preliminaryFieldValue(text)
	}
	f := &Field{Index: len(e.fields), Name: fmt.Sprintf("field%d", len(e.fields)), Value: value}
	e.fields = append(e.fields, f)
	return f, nil
}

// preliminaryFieldValue assigns the parser's cheap, schema-blind typing
// for a freshly parsed field literal.
func preliminaryFieldValue(text string) Value {
	if text == "" {
		return NewEmpty()
	}
	if v, err := NewVendorSpecific(text); err == nil {
		return v
	}
	return NewUndefined(text)
}

// RemoveSection deletes a section by keyword. Unless removeTree is set,
// it refuses with *NonEmpty when the section still holds entries.
func (d *Document) RemoveSection(key string, removeTree bool) error {
	norm := normalizeKey(key)
	i, ok := d.sectionIndex[norm]
	if !ok {
		return fmt.Errorf("eds: no such section %q", key)
	}
	if !removeTree && len(d.sections[i].entries) > 0 {
		return &NonEmpty{Kind: "section", Key: key}
	}
	d.sections = append(d.sections[:i], d.sections[i+1:]...)
	delete(d.sectionIndex, norm)
	for k, idx := range d.sectionIndex {
		if idx > i {
			d.sectionIndex[k] = idx - 1
		}
	}
	return nil
}

// RemoveEntry deletes an entry by (section keyword, entry keyword).
// Unless removeTree is set, it refuses with *NonEmpty when the entry
// still holds fields.
func (d *Document) RemoveEntry(sectionKey, entryKey string, removeTree bool) error {
	s, ok := d.GetSection(sectionKey)
	if !ok {
		return fmt.Errorf("eds: no such section %q", sectionKey)
	}
	norm := normalizeKey(entryKey)
	i, ok := s.entryIndex[norm]
	if !ok {
		return fmt.Errorf("eds: no such entry %q in section %q", entryKey, sectionKey)
	}
	if !removeTree && len(s.entries[i].fields) > 0 {
		return &NonEmpty{Kind: "entry", Key: entryKey}
	}
	s.entries = append(s.entries[:i], s.entries[i+1:]...)
	delete(s.entryIndex, norm)
	for k, idx := range s.entryIndex {
		if idx > i {
			s.entryIndex[k] = idx - 1
		}
	}
	return nil
}

// SetValue replaces a field's Value with one constructed from text. The
// replacement must validate against the field's recorded schema
// alternatives, falling back to the field's current variant if none were
// recorded yet (pre-validation documents); otherwise it fails with
// *TypeMismatch.
func (d *Document) SetValue(sectionKey, entryKey string, index int, text string) error {
	f, ok := d.GetField(sectionKey, entryKey, index)
	if !ok {
		if _, found := d.GetEntry(sectionKey, entryKey); found {
			return fmt.Errorf("eds: field [%d] of entry %q in section %q: %w", index, entryKey, sectionKey, ErrOutsideBoundary)
		}
		return fmt.Errorf("eds: no such field [%d] in entry %q of section %q", index, entryKey, sectionKey)
	}
	if len(f.Alts) == 0 {
		v, err := constructByVariant(f.Value.Variant(), text, TypeMeta{})
		if err != nil {
			return &TypeMismatch{Section: sectionKey, Entry: entryKey, Index: index, Text: text, Admits: []Variant{f.Value.Variant()}}
		}
		f.Value = v
		return nil
	}
	admits := make([]Variant, 0, len(f.Alts))
	for _, alt := range f.Alts {
		admits = append(admits, alt.Variant)
		if v, err := constructByVariant(alt.Variant, text, alt.Meta); err == nil {
			f.Value = v.withAlts(f.Alts)
			return nil
		}
	}
	return &TypeMismatch{Section: sectionKey, Entry: entryKey, Index: index, Text: text, Admits: admits}
}

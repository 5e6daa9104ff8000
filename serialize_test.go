// Copyright 2024 The EDS Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package eds

import (
	"os"
	"strings"
	"testing"
)

// TestSerializeRoundTrip exercises scenario S5/property P2: re-parsing a
// serialized Document must reproduce the same section/entry/field shape.
func TestSerializeRoundTrip(t *testing.T) {
	data, err := os.ReadFile(testdataPath("s5_roundtrip.eds"))
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	doc, err := Parse(data, nil)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	out, err := doc.Serialize()
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}

	reparsed, err := Parse(out, nil)
	if err != nil {
		t.Fatalf("Parse(Serialize()) failed: %v\n--- serialized ---\n%s", err, out)
	}

	if len(reparsed.Sections()) != len(doc.Sections()) {
		t.Fatalf("section count = %d, want %d", len(reparsed.Sections()), len(doc.Sections()))
	}
	for _, s := range doc.Sections() {
		rs, ok := reparsed.GetSection(s.Keyword)
		if !ok {
			t.Fatalf("round-tripped document is missing section %q", s.Keyword)
		}
		if len(rs.Entries()) != len(s.Entries()) {
			t.Errorf("section %q: entry count = %d, want %d", s.Keyword, len(rs.Entries()), len(s.Entries()))
		}
		for _, e := range s.Entries() {
			re, ok := rs.findEntry(e.Keyword)
			if !ok {
				t.Fatalf("round-tripped section %q is missing entry %q", s.Keyword, e.Keyword)
			}
			if len(re.fields) != len(e.fields) {
				t.Errorf("%s.%s: field count = %d, want %d", s.Keyword, e.Keyword, len(re.fields), len(e.fields))
				continue
			}
			for i := range e.fields {
				if re.fields[i].Value.Text() != e.fields[i].Value.Text() {
					t.Errorf("%s.%s[%d] = %q, want %q", s.Keyword, e.Keyword, i,
						re.fields[i].Value.Text(), e.fields[i].Value.Text())
				}
			}
		}
	}

	for _, d := range reparsed.Diagnostics {
		if d.Severity == SeverityError {
			t.Errorf("round-tripped document has ERROR diagnostic: %v", d)
		}
	}
}

func TestSerializeSingleFieldShorthand(t *testing.T) {
	doc := NewDocument(nil)
	_, _ = doc.AddSection("File")
	_, _ = doc.AddEntry("File", "DescText")
	stringVariant := VString
	_, _ = doc.AddField("File", "DescText", "demo", &stringVariant)

	out, err := doc.Serialize()
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	text := string(out)
	if !strings.Contains(text, `DescText = "demo";`) {
		t.Errorf("Serialize() = %q, want single-line shorthand for one-field entry", text)
	}
}

func TestSerializeMultiFieldEntry(t *testing.T) {
	doc := NewDocument(nil)
	_, _ = doc.AddSection("Params")
	_, _ = doc.AddEntry("Params", "Param1")
	uintVariant := VUint
	_, _ = doc.AddField("Params", "Param1", "0", &uintVariant)
	_, _ = doc.AddField("Params", "Param1", "100", &uintVariant)

	out, err := doc.Serialize()
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	text := string(out)
	if !strings.Contains(text, "Param1 = \n") {
		t.Errorf("Serialize() multi-field entry = %q, want a multi-line layout", text)
	}
	if !strings.Contains(text, "0,\n") || !strings.Contains(text, "100;") {
		t.Errorf("Serialize() multi-field entry = %q, want comma/semicolon terminated fields", text)
	}
}

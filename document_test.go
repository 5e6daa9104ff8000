// Copyright 2024 The EDS Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package eds

import "testing"

func newTestDocument(t *testing.T) *Document {
	t.Helper()
	doc := NewDocument(nil)
	if _, err := doc.AddSection("File"); err != nil {
		t.Fatalf("AddSection: %v", err)
	}
	if _, err := doc.AddEntry("File", "DescText"); err != nil {
		t.Fatalf("AddEntry: %v", err)
	}
	if _, err := doc.AddField("File", "DescText", "demo", nil); err != nil {
		t.Fatalf("AddField: %v", err)
	}
	return doc
}

func TestDocumentAddSectionDuplicate(t *testing.T) {
	doc := newTestDocument(t)
	_, err := doc.AddSection("File")
	if err == nil {
		t.Fatalf("AddSection(File) second time: want error, got nil")
	}
	if _, ok := err.(*DuplicateKey); !ok {
		t.Errorf("error type = %T, want *DuplicateKey", err)
	}
}

func TestDocumentAddEntryUnknownSection(t *testing.T) {
	doc := newTestDocument(t)
	if _, err := doc.AddEntry("Nonexistent", "Foo"); err == nil {
		t.Fatalf("AddEntry(Nonexistent, Foo): want error, got nil")
	}
}

func TestDocumentGetValue(t *testing.T) {
	doc := newTestDocument(t)
	v, ok := doc.GetValue("File", "DescText", 0)
	if !ok {
		t.Fatalf("GetValue: not found")
	}
	if v.Text() != "demo" {
		t.Errorf("Text() = %q, want %q", v.Text(), "demo")
	}
	if _, ok := doc.GetValue("File", "DescText", 5); ok {
		t.Errorf("GetValue(out of range index): want not found, got found")
	}
}

func TestDocumentRemoveSectionRefusesNonEmpty(t *testing.T) {
	doc := newTestDocument(t)
	err := doc.RemoveSection("File", false)
	if _, ok := err.(*NonEmpty); !ok {
		t.Fatalf("RemoveSection(non-empty, no tree): error = %v, want *NonEmpty", err)
	}
	if err := doc.RemoveSection("File", true); err != nil {
		t.Fatalf("RemoveSection(removeTree=true): %v", err)
	}
	if doc.HasSection("File") {
		t.Errorf("HasSection(File) after tree removal: want false")
	}
}

func TestDocumentSetValueRejectsWrongType(t *testing.T) {
	doc := newTestDocument(t)
	f, _ := doc.GetField("File", "DescText", 0)
	f.Alts = []TypeAlt{{Variant: VUint}}
	if err := doc.SetValue("File", "DescText", 0, "not-a-number"); err == nil {
		t.Fatalf("SetValue: want error for non-numeric text against UINT alt, got nil")
	}
	if err := doc.SetValue("File", "DescText", 0, "42"); err != nil {
		t.Fatalf("SetValue(42): %v", err)
	}
	v, _ := doc.GetValue("File", "DescText", 0)
	if v.Variant() != VUint || v.Uint() != 42 {
		t.Errorf("value after SetValue = %v/%d, want UINT/42", v.Variant(), v.Uint())
	}
}

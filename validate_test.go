// Copyright 2024 The EDS Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package eds

import (
	"os"
	"path"
	"path/filepath"
	"runtime"
	"testing"
)

func testdataPath(name string) string {
	_, p, _, _ := runtime.Caller(0)
	return path.Join(filepath.Dir(p), "testdata", name)
}

func mustParseTestdata(t *testing.T, name string) *Document {
	t.Helper()
	data, err := os.ReadFile(testdataPath(name))
	if err != nil {
		t.Fatalf("ReadFile(%s): %v", name, err)
	}
	doc, err := Parse(data, nil)
	if err != nil {
		t.Fatalf("Parse(%s): %v", name, err)
	}
	return doc
}

func diagnosticsWithKind(diags []Diagnostic, kind string) []Diagnostic {
	var out []Diagnostic
	for _, d := range diags {
		if d.Kind == kind {
			out = append(out, d)
		}
	}
	return out
}

// TestValidateMinimalDocument exercises scenario S1: a clean, minimal
// document should classify its protocol and carry no ERROR diagnostics.
func TestValidateMinimalDocument(t *testing.T) {
	doc := mustParseTestdata(t, "s1_minimal.eds")
	if doc.Protocol != "EtherNetIP" {
		t.Errorf("Protocol = %q, want EtherNetIP", doc.Protocol)
	}
	for _, d := range doc.Diagnostics {
		if d.Severity == SeverityError {
			t.Errorf("unexpected ERROR diagnostic: %v", d)
		}
	}
}

// TestValidateEnumeratedAssemblyWrap exercises scenario S2: an Assembly
// entry's Member group wraps through two ParamN references, both of
// which must resolve and carry the REF variant.
func TestValidateEnumeratedAssemblyWrap(t *testing.T) {
	doc := mustParseTestdata(t, "s2_enumerated.eds")
	e, ok := doc.GetEntry("Assembly", "Assem1")
	if !ok {
		t.Fatalf("GetEntry(Assembly.Assem1): not found")
	}
	fields := e.Fields()
	if fields[7].Value.Variant() != VRef || fields[7].Value.Text() != "Param1" {
		t.Errorf("field 7 = %v %q, want REF Param1", fields[7].Value.Variant(), fields[7].Value.Text())
	}
	if fields[9].Value.Variant() != VRef || fields[9].Value.Text() != "Param2" {
		t.Errorf("field 9 = %v %q, want REF Param2", fields[9].Value.Variant(), fields[9].Value.Text())
	}
	if diags := diagnosticsWithKind(doc.Diagnostics, "reference-missing"); len(diags) != 0 {
		t.Errorf("reference-missing diagnostics = %v, want none", diags)
	}
}

// TestValidateTypedEnumeration exercises scenario S3: Enum3's value
// fields must inherit Param3's declared CIP data type (UINT here, 0xC7
// in the Data Type field) rather than the schema's fixed USINT.
func TestValidateTypedEnumeration(t *testing.T) {
	doc := mustParseTestdata(t, "s3_typed_enum.eds")
	e, ok := doc.GetEntry("Params", "Enum3")
	if !ok {
		t.Fatalf("GetEntry(Params.Enum3): not found")
	}
	first := e.Fields()[0]
	if first.Value.Variant() != VUint {
		t.Errorf("Enum3 First Enum variant = %v, want UINT (inherited from Param3's Data Type)", first.Value.Variant())
	}
	if first.Value.Uint() != 1 {
		t.Errorf("Enum3 First Enum = %d, want 1", first.Value.Uint())
	}
}

// TestValidateTypeRefResolution exercises TYPEREF resolution: Param1's
// Default Value field must resolve to the concrete scalar variant
// (UINT) its Data Type field names, not the TYPEREF placeholder.
func TestValidateTypeRefResolution(t *testing.T) {
	doc := mustParseTestdata(t, "s4_epath.eds")
	v, ok := doc.GetValue("Params", "Param1", 11)
	if !ok {
		t.Fatalf("GetValue(Params.Param1[11]): not found")
	}
	if v.Variant() != VUint {
		t.Errorf("Default Value variant = %v, want UINT", v.Variant())
	}
	if v.Uint() != 4 {
		t.Errorf("Default Value = %d, want 4", v.Uint())
	}
}

// TestValidateBadDateRecordsDiagnostic exercises scenario S6: an
// impossible calendar day is recorded as a type-mismatch diagnostic, not
// a fatal parse error.
func TestValidateBadDateRecordsDiagnostic(t *testing.T) {
	doc := mustParseTestdata(t, "s6_bad_date.eds")
	diags := diagnosticsWithKind(doc.Diagnostics, "type-mismatch")
	found := false
	for _, d := range diags {
		if d.Section == "File" && d.Entry == "CreateDate" {
			found = true
		}
	}
	if !found {
		t.Errorf("no type-mismatch diagnostic for File.CreateDate, got %v", doc.Diagnostics)
	}
}

func TestValidateIsIdempotent(t *testing.T) {
	doc := mustParseTestdata(t, "s1_minimal.eds")
	first := doc.Validate()
	second := doc.Validate()
	if len(first) != len(second) {
		t.Errorf("Validate() produced %d diagnostics first run, %d second run", len(first), len(second))
	}
}

func TestResolveEPath(t *testing.T) {
	doc := mustParseTestdata(t, "s4_epath.eds")
	got, err := doc.ResolveEPath("20 04 [Param1] 30 03")
	if err != nil {
		t.Fatalf("ResolveEPath: %v", err)
	}
	if want := "20 04 04 30 03"; got != want {
		t.Errorf("ResolveEPath = %q, want %q", got, want)
	}
}

func TestResolveEPathUnknownReference(t *testing.T) {
	doc := mustParseTestdata(t, "s4_epath.eds")
	if _, err := doc.ResolveEPath("20 04 [Param9]"); err == nil {
		t.Errorf("ResolveEPath(unknown ref): want error, got nil")
	}
}

// Copyright 2024 The EDS Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package eds

import "testing"

func TestParseMinimalDocument(t *testing.T) {
	src := []byte(`$ header remark
[File]
    DescText = "demo";
    CreateDate = 11-03-2020;
    CreateTime = 12:00:00;
    Revision = 1.1;

[Device]
    VendCode = 1;
    VendName = "v";
    ProdType = 12;
    ProdTypeStr = "x";
    ProdCode = 1;
    MajRev = 1;
    MinRev = 0;
    ProdName = "p";
    Icon = "p.ico";

[Device Classification]
    Class1 = EtherNetIP;
`)
	doc, err := Parse(src, nil)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(doc.Sections()) != 3 {
		t.Fatalf("got %d sections, want 3", len(doc.Sections()))
	}
	fileSection, _ := doc.GetSection("File")
	if fileSection.LeadingComment != " header remark" {
		t.Errorf("File section LeadingComment = %q, want %q", fileSection.LeadingComment, " header remark")
	}
	desc, ok := doc.GetValue("File", "DescText", 0)
	if !ok {
		t.Fatalf("GetValue(File.DescText[0]): not found")
	}
	if desc.Text() != "demo" {
		t.Errorf("DescText = %q, want %q", desc.Text(), "demo")
	}
	if doc.Protocol != "EtherNetIP" {
		t.Errorf("Protocol = %q, want EtherNetIP", doc.Protocol)
	}
}

func TestParseMultiFieldEntry(t *testing.T) {
	src := []byte(`[Params]
    Param1 = 0, , , 0x0071, 0xC7, 2, "Speed", "rpm", "Motor speed", 0, 65535, 100;
`)
	doc, err := Parse(src, &Options{SkipValidate: true})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	e, ok := doc.GetEntry("Params", "Param1")
	if !ok {
		t.Fatalf("GetEntry(Params.Param1): not found")
	}
	if len(e.Fields()) != 12 {
		t.Fatalf("got %d fields, want 12", len(e.Fields()))
	}
	if e.Fields()[6].Value.Text() != "Speed" {
		t.Errorf("field 6 = %q, want %q", e.Fields()[6].Value.Text(), "Speed")
	}
	if e.Fields()[1].Value.Text() != "" {
		t.Errorf("field 1 (empty) = %q, want empty", e.Fields()[1].Value.Text())
	}
}

func TestParseTrailingCommentAttachesToField(t *testing.T) {
	src := []byte(`[File]
    DescText = "demo"; $ a note
`)
	doc, err := Parse(src, &Options{SkipValidate: true})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	e, _ := doc.GetEntry("File", "DescText")
	if got := e.Fields()[0].TrailingComment; got != " a note" {
		t.Errorf("field TrailingComment = %q, want %q", got, " a note")
	}
}

func TestParseUnterminatedSectionErrors(t *testing.T) {
	_, err := Parse([]byte("[File\n"), nil)
	if err == nil {
		t.Fatalf("Parse: want error, got nil")
	}
}

func TestParseRejectsMalformedEntry(t *testing.T) {
	_, err := Parse([]byte("[File]\n    = \"demo\";\n"), nil)
	if err == nil {
		t.Fatalf("Parse: want error for entry missing keyword, got nil")
	}
}

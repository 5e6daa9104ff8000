// Copyright 2024 The EDS Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package eds

import (
	"os"
	"testing"
)

func TestParseSkipValidateLeavesPreliminaryTyping(t *testing.T) {
	doc := mustParseOptsTestdata(t, "s1_minimal.eds", &Options{SkipValidate: true})
	if len(doc.Diagnostics) != 0 {
		t.Errorf("Diagnostics with SkipValidate = %v, want none", doc.Diagnostics)
	}
	if doc.Protocol != "" {
		t.Errorf("Protocol with SkipValidate = %q, want empty", doc.Protocol)
	}
}

func TestParseMaxDiagnosticsCaps(t *testing.T) {
	doc := mustParseOptsTestdata(t, "s6_bad_date.eds", &Options{MaxDiagnostics: 0})
	withoutCap := len(doc.Diagnostics)
	if withoutCap == 0 {
		t.Fatalf("expected at least one diagnostic from s6_bad_date.eds")
	}

	capped := mustParseOptsTestdata(t, "s6_bad_date.eds", &Options{MaxDiagnostics: 1})
	if len(capped.Diagnostics) != 1 {
		t.Errorf("Diagnostics with MaxDiagnostics=1 = %d, want 1", len(capped.Diagnostics))
	}
}

func mustParseOptsTestdata(t *testing.T, name string, opts *Options) *Document {
	t.Helper()
	data, err := os.ReadFile(testdataPath(name))
	if err != nil {
		t.Fatalf("ReadFile(%s): %v", name, err)
	}
	doc, err := Parse(data, opts)
	if err != nil {
		t.Fatalf("Parse(%s): %v", name, err)
	}
	return doc
}

func TestFuzzAcceptsValidDocument(t *testing.T) {
	data, err := os.ReadFile(testdataPath("s1_minimal.eds"))
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if got := Fuzz(data); got != 1 {
		t.Errorf("Fuzz(valid document) = %d, want 1", got)
	}
}

func TestFuzzRejectsGarbage(t *testing.T) {
	if got := Fuzz([]byte("not an eds document {{{")); got != 0 {
		t.Errorf("Fuzz(garbage) = %d, want 0", got)
	}
}

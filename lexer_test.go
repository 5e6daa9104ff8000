// Copyright 2024 The EDS Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package eds

import "testing"

func scanAll(t *testing.T, src string) []Token {
	t.Helper()
	lx := NewLexer([]byte(src))
	var toks []Token
	for {
		tok, err := lx.Next()
		if err != nil {
			t.Fatalf("Next() error on %q: %v", src, err)
		}
		toks = append(toks, tok)
		if tok.Kind == TokEOF {
			break
		}
	}
	return toks
}

func TestLexerBasicTokens(t *testing.T) {
	toks := scanAll(t, `[File]
    DescText = "demo";
`)
	wantKinds := []TokenKind{TokSection, TokIdentifier, TokOperator, TokString, TokSeparator, TokEOF}
	if len(toks) != len(wantKinds) {
		t.Fatalf("got %d tokens, want %d: %+v", len(toks), len(wantKinds), toks)
	}
	for i, k := range wantKinds {
		if toks[i].Kind != k {
			t.Errorf("token %d kind = %v, want %v", i, toks[i].Kind, k)
		}
	}
	if toks[0].Value != "File" {
		t.Errorf("section token value = %q, want %q", toks[0].Value, "File")
	}
	if toks[3].Value != "demo" {
		t.Errorf("string token value = %q, want %q", toks[3].Value, "demo")
	}
}

func TestLexerNumberBecomesDateOrTime(t *testing.T) {
	// A DATE/TIME literal only resolves to its composite kind once the
	// scanner sees what follows it; a trailing separator (as every real
	// field literal has) is what triggers the return.
	toks := scanAll(t, "11-03-2020;")
	if toks[0].Kind != TokDate {
		t.Errorf("kind = %v, want TokDate", toks[0].Kind)
	}
	if toks[0].Value != "11-03-2020" {
		t.Errorf("value = %q", toks[0].Value)
	}

	toks = scanAll(t, "12:00:00;")
	if toks[0].Kind != TokTime {
		t.Errorf("kind = %v, want TokTime", toks[0].Kind)
	}
	if toks[0].Value != "12:00:00" {
		t.Errorf("value = %q", toks[0].Value)
	}
}

func TestLexerComment(t *testing.T) {
	toks := scanAll(t, "$ a remark\n[File]")
	if toks[0].Kind != TokComment {
		t.Fatalf("kind = %v, want TokComment", toks[0].Kind)
	}
	if toks[0].Value != " a remark" {
		t.Errorf("comment value = %q", toks[0].Value)
	}
}

func TestLexerUnterminatedStringErrors(t *testing.T) {
	lx := NewLexer([]byte(`"unterminated`))
	_, err := lx.Next()
	if err == nil {
		t.Fatalf("Next(): want error, got nil")
	}
	var lerr *LexError
	if _, ok := err.(*LexError); !ok {
		t.Errorf("error type = %T, want *LexError (%v)", err, lerr)
	}
}

func TestLexerEmptyInput(t *testing.T) {
	lx := NewLexer(nil)
	_, err := lx.Next()
	if err != ErrEmptyInput {
		t.Errorf("Next() error = %v, want ErrEmptyInput", err)
	}
}

// Copyright 2024 The EDS Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package eds

import "strings"

// parser builds a Document from a Lexer's token stream. It
// performs no semantic interpretation: fields are stored with the
// parser's cheap preliminary typing and get their schema-correct
// variant only once Validate runs.
type parser struct {
	lx  *Lexer
	doc *Document

	pending    *Token
	pendingErr error

	curSection string
	curEntry   string

	leadingBuf []string
	lastLine   int
	trailing   func(string)
}

func newParser(lx *Lexer, doc *Document) *parser {
	return &parser{lx: lx, doc: doc}
}

func (p *parser) next() (Token, error) {
	if p.pending != nil {
		t, err := *p.pending, p.pendingErr
		p.pending, p.pendingErr = nil, nil
		return t, err
	}
	return p.lx.Next()
}

// parseDocument runs the ExpectSection / ExpectEntry / ExpectField /
// ExpectSectionOrEntry state machine to
// completion, mutating p.doc as it goes.
func (p *parser) parseDocument() error {
	for {
		tok, err := p.next()
		if err != nil {
			return err
		}
		switch tok.Kind {
		case TokComment:
			p.observeComment(tok)
		case TokSection:
			if err := p.openSection(tok); err != nil {
				return err
			}
			if err := p.parseEntries(); err != nil {
				return err
			}
		case TokEOF:
			p.attachEOFComment()
			return nil
		default:
			return &ParseError{Line: tok.Line, Column: tok.Column, State: "ExpectSection",
				Message: "expected a section or a comment, got " + tok.Kind.String()}
		}
	}
}

// parseEntries implements ExpectEntry/ExpectSectionOrEntry: it consumes
// entries belonging to the most recently opened section until the next
// SECTION token or EOF, at which point control returns to the caller.
func (p *parser) parseEntries() error {
	for {
		tok, err := p.next()
		if err != nil {
			return err
		}
		switch tok.Kind {
		case TokComment:
			p.observeComment(tok)
		case TokIdentifier:
			if err := p.openEntry(tok); err != nil {
				return err
			}
			op, err := p.next()
			if err != nil {
				return err
			}
			if op.Kind != TokOperator {
				return &ParseError{Line: op.Line, Column: op.Column, State: "ExpectEntry",
					Message: "expected '=' after entry keyword, got " + op.Kind.String()}
			}
			if err := p.parseFields(); err != nil {
				return err
			}
		case TokSection:
			// An empty section (zero entries) followed directly by another
			// section: hand control back to parseDocument to open it.
			p.pending, p.pendingErr = &tok, nil
			return nil
		case TokEOF:
			p.pending, p.pendingErr = &tok, nil
			return nil
		default:
			return &ParseError{Line: tok.Line, Column: tok.Column, State: "ExpectEntry",
				Message: "expected an entry keyword, a section, a comment or EOF, got " + tok.Kind.String()}
		}
	}
}

// parseFields implements ExpectField: the comma/semicolon-separated
// field list following an entry's '='.
func (p *parser) parseFields() error {
	for {
		tok, err := p.next()
		if err != nil {
			return err
		}
		switch {
		case tok.Kind == TokComment:
			p.observeComment(tok)
			continue
		case tok.Kind == TokSeparator && (tok.Value == "," || tok.Value == ";"):
			if err := p.addField("", tok.Line); err != nil {
				return err
			}
			if tok.Value == ";" {
				return nil
			}
			continue
		default:
			text, line, err := p.readFieldValue(tok)
			if err != nil {
				return err
			}
			if err := p.addField(text, line); err != nil {
				return err
			}
			sep, err := p.expectSeparator()
			if err != nil {
				return err
			}
			if sep == ";" {
				return nil
			}
		}
	}
}

// readFieldValue assembles one field's literal text starting from the
// already-consumed first token: STRING tokens concatenate greedily
//, every other kind stands alone.
func (p *parser) readFieldValue(first Token) (string, int, error) {
	switch first.Kind {
	case TokString:
		text := first.Value
		for {
			tok, err := p.next()
			if err != nil {
				return "", 0, err
			}
			if tok.Kind == TokString {
				text += tok.Value
				continue
			}
			if tok.Kind == TokComment {
				p.observeComment(tok)
				continue
			}
			p.pending, p.pendingErr = &tok, nil
			return text, first.Line, nil
		}
	case TokNumber, TokIdentifier, TokDate, TokTime, TokDataset:
		return first.Value, first.Line, nil
	default:
		return "", 0, &ParseError{Line: first.Line, Column: first.Column, State: "ExpectField",
			Message: "unexpected token " + first.Kind.String() + " where a field value was expected"}
	}
}

// expectSeparator consumes comments and returns the ',' or ';' that must
// terminate a field, per the grammar's entry rule.
func (p *parser) expectSeparator() (string, error) {
	for {
		tok, err := p.next()
		if err != nil {
			return "", err
		}
		if tok.Kind == TokComment {
			p.observeComment(tok)
			continue
		}
		if tok.Kind == TokSeparator && (tok.Value == "," || tok.Value == ";") {
			return tok.Value, nil
		}
		return "", &ParseError{Line: tok.Line, Column: tok.Column, State: "ExpectField",
			Message: "expected ',' or ';' after field value, got " + tok.Kind.String()}
	}
}

func (p *parser) openSection(tok Token) error {
	s, err := p.doc.AddSection(tok.Value)
	if err != nil {
		return err
	}
	s.Line = tok.Line
	s.LeadingComment = p.takeLeading()
	p.curSection = tok.Value
	p.curEntry = ""
	p.lastLine = tok.Line
	p.trailing = func(c string) { s.TrailingComment = c }
	return nil
}

func (p *parser) openEntry(tok Token) error {
	e, err := p.doc.AddEntry(p.curSection, tok.Value)
	if err != nil {
		return err
	}
	e.Line = tok.Line
	e.LeadingComment = p.takeLeading()
	p.curEntry = tok.Value
	p.lastLine = tok.Line
	p.trailing = func(c string) { e.TrailingComment = c }
	return nil
}

func (p *parser) addField(text string, line int) error {
	f, err := p.doc.AddField(p.curSection, p.curEntry, text, nil)
	if err != nil {
		return err
	}
	f.Line = line
	f.LeadingComment = p.takeLeading()
	p.lastLine = line
	p.trailing = func(c string) { f.TrailingComment = c }
	return nil
}

// observeComment assigns a COMMENT token to the most recently created
// element's trailing comment when it shares that element's source line,
// otherwise buffers it as the leading comment of whatever gets created
// next.
func (p *parser) observeComment(tok Token) {
	if tok.Line == p.lastLine && p.trailing != nil {
		p.trailing(tok.Value)
		return
	}
	p.leadingBuf = append(p.leadingBuf, tok.Value)
}

func (p *parser) takeLeading() string {
	if len(p.leadingBuf) == 0 {
		return ""
	}
	s := strings.Join(p.leadingBuf, "\n")
	p.leadingBuf = nil
	return s
}

func (p *parser) attachEOFComment() {
	remaining := p.takeLeading()
	if remaining == "" {
		return
	}
	if len(p.doc.sections) == 0 {
		p.doc.HeadingComment = remaining
		return
	}
	p.doc.TrailingComment = remaining
}

// Parse scans and parses data into a Document. Lexing and parsing
// failures (*LexError, *ParseError) are fatal and returned directly; a
// successfully parsed Document still carries its fields with the
// parser's preliminary typing until Validate is run, which Parse does
// automatically unless opts.SkipValidate is set.
func Parse(data []byte, opts *Options) (*Document, error) {
	db := DefaultDatabase
	skipValidate := false
	maxDiagnostics := 0
	if opts != nil {
		if opts.Database != nil {
			db = opts.Database
		}
		skipValidate = opts.SkipValidate
		maxDiagnostics = opts.MaxDiagnostics
	}

	doc := NewDocument(db)
	doc.maxDiagnostics = maxDiagnostics
	lx := NewLexer(data)
	p := newParser(lx, doc)
	if err := p.parseDocument(); err != nil {
		return nil, err
	}
	if !skipValidate {
		doc.Validate()
	}
	return doc, nil
}

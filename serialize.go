// Copyright 2024 The EDS Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package eds

import (
	"strings"
)

const (
	serializeEntryIndent = "    "
	serializeFieldIndent = "        "
)

// Serialize renders the Document back to EDS text. Sections
// are written File, Device, Device Classification first, then every
// other section in the order it was first added — insertion order, not
// CIP class id order, is what makes parse(Serialize(x)) reproduce x.
func (d *Document) Serialize() ([]byte, error) {
	var b strings.Builder
	writeCommentBlock(&b, d.HeadingComment, "")
	for _, s := range d.orderedSections() {
		writeSection(&b, s)
	}
	writeCommentBlock(&b, d.TrailingComment, "")
	return []byte(b.String()), nil
}

// orderedSections returns the document's sections in serialization
// order: File, Device, Device Classification (if present), then the
// remainder in the order they were added.
func (d *Document) orderedSections() []*Section {
	priority := []string{"File", "Device", "Device Classification"}
	out := make([]*Section, 0, len(d.sections))
	used := map[*Section]bool{}
	for _, key := range priority {
		if s, ok := d.GetSection(key); ok {
			out = append(out, s)
			used[s] = true
		}
	}
	for _, s := range d.sections {
		if !used[s] {
			out = append(out, s)
		}
	}
	return out
}

func writeCommentBlock(b *strings.Builder, comment, indent string) {
	if comment == "" {
		return
	}
	for _, line := range strings.Split(comment, "\n") {
		b.WriteString(indent)
		b.WriteString("$ ")
		b.WriteString(line)
		b.WriteByte('\n')
	}
}

func writeSection(b *strings.Builder, s *Section) {
	writeCommentBlock(b, s.LeadingComment, "")
	b.WriteString("[")
	b.WriteString(s.Keyword)
	b.WriteString("]")
	if s.TrailingComment != "" {
		b.WriteString(" $ ")
		b.WriteString(s.TrailingComment)
	}
	b.WriteByte('\n')
	for _, e := range s.entries {
		writeEntry(b, e)
	}
}

func writeEntry(b *strings.Builder, e *Entry) {
	writeCommentBlock(b, e.LeadingComment, "")
	b.WriteString(serializeEntryIndent)
	b.WriteString(e.Keyword)
	b.WriteString(" = ")

	if len(e.fields) == 1 && !strings.Contains(e.fields[0].Value.Text(), "\n") {
		f := e.fields[0]
		b.WriteString(formatFieldLiteral(f.Value))
		b.WriteString(";")
		if f.TrailingComment != "" {
			b.WriteString(" $ ")
			b.WriteString(f.TrailingComment)
		}
		b.WriteByte('\n')
		return
	}

	if e.TrailingComment != "" {
		b.WriteString("$ ")
		b.WriteString(e.TrailingComment)
	}
	b.WriteByte('\n')
	for i, f := range e.fields {
		b.WriteString(serializeFieldIndent)
		b.WriteString(formatFieldLiteral(f.Value))
		if i < len(e.fields)-1 {
			b.WriteString(",")
		} else {
			b.WriteString(";")
		}
		if f.TrailingComment != "" {
			b.WriteString(" $ ")
			b.WriteString(f.TrailingComment)
		}
		b.WriteByte('\n')
	}
}

// isQuotedVariant reports whether the grammar requires v to be written as
// a STRING literal.
func isQuotedVariant(v Variant) bool {
	switch v {
	case VString, VStringI, VString2, VShortString, VEPath:
		return true
	default:
		return false
	}
}

// formatFieldLiteral renders a Value as the literal text occupying a
// single field position, quoting it when its variant requires a STRING
// token and splitting embedded newlines across continuation lines the way
// consecutive STRING tokens concatenate.
func formatFieldLiteral(v Value) string {
	if v.IsEmpty() {
		return ""
	}
	text := v.Format()
	if !isQuotedVariant(v.Variant()) {
		return text
	}
	lines := strings.Split(text, "\n")
	quoted := make([]string, len(lines))
	for i, line := range lines {
		// The lexer keeps a STRING literal's escape sequences verbatim (an
		// embedded quote is stored as \"), so the stored text is written
		// back between quotes unchanged.
		quoted[i] = `"` + line + `"`
	}
	return strings.Join(quoted, "\n"+serializeFieldIndent)
}

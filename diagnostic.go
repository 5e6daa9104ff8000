// Copyright 2024 The EDS Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package eds

import "fmt"

// Severity classifies a Diagnostic's importance.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "ERROR"
	case SeverityWarning:
		return "WARNING"
	default:
		return "INFO"
	}
}

// Diagnostic is a non-fatal finding recorded on a Document by Validate
//. Section/Entry/FieldIndex are set when the finding
// refers to a specific position; FieldIndex is -1 otherwise.
type Diagnostic struct {
	Severity  Severity
	Kind      string
	Section   string
	Entry     string
	FieldIndex int
	Line      int
	Message   string
}

func (d Diagnostic) String() string {
	ref := ""
	switch {
	case d.Section != "" && d.Entry != "" && d.FieldIndex >= 0:
		ref = fmt.Sprintf(" [%s].%s[%d]", d.Section, d.Entry, d.FieldIndex)
	case d.Section != "" && d.Entry != "":
		ref = fmt.Sprintf(" [%s].%s", d.Section, d.Entry)
	case d.Section != "":
		ref = fmt.Sprintf(" [%s]", d.Section)
	}
	return fmt.Sprintf("%s: %s%s: %s (line %d)", d.Severity, d.Kind, ref, d.Message, d.Line)
}

func (d *Document) addDiagnostic(sev Severity, kind, section, entry string, fieldIndex, line int, format string, args ...any) {
	if d.maxDiagnostics > 0 && len(d.Diagnostics) >= d.maxDiagnostics {
		return
	}
	d.Diagnostics = append(d.Diagnostics, Diagnostic{
		Severity:   sev,
		Kind:       kind,
		Section:    section,
		Entry:      entry,
		FieldIndex: fieldIndex,
		Line:       line,
		Message:    fmt.Sprintf(format, args...),
	})
}

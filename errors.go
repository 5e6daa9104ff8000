// Copyright 2024 The EDS Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package eds

import (
	"errors"
	"fmt"
)

// Errors returned while loading or scanning a document. These are fatal:
// they halt the operation that raised them instead of being recorded as a
// Diagnostic on the Document.
var (
	// ErrEmptyInput is returned when the source buffer has zero length.
	ErrEmptyInput = errors.New("eds: empty input")

	// ErrOutsideBoundary is returned when a mutating API is asked to act on
	// an index beyond the bounds of its owner.
	ErrOutsideBoundary = errors.New("eds: index outside boundary")
)

// Variant identifies one of the roughly thirty CIP scalar/composite value
// kinds a Field can hold.
type Variant int

// InvalidValue is returned by Value constructors when the candidate text
// does not satisfy the variant's grammar or range.
type InvalidValue struct {
	Variant Variant
	Text    string
	Reason  string
}

func (e *InvalidValue) Error() string {
	return fmt.Sprintf("eds: invalid value %q for %s: %s", e.Text, e.Variant, e.Reason)
}

// LexError reports a malformed token during scanning. Position is the
// 1-based line/column of the offending character.
type LexError struct {
	Kind     string
	Line     int
	Column   int
	Offset   int
	Message  string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("eds: lex error at line %d, col %d: %s (%s)", e.Line, e.Column, e.Message, e.Kind)
}

// ParseError reports an unexpected token in the parser's state machine.
type ParseError struct {
	Line    int
	Column  int
	State   string
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("eds: parse error at line %d, col %d in state %s: %s", e.Line, e.Column, e.State, e.Message)
}

// TypeMismatch is returned by Document.SetValue when the replacement text
// validates against none of the field's recorded alternatives.
type TypeMismatch struct {
	Section string
	Entry   string
	Index   int
	Text    string
	Admits  []Variant
}

func (e *TypeMismatch) Error() string {
	return fmt.Sprintf("eds: %q does not admit value %q at [%s].%s[%d]",
		e.Admits, e.Text, e.Section, e.Entry, e.Index)
}

// DuplicateKey is returned by the add-* family of mutators when the
// requested keyword already exists within its owner.
type DuplicateKey struct {
	Kind string // "section", "entry" or "field"
	Key  string
}

func (e *DuplicateKey) Error() string {
	return fmt.Sprintf("eds: duplicate %s keyword %q", e.Kind, e.Key)
}

// NonEmpty is returned by remove-* mutators that refuse to delete a
// container holding children unless the caller asked for a tree removal.
type NonEmpty struct {
	Kind string // "section" or "entry"
	Key  string
}

func (e *NonEmpty) Error() string {
	return fmt.Sprintf("eds: %s %q is not empty", e.Kind, e.Key)
}

// EPathError is returned by Document.ResolveEPath when a bracketed
// reference cannot be resolved against the document.
type EPathError struct {
	Token  string
	Reason string
}

func (e *EPathError) Error() string {
	return fmt.Sprintf("eds: cannot resolve epath token %q: %s", e.Token, e.Reason)
}

// ReferenceMissing describes a REF value whose target entry does not exist.
// Validate reports such findings as Diagnostics of kind
// "reference-missing"; no function in this package returns this type.
type ReferenceMissing struct {
	Section string
	Entry   string
	Target  string
}

func (e *ReferenceMissing) Error() string {
	return fmt.Sprintf("eds: reference %q from [%s].%s has no target", e.Target, e.Section, e.Entry)
}

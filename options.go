// Copyright 2024 The EDS Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package eds

// Options configures Parse. A nil *Options is equivalent to the zero
// value: validate automatically, against DefaultDatabase.
type Options struct {
	// SkipValidate disables the automatic Validate call Parse otherwise
	// performs, leaving field typing at the parser's preliminary EMPTY /
	// VENDOR_SPECIFIC / UNDEFINED fallback. Callers that want
	// to inspect or mutate the Document before validation set this.
	SkipValidate bool

	// MaxDiagnostics caps the number of Diagnostics Validate records,
	// discarding the rest; zero means unlimited. Intended for callers
	// scanning large document corpora that only need to know whether a
	// document is clean.
	MaxDiagnostics int

	// Database overrides DefaultDatabase, a test hook for exercising
	// unknown-section handling against a custom schema.
	Database *Database
}

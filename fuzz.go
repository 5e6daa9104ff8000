// Copyright 2024 The EDS Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package eds

// Fuzz is a legacy go-fuzz entry point: an EDS file from an unknown
// vendor is exactly the kind of untrusted input this guards against.
func Fuzz(data []byte) int {
	doc, err := Parse(data, nil)
	if err != nil {
		return 0
	}
	if _, err := doc.Serialize(); err != nil {
		return 0
	}
	return 1
}

// Copyright 2024 The EDS Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package eds

import (
	"os"

	mmap "github.com/edsrzf/mmap-go"
)

// LoadFile memory-maps name and parses its contents, avoiding a copy of
// the whole file into a byte slice before scanning it.
func LoadFile(name string, opts *Options) (*Document, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, err
	}
	defer data.Unmap()

	return Parse(data, opts)
}

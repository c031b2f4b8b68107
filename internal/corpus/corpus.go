// Copyright 2024-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package corpus loads test corpora and checks that the UTF-7 variants
// reproduce their content.
package corpus

import (
	"fmt"
	"io/fs"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/ulikunitz/utf7"
)

// File is a corpus file.
type File struct {
	Name string
	Data []byte
}

// Files reads all regular files of the corpus.
func Files(corpus fs.FS) (files []File, err error) {
	err = fs.WalkDir(corpus, ".",
		func(path string, entry fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if entry.IsDir() {
				return nil
			}
			data, err := fs.ReadFile(corpus, path)
			if err != nil {
				return err
			}
			files = append(files, File{Name: path, Data: data})
			return nil
		})
	return files, err
}

// Size returns the total size of the files.
func Size(files []File) int64 {
	n := int64(0)
	for _, f := range files {
		n += int64(len(f.Data))
	}
	return n
}

// Units converts the data into UTF-16 code units. Valid UTF-8 is decoded
// as text; other data is taken as ISO 8859-1, one code unit per byte, so
// every byte value is covered.
func Units(data []byte) []uint16 {
	if utf8.Valid(data) {
		return utf16.Encode([]rune(string(data)))
	}
	u := make([]uint16, len(data))
	for i, b := range data {
		u[i] = uint16(b)
	}
	return u
}

// RoundTrip encodes the units using the variant, decodes the result and
// compares it with the units. It returns the size of the encoded data.
func RoundTrip(v *utf7.Variant, units []uint16) (encodedSize int, err error) {
	p, err := v.Encode(units)
	if err != nil {
		return 0, fmt.Errorf("%s: encode error %w", v, err)
	}
	for i, c := range p {
		if c >= 0x80 {
			return len(p), fmt.Errorf(
				"%s: encoded byte %#02x at %d is not ASCII",
				v, c, i)
		}
	}
	q, err := v.Decode(p)
	if err != nil {
		return len(p), fmt.Errorf("%s: decode error %w", v, err)
	}
	if len(q) != len(units) {
		return len(p), fmt.Errorf(
			"%s: decoded %d code units; want %d",
			v, len(q), len(units))
	}
	for i := range q {
		if q[i] != units[i] {
			return len(p), fmt.Errorf(
				"%s: code unit %d is %#04x; want %#04x",
				v, i, q[i], units[i])
		}
	}
	return len(p), nil
}

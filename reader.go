// Copyright 2024-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package utf7

import (
	"errors"
	"io"

	"golang.org/x/text/transform"
)

// Reader decodes a UTF-7 stream and provides the text as UTF-8.
type Reader struct {
	v   *Variant
	tr  io.Reader
	err error
}

// NewReader creates a reader decoding UTF-7 as defined by RFC 2152.
func NewReader(r io.Reader) (*Reader, error) {
	return NewReaderConfig(r, ReaderConfig{})
}

// NewReaderConfig creates a reader using the given configuration.
func NewReaderConfig(r io.Reader, cfg ReaderConfig) (*Reader, error) {
	if r == nil {
		return nil, errors.New("utf7: reader must be not nil")
	}
	if err := cfg.Verify(); err != nil {
		return nil, err
	}
	v, err := cfg.variant()
	if err != nil {
		return nil, err
	}
	return &Reader{
		v:  v,
		tr: transform.NewReader(r, newTextDecoder(v)),
	}, nil
}

// Variant returns the variant decoded by the reader.
func (r *Reader) Variant() *Variant { return r.v }

// Read reads UTF-8 text. Once an error has been returned, all
// following calls return the same error.
func (r *Reader) Read(p []byte) (n int, err error) {
	if r.err != nil {
		return 0, r.err
	}
	n, err = r.tr.Read(p)
	r.err = err
	return n, err
}

// Copyright 2024-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package utf7

import (
	"errors"
	"io"

	"golang.org/x/text/transform"
)

// errWriterClosed indicates that the writer has been closed.
var errWriterClosed = errors.New("utf7: writer is closed")

// Writer encodes UTF-8 text written to it into a UTF-7 variant.
type Writer struct {
	v   *Variant
	tw  *transform.Writer
	err error
}

// nopWCloser adds a Close method that does nothing to a Writer.
type nopWCloser struct {
	io.Writer
}

// Close returns nil and doesn't do anything else.
func (c nopWCloser) Close() error { return nil }

// NewWriter creates a writer encoding UTF-7 as defined by RFC 2152.
func NewWriter(w io.Writer) (*Writer, error) {
	return NewWriterConfig(w, WriterConfig{})
}

// NewWriterConfig creates a writer using the given configuration.
func NewWriterConfig(w io.Writer, cfg WriterConfig) (*Writer, error) {
	if w == nil {
		return nil, errors.New("utf7: writer must be not nil")
	}
	if err := cfg.Verify(); err != nil {
		return nil, err
	}
	v, err := cfg.variant()
	if err != nil {
		return nil, err
	}
	// transform.Writer closes its writer if it implements io.Closer.
	return &Writer{
		v:  v,
		tw: transform.NewWriter(nopWCloser{w}, newTextEncoder(v)),
	}, nil
}

// Variant returns the variant encoded by the writer.
func (w *Writer) Variant() *Variant { return w.v }

// Write encodes the UTF-8 text in p. Incomplete UTF-8 sequences at the
// end of p are kept until the next call to Write or Close.
func (w *Writer) Write(p []byte) (n int, err error) {
	if w.err != nil {
		return 0, w.err
	}
	n, err = w.tw.Write(p)
	w.err = err
	return n, err
}

// Close terminates an open base64 run and writes all buffered data. The
// underlying writer is not closed.
func (w *Writer) Close() error {
	if w.err != nil {
		return w.err
	}
	err := w.tw.Close()
	if err == nil {
		err = errWriterClosed
	}
	w.err = err
	if err == errWriterClosed {
		return nil
	}
	return err
}

// Copyright 2024-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package xio provides I/O helpers for the utf7 command. The [Stack] type
// combines layered WriteClosers, for instance a file and the encoder
// writing into it, into a single [io.WriteCloser].
package xio

import (
	"errors"
	"io"
)

// Stack writes to the WriteCloser at its top and closes all of its
// WriteClosers from the top to the bottom. The layer pushed last must
// write into the layer below it.
type Stack struct {
	wcs []io.WriteCloser
}

// Push adds a WriteCloser to the top of the stack. It panics if wc is
// nil.
func (s *Stack) Push(wc io.WriteCloser) {
	if wc == nil {
		panic("xio: cannot push nil WriteCloser")
	}
	s.wcs = append(s.wcs, wc)
}

// Len returns the number of WriteClosers on the stack.
func (s *Stack) Len() int { return len(s.wcs) }

// Write writes p to the top of the stack. Writes to an empty stack are
// discarded.
func (s *Stack) Write(p []byte) (n int, err error) {
	k := len(s.wcs)
	if k == 0 {
		return len(p), nil
	}
	return s.wcs[k-1].Write(p)
}

// Close closes all WriteClosers, even if some of them fail, and returns
// the joined errors. The stack is empty afterwards.
func (s *Stack) Close() error {
	var errs []error
	for k := len(s.wcs) - 1; k >= 0; k-- {
		if err := s.wcs[k].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	s.wcs = nil
	return errors.Join(errs...)
}

// nopCloser provides a Close method doing nothing.
type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

// NopCloser returns a WriteCloser whose Close method does nothing. It
// allows writers like os.Stdout to be the bottom of a stack without being
// closed.
func NopCloser(w io.Writer) io.WriteCloser {
	return nopCloser{w}
}

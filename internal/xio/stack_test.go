// Copyright 2024-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xio

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

type recordCloser struct {
	name   string
	w      io.Writer
	closed *[]string
	err    error
}

func (r *recordCloser) Write(p []byte) (n int, err error) {
	return r.w.Write(p)
}

func (r *recordCloser) Close() error {
	*r.closed = append(*r.closed, r.name)
	return r.err
}

func TestStack(t *testing.T) {
	var closed []string
	buf := new(bytes.Buffer)
	errBottom := errors.New("bottom failed")

	var s Stack
	s.Push(&recordCloser{name: "bottom", w: buf, closed: &closed,
		err: errBottom})
	s.Push(&recordCloser{name: "top", w: buf, closed: &closed})
	if s.Len() != 2 {
		t.Fatalf("s.Len() is %d; want %d", s.Len(), 2)
	}

	if _, err := io.WriteString(&s, "foo"); err != nil {
		t.Fatalf("io.WriteString error %s", err)
	}
	if buf.String() != "foo" {
		t.Fatalf("buf is %q; want %q", buf.String(), "foo")
	}

	err := s.Close()
	if !errors.Is(err, errBottom) {
		t.Fatalf("s.Close() returned %v; want %v", err, errBottom)
	}
	if len(closed) != 2 || closed[0] != "top" || closed[1] != "bottom" {
		t.Fatalf("close order %v; want [top bottom]", closed)
	}
	if s.Len() != 0 {
		t.Fatalf("s.Len() after Close is %d; want 0", s.Len())
	}
}

func TestEmptyStack(t *testing.T) {
	var s Stack
	n, err := s.Write([]byte("abc"))
	if err != nil || n != 3 {
		t.Fatalf("s.Write returned %d, %v; want 3, nil", n, err)
	}
	if err = s.Close(); err != nil {
		t.Fatalf("s.Close() error %s", err)
	}
}

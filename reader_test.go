// Copyright 2024-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package utf7

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"
)

func TestReaderSimple(t *testing.T) {
	const text = "Hi Mom -+Jjo--!"
	r, err := NewReader(strings.NewReader(text))
	if err != nil {
		t.Fatalf("NewReader error %s", err)
	}
	var buf bytes.Buffer
	if _, err = io.Copy(&buf, r); err != nil {
		t.Fatalf("io.Copy error %s", err)
	}
	const want = "Hi Mom -☺-!"
	if s := buf.String(); s != want {
		t.Fatalf("reader returned %q; want %q", s, want)
	}
}

func TestReaderOneByte(t *testing.T) {
	const text = "~peter/mail/&U,BTFw-/&ZeVnLIqe-"
	r, err := NewReaderConfig(
		iotest.OneByteReader(strings.NewReader(text)),
		ReaderConfig{Variant: "X-IMAP-MODIFIED-UTF-7"})
	if err != nil {
		t.Fatalf("NewReaderConfig error %s", err)
	}
	p, err := io.ReadAll(iotest.OneByteReader(r))
	if err != nil {
		t.Fatalf("io.ReadAll error %s", err)
	}
	const want = "~peter/mail/台北/日本語"
	if string(p) != want {
		t.Fatalf("reader returned %q; want %q", p, want)
	}
}

func TestReaderMalformed(t *testing.T) {
	tests := []struct {
		cfg ReaderConfig
		in  string
		off int64
	}{
		{ReaderConfig{}, "abc+", 4},
		{ReaderConfig{Strict: true}, "+Jjo!", 4},
		{ReaderConfig{Variant: "modified-utf-7"}, "Entw&APw-&AGE-", 10},
	}
	for _, tc := range tests {
		r, err := NewReaderConfig(strings.NewReader(tc.in), tc.cfg)
		if err != nil {
			t.Fatalf("NewReaderConfig error %s", err)
		}
		_, err = io.ReadAll(r)
		var merr *MalformedInputError
		if !errors.As(err, &merr) {
			t.Fatalf("reading %q returned %v; want malformed input",
				tc.in, err)
		}
		if merr.Offset != tc.off {
			t.Fatalf("reading %q: offset %d; want %d", tc.in,
				merr.Offset, tc.off)
		}
		var p [4]byte
		if _, err2 := r.Read(p[:]); err2 != err {
			t.Fatalf("second Read returned %v; want %v", err2, err)
		}
	}
}

func TestReaderLenient(t *testing.T) {
	r, err := NewReader(strings.NewReader("+Jjo!"))
	if err != nil {
		t.Fatalf("NewReader error %s", err)
	}
	p, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("io.ReadAll error %s", err)
	}
	if string(p) != "☺!" {
		t.Fatalf("reader returned %q; want %q", p, "☺!")
	}
}

func TestReaderConfig(t *testing.T) {
	var cfg ReaderConfig
	if err := cfg.Verify(); err != nil {
		t.Fatalf("cfg.Verify() error %s", err)
	}
	if cfg.Variant != "UTF-7" {
		t.Fatalf("default variant %q; want %q", cfg.Variant, "UTF-7")
	}
	cfg = ReaderConfig{Variant: "UTF-16"}
	if err := cfg.Verify(); err == nil {
		t.Fatalf("cfg.Verify() accepted variant %q", cfg.Variant)
	}
	if _, err := NewReaderConfig(strings.NewReader(""), cfg); err == nil {
		t.Fatalf("NewReaderConfig accepted variant %q", cfg.Variant)
	}
	var pcfg *ReaderConfig
	if err := pcfg.Verify(); err == nil {
		t.Fatalf("Verify on nil configuration succeeded")
	}
	if _, err := NewReader(nil); err == nil {
		t.Fatalf("NewReader(nil) succeeded")
	}
	r, err := NewReaderConfig(strings.NewReader(""),
		ReaderConfig{Variant: "utf-7", Strict: true})
	if err != nil {
		t.Fatalf("NewReaderConfig error %s", err)
	}
	if v := r.Variant(); !v.Strict() || v.Name() != "UTF-7" {
		t.Fatalf("r.Variant() is %s strict=%t", v, v.Strict())
	}
	if UTF7.Strict() {
		t.Fatalf("strict configuration changed the UTF7 variant")
	}
}

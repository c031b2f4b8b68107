// Copyright 2024-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package randtxt

import (
	"io"
	"math/rand"
	"testing"
	"unicode/utf8"
)

func TestCDF(t *testing.T) {
	if len(pcdf) != len(blocks) {
		t.Fatalf("len(pcdf) is %d; want %d", len(pcdf), len(blocks))
	}
	for i := 1; i < len(pcdf); i++ {
		if pcdf[i].p < pcdf[i-1].p {
			t.Fatalf("pcdf not sorted at index %d", i)
		}
	}
	if p := pcdf[len(pcdf)-1].p; p != 1.0 {
		t.Fatalf("last probability is %g; want 1", p)
	}
	if b := pcdf.search(0); b != blocks[0] {
		t.Fatalf("pcdf.search(0) returned %v; want %v", b, blocks[0])
	}
}

func TestReader(t *testing.T) {
	r := NewReader(rand.NewSource(13))
	p, err := io.ReadAll(io.LimitReader(r, 4099))
	if err != nil {
		t.Fatalf("io.ReadAll error %s", err)
	}
	if len(p) != 4099 {
		t.Fatalf("read %d bytes; want %d", len(p), 4099)
	}
	var ascii, other int
	for len(p) > 0 {
		c, size := utf8.DecodeRune(p)
		if c == utf8.RuneError && !utf8.FullRune(p) {
			// the limit may cut the last rune
			break
		}
		if c < utf8.RuneSelf {
			ascii++
		} else {
			other++
		}
		p = p[size:]
	}
	t.Logf("ascii %d other %d", ascii, other)
	if ascii == 0 || other == 0 {
		t.Fatalf("text not mixed: ascii %d other %d", ascii, other)
	}
}

func TestString(t *testing.T) {
	r := NewReader(rand.NewSource(1))
	s := r.String(100)
	if n := utf8.RuneCountInString(s); n != 100 {
		t.Fatalf("rune count %d; want %d", n, 100)
	}
	if !utf8.ValidString(s) {
		t.Fatalf("string %q is not valid UTF-8", s)
	}
}

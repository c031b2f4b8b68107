// Copyright 2024-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package randtxt generates random text mixing several scripts. The text
// exercises direct characters, characters that must be packed and
// surrogate pairs. It is used for tests and benchmarks.
package randtxt

import (
	"math/rand"
	"sort"
	"unicode/utf8"
)

// block is a range of code points with a relative weight.
type block struct {
	lo, hi rune
	weight float64
}

// blocks lists the code point ranges the generator draws from.
var blocks = []block{
	{'a', 'z', 30},
	{'A', 'Z', 6},
	{'0', '9', 3},
	{' ', ' ', 12},
	{'!', '/', 4},
	{':', '@', 2},
	{'[', '`', 2},
	{'{', '~', 1},
	{'\t', '\n', 1},
	{0x00c0, 0x00ff, 6},   // Latin-1 letters
	{0x0391, 0x03c9, 5},   // Greek
	{0x0410, 0x044f, 5},   // Cyrillic
	{0x2200, 0x22ff, 2},   // mathematical operators
	{0x3041, 0x3096, 3},   // Hiragana
	{0x4e00, 0x9fff, 4},   // CJK ideographs
	{0x1f600, 0x1f64f, 2}, // emoticons, encoded as surrogate pairs
}

// prob gives the cumulative probability for a block.
type prob struct {
	b block
	p float64
}

type probs []prob

// cdf computes the cumulative distribution of the blocks.
func cdf(bs []block) probs {
	prs := make(probs, len(bs))
	sum := 0.0
	for _, b := range bs {
		sum += b.weight
	}
	q := 1.0 / sum
	x := 0.0
	for i, b := range bs {
		x += b.weight * q
		if x > 1.0 {
			x = 1.0
		}
		prs[i] = prob{b, x}
	}
	// rounding may leave the last value below 1.0
	prs[len(prs)-1].p = 1.0
	return prs
}

// search returns the block for the probability p.
func (s probs) search(p float64) block {
	i := sort.Search(len(s), func(k int) bool { return s[k].p >= p })
	if i >= len(s) {
		i = len(s) - 1
	}
	return s[i].b
}

var pcdf = cdf(blocks)

// Reader produces random UTF-8 text.
type Reader struct {
	rnd *rand.Rand
	// pending stores the bytes of a rune that didn't fit into the
	// last buffer
	pending []byte
	buf     [utf8.UTFMax]byte
}

// NewReader creates a reader using the given random source.
func NewReader(src rand.Source) *Reader {
	return &Reader{rnd: rand.New(src)}
}

// Rune returns the next random rune.
func (r *Reader) Rune() rune {
	b := pcdf.search(r.rnd.Float64())
	return b.lo + rune(r.rnd.Int63n(int64(b.hi-b.lo+1)))
}

// Read fills p with random UTF-8 text. It never returns an error. Runes
// may be split across calls.
func (r *Reader) Read(p []byte) (n int, err error) {
	for n < len(p) {
		if len(r.pending) == 0 {
			k := utf8.EncodeRune(r.buf[:], r.Rune())
			r.pending = r.buf[:k]
		}
		k := copy(p[n:], r.pending)
		n += k
		r.pending = r.pending[k:]
	}
	return n, nil
}

// String returns a random string of n runes.
func (r *Reader) String(n int) string {
	rs := make([]rune, n)
	for i := range rs {
		rs[i] = r.Rune()
	}
	return string(rs)
}

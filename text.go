// Copyright 2024-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package utf7

import (
	"unicode/utf16"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// Encoding returns the variant as encoding.Encoding. Its decoder converts
// the variant into UTF-8 and its encoder converts UTF-8 into the
// variant.
func (v *Variant) Encoding() encoding.Encoding {
	return textEncoding{v}
}

// textEncoding implements encoding.Encoding for a variant.
type textEncoding struct {
	v *Variant
}

// NewDecoder returns a decoder converting the variant to UTF-8.
func (e textEncoding) NewDecoder() *encoding.Decoder {
	return &encoding.Decoder{Transformer: newTextDecoder(e.v)}
}

// NewEncoder returns an encoder converting UTF-8 to the variant.
func (e textEncoding) NewEncoder() *encoding.Encoder {
	return &encoding.Encoder{Transformer: newTextEncoder(e.v)}
}

// String returns the name of the variant.
func (e textEncoding) String() string { return e.v.name }

// Surrogate ranges of UTF-16.
const (
	surr1 = 0xd800
	surr2 = 0xdc00
	surr3 = 0xe000
)

// textDecoder is a transform.Transformer converting the bytes of a
// variant into UTF-8. A high surrogate is kept until the next code unit
// is available.
type textDecoder struct {
	d Decoder
	// hi holds a pending high surrogate if hasHi is set
	hi    uint16
	hasHi bool
}

func newTextDecoder(v *Variant) *textDecoder {
	return &textDecoder{d: Decoder{v: v}}
}

// Reset resets the decoder to its initial state.
func (t *textDecoder) Reset() {
	t.d.Reset()
	t.hi, t.hasHi = 0, false
}

// putUnit encodes the code unit c as UTF-8 taking a pending high
// surrogate into account. Unpaired surrogates are written as U+FFFD. It
// reports false if p is too small; the transformer is unchanged in that
// case.
func (t *textDecoder) putUnit(p []byte, c uint16) (n int, ok bool) {
	var buf [2 * utf8.UTFMax]byte
	hi, hasHi := t.hi, t.hasHi
	if hasHi && surr2 <= c && c < surr3 {
		n = utf8.EncodeRune(buf[:], utf16.DecodeRune(rune(hi), rune(c)))
		hasHi = false
	} else {
		if hasHi {
			n = utf8.EncodeRune(buf[:], utf8.RuneError)
			hasHi = false
		}
		switch {
		case surr1 <= c && c < surr2:
			hi, hasHi = c, true
		case surr2 <= c && c < surr3:
			n += utf8.EncodeRune(buf[n:], utf8.RuneError)
		default:
			n += utf8.EncodeRune(buf[n:], rune(c))
		}
	}
	if n > len(p) {
		return 0, false
	}
	copy(p, buf[:n])
	t.hi, t.hasHi = hi, hasHi
	return n, true
}

// Transform converts the bytes in src into UTF-8 written to dst.
func (t *textDecoder) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	var u [1]uint16
	for nSrc < len(src) {
		saved := t.d
		n, k, err := t.d.Decode(u[:], src[nSrc:])
		if n == 0 {
			nSrc += k
			if err != nil {
				return nDst, nSrc, err
			}
			break
		}
		w, ok := t.putUnit(dst[nDst:], u[0])
		if !ok {
			t.d = saved
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += w
		nSrc += k
		if err != nil && err != ErrOutputFull {
			return nDst, nSrc, err
		}
	}
	if !atEOF {
		return nDst, nSrc, nil
	}
	if _, err = t.d.Finish(nil); err != nil {
		return nDst, nSrc, err
	}
	if t.hasHi {
		if len(dst)-nDst < utf8.RuneLen(utf8.RuneError) {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += utf8.EncodeRune(dst[nDst:], utf8.RuneError)
		t.hi, t.hasHi = 0, false
	}
	return nDst, nSrc, nil
}

// textEncoder is a transform.Transformer converting UTF-8 into the bytes
// of a variant.
type textEncoder struct {
	e Encoder
}

func newTextEncoder(v *Variant) *textEncoder {
	return &textEncoder{e: Encoder{v: v}}
}

// Reset resets the encoder to its initial state.
func (t *textEncoder) Reset() {
	t.e.Reset()
}

// Transform converts the UTF-8 text in src into the variant. Invalid
// UTF-8 is encoded as U+FFFD.
func (t *textEncoder) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	var u [2]uint16
	for nSrc < len(src) {
		r, size := rune(src[nSrc]), 1
		if r >= utf8.RuneSelf {
			if !atEOF && !utf8.FullRune(src[nSrc:]) {
				return nDst, nSrc, transform.ErrShortSrc
			}
			r, size = utf8.DecodeRune(src[nSrc:])
		}
		units := u[:1]
		if r >= 0x10000 {
			r1, r2 := utf16.EncodeRune(r)
			u[0], u[1] = uint16(r1), uint16(r2)
			units = u[:2]
		} else {
			u[0] = uint16(r)
		}
		saved := t.e
		n, k, err := t.e.Encode(dst[nDst:], units)
		if err != nil || k < len(units) {
			t.e = saved
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += n
		nSrc += size
	}
	if atEOF {
		n, err := t.e.Finish(dst[nDst:])
		if err != nil {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += n
	}
	return nDst, nSrc, nil
}

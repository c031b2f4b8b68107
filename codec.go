// Copyright 2024-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package utf7

import (
	"unicode/utf16"
)

// Decode decodes the complete message src.
func (v *Variant) Decode(src []byte) (units []uint16, err error) {
	d := v.NewDecoder()
	// Every byte produces at most one code unit.
	units = make([]uint16, len(src))
	n, _, err := d.Decode(units, src)
	if err != nil {
		return nil, err
	}
	if _, err = d.Finish(nil); err != nil {
		return nil, err
	}
	return units[:n], nil
}

// Encode encodes the complete message src.
func (v *Variant) Encode(src []uint16) (p []byte, err error) {
	e := v.NewEncoder()
	// A code unit needs at most 4 bytes, but mostly less.
	p = make([]byte, 0, len(src)+len(src)/2+maxUnitBytes)
	for {
		n, k, err := e.Encode(p[len(p):cap(p)], src)
		p = p[:len(p)+n]
		src = src[k:]
		if err == nil {
			break
		}
		if err != ErrOutputFull {
			return nil, err
		}
		p = grow(p, len(src)*maxUnitBytes)
	}
	for {
		n, err := e.Finish(p[len(p):cap(p)])
		p = p[:len(p)+n]
		if err == nil {
			return p, nil
		}
		if err != ErrOutputFull {
			return nil, err
		}
		p = grow(p, 2)
	}
}

// grow increases the capacity of p to hold at least n more bytes.
func grow(p []byte, n int) []byte {
	if n <= cap(p)-len(p) {
		return p
	}
	q := make([]byte, len(p), 2*cap(p)+n)
	copy(q, p)
	return q
}

// DecodeString decodes s and returns the text as UTF-8 string. Unpaired
// surrogates are replaced by U+FFFD.
func (v *Variant) DecodeString(s string) (string, error) {
	units, err := v.Decode([]byte(s))
	if err != nil {
		return "", err
	}
	return string(utf16.Decode(units)), nil
}

// EncodeString encodes the UTF-8 string s. Invalid UTF-8 sequences are
// encoded as U+FFFD.
func (v *Variant) EncodeString(s string) (string, error) {
	p, err := v.Encode(utf16.Encode([]rune(s)))
	if err != nil {
		return "", err
	}
	return string(p), nil
}

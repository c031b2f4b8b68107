// Copyright 2024-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package utf7

// alphabetLen is the number of symbols in a base64 alphabet.
const alphabetLen = 64

// Alphabet maps the 64 symbols of a base64 alphabet to their 6-bit values
// and back. Alphabet values are immutable and may be shared between
// goroutines.
type Alphabet struct {
	symbols [alphabetLen]byte
	// values contains -1 for all bytes not in the alphabet
	values [128]int8
}

// NewAlphabet creates an alphabet from the string of its symbols. The
// symbol at index i has the value i. The string must consist of exactly
// 64 distinct ASCII characters.
func NewAlphabet(symbols string) (a *Alphabet, err error) {
	if len(symbols) != alphabetLen {
		return nil, configErrorf("alphabet has %d symbols; want %d",
			len(symbols), alphabetLen)
	}
	a = new(Alphabet)
	for i := range a.values {
		a.values[i] = -1
	}
	for i := 0; i < alphabetLen; i++ {
		c := symbols[i]
		if c >= 0x80 {
			return nil, configErrorf(
				"alphabet symbol %#02x is not ASCII", c)
		}
		if a.values[c] >= 0 {
			return nil, configErrorf(
				"alphabet symbol %q is duplicated", c)
		}
		a.symbols[i] = c
		a.values[c] = int8(i)
	}
	return a, nil
}

// MustAlphabet calls NewAlphabet and panics if an error is returned.
func MustAlphabet(symbols string) *Alphabet {
	a, err := NewAlphabet(symbols)
	if err != nil {
		panic(err)
	}
	return a
}

// Value returns the 6-bit value of the symbol b. The flag ok is false
// if b is not a member of the alphabet.
func (a *Alphabet) Value(b byte) (v byte, ok bool) {
	if b >= 0x80 {
		return 0, false
	}
	x := a.values[b]
	if x < 0 {
		return 0, false
	}
	return byte(x), true
}

// Symbol returns the symbol for the 6-bit value v. Only the lower six bits
// of v are used.
func (a *Alphabet) Symbol(v byte) byte {
	return a.symbols[v&0x3f]
}

// Contains checks whether b is a symbol of the alphabet.
func (a *Alphabet) Contains(b byte) bool {
	return b < 0x80 && a.values[b] >= 0
}

// containsUnit checks whether the code unit is a symbol of the alphabet.
func (a *Alphabet) containsUnit(c uint16) bool {
	return c < 0x80 && a.values[c] >= 0
}

// String returns the symbols of the alphabet ordered by value.
func (a *Alphabet) String() string {
	return string(a.symbols[:])
}

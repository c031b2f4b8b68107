// Copyright 2024-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package utf7

import "strings"

// Base64 alphabets used by the variants.
const (
	base64Symbols         = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"
	modifiedBase64Symbols = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+,"
)

// Character sets of RFC 2152.
const (
	// setD contains the directly encoded characters.
	setD = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789'(),-./:?"
	// setO contains the optional direct characters.
	setO = "!\"#$%&*;<=>@[]^_`{|}"
	// rule3 contains the white space characters that may be
	// represented directly.
	rule3 = " \t\r\n"
)

// Variant describes a member of the UTF-7 family. A Variant cannot be
// changed after construction; the same variant may be used by any number
// of decoders and encoders concurrently.
type Variant struct {
	name    string
	aliases []string
	// base64 alphabet for packed runs
	alphabet *Alphabet
	shift    byte
	unshift  byte
	direct   func(c uint16) bool
	strict   bool
}

// NewVariant creates a variant and checks its consistency.
func NewVariant(name string, a *Alphabet, shift, unshift byte,
	direct func(c uint16) bool, strict bool) (v *Variant, err error) {
	v = &Variant{
		name:     name,
		alphabet: a,
		shift:    shift,
		unshift:  unshift,
		direct:   direct,
		strict:   strict,
	}
	if err = v.verify(); err != nil {
		return nil, err
	}
	return v, nil
}

// verify checks the variant for consistency.
func (v *Variant) verify() error {
	switch {
	case v.alphabet == nil:
		return configErrorf("variant %s: no alphabet", v.name)
	case v.direct == nil:
		return configErrorf("variant %s: no direct predicate", v.name)
	case v.shift >= 0x80 || v.unshift >= 0x80:
		return configErrorf("variant %s: shift bytes must be ASCII",
			v.name)
	case v.shift == v.unshift:
		return configErrorf("variant %s: shift equals unshift", v.name)
	case v.direct(uint16(v.shift)):
		return configErrorf(
			"variant %s: shift %q is a direct character",
			v.name, v.shift)
	case v.alphabet.Contains(v.unshift):
		return configErrorf(
			"variant %s: unshift %q is in the alphabet",
			v.name, v.unshift)
	}
	return nil
}

// Name returns the canonical name of the variant.
func (v *Variant) Name() string { return v.name }

// Aliases returns the alternative names accepted by Lookup.
func (v *Variant) Aliases() []string {
	a := make([]string, len(v.aliases))
	copy(a, v.aliases)
	return a
}

// Alphabet returns the base64 alphabet used for packed runs.
func (v *Variant) Alphabet() *Alphabet { return v.alphabet }

// Shift returns the byte starting a packed run.
func (v *Variant) Shift() byte { return v.shift }

// Unshift returns the byte terminating a packed run.
func (v *Variant) Unshift() byte { return v.unshift }

// Direct reports whether the code unit c may be encoded as itself.
func (v *Variant) Direct(c uint16) bool { return v.direct(c) }

// Strict reports whether the variant rejects redundant shifts and base64
// runs that are not terminated by the unshift byte. A strict encoder
// always terminates base64 runs explicitly.
func (v *Variant) Strict() bool { return v.strict }

// WithStrict returns a copy of the variant with the given strictness. The
// variant itself is returned if the strictness doesn't change.
func (v *Variant) WithStrict(strict bool) *Variant {
	if v.strict == strict {
		return v
	}
	w := *v
	w.strict = strict
	return &w
}

// String returns the name of the variant.
func (v *Variant) String() string { return v.name }

// charSet returns a direct predicate for the characters in s.
func charSet(s string) func(c uint16) bool {
	var set [128]bool
	for i := 0; i < len(s); i++ {
		set[s[i]] = true
	}
	return func(c uint16) bool {
		return c < 0x80 && set[c]
	}
}

// printableExceptAmpersand is the direct predicate of modified UTF-7.
func printableExceptAmpersand(c uint16) bool {
	return 0x20 <= c && c <= 0x7e && c != '&'
}

// mustVariant calls NewVariant and panics on error.
func mustVariant(name string, aliases []string, a *Alphabet,
	shift, unshift byte, direct func(c uint16) bool, strict bool,
) *Variant {
	v, err := NewVariant(name, a, shift, unshift, direct, strict)
	if err != nil {
		panic(err)
	}
	v.aliases = aliases
	return v
}

var (
	// UTF7 is UTF-7 as defined by RFC 2152. Only the characters of set
	// D and white space are encoded directly. Decoding is lenient.
	UTF7 = mustVariant("UTF-7",
		[]string{"UNICODE-1-1-UTF-7", "CSUNICODE11UTF7"},
		MustAlphabet(base64Symbols), '+', '-',
		charSet(setD+rule3), false)

	// UTF7OptionalDirect is UTF-7 with the optional direct characters
	// of set O encoded directly.
	UTF7OptionalDirect = mustVariant("X-UTF-7-OPTIONAL",
		[]string{"UTF-7-OPTIONAL", "UTF-7-OPTIONAL-DIRECT"},
		MustAlphabet(base64Symbols), '+', '-',
		charSet(setD+setO+rule3), false)

	// ModifiedUTF7 is the modified UTF-7 used for IMAP mailbox names
	// (RFC 3501 section 5.1.3).
	ModifiedUTF7 = mustVariant("X-IMAP-MODIFIED-UTF-7",
		[]string{"IMAP-MODIFIED-UTF-7", "MODIFIED-UTF-7",
			"UTF-7-IMAP"},
		MustAlphabet(modifiedBase64Symbols), '&', '-',
		printableExceptAmpersand, true)
)

// registry lists the predefined variants.
var registry = []*Variant{UTF7, UTF7OptionalDirect, ModifiedUTF7}

// Variants returns the predefined variants.
func Variants() []*Variant {
	vs := make([]*Variant, len(registry))
	copy(vs, registry)
	return vs
}

// Lookup returns the predefined variant with the given name or alias.
// Case is ignored.
func Lookup(name string) (v *Variant, ok bool) {
	for _, v = range registry {
		if strings.EqualFold(v.name, name) {
			return v, true
		}
		for _, a := range v.aliases {
			if strings.EqualFold(a, name) {
				return v, true
			}
		}
	}
	return nil, false
}

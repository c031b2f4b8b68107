// Copyright 2024-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package utf7 implements the UTF-7 family of encodings: UTF-7 as defined
// by RFC 2152, a variant that encodes the optional direct characters of
// RFC 2152 directly, and the modified UTF-7 of RFC 3501 used for IMAP
// mailbox names.
//
// The variants are provided as [Variant] values. A [Decoder] converts
// bytes into UTF-16 code units, an [Encoder] converts UTF-16 code units
// into bytes. Both work on caller-supplied buffers and can be resumed
// at arbitrary chunk boundaries; [ErrOutputFull] signals that the
// output buffer must be drained before the remaining input can be
// processed.
//
// Usage:
//
//	s, err := utf7.ModifiedUTF7.DecodeString("Entw&APw-rfe")
//
//	r, err := utf7.NewReader(f)
//
//	w, err := utf7.NewWriter(f)
//
// The Encoding method of a variant returns a
// golang.org/x/text/encoding.Encoding converting between UTF-8 and the
// variant.
package utf7

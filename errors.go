// Copyright 2024-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package utf7

import (
	"errors"
	"fmt"
)

// ErrOutputFull indicates that the output buffer has no space for the
// output generated by the next input element. It is not a failure; the
// input that has not been consumed must be provided again together with
// a drained or larger output buffer.
var ErrOutputFull = errors.New("utf7: output buffer full")

// MalformedInputError reports input violating the grammar of a variant.
type MalformedInputError struct {
	// Offset is the stream offset of the offending byte. For the Finish
	// methods it is the offset of the end of the stream. A redundant
	// shift directly after the unshift of a non-empty run is reported at
	// the first base64 byte following it, since shift and unshift
	// without content between them still encode the shift character.
	Offset int64
	// Length is the number of malformed bytes.
	Length int
	// Reason describes the violation.
	Reason string
}

// Error returns the error message.
func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("utf7: malformed input at offset %d: %s",
		e.Offset, e.Reason)
}

// Reasons used in MalformedInputError values.
const (
	reasonSuperfluousShift = "shift directly after unshift"
	reasonBitsWaiting      = "unshift with incomplete code unit"
	reasonNotInAlphabet    = "byte not in base64 alphabet"
	reasonNonASCII         = "non-ASCII byte in base64 run"
	reasonUnterminated     = "unterminated base64 run"
	reasonLoneShift        = "shift at end of input"
	reasonEndBitsWaiting   = "incomplete code unit at end of input"
)

// ConfigError marks an invalid alphabet or variant definition. Such
// errors are programming errors and occur only while constructing
// alphabets and variants.
type ConfigError struct {
	Msg string
}

// Error returns the error message with the prefix "utf7 config - ".
func (e *ConfigError) Error() string {
	return "utf7 config - " + e.Msg
}

// configErrorf creates a new configuration error.
func configErrorf(format string, a ...interface{}) error {
	return &ConfigError{Msg: fmt.Sprintf(format, a...)}
}

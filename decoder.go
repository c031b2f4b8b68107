// Copyright 2024-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package utf7

// decoderState holds the state of the decoding state machine. The value
// is copied on every transition, so a transition that fails leaves the
// previous state untouched.
type decoderState struct {
	// packed is true inside a base64 run
	packed bool
	// justShifted is set directly after the shift byte
	justShifted bool
	// justUnshifted is set directly after the unshift byte terminated
	// a non-empty base64 run
	justUnshifted bool
	// reshifted marks a base64 run started directly after the unshift
	// of a non-empty run
	reshifted bool
	// acc holds the bits of the current code unit right-aligned; bits
	// gives their number
	acc  uint32
	bits uint
}

// bitsWaiting reports whether the accumulator holds bits that cannot be
// discarded as padding.
func (s *decoderState) bitsWaiting() bool {
	return s.acc != 0 || s.bits >= 6
}

// decodeByte computes the transition of the decoder state for byte b. If
// emit is true, the code unit c is produced. A non-empty reason
// indicates malformed input; the returned state must then be ignored.
func (v *Variant) decodeByte(s decoderState, b byte,
) (t decoderState, c uint16, emit bool, reason string) {
	t = s
	if !s.packed {
		if b == v.shift {
			t.packed = true
			t.justShifted = true
			t.reshifted = s.justUnshifted
			t.justUnshifted = false
			return t, 0, false, ""
		}
		t.justUnshifted = false
		return t, uint16(b), true, ""
	}

	if b == v.unshift {
		if s.bitsWaiting() {
			return s, 0, false, reasonBitsWaiting
		}
		t = decoderState{justUnshifted: !s.justShifted}
		if s.justShifted {
			// shift, unshift encodes the shift character
			return t, uint16(v.shift), true, ""
		}
		return t, 0, false, ""
	}

	x, ok := v.alphabet.Value(b)
	if ok {
		if s.reshifted && v.strict {
			return s, 0, false, reasonSuperfluousShift
		}
		t.justShifted = false
		t.reshifted = false
		t.acc = t.acc<<6 | uint32(x)
		t.bits += 6
		if t.bits >= 16 {
			t.bits -= 16
			c = uint16(t.acc >> t.bits)
			t.acc &= 1<<t.bits - 1
			return t, c, true, ""
		}
		return t, 0, false, ""
	}

	switch {
	case b >= 0x80:
		return s, 0, false, reasonNonASCII
	case v.strict:
		return s, 0, false, reasonNotInAlphabet
	case s.bitsWaiting():
		return s, 0, false, reasonBitsWaiting
	}
	// implicit termination of the base64 run
	return decoderState{}, uint16(b), true, ""
}

// finishState checks whether the stream may end in state s. It returns
// the reason if not.
func (v *Variant) finishState(s decoderState) (reason string) {
	switch {
	case !s.packed:
		return ""
	case s.justShifted:
		return reasonLoneShift
	case s.bitsWaiting():
		return reasonEndBitsWaiting
	case v.strict:
		return reasonUnterminated
	}
	return ""
}

// Decoder converts a byte stream in a UTF-7 variant into UTF-16 code
// units. A Decoder must not be used concurrently.
type Decoder struct {
	v   *Variant
	s   decoderState
	off int64
}

// NewDecoder creates a decoder for the variant.
func (v *Variant) NewDecoder() *Decoder {
	return &Decoder{v: v}
}

// Variant returns the variant of the decoder.
func (d *Decoder) Variant() *Variant { return d.v }

// Reset puts the decoder into its initial state.
func (d *Decoder) Reset() {
	d.s = decoderState{}
	d.off = 0
}

// Offset returns the number of bytes consumed since the decoder has been
// created or reset.
func (d *Decoder) Offset() int64 { return d.off }

// malformed creates the error for the byte at the current offset.
func (d *Decoder) malformed(reason string) error {
	return &MalformedInputError{Offset: d.off, Length: 1, Reason: reason}
}

// Decode decodes src into dst. It returns the number of code units
// written and the number of bytes consumed.
//
// If all of src has been consumed, err is nil. If dst has no room for
// the next code unit, ErrOutputFull is returned and the byte producing
// that code unit is not consumed. Malformed input is reported by a
// *MalformedInputError; src[nSrc] is the offending byte and the decoder
// keeps the state it had before that byte.
func (d *Decoder) Decode(dst []uint16, src []byte) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		s, c, emit, reason := d.v.decodeByte(d.s, src[nSrc])
		if reason != "" {
			return nDst, nSrc, d.malformed(reason)
		}
		if emit {
			if nDst >= len(dst) {
				return nDst, nSrc, ErrOutputFull
			}
			dst[nDst] = c
			nDst++
		}
		d.s = s
		nSrc++
		d.off++
	}
	return nDst, nSrc, nil
}

// Finish must be called after all input has been provided to Decode. It
// checks that the stream doesn't end inside an incomplete base64 run. It
// never produces output, so nDst is always zero; the parameter keeps the
// signature symmetric to Encoder.Finish.
//
// After a successful Finish the decoder is back in direct mode and may
// decode the next message; Offset keeps counting. On error the state is
// unchanged.
func (d *Decoder) Finish(dst []uint16) (nDst int, err error) {
	if reason := d.v.finishState(d.s); reason != "" {
		return 0, &MalformedInputError{
			Offset: d.off,
			Length: 0,
			Reason: reason,
		}
	}
	d.s = decoderState{}
	return 0, nil
}

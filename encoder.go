// Copyright 2024-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package utf7

// maxUnitBytes is the maximum number of bytes a single code unit can
// produce, e.g. the shift byte followed by three sextets.
const maxUnitBytes = 4

// encoderState holds the state of the encoding state machine.
type encoderState struct {
	// packed is true inside a base64 run
	packed bool
	// sextet holds the pending bits of a partial sextet at its most
	// significant positions; bits gives their number (0, 2 or 4)
	sextet byte
	bits   uint
}

// terminate ends the base64 run. The unshift byte is only written
// if the next character c would be taken as part of the base64 run, if c
// is the unshift byte itself, or if the variant is strict.
func (v *Variant) terminate(s encoderState, p []byte, c uint16) (n int) {
	if s.bits != 0 {
		p[n] = v.alphabet.Symbol(s.sextet)
		n++
	}
	if v.strict || c == uint16(v.unshift) || v.alphabet.containsUnit(c) {
		p[n] = v.unshift
		n++
	}
	return n
}

// encodeUnit computes the transition of the encoder state for the code
// unit c. The bytes produced are written to out.
func (v *Variant) encodeUnit(s encoderState, c uint16,
) (t encoderState, out [maxUnitBytes]byte, n int) {
	if v.direct(c) {
		if s.packed {
			n = v.terminate(s, out[:], c)
		}
		out[n] = byte(c)
		n++
		return encoderState{}, out, n
	}
	if c == uint16(v.shift) {
		if s.packed {
			n = v.terminate(s, out[:], c)
		}
		out[n], out[n+1] = v.shift, v.unshift
		return encoderState{}, out, n + 2
	}

	t = s
	if !t.packed {
		out[n] = v.shift
		n++
		t.packed = true
	}
	t.bits += 16
	for t.bits >= 6 {
		t.bits -= 6
		x := (uint16(t.sextet) | c>>t.bits) & 0x3f
		out[n] = v.alphabet.Symbol(byte(x))
		n++
		t.sextet = 0
	}
	t.sextet = byte(c<<(6-t.bits)) & 0x3f
	return t, out, n
}

// Encoder converts UTF-16 code units into a byte stream in a UTF-7
// variant. An Encoder must not be used concurrently.
type Encoder struct {
	v *Variant
	s encoderState
}

// NewEncoder creates an encoder for the variant.
func (v *Variant) NewEncoder() *Encoder {
	return &Encoder{v: v}
}

// Variant returns the variant of the encoder.
func (e *Encoder) Variant() *Variant { return e.v }

// Reset puts the encoder into its initial state.
func (e *Encoder) Reset() {
	e.s = encoderState{}
}

// Encode encodes the code units of src into dst. It returns the number
// of bytes written and the number of code units consumed. If dst cannot
// take all bytes for the next code unit, ErrOutputFull is returned and
// the code unit is not consumed.
func (e *Encoder) Encode(dst []byte, src []uint16) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		s, out, n := e.v.encodeUnit(e.s, src[nSrc])
		if n > len(dst)-nDst {
			return nDst, nSrc, ErrOutputFull
		}
		nDst += copy(dst[nDst:], out[:n])
		e.s = s
		nSrc++
	}
	return nDst, nSrc, nil
}

// Finish terminates an open base64 run. It writes at most two bytes.
// ErrOutputFull is returned if dst is too small; the call must then be
// repeated.
func (e *Encoder) Finish(dst []byte) (nDst int, err error) {
	if !e.s.packed {
		return 0, nil
	}
	var out [2]byte
	n := 0
	if e.s.bits != 0 {
		out[n] = e.v.alphabet.Symbol(e.s.sextet)
		n++
	}
	out[n] = e.v.unshift
	n++
	if n > len(dst) {
		return 0, ErrOutputFull
	}
	copy(dst, out[:n])
	e.s = encoderState{}
	return n, nil
}

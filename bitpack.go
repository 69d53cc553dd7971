// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzw

package lzw

import "github.com/pkg/errors"

// codeWriter packs fixed-width codes LSB-first onto a byte slice.
type codeWriter struct {
	dst   []byte
	acc   uint64 // pending bits, oldest in the low end
	nbits uint   // number of valid bits in acc (< 8 between calls)
	width uint
}

func newCodeWriter(dst []byte, width int) codeWriter {
	return codeWriter{dst: dst, width: uint(width)} //nolint:gosec // G115: width is validated to MinCodeBits..MaxCodeBits
}

// writeCode appends width bits of code and peels off every complete byte.
func (w *codeWriter) writeCode(code uint32) {
	w.acc |= uint64(code) << w.nbits
	w.nbits += w.width

	for w.nbits >= 8 {
		w.dst = append(w.dst, lowByte(w.acc))
		w.acc >>= 8
		w.nbits -= 8
	}
}

// flush emits the last partial byte with its unused high bits zeroed.
func (w *codeWriter) flush() {
	if w.nbits > 0 {
		w.dst = append(w.dst, lowByte(w.acc))
	}

	w.acc = 0
	w.nbits = 0
}

// bytes returns the packed output. Call flush first.
func (w *codeWriter) bytes() []byte {
	return w.dst
}

// codeReader unpacks fixed-width LSB-first codes from a byte slice.
type codeReader struct {
	src   []byte
	pos   int
	acc   uint64
	nbits uint
	width uint
	mask  uint64
}

func newCodeReader(src []byte, width int) codeReader {
	w := uint(width) //nolint:gosec // G115: width is validated to MinCodeBits..MaxCodeBits
	return codeReader{src: src, width: w, mask: 1<<w - 1}
}

// readCode returns the next code, or ok=false once only tail padding is left.
// Leftover bits that cannot be padding (a whole byte or more, or any set bit)
// mean the stream was cut inside a code.
func (r *codeReader) readCode() (code uint32, ok bool, err error) {
	for r.nbits < r.width {
		if r.pos >= len(r.src) {
			return 0, false, r.checkPadding()
		}

		r.acc |= uint64(r.src[r.pos]) << r.nbits
		r.pos++
		r.nbits += 8
	}

	code = uint32(r.acc & r.mask) //nolint:gosec // G115: masked to at most MaxCodeBits bits
	r.acc >>= r.width
	r.nbits -= r.width

	return code, true, nil
}

func (r *codeReader) checkPadding() error {
	if r.nbits >= 8 {
		return errors.Wrapf(ErrCorruptStream, "stream ends %d bits into a %d-bit code", r.nbits, r.width)
	}

	if r.acc != 0 {
		return errors.Wrapf(ErrCorruptStream, "non-zero padding 0x%x in last %d bits", r.acc, r.nbits)
	}

	return nil
}

// lowByte keeps the low 8 bits of the accumulator.
func lowByte(v uint64) byte {
	// #nosec G115 -- the bit packer intentionally serializes only the low 8 bits.
	return byte(v & 0xff)
}

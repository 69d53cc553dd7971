// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzw

package lzw

import (
	"math"

	"github.com/pkg/errors"
)

// seqSpan locates one entry's bytes inside the arena.
type seqSpan struct {
	off uint32
	n   uint32
}

// sequenceDict is the decoder's dictionary. Every entry owns an immutable
// span of a single arena; an entry is materialized once, when it is defined,
// and is never written again.
type sequenceDict struct {
	arena []byte
	spans []seqSpan
	max   int
	limit int // arena size addressable by seqSpan offsets
}

// newSequenceDict seeds seed single-byte sequences.
func newSequenceDict(seed, maxSize int) *sequenceDict {
	d := &sequenceDict{
		arena: make([]byte, seed, seed*4),
		spans: make([]seqSpan, seed, maxSize),
		max:   maxSize,
		limit: min(math.MaxUint32, math.MaxInt),
	}

	for i := range seed {
		d.arena[i] = byte(i)
		d.spans[i] = seqSpan{off: uint32(i), n: 1} //nolint:gosec // G115: seed <= 256
	}

	return d
}

func (d *sequenceDict) size() int {
	return len(d.spans)
}

func (d *sequenceDict) full() bool {
	return len(d.spans) >= d.max
}

// sequence returns the bytes of code. The slice is capacity-limited so an
// append by the caller cannot overwrite a neighbouring entry.
func (d *sequenceDict) sequence(code uint32) []byte {
	s := d.spans[code]
	end := s.off + s.n
	return d.arena[s.off:end:end]
}

// first returns the first byte of code's sequence.
func (d *sequenceDict) first(code uint32) byte {
	return d.arena[d.spans[code].off]
}

// add defines the next code as sequence(prefix) followed by suffix. It is a
// no-op on a full dictionary and reports whether an entry was created.
// ErrDictionaryTooLarge is returned when the arena would outgrow its offsets.
func (d *sequenceDict) add(prefix uint32, suffix byte) (bool, error) {
	if d.full() {
		return false, nil
	}

	p := d.spans[prefix]
	if len(d.arena)+int(p.n)+1 > d.limit {
		return false, errors.Wrapf(ErrDictionaryTooLarge, "%d entries hold %d bytes", len(d.spans), len(d.arena))
	}

	off := uint32(len(d.arena)) //nolint:gosec // G115: bounded by limit
	d.arena = append(d.arena, d.arena[p.off:p.off+p.n]...)
	d.arena = append(d.arena, suffix)
	d.spans = append(d.spans, seqSpan{off: off, n: p.n + 1})

	return true, nil
}

// longest returns the length of the longest defined sequence.
func (d *sequenceDict) longest() int {
	var n uint32
	for _, s := range d.spans {
		n = max(n, s.n)
	}

	return int(n)
}

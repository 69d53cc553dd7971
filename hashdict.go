// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzw

package lzw

import "math/bits"

// hashSlot maps a packed (prefix, suffix) key to the code of their concatenation.
type hashSlot struct {
	key  uint32 // prefix<<8 | suffix
	code uint32 // emptySlot when free
}

// hashIndex is an open-addressed, linearly probed table with power-of-two capacity.
// Keys are inserted at most once and never removed.
type hashIndex struct {
	slots []hashSlot
	mask  uint32
	shift uint // 32 - log2(capacity)

	lookups int
	probes  int
}

// hashCapacity returns the smallest power of two holding
// hashLoadFactorInverse*maxDictSize slots.
func hashCapacity(maxDictSize int) int {
	n := uint(hashLoadFactorInverse * maxDictSize) //nolint:gosec // G115: maxDictSize <= 1<<MaxCodeBits
	return 1 << bits.Len(n-1)
}

// reset prepares the index for capacity slots, reusing its backing array when possible.
func (h *hashIndex) reset(capacity int) {
	if cap(h.slots) < capacity {
		h.slots = make([]hashSlot, capacity)
	}

	h.slots = h.slots[:capacity]
	for i := range h.slots {
		h.slots[i] = hashSlot{code: emptySlot}
	}

	// capacity <= 1<<(MaxCodeBits+1), so both conversions are exact.
	log2 := bits.TrailingZeros(uint(capacity))
	h.mask = uint32(capacity - 1) //nolint:gosec // G115
	h.shift = uint(32 - log2)
	h.lookups = 0
	h.probes = 0
}

func packKey(prefix uint32, suffix byte) uint32 {
	return prefix<<8 | uint32(suffix)
}

// home returns the first probe position for key: the top log2(capacity)
// bits of a Fibonacci product.
func (h *hashIndex) home(key uint32) uint32 {
	return (key * hashMultiplier) >> h.shift & h.mask
}

// lookup returns the code for (prefix, suffix) if it was inserted.
func (h *hashIndex) lookup(prefix uint32, suffix byte) (uint32, bool) {
	key := packKey(prefix, suffix)
	h.lookups++

	for i := h.home(key); ; i = (i + 1) & h.mask {
		h.probes++

		slot := &h.slots[i]
		if slot.code == emptySlot {
			return 0, false
		}

		if slot.key == key {
			return slot.code, true
		}
	}
}

// insert stores code in the first free slot of the probe sequence for (prefix, suffix).
// The caller guarantees the key is absent and the table is not full.
func (h *hashIndex) insert(prefix uint32, suffix byte, code uint32) {
	key := packKey(prefix, suffix)

	for i := h.home(key); ; i = (i + 1) & h.mask {
		slot := &h.slots[i]
		if slot.code == emptySlot {
			slot.key = key
			slot.code = code
			return
		}
	}
}

// encodeEntry describes a code as its prefix code plus one appended byte.
type encodeEntry struct {
	prefix uint32 // noPrefix for seed entries
	suffix byte
	length uint32
}

// encodeDict is the encoder's dictionary: entries in code order plus the
// (prefix, suffix) index. It never stores whole byte sequences.
type encodeDict struct {
	entries []encodeEntry
	index   *hashIndex
	max     int
}

// newEncodeDict seeds seed single-byte entries and acquires a hash index for maxSize entries.
// Release it with close.
func newEncodeDict(seed, maxSize int) *encodeDict {
	d := &encodeDict{
		entries: make([]encodeEntry, seed, maxSize),
		index:   acquireHashIndex(hashCapacity(maxSize)),
		max:     maxSize,
	}

	for i := range seed {
		d.entries[i] = encodeEntry{prefix: noPrefix, suffix: byte(i), length: 1}
	}

	return d
}

func (d *encodeDict) size() int {
	return len(d.entries)
}

func (d *encodeDict) full() bool {
	return len(d.entries) >= d.max
}

func (d *encodeDict) lookup(prefix uint32, suffix byte) (uint32, bool) {
	return d.index.lookup(prefix, suffix)
}

// add defines the next code as prefix followed by suffix. It is a no-op on a
// full dictionary and reports whether an entry was created.
func (d *encodeDict) add(prefix uint32, suffix byte) bool {
	if d.full() {
		return false
	}

	code := uint32(len(d.entries)) //nolint:gosec // G115: bounded by max <= 1<<MaxCodeBits
	d.entries = append(d.entries, encodeEntry{
		prefix: prefix,
		suffix: suffix,
		length: d.entries[prefix].length + 1,
	})
	d.index.insert(prefix, suffix, code)

	return true
}

// sequence rebuilds the bytes denoted by code by walking its prefix chain.
func (d *encodeDict) sequence(code uint32) []byte {
	e := d.entries[code]
	out := make([]byte, e.length)

	for i := int(e.length) - 1; i >= 0; i-- {
		out[i] = e.suffix
		if e.prefix != noPrefix {
			e = d.entries[e.prefix]
		}
	}

	return out
}

// close returns the hash index to the pool. The dictionary is unusable afterwards.
func (d *encodeDict) close() {
	releaseHashIndex(d.index)
	d.index = nil
	d.entries = nil
}

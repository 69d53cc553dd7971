// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzw

package lzw

// Artifact layout.
const (
	headerSize = 4 // int32 initial dictionary size, little-endian
)

// Code width bounds and defaults.
const (
	// DefaultCodeBits gives a 16384-entry dictionary.
	DefaultCodeBits = 14
	// DefaultInitDictSize seeds one entry per byte value.
	DefaultInitDictSize = 256

	// MinCodeBits keeps the tail padding (< 8 bits) shorter than one code.
	MinCodeBits = 8
	// MaxCodeBits bounds the hash index at 2^21 slots.
	MaxCodeBits = 20
)

// Hash index parameters.
const (
	hashLoadFactorInverse = 2          // capacity >= 2 * MaxDictSize
	hashMultiplier        = 0x9e3779b1 // 2^32 / golden ratio
	emptySlot             = ^uint32(0) // code value marking a free slot
	noPrefix              = ^uint32(0) // prefix of a seed entry
)

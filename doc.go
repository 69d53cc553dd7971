// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzw

/*
Package lzw implements a fixed-width LZW compressor and decompressor.

The artifact is a 4-byte little-endian header holding the initial dictionary
size, followed by CodeBits-wide codes packed least-significant-bit first and
zero-padded to the next byte. The code width never changes inside an artifact
and the dictionary is never reset: once it holds 2^CodeBits entries it is
frozen and the rest of the input is coded with the existing entries.

Encoder and decoder grow their dictionaries independently with the same rule.
The encoder keeps a (prefix code, next byte) hash index and never stores
whole sequences; the decoder materializes every sequence because it has to
emit it.

# Compress

Options may be nil (14-bit codes, 256 seed entries):

	out, err := lzw.Compress(data, nil)
	out, err := lzw.Compress(data, &lzw.Options{CodeBits: 12})

# Decompress

The decoder must be configured like the encoder; a header mismatch is
reported as ErrHeaderMismatch:

	data, err := lzw.Decompress(out, nil)

From an io.Reader, with an optional input cap:

	data, err := lzw.DecompressFromReader(r, &lzw.Options{MaxInputSize: 64 << 20})

# Files

	err := lzw.CompressFile("image.bin", "image.lzw", nil)
	err := lzw.DecompressFile("image.lzw", "image.out", nil)

# Errors

Every failure matches one of ErrInvalidConfig, ErrFormat, ErrResourceLimit or
ErrSymbolOutOfRange with errors.Is, or wraps the underlying I/O error.
*/
package lzw

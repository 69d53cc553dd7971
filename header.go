// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzw

package lzw

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

// appendHeader appends the int32 initial dictionary size.
func appendHeader(dst []byte, initDictSize int) []byte {
	return binary.LittleEndian.AppendUint32(dst, uint32(int32(initDictSize))) //nolint:gosec // G115: InitDictSize is validated to 1..256
}

// ReadHeader returns the initial dictionary size recorded in an artifact.
func ReadHeader(src []byte) (int32, error) {
	if len(src) < headerSize {
		return 0, errors.Wrapf(ErrShortHeader, "got %d bytes, need %d", len(src), headerSize)
	}

	return int32(binary.LittleEndian.Uint32(src[:headerSize])), nil //nolint:gosec // G115: header is a signed int32 on the wire
}

// checkHeader validates the header against the configured seed size and
// returns the code payload.
func checkHeader(src []byte, initDictSize int) ([]byte, error) {
	seed, err := ReadHeader(src)
	if err != nil {
		return nil, err
	}

	if int(seed) != initDictSize {
		return nil, errors.Wrapf(ErrHeaderMismatch, "artifact seeded with %d entries, configured %d", seed, initDictSize)
	}

	return src[headerSize:], nil
}

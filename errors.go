// SPDX-License-Identifier: MIT
// Source: github.com/woozymasta/lzw

package lzw

import "github.com/pkg/errors"

// Sentinel errors for compression and decompression.
var (
	// ErrInvalidConfig is returned by Options.Validate and by every entry point
	// before any I/O happens.
	ErrInvalidConfig = errors.New("invalid lzw configuration")

	// ErrFormat is the parent of every malformed-artifact error.
	ErrFormat = errors.New("malformed lzw stream")
	// ErrShortHeader is returned when the artifact is shorter than its header.
	ErrShortHeader = errors.WithMessage(ErrFormat, "short header")
	// ErrHeaderMismatch is returned when the header does not carry the configured InitDictSize.
	ErrHeaderMismatch = errors.WithMessage(ErrFormat, "header mismatch")
	// ErrInvalidCode is returned when a code is larger than the current dictionary size.
	ErrInvalidCode = errors.WithMessage(ErrFormat, "code out of range")
	// ErrCorruptStream is returned when the stream ends inside a code.
	ErrCorruptStream = errors.WithMessage(ErrFormat, "corrupt code stream")

	// ErrResourceLimit is the parent of the configured size caps.
	ErrResourceLimit = errors.New("resource limit exceeded")
	// ErrInputTooLarge is returned when the input exceeds Options.MaxInputSize.
	ErrInputTooLarge = errors.WithMessage(ErrResourceLimit, "input exceeds MaxInputSize")
	// ErrOutputTooLarge is returned when the decoded output exceeds Options.MaxOutputSize.
	ErrOutputTooLarge = errors.WithMessage(ErrResourceLimit, "output exceeds MaxOutputSize")
	// ErrDictionaryTooLarge is returned when decoded dictionary entries exceed 4 GiB before it freezes.
	ErrDictionaryTooLarge = errors.WithMessage(ErrResourceLimit, "dictionary exceeds 4 GiB")

	// ErrSymbolOutOfRange is returned by the encoder for an input byte without
	// a seed entry (byte >= InitDictSize).
	ErrSymbolOutOfRange = errors.New("input byte outside the seeded alphabet")
)

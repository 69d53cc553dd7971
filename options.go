// SPDX-License-Identifier: MIT
// Source: github.com/woozymasta/lzw

package lzw

import (
	"github.com/ledgerwatch/log/v3"
	"github.com/pkg/errors"
)

// Options configures both directions. Encoder and decoder must agree on
// CodeBits and InitDictSize; nothing but InitDictSize is recorded in the artifact.
type Options struct {
	// CodeBits is the fixed code width (MinCodeBits..MaxCodeBits). 0 selects DefaultCodeBits.
	CodeBits int
	// InitDictSize is the number of single-byte seed entries (1..256). 0 selects DefaultInitDictSize.
	InitDictSize int
	// MaxInputSize limits the bytes accepted by any entry point (0 = no limit).
	MaxInputSize int
	// MaxOutputSize limits the bytes produced by decompression (0 = no limit).
	MaxOutputSize int
	// Logger receives debug and file-level records. nil discards them.
	Logger log.Logger
}

// DefaultOptions returns 14-bit codes with a full 256-entry byte alphabet and no limits.
func DefaultOptions() *Options {
	return &Options{
		CodeBits:     DefaultCodeBits,
		InitDictSize: DefaultInitDictSize,
	}
}

// MaxDictSize returns 2^CodeBits, the number of entries after which the dictionary freezes.
func (o *Options) MaxDictSize() int {
	return 1 << o.codeBits()
}

// Validate reports ErrInvalidConfig for out-of-range settings.
func (o *Options) Validate() error {
	bits := o.codeBits()
	if bits < MinCodeBits || bits > MaxCodeBits {
		return errors.Wrapf(ErrInvalidConfig, "CodeBits %d not in [%d, %d]", bits, MinCodeBits, MaxCodeBits)
	}

	seed := o.initDictSize()
	if seed < 1 || seed > 256 {
		return errors.Wrapf(ErrInvalidConfig, "InitDictSize %d not in [1, 256]", seed)
	}

	if seed > o.MaxDictSize() {
		return errors.Wrapf(ErrInvalidConfig, "InitDictSize %d exceeds MaxDictSize %d", seed, o.MaxDictSize())
	}

	if o.MaxInputSize < 0 || o.MaxOutputSize < 0 {
		return errors.Wrap(ErrInvalidConfig, "negative size limit")
	}

	return nil
}

func (o *Options) codeBits() int {
	if o.CodeBits == 0 {
		return DefaultCodeBits
	}

	return o.CodeBits
}

func (o *Options) initDictSize() int {
	if o.InitDictSize == 0 {
		return DefaultInitDictSize
	}

	return o.InitDictSize
}

func (o *Options) logger() log.Logger {
	if o.Logger == nil {
		return discardLogger
	}

	return o.Logger
}

var discardLogger = func() log.Logger {
	l := log.New()
	l.SetHandler(log.DiscardHandler())
	return l
}()

// resolveOptions substitutes defaults for nil and validates the result.
func resolveOptions(opts *Options) (*Options, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	if err := opts.Validate(); err != nil {
		return nil, err
	}

	return opts, nil
}

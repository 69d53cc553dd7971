// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzw

package lzw

import "github.com/pkg/errors"

// Compress returns the LZW artifact for src. opts may be nil (DefaultOptions).
// Empty input yields a header-only artifact.
func Compress(src []byte, opts *Options) ([]byte, error) {
	out, _, err := CompressWithStats(src, opts)
	return out, err
}

// CompressWithStats is Compress plus the call's telemetry.
func CompressWithStats(src []byte, opts *Options) ([]byte, Stats, error) {
	opts, err := resolveOptions(opts)
	if err != nil {
		return nil, Stats{}, err
	}

	if opts.MaxInputSize > 0 && len(src) > opts.MaxInputSize {
		return nil, Stats{}, errors.Wrapf(ErrInputTooLarge, "%d > %d bytes", len(src), opts.MaxInputSize)
	}

	enc := newEncoder(opts)
	defer enc.close()

	if err := enc.encode(src); err != nil {
		return nil, Stats{}, err
	}

	return enc.w.bytes(), enc.stats, nil
}

// encoder owns one call's dictionary, hash index and output.
type encoder struct {
	opts  *Options
	dict  *encodeDict
	w     codeWriter
	stats Stats

	// onEmit, when set, sees every code with the dictionary size at emission time.
	onEmit func(code uint32, dictSize int)
}

func newEncoder(opts *Options) *encoder {
	seed := opts.initDictSize()
	return &encoder{
		opts:  opts,
		dict:  newEncodeDict(seed, opts.MaxDictSize()),
		w:     newCodeWriter(appendHeader(nil, seed), opts.codeBits()),
		stats: Stats{FrozenAt: -1},
	}
}

// close releases the hash index on every exit path.
func (e *encoder) close() {
	e.dict.close()
}

// encode runs the greedy longest-match loop over src.
func (e *encoder) encode(src []byte) error {
	e.stats.InputBytes = len(src)

	if len(src) > 0 {
		current, err := e.seedCode(src, 0)
		if err != nil {
			return err
		}

		for i := 1; i < len(src); i++ {
			k := src[i]
			if code, ok := e.dict.lookup(current, k); ok {
				current = code
				continue
			}

			e.emit(current)
			if e.dict.add(current, k) && e.dict.full() {
				e.stats.FrozenAt = i
				e.opts.logger().Debug("lzw: dictionary frozen", "offset", i, "size", e.dict.size())
			}

			if current, err = e.seedCode(src, i); err != nil {
				return err
			}
		}

		e.emit(current)
	}

	e.w.flush()

	e.stats.OutputBytes = len(e.w.bytes())
	e.stats.DictSize = e.dict.size()
	e.stats.Lookups = e.dict.index.lookups
	e.stats.Probes = e.dict.index.probes
	for _, entry := range e.dict.entries {
		e.stats.LongestSequence = max(e.stats.LongestSequence, int(entry.length))
	}

	return nil
}

// seedCode returns the single-byte code for src[i].
func (e *encoder) seedCode(src []byte, i int) (uint32, error) {
	b := src[i]
	if int(b) >= e.opts.initDictSize() {
		return 0, errors.Wrapf(ErrSymbolOutOfRange, "byte 0x%02x at offset %d, alphabet has %d symbols", b, i, e.opts.initDictSize())
	}

	return uint32(b), nil
}

func (e *encoder) emit(code uint32) {
	if e.onEmit != nil {
		e.onEmit(code, e.dict.size())
	}

	e.w.writeCode(code)
	e.stats.Codes++
}

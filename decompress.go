// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzw

package lzw

import "github.com/pkg/errors"

// Decompress reverses Compress. opts may be nil (DefaultOptions) but must match
// the configuration the artifact was produced with.
// On any error no output is returned.
func Decompress(src []byte, opts *Options) ([]byte, error) {
	out, _, err := DecompressWithStats(src, opts)
	return out, err
}

// DecompressWithStats is Decompress plus the call's telemetry.
func DecompressWithStats(src []byte, opts *Options) ([]byte, Stats, error) {
	opts, err := resolveOptions(opts)
	if err != nil {
		return nil, Stats{}, err
	}

	if opts.MaxInputSize > 0 && len(src) > opts.MaxInputSize {
		return nil, Stats{}, errors.Wrapf(ErrInputTooLarge, "%d > %d bytes", len(src), opts.MaxInputSize)
	}

	payload, err := checkHeader(src, opts.initDictSize())
	if err != nil {
		return nil, Stats{}, err
	}

	dec := newDecoder(opts, payload)
	out, err := dec.decode()
	if err != nil {
		return nil, Stats{}, err
	}

	dec.stats.InputBytes = len(src)
	return out, dec.stats, nil
}

// decoder owns one call's sequence dictionary and output.
type decoder struct {
	opts  *Options
	dict  *sequenceDict
	r     codeReader
	out   []byte
	stats Stats

	// onCode, when set, sees every code with the dictionary size after it was consumed.
	onCode func(code uint32, dictSize int)
}

func newDecoder(opts *Options, payload []byte) *decoder {
	return &decoder{
		opts:  opts,
		dict:  newSequenceDict(opts.initDictSize(), opts.MaxDictSize()),
		r:     newCodeReader(payload, opts.codeBits()),
		stats: Stats{FrozenAt: -1},
	}
}

// decode rebuilds the dictionary from the code stream and returns the output.
func (d *decoder) decode() ([]byte, error) {
	prev, ok, err := d.r.readCode()
	if err != nil {
		return nil, err
	}

	if !ok {
		return d.finish(), nil
	}

	if int(prev) >= d.dict.size() {
		return nil, errors.Wrapf(ErrInvalidCode, "first code %d, dictionary size %d", prev, d.dict.size())
	}

	if err := d.write(prev); err != nil {
		return nil, err
	}

	for {
		curr, ok, err := d.r.readCode()
		if err != nil {
			return nil, err
		}

		if !ok {
			break
		}

		if err := d.step(prev, curr); err != nil {
			return nil, err
		}

		prev = curr
	}

	return d.finish(), nil
}

func (d *decoder) finish() []byte {
	if d.out == nil {
		d.out = []byte{}
	}

	d.stats.OutputBytes = len(d.out)
	d.stats.DictSize = d.dict.size()
	d.stats.LongestSequence = d.dict.longest()

	return d.out
}

// step consumes curr given the previous code. A code equal to the dictionary
// size names the entry the encoder defined right before emitting it: that
// entry is sequence(prev) plus the first byte of sequence(prev). It is added
// like any other entry and then emitted from the dictionary.
func (d *decoder) step(prev, curr uint32) error {
	size := d.dict.size()

	var first byte
	switch {
	case int(curr) < size:
		first = d.dict.first(curr)

	case int(curr) == size && !d.dict.full():
		first = d.dict.first(prev)
		d.stats.KwKwK++

	default:
		return errors.Wrapf(ErrInvalidCode, "code %d at index %d, dictionary size %d", curr, d.stats.Codes, size)
	}

	added, err := d.dict.add(prev, first)
	if err != nil {
		return err
	}

	if added && d.dict.full() {
		d.stats.FrozenAt = len(d.out)
		d.opts.logger().Debug("lzw: dictionary frozen", "offset", len(d.out), "size", d.dict.size())
	}

	return d.write(curr)
}

// write emits the sequence of code, enforcing MaxOutputSize.
func (d *decoder) write(code uint32) error {
	seq := d.dict.sequence(code)
	if limit := d.opts.MaxOutputSize; limit > 0 && len(d.out)+len(seq) > limit {
		return errors.Wrapf(ErrOutputTooLarge, "more than %d bytes", limit)
	}

	d.out = append(d.out, seq...)
	d.stats.Codes++

	if d.onCode != nil {
		d.onCode(code, d.dict.size())
	}

	return nil
}

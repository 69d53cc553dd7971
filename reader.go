package lzw

import (
	"io"

	"github.com/pkg/errors"
)

// CompressFromReader reads the full stream then calls Compress. No encoding logic of its own.
// If opts.MaxInputSize > 0 and more bytes are available, returns ErrInputTooLarge.
func CompressFromReader(r io.Reader, opts *Options) ([]byte, error) {
	opts, err := resolveOptions(opts)
	if err != nil {
		return nil, err
	}

	src, err := readAllLimited(r, opts.MaxInputSize)
	if err != nil {
		return nil, err
	}

	return Compress(src, opts)
}

// DecompressFromReader reads the full stream then calls Decompress. No decoding logic of its own.
// If opts.MaxInputSize > 0 and more bytes are available, returns ErrInputTooLarge.
func DecompressFromReader(r io.Reader, opts *Options) ([]byte, error) {
	opts, err := resolveOptions(opts)
	if err != nil {
		return nil, err
	}

	src, err := readAllLimited(r, opts.MaxInputSize)
	if err != nil {
		return nil, err
	}

	return Decompress(src, opts)
}

// readAllLimited reads at most limit+1 bytes so an oversized stream is
// rejected without buffering all of it. limit 0 reads everything.
func readAllLimited(r io.Reader, limit int) ([]byte, error) {
	if limit > 0 {
		r = io.LimitReader(r, int64(limit)+1)
	}

	src, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if limit > 0 && len(src) > limit {
		return nil, errors.Wrapf(ErrInputTooLarge, "more than %d bytes", limit)
	}

	return src, nil
}

package main

import (
	"github.com/klauspost/compress/s2"
	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"
)

// baseline is a reference codec whose output size is reported next to LZW.
type baseline interface {
	// Name is the name of the compression algorithm.
	Name() string
	// Compress appends the compressed contents of src to dst and returns the result.
	Compress(src, dst []byte) []byte
}

type zstdBaseline struct {
	enc *zstd.Encoder
}

func (z zstdBaseline) Compress(src, dst []byte) []byte {
	return z.enc.EncodeAll(src, dst)
}

func (z zstdBaseline) Name() string { return "zstd" }

type s2Baseline struct{}

func (s2Baseline) Compress(src, dst []byte) []byte {
	return append(dst, s2.Encode(nil, src)...)
}

func (s2Baseline) Name() string { return "s2" }

// baselines returns the reference codecs in report order.
func baselines() ([]baseline, error) {
	z, err := zstd.NewWriter(nil, zstd.WithEncoderConcurrency(1))
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return []baseline{zstdBaseline{z}, s2Baseline{}}, nil
}

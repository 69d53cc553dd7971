// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzw

package lzw

import (
	"os"
	"time"

	"github.com/c2h5oh/datasize"
	"github.com/pkg/errors"
)

// CompressFile compresses the whole of inPath into outPath.
// The configuration is validated before any file is touched.
func CompressFile(inPath, outPath string, opts *Options) error {
	return transformFile("compress", inPath, outPath, opts, CompressWithStats)
}

// DecompressFile decompresses the artifact at inPath into outPath.
func DecompressFile(inPath, outPath string, opts *Options) error {
	return transformFile("decompress", inPath, outPath, opts, DecompressWithStats)
}

type transformFunc func(src []byte, opts *Options) ([]byte, Stats, error)

func transformFile(op, inPath, outPath string, opts *Options, fn transformFunc) error {
	opts, err := resolveOptions(opts)
	if err != nil {
		return err
	}

	t := time.Now()
	src, err := readFile(inPath, opts.MaxInputSize)
	if err != nil {
		return err
	}

	out, stats, err := fn(src, opts)
	if err != nil {
		return errors.Wrapf(err, "%s %s", op, inPath)
	}

	if err := writeFileAtomic(outPath, out); err != nil {
		return err
	}

	opts.logger().Info("lzw: "+op,
		"in", inPath,
		"out", outPath,
		"from", datasize.ByteSize(len(src)).HumanReadable(),
		"to", datasize.ByteSize(len(out)).HumanReadable(),
		"ratio", stats.Ratio(op == "compress"),
		"dict", stats.DictSize,
		"took", time.Since(t),
	)

	return nil
}

func readFile(path string, limit int) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer f.Close()

	src, err := readAllLimited(f, limit)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}

	return src, nil
}

// writeFileAtomic writes data next to path and renames it into place, so a
// failed call never leaves a partial artifact under the final name.
func writeFileAtomic(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil { //nolint:gosec // G306: artifacts are ordinary user files
		_ = os.Remove(tmp)
		return errors.WithStack(err)
	}

	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return errors.Wrap(err, "renaming")
	}

	return nil
}

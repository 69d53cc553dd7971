package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/c2h5oh/datasize"
	"github.com/pkg/errors"

	"github.com/woozymasta/lzw"
)

// entry point for 'lzw stat ...'
func stat(args []string) {
	var rf reportFlags

	flags := flag.NewFlagSet(args[0], flag.ExitOnError)
	cfg := bindFlags(flags)
	flags.BoolVar(&rf.baselines, "baseline", false, "also report zstd and s2 sizes for the same input")
	flags.BoolVar(&rf.raw, "raw", false, "treat the file as uncompressed input even if it decodes as an artifact")
	flags.Parse(args[1:])

	if flags.NArg() != 1 {
		usagef("stat needs <file>\n")
	}

	opts := options(flags, cfg)
	path := flags.Arg(0)

	data, err := readInput(path, opts.MaxInputSize)
	if err != nil {
		exitf("stat: %s\n", err)
	}

	if err := report(os.Stdout, path, data, opts, rf); err != nil {
		exitf("stat %s: %s\n", path, err)
	}
}

type reportFlags struct {
	baselines bool // print zstd and s2 sizes
	raw       bool // never decode the input as an artifact
}

// readInput reads path, failing with lzw.ErrInputTooLarge past limit bytes (0 = no limit).
func readInput(path string, limit int) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer f.Close()

	var r io.Reader = f
	if limit > 0 {
		r = io.LimitReader(f, int64(limit)+1)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}

	if limit > 0 && len(data) > limit {
		return nil, errors.Wrapf(lzw.ErrInputTooLarge, "%s is larger than %d bytes", path, limit)
	}

	return data, nil
}

// report prints the sizes of data. Unless rf.raw is set, data that decodes
// with opts is taken for an artifact and described; anything else is
// compressed in memory. A small raw file can happen to decode.
func report(w io.Writer, path string, data []byte, opts *lzw.Options, rf reportFlags) error {
	fmt.Fprintf(w, "file: %s\n", path)
	fmt.Fprintf(w, "size: %d bytes (%s)\n", len(data), datasize.ByteSize(len(data)).HumanReadable())

	original := data
	artifact := false
	if !rf.raw {
		plain, stats, err := lzw.DecompressWithStats(data, opts)
		switch {
		case err == nil:
			fmt.Fprintf(w, "artifact: %d-bit codes, %d codes, dictionary %d/%d\n",
				opts.CodeBits, stats.Codes, stats.DictSize, opts.MaxDictSize())
			fmt.Fprintf(w, "original size: %d bytes\n", len(plain))
			printRatio(w, "lzw", len(plain), len(data))
			original = plain
			artifact = true

		case errors.Is(err, lzw.ErrResourceLimit):
			return err
		}
	}

	if !artifact {
		cmp, stats, err := lzw.CompressWithStats(data, opts)
		if err != nil {
			return err
		}

		fmt.Fprintf(w, "compressed size: %d bytes, %d codes, dictionary %d/%d, %.2f probes/lookup\n",
			len(cmp), stats.Codes, stats.DictSize, opts.MaxDictSize(), stats.AvgProbes())
		printRatio(w, "lzw", len(data), len(cmp))
	}

	if !rf.baselines {
		return nil
	}

	codecs, err := baselines()
	if err != nil {
		return err
	}

	for _, c := range codecs {
		printRatio(w, c.Name(), len(original), len(c.Compress(original, nil)))
	}

	return nil
}

func printRatio(w io.Writer, name string, original, compressed int) {
	r := lzw.NewRatio(original, compressed)
	fmt.Fprintf(w, "%-5s %10d bytes  ratio %s  saved %.2f%%\n", name+":", compressed, r, r.Savings())
}

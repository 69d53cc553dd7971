// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzw

// Command lzw compresses and decompresses files with fixed-width LZW codes.
//
//	lzw compress [flags] <in> <out>
//	lzw decompress [flags] <in> <out>
//	lzw stat [flags] [-baseline] [-raw] <file>
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/ledgerwatch/log/v3"
	"github.com/pkg/errors"

	"github.com/woozymasta/lzw"
)

const usage = `usage: lzw <command> [flags] <args>

commands:
  compress <in> <out>     write the LZW artifact of <in> to <out>
  decompress <in> <out>   restore the original bytes of artifact <in> to <out>
  stat <file>             report sizes and ratio for a file or an artifact;
                          a file that decodes with the given flags is taken
                          for an artifact unless -raw is set

run "lzw <command> -h" for the flags of a command
`

func exitf(f string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, f, args...)
	os.Exit(1)
}

func usagef(f string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, f, args...)
	fmt.Fprint(os.Stderr, usage)
	os.Exit(2)
}

func main() {
	if len(os.Args) < 2 {
		usagef("")
	}

	switch cmd := os.Args[1]; cmd {
	case "compress", "decompress":
		transform(cmd, os.Args[1:])
	case "stat":
		stat(os.Args[1:])
	case "-h", "-help", "--help", "help":
		fmt.Print(usage)
	default:
		usagef("unknown command %q\n", cmd)
	}
}

// entry point for 'lzw compress ...' and 'lzw decompress ...'
func transform(cmd string, args []string) {
	flags := flag.NewFlagSet(args[0], flag.ExitOnError)
	cfg := bindFlags(flags)
	flags.Parse(args[1:])

	if flags.NArg() != 2 {
		usagef("%s needs <in> <out>\n", cmd)
	}

	opts := options(flags, cfg)
	if err := run(cmd, flags.Arg(0), flags.Arg(1), opts); err != nil {
		exitf("%s: %s\n", cmd, err)
	}
}

// run performs one file operation. Failures are returned, not logged, so the
// caller reports each of them exactly once.
func run(cmd, in, out string, opts *lzw.Options) error {
	if cmd == "compress" {
		return lzw.CompressFile(in, out, opts)
	}

	return lzw.DecompressFile(in, out, opts)
}

// options resolves the configuration of one command and builds its logger.
// Invalid configuration exits before any file is opened.
func options(flags *flag.FlagSet, cfg *config) *lzw.Options {
	if err := cfg.resolve(flags); err != nil {
		exitf("%s\n", err)
	}

	logger, err := newLogger(cfg.Verbosity)
	if err != nil {
		exitf("%s\n", err)
	}

	opts := cfg.options(logger)
	if err := opts.Validate(); err != nil {
		exitf("%s\n", err)
	}

	return opts
}

func newLogger(verbosity string) (log.Logger, error) {
	lvl, err := log.LvlFromString(verbosity)
	if err != nil {
		return nil, errors.Wrapf(err, "bad -verbosity %q", verbosity)
	}

	logger := log.New()
	logger.SetHandler(log.LvlFilterHandler(lvl, log.StderrHandler))
	return logger, nil
}

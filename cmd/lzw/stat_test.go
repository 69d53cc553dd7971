package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/woozymasta/lzw"
)

func TestReport_RawInputWithBaselines(t *testing.T) {
	data := bytes.Repeat([]byte("stat reports ratios against reference codecs. "), 200)
	opts := defaultConfig().options(nil)

	var out bytes.Buffer
	if err := report(&out, "input.txt", data, opts, reportFlags{baselines: true}); err != nil {
		t.Fatalf("report: %v", err)
	}

	for _, want := range []string{"file: input.txt", "compressed size:", "lzw:", "zstd:", "s2:"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("report output lacks %q:\n%s", want, out.String())
		}
	}
	if strings.Contains(out.String(), "artifact:") {
		t.Errorf("raw input described as an artifact:\n%s", out.String())
	}
}

func TestReport_Artifact(t *testing.T) {
	opts := defaultConfig().options(nil)
	plain := bytes.Repeat([]byte("abcabcabd"), 300)

	packed, err := lzw.Compress(plain, opts)
	if err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	if err := report(&out, "input.lzw", packed, opts, reportFlags{}); err != nil {
		t.Fatalf("report: %v", err)
	}

	for _, want := range []string{"artifact: 14-bit codes", "original size: 2700 bytes", "lzw:"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("report output lacks %q:\n%s", want, out.String())
		}
	}
	if strings.Contains(out.String(), "zstd:") {
		t.Errorf("baselines printed without -baseline:\n%s", out.String())
	}
}

func TestReport_RawFlagSkipsArtifactDetection(t *testing.T) {
	opts := defaultConfig().options(nil)
	// A header plus one zero-padded 'A' code decodes as a valid artifact.
	data := []byte{0x00, 0x01, 0x00, 0x00, 0x41, 0x00}

	var out bytes.Buffer
	if err := report(&out, "tiny.bin", data, opts, reportFlags{}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "artifact:") {
		t.Fatalf("decodable input not described as an artifact:\n%s", out.String())
	}

	out.Reset()
	if err := report(&out, "tiny.bin", data, opts, reportFlags{raw: true}); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(out.String(), "artifact:") || !strings.Contains(out.String(), "compressed size:") {
		t.Fatalf("-raw input described as an artifact:\n%s", out.String())
	}
}

func TestReadInput_MaxInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.bin")
	if err := os.WriteFile(path, make([]byte, 2048), 0o600); err != nil {
		t.Fatal(err)
	}

	if data, err := readInput(path, 2048); err != nil || len(data) != 2048 {
		t.Fatalf("readInput at the limit: %d bytes, %v", len(data), err)
	}

	if _, err := readInput(path, 1024); !errors.Is(err, lzw.ErrInputTooLarge) {
		t.Fatalf("expected ErrInputTooLarge, got %v", err)
	}
}

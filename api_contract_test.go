package lzw

import (
	"bytes"
	"fmt"
	"slices"
	"sync"
	"testing"
)

type codeTrace struct {
	codes []uint32
	sizes []int
}

func (c *codeTrace) observe(code uint32, dictSize int) {
	c.codes = append(c.codes, code)
	c.sizes = append(c.sizes, dictSize)
}

// traceRoundTrip compresses data and decodes the result, recording every
// code with the dictionary size each side saw.
func traceRoundTrip(t *testing.T, data []byte, opts *Options) (enc, dec codeTrace, out []byte) {
	t.Helper()

	opts, err := resolveOptions(opts)
	if err != nil {
		t.Fatal(err)
	}

	e := newEncoder(opts)
	defer e.close()

	e.onEmit = enc.observe
	if err := e.encode(data); err != nil {
		t.Fatalf("encode failed: %v", err)
	}

	payload, err := checkHeader(e.w.bytes(), opts.initDictSize())
	if err != nil {
		t.Fatalf("checkHeader failed: %v", err)
	}

	d := newDecoder(opts, payload)
	d.onCode = dec.observe
	out, err = d.decode()
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	return enc, dec, out
}

func TestAPIContract_ABABAB(t *testing.T) {
	enc, dec, out := traceRoundTrip(t, []byte("ABABAB"), nil)

	if want := []uint32{65, 66, 256, 256}; !slices.Equal(enc.codes, want) {
		t.Fatalf("codes = %v, want %v", enc.codes, want)
	}
	if !slices.Equal(dec.codes, enc.codes) {
		t.Fatalf("decoder consumed %v, encoder emitted %v", dec.codes, enc.codes)
	}
	if string(out) != "ABABAB" {
		t.Fatalf("got %q", out)
	}
}

func TestAPIContract_KwKwK(t *testing.T) {
	inputs := []string{"ABABABA", "AAAA", "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"}

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			enc, dec, out := traceRoundTrip(t, []byte(in), &Options{CodeBits: 9})

			kwkwk := 0
			for i := 1; i < len(dec.codes); i++ {
				// dec.sizes[i-1] is the decoder's dictionary size when code i arrives.
				if int(dec.codes[i]) == dec.sizes[i-1] {
					kwkwk++
				}
			}

			if kwkwk == 0 {
				t.Fatalf("no code equal to the decoder dictionary size in %v", enc.codes)
			}
			if string(out) != in {
				t.Fatalf("got %q, want %q", out, in)
			}
		})
	}

	enc, _, _ := traceRoundTrip(t, []byte("ABABABA"), nil)
	if want := []uint32{65, 66, 256, 258}; !slices.Equal(enc.codes, want) {
		t.Fatalf("codes = %v, want %v", enc.codes, want)
	}
}

func TestAPIContract_DictionaryGrowthParity(t *testing.T) {
	for _, in := range testInputSet() {
		for _, bits := range []int{9, 12, 14} {
			enc, dec, out := traceRoundTrip(t, in.data, &Options{CodeBits: bits})

			if !bytes.Equal(out, in.data) {
				t.Fatalf("%s/%d: round-trip mismatch", in.name, bits)
			}
			if !slices.Equal(enc.codes, dec.codes) {
				t.Fatalf("%s/%d: code sequences differ", in.name, bits)
			}
			if !slices.Equal(enc.sizes, dec.sizes) {
				t.Fatalf("%s/%d: dictionary sizes differ", in.name, bits)
			}
		}
	}
}

func TestAPIContract_StatsAgree(t *testing.T) {
	data := pseudoRandom(1 << 15)
	opts := &Options{CodeBits: 10}

	cmp, cs, err := CompressWithStats(data, opts)
	if err != nil {
		t.Fatalf("Compress failed: %v", err)
	}

	_, ds, err := DecompressWithStats(cmp, opts)
	if err != nil {
		t.Fatalf("Decompress failed: %v", err)
	}

	if cs.Codes != ds.Codes || cs.DictSize != ds.DictSize || cs.FrozenAt != ds.FrozenAt {
		t.Fatalf("encoder %v, decoder %v", cs, ds)
	}
	if cs.LongestSequence != ds.LongestSequence {
		t.Fatalf("longest sequence: encoder %d, decoder %d", cs.LongestSequence, ds.LongestSequence)
	}
	if cs.InputBytes != ds.OutputBytes || cs.OutputBytes != ds.InputBytes {
		t.Fatalf("byte counts disagree: encoder %v, decoder %v", cs, ds)
	}
	if cs.Lookups == 0 || cs.AvgProbes() < 1 {
		t.Fatalf("hash telemetry missing: lookups=%d probes=%d", cs.Lookups, cs.Probes)
	}
}

func TestAPIContract_NilOptionsMatchDefaults(t *testing.T) {
	data := bytes.Repeat([]byte("defaults"), 300)

	a, err := Compress(data, nil)
	if err != nil {
		t.Fatalf("Compress failed: %v", err)
	}

	b, err := Compress(data, DefaultOptions())
	if err != nil {
		t.Fatalf("Compress failed: %v", err)
	}

	c, err := Compress(data, &Options{})
	if err != nil {
		t.Fatalf("Compress failed: %v", err)
	}

	if !bytes.Equal(a, b) || !bytes.Equal(a, c) {
		t.Fatal("nil, zero and default options should produce identical artifacts")
	}
}

func TestAPIContract_ConcurrentCalls(t *testing.T) {
	const (
		workers = 16
		rounds  = 20
	)

	var wg sync.WaitGroup
	errs := make(chan error, workers)

	for w := range workers {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()

			opts := &Options{CodeBits: 9 + w%6}
			for r := range rounds {
				data := append(pseudoRandom(512+w*97+r*13), bytes.Repeat([]byte{byte(w), byte(r)}, 300+r)...)

				cmp, err := Compress(data, opts)
				if err != nil {
					errs <- fmt.Errorf("worker %d round %d: Compress: %w", w, r, err)
					return
				}

				out, err := Decompress(cmp, opts)
				if err != nil {
					errs <- fmt.Errorf("worker %d round %d: Decompress: %w", w, r, err)
					return
				}

				if !bytes.Equal(out, data) {
					errs <- fmt.Errorf("worker %d round %d: round trip mismatch at %d bits", w, r, opts.CodeBits)
					return
				}
			}
		}(w)
	}

	wg.Wait()
	close(errs)

	for err := range errs {
		t.Error(err)
	}
}

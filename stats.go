package lzw

import "fmt"

// Stats is the telemetry of one Compress or Decompress call.
type Stats struct {
	// InputBytes and OutputBytes are what the call consumed and produced; the
	// header counts on the artifact side.
	InputBytes  int
	OutputBytes int
	// Codes is the number of codes emitted (encode) or consumed (decode).
	Codes int
	// DictSize is the final number of dictionary entries, seed entries included.
	DictSize int
	// FrozenAt is the offset in the uncompressed data where the dictionary
	// reached MaxDictSize, or -1 if it never filled. Both directions report the same value.
	FrozenAt int
	// LongestSequence is the length in bytes of the longest dictionary entry.
	LongestSequence int

	// Lookups and Probes count hash index lookups and inspected slots (encode only).
	Lookups int
	Probes  int
	// KwKwK counts codes that referred to the entry being defined (decode only).
	KwKwK int
}

// Ratio returns uncompressed over compressed size.
func (s Stats) Ratio(compress bool) Ratio {
	if compress {
		return NewRatio(s.InputBytes, s.OutputBytes)
	}

	return NewRatio(s.OutputBytes, s.InputBytes)
}

// AvgProbes returns the mean number of slots inspected per hash lookup.
func (s Stats) AvgProbes() float64 {
	if s.Lookups == 0 {
		return 0
	}

	return float64(s.Probes) / float64(s.Lookups)
}

func (s Stats) String() string {
	return fmt.Sprintf("in=%d out=%d codes=%d dict=%d frozenAt=%d longest=%d",
		s.InputBytes, s.OutputBytes, s.Codes, s.DictSize, s.FrozenAt, s.LongestSequence)
}

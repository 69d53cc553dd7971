// SPDX-License-Identifier: MIT
// Source: github.com/woozymasta/lzw

package lzw

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
)

// Ratio is uncompressed size divided by compressed size; above 1 means the data shrank.
type Ratio float64

// NewRatio returns original/compressed, or 0 when compressed is 0.
func NewRatio(original, compressed int) Ratio {
	if compressed == 0 {
		return 0
	}

	return Ratio(float64(original) / float64(compressed))
}

func (r Ratio) String() string { return fmt.Sprintf("%.2f", float64(r)) }

// Savings returns the space saved in percent, 1 - compressed/original.
// It is negative when the artifact is larger than its input.
func (r Ratio) Savings() float64 {
	if r == 0 {
		return 0
	}

	return (1 - 1/float64(r)) * 100
}

// FileRatio compares the sizes of an original file and its compressed form.
func FileRatio(original, compressed string) (Ratio, error) {
	s1, err := os.Stat(original)
	if err != nil {
		return 0, errors.WithStack(err)
	}

	s2, err := os.Stat(compressed)
	if err != nil {
		return 0, errors.WithStack(err)
	}

	return NewRatio(int(s1.Size()), int(s2.Size())), nil
}

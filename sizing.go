// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bloom

import (
	"fmt"
	"math"
)

// CalcFPRate calculates and returns the expected false positive rate of a
// filter with the provided number of bits and hash functions after numItems
// distinct keys have been inserted.
//
// The rate is approximated by the well-known formula
//
//	(1 - e^(-k*n/m))^k
//
// where m is the capacity, k is the hash count and n is the number of items.
// It assumes the hash functions behave independently, which is what the
// distinct seeds of a HashFamily approximate.
func CalcFPRate(capacity uint32, hashCount uint8, numItems uint32) float64 {
	if capacity == 0 {
		return 1
	}
	k := float64(hashCount)
	exp := -k * float64(numItems) / float64(capacity)
	return math.Pow(1-math.Exp(exp), k)
}

// OptimalParams calculates the number of bits and hash functions that minimize
// the space needed for a filter to exhibit at most the target false positive
// rate once numItems distinct keys have been inserted.
//
// The number of bits is m = ceil(-n*ln(p) / ln(2)^2) and the number of hash
// functions is k = round(m/n * ln(2)), clamped to [1, MaxHashCount].
//
// An error with kind ErrInvalidConfig is returned when numItems is zero, the
// rate is not in the open interval (0, 1), or the required number of bits
// does not fit in a uint32.
func OptimalParams(numItems uint32, fpRate float64) (uint32, uint8, error) {
	if numItems == 0 {
		str := "number of items must be positive"
		return 0, 0, makeError(ErrInvalidConfig, str)
	}
	if !(fpRate > 0 && fpRate < 1) {
		str := fmt.Sprintf("false positive rate %v is not in the range "+
			"(0, 1)", fpRate)
		return 0, 0, makeError(ErrInvalidConfig, str)
	}

	n := float64(numItems)
	m := math.Ceil(-n * math.Log(fpRate) / (math.Ln2 * math.Ln2))
	if m > math.MaxUint32 {
		str := fmt.Sprintf("a filter for %d items at a false positive rate "+
			"of %v requires %.0f bits which exceeds the maximum of %d",
			numItems, fpRate, m, uint32(math.MaxUint32))
		return 0, 0, makeError(ErrInvalidConfig, str)
	}

	k := math.Round(m / n * math.Ln2)
	if k < 1 {
		k = 1
	} else if k > MaxHashCount {
		k = MaxHashCount
	}
	return uint32(m), uint8(k), nil
}

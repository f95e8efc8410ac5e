// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bloom

import (
	"encoding/binary"
	"fmt"
	"testing"
)

// benchFilters houses the filter parameters used by the benchmarks.
var benchFilters = []struct {
	numItems uint32  // target number of items
	fpRate   float64 // target false positive rate
}{{
	numItems: 1000,
	fpRate:   0.01,
}, {
	numItems: 1000,
	fpRate:   0.0001,
}, {
	numItems: 100000,
	fpRate:   0.001,
}}

// BenchmarkInsert benchmarks inserting items into filters built on each hash
// algorithm for various sizes and false positive rates.
func BenchmarkInsert(b *testing.B) {
	for _, bench := range benchFilters {
		capacity, hashCount, err := OptimalParams(bench.numItems, bench.fpRate)
		if err != nil {
			b.Fatalf("unexpected error: %v", err)
		}
		for _, algo := range allAlgorithms {
			benchName := fmt.Sprintf("%v/items=%d/fprate=%0.4f", algo,
				bench.numItems, bench.fpRate)
			b.Run(benchName, func(b *testing.B) {
				family, _ := NewHashFamilyWithAlgorithm(algo, hashCount)
				filter, _ := NewFilterWithHashFamily(capacity, family)

				b.ResetTimer()
				b.ReportAllocs()
				var data [4]byte
				for i := 0; i < b.N; i++ {
					binary.LittleEndian.PutUint32(data[:], uint32(i))
					filter.InsertBytes(data[:])
				}
			})
		}
	}
}

// BenchmarkMayContain benchmarks membership queries on full filters built on
// each hash algorithm when the item exists in the filter, which is the worst
// case since every bit must be tested.
func BenchmarkMayContain(b *testing.B) {
	for _, bench := range benchFilters {
		capacity, hashCount, err := OptimalParams(bench.numItems, bench.fpRate)
		if err != nil {
			b.Fatalf("unexpected error: %v", err)
		}
		for _, algo := range allAlgorithms {
			benchName := fmt.Sprintf("%v/items=%d/fprate=%0.4f", algo,
				bench.numItems, bench.fpRate)
			b.Run(benchName, func(b *testing.B) {
				// Load the filter so the benchmark is with a full filter.
				family, _ := NewHashFamilyWithAlgorithm(algo, hashCount)
				filter, _ := NewFilterWithHashFamily(capacity, family)
				var data [4]byte
				for i := uint32(0); i < bench.numItems; i++ {
					binary.LittleEndian.PutUint32(data[:], i)
					filter.InsertBytes(data[:])
				}
				binary.LittleEndian.PutUint32(data[:], bench.numItems/2)

				b.ResetTimer()
				b.ReportAllocs()
				for i := 0; i < b.N; i++ {
					filter.MayContainBytes(data[:])
				}
			})
		}
	}
}

// BenchmarkNewFilter benchmarks creating new filters of various sizes.
func BenchmarkNewFilter(b *testing.B) {
	var noElide *Filter
	for _, bench := range benchFilters {
		benchName := fmt.Sprintf("items=%d/fprate=%0.4f", bench.numItems,
			bench.fpRate)
		b.Run(benchName, func(b *testing.B) {
			b.ResetTimer()
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				noElide, _ = NewFilterFPRate(bench.numItems, bench.fpRate)
			}
		})
	}
	_ = noElide
}

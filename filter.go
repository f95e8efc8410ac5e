// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bloom

import (
	"fmt"
	"sync"
)

// Filter implements a classic Bloom filter that is safe for concurrent access.
//
// A Bloom filter is a probabilistic data structure for set membership.  Each
// key is mapped to one bit per hash function of an owned hash family and
// inserting the key sets all of those bits.  A query reports the key as
// possibly present only when every one of its bits is set.
//
// It is therefore free from false negatives: once a key is inserted, queries
// for it always return true.  Keys that were never inserted may also return
// true when their bits happen to have been set by other keys.  The rate at
// which that happens depends on the capacity, the number of hash functions and
// the number of distinct keys inserted.  The filter does not track the number
// of insertions, so callers that need a bound on the false positive rate
// should size the filter up front with OptimalParams or NewFilterFPRate.
//
// Bits are never cleared, so there is no way to remove a key.
type Filter struct {
	// capacity is the number of bits in the filter.  Each hash output is
	// reduced modulo this value, so every derived index is always in range
	// for the store.
	capacity uint32

	// hashes is the owned family of hash functions used to derive the bit
	// indices for a key.  It is immutable, so it is used without holding
	// the mutex.
	hashes *HashFamily

	// mtx protects the bits in the store below.  Inserts only ever set bits,
	// so there is no ordering to preserve between concurrent inserts, but
	// each individual bit read must see a complete write.
	mtx   sync.RWMutex
	store *BitStore
}

// NewFilterWithHashFamily returns a Bloom filter of capacity bits that derives
// bit indices from the provided hash family.  The filter takes ownership of
// the family, which is safe since families are immutable.
//
// An error with kind ErrInvalidConfig is returned when the capacity is zero,
// the family is nil or empty, or the family uses the Polynomial algorithm and
// the capacity exceeds MaxPolynomialCapacity.
func NewFilterWithHashFamily(capacity uint32, family *HashFamily) (*Filter, error) {
	if capacity == 0 {
		str := "filter capacity must be positive"
		return nil, makeError(ErrInvalidConfig, str)
	}
	if family == nil || family.HashCount() == 0 {
		str := "filter requires a hash family with at least one hash function"
		return nil, makeError(ErrInvalidConfig, str)
	}
	if family.Algorithm() == Polynomial && capacity > MaxPolynomialCapacity {
		str := fmt.Sprintf("filter capacity %d exceeds the maximum of %d "+
			"for %s hash functions", capacity, MaxPolynomialCapacity,
			Polynomial)
		return nil, makeError(ErrInvalidConfig, str)
	}
	store, err := NewBitStore(capacity)
	if err != nil {
		return nil, err
	}

	log.Debugf("Created bloom filter with %d bits and %d %s hash functions "+
		"(%d bytes)", capacity, family.HashCount(), family.Algorithm(),
		store.Size())
	return &Filter{
		capacity: capacity,
		hashes:   family,
		store:    store,
	}, nil
}

// NewFilter returns a Bloom filter of capacity bits that uses hashCount
// SipHash-based hash functions with fixed seeds.  Two filters created with the
// same parameters and fed the same keys are therefore identical.
//
// An error with kind ErrInvalidConfig is returned when either the capacity or
// the hash count is zero.
func NewFilter(capacity uint32, hashCount uint8) (*Filter, error) {
	if capacity == 0 {
		str := "filter capacity must be positive"
		return nil, makeError(ErrInvalidConfig, str)
	}
	family, err := NewHashFamily(hashCount)
	if err != nil {
		return nil, err
	}
	return NewFilterWithHashFamily(capacity, family)
}

// NewFilterFPRate returns a Bloom filter sized such that it exhibits at most
// the target false positive rate once numItems distinct keys have been
// inserted.  See OptimalParams for details.
//
// An error with kind ErrInvalidConfig is returned when numItems is zero, the
// rate is not in the open interval (0, 1), or the required number of bits
// does not fit in a uint32.
func NewFilterFPRate(numItems uint32, fpRate float64) (*Filter, error) {
	capacity, hashCount, err := OptimalParams(numItems, fpRate)
	if err != nil {
		return nil, err
	}
	return NewFilter(capacity, hashCount)
}

// Capacity returns the number of bits in the filter.
//
// This function is safe for concurrent access.
func (f *Filter) Capacity() uint32 {
	return f.capacity
}

// HashCount returns the number of hash functions used to derive bit indices.
//
// This function is safe for concurrent access.
func (f *Filter) HashCount() uint8 {
	return f.hashes.HashCount()
}

// Algorithm returns the hash algorithm of the filter's hash family.
//
// This function is safe for concurrent access.
func (f *Filter) Algorithm() HashAlgorithm {
	return f.hashes.Algorithm()
}

// Size returns the total bytes occupied by the filter data plus overhead.
//
// This function is safe for concurrent access.
func (f *Filter) Size() int {
	const overhead = 88
	return f.store.Size() + len(f.hashes.seeds)*8 + overhead
}

// BitsSet returns the number of bits currently set in the filter.  Dividing it
// by the capacity gives the fill ratio, which is a reasonable proxy for how
// saturated the filter has become.
//
// This function is safe for concurrent access.
func (f *Filter) BitsSet() uint32 {
	f.mtx.RLock()
	n := f.store.Count()
	f.mtx.RUnlock()
	return n
}

// InsertBytes adds the provided data to the filter.  Inserting the same data
// more than once has no additional effect.
//
// This function is safe for concurrent access.
func (f *Filter) InsertBytes(data []byte) {
	// The indices are derived before acquiring the lock since hashing is pure
	// and is the expensive part of the operation.
	var buf [MaxHashCount]uint32
	indices := f.hashes.appendIndices(buf[:0], data, f.capacity)

	f.mtx.Lock()
	for _, idx := range indices {
		f.store.setBit(idx)
	}
	f.mtx.Unlock()
}

// Insert adds the provided key to the filter.  Inserting the same key more
// than once has no additional effect.
//
// The empty string is a valid key.
//
// This function is safe for concurrent access.
func (f *Filter) Insert(key string) {
	f.InsertBytes([]byte(key))
}

// MayContainBytes returns the result of a probabilistic membership test of the
// provided data.  A false result means the data was definitely never inserted
// while a true result means it possibly was.
//
// This function is safe for concurrent access.
func (f *Filter) MayContainBytes(data []byte) bool {
	var buf [MaxHashCount]uint32
	indices := f.hashes.appendIndices(buf[:0], data, f.capacity)

	f.mtx.RLock()
	defer f.mtx.RUnlock()
	for _, idx := range indices {
		if !f.store.isSet(idx) {
			return false
		}
	}
	return true
}

// MayContain returns the result of a probabilistic membership test of the
// provided key.  A false result means the key was definitely never inserted
// while a true result means it possibly was.
//
// This function is safe for concurrent access.
func (f *Filter) MayContain(key string) bool {
	return f.MayContainBytes([]byte(key))
}

// String returns a summary of the filter parameters.
func (f *Filter) String() string {
	return fmt.Sprintf("bloom filter (%d bits, %d %s hash functions)",
		f.capacity, f.HashCount(), f.Algorithm())
}

// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bloom

import (
	"fmt"
	"math/bits"

	"github.com/jrick/bitset"
)

// BitStore is a fixed-length array of bits addressed by index.  The bits are
// packed eight to a byte so a store of capacity n occupies ceil(n/8) bytes.
//
// The capacity never changes after creation.
//
// A BitStore is not safe for concurrent mutation on its own.  Filter
// serializes access to the store it owns.
type BitStore struct {
	capacity uint32
	bits     bitset.Bytes
}

// NewBitStore returns a bit store that holds capacity bits, all of which are
// initially unset.
//
// An error with kind ErrInvalidSize is returned when capacity is zero.
func NewBitStore(capacity uint32) (*BitStore, error) {
	if capacity == 0 {
		str := "bit store capacity must be positive"
		return nil, makeError(ErrInvalidSize, str)
	}
	return &BitStore{
		capacity: capacity,
		bits:     bitset.NewBytes(int(capacity)),
	}, nil
}

// Capacity returns the number of bits the store holds.
func (s *BitStore) Capacity() uint32 {
	return s.capacity
}

// Size returns the number of bytes used to hold the bits.
func (s *BitStore) Size() int {
	return len(s.bits)
}

// checkIndex returns an error when the index does not refer to a bit within
// the store.
func (s *BitStore) checkIndex(index uint32) error {
	if index >= s.capacity {
		str := fmt.Sprintf("bit index %d is out of range for a store with "+
			"capacity %d", index, s.capacity)
		return makeError(ErrIndexOutOfRange, str)
	}
	return nil
}

// Get returns whether the bit at the provided index is set.
//
// An error with kind ErrIndexOutOfRange is returned when the index is not
// less than the capacity.
func (s *BitStore) Get(index uint32) (bool, error) {
	if err := s.checkIndex(index); err != nil {
		return false, err
	}
	return s.isSet(index), nil
}

// Set sets or clears the bit at the provided index according to value.
//
// An error with kind ErrIndexOutOfRange is returned when the index is not
// less than the capacity.  The store is unchanged in that case.
func (s *BitStore) Set(index uint32, value bool) error {
	if err := s.checkIndex(index); err != nil {
		return err
	}
	if value {
		s.bits.Set(int(index))
	} else {
		s.bits.Unset(int(index))
	}
	return nil
}

// Count returns the number of bits that are set.
func (s *BitStore) Count() uint32 {
	var n int
	for _, b := range []byte(s.bits) {
		n += bits.OnesCount8(b)
	}
	return uint32(n)
}

// isSet returns whether the bit at the provided index is set without any
// bounds checking beyond the one the runtime performs.
//
// The caller MUST ensure index < capacity.
func (s *BitStore) isSet(index uint32) bool {
	return s.bits.Get(int(index))
}

// setBit unconditionally sets the bit at the provided index.
//
// The caller MUST ensure index < capacity.
func (s *BitStore) setBit(index uint32) {
	s.bits.Set(int(index))
}

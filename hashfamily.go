// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bloom

import (
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/dchest/siphash"
	"github.com/decred/dcrd/crypto/rand"
	"github.com/spaolacci/murmur3"
)

// HashAlgorithm identifies the keyed hash primitive a HashFamily runs once per
// seed in order to produce its independent hash functions.
type HashAlgorithm uint8

const (
	// SipHash uses SipHash-2-4 keyed by the seed.  This is the default.
	SipHash HashAlgorithm = iota

	// XXHash uses the 64-bit xxHash digest seeded by the seed.
	XXHash

	// Murmur3 uses the 64-bit MurmurHash3 (x64_128 truncated) seeded by the
	// seed folded to 32 bits.
	Murmur3

	// Polynomial uses a rolling polynomial hash over the Unicode code points
	// of the key reduced modulo 1000000007 after every step.  The low 32 bits
	// of the seed pick the initial accumulator and the high 32 bits pick the
	// multiplier.  Its outputs are always less than 1000000007, so filters
	// built on it are limited to MaxPolynomialCapacity bits.  It is the
	// slowest and weakest of the choices and exists mostly for reproducing
	// results across implementations that only have integer arithmetic
	// available.
	Polynomial

	// numHashAlgorithms is the number of supported hash algorithms.
	numHashAlgorithms
)

// hashAlgorithmStrings maps each HashAlgorithm to the name used to select it.
var hashAlgorithmStrings = [numHashAlgorithms]string{
	SipHash:    "siphash",
	XXHash:     "xxhash",
	Murmur3:    "murmur3",
	Polynomial: "polynomial",
}

// String returns the HashAlgorithm as a human-readable name.
func (a HashAlgorithm) String() string {
	if a < numHashAlgorithms {
		return hashAlgorithmStrings[a]
	}
	return fmt.Sprintf("Unknown HashAlgorithm (%d)", uint8(a))
}

// ParseHashAlgorithm returns the hash algorithm with the provided name.  The
// comparison is case insensitive.
func ParseHashAlgorithm(name string) (HashAlgorithm, error) {
	for a, s := range hashAlgorithmStrings {
		if strings.EqualFold(name, s) {
			return HashAlgorithm(a), nil
		}
	}
	str := fmt.Sprintf("unknown hash algorithm %q", name)
	return 0, makeError(ErrInvalidConfig, str)
}

const (
	// MaxHashCount is the maximum number of hash functions a family may hold.
	MaxHashCount = 255

	// MaxPolynomialCapacity is the maximum number of bits a filter using the
	// Polynomial algorithm may have.  Every bit at or above it would be
	// unreachable.
	MaxPolynomialCapacity = polyModulus

	// polyModulus is the prime the polynomial hash reduces by after every
	// step.  Since both the accumulator and the multiplier are less than it,
	// their product plus a code point never exceeds 2^63.
	polyModulus = 1000000007

	// fixedSeedBase is the starting state of the splitmix64 sequence used to
	// derive the fixed seeds.
	fixedSeedBase = 0x6a09e667f3bcc908

	// sipKeyMask is mixed into the seed to form the second SipHash key.
	sipKeyMask = 0xa5a5a5a5a5a5a5a5
)

// splitMix64 advances the provided state and returns the next output of the
// splitmix64 generator.  Consecutive outputs are distinct since the
// finalizer is a bijection over distinct states.
func splitMix64(state *uint64) uint64 {
	*state += 0x9e3779b97f4a7c15
	z := *state
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

// effectiveSeed returns the portion of the seed the algorithm actually
// consumes.  Two seeds with the same effective seed produce the same hash
// function, so families reject them.
func effectiveSeed(algo HashAlgorithm, seed uint64) uint64 {
	switch algo {
	case Murmur3:
		return uint64(murmurSeed(seed))
	case Polynomial:
		return polynomialInit(seed)
	}
	return seed
}

// polynomialInit returns the initial accumulator of the polynomial hash for
// the seed.
func polynomialInit(seed uint64) uint64 {
	return uint64(uint32(seed)) % polyModulus
}

// murmurSeed folds a 64-bit seed into the 32-bit seed murmur3 accepts.
func murmurSeed(seed uint64) uint32 {
	return uint32(seed) ^ uint32(seed>>32)
}

// polynomialHash computes the seeded rolling hash
//
//	h = (h*mult + codepoint) mod 1000000007
//
// over the code points of data, starting from h = (seed & 0xffffffff) mod p
// with mult = 2 + (seed >> 32) mod (p - 3).  Invalid UTF-8 sequences
// contribute U+FFFD.
func polynomialHash(seed uint64, data []byte) uint64 {
	h := polynomialInit(seed)
	mult := 2 + (seed>>32)%(polyModulus-3)
	for _, r := range string(data) {
		h = (h*mult + uint64(r)) % polyModulus
	}
	return h
}

// hashWithSeed runs the hash algorithm over data with the provided seed.
func hashWithSeed(algo HashAlgorithm, seed uint64, data []byte) uint64 {
	switch algo {
	case XXHash:
		d := xxhash.NewWithSeed(seed)
		d.Write(data)
		return d.Sum64()
	case Murmur3:
		return murmur3.Sum64WithSeed(data, murmurSeed(seed))
	case Polynomial:
		return polynomialHash(seed, data)
	}
	return siphash.Hash(seed, seed^sipKeyMask, data)
}

// HashFamily is an immutable, ordered set of deterministic hash functions
// mapping keys to unsigned integers.  Each function is the family's hash
// algorithm keyed with its own seed, so every function is a pure function of
// the key and that seed and no state is shared between them.
//
// A HashFamily is safe for concurrent access.
type HashFamily struct {
	algo  HashAlgorithm
	seeds []uint64
}

// generateSeeds returns count seeds with distinct effective seeds for the
// algorithm, drawing candidates from next.
func generateSeeds(algo HashAlgorithm, count uint8, next func() uint64) []uint64 {
	seeds := make([]uint64, 0, count)
	seen := make(map[uint64]struct{}, count)
	for len(seeds) < int(count) {
		seed := next()
		eff := effectiveSeed(algo, seed)
		if _, ok := seen[eff]; ok {
			continue
		}
		seen[eff] = struct{}{}
		seeds = append(seeds, seed)
	}
	return seeds
}

// checkFamilyParams returns an error when the algorithm is unknown or the
// hash count is zero.
func checkFamilyParams(algo HashAlgorithm, hashCount uint8) error {
	if algo >= numHashAlgorithms {
		str := fmt.Sprintf("unsupported hash algorithm %d", uint8(algo))
		return makeError(ErrInvalidConfig, str)
	}
	if hashCount == 0 {
		str := "hash family must contain at least one hash function"
		return makeError(ErrInvalidConfig, str)
	}
	return nil
}

// NewHashFamilyWithAlgorithm returns a hash family of hashCount functions
// built on the provided algorithm.  The seeds are fixed, so every family
// created with the same parameters produces identical hashes, including
// across processes.
//
// An error with kind ErrInvalidConfig is returned when hashCount is zero or
// the algorithm is unknown.
func NewHashFamilyWithAlgorithm(algo HashAlgorithm, hashCount uint8) (*HashFamily, error) {
	if err := checkFamilyParams(algo, hashCount); err != nil {
		return nil, err
	}
	state := uint64(fixedSeedBase)
	next := func() uint64 { return splitMix64(&state) }
	return &HashFamily{algo: algo, seeds: generateSeeds(algo, hashCount, next)}, nil
}

// NewHashFamily returns a SipHash-based hash family of hashCount functions
// with fixed seeds.
//
// An error with kind ErrInvalidConfig is returned when hashCount is zero.
func NewHashFamily(hashCount uint8) (*HashFamily, error) {
	return NewHashFamilyWithAlgorithm(SipHash, hashCount)
}

// NewRandomHashFamily returns a hash family of hashCount functions built on
// the provided algorithm with seeds drawn from a cryptographically secure
// random source.  The family is deterministic for its lifetime, but families
// created separately produce unrelated sets of false positives.
//
// An error with kind ErrInvalidConfig is returned when hashCount is zero or
// the algorithm is unknown.
func NewRandomHashFamily(algo HashAlgorithm, hashCount uint8) (*HashFamily, error) {
	if err := checkFamilyParams(algo, hashCount); err != nil {
		return nil, err
	}
	return &HashFamily{algo: algo, seeds: generateSeeds(algo, hashCount, rand.Uint64)}, nil
}

// NewHashFamilyWithSeeds returns a hash family with one function per provided
// seed, in order.
//
// An error with kind ErrInvalidConfig is returned when the algorithm is
// unknown, no seeds or more than MaxHashCount seeds are provided, or two
// seeds would produce the same function for the algorithm.
func NewHashFamilyWithSeeds(algo HashAlgorithm, seeds []uint64) (*HashFamily, error) {
	if len(seeds) > MaxHashCount {
		str := fmt.Sprintf("hash family can't contain more than %d hash "+
			"functions (got %d seeds)", MaxHashCount, len(seeds))
		return nil, makeError(ErrInvalidConfig, str)
	}
	if err := checkFamilyParams(algo, uint8(len(seeds))); err != nil {
		return nil, err
	}
	seen := make(map[uint64]int, len(seeds))
	for i, seed := range seeds {
		eff := effectiveSeed(algo, seed)
		if prev, ok := seen[eff]; ok {
			str := fmt.Sprintf("seeds %d and %d produce the same %s hash "+
				"function", prev, i, algo)
			return nil, makeError(ErrInvalidConfig, str)
		}
		seen[eff] = i
	}
	return &HashFamily{
		algo:  algo,
		seeds: append([]uint64(nil), seeds...),
	}, nil
}

// HashCount returns the number of hash functions in the family.
func (h *HashFamily) HashCount() uint8 {
	return uint8(len(h.seeds))
}

// Algorithm returns the hash algorithm the family is built on.
func (h *HashFamily) Algorithm() HashAlgorithm {
	return h.algo
}

// Seeds returns a copy of the seeds of the hash functions in order.
func (h *HashFamily) Seeds() []uint64 {
	return append([]uint64(nil), h.seeds...)
}

// Hash returns the raw output of the hash function at the provided index for
// the key.
//
// An error with kind ErrIndexOutOfRange is returned when the index is not
// less than the hash count.
func (h *HashFamily) Hash(key string, index uint8) (uint64, error) {
	if int(index) >= len(h.seeds) {
		str := fmt.Sprintf("hash function index %d is out of range for a "+
			"family of %d", index, len(h.seeds))
		return 0, makeError(ErrIndexOutOfRange, str)
	}
	return hashWithSeed(h.algo, h.seeds[index], []byte(key)), nil
}

// HashAll returns the output of every hash function in the family for the
// key, in order, each reduced to the range [0, modulus).
//
// An error with kind ErrInvalidConfig is returned when modulus is zero.
func (h *HashFamily) HashAll(key string, modulus uint32) ([]uint32, error) {
	if modulus == 0 {
		str := "hash modulus must be positive"
		return nil, makeError(ErrInvalidConfig, str)
	}
	return h.appendIndices(make([]uint32, 0, len(h.seeds)), []byte(key),
		modulus), nil
}

// appendIndices appends the reduced output of every hash function for data to
// dst and returns the extended slice.
//
// The caller MUST ensure modulus is not zero.
func (h *HashFamily) appendIndices(dst []uint32, data []byte, modulus uint32) []uint32 {
	m := uint64(modulus)
	for _, seed := range h.seeds {
		dst = append(dst, uint32(hashWithSeed(h.algo, seed, data)%m))
	}
	return dst
}

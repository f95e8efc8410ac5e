// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package bloom provides a classic Bloom filter built from a packed bit store and
a family of independently seeded hash functions.

A Bloom filter is a space-efficient probabilistic data structure used to test
set membership with a tunable false positive rate while simultaneously
preventing false negatives.  In other words, keys that were inserted will always
match, but keys that were never inserted will also sometimes match.  Queries
therefore answer either "definitely absent" or "possibly present".

The package is composed of three parts:

  - BitStore is a fixed-length array of bits packed eight to a byte
  - HashFamily is an immutable, ordered set of hash functions, each of which is
    a keyed hash algorithm run with its own seed
  - Filter owns one of each and derives one bit index per hash function by
    reducing each hash modulo the number of bits

# Hash Functions

A filter is only as good as the independence of its hash functions.  Deriving
several "hash functions" from a single computation with constant offsets
appended silently reduces the effective number of hash functions and inflates
the false positive rate.  Every hash function of a HashFamily is instead the
full hash algorithm run with a distinct seed, and families refuse seeds that
would produce the same function.

The supported algorithms are SipHash-2-4 (the default), xxHash, MurmurHash3
and a polynomial rolling hash that is reduced modulo 1000000007 at every step
so it is reproducible with plain 64-bit integer arithmetic.

Families created with NewHashFamily or NewHashFamilyWithAlgorithm use fixed
seeds, so filters built with the same parameters and fed the same keys are
identical.  NewRandomHashFamily draws the seeds from a secure random source for
applications that prefer each filter to have a unique set of false positives.

# Sizing

The filter does not track how many keys were inserted and never reports a
false positive rate itself.  Callers are expected to size it up front.
OptimalParams calculates the number of bits and hash functions for a target
number of items and false positive rate, NewFilterFPRate creates a filter with
those parameters, and CalcFPRate estimates the rate of existing parameters.

# Errors

The errors returned by this package are of type bloom.Error.  This allows the
caller to programmatically determine the specific error by examining the
ErrorKind field of the type asserted bloom.Error while still providing rich
error messages with contextual information.  The kinds can also be checked with
errors.Is, for example errors.Is(err, bloom.ErrInvalidConfig).
*/
package bloom

// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bloom

// ErrorKind identifies a kind of error.  It has full support for errors.Is
// and errors.As, so the caller can directly check against an error kind when
// determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific ErrorKind.
const (
	// ErrInvalidSize indicates a bit store was requested with a capacity that
	// is not positive.
	ErrInvalidSize = ErrorKind("ErrInvalidSize")

	// ErrInvalidConfig indicates a filter or hash family was requested with
	// parameters that can't produce a usable structure, such as a zero
	// capacity, zero hash functions, duplicate seeds, or an unknown hash
	// algorithm.
	ErrInvalidConfig = ErrorKind("ErrInvalidConfig")

	// ErrIndexOutOfRange indicates a bit or hash function index outside of
	// the valid range was provided.
	ErrIndexOutOfRange = ErrorKind("ErrIndexOutOfRange")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies an error related to bloom filter construction or bit
// access.  It has full support for errors.Is and errors.As, so the caller can
// ascertain the specific reason for the error by checking the underlying
// error.
type Error struct {
	Err         error
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// Unwrap returns the underlying wrapped error.
func (e Error) Unwrap() error {
	return e.Err
}

// makeError creates an Error given a set of arguments.
func makeError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}

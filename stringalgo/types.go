// SPDX-License-Identifier: MIT

package stringalgo

import "errors"

var (
	// ErrEmptyPattern indicates a search with an empty pattern.
	ErrEmptyPattern = errors.New("stringalgo: empty pattern")

	// ErrBadModulus indicates a hashing modulus below 2 or a base outside [1, mod).
	ErrBadModulus = errors.New("stringalgo: invalid hash parameters")

	// ErrBadRange indicates a substring range outside the hashed string.
	ErrBadRange = errors.New("stringalgo: substring range out of bounds")

	// ErrSuffixArrayMismatch indicates an LCP request whose suffix array does not fit the string.
	ErrSuffixArrayMismatch = errors.New("stringalgo: suffix array does not match string")
)

const (
	// DefaultBase and DefaultMod parameterize NewHasher's polynomial hash.
	DefaultBase uint64 = 911382323
	DefaultMod  uint64 = 1_000_000_007
)

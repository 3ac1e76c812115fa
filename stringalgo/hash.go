// SPDX-License-Identifier: MIT

package stringalgo

import (
	"fmt"
	"math/bits"
)

// Hasher answers substring hash queries in O(1) after O(n) preprocessing.
// The hash of s[a:b] is (s[a]·B^(b-a-1) + ... + s[b-1]·B^0) mod M.
//
// Equal substrings always hash equally; unequal ones collide with
// probability about 1/M, so callers that cannot tolerate a false positive
// must confirm matches directly.
type Hasher struct {
	base, mod uint64
	prefix    []uint64 // prefix[i] = hash(s[:i])
	pow       []uint64 // pow[i] = base^i mod M
}

// NewHasher hashes s with DefaultBase and DefaultMod.
func NewHasher(s string) *Hasher {
	h, _ := NewHasherWith(s, DefaultBase, DefaultMod)

	return h
}

// NewHasherWith hashes s with the given base and modulus.
// Returns ErrBadModulus unless mod >= 2 and 1 <= base < mod.
func NewHasherWith(s string, base, mod uint64) (*Hasher, error) {
	if mod < 2 || base == 0 || base >= mod {
		return nil, fmt.Errorf("%w: base=%d mod=%d", ErrBadModulus, base, mod)
	}
	n := len(s)
	h := &Hasher{
		base:   base,
		mod:    mod,
		prefix: make([]uint64, n+1),
		pow:    make([]uint64, n+1),
	}
	h.pow[0] = 1 % mod
	for i := 0; i < n; i++ {
		h.prefix[i+1] = (mulMod(h.prefix[i], base, mod) + uint64(s[i])) % mod
		h.pow[i+1] = mulMod(h.pow[i], base, mod)
	}

	return h, nil
}

// Len returns the length of the hashed string.
func (h *Hasher) Len() int { return len(h.prefix) - 1 }

// Hash returns the hash of s[a:b].
func (h *Hasher) Hash(a, b int) (uint64, error) {
	if a < 0 || b > h.Len() || a > b {
		return 0, fmt.Errorf("%w: [%d,%d) of %d", ErrBadRange, a, b, h.Len())
	}
	sub := mulMod(h.prefix[a], h.pow[b-a], h.mod)

	return (h.prefix[b] + h.mod - sub) % h.mod, nil
}

// Equal reports whether s[a:a+n] and s[b:b+n] hash equally.
func (h *Hasher) Equal(a, b, n int) (bool, error) {
	x, err := h.Hash(a, a+n)
	if err != nil {
		return false, err
	}
	y, err := h.Hash(b, b+n)
	if err != nil {
		return false, err
	}

	return x == y, nil
}

// HashString hashes a whole string with the same parameters as h, so it
// can be compared with h.Hash results.
func (h *Hasher) HashString(p string) uint64 {
	var v uint64
	for i := 0; i < len(p); i++ {
		v = (mulMod(v, h.base, h.mod) + uint64(p[i])) % h.mod
	}

	return v
}

func mulMod(a, b, m uint64) uint64 {
	hi, lo := bits.Mul64(a, b)

	return bits.Rem64(hi, lo, m)
}

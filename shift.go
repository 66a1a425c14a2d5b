// Copyright 2021 The bit Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package bitvec

import (
	"github.com/bpowers/bitvec/internal/wordbits"
)

// Rshift shifts every bit of v toward bit 0 by n mod WordSize places,
// filling the top with zeros.  It returns the bits shifted out below
// bit 0, with the lowest shifted-out bit in bit 0 of the result.
func (v *Vector[B]) Rshift(n int) uint32 {
	s := uint(n) & wordbits.IndexMask
	if s == 0 {
		return 0
	}
	lowMask := uint32(1)<<s - 1
	var carry uint32
	for i := len(v.words) - 1; i >= 0; i-- {
		w := v.words[i]
		v.words[i] = w>>s | carry<<(WordSize-s)
		carry = w & lowMask
	}
	return carry
}

// Lshift shifts every bit of v away from bit 0 by n mod WordSize places,
// filling the bottom with zeros.  It returns the bits shifted out past
// the top of v, read most significant first, so the old bit Len()-1 is
// the highest bit of the result.
func (v *Vector[B]) Lshift(n int) uint32 {
	s := uint(n) & wordbits.IndexMask
	if s == 0 {
		return 0
	}
	var shiftedOff uint32
	for i := v.nbits - 1; i >= v.nbits-int(s) && i >= 0; i-- {
		shiftedOff = shiftedOff<<1 | uint32(v.Get(i))
	}
	var carry uint32
	for i := range v.words {
		w := v.words[i]
		v.words[i] = w<<s | carry
		carry = w >> (WordSize - s)
	}
	v.trimGhostBits()
	return shiftedOff
}

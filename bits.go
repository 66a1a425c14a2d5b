// Copyright 2021 The bit Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package bitvec

import (
	"github.com/bpowers/bitvec/internal/wordbits"
	"github.com/bpowers/bitvec/internal/zero"
)

// BitOn sets bit i to 1.
func (v *Vector[B]) BitOn(i int) {
	v.checkIndex(i)
	wordOff, bitOff := wordbits.Offsets(i)
	v.words[wordOff] |= 1 << bitOff
}

// BitOff sets bit i to 0.
func (v *Vector[B]) BitOff(i int) {
	v.checkIndex(i)
	wordOff, bitOff := wordbits.Offsets(i)
	v.words[wordOff] &^= 1 << bitOff
}

// Flip toggles bit i.
func (v *Vector[B]) Flip(i int) {
	v.checkIndex(i)
	wordOff, bitOff := wordbits.Offsets(i)
	v.words[wordOff] ^= 1 << bitOff
}

// Set sets bit i to 1 if on is true, and to 0 otherwise.
func (v *Vector[B]) Set(i int, on bool) {
	if on {
		v.BitOn(i)
	} else {
		v.BitOff(i)
	}
}

// Get returns bit i as 0 or 1.
func (v *Vector[B]) Get(i int) int {
	v.checkIndex(i)
	wordOff, bitOff := wordbits.Offsets(i)
	return int(v.words[wordOff]>>bitOff) & 1
}

// IsOn reports whether bit i is 1.
func (v *Vector[B]) IsOn(i int) bool {
	return v.Get(i) == 1
}

// IsOff reports whether bit i is 0.
func (v *Vector[B]) IsOff(i int) bool {
	return v.Get(i) == 0
}

// Clear sets every bit to 0.
func (v *Vector[B]) Clear() {
	zero.Words(v.words)
}

// SetAll sets every bit to 1.
func (v *Vector[B]) SetAll() {
	zero.Fill(v.words, wordbits.AllOnes)
	v.trimGhostBits()
}

// Cardinality returns the number of bits set to 1.
func (v *Vector[B]) Cardinality() int {
	n := 0
	for _, w := range v.words {
		n += wordbits.Popcount(w)
	}
	return n
}

// NextSetBit returns the index of the first bit at or after from that
// is 1, or NotFound.  A from outside [0, Len()) returns NotFound.
func (v *Vector[B]) NextSetBit(from int) int {
	if from < 0 || from >= v.nbits {
		return NotFound
	}
	wordOff := wordbits.Index(from)
	word := v.words[wordOff] & wordbits.HighMask(from)
	for {
		if word != 0 {
			// padding bits are always 0, so a set bit is below Len()
			return wordOff*WordSize + wordbits.TrailingZeros(word)
		}
		wordOff++
		if wordOff == len(v.words) {
			return NotFound
		}
		word = v.words[wordOff]
	}
}

// NextClearBit returns the index of the first bit at or after from that
// is 0, or NotFound.  A from outside [0, Len()) returns NotFound, and the
// padding above Len() never matches.
func (v *Vector[B]) NextClearBit(from int) int {
	if from < 0 || from >= v.nbits {
		return NotFound
	}
	wordOff := wordbits.Index(from)
	word := ^v.words[wordOff] & wordbits.HighMask(from)
	for {
		if word != 0 {
			i := wordOff*WordSize + wordbits.TrailingZeros(word)
			if i >= v.nbits {
				return NotFound
			}
			return i
		}
		wordOff++
		if wordOff == len(v.words) {
			return NotFound
		}
		word = ^v.words[wordOff]
	}
}

// Slice returns a new vector holding a copy of the bits in [from, to).
// A Checked vector panics unless 0 <= from < to <= Len().  An Unchecked
// vector does not validate: an empty range (to <= from) yields the default
// 32-bit clear vector, since no vector has zero length.
func (v *Vector[B]) Slice(from, to int) *Vector[B] {
	var b B
	if b.enabled() {
		if from < 0 || from >= v.nbits {
			panic(&IndexError{Index: from, Limit: v.nbits})
		}
		if to <= from || to > v.nbits {
			panic(&IndexError{Index: to, Limit: v.nbits + 1})
		}
	}
	s := NewOf[B](to - from)
	for i := from; i < to; i++ {
		if v.IsOn(i) {
			s.BitOn(i - from)
		}
	}
	return s
}

// ForEach calls fn for every bit from the least significant to the
// most significant, stopping early if fn returns false.
func (v *Vector[B]) ForEach(fn func(i int, on bool) bool) {
	for i := 0; i < v.nbits; i++ {
		if !fn(i, v.IsOn(i)) {
			return
		}
	}
}

// ForEachMSB is like ForEach but visits the most significant bit first.
func (v *Vector[B]) ForEachMSB(fn func(i int, on bool) bool) {
	for i := v.nbits - 1; i >= 0; i-- {
		if !fn(i, v.IsOn(i)) {
			return
		}
	}
}

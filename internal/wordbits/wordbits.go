// Copyright 2021 The bit Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

// Package wordbits contains the arithmetic for addressing bits packed
// into 32-bit words.
package wordbits

import (
	"math/bits"
)

const (
	// AddressBits is the number of low bits of a bit index that select
	// a bit within its word.
	AddressBits = 5
	// Size is the number of bits per word.
	Size = 1 << AddressBits
	// IndexMask extracts the in-word offset from a bit index.
	IndexMask = Size - 1
	// AllOnes is a word with every bit set.
	AllOnes = ^uint32(0)
)

// Index returns the index of the word containing bit.
func Index(bit int) int {
	return bit >> AddressBits
}

// Offsets returns the word index and the in-word bit offset of bit.
func Offsets(bit int) (wordOff int, bitOff uint) {
	wordOff = bit >> AddressBits
	bitOff = uint(bit) & IndexMask
	return
}

// CountFor returns the minimal number of words needed to hold nbits.
// nbits must be at least 1.
func CountFor(nbits int) int {
	return Index(nbits-1) + 1
}

// Popcount returns the number of set bits in w.
func Popcount(w uint32) int {
	return bits.OnesCount32(w)
}

// TrailingZeros returns the number of zero bits below the lowest set
// bit of w.  It agrees with Popcount((w^(w-1))>>1) for every non-zero w;
// callers must not rely on the result for w == 0.
func TrailingZeros(w uint32) int {
	return bits.TrailingZeros32(w)
}

// HighMask selects the bits of a word at or above from's in-word offset.
func HighMask(from int) uint32 {
	return AllOnes << (uint(from) & IndexMask)
}

// LowMask selects the bits of a word below to's in-word offset.  A
// word-aligned to selects the full word.
func LowMask(to int) uint32 {
	return AllOnes >> (uint(-to) & IndexMask)
}

// Copyright 2021 The bit Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

// Package bitvec implements a packed, resizable vector of bits.
//
// Bits are stored little-endian in 32-bit words: bit 0 is the least
// significant bit of word 0.  A Vector has a logical length, Len(), that
// need not be a multiple of the word size; the unused high bits of the
// last word always read as zero.
//
// A Vector is not safe for concurrent mutation.
package bitvec

import (
	"github.com/bpowers/bitvec/internal/wordbits"
	"github.com/bpowers/bitvec/internal/zero"
)

// WordSize is the number of bits packed into each storage word.
const WordSize = wordbits.Size

// NotFound is returned by the search methods when no bit matches.
const NotFound = -1

// Vector is a packed sequence of bits.  The type parameter selects the
// index validation policy; see Bounds.
type Vector[B Bounds] struct {
	nbits int
	words []uint32
}

// New returns a zeroed, bounds-checked vector of nbits bits.  An nbits
// smaller than 1 selects a single word of WordSize bits.
func New(nbits int) *Vector[Checked] {
	return NewOf[Checked](nbits)
}

// NewUnchecked returns a zeroed vector of nbits bits that does not
// validate indices on its hot paths.
func NewUnchecked(nbits int) *Vector[Unchecked] {
	return NewOf[Unchecked](nbits)
}

// NewOf returns a zeroed vector of nbits bits with the bounds policy B.
func NewOf[B Bounds](nbits int) *Vector[B] {
	if nbits < 1 {
		nbits = WordSize
	}
	return &Vector[B]{
		nbits: nbits,
		words: make([]uint32, wordbits.CountFor(nbits)),
	}
}

// Len returns the number of addressable bits.
func (v *Vector[B]) Len() int {
	return v.nbits
}

// Words returns a copy of the backing words, lowest word first.
func (v *Vector[B]) Words() []uint32 {
	words := make([]uint32, len(v.words))
	copy(words, v.words)
	return words
}

// Clone returns an independent copy of v.
func (v *Vector[B]) Clone() *Vector[B] {
	return &Vector[B]{
		nbits: v.nbits,
		words: v.Words(),
	}
}

// Resize changes the length of v to nbits.  Bits below min(Len(), nbits)
// are preserved and any newly addressable bits are zero.  Resize panics
// with an *IndexError if nbits < 1, whatever the bounds policy.
func (v *Vector[B]) Resize(nbits int) {
	if nbits < 1 {
		panic(&IndexError{Index: nbits, Limit: 1})
	}
	if nbits == v.nbits {
		return
	}
	oldLen := len(v.words)
	newLen := wordbits.CountFor(nbits)
	switch {
	case newLen > cap(v.words):
		words := make([]uint32, newLen)
		copy(words, v.words)
		v.words = words
	case newLen > oldLen:
		// reuse the spare capacity left by an earlier shrink, which
		// may still hold stale words
		v.words = v.words[:newLen]
		zero.Words(v.words[oldLen:])
	default:
		v.words = v.words[:newLen]
	}
	v.nbits = nbits
	v.trimGhostBits()
}

// wordBits is the word-aligned capacity of v in bits.
func (v *Vector[B]) wordBits() int {
	return len(v.words) * WordSize
}

// trimGhostBits clears the padding bits above Len() in the last word.
func (v *Vector[B]) trimGhostBits() {
	v.rangeOp(v.nbits, v.wordBits(), wordAndNot)
}

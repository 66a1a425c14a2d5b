// Copyright 2021 The bit Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package bitvec

import (
	"github.com/bpowers/bitvec/internal/wordbits"
)

// wordOp applies mask to the word w.
type wordOp func(w *uint32, mask uint32)

func wordOr(w *uint32, mask uint32)     { *w |= mask }
func wordAndNot(w *uint32, mask uint32) { *w &^= mask }
func wordXor(w *uint32, mask uint32)    { *w ^= mask }

// rangeOp hands op the mask of bits in [from, to) for every word the
// range touches: a partial mask for the first and last words and a
// full mask for the words in between.  An empty range does nothing.
// Endpoints are not validated.
func (v *Vector[B]) rangeOp(from, to int, op wordOp) {
	if from >= to {
		return
	}
	firstWord := wordbits.Index(from)
	lastWord := wordbits.Index(to - 1)
	firstMask := wordbits.HighMask(from)
	lastMask := wordbits.LowMask(to)
	if firstWord == lastWord {
		op(&v.words[firstWord], firstMask&lastMask)
		return
	}
	op(&v.words[firstWord], firstMask)
	for i := firstWord + 1; i < lastWord; i++ {
		op(&v.words[i], wordbits.AllOnes)
	}
	op(&v.words[lastWord], lastMask)
}

// mutateRange validates [from, to) and applies op to it.  Endpoints
// may reach past Len(), so the padding is re-cleared afterwards.
func (v *Vector[B]) mutateRange(from, to int, op wordOp) {
	v.checkEndpoint(from)
	v.checkEndpoint(to)
	v.rangeOp(from, to, op)
	if to > v.nbits {
		v.trimGhostBits()
	}
}

// RangeOn sets the bits in [from, to).
func (v *Vector[B]) RangeOn(from, to int) {
	v.mutateRange(from, to, wordOr)
}

// RangeOff clears the bits in [from, to).
func (v *Vector[B]) RangeOff(from, to int) {
	v.mutateRange(from, to, wordAndNot)
}

// RangeFlip toggles the bits in [from, to).
func (v *Vector[B]) RangeFlip(from, to int) {
	v.mutateRange(from, to, wordXor)
}

// RangeIsOn reports whether every bit in [from, to) is set.  An empty
// range reports false.
func (v *Vector[B]) RangeIsOn(from, to int) bool {
	v.checkEndpoint(from)
	v.checkEndpoint(to)
	if from >= to {
		return false
	}
	all := true
	v.rangeOp(from, to, func(w *uint32, mask uint32) {
		if *w&mask != mask {
			all = false
		}
	})
	return all
}

// RangeIsOff reports whether every bit in [from, to) is clear.  An empty
// range reports false.
func (v *Vector[B]) RangeIsOff(from, to int) bool {
	v.checkEndpoint(from)
	v.checkEndpoint(to)
	if from >= to {
		return false
	}
	none := true
	v.rangeOp(from, to, func(w *uint32, mask uint32) {
		if *w&mask != 0 {
			none = false
		}
	})
	return none
}

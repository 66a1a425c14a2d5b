// Copyright 2021 The bit Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package bitvec

import (
	"github.com/bpowers/bitvec/internal/wordbits"
	"github.com/bpowers/bitvec/internal/zero"
)

// And sets v to v AND o.  Bits of v beyond o's words are cleared; Len()
// is unchanged.
func (v *Vector[B]) And(o *Vector[B]) {
	if v == o {
		return
	}
	n := min(len(v.words), len(o.words))
	for i := 0; i < n; i++ {
		v.words[i] &= o.words[i]
	}
	zero.Words(v.words[n:])
}

// Or sets v to v OR o, first growing v to o.Len() if o is longer.
func (v *Vector[B]) Or(o *Vector[B]) {
	if v == o {
		return
	}
	v.combine(o, func(w *uint32, x uint32) { *w |= x })
}

// Xor sets v to v XOR o, first growing v to o.Len() if o is longer.
// Xor of a vector with itself leaves it unchanged.
func (v *Vector[B]) Xor(o *Vector[B]) {
	if v == o {
		return
	}
	v.combine(o, func(w *uint32, x uint32) { *w ^= x })
}

// combine grows v to cover o, merges o's words into v with op, and
// re-clears the padding.  Words added by the grow start zeroed, so
// merging o's high words into them copies those words.
func (v *Vector[B]) combine(o *Vector[B], op wordOp) {
	if o.nbits > v.nbits {
		v.Resize(o.nbits)
	}
	n := min(len(v.words), len(o.words))
	for i := 0; i < n; i++ {
		op(&v.words[i], o.words[i])
	}
	v.trimGhostBits()
}

// AndNot clears every bit of v that is set in o.  Words of v beyond o's
// words are untouched.
func (v *Vector[B]) AndNot(o *Vector[B]) {
	if v == o {
		v.Clear()
		return
	}
	n := min(len(v.words), len(o.words))
	for i := 0; i < n; i++ {
		v.words[i] &^= o.words[i]
	}
}

// Not toggles every bit of v.
func (v *Vector[B]) Not() {
	v.rangeOp(0, v.nbits, wordXor)
}

// Equals reports whether v and o have the same length and bits.
func (v *Vector[B]) Equals(o *Vector[B]) bool {
	if v == o {
		return true
	}
	if v.nbits != o.nbits {
		return false
	}
	last := len(v.words) - 1
	for i := 0; i < last; i++ {
		if v.words[i] != o.words[i] {
			return false
		}
	}
	mask := wordbits.LowMask(v.nbits)
	return v.words[last]&mask == o.words[last]&mask
}

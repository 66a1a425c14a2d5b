// Copyright 2021 The bit Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package bitvec

// Bounds selects whether a Vector validates bit indices.  It is chosen
// when the Vector is constructed and cannot change afterwards.
//
// Checked validates every index and panics with an *IndexError before
// touching any state.  Unchecked skips validation on the hot paths: an
// out-of-range index is undefined behavior and may silently modify the
// padding bits of the last word, or fault on the backing slice.  Only use
// Unchecked when indices are known to be in range, e.g. after reducing
// them modulo Len().
type Bounds interface {
	Checked | Unchecked
	enabled() bool
}

// Checked is the Bounds policy that validates every index.
type Checked struct{}

func (Checked) enabled() bool { return true }

// Unchecked is the Bounds policy that skips index validation.
type Unchecked struct{}

func (Unchecked) enabled() bool { return false }

// checkIndex panics if i isn't a valid single-bit index.
func (v *Vector[B]) checkIndex(i int) {
	var b B
	if b.enabled() && (i < 0 || i >= v.nbits) {
		panic(&IndexError{Index: i, Limit: v.nbits})
	}
}

// checkEndpoint panics if i isn't a valid exclusive range endpoint.
// Endpoints may reach the word-aligned capacity, past Len().
func (v *Vector[B]) checkEndpoint(i int) {
	var b B
	if b.enabled() && (i < 0 || i > v.wordBits()) {
		panic(&IndexError{Index: i, Limit: v.wordBits() + 1})
	}
}

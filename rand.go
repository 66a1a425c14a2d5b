// Copyright 2021 The bit Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package bitvec

import (
	"math"
	"math/rand/v2"
)

// RandSource supplies random words to Randomize.  *math/rand.Rand and
// *math/rand/v2.Rand both satisfy it, so a seeded generator gives a
// reproducible fill.
type RandSource interface {
	Uint32() uint32
}

type systemSource struct{}

func (systemSource) Uint32() uint32 { return rand.Uint32() }

// FloatSource adapts a generator of floats in [0, 1) into a RandSource
// by scaling each value to the full 32-bit range.
type FloatSource func() float64

func (f FloatSource) Uint32() uint32 {
	return uint32(f() * math.MaxUint32)
}

// Randomize replaces every bit of v with a random value drawn from src.
// A nil src uses the runtime's shared generator.
func (v *Vector[B]) Randomize(src RandSource) {
	if src == nil {
		src = systemSource{}
	}
	for i := range v.words {
		v.words[i] = src.Uint32()
	}
	v.trimGhostBits()
}

// Copyright 2021 The bit Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package bloom

import (
	"fmt"

	"github.com/dgryski/go-farm"
	"github.com/spaolacci/murmur3"
)

// Hash selects the 128-bit hash function used to place keys.  Two
// filters can only be combined if they use the same Hash.
type Hash int

const (
	// Farm uses farmhash's 128-bit fingerprint.
	Farm Hash = iota
	// Murmur3 uses the x64 128-bit variant of murmur3.
	Murmur3
)

func (h Hash) sum128(data []byte) (uint64, uint64) {
	switch h {
	case Murmur3:
		return murmur3.Sum128(data)
	default:
		return farm.Hash128(data)
	}
}

func (h Hash) String() string {
	switch h {
	case Farm:
		return "farm"
	case Murmur3:
		return "murmur3"
	}
	return fmt.Sprintf("Hash(%d)", int(h))
}

func parseHash(s string) (Hash, error) {
	switch s {
	case "farm":
		return Farm, nil
	case "murmur3":
		return Murmur3, nil
	}
	return 0, fmt.Errorf("unknown hash %q: %w", s, ErrInvalidParameter)
}

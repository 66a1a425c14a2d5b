// Copyright 2021 The bit Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package bitvec

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfRange is matched by every *IndexError.
	ErrIndexOutOfRange = errors.New("bitvec: index out of range")
	// ErrParse is matched by every *ParseError.
	ErrParse = errors.New("bitvec: invalid text encoding")
)

// IndexError reports a bit index outside [0, Limit), the bound accepted
// by the failed operation.  Single-bit operations accept indices below
// Len(); range endpoints are exclusive and may reach the word-aligned
// capacity.
//
// Bounds failures are raised with panic(*IndexError), the same way Go
// reports an out-of-range slice index.
type IndexError struct {
	Index int
	Limit int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("bitvec: index %d out of range [0:%d)", e.Index, e.Limit)
}

func (e *IndexError) Is(target error) bool { return target == ErrIndexOutOfRange }

// ParseError reports text that is not a valid binary or hex encoding.
type ParseError struct {
	Input  string
	Offset int
	Reason string
}

func (e *ParseError) Error() string {
	if e.Offset < 0 {
		return fmt.Sprintf("bitvec: parsing %q: %s", e.Input, e.Reason)
	}
	return fmt.Sprintf("bitvec: parsing %q: %s at offset %d", e.Input, e.Reason, e.Offset)
}

func (e *ParseError) Unwrap() error { return ErrParse }

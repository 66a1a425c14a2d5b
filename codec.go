// Copyright 2021 The bit Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package bitvec

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/bpowers/bitvec/internal/wordbits"
)

const hexDigitsPerWord = WordSize / 4

// AsBinary returns the bits of v as '0' and '1' characters, most
// significant bit first.  The result has exactly Len() characters.
func (v *Vector[B]) AsBinary() string {
	var sb strings.Builder
	sb.Grow(v.nbits)
	for i := v.nbits - 1; i >= 0; i-- {
		wordOff, bitOff := wordbits.Offsets(i)
		sb.WriteByte('0' + byte(v.words[wordOff]>>bitOff&1))
	}
	return sb.String()
}

// AsHex returns the words of v as lowercase hex, 8 digits per word,
// most significant word first.  The encoding is word-granular: a Len()
// that is not a multiple of WordSize is padded with zero bits.
func (v *Vector[B]) AsHex() string {
	buf := make([]byte, 0, len(v.words)*4)
	for i := len(v.words) - 1; i >= 0; i-- {
		buf = binary.BigEndian.AppendUint32(buf, v.words[i])
	}
	return hex.EncodeToString(buf)
}

// String returns AsBinary().
func (v *Vector[B]) String() string {
	return v.AsBinary()
}

// MarshalText implements encoding.TextMarshaler using the binary form,
// which preserves Len() exactly.
func (v *Vector[B]) MarshalText() ([]byte, error) {
	return []byte(v.AsBinary()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, replacing v with
// the vector encoded by text in binary form.
func (v *Vector[B]) UnmarshalText(text []byte) error {
	p, err := ParseBinaryOf[B](string(text))
	if err != nil {
		return err
	}
	*v = *p
	return nil
}

// ParseBinary returns the bounds-checked vector encoded by s, a string of
// '0' and '1' characters with the most significant bit first.
func ParseBinary(s string) (*Vector[Checked], error) {
	return ParseBinaryOf[Checked](s)
}

// ParseBinaryOf is ParseBinary for a vector with the bounds policy B.
func ParseBinaryOf[B Bounds](s string) (*Vector[B], error) {
	if len(s) == 0 {
		return nil, &ParseError{Input: s, Offset: -1, Reason: "empty input"}
	}
	v := NewOf[B](len(s))
	for i := 0; i < len(s); i++ {
		bit := len(s) - i - 1
		switch s[i] {
		case '0':
		case '1':
			wordOff, bitOff := wordbits.Offsets(bit)
			v.words[wordOff] |= 1 << bitOff
		default:
			return nil, &ParseError{Input: s, Offset: i, Reason: fmt.Sprintf("invalid binary digit %q", s[i])}
		}
	}
	return v, nil
}

// ParseHex returns the bounds-checked vector encoded by s, hex digits
// with the most significant word first.  s is split into 8-digit words
// from the right; the leading word may be shorter.  The result's Len()
// is always a multiple of WordSize.
func ParseHex(s string) (*Vector[Checked], error) {
	return ParseHexOf[Checked](s)
}

// ParseHexOf is ParseHex for a vector with the bounds policy B.
func ParseHexOf[B Bounds](s string) (*Vector[B], error) {
	if len(s) == 0 {
		return nil, &ParseError{Input: s, Offset: -1, Reason: "empty input"}
	}
	words := make([]uint32, 0, (len(s)+hexDigitsPerWord-1)/hexDigitsPerWord)
	for end := len(s); end > 0; end -= hexDigitsPerWord {
		begin := max(end-hexDigitsPerWord, 0)
		var w uint32
		for i := begin; i < end; i++ {
			d, ok := hexValue(s[i])
			if !ok {
				return nil, &ParseError{Input: s, Offset: i, Reason: fmt.Sprintf("invalid hex digit %q", s[i])}
			}
			w = w<<4 | d
		}
		words = append(words, w)
	}
	return &Vector[B]{
		nbits: len(words) * WordSize,
		words: words,
	}, nil
}

// hexValue decodes one digit.  hex.DecodeString works on byte pairs and
// rejects the odd-length leading group that ParseHex accepts.
func hexValue(c byte) (uint32, bool) {
	switch {
	case '0' <= c && c <= '9':
		return uint32(c - '0'), true
	case 'a' <= c && c <= 'f':
		return uint32(c-'a') + 10, true
	case 'A' <= c && c <= 'F':
		return uint32(c-'A') + 10, true
	}
	return 0, false
}

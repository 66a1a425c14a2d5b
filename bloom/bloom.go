// Copyright 2021 The bit Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

// Package bloom implements a Bloom filter on top of a bitvec.Vector.
//
// Each key is hashed once to 128 bits, and the k probe positions are
// derived from the two halves by double hashing.  A Filter is not safe
// for concurrent use.
package bloom

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/bpowers/bitvec"
	"github.com/bpowers/bitvec/internal/unsafestring"
)

var (
	ErrInvalidParameter = errors.New("bloom: invalid parameter")
	ErrIncompatible     = errors.New("bloom: filters have different shapes")
)

// Option configures a Filter.
type Option func(*options)

type options struct {
	hash   Hash
	logger *slog.Logger
}

// WithHash selects the hash function.  The default is Farm.
func WithHash(h Hash) Option {
	return func(opts *options) {
		opts.hash = h
	}
}

// WithLogger sets an optional logger for the filter to report sizing and
// saturation.  If not provided, no logging output will be produced.
func WithLogger(logger *slog.Logger) Option {
	return func(opts *options) {
		opts.logger = logger
	}
}

// Filter is a Bloom filter: a probabilistic set with no false negatives.
type Filter struct {
	// probe positions are always reduced mod Len(), so the bits never
	// need bounds checks
	bits     *bitvec.Vector[bitvec.Unchecked]
	m        uint64
	k        int
	hash     Hash
	capacity uint64 // 0 if unknown
	added    uint64
	warned   bool
	logger   *slog.Logger
}

func buildOptions(opts []Option) options {
	var o options
	o.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// New returns an empty filter of m bits probed k times per key.
func New(m, k int, opts ...Option) (*Filter, error) {
	if m < 1 {
		return nil, fmt.Errorf("m=%d: %w", m, ErrInvalidParameter)
	}
	if k < 1 {
		return nil, fmt.Errorf("k=%d: %w", k, ErrInvalidParameter)
	}
	o := buildOptions(opts)
	if o.hash != Farm && o.hash != Murmur3 {
		return nil, fmt.Errorf("hash %s: %w", o.hash, ErrInvalidParameter)
	}
	f := &Filter{
		bits:   bitvec.NewUnchecked(m),
		m:      uint64(m),
		k:      k,
		hash:   o.hash,
		logger: o.logger,
	}
	f.logger.Debug("created bloom filter", "m", m, "k", k, "hash", f.hash.String())
	return f, nil
}

// NewWithEstimates returns a filter sized to hold n keys with a false
// positive rate of about p.  The filter logs a warning once more than n
// keys have been added.
func NewWithEstimates(n uint64, p float64, opts ...Option) (*Filter, error) {
	if n == 0 {
		return nil, fmt.Errorf("n=0: %w", ErrInvalidParameter)
	}
	if !(p > 0 && p < 1) {
		return nil, fmt.Errorf("p=%v: %w", p, ErrInvalidParameter)
	}
	m := OptimalM(n, p)
	f, err := New(int(m), OptimalK(m, n), opts...)
	if err != nil {
		return nil, err
	}
	f.capacity = n
	return f, nil
}

// OptimalM returns the number of bits needed to hold n keys with a false
// positive rate of p.
func OptimalM(n uint64, p float64) uint64 {
	return uint64(math.Ceil(-float64(n) * math.Log(p) / (math.Ln2 * math.Ln2)))
}

// OptimalK returns the number of probes that minimizes the false positive
// rate of an m-bit filter holding n keys.
func OptimalK(m, n uint64) int {
	k := int(math.Round(float64(m) / float64(n) * math.Ln2))
	return max(k, 1)
}

// Len returns the size of the filter in bits.
func (f *Filter) Len() int { return int(f.m) }

// K returns the number of probes per key.
func (f *Filter) K() int { return f.k }

// Hash returns the hash function the filter uses.
func (f *Filter) Hash() Hash { return f.hash }

func (f *Filter) probe(data []byte, fn func(i int) bool) {
	h1, h2 := f.hash.sum128(data)
	for i := 0; i < f.k; i++ {
		if !fn(int((h1 + uint64(i)*h2) % f.m)) {
			return
		}
	}
}

// Add inserts data into the filter.
func (f *Filter) Add(data []byte) {
	f.probe(data, func(i int) bool {
		f.bits.BitOn(i)
		return true
	})
	f.noteAdded(1)
}

// AddString inserts s into the filter.
func (f *Filter) AddString(s string) {
	f.Add(unsafestring.ToBytes(s))
}

// Test reports whether data may have been added.  A false result is
// definitive.
func (f *Filter) Test(data []byte) bool {
	present := true
	f.probe(data, func(i int) bool {
		present = f.bits.IsOn(i)
		return present
	})
	return present
}

// TestString reports whether s may have been added.
func (f *Filter) TestString(s string) bool {
	return f.Test(unsafestring.ToBytes(s))
}

// TestAndAdd adds data and reports whether it may have been present
// beforehand.
func (f *Filter) TestAndAdd(data []byte) bool {
	present := true
	f.probe(data, func(i int) bool {
		if f.bits.IsOff(i) {
			present = false
			f.bits.BitOn(i)
		}
		return true
	})
	f.noteAdded(1)
	return present
}

func (f *Filter) noteAdded(n uint64) {
	f.added += n
	if f.capacity == 0 || f.warned || f.added <= f.capacity {
		return
	}
	f.warned = true
	f.logger.Warn("bloom filter over capacity; false positive rate will exceed its target",
		"capacity", f.capacity,
		"added", f.added,
		"fillRatio", f.FillRatio())
}

// Clear removes every key from the filter.
func (f *Filter) Clear() {
	f.bits.Clear()
	f.added = 0
	f.warned = false
}

func (f *Filter) compatible(o *Filter) error {
	if f.m != o.m || f.k != o.k || f.hash != o.hash {
		return fmt.Errorf("(m=%d k=%d %s) vs (m=%d k=%d %s): %w",
			f.m, f.k, f.hash, o.m, o.k, o.hash, ErrIncompatible)
	}
	return nil
}

// Union adds every key of o to f.  Both filters must have the same size,
// probe count and hash.
func (f *Filter) Union(o *Filter) error {
	if err := f.compatible(o); err != nil {
		return err
	}
	f.bits.Or(o.bits)
	if f != o {
		f.noteAdded(o.added)
	}
	return nil
}

// Intersect keeps only the bits set in both f and o.  The result may
// report keys that were only in one filter, as with any Bloom filter.
func (f *Filter) Intersect(o *Filter) error {
	if err := f.compatible(o); err != nil {
		return err
	}
	f.bits.And(o.bits)
	f.added = min(f.added, o.added)
	return nil
}

// FillRatio returns the fraction of bits that are set.
func (f *Filter) FillRatio() float64 {
	return float64(f.bits.Cardinality()) / float64(f.m)
}

// EstimatedCount estimates the number of distinct keys added from the
// number of set bits.  A saturated filter returns +Inf.
func (f *Filter) EstimatedCount() float64 {
	x := float64(f.bits.Cardinality())
	m := float64(f.m)
	return -m / float64(f.k) * math.Log1p(-x/m)
}

// MarshalText encodes the filter as "<hash>:<k>:<m>:<hex bits>".
func (f *Filter) MarshalText() ([]byte, error) {
	var sb strings.Builder
	sb.WriteString(f.hash.String())
	sb.WriteByte(':')
	sb.WriteString(strconv.Itoa(f.k))
	sb.WriteByte(':')
	sb.WriteString(strconv.FormatUint(f.m, 10))
	sb.WriteByte(':')
	sb.WriteString(f.bits.AsHex())
	return []byte(sb.String()), nil
}

// UnmarshalText replaces f with the filter encoded by MarshalText.
func (f *Filter) UnmarshalText(text []byte) error {
	fields := strings.Split(string(text), ":")
	if len(fields) != 4 {
		return fmt.Errorf("expected 4 fields, got %d: %w", len(fields), ErrInvalidParameter)
	}
	hash, err := parseHash(fields[0])
	if err != nil {
		return err
	}
	k, err := strconv.Atoi(fields[1])
	if err != nil || k < 1 {
		return fmt.Errorf("k=%q: %w", fields[1], ErrInvalidParameter)
	}
	m, err := strconv.ParseUint(fields[2], 10, 63)
	if err != nil || m < 1 {
		return fmt.Errorf("m=%q: %w", fields[2], ErrInvalidParameter)
	}
	bits, err := bitvec.ParseHexOf[bitvec.Unchecked](fields[3])
	if err != nil {
		return fmt.Errorf("bitvec.ParseHexOf: %w", err)
	}
	if want := (m + bitvec.WordSize - 1) / bitvec.WordSize * bitvec.WordSize; uint64(bits.Len()) != want {
		return fmt.Errorf("%d bits of data for m=%d: %w", bits.Len(), m, ErrInvalidParameter)
	}
	bits.Resize(int(m))

	logger := f.logger
	if logger == nil {
		logger = buildOptions(nil).logger
	}
	*f = Filter{
		bits:   bits,
		m:      m,
		k:      k,
		hash:   hash,
		logger: logger,
	}
	return nil
}

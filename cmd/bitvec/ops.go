// Copyright 2021 The bit Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"sort"
	"strconv"
	"strings"

	"github.com/bpowers/bitvec"
)

var (
	errMissingOp = errors.New("missing op")
	errUnknownOp = errors.New("unknown op")
)

type vector = bitvec.Vector[bitvec.Checked]

type env struct {
	cfg    *config
	logger *slog.Logger
}

type op struct {
	usage string
	nargs int
	eval  func(e *env, args []string) (string, error)
}

var ops = map[string]op{
	"not": {"V          invert every bit", 1, func(e *env, args []string) (string, error) {
		v, err := e.vector(args[0])
		if err != nil {
			return "", err
		}
		v.Not()
		return e.format(v), nil
	}},
	"and":    binaryOp("A B        A AND B, with A's length", (*vector).And),
	"or":     binaryOp("A B        A OR B, grown to the longer length", (*vector).Or),
	"xor":    binaryOp("A B        A XOR B, grown to the longer length", (*vector).Xor),
	"andnot": binaryOp("A B        A AND NOT B", (*vector).AndNot),
	"equals": {"A B        whether A and B have the same length and bits", 2, func(e *env, args []string) (string, error) {
		a, b, err := e.vectors(args[0], args[1])
		if err != nil {
			return "", err
		}
		return strconv.FormatBool(a.Equals(b)), nil
	}},
	"card": {"V          number of set bits", 1, func(e *env, args []string) (string, error) {
		v, err := e.vector(args[0])
		if err != nil {
			return "", err
		}
		return strconv.Itoa(v.Cardinality()), nil
	}},
	"next-set":   searchOp("V I        first set bit at or after I, or -1", (*vector).NextSetBit),
	"next-clear": searchOp("V I        first clear bit at or after I, or -1", (*vector).NextClearBit),
	"rshift":     shiftOp("V N        shift toward bit 0; prints the vector and shifted-out bits", (*vector).Rshift),
	"lshift":     shiftOp("V N        shift away from bit 0; prints the vector and shifted-out bits", (*vector).Lshift),
	"slice": {"V FROM TO  copy of bits [FROM, TO)", 3, func(e *env, args []string) (string, error) {
		v, err := e.vector(args[0])
		if err != nil {
			return "", err
		}
		from, err := e.number(args[1])
		if err != nil {
			return "", err
		}
		to, err := e.number(args[2])
		if err != nil {
			return "", err
		}
		var s *vector
		if err := catchIndexError(func() { s = v.Slice(from, to) }); err != nil {
			return "", err
		}
		return e.format(s), nil
	}},
	"random": {"NBITS      random vector of NBITS bits (see --seed)", 1, func(e *env, args []string) (string, error) {
		nbits, err := e.number(args[0])
		if err != nil {
			return "", err
		}
		if nbits < 1 {
			return "", fmt.Errorf("NBITS must be positive, not %d", nbits)
		}
		seed := e.cfg.seed
		if seed == 0 {
			seed = rand.Uint64()
		}
		e.logger.Debug("randomizing", "nbits", nbits, "seed", seed)
		v := bitvec.New(nbits)
		v.Randomize(rand.New(rand.NewPCG(seed, seed)))
		return e.format(v), nil
	}},
}

func opNames() []string {
	names := make([]string, 0, len(ops))
	for name := range ops {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func binaryOp(usage string, fn func(a, b *vector)) op {
	return op{usage, 2, func(e *env, args []string) (string, error) {
		a, b, err := e.vectors(args[0], args[1])
		if err != nil {
			return "", err
		}
		fn(a, b)
		return e.format(a), nil
	}}
}

func searchOp(usage string, fn func(v *vector, from int) int) op {
	return op{usage, 2, func(e *env, args []string) (string, error) {
		v, err := e.vector(args[0])
		if err != nil {
			return "", err
		}
		from, err := e.number(args[1])
		if err != nil {
			return "", err
		}
		return strconv.Itoa(fn(v, from)), nil
	}}
}

func shiftOp(usage string, fn func(v *vector, n int) uint32) op {
	return op{usage, 2, func(e *env, args []string) (string, error) {
		v, err := e.vector(args[0])
		if err != nil {
			return "", err
		}
		n, err := e.number(args[1])
		if err != nil {
			return "", err
		}
		if n < 0 || n >= bitvec.WordSize {
			return "", fmt.Errorf("shift must be in [0, %d), not %d", bitvec.WordSize, n)
		}
		shifted := fn(v, n)
		return fmt.Sprintf("%s %d", e.format(v), shifted), nil
	}}
}

// parseVector accepts 0x-prefixed hex, 0b-prefixed binary, or bare
// binary digits.
func parseVector(s string) (*vector, error) {
	if rest, ok := strings.CutPrefix(s, "0x"); ok {
		return bitvec.ParseHex(rest)
	}
	rest, _ := strings.CutPrefix(s, "0b")
	return bitvec.ParseBinary(rest)
}

func (e *env) vector(s string) (*vector, error) {
	v, err := parseVector(s)
	if err != nil {
		return nil, err
	}
	e.logger.Debug("parsed vector", "input", s, "nbits", v.Len(), "cardinality", v.Cardinality())
	return v, nil
}

func (e *env) vectors(a, b string) (*vector, *vector, error) {
	va, err := e.vector(a)
	if err != nil {
		return nil, nil, err
	}
	vb, err := e.vector(b)
	if err != nil {
		return nil, nil, err
	}
	return va, vb, nil
}

func (e *env) number(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("strconv.Atoi: %w", err)
	}
	return n, nil
}

func (e *env) format(v *vector) string {
	if e.cfg.output == "hex" {
		return v.AsHex()
	}
	return v.AsBinary()
}

// catchIndexError converts a bounds panic from fn into an error.
func catchIndexError(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			ierr, ok := r.(*bitvec.IndexError)
			if !ok {
				panic(r)
			}
			err = ierr
		}
	}()
	fn()
	return nil
}

func run(args []string, stdout, stderr io.Writer) error {
	cfg, err := loadConfig(args, stderr)
	if err != nil {
		return err
	}
	e := &env{cfg: cfg, logger: cfg.logger(stderr)}

	name, opArgs := cfg.args[0], cfg.args[1:]
	o, ok := ops[name]
	if !ok {
		return fmt.Errorf("%w %q", errUnknownOp, name)
	}
	if len(opArgs) != o.nargs {
		return fmt.Errorf("%s takes %d arguments (%s), got %d", name, o.nargs, strings.TrimSpace(o.usage), len(opArgs))
	}
	e.logger.Debug("evaluating", "op", name, "args", opArgs)

	out, err := o.eval(e, opArgs)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	_, err = fmt.Fprintln(stdout, out)
	return err
}

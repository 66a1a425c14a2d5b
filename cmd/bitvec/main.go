// Copyright 2021 The bit Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

// Command bitvec evaluates bit-vector operations on binary and hex
// literals, e.g.
//
//	bitvec --output hex or 0b1010 0x0f
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/pflag"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, pflag.ErrHelp) {
			fmt.Fprintf(os.Stderr, "bitvec: %s\n", err)
		}
		os.Exit(1)
	}
}

// Copyright 2021 The bit Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	envPrefix = "bitvec"

	outputKey  = "output"
	verboseKey = "verbose"
	seedKey    = "seed"
)

type config struct {
	output  string
	verbose bool
	seed    uint64
	args    []string
}

func buildFlagSet(stderr io.Writer) *pflag.FlagSet {
	fs := pflag.NewFlagSet("bitvec", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.SetInterspersed(false)

	fs.String(outputKey, "bin", "encoding for printed vectors: bin or hex")
	fs.BoolP(verboseKey, "v", false, "log each step to stderr")
	fs.Uint64(seedKey, 0, "seed for the random op; 0 picks one")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "usage: bitvec [flags] <op> [args...]\n\nops:\n")
		for _, name := range opNames() {
			fmt.Fprintf(stderr, "  %-10s %s\n", name, ops[name].usage)
		}
		fmt.Fprintf(stderr, "\nvectors are 0b or 0x literals; bare digits are binary.\n\nflags:\n")
		fs.PrintDefaults()
	}
	return fs
}

// getViper parses args and layers BITVEC_* environment variables under
// any flags that were set explicitly.
func getViper(fs *pflag.FlagSet, args []string) (*viper.Viper, error) {
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return nil, fmt.Errorf("v.BindPFlags: %w", err)
	}
	return v, nil
}

func loadConfig(args []string, stderr io.Writer) (*config, error) {
	fs := buildFlagSet(stderr)
	v, err := getViper(fs, args)
	if err != nil {
		return nil, err
	}
	cfg := &config{
		output:  v.GetString(outputKey),
		verbose: v.GetBool(verboseKey),
		seed:    v.GetUint64(seedKey),
		args:    fs.Args(),
	}
	if cfg.output != "bin" && cfg.output != "hex" {
		return nil, fmt.Errorf("--%s must be bin or hex, not %q", outputKey, cfg.output)
	}
	if len(cfg.args) == 0 {
		fs.Usage()
		return nil, errMissingOp
	}
	return cfg, nil
}

func (c *config) logger(stderr io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if c.verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
}

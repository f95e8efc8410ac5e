// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/decred/bloom"
	"github.com/decred/slog"
	flags "github.com/jessevdk/go-flags"
)

const (
	defaultCapacity   = 1024
	defaultHashCount  = 3
	defaultHash       = "siphash"
	defaultBatchSize  = 1000
	defaultDebugLevel = "info"

	// stdinPath is the path that selects standard input.
	stdinPath = "-"
)

// errUsage wraps configuration errors that are caused by invalid usage as
// opposed to runtime failures.
var errUsage = errors.New("usage error")

// config defines the configuration options for bloomtool.
//
// See loadConfig for details on the configuration load process.
type config struct {
	ShowVersion bool     `short:"V" long:"version" description:"Display version information and exit"`
	Capacity    uint32   `short:"m" long:"capacity" description:"Number of bits in the filter"`
	HashCount   uint8    `short:"k" long:"hashcount" description:"Number of hash functions"`
	Items       uint32   `short:"n" long:"items" description:"Size the filter for this many items at --fprate instead of using --capacity and --hashcount"`
	FPRate      float64  `long:"fprate" description:"Target false positive rate when sizing the filter with --items"`
	Hash        string   `long:"hash" description:"Hash algorithm {siphash, xxhash, murmur3, polynomial}"`
	RandomSeed  bool     `long:"randomseed" description:"Seed the hash functions randomly instead of with the fixed defaults"`
	Inserts     []string `short:"i" long:"insert" description:"File of newline-separated keys to insert; may be specified multiple times; - reads standard input"`
	Queries     string   `short:"q" long:"queries" description:"File of newline-separated keys to query in addition to the arguments; - reads standard input"`
	BatchSize   int      `long:"batchsize" description:"Number of keys to read before inserting them into the filter"`
	DebugLevel  string   `short:"d" long:"debuglevel" description:"Logging level {trace, debug, info, warn, error, critical}"`
	LogFile     string   `long:"logfile" description:"Also write log output to this file, rotated every 10 MiB"`

	// The following fields are derived from the options above.
	algo     bloom.HashAlgorithm
	logLevel slog.Level
}

// usageError returns an error that wraps errUsage with the provided message.
func usageError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", errUsage, fmt.Sprintf(format, args...))
}

// newConfigParser returns a new command line flags parser for the provided
// config.
func newConfigParser(cfg *config, options flags.Options) *flags.Parser {
	parser := flags.NewParser(cfg, options)
	parser.Usage = "[OPTIONS] [key ...]"
	return parser
}

// loadConfig initializes and parses the config using command line options.
//
// The configuration proceeds as follows:
//  1. Start with a default config with sane settings
//  2. Parse the command line options and override or add any specified options
//  3. Validate the options and derive the remaining settings
//
// The remaining command line arguments are the keys to query.  A nil config
// without an error is returned when help was requested and shown.
func loadConfig(args []string) (*config, []string, error) {
	cfg := config{
		Capacity:   defaultCapacity,
		HashCount:  defaultHashCount,
		Hash:       defaultHash,
		BatchSize:  defaultBatchSize,
		DebugLevel: defaultDebugLevel,
	}

	parser := newConfigParser(&cfg, flags.HelpFlag|flags.PassDoubleDash)
	remainingArgs, err := parser.ParseArgs(args)
	if err != nil {
		var e *flags.Error
		if errors.As(err, &e) && e.Type == flags.ErrHelp {
			fmt.Fprintln(os.Stdout, err)
			return nil, nil, nil
		}
		return nil, nil, fmt.Errorf("%w: %v", errUsage, err)
	}
	if cfg.ShowVersion {
		return &cfg, remainingArgs, nil
	}

	level, ok := slog.LevelFromString(cfg.DebugLevel)
	if !ok {
		return nil, nil, usageError("the specified debug level %q is invalid",
			cfg.DebugLevel)
	}
	cfg.logLevel = level

	cfg.algo, err = bloom.ParseHashAlgorithm(cfg.Hash)
	if err != nil {
		return nil, nil, usageError("%v", err)
	}

	// Size the filter from the target number of items and false positive
	// rate when requested.
	switch {
	case cfg.Items != 0:
		for _, name := range []string{"capacity", "hashcount"} {
			if parser.FindOptionByLongName(name).IsSet() {
				return nil, nil, usageError("--%s may not be used with "+
					"--items", name)
			}
		}
		cfg.Capacity, cfg.HashCount, err = bloom.OptimalParams(cfg.Items,
			cfg.FPRate)
		if err != nil {
			return nil, nil, usageError("%v", err)
		}
	case cfg.FPRate != 0:
		return nil, nil, usageError("--fprate requires --items")
	}
	if cfg.Capacity == 0 {
		return nil, nil, usageError("--capacity must be positive")
	}
	if cfg.HashCount == 0 {
		return nil, nil, usageError("--hashcount must be positive")
	}
	if cfg.algo == bloom.Polynomial &&
		cfg.Capacity > bloom.MaxPolynomialCapacity {

		return nil, nil, usageError("%s filters are limited to %d bits "+
			"(need %d)", bloom.Polynomial, bloom.MaxPolynomialCapacity,
			cfg.Capacity)
	}

	if cfg.BatchSize <= 0 {
		return nil, nil, usageError("--batchsize must be positive")
	}

	// Standard input can only be consumed once.
	numStdin := 0
	for _, path := range cfg.Inserts {
		if path == stdinPath {
			numStdin++
		}
	}
	if cfg.Queries == stdinPath {
		numStdin++
	}
	if numStdin > 1 {
		return nil, nil, usageError("standard input may only be used once")
	}

	if len(cfg.Inserts) == 0 && cfg.Queries == "" && len(remainingArgs) == 0 {
		return nil, nil, usageError("nothing to do: specify keys to insert " +
			"or query")
	}

	cfg.Hash = strings.ToLower(cfg.Hash)
	return &cfg, remainingArgs, nil
}

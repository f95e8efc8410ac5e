// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/decred/bloom"
	"github.com/decred/bloom/container/queue"
	"github.com/decred/bloom/internal/progresslog"
	"github.com/decred/bloom/internal/version"
	"golang.org/x/term"
)

const (
	// maxKeyLen is the maximum length of a single key read from input.
	maxKeyLen = 1024 * 1024

	// Results reported for each queried key.
	resultPresent = "possibly present"
	resultAbsent  = "definitely absent"
)

// appName is the name of the running binary used in messages.
var appName = strings.TrimSuffix(filepath.Base(os.Args[0]),
	filepath.Ext(os.Args[0]))

// newFilter returns a filter configured per the provided config.
func newFilter(cfg *config) (*bloom.Filter, error) {
	var family *bloom.HashFamily
	var err error
	if cfg.RandomSeed {
		family, err = bloom.NewRandomHashFamily(cfg.algo, cfg.HashCount)
	} else {
		family, err = bloom.NewHashFamilyWithAlgorithm(cfg.algo, cfg.HashCount)
	}
	if err != nil {
		return nil, err
	}
	return bloom.NewFilterWithHashFamily(cfg.Capacity, family)
}

// openInput opens the provided path for reading keys.  The stdin path selects
// the provided standard input, in which case a prompt is shown when it is an
// interactive terminal.  The returned function closes the input.
func openInput(path, purpose string, stdin io.Reader) (io.Reader, func() error, error) {
	if path != stdinPath {
		f, err := os.Open(path)
		if err != nil {
			return nil, nil, err
		}
		return f, f.Close, nil
	}

	if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprintf(os.Stderr, "Enter keys to %s, one per line, and end "+
			"input with Ctrl-D\n", purpose)
	}
	return stdin, func() error { return nil }, nil
}

// scanKeys invokes fn for every newline-separated key read from r.  Trailing
// carriage returns are stripped so files with Windows line endings work as
// expected.  Empty lines are the empty key.
func scanKeys(r io.Reader, fn func(key string)) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxKeyLen)
	for scanner.Scan() {
		fn(strings.TrimSuffix(scanner.Text(), "\r"))
	}
	return scanner.Err()
}

// insertKeys reads keys from r and inserts them into the filter in batches of
// the provided size.  Keys are accumulated in a queue until the batch fills,
// then drained into the filter and accounted for by the progress logger.
//
// It returns the number of keys read.
func insertKeys(r io.Reader, filter *bloom.Filter, batchSize int,
	progress *progresslog.Logger) (uint64, error) {

	fill := func() float64 {
		return float64(filter.BitsSet()) / float64(filter.Capacity())
	}
	batch := queue.New[string]()
	var numKeys uint64
	drain := func(force bool) {
		n := batch.Len()
		if n == 0 && !force {
			return
		}
		for key, ok := batch.Dequeue(); ok; key, ok = batch.Dequeue() {
			filter.Insert(key)
		}
		numKeys += uint64(n)
		progress.LogProgress(uint64(n), force, fill)
	}

	err := scanKeys(r, func(key string) {
		batch.Enqueue(key)
		if batch.Len() >= batchSize {
			drain(false)
		}
	})
	if err != nil {
		return numKeys, err
	}
	drain(true)
	return numKeys, nil
}

// writeResult writes the membership result of the key to w in the form
// "result<TAB>key".
func writeResult(w io.Writer, filter *bloom.Filter, key string) error {
	result := resultAbsent
	if filter.MayContain(key) {
		result = resultPresent
	}
	_, err := fmt.Fprintf(w, "%s\t%s\n", result, key)
	return err
}

// queryKeys writes the membership result of every key to w, one per line.
func queryKeys(w io.Writer, filter *bloom.Filter, keys []string) error {
	bw := bufio.NewWriter(w)
	for _, key := range keys {
		if err := writeResult(bw, filter, key); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// run builds the filter described by the config, inserts the keys from every
// insert file, and queries the provided keys followed by the keys of the
// queries file, if any.
func run(cfg *config, keys []string, stdin io.Reader, stdout io.Writer) error {
	filter, err := newFilter(cfg)
	if err != nil {
		return err
	}
	log.Infof("Using %v", filter)

	progress := progresslog.New("Inserted", log)
	for _, path := range cfg.Inserts {
		r, closeFn, err := openInput(path, "insert", stdin)
		if err != nil {
			return err
		}
		n, err := insertKeys(r, filter, cfg.BatchSize, progress)
		closeErr := closeFn()
		if err != nil {
			return fmt.Errorf("failed to read keys from %s: %w", path, err)
		}
		if closeErr != nil {
			return closeErr
		}
		log.Debugf("Read %d keys from %s", n, path)
	}

	// The filter does not know how many distinct keys it holds, so the
	// estimate below treats every key read as distinct, which makes it an
	// upper bound when the input contains duplicates.
	if total := progress.TotalKeys(); total > 0 {
		numItems := uint32(total)
		if total > uint64(^uint32(0)) {
			numItems = ^uint32(0)
		}
		log.Infof("Filter holds %d keys with %d of %d bits set, estimated "+
			"false positive rate at most %0.6f", total, filter.BitsSet(),
			filter.Capacity(), bloom.CalcFPRate(filter.Capacity(),
				filter.HashCount(), numItems))
	}

	if err := queryKeys(stdout, filter, keys); err != nil {
		return err
	}
	if cfg.Queries == "" {
		return nil
	}
	r, closeFn, err := openInput(cfg.Queries, "query", stdin)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(stdout)
	var queryErr error
	scanErr := scanKeys(r, func(key string) {
		if queryErr == nil {
			queryErr = writeResult(bw, filter, key)
		}
	})
	flushErr := bw.Flush()
	closeErr := closeFn()
	switch {
	case scanErr != nil:
		return fmt.Errorf("failed to read keys from %s: %w", cfg.Queries,
			scanErr)
	case queryErr != nil:
		return queryErr
	case flushErr != nil:
		return flushErr
	}
	return closeErr
}

// bloomtoolMain is the real main function for bloomtool.  It is necessary to
// work around the fact that deferred functions do not run when os.Exit() is
// called.
func bloomtoolMain() error {
	cfg, keys, err := loadConfig(os.Args[1:])
	if err != nil {
		return err
	}
	if cfg == nil {
		// Help was shown.
		return nil
	}
	if cfg.ShowVersion {
		fmt.Printf("%s version %s\n", appName, version.String())
		return nil
	}

	if cfg.LogFile != "" {
		if err := initLogRotator(cfg.LogFile); err != nil {
			return err
		}
		defer logRotator.Close()
	}
	setLogLevels(cfg.logLevel)
	log.Debugf("Version %s", version.String())

	return run(cfg, keys, os.Stdin, os.Stdout)
}

func main() {
	if err := bloomtoolMain(); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
		if errors.Is(err, errUsage) {
			fmt.Fprintf(os.Stderr, "Use %s -h to show usage\n", appName)
			os.Exit(2)
		}
		os.Exit(1)
	}
}

// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bloom

import (
	"bytes"
	"strings"
	"testing"

	"github.com/decred/slog"
)

// TestUseLogger ensures the package logger is replaced by UseLogger and that
// filter construction reports its parameters at the debug level.
func TestUseLogger(t *testing.T) {
	var buf bytes.Buffer
	testLogger := slog.NewBackend(&buf).Logger("TEST")
	testLogger.SetLevel(slog.LevelDebug)

	UseLogger(testLogger)
	defer UseLogger(slog.Disabled)
	if log != testLogger {
		t.Fatalf("expected log to be set to the test logger, got %v", log)
	}

	if _, err := NewFilter(128, 4); err != nil {
		t.Fatalf("unexpected error creating filter: %v", err)
	}
	const want = "Created bloom filter with 128 bits and 4 siphash hash functions"
	if got := buf.String(); !strings.Contains(got, want) {
		t.Fatalf("log output %q does not contain %q", got, want)
	}
}

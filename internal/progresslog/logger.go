// Copyright (c) 2015-2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package progresslog

import (
	"sync"
	"time"

	"github.com/decred/slog"
)

// logInterval is the minimum time between progress messages unless a message
// is forced.
const logInterval = time.Second * 10

// pickNoun returns the singular or plural form of a noun depending on the
// provided count.
func pickNoun(n uint64, singular, plural string) string {
	if n == 1 {
		return singular
	}
	return plural
}

// Logger provides periodic logging of progress towards loading keys into a
// filter.
type Logger struct {
	sync.Mutex
	subsystemLogger slog.Logger
	progressAction  string

	// lastLogTime tracks the last time a log statement was shown.
	lastLogTime time.Time

	// These fields accumulate information about keys between log statements.
	receivedKeys    uint64
	receivedBatches uint64

	// totalKeys is the number of keys processed since the logger was created.
	totalKeys uint64
}

// New returns a new key progress logger.
func New(progressAction string, logger slog.Logger) *Logger {
	return &Logger{
		lastLogTime:     time.Now(),
		progressAction:  progressAction,
		subsystemLogger: logger,
	}
}

// LogProgress accumulates the number of keys in the provided batch, where
// empty batches are not counted as batches, and
// periodically (every 10 seconds) logs an information message to show
// progress to the user along with duration and totals included.
//
// The force flag may be used to force a log message to be shown regardless of
// the time the last one was shown.
//
// The fill function is only invoked when a message is logged and must return
// the fraction of filter bits that are set.
//
// The progress message is templated as follows:
//
//	{progressAction} {numKeys} {keys|key} in the last {timePeriod}
//	({numBatches} {batches|batch}, {totalKeys} total, {fillPercent}% of bits
//	set)
func (l *Logger) LogProgress(batchKeys uint64, forceLog bool, fill func() float64) {
	l.Lock()
	defer l.Unlock()

	l.receivedKeys += batchKeys
	if batchKeys > 0 {
		l.receivedBatches++
	}
	l.totalKeys += batchKeys
	now := time.Now()
	duration := now.Sub(l.lastLogTime)
	if !forceLog && duration < logInterval {
		return
	}

	l.subsystemLogger.Infof("%s %d %s in the last %0.2fs (%d %s, %d total, "+
		"%0.2f%% of bits set)", l.progressAction, l.receivedKeys,
		pickNoun(l.receivedKeys, "key", "keys"), duration.Seconds(),
		l.receivedBatches, pickNoun(l.receivedBatches, "batch", "batches"),
		l.totalKeys, fill()*100)

	l.receivedKeys = 0
	l.receivedBatches = 0
	l.lastLogTime = now
}

// TotalKeys returns the number of keys accounted for since the logger was
// created.
func (l *Logger) TotalKeys() uint64 {
	l.Lock()
	defer l.Unlock()
	return l.totalKeys
}

// SetLastLogTime updates the last time data was logged to the provided time.
func (l *Logger) SetLastLogTime(time time.Time) {
	l.Lock()
	l.lastLogTime = time
	l.Unlock()
}

// Package monitoring carries the library's diagnostic hooks: a swappable
// package-level logger and cheap counters for window moves. Grid and layer
// hot paths never log; they only bump counters that tools may report.
package monitoring

import (
	"log"
	"sync/atomic"
)

// Logf is the package-level diagnostic logger. It defaults to log.Printf
// but may be replaced by SetLogger. Tests or embedding code can redirect or
// mute it.
var Logf func(format string, v ...any) = log.Printf

// SetLogger replaces the package logger. Passing nil installs a no-op
// logger.
func SetLogger(f func(format string, v ...any)) {
	if f == nil {
		Logf = func(string, ...any) {}
		return
	}
	Logf = f
}

var (
	recenterCount    atomic.Int64
	cellsInvalidated atomic.Int64
)

// RecordRecenter notes one window move that reset n cells.
func RecordRecenter(n int) {
	recenterCount.Add(1)
	cellsInvalidated.Add(int64(n))
}

// Snapshot returns the running totals: window moves performed and cells
// reset by them.
func Snapshot() (recenters, invalidated int64) {
	return recenterCount.Load(), cellsInvalidated.Load()
}

// Reset zeroes the counters. Intended for tests and tool start-up.
func Reset() {
	recenterCount.Store(0)
	cellsInvalidated.Store(0)
}

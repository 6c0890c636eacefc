// Package errs implements the library's last-error channel: a per-goroutine
// slot, set by any failing public operation and left untouched by
// successful ones, mirroring the thread-local error state of the C
// original.
//
// Go has no portable notion of "the current OS thread" a goroutine is
// pinned to, so this package keys the slot by goroutine id instead — the
// closest available analogue, and the one that matters for callers, since
// goroutines (not threads) are what application code actually schedules
// logging calls on.
package errs

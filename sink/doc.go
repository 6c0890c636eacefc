// Package sink implements the backend-specific half of a target: the
// open/write/close operations for each of the eight backend families the
// dispatch pipeline can route an entry to.
//
// Every backend implements Adapter. Two optional capabilities, discovered
// with a type assertion, let a backend opt out of the uniform byte-oriented
// Write path: EntryWriter for backends (FunctionCallback, Journald,
// WindowsEventLog) that want the original entry rather than its RFC 5424
// text, and the Synchronous flag on Adapter itself for the Buffer backend,
// which must be written to while the target's lock is still held.
//
// Gate wraps any Adapter to force Unsupported() to true, letting a
// target constructor disable a backend family by configuration rather
// than by build platform.
package sink

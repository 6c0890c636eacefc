package sink

import "github.com/anindyasen/stumpless/entry"

// Adapter is the backend-specific implementation behind a Target.
// Dispatch holds the target's lock across Write when Synchronous
// reports true, and releases it before Write otherwise.
type Adapter interface {
	// Open acquires whatever backend resource the adapter needs (a file
	// descriptor, a socket, a registered event source). Called under the
	// target's lock during open_target.
	Open() error

	// Write performs the backend write and returns the number of bytes
	// accepted, or an error.
	Write(p []byte) (int, error)

	// Close releases backend resources. Must tolerate being called on an
	// adapter that was never successfully opened.
	Close() error

	// Unsupported reports whether this backend was disabled for the
	// current build (for example journald on a non-Linux GOOS). When true,
	// every other method is guaranteed to be unreachable: dispatch and
	// close both check this before doing anything else.
	Unsupported() bool

	// Synchronous reports whether Write must be invoked while the caller
	// still holds the target's lock. True only for the in-memory Buffer
	// backend, where holding the lock across the write is what gives the
	// backend its total-order guarantee.
	Synchronous() bool
}

// EntryWriter is an optional interface an Adapter can implement to receive
// the original Entry alongside its serialized form, for backends that
// don't want raw RFC 5424 text: FunctionCallback invokes a user callback
// with the entry itself, and Journald/WindowsEventLog want the severity to
// pick an OS-native log level rather than re-parsing it out of the text.
type EntryWriter interface {
	WriteEntry(e *entry.Entry, serialized []byte) (int, error)
}

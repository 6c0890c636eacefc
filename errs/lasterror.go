package errs

import "sync"

var (
	mu   sync.Mutex
	slot = map[uint64]*Error{}
)

// Set records err as the calling goroutine's last error. Successful
// operations must never call this — the channel is only ever written on
// failure, and only ever cleared explicitly.
func Set(err *Error) {
	id := goid()
	mu.Lock()
	slot[id] = err
	mu.Unlock()
}

// SetKind is a convenience wrapper around New + Set.
func SetKind(kind Kind, code ...int) *Error {
	e := New(kind, code...)
	Set(e)
	return e
}

// Get returns the calling goroutine's last error, or nil if none has been
// recorded (or it has been cleared).
func Get() *Error {
	id := goid()
	mu.Lock()
	defer mu.Unlock()
	return slot[id]
}

// Clear removes the calling goroutine's last error. Clearing is always
// explicit; nothing in this library clears it on a successful call.
func Clear() {
	id := goid()
	mu.Lock()
	delete(slot, id)
	mu.Unlock()
}

package errs

import (
	"runtime"
	"strconv"
)

// goid extracts the calling goroutine's id from the header line of a stack
// trace. This is the standard (if slightly grubby) trick Go code reaches
// for when it needs goroutine-local storage and the stdlib offers none;
// it costs one small allocation-free stack capture per call.
func goid() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	// Line looks like "goroutine 123 [running]:".
	b := buf[:n]
	const prefix = "goroutine "
	if len(b) <= len(prefix) {
		return 0
	}
	b = b[len(prefix):]
	i := 0
	for i < len(b) && b[i] >= '0' && b[i] <= '9' {
		i++
	}
	id, err := strconv.ParseUint(string(b[:i]), 10, 64)
	if err != nil {
		return 0
	}
	return id
}

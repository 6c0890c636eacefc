package sink

import "github.com/anindyasen/stumpless/entry"

// FunctionHandler is a user-supplied callback invoked once per dispatched
// entry. Returning an error marks the write as failed.
type FunctionHandler func(e *entry.Entry, serialized []byte) error

// FunctionSink hands each entry to a user callback instead of writing it
// anywhere itself. It implements EntryWriter so dispatch passes it the
// original Entry rather than making it re-parse the serialized form.
type FunctionSink struct {
	fn FunctionHandler
}

// NewFunction wraps fn as a FunctionSink.
func NewFunction(fn FunctionHandler) *FunctionSink {
	return &FunctionSink{fn: fn}
}

func (f *FunctionSink) Open() error  { return nil }
func (f *FunctionSink) Close() error { return nil }

func (f *FunctionSink) Unsupported() bool { return false }
func (f *FunctionSink) Synchronous() bool { return false }

// Write satisfies Adapter for callers that only have the serialized bytes;
// dispatch prefers WriteEntry when it has the original Entry available.
func (f *FunctionSink) Write(p []byte) (int, error) {
	return f.WriteEntry(nil, p)
}

func (f *FunctionSink) WriteEntry(e *entry.Entry, serialized []byte) (int, error) {
	if err := f.fn(e, serialized); err != nil {
		return 0, err
	}
	return len(serialized), nil
}

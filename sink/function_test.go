package sink

import (
	"errors"
	"testing"

	"github.com/anindyasen/stumpless/entry"
)

func TestFunctionSinkInvokesCallbackWithEntry(t *testing.T) {
	var gotEntry *entry.Entry
	var gotSerialized []byte

	f := NewFunction(func(e *entry.Entry, serialized []byte) error {
		gotEntry = e
		gotSerialized = serialized
		return nil
	})

	e := entry.New().WithMessage("hi")
	n, err := f.WriteEntry(e, []byte("<14>1 ...\n"))
	if err != nil {
		t.Fatalf("WriteEntry() returned %v", err)
	}
	if n != len("<14>1 ...\n") {
		t.Fatalf("WriteEntry() returned n=%d, want %d", n, len("<14>1 ...\n"))
	}
	if gotEntry != e {
		t.Fatal("callback did not receive the original entry")
	}
	if string(gotSerialized) != "<14>1 ...\n" {
		t.Fatalf("callback received %q", gotSerialized)
	}
}

func TestFunctionSinkPropagatesCallbackError(t *testing.T) {
	wantErr := errors.New("boom")
	f := NewFunction(func(e *entry.Entry, serialized []byte) error {
		return wantErr
	})

	if _, err := f.WriteEntry(nil, []byte("x")); err != wantErr {
		t.Fatalf("WriteEntry() error = %v, want %v", err, wantErr)
	}
}

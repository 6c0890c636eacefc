package sink

import (
	"bytes"
	"errors"
	"testing"
)

func TestMultiSinkFansOutWrites(t *testing.T) {
	var a, b bytes.Buffer
	m := NewMulti(NewStream(&a), NewStream(&b))

	if _, err := m.Write([]byte("hello")); err != nil {
		t.Fatalf("Write() returned %v", err)
	}
	if a.String() != "hello" || b.String() != "hello" {
		t.Fatalf("a=%q b=%q, want both to receive the write", a.String(), b.String())
	}
}

type failingAdapter struct{}

func (failingAdapter) Open() error                 { return nil }
func (failingAdapter) Write(p []byte) (int, error) { return 0, errors.New("boom") }
func (failingAdapter) Close() error                { return nil }
func (failingAdapter) Unsupported() bool           { return false }
func (failingAdapter) Synchronous() bool           { return false }

func TestMultiSinkAggregatesErrorsWithoutStoppingOthers(t *testing.T) {
	var ok bytes.Buffer
	m := NewMulti(failingAdapter{}, NewStream(&ok))

	_, err := m.Write([]byte("x"))
	if err == nil {
		t.Fatal("Write() should report the failing child's error")
	}
	if ok.String() != "x" {
		t.Fatal("a failing child must not prevent the others from receiving the write")
	}
}

func TestMultiSinkUnsupportedOnlyWhenAllChildrenAre(t *testing.T) {
	var buf bytes.Buffer
	m := NewMulti(NewStream(&buf))
	if m.Unsupported() {
		t.Fatal("MultiSink with one supported child should not report Unsupported")
	}
}

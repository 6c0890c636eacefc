package sink

import "testing"

func TestGateEnabledPassesThrough(t *testing.T) {
	b := NewBuffer(16)
	if Gate(b, true) != Adapter(b) {
		t.Fatal("Gate(adapter, true) should return the adapter unchanged")
	}
}

func TestGateDisabledForcesUnsupported(t *testing.T) {
	b := NewBuffer(16)
	gated := Gate(b, false)
	if !gated.Unsupported() {
		t.Fatal("Gate(adapter, false).Unsupported() should be true")
	}
	if b.Unsupported() {
		t.Fatal("gating should not mutate the wrapped adapter itself")
	}
}

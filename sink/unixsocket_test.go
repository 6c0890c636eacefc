package sink

import (
	"net"
	"path/filepath"
	"testing"
	"time"
)

func TestUnixSocketSinkSendsDatagram(t *testing.T) {
	if _, err := net.ResolveUnixAddr("unixgram", "/tmp"); err != nil {
		t.Skipf("unix datagram sockets unavailable: %v", err)
	}

	sockPath := filepath.Join(t.TempDir(), "test.sock")
	addr, err := net.ResolveUnixAddr("unixgram", sockPath)
	if err != nil {
		t.Fatalf("ResolveUnixAddr() returned %v", err)
	}
	listener, err := net.ListenUnixgram("unixgram", addr)
	if err != nil {
		t.Fatalf("ListenUnixgram() returned %v", err)
	}
	defer listener.Close()

	u := NewUnixSocket(sockPath)
	if err := u.Open(); err != nil {
		t.Fatalf("Open() returned %v", err)
	}
	defer u.Close()

	if _, err := u.Write([]byte("hello")); err != nil {
		t.Fatalf("Write() returned %v", err)
	}

	buf := make([]byte, 64)
	listener.SetReadDeadline(time.Now().Add(2 * time.Second))
	n, err := listener.Read(buf)
	if err != nil {
		t.Fatalf("Read() returned %v", err)
	}
	if got := string(buf[:n]); got != "hello" {
		t.Fatalf("received %q, want %q", got, "hello")
	}
}

func TestUnixSocketSinkWriteBeforeOpen(t *testing.T) {
	u := NewUnixSocket("/tmp/does-not-matter.sock")
	if _, err := u.Write([]byte("x")); err == nil {
		t.Fatal("Write() before Open() should return an error")
	}
}

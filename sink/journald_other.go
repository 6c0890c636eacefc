//go:build !linux

package sink

import "github.com/anindyasen/stumpless/entry"

// JournaldSink is unavailable outside Linux: sd-journal is a Linux-only
// transport. Every method other than Unsupported is unreachable, the same
// contract the build-tagged WindowsEventLog stub follows on non-Windows.
type JournaldSink struct{}

func NewJournald() *JournaldSink { return &JournaldSink{} }

func (j *JournaldSink) Open() error  { return nil }
func (j *JournaldSink) Close() error { return nil }

func (j *JournaldSink) Unsupported() bool { return true }
func (j *JournaldSink) Synchronous() bool { return false }

func (j *JournaldSink) Write(p []byte) (int, error) { return 0, nil }

func (j *JournaldSink) WriteEntry(e *entry.Entry, serialized []byte) (int, error) {
	return 0, nil
}

//go:build !windows

package sink

import "github.com/anindyasen/stumpless/entry"

// EventLogSink is unavailable outside Windows.
type EventLogSink struct{}

func NewEventLog(source string) *EventLogSink { return &EventLogSink{} }

func (w *EventLogSink) Open() error  { return nil }
func (w *EventLogSink) Close() error { return nil }

func (w *EventLogSink) Unsupported() bool { return true }
func (w *EventLogSink) Synchronous() bool { return false }

func (w *EventLogSink) Write(p []byte) (int, error) { return 0, nil }

func (w *EventLogSink) WriteEntry(e *entry.Entry, serialized []byte) (int, error) {
	return 0, nil
}

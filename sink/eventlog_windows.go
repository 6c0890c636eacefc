//go:build windows

package sink

import (
	"golang.org/x/sys/windows/svc/eventlog"

	"github.com/anindyasen/stumpless/entry"
)

// EventLogSink sends entries to the Windows Event Log under a named
// source, mapping RFC 5424 severity onto the three event types the
// Windows API recognizes.
type EventLogSink struct {
	source string
	log    *eventlog.Log
}

// NewEventLog creates an EventLogSink for the named event source.
// InstallAsEventCreate registers the source the first time it is used; a
// source that is already registered is left alone.
func NewEventLog(source string) *EventLogSink {
	return &EventLogSink{source: source}
}

func (w *EventLogSink) Open() error {
	_ = eventlog.InstallAsEventCreate(w.source, eventlog.Info|eventlog.Warning|eventlog.Error)
	l, err := eventlog.Open(w.source)
	if err != nil {
		return err
	}
	w.log = l
	return nil
}

func (w *EventLogSink) Close() error {
	if w.log == nil {
		return nil
	}
	return w.log.Close()
}

func (w *EventLogSink) Unsupported() bool { return false }
func (w *EventLogSink) Synchronous() bool { return false }

func (w *EventLogSink) Write(p []byte) (int, error) {
	return w.WriteEntry(nil, p)
}

func (w *EventLogSink) WriteEntry(e *entry.Entry, serialized []byte) (int, error) {
	msg := string(serialized)
	eventID := uint32(1)

	sev := entry.SeverityInfo
	if e != nil && e.Severity != nil {
		sev = *e.Severity
	}

	var err error
	switch {
	case sev <= entry.SeverityErr:
		err = w.log.Error(eventID, msg)
	case sev == entry.SeverityWarn:
		err = w.log.Warning(eventID, msg)
	default:
		err = w.log.Info(eventID, msg)
	}
	if err != nil {
		return 0, err
	}
	return len(serialized), nil
}

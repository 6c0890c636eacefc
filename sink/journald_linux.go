//go:build linux

package sink

import (
	"github.com/coreos/go-systemd/v22/journal"

	"github.com/anindyasen/stumpless/entry"
)

// JournaldSink sends entries to the systemd journal via sd-journal,
// mapping RFC 5424 severity onto journal priority rather than formatting a
// textual MSG, the way the journal's own structured fields are meant to be
// used.
type JournaldSink struct{}

// NewJournald creates a JournaldSink. Construction never fails: journal
// submission failures surface per-entry, from WriteEntry.
func NewJournald() *JournaldSink {
	return &JournaldSink{}
}

func (j *JournaldSink) Open() error  { return nil }
func (j *JournaldSink) Close() error { return nil }

func (j *JournaldSink) Unsupported() bool { return false }
func (j *JournaldSink) Synchronous() bool { return false }

func (j *JournaldSink) Write(p []byte) (int, error) {
	return j.WriteEntry(nil, p)
}

func (j *JournaldSink) WriteEntry(e *entry.Entry, serialized []byte) (int, error) {
	priority := journal.PriInfo
	msg := string(serialized)
	vars := map[string]string{}

	if e != nil {
		if e.Severity != nil {
			priority = severityToPriority(*e.Severity)
		}
		if e.Message != "" {
			msg = e.Message
		}
		if e.AppName != "" {
			vars["SYSLOG_IDENTIFIER"] = e.AppName
		}
	}

	if err := journal.Send(msg, priority, vars); err != nil {
		return 0, err
	}
	return len(serialized), nil
}

func severityToPriority(sev entry.Severity) journal.Priority {
	switch sev {
	case entry.SeverityEmerg:
		return journal.PriEmerg
	case entry.SeverityAlert:
		return journal.PriAlert
	case entry.SeverityCrit:
		return journal.PriCrit
	case entry.SeverityErr:
		return journal.PriErr
	case entry.SeverityWarn:
		return journal.PriWarning
	case entry.SeverityNotice:
		return journal.PriNotice
	case entry.SeverityInfo:
		return journal.PriInfo
	case entry.SeverityDebug:
		return journal.PriDebug
	default:
		return journal.PriInfo
	}
}

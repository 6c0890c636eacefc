// Package entry defines the RFC 5424 log record consumed by the target
// dispatch pipeline, along with the facility/severity encoding and the text
// serializer that turns a record into wire bytes.
//
// An Entry is intentionally a plain, mutable struct rather than a pooled
// type: targets hold entries only for the duration of a single AddEntry
// call, and the dispatch pipeline never reuses one across goroutines, so
// pooling would add a lifecycle contract (Get/Put) without a matching
// allocation win.
//
// The Entry fields Facility and Severity are pointers (*Facility, *Severity)
// rather than plain values so that dispatch can tell
// "the caller didn't set this" (nil) apart from "the caller explicitly
// chose facility/severity zero" (kern/emerg), which matters for how target
// defaults are applied.
package entry

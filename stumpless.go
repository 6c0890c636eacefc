// Package stumpless is a structured logging library that delivers RFC
// 5424 formatted log records to a pluggable set of targets: in-memory
// buffers, files, Unix sockets, TCP/UDP syslog endpoints, the systemd
// journal, the Windows Event Log, or a custom callback.
//
// Most callers only need the package-level Stump/Stumplog functions,
// which resolve to a process-wide current target (falling back to a
// lazily-constructed, platform-preferred default target). Callers that
// need more than one target use target.New* to build one and the
// AddEntry/AddMessage/AddLog functions to dispatch to it directly.
package stumpless

import (
	"github.com/anindyasen/stumpless/entry"
	"github.com/anindyasen/stumpless/registry"
	"github.com/anindyasen/stumpless/target"
)

// Stump writes a message to the current (or default) target using its
// own default facility and severity.
func Stump(format string, args ...any) (int, error) {
	t := registry.ResolveTarget()
	return AddMessage(t, format, args...)
}

// Stumplog writes a message to the current (or default) target,
// overriding its default prival with priority for this call only.
func Stumplog(priority int, format string, args ...any) {
	t := registry.ResolveTarget()
	AddLog(t, priority, format, args...)
}

// AddEntry dispatches e through t, applying t's defaults to any field
// e leaves unset.
func AddEntry(t *target.Target, e *entry.Entry) (int, error) {
	return target.AddEntry(t, e)
}

// AddLog builds a transient entry carrying priority and dispatches it
// through t. priority overrides t's default prival for this call only.
func AddLog(t *target.Target, priority int, format string, args ...any) (int, error) {
	return target.AddLog(t, priority, format, args...)
}

// AddMessage builds a transient entry from a printf-style message and
// dispatches it through t, using t's own defaults for facility and
// severity.
func AddMessage(t *target.Target, format string, args ...any) (int, error) {
	return target.AddMessage(t, format, args...)
}

// OpenTarget promotes t from Paused to Open and installs it as the
// process-wide current target.
func OpenTarget(t *target.Target) (*target.Target, error) {
	got := registry.OpenTarget(t)
	if got == nil {
		return nil, lastOpenError()
	}
	return got, nil
}

// CloseTarget closes t, resetting the current-target slot if t was
// installed there.
func CloseTarget(t *target.Target) {
	registry.CloseTarget(t)
}

// GetCurrentTarget returns the process-wide current target, falling
// back to the default target if none has been set and opened, or the
// one that was has since been closed.
func GetCurrentTarget() *target.Target {
	return registry.GetCurrentTarget()
}

// SetCurrentTarget installs t as the process-wide current target.
func SetCurrentTarget(t *target.Target) {
	registry.SetCurrentTarget(t)
}

// GetDefaultTarget returns the lazily-constructed, platform-preferred
// default target, constructing it on first call.
func GetDefaultTarget() (*target.Target, error) {
	t := registry.GetDefaultTarget()
	if t == nil {
		return nil, lastOpenError()
	}
	return t, nil
}

// FreeAll closes every live target and the default target, then
// clears the current and default slots. Safe to call more than once.
func FreeAll() error {
	return registry.FreeAll()
}

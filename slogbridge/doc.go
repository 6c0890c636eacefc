// Package slogbridge adapts a *target.Target into an slog.Handler, so
// code already using log/slog can gain an RFC 5424 target as one of
// its sinks without learning the target API. Attrs become params of a
// single "slog" structured-data element on the dispatched entry.
package slogbridge

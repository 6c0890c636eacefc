package sink

// gatedAdapter wraps another Adapter and forces Unsupported to report
// true regardless of the wrapped adapter's own platform support, for a
// backend family a build has disabled via configuration.
type gatedAdapter struct {
	Adapter
}

// Gate wraps adapter so that Unsupported() always reports true when
// enabled is false, independent of the wrapped adapter's own platform
// support. It is the Go analogue of a compile-time #ifdef: Open, Write
// and Close on the returned Adapter are never reachable once
// Unsupported reports true, since dispatch and close both check it
// first.
func Gate(adapter Adapter, enabled bool) Adapter {
	if enabled {
		return adapter
	}
	return &gatedAdapter{Adapter: adapter}
}

func (g *gatedAdapter) Unsupported() bool {
	return true
}

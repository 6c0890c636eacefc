package sink

import (
	"go.uber.org/multierr"

	"github.com/anindyasen/stumpless/entry"
)

// MultiSink fans a single write out to several backing adapters,
// aggregating every child failure with multierr instead of discarding
// all but the last.
type MultiSink struct {
	adapters []Adapter
}

// NewMulti wraps adapters as a single Adapter that writes to all of
// them. A write or open failure on one child does not stop the others
// from being attempted.
func NewMulti(adapters ...Adapter) *MultiSink {
	return &MultiSink{adapters: adapters}
}

func (m *MultiSink) Open() error {
	var err error
	for _, a := range m.adapters {
		if a.Unsupported() {
			continue
		}
		err = multierr.Append(err, a.Open())
	}
	return err
}

func (m *MultiSink) Write(p []byte) (int, error) {
	var err error
	n := 0
	for _, a := range m.adapters {
		if a.Unsupported() {
			continue
		}
		written, wErr := a.Write(p)
		if wErr != nil {
			err = multierr.Append(err, wErr)
			continue
		}
		if written > n {
			n = written
		}
	}
	return n, err
}

func (m *MultiSink) WriteEntry(e *entry.Entry, serialized []byte) (int, error) {
	var err error
	n := 0
	for _, a := range m.adapters {
		if a.Unsupported() {
			continue
		}

		var written int
		var wErr error
		if ew, ok := a.(EntryWriter); ok {
			written, wErr = ew.WriteEntry(e, serialized)
		} else {
			written, wErr = a.Write(serialized)
		}
		if wErr != nil {
			err = multierr.Append(err, wErr)
			continue
		}
		if written > n {
			n = written
		}
	}
	return n, err
}

func (m *MultiSink) Close() error {
	var err error
	for _, a := range m.adapters {
		if a.Unsupported() {
			continue
		}
		err = multierr.Append(err, a.Close())
	}
	return err
}

// Unsupported reports false whenever at least one child adapter is
// supported on this build; if every child is build-disabled, the
// MultiSink itself has nothing to dispatch to.
func (m *MultiSink) Unsupported() bool {
	for _, a := range m.adapters {
		if !a.Unsupported() {
			return false
		}
	}
	return len(m.adapters) > 0
}

// Synchronous reports true only when every child requires the caller
// to hold the target's lock across Write; mixing a Buffer child with a
// non-synchronous child would otherwise silently drop the Buffer's
// ordering guarantee.
func (m *MultiSink) Synchronous() bool {
	for _, a := range m.adapters {
		if !a.Synchronous() {
			return false
		}
	}
	return len(m.adapters) > 0
}

package registry

import (
	"os"
	"runtime"
	"sync/atomic"

	"go.uber.org/multierr"

	"github.com/anindyasen/stumpless/config"
	"github.com/anindyasen/stumpless/sink"
	"github.com/anindyasen/stumpless/target"
)

// defaultTargetName matches the original library's fixed name for the
// lazily-constructed fallback sink.
const defaultTargetName = "stumpless-default"

var (
	currentSlot atomic.Pointer[target.Target]
	defaultSlot atomic.Pointer[target.Target]
)

// GetCurrentTarget returns the process-wide current target. If none
// has been explicitly opened or set, or the one that was has since
// been closed, it falls back to the default target, lazily
// constructing it if necessary.
func GetCurrentTarget() *target.Target {
	if cur := currentSlot.Load(); cur != nil {
		return cur
	}
	return GetDefaultTarget()
}

// SetCurrentTarget installs t as the process-wide current target. It is
// a single atomic store with release/acquire ordering and therefore
// safe to call from a signal handler.
func SetCurrentTarget(t *target.Target) {
	currentSlot.Store(t)
}

// OpenTarget opens t and, on success, additionally installs it as the
// current target, per the registry's "open_target installs itself as
// current" rule.
func OpenTarget(t *target.Target) *target.Target {
	if t.Open() == nil {
		return nil
	}
	SetCurrentTarget(t)
	return t
}

// CloseTarget closes t. If t was the current target, the current slot
// is reset to nil so the next target-less logging call falls through
// to the default target.
func CloseTarget(t *target.Target) {
	if t == nil {
		return
	}
	wasCurrent := currentSlot.Load() == t
	t.Close()
	if wasCurrent {
		currentSlot.CompareAndSwap(t, nil)
	}
}

// GetDefaultTarget returns the process-wide default target, lazily
// constructing the platform-preferred backend on first use. Concurrent
// callers racing the first construction all observe the same winning
// instance; a loser's target is closed rather than left dangling.
func GetDefaultTarget() *target.Target {
	if d := defaultSlot.Load(); d != nil {
		return d
	}

	candidate := newPlatformDefaultTarget()
	if candidate.Open() == nil {
		return nil
	}

	if !defaultSlot.CompareAndSwap(nil, candidate) {
		candidate.Close()
		return defaultSlot.Load()
	}
	return candidate
}

func newPlatformDefaultTarget() *target.Target {
	cfg, _ := config.Load()

	if runtime.GOOS == "windows" && cfg.Backends.WindowsEventLog {
		return target.NewWindowsEventLog(defaultTargetName, defaultTargetName)
	}

	if cfg.Backends.UnixSocket {
		if path, ok := preferredUnixSocketPath(cfg); ok {
			return target.NewUnixSocket(defaultTargetName, path)
		}
	}

	return target.NewFile(defaultTargetName, cfg.DefaultFileName, sink.FileConfig{})
}

func preferredUnixSocketPath(cfg config.Config) (string, bool) {
	if _, err := os.Stat(cfg.PreferredUnixSocketPath); err == nil {
		return cfg.PreferredUnixSocketPath, true
	}
	if _, err := os.Stat(cfg.FallbackUnixSocketPath); err == nil {
		return cfg.FallbackUnixSocketPath, true
	}
	// Neither socket exists on this host yet; still prefer the fallback
	// path — the datagram connect happens lazily at Open and most
	// syslog daemons create the socket at startup, which may race this
	// check.
	return cfg.FallbackUnixSocketPath, runtime.GOOS != "windows"
}

// ResolveTarget implements the bare stump/stumplog resolution rule:
// prefer an open current target, falling back to the default target.
func ResolveTarget() *target.Target {
	if cur := currentSlot.Load(); cur != nil && cur.IsOpen() != nil {
		return cur
	}
	return GetDefaultTarget()
}

// FreeAll closes every live target (in registration order) and clears
// the current and default slots. Safe to call more than once; a
// second call sees no live targets and no-ops. Backend close failures
// are aggregated rather than silently dropped.
func FreeAll() error {
	var err error
	for _, t := range target.AllLive() {
		err = multierr.Append(err, t.CloseErr())
	}

	currentSlot.Store(nil)
	defaultSlot.Store(nil)

	return err
}

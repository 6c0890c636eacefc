package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Backends toggles which sink families this build makes available.
// Disabling a backend here is the Go analogue of the original
// library's compile-time #ifdef: a disabled backend's target
// construction still succeeds, but Open/dispatch on it reports
// TargetUnsupported, exactly like a platform-unsupported backend.
type Backends struct {
	Buffer          bool `yaml:"buffer"`
	File            bool `yaml:"file"`
	Stream          bool `yaml:"stream"`
	UnixSocket      bool `yaml:"unix_socket"`
	Network         bool `yaml:"network"`
	Function        bool `yaml:"function"`
	Journald        bool `yaml:"journald"`
	WindowsEventLog bool `yaml:"windows_event_log"`
}

// Config is the process-wide configuration consulted by the registry
// when constructing the default target and by callers that want to
// know which backends this build supports before constructing a
// target of that kind.
type Config struct {
	Backends Backends `yaml:"backends"`

	// DefaultFileName is the file the registry's default target writes
	// to when neither the Windows Event Log nor a Unix datagram socket
	// is selected for it. That choice is made from Backends and from
	// which socket paths exist; a chosen backend that then fails to
	// open does not fall back to this file.
	DefaultFileName string `yaml:"default_file_name"`

	// PreferredUnixSocketPath and FallbackUnixSocketPath are tried in
	// order when selecting the platform-preferred default target on a
	// non-Windows build.
	PreferredUnixSocketPath string `yaml:"preferred_unix_socket_path"`
	FallbackUnixSocketPath  string `yaml:"fallback_unix_socket_path"`
}

// Default returns the configuration used when no override file or
// environment variable is present: every backend enabled, and the
// same default paths the original library hard-codes.
func Default() Config {
	return Config{
		Backends: Backends{
			Buffer:          true,
			File:            true,
			Stream:          true,
			UnixSocket:      true,
			Network:         true,
			Function:        true,
			Journald:        true,
			WindowsEventLog: true,
		},
		DefaultFileName:         "stumpless-default.log",
		PreferredUnixSocketPath: "/var/run/syslog",
		FallbackUnixSocketPath:  "/dev/log",
	}
}

// Load builds a Config starting from Default, applying a YAML override
// file named by the STUMPLESS_CONFIG environment variable if it is
// set, and returns it. A missing or unset override file is not an
// error; Load simply returns the defaults.
func Load() (Config, error) {
	cfg := Default()

	path := os.Getenv("STUMPLESS_CONFIG")
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

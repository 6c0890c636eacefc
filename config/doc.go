// Package config holds process-wide, build-time-equivalent settings:
// which backends are enabled and the default paths the registry's
// platform-preferred default target falls back to. It models the
// original library's #ifdef-gated backend availability as a plain Go
// struct, built from fixed defaults with an optional YAML override file
// whose path is named by the STUMPLESS_CONFIG environment variable.
package config

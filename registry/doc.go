// Package registry holds the process-wide current-target and
// default-target slots and the lifecycle operations (OpenTarget,
// CloseTarget, FreeAll) that manage them. It imports target and never
// the other way around, so target has no knowledge of being tracked by
// a registry.
package registry

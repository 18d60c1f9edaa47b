//go:build !windows
// +build !windows

package vt

// Supported reports whether the console needs VT processing switched on.
const Supported = false

// EnableSystem is a no-op on non-Windows platforms.
func EnableSystem() error { return nil }

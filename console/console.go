// Package console enables ANSI escape sequence support in the Windows console.
//
// Call EnableANSISupport once, early in main, before writing colored or
// cursor-moving output. On Windows 10 and later it switches on
// ENABLE_VIRTUAL_TERMINAL_PROCESSING for the console attached to the process;
// on every other platform it does nothing and returns nil.
//
// The console mode belongs to the console, not to the process, so the change is
// visible to every process sharing it and is not undone on exit.
package console

import (
	"sync"

	"enable-ansi-support/internal/vt"
)

// EnableANSISupport enables VT escape sequence processing for the console.
//
// A failure carries the Windows error code of the first failing call; retrieve it
// with ErrorCode. Callers should treat failure as "no ANSI", not as fatal.
func EnableANSISupport() error {
	return vt.EnableSystem()
}

var (
	once    sync.Once
	onceErr error
)

// EnableANSISupportOnce calls EnableANSISupport the first time and returns its
// result on every call after that.
func EnableANSISupportOnce() error {
	once.Do(func() { onceErr = EnableANSISupport() })
	return onceErr
}

// ErrorCode returns the Windows error code carried by err, looking through
// wrapped errors.
func ErrorCode(err error) (uint32, bool) {
	return vt.Code(err)
}

// NeedsEnabling reports whether the platform requires an explicit opt-in.
func NeedsEnabling() bool { return vt.Supported }

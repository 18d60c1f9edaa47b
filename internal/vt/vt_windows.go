//go:build windows
// +build windows

package vt

import (
	"errors"
	"syscall"

	"golang.org/x/sys/windows"
)

// Supported reports whether the console needs VT processing switched on.
const Supported = true

// conout opens the active console through CONOUT$, which still resolves to the
// console when stdout and stderr are redirected.
type conout struct{}

// EnableSystem enables ENABLE_VIRTUAL_TERMINAL_PROCESSING on the process console.
func EnableSystem() error { return Enable(conout{}) }

func (conout) Open() (Device, error) {
	name, err := windows.UTF16PtrFromString("CONOUT$")
	if err != nil {
		return nil, err
	}
	h, err := windows.CreateFile(
		name,
		windows.GENERIC_READ|windows.GENERIC_WRITE,
		windows.FILE_SHARE_WRITE,
		nil,
		windows.OPEN_EXISTING,
		0,
		0,
	)
	if err != nil || h == windows.InvalidHandle {
		return nil, lastError("CreateFile", err)
	}
	return handle(h), nil
}

type handle windows.Handle

func (h handle) Mode() (uint32, error) {
	var mode uint32
	if err := windows.GetConsoleMode(windows.Handle(h), &mode); err != nil {
		return 0, lastError("GetConsoleMode", err)
	}
	return mode, nil
}

func (h handle) SetMode(mode uint32) error {
	if err := windows.SetConsoleMode(windows.Handle(h), mode); err != nil {
		return lastError("SetConsoleMode", err)
	}
	return nil
}

func (h handle) Close() error {
	return windows.CloseHandle(windows.Handle(h))
}

// lastError keeps the errno x/sys collected from GetLastError for the failed call.
func lastError(op string, err error) error {
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return &Error{Op: op, Code: uint32(errno)}
	}
	if errors.As(windows.GetLastError(), &errno) {
		return &Error{Op: op, Code: uint32(errno)}
	}
	return &Error{Op: op, Code: uint32(windows.ERROR_INVALID_HANDLE)}
}

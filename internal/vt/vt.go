package vt

import (
	"errors"
	"fmt"
	"syscall"
)

// VirtualTerminalProcessing is the console output mode bit that makes the console
// interpret VT escape sequences instead of printing them.
const VirtualTerminalProcessing uint32 = 0x0004

// Console opens the console output device of the current process.
type Console interface {
	Open() (Device, error)
}

// Device is an open console output device.
type Device interface {
	Mode() (uint32, error)
	SetMode(mode uint32) error
	Close() error
}

// Error is a failed console call and the last-error code it left behind.
type Error struct {
	Op   string
	Code uint32
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v (code %d)", e.Op, syscall.Errno(e.Code), e.Code)
}

func (e *Error) Unwrap() error { return syscall.Errno(e.Code) }

// Code returns the platform code carried by err, if any.
func Code(err error) (uint32, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Code, true
	}
	return 0, false
}

// Enable turns on VT processing for the device opened by c.
// The mode is written only when the bit is clear; every other bit is kept.
func Enable(c Console) error {
	dev, err := c.Open()
	if err != nil {
		return err
	}
	defer func() { _ = dev.Close() }()

	mode, err := dev.Mode()
	if err != nil {
		return err
	}
	if mode&VirtualTerminalProcessing != 0 {
		return nil
	}
	return dev.SetMode(mode | VirtualTerminalProcessing)
}

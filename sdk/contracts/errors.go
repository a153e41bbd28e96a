package contracts

import (
	"errors"
	"fmt"
)

// Sentinel errors. Typed errors below match them through errors.Is.
var (
	ErrOutOfRange    = errors.New("parameter out of range")
	ErrDevice        = errors.New("MIDI device error")
	ErrSessionClosed = errors.New("MIDI session is not open")
	ErrSessionOpen   = errors.New("MIDI session is already open")
)

// OutOfRangeError reports a message parameter that does not fit its bit width.
// It is a caller bug; nothing was sent.
type OutOfRangeError struct {
	Field string // Parameter name, e.g. "channel".
	Value int    // Rejected value.
	Max   int    // Largest accepted value.
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("%s out of range: %d (max %d)", e.Field, e.Value, e.Max)
}

// Is matches ErrOutOfRange.
func (e *OutOfRangeError) Is(target error) bool {
	return target == ErrOutOfRange
}

// DeviceError reports a Sink call that returned a non-success code.
type DeviceError struct {
	Op   string     // "open", "send" or "close".
	Code ResultCode // Native result code, never ResultOK.
}

func (e *DeviceError) Error() string {
	return fmt.Sprintf("MIDI %s failed: %s (code %d)", e.Op, e.Code, uint32(e.Code))
}

// Is matches ErrDevice.
func (e *DeviceError) Is(target error) bool {
	return target == ErrDevice
}

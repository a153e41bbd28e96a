package contracts

import "fmt"

// Handle identifies an output device opened on a Sink.
type Handle uintptr

// ResultCode is the native result of a Sink call. Zero means success.
type ResultCode uint32

// Result codes shared by every Sink. The values follow the Windows
// multimedia API so the winmm adapter can pass its results through verbatim.
const (
	ResultOK            ResultCode = 0  // Call succeeded.
	ResultError         ResultCode = 1  // Unspecified failure.
	ResultBadDeviceID   ResultCode = 2  // Device index is out of range.
	ResultAllocated     ResultCode = 4  // Device is already in use.
	ResultInvalidHandle ResultCode = 5  // Handle is unknown or already closed.
	ResultNoDriver      ResultCode = 6  // No driver is available on this platform.
	ResultNotReady      ResultCode = 67 // Device is busy sending another message.
	ResultNoDevice      ResultCode = 68 // Port was removed.
)

var resultNames = map[ResultCode]string{
	ResultOK:            "no error",
	ResultError:         "unspecified error",
	ResultBadDeviceID:   "bad device id",
	ResultAllocated:     "device already allocated",
	ResultInvalidHandle: "invalid handle",
	ResultNoDriver:      "no driver",
	ResultNotReady:      "device not ready",
	ResultNoDevice:      "no device",
}

// String returns a readable name for the code, falling back to its number.
func (c ResultCode) String() string {
	if name, ok := resultNames[c]; ok {
		return name
	}
	return fmt.Sprintf("result %d", uint32(c))
}

// Sink is the narrow capability a session needs from an OS MIDI output service.
//
// Send receives a short message packed as a little-endian word: status byte
// in bits 0-7, first data byte in bits 8-15, second data byte in bits 16-23.
type Sink interface {
	Open(deviceIndex uint) (Handle, ResultCode) // Opens the output device at deviceIndex.
	Send(h Handle, msg uint32) ResultCode       // Transmits one short message.
	Close(h Handle) ResultCode                  // Releases the device.
}

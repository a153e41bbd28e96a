//go:build windows
// +build windows

package midiwindows

import (
	"fmt"
	"unsafe"

	"github.com/leandrodaf/midiout/sdk/contracts"
	"golang.org/x/sys/windows"
)

// HMIDIOUT is a winmm MIDI output handle.
type HMIDIOUT windows.Handle

// Load the winmm.dll library and required functions
var (
	winmm               = windows.NewLazySystemDLL("winmm.dll")
	procMidiOutOpen     = winmm.NewProc("midiOutOpen")
	procMidiOutShortMsg = winmm.NewProc("midiOutShortMsg")
	procMidiOutClose    = winmm.NewProc("midiOutClose")
)

// procCall matches windows.LazyProc.Call.
type procCall func(args ...uintptr) (r1, r2 uintptr, lastErr error)

// Sink sends short messages through the Windows multimedia API.
// winmm result codes are returned unchanged.
type Sink struct {
	logger          contracts.Logger
	midiOutOpen     procCall
	midiOutShortMsg procCall
	midiOutClose    procCall
}

// NewSink creates a winmm output sink.
func NewSink(options *contracts.ClientOptions) (contracts.Sink, error) {
	if err := winmm.Load(); err != nil {
		return nil, err
	}
	options.Logger.Info("winmm MIDI output sink created")
	return &Sink{
		logger:          options.Logger,
		midiOutOpen:     procMidiOutOpen.Call,
		midiOutShortMsg: procMidiOutShortMsg.Call,
		midiOutClose:    procMidiOutClose.Call,
	}, nil
}

// Open calls midiOutOpen without a callback.
func (s *Sink) Open(deviceIndex uint) (contracts.Handle, contracts.ResultCode) {
	var h HMIDIOUT
	r1, _, _ := s.midiOutOpen(
		uintptr(unsafe.Pointer(&h)),
		uintptr(deviceIndex),
		0, // dwCallback
		0, // dwInstance
		0, // fdwOpen: CALLBACK_NULL
	)
	if code := contracts.ResultCode(r1); code != contracts.ResultOK {
		return 0, code
	}
	s.logger.Debug(fmt.Sprintf("midiOutOpen device %d handle 0x%X", deviceIndex, uintptr(h)))
	return contracts.Handle(h), contracts.ResultOK
}

// Send calls midiOutShortMsg; msg is already in the DWORD layout winmm expects.
func (s *Sink) Send(h contracts.Handle, msg uint32) contracts.ResultCode {
	r1, _, _ := s.midiOutShortMsg(uintptr(h), uintptr(msg))
	return contracts.ResultCode(r1)
}

// Close calls midiOutClose.
func (s *Sink) Close(h contracts.Handle) contracts.ResultCode {
	r1, _, _ := s.midiOutClose(uintptr(h))
	return contracts.ResultCode(r1)
}

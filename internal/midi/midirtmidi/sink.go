// Package midirtmidi implements a portable output sink on top of gomidi's rtmidi driver.
// The driver needs cgo; builds without it, and Windows and macOS builds, get a
// sink that reports contracts.ResultNoDriver.
package midirtmidi

import (
	"sync"

	"github.com/leandrodaf/midiout/sdk/contracts"
	"github.com/leandrodaf/midiout/sdk/message"
)

// outPort is the part of drivers.Out the sink uses.
type outPort interface {
	Open() error
	Close() error
	Send(data []byte) error
	String() string
}

// Sink sends short messages to rtmidi output ports.
type Sink struct {
	logger  contracts.Logger
	lookup  func(index int) (outPort, error)
	mu      sync.Mutex
	handles map[contracts.Handle]outPort
	next    contracts.Handle
}

func newSink(logger contracts.Logger, lookup func(int) (outPort, error)) *Sink {
	return &Sink{
		logger:  logger,
		lookup:  lookup,
		handles: make(map[contracts.Handle]outPort),
	}
}

// Open opens the rtmidi output port at deviceIndex.
func (s *Sink) Open(deviceIndex uint) (contracts.Handle, contracts.ResultCode) {
	port, err := s.lookup(int(deviceIndex))
	if err != nil {
		s.logger.Error("MIDI output port not found",
			s.logger.Field().Int("deviceIndex", int(deviceIndex)),
			s.logger.Field().Error("error", err))
		return 0, contracts.ResultBadDeviceID
	}
	if err := port.Open(); err != nil {
		s.logger.Error("Failed to open MIDI output port",
			s.logger.Field().String("port", port.String()),
			s.logger.Field().Error("error", err))
		return 0, contracts.ResultAllocated
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.next++
	s.handles[s.next] = port
	return s.next, contracts.ResultOK
}

// Send writes the message's wire bytes to the port behind h.
func (s *Sink) Send(h contracts.Handle, msg uint32) contracts.ResultCode {
	port, ok := s.port(h)
	if !ok {
		return contracts.ResultInvalidHandle
	}
	if err := port.Send(message.FromUint32(msg).Payload()); err != nil {
		s.logger.Error("Failed to send MIDI message", s.logger.Field().Error("error", err))
		return contracts.ResultNotReady
	}
	return contracts.ResultOK
}

// Close closes the port behind h. The handle is released even when the port
// reports an error.
func (s *Sink) Close(h contracts.Handle) contracts.ResultCode {
	s.mu.Lock()
	port, ok := s.handles[h]
	delete(s.handles, h)
	s.mu.Unlock()

	if !ok {
		return contracts.ResultInvalidHandle
	}
	if err := port.Close(); err != nil {
		s.logger.Error("Failed to close MIDI output port", s.logger.Field().Error("error", err))
		return contracts.ResultError
	}
	return contracts.ResultOK
}

func (s *Sink) port(h contracts.Handle) (outPort, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	port, ok := s.handles[h]
	return port, ok
}

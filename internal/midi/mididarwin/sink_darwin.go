//go:build darwin
// +build darwin

package mididarwin

import (
	"errors"
	"fmt"
	"sync"

	"github.com/leandrodaf/midiout/sdk/contracts"
	"github.com/leandrodaf/midiout/sdk/message"
	"github.com/youpy/go-coremidi"
)

// Error definitions for CoreMIDI setup issues.
var (
	ErrCreateClient     = errors.New("error creating CoreMIDI client")
	ErrCreateOutputPort = errors.New("error creating output port")
)

// newClient is replaced in tests.
var newClient = coremidi.NewClient

// Sink sends short messages to a CoreMIDI destination through one output port.
// Each opened destination gets its own handle.
type Sink struct {
	logger     contracts.Logger
	client     coremidi.Client     // CoreMIDI client instance.
	outputPort coremidi.OutputPort // Port every message is sent through.
	mu         sync.Mutex          // Guards handles and next.
	handles    map[contracts.Handle]coremidi.Destination
	next       contracts.Handle
}

// NewSink creates the CoreMIDI client and output port named in options.CoreMIDIConfig.
func NewSink(options *contracts.ClientOptions) (contracts.Sink, error) {
	client, err := newClient(options.CoreMIDIConfig.ClientName)
	if err != nil {
		options.Logger.Error(ErrCreateClient.Error())
		return nil, fmt.Errorf("%w: %v", ErrCreateClient, err)
	}

	port, err := coremidi.NewOutputPort(client, options.CoreMIDIConfig.PortName)
	if err != nil {
		options.Logger.Error(ErrCreateOutputPort.Error())
		return nil, fmt.Errorf("%w: %v", ErrCreateOutputPort, err)
	}
	options.Logger.Info("CoreMIDI output sink created",
		options.Logger.Field().String("client", options.CoreMIDIConfig.ClientName))

	return &Sink{
		logger:     options.Logger,
		client:     client,
		outputPort: port,
		handles:    make(map[contracts.Handle]coremidi.Destination),
	}, nil
}

// Open binds the destination at deviceIndex to a new handle.
func (s *Sink) Open(deviceIndex uint) (contracts.Handle, contracts.ResultCode) {
	destinations, err := coremidi.AllDestinations()
	if err != nil {
		s.logger.Error("Error listing MIDI destinations", s.logger.Field().Error("error", err))
		return 0, contracts.ResultError
	}
	if deviceIndex >= uint(len(destinations)) {
		return 0, contracts.ResultBadDeviceID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.next++
	s.handles[s.next] = destinations[deviceIndex]
	s.logger.Debug("MIDI destination opened",
		s.logger.Field().String("destination", destinations[deviceIndex].Name()))
	return s.next, contracts.ResultOK
}

// Send unpacks the word and sends its wire bytes as a single packet.
func (s *Sink) Send(h contracts.Handle, msg uint32) contracts.ResultCode {
	s.mu.Lock()
	destination, ok := s.handles[h]
	s.mu.Unlock()
	if !ok {
		return contracts.ResultInvalidHandle
	}

	packet := coremidi.Packet{Data: message.FromUint32(msg).Payload()}
	if err := packet.Send(&s.outputPort, &destination); err != nil {
		s.logger.Error("Error sending MIDI packet", s.logger.Field().Error("error", err))
		return contracts.ResultNoDevice
	}
	return contracts.ResultOK
}

// Close forgets the handle. The output port stays alive for later opens.
func (s *Sink) Close(h contracts.Handle) contracts.ResultCode {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.handles[h]; !ok {
		return contracts.ResultInvalidHandle
	}
	delete(s.handles, h)
	return contracts.ResultOK
}

//go:build !darwin
// +build !darwin

package mididarwin

import (
	"github.com/leandrodaf/midiout/sdk/contracts"
)

type DummySink struct {
	logger contracts.Logger
}

func NewSink(options *contracts.ClientOptions) (contracts.Sink, error) {
	options.Logger.Info("Using dummy MIDI sink for non-macOS system")
	return &DummySink{
		logger: options.Logger,
	}, nil
}

func (s *DummySink) Open(deviceIndex uint) (contracts.Handle, contracts.ResultCode) {
	s.logger.Warn("Open called on dummy MIDI sink")
	return 0, contracts.ResultNoDriver
}

func (s *DummySink) Send(h contracts.Handle, msg uint32) contracts.ResultCode {
	s.logger.Warn("Send called on dummy MIDI sink")
	return contracts.ResultNoDriver
}

func (s *DummySink) Close(h contracts.Handle) contracts.ResultCode {
	s.logger.Warn("Close called on dummy MIDI sink")
	return contracts.ResultNoDriver
}

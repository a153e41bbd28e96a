//go:build !windows
// +build !windows

package midiwindows

import (
	"github.com/leandrodaf/midiout/sdk/contracts"
)

type dummySink struct {
	logger contracts.Logger
}

// NewSink returns a sink that reports ResultNoDriver for every call on non-Windows systems.
func NewSink(options *contracts.ClientOptions) (contracts.Sink, error) {
	options.Logger.Info("Using dummy MIDI sink for non-Windows system")
	return &dummySink{
		logger: options.Logger,
	}, nil
}

func (s *dummySink) Open(deviceIndex uint) (contracts.Handle, contracts.ResultCode) {
	s.logger.Warn("Open called on dummy MIDI sink")
	return 0, contracts.ResultNoDriver
}

func (s *dummySink) Send(h contracts.Handle, msg uint32) contracts.ResultCode {
	s.logger.Warn("Send called on dummy MIDI sink")
	return contracts.ResultNoDriver
}

func (s *dummySink) Close(h contracts.Handle) contracts.ResultCode {
	s.logger.Warn("Close called on dummy MIDI sink")
	return contracts.ResultNoDriver
}

//go:build darwin || windows || !cgo
// +build darwin windows !cgo

package midirtmidi

import (
	"github.com/leandrodaf/midiout/sdk/contracts"
)

type dummySink struct {
	logger contracts.Logger
}

// NewSink returns a sink that reports ResultNoDriver for every call when the
// rtmidi driver is not compiled in.
func NewSink(options *contracts.ClientOptions) (contracts.Sink, error) {
	options.Logger.Info("Using dummy MIDI sink; rtmidi requires cgo")
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

//go:build !darwin && !windows && cgo
// +build !darwin,!windows,cgo

package midirtmidi

import (
	"github.com/leandrodaf/midiout/sdk/contracts"
	"gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // Register rtmidi driver
)

// NewSink creates an rtmidi output sink.
func NewSink(options *contracts.ClientOptions) (contracts.Sink, error) {
	options.Logger.Info("rtmidi output sink created")
	return newSink(options.Logger, lookupOutPort), nil
}

func lookupOutPort(index int) (outPort, error) {
	return midi.OutPort(index)
}

package midi

import (
	"runtime"

	"github.com/leandrodaf/midiout/internal/midi/mididarwin"
	"github.com/leandrodaf/midiout/internal/midi/midirtmidi"
	"github.com/leandrodaf/midiout/internal/midi/midiwindows"
	"github.com/leandrodaf/midiout/sdk/contracts"
)

// sinkInitializers maps OS names to the native output sink for that system.
var sinkInitializers = map[string]func(*contracts.ClientOptions) (contracts.Sink, error){
	"darwin":  mididarwin.NewSink,  // macOS (Darwin) CoreMIDI sink.
	"windows": midiwindows.NewSink, // Windows winmm sink.
}

// NewSink returns the output sink for the current operating system.
// Systems without a native sink fall back to rtmidi.
//
// opts *contracts.ClientOptions: Configuration options for the sink.
//
// Returns:
//   - contracts.Sink: The platform output sink.
//   - error: An error if the sink could not be initialized.
func NewSink(opts *contracts.ClientOptions) (contracts.Sink, error) {
	if initializer, exists := sinkInitializers[runtime.GOOS]; exists {
		return initializer(opts)
	}
	return midirtmidi.NewSink(opts)
}

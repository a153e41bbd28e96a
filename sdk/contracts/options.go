package contracts

// CoreMIDIConfig holds configuration for CoreMIDI.
type CoreMIDIConfig struct {
	ClientName string // Name of the MIDI client.
	PortName   string // Name of the output port created on the client.
}

// ClientOptions defines the configuration options for a MIDI output session.
type ClientOptions struct {
	Logger         Logger          // Logger for logging events and errors.
	LogLevel       LogLevel        // Level of logging to use.
	LogFilePath    string          // File path for logging if file logging is enabled.
	Sink           Sink            // Output service; chosen by operating system when nil.
	DeviceIndex    uint            // Index of the output device to open.
	CoreMIDIConfig *CoreMIDIConfig // Configuration specific to CoreMIDI.
}

// Option is a function that modifies ClientOptions.
type Option func(*ClientOptions)

// WithLogger sets the logger for the session.
func WithLogger(l Logger) Option {
	return func(opts *ClientOptions) {
		opts.Logger = l
	}
}

// WithLogLevel sets the logging level for the session.
func WithLogLevel(level LogLevel) Option {
	return func(opts *ClientOptions) {
		opts.LogLevel = level
	}
}

// WithLogFilePath sends log output to the given file instead of the console.
func WithLogFilePath(path string) Option {
	return func(opts *ClientOptions) {
		opts.LogFilePath = path
	}
}

// WithSink replaces the platform output service, typically with a fake in tests.
func WithSink(s Sink) Option {
	return func(opts *ClientOptions) {
		opts.Sink = s
	}
}

// WithDeviceIndex selects the output device to open. The default is 0,
// the system's first output device.
func WithDeviceIndex(index uint) Option {
	return func(opts *ClientOptions) {
		opts.DeviceIndex = index
	}
}

// WithCoreMIDIConfig sets the CoreMIDI configuration for the session.
func WithCoreMIDIConfig(config CoreMIDIConfig) Option {
	return func(opts *ClientOptions) {
		opts.CoreMIDIConfig = &config
	}
}

package midi

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/leandrodaf/midiout/sdk/contracts"
	"github.com/leandrodaf/midiout/sdk/message"
	"go.uber.org/multierr"
)

// Session owns one output device handle on a Sink.
//
// A session starts Closed. Open acquires the device, SelectInstrument,
// PlayNote and StopNote send messages while it is Open, and Close releases
// it. A session can be reopened after Close.
type Session struct {
	id          string
	logger      contracts.Logger
	sink        contracts.Sink
	deviceIndex uint

	mu     sync.Mutex // Serializes sink calls; the device handle is not safe for concurrent use.
	handle contracts.Handle
	open   bool
}

// NewSession creates a closed session with the specified options.
// It applies default options, including the sink for the current operating system.
//
// opts ...contracts.Option: A variadic list of option functions to customize the session.
//
// Returns:
//   - *Session: A closed session.
//   - error: An error, if the platform sink could not be created.
func NewSession(opts ...contracts.Option) (*Session, error) {
	options, err := applyDefaultOptions(opts...)
	if err != nil {
		return nil, err
	}

	return &Session{
		id:          uuid.NewString(),
		logger:      options.Logger,
		sink:        options.Sink,
		deviceIndex: options.DeviceIndex,
	}, nil
}

// ID returns the identifier used to correlate this session's log entries.
func (s *Session) ID() string {
	return s.id
}

// IsOpen reports whether the session holds a device handle.
func (s *Session) IsOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.open
}

// Open acquires the configured output device.
// On failure the session stays Closed and the error is a *contracts.DeviceError.
func (s *Session) Open() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.open {
		return contracts.ErrSessionOpen
	}

	handle, code := s.sink.Open(s.deviceIndex)
	if code != contracts.ResultOK {
		return s.deviceError("open", code)
	}

	s.handle = handle
	s.open = true
	s.logger.Info("MIDI output device opened",
		s.logger.Field().String("session", s.id),
		s.logger.Field().Int("deviceIndex", int(s.deviceIndex)))
	return nil
}

// SelectInstrument sends a Program Change assigning instrument to channel.
func (s *Session) SelectInstrument(channel, instrument uint8) error {
	msg, err := message.EncodeProgramChange(channel, instrument)
	if err != nil {
		return fmt.Errorf("select instrument: %w", err)
	}
	return s.send(msg)
}

// PlayNote sends a Note On. Velocity is expected to be above zero; zero
// silences the note, see StopNote.
func (s *Session) PlayNote(channel, pitch, velocity uint8) error {
	msg, err := message.EncodeNoteOn(channel, pitch, velocity)
	if err != nil {
		return fmt.Errorf("play note: %w", err)
	}
	return s.send(msg)
}

// StopNote silences pitch on channel with a zero-velocity Note On.
func (s *Session) StopNote(channel, pitch uint8) error {
	return s.PlayNote(channel, pitch, 0)
}

// Close releases the device handle. Closing a session that is not open
// returns contracts.ErrSessionClosed and does not touch the sink.
//
// The session is Closed afterwards even if the sink reports an error, so the
// handle is never released twice.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.open {
		return contracts.ErrSessionClosed
	}

	handle := s.handle
	s.handle = 0
	s.open = false

	if code := s.sink.Close(handle); code != contracts.ResultOK {
		return s.deviceError("close", code)
	}
	s.logger.Info("MIDI output device closed", s.logger.Field().String("session", s.id))
	return nil
}

// Run opens s, calls fn and closes s on every path.
// Errors from fn and Close are combined.
func Run(s *Session, fn func(*Session) error) (err error) {
	if err := s.Open(); err != nil {
		return err
	}
	defer func() {
		err = multierr.Append(err, s.Close())
	}()
	return fn(s)
}

func (s *Session) send(msg message.ShortMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.open {
		return contracts.ErrSessionClosed
	}

	word := msg.Uint32()
	if code := s.sink.Send(s.handle, word); code != contracts.ResultOK {
		return s.deviceError("send", code)
	}
	s.logger.Debug(fmt.Sprintf("MIDI message sent: 0x%08X", word),
		s.logger.Field().String("session", s.id),
		s.logger.Field().Uint8("status", msg.Status()),
		s.logger.Field().Uint8("channel", msg.Channel()),
		s.logger.Field().Bool("noteOff", msg.IsNoteOff()))
	return nil
}

// deviceError logs and returns a failed sink call. Caller holds s.mu.
func (s *Session) deviceError(op string, code contracts.ResultCode) error {
	err := &contracts.DeviceError{Op: op, Code: code}
	s.logger.Error("MIDI device call failed",
		s.logger.Field().String("session", s.id),
		s.logger.Field().String("op", op),
		s.logger.Field().Int("code", int(code)))
	return err
}

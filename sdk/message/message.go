// Package message builds MIDI channel-voice short messages.
//
// A short message is four bytes: status, two data bytes and an unused byte
// that is always zero. The status byte carries the message signature in its
// high nibble and the channel in its low nibble.
package message

import (
	"encoding/binary"

	"github.com/leandrodaf/midiout/sdk/contracts"
)

// Parameter limits.
const (
	MaxChannel    = 15  // 4 bits
	MaxDataValue  = 127 // 7 bits
	MaxPitch      = MaxDataValue
	MaxVelocity   = MaxDataValue
	MaxInstrument = MaxDataValue
)

// Message signatures, stored in the high nibble of the status byte.
const (
	noteOffSignature         = 0b1000
	noteOnSignature          = 0b1001
	programChangeSignature   = 0b1100
	channelPressureSignature = 0b1101
)

// General MIDI programs and notes used by the demo.
const (
	GrandPiano          uint8 = 0
	AcousticGuitarNylon uint8 = 24
	MiddleC             uint8 = 60
)

// ShortMessage is an encoded 4-byte MIDI short message.
type ShortMessage [4]byte

// EncodeProgramChange selects instrument on channel.
//
//	[0] 1100 CCCC  status
//	[1] 0III IIII  instrument
//	[2] 0000 0000
//	[3] 0000 0000
func EncodeProgramChange(channel, instrument uint8) (ShortMessage, error) {
	if err := verifyLimit("channel", channel, MaxChannel); err != nil {
		return ShortMessage{}, err
	}
	if err := verifyLimit("instrument", instrument, MaxInstrument); err != nil {
		return ShortMessage{}, err
	}
	return ShortMessage{statusByte(programChangeSignature, channel), instrument, 0, 0}, nil
}

// EncodeNoteOn starts pitch on channel. A velocity of 0 is encoded as is and
// is understood by devices as Note Off.
//
//	[0] 1001 CCCC  status
//	[1] 0PPP PPPP  pitch
//	[2] 0VVV VVVV  velocity
//	[3] 0000 0000
func EncodeNoteOn(channel, pitch, velocity uint8) (ShortMessage, error) {
	if err := verifyLimit("channel", channel, MaxChannel); err != nil {
		return ShortMessage{}, err
	}
	if err := verifyLimit("pitch", pitch, MaxPitch); err != nil {
		return ShortMessage{}, err
	}
	if err := verifyLimit("velocity", velocity, MaxVelocity); err != nil {
		return ShortMessage{}, err
	}
	return ShortMessage{statusByte(noteOnSignature, channel), pitch, velocity, 0}, nil
}

// FromUint32 unpacks a little-endian word produced by Uint32.
func FromUint32(word uint32) ShortMessage {
	var m ShortMessage
	binary.LittleEndian.PutUint32(m[:], word)
	return m
}

// Uint32 packs the message into the word expected by word-based sinks:
// byte 0 in bits 0-7 through byte 3 in bits 24-31.
func (m ShortMessage) Uint32() uint32 {
	return binary.LittleEndian.Uint32(m[:])
}

// Status returns the status byte.
func (m ShortMessage) Status() byte { return m[0] }

// Channel returns the channel carried in the low nibble of the status byte.
func (m ShortMessage) Channel() uint8 { return m[0] & 0x0F }

// Payload returns the bytes that go on a byte-stream transport. Program
// Change and Channel Pressure carry a single data byte.
func (m ShortMessage) Payload() []byte {
	switch m[0] >> 4 {
	case programChangeSignature, channelPressureSignature:
		return []byte{m[0], m[1]}
	default:
		return []byte{m[0], m[1], m[2]}
	}
}

// IsNoteOff reports whether the message silences a note, either through a
// Note Off status or a Note On with zero velocity.
func (m ShortMessage) IsNoteOff() bool {
	switch m[0] >> 4 {
	case noteOffSignature:
		return true
	case noteOnSignature:
		return m[2] == 0
	}
	return false
}

// statusByte shifts the signature into the high nibble, then ors in the channel.
func statusByte(signature, channel uint8) byte {
	status := (signature & 0x0F) << 4
	status |= channel & 0x0F
	return status
}

func verifyLimit(field string, value, max uint8) error {
	if value > max {
		return &contracts.OutOfRangeError{Field: field, Value: int(value), Max: int(max)}
	}
	return nil
}

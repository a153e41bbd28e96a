package message_test

import (
	"errors"
	"testing"

	"github.com/leandrodaf/midiout/sdk/contracts"
	. "github.com/leandrodaf/midiout/sdk/message"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/gomidi/midi/v2"
)

func TestEncodeProgramChangeScenarios(t *testing.T) {
	msg, err := EncodeProgramChange(0, GrandPiano)
	require.NoError(t, err)
	assert.Equal(t, ShortMessage{0xC0, 0x00, 0x00, 0x00}, msg)

	msg, err = EncodeProgramChange(1, AcousticGuitarNylon)
	require.NoError(t, err)
	assert.Equal(t, ShortMessage{0xC1, 0x18, 0x00, 0x00}, msg)
}

func TestEncodeNoteOnScenarios(t *testing.T) {
	msg, err := EncodeNoteOn(0, MiddleC, MaxVelocity)
	require.NoError(t, err)
	assert.Equal(t, ShortMessage{0x90, 0x3C, 0x7F, 0x00}, msg)

	msg, err = EncodeNoteOn(0, MiddleC, 0)
	require.NoError(t, err)
	assert.Equal(t, ShortMessage{0x90, 0x3C, 0x00, 0x00}, msg)
	assert.True(t, msg.IsNoteOff())
}

func TestEncodeProgramChangeAllValid(t *testing.T) {
	for channel := 0; channel <= MaxChannel; channel++ {
		for instrument := 0; instrument <= MaxInstrument; instrument++ {
			msg, err := EncodeProgramChange(uint8(channel), uint8(instrument))
			require.NoError(t, err)
			if msg[0] != byte(0xC0|channel) || msg[1] != byte(instrument) || msg[2] != 0 || msg[3] != 0 {
				t.Fatalf("channel %d instrument %d: got % X", channel, instrument, msg[:])
			}
		}
	}
}

func TestEncodeNoteOnAllValid(t *testing.T) {
	for channel := 0; channel <= MaxChannel; channel++ {
		for pitch := 0; pitch <= MaxPitch; pitch++ {
			for velocity := 0; velocity <= MaxVelocity; velocity++ {
				msg, err := EncodeNoteOn(uint8(channel), uint8(pitch), uint8(velocity))
				if err != nil {
					t.Fatalf("channel %d pitch %d velocity %d: %v", channel, pitch, velocity, err)
				}
				want := ShortMessage{byte(0x90 | channel), byte(pitch), byte(velocity), 0}
				if msg != want {
					t.Fatalf("channel %d pitch %d velocity %d: got % X want % X", channel, pitch, velocity, msg[:], want[:])
				}
			}
		}
	}
}

func TestEncodeMatchesGomidi(t *testing.T) {
	for channel := uint8(0); channel <= MaxChannel; channel++ {
		pc, err := EncodeProgramChange(channel, 42)
		require.NoError(t, err)
		assert.Equal(t, []byte(midi.ProgramChange(channel, 42)), pc.Payload())

		on, err := EncodeNoteOn(channel, 64, 100)
		require.NoError(t, err)
		assert.Equal(t, []byte(midi.NoteOn(channel, 64, 100)), on.Payload())
	}
}

func TestEncodeOutOfRange(t *testing.T) {
	tests := []struct {
		name  string
		enc   func() (ShortMessage, error)
		field string
		value int
		max   int
	}{
		{"program change channel", func() (ShortMessage, error) { return EncodeProgramChange(16, 0) }, "channel", 16, 15},
		{"program change instrument", func() (ShortMessage, error) { return EncodeProgramChange(0, 128) }, "instrument", 128, 127},
		{"note on channel", func() (ShortMessage, error) { return EncodeNoteOn(255, 60, 100) }, "channel", 255, 15},
		{"note on pitch", func() (ShortMessage, error) { return EncodeNoteOn(0, 200, 100) }, "pitch", 200, 127},
		{"note on velocity", func() (ShortMessage, error) { return EncodeNoteOn(0, 60, 128) }, "velocity", 128, 127},
		{"channel checked first", func() (ShortMessage, error) { return EncodeNoteOn(16, 128, 128) }, "channel", 16, 15},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, err := tt.enc()
			require.Error(t, err)
			assert.Equal(t, ShortMessage{}, msg)
			assert.True(t, errors.Is(err, contracts.ErrOutOfRange))

			var rangeErr *contracts.OutOfRangeError
			require.ErrorAs(t, err, &rangeErr)
			assert.Equal(t, tt.field, rangeErr.Field)
			assert.Equal(t, tt.value, rangeErr.Value)
			assert.Equal(t, tt.max, rangeErr.Max)
		})
	}
}

func TestEncodeOutOfRangeEveryInvalidValue(t *testing.T) {
	for v := 16; v <= 255; v++ {
		_, err := EncodeProgramChange(uint8(v), 0)
		assert.ErrorIs(t, err, contracts.ErrOutOfRange, "channel %d", v)
	}
	for v := 128; v <= 255; v++ {
		_, err := EncodeProgramChange(0, uint8(v))
		assert.ErrorIs(t, err, contracts.ErrOutOfRange, "instrument %d", v)
		_, err = EncodeNoteOn(0, uint8(v), 1)
		assert.ErrorIs(t, err, contracts.ErrOutOfRange, "pitch %d", v)
		_, err = EncodeNoteOn(0, 1, uint8(v))
		assert.ErrorIs(t, err, contracts.ErrOutOfRange, "velocity %d", v)
	}
}

func TestEncodeIsIdempotent(t *testing.T) {
	a, err := EncodeNoteOn(9, 36, 90)
	require.NoError(t, err)
	b, err := EncodeNoteOn(9, 36, 90)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	c, err := EncodeProgramChange(9, 118)
	require.NoError(t, err)
	d, err := EncodeProgramChange(9, 118)
	require.NoError(t, err)
	assert.Equal(t, c, d)
}

func TestUint32IsLittleEndian(t *testing.T) {
	msg, err := EncodeNoteOn(0, MiddleC, MaxVelocity)
	require.NoError(t, err)
	assert.Equal(t, uint32(0x007F3C90), msg.Uint32())

	msg, err = EncodeProgramChange(1, AcousticGuitarNylon)
	require.NoError(t, err)
	assert.Equal(t, uint32(0x000018C1), msg.Uint32())

	assert.Equal(t, msg, FromUint32(msg.Uint32()))
}

func TestAccessors(t *testing.T) {
	msg, err := EncodeNoteOn(5, 61, 20)
	require.NoError(t, err)
	assert.Equal(t, byte(0x95), msg.Status())
	assert.Equal(t, uint8(5), msg.Channel())
	assert.Equal(t, []byte{0x95, 61, 20}, msg.Payload())
	assert.False(t, msg.IsNoteOff())

	pc, err := EncodeProgramChange(15, 127)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xCF, 0x7F}, pc.Payload())
	assert.False(t, pc.IsNoteOff())
}

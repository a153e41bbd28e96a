package main

import (
	"fmt"
	"os"
	"time"

	"github.com/leandrodaf/midiout/internal/logger"
	"github.com/leandrodaf/midiout/sdk/contracts"
	"github.com/leandrodaf/midiout/sdk/message"
	"github.com/leandrodaf/midiout/sdk/midi"
)

const holdDuration = 3 * time.Second

func main() {
	log := logger.NewZapLogger()

	session, err := midi.NewSession(
		contracts.WithLogger(log),
		contracts.WithLogLevel(contracts.InfoLevel),
		contracts.WithDeviceIndex(0), // System's MIDI device is at index 0
	)
	if err != nil {
		log.Error("Failed to initialize MIDI session", log.Field().Error("error", err))
		os.Exit(1)
	}

	err = midi.Run(session, func(s *midi.Session) error {
		if err := s.SelectInstrument(0, message.GrandPiano); err != nil {
			return err
		}
		if err := s.SelectInstrument(1, message.AcousticGuitarNylon); err != nil {
			return err
		}

		fmt.Println("Play Piano C Note")
		if err := holdNote(s, 0, message.MiddleC); err != nil {
			return err
		}

		fmt.Println("Play Guitar C Note")
		return holdNote(s, 1, message.MiddleC)
	})
	if err != nil {
		log.Error("MIDI playback failed", log.Field().Error("error", err))
		os.Exit(1)
	}
}

// holdNote plays pitch on channel at full velocity for holdDuration.
func holdNote(s *midi.Session, channel, pitch uint8) error {
	if err := s.PlayNote(channel, pitch, message.MaxVelocity); err != nil {
		return err
	}
	time.Sleep(holdDuration)
	return s.StopNote(channel, pitch)
}

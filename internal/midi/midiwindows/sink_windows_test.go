//go:build windows
// +build windows

package midiwindows

import (
	"testing"
	"unsafe"

	"github.com/leandrodaf/midiout/internal/logger"
	"github.com/leandrodaf/midiout/sdk/contracts"
	"github.com/leandrodaf/midiout/sdk/message"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type recordedCall struct {
	args []uintptr
}

func recorder(calls *[]recordedCall, result uintptr) procCall {
	return func(args ...uintptr) (uintptr, uintptr, error) {
		*calls = append(*calls, recordedCall{args: args})
		return result, 0, nil
	}
}

func newTestSink(openResult, sendResult, closeResult uintptr) (*Sink, *[]recordedCall, *[]recordedCall, *[]recordedCall) {
	var opens, sends, closes []recordedCall
	open := recorder(&opens, openResult)
	return &Sink{
		logger: logger.NewZapLoggerFrom(zap.NewNop()),
		midiOutOpen: func(args ...uintptr) (uintptr, uintptr, error) {
			if openResult == 0 {
				*(*HMIDIOUT)(unsafe.Pointer(args[0])) = 0x1234
			}
			return open(args...)
		},
		midiOutShortMsg: recorder(&sends, sendResult),
		midiOutClose:    recorder(&closes, closeResult),
	}, &opens, &sends, &closes
}

func TestSinkSendPassesWordUnchanged(t *testing.T) {
	sink, opens, sends, closes := newTestSink(0, 0, 0)

	h, code := sink.Open(0)
	require.Equal(t, contracts.ResultOK, code)
	assert.Equal(t, contracts.Handle(0x1234), h)
	require.Len(t, *opens, 1)
	assert.Equal(t, uintptr(0), (*opens)[0].args[1])

	on, err := message.EncodeNoteOn(0, message.MiddleC, message.MaxVelocity)
	require.NoError(t, err)
	pc, err := message.EncodeProgramChange(1, message.AcousticGuitarNylon)
	require.NoError(t, err)

	assert.Equal(t, contracts.ResultOK, sink.Send(h, on.Uint32()))
	assert.Equal(t, contracts.ResultOK, sink.Send(h, pc.Uint32()))
	require.Len(t, *sends, 2)
	assert.Equal(t, []uintptr{0x1234, 0x007F3C90}, (*sends)[0].args)
	assert.Equal(t, []uintptr{0x1234, 0x000018C1}, (*sends)[1].args)

	assert.Equal(t, contracts.ResultOK, sink.Close(h))
	assert.Equal(t, []uintptr{0x1234}, (*closes)[0].args)
}

func TestSinkReturnsWinmmCodes(t *testing.T) {
	sink, _, _, _ := newTestSink(uintptr(contracts.ResultAllocated), uintptr(contracts.ResultNotReady), uintptr(contracts.ResultInvalidHandle))

	h, code := sink.Open(3)
	assert.Equal(t, contracts.Handle(0), h)
	assert.Equal(t, contracts.ResultAllocated, code)
	assert.Equal(t, contracts.ResultNotReady, sink.Send(7, 0x007F3C90))
	assert.Equal(t, contracts.ResultInvalidHandle, sink.Close(7))
}

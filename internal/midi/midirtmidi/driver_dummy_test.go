//go:build darwin || windows || !cgo
// +build darwin windows !cgo

package midirtmidi

import (
	"testing"

	"github.com/leandrodaf/midiout/internal/logger"
	"github.com/leandrodaf/midiout/sdk/contracts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestDummySinkReportsNoDriver(t *testing.T) {
	sink, err := NewSink(&contracts.ClientOptions{Logger: logger.NewZapLoggerFrom(zap.NewNop())})
	require.NoError(t, err)

	_, code := sink.Open(0)
	assert.Equal(t, contracts.ResultNoDriver, code)
	assert.Equal(t, contracts.ResultNoDriver, sink.Send(1, 0x007F3C90))
	assert.Equal(t, contracts.ResultNoDriver, sink.Close(1))
}

package console

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"console/internal/config"
	"console/internal/config/logger"
)

func Test_Receiver_Write(t *testing.T) {
	l := NewLog(10, nil)
	r := NewReceiver(l)

	n, err := r.Write([]byte("Decoding error\n"))
	require.NoError(t, err)
	assert.Equal(t, 15, n)

	n, err = r.Write([]byte("\r\n"))
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	snapshot := l.Snapshot()
	require.Len(t, snapshot, 1)
	assert.Equal(t, "Decoding error", snapshot[0].Text)
}

func Test_Receiver_Receive(t *testing.T) {
	l := NewLog(10, nil)
	r := NewReceiver(l)

	msg, ok := r.Receive("Opening track\nfor playback")
	assert.True(t, ok)
	assert.Equal(t, "Opening track\r\nfor playback", msg.Text)

	_, ok = r.Receive("\n\n")
	assert.False(t, ok)
}

func Test_Decode(t *testing.T) {
	tests := []struct {
		name     string
		input    []byte
		expected string
	}{
		{name: "ascii", input: []byte("plain"), expected: "plain"},
		{name: "utf8", input: []byte("Beyoncé – Halo"), expected: "Beyoncé – Halo"},
		{name: "windows-1252", input: []byte{'c', 'a', 'f', 0xe9, ' ', 0x96, ' ', 'x'}, expected: "café – x"},
		{name: "empty", input: []byte{}, expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Decode(tt.input))
		})
	}
}

func Test_bindSink(t *testing.T) {
	l := NewLog(10, nil)
	sink := logger.NewSink()

	bindSink(sink, NewReceiver(l))

	log := logger.NewPanelLogger(config.DefaultConfig(), sink)
	log.WithComponent("PLAYBACK").Info().Msg("Unable to open item for playback")

	snapshot := l.Snapshot()
	require.Len(t, snapshot, 1)
	assert.Contains(t, snapshot[0].Text, "[PLAYBACK]")
	assert.Contains(t, snapshot[0].Text, "Unable to open item for playback")
	assert.NotContains(t, snapshot[0].Text, "\n")
}

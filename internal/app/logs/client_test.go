package logs

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"console/internal/app/errors"
	"console/internal/config/logger"
)

func createTestFormatter() *Formatter {
	return newFormatter(logger.ConsoleFormat, false)
}

// pipeClient returns a client wired to one end of an in-memory connection
func pipeClient(t *testing.T) (*client, net.Conn) {
	t.Helper()

	local, remote := net.Pipe()
	t.Cleanup(func() {
		local.Close()
		remote.Close()
	})

	return &client{conn: local, formatter: createTestFormatter()}, remote
}

func readLine(t *testing.T, reader *bufio.Reader) map[string]any {
	t.Helper()

	line, err := reader.ReadBytes('\n')
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(line, &decoded))

	return decoded
}

func Test_NewClient(t *testing.T) {
	c := NewClient(createTestFormatter())
	assert.NotNil(t, c)

	impl, ok := c.(*client)
	assert.True(t, ok)
	assert.NotNil(t, impl.formatter)
	assert.Nil(t, impl.conn)
}

func Test_Connect(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		dir, err := os.MkdirTemp("", "cc")
		require.NoError(t, err)
		t.Cleanup(func() { os.RemoveAll(dir) })

		socketPath := filepath.Join(dir, "c.sock")

		listener, err := net.Listen("unix", socketPath)
		require.NoError(t, err)

		defer listener.Close()

		c := NewClient(createTestFormatter())
		require.NoError(t, c.Connect(socketPath))

		defer c.Close()

		assert.NotNil(t, c.(*client).conn)
	})

	t.Run("Failure - socket not found", func(t *testing.T) {
		c := NewClient(createTestFormatter())
		err := c.Connect("/nonexistent/path/test.sock")
		assert.ErrorIs(t, err, errors.ErrFailedToConnectSocket)
	})
}

func Test_Client_Requests(t *testing.T) {
	tests := []struct {
		name     string
		call     func(c *client) error
		expected map[string]any
	}{
		{
			name:     "Hello",
			call:     func(c *client) error { return c.Hello(RolePublish) },
			expected: map[string]any{"type": "hello", "role": "publish"},
		},
		{
			name:     "Send",
			call:     func(c *client) error { return c.Send("build done") },
			expected: map[string]any{"type": "message", "text": "build done"},
		},
		{
			name:     "Clear",
			call:     func(c *client) error { return c.Clear() },
			expected: map[string]any{"type": "clear"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, remote := pipeClient(t)
			reader := bufio.NewReader(remote)

			errCh := make(chan error, 1)
			go func() { errCh <- tt.call(c) }()

			assert.Equal(t, tt.expected, readLine(t, reader))
			assert.NoError(t, <-errCh)
		})
	}
}

func Test_Client_Send_Empty(t *testing.T) {
	c, _ := pipeClient(t)

	for _, text := range []string{"", "\r\n", "\n\n"} {
		assert.ErrorIs(t, c.Send(text), errors.ErrEmptyMessage)
	}
}

func Test_Client_Send_WriteFailure(t *testing.T) {
	c, remote := pipeClient(t)
	remote.Close()

	err := c.Send("lost")
	assert.ErrorIs(t, err, errors.ErrFailedToWriteSocket)
}

func Test_Client_Stream(t *testing.T) {
	c, remote := pipeClient(t)

	var out bytes.Buffer

	done := make(chan error, 1)
	go func() { done <- c.Stream(context.Background(), &out) }()

	ts := time.Date(2024, 3, 1, 9, 5, 7, 0, time.Local)
	lines := []any{
		LogMessage{Type: MessageText, Seq: 1, Timestamp: ts, Text: "first"},
		map[string]string{"type": "unknown"},
		LogMessage{Type: MessageClear, Generation: 1},
		LogMessage{Type: MessageText, Seq: 2, Timestamp: ts, Text: "second"},
	}

	for _, line := range lines {
		data, err := json.Marshal(line)
		require.NoError(t, err)

		_, err = remote.Write(append(data, '\n'))
		require.NoError(t, err)
	}

	_, err := remote.Write([]byte("not json\n"))
	require.NoError(t, err)

	remote.Close()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Stream did not return after EOF")
	}

	assert.Equal(t, "[09:05:07] first\n-- console cleared --\n[09:05:07] second\n", out.String())
}

func Test_Client_Stream_ContextCancel(t *testing.T) {
	c, _ := pipeClient(t)

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- c.Stream(ctx, &bytes.Buffer{}) }()

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Stream did not return after cancel")
	}
}

func Test_Client_Close(t *testing.T) {
	assert.NoError(t, NewClient(createTestFormatter()).Close())

	c, _ := pipeClient(t)
	assert.NoError(t, c.Close())
}

func Test_FindSocket(t *testing.T) {
	t.Run("Found", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "c.sock")
		require.NoError(t, os.WriteFile(path, nil, 0o600))

		got, err := FindSocket(path)
		require.NoError(t, err)
		assert.Equal(t, path, got)
	})

	t.Run("Missing", func(t *testing.T) {
		_, err := FindSocket(filepath.Join(t.TempDir(), "missing.sock"))
		assert.ErrorIs(t, err, errors.ErrNoInstanceRunning)
	})
}

//go:generate mockgen -source=client.go -destination=client_mock.go -package=logs
package logs

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"os"

	"console/internal/app/console"
	"console/internal/app/errors"
)

// Client connects to a running console
type Client interface {
	Connect(socketPath string) error
	Hello(role Role) error
	Send(text string) error
	Clear() error
	Stream(ctx context.Context, output io.Writer) error
	Close() error
}

type client struct {
	conn      net.Conn
	formatter *Formatter
}

// NewClient creates a new client with the given formatter
func NewClient(formatter *Formatter) Client {
	return &client{
		formatter: formatter,
	}
}

// Connect connects to the console socket
func (c *client) Connect(socketPath string) error {
	conn, err := net.Dial("unix", socketPath)
	if err != nil {
		return fmt.Errorf("%w: %w", errors.ErrFailedToConnectSocket, err)
	}

	c.conn = conn

	return nil
}

// Hello declares whether this connection publishes or subscribes
func (c *client) Hello(role Role) error {
	return c.write(HelloRequest{Type: MessageHello, Role: role})
}

// Send publishes one message. Text that is empty after normalization is rejected locally.
func (c *client) Send(text string) error {
	if console.Normalize(text) == "" {
		return errors.ErrEmptyMessage
	}

	return c.write(LogMessage{Type: MessageText, Text: text})
}

// Clear asks the console to drop every message
func (c *client) Clear() error {
	return c.write(LogMessage{Type: MessageClear})
}

// Stream reads console changes and writes them to output
func (c *client) Stream(ctx context.Context, output io.Writer) error {
	go func() {
		<-ctx.Done()
		c.conn.Close()
	}()

	reader := bufio.NewReader(c.conn)

	for {
		line, err := reader.ReadBytes('\n')
		if err != nil {
			if err == io.EOF || ctx.Err() != nil {
				return nil
			}

			return fmt.Errorf("%w: %w", errors.ErrFailedToReadSocket, err)
		}

		var head header
		if err := json.Unmarshal(line, &head); err != nil {
			continue
		}

		switch head.Type {
		case MessageStatus:
			var status StatusMessage
			if err := json.Unmarshal(line, &status); err == nil {
				c.formatter.RenderBanner(output, status)
			}
		case MessageText:
			var msg LogMessage
			if err := json.Unmarshal(line, &msg); err == nil {
				c.formatter.WriteFormatted(output, msg)
			}
		case MessageClear:
			c.formatter.WriteCleared(output)
		}
	}
}

// Close closes the connection
func (c *client) Close() error {
	if c.conn != nil {
		return c.conn.Close()
	}

	return nil
}

func (c *client) write(v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("%w: %w", errors.ErrFailedToMarshalMessage, err)
	}

	data = append(data, '\n')
	if _, err := c.conn.Write(data); err != nil {
		return fmt.Errorf("%w: %w", errors.ErrFailedToWriteSocket, err)
	}

	return nil
}

// FindSocket checks that a console is listening at socketPath
func FindSocket(socketPath string) (string, error) {
	if _, err := os.Stat(socketPath); err != nil {
		return "", fmt.Errorf("%w at %s", errors.ErrNoInstanceRunning, socketPath)
	}

	return socketPath, nil
}

package logs

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func receive(t *testing.T, client *ClientConn) LogMessage {
	t.Helper()

	select {
	case msg, ok := <-client.SendChan:
		require.True(t, ok, "channel closed")
		return msg
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for broadcast")
	}

	return LogMessage{}
}

func Test_NewClientConn(t *testing.T) {
	conn := NewClientConn("client-1", 4)

	assert.Equal(t, "client-1", conn.ID)
	assert.Equal(t, 4, cap(conn.SendChan))
}

func Test_Hub_Broadcast(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	h := NewHub(10)
	go h.Run(ctx)

	first := NewClientConn("first", 10)
	second := NewClientConn("second", 10)

	h.Register(first)
	h.Register(second)

	h.Broadcast(LogMessage{Type: MessageText, Seq: 1, Text: "hello"})

	assert.Equal(t, "hello", receive(t, first).Text)
	assert.Equal(t, "hello", receive(t, second).Text)
}

func Test_Hub_Unregister(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	h := NewHub(10)
	go h.Run(ctx)

	client := NewClientConn("client", 10)
	h.Register(client)
	h.Unregister(client)

	select {
	case _, ok := <-client.SendChan:
		assert.False(t, ok, "unregistered client channel is closed")
	case <-time.After(time.Second):
		t.Fatal("channel was not closed")
	}

	assert.NotPanics(t, func() { h.Unregister(client) })
}

func Test_Hub_SlowClientDoesNotBlock(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	h := NewHub(10)
	go h.Run(ctx)

	slow := NewClientConn("slow", 1)
	fast := NewClientConn("fast", 10)

	h.Register(slow)
	h.Register(fast)

	h.Broadcast(LogMessage{Type: MessageText, Seq: 1, Text: "one"})
	h.Broadcast(LogMessage{Type: MessageText, Seq: 2, Text: "two"})

	assert.Equal(t, "one", receive(t, fast).Text)
	assert.Equal(t, "two", receive(t, fast).Text)
	assert.Equal(t, "one", receive(t, slow).Text)
}

func Test_Hub_ContextCancelClosesClients(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	h := NewHub(10)
	done := make(chan struct{})

	go func() {
		h.Run(ctx)
		close(done)
	}()

	client := NewClientConn("client", 10)
	h.Register(client)

	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("hub did not stop")
	}

	_, ok := <-client.SendChan
	assert.False(t, ok)

	assert.NotPanics(t, func() {
		h.Register(NewClientConn("late", 1))
		h.Unregister(client)
	})
}

func Test_Hub_BroadcastNeverBlocks(t *testing.T) {
	h := NewHub(1)

	done := make(chan struct{})

	go func() {
		for i := 0; i < 10; i++ {
			h.Broadcast(LogMessage{Type: MessageText, Text: "x"})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Broadcast blocked without a running hub")
	}
}

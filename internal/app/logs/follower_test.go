package logs

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"console/internal/app/console"
)

type collector struct {
	mu      sync.Mutex
	texts   []string
	cleared []uint64
}

func (c *collector) Message(msg console.Message) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.texts = append(c.texts, msg.Text)
}

func (c *collector) Cleared(generation uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cleared = append(c.cleared, generation)
}

func (c *collector) snapshot() ([]string, []uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return append([]string(nil), c.texts...), append([]uint64(nil), c.cleared...)
}

func Test_Follower_ReplaysThenFollows(t *testing.T) {
	log := console.NewLog(console.MaxMessages, nil)
	log.Append("before")

	handler := &collector{}
	follower := NewFollower(log, handler)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go follower.Run(ctx)

	assert.Eventually(t, func() bool { return log.Viewers() == 1 }, time.Second, 5*time.Millisecond)

	log.Append("after")

	assert.Eventually(t, func() bool {
		texts, _ := handler.snapshot()
		return len(texts) == 2
	}, time.Second, 5*time.Millisecond)

	texts, cleared := handler.snapshot()
	assert.Equal(t, []string{"before", "after"}, texts)
	assert.Empty(t, cleared)
}

func Test_Follower_SkipExisting(t *testing.T) {
	log := console.NewLog(console.MaxMessages, nil)
	log.Append("old")
	log.Clear()
	log.Append("older news")

	handler := &collector{}
	follower := NewFollower(log, handler)
	follower.SkipExisting()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go follower.Run(ctx)

	assert.Eventually(t, func() bool { return log.Viewers() == 1 }, time.Second, 5*time.Millisecond)

	log.Append("new")

	assert.Eventually(t, func() bool {
		texts, _ := handler.snapshot()
		return len(texts) == 1
	}, time.Second, 5*time.Millisecond)

	texts, cleared := handler.snapshot()
	assert.Equal(t, []string{"new"}, texts)
	assert.Empty(t, cleared)
}

func Test_Follower_Cleared(t *testing.T) {
	log := console.NewLog(console.MaxMessages, nil)

	handler := &collector{}
	follower := NewFollower(log, handler)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go follower.Run(ctx)

	assert.Eventually(t, func() bool { return log.Viewers() == 1 }, time.Second, 5*time.Millisecond)

	log.Clear()

	assert.Eventually(t, func() bool {
		_, cleared := handler.snapshot()
		return len(cleared) == 1
	}, time.Second, 5*time.Millisecond)

	_, cleared := handler.snapshot()
	assert.Equal(t, []uint64{log.Generation()}, cleared)
}

func Test_Follower_UnregistersOnCancel(t *testing.T) {
	log := console.NewLog(console.MaxMessages, nil)
	follower := NewFollower(log, &collector{})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	go func() {
		follower.Run(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool { return log.Viewers() == 1 }, time.Second, 5*time.Millisecond)

	cancel()
	<-done

	assert.Equal(t, 0, log.Viewers())
}

func Test_Follower_NotifyNeverBlocks(t *testing.T) {
	follower := NewFollower(console.NewLog(console.MaxMessages, nil), &collector{})

	assert.NotPanics(t, func() {
		for i := 0; i < 5; i++ {
			follower.Notify()
		}
	})
}

package pane

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// Dispatcher queues a message onto the UI goroutine
type Dispatcher interface {
	Send(msg tea.Msg)
}

// Sender holds a function to send messages to Bubble Tea
type Sender struct {
	mu   sync.RWMutex
	send func(tea.Msg)
}

// NewSender creates a new Sender
func NewSender() *Sender {
	return &Sender{}
}

// Set sets the send function
func (s *Sender) Set(send func(tea.Msg)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.send = send
}

// Send sends a message if the send function is set
func (s *Sender) Send(msg tea.Msg) {
	s.mu.RLock()
	send := s.send
	s.mu.RUnlock()

	if send != nil {
		send(msg)
	}
}

package logs

import "time"

// MessageType represents the type of message in the wire protocol
type MessageType string

const (
	// MessageHello opens every connection and declares its role
	MessageHello MessageType = "hello"
	// MessageText carries one console message
	MessageText MessageType = "message"
	// MessageClear empties the console
	MessageClear MessageType = "clear"
	// MessageStatus is sent to a subscriber right after its hello
	MessageStatus MessageType = "status"
)

// Role is what a connection intends to do
type Role string

const (
	// RolePublish connections send messages and clear requests
	RolePublish Role = "publish"
	// RoleSubscribe connections receive the console contents and every change
	RoleSubscribe Role = "subscribe"
)

// HelloRequest is the first line sent by a client
type HelloRequest struct {
	Type MessageType `json:"type"`
	Role Role        `json:"role"`
}

// LogMessage carries a console message or a clear in either direction.
// Publishers only set Text; the server fills in Seq and Timestamp for subscribers,
// and Generation on clears.
type LogMessage struct {
	Type       MessageType `json:"type"`
	Seq        uint64      `json:"seq,omitempty"`
	Timestamp  time.Time   `json:"timestamp,omitzero"`
	Text       string      `json:"text,omitempty"`
	Generation uint64      `json:"generation,omitempty"`
}

// StatusMessage describes the console a subscriber connected to
type StatusMessage struct {
	Type     MessageType `json:"type"`
	Version  string      `json:"version"`
	Messages int         `json:"messages"`
	Capacity int         `json:"capacity"`
}

// header is decoded first to pick the concrete message type
type header struct {
	Type MessageType `json:"type"`
}

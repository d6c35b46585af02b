package logs

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_HelloRequest_JSON(t *testing.T) {
	data, err := json.Marshal(HelloRequest{Type: MessageHello, Role: RoleSubscribe})
	require.NoError(t, err)

	assert.JSONEq(t, `{"type":"hello","role":"subscribe"}`, string(data))
}

func Test_LogMessage_JSON(t *testing.T) {
	tests := []struct {
		name     string
		msg      LogMessage
		expected string
	}{
		{
			name:     "publisher text omits server fields",
			msg:      LogMessage{Type: MessageText, Text: "hi"},
			expected: `{"type":"message","text":"hi"}`,
		},
		{
			name: "subscriber text",
			msg: LogMessage{
				Type:      MessageText,
				Seq:       7,
				Timestamp: time.Date(2024, 3, 1, 9, 5, 7, 0, time.UTC),
				Text:      "a\r\nb",
			},
			expected: `{"type":"message","seq":7,"timestamp":"2024-03-01T09:05:07Z","text":"a\r\nb"}`,
		},
		{
			name:     "clear",
			msg:      LogMessage{Type: MessageClear, Generation: 2},
			expected: `{"type":"clear","generation":2}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.msg)
			require.NoError(t, err)
			assert.JSONEq(t, tt.expected, string(data))
		})
	}
}

func Test_Header_PicksType(t *testing.T) {
	var head header

	require.NoError(t, json.Unmarshal([]byte(`{"type":"status","version":"1","messages":3,"capacity":200}`), &head))
	assert.Equal(t, MessageStatus, head.Type)
}

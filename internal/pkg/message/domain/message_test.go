package message

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(s string) *string { return &s }

func TestNewVoiceMessage(t *testing.T) {
	m, err := New(Message{
		ConversationID:  "conv-1",
		SenderID:        "client",
		AudioPath:       ptr("conv-1/abc.m4a"),
		DurationSeconds: 120,
	})
	require.NoError(t, err)
	assert.True(t, m.IsAudio())
	assert.False(t, m.CreatedAt.IsZero())
}

func TestNewTextMessage(t *testing.T) {
	m, err := New(Message{
		ConversationID: "conv-1",
		SenderID:       "client",
		Body:           ptr("  hello  "),
	})
	require.NoError(t, err)
	assert.False(t, m.IsAudio())
	assert.Equal(t, "hello", *m.Body)
}

func TestNewRejectsInvalidContents(t *testing.T) {
	tests := []struct {
		name string
		in   Message
		want error
	}{
		{
			"neither audio nor body",
			Message{ConversationID: "c", SenderID: "s"},
			ErrEmpty,
		},
		{
			"whitespace-only body",
			Message{ConversationID: "c", SenderID: "s", Body: ptr("   ")},
			ErrEmpty,
		},
		{
			"both audio and body",
			Message{ConversationID: "c", SenderID: "s", AudioPath: ptr("c/a.m4a"), Body: ptr("hi"), DurationSeconds: 10},
			ErrBothContents,
		},
		{
			"audio with zero duration",
			Message{ConversationID: "c", SenderID: "s", AudioPath: ptr("c/a.m4a")},
			ErrInvalidDuration,
		},
		{
			"audio over the cap",
			Message{ConversationID: "c", SenderID: "s", AudioPath: ptr("c/a.m4a"), DurationSeconds: MaxDurationSeconds + 1},
			ErrInvalidDuration,
		},
		{
			"text with nonzero duration",
			Message{ConversationID: "c", SenderID: "s", Body: ptr("hi"), DurationSeconds: 5},
			ErrInvalidDuration,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.in)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestNewAcceptsDurationAtCap(t *testing.T) {
	_, err := New(Message{
		ConversationID:  "c",
		SenderID:        "s",
		AudioPath:       ptr("c/a.m4a"),
		DurationSeconds: MaxDurationSeconds,
	})
	assert.NoError(t, err)
}

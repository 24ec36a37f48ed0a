package message

import (
	"errors"
	"strings"
	"time"
)

// MaxDurationSeconds is the client-enforced capture cap (15 minutes).
const MaxDurationSeconds = 900

var (
	ErrNotFound        = errors.New("message: not found")
	ErrEmpty           = errors.New("message: either audio or body is required")
	ErrBothContents    = errors.New("message: audio and body are mutually exclusive")
	ErrInvalidDuration = errors.New("message: invalid duration")
)

// Message is one immutable unit in a conversation: either a voice note
// (AudioPath set, DurationSeconds > 0) or a text message (Body set,
// DurationSeconds == 0). Transcript is optional free text either way.
type Message struct {
	ID              string
	ConversationID  string
	SenderID        string
	AudioPath       *string
	Body            *string
	DurationSeconds int32
	Transcript      *string
	CreatedAt       time.Time
}

// IsAudio reports whether the message carries a voice note.
func (m *Message) IsAudio() bool { return m.AudioPath != nil }

// New validates and normalizes a message before persistence.
func New(m Message) (*Message, error) {
	if m.ConversationID == "" || m.SenderID == "" {
		return nil, errors.New("message: conversation_id and sender_id are required")
	}

	if m.Body != nil {
		trimmed := strings.TrimSpace(*m.Body)
		if trimmed == "" {
			m.Body = nil
		} else {
			m.Body = &trimmed
		}
	}

	switch {
	case m.AudioPath == nil && m.Body == nil:
		return nil, ErrEmpty
	case m.AudioPath != nil && m.Body != nil:
		return nil, ErrBothContents
	case m.AudioPath != nil:
		if m.DurationSeconds <= 0 || m.DurationSeconds > MaxDurationSeconds {
			return nil, ErrInvalidDuration
		}
	default:
		if m.DurationSeconds != 0 {
			return nil, ErrInvalidDuration
		}
	}

	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC()
	}
	return &m, nil
}

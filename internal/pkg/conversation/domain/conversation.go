package conversation

import (
	"errors"
	"time"
)

var (
	ErrNotFound     = errors.New("conversation: not found")
	ErrRoleMismatch = errors.New("conversation: client/mentor reference has the wrong role")
)

// Conversation is an immutable two-party channel between exactly one client
// and one mentor.
type Conversation struct {
	ID        string
	ClientID  string
	MentorID  string
	CreatedAt time.Time
}

package conversation

import (
	"time"

	identity "github.com/gregory413b/voicementor2/internal/pkg/identity/domain"
)

// Participant is one row of the materialized membership snapshot.
// Role is captured at materialization time; it does not track later
// hierarchy changes (re-materialization replaces the snapshot instead).
// Primary key: (ConversationID, ProfileID).
type Participant struct {
	ConversationID string
	ProfileID      string
	Role           identity.Role
	CreatedAt      time.Time
}

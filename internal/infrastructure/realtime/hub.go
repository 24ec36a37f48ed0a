package realtime

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/gregory413b/voicementor2/internal/logger"
)

// Event kinds pushed to subscribers. They mirror row inserts on the
// corresponding tables.
const (
	EventMessageCreated      = "message.created"
	EventConversationCreated = "conversation.created"
	EventBookmarkCreated     = "bookmark.created"
	EventFavoriteCreated     = "favorite.created"
)

// Event is a row-insert notification. ConversationID scopes delivery to the
// conversation's materialized members; OwnerID (bookmarks, favorites) scopes
// delivery to a single principal. Exactly one of the two must be set.
type Event struct {
	Kind           string      `json:"kind"`
	ConversationID string      `json:"conversation_id,omitempty"`
	OwnerID        string      `json:"-"`
	Data           interface{} `json:"data"`
}

// MemberLister resolves the current materialized member ids of a conversation.
// The hub calls it per event so access is re-evaluated at delivery time, never
// cached across events.
type MemberLister interface {
	ListMemberIDs(ctx context.Context, conversationID string) ([]string, error)
}

// Hub tracks one live connection per principal and fans events out to the
// principals allowed to read them. Delivery is best-effort, at-most-once; a
// subscriber that was offline reconciles by re-querying on reconnect.
type Hub struct {
	members MemberLister
	log     logger.Logger

	mu       sync.RWMutex
	sessions map[string]*Connection // connection ID -> connection
	byUser   map[string]string      // profile ID -> connection ID
}

// NewHub constructs a Hub backed by the given membership lookup.
func NewHub(members MemberLister, log logger.Logger) *Hub {
	return &Hub{
		members:  members,
		log:      log,
		sessions: make(map[string]*Connection),
		byUser:   make(map[string]string),
	}
}

// Attach registers a connection for its principal. A previous session for the
// same principal is replaced and closed, enforcing one active socket per user.
func (h *Hub) Attach(conn *Connection) {
	var previous *Connection

	h.mu.Lock()
	if existingID, ok := h.byUser[conn.ProfileID]; ok {
		if existing := h.sessions[existingID]; existing != nil {
			previous = existing
			delete(h.sessions, existingID)
		}
	}
	h.sessions[conn.ID] = conn
	h.byUser[conn.ProfileID] = conn.ID
	h.mu.Unlock()

	conn.Start()

	if previous != nil {
		previous.Close(4001, "session replaced")
	}
}

// Detach removes a connection if it is still tracked.
func (h *Hub) Detach(conn *Connection) {
	h.mu.Lock()
	if c, ok := h.sessions[conn.ID]; ok {
		delete(h.sessions, conn.ID)
		if current, ok := h.byUser[c.ProfileID]; ok && current == conn.ID {
			delete(h.byUser, c.ProfileID)
		}
	}
	h.mu.Unlock()
}

// Publish delivers the event to every connected principal permitted to read
// it. Conversation-scoped events consult the membership table per event;
// owner-scoped events reach only the owner's connection.
func (h *Hub) Publish(ctx context.Context, ev Event) int {
	payload, err := json.Marshal(ev)
	if err != nil {
		h.log.Error("encode event", zap.String("kind", ev.Kind), zap.Error(err))
		return 0
	}

	if ev.OwnerID != "" {
		if h.notify(ev.OwnerID, payload) {
			return 1
		}
		return 0
	}

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	memberIDs, err := h.members.ListMemberIDs(ctx, ev.ConversationID)
	if err != nil {
		// Fail closed: no membership answer, no delivery.
		h.log.Warn("membership lookup failed, dropping event",
			zap.String("kind", ev.Kind),
			zap.String("conversation_id", ev.ConversationID),
			zap.Error(err))
		return 0
	}

	delivered := 0
	for _, id := range memberIDs {
		if h.notify(id, payload) {
			delivered++
		}
	}
	return delivered
}

func (h *Hub) notify(profileID string, payload []byte) bool {
	h.mu.RLock()
	connID, ok := h.byUser[profileID]
	var conn *Connection
	if ok {
		conn = h.sessions[connID]
	}
	h.mu.RUnlock()
	if conn == nil {
		return false
	}
	return conn.Send(payload) == nil
}

// Close terminates all tracked connections and clears hub state.
func (h *Hub) Close() {
	h.mu.Lock()
	sessions := make([]*Connection, 0, len(h.sessions))
	for _, conn := range h.sessions {
		sessions = append(sessions, conn)
	}
	h.sessions = make(map[string]*Connection)
	h.byUser = make(map[string]string)
	h.mu.Unlock()

	for _, conn := range sessions {
		conn.Close(1001, "hub shutdown")
	}
}

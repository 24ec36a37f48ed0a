package adapter

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	conversation "github.com/gregory413b/voicementor2/internal/pkg/conversation/domain"
	identity "github.com/gregory413b/voicementor2/internal/pkg/identity/domain"
)

type PgConversationRepository struct {
	pool *pgxpool.Pool
}

func NewPgConversationRepository(pool *pgxpool.Pool) *PgConversationRepository {
	return &PgConversationRepository{pool: pool}
}

// Create inserts the conversation and materializes its membership snapshot in
// one transaction. Membership conflicts are absorbed with ON CONFLICT DO
// NOTHING; any other failure rolls everything back so no reader ever observes
// a conversation with partial membership.
func (r *PgConversationRepository) Create(ctx context.Context, c conversation.Conversation, members []conversation.Participant) (*conversation.Conversation, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgConversationRepository: nil pool")
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx, `
		INSERT INTO conversations (client_id, mentor_id)
		VALUES ($1::uuid, $2::uuid)
		RETURNING id::text, created_at
	`, c.ClientID, c.MentorID).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		return nil, err
	}

	for _, m := range members {
		_, err = tx.Exec(ctx, `
			INSERT INTO conversation_participants (conversation_id, profile_id, role)
			VALUES ($1::uuid, $2::uuid, $3)
			ON CONFLICT (conversation_id, profile_id) DO NOTHING
		`, c.ID, m.ProfileID, m.Role)
		if err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *PgConversationRepository) GetByID(ctx context.Context, id string) (*conversation.Conversation, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgConversationRepository: nil pool")
	}
	var c conversation.Conversation
	err := r.pool.QueryRow(ctx, `
		SELECT id::text, client_id::text, mentor_id::text, created_at
		FROM conversations WHERE id = $1::uuid
	`, id).Scan(&c.ID, &c.ClientID, &c.MentorID, &c.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, conversation.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *PgConversationRepository) ListForProfile(ctx context.Context, profileID string) ([]conversation.Conversation, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgConversationRepository: nil pool")
	}
	rows, err := r.pool.Query(ctx, `
		SELECT c.id::text, c.client_id::text, c.mentor_id::text, c.created_at
		FROM conversations c
		JOIN conversation_participants cp ON cp.conversation_id = c.id
		WHERE cp.profile_id = $1::uuid
		ORDER BY c.created_at DESC
	`, profileID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []conversation.Conversation
	for rows.Next() {
		var c conversation.Conversation
		if err := rows.Scan(&c.ID, &c.ClientID, &c.MentorID, &c.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *PgConversationRepository) ListParticipants(ctx context.Context, conversationID string) ([]conversation.Participant, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgConversationRepository: nil pool")
	}
	rows, err := r.pool.Query(ctx, `
		SELECT conversation_id::text, profile_id::text, role, created_at
		FROM conversation_participants
		WHERE conversation_id = $1::uuid
		ORDER BY role
	`, conversationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []conversation.Participant
	for rows.Next() {
		var p conversation.Participant
		if err := rows.Scan(&p.ConversationID, &p.ProfileID, &p.Role, &p.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// ResolveDirector joins through the mentor's director pointer. A dangling or
// unset pointer yields nil, never an error.
func (r *PgConversationRepository) ResolveDirector(ctx context.Context, mentorID string) (*identity.Profile, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgConversationRepository: nil pool")
	}
	var p identity.Profile
	err := r.pool.QueryRow(ctx, `
		SELECT d.id::text, d.display_name, d.role, d.mentor_id::text, d.director_id::text, d.created_at
		FROM profiles m
		JOIN profiles d ON d.id = m.director_id
		WHERE m.id = $1::uuid
	`, mentorID).Scan(&p.ID, &p.DisplayName, &p.Role, &p.MentorID, &p.DirectorID, &p.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PgConversationRepository) IsMember(ctx context.Context, conversationID, profileID string) (bool, error) {
	if r == nil || r.pool == nil {
		return false, errors.New("PgConversationRepository: nil pool")
	}
	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM conversation_participants
			WHERE conversation_id = $1::uuid AND profile_id = $2::uuid
		)
	`, conversationID, profileID).Scan(&exists)
	return exists, err
}

func (r *PgConversationRepository) ListMemberIDs(ctx context.Context, conversationID string) ([]string, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgConversationRepository: nil pool")
	}
	rows, err := r.pool.Query(ctx, `
		SELECT profile_id::text FROM conversation_participants
		WHERE conversation_id = $1::uuid
	`, conversationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *PgConversationRepository) ConversationRefs(ctx context.Context, conversationID string) (string, string, *string, error) {
	if r == nil || r.pool == nil {
		return "", "", nil, errors.New("PgConversationRepository: nil pool")
	}
	var (
		clientID   string
		mentorID   string
		directorID *string
	)
	err := r.pool.QueryRow(ctx, `
		SELECT c.client_id::text, c.mentor_id::text, d.id::text
		FROM conversations c
		JOIN profiles m ON m.id = c.mentor_id
		LEFT JOIN profiles d ON d.id = m.director_id
		WHERE c.id = $1::uuid
	`, conversationID).Scan(&clientID, &mentorID, &directorID)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", "", nil, conversation.ErrNotFound
	}
	if err != nil {
		return "", "", nil, err
	}
	return clientID, mentorID, directorID, nil
}

package adapter

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	message "github.com/gregory413b/voicementor2/internal/pkg/message/domain"
)

type PgMessageRepository struct {
	pool *pgxpool.Pool
}

func NewPgMessageRepository(pool *pgxpool.Pool) *PgMessageRepository {
	return &PgMessageRepository{pool: pool}
}

const messageColumns = "id::text, conversation_id::text, sender_id::text, audio_path, body, duration_seconds, transcript, created_at"

func (r *PgMessageRepository) Save(ctx context.Context, m message.Message) (*message.Message, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgMessageRepository: nil pool")
	}
	err := r.pool.QueryRow(ctx, `
		INSERT INTO audio_messages (conversation_id, sender_id, audio_path, body, duration_seconds, transcript)
		VALUES ($1::uuid, $2::uuid, $3, $4, $5, $6)
		RETURNING id::text, created_at
	`, m.ConversationID, m.SenderID, m.AudioPath, m.Body, m.DurationSeconds, m.Transcript).Scan(&m.ID, &m.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PgMessageRepository) GetByID(ctx context.Context, id string) (*message.Message, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgMessageRepository: nil pool")
	}
	var m message.Message
	err := r.pool.QueryRow(ctx,
		`SELECT `+messageColumns+` FROM audio_messages WHERE id = $1::uuid`, id,
	).Scan(&m.ID, &m.ConversationID, &m.SenderID, &m.AudioPath, &m.Body, &m.DurationSeconds, &m.Transcript, &m.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, message.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PgMessageRepository) ListByConversation(ctx context.Context, conversationID string, limit, offset int) ([]message.Message, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgMessageRepository: nil pool")
	}
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	rows, err := r.pool.Query(ctx, `
		SELECT `+messageColumns+`
		FROM audio_messages
		WHERE conversation_id = $1::uuid
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`, conversationID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var msgs []message.Message
	for rows.Next() {
		var m message.Message
		if err := rows.Scan(&m.ID, &m.ConversationID, &m.SenderID, &m.AudioPath, &m.Body, &m.DurationSeconds, &m.Transcript, &m.CreatedAt); err != nil {
			return nil, err
		}
		msgs = append(msgs, m)
	}
	return msgs, rows.Err()
}

func (r *PgMessageRepository) Delete(ctx context.Context, id string) error {
	if r == nil || r.pool == nil {
		return errors.New("PgMessageRepository: nil pool")
	}
	ct, err := r.pool.Exec(ctx, `DELETE FROM audio_messages WHERE id = $1::uuid`, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return message.ErrNotFound
	}
	return nil
}

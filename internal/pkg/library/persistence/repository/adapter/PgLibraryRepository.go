package adapter

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	library "github.com/gregory413b/voicementor2/internal/pkg/library/domain"
)

type PgLibraryRepository struct {
	pool *pgxpool.Pool
}

func NewPgLibraryRepository(pool *pgxpool.Pool) *PgLibraryRepository {
	return &PgLibraryRepository{pool: pool}
}

func (r *PgLibraryRepository) CreateBookmark(ctx context.Context, b library.Bookmark) (*library.Bookmark, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgLibraryRepository: nil pool")
	}
	err := r.pool.QueryRow(ctx, `
		INSERT INTO bookmarks (message_id, owner_id, offset_seconds, label)
		VALUES ($1::uuid, $2::uuid, $3, $4)
		RETURNING id::text, created_at
	`, b.MessageID, b.OwnerID, b.OffsetSeconds, b.Label).Scan(&b.ID, &b.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *PgLibraryRepository) GetBookmark(ctx context.Context, id string) (*library.Bookmark, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgLibraryRepository: nil pool")
	}
	var b library.Bookmark
	err := r.pool.QueryRow(ctx, `
		SELECT id::text, message_id::text, owner_id::text, offset_seconds, label, created_at
		FROM bookmarks WHERE id = $1::uuid
	`, id).Scan(&b.ID, &b.MessageID, &b.OwnerID, &b.OffsetSeconds, &b.Label, &b.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, library.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *PgLibraryRepository) ListBookmarks(ctx context.Context, ownerID string, messageID *string) ([]library.Bookmark, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgLibraryRepository: nil pool")
	}
	rows, err := r.pool.Query(ctx, `
		SELECT id::text, message_id::text, owner_id::text, offset_seconds, label, created_at
		FROM bookmarks
		WHERE owner_id = $1::uuid
		  AND ($2::uuid IS NULL OR message_id = $2::uuid)
		ORDER BY created_at DESC
	`, ownerID, messageID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []library.Bookmark
	for rows.Next() {
		var b library.Bookmark
		if err := rows.Scan(&b.ID, &b.MessageID, &b.OwnerID, &b.OffsetSeconds, &b.Label, &b.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *PgLibraryRepository) DeleteBookmark(ctx context.Context, id string) error {
	if r == nil || r.pool == nil {
		return errors.New("PgLibraryRepository: nil pool")
	}
	ct, err := r.pool.Exec(ctx, `DELETE FROM bookmarks WHERE id = $1::uuid`, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return library.ErrNotFound
	}
	return nil
}

func (r *PgLibraryRepository) SetFavorite(ctx context.Context, f library.Favorite) error {
	if r == nil || r.pool == nil {
		return errors.New("PgLibraryRepository: nil pool")
	}
	_, err := r.pool.Exec(ctx, `
		INSERT INTO favorites (owner_id, message_id)
		VALUES ($1::uuid, $2::uuid)
		ON CONFLICT (owner_id, message_id) DO NOTHING
	`, f.OwnerID, f.MessageID)
	return err
}

func (r *PgLibraryRepository) UnsetFavorite(ctx context.Context, ownerID, messageID string) error {
	if r == nil || r.pool == nil {
		return errors.New("PgLibraryRepository: nil pool")
	}
	_, err := r.pool.Exec(ctx, `
		DELETE FROM favorites WHERE owner_id = $1::uuid AND message_id = $2::uuid
	`, ownerID, messageID)
	return err
}

func (r *PgLibraryRepository) ListFavorites(ctx context.Context, ownerID string) ([]library.Favorite, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgLibraryRepository: nil pool")
	}
	rows, err := r.pool.Query(ctx, `
		SELECT owner_id::text, message_id::text, created_at
		FROM favorites WHERE owner_id = $1::uuid
		ORDER BY created_at DESC
	`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []library.Favorite
	for rows.Next() {
		var f library.Favorite
		if err := rows.Scan(&f.OwnerID, &f.MessageID, &f.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

func (r *PgLibraryRepository) CreateFolder(ctx context.Context, f library.Folder) (*library.Folder, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgLibraryRepository: nil pool")
	}
	err := r.pool.QueryRow(ctx, `
		INSERT INTO folders (owner_id, name)
		VALUES ($1::uuid, $2)
		RETURNING id::text, created_at
	`, f.OwnerID, f.Name).Scan(&f.ID, &f.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *PgLibraryRepository) GetFolder(ctx context.Context, id string) (*library.Folder, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgLibraryRepository: nil pool")
	}
	var f library.Folder
	err := r.pool.QueryRow(ctx, `
		SELECT id::text, owner_id::text, name, created_at
		FROM folders WHERE id = $1::uuid
	`, id).Scan(&f.ID, &f.OwnerID, &f.Name, &f.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, library.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *PgLibraryRepository) ListFolders(ctx context.Context, ownerID string) ([]library.Folder, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgLibraryRepository: nil pool")
	}
	rows, err := r.pool.Query(ctx, `
		SELECT id::text, owner_id::text, name, created_at
		FROM folders WHERE owner_id = $1::uuid
		ORDER BY name
	`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []library.Folder
	for rows.Next() {
		var f library.Folder
		if err := rows.Scan(&f.ID, &f.OwnerID, &f.Name, &f.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

func (r *PgLibraryRepository) DeleteFolder(ctx context.Context, id string) error {
	if r == nil || r.pool == nil {
		return errors.New("PgLibraryRepository: nil pool")
	}
	ct, err := r.pool.Exec(ctx, `DELETE FROM folders WHERE id = $1::uuid`, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return library.ErrNotFound
	}
	return nil
}

func (r *PgLibraryRepository) AddFolderItem(ctx context.Context, item library.FolderItem) error {
	if r == nil || r.pool == nil {
		return errors.New("PgLibraryRepository: nil pool")
	}
	_, err := r.pool.Exec(ctx, `
		INSERT INTO folder_items (folder_id, message_id)
		VALUES ($1::uuid, $2::uuid)
		ON CONFLICT (folder_id, message_id) DO NOTHING
	`, item.FolderID, item.MessageID)
	return err
}

func (r *PgLibraryRepository) RemoveFolderItem(ctx context.Context, folderID, messageID string) error {
	if r == nil || r.pool == nil {
		return errors.New("PgLibraryRepository: nil pool")
	}
	_, err := r.pool.Exec(ctx, `
		DELETE FROM folder_items WHERE folder_id = $1::uuid AND message_id = $2::uuid
	`, folderID, messageID)
	return err
}

func (r *PgLibraryRepository) ListFolderItems(ctx context.Context, folderID string) ([]library.FolderItem, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgLibraryRepository: nil pool")
	}
	rows, err := r.pool.Query(ctx, `
		SELECT folder_id::text, message_id::text, created_at
		FROM folder_items WHERE folder_id = $1::uuid
		ORDER BY created_at
	`, folderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []library.FolderItem
	for rows.Next() {
		var it library.FolderItem
		if err := rows.Scan(&it.FolderID, &it.MessageID, &it.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

func (r *PgLibraryRepository) ConversationOf(ctx context.Context, messageID string) (string, error) {
	if r == nil || r.pool == nil {
		return "", errors.New("PgLibraryRepository: nil pool")
	}
	var conversationID string
	err := r.pool.QueryRow(ctx,
		`SELECT conversation_id::text FROM audio_messages WHERE id = $1::uuid`, messageID,
	).Scan(&conversationID)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", library.ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return conversationID, nil
}

package adapter

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	identity "github.com/gregory413b/voicementor2/internal/pkg/identity/domain"
)

type PgProfileRepository struct {
	pool *pgxpool.Pool
}

func NewPgProfileRepository(pool *pgxpool.Pool) *PgProfileRepository {
	return &PgProfileRepository{pool: pool}
}

const profileColumns = "id::text, display_name, role, mentor_id::text, director_id::text, created_at"

func (r *PgProfileRepository) Create(ctx context.Context, p identity.Profile) error {
	if r == nil || r.pool == nil {
		return errors.New("PgProfileRepository: nil pool")
	}
	_, err := r.pool.Exec(ctx, `
		INSERT INTO profiles (id, display_name, role, mentor_id, director_id)
		VALUES ($1::uuid, $2, $3, $4::uuid, $5::uuid)
	`, p.ID, p.DisplayName, p.Role, p.MentorID, p.DirectorID)
	if isUniqueViolation(err) {
		return identity.ErrDuplicate
	}
	return err
}

func (r *PgProfileRepository) Upsert(ctx context.Context, p identity.Profile) error {
	if r == nil || r.pool == nil {
		return errors.New("PgProfileRepository: nil pool")
	}
	_, err := r.pool.Exec(ctx, `
		INSERT INTO profiles (id, display_name, role, mentor_id, director_id)
		VALUES ($1::uuid, $2, $3, $4::uuid, $5::uuid)
		ON CONFLICT (id) DO NOTHING
	`, p.ID, p.DisplayName, p.Role, p.MentorID, p.DirectorID)
	return err
}

func (r *PgProfileRepository) GetByID(ctx context.Context, id string) (*identity.Profile, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgProfileRepository: nil pool")
	}
	row := r.pool.QueryRow(ctx, `SELECT `+profileColumns+` FROM profiles WHERE id = $1::uuid`, id)
	p, err := scanProfile(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, identity.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *PgProfileRepository) List(ctx context.Context) ([]identity.Profile, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgProfileRepository: nil pool")
	}
	rows, err := r.pool.Query(ctx, `SELECT `+profileColumns+` FROM profiles ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []identity.Profile
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, *p)
	}
	return profiles, rows.Err()
}

func (r *PgProfileRepository) UpdateDisplayName(ctx context.Context, id, displayName string) error {
	if r == nil || r.pool == nil {
		return errors.New("PgProfileRepository: nil pool")
	}
	ct, err := r.pool.Exec(ctx,
		`UPDATE profiles SET display_name = $2 WHERE id = $1::uuid`, id, displayName)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return identity.ErrNotFound
	}
	return nil
}

func (r *PgProfileRepository) SetMentor(ctx context.Context, clientID string, mentorID *string) error {
	if r == nil || r.pool == nil {
		return errors.New("PgProfileRepository: nil pool")
	}
	if mentorID != nil {
		if err := r.requireRole(ctx, *mentorID, identity.RoleMentor); err != nil {
			return err
		}
	}
	ct, err := r.pool.Exec(ctx, `
		UPDATE profiles SET mentor_id = $2::uuid
		WHERE id = $1::uuid AND role = 'client'
	`, clientID, mentorID)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return identity.ErrNotFound
	}
	return nil
}

// SetDirector updates the mentor's director pointer and rewrites the director
// membership snapshot of every conversation owned by that mentor, all in one
// transaction so the snapshot never drifts from the pointer.
func (r *PgProfileRepository) SetDirector(ctx context.Context, mentorID string, directorID *string) error {
	if r == nil || r.pool == nil {
		return errors.New("PgProfileRepository: nil pool")
	}
	if directorID != nil {
		if err := r.requireRole(ctx, *directorID, identity.RoleTrainingDirector); err != nil {
			return err
		}
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	ct, err := tx.Exec(ctx, `
		UPDATE profiles SET director_id = $2::uuid
		WHERE id = $1::uuid AND role = 'mentor'
	`, mentorID, directorID)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return identity.ErrNotFound
	}

	_, err = tx.Exec(ctx, `
		DELETE FROM conversation_participants cp
		USING conversations c
		WHERE cp.conversation_id = c.id
		  AND c.mentor_id = $1::uuid
		  AND cp.role = 'training_director'
	`, mentorID)
	if err != nil {
		return err
	}

	if directorID != nil {
		_, err = tx.Exec(ctx, `
			INSERT INTO conversation_participants (conversation_id, profile_id, role)
			SELECT c.id, $2::uuid, 'training_director'
			FROM conversations c
			WHERE c.mentor_id = $1::uuid
			ON CONFLICT (conversation_id, profile_id) DO NOTHING
		`, mentorID, *directorID)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *PgProfileRepository) MentorOf(ctx context.Context, profileID string) (*string, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgProfileRepository: nil pool")
	}
	var mentorID *string
	err := r.pool.QueryRow(ctx,
		`SELECT mentor_id::text FROM profiles WHERE id = $1::uuid`, profileID).Scan(&mentorID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, identity.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return mentorID, nil
}

func (r *PgProfileRepository) requireRole(ctx context.Context, id string, want identity.Role) error {
	var role identity.Role
	err := r.pool.QueryRow(ctx, `SELECT role FROM profiles WHERE id = $1::uuid`, id).Scan(&role)
	if errors.Is(err, pgx.ErrNoRows) {
		return identity.ErrNotFound
	}
	if err != nil {
		return err
	}
	if role != want {
		return identity.ErrRoleMismatch
	}
	return nil
}

func scanProfile(row pgx.Row) (*identity.Profile, error) {
	var p identity.Profile
	if err := row.Scan(&p.ID, &p.DisplayName, &p.Role, &p.MentorID, &p.DirectorID, &p.CreatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

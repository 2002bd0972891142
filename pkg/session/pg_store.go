package session

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// querier is the subset of pgx operations shared by *pgxpool.Pool and pgx.Tx,
// letting the same query methods run inside and outside transactions.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PGStore persists sessions in PostgreSQL via pgx. Safe for concurrent use;
// the pool is the only shared state.
type PGStore struct {
	pool *pgxpool.Pool
	db   querier
}

// NewPGStore creates a PostgreSQL-backed session store.
func NewPGStore(pool *pgxpool.Pool) *PGStore {
	return &PGStore{pool: pool, db: pool}
}

const sessionColumns = "id, owner_id, user_agent, ip_address, created_at, updated_at, expires_at"

func (s *PGStore) FindWithOwner(ctx context.Context, id string) (*Session, *Owner, error) {
	var (
		sess  Session
		owner Owner
	)

	err := s.db.QueryRow(ctx, `
		SELECT s.id, s.owner_id, s.user_agent, s.ip_address, s.created_at, s.updated_at, s.expires_at,
		       o.id, o.email, o.name
		FROM sessions s
		JOIN owners o ON o.id = s.owner_id
		WHERE s.id = $1`, id).Scan(
		&sess.ID, &sess.OwnerID, &sess.UserAgent, &sess.IPAddress,
		&sess.CreatedAt, &sess.UpdatedAt, &sess.ExpiresAt,
		&owner.ID, &owner.Email, &owner.Name,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, ErrSessionNotFound
		}
		return nil, nil, err
	}

	return &sess, &owner, nil
}

func (s *PGStore) Insert(ctx context.Context, sess *Session) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO sessions (`+sessionColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		sess.ID, sess.OwnerID, sess.UserAgent, sess.IPAddress,
		sess.CreatedAt, sess.UpdatedAt, sess.ExpiresAt,
	)
	return err
}

func (s *PGStore) UpdateExpiry(ctx context.Context, id string, expiresAt time.Time) error {
	tag, err := s.db.Exec(ctx, `UPDATE sessions SET expires_at = $2 WHERE id = $1`, id, expiresAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrSessionNotFound
	}
	return nil
}

func (s *PGStore) UpdateActivity(ctx context.Context, id string, updatedAt time.Time) error {
	tag, err := s.db.Exec(ctx, `UPDATE sessions SET updated_at = $2 WHERE id = $1`, id, updatedAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrSessionNotFound
	}
	return nil
}

func (s *PGStore) Delete(ctx context.Context, id string) error {
	_, err := s.db.Exec(ctx, `DELETE FROM sessions WHERE id = $1`, id)
	return err
}

func (s *PGStore) DeleteAllForOwner(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	tag, err := s.db.Exec(ctx, `DELETE FROM sessions WHERE owner_id = $1`, ownerID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (s *PGStore) CountForOwner(ctx context.Context, ownerID uuid.UUID) (int, error) {
	var count int
	err := s.db.QueryRow(ctx, `SELECT count(*) FROM sessions WHERE owner_id = $1`, ownerID).Scan(&count)
	return count, err
}

func (s *PGStore) FindOldestForOwner(ctx context.Context, ownerID uuid.UUID) (*Session, error) {
	var sess Session
	err := s.db.QueryRow(ctx, `
		SELECT `+sessionColumns+`
		FROM sessions
		WHERE owner_id = $1
		ORDER BY created_at ASC, id ASC
		LIMIT 1`, ownerID).Scan(
		&sess.ID, &sess.OwnerID, &sess.UserAgent, &sess.IPAddress,
		&sess.CreatedAt, &sess.UpdatedAt, &sess.ExpiresAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return &sess, nil
}

func (s *PGStore) DeleteExpired(ctx context.Context) error {
	_, err := s.db.Exec(ctx, `DELETE FROM sessions WHERE expires_at <= now()`)
	return err
}

// InTransaction runs fn against a transactional view of the store. Commits
// on nil, rolls back on error or panic.
func (s *PGStore) InTransaction(ctx context.Context, fn func(ctx context.Context, tx Store) error) error {
	return pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		return fn(ctx, &PGStore{pool: s.pool, db: tx})
	})
}

package session

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore persists sessions in the sessions table so they survive
// restarts and are shared across processes.
type PostgresStore struct {
	db *pgxpool.Pool
}

func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Create(ctx context.Context, userID int64) (string, error) {
	id := uuid.NewString()
	now := time.Now()
	_, err := s.db.Exec(ctx, `
		INSERT INTO sessions (session_id, user_id, created_at, expires_at)
		VALUES ($1, $2, $3, $4)
	`, id, userID, now, now.Add(TTL))
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *PostgresStore) Resolve(ctx context.Context, sessionID string) (int64, error) {
	var userID int64
	err := s.db.QueryRow(ctx, `
		SELECT user_id FROM sessions
		WHERE session_id = $1 AND expires_at > now()
	`, sessionID).Scan(&userID)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, ErrNoSession
	}
	if err != nil {
		return 0, err
	}
	return userID, nil
}

func (s *PostgresStore) Destroy(ctx context.Context, sessionID string) error {
	_, err := s.db.Exec(ctx, `DELETE FROM sessions WHERE session_id = $1`, sessionID)
	return err
}

func (s *PostgresStore) PurgeExpired(ctx context.Context) error {
	_, err := s.db.Exec(ctx, `DELETE FROM sessions WHERE expires_at <= now()`)
	return err
}

package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

// Refresh tokens are stored hashed; the raw value never touches the
// database. Expired and revoked rows are filtered at validation time.

func (s *MySQLStore) StoreRefresh(ctx context.Context, userID uint64, hash string, expiresAt time.Time) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO refresh_tokens (user_id, token_hash, expires_at) VALUES (?,?,?)",
		userID, hash, expiresAt)
	return err
}

func (s *MySQLStore) ValidateRefresh(ctx context.Context, hash string) (uint64, error) {
	var userID uint64
	err := s.db.QueryRowContext(ctx,
		`SELECT user_id FROM refresh_tokens
		 WHERE token_hash=? AND revoked=0 AND expires_at > ? LIMIT 1`,
		hash, time.Now().UTC()).Scan(&userID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, err
	}
	return userID, nil
}

func (s *MySQLStore) RevokeByHash(ctx context.Context, hash string) error {
	_, err := s.db.ExecContext(ctx,
		"UPDATE refresh_tokens SET revoked=1 WHERE token_hash=?", hash)
	return err
}

func (s *MySQLStore) RevokeAllForUser(ctx context.Context, userID uint64) error {
	_, err := s.db.ExecContext(ctx,
		"UPDATE refresh_tokens SET revoked=1 WHERE user_id=?", userID)
	return err
}

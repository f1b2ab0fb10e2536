package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/prioboard/prioboard/internal/model"
)

// MySQLStore implements the same store contracts over database/sql. It is
// an optional backend (STORE_DRIVER=mysql) for deployments that want state
// to survive restarts; semantics match the memory store, including the
// absence of foreign-key cascades. The schema lives in
// internal/database/schema.sql.
type MySQLStore struct {
	db *sql.DB
}

var (
	_ Store      = (*MySQLStore)(nil)
	_ TokenStore = (*MySQLStore)(nil)
)

// NewMySQLStore wraps an open connection pool. The pool is configured and
// pinged by the database package.
func NewMySQLStore(db *sql.DB) *MySQLStore {
	return &MySQLStore{db: db}
}

// isDuplicate reports whether err is a MySQL duplicate-key violation.
func isDuplicate(err error) bool {
	return err != nil && strings.Contains(err.Error(), "1062")
}

// ----- users -----

func (s *MySQLStore) CreateUser(ctx context.Context, in model.UserInput) (model.User, error) {
	res, err := s.db.ExecContext(ctx,
		"INSERT INTO users (username, password, name, role) VALUES (?,?,?,?)",
		in.Username, in.Password, in.Name, in.Role)
	if err != nil {
		if isDuplicate(err) {
			return model.User{}, ErrUsernameTaken
		}
		return model.User{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.User{}, err
	}
	return model.User{
		ID:       uint64(id),
		Username: in.Username,
		Password: in.Password,
		Name:     in.Name,
		Role:     in.Role,
	}, nil
}

func (s *MySQLStore) GetUser(ctx context.Context, id uint64) (model.User, error) {
	return s.scanUser(s.db.QueryRowContext(ctx,
		"SELECT id, username, password, name, role FROM users WHERE id=? LIMIT 1", id))
}

func (s *MySQLStore) GetUserByUsername(ctx context.Context, username string) (model.User, error) {
	return s.scanUser(s.db.QueryRowContext(ctx,
		"SELECT id, username, password, name, role FROM users WHERE username=? LIMIT 1", username))
}

func (s *MySQLStore) scanUser(row *sql.Row) (model.User, error) {
	var u model.User
	err := row.Scan(&u.ID, &u.Username, &u.Password, &u.Name, &u.Role)
	if errors.Is(err, sql.ErrNoRows) {
		return model.User{}, ErrNotFound
	}
	return u, err
}

func (s *MySQLStore) ListUsers(ctx context.Context) ([]model.User, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, username, password, name, role FROM users ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.User
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Password, &u.Name, &u.Role); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

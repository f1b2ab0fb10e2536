package repository

import (
	"context"
	"time"

	"github.com/prioboard/prioboard/internal/model"
)

func (s *MySQLStore) CreateComment(ctx context.Context, in model.CommentInput) (model.Comment, error) {
	now := time.Now().UTC()
	res, err := s.db.ExecContext(ctx,
		"INSERT INTO comments (feature_id, user_id, content, created_at) VALUES (?,?,?,?)",
		in.FeatureID, in.UserID, in.Content, now)
	if err != nil {
		return model.Comment{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.Comment{}, err
	}
	return model.Comment{
		ID:        uint64(id),
		FeatureID: in.FeatureID,
		UserID:    in.UserID,
		Content:   in.Content,
		CreatedAt: now,
	}, nil
}

func (s *MySQLStore) ListCommentsByFeature(ctx context.Context, featureID uint64) ([]model.Comment, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, feature_id, user_id, content, created_at
		 FROM comments WHERE feature_id=? ORDER BY created_at, id`, featureID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Comment, 0)
	for rows.Next() {
		var c model.Comment
		if err := rows.Scan(&c.ID, &c.FeatureID, &c.UserID, &c.Content, &c.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

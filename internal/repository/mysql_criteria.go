package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/prioboard/prioboard/internal/model"
)

func (s *MySQLStore) CreateCriteria(ctx context.Context, in model.CriteriaInput) (model.ScoringCriteria, error) {
	res, err := s.db.ExecContext(ctx,
		"INSERT INTO scoring_criteria (name, description, weight, `order`) VALUES (?,?,?,?)",
		in.Name, in.Description, in.Weight, in.Order)
	if err != nil {
		return model.ScoringCriteria{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.ScoringCriteria{}, err
	}
	return model.ScoringCriteria{
		ID:          uint64(id),
		Name:        in.Name,
		Description: in.Description,
		Weight:      in.Weight,
		Order:       in.Order,
	}, nil
}

func (s *MySQLStore) ListCriteria(ctx context.Context) ([]model.ScoringCriteria, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, description, weight, `order` FROM scoring_criteria ORDER BY `order`, id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.ScoringCriteria
	for rows.Next() {
		var c model.ScoringCriteria
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.Weight, &c.Order); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (s *MySQLStore) UpdateCriteria(ctx context.Context, id uint64, patch model.CriteriaPatch) (model.ScoringCriteria, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return model.ScoringCriteria{}, err
	}
	defer func() { _ = tx.Rollback() }()

	var c model.ScoringCriteria
	err = tx.QueryRowContext(ctx,
		"SELECT id, name, description, weight, `order` FROM scoring_criteria WHERE id=? FOR UPDATE", id).
		Scan(&c.ID, &c.Name, &c.Description, &c.Weight, &c.Order)
	if errors.Is(err, sql.ErrNoRows) {
		return model.ScoringCriteria{}, ErrNotFound
	}
	if err != nil {
		return model.ScoringCriteria{}, err
	}

	if patch.Name != nil {
		c.Name = *patch.Name
	}
	if patch.Description != nil {
		c.Description = *patch.Description
	}
	if patch.Weight != nil {
		c.Weight = *patch.Weight
	}
	if patch.Order != nil {
		c.Order = *patch.Order
	}

	_, err = tx.ExecContext(ctx,
		"UPDATE scoring_criteria SET name=?, description=?, weight=?, `order`=? WHERE id=?",
		c.Name, c.Description, c.Weight, c.Order, id)
	if err != nil {
		return model.ScoringCriteria{}, err
	}
	if err := tx.Commit(); err != nil {
		return model.ScoringCriteria{}, err
	}
	return c, nil
}

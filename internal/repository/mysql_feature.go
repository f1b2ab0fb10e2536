package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/prioboard/prioboard/internal/model"
)

const featureColumns = `id, title, description, created_by_id, impact_score,
	effort_score, total_score, status, customer_type, customer_count,
	category, tags, created_at, updated_at`

func (s *MySQLStore) CreateFeature(ctx context.Context, in model.FeatureInput) (model.Feature, error) {
	now := time.Now().UTC()
	total := model.ComputeTotalScore(in.ImpactScore, in.EffortScore)
	tags, err := encodeTags(in.Tags)
	if err != nil {
		return model.Feature{}, err
	}
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO features (title, description, created_by_id, impact_score,
		 effort_score, total_score, status, customer_type, customer_count,
		 category, tags, created_at, updated_at)
		 VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		in.Title, in.Description, in.CreatedByID, in.ImpactScore,
		in.EffortScore, total, in.Status, in.CustomerType, in.CustomerCount,
		in.Category, tags, now, now)
	if err != nil {
		return model.Feature{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.Feature{}, err
	}
	return s.GetFeature(ctx, uint64(id))
}

func (s *MySQLStore) GetFeature(ctx context.Context, id uint64) (model.Feature, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+featureColumns+" FROM features WHERE id=? LIMIT 1", id)
	return scanFeature(row.Scan)
}

func (s *MySQLStore) ListFeatures(ctx context.Context) ([]model.Feature, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+featureColumns+" FROM features ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Feature
	for rows.Next() {
		f, err := scanFeature(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

// UpdateFeature reads the row, merges the patch in Go and writes the full
// row back inside one transaction, so the merge semantics are identical to
// the memory store's.
func (s *MySQLStore) UpdateFeature(ctx context.Context, id uint64, patch model.FeaturePatch) (model.Feature, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return model.Feature{}, err
	}
	defer func() { _ = tx.Rollback() }()

	row := tx.QueryRowContext(ctx,
		"SELECT "+featureColumns+" FROM features WHERE id=? FOR UPDATE", id)
	f, err := scanFeature(row.Scan)
	if err != nil {
		return model.Feature{}, err
	}

	if patch.Title != nil {
		f.Title = *patch.Title
	}
	if patch.Description != nil {
		f.Description = *patch.Description
	}
	if patch.ImpactScore != nil {
		f.ImpactScore = *patch.ImpactScore
	}
	if patch.EffortScore != nil {
		f.EffortScore = *patch.EffortScore
	}
	if patch.Status != nil {
		f.Status = *patch.Status
	}
	if patch.CustomerType != nil {
		f.CustomerType = *patch.CustomerType
	}
	if patch.CustomerCount != nil {
		f.CustomerCount = *patch.CustomerCount
	}
	if patch.Category != nil {
		f.Category = *patch.Category
	}
	if patch.Tags != nil {
		f.Tags = *patch.Tags
	}
	if patch.TouchesScore() {
		f.TotalScore = model.ComputeTotalScore(f.ImpactScore, f.EffortScore)
	}
	f.UpdatedAt = time.Now().UTC()

	tags, err := encodeTags(f.Tags)
	if err != nil {
		return model.Feature{}, err
	}
	_, err = tx.ExecContext(ctx,
		`UPDATE features SET title=?, description=?, impact_score=?,
		 effort_score=?, total_score=?, status=?, customer_type=?,
		 customer_count=?, category=?, tags=?, updated_at=? WHERE id=?`,
		f.Title, f.Description, f.ImpactScore, f.EffortScore, f.TotalScore,
		f.Status, f.CustomerType, f.CustomerCount, f.Category, tags,
		f.UpdatedAt, id)
	if err != nil {
		return model.Feature{}, err
	}
	if err := tx.Commit(); err != nil {
		return model.Feature{}, err
	}
	return f, nil
}

func (s *MySQLStore) DeleteFeature(ctx context.Context, id uint64) (bool, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM features WHERE id=?", id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// scanFeature works for both sql.Row and sql.Rows through the shared Scan
// signature. Tags round-trip through a JSON text column.
func scanFeature(scan func(dest ...any) error) (model.Feature, error) {
	var (
		f    model.Feature
		tags sql.NullString
	)
	err := scan(&f.ID, &f.Title, &f.Description, &f.CreatedByID,
		&f.ImpactScore, &f.EffortScore, &f.TotalScore, &f.Status,
		&f.CustomerType, &f.CustomerCount, &f.Category, &tags,
		&f.CreatedAt, &f.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Feature{}, ErrNotFound
	}
	if err != nil {
		return model.Feature{}, err
	}
	if tags.Valid && tags.String != "" {
		if err := json.Unmarshal([]byte(tags.String), &f.Tags); err != nil {
			return model.Feature{}, err
		}
	}
	return f, nil
}

func encodeTags(tags []string) (sql.NullString, error) {
	if tags == nil {
		return sql.NullString{}, nil
	}
	b, err := json.Marshal(tags)
	if err != nil {
		return sql.NullString{}, err
	}
	return sql.NullString{String: string(b), Valid: true}, nil
}

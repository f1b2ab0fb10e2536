package repository

import (
	"context"
	"time"

	"github.com/prioboard/prioboard/internal/model"
)

// UserStore persists accounts. Duplicate-username enforcement lives with
// the auth handlers, which pre-check via GetUserByUsername; implementations
// backed by a unique column may additionally return ErrUsernameTaken.
type UserStore interface {
	CreateUser(ctx context.Context, in model.UserInput) (model.User, error)
	GetUser(ctx context.Context, id uint64) (model.User, error)
	GetUserByUsername(ctx context.Context, username string) (model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
}

// FeatureStore persists feature requests. Create and any update touching
// impact or effort recompute the total score; other updates leave it alone.
// UpdatedAt advances on every update, CreatedAt never changes.
type FeatureStore interface {
	CreateFeature(ctx context.Context, in model.FeatureInput) (model.Feature, error)
	GetFeature(ctx context.Context, id uint64) (model.Feature, error)
	ListFeatures(ctx context.Context) ([]model.Feature, error)
	UpdateFeature(ctx context.Context, id uint64, patch model.FeaturePatch) (model.Feature, error)
	// DeleteFeature reports whether a feature was removed. Deleting the
	// same id twice returns false the second time.
	DeleteFeature(ctx context.Context, id uint64) (bool, error)
}

// CriteriaStore persists scoring criteria. ListCriteria returns them
// ordered by the Order field ascending.
type CriteriaStore interface {
	CreateCriteria(ctx context.Context, in model.CriteriaInput) (model.ScoringCriteria, error)
	ListCriteria(ctx context.Context) ([]model.ScoringCriteria, error)
	UpdateCriteria(ctx context.Context, id uint64, patch model.CriteriaPatch) (model.ScoringCriteria, error)
}

// CommentStore persists comments. ListCommentsByFeature returns them
// ordered by CreatedAt ascending; an unknown feature id yields an empty
// list, not an error.
type CommentStore interface {
	CreateComment(ctx context.Context, in model.CommentInput) (model.Comment, error)
	ListCommentsByFeature(ctx context.Context, featureID uint64) ([]model.Comment, error)
}

// Store aggregates the entity stores so callers that need the whole surface
// (seeding, wiring) can take one dependency.
type Store interface {
	UserStore
	FeatureStore
	CriteriaStore
	CommentStore
}

// TokenStore holds hashed refresh tokens for the auth handlers.
type TokenStore interface {
	StoreRefresh(ctx context.Context, userID uint64, hash string, expiresAt time.Time) error
	// ValidateRefresh returns the owning user id for a live token hash, or
	// ErrNotFound when the hash is unknown, revoked or expired.
	ValidateRefresh(ctx context.Context, hash string) (uint64, error)
	RevokeByHash(ctx context.Context, hash string) error
	RevokeAllForUser(ctx context.Context, userID uint64) error
}

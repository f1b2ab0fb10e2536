package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/prioboard/prioboard/internal/model"
)

// MemoryStore keeps every entity kind in a map guarded by one RWMutex. It
// is the default backend: state lives for the process lifetime and is lost
// on restart, which is acceptable because the dashboard has no durability
// requirement. Ids are assigned from independent per-kind counters and are
// never reused, even after deletion.
//
// All methods hand out copies; no entity is shared by reference across the
// store boundary. Deleting a feature does not cascade to its comments,
// matching the original dashboard's behavior.
type MemoryStore struct {
	mu sync.RWMutex

	users    map[uint64]model.User
	features map[uint64]model.Feature
	criteria map[uint64]model.ScoringCriteria
	comments map[uint64]model.Comment
	tokens   map[string]refreshRecord

	userID     uint64
	featureID  uint64
	criteriaID uint64
	commentID  uint64
}

type refreshRecord struct {
	userID    uint64
	expiresAt time.Time
}

var (
	_ Store      = (*MemoryStore)(nil)
	_ TokenStore = (*MemoryStore)(nil)
)

// NewMemoryStore returns an empty store. Default criteria and the default
// user are seeded at startup by the seed package, not here, so tests can
// start from a clean slate.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:    make(map[uint64]model.User),
		features: make(map[uint64]model.Feature),
		criteria: make(map[uint64]model.ScoringCriteria),
		comments: make(map[uint64]model.Comment),
		tokens:   make(map[string]refreshRecord),
	}
}

// ----- users -----

func (s *MemoryStore) CreateUser(_ context.Context, in model.UserInput) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.userID++
	u := model.User{
		ID:       s.userID,
		Username: in.Username,
		Password: in.Password,
		Name:     in.Name,
		Role:     in.Role,
	}
	s.users[u.ID] = u
	return u, nil
}

func (s *MemoryStore) GetUser(_ context.Context, id uint64) (model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return model.User{}, ErrNotFound
	}
	return u, nil
}

func (s *MemoryStore) GetUserByUsername(_ context.Context, username string) (model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Username == username {
			return u, nil
		}
	}
	return model.User{}, ErrNotFound
}

func (s *MemoryStore) ListUsers(_ context.Context) ([]model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, u)
	}
	// Ids are monotonic, so id order is insertion order.
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// ----- features -----

func (s *MemoryStore) CreateFeature(_ context.Context, in model.FeatureInput) (model.Feature, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.featureID++
	now := time.Now().UTC()
	f := model.Feature{
		ID:            s.featureID,
		Title:         in.Title,
		Description:   in.Description,
		CreatedByID:   in.CreatedByID,
		ImpactScore:   in.ImpactScore,
		EffortScore:   in.EffortScore,
		TotalScore:    model.ComputeTotalScore(in.ImpactScore, in.EffortScore),
		Status:        in.Status,
		CustomerType:  in.CustomerType,
		CustomerCount: in.CustomerCount,
		Category:      in.Category,
		Tags:          copyTags(in.Tags),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	s.features[f.ID] = f
	return copyFeature(f), nil
}

func (s *MemoryStore) GetFeature(_ context.Context, id uint64) (model.Feature, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	f, ok := s.features[id]
	if !ok {
		return model.Feature{}, ErrNotFound
	}
	return copyFeature(f), nil
}

func (s *MemoryStore) ListFeatures(_ context.Context) ([]model.Feature, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Feature, 0, len(s.features))
	for _, f := range s.features {
		out = append(out, copyFeature(f))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *MemoryStore) UpdateFeature(_ context.Context, id uint64, patch model.FeaturePatch) (model.Feature, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, ok := s.features[id]
	if !ok {
		return model.Feature{}, ErrNotFound
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
		f.Tags = copyTags(*patch.Tags)
	}
	if patch.TouchesScore() {
		f.TotalScore = model.ComputeTotalScore(f.ImpactScore, f.EffortScore)
	}
	f.UpdatedAt = time.Now().UTC()
	s.features[id] = f
	return copyFeature(f), nil
}

func (s *MemoryStore) DeleteFeature(_ context.Context, id uint64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.features[id]; !ok {
		return false, nil
	}
	delete(s.features, id)
	return true, nil
}

// ----- scoring criteria -----

func (s *MemoryStore) CreateCriteria(_ context.Context, in model.CriteriaInput) (model.ScoringCriteria, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.criteriaID++
	c := model.ScoringCriteria{
		ID:          s.criteriaID,
		Name:        in.Name,
		Description: in.Description,
		Weight:      in.Weight,
		Order:       in.Order,
	}
	s.criteria[c.ID] = c
	return c, nil
}

func (s *MemoryStore) ListCriteria(_ context.Context) ([]model.ScoringCriteria, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.ScoringCriteria, 0, len(s.criteria))
	for _, c := range s.criteria {
		out = append(out, c)
	}
	// Order is not guaranteed unique; fall back to id so the sort is stable
	// across calls.
	sort.Slice(out, func(i, j int) bool {
		if out[i].Order != out[j].Order {
			return out[i].Order < out[j].Order
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (s *MemoryStore) UpdateCriteria(_ context.Context, id uint64, patch model.CriteriaPatch) (model.ScoringCriteria, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.criteria[id]
	if !ok {
		return model.ScoringCriteria{}, ErrNotFound
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
	s.criteria[id] = c
	return c, nil
}

// ----- comments -----

func (s *MemoryStore) CreateComment(_ context.Context, in model.CommentInput) (model.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.commentID++
	c := model.Comment{
		ID:        s.commentID,
		FeatureID: in.FeatureID,
		UserID:    in.UserID,
		Content:   in.Content,
		CreatedAt: time.Now().UTC(),
	}
	s.comments[c.ID] = c
	return c, nil
}

func (s *MemoryStore) ListCommentsByFeature(_ context.Context, featureID uint64) ([]model.Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Comment, 0)
	for _, c := range s.comments {
		if c.FeatureID == featureID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// ----- refresh tokens -----

func (s *MemoryStore) StoreRefresh(_ context.Context, userID uint64, hash string, expiresAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[hash] = refreshRecord{userID: userID, expiresAt: expiresAt}
	return nil
}

func (s *MemoryStore) ValidateRefresh(_ context.Context, hash string) (uint64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.tokens[hash]
	if !ok || time.Now().UTC().After(rec.expiresAt) {
		return 0, ErrNotFound
	}
	return rec.userID, nil
}

func (s *MemoryStore) RevokeByHash(_ context.Context, hash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tokens, hash)
	return nil
}

func (s *MemoryStore) RevokeAllForUser(_ context.Context, userID uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for hash, rec := range s.tokens {
		if rec.userID == userID {
			delete(s.tokens, hash)
		}
	}
	return nil
}

func copyTags(tags []string) []string {
	if tags == nil {
		return nil
	}
	out := make([]string, len(tags))
	copy(out, tags)
	return out
}

func copyFeature(f model.Feature) model.Feature {
	f.Tags = copyTags(f.Tags)
	return f
}

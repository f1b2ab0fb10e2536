package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/prioboard/prioboard/internal/model"
	"github.com/prioboard/prioboard/internal/queue"
	"github.com/prioboard/prioboard/internal/repository"
)

// FeatureHandler serves the /api/features CRUD surface. Publish, when set,
// is called best-effort after every successful mutation; a nil Publish
// simply disables activity events (tests, broker-less deployments).
type FeatureHandler struct {
	Features repository.FeatureStore
	Publish  func(context.Context, queue.FeatureActivityEvent) error
}

func NewFeatureHandler(features repository.FeatureStore, publish func(context.Context, queue.FeatureActivityEvent) error) *FeatureHandler {
	if features == nil {
		panic("nil feature store passed to NewFeatureHandler")
	}
	return &FeatureHandler{Features: features, Publish: publish}
}

// featureReq binds create and patch bodies. Every field is a pointer so an
// absent field is distinguishable from a zero value; createdById and
// totalScore are deliberately not bound, the server owns both.
type featureReq struct {
	Title         *string   `json:"title"`
	Description   *string   `json:"description"`
	ImpactScore   *int      `json:"impactScore"`
	EffortScore   *int      `json:"effortScore"`
	Status        *string   `json:"status"`
	CustomerType  *string   `json:"customerType"`
	CustomerCount *int      `json:"customerCount"`
	Category      *string   `json:"category"`
	Tags          *[]string `json:"tags"`
}

// List handles GET /api/features.
func (h *FeatureHandler) List(c echo.Context) error {
	features, err := h.Features.ListFeatures(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not list features"})
	}
	return c.JSON(http.StatusOK, features)
}

// Get handles GET /api/features/:id.
func (h *FeatureHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	feature, err := h.Features.GetFeature(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "feature not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not load feature"})
	}
	return c.JSON(http.StatusOK, feature)
}

// Create handles POST /api/features. createdById is forced to the caller
// and any supplied totalScore is ignored.
func (h *FeatureHandler) Create(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req featureReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	in := model.FeatureInput{
		CreatedByID:  userID,
		ImpactScore:  model.DefaultImpactScore,
		EffortScore:  model.DefaultEffortScore,
		Status:       model.DefaultStatus,
		CustomerType: model.DefaultCustomerType,
		Category:     model.DefaultCategory,
		Tags:         []string{},
	}
	if req.Title == nil || strings.TrimSpace(*req.Title) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "title is required"})
	}
	in.Title = strings.TrimSpace(*req.Title)
	if req.Description == nil || strings.TrimSpace(*req.Description) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "description is required"})
	}
	in.Description = strings.TrimSpace(*req.Description)
	if req.ImpactScore != nil {
		if !model.ValidScore(*req.ImpactScore) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "impactScore must be between 0 and 100"})
		}
		in.ImpactScore = *req.ImpactScore
	}
	if req.EffortScore != nil {
		if !model.ValidScore(*req.EffortScore) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "effortScore must be between 0 and 100"})
		}
		in.EffortScore = *req.EffortScore
	}
	if req.Status != nil {
		if !model.ValidStatus(*req.Status) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown status"})
		}
		in.Status = *req.Status
	}
	if req.CustomerType != nil {
		if !model.ValidCustomerType(*req.CustomerType) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown customerType"})
		}
		in.CustomerType = *req.CustomerType
	}
	if req.CustomerCount != nil {
		if *req.CustomerCount < 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "customerCount must not be negative"})
		}
		in.CustomerCount = *req.CustomerCount
	}
	if req.Category != nil && strings.TrimSpace(*req.Category) != "" {
		in.Category = strings.TrimSpace(*req.Category)
	}
	if req.Tags != nil {
		in.Tags = *req.Tags
	}

	feature, err := h.Features.CreateFeature(c.Request().Context(), in)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create feature"})
	}
	h.publishActivity(c, queue.ActionCreated, feature, userID)
	return c.JSON(http.StatusCreated, feature)
}

// Update handles PATCH /api/features/:id. Only fields present in the body
// are merged; the store re-stamps updatedAt and recomputes totalScore when
// impact or effort changed.
func (h *FeatureHandler) Update(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req featureReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	patch := model.FeaturePatch{
		CustomerCount: req.CustomerCount,
		Tags:          req.Tags,
	}
	if req.Title != nil {
		t := strings.TrimSpace(*req.Title)
		if t == "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "title cannot be empty"})
		}
		patch.Title = &t
	}
	if req.Description != nil {
		d := strings.TrimSpace(*req.Description)
		if d == "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "description cannot be empty"})
		}
		patch.Description = &d
	}
	if req.ImpactScore != nil {
		if !model.ValidScore(*req.ImpactScore) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "impactScore must be between 0 and 100"})
		}
		patch.ImpactScore = req.ImpactScore
	}
	if req.EffortScore != nil {
		if !model.ValidScore(*req.EffortScore) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "effortScore must be between 0 and 100"})
		}
		patch.EffortScore = req.EffortScore
	}
	if req.Status != nil {
		if !model.ValidStatus(*req.Status) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown status"})
		}
		patch.Status = req.Status
	}
	if req.CustomerType != nil {
		if !model.ValidCustomerType(*req.CustomerType) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown customerType"})
		}
		patch.CustomerType = req.CustomerType
	}
	if req.CustomerCount != nil && *req.CustomerCount < 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "customerCount must not be negative"})
	}
	if req.Category != nil {
		cat := strings.TrimSpace(*req.Category)
		if cat == "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "category cannot be empty"})
		}
		patch.Category = &cat
	}

	feature, err := h.Features.UpdateFeature(c.Request().Context(), id, patch)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "feature not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not update feature"})
	}
	h.publishActivity(c, queue.ActionUpdated, feature, userID)
	return c.JSON(http.StatusOK, feature)
}

// Delete handles DELETE /api/features/:id. Deleting an id twice yields 404
// the second time.
func (h *FeatureHandler) Delete(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	// Load before delete so the activity event can carry the title.
	feature, getErr := h.Features.GetFeature(c.Request().Context(), id)

	ok, err := h.Features.DeleteFeature(c.Request().Context(), id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not delete feature"})
	}
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "feature not found"})
	}
	if getErr == nil {
		h.publishActivity(c, queue.ActionDeleted, feature, userID)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *FeatureHandler) publishActivity(c echo.Context, action string, f model.Feature, actorID uint64) {
	if h.Publish == nil {
		return
	}
	// Best-effort: the publisher logs its own failures and the request
	// outcome never depends on the broker.
	_ = h.Publish(c.Request().Context(), queue.FeatureActivityEvent{
		Action:     action,
		FeatureID:  f.ID,
		Title:      f.Title,
		TotalScore: f.TotalScore,
		ActorID:    actorID,
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
	})
}

package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/prioboard/prioboard/internal/model"
	"github.com/prioboard/prioboard/internal/repository"
)

// CriteriaHandler serves the /api/scoring-criteria endpoints.
type CriteriaHandler struct {
	Criteria repository.CriteriaStore
}

func NewCriteriaHandler(criteria repository.CriteriaStore) *CriteriaHandler {
	if criteria == nil {
		panic("nil criteria store passed to NewCriteriaHandler")
	}
	return &CriteriaHandler{Criteria: criteria}
}

type criteriaReq struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Weight      *int    `json:"weight"`
	Order       *int    `json:"order"`
}

// List handles GET /api/scoring-criteria, ordered by the order field.
func (h *CriteriaHandler) List(c echo.Context) error {
	criteria, err := h.Criteria.ListCriteria(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not list scoring criteria"})
	}
	return c.JSON(http.StatusOK, criteria)
}

// Create handles POST /api/scoring-criteria.
func (h *CriteriaHandler) Create(c echo.Context) error {
	var req criteriaReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	in := model.CriteriaInput{Weight: model.DefaultCriteriaWeight}
	if req.Name == nil || strings.TrimSpace(*req.Name) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
	}
	in.Name = strings.TrimSpace(*req.Name)
	if req.Description == nil || strings.TrimSpace(*req.Description) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "description is required"})
	}
	in.Description = strings.TrimSpace(*req.Description)
	if req.Weight != nil {
		if !model.ValidWeight(*req.Weight) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "weight must be between 0 and 100"})
		}
		in.Weight = *req.Weight
	}
	if req.Order == nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "order is required"})
	}
	in.Order = *req.Order

	criteria, err := h.Criteria.CreateCriteria(c.Request().Context(), in)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create scoring criteria"})
	}
	return c.JSON(http.StatusCreated, criteria)
}

// Update handles PATCH /api/scoring-criteria/:id.
func (h *CriteriaHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req criteriaReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	patch := model.CriteriaPatch{Order: req.Order}
	if req.Name != nil {
		n := strings.TrimSpace(*req.Name)
		if n == "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "name cannot be empty"})
		}
		patch.Name = &n
	}
	if req.Description != nil {
		d := strings.TrimSpace(*req.Description)
		if d == "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "description cannot be empty"})
		}
		patch.Description = &d
	}
	if req.Weight != nil {
		if !model.ValidWeight(*req.Weight) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "weight must be between 0 and 100"})
		}
		patch.Weight = req.Weight
	}

	criteria, err := h.Criteria.UpdateCriteria(c.Request().Context(), id, patch)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "scoring criteria not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not update scoring criteria"})
	}
	return c.JSON(http.StatusOK, criteria)
}

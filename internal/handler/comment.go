package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/prioboard/prioboard/internal/model"
	"github.com/prioboard/prioboard/internal/repository"
)

// CommentHandler serves the per-feature comment endpoints. It checks the
// feature exists before accepting a new comment, but listing tolerates
// unknown feature ids and returns an empty array.
type CommentHandler struct {
	Features repository.FeatureStore
	Comments repository.CommentStore
}

func NewCommentHandler(features repository.FeatureStore, comments repository.CommentStore) *CommentHandler {
	if features == nil || comments == nil {
		panic("nil store passed to NewCommentHandler")
	}
	return &CommentHandler{Features: features, Comments: comments}
}

type commentReq struct {
	Content string `json:"content"`
}

// List handles GET /api/features/:id/comments, createdAt ascending.
func (h *CommentHandler) List(c echo.Context) error {
	featureID, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid feature id"})
	}
	comments, err := h.Comments.ListCommentsByFeature(c.Request().Context(), featureID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not list comments"})
	}
	return c.JSON(http.StatusOK, comments)
}

// Create handles POST /api/features/:id/comments. The feature id comes
// from the path and userId from the authenticated caller; the body carries
// only the content.
func (h *CommentHandler) Create(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	featureID, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid feature id"})
	}
	var req commentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "content is required"})
	}

	if _, err := h.Features.GetFeature(c.Request().Context(), featureID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "feature not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not load feature"})
	}

	comment, err := h.Comments.CreateComment(c.Request().Context(), model.CommentInput{
		FeatureID: featureID,
		UserID:    userID,
		Content:   content,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create comment"})
	}
	return c.JSON(http.StatusCreated, comment)
}

package handler_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prioboard/prioboard/internal/model"
)

func TestCommentCreateAndList(t *testing.T) {
	e, _ := newTestServer(t)
	token, _ := authTokens(t, e, "alice")

	rec := doJSON(e, "POST", "/api/features", token, `{"title":"t","description":"d"}`)
	require.Equal(t, 201, rec.Code)

	rec = doJSON(e, "POST", "/api/features/1/comments", token, `{"content":"first"}`)
	require.Equal(t, 201, rec.Code, rec.Body.String())
	var created model.Comment
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "first", created.Content)
	assert.Equal(t, uint64(1), created.FeatureID)
	assert.Equal(t, uint64(1), created.UserID)

	rec = doJSON(e, "POST", "/api/features/1/comments", token, `{"content":"second"}`)
	require.Equal(t, 201, rec.Code)

	rec = doJSON(e, "GET", "/api/features/1/comments", token, "")
	require.Equal(t, 200, rec.Code)
	var list []model.Comment
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 2)
	assert.Equal(t, "first", list[0].Content)
	assert.Equal(t, "second", list[1].Content)
}

func TestCommentOnMissingFeature(t *testing.T) {
	e, _ := newTestServer(t)
	token, _ := authTokens(t, e, "alice")

	// Creating against an unknown feature is rejected...
	rec := doJSON(e, "POST", "/api/features/42/comments", token, `{"content":"hello"}`)
	assert.Equal(t, 404, rec.Code)

	// ...but listing just yields an empty array.
	rec = doJSON(e, "GET", "/api/features/42/comments", token, "")
	require.Equal(t, 200, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestCommentValidation(t *testing.T) {
	e, _ := newTestServer(t)
	token, _ := authTokens(t, e, "alice")

	rec := doJSON(e, "POST", "/api/features", token, `{"title":"t","description":"d"}`)
	require.Equal(t, 201, rec.Code)

	rec = doJSON(e, "POST", "/api/features/1/comments", token, `{"content":"   "}`)
	assert.Equal(t, 400, rec.Code)

	rec = doJSON(e, "POST", "/api/features/abc/comments", token, `{"content":"x"}`)
	assert.Equal(t, 400, rec.Code)
}

package handler_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prioboard/prioboard/internal/model"
)

func TestFeatureLifecycle(t *testing.T) {
	e, _ := newTestServer(t)
	token, _ := authTokens(t, e, "alice")

	rec := doJSON(e, "POST", "/api/features", token,
		`{"title":"SSO login","description":"SAML support for enterprise","impactScore":90,"effortScore":70}`)
	require.Equal(t, 201, rec.Code, rec.Body.String())

	var created model.Feature
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, 90, created.ImpactScore)
	assert.Equal(t, 70, created.EffortScore)
	assert.Equal(t, 72, created.TotalScore) // floor(90*0.7 + 30*0.3)
	assert.Equal(t, "pending", created.Status)
	assert.NotZero(t, created.ID)
	assert.NotZero(t, created.CreatedByID)

	rec = doJSON(e, "GET", "/api/features", token, "")
	require.Equal(t, 200, rec.Code)
	var list []model.Feature
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, created.ID, list[0].ID)

	// Patching effort alone must leave impact intact and recompute the total.
	rec = doJSON(e, "PATCH", "/api/features/1", token, `{"effortScore":40}`)
	require.Equal(t, 200, rec.Code, rec.Body.String())
	var patched model.Feature
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &patched))
	assert.Equal(t, 90, patched.ImpactScore)
	assert.Equal(t, 40, patched.EffortScore)
	assert.Equal(t, 81, patched.TotalScore)
	assert.Equal(t, "SSO login", patched.Title)

	rec = doJSON(e, "DELETE", "/api/features/1", token, "")
	assert.Equal(t, 204, rec.Code)

	// A second delete of the same id is not idempotent.
	rec = doJSON(e, "DELETE", "/api/features/1", token, "")
	assert.Equal(t, 404, rec.Code)

	rec = doJSON(e, "GET", "/api/features/1", token, "")
	assert.Equal(t, 404, rec.Code)
}

func TestFeatureDefaults(t *testing.T) {
	e, _ := newTestServer(t)
	token, _ := authTokens(t, e, "alice")

	rec := doJSON(e, "POST", "/api/features", token,
		`{"title":"Dark mode","description":"Theme toggle"}`)
	require.Equal(t, 201, rec.Code, rec.Body.String())

	var f model.Feature
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &f))
	assert.Equal(t, 50, f.ImpactScore)
	assert.Equal(t, 50, f.EffortScore)
	assert.Equal(t, 50, f.TotalScore)
	assert.Equal(t, "pending", f.Status)
	assert.Equal(t, "internal", f.CustomerType)
	assert.Equal(t, "feature", f.Category)
	assert.Equal(t, 0, f.CustomerCount)
	assert.NotNil(t, f.Tags)
	assert.Empty(t, f.Tags)
}

func TestFeatureServerOwnedFields(t *testing.T) {
	e, _ := newTestServer(t)
	token, _ := authTokens(t, e, "alice")

	// totalScore and createdById in the body are ignored outright.
	rec := doJSON(e, "POST", "/api/features", token,
		`{"title":"X","description":"Y","impactScore":90,"effortScore":70,"totalScore":1,"createdById":999}`)
	require.Equal(t, 201, rec.Code, rec.Body.String())

	var f model.Feature
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &f))
	assert.Equal(t, 72, f.TotalScore)
	assert.Equal(t, uint64(1), f.CreatedByID)

	rec = doJSON(e, "PATCH", "/api/features/1", token, `{"totalScore":5}`)
	require.Equal(t, 200, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &f))
	assert.Equal(t, 72, f.TotalScore)
}

func TestFeatureValidation(t *testing.T) {
	e, _ := newTestServer(t)
	token, _ := authTokens(t, e, "alice")

	cases := []struct {
		name string
		body string
	}{
		{"missing title", `{"description":"d"}`},
		{"blank title", `{"title":"   ","description":"d"}`},
		{"missing description", `{"title":"t"}`},
		{"impact too high", `{"title":"t","description":"d","impactScore":101}`},
		{"impact negative", `{"title":"t","description":"d","impactScore":-1}`},
		{"effort too high", `{"title":"t","description":"d","effortScore":101}`},
		{"unknown status", `{"title":"t","description":"d","status":"someday"}`},
		{"unknown customerType", `{"title":"t","description":"d","customerType":"vip"}`},
		{"negative customerCount", `{"title":"t","description":"d","customerCount":-2}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := doJSON(e, "POST", "/api/features", token, tc.body)
			assert.Equal(t, 400, rec.Code, rec.Body.String())
		})
	}

	// The same field rules apply to patches.
	rec := doJSON(e, "POST", "/api/features", token, `{"title":"t","description":"d"}`)
	require.Equal(t, 201, rec.Code)
	for _, body := range []string{
		`{"title":""}`,
		`{"description":"  "}`,
		`{"impactScore":200}`,
		`{"status":"nope"}`,
	} {
		rec = doJSON(e, "PATCH", "/api/features/1", token, body)
		assert.Equal(t, 400, rec.Code, body)
	}

	rec = doJSON(e, "PATCH", "/api/features/999", token, `{"title":"t"}`)
	assert.Equal(t, 404, rec.Code)

	rec = doJSON(e, "GET", "/api/features/abc", token, "")
	assert.Equal(t, 400, rec.Code)
}

func TestFeatureListReflectsOwnWriteThroughCache(t *testing.T) {
	e, _ := newCachedTestServer(t)
	token, _ := authTokens(t, e, "alice")

	// Prime the cache with the empty list.
	rec := doJSON(e, "GET", "/api/features", token, "")
	require.Equal(t, 200, rec.Code)
	require.Equal(t, "[]\n", rec.Body.String())

	rec = doJSON(e, "POST", "/api/features", token, `{"title":"t","description":"d"}`)
	require.Equal(t, 201, rec.Code)

	// The read after the write must show the new feature, not the cached
	// pre-mutation body.
	rec = doJSON(e, "GET", "/api/features", token, "")
	require.Equal(t, 200, rec.Code)
	var list []model.Feature
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, "t", list[0].Title)
}

func TestFeatureRoutesRequireAuth(t *testing.T) {
	e, _ := newTestServer(t)
	token, _ := authTokens(t, e, "alice")
	rec := doJSON(e, "POST", "/api/features", token, `{"title":"t","description":"d"}`)
	require.Equal(t, 201, rec.Code)

	for _, tc := range []struct{ method, path, body string }{
		{"GET", "/api/features", ""},
		{"GET", "/api/features/1", ""},
		{"POST", "/api/features", `{"title":"t","description":"d"}`},
		{"PATCH", "/api/features/1", `{"title":"u"}`},
		{"DELETE", "/api/features/1", ""},
		{"GET", "/api/scoring-criteria", ""},
		{"GET", "/api/features/1/comments", ""},
		{"GET", "/api/me", ""},
	} {
		rec := doJSON(e, tc.method, tc.path, "", tc.body)
		assert.Equal(t, 401, rec.Code, "%s %s", tc.method, tc.path)
		assert.NotContains(t, rec.Body.String(), `"title"`)
	}

	rec = doJSON(e, "GET", "/api/features", "not-a-jwt", "")
	assert.Equal(t, 401, rec.Code)
}

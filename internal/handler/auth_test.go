package handler_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prioboard/prioboard/internal/model"
)

func TestRegisterAndMe(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doJSON(e, "POST", "/api/auth/register", "",
		`{"username":"alice","password":"pw","name":"Alice"}`)
	require.Equal(t, 201, rec.Code, rec.Body.String())
	// The password hash must never appear in a response.
	assert.NotContains(t, rec.Body.String(), "password")
	assert.NotContains(t, rec.Body.String(), "$2a$")

	var resp struct {
		User   model.User
		Access struct{ Token string }
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "alice", resp.User.Username)
	assert.Equal(t, "user", resp.User.Role)

	rec = doJSON(e, "GET", "/api/me", resp.Access.Token, "")
	require.Equal(t, 200, rec.Code)
	var me model.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &me))
	assert.Equal(t, resp.User.ID, me.ID)
	assert.Equal(t, "Alice", me.Name)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	e, _ := newTestServer(t)
	authTokens(t, e, "alice")

	rec := doJSON(e, "POST", "/api/auth/register", "",
		`{"username":"alice","password":"other","name":"Imposter"}`)
	assert.Equal(t, 409, rec.Code)
}

func TestLogin(t *testing.T) {
	e, _ := newTestServer(t)
	authTokens(t, e, "alice")

	rec := doJSON(e, "POST", "/api/auth/login", "", `{"username":"alice","password":"pw"}`)
	require.Equal(t, 200, rec.Code, rec.Body.String())
	var resp struct {
		Access struct{ Token string }
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Access.Token)

	rec = doJSON(e, "GET", "/api/features", resp.Access.Token, "")
	assert.Equal(t, 200, rec.Code)

	// Bad password and unknown user look identical to the caller.
	rec = doJSON(e, "POST", "/api/auth/login", "", `{"username":"alice","password":"wrong"}`)
	assert.Equal(t, 401, rec.Code)
	rec = doJSON(e, "POST", "/api/auth/login", "", `{"username":"nobody","password":"pw"}`)
	assert.Equal(t, 401, rec.Code)

	rec = doJSON(e, "POST", "/api/auth/login", "", `{"username":"","password":""}`)
	assert.Equal(t, 400, rec.Code)
}

func TestRefreshRotation(t *testing.T) {
	e, _ := newTestServer(t)
	_, refresh := authTokens(t, e, "alice")

	rec := doJSON(e, "POST", "/api/auth/refresh", "", `{"refresh_token":"`+refresh+`"}`)
	require.Equal(t, 200, rec.Code, rec.Body.String())
	var resp struct {
		Access  struct{ Token string }
		Refresh struct{ Token string }
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Refresh.Token)
	assert.NotEqual(t, refresh, resp.Refresh.Token)

	// The old refresh token was revoked by the rotation.
	rec = doJSON(e, "POST", "/api/auth/refresh", "", `{"refresh_token":"`+refresh+`"}`)
	assert.Equal(t, 401, rec.Code)

	// The new one still works.
	rec = doJSON(e, "POST", "/api/auth/refresh", "", `{"refresh_token":"`+resp.Refresh.Token+`"}`)
	assert.Equal(t, 200, rec.Code)
}

func TestLogout(t *testing.T) {
	e, _ := newTestServer(t)
	_, refresh := authTokens(t, e, "alice")

	rec := doJSON(e, "POST", "/api/auth/logout", "", `{"refresh_token":"`+refresh+`"}`)
	require.Equal(t, 204, rec.Code)

	rec = doJSON(e, "POST", "/api/auth/refresh", "", `{"refresh_token":"`+refresh+`"}`)
	assert.Equal(t, 401, rec.Code)

	rec = doJSON(e, "POST", "/api/auth/logout", "", `{"refresh_token":"`+refresh+`"}`)
	assert.Equal(t, 401, rec.Code)

	rec = doJSON(e, "POST", "/api/auth/logout", "", `{}`)
	assert.Equal(t, 400, rec.Code)
}

func TestLogoutEverywhere(t *testing.T) {
	e, _ := newTestServer(t)
	authTokens(t, e, "alice")

	// A second login gives the same user a second refresh token.
	rec := doJSON(e, "POST", "/api/auth/login", "", `{"username":"alice","password":"pw"}`)
	require.Equal(t, 200, rec.Code)
	var first struct {
		Refresh struct{ Token string }
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &first))

	rec = doJSON(e, "POST", "/api/auth/login", "", `{"username":"alice","password":"pw"}`)
	require.Equal(t, 200, rec.Code)
	var second struct {
		Refresh struct{ Token string }
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &second))

	rec = doJSON(e, "POST", "/api/auth/logout", "",
		`{"refresh_token":"`+second.Refresh.Token+`","all":true}`)
	require.Equal(t, 204, rec.Code)

	// Both sessions are gone, not just the presented one.
	rec = doJSON(e, "POST", "/api/auth/refresh", "", `{"refresh_token":"`+first.Refresh.Token+`"}`)
	assert.Equal(t, 401, rec.Code)
	rec = doJSON(e, "POST", "/api/auth/refresh", "", `{"refresh_token":"`+second.Refresh.Token+`"}`)
	assert.Equal(t, 401, rec.Code)
}

func TestMeIsNotSharedAcrossUsers(t *testing.T) {
	e, _ := newCachedTestServer(t)
	aliceTok, _ := authTokens(t, e, "alice")
	bobTok, _ := authTokens(t, e, "bob")

	rec := doJSON(e, "GET", "/api/me", aliceTok, "")
	require.Equal(t, 200, rec.Code)
	var me model.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &me))
	require.Equal(t, "alice", me.Username)

	// With the response cache live, a different caller on the same route
	// must still get their own profile back.
	rec = doJSON(e, "GET", "/api/me", bobTok, "")
	require.Equal(t, 200, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &me))
	assert.Equal(t, "bob", me.Username)
	assert.NotContains(t, rec.Body.String(), "alice")
}

func TestListUsers(t *testing.T) {
	e, _ := newTestServer(t)
	token, _ := authTokens(t, e, "alice")
	authTokens(t, e, "bob")

	rec := doJSON(e, "GET", "/api/users", token, "")
	require.Equal(t, 200, rec.Code)
	var users []model.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &users))
	require.Len(t, users, 2)
	assert.Equal(t, "alice", users[0].Username)
	assert.Equal(t, "bob", users[1].Username)
	assert.NotContains(t, rec.Body.String(), "password")
}

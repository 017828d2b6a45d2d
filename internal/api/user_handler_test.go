package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	recorder := env.doRequest(t, http.MethodPost, "/api/users", "", map[string]string{
		"username": "alice",
		"name":     "Alice Smith",
		"password": "secret123",
	})

	require.Equal(t, http.StatusCreated, recorder.Code, recorder.Body.String())

	var user UserResponse
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, recorder).Data, &user))
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "Alice Smith", user.Name)
	assert.NotEmpty(t, user.ID)

	// No password material in the response body
	assert.NotContains(t, recorder.Body.String(), "secret123")
	assert.NotContains(t, recorder.Body.String(), "password")
}

func TestRegisterDuplicateUsername(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	payload := map[string]string{
		"username": "alice",
		"name":     "Alice Smith",
		"password": "secret123",
	}

	recorder := env.doRequest(t, http.MethodPost, "/api/users", "", payload)
	require.Equal(t, http.StatusCreated, recorder.Code)

	// Second registration with the same username is a 400, not a 409
	recorder = env.doRequest(t, http.MethodPost, "/api/users", "", payload)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, "Username already taken", decodeEnvelope(t, recorder).Errors)
}

func TestRegisterValidation(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	tests := []struct {
		name    string
		payload map[string]string
	}{
		{
			name:    "missing username",
			payload: map[string]string{"name": "Alice", "password": "secret123"},
		},
		{
			name:    "short username",
			payload: map[string]string{"username": "al", "name": "Alice", "password": "secret123"},
		},
		{
			name:    "short password",
			payload: map[string]string{"username": "alice", "name": "Alice", "password": "short"},
		},
		{
			name:    "missing name",
			payload: map[string]string{"username": "alice", "password": "secret123"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := env.doRequest(t, http.MethodPost, "/api/users", "", tt.payload)
			assert.Equal(t, http.StatusBadRequest, recorder.Code)
			assert.NotEmpty(t, decodeEnvelope(t, recorder).Errors)
		})
	}
}

func TestLogin(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	recorder := env.doRequest(t, http.MethodPost, "/api/users", "", map[string]string{
		"username": "alice",
		"name":     "Alice Smith",
		"password": "secret123",
	})
	require.Equal(t, http.StatusCreated, recorder.Code)

	recorder = env.doRequest(t, http.MethodPost, "/api/users/login", "", map[string]string{
		"username": "alice",
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

	var login LoginResponse
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, recorder).Data, &login))
	assert.Equal(t, "alice", login.Username)
	assert.NotEmpty(t, login.Token)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	recorder := env.doRequest(t, http.MethodPost, "/api/users", "", map[string]string{
		"username": "alice",
		"name":     "Alice Smith",
		"password": "secret123",
	})
	require.Equal(t, http.StatusCreated, recorder.Code)

	// Wrong password
	wrongPass := env.doRequest(t, http.MethodPost, "/api/users/login", "", map[string]string{
		"username": "alice",
		"password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, wrongPass.Code)

	// Unknown username
	unknownUser := env.doRequest(t, http.MethodPost, "/api/users/login", "", map[string]string{
		"username": "nobody",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusUnauthorized, unknownUser.Code)

	// The two failures carry the same body, so a caller cannot probe for
	// existing usernames
	assert.Equal(t, decodeEnvelope(t, wrongPass).Errors, decodeEnvelope(t, unknownUser).Errors)
}

func TestCurrentUser(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	token := env.registerAndLogin(t, "alice", "Alice Smith", "secret123")

	recorder := env.doRequest(t, http.MethodGet, "/api/users/current", token, nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var user UserResponse
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, recorder).Data, &user))
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "Alice Smith", user.Name)
}

func TestCurrentUserRequiresToken(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	// No Authorization header
	recorder := env.doRequest(t, http.MethodGet, "/api/users/current", "", nil)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Equal(t, "Authorization header required", decodeEnvelope(t, recorder).Errors)

	// A token that was never issued
	recorder = env.doRequest(t, http.MethodGet, "/api/users/current", "bogus-token", nil)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Equal(t, "Invalid token", decodeEnvelope(t, recorder).Errors)
}

func TestUpdateUser(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	token := env.registerAndLogin(t, "alice", "Alice Smith", "secret123")

	// Patch only the name
	recorder := env.doRequest(t, http.MethodPatch, "/api/users/current", token, map[string]string{
		"name": "Alice Jones",
	})
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

	var user UserResponse
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, recorder).Data, &user))
	assert.Equal(t, "Alice Jones", user.Name)
	assert.Equal(t, "alice", user.Username)

	// The untouched password still authenticates
	recorder = env.doRequest(t, http.MethodPost, "/api/users/login", "", map[string]string{
		"username": "alice",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestUpdateUserPassword(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	token := env.registerAndLogin(t, "alice", "Alice Smith", "secret123")

	recorder := env.doRequest(t, http.MethodPatch, "/api/users/current", token, map[string]string{
		"password": "newsecret456",
	})
	require.Equal(t, http.StatusOK, recorder.Code)

	// The session issued before the change still works
	recorder = env.doRequest(t, http.MethodGet, "/api/users/current", token, nil)
	assert.Equal(t, http.StatusOK, recorder.Code)

	// Only the new password logs in
	recorder = env.doRequest(t, http.MethodPost, "/api/users/login", "", map[string]string{
		"username": "alice",
		"password": "newsecret456",
	})
	assert.Equal(t, http.StatusOK, recorder.Code)

	recorder = env.doRequest(t, http.MethodPost, "/api/users/login", "", map[string]string{
		"username": "alice",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestUpdateUserEmptyPatch(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	token := env.registerAndLogin(t, "alice", "Alice Smith", "secret123")

	recorder := env.doRequest(t, http.MethodPatch, "/api/users/current", token, map[string]string{})
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, "Nothing to update", decodeEnvelope(t, recorder).Errors)
}

func TestLogout(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	token := env.registerAndLogin(t, "alice", "Alice Smith", "secret123")

	// Logout succeeds with data true
	recorder := env.doRequest(t, http.MethodDelete, "/api/users/current", token, nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"data":true}`, recorder.Body.String())

	// The token is dead: a repeat logout and any other call are 401
	recorder = env.doRequest(t, http.MethodDelete, "/api/users/current", token, nil)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)

	recorder = env.doRequest(t, http.MethodGet, "/api/users/current", token, nil)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestLogoutRevokesOnlyPresentedSession(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	first := env.registerAndLogin(t, "alice", "Alice Smith", "secret123")

	// A second login issues an independent session
	recorder := env.doRequest(t, http.MethodPost, "/api/users/login", "", map[string]string{
		"username": "alice",
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, recorder.Code)

	var login LoginResponse
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, recorder).Data, &login))
	second := login.Token
	require.NotEqual(t, first, second)

	// Logging out the first session leaves the second alive
	recorder = env.doRequest(t, http.MethodDelete, "/api/users/current", first, nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	recorder = env.doRequest(t, http.MethodGet, "/api/users/current", second, nil)
	assert.Equal(t, http.StatusOK, recorder.Code)
}

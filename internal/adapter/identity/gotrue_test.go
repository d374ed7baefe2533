package identity

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnpaulpatigas/focusflow-api/internal/port"
)

func TestSignInWithPassword(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/v1/token", r.URL.Path)
		assert.Equal(t, "password", r.URL.Query().Get("grant_type"))
		assert.Equal(t, "service-key", r.Header.Get("apikey"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "student@example.com", body["email"])

		json.NewEncoder(w).Encode(map[string]any{
			"access_token": "token-abc",
			"token_type":   "bearer",
			"expires_in":   3600,
			"user":         map[string]string{"id": "user-1", "email": "student@example.com"},
		})
	}))
	defer srv.Close()

	p := NewProvider(srv.URL, "service-key")

	session, err := p.SignInWithPassword(context.Background(), "student@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "token-abc", session.AccessToken)
	require.NotNil(t, session.User)
	assert.Equal(t, "user-1", session.User.ID)
}

func TestSignInWithPassword_UpstreamMessageForwarded(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error_description": "Invalid login credentials"})
	}))
	defer srv.Close()

	p := NewProvider(srv.URL, "service-key")

	_, err := p.SignInWithPassword(context.Background(), "a@b.c", "wrong")
	require.Error(t, err)

	ue, ok := port.AsUpstream(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, ue.Code)
	assert.Equal(t, "Invalid login credentials", ue.Message)
	assert.Equal(t, "Invalid login credentials", err.Error())
}

func TestVerifyToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/v1/user", r.URL.Path)
		assert.Equal(t, "Bearer user-token", r.Header.Get("Authorization"))

		json.NewEncoder(w).Encode(map[string]string{"id": "user-1", "email": "student@example.com"})
	}))
	defer srv.Close()

	p := NewProvider(srv.URL, "service-key")

	user, err := p.VerifyToken(context.Background(), "user-token")
	require.NoError(t, err)
	assert.Equal(t, "user-1", user.ID)
	assert.Equal(t, "student@example.com", user.Email)
}

func TestVerifyToken_EmptyUserIsUnauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{})
	}))
	defer srv.Close()

	p := NewProvider(srv.URL, "service-key")

	_, err := p.VerifyToken(context.Background(), "weird-token")
	assert.ErrorIs(t, err, port.ErrUnauthorized)
}

func TestSignUp_SessionInlined(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/v1/signup", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{
			"id":    "user-2",
			"email": "new@example.com",
			"session": map[string]any{
				"access_token": "fresh-token",
				"token_type":   "bearer",
			},
		})
	}))
	defer srv.Close()

	p := NewProvider(srv.URL, "service-key")

	result, err := p.SignUp(context.Background(), "new@example.com", "secret123")
	require.NoError(t, err)
	require.NotNil(t, result.User)
	assert.Equal(t, "user-2", result.User.ID)
	require.NotNil(t, result.Session)
	assert.Equal(t, "fresh-token", result.Session.AccessToken)
}

func TestUpdatePassword_ErrorFieldFallbacks(t *testing.T) {
	// GoTrue error bodies use different field names across endpoints; the
	// first non-empty one wins.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(map[string]string{"msg": "Password should be at least 6 characters"})
	}))
	defer srv.Close()

	p := NewProvider(srv.URL, "service-key")

	err := p.UpdatePassword(context.Background(), "user-token", "short")
	require.Error(t, err)

	ue, ok := port.AsUpstream(err)
	require.True(t, ok)
	assert.Equal(t, "Password should be at least 6 characters", ue.Message)
}

func TestOAuthURL(t *testing.T) {
	p := NewProvider("https://identity.example.com", "service-key")

	url, err := p.OAuthURL(context.Background(), "google", "http://localhost:5173/dashboard", "state-1")
	require.NoError(t, err)
	assert.Contains(t, url, "https://identity.example.com/auth/v1/authorize?")
	assert.Contains(t, url, "provider=google")
	assert.Contains(t, url, "redirect_to=http%3A%2F%2Flocalhost%3A5173%2Fdashboard")
	assert.Contains(t, url, "state=state-1")
}

func TestSignInWithIDToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "id_token", r.URL.Query().Get("grant_type"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "google", body["provider"])
		assert.Equal(t, "google-id-token", body["id_token"])

		json.NewEncoder(w).Encode(map[string]any{"access_token": "native-token"})
	}))
	defer srv.Close()

	p := NewProvider(srv.URL, "service-key")

	session, err := p.SignInWithIDToken(context.Background(), "google", "google-id-token")
	require.NoError(t, err)
	assert.Equal(t, "native-token", session.AccessToken)
}

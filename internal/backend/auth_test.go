package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hwilson/finwat/internal/apperror"
	"hwilson/finwat/internal/localdir"
	"hwilson/finwat/internal/logging"
	"hwilson/finwat/internal/models"
)

func grantJSON(token, email, name string) string {
	grant := providerSession{
		AccessToken:  token,
		RefreshToken: "refresh-1",
		ExpiresIn:    3600,
		User: providerUser{
			ID:           "user-1",
			Email:        email,
			UserMetadata: models.UserMetadata{Name: name},
		},
	}
	data, _ := json.Marshal(grant)
	return string(data)
}

func newTestAuthClient(t *testing.T, handler http.HandlerFunc) (*AuthClient, string) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	dir := t.TempDir()
	return NewAuthClient(server.URL, "anon-key", 5*time.Second, dir, &logging.MockLogger{}), dir
}

func TestSignInStoresAndPersistsSession(t *testing.T) {
	client, dir := newTestAuthClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/v1/token", r.URL.Path)
		assert.Equal(t, "password", r.URL.Query().Get("grant_type"))
		_, _ = w.Write([]byte(grantJSON("token-1", "ana@example.com", "Ana")))
	})

	session, err := client.SignIn(context.Background(), "ana@example.com", "secreta123")
	require.NoError(t, err)
	assert.Equal(t, "token-1", session.AccessToken)
	assert.Equal(t, "Ana", session.User.Name)
	assert.Equal(t, "token-1", client.AccessToken())

	data, err := localdir.ReadFile(dir, "session.json")
	require.NoError(t, err)
	var persisted models.Session
	require.NoError(t, json.Unmarshal(data, &persisted))
	assert.Equal(t, "token-1", persisted.AccessToken)
}

func TestSignUpWithoutGrantLeavesSessionEmpty(t *testing.T) {
	// Email confirmation pending: the provider registers the user but
	// issues no token.
	client, _ := newTestAuthClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/v1/signup", r.URL.Path)
		_, _ = w.Write([]byte(`{"id":"user-1","email":"ana@example.com"}`))
	})

	session, err := client.SignUp(context.Background(), "ana@example.com", "secreta123", models.UserMetadata{Name: "Ana"})
	require.NoError(t, err)
	assert.Nil(t, session)
	assert.Nil(t, client.CurrentSession())
}

func TestSignOutClearsLocalSessionEvenOnFailure(t *testing.T) {
	client, dir := newTestAuthClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/auth/v1/logout" {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"message":"revocation failed"}`))
			return
		}
		_, _ = w.Write([]byte(grantJSON("token-1", "ana@example.com", "Ana")))
	})
	_, err := client.SignIn(context.Background(), "ana@example.com", "secreta123")
	require.NoError(t, err)

	err = client.SignOut(context.Background())
	assert.Error(t, err, "provider-side revocation failure is still reported")
	assert.Nil(t, client.CurrentSession())
	_, readErr := os.Stat(filepath.Join(dir, "session.json"))
	assert.True(t, os.IsNotExist(readErr))
}

func TestSessionRestoredAcrossInvocations(t *testing.T) {
	dir := t.TempDir()
	session := models.Session{
		AccessToken: "token-restored",
		User:        models.User{ID: "user-1", Email: "ana@example.com"},
	}
	data, err := json.Marshal(session)
	require.NoError(t, err)
	require.NoError(t, localdir.WriteFile(dir, "session.json", data))

	client := NewAuthClient("http://127.0.0.1:1", "anon-key", time.Second, dir, &logging.MockLogger{})
	require.NotNil(t, client.CurrentSession())
	assert.Equal(t, "token-restored", client.AccessToken())
}

func TestCorruptLocalSessionIsDiscarded(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, localdir.WriteFile(dir, "session.json", []byte("{not json")))

	client := NewAuthClient("http://127.0.0.1:1", "anon-key", time.Second, dir, &logging.MockLogger{})
	assert.Nil(t, client.CurrentSession())
	_, err := os.Stat(filepath.Join(dir, "session.json"))
	assert.True(t, os.IsNotExist(err))
}

func TestSubscribeDeliversCurrentStateFirst(t *testing.T) {
	client, _ := newTestAuthClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(grantJSON("token-1", "ana@example.com", "Ana")))
	})

	var delivered []*models.Session
	client.Subscribe(func(s *models.Session) {
		delivered = append(delivered, s)
	})
	require.Len(t, delivered, 1)
	assert.Nil(t, delivered[0], "logged-out state is delivered on registration")

	_, err := client.SignIn(context.Background(), "ana@example.com", "secreta123")
	require.NoError(t, err)
	require.Len(t, delivered, 2)
	assert.Equal(t, "token-1", delivered[1].AccessToken)
}

func TestUpdateUserRequiresSession(t *testing.T) {
	requests := 0
	client, _ := newTestAuthClient(t, func(w http.ResponseWriter, r *http.Request) {
		requests++
	})

	_, err := client.UpdateUser(context.Background(), models.UserMetadata{Name: "Ana"})
	assert.ErrorIs(t, err, apperror.ErrUnauthenticated)
	assert.Zero(t, requests, "no request must be made without a session")
}

func TestUpdateUserRefreshesSessionUser(t *testing.T) {
	client, _ := newTestAuthClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/auth/v1/user":
			assert.Equal(t, http.MethodPut, r.Method)
			_, _ = w.Write([]byte(`{
				"id": "user-1",
				"email": "ana@example.com",
				"user_metadata": {"name": "Ana García", "phone": "555-0100"}
			}`))
		default:
			_, _ = w.Write([]byte(grantJSON("token-1", "ana@example.com", "Ana")))
		}
	})
	_, err := client.SignIn(context.Background(), "ana@example.com", "secreta123")
	require.NoError(t, err)

	user, err := client.UpdateUser(context.Background(), models.UserMetadata{Name: "Ana García", Phone: "555-0100"})
	require.NoError(t, err)
	assert.Equal(t, "Ana García", user.Name)
	assert.Equal(t, "Ana García", client.CurrentSession().User.Name)
}

func TestStaleTokenDropsLocalSession(t *testing.T) {
	calls := 0
	client, _ := newTestAuthClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			_, _ = w.Write([]byte(grantJSON("token-1", "ana@example.com", "Ana")))
			return
		}
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"msg":"JWT expired"}`))
	})
	_, err := client.SignIn(context.Background(), "ana@example.com", "secreta123")
	require.NoError(t, err)

	_, err = client.UpdateUser(context.Background(), models.UserMetadata{Name: "Ana"})
	assert.Error(t, err)
	assert.Nil(t, client.CurrentSession(), "a 401 clears the local session")
}

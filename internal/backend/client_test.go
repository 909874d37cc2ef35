package backend

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hwilson/finwat/internal/apperror"
	"hwilson/finwat/internal/logging"
)

type staticTokens string

func (s staticTokens) AccessToken() string { return string(s) }

func newTestClient(t *testing.T, handler http.HandlerFunc, tokens TokenSource) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(server.URL, "anon-key", 5*time.Second, tokens, &logging.MockLogger{})
}

func TestSelectBuildsQueryAndHeaders(t *testing.T) {
	var gotPath, gotQuery, gotAPIKey, gotAuth string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		gotAPIKey = r.Header.Get("apikey")
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`[]`))
	}, staticTokens("user-token"))

	data, err := client.Select(context.Background(), "transactions",
		NewQuery().Eq("type", "income"))
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))

	assert.Equal(t, "/rest/v1/transactions", gotPath)
	assert.Contains(t, gotQuery, "type=eq.income")
	assert.Contains(t, gotQuery, "select=%2A")
	assert.Equal(t, "anon-key", gotAPIKey)
	assert.Equal(t, "Bearer user-token", gotAuth)
}

func TestAnonymousFallbackToken(t *testing.T) {
	var gotAuth string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`[]`))
	}, staticTokens(""))

	_, err := client.Select(context.Background(), "transactions", NewQuery())
	require.NoError(t, err)
	assert.Equal(t, "Bearer anon-key", gotAuth)
}

func TestInsertAsksForRepresentation(t *testing.T) {
	var gotMethod, gotPrefer string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPrefer = r.Header.Get("Prefer")
		_, _ = w.Write([]byte(`[{"id":"t1"}]`))
	}, nil)

	_, err := client.Insert(context.Background(), "transactions", map[string]any{"amount": "10"})
	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "return=representation", gotPrefer)
}

func TestBackendRejectionIsMapped(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"message":"duplicate key","code":"23505"}`))
	}, nil)

	_, err := client.Select(context.Background(), "accounts", NewQuery())
	var backendErr *apperror.BackendError
	require.True(t, errors.As(err, &backendErr))
	assert.Equal(t, http.StatusConflict, backendErr.Status)
	assert.Equal(t, "23505", backendErr.Code)
	assert.Equal(t, "duplicate key", backendErr.Message)
}

func TestAuthProviderErrorShapeIsMapped(t *testing.T) {
	// The auth provider answers with "msg" instead of "message".
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"msg":"invalid login credentials"}`))
	}, nil)

	_, err := client.Select(context.Background(), "accounts", NewQuery())
	var backendErr *apperror.BackendError
	require.True(t, errors.As(err, &backendErr))
	assert.Equal(t, "invalid login credentials", backendErr.Message)
}

func TestUnreachableBackendIsTransportError(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", "anon-key", time.Second, nil, &logging.MockLogger{})

	_, err := client.Select(context.Background(), "accounts", NewQuery())
	var transportErr *apperror.TransportError
	assert.True(t, errors.As(err, &transportErr))
}

func TestDeleteReturnsNoBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNoContent)
	}, nil)

	assert.NoError(t, client.Delete(context.Background(), "transactions",
		NewQuery().Eq("id", "t1")))
}

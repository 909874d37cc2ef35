package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"hwilson/finwat/internal/apperror"
	"hwilson/finwat/internal/localdir"
	"hwilson/finwat/internal/logging"
	"hwilson/finwat/internal/models"
)

const (
	authPath    = "/auth/v1"
	sessionFile = "session.json"
)

// SessionListener receives session-change notifications: login, logout and
// token refresh. A nil session means logged out.
type SessionListener func(*models.Session)

// AuthClient talks to the hosted auth/session provider. It owns the current
// session, persists it to device-local storage between invocations, and
// fans session changes out to subscribers.
type AuthClient struct {
	baseURL string
	anonKey string
	http    *http.Client
	dataDir string
	log     logging.Logger

	mu        sync.Mutex
	session   *models.Session
	listeners []SessionListener
}

// NewAuthClient creates an auth client and restores any session persisted
// by a previous invocation from the device-local data directory.
func NewAuthClient(baseURL, anonKey string, timeout time.Duration, dataDir string, log logging.Logger) *AuthClient {
	c := &AuthClient{
		baseURL: baseURL,
		anonKey: anonKey,
		http:    &http.Client{Timeout: timeout},
		dataDir: dataDir,
		log:     log,
	}
	c.restoreSession()
	return c
}

// providerUser is the wire shape of the provider's user object.
type providerUser struct {
	ID           string              `json:"id"`
	Email        string              `json:"email"`
	CreatedAt    time.Time           `json:"created_at"`
	UserMetadata models.UserMetadata `json:"user_metadata"`
}

// providerSession is the wire shape of a token grant.
type providerSession struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	ExpiresIn    int          `json:"expires_in"`
	User         providerUser `json:"user"`
}

// mapUser projects the provider user, with its free-form metadata bag,
// onto the local User shape.
func mapUser(u providerUser) models.User {
	return models.User{
		ID:          u.ID,
		Email:       u.Email,
		Name:        u.UserMetadata.Name,
		Phone:       u.UserMetadata.Phone,
		DateOfBirth: u.UserMetadata.DateOfBirth,
		PhotoURL:    u.UserMetadata.PhotoURL,
		CreatedAt:   u.CreatedAt,
	}
}

func mapSession(s providerSession) *models.Session {
	session := &models.Session{
		AccessToken:  s.AccessToken,
		RefreshToken: s.RefreshToken,
		User:         mapUser(s.User),
	}
	if s.ExpiresIn > 0 {
		session.ExpiresAt = time.Now().Add(time.Duration(s.ExpiresIn) * time.Second)
	}
	return session
}

// SignUp registers a new user with the given credentials and metadata.
// The provider may or may not issue a session right away (e.g. when email
// confirmation is required).
func (c *AuthClient) SignUp(ctx context.Context, email, password string, meta models.UserMetadata) (*models.Session, error) {
	body := map[string]any{
		"email":    email,
		"password": password,
		"data":     meta,
	}
	var grant providerSession
	if err := c.post(ctx, "/signup", body, &grant); err != nil {
		return nil, err
	}
	if grant.AccessToken == "" {
		// Registered but not signed in; leave the current session alone.
		return nil, nil
	}
	session := mapSession(grant)
	c.setSession(session)
	return session, nil
}

// SignIn exchanges credentials for a session.
func (c *AuthClient) SignIn(ctx context.Context, email, password string) (*models.Session, error) {
	body := map[string]any{
		"email":    email,
		"password": password,
	}
	var grant providerSession
	if err := c.post(ctx, "/token?grant_type=password", body, &grant); err != nil {
		return nil, err
	}
	session := mapSession(grant)
	c.setSession(session)
	return session, nil
}

// SignOut revokes the session provider-side and clears the local copy.
// The local copy is cleared even when revocation fails so the device never
// keeps a token the user asked to drop.
func (c *AuthClient) SignOut(ctx context.Context) error {
	err := c.post(ctx, "/logout", struct{}{}, nil)
	c.setSession(nil)
	return err
}

// CurrentSession returns the active session, or nil when logged out.
func (c *AuthClient) CurrentSession() *models.Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session
}

// AccessToken implements TokenSource for the data client.
func (c *AuthClient) AccessToken() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.session == nil {
		return ""
	}
	return c.session.AccessToken
}

// UpdateUser writes into the provider-side user metadata bag and refreshes
// the local session's user projection with the returned record.
func (c *AuthClient) UpdateUser(ctx context.Context, meta models.UserMetadata) (*models.User, error) {
	c.mu.Lock()
	session := c.session
	c.mu.Unlock()
	if !session.Active() {
		return nil, apperror.ErrUnauthenticated
	}

	var updated providerUser
	if err := c.request(ctx, http.MethodPut, "/user", map[string]any{"data": meta}, &updated); err != nil {
		return nil, err
	}

	user := mapUser(updated)
	c.mu.Lock()
	if c.session != nil {
		c.session.User = user
		c.persistSessionLocked()
	}
	refreshed := c.session
	c.mu.Unlock()
	c.notify(refreshed)
	return &user, nil
}

// Subscribe registers a session-change listener for the lifetime of the
// process. The current session state is delivered first, then subsequent
// changes, so consumers have a single code path.
func (c *AuthClient) Subscribe(fn func(*models.Session)) {
	c.mu.Lock()
	c.listeners = append(c.listeners, fn)
	current := c.session
	c.mu.Unlock()
	fn(current)
}

func (c *AuthClient) setSession(session *models.Session) {
	c.mu.Lock()
	c.session = session
	c.persistSessionLocked()
	c.mu.Unlock()
	c.notify(session)
}

func (c *AuthClient) notify(session *models.Session) {
	c.mu.Lock()
	listeners := make([]SessionListener, len(c.listeners))
	copy(listeners, c.listeners)
	c.mu.Unlock()
	for _, fn := range listeners {
		fn(session)
	}
}

// restoreSession loads the session blob a previous invocation left in
// device-local storage.
func (c *AuthClient) restoreSession() {
	data, err := localdir.ReadFile(c.dataDir, sessionFile)
	if err != nil {
		return
	}
	var session models.Session
	if err := json.Unmarshal(data, &session); err != nil {
		c.log.Warn("discarding unreadable local session", logging.Field{Key: logging.FieldError, Value: err})
		_ = localdir.RemoveFile(c.dataDir, sessionFile)
		return
	}
	c.session = &session
}

func (c *AuthClient) persistSessionLocked() {
	if c.session == nil {
		if err := localdir.RemoveFile(c.dataDir, sessionFile); err != nil {
			c.log.Warn("failed to clear local session", logging.Field{Key: logging.FieldError, Value: err})
		}
		return
	}
	data, err := json.Marshal(c.session)
	if err != nil {
		return
	}
	if err := localdir.WriteFile(c.dataDir, sessionFile, data); err != nil {
		c.log.Warn("failed to persist local session", logging.Field{Key: logging.FieldError, Value: err})
	}
}

func (c *AuthClient) post(ctx context.Context, path string, body, dest any) error {
	return c.request(ctx, http.MethodPost, path, body, dest)
}

func (c *AuthClient) request(ctx context.Context, method, path string, body, dest any) error {
	op := fmt.Sprintf("%s auth%s", method, path)

	encoded, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("%s: error encoding request body: %w", op, err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+authPath+path, bytes.NewReader(encoded))
	if err != nil {
		return fmt.Errorf("%s: error building request: %w", op, err)
	}
	req.Header.Set("apikey", c.anonKey)
	req.Header.Set("Content-Type", "application/json")
	token := c.AccessToken()
	if token == "" {
		token = c.anonKey
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.http.Do(req)
	if err != nil {
		return &apperror.TransportError{Op: op, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &apperror.TransportError{Op: op, Err: err}
	}

	if resp.StatusCode >= 300 {
		if resp.StatusCode == http.StatusUnauthorized {
			// A stale token is useless; drop the local session so the next
			// invocation starts from the login flow.
			c.setSession(nil)
		}
		return decodeBackendError(resp.StatusCode, data)
	}

	if dest != nil && len(data) > 0 {
		if err := json.Unmarshal(data, dest); err != nil {
			return &apperror.DecodeError{Entity: "session", Err: err}
		}
	}
	return nil
}

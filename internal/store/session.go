package store

import (
	"context"
	"fmt"
	"sync"

	"hwilson/finwat/internal/localdir"
	"hwilson/finwat/internal/logging"
	"hwilson/finwat/internal/models"
)

const photoFile = "profile_photo"

// AuthProvider is the external session provider the session store projects.
type AuthProvider interface {
	SignUp(ctx context.Context, email, password string, meta models.UserMetadata) (*models.Session, error)
	SignIn(ctx context.Context, email, password string) (*models.Session, error)
	SignOut(ctx context.Context) error
	CurrentSession() *models.Session
	UpdateUser(ctx context.Context, meta models.UserMetadata) (*models.User, error)
	Subscribe(fn func(*models.Session))
}

// SessionStore is a thin projection over the session provider: it mirrors
// the current session into user/token/authenticated fields and keeps them
// fresh through the provider's change notifications for the lifetime of
// the process.
type SessionStore struct {
	provider AuthProvider
	dataDir  string
	log      logging.Logger

	mu            sync.Mutex
	user          *models.User
	token         string
	authenticated bool
	loading       bool
	errMsg        string
}

// NewSessionStore creates the store and subscribes to session changes.
// The subscription delivers the current state first, so there is a single
// code path for the initial read and later changes.
func NewSessionStore(provider AuthProvider, dataDir string, log logging.Logger) *SessionStore {
	s := &SessionStore{provider: provider, dataDir: dataDir, log: log, loading: true}
	provider.Subscribe(s.onSessionChange)
	return s
}

func (s *SessionStore) onSessionChange(session *models.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if session == nil {
		s.user = nil
		s.token = ""
		s.authenticated = false
		return
	}
	user := session.User
	s.user = &user
	s.token = session.AccessToken
	s.authenticated = session.Active()
}

// Login delegates to the provider; the session subscription updates the
// mirrored fields.
func (s *SessionStore) Login(ctx context.Context, email, password string) error {
	s.setLoading()
	if _, err := s.provider.SignIn(ctx, email, password); err != nil {
		s.fail(err)
		return err
	}
	return nil
}

// Register signs a new user up with name/phone stored in provider-side
// metadata.
func (s *SessionStore) Register(ctx context.Context, name, email, phone, password string) error {
	s.setLoading()
	meta := models.UserMetadata{Name: name, Phone: phone}
	if _, err := s.provider.SignUp(ctx, email, password, meta); err != nil {
		s.fail(err)
		return err
	}
	s.mu.Lock()
	s.loading = false
	s.mu.Unlock()
	return nil
}

// Logout delegates entirely to the provider.
func (s *SessionStore) Logout(ctx context.Context) error {
	return s.provider.SignOut(ctx)
}

// UpdateProfile writes into the provider-side metadata bag and mirrors the
// returned user.
func (s *SessionStore) UpdateProfile(ctx context.Context, update models.ProfileUpdate) error {
	s.mu.Lock()
	current := s.user
	s.mu.Unlock()
	s.setLoading()

	meta := models.UserMetadata{}
	if current != nil {
		meta = models.UserMetadata{
			Name:        current.Name,
			Phone:       current.Phone,
			DateOfBirth: current.DateOfBirth,
			PhotoURL:    current.PhotoURL,
		}
	}
	if update.Name != nil {
		meta.Name = *update.Name
	}
	if update.Phone != nil {
		meta.Phone = *update.Phone
	}
	if update.DateOfBirth != nil {
		meta.DateOfBirth = *update.DateOfBirth
	}
	if update.PhotoURL != nil {
		meta.PhotoURL = *update.PhotoURL
	}

	user, err := s.provider.UpdateUser(ctx, meta)
	if err != nil {
		s.fail(err)
		return err
	}

	s.mu.Lock()
	s.user = user
	s.loading = false
	s.mu.Unlock()
	return nil
}

// ChangePassword is a client-local stub in the current integration: it
// validates the new password and succeeds without touching the provider's
// credential record.
func (s *SessionStore) ChangePassword(ctx context.Context, oldPassword, newPassword string) error {
	s.setLoading()
	if len(newPassword) < 8 {
		err := fmt.Errorf("la contraseña debe tener al menos 8 caracteres")
		s.fail(err)
		return err
	}
	s.mu.Lock()
	s.loading = false
	s.mu.Unlock()
	return nil
}

// UpdateProfilePhoto persists the photo URL to device-local storage only —
// not to the provider — and mirrors it into the local user. The backend
// never learns about it; the profile-edit flow treats it as saved anyway.
func (s *SessionStore) UpdateProfilePhoto(ctx context.Context, photoURL string) error {
	s.mu.Lock()
	if s.user == nil {
		s.mu.Unlock()
		err := fmt.Errorf("no user logged in")
		s.fail(err)
		return err
	}
	s.user.PhotoURL = photoURL
	s.mu.Unlock()

	if err := localdir.WriteFile(s.dataDir, photoFile, []byte(photoURL)); err != nil {
		s.fail(err)
		return err
	}
	return nil
}

// User returns the mirrored user, or nil when logged out.
func (s *SessionStore) User() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	user := *s.user
	return &user
}

// Token returns the mirrored access token.
func (s *SessionStore) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// IsAuthenticated reports whether a session is active.
func (s *SessionStore) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.authenticated
}

// CurrentSession exposes the provider session so the data stores can gate
// mutations on it.
func (s *SessionStore) CurrentSession() *models.Session {
	return s.provider.CurrentSession()
}

// IsLoading reports whether an operation is in flight.
func (s *SessionStore) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Err returns the last recorded error message.
func (s *SessionStore) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errMsg
}

// ClearError drops the recorded error message.
func (s *SessionStore) ClearError() {
	s.mu.Lock()
	s.errMsg = ""
	s.mu.Unlock()
}

func (s *SessionStore) setLoading() {
	s.mu.Lock()
	s.loading = true
	s.errMsg = ""
	s.mu.Unlock()
}

func (s *SessionStore) fail(err error) {
	s.mu.Lock()
	s.errMsg = err.Error()
	s.loading = false
	s.mu.Unlock()
	s.log.Error("session store operation failed",
		logging.Field{Key: logging.FieldError, Value: err})
}

package store

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hwilson/finwat/internal/logging"
	"hwilson/finwat/internal/models"
)

// fakeAuthProvider simulates the session provider: subscribers get the
// current session on registration and on every later change.
type fakeAuthProvider struct {
	session   *models.Session
	listeners []func(*models.Session)
	err       error
}

func (f *fakeAuthProvider) notify() {
	for _, fn := range f.listeners {
		fn(f.session)
	}
}

func (f *fakeAuthProvider) SignUp(ctx context.Context, email, password string, meta models.UserMetadata) (*models.Session, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.session = &models.Session{
		AccessToken: "token-signup",
		User:        models.User{ID: "user-1", Email: email, Name: meta.Name, Phone: meta.Phone},
	}
	f.notify()
	return f.session, nil
}

func (f *fakeAuthProvider) SignIn(ctx context.Context, email, password string) (*models.Session, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.session = &models.Session{
		AccessToken: "token-signin",
		User:        models.User{ID: "user-1", Email: email},
	}
	f.notify()
	return f.session, nil
}

func (f *fakeAuthProvider) SignOut(ctx context.Context) error {
	f.session = nil
	f.notify()
	return f.err
}

func (f *fakeAuthProvider) CurrentSession() *models.Session { return f.session }

func (f *fakeAuthProvider) UpdateUser(ctx context.Context, meta models.UserMetadata) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.session == nil {
		return nil, fmt.Errorf("no session")
	}
	f.session.User.Name = meta.Name
	f.session.User.Phone = meta.Phone
	f.session.User.DateOfBirth = meta.DateOfBirth
	f.session.User.PhotoURL = meta.PhotoURL
	f.notify()
	user := f.session.User
	return &user, nil
}

func (f *fakeAuthProvider) Subscribe(fn func(*models.Session)) {
	f.listeners = append(f.listeners, fn)
	fn(f.session)
}

func newTestSessionStore(t *testing.T, provider *fakeAuthProvider) *SessionStore {
	t.Helper()
	return NewSessionStore(provider, t.TempDir(), &logging.MockLogger{})
}

func TestSessionStoreStartsLoggedOut(t *testing.T) {
	store := newTestSessionStore(t, &fakeAuthProvider{})
	assert.False(t, store.IsAuthenticated())
	assert.Nil(t, store.User())
	assert.Empty(t, store.Token())
	assert.False(t, store.IsLoading(), "the initial subscription callback resolves loading")
}

func TestSessionStoreMirrorsRestoredSession(t *testing.T) {
	provider := &fakeAuthProvider{session: &models.Session{
		AccessToken: "token-restored",
		User:        models.User{ID: "user-1", Email: "ana@example.com"},
	}}
	store := newTestSessionStore(t, provider)

	assert.True(t, store.IsAuthenticated())
	assert.Equal(t, "token-restored", store.Token())
	assert.Equal(t, "ana@example.com", store.User().Email)
}

func TestLoginMirrorsNewSession(t *testing.T) {
	provider := &fakeAuthProvider{}
	store := newTestSessionStore(t, provider)

	require.NoError(t, store.Login(context.Background(), "ana@example.com", "secreta123"))
	assert.True(t, store.IsAuthenticated())
	assert.Equal(t, "token-signin", store.Token())
}

func TestLoginFailureRecordsError(t *testing.T) {
	provider := &fakeAuthProvider{err: fmt.Errorf("invalid login credentials")}
	store := newTestSessionStore(t, provider)

	assert.Error(t, store.Login(context.Background(), "ana@example.com", "wrong"))
	assert.False(t, store.IsAuthenticated())
	assert.Equal(t, "invalid login credentials", store.Err())

	store.ClearError()
	assert.Empty(t, store.Err())
}

func TestLogoutClearsMirror(t *testing.T) {
	provider := &fakeAuthProvider{}
	store := newTestSessionStore(t, provider)
	require.NoError(t, store.Login(context.Background(), "ana@example.com", "secreta123"))

	require.NoError(t, store.Logout(context.Background()))
	assert.False(t, store.IsAuthenticated())
	assert.Nil(t, store.User())
	assert.Empty(t, store.Token())
}

func TestUpdateProfileMergesOverCurrent(t *testing.T) {
	provider := &fakeAuthProvider{}
	store := newTestSessionStore(t, provider)
	require.NoError(t, store.Register(context.Background(), "Ana", "ana@example.com", "555-0100", "secreta123"))

	birth := "1990-04-12"
	require.NoError(t, store.UpdateProfile(context.Background(), models.ProfileUpdate{DateOfBirth: &birth}))

	user := store.User()
	require.NotNil(t, user)
	assert.Equal(t, "Ana", user.Name, "untouched fields survive a partial update")
	assert.Equal(t, "555-0100", user.Phone)
	assert.Equal(t, "1990-04-12", user.DateOfBirth)
}

func TestChangePasswordValidatesLength(t *testing.T) {
	store := newTestSessionStore(t, &fakeAuthProvider{})

	err := store.ChangePassword(context.Background(), "vieja1234", "corta")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "8 caracteres")

	assert.NoError(t, store.ChangePassword(context.Background(), "vieja1234", "nueva12345"))
}

func TestUpdateProfilePhotoStaysLocal(t *testing.T) {
	provider := &fakeAuthProvider{}
	store := newTestSessionStore(t, provider)
	require.NoError(t, store.Login(context.Background(), "ana@example.com", "secreta123"))

	require.NoError(t, store.UpdateProfilePhoto(context.Background(), "https://example.com/ana.png"))
	assert.Equal(t, "https://example.com/ana.png", store.User().PhotoURL)
	// The provider-side record never learns about the photo.
	assert.Empty(t, provider.session.User.PhotoURL)
}

func TestUpdateProfilePhotoRequiresUser(t *testing.T) {
	store := newTestSessionStore(t, &fakeAuthProvider{})
	assert.Error(t, store.UpdateProfilePhoto(context.Background(), "https://example.com/ana.png"))
}

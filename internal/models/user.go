package models

import "time"

// User is the local projection of the session provider's user object.
// Name, phone, date of birth and photo live in the provider's free-form
// metadata bag; email is immutable once set.
type User struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	Name        string    `json:"name"`
	Phone       string    `json:"phone,omitempty"`
	DateOfBirth string    `json:"date_of_birth,omitempty"`
	PhotoURL    string    `json:"photo_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// UserMetadata is the arbitrary metadata bag stored provider-side.
type UserMetadata struct {
	Name        string `json:"name,omitempty"`
	Phone       string `json:"phone,omitempty"`
	DateOfBirth string `json:"dateOfBirth,omitempty"`
	PhotoURL    string `json:"photoUrl,omitempty"`
}

// ProfileUpdate carries the mutable profile fields. Nil fields are left
// untouched provider-side.
type ProfileUpdate struct {
	Name        *string
	Phone       *string
	DateOfBirth *string
	PhotoURL    *string
}

// Session is the authenticated-identity context issued by the provider.
type Session struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token,omitempty"`
	ExpiresAt    time.Time `json:"expires_at,omitempty"`
	User         User      `json:"user"`
}

// Active reports whether the session carries a usable access token.
func (s *Session) Active() bool {
	return s != nil && s.AccessToken != ""
}

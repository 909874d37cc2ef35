// Package apperror defines the error taxonomy shared by the gateways and
// stores: unauthenticated, backend rejection, transport failure and row
// decoding failure.
package apperror

import (
	"errors"
	"fmt"
)

// ErrUnauthenticated is raised locally, before any network call, when a
// mutation is attempted without an active session.
var ErrUnauthenticated = errors.New("no authenticated session")

// BackendError represents a rejection by the hosted store or auth provider
// (validation, permission, not-found).
type BackendError struct {
	Status  int
	Code    string
	Message string
}

func (e *BackendError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("backend rejected request (%d %s): %s", e.Status, e.Code, e.Message)
	}
	return fmt.Sprintf("backend rejected request (%d): %s", e.Status, e.Message)
}

// NotFound reports whether the backend answered with a 404.
func (e *BackendError) NotFound() bool {
	return e.Status == 404
}

// Unauthorized reports whether the backend answered with a 401.
func (e *BackendError) Unauthorized() bool {
	return e.Status == 401
}

// TransportError represents a request that never completed.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: request failed: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// DecodeError represents a backend row that could not be parsed into its
// typed record. Malformed responses fail loudly instead of propagating
// mistyped data.
type DecodeError struct {
	Entity string
	Field  string
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: failed to decode field %q: %v", e.Entity, e.Field, e.Err)
	}
	return fmt.Sprintf("%s: failed to decode response: %v", e.Entity, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBackendErrorMessage(t *testing.T) {
	withCode := &BackendError{Status: 422, Code: "23505", Message: "duplicate key"}
	assert.Contains(t, withCode.Error(), "422")
	assert.Contains(t, withCode.Error(), "23505")

	withoutCode := &BackendError{Status: 500, Message: "internal error"}
	assert.Contains(t, withoutCode.Error(), "500")
	assert.Contains(t, withoutCode.Error(), "internal error")
}

func TestBackendErrorStatusHelpers(t *testing.T) {
	assert.True(t, (&BackendError{Status: 404}).NotFound())
	assert.True(t, (&BackendError{Status: 401}).Unauthorized())
	assert.False(t, (&BackendError{Status: 403}).Unauthorized())
}

func TestTransportErrorUnwraps(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	err := &TransportError{Op: "GET transactions", Err: cause}
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "GET transactions")
}

func TestDecodeErrorUnwraps(t *testing.T) {
	cause := fmt.Errorf("unknown type \"donation\"")
	err := &DecodeError{Entity: "transaction", Field: "type", Err: cause}
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "transaction")
	assert.Contains(t, err.Error(), "type")

	var decodeErr *DecodeError
	assert.True(t, errors.As(fmt.Errorf("fetch: %w", err), &decodeErr))
}

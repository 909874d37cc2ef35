// Package backend contains the HTTP clients for the hosted backend: the
// structured-query data store and the auth/session provider. All
// persistence and business validation live on the other side of these
// clients; failures are mapped to the apperror taxonomy and never retried.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"hwilson/finwat/internal/apperror"
	"hwilson/finwat/internal/logging"
)

const restPath = "/rest/v1/"

// TokenSource supplies the bearer token for data requests. When no user
// session is active the anonymous key is used.
type TokenSource interface {
	AccessToken() string
}

// Client issues structured queries against the hosted data store over
// HTTP/JSON. It is safe for concurrent use.
type Client struct {
	baseURL string
	anonKey string
	http    *http.Client
	tokens  TokenSource
	log     logging.Logger
}

// NewClient creates a data-store client. tokens may be nil, in which case
// all requests are made with the anonymous key only.
func NewClient(baseURL, anonKey string, timeout time.Duration, tokens TokenSource, log logging.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		anonKey: anonKey,
		http:    &http.Client{Timeout: timeout},
		tokens:  tokens,
		log:     log,
	}
}

// Select runs a filtered query against a table and returns the raw JSON
// array of rows.
func (c *Client) Select(ctx context.Context, table string, query Query) ([]byte, error) {
	return c.do(ctx, http.MethodGet, table, query, nil, false)
}

// Insert inserts a row and returns the stored representation.
func (c *Client) Insert(ctx context.Context, table string, row any) ([]byte, error) {
	return c.do(ctx, http.MethodPost, table, NewQuery(), row, true)
}

// Update applies a partial field replacement to the rows matched by query
// and returns the stored representations.
func (c *Client) Update(ctx context.Context, table string, query Query, changes any) ([]byte, error) {
	return c.do(ctx, http.MethodPatch, table, query, changes, true)
}

// Delete removes the rows matched by query.
func (c *Client) Delete(ctx context.Context, table string, query Query) error {
	_, err := c.do(ctx, http.MethodDelete, table, query, nil, false)
	return err
}

func (c *Client) do(ctx context.Context, method, table string, query Query, body any, returning bool) ([]byte, error) {
	op := fmt.Sprintf("%s %s", method, table)

	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("%s: error encoding request body: %w", op, err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	url := c.baseURL + restPath + table
	if params := query.Encode(); len(params) > 0 {
		url += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return nil, fmt.Errorf("%s: error building request: %w", op, err)
	}
	c.setHeaders(req, returning)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &apperror.TransportError{Op: op, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &apperror.TransportError{Op: op, Err: err}
	}

	c.log.Debug("backend request completed",
		logging.Field{Key: logging.FieldTable, Value: table},
		logging.Field{Key: logging.FieldOperation, Value: method},
		logging.Field{Key: logging.FieldStatus, Value: resp.StatusCode})

	if resp.StatusCode >= 300 {
		return nil, decodeBackendError(resp.StatusCode, data)
	}
	return data, nil
}

func (c *Client) setHeaders(req *http.Request, returning bool) {
	token := c.anonKey
	if c.tokens != nil {
		if t := c.tokens.AccessToken(); t != "" {
			token = t
		}
	}
	req.Header.Set("apikey", c.anonKey)
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	if returning {
		req.Header.Set("Prefer", "return=representation")
	}
}

// decodeBackendError maps a non-2xx response body to a BackendError. The
// hosted store answers with {"message": ..., "code": ...}; anything else
// is surfaced raw.
func decodeBackendError(status int, body []byte) error {
	var parsed struct {
		Message string `json:"message"`
		Code    string `json:"code"`
		Msg     string `json:"msg"`
	}
	backendErr := &apperror.BackendError{Status: status}
	if err := json.Unmarshal(body, &parsed); err == nil {
		backendErr.Code = parsed.Code
		backendErr.Message = parsed.Message
		if backendErr.Message == "" {
			backendErr.Message = parsed.Msg
		}
	}
	if backendErr.Message == "" {
		backendErr.Message = string(body)
	}
	return backendErr
}

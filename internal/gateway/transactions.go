// Package gateway translates typed entity requests into structured queries
// against the hosted data store and maps the returned rows back to typed
// records. Rows are parsed and validated here, never cast: a malformed
// response fails loudly with a DecodeError.
package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"hwilson/finwat/internal/apperror"
	"hwilson/finwat/internal/backend"
	"hwilson/finwat/internal/dateutils"
	"hwilson/finwat/internal/logging"
	"hwilson/finwat/internal/models"
)

const transactionsTable = "transactions"

// Transactions is the remote data gateway for the transactions table.
type Transactions struct {
	client *backend.Client
	log    logging.Logger
	now    func() time.Time
}

// NewTransactions creates the transactions gateway.
func NewTransactions(client *backend.Client, log logging.Logger) *Transactions {
	return &Transactions{client: client, log: log, now: time.Now}
}

// List fetches transactions constrained by the optional filter set, newest
// transaction date first. Each provided filter field is ANDed; the date
// range bounds are inclusive.
func (g *Transactions) List(ctx context.Context, filters models.TransactionFilters) ([]models.Transaction, error) {
	query := backend.NewQuery().OrderBy("transaction_date", false)
	if filters.Type != "" {
		query = query.Eq("type", filters.Type)
	}
	if filters.Category != "" {
		query = query.Eq("category", filters.Category)
	}
	if filters.AccountID != "" {
		query = query.Eq("account_id", filters.AccountID)
	}
	if filters.Status != "" {
		query = query.Eq("status", filters.Status)
	}
	if filters.StartDate != "" {
		query = query.Gte("transaction_date", filters.StartDate)
	}
	if filters.EndDate != "" {
		query = query.Lte("transaction_date", filters.EndDate)
	}

	data, err := g.client.Select(ctx, transactionsTable, query)
	if err != nil {
		return nil, err
	}
	return decodeTransactions(data)
}

// Create inserts a new transaction. Source defaults to "app" and status to
// "completed" when the payload leaves them unset; the owning user is the
// authenticated one.
func (g *Transactions) Create(ctx context.Context, userID string, payload models.CreateTransactionRequest) (*models.Transaction, error) {
	if payload.Source == "" {
		payload.Source = models.DefaultSource
	}

	row := struct {
		models.CreateTransactionRequest
		UserID string `json:"user_id"`
		Status string `json:"status"`
	}{
		CreateTransactionRequest: payload,
		UserID:                   userID,
		Status:                   models.DefaultStatus,
	}

	data, err := g.client.Insert(ctx, transactionsTable, row)
	if err != nil {
		return nil, err
	}
	return decodeSingleTransaction(data)
}

// Update sends only the changed fields and returns the stored record.
func (g *Transactions) Update(ctx context.Context, id string, changes models.TransactionUpdate) (*models.Transaction, error) {
	query := backend.NewQuery().Eq("id", id)
	data, err := g.client.Update(ctx, transactionsTable, query, changes)
	if err != nil {
		return nil, err
	}
	return decodeSingleTransaction(data)
}

// Delete permanently removes a transaction.
func (g *Transactions) Delete(ctx context.Context, id string) error {
	query := backend.NewQuery().Eq("id", id)
	return g.client.Delete(ctx, transactionsTable, query)
}

// Settle flips is_settled and stamps settled_at, leaving every other field
// untouched, and returns the stored record.
func (g *Transactions) Settle(ctx context.Context, id string) (*models.Transaction, error) {
	changes := map[string]any{
		"is_settled": true,
		"settled_at": g.now().UTC().Format(time.RFC3339),
	}
	query := backend.NewQuery().Eq("id", id)
	data, err := g.client.Update(ctx, transactionsTable, query, changes)
	if err != nil {
		return nil, err
	}
	return decodeSingleTransaction(data)
}

func decodeTransactions(data []byte) ([]models.Transaction, error) {
	var rows []models.Transaction
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, &apperror.DecodeError{Entity: "transaction", Err: err}
	}
	for i := range rows {
		if err := validateTransaction(rows[i]); err != nil {
			return nil, err
		}
	}
	return rows, nil
}

// decodeSingleTransaction accepts both a bare object and a one-element
// array, which is how the store returns inserted/updated representations.
func decodeSingleTransaction(data []byte) (*models.Transaction, error) {
	if len(data) > 0 && data[0] == '[' {
		rows, err := decodeTransactions(data)
		if err != nil {
			return nil, err
		}
		if len(rows) == 0 {
			return nil, &apperror.BackendError{Status: 404, Message: "transaction not found"}
		}
		return &rows[0], nil
	}

	var row models.Transaction
	if err := json.Unmarshal(data, &row); err != nil {
		return nil, &apperror.DecodeError{Entity: "transaction", Err: err}
	}
	if err := validateTransaction(row); err != nil {
		return nil, err
	}
	return &row, nil
}

func validateTransaction(t models.Transaction) error {
	if t.ID == "" {
		return &apperror.DecodeError{Entity: "transaction", Field: "id", Err: fmt.Errorf("missing identifier")}
	}
	if !models.IsValidTransactionType(t.Type) {
		return &apperror.DecodeError{Entity: "transaction", Field: "type", Err: fmt.Errorf("unknown type %q", t.Type)}
	}
	if !models.IsValidCategory(t.Category) {
		return &apperror.DecodeError{Entity: "transaction", Field: "category", Err: fmt.Errorf("unknown category %q", t.Category)}
	}
	if t.Status != "" && !models.IsValidTransactionStatus(t.Status) {
		return &apperror.DecodeError{Entity: "transaction", Field: "status", Err: fmt.Errorf("unknown status %q", t.Status)}
	}
	if t.TransactionDate != "" {
		if _, err := dateutils.ParseDate(t.TransactionDate); err != nil {
			return &apperror.DecodeError{Entity: "transaction", Field: "transaction_date", Err: err}
		}
	}
	return nil
}

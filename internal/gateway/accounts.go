package gateway

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"

	"hwilson/finwat/internal/apperror"
	"hwilson/finwat/internal/backend"
	"hwilson/finwat/internal/logging"
	"hwilson/finwat/internal/models"
)

const accountsTable = "accounts"

// Accounts is the remote data gateway for the accounts table.
type Accounts struct {
	client *backend.Client
	log    logging.Logger
}

// NewAccounts creates the accounts gateway.
func NewAccounts(client *backend.Client, log logging.Logger) *Accounts {
	return &Accounts{client: client, log: log}
}

// List fetches all active accounts, default accounts first.
func (g *Accounts) List(ctx context.Context) ([]models.Account, error) {
	query := backend.NewQuery().
		Eq("is_active", "true").
		OrderBy("is_default", false)

	data, err := g.client.Select(ctx, accountsTable, query)
	if err != nil {
		return nil, err
	}
	return decodeAccounts(data)
}

// Get fetches a single account by identifier.
func (g *Accounts) Get(ctx context.Context, id string) (*models.Account, error) {
	query := backend.NewQuery().Eq("id", id)
	data, err := g.client.Select(ctx, accountsTable, query)
	if err != nil {
		return nil, err
	}
	rows, err := decodeAccounts(data)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, &apperror.BackendError{Status: 404, Message: "account not found"}
	}
	return &rows[0], nil
}

// Create inserts a new account for the authenticated user. Type defaults
// to cash, currency to USD, balance to the supplied initial balance or
// zero; new accounts are never created as the default one.
func (g *Accounts) Create(ctx context.Context, userID string, payload models.CreateAccountRequest) (*models.Account, error) {
	accountType := payload.Type
	if accountType == "" {
		accountType = models.AccountTypeCash
	}
	currency := payload.Currency
	if currency == "" {
		currency = models.DefaultCurrency
	}
	balance := decimal.Zero
	if payload.InitialBalance != nil {
		balance = *payload.InitialBalance
	}

	row := map[string]any{
		"user_id":    userID,
		"name":       payload.Name,
		"type":       accountType,
		"currency":   currency,
		"balance":    balance,
		"is_default": false,
	}

	data, err := g.client.Insert(ctx, accountsTable, row)
	if err != nil {
		return nil, err
	}

	if len(data) > 0 && data[0] == '[' {
		rows, err := decodeAccounts(data)
		if err != nil {
			return nil, err
		}
		if len(rows) == 0 {
			return nil, &apperror.BackendError{Status: 404, Message: "account not returned"}
		}
		return &rows[0], nil
	}

	var account models.Account
	if err := json.Unmarshal(data, &account); err != nil {
		return nil, &apperror.DecodeError{Entity: "account", Err: err}
	}
	if err := validateAccount(account); err != nil {
		return nil, err
	}
	return &account, nil
}

func decodeAccounts(data []byte) ([]models.Account, error) {
	var rows []models.Account
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, &apperror.DecodeError{Entity: "account", Err: err}
	}
	for i := range rows {
		if err := validateAccount(rows[i]); err != nil {
			return nil, err
		}
	}
	return rows, nil
}

func validateAccount(a models.Account) error {
	if a.ID == "" {
		return &apperror.DecodeError{Entity: "account", Field: "id", Err: fmt.Errorf("missing identifier")}
	}
	if a.Type != "" && !models.IsValidAccountType(a.Type) {
		return &apperror.DecodeError{Entity: "account", Field: "type", Err: fmt.Errorf("unknown type %q", a.Type)}
	}
	return nil
}

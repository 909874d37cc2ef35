package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account is a user-owned bucket of money with a type and currency.
// Balance is a stored field set at creation; it is not recomputed from
// transaction history. See AccountStore for the derived counterpart.
type Account struct {
	ID        string          `json:"id"`
	UserID    string          `json:"user_id"`
	Name      string          `json:"name"`
	Type      string          `json:"type"`
	Currency  string          `json:"currency"`
	Balance   decimal.Decimal `json:"balance"`
	IsDefault bool            `json:"is_default"`
	IsActive  bool            `json:"is_active"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// CreateAccountRequest carries the user-supplied fields of a new account.
// Type defaults to cash, currency to USD and balance to InitialBalance or
// zero when unset.
type CreateAccountRequest struct {
	Name           string           `json:"name"`
	Type           string           `json:"type,omitempty"`
	Currency       string           `json:"currency,omitempty"`
	InitialBalance *decimal.Decimal `json:"initial_balance,omitempty"`
}

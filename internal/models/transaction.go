package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a single dated monetary movement tied to an account.
// Amounts are unsigned; the sign is implied by Type and applied only when
// aggregating (income counts positive, expense negative).
type Transaction struct {
	ID              string          `json:"id"`
	UserID          string          `json:"user_id"`
	AccountID       string          `json:"account_id"`
	Type            string          `json:"type"`
	Category        string          `json:"category"`
	Amount          decimal.Decimal `json:"amount"`
	Currency        string          `json:"currency"`
	Description     string          `json:"description,omitempty"`
	Tags            []string        `json:"tags,omitempty"`
	TransactionDate string          `json:"transaction_date"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
	Source          string          `json:"source"`
	SourceMetadata  map[string]any  `json:"source_metadata,omitempty"`
	Status          string          `json:"status"`

	// Debt lifecycle fields, only meaningful for debt_given/debt_received.
	CounterpartName  string `json:"counterpart_name,omitempty"`
	CounterpartPhone string `json:"counterpart_phone,omitempty"`
	DueDate          string `json:"due_date,omitempty"`
	IsSettled        bool   `json:"is_settled,omitempty"`
	SettledAt        string `json:"settled_at,omitempty"`

	Notes         string `json:"notes,omitempty"`
	AttachmentURL string `json:"attachment_url,omitempty"`
}

// IsDebt reports whether the transaction has a settlement lifecycle.
func (t Transaction) IsDebt() bool {
	return IsDebtType(t.Type)
}

// CreateTransactionRequest carries the user-supplied fields of a new
// transaction. Source and status defaults are filled in by the gateway.
type CreateTransactionRequest struct {
	AccountID       string          `json:"account_id"`
	Type            string          `json:"type"`
	Category        string          `json:"category"`
	Amount          decimal.Decimal `json:"amount"`
	Description     string          `json:"description,omitempty"`
	TransactionDate string          `json:"transaction_date"`
	Source          string          `json:"source,omitempty"`
	Tags            []string        `json:"tags,omitempty"`
	Notes           string          `json:"notes,omitempty"`

	CounterpartName  string `json:"counterpart_name,omitempty"`
	CounterpartPhone string `json:"counterpart_phone,omitempty"`
	DueDate          string `json:"due_date,omitempty"`
}

// TransactionUpdate is a partial field replacement: only non-nil fields are
// sent to the backend.
type TransactionUpdate struct {
	AccountID       *string          `json:"account_id,omitempty"`
	Type            *string          `json:"type,omitempty"`
	Category        *string          `json:"category,omitempty"`
	Amount          *decimal.Decimal `json:"amount,omitempty"`
	Description     *string          `json:"description,omitempty"`
	TransactionDate *string          `json:"transaction_date,omitempty"`
	Notes           *string          `json:"notes,omitempty"`
	Tags            *[]string        `json:"tags,omitempty"`
}

// TransactionFilters constrains a fetch. Every provided field is ANDed;
// the date range bounds are inclusive.
type TransactionFilters struct {
	Category  string
	Type      string
	AccountID string
	Status    string
	StartDate string
	EndDate   string
}

// IsZero reports whether no filter field is set.
func (f TransactionFilters) IsZero() bool {
	return f == TransactionFilters{}
}

// SortOption selects the client-side ordering of the transaction cache.
type SortOption string

const (
	SortDateDesc   SortOption = "DATE_DESC"
	SortAmountDesc SortOption = "AMOUNT_DESC"
	SortAmountAsc  SortOption = "AMOUNT_ASC"
)

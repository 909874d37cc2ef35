// Package store contains the in-memory entity stores: thin mutable caches
// of remote query results plus loading/error flags and simple derived
// aggregates. Stores commit on confirmation only — a failed operation never
// touches the cache — and nothing is retried automatically.
package store

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/shopspring/decimal"

	"hwilson/finwat/internal/apperror"
	"hwilson/finwat/internal/dateutils"
	"hwilson/finwat/internal/logging"
	"hwilson/finwat/internal/models"
)

// TransactionGateway is the remote data gateway the transaction store
// fetches through.
type TransactionGateway interface {
	List(ctx context.Context, filters models.TransactionFilters) ([]models.Transaction, error)
	Create(ctx context.Context, userID string, payload models.CreateTransactionRequest) (*models.Transaction, error)
	Update(ctx context.Context, id string, changes models.TransactionUpdate) (*models.Transaction, error)
	Delete(ctx context.Context, id string) error
	Settle(ctx context.Context, id string) (*models.Transaction, error)
}

// SessionSource exposes the current authenticated session, if any.
type SessionSource interface {
	CurrentSession() *models.Session
}

// TransactionStore caches the last-fetched transaction collection and owns
// the client-side sort and filter parameters. Aggregates are recomputed
// from the full cache on every read, not incrementally maintained.
type TransactionStore struct {
	gateway  TransactionGateway
	sessions SessionSource
	log      logging.Logger

	mu           sync.Mutex
	transactions []models.Transaction
	loading      bool
	errMsg       string
	filters      models.TransactionFilters
	sortOption   models.SortOption
}

// NewTransactionStore creates an empty store with the default DATE_DESC
// sort option.
func NewTransactionStore(gateway TransactionGateway, sessions SessionSource, log logging.Logger) *TransactionStore {
	return &TransactionStore{
		gateway:    gateway,
		sessions:   sessions,
		log:        log,
		sortOption: models.SortDateDesc,
	}
}

// Fetch issues a query constrained by the filter set. On success the cached
// collection is replaced with the result, sorted by the active sort option;
// on failure the previous cache stays intact and the error message is
// recorded.
func (s *TransactionStore) Fetch(ctx context.Context, filters models.TransactionFilters) error {
	s.setLoading()

	fetched, err := s.gateway.List(ctx, filters)
	if err != nil {
		s.fail(err)
		return err
	}

	s.mu.Lock()
	s.transactions = sortTransactions(fetched, s.sortOption)
	s.filters = filters
	s.loading = false
	s.mu.Unlock()

	s.log.Debug("transaction cache replaced",
		logging.Field{Key: logging.FieldStore, Value: "transactions"},
		logging.Field{Key: logging.FieldCount, Value: len(fetched)})
	return nil
}

// Add creates a transaction remotely and prepends the confirmed record to
// the cache, re-sorting under the active option. Without an active session
// it fails with ErrUnauthenticated before any network call.
func (s *TransactionStore) Add(ctx context.Context, payload models.CreateTransactionRequest) error {
	session := s.sessions.CurrentSession()
	if !session.Active() {
		s.fail(apperror.ErrUnauthenticated)
		return apperror.ErrUnauthenticated
	}

	s.setLoading()
	created, err := s.gateway.Create(ctx, session.User.ID, payload)
	if err != nil {
		s.fail(err)
		return err
	}

	s.mu.Lock()
	updated := append([]models.Transaction{*created}, s.transactions...)
	s.transactions = sortTransactions(updated, s.sortOption)
	s.loading = false
	s.mu.Unlock()

	s.log.Info("transaction created",
		logging.Field{Key: logging.FieldTransactionID, Value: created.ID})
	return nil
}

// Update sends only the changed fields and replaces the matching cached
// record in place by identifier; other records keep their relative order.
func (s *TransactionStore) Update(ctx context.Context, id string, changes models.TransactionUpdate) error {
	s.setLoading()

	updated, err := s.gateway.Update(ctx, id, changes)
	if err != nil {
		s.fail(err)
		return err
	}

	s.mu.Lock()
	replaced := make([]models.Transaction, len(s.transactions))
	for i, t := range s.transactions {
		if t.ID == id {
			replaced[i] = *updated
		} else {
			replaced[i] = t
		}
	}
	s.transactions = sortTransactions(replaced, s.sortOption)
	s.loading = false
	s.mu.Unlock()
	return nil
}

// Delete removes the record from the backend, then from the cache. There
// is no optimistic removal: the cache changes only after confirmed
// deletion, and all other records keep their relative order.
func (s *TransactionStore) Delete(ctx context.Context, id string) error {
	s.setLoading()

	if err := s.gateway.Delete(ctx, id); err != nil {
		s.fail(err)
		return err
	}

	s.mu.Lock()
	kept := s.transactions[:0:0]
	for _, t := range s.transactions {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	s.transactions = kept
	s.loading = false
	s.mu.Unlock()
	return nil
}

// SettleDebt flips is_settled and stamps settled_at remotely, then merges
// the returned record into the cache.
func (s *TransactionStore) SettleDebt(ctx context.Context, id string) error {
	s.setLoading()

	settled, err := s.gateway.Settle(ctx, id)
	if err != nil {
		s.fail(err)
		return err
	}

	s.mu.Lock()
	for i := range s.transactions {
		if s.transactions[i].ID == id {
			s.transactions[i] = *settled
			break
		}
	}
	s.loading = false
	s.mu.Unlock()
	return nil
}

// SetFilters records the filter set without a network round trip.
func (s *TransactionStore) SetFilters(filters models.TransactionFilters) {
	s.mu.Lock()
	s.filters = filters
	s.mu.Unlock()
}

// ClearFilters drops the recorded filter set.
func (s *TransactionStore) ClearFilters() {
	s.SetFilters(models.TransactionFilters{})
}

// SetSortOption switches the active sort option and re-sorts the existing
// cache without a network round trip.
func (s *TransactionStore) SetSortOption(option models.SortOption) {
	s.mu.Lock()
	s.sortOption = option
	s.transactions = sortTransactions(s.transactions, option)
	s.mu.Unlock()
}

// Transactions returns a copy of the cached collection.
func (s *TransactionStore) Transactions() []models.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Transaction, len(s.transactions))
	copy(out, s.transactions)
	return out
}

// IsLoading reports whether an operation is in flight.
func (s *TransactionStore) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Err returns the last recorded error message, empty when the last
// operation succeeded.
func (s *TransactionStore) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errMsg
}

// Filters returns the recorded filter set.
func (s *TransactionStore) Filters() models.TransactionFilters {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filters
}

// SortOption returns the active sort option.
func (s *TransactionStore) SortOption() models.SortOption {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sortOption
}

// TotalIncome sums the amounts of cached income transactions.
func (s *TransactionStore) TotalIncome() decimal.Decimal {
	return s.sumByType(models.TypeIncome)
}

// TotalExpenses sums the amounts of cached expense transactions.
func (s *TransactionStore) TotalExpenses() decimal.Decimal {
	return s.sumByType(models.TypeExpense)
}

// NetBalance is total income minus total expenses. Debt transactions
// contribute to neither side.
func (s *TransactionStore) NetBalance() decimal.Decimal {
	return s.TotalIncome().Sub(s.TotalExpenses())
}

func (s *TransactionStore) sumByType(transactionType string) decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := decimal.Zero
	for _, t := range s.transactions {
		if t.Type == transactionType {
			total = total.Add(t.Amount)
		}
	}
	return total
}

// Search applies the client-side filter pass against the cached collection:
// a case-insensitive substring match on the description plus the same
// equality and range predicates the server-side fetch supports. This is an
// independent, in-memory pass over whatever the cache holds, not a
// refinement of the fetch-time filters.
func (s *TransactionStore) Search(term string, filters models.TransactionFilters) []models.Transaction {
	s.mu.Lock()
	snapshot := make([]models.Transaction, len(s.transactions))
	copy(snapshot, s.transactions)
	s.mu.Unlock()

	term = strings.ToLower(term)
	var out []models.Transaction
	for _, t := range snapshot {
		if term != "" && !strings.Contains(strings.ToLower(t.Description), term) {
			continue
		}
		if filters.Type != "" && t.Type != filters.Type {
			continue
		}
		if filters.Category != "" && t.Category != filters.Category {
			continue
		}
		if filters.AccountID != "" && t.AccountID != filters.AccountID {
			continue
		}
		if filters.Status != "" && t.Status != filters.Status {
			continue
		}
		if (filters.StartDate != "" || filters.EndDate != "") &&
			!dateutils.WithinRange(t.TransactionDate, filters.StartDate, filters.EndDate) {
			continue
		}
		out = append(out, t)
	}
	return out
}

func (s *TransactionStore) setLoading() {
	s.mu.Lock()
	s.loading = true
	s.errMsg = ""
	s.mu.Unlock()
}

func (s *TransactionStore) fail(err error) {
	s.mu.Lock()
	s.errMsg = err.Error()
	s.loading = false
	s.mu.Unlock()
	s.log.Error("transaction store operation failed",
		logging.Field{Key: logging.FieldError, Value: err})
}

// sortTransactions returns a sorted copy. The sort is stable: ties keep
// the original relative order, which is whatever order the backend
// returned or insertion order for newly created records.
func sortTransactions(transactions []models.Transaction, option models.SortOption) []models.Transaction {
	sorted := make([]models.Transaction, len(transactions))
	copy(sorted, transactions)

	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		switch option {
		case models.SortAmountDesc:
			return a.Amount.Cmp(b.Amount) > 0
		case models.SortAmountAsc:
			return a.Amount.Cmp(b.Amount) < 0
		default: // DATE_DESC
			return dateutils.CompareDates(a.TransactionDate, b.TransactionDate) > 0
		}
	})
	return sorted
}

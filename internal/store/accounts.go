package store

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"

	"hwilson/finwat/internal/apperror"
	"hwilson/finwat/internal/logging"
	"hwilson/finwat/internal/models"
)

// AccountGateway is the remote data gateway the account store fetches
// through.
type AccountGateway interface {
	List(ctx context.Context) ([]models.Account, error)
	Get(ctx context.Context, id string) (*models.Account, error)
	Create(ctx context.Context, userID string, payload models.CreateAccountRequest) (*models.Account, error)
}

// AccountStore caches the user's active accounts.
//
// Note the dual balance semantics: TotalStoredBalance sums the stored
// per-account balance fields, while the income/expense view of money is
// derived from the transaction store (NetBalance there). The two are not
// reconciled; both are exposed under distinct names until product intent
// settles which one "balance" means.
type AccountStore struct {
	gateway  AccountGateway
	sessions SessionSource
	log      logging.Logger

	mu       sync.Mutex
	accounts []models.Account
	loading  bool
	errMsg   string
}

// NewAccountStore creates an empty account store.
func NewAccountStore(gateway AccountGateway, sessions SessionSource, log logging.Logger) *AccountStore {
	return &AccountStore{gateway: gateway, sessions: sessions, log: log}
}

// Fetch retrieves all active accounts, default accounts first, and
// replaces the cache on success.
func (s *AccountStore) Fetch(ctx context.Context) error {
	s.setLoading()

	fetched, err := s.gateway.List(ctx)
	if err != nil {
		s.fail(err)
		return err
	}

	s.mu.Lock()
	s.accounts = fetched
	s.loading = false
	s.mu.Unlock()

	s.log.Debug("account cache replaced",
		logging.Field{Key: logging.FieldStore, Value: "accounts"},
		logging.Field{Key: logging.FieldCount, Value: len(fetched)})
	return nil
}

// Add creates an account remotely and appends the confirmed record to the
// cache. Without an active session it fails with ErrUnauthenticated before
// any network call.
func (s *AccountStore) Add(ctx context.Context, payload models.CreateAccountRequest) error {
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
	s.accounts = append(s.accounts, *created)
	s.loading = false
	s.mu.Unlock()

	s.log.Info("account created",
		logging.Field{Key: logging.FieldAccountID, Value: created.ID})
	return nil
}

// Get fetches a single account by identifier without touching the cache.
func (s *AccountStore) Get(ctx context.Context, id string) (*models.Account, error) {
	account, err := s.gateway.Get(ctx, id)
	if err != nil {
		s.fail(err)
		return nil, err
	}
	return account, nil
}

// Accounts returns a copy of the cached collection.
func (s *AccountStore) Accounts() []models.Account {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Account, len(s.accounts))
	copy(out, s.accounts)
	return out
}

// IsLoading reports whether an operation is in flight.
func (s *AccountStore) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Err returns the last recorded error message.
func (s *AccountStore) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errMsg
}

// TotalStoredBalance sums the stored balance field across cached accounts.
func (s *AccountStore) TotalStoredBalance() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := decimal.Zero
	for _, a := range s.accounts {
		total = total.Add(a.Balance)
	}
	return total
}

// TotalIncome is deliberately deferred to the transaction store; the
// account path reports zero.
func (s *AccountStore) TotalIncome() decimal.Decimal {
	return decimal.Zero
}

// TotalExpenses is deliberately deferred to the transaction store; the
// account path reports zero.
func (s *AccountStore) TotalExpenses() decimal.Decimal {
	return decimal.Zero
}

func (s *AccountStore) setLoading() {
	s.mu.Lock()
	s.loading = true
	s.errMsg = ""
	s.mu.Unlock()
}

func (s *AccountStore) fail(err error) {
	s.mu.Lock()
	s.errMsg = err.Error()
	s.loading = false
	s.mu.Unlock()
	s.log.Error("account store operation failed",
		logging.Field{Key: logging.FieldError, Value: err})
}

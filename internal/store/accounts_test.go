package store

import (
	"context"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hwilson/finwat/internal/apperror"
	"hwilson/finwat/internal/logging"
	"hwilson/finwat/internal/models"
)

type fakeAccountGateway struct {
	listResult   []models.Account
	getResult    *models.Account
	createResult *models.Account
	err          error

	calls int
}

func (f *fakeAccountGateway) List(ctx context.Context) ([]models.Account, error) {
	f.calls++
	return f.listResult, f.err
}

func (f *fakeAccountGateway) Get(ctx context.Context, id string) (*models.Account, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.getResult, nil
}

func (f *fakeAccountGateway) Create(ctx context.Context, userID string, payload models.CreateAccountRequest) (*models.Account, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.createResult, nil
}

func account(id, name, amount string, isDefault bool) models.Account {
	return models.Account{
		ID:        id,
		Name:      name,
		Type:      models.AccountTypeCash,
		Currency:  models.DefaultCurrency,
		Balance:   decimal.RequireFromString(amount),
		IsDefault: isDefault,
		IsActive:  true,
	}
}

func TestAccountFetchReplacesCache(t *testing.T) {
	gateway := &fakeAccountGateway{listResult: []models.Account{
		account("a1", "Efectivo", "150.50", true),
		account("a2", "Banco", "1200", false),
	}}
	store := NewAccountStore(gateway, activeSession(), &logging.MockLogger{})

	require.NoError(t, store.Fetch(context.Background()))
	assert.Len(t, store.Accounts(), 2)
	assert.True(t, store.TotalStoredBalance().Equal(decimal.RequireFromString("1350.50")))
}

func TestAccountAddRequiresActiveSession(t *testing.T) {
	gateway := &fakeAccountGateway{}
	store := NewAccountStore(gateway, &fakeSessionSource{}, &logging.MockLogger{})

	err := store.Add(context.Background(), models.CreateAccountRequest{Name: "Efectivo"})
	assert.ErrorIs(t, err, apperror.ErrUnauthenticated)
	assert.Zero(t, gateway.calls)
}

func TestAccountAddAppendsConfirmedRecord(t *testing.T) {
	created := account("a-new", "Ahorros", "0", false)
	gateway := &fakeAccountGateway{createResult: &created}
	store := NewAccountStore(gateway, activeSession(), &logging.MockLogger{})

	require.NoError(t, store.Add(context.Background(), models.CreateAccountRequest{Name: "Ahorros"}))
	accounts := store.Accounts()
	require.Len(t, accounts, 1)
	assert.Equal(t, "a-new", accounts[0].ID)
}

func TestAccountGetBypassesCache(t *testing.T) {
	wanted := account("a1", "Efectivo", "10", true)
	gateway := &fakeAccountGateway{getResult: &wanted}
	store := NewAccountStore(gateway, activeSession(), &logging.MockLogger{})

	got, err := store.Get(context.Background(), "a1")
	require.NoError(t, err)
	assert.Equal(t, "Efectivo", got.Name)
	assert.Empty(t, store.Accounts(), "Get must not populate the cache")
}

func TestAccountFetchFailureRecordsError(t *testing.T) {
	gateway := &fakeAccountGateway{err: fmt.Errorf("backend is down")}
	store := NewAccountStore(gateway, activeSession(), &logging.MockLogger{})

	assert.Error(t, store.Fetch(context.Background()))
	assert.Equal(t, "backend is down", store.Err())
	assert.False(t, store.IsLoading())
}

func TestAccountAggregatesAreDeferred(t *testing.T) {
	store := NewAccountStore(&fakeAccountGateway{}, activeSession(), &logging.MockLogger{})
	assert.True(t, store.TotalIncome().IsZero())
	assert.True(t, store.TotalExpenses().IsZero())
}

package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hwilson/finwat/internal/logging"
	"hwilson/finwat/internal/models"
)

type fakeCatalog struct {
	services []models.FinancialService
	requests []models.ServiceRequest
	err      error
}

func (f *fakeCatalog) List(ctx context.Context) ([]models.FinancialService, error) {
	return f.services, f.err
}

func (f *fakeCatalog) Get(ctx context.Context, id string) (*models.FinancialService, error) {
	for i := range f.services {
		if f.services[i].ID == id {
			return &f.services[i], nil
		}
	}
	return nil, fmt.Errorf("service %s not found", id)
}

func (f *fakeCatalog) Request(ctx context.Context, payload models.ServiceRequestPayload) (*models.ServiceRequest, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.ServiceRequest{
		ID:        "req-1",
		ServiceID: payload.ServiceID,
		UserID:    payload.UserID,
		Status:    models.RequestPending,
		Notes:     payload.Notes,
		CreatedAt: time.Now(),
	}, nil
}

func (f *fakeCatalog) RequestsFor(ctx context.Context, userID string) ([]models.ServiceRequest, error) {
	return f.requests, f.err
}

func TestServicesFetchLoadsCatalog(t *testing.T) {
	catalog := &fakeCatalog{services: []models.FinancialService{
		{ID: "srv-1", Category: models.ServiceCreditScore, Title: "Score Crediticio"},
		{ID: "srv-2", Category: models.ServiceInsurance, Title: "Seguros"},
	}}
	store := NewServicesStore(catalog, &logging.MockLogger{})

	require.NoError(t, store.Fetch(context.Background()))
	assert.Len(t, store.Services(), 2)
	assert.Empty(t, store.Err())
}

func TestServicesRequestAppendsConfirmation(t *testing.T) {
	catalog := &fakeCatalog{}
	store := NewServicesStore(catalog, &logging.MockLogger{})

	payload := models.ServiceRequestPayload{ServiceID: "srv-3", UserID: "user-1", Notes: "urgente"}
	require.NoError(t, store.RequestService(context.Background(), payload))

	requests := store.MyRequests()
	require.Len(t, requests, 1)
	assert.Equal(t, "srv-3", requests[0].ServiceID)
	assert.Equal(t, models.RequestPending, requests[0].Status)
}

func TestServicesRequestFailureLeavesListIntact(t *testing.T) {
	catalog := &fakeCatalog{err: fmt.Errorf("unavailable")}
	store := NewServicesStore(catalog, &logging.MockLogger{})

	err := store.RequestService(context.Background(), models.ServiceRequestPayload{ServiceID: "srv-3"})
	assert.Error(t, err)
	assert.Empty(t, store.MyRequests())
	assert.Equal(t, "unavailable", store.Err())
}

func TestServicesSelection(t *testing.T) {
	store := NewServicesStore(&fakeCatalog{}, &logging.MockLogger{})
	assert.Nil(t, store.SelectedService())

	selected := &models.FinancialService{ID: "srv-1"}
	store.SetSelectedService(selected)
	assert.Equal(t, "srv-1", store.SelectedService().ID)

	store.SetSelectedService(nil)
	assert.Nil(t, store.SelectedService())
}

package store

import (
	"context"
	"sync"

	"hwilson/finwat/internal/logging"
	"hwilson/finwat/internal/models"
)

// ServiceCatalog is the collaborator serving the service catalog and
// recording requests. The request path is a stub in the current backend
// integration; confirmations only ever live in this store's cache.
type ServiceCatalog interface {
	List(ctx context.Context) ([]models.FinancialService, error)
	Get(ctx context.Context, id string) (*models.FinancialService, error)
	Request(ctx context.Context, payload models.ServiceRequestPayload) (*models.ServiceRequest, error)
	RequestsFor(ctx context.Context, userID string) ([]models.ServiceRequest, error)
}

// ServicesStore is a read-mostly cache of the financial-service catalog
// plus the locally-confirmed "my requests" list.
type ServicesStore struct {
	catalog ServiceCatalog
	log     logging.Logger

	mu         sync.Mutex
	services   []models.FinancialService
	myRequests []models.ServiceRequest
	selected   *models.FinancialService
	loading    bool
	errMsg     string
}

// NewServicesStore creates an empty services store.
func NewServicesStore(catalog ServiceCatalog, log logging.Logger) *ServicesStore {
	return &ServicesStore{catalog: catalog, log: log}
}

// Fetch loads the full service catalog.
func (s *ServicesStore) Fetch(ctx context.Context) error {
	s.mu.Lock()
	s.loading = true
	s.errMsg = ""
	s.mu.Unlock()

	services, err := s.catalog.List(ctx)
	if err != nil {
		s.fail(err)
		return err
	}

	s.mu.Lock()
	s.services = services
	s.loading = false
	s.mu.Unlock()
	return nil
}

// FetchMyRequests loads the user's previous service requests.
func (s *ServicesStore) FetchMyRequests(ctx context.Context, userID string) error {
	requests, err := s.catalog.RequestsFor(ctx, userID)
	if err != nil {
		s.fail(err)
		return err
	}
	s.mu.Lock()
	s.myRequests = requests
	s.mu.Unlock()
	return nil
}

// RequestService submits a request and appends the confirmation to the
// local "my requests" list.
func (s *ServicesStore) RequestService(ctx context.Context, payload models.ServiceRequestPayload) error {
	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()

	request, err := s.catalog.Request(ctx, payload)
	if err != nil {
		s.fail(err)
		return err
	}

	s.mu.Lock()
	s.myRequests = append(s.myRequests, *request)
	s.loading = false
	s.mu.Unlock()

	s.log.Info("service requested",
		logging.Field{Key: logging.FieldServiceID, Value: payload.ServiceID})
	return nil
}

// SetSelectedService records the service the user is looking at.
func (s *ServicesStore) SetSelectedService(service *models.FinancialService) {
	s.mu.Lock()
	s.selected = service
	s.mu.Unlock()
}

// SelectedService returns the service the user is looking at, if any.
func (s *ServicesStore) SelectedService() *models.FinancialService {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selected
}

// Services returns a copy of the cached catalog.
func (s *ServicesStore) Services() []models.FinancialService {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.FinancialService, len(s.services))
	copy(out, s.services)
	return out
}

// MyRequests returns a copy of the locally-known request list.
func (s *ServicesStore) MyRequests() []models.ServiceRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.ServiceRequest, len(s.myRequests))
	copy(out, s.myRequests)
	return out
}

// IsLoading reports whether an operation is in flight.
func (s *ServicesStore) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Err returns the last recorded error message.
func (s *ServicesStore) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errMsg
}

func (s *ServicesStore) fail(err error) {
	s.mu.Lock()
	s.errMsg = err.Error()
	s.loading = false
	s.mu.Unlock()
	s.log.Error("services store operation failed",
		logging.Field{Key: logging.FieldError, Value: err})
}

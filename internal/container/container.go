// Package container provides dependency injection for the finwat
// application. It is the composition root: every store is an explicitly
// constructed service object receiving its gateway and logger here, and
// consumers get them by reference.
package container

import (
	"fmt"
	"time"

	"hwilson/finwat/internal/backend"
	"hwilson/finwat/internal/config"
	"hwilson/finwat/internal/export"
	"hwilson/finwat/internal/gateway"
	"hwilson/finwat/internal/localdir"
	"hwilson/finwat/internal/logging"
	"hwilson/finwat/internal/services"
	"hwilson/finwat/internal/store"
)

// Container holds all application dependencies. It is immutable after
// creation; fields are private and accessed through getters.
type Container struct {
	logger  logging.Logger
	config  *config.Config
	dataDir string

	auth       *backend.AuthClient
	dataClient *backend.Client

	sessions     *store.SessionStore
	transactions *store.TransactionStore
	accounts     *store.AccountStore
	services     *store.ServicesStore
	categories   *store.CategoryStore
	theme        *store.ThemeStore

	exporter *export.Writer
}

// NewContainer creates and wires all application dependencies.
func NewContainer(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	if cfg.Backend.URL == "" {
		return nil, fmt.Errorf("backend URL is not configured (set FINWAT_BACKEND_URL)")
	}

	// Logger first, everything else logs through it.
	logger := logging.NewLogrusAdapter(cfg.Log.Level, cfg.Log.Format)

	dataDir, err := localdir.Dir(cfg.Data.Directory)
	if err != nil {
		return nil, err
	}

	timeout := time.Duration(cfg.Backend.TimeoutSeconds) * time.Second
	auth := backend.NewAuthClient(cfg.Backend.URL, cfg.Backend.AnonKey, timeout, dataDir, logger)
	dataClient := backend.NewClient(cfg.Backend.URL, cfg.Backend.AnonKey, timeout, auth, logger)

	sessionStore := store.NewSessionStore(auth, dataDir, logger)

	transactionGateway := gateway.NewTransactions(dataClient, logger)
	accountGateway := gateway.NewAccounts(dataClient, logger)
	catalog := services.NewCatalog()

	return &Container{
		logger:       logger,
		config:       cfg,
		dataDir:      dataDir,
		auth:         auth,
		dataClient:   dataClient,
		sessions:     sessionStore,
		transactions: store.NewTransactionStore(transactionGateway, sessionStore, logger),
		accounts:     store.NewAccountStore(accountGateway, sessionStore, logger),
		services:     store.NewServicesStore(catalog, logger),
		categories:   store.NewCategoryStore(dataDir, logger),
		theme:        store.NewThemeStore(dataDir, logger),
		exporter:     export.NewWriter([]rune(cfg.Export.Delimiter)[0], logger),
	}, nil
}

// GetLogger returns the application logger.
func (c *Container) GetLogger() logging.Logger { return c.logger }

// GetConfig returns the application configuration.
func (c *Container) GetConfig() *config.Config { return c.config }

// GetDataDir returns the device-local data directory.
func (c *Container) GetDataDir() string { return c.dataDir }

// GetSessionStore returns the session store.
func (c *Container) GetSessionStore() *store.SessionStore { return c.sessions }

// GetTransactionStore returns the transaction store.
func (c *Container) GetTransactionStore() *store.TransactionStore { return c.transactions }

// GetAccountStore returns the account store.
func (c *Container) GetAccountStore() *store.AccountStore { return c.accounts }

// GetServicesStore returns the services store.
func (c *Container) GetServicesStore() *store.ServicesStore { return c.services }

// GetCategoryStore returns the category customization store.
func (c *Container) GetCategoryStore() *store.CategoryStore { return c.categories }

// GetThemeStore returns the theme store.
func (c *Container) GetThemeStore() *store.ThemeStore { return c.theme }

// GetExporter returns the CSV export writer.
func (c *Container) GetExporter() *export.Writer { return c.exporter }

package store

import (
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"

	"hwilson/finwat/internal/localdir"
	"hwilson/finwat/internal/logging"
	"hwilson/finwat/internal/models"
)

const categoriesFile = "categories.yaml"

// CategoryStore holds the per-user overrides of the default
// category→appearance table. Overrides live in device-local storage only,
// independent of the backend, and fall back to the hardcoded defaults.
type CategoryStore struct {
	dataDir string
	log     logging.Logger

	mu         sync.Mutex
	categories map[string]models.CategoryConfig
}

// NewCategoryStore creates a category store backed by the given data
// directory and loads any persisted overrides. An unreadable or missing
// override file silently yields the default table.
func NewCategoryStore(dataDir string, log logging.Logger) *CategoryStore {
	s := &CategoryStore{
		dataDir:    dataDir,
		log:        log,
		categories: models.DefaultCategories(),
	}
	s.load()
	return s
}

// Get returns the appearance for a category: the override if present, else
// the default. It never fails; unknown keys fall back to the default table
// and finally to a zero config.
func (s *CategoryStore) Get(category string) models.CategoryConfig {
	s.mu.Lock()
	defer s.mu.Unlock()
	if cfg, ok := s.categories[category]; ok {
		return cfg
	}
	if cfg, ok := models.DefaultCategories()[category]; ok {
		return cfg
	}
	return models.CategoryConfig{}
}

// All returns a copy of the full category table.
func (s *CategoryStore) All() map[string]models.CategoryConfig {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]models.CategoryConfig, len(s.categories))
	for k, v := range s.categories {
		out[k] = v
	}
	return out
}

// UpdateIcon replaces one category's icon and icon kind, leaving its label
// and color untouched, and persists the table.
func (s *CategoryStore) UpdateIcon(category, icon, kind string) error {
	if kind != models.IconKindEmoji && kind != models.IconKindImage {
		return fmt.Errorf("unknown icon kind: %s", kind)
	}

	s.mu.Lock()
	cfg, ok := s.categories[category]
	if !ok {
		cfg = models.DefaultCategories()[category]
	}
	cfg.Icon = icon
	cfg.Kind = kind
	s.categories[category] = cfg
	s.mu.Unlock()

	return s.save()
}

// Reset restores the full default table and persists it.
func (s *CategoryStore) Reset() error {
	s.mu.Lock()
	s.categories = models.DefaultCategories()
	s.mu.Unlock()
	return s.save()
}

func (s *CategoryStore) load() {
	data, err := localdir.ReadFile(s.dataDir, categoriesFile)
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.Warn("could not read category overrides, using defaults",
				logging.Field{Key: logging.FieldError, Value: err})
		}
		return
	}

	var stored map[string]models.CategoryConfig
	if err := yaml.Unmarshal(data, &stored); err != nil {
		s.log.Warn("malformed category overrides, using defaults",
			logging.Field{Key: logging.FieldError, Value: err})
		return
	}

	// Layer stored entries over the defaults so categories added after the
	// file was written still resolve.
	s.mu.Lock()
	for key, cfg := range stored {
		s.categories[key] = cfg
	}
	s.mu.Unlock()
	s.log.Debug("loaded category overrides",
		logging.Field{Key: logging.FieldCount, Value: len(stored)})
}

func (s *CategoryStore) save() error {
	s.mu.Lock()
	data, err := yaml.Marshal(s.categories)
	s.mu.Unlock()
	if err != nil {
		return fmt.Errorf("error marshaling categories: %w", err)
	}
	if err := localdir.WriteFile(s.dataDir, categoriesFile, data); err != nil {
		return fmt.Errorf("error saving categories: %w", err)
	}
	return nil
}

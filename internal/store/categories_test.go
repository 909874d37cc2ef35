package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hwilson/finwat/internal/logging"
	"hwilson/finwat/internal/models"
)

func TestCategoryGetFallsBackToDefaults(t *testing.T) {
	store := NewCategoryStore(t.TempDir(), &logging.MockLogger{})

	cfg := store.Get(models.CategoryHealth)
	assert.Equal(t, "Salud", cfg.Label)
	assert.Equal(t, "🏥", cfg.Icon)

	// Unknown categories come back zero-valued, never an error.
	assert.Empty(t, store.Get("NO_SUCH_CATEGORY").Label)
}

func TestCategoryUpdateIconPersistsAcrossInstances(t *testing.T) {
	dir := t.TempDir()
	store := NewCategoryStore(dir, &logging.MockLogger{})

	require.NoError(t, store.UpdateIcon(models.CategoryEntertainment, "🎉", models.IconKindEmoji))

	cfg := store.Get(models.CategoryEntertainment)
	assert.Equal(t, "🎉", cfg.Icon)
	assert.Equal(t, models.IconKindEmoji, cfg.Kind)
	// Label and color of the category are untouched.
	assert.Equal(t, "Entretenimiento", cfg.Label)
	assert.Equal(t, "#ec4899", cfg.Color)

	reloaded := NewCategoryStore(dir, &logging.MockLogger{})
	assert.Equal(t, "🎉", reloaded.Get(models.CategoryEntertainment).Icon)
}

func TestCategoryUpdateIconRejectsUnknownKind(t *testing.T) {
	store := NewCategoryStore(t.TempDir(), &logging.MockLogger{})
	assert.Error(t, store.UpdateIcon(models.CategoryHealth, "x", "sticker"))
}

func TestCategoryResetRestoresDefaults(t *testing.T) {
	dir := t.TempDir()
	store := NewCategoryStore(dir, &logging.MockLogger{})
	require.NoError(t, store.UpdateIcon(models.CategoryHealth, "🎉", models.IconKindEmoji))

	require.NoError(t, store.Reset())
	assert.Equal(t, "🏥", store.Get(models.CategoryHealth).Icon)

	reloaded := NewCategoryStore(dir, &logging.MockLogger{})
	assert.Equal(t, "🏥", reloaded.Get(models.CategoryHealth).Icon)
}

func TestCategoryAllCoversEveryCategory(t *testing.T) {
	store := NewCategoryStore(t.TempDir(), &logging.MockLogger{})
	all := store.All()
	for _, name := range models.Categories() {
		assert.Contains(t, all, name)
	}
}

func TestCategoryLoadIgnoresMalformedFile(t *testing.T) {
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, "categories.yaml"), []byte("{not: yaml: at all}"), 0600)
	require.NoError(t, err)

	log := &logging.MockLogger{}
	store := NewCategoryStore(dir, log)
	assert.Equal(t, "🏥", store.Get(models.CategoryHealth).Icon)
}

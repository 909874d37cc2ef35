package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hwilson/finwat/internal/logging"
)

func TestThemeDefaultsToDark(t *testing.T) {
	store := NewThemeStore(t.TempDir(), &logging.MockLogger{})
	assert.Equal(t, ThemeDark, store.Theme())
	assert.Equal(t, "262 83% 58%", store.Colors().Primary)
}

func TestThemePersistsAcrossInstances(t *testing.T) {
	dir := t.TempDir()
	store := NewThemeStore(dir, &logging.MockLogger{})

	require.NoError(t, store.SetTheme(ThemeLight))
	colors := store.Colors()
	colors.Primary = "200 100% 50%"
	require.NoError(t, store.SetCustomColors(colors))

	reloaded := NewThemeStore(dir, &logging.MockLogger{})
	assert.Equal(t, ThemeLight, reloaded.Theme())
	assert.Equal(t, "200 100% 50%", reloaded.Colors().Primary)
}

func TestThemeRejectsUnknownName(t *testing.T) {
	store := NewThemeStore(t.TempDir(), &logging.MockLogger{})
	assert.Error(t, store.SetTheme("sepia"))
	assert.Equal(t, ThemeDark, store.Theme())
}

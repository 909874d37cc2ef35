package store

import (
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"

	"hwilson/finwat/internal/localdir"
	"hwilson/finwat/internal/logging"
)

const themeFile = "theme.yaml"

// Themes
const (
	ThemeLight  = "light"
	ThemeDark   = "dark"
	ThemeCustom = "custom"
)

// CustomColors are the HSL color variables applied under the custom theme,
// e.g. "262 83% 58%".
type CustomColors struct {
	Primary    string `yaml:"primary"`
	Background string `yaml:"background"`
	Foreground string `yaml:"foreground"`
}

type themePrefs struct {
	Theme        string       `yaml:"theme"`
	CustomColors CustomColors `yaml:"custom_colors"`
}

// ThemeStore persists the appearance preference across sessions in
// device-local storage.
type ThemeStore struct {
	dataDir string
	log     logging.Logger

	mu    sync.Mutex
	prefs themePrefs
}

func defaultThemePrefs() themePrefs {
	return themePrefs{
		Theme: ThemeDark,
		CustomColors: CustomColors{
			Primary:    "262 83% 58%",
			Background: "260 20% 98%",
			Foreground: "260 25% 10%",
		},
	}
}

// NewThemeStore loads the persisted theme preference, defaulting to dark.
func NewThemeStore(dataDir string, log logging.Logger) *ThemeStore {
	s := &ThemeStore{dataDir: dataDir, log: log, prefs: defaultThemePrefs()}
	s.load()
	return s
}

// Theme returns the active theme name.
func (s *ThemeStore) Theme() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.prefs.Theme
}

// Colors returns the custom color set.
func (s *ThemeStore) Colors() CustomColors {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.prefs.CustomColors
}

// SetTheme switches the theme and persists the preference.
func (s *ThemeStore) SetTheme(theme string) error {
	if theme != ThemeLight && theme != ThemeDark && theme != ThemeCustom {
		return fmt.Errorf("unknown theme: %s", theme)
	}
	s.mu.Lock()
	s.prefs.Theme = theme
	s.mu.Unlock()
	return s.save()
}

// SetCustomColors replaces the custom color set and persists it.
func (s *ThemeStore) SetCustomColors(colors CustomColors) error {
	s.mu.Lock()
	s.prefs.CustomColors = colors
	s.mu.Unlock()
	return s.save()
}

func (s *ThemeStore) load() {
	data, err := localdir.ReadFile(s.dataDir, themeFile)
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.Warn("could not read theme preference, using defaults",
				logging.Field{Key: logging.FieldError, Value: err})
		}
		return
	}
	var stored themePrefs
	if err := yaml.Unmarshal(data, &stored); err != nil {
		s.log.Warn("malformed theme preference, using defaults",
			logging.Field{Key: logging.FieldError, Value: err})
		return
	}
	s.mu.Lock()
	if stored.Theme != "" {
		s.prefs.Theme = stored.Theme
	}
	if stored.CustomColors != (CustomColors{}) {
		s.prefs.CustomColors = stored.CustomColors
	}
	s.mu.Unlock()
}

func (s *ThemeStore) save() error {
	s.mu.Lock()
	data, err := yaml.Marshal(s.prefs)
	s.mu.Unlock()
	if err != nil {
		return fmt.Errorf("error marshaling theme preference: %w", err)
	}
	if err := localdir.WriteFile(s.dataDir, themeFile, data); err != nil {
		return fmt.Errorf("error saving theme preference: %w", err)
	}
	return nil
}

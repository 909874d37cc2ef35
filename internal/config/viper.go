// Package config provides Viper-based hierarchical configuration management
package config

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config represents the complete application configuration
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Backend struct {
		URL            string `mapstructure:"url" yaml:"url"`
		AnonKey        string `mapstructure:"anon_key" yaml:"-"` // Never serialize the key
		TimeoutSeconds int    `mapstructure:"timeout_seconds" yaml:"timeout_seconds"`
	} `mapstructure:"backend" yaml:"backend"`

	Data struct {
		Directory string `mapstructure:"directory" yaml:"directory"`
	} `mapstructure:"data" yaml:"data"`

	Export struct {
		Delimiter      string `mapstructure:"delimiter" yaml:"delimiter"`
		DateFormat     string `mapstructure:"date_format" yaml:"date_format"`
		IncludeHeaders bool   `mapstructure:"include_headers" yaml:"include_headers"`
	} `mapstructure:"export" yaml:"export"`
}

// InitializeConfig initializes Viper configuration with hierarchical loading
func InitializeConfig() (*Config, error) {
	v := viper.New()

	// 1. Set defaults
	setDefaults(v)

	// 2. Config file locations
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.finwat")
	v.AddConfigPath(".finwat")
	v.AddConfigPath(".")

	// 3. Environment variables
	v.SetEnvPrefix("FINWAT")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 4. Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Log the error but don't fail - continue with defaults and env vars
			fmt.Printf("Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
	}

	// 5. The backend credentials always come from the environment, unprefixed,
	// so the same variables work for the hosted dashboard tooling.
	if err := v.BindEnv("backend.url", "FINWAT_BACKEND_URL", "SUPABASE_URL"); err != nil {
		fmt.Printf("Warning: failed to bind backend URL environment variable: %v\n", err)
	}
	if err := v.BindEnv("backend.anon_key", "FINWAT_BACKEND_KEY", "SUPABASE_ANON_KEY"); err != nil {
		fmt.Printf("Warning: failed to bind backend key environment variable: %v\n", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// 6. Validate configuration
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	// Backend defaults
	v.SetDefault("backend.url", "")
	v.SetDefault("backend.timeout_seconds", 30)

	// Data defaults
	v.SetDefault("data.directory", "")

	// Export defaults
	v.SetDefault("export.delimiter", ",")
	v.SetDefault("export.date_format", "2006-01-02")
	v.SetDefault("export.include_headers", true)
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	// Validate log level
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	// Validate log format
	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	// Validate export delimiter
	if len(config.Export.Delimiter) != 1 {
		return fmt.Errorf("export delimiter must be a single character, got: %s", config.Export.Delimiter)
	}

	// Validate backend timeout
	if config.Backend.TimeoutSeconds < 1 || config.Backend.TimeoutSeconds > 300 {
		return fmt.Errorf("backend.timeout_seconds must be between 1 and 300, got: %d", config.Backend.TimeoutSeconds)
	}

	return nil
}

// ConfigureLoggingFromConfig configures logging based on the Config struct
func ConfigureLoggingFromConfig(config *Config) *logrus.Logger {
	logger := logrus.New()

	logLevel, err := logrus.ParseLevel(strings.ToLower(config.Log.Level))
	if err != nil {
		logger.Warnf("Invalid log level '%s', using 'info'", config.Log.Level)
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	if strings.ToLower(config.Log.Format) == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return logger
}

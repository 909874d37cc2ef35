package config

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestConfigureLoggingFromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")

	logger := ConfigureLogging()
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, logger.Formatter)
}

func TestConfigureLoggingInvalidLevelFallsBack(t *testing.T) {
	t.Setenv("LOG_LEVEL", "chatty")
	t.Setenv("LOG_FORMAT", "text")

	logger := ConfigureLogging()
	assert.Equal(t, logrus.InfoLevel, logger.GetLevel())
	assert.IsType(t, &logrus.TextFormatter{}, logger.Formatter)
}

func TestGetEnv(t *testing.T) {
	t.Setenv("FINWAT_TEST_KEY", "value")
	assert.Equal(t, "value", GetEnv("FINWAT_TEST_KEY", "fallback"))
	assert.Equal(t, "fallback", GetEnv("FINWAT_TEST_MISSING", "fallback"))
}

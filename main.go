package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"hwilson/finwat/cmd/accounts"
	"hwilson/finwat/cmd/auth"
	"hwilson/finwat/cmd/categories"
	"hwilson/finwat/cmd/export"
	"hwilson/finwat/cmd/profile"
	"hwilson/finwat/cmd/root"
	"hwilson/finwat/cmd/services"
	"hwilson/finwat/cmd/theme"
	"hwilson/finwat/cmd/tx"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func init() {
	// Load environment variables silently first (no logging yet), then
	// set the global log level before any logger is created.
	loadEnvSilently()
	configureLogLevelDirectly()

	root.Cmd.AddCommand(auth.LoginCmd)
	root.Cmd.AddCommand(auth.RegisterCmd)
	root.Cmd.AddCommand(auth.LogoutCmd)
	root.Cmd.AddCommand(auth.WhoamiCmd)
	root.Cmd.AddCommand(accounts.Cmd)
	root.Cmd.AddCommand(tx.Cmd)
	root.Cmd.AddCommand(services.Cmd)
	root.Cmd.AddCommand(categories.Cmd)
	root.Cmd.AddCommand(profile.Cmd)
	root.Cmd.AddCommand(theme.Cmd)
	root.Cmd.AddCommand(export.Cmd)
}

// loadEnvSilently loads environment variables without logging anything
func loadEnvSilently() {
	envFile := ".env"
	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		envFile = filepath.Join("..", ".env")
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			return
		}
	}
	_ = godotenv.Load(envFile)
}

// configureLogLevelDirectly sets the global log level for all logrus instances
func configureLogLevelDirectly() {
	logLevelStr := os.Getenv("LOG_LEVEL")
	if logLevelStr == "" {
		logLevelStr = "info"
	}

	logLevel, err := logrus.ParseLevel(strings.ToLower(logLevelStr))
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// Package root contains the root command for the application
package root

import (
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"hwilson/finwat/internal/config"
	"hwilson/finwat/internal/container"
)

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	appOnce sync.Once
	app     *container.Container
	appErr  error

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "finwat",
		Short: "A personal-finance tracking client.",
		Long: `finwat tracks your money across accounts: record income, expenses and
debts, browse the financial-service catalog and customize how categories
are displayed. Data lives in a hosted backend; sign in first with
'finwat login'.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to finwat!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()
			Log = config.ConfigureLogging()
		},
	}
)

// App lazily builds the dependency container shared by all commands.
func App() (*container.Container, error) {
	appOnce.Do(func() {
		var cfg *config.Config
		cfg, appErr = config.InitializeConfig()
		if appErr != nil {
			return
		}
		Log = config.ConfigureLoggingFromConfig(cfg)
		app, appErr = container.NewContainer(cfg)
	})
	return app, appErr
}

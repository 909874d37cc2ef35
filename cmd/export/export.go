// Package export contains the CSV export command.
package export

import (
	"fmt"

	"github.com/spf13/cobra"

	"hwilson/finwat/cmd/root"
	"hwilson/finwat/internal/models"
)

var (
	outputFile string
	startDate  string
	endDate    string
)

// Cmd exports the cached transactions to a CSV file.
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Export transactions to a CSV file",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := root.App()
		if err != nil {
			return err
		}
		store := app.GetTransactionStore()
		accounts := app.GetAccountStore()

		filters := models.TransactionFilters{StartDate: startDate, EndDate: endDate}
		if err := store.Fetch(cmd.Context(), filters); err != nil {
			return fmt.Errorf("could not load transactions: %s", store.Err())
		}
		if err := accounts.Fetch(cmd.Context()); err != nil {
			return fmt.Errorf("could not load accounts: %s", accounts.Err())
		}

		transactions := store.Transactions()
		if err := app.GetExporter().WriteFile(transactions, accounts.Accounts(), outputFile); err != nil {
			return fmt.Errorf("could not write %s: %w", outputFile, err)
		}
		fmt.Printf("Exported %d transactions to %s\n", len(transactions), outputFile)
		return nil
	},
}

func init() {
	Cmd.Flags().StringVarP(&outputFile, "output", "o", "transactions.csv", "Output CSV file")
	Cmd.Flags().StringVar(&startDate, "from", "", "Start date (inclusive)")
	Cmd.Flags().StringVar(&endDate, "to", "", "End date (inclusive)")
}

// Package accounts contains the account commands.
package accounts

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"hwilson/finwat/cmd/root"
	"hwilson/finwat/internal/models"
)

var (
	name           string
	accountType    string
	currency       string
	initialBalance string
)

// Cmd is the accounts command group.
var Cmd = &cobra.Command{
	Use:   "accounts",
	Short: "Manage monetary accounts",
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List active accounts, default accounts first",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := root.App()
		if err != nil {
			return err
		}
		store := app.GetAccountStore()
		if err := store.Fetch(cmd.Context()); err != nil {
			return fmt.Errorf("could not load accounts: %s", store.Err())
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tTYPE\tCURRENCY\tBALANCE\tDEFAULT")
		for _, a := range store.Accounts() {
			marker := ""
			if a.IsDefault {
				marker = "*"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				a.ID, a.Name, a.Type, a.Currency, a.Balance.StringFixed(2), marker)
		}
		if err := w.Flush(); err != nil {
			return err
		}
		fmt.Printf("\nTotal stored balance: %s\n", store.TotalStoredBalance().StringFixed(2))
		return nil
	},
}

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a new account",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := root.App()
		if err != nil {
			return err
		}

		payload := models.CreateAccountRequest{
			Name:     name,
			Type:     accountType,
			Currency: currency,
		}
		if initialBalance != "" {
			balance, err := decimal.NewFromString(initialBalance)
			if err != nil {
				return fmt.Errorf("invalid initial balance %q: %w", initialBalance, err)
			}
			payload.InitialBalance = &balance
		}

		store := app.GetAccountStore()
		if err := store.Add(cmd.Context(), payload); err != nil {
			return fmt.Errorf("could not create account: %s", store.Err())
		}
		fmt.Printf("Account %q created\n", name)
		return nil
	},
}

func init() {
	addCmd.Flags().StringVarP(&name, "name", "n", "", "Account name")
	addCmd.Flags().StringVarP(&accountType, "type", "t", "", "Account type (cash, bank, card, wallet, other)")
	addCmd.Flags().StringVarP(&currency, "currency", "c", "", "Currency code")
	addCmd.Flags().StringVarP(&initialBalance, "balance", "b", "", "Initial balance")
	_ = addCmd.MarkFlagRequired("name")

	Cmd.AddCommand(listCmd)
	Cmd.AddCommand(addCmd)
}

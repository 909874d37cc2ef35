// Package tx contains the transaction commands.
package tx

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
	filterType     string
	filterCategory string
	filterAccount  string
	filterStatus   string
	startDate      string
	endDate        string
	search         string
	sortOption     string

	accountID       string
	txType          string
	category        string
	amount          string
	description     string
	transactionDate string
	notes           string
	counterpart     string
	counterphone    string
	dueDate         string
)

// Cmd is the transactions command group.
var Cmd = &cobra.Command{
	Use:   "tx",
	Short: "Record and browse transactions",
}

func filters() models.TransactionFilters {
	return models.TransactionFilters{
		Type:      filterType,
		Category:  filterCategory,
		AccountID: filterAccount,
		Status:    filterStatus,
		StartDate: startDate,
		EndDate:   endDate,
	}
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List transactions, optionally filtered and searched",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := root.App()
		if err != nil {
			return err
		}
		store := app.GetTransactionStore()
		categories := app.GetCategoryStore()

		if sortOption != "" {
			store.SetSortOption(models.SortOption(sortOption))
		}
		if err := store.Fetch(cmd.Context(), filters()); err != nil {
			return fmt.Errorf("could not load transactions: %s", store.Err())
		}

		// The free-text search runs client-side against the cache, on top
		// of whatever the fetch already narrowed down.
		transactions := store.Transactions()
		if search != "" {
			transactions = store.Search(search, models.TransactionFilters{})
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tDATE\tTYPE\tCATEGORY\tAMOUNT\tDESCRIPTION")
		for _, t := range transactions {
			cfg := categories.Get(t.Category)
			fmt.Fprintf(w, "%s\t%s\t%s\t%s %s\t%s\t%s\n",
				t.ID, t.TransactionDate, t.Type, cfg.Icon, cfg.Label,
				t.Amount.StringFixed(2), t.Description)
		}
		return w.Flush()
	},
}

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a new transaction",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := root.App()
		if err != nil {
			return err
		}

		parsedAmount, err := decimal.NewFromString(amount)
		if err != nil {
			return fmt.Errorf("invalid amount %q: %w", amount, err)
		}
		if !models.IsValidTransactionType(txType) {
			return fmt.Errorf("unknown transaction type: %s", txType)
		}
		if !models.IsValidCategory(category) {
			return fmt.Errorf("unknown category: %s", category)
		}

		payload := models.CreateTransactionRequest{
			AccountID:        accountID,
			Type:             txType,
			Category:         category,
			Amount:           parsedAmount,
			Description:      description,
			TransactionDate:  transactionDate,
			Notes:            notes,
			CounterpartName:  counterpart,
			CounterpartPhone: counterphone,
			DueDate:          dueDate,
		}

		store := app.GetTransactionStore()
		if err := store.Add(cmd.Context(), payload); err != nil {
			return fmt.Errorf("could not create transaction: %s", store.Err())
		}
		fmt.Println("Transaction recorded")
		return nil
	},
}

var updateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update fields of an existing transaction",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := root.App()
		if err != nil {
			return err
		}

		var changes models.TransactionUpdate
		if cmd.Flags().Changed("amount") {
			parsed, err := decimal.NewFromString(amount)
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", amount, err)
			}
			changes.Amount = &parsed
		}
		if cmd.Flags().Changed("category") {
			if !models.IsValidCategory(category) {
				return fmt.Errorf("unknown category: %s", category)
			}
			changes.Category = &category
		}
		if cmd.Flags().Changed("description") {
			changes.Description = &description
		}
		if cmd.Flags().Changed("date") {
			changes.TransactionDate = &transactionDate
		}
		if cmd.Flags().Changed("notes") {
			changes.Notes = &notes
		}

		store := app.GetTransactionStore()
		if err := store.Update(cmd.Context(), args[0], changes); err != nil {
			return fmt.Errorf("could not update transaction: %s", store.Err())
		}
		fmt.Println("Transaction updated")
		return nil
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Permanently delete a transaction",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := root.App()
		if err != nil {
			return err
		}
		store := app.GetTransactionStore()
		if err := store.Delete(cmd.Context(), args[0]); err != nil {
			return fmt.Errorf("could not delete transaction: %s", store.Err())
		}
		fmt.Println("Transaction deleted")
		return nil
	},
}

var settleCmd = &cobra.Command{
	Use:   "settle <id>",
	Short: "Mark a debt transaction as settled",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := root.App()
		if err != nil {
			return err
		}
		store := app.GetTransactionStore()
		if err := store.SettleDebt(cmd.Context(), args[0]); err != nil {
			return fmt.Errorf("could not settle debt: %s", store.Err())
		}
		fmt.Println("Debt settled")
		return nil
	},
}

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show income, expenses and net balance for the cached range",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := root.App()
		if err != nil {
			return err
		}
		store := app.GetTransactionStore()
		if err := store.Fetch(cmd.Context(), filters()); err != nil {
			return fmt.Errorf("could not load transactions: %s", store.Err())
		}

		fmt.Printf("Income:   %s\n", store.TotalIncome().StringFixed(2))
		fmt.Printf("Expenses: %s\n", store.TotalExpenses().StringFixed(2))
		fmt.Printf("Net:      %s\n", store.NetBalance().StringFixed(2))
		return nil
	},
}

func addFilterFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&filterType, "type", "", "Filter by transaction type")
	cmd.Flags().StringVar(&filterCategory, "category", "", "Filter by category")
	cmd.Flags().StringVar(&filterAccount, "account", "", "Filter by account id")
	cmd.Flags().StringVar(&filterStatus, "status", "", "Filter by status")
	cmd.Flags().StringVar(&startDate, "from", "", "Start date (inclusive)")
	cmd.Flags().StringVar(&endDate, "to", "", "End date (inclusive)")
}

func init() {
	addFilterFlags(listCmd)
	listCmd.Flags().StringVarP(&search, "search", "s", "", "Free-text search on description")
	listCmd.Flags().StringVar(&sortOption, "sort", "", "Sort option (DATE_DESC, AMOUNT_DESC, AMOUNT_ASC)")
	addFilterFlags(summaryCmd)

	addCmd.Flags().StringVarP(&accountID, "account", "a", "", "Account id")
	addCmd.Flags().StringVarP(&txType, "type", "t", models.TypeExpense, "Transaction type")
	addCmd.Flags().StringVarP(&category, "category", "c", models.CategoryOther, "Category")
	addCmd.Flags().StringVarP(&amount, "amount", "m", "", "Amount (unsigned; sign is implied by type)")
	addCmd.Flags().StringVarP(&description, "description", "d", "", "Description")
	addCmd.Flags().StringVar(&transactionDate, "date", "", "Transaction date (YYYY-MM-DD)")
	addCmd.Flags().StringVar(&notes, "notes", "", "Notes")
	addCmd.Flags().StringVar(&counterpart, "counterpart", "", "Debt counterpart name")
	addCmd.Flags().StringVar(&counterphone, "counterpart-phone", "", "Debt counterpart phone")
	addCmd.Flags().StringVar(&dueDate, "due", "", "Debt due date")
	_ = addCmd.MarkFlagRequired("account")
	_ = addCmd.MarkFlagRequired("amount")
	_ = addCmd.MarkFlagRequired("date")

	updateCmd.Flags().StringVarP(&amount, "amount", "m", "", "New amount")
	updateCmd.Flags().StringVarP(&category, "category", "c", "", "New category")
	updateCmd.Flags().StringVarP(&description, "description", "d", "", "New description")
	updateCmd.Flags().StringVar(&transactionDate, "date", "", "New transaction date")
	updateCmd.Flags().StringVar(&notes, "notes", "", "New notes")

	Cmd.AddCommand(listCmd)
	Cmd.AddCommand(addCmd)
	Cmd.AddCommand(updateCmd)
	Cmd.AddCommand(deleteCmd)
	Cmd.AddCommand(settleCmd)
	Cmd.AddCommand(summaryCmd)
}

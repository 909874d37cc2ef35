// Package export writes the transaction cache out as CSV.
package export

import (
	"fmt"
	"os"

	"github.com/gocarina/gocsv"

	"hwilson/finwat/internal/logging"
	"hwilson/finwat/internal/models"
)

// csvRow is the flattened CSV shape of a transaction.
type csvRow struct {
	ID              string `csv:"ID"`
	Date            string `csv:"Date"`
	Type            string `csv:"Type"`
	Category        string `csv:"Category"`
	Amount          string `csv:"Amount"`
	Currency        string `csv:"Currency"`
	Description     string `csv:"Description"`
	Account         string `csv:"Account"`
	Status          string `csv:"Status"`
	Notes           string `csv:"Notes"`
	CounterpartName string `csv:"Counterpart"`
	IsSettled       bool   `csv:"Settled"`
}

// Writer exports transactions to CSV files.
type Writer struct {
	delimiter rune
	log       logging.Logger
}

// NewWriter creates a CSV export writer with the configured delimiter.
func NewWriter(delimiter rune, log logging.Logger) *Writer {
	return &Writer{delimiter: delimiter, log: log}
}

// WriteFile writes the transactions to csvFile. Account names are resolved
// from accounts where the identifiers match; unmatched transactions keep
// the raw identifier.
func (w *Writer) WriteFile(transactions []models.Transaction, accounts []models.Account, csvFile string) error {
	if transactions == nil {
		return fmt.Errorf("cannot write nil transactions to CSV")
	}

	names := make(map[string]string, len(accounts))
	for _, a := range accounts {
		names[a.ID] = a.Name
	}

	rows := make([]csvRow, 0, len(transactions))
	for _, t := range transactions {
		account := t.AccountID
		if name, ok := names[t.AccountID]; ok {
			account = name
		}
		rows = append(rows, csvRow{
			ID:              t.ID,
			Date:            t.TransactionDate,
			Type:            t.Type,
			Category:        t.Category,
			Amount:          t.Amount.StringFixed(2),
			Currency:        t.Currency,
			Description:     t.Description,
			Account:         account,
			Status:          t.Status,
			Notes:           t.Notes,
			CounterpartName: t.CounterpartName,
			IsSettled:       t.IsSettled,
		})
	}

	file, err := os.Create(csvFile)
	if err != nil {
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			w.log.Warn("failed to close CSV file", logging.Field{Key: logging.FieldError, Value: err})
		}
	}()

	gocsv.TagSeparator = string(w.delimiter)
	if err := gocsv.MarshalFile(&rows, file); err != nil {
		return fmt.Errorf("error writing CSV file: %w", err)
	}

	w.log.Info("transactions exported",
		logging.Field{Key: logging.FieldCount, Value: len(rows)})
	return nil
}

// Package report renders a finished job result for human or file
// consumption. The canonical output of a job is its JSON form; the CSV
// export flattens all categories into one chronology-per-category table for
// spreadsheet review.
package report

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"

	"rkatz/portfolio-parser/internal/logging"
	"rkatz/portfolio-parser/internal/models"
)

var log = logging.GetLogger()

// SetLogger allows setting a configured logger.
func SetLogger(logger logging.Logger) {
	if logger == nil {
		return
	}
	log = logger
}

// ExportRow is the flattened CSV representation of one record. Numeric
// fields are rendered as strings so absent values stay empty instead of
// becoming zeros.
type ExportRow struct {
	Category        string `csv:"Category"`
	Date            string `csv:"Date"`
	CompanySymbol   string `csv:"Company Symbol"`
	Quantity        string `csv:"Quantity"`
	UnitPrice       string `csv:"Unit Price"`
	Currency        string `csv:"Currency"`
	TransactionFee  string `csv:"Transaction Fee"`
	ProceedsForeign string `csv:"Proceeds Foreign"`
	ProceedsLocal   string `csv:"Proceeds Local"`
}

// MarshalJSON renders a job result as indented JSON, the same shape the
// queue worker publishes as result metadata.
func MarshalJSON(result *models.JobResult) ([]byte, error) {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		log.WithError(err).Error("Failed to marshal job result to JSON")
		return nil, fmt.Errorf("failed to marshal job result: %w", err)
	}
	return data, nil
}

// WriteJSON writes the job result as indented JSON to the given file.
func WriteJSON(result *models.JobResult, path string) error {
	data, err := MarshalJSON(result)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		log.WithError(err).Error("Failed to write JSON file")
		return fmt.Errorf("error writing JSON file: %w", err)
	}
	log.Info("Successfully wrote job result to JSON file",
		logging.Field{Key: logging.FieldFile, Value: path})
	return nil
}

// WriteCSV writes the job result as a flat CSV file with one row per record
// across all categories, in category output order.
func WriteCSV(result *models.JobResult, path string) error {
	rows := Flatten(result)

	file, err := os.Create(path)
	if err != nil {
		log.WithError(err).Error("Failed to create CSV file")
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	if err := gocsv.MarshalFile(&rows, file); err != nil {
		log.WithError(err).Error("Failed to marshal records to CSV")
		return fmt.Errorf("error writing CSV data: %w", err)
	}

	log.Info("Successfully wrote job result to CSV file",
		logging.Field{Key: logging.FieldFile, Value: path},
		logging.Field{Key: logging.FieldCount, Value: len(rows)})
	return nil
}

// Flatten converts a job result into CSV export rows, preserving the
// per-category chronological order.
func Flatten(result *models.JobResult) []*ExportRow {
	rows := make([]*ExportRow, 0,
		len(result.Purchases)+len(result.Sales)+len(result.Dividends)+
			len(result.Taxes)+len(result.Transfers))

	sections := []struct {
		category string
		records  []models.CanonicalRecord
	}{
		{string(models.CategoryPurchase), result.Purchases},
		{string(models.CategorySale), result.Sales},
		{string(models.CategoryDividend), result.Dividends},
		{string(models.CategoryTax), result.Taxes},
		{string(models.CategoryTransfer), result.Transfers},
	}

	for _, section := range sections {
		for _, record := range section.records {
			rows = append(rows, &ExportRow{
				Category:        section.category,
				Date:            record.Date.String(),
				CompanySymbol:   record.CompanySymbol,
				Quantity:        nullDecimalString(record.Quantity),
				UnitPrice:       nullDecimalString(record.UnitPrice),
				Currency:        record.Currency,
				TransactionFee:  record.TransactionFee.String(),
				ProceedsForeign: nullDecimalString(record.ProceedsForeign),
				ProceedsLocal:   nullDecimalString(record.ProceedsLocal),
			})
		}
	}

	return rows
}

func nullDecimalString(d decimal.NullDecimal) string {
	if !d.Valid {
		return ""
	}
	return d.Decimal.String()
}

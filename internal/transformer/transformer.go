// Package transformer maps classified raw rows into canonical records. The
// mapping is positional: a declared index table decides which cell feeds
// which schema field, because column names are not reliable across source
// files.
package transformer

import (
	"strings"

	"github.com/shopspring/decimal"

	"rkatz/portfolio-parser/internal/currencyutils"
	"rkatz/portfolio-parser/internal/dateutils"
	"rkatz/portfolio-parser/internal/loader"
	"rkatz/portfolio-parser/internal/logging"
	"rkatz/portfolio-parser/internal/models"
	"rkatz/portfolio-parser/internal/parsererror"
)

// Transformer converts raw rows into canonical records using a fixed column
// map.
type Transformer struct {
	columns models.ColumnMap
	logger  logging.Logger
}

// New creates a Transformer with the default column map.
func New(logger logging.Logger) *Transformer {
	return NewWithColumns(models.DefaultColumnMap(), logger)
}

// NewWithColumns creates a Transformer with an overridden column map.
func NewWithColumns(columns models.ColumnMap, logger logging.Logger) *Transformer {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Transformer{columns: columns, logger: logger}
}

// Transform maps one classified row into a canonical record. Missing or
// out-of-range cells become null fields; only an unresolvable date or a
// non-numeric cell rejects the row. A rejection returns a *parsererror.RowError
// and no record.
func (t *Transformer) Transform(row loader.RawRow, category models.Category) (models.CanonicalRecord, error) {
	var record models.CanonicalRecord

	dateStr := row.Cell(t.columns.Date)
	date, err := dateutils.ParseDate(dateStr)
	if err != nil {
		return record, &parsererror.RowError{
			File:  row.File,
			Row:   row.Index,
			Field: "date",
			Value: dateStr,
			Msg:   "missing or unparseable date",
		}
	}
	record.Date = models.DateOf(date)

	record.CompanySymbol = strings.TrimSpace(row.Cell(t.columns.Symbol))
	record.Currency = strings.TrimSpace(row.Cell(t.columns.Currency))

	if record.Quantity, err = t.parseCell(row, t.columns.Quantity, "quantity"); err != nil {
		return models.CanonicalRecord{}, err
	}
	if record.UnitPrice, err = t.parseCell(row, t.columns.UnitPrice, "unit_price"); err != nil {
		return models.CanonicalRecord{}, err
	}
	if record.ProceedsForeign, err = t.parseCell(row, t.columns.ProceedsForeign, "proceeds_foreign"); err != nil {
		return models.CanonicalRecord{}, err
	}
	if record.ProceedsLocal, err = t.parseCell(row, t.columns.ProceedsLocal, "proceeds_local"); err != nil {
		return models.CanonicalRecord{}, err
	}

	// The fee defaults to zero rather than null.
	fee, err := t.parseCell(row, t.columns.TransactionFee, "transaction_fee")
	if err != nil {
		return models.CanonicalRecord{}, err
	}
	if fee.Valid {
		record.TransactionFee = fee.Decimal
	} else {
		record.TransactionFee = decimal.Zero
	}

	t.logger.Debug("Transformed row",
		logging.Field{Key: logging.FieldFile, Value: row.File},
		logging.Field{Key: logging.FieldRow, Value: row.Index},
		logging.Field{Key: logging.FieldCategory, Value: category})

	return record, nil
}

// parseCell parses an optional numeric cell. Empty or out-of-range cells are
// null; a non-numeric remainder rejects the row.
func (t *Transformer) parseCell(row loader.RawRow, idx int, field string) (decimal.NullDecimal, error) {
	value := row.Cell(idx)
	amount, err := currencyutils.ParseNullAmount(value)
	if err != nil {
		return decimal.NullDecimal{}, &parsererror.RowError{
			File:  row.File,
			Row:   row.Index,
			Field: field,
			Value: value,
			Msg:   "non-numeric value",
		}
	}
	return amount, nil
}

// Package assembler drives the per-file pipeline: load, categorize each row,
// transform, partition by category, and sort. It owns the FileOutcome for
// the duration of one file and never lets a failure escape its boundary.
package assembler

import (
	"fmt"
	"strings"

	"rkatz/portfolio-parser/internal/categorizer"
	"rkatz/portfolio-parser/internal/loader"
	"rkatz/portfolio-parser/internal/logging"
	"rkatz/portfolio-parser/internal/models"
	"rkatz/portfolio-parser/internal/parsererror"
	"rkatz/portfolio-parser/internal/transformer"

	"sort"
)

// descriptionColumns are the header names checked, in order, when resolving
// which cell carries the transaction description. Headers are not reliable
// across source files, so resolution falls back to a fixed index.
var descriptionColumns = []string{
	"transaction type",
	"type",
	"transaction",
	"action",
	"transactiontype",
	"transaction_type",
	"description",
}

// fallbackDescriptionIndex is used when no known header is present. It is
// the position the fixed column map leaves open for the description cell.
const fallbackDescriptionIndex = 2

// Assembler processes one file at a time into a FileOutcome.
type Assembler struct {
	categorizer *categorizer.Categorizer
	transformer *transformer.Transformer
	logger      logging.Logger
}

// New creates an Assembler with the default categorizer and transformer.
func New(logger logging.Logger) *Assembler {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Assembler{
		categorizer: categorizer.New(logger),
		transformer: transformer.New(logger),
		logger:      logger,
	}
}

// NewWithComponents creates an Assembler from explicit components, used when
// configuration overrides the rule table or column map.
func NewWithComponents(c *categorizer.Categorizer, t *transformer.Transformer, logger logging.Logger) *Assembler {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Assembler{categorizer: c, transformer: t, logger: logger}
}

// AssembleFile runs the full per-file pipeline. A loader failure yields an
// outcome with a single descriptor and zero records; row failures exclude
// only their row. The returned outcome's category slices are stably sorted
// ascending by date, ties preserving original row order.
func (a *Assembler) AssembleFile(dir, fileName string) *models.FileOutcome {
	outcome := models.NewFileOutcome(fileName)

	table, loadDesc := loader.Load(dir, fileName)
	if loadDesc != nil {
		outcome.AddError(*loadDesc)
		return outcome
	}

	descIdx := findDescriptionColumn(table.Header)

	for _, row := range table.Rows {
		description := row.Cell(descIdx)

		rule, ok := a.categorizer.Categorize(description)
		if !ok {
			rowErr := &parsererror.RowError{
				File:  fileName,
				Row:   row.Index,
				Field: "description",
				Value: description,
				Msg:   "unclassified row",
			}
			outcome.AddError(rowErr.Descriptor())
			continue
		}

		record, err := a.transformer.Transform(row, rule.Category)
		if err != nil {
			outcome.AddError(describeRowError(err, fileName, row.Index))
			continue
		}

		outcome.AddRecord(rule.Category, record)
	}

	for _, category := range models.Categories {
		records := outcome.Records[category]
		sort.SliceStable(records, func(i, j int) bool {
			return records[i].Date.Compare(records[j].Date) < 0
		})
	}

	a.logger.Info("File processed",
		logging.Field{Key: logging.FieldFile, Value: fileName},
		logging.Field{Key: logging.FieldCount, Value: outcome.RecordCount()},
		logging.Field{Key: logging.FieldErrors, Value: len(outcome.Errors)})

	return outcome
}

// describeRowError converts a transformer error into a descriptor, keeping
// file and row context even for unexpected error values.
func describeRowError(err error, fileName string, rowIdx int) models.ErrorDescriptor {
	if rowErr, ok := err.(*parsererror.RowError); ok {
		return rowErr.Descriptor()
	}
	return models.ErrorDescriptor{
		File:  fileName,
		Error: fmt.Sprintf("file %s, row %d: %v", fileName, rowIdx, err),
		Type:  models.ErrorTypeValidation,
	}
}

// findDescriptionColumn resolves the description cell index from the header
// by case-insensitive name match, falling back to a fixed position.
func findDescriptionColumn(header []string) int {
	for _, candidate := range descriptionColumns {
		for i, name := range header {
			if strings.EqualFold(strings.TrimSpace(name), candidate) {
				return i
			}
		}
	}
	return fallbackDescriptionIndex
}

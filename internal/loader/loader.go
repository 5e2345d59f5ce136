// Package loader opens raw portfolio files and turns them into untyped
// tabular rows. Every failure is returned as an error descriptor, never
// raised to the caller: an unreadable file must not abort the job it
// belongs to.
package loader

import (
	"path/filepath"

	"rkatz/portfolio-parser/internal/fileutils"
	"rkatz/portfolio-parser/internal/logging"
	"rkatz/portfolio-parser/internal/models"
	"rkatz/portfolio-parser/internal/parsererror"
)

var log = logging.GetLogger()

// Format identifies the tabular format of a source file.
type Format string

const (
	FormatCSV   Format = "csv"
	FormatExcel Format = "xlsx"
)

// RawRow is one data row of a source file: the ordered cell values exactly
// as found, plus the originating file name and 1-based row index for error
// messages. Rows are ephemeral; they do not outlive the processing of their
// file.
type RawRow struct {
	File  string
	Index int
	Cells []string
}

// Cell returns the cell at the given index, or "" when the row is too short.
func (r RawRow) Cell(idx int) string {
	if idx < 0 || idx >= len(r.Cells) {
		return ""
	}
	return r.Cells[idx]
}

// Table is the loaded content of one file. The header row is kept separate
// so callers can resolve named columns; Rows contains only data rows.
type Table struct {
	File   string
	Header []string
	Rows   []RawRow
}

// DetectFormat detects the tabular format from a file name's extension.
func DetectFormat(fileName string) (Format, bool) {
	switch fileutils.Extension(fileName) {
	case ".csv":
		return FormatCSV, true
	case ".xlsx", ".xls":
		return FormatExcel, true
	}
	return "", false
}

// Load opens the named file inside dir and returns its rows. On any failure
// it returns a nil table and a descriptor identifying the file; it never
// returns a Go error.
func Load(dir, fileName string) (*Table, *models.ErrorDescriptor) {
	filePath := filepath.Join(dir, fileName)

	if !fileutils.FileExists(filePath) {
		err := &parsererror.LoadError{File: fileName, Msg: "file not found"}
		log.Warn("File not found", logging.Field{Key: logging.FieldFile, Value: fileName})
		desc := err.Descriptor()
		return nil, &desc
	}

	format, ok := DetectFormat(fileName)
	if !ok {
		err := &parsererror.LoadError{File: fileName, Msg: "unsupported file type (must be .csv or .xlsx)"}
		log.Warn("Unsupported file type", logging.Field{Key: logging.FieldFile, Value: fileName})
		desc := err.Descriptor()
		return nil, &desc
	}

	var table *Table
	var loadErr error
	switch format {
	case FormatCSV:
		table, loadErr = loadCSV(filePath, fileName)
	case FormatExcel:
		table, loadErr = loadExcel(filePath, fileName)
	}

	if loadErr != nil {
		log.WithError(loadErr).Warn("Failed to load file",
			logging.Field{Key: logging.FieldFile, Value: fileName})
		desc := describe(loadErr, fileName)
		return nil, &desc
	}

	if len(table.Rows) == 0 {
		err := &parsererror.LoadError{File: fileName, Msg: "file has no data rows"}
		desc := err.Descriptor()
		return nil, &desc
	}

	log.Info("Successfully loaded file",
		logging.Field{Key: logging.FieldFile, Value: fileName},
		logging.Field{Key: logging.FieldCount, Value: len(table.Rows)})
	return table, nil
}

// describe converts a loader error into a descriptor, preserving the
// encoding/load distinction.
func describe(err error, fileName string) models.ErrorDescriptor {
	switch e := err.(type) {
	case *parsererror.EncodingError:
		return e.Descriptor()
	case *parsererror.LoadError:
		return e.Descriptor()
	}
	le := &parsererror.LoadError{File: fileName, Msg: "unexpected load failure", Err: err}
	return le.Descriptor()
}

// tableFromRecords builds a Table out of raw records, splitting off the
// header row and indexing data rows from 1.
func tableFromRecords(fileName string, records [][]string) *Table {
	table := &Table{File: fileName}
	if len(records) == 0 {
		return table
	}

	table.Header = records[0]
	for i, record := range records[1:] {
		table.Rows = append(table.Rows, RawRow{
			File:  fileName,
			Index: i + 1,
			Cells: record,
		})
	}
	return table
}

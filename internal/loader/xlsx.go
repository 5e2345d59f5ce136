package loader

import (
	"github.com/xuri/excelize/v2"

	"rkatz/portfolio-parser/internal/logging"
	"rkatz/portfolio-parser/internal/parsererror"
)

// loadExcel reads the first sheet of a spreadsheet file into a table.
func loadExcel(filePath, fileName string) (*Table, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, &parsererror.LoadError{File: fileName, Msg: "could not open spreadsheet (corrupt or unsupported container)", Err: err}
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			log.WithError(closeErr).Warn("Failed to close spreadsheet",
				logging.Field{Key: logging.FieldFile, Value: fileName})
		}
	}()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, &parsererror.LoadError{File: fileName, Msg: "spreadsheet has no sheets"}
	}

	records, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, &parsererror.LoadError{File: fileName, Msg: "could not read sheet rows", Err: err}
	}

	if len(records) == 0 {
		return nil, &parsererror.LoadError{File: fileName, Msg: "file is empty"}
	}

	return tableFromRecords(fileName, records), nil
}

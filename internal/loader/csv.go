package loader

import (
	"bytes"
	"encoding/csv"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"rkatz/portfolio-parser/internal/fileutils"
	"rkatz/portfolio-parser/internal/logging"
	"rkatz/portfolio-parser/internal/parsererror"
)

// attemptedEncodings is the fallback chain tried when decoding CSV bytes.
var attemptedEncodings = []string{"utf-8", "windows-1252", "iso-8859-1"}

// loadCSV reads a delimited text file. UTF-8 is attempted first; bytes that
// are not valid UTF-8 are re-decoded as Windows-1252 and then Latin-1.
// Content with NUL bytes is not text under any of those encodings and is
// reported as an encoding error.
func loadCSV(filePath, fileName string) (*Table, error) {
	data, err := fileutils.ReadFile(filePath)
	if err != nil {
		return nil, &parsererror.LoadError{File: fileName, Msg: "could not read file", Err: err}
	}

	text, encodingName, ok := decodeText(data)
	if !ok {
		return nil, &parsererror.EncodingError{File: fileName, Encodings: attemptedEncodings}
	}
	if encodingName != "utf-8" {
		log.Info("Loaded CSV with fallback encoding",
			logging.Field{Key: logging.FieldFile, Value: fileName},
			logging.Field{Key: logging.FieldEncoding, Value: encodingName})
	}

	reader := csv.NewReader(bytes.NewReader(text))
	// Source files are ragged; short and long rows are handled positionally
	// downstream.
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, &parsererror.LoadError{File: fileName, Msg: "CSV parsing failed", Err: err}
	}

	if len(records) == 0 {
		return nil, &parsererror.LoadError{File: fileName, Msg: "file is empty"}
	}

	return tableFromRecords(fileName, records), nil
}

// decodeText decodes raw bytes into UTF-8 text, reporting which encoding
// succeeded. NUL bytes mark binary content that no attempted text encoding
// can represent.
func decodeText(data []byte) ([]byte, string, bool) {
	if bytes.ContainsRune(data, 0x00) {
		return nil, "", false
	}

	if utf8.Valid(data) {
		return data, "utf-8", true
	}

	if decoded, err := charmap.Windows1252.NewDecoder().Bytes(data); err == nil {
		return decoded, "windows-1252", true
	}

	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
	if err != nil {
		return nil, "", false
	}
	return decoded, "iso-8859-1", true
}

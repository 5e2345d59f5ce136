package models

// ErrorType classifies a processing failure.
type ErrorType string

const (
	// ErrorTypeEncoding means the file bytes were not decodable under any
	// attempted encoding.
	ErrorTypeEncoding ErrorType = "encoding_error"
	// ErrorTypeLoad means the file was missing, had an unsupported format,
	// or its container was corrupt.
	ErrorTypeLoad ErrorType = "load_error"
	// ErrorTypeValidation means a row failed categorization, date parsing
	// or numeric parsing.
	ErrorTypeValidation ErrorType = "validation_error"
)

// ErrorDescriptor describes one recovered failure. Descriptors are
// append-only: they accumulate in the job result and are never removed.
type ErrorDescriptor struct {
	File  string    `json:"file"`
	Error string    `json:"error"`
	Type  ErrorType `json:"type"`
}

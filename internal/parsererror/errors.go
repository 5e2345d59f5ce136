// Package parsererror defines the typed error values used by the loading and
// transformation pipeline. Components convert them into ErrorDescriptors at
// the assembler boundary; they are never allowed to escape a file or job.
package parsererror

import (
	"fmt"

	"rkatz/portfolio-parser/internal/models"
)

// LoadError represents a file-level load failure: missing file, unsupported
// format, or a corrupt container.
type LoadError struct {
	File string
	Msg  string
	Err  error
}

func (e *LoadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("failed to load %s: %s: %v", e.File, e.Msg, e.Err)
	}
	return fmt.Sprintf("failed to load %s: %s", e.File, e.Msg)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Descriptor converts the error into an output error descriptor.
func (e *LoadError) Descriptor() models.ErrorDescriptor {
	return models.ErrorDescriptor{
		File:  e.File,
		Error: e.Error(),
		Type:  models.ErrorTypeLoad,
	}
}

// EncodingError represents file bytes that were not decodable under any
// attempted encoding.
type EncodingError struct {
	File      string
	Encodings []string
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("could not decode %s with any supported encoding %v", e.File, e.Encodings)
}

// Descriptor converts the error into an output error descriptor.
func (e *EncodingError) Descriptor() models.ErrorDescriptor {
	return models.ErrorDescriptor{
		File:  e.File,
		Error: e.Error(),
		Type:  models.ErrorTypeEncoding,
	}
}

// RowError represents a row-level validation failure. It excludes only the
// offending row; the rest of the file keeps processing.
type RowError struct {
	File  string
	Row   int
	Field string
	Value string
	Msg   string
}

func (e *RowError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("file %s, row %d: %s (%s='%s')", e.File, e.Row, e.Msg, e.Field, e.Value)
	}
	return fmt.Sprintf("file %s, row %d: %s", e.File, e.Row, e.Msg)
}

// Descriptor converts the error into an output error descriptor.
func (e *RowError) Descriptor() models.ErrorDescriptor {
	return models.ErrorDescriptor{
		File:  e.File,
		Error: e.Error(),
		Type:  models.ErrorTypeValidation,
	}
}

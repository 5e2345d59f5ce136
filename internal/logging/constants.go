package logging

// Standardized field names for structured logging. These constants keep the
// application's log output consistent and easy to filter.
const (
	FieldFile      = "file"
	FieldJob       = "job_id"
	FieldRow       = "row"
	FieldCategory  = "category"
	FieldCount     = "count"
	FieldErrors    = "errors"
	FieldState     = "state"
	FieldEncoding  = "encoding"
	FieldStream    = "stream"
	FieldMessageID = "message_id"
	FieldReason    = "reason"
)

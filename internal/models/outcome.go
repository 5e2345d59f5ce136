package models

// FileOutcome holds the result of processing a single file: the records
// partitioned by category (each slice sorted ascending by date) plus every
// row or file error collected on the way. A FileOutcome lives only for the
// duration of one file and is consumed exactly once by the merger.
type FileOutcome struct {
	File    string
	Records map[Category][]CanonicalRecord
	Errors  []ErrorDescriptor
}

// NewFileOutcome creates an empty outcome for the given file with all
// category slices initialized.
func NewFileOutcome(file string) *FileOutcome {
	records := make(map[Category][]CanonicalRecord, len(Categories))
	for _, c := range Categories {
		records[c] = []CanonicalRecord{}
	}
	return &FileOutcome{
		File:    file,
		Records: records,
		Errors:  []ErrorDescriptor{},
	}
}

// AddRecord appends a record to the given category.
func (o *FileOutcome) AddRecord(category Category, record CanonicalRecord) {
	o.Records[category] = append(o.Records[category], record)
}

// AddError appends an error descriptor.
func (o *FileOutcome) AddError(desc ErrorDescriptor) {
	o.Errors = append(o.Errors, desc)
}

// RecordCount returns the total number of records across all categories.
func (o *FileOutcome) RecordCount() int {
	n := 0
	for _, recs := range o.Records {
		n += len(recs)
	}
	return n
}

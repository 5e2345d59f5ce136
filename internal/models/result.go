package models

// JobAccumulator is the running merged state of one job across all files
// processed so far. It is owned exclusively by the orchestrator for the
// lifetime of one job and is never shared between jobs.
type JobAccumulator struct {
	Records map[Category][]CanonicalRecord
	Errors  []ErrorDescriptor
}

// NewJobAccumulator creates an empty accumulator with all category slices
// initialized.
func NewJobAccumulator() *JobAccumulator {
	records := make(map[Category][]CanonicalRecord, len(Categories))
	for _, c := range Categories {
		records[c] = []CanonicalRecord{}
	}
	return &JobAccumulator{
		Records: records,
		Errors:  []ErrorDescriptor{},
	}
}

// AddErrors appends error descriptors to the running list.
func (a *JobAccumulator) AddErrors(descs []ErrorDescriptor) {
	a.Errors = append(a.Errors, descs...)
}

// Result converts the accumulator into the final job output. The tax and
// transfer categories are emitted under their output names "taxes" and
// "transfers"; transfer deposit and fee sub-kinds are never split.
func (a *JobAccumulator) Result(jobID string) *JobResult {
	return &JobResult{
		JobID:     jobID,
		Purchases: a.Records[CategoryPurchase],
		Sales:     a.Records[CategorySale],
		Dividends: a.Records[CategoryDividend],
		Taxes:     a.Records[CategoryTax],
		Transfers: a.Records[CategoryTransfer],
		Errors:    a.Errors,
	}
}

// JobResult is the final unified output for one job. All five record arrays
// are ascending-sorted by date and always present, even when empty.
type JobResult struct {
	JobID     string            `json:"jobId"`
	Purchases []CanonicalRecord `json:"purchases"`
	Sales     []CanonicalRecord `json:"sales"`
	Dividends []CanonicalRecord `json:"dividends"`
	Taxes     []CanonicalRecord `json:"taxes"`
	Transfers []CanonicalRecord `json:"transfers"`
	Errors    []ErrorDescriptor `json:"errors"`
}

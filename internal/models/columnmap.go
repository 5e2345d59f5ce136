package models

// ColumnMap declares the zero-based positional indices the transformer reads
// schema fields from. Column names are not assumed reliable across source
// files, so mapping is positional. The defaults are part of the documented
// schema contract and must not change; deployments may override them through
// configuration.
type ColumnMap struct {
	Date            int
	Symbol          int
	Quantity        int
	UnitPrice       int
	Currency        int
	TransactionFee  int
	ProceedsForeign int
	ProceedsLocal   int
}

// DefaultColumnMap returns the documented default column layout.
func DefaultColumnMap() ColumnMap {
	return ColumnMap{
		Date:            0,
		Symbol:          3,
		Quantity:        4,
		UnitPrice:       5,
		Currency:        6,
		TransactionFee:  7,
		ProceedsForeign: 9,
		ProceedsLocal:   10,
	}
}

package models

import (
	"github.com/shopspring/decimal"
)

// CanonicalRecord is the normalized, schema-conformant representation of one
// transaction row. The date is the only required field: a row whose date
// cannot be resolved is rejected by the transformer and never becomes a
// record. Absent numeric fields marshal as null.
type CanonicalRecord struct {
	Date            Date                `json:"date"`
	CompanySymbol   string              `json:"company_symbol"`
	Quantity        decimal.NullDecimal `json:"quantity"`
	UnitPrice       decimal.NullDecimal `json:"unit_price"`
	Currency        string              `json:"currency"`
	TransactionFee  decimal.Decimal     `json:"transaction_fee"`
	ProceedsForeign decimal.NullDecimal `json:"proceeds_foreign"`
	ProceedsLocal   decimal.NullDecimal `json:"proceeds_local"`
}

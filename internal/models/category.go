package models

// Category is one of the fixed transaction kinds a row can be classified into.
// Categories are only ever assigned by content match, never inferred from the
// shape of a row.
type Category string

const (
	CategoryPurchase Category = "purchase"
	CategorySale     Category = "sale"
	CategoryDividend Category = "dividend"
	CategoryTax      Category = "tax"
	CategoryTransfer Category = "transfer"
)

// Categories lists every category in output order.
var Categories = []Category{
	CategoryPurchase,
	CategorySale,
	CategoryDividend,
	CategoryTax,
	CategoryTransfer,
}

// TransferKind distinguishes the sub-kinds folded into the transfer category.
// The kind exists only on categorization rules; output never splits transfers.
type TransferKind string

const (
	TransferDeposit         TransferKind = "deposit"
	TransferCashHandlingFee TransferKind = "cash_handling_fee"
)

// IsValid reports whether c is one of the known categories.
func (c Category) IsValid() bool {
	switch c {
	case CategoryPurchase, CategorySale, CategoryDividend, CategoryTax, CategoryTransfer:
		return true
	}
	return false
}

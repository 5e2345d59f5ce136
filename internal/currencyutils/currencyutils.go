// Package currencyutils provides amount parsing and standardization for the
// numeric cells found in portfolio files.
package currencyutils

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var symbolRe = regexp.MustCompile(`[€$£¥₪₣₤₹CHF\s]`)

// StandardizeAmount converts various currency string formats to a form that
// decimal.NewFromString accepts. Handles patterns like "$1,234.56",
// "1.234,56", "1'234.56" and "1 234,56".
func StandardizeAmount(amountStr string) string {
	// Remove currency symbols and whitespace
	amountStr = symbolRe.ReplaceAllString(amountStr, "")

	// European format (1.234,56) -> (1234.56)
	if strings.Contains(amountStr, ",") && strings.Contains(amountStr, ".") {
		if strings.LastIndex(amountStr, ".") < strings.LastIndex(amountStr, ",") {
			amountStr = strings.ReplaceAll(amountStr, ".", "")
			amountStr = strings.ReplaceAll(amountStr, ",", ".")
		} else {
			amountStr = strings.ReplaceAll(amountStr, ",", "")
		}
	} else if strings.Contains(amountStr, ",") {
		// Comma is either a decimal separator (1234,56) or a thousands
		// separator (1,234)
		parts := strings.Split(amountStr, ",")
		if len(parts) > 1 && len(parts[len(parts)-1]) <= 2 {
			amountStr = strings.ReplaceAll(amountStr, ",", ".")
		} else {
			amountStr = strings.ReplaceAll(amountStr, ",", "")
		}
	}

	// Apostrophes used as thousands separators (1'234.56)
	amountStr = strings.ReplaceAll(amountStr, "'", "")

	return amountStr
}

// ParseAmount parses a string representation of an amount into a decimal
// value. Empty strings parse as zero.
func ParseAmount(amountStr string) (decimal.Decimal, error) {
	if strings.TrimSpace(amountStr) == "" {
		return decimal.Zero, nil
	}

	standardized := StandardizeAmount(amountStr)
	amount, err := decimal.NewFromString(standardized)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse amount '%s': %w", amountStr, err)
	}

	return amount, nil
}

// ParseNullAmount parses an optional amount cell. Empty strings yield an
// invalid (null) decimal with no error; a non-numeric remainder after
// standardization is an error.
func ParseNullAmount(amountStr string) (decimal.NullDecimal, error) {
	if strings.TrimSpace(amountStr) == "" {
		return decimal.NullDecimal{}, nil
	}

	amount, err := ParseAmount(amountStr)
	if err != nil {
		return decimal.NullDecimal{}, err
	}

	return decimal.NullDecimal{Decimal: amount, Valid: true}, nil
}

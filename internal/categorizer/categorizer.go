// Package categorizer classifies raw rows into transaction categories using
// deterministic keyword pattern matching. No structural inference: a row's
// category comes only from the text of its description cell.
package categorizer

import (
	"strings"

	"rkatz/portfolio-parser/internal/logging"
	"rkatz/portfolio-parser/internal/models"
)

// Rule maps a set of case-insensitive substring keywords to a category.
// Rules are evaluated strictly top to bottom; the first matching rule wins.
// For transfer rules, Kind records the folded sub-kind.
type Rule struct {
	Category models.Category     `yaml:"category"`
	Kind     models.TransferKind `yaml:"kind,omitempty"`
	Keywords []string            `yaml:"keywords"`
}

// DefaultRules returns the built-in rule table. Dividend outranks tax, which
// outranks the buy/sell markers, which outrank the deposit and fee markers.
func DefaultRules() []Rule {
	return []Rule{
		{Category: models.CategoryDividend, Keywords: []string{"Dividend"}},
		{Category: models.CategoryTax, Keywords: []string{"Withholding", "Foreign Tax", "Tax"}},
		{Category: models.CategoryPurchase, Keywords: []string{"ExecutedBuy", "Buy", "Purchase"}},
		{Category: models.CategorySale, Keywords: []string{"ExecutedSell", "Sell", "Sale"}},
		{Category: models.CategoryTransfer, Kind: models.TransferDeposit, Keywords: []string{"Deposit", "Cash Transfer"}},
		{Category: models.CategoryTransfer, Kind: models.TransferCashHandlingFee, Keywords: []string{"Cash Handling Fee", "Handling", "Fee"}},
	}
}

// Categorizer classifies description text against an ordered rule table.
type Categorizer struct {
	rules  []Rule
	logger logging.Logger
}

// New creates a Categorizer with the default rule table.
func New(logger logging.Logger) *Categorizer {
	return NewWithRules(DefaultRules(), logger)
}

// NewWithRules creates a Categorizer with a custom rule table. The slice
// order is the precedence order.
func NewWithRules(rules []Rule, logger logging.Logger) *Categorizer {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Categorizer{rules: rules, logger: logger}
}

// Categorize classifies a description cell. It returns the matching rule and
// true, or a zero rule and false when no keyword matches. Classification is
// pure: the same input always yields the same result.
func (c *Categorizer) Categorize(description string) (Rule, bool) {
	text := strings.ToUpper(strings.TrimSpace(description))
	if text == "" {
		return Rule{}, false
	}

	for _, rule := range c.rules {
		for _, keyword := range rule.Keywords {
			if strings.Contains(text, strings.ToUpper(keyword)) {
				c.logger.Debug("Row categorized by keyword",
					logging.Field{Key: "keyword", Value: keyword},
					logging.Field{Key: logging.FieldCategory, Value: rule.Category})
				return rule, true
			}
		}
	}

	return Rule{}, false
}

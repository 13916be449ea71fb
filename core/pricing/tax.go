// Package pricing - Tax calculators
package pricing

import (
	"github.com/shopspring/decimal"

	"marketplace-pricing/core/types"
)

// FlatTaxCalculator taxes every line item total at a single rate. Stands
// in for the external tax-table lookup when none is wired in.
type FlatTaxCalculator struct {
	Rate decimal.Decimal
}

// TaxFor returns item total x rate.
func (c FlatTaxCalculator) TaxFor(item types.LineItem, category types.Category) decimal.NullDecimal {
	return decimal.NewNullDecimal(item.Total().Mul(c.Rate))
}

// Package pricing - Service pricing policies
package pricing

import (
	"github.com/shopspring/decimal"

	"marketplace-pricing/core/types"
	"marketplace-pricing/internal/errors"
)

// Price bills a per-mile line item (partial miles round up) and/or a
// flat-rate line item, whichever rates are configured.
func (p *ServicePolicy) Price(miles decimal.Decimal) ([]types.LineItem, error) {
	if miles.IsNegative() {
		return nil, errors.Input("miles must not be negative")
	}

	var items []types.LineItem

	if p.PricePerMile.Valid {
		items = append(items, types.LineItem{
			Description: "Service",
			Quantity:    miles.Ceil().IntPart(),
			UnitPrice:   p.PricePerMile.Decimal,
			Units:       "Miles",
		})
	}

	if p.FlatRatePrice.Valid {
		items = append(items, types.LineItem{
			Description: "Flat Rate",
			Quantity:    1,
			UnitPrice:   p.FlatRatePrice.Decimal,
		})
	}

	return items, nil
}

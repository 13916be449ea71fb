// Package pricing - Quote aggregation
package pricing

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"marketplace-pricing/core/types"
)

// Aggregate combines grouped line items into the final quote. Every
// category key is present in the response, nil-valued when the offering
// produced nothing for it. When a tax calculator is supplied, each item
// is taxed before totals are computed.
func Aggregate(groups []*types.Group, taxer TaxCalculator) *types.Quote {
	quote := &types.Quote{
		ID:     uuid.NewString(),
		Groups: make(map[types.Category]*types.Group, len(types.AllCategories())),
		Total:  decimal.Zero,
		Tax:    decimal.Zero,
	}
	for _, category := range types.AllCategories() {
		quote.Groups[category] = nil
	}

	for _, group := range groups {
		if group == nil || len(group.Items) == 0 {
			continue
		}
		if taxer != nil {
			for i := range group.Items {
				group.Items[i].Tax = taxer.TaxFor(group.Items[i], group.Category)
			}
		}
		quote.Groups[group.Category] = group
		quote.Total = quote.Total.Add(group.Total())
		quote.Tax = quote.Tax.Add(group.TaxTotal())
	}

	return quote
}

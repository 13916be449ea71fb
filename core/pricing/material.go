// Package pricing - Material pricing
package pricing

import (
	"marketplace-pricing/core/types"
)

// Price bills the given tonnage at the first entry matching the waste
// type. Returns nil when the waste type is not priced by this policy.
func (p *MaterialPolicy) Price(wasteType string, tons int64) *types.LineItem {
	for _, entry := range p.WasteTypes {
		if entry.WasteType != wasteType {
			continue
		}
		return &types.LineItem{
			Description: entry.WasteType,
			Quantity:    tons,
			UnitPrice:   entry.PricePerTon,
			Units:       "Tons",
		}
	}
	return nil
}
